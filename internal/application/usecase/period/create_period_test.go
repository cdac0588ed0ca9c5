// Package period contains budget-period-related use cases.
package period

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// fakePeriodRepository is an in-memory PeriodRepository for use case tests.
type fakePeriodRepository struct {
	periods map[uuid.UUID]*entity.BudgetPeriod
}

func newFakePeriodRepository() *fakePeriodRepository {
	return &fakePeriodRepository{
		periods: make(map[uuid.UUID]*entity.BudgetPeriod),
	}
}

func (f *fakePeriodRepository) CreateWithSnapshot(_ context.Context, period *entity.BudgetPeriod) error {
	copied := *period
	f.periods[period.ID] = &copied
	return nil
}

func (f *fakePeriodRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.BudgetPeriod, error) {
	period, ok := f.periods[id]
	if !ok {
		return nil, domainerror.ErrPeriodNotFound
	}
	copied := *period
	return &copied, nil
}

func (f *fakePeriodRepository) FindAll(_ context.Context) ([]*entity.BudgetPeriod, error) {
	var periods []*entity.BudgetPeriod
	for _, period := range f.periods {
		copied := *period
		periods = append(periods, &copied)
	}
	return periods, nil
}

func (f *fakePeriodRepository) FindCurrent(_ context.Context, on time.Time) (*entity.BudgetPeriod, error) {
	day := entity.TruncateToDay(on)
	var current *entity.BudgetPeriod
	for _, period := range f.periods {
		if !period.IsActive || day.Before(period.StartDate) || day.After(period.EndDate) {
			continue
		}
		if current == nil || period.StartDate.After(current.StartDate) {
			copied := *period
			current = &copied
		}
	}
	return current, nil
}

func (f *fakePeriodRepository) CountOverlappingActive(_ context.Context, start, end time.Time) (int64, error) {
	var count int64
	for _, period := range f.periods {
		if !period.IsActive {
			continue
		}
		if !start.After(period.EndDate) && !end.Before(period.StartDate) {
			count++
		}
	}
	return count, nil
}

func (f *fakePeriodRepository) Update(_ context.Context, period *entity.BudgetPeriod) error {
	copied := *period
	f.periods[period.ID] = &copied
	return nil
}

func (f *fakePeriodRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.periods, id)
	return nil
}

func (f *fakePeriodRepository) FindBudgets(_ context.Context, _ uuid.UUID) ([]*entity.PeriodBudgetWithCategory, error) {
	return nil, nil
}

func (f *fakePeriodRepository) UpdateBudgets(_ context.Context, _ uuid.UUID, _ []adapter.PeriodBudgetUpdate) error {
	return nil
}

func TestCreatePeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a monthly period", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		output, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			StartDate:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Period.IsActive {
			t.Error("expected new period to be active")
		}
	})

	t.Run("truncates time-of-day to calendar days", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		output, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeWeekly,
			StartDate:  time.Date(2026, time.March, 2, 13, 45, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.March, 8, 7, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Period.StartDate.Hour() != 0 || output.Period.EndDate.Hour() != 0 {
			t.Error("expected dates truncated to midnight")
		}
	})

	t.Run("suggests bounds when both dates are omitted", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		output, err := uc.Execute(ctx, CreatePeriodInput{PeriodType: entity.PeriodTypeMonthly})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Period.StartDate.Day() != 1 {
			t.Errorf("expected month start, got %v", output.Period.StartDate)
		}
	})

	t.Run("rejects end date without start date", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		_, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			EndDate:    time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domainerror.ErrInvalidPeriodDates) {
			t.Errorf("expected ErrInvalidPeriodDates, got %v", err)
		}
		if len(repo.periods) != 0 {
			t.Errorf("expected no period stored, got %d", len(repo.periods))
		}
	})

	t.Run("rejects start date without end date", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		_, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			StartDate:  time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domainerror.ErrInvalidPeriodDates) {
			t.Errorf("expected ErrInvalidPeriodDates, got %v", err)
		}
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		_, err := uc.Execute(ctx, CreatePeriodInput{PeriodType: entity.PeriodType("quarterly")})
		if !errors.Is(err, domainerror.ErrInvalidPeriodType) {
			t.Errorf("expected ErrInvalidPeriodType, got %v", err)
		}
	})

	t.Run("rejects end before start", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		_, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			StartDate:  time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domainerror.ErrInvalidPeriodDates) {
			t.Errorf("expected ErrInvalidPeriodDates, got %v", err)
		}
	})

	t.Run("single-day period is allowed", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeWeekly,
			StartDate:  day,
			EndDate:    day,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects overlap with an active period", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		_, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			StartDate:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			StartDate:  time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domainerror.ErrPeriodOverlap) {
			t.Errorf("expected ErrPeriodOverlap, got %v", err)
		}
	})

	t.Run("overlap with an inactive period is allowed", func(t *testing.T) {
		repo := newFakePeriodRepository()
		uc := NewCreatePeriodUseCase(repo)

		created, err := uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			StartDate:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		created.Period.IsActive = false
		if err := repo.Update(ctx, created.Period); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.Execute(ctx, CreatePeriodInput{
			PeriodType: entity.PeriodTypeMonthly,
			StartDate:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
