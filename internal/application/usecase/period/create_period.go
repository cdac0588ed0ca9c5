// Package period contains budget-period-related use cases.
package period

import (
	"context"
	"fmt"
	"time"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// CreatePeriodInput represents the input for period creation. When both dates
// are zero the natural bounds for the period type are used; providing only
// one of them is rejected.
type CreatePeriodInput struct {
	PeriodType entity.PeriodType
	StartDate  time.Time
	EndDate    time.Time
}

// CreatePeriodOutput represents the output of period creation.
type CreatePeriodOutput struct {
	Period *entity.BudgetPeriod
}

// CreatePeriodUseCase handles budget period creation. On success every active
// category's budget limit is snapshotted into an override row for the new
// period, atomically with the period insert.
type CreatePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewCreatePeriodUseCase creates a new CreatePeriodUseCase instance.
func NewCreatePeriodUseCase(periodRepo adapter.PeriodRepository) *CreatePeriodUseCase {
	return &CreatePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute performs the period creation.
func (uc *CreatePeriodUseCase) Execute(ctx context.Context, input CreatePeriodInput) (*CreatePeriodOutput, error) {
	if !isValidPeriodType(input.PeriodType) {
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriodType,
			"period type must be 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidPeriodType,
		)
	}

	start, end := input.StartDate, input.EndDate
	if start.IsZero() != end.IsZero() {
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriodDates,
			"start date and end date must be provided together",
			domainerror.ErrInvalidPeriodDates,
		)
	}
	if start.IsZero() && end.IsZero() {
		var err error
		start, end, err = SuggestRange(input.PeriodType, time.Now().UTC())
		if err != nil {
			return nil, err
		}
	}

	start = entity.TruncateToDay(start)
	end = entity.TruncateToDay(end)

	if end.Before(start) {
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriodDates,
			"end date must not precede start date",
			domainerror.ErrInvalidPeriodDates,
		)
	}

	overlapping, err := uc.periodRepo.CountOverlappingActive(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check period overlap: %w", err)
	}
	if overlapping > 0 {
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodePeriodOverlap,
			"period overlaps an existing active period",
			domainerror.ErrPeriodOverlap,
		)
	}

	period := entity.NewBudgetPeriod(input.PeriodType, start, end)

	if err := uc.periodRepo.CreateWithSnapshot(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	return &CreatePeriodOutput{
		Period: period,
	}, nil
}
