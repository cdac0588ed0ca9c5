// Package charts contains read-only chart projections over the transaction store.
package charts

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// fakeChartRepository serves canned rows and records the limit it was asked for.
type fakeChartRepository struct {
	trend      []adapter.MonthlyTrendRow
	typeTotals []adapter.TypeTotalRow

	gotLimit int
}

func (f *fakeChartRepository) GetExpenseBreakdown(_ context.Context, _ entity.DateWindow) ([]adapter.ExpenseBreakdownRow, error) {
	return nil, nil
}

func (f *fakeChartRepository) GetMonthlyTrend(_ context.Context, _ entity.DateWindow, limit int) ([]adapter.MonthlyTrendRow, error) {
	f.gotLimit = limit
	return f.trend, nil
}

func (f *fakeChartRepository) GetTypeTotals(_ context.Context, _ entity.DateWindow) ([]adapter.TypeTotalRow, error) {
	return f.typeTotals, nil
}

func TestGetMonthlyTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("reverses newest-first store order to chronological", func(t *testing.T) {
		repo := &fakeChartRepository{trend: []adapter.MonthlyTrendRow{
			{Month: "2026-03", Expense: decimal.NewFromInt(300)},
			{Month: "2026-02", Expense: decimal.NewFromInt(200)},
			{Month: "2026-01", Expense: decimal.NewFromInt(100)},
		}}

		output, err := NewGetMonthlyTrendUseCase(repo).Execute(ctx, GetMonthlyTrendInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		months := make([]string, len(output.Trend))
		for i, row := range output.Trend {
			months[i] = row.Month
		}
		want := []string{"2026-01", "2026-02", "2026-03"}
		for i := range want {
			if months[i] != want[i] {
				t.Fatalf("unexpected order %v, want %v", months, want)
			}
		}
	})

	t.Run("caps at twelve months without a window", func(t *testing.T) {
		repo := &fakeChartRepository{}

		if _, err := NewGetMonthlyTrendUseCase(repo).Execute(ctx, GetMonthlyTrendInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotLimit != DefaultTrendMonths {
			t.Errorf("expected limit %d, got %d", DefaultTrendMonths, repo.gotLimit)
		}
	})

	t.Run("no cap with an explicit window", func(t *testing.T) {
		repo := &fakeChartRepository{}
		start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

		_, err := NewGetMonthlyTrendUseCase(repo).Execute(ctx, GetMonthlyTrendInput{
			Window: entity.DateWindow{Start: &start},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotLimit != 0 {
			t.Errorf("expected no limit, got %d", repo.gotLimit)
		}
	})
}

func TestGetIncomeExpense(t *testing.T) {
	repo := &fakeChartRepository{typeTotals: []adapter.TypeTotalRow{
		{Type: entity.TransactionTypeIncome, Total: decimal.NewFromInt(3000)},
		{Type: entity.TransactionTypeExpense, Total: decimal.NewFromInt(1200)},
	}}

	output, err := NewGetIncomeExpenseUseCase(repo).Execute(context.Background(), GetIncomeExpenseInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Income.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("unexpected income %s", output.Income)
	}
	if !output.Expense.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("unexpected expense %s", output.Expense)
	}
}

func TestGetIncomeExpense_EmptyStore(t *testing.T) {
	repo := &fakeChartRepository{}

	output, err := NewGetIncomeExpenseUseCase(repo).Execute(context.Background(), GetIncomeExpenseInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Income.IsZero() || !output.Expense.IsZero() {
		t.Errorf("expected zero totals, got income %s expense %s", output.Income, output.Expense)
	}
}
