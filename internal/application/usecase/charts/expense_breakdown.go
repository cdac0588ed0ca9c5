// Package charts contains read-only chart projections over the transaction store.
package charts

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetExpenseBreakdownInput represents the input for the expense breakdown chart.
type GetExpenseBreakdownInput struct {
	Window entity.DateWindow
}

// GetExpenseBreakdownOutput represents the output of the expense breakdown chart.
type GetExpenseBreakdownOutput struct {
	Breakdown []adapter.ExpenseBreakdownRow
}

// GetExpenseBreakdownUseCase sums expenses per category, descending by total.
// Unlike the budget summary, categories with no expense transactions are
// omitted entirely.
type GetExpenseBreakdownUseCase struct {
	chartRepo adapter.ChartRepository
}

// NewGetExpenseBreakdownUseCase creates a new GetExpenseBreakdownUseCase instance.
func NewGetExpenseBreakdownUseCase(chartRepo adapter.ChartRepository) *GetExpenseBreakdownUseCase {
	return &GetExpenseBreakdownUseCase{
		chartRepo: chartRepo,
	}
}

// Execute computes the expense breakdown.
func (uc *GetExpenseBreakdownUseCase) Execute(ctx context.Context, input GetExpenseBreakdownInput) (*GetExpenseBreakdownOutput, error) {
	breakdown, err := uc.chartRepo.GetExpenseBreakdown(ctx, input.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expense breakdown: %w", err)
	}

	return &GetExpenseBreakdownOutput{
		Breakdown: breakdown,
	}, nil
}
