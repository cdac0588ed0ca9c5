// Package charts contains read-only chart projections over the transaction store.
package charts

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// DefaultTrendMonths caps the monthly trend at the most recent months when no
// explicit date window is given.
const DefaultTrendMonths = 12

// GetMonthlyTrendInput represents the input for the monthly trend chart.
type GetMonthlyTrendInput struct {
	Window entity.DateWindow
}

// GetMonthlyTrendOutput represents the output of the monthly trend chart,
// chronologically ascending.
type GetMonthlyTrendOutput struct {
	Trend []adapter.MonthlyTrendRow
}

// GetMonthlyTrendUseCase sums income and expense per calendar month. The
// store computes newest-first so the recency cap applies; the output is
// reversed to chronological order.
type GetMonthlyTrendUseCase struct {
	chartRepo adapter.ChartRepository
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(chartRepo adapter.ChartRepository) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		chartRepo: chartRepo,
	}
}

// Execute computes the monthly trend.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, input GetMonthlyTrendInput) (*GetMonthlyTrendOutput, error) {
	limit := 0
	if input.Window.IsZero() {
		limit = DefaultTrendMonths
	}

	trend, err := uc.chartRepo.GetMonthlyTrend(ctx, input.Window, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly trend: %w", err)
	}

	for i, j := 0, len(trend)-1; i < j; i, j = i+1, j-1 {
		trend[i], trend[j] = trend[j], trend[i]
	}

	return &GetMonthlyTrendOutput{
		Trend: trend,
	}, nil
}
