// Package period contains budget-period-related use cases.
package period

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListPeriodsOutput represents the output of listing periods.
type ListPeriodsOutput struct {
	Periods []*entity.BudgetPeriod
}

// ListPeriodsUseCase handles period listing logic.
type ListPeriodsUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewListPeriodsUseCase creates a new ListPeriodsUseCase instance.
func NewListPeriodsUseCase(periodRepo adapter.PeriodRepository) *ListPeriodsUseCase {
	return &ListPeriodsUseCase{
		periodRepo: periodRepo,
	}
}

// Execute retrieves all budget periods, newest range first.
func (uc *ListPeriodsUseCase) Execute(ctx context.Context) (*ListPeriodsOutput, error) {
	periods, err := uc.periodRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	return &ListPeriodsOutput{
		Periods: periods,
	}, nil
}
