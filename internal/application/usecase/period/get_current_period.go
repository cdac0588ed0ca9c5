// Package period contains budget-period-related use cases.
package period

import (
	"context"
	"fmt"
	"time"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetCurrentPeriodOutput represents the output of current-period resolution.
// Period is nil when no active period contains today.
type GetCurrentPeriodOutput struct {
	Period *entity.BudgetPeriod
}

// GetCurrentPeriodUseCase resolves the active period containing today's date,
// preferring the latest start date if more than one matches.
type GetCurrentPeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewGetCurrentPeriodUseCase creates a new GetCurrentPeriodUseCase instance.
func NewGetCurrentPeriodUseCase(periodRepo adapter.PeriodRepository) *GetCurrentPeriodUseCase {
	return &GetCurrentPeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute resolves the current period.
func (uc *GetCurrentPeriodUseCase) Execute(ctx context.Context) (*GetCurrentPeriodOutput, error) {
	period, err := uc.periodRepo.FindCurrent(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current period: %w", err)
	}

	return &GetCurrentPeriodOutput{
		Period: period,
	}, nil
}
