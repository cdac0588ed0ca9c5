// Package period contains budget-period-related use cases.
package period

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdatePeriodBudgetsInput represents the input for a bulk override update.
type UpdatePeriodBudgetsInput struct {
	PeriodID uuid.UUID
	Updates  []adapter.PeriodBudgetUpdate
}

// UpdatePeriodBudgetsOutput represents the output of a bulk override update.
type UpdatePeriodBudgetsOutput struct {
	Updated int
}

// UpdatePeriodBudgetsUseCase applies override-limit changes for a period as a
// single all-or-nothing batch.
type UpdatePeriodBudgetsUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewUpdatePeriodBudgetsUseCase creates a new UpdatePeriodBudgetsUseCase instance.
func NewUpdatePeriodBudgetsUseCase(periodRepo adapter.PeriodRepository) *UpdatePeriodBudgetsUseCase {
	return &UpdatePeriodBudgetsUseCase{
		periodRepo: periodRepo,
	}
}

// Execute performs the bulk override update.
func (uc *UpdatePeriodBudgetsUseCase) Execute(ctx context.Context, input UpdatePeriodBudgetsInput) (*UpdatePeriodBudgetsOutput, error) {
	if _, err := uc.periodRepo.FindByID(ctx, input.PeriodID); err != nil {
		if errors.Is(err, domainerror.ErrPeriodNotFound) {
			return nil, domainerror.NewPeriodError(
				domainerror.ErrCodePeriodNotFound,
				"budget period not found",
				domainerror.ErrPeriodNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find period: %w", err)
	}

	for _, update := range input.Updates {
		if update.BudgetLimit.IsNegative() {
			return nil, domainerror.NewPeriodError(
				domainerror.ErrCodeInvalidPeriodBudget,
				"budget limit must not be negative",
				domainerror.ErrInvalidBudgetLimit,
			)
		}
	}

	if err := uc.periodRepo.UpdateBudgets(ctx, input.PeriodID, input.Updates); err != nil {
		if errors.Is(err, domainerror.ErrPeriodBudgetNotFound) {
			return nil, domainerror.NewPeriodError(
				domainerror.ErrCodePeriodBudgetNotFound,
				"no budget override exists for one of the categories",
				domainerror.ErrPeriodBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to update period budgets: %w", err)
	}

	return &UpdatePeriodBudgetsOutput{
		Updated: len(input.Updates),
	}, nil
}
