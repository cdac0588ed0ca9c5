// Package period contains budget-period-related use cases.
package period

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// ListPeriodBudgetsInput represents the input for listing a period's overrides.
type ListPeriodBudgetsInput struct {
	PeriodID uuid.UUID
}

// ListPeriodBudgetsOutput represents the output of listing a period's overrides.
type ListPeriodBudgetsOutput struct {
	Budgets []*entity.PeriodBudgetWithCategory
}

// ListPeriodBudgetsUseCase handles listing the override rows of a period.
type ListPeriodBudgetsUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewListPeriodBudgetsUseCase creates a new ListPeriodBudgetsUseCase instance.
func NewListPeriodBudgetsUseCase(periodRepo adapter.PeriodRepository) *ListPeriodBudgetsUseCase {
	return &ListPeriodBudgetsUseCase{
		periodRepo: periodRepo,
	}
}

// Execute retrieves the override rows of the period with category names.
func (uc *ListPeriodBudgetsUseCase) Execute(ctx context.Context, input ListPeriodBudgetsInput) (*ListPeriodBudgetsOutput, error) {
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

	budgets, err := uc.periodRepo.FindBudgets(ctx, input.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list period budgets: %w", err)
	}

	return &ListPeriodBudgetsOutput{
		Budgets: budgets,
	}, nil
}
