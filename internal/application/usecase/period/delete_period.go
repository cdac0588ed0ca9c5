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

// DeletePeriodInput represents the input for period deletion.
type DeletePeriodInput struct {
	PeriodID uuid.UUID
}

// DeletePeriodOutput represents the output of period deletion.
type DeletePeriodOutput struct {
	Success bool
}

// DeletePeriodUseCase handles period deletion; override rows are removed with
// their period.
type DeletePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewDeletePeriodUseCase creates a new DeletePeriodUseCase instance.
func NewDeletePeriodUseCase(periodRepo adapter.PeriodRepository) *DeletePeriodUseCase {
	return &DeletePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute performs the period deletion.
func (uc *DeletePeriodUseCase) Execute(ctx context.Context, input DeletePeriodInput) (*DeletePeriodOutput, error) {
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

	if err := uc.periodRepo.Delete(ctx, input.PeriodID); err != nil {
		return nil, fmt.Errorf("failed to delete period: %w", err)
	}

	return &DeletePeriodOutput{
		Success: true,
	}, nil
}
