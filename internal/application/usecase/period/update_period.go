// Package period contains budget-period-related use cases.
package period

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UpdatePeriodInput represents the input for period update.
// Nil fields are left unchanged.
type UpdatePeriodInput struct {
	PeriodID   uuid.UUID
	PeriodType *entity.PeriodType
	StartDate  *time.Time
	EndDate    *time.Time
	IsActive   *bool
}

// UpdatePeriodOutput represents the output of period update.
type UpdatePeriodOutput struct {
	Period *entity.BudgetPeriod
}

// UpdatePeriodUseCase handles period update logic. Overlap with other active
// periods is validated at creation only; updates, including reactivation, do
// not re-run the overlap check.
type UpdatePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewUpdatePeriodUseCase creates a new UpdatePeriodUseCase instance.
func NewUpdatePeriodUseCase(periodRepo adapter.PeriodRepository) *UpdatePeriodUseCase {
	return &UpdatePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute performs the period update.
func (uc *UpdatePeriodUseCase) Execute(ctx context.Context, input UpdatePeriodInput) (*UpdatePeriodOutput, error) {
	period, err := uc.periodRepo.FindByID(ctx, input.PeriodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPeriodNotFound) {
			return nil, domainerror.NewPeriodError(
				domainerror.ErrCodePeriodNotFound,
				"budget period not found",
				domainerror.ErrPeriodNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find period: %w", err)
	}

	if input.PeriodType != nil {
		if !isValidPeriodType(*input.PeriodType) {
			return nil, domainerror.NewPeriodError(
				domainerror.ErrCodeInvalidPeriodType,
				"period type must be 'weekly', 'monthly' or 'yearly'",
				domainerror.ErrInvalidPeriodType,
			)
		}
		period.PeriodType = *input.PeriodType
	}

	if input.StartDate != nil {
		period.StartDate = entity.TruncateToDay(*input.StartDate)
	}

	if input.EndDate != nil {
		period.EndDate = entity.TruncateToDay(*input.EndDate)
	}

	if period.EndDate.Before(period.StartDate) {
		return nil, domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriodDates,
			"end date must not precede start date",
			domainerror.ErrInvalidPeriodDates,
		)
	}

	if input.IsActive != nil {
		period.IsActive = *input.IsActive
	}

	if err := uc.periodRepo.Update(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to update period: %w", err)
	}

	return &UpdatePeriodOutput{
		Period: period,
	}, nil
}
