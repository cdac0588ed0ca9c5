// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// PeriodBudgetUpdate is one override-limit change in a bulk budget update.
type PeriodBudgetUpdate struct {
	CategoryID  uuid.UUID
	BudgetLimit decimal.Decimal
}

// PeriodRepository defines the interface for budget period persistence operations.
type PeriodRepository interface {
	// CreateWithSnapshot creates the period and snapshots every active
	// category's budget limit into override rows, all in one transaction.
	CreateWithSnapshot(ctx context.Context, period *entity.BudgetPeriod) error

	// FindByID retrieves a budget period by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetPeriod, error)

	// FindAll retrieves all budget periods, newest range first.
	FindAll(ctx context.Context) ([]*entity.BudgetPeriod, error)

	// FindCurrent returns the active period whose range contains the given
	// day, preferring the latest start date; nil when none matches.
	FindCurrent(ctx context.Context, on time.Time) (*entity.BudgetPeriod, error)

	// CountOverlappingActive counts active periods whose range overlaps
	// [start, end] by calendar day.
	CountOverlappingActive(ctx context.Context, start, end time.Time) (int64, error)

	// Update updates an existing budget period in the database.
	Update(ctx context.Context, period *entity.BudgetPeriod) error

	// Delete removes a period and cascades to its override rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindBudgets retrieves the override rows of a period with joined
	// category names, ordered by category name.
	FindBudgets(ctx context.Context, periodID uuid.UUID) ([]*entity.PeriodBudgetWithCategory, error)

	// UpdateBudgets applies override-limit changes for a period atomically;
	// a missing (period, category) row fails the whole batch.
	UpdateBudgets(ctx context.Context, periodID uuid.UUID, updates []PeriodBudgetUpdate) error
}
