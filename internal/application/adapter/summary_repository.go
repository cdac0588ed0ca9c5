// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryLimit is a budgetable category with its resolved limit: the period
// override when one exists for the requested period, else the category default.
type CategoryLimit struct {
	CategoryID  uuid.UUID
	Name        string
	BudgetLimit decimal.Decimal
}

// CategoryTotal is the summed transaction amount for one category and type
// within a window.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Type       entity.TransactionType
	Total      decimal.Decimal
}

// SummaryRepository defines the read interface backing the budget summary engine.
type SummaryRepository interface {
	// GetCategoryLimits returns every active, budgetable category with its
	// resolved limit. A periodID with no override rows silently falls back
	// to category defaults.
	GetCategoryLimits(ctx context.Context, periodID *uuid.UUID) ([]CategoryLimit, error)

	// GetCategoryTotals returns per-category, per-type amount sums for
	// transactions inside the optional calendar-day window.
	GetCategoryTotals(ctx context.Context, window entity.DateWindow) ([]CategoryTotal, error)
}
