// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySummary is the derived per-category budget view: the applicable
// limit (period override or category default), the sums of matching
// transactions, and the remaining/percentage derivations.
type CategorySummary struct {
	CategoryID  uuid.UUID
	Name        string
	BudgetLimit decimal.Decimal
	Spent       decimal.Decimal
	// Income is informational only; it does not feed Remaining or Percentage.
	Income    decimal.Decimal
	Remaining decimal.Decimal
	// Percentage is spent/limit*100, or zero when the limit is zero.
	Percentage decimal.Decimal
}
