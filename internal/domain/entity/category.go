// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// DefaultIncomeCategoryName is the seeded category that collects income
// transactions and is kept out of budget aggregates via ExcludeFromBudget.
const DefaultIncomeCategoryName = "Income"

// Category represents a named spending bucket with a default budget ceiling.
type Category struct {
	ID          uuid.UUID
	Name        string
	BudgetLimit decimal.Decimal
	// IsActive is the soft-delete flag; inactive categories stay out of
	// listings and summaries but keep their transaction history.
	IsActive bool
	// ExcludeFromBudget removes the category from budget summaries.
	ExcludeFromBudget bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCategory creates a new active Category entity.
func NewCategory(name string, budgetLimit decimal.Decimal, excludeFromBudget bool) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:                uuid.New(),
		Name:              name,
		BudgetLimit:       budgetLimit,
		IsActive:          true,
		ExcludeFromBudget: excludeFromBudget,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
