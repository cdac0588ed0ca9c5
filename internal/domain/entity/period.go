// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodType represents the length class of a budgeting period.
type PeriodType string

const (
	PeriodTypeWeekly  PeriodType = "weekly"
	PeriodTypeMonthly PeriodType = "monthly"
	PeriodTypeYearly  PeriodType = "yearly"
)

// BudgetPeriod represents a bounded date range against which category budgets
// can be overridden independently of their defaults. StartDate and EndDate are
// both inclusive calendar days.
type BudgetPeriod struct {
	ID         uuid.UUID
	PeriodType PeriodType
	StartDate  time.Time
	EndDate    time.Time
	IsActive   bool
	CreatedAt  time.Time
}

// NewBudgetPeriod creates a new active BudgetPeriod entity.
func NewBudgetPeriod(periodType PeriodType, startDate, endDate time.Time) *BudgetPeriod {
	return &BudgetPeriod{
		ID:         uuid.New(),
		PeriodType: periodType,
		StartDate:  startDate,
		EndDate:    endDate,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}
}

// PeriodCategoryBudget is a period-specific budget limit that replaces a
// category's default for summary purposes. One row exists per
// (period, category) pair, snapshotted at period creation.
type PeriodCategoryBudget struct {
	ID          uuid.UUID
	PeriodID    uuid.UUID
	CategoryID  uuid.UUID
	BudgetLimit decimal.Decimal
}

// NewPeriodCategoryBudget creates a new PeriodCategoryBudget entity.
func NewPeriodCategoryBudget(periodID, categoryID uuid.UUID, budgetLimit decimal.Decimal) *PeriodCategoryBudget {
	return &PeriodCategoryBudget{
		ID:          uuid.New(),
		PeriodID:    periodID,
		CategoryID:  categoryID,
		BudgetLimit: budgetLimit,
	}
}

// PeriodBudgetWithCategory pairs an override row with its category name for
// display.
type PeriodBudgetWithCategory struct {
	Budget       *PeriodCategoryBudget
	CategoryName string
}
