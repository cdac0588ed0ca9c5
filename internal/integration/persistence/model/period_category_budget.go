// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// PeriodCategoryBudgetModel represents the period_category_budgets table in
// the database. One row exists per (period, category) pair.
type PeriodCategoryBudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PeriodID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_period_category"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_period_category"`
	BudgetLimit decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	// Relationships (not loaded by default, use Preload)
	Period   *BudgetPeriodModel `gorm:"foreignKey:PeriodID;references:ID;constraint:OnDelete:CASCADE"`
	Category *CategoryModel     `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PeriodCategoryBudgetModel.
func (PeriodCategoryBudgetModel) TableName() string {
	return "period_category_budgets"
}

// ToEntity converts a PeriodCategoryBudgetModel to a domain PeriodCategoryBudget entity.
func (m *PeriodCategoryBudgetModel) ToEntity() *entity.PeriodCategoryBudget {
	return &entity.PeriodCategoryBudget{
		ID:          m.ID,
		PeriodID:    m.PeriodID,
		CategoryID:  m.CategoryID,
		BudgetLimit: m.BudgetLimit,
	}
}

// PeriodCategoryBudgetFromEntity creates a PeriodCategoryBudgetModel from a
// domain PeriodCategoryBudget entity.
func PeriodCategoryBudgetFromEntity(budget *entity.PeriodCategoryBudget) *PeriodCategoryBudgetModel {
	return &PeriodCategoryBudgetModel{
		ID:          budget.ID,
		PeriodID:    budget.PeriodID,
		CategoryID:  budget.CategoryID,
		BudgetLimit: budget.BudgetLimit,
	}
}
