// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// BudgetPeriodModel represents the budget_periods table in the database.
type BudgetPeriodModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodType string    `gorm:"type:varchar(10);not null"`
	StartDate  time.Time `gorm:"not null;index"`
	EndDate    time.Time `gorm:"not null"`
	IsActive   bool      `gorm:"not null;default:true;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetPeriodModel.
func (BudgetPeriodModel) TableName() string {
	return "budget_periods"
}

// ToEntity converts a BudgetPeriodModel to a domain BudgetPeriod entity.
func (m *BudgetPeriodModel) ToEntity() *entity.BudgetPeriod {
	return &entity.BudgetPeriod{
		ID:         m.ID,
		PeriodType: entity.PeriodType(m.PeriodType),
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

// BudgetPeriodFromEntity creates a BudgetPeriodModel from a domain BudgetPeriod entity.
func BudgetPeriodFromEntity(period *entity.BudgetPeriod) *BudgetPeriodModel {
	return &BudgetPeriodModel{
		ID:         period.ID,
		PeriodType: string(period.PeriodType),
		StartDate:  period.StartDate,
		EndDate:    period.EndDate,
		IsActive:   period.IsActive,
		CreatedAt:  period.CreatedAt,
	}
}
