// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(50);not null"`
	BudgetLimit       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IsActive          bool            `gorm:"not null;default:true;index"`
	ExcludeFromBudget bool            `gorm:"not null;default:false"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:                m.ID,
		Name:              m.Name,
		BudgetLimit:       m.BudgetLimit,
		IsActive:          m.IsActive,
		ExcludeFromBudget: m.ExcludeFromBudget,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:                category.ID,
		Name:              category.Name,
		BudgetLimit:       category.BudgetLimit,
		IsActive:          category.IsActive,
		ExcludeFromBudget: category.ExcludeFromBudget,
		CreatedAt:         category.CreatedAt,
		UpdatedAt:         category.UpdatedAt,
	}
}
