// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// defaultCategories is the starter set inserted into an empty database. The
// Income category collects income transactions and stays out of budget
// summaries.
var defaultCategories = []struct {
	Name              string
	BudgetLimit       int64
	ExcludeFromBudget bool
}{
	{Name: entity.DefaultIncomeCategoryName, BudgetLimit: 0, ExcludeFromBudget: true},
	{Name: "Groceries", BudgetLimit: 500, ExcludeFromBudget: false},
	{Name: "Transport", BudgetLimit: 150, ExcludeFromBudget: false},
	{Name: "Entertainment", BudgetLimit: 100, ExcludeFromBudget: false},
	{Name: "Utilities", BudgetLimit: 200, ExcludeFromBudget: false},
}

// SeedDefaultCategories inserts the starter categories when the categories
// table is empty. It is a no-op on a populated database.
func SeedDefaultCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	models := make([]*model.CategoryModel, len(defaultCategories))
	for i, c := range defaultCategories {
		category := entity.NewCategory(c.Name, decimal.NewFromInt(c.BudgetLimit), c.ExcludeFromBudget)
		models[i] = model.CategoryFromEntity(category)
	}

	if err := db.WithContext(ctx).Create(&models).Error; err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}
