// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// GetCategoryLimits returns every active, budgetable category with its
// resolved limit: the period override when periodID is given and a row
// exists, else the category default. An unknown periodID joins nothing and
// falls back to defaults for every category.
func (r *summaryRepository) GetCategoryLimits(ctx context.Context, periodID *uuid.UUID) ([]adapter.CategoryLimit, error) {
	var rows []struct {
		CategoryID  uuid.UUID       `gorm:"column:category_id"`
		Name        string          `gorm:"column:name"`
		BudgetLimit decimal.Decimal `gorm:"column:budget_limit"`
	}

	var err error
	if periodID != nil {
		query := `
			SELECT
				c.id AS category_id,
				c.name AS name,
				COALESCE(pcb.budget_limit, c.budget_limit) AS budget_limit
			FROM categories c
			LEFT JOIN period_category_budgets pcb
				ON pcb.category_id = c.id AND pcb.period_id = ?
			WHERE c.is_active = ? AND c.exclude_from_budget = ?
			ORDER BY c.name ASC
		`
		err = r.db.WithContext(ctx).Raw(query, *periodID, true, false).Scan(&rows).Error
	} else {
		query := `
			SELECT
				c.id AS category_id,
				c.name AS name,
				c.budget_limit AS budget_limit
			FROM categories c
			WHERE c.is_active = ? AND c.exclude_from_budget = ?
			ORDER BY c.name ASC
		`
		err = r.db.WithContext(ctx).Raw(query, true, false).Scan(&rows).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category limits: %w", err)
	}

	limits := make([]adapter.CategoryLimit, len(rows))
	for i, row := range rows {
		limits[i] = adapter.CategoryLimit{
			CategoryID:  row.CategoryID,
			Name:        row.Name,
			BudgetLimit: row.BudgetLimit,
		}
	}
	return limits, nil
}

// GetCategoryTotals returns per-category, per-type amount sums for
// transactions inside the optional calendar-day window. Uncategorized
// transactions never contribute to category summaries.
func (r *summaryRepository) GetCategoryTotals(ctx context.Context, window entity.DateWindow) ([]adapter.CategoryTotal, error) {
	var rows []struct {
		CategoryID uuid.UUID       `gorm:"column:category_id"`
		Type       string          `gorm:"column:type"`
		Total      decimal.Decimal `gorm:"column:total"`
	}

	query := r.db.WithContext(ctx).
		Table("transactions").
		Select("category_id, type, SUM(amount) AS total").
		Where("category_id IS NOT NULL")
	query = applyDateWindow(query, "date", window)

	err := query.Group("category_id, type").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	totals := make([]adapter.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.CategoryTotal{
			CategoryID: row.CategoryID,
			Type:       entity.TransactionType(row.Type),
			Total:      row.Total,
		}
	}
	return totals, nil
}
