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

// chartRepository implements the adapter.ChartRepository interface.
type chartRepository struct {
	db *gorm.DB
}

// NewChartRepository creates a new chart repository instance.
func NewChartRepository(db *gorm.DB) adapter.ChartRepository {
	return &chartRepository{
		db: db,
	}
}

// GetExpenseBreakdown sums expense amounts per category inside the optional
// window. The inner join drops categories with no matching transactions.
func (r *chartRepository) GetExpenseBreakdown(ctx context.Context, window entity.DateWindow) ([]adapter.ExpenseBreakdownRow, error) {
	var rows []struct {
		CategoryID   uuid.UUID       `gorm:"column:category_id"`
		CategoryName string          `gorm:"column:category_name"`
		Total        decimal.Decimal `gorm:"column:total"`
	}

	query := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("c.id AS category_id, c.name AS category_name, SUM(t.amount) AS total").
		Joins("INNER JOIN categories c ON c.id = t.category_id").
		Where("t.type = ?", string(entity.TransactionTypeExpense))
	query = applyDateWindow(query, "t.date", window)

	err := query.
		Group("c.id, c.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get expense breakdown: %w", err)
	}

	breakdown := make([]adapter.ExpenseBreakdownRow, len(rows))
	for i, row := range rows {
		breakdown[i] = adapter.ExpenseBreakdownRow{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        row.Total,
		}
	}
	return breakdown, nil
}

// monthExpression returns the SQL expression that formats a timestamp column
// as YYYY-MM for the connected dialect. Production runs on PostgreSQL while
// tests run on SQLite, and the two spell month truncation differently.
func (r *chartRepository) monthExpression(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("strftime('%%Y-%%m', %s)", column)
	}
	return fmt.Sprintf("to_char(%s, 'YYYY-MM')", column)
}

// GetMonthlyTrend sums income and expense per calendar month, newest month
// first. A positive limit caps the number of month rows returned.
func (r *chartRepository) GetMonthlyTrend(ctx context.Context, window entity.DateWindow, limit int) ([]adapter.MonthlyTrendRow, error) {
	var rows []struct {
		Month   string          `gorm:"column:month"`
		Income  decimal.Decimal `gorm:"column:income"`
		Expense decimal.Decimal `gorm:"column:expense"`
	}

	monthExpr := r.monthExpression("date")
	query := r.db.WithContext(ctx).
		Table("transactions").
		Select(fmt.Sprintf(
			"%s AS month, "+
				"SUM(CASE WHEN type = ? THEN amount ELSE 0 END) AS income, "+
				"SUM(CASE WHEN type = ? THEN amount ELSE 0 END) AS expense",
			monthExpr,
		), string(entity.TransactionTypeIncome), string(entity.TransactionTypeExpense))
	query = applyDateWindow(query, "date", window)
	query = query.
		Group(monthExpr).
		Order("month DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly trend: %w", err)
	}

	trend := make([]adapter.MonthlyTrendRow, len(rows))
	for i, row := range rows {
		trend[i] = adapter.MonthlyTrendRow{
			Month:   row.Month,
			Income:  row.Income,
			Expense: row.Expense,
		}
	}
	return trend, nil
}

// GetTypeTotals sums transaction amounts per type inside the optional window.
func (r *chartRepository) GetTypeTotals(ctx context.Context, window entity.DateWindow) ([]adapter.TypeTotalRow, error) {
	var rows []struct {
		Type  string          `gorm:"column:type"`
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := r.db.WithContext(ctx).
		Table("transactions").
		Select("type, SUM(amount) AS total")
	query = applyDateWindow(query, "date", window)

	err := query.Group("type").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get type totals: %w", err)
	}

	totals := make([]adapter.TypeTotalRow, len(rows))
	for i, row := range rows {
		totals[i] = adapter.TypeTotalRow{
			Type:  entity.TransactionType(row.Type),
			Total: row.Total,
		}
	}
	return totals, nil
}
