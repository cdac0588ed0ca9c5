// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ExpenseBreakdownRow is the expense total of one category.
type ExpenseBreakdownRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// MonthlyTrendRow is the income/expense totals of one calendar month.
type MonthlyTrendRow struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TypeTotalRow is the amount total of one transaction type.
type TypeTotalRow struct {
	Type  entity.TransactionType
	Total decimal.Decimal
}

// ChartRepository defines the read interface backing the chart projections.
type ChartRepository interface {
	// GetExpenseBreakdown sums expenses per category, descending by total.
	// Categories without expense transactions are omitted (inner join).
	GetExpenseBreakdown(ctx context.Context, window entity.DateWindow) ([]ExpenseBreakdownRow, error)

	// GetMonthlyTrend sums income and expense per calendar month, newest
	// month first, capped at limit rows when limit > 0.
	GetMonthlyTrend(ctx context.Context, window entity.DateWindow, limit int) ([]MonthlyTrendRow, error)

	// GetTypeTotals sums amounts per transaction type within the window.
	GetTypeTotals(ctx context.Context, window entity.DateWindow) ([]TypeTotalRow, error)
}
