// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// ExpenseBreakdownItemResponse is one category slice of the expense breakdown.
type ExpenseBreakdownItemResponse struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

// ExpenseBreakdownResponse represents the response for the expense breakdown chart.
type ExpenseBreakdownResponse struct {
	Breakdown []ExpenseBreakdownItemResponse `json:"breakdown"`
}

// MonthlyTrendItemResponse is one month of the monthly trend chart.
type MonthlyTrendItemResponse struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyTrendResponse represents the response for the monthly trend chart,
// chronologically ascending.
type MonthlyTrendResponse struct {
	Trend []MonthlyTrendItemResponse `json:"trend"`
}

// IncomeExpenseResponse represents the income vs. expense totals.
type IncomeExpenseResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// ToExpenseBreakdownResponse converts breakdown rows to an ExpenseBreakdownResponse.
func ToExpenseBreakdownResponse(rows []adapter.ExpenseBreakdownRow) ExpenseBreakdownResponse {
	breakdown := make([]ExpenseBreakdownItemResponse, len(rows))
	for i, row := range rows {
		breakdown[i] = ExpenseBreakdownItemResponse{
			CategoryID:   row.CategoryID.String(),
			CategoryName: row.CategoryName,
			Total:        row.Total.InexactFloat64(),
		}
	}
	return ExpenseBreakdownResponse{
		Breakdown: breakdown,
	}
}

// ToMonthlyTrendResponse converts trend rows to a MonthlyTrendResponse.
func ToMonthlyTrendResponse(rows []adapter.MonthlyTrendRow) MonthlyTrendResponse {
	trend := make([]MonthlyTrendItemResponse, len(rows))
	for i, row := range rows {
		trend[i] = MonthlyTrendItemResponse{
			Month:   row.Month,
			Income:  row.Income.InexactFloat64(),
			Expense: row.Expense.InexactFloat64(),
		}
	}
	return MonthlyTrendResponse{
		Trend: trend,
	}
}

// ToIncomeExpenseResponse converts the two totals to an IncomeExpenseResponse.
func ToIncomeExpenseResponse(income, expense decimal.Decimal) IncomeExpenseResponse {
	return IncomeExpenseResponse{
		Income:  income.InexactFloat64(),
		Expense: expense.InexactFloat64(),
	}
}
