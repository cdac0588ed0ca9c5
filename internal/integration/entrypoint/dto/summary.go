// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategorySummaryResponse represents one category's budget figures.
type CategorySummaryResponse struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	BudgetLimit float64 `json:"budget_limit"`
	Spent       float64 `json:"spent"`
	Income      float64 `json:"income"`
	Remaining   float64 `json:"remaining"`
	Percentage  float64 `json:"percentage"`
}

// BudgetSummaryResponse represents the response for the budget summary.
type BudgetSummaryResponse struct {
	Summaries []CategorySummaryResponse `json:"summaries"`
}

// ToBudgetSummaryResponse converts CategorySummary entities to a BudgetSummaryResponse.
func ToBudgetSummaryResponse(summaries []*entity.CategorySummary) BudgetSummaryResponse {
	responses := make([]CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = CategorySummaryResponse{
			CategoryID:  s.CategoryID.String(),
			Name:        s.Name,
			BudgetLimit: s.BudgetLimit.InexactFloat64(),
			Spent:       s.Spent.InexactFloat64(),
			Income:      s.Income.InexactFloat64(),
			Remaining:   s.Remaining.InexactFloat64(),
			Percentage:  s.Percentage.InexactFloat64(),
		}
	}
	return BudgetSummaryResponse{
		Summaries: responses,
	}
}
