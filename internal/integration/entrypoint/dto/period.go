// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreatePeriodRequest represents the request body for period creation. When
// both dates are omitted the natural bounds for the period type are used.
type CreatePeriodRequest struct {
	PeriodType string  `json:"period_type" binding:"required,oneof=weekly monthly yearly"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`
}

// UpdatePeriodRequest represents the request body for period update.
type UpdatePeriodRequest struct {
	PeriodType *string `json:"period_type,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// UpdatePeriodBudgetsRequest is the bulk override-limit update body.
type UpdatePeriodBudgetsRequest struct {
	Budgets []PeriodBudgetUpdateRequest `json:"budgets" binding:"required,min=1,dive"`
}

// PeriodBudgetUpdateRequest is one override-limit change within a bulk update.
type PeriodBudgetUpdateRequest struct {
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	BudgetLimit float64 `json:"budget_limit" binding:"gte=0"`
}

// PeriodResponse represents a single budget period in API responses.
type PeriodResponse struct {
	ID         string    `json:"id"`
	PeriodType string    `json:"period_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// PeriodListResponse represents the response for listing periods.
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// CurrentPeriodResponse wraps the current-period lookup; Period is null when
// no active period contains today.
type CurrentPeriodResponse struct {
	Period *PeriodResponse `json:"period"`
}

// PeriodBudgetResponse represents one override row in API responses.
type PeriodBudgetResponse struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	BudgetLimit  float64 `json:"budget_limit"`
}

// PeriodBudgetListResponse represents the response for listing a period's overrides.
type PeriodBudgetListResponse struct {
	PeriodID string                 `json:"period_id"`
	Budgets  []PeriodBudgetResponse `json:"budgets"`
}

// UpdatePeriodBudgetsResponse reports the number of override rows changed.
type UpdatePeriodBudgetsResponse struct {
	Updated int `json:"updated"`
}

// ToPeriodResponse converts a domain BudgetPeriod entity to a PeriodResponse DTO.
func ToPeriodResponse(p *entity.BudgetPeriod) PeriodResponse {
	return PeriodResponse{
		ID:         p.ID.String(),
		PeriodType: string(p.PeriodType),
		StartDate:  p.StartDate.Format("2006-01-02"),
		EndDate:    p.EndDate.Format("2006-01-02"),
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
	}
}

// ToPeriodListResponse converts a list of BudgetPeriod entities to a PeriodListResponse.
func ToPeriodListResponse(periods []*entity.BudgetPeriod) PeriodListResponse {
	responses := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		responses[i] = ToPeriodResponse(p)
	}
	return PeriodListResponse{
		Periods: responses,
	}
}

// ToPeriodBudgetListResponse converts joined override rows to a PeriodBudgetListResponse.
func ToPeriodBudgetListResponse(periodID string, rows []*entity.PeriodBudgetWithCategory) PeriodBudgetListResponse {
	budgets := make([]PeriodBudgetResponse, len(rows))
	for i, row := range rows {
		budgets[i] = PeriodBudgetResponse{
			ID:           row.Budget.ID.String(),
			CategoryID:   row.Budget.CategoryID.String(),
			CategoryName: row.CategoryName,
			BudgetLimit:  row.Budget.BudgetLimit.InexactFloat64(),
		}
	}
	return PeriodBudgetListResponse{
		PeriodID: periodID,
		Budgets:  budgets,
	}
}
