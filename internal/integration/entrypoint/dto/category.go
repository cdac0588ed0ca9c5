// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=50"`
	BudgetLimit       float64 `json:"budget_limit" binding:"gte=0"`
	ExcludeFromBudget bool    `json:"exclude_from_budget"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name              *string  `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	BudgetLimit       *float64 `json:"budget_limit,omitempty" binding:"omitempty,gte=0"`
	IsActive          *bool    `json:"is_active,omitempty"`
	ExcludeFromBudget *bool    `json:"exclude_from_budget,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	BudgetLimit       float64   `json:"budget_limit"`
	IsActive          bool      `json:"is_active"`
	ExcludeFromBudget bool      `json:"exclude_from_budget"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// DeleteCategoryResponse reports whether deletion was a deactivation.
type DeleteCategoryResponse struct {
	SoftDeleted bool `json:"soft_deleted"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:                cat.ID.String(),
		Name:              cat.Name,
		BudgetLimit:       cat.BudgetLimit.InexactFloat64(),
		IsActive:          cat.IsActive,
		ExcludeFromBudget: cat.ExcludeFromBudget,
		CreatedAt:         cat.CreatedAt,
		UpdatedAt:         cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of Category entities to a CategoryListResponse.
func ToCategoryListResponse(cats []*entity.Category) CategoryListResponse {
	categories := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		categories[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
