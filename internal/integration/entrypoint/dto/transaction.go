// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required,min=1"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string `json:"category_id,omitempty"`
	Date        *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Date          *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"`
	CategoryID   *string   `json:"category_id,omitempty"`
	CategoryName *string   `json:"category_name,omitempty"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ClearTransactionsResponse reports the number of rows removed.
type ClearTransactionsResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	var categoryID *string
	if t.CategoryID != nil {
		id := t.CategoryID.String()
		categoryID = &id
	}

	return TransactionResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount.InexactFloat64(),
		Type:        string(t.Type),
		CategoryID:  categoryID,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionListResponse converts joined transaction rows to a TransactionListResponse.
func ToTransactionListResponse(rows []*entity.TransactionWithCategory) TransactionListResponse {
	transactions := make([]TransactionResponse, len(rows))
	for i, row := range rows {
		response := ToTransactionResponse(row.Transaction)
		response.CategoryName = row.CategoryName
		transactions[i] = response
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
