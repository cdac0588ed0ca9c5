// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single income or expense event.
type Transaction struct {
	ID          uuid.UUID
	Description string
	// Amount is always stored positive; direction is carried by Type.
	Amount     decimal.Decimal
	Type       TransactionType
	CategoryID *uuid.UUID // Optional, can be uncategorized
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *uuid.UUID,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory pairs a transaction with its category name for
// display. CategoryName is nil when the transaction is uncategorized.
type TransactionWithCategory struct {
	Transaction  *Transaction
	CategoryName *string
}
