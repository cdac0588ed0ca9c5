// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// ClearTransactionsOutput represents the output of the clear-all operation.
type ClearTransactionsOutput struct {
	Deleted int64
}

// ClearTransactionsUseCase removes every transaction unconditionally.
type ClearTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewClearTransactionsUseCase creates a new ClearTransactionsUseCase instance.
func NewClearTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ClearTransactionsUseCase {
	return &ClearTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes every transaction and reports the count removed.
func (uc *ClearTransactionsUseCase) Execute(ctx context.Context) (*ClearTransactionsOutput, error) {
	deleted, err := uc.transactionRepo.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear transactions: %w", err)
	}

	return &ClearTransactionsOutput{
		Deleted: deleted,
	}, nil
}
