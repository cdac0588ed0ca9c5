// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves transactions newest-first, restricted to the optional
	// calendar-day window, with joined category names.
	FindAll(ctx context.Context, window entity.DateWindow) ([]*entity.TransactionWithCategory, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every transaction and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)

	// CountByCategory returns the number of transactions referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
