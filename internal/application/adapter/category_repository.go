// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves categories ordered by name. Inactive categories are
	// included only when includeInactive is set.
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.Category, error)

	// ExistsByName checks case-insensitively whether a category with the given
	// name exists, optionally excluding one ID (for update self-checks).
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category row from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
