// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	// HardDelete requests row removal even when transactions reference the
	// category; such a request is rejected with a conflict.
	HardDelete bool
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	// SoftDeleted is true when the category was deactivated instead of removed.
	SoftDeleted bool
}

// DeleteCategoryUseCase handles category deletion logic. A category with
// referencing transactions is soft-deleted (deactivated); only an
// unreferenced category is removed outright.
type DeleteCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	count, err := uc.transactionRepo.CountByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count referencing transactions: %w", err)
	}

	if count > 0 {
		if input.HardDelete {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				fmt.Sprintf("category is referenced by %d transactions", count),
				domainerror.ErrCategoryInUse,
			)
		}

		category.IsActive = false
		category.UpdatedAt = time.Now().UTC()
		if err := uc.categoryRepo.Update(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to deactivate category: %w", err)
		}

		return &DeleteCategoryOutput{SoftDeleted: true}, nil
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{SoftDeleted: false}, nil
}
