// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// fakeTransactionCounter stubs the transaction repository with a fixed
// per-category count; only CountByCategory matters to deletion.
type fakeTransactionCounter struct {
	counts map[uuid.UUID]int64
}

func (f *fakeTransactionCounter) Create(_ context.Context, _ *entity.Transaction) error { return nil }
func (f *fakeTransactionCounter) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (f *fakeTransactionCounter) FindAll(_ context.Context, _ entity.DateWindow) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}
func (f *fakeTransactionCounter) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (f *fakeTransactionCounter) Delete(_ context.Context, _ uuid.UUID) error           { return nil }
func (f *fakeTransactionCounter) DeleteAll(_ context.Context) (int64, error)            { return 0, nil }
func (f *fakeTransactionCounter) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	return f.counts[categoryID], nil
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, txnCount int64) (*DeleteCategoryUseCase, *fakeCategoryRepository, uuid.UUID) {
		t.Helper()
		repo := newFakeCategoryRepository()
		created, err := NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{Name: "Groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counter := &fakeTransactionCounter{
			counts: map[uuid.UUID]int64{created.Category.ID: txnCount},
		}
		return NewDeleteCategoryUseCase(repo, counter), repo, created.Category.ID
	}

	t.Run("unreferenced category is removed", func(t *testing.T) {
		uc, repo, id := setup(t, 0)

		output, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.SoftDeleted {
			t.Error("expected hard delete of unreferenced category")
		}
		if _, err := repo.FindByID(ctx, id); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected category gone, got %v", err)
		}
	})

	t.Run("referenced category is deactivated", func(t *testing.T) {
		uc, repo, id := setup(t, 3)

		output, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.SoftDeleted {
			t.Error("expected soft delete of referenced category")
		}

		stored, err := repo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("expected category kept, got %v", err)
		}
		if stored.IsActive {
			t.Error("expected category deactivated")
		}
	})

	t.Run("hard delete of referenced category is refused", func(t *testing.T) {
		uc, repo, id := setup(t, 3)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: id, HardDelete: true})
		if !errors.Is(err, domainerror.ErrCategoryInUse) {
			t.Errorf("expected ErrCategoryInUse, got %v", err)
		}

		stored, err := repo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("expected category untouched, got %v", err)
		}
		if !stored.IsActive {
			t.Error("expected category still active after refused delete")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, _, _ := setup(t, 0)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: uuid.New()})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
