package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

func TestCategoryRepository_FindAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	groceries := entity.NewCategory("Groceries", decimal.NewFromInt(500), false)
	archived := entity.NewCategory("Archived", decimal.NewFromInt(100), false)
	archived.IsActive = false

	require.NoError(t, repo.Create(ctx, groceries))
	require.NoError(t, repo.Create(ctx, archived))

	t.Run("active only by default", func(t *testing.T) {
		categories, err := repo.FindAll(ctx, false)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Groceries", categories[0].Name)
	})

	t.Run("inactive included on request", func(t *testing.T) {
		categories, err := repo.FindAll(ctx, true)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		// Ordered by name.
		assert.Equal(t, "Archived", categories[0].Name)
		assert.Equal(t, "Groceries", categories[1].Name)
	})
}

func TestCategoryRepository_ExistsByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	groceries := entity.NewCategory("Groceries", decimal.NewFromInt(500), false)
	require.NoError(t, repo.Create(ctx, groceries))

	t.Run("match is case-insensitive", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "GROCERIES", nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("excluded ID does not count", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Groceries", &groceries.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unknown name", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, "Rent", nil)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCategoryRepository_FindByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	_, err := repo.FindByID(context.Background(), entity.NewCategory("x", decimal.Zero, false).ID)
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)
}

func TestCategoryRepository_UpdatePersistsFlags(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := entity.NewCategory("Salary", decimal.Zero, false)
	require.NoError(t, repo.Create(ctx, category))

	category.ExcludeFromBudget = true
	category.IsActive = false
	require.NoError(t, repo.Update(ctx, category))

	stored, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, stored.ExcludeFromBudget)
	assert.False(t, stored.IsActive)
}
