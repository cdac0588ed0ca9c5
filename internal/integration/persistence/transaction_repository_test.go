package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRepository_FindAll_Ordering(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	older := entity.NewTransaction("rent", decimal.NewFromInt(900), entity.TransactionTypeExpense, nil, day(2026, time.March, 1))
	newer := entity.NewTransaction("dinner", decimal.NewFromInt(40), entity.TransactionTypeExpense, nil, day(2026, time.March, 15))

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	rows, err := repo.FindAll(ctx, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "dinner", rows[0].Transaction.Description)
	assert.Equal(t, "rent", rows[1].Transaction.Description)
}

func TestTransactionRepository_FindAll_Window(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	// Stored with a time-of-day component; the window still matches whole days.
	inside := entity.NewTransaction("coffee", decimal.NewFromInt(4), entity.TransactionTypeExpense, nil,
		time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC))
	before := entity.NewTransaction("groceries", decimal.NewFromInt(60), entity.TransactionTypeExpense, nil, day(2026, time.March, 4))
	after := entity.NewTransaction("cinema", decimal.NewFromInt(15), entity.TransactionTypeExpense, nil, day(2026, time.March, 20))

	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, after))

	start := day(2026, time.March, 5)
	end := day(2026, time.March, 10)
	rows, err := repo.FindAll(ctx, entity.DateWindow{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "coffee", rows[0].Transaction.Description)
}

func TestTransactionRepository_FindAll_CategoryName(t *testing.T) {
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	food := entity.NewCategory("Food", decimal.NewFromInt(500), false)
	require.NoError(t, categoryRepo.Create(ctx, food))

	categorized := entity.NewTransaction("lunch", decimal.NewFromInt(12), entity.TransactionTypeExpense, &food.ID, day(2026, time.March, 2))
	uncategorized := entity.NewTransaction("misc", decimal.NewFromInt(5), entity.TransactionTypeExpense, nil, day(2026, time.March, 1))

	require.NoError(t, repo.Create(ctx, categorized))
	require.NoError(t, repo.Create(ctx, uncategorized))

	rows, err := repo.FindAll(ctx, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].CategoryName)
	assert.Equal(t, "Food", *rows[0].CategoryName)
	assert.Nil(t, rows[1].CategoryName)
}

func TestTransactionRepository_Update_ClearsCategory(t *testing.T) {
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	food := entity.NewCategory("Food", decimal.NewFromInt(500), false)
	require.NoError(t, categoryRepo.Create(ctx, food))

	txn := entity.NewTransaction("lunch", decimal.NewFromInt(12), entity.TransactionTypeExpense, &food.ID, day(2026, time.March, 2))
	require.NoError(t, repo.Create(ctx, txn))

	txn.CategoryID = nil
	require.NoError(t, repo.Update(ctx, txn))

	stored, err := repo.FindByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CategoryID)
}

func TestTransactionRepository_DeleteAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		txn := entity.NewTransaction("txn", decimal.NewFromInt(10), entity.TransactionTypeExpense, nil, day(2026, time.March, 1+i))
		require.NoError(t, repo.Create(ctx, txn))
	}

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	rows, err := repo.FindAll(ctx, entity.DateWindow{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTransactionRepository_CountByCategory(t *testing.T) {
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	food := entity.NewCategory("Food", decimal.NewFromInt(500), false)
	require.NoError(t, categoryRepo.Create(ctx, food))

	require.NoError(t, repo.Create(ctx,
		entity.NewTransaction("lunch", decimal.NewFromInt(12), entity.TransactionTypeExpense, &food.ID, day(2026, time.March, 2))))
	require.NoError(t, repo.Create(ctx,
		entity.NewTransaction("misc", decimal.NewFromInt(5), entity.TransactionTypeExpense, nil, day(2026, time.March, 1))))

	count, err := repo.CountByCategory(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
