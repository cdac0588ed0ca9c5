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

func TestChartRepository_GetExpenseBreakdown(t *testing.T) {
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	transactionRepo := NewTransactionRepository(db)
	repo := NewChartRepository(db)
	ctx := context.Background()

	food := entity.NewCategory("Food", decimal.NewFromInt(500), false)
	rent := entity.NewCategory("Rent", decimal.NewFromInt(900), false)
	idle := entity.NewCategory("Idle", decimal.NewFromInt(50), false)
	for _, c := range []*entity.Category{food, rent, idle} {
		require.NoError(t, categoryRepo.Create(ctx, c))
	}

	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("groceries", decimal.NewFromInt(150), entity.TransactionTypeExpense, &food.ID, day(2026, time.March, 5))))
	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("rent", decimal.NewFromInt(900), entity.TransactionTypeExpense, &rent.ID, day(2026, time.March, 1))))
	// Income and uncategorized rows stay out of the breakdown.
	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("salary", decimal.NewFromInt(3000), entity.TransactionTypeIncome, &food.ID, day(2026, time.March, 25))))
	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("stray", decimal.NewFromInt(40), entity.TransactionTypeExpense, nil, day(2026, time.March, 6))))

	rows, err := repo.GetExpenseBreakdown(ctx, entity.DateWindow{})
	require.NoError(t, err)
	// Idle has no expenses and is omitted entirely.
	require.Len(t, rows, 2)
	assert.Equal(t, "Rent", rows[0].CategoryName)
	assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "Food", rows[1].CategoryName)
	assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(150)))
}

func TestChartRepository_GetMonthlyTrend(t *testing.T) {
	db := openTestDB(t)
	transactionRepo := NewTransactionRepository(db)
	repo := NewChartRepository(db)
	ctx := context.Background()

	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("january expense", decimal.NewFromInt(100), entity.TransactionTypeExpense, nil, day(2026, time.January, 10))))
	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("february expense", decimal.NewFromInt(200), entity.TransactionTypeExpense, nil, day(2026, time.February, 10))))
	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("february income", decimal.NewFromInt(500), entity.TransactionTypeIncome, nil, day(2026, time.February, 20))))

	t.Run("newest first, both sums per month", func(t *testing.T) {
		rows, err := repo.GetMonthlyTrend(ctx, entity.DateWindow{}, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "2026-02", rows[0].Month)
		assert.True(t, rows[0].Income.Equal(decimal.NewFromInt(500)))
		assert.True(t, rows[0].Expense.Equal(decimal.NewFromInt(200)))

		assert.Equal(t, "2026-01", rows[1].Month)
		assert.True(t, rows[1].Income.Equal(decimal.Zero))
		assert.True(t, rows[1].Expense.Equal(decimal.NewFromInt(100)))
	})

	t.Run("limit caps at the most recent months", func(t *testing.T) {
		rows, err := repo.GetMonthlyTrend(ctx, entity.DateWindow{}, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2026-02", rows[0].Month)
	})

	t.Run("window restricts the months", func(t *testing.T) {
		start := day(2026, time.January, 1)
		end := day(2026, time.January, 31)
		rows, err := repo.GetMonthlyTrend(ctx, entity.DateWindow{Start: &start, End: &end}, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2026-01", rows[0].Month)
	})
}

func TestChartRepository_GetTypeTotals(t *testing.T) {
	db := openTestDB(t)
	transactionRepo := NewTransactionRepository(db)
	repo := NewChartRepository(db)
	ctx := context.Background()

	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("salary", decimal.NewFromInt(3000), entity.TransactionTypeIncome, nil, day(2026, time.March, 1))))
	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("rent", decimal.NewFromInt(900), entity.TransactionTypeExpense, nil, day(2026, time.March, 2))))
	require.NoError(t, transactionRepo.Create(ctx,
		entity.NewTransaction("groceries", decimal.NewFromInt(100), entity.TransactionTypeExpense, nil, day(2026, time.March, 3))))

	rows, err := repo.GetTypeTotals(ctx, entity.DateWindow{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byType := map[entity.TransactionType]decimal.Decimal{}
	for _, row := range rows {
		byType[row.Type] = row.Total
	}
	assert.True(t, byType[entity.TransactionTypeIncome].Equal(decimal.NewFromInt(3000)))
	assert.True(t, byType[entity.TransactionTypeExpense].Equal(decimal.NewFromInt(1000)))
}
