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

func TestSummaryRepository_GetCategoryLimits(t *testing.T) {
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	periodRepo := NewPeriodRepository(db)
	repo := NewSummaryRepository(db)
	ctx := context.Background()

	food := entity.NewCategory("Food", decimal.NewFromInt(500), false)
	rent := entity.NewCategory("Rent", decimal.NewFromInt(900), false)
	income := entity.NewCategory("Income", decimal.Zero, true)
	inactive := entity.NewCategory("Old", decimal.NewFromInt(100), false)
	inactive.IsActive = false

	for _, c := range []*entity.Category{food, rent, income, inactive} {
		require.NoError(t, categoryRepo.Create(ctx, c))
	}

	t.Run("defaults without period", func(t *testing.T) {
		limits, err := repo.GetCategoryLimits(ctx, nil)
		require.NoError(t, err)
		// Excluded and inactive categories never appear.
		require.Len(t, limits, 2)
		assert.Equal(t, "Food", limits[0].Name)
		assert.True(t, limits[0].BudgetLimit.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, "Rent", limits[1].Name)
	})

	t.Run("period override replaces the default", func(t *testing.T) {
		period := entity.NewBudgetPeriod(entity.PeriodTypeMonthly, day(2026, time.March, 1), day(2026, time.March, 31))
		require.NoError(t, periodRepo.CreateWithSnapshot(ctx, period))

		// Tighten Food for this period only.
		require.NoError(t, db.Exec(
			"UPDATE period_category_budgets SET budget_limit = ? WHERE period_id = ? AND category_id = ?",
			decimal.NewFromInt(300), period.ID, food.ID,
		).Error)

		limits, err := repo.GetCategoryLimits(ctx, &period.ID)
		require.NoError(t, err)
		require.Len(t, limits, 2)
		assert.True(t, limits[0].BudgetLimit.Equal(decimal.NewFromInt(300)), "Food should use the override")
		assert.True(t, limits[1].BudgetLimit.Equal(decimal.NewFromInt(900)), "Rent keeps its snapshot value")

		// Category defaults are untouched by the override.
		stored, err := categoryRepo.FindByID(ctx, food.ID)
		require.NoError(t, err)
		assert.True(t, stored.BudgetLimit.Equal(decimal.NewFromInt(500)))
	})

	t.Run("category created after the snapshot falls back to its default", func(t *testing.T) {
		period := entity.NewBudgetPeriod(entity.PeriodTypeMonthly, day(2026, time.April, 1), day(2026, time.April, 30))
		require.NoError(t, periodRepo.CreateWithSnapshot(ctx, period))

		travel := entity.NewCategory("Travel", decimal.NewFromInt(200), false)
		require.NoError(t, categoryRepo.Create(ctx, travel))

		limits, err := repo.GetCategoryLimits(ctx, &period.ID)
		require.NoError(t, err)
		require.Len(t, limits, 3)
		assert.Equal(t, "Travel", limits[2].Name)
		assert.True(t, limits[2].BudgetLimit.Equal(decimal.NewFromInt(200)))
	})
}

func TestSummaryRepository_GetCategoryTotals(t *testing.T) {
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	transactionRepo := NewTransactionRepository(db)
	repo := NewSummaryRepository(db)
	ctx := context.Background()

	food := entity.NewCategory("Food", decimal.NewFromInt(500), false)
	require.NoError(t, categoryRepo.Create(ctx, food))

	mustCreate := func(description string, amount int64, txnType entity.TransactionType, date time.Time) {
		t.Helper()
		txn := entity.NewTransaction(description, decimal.NewFromInt(amount), txnType, &food.ID, date)
		require.NoError(t, transactionRepo.Create(ctx, txn))
	}

	mustCreate("groceries", 120, entity.TransactionTypeExpense, day(2026, time.March, 5))
	mustCreate("restaurant", 80, entity.TransactionTypeExpense, day(2026, time.March, 12))
	mustCreate("refund", 30, entity.TransactionTypeIncome, day(2026, time.March, 14))

	// Uncategorized rows never feed category totals.
	stray := entity.NewTransaction("stray", decimal.NewFromInt(999), entity.TransactionTypeExpense, nil, day(2026, time.March, 6))
	require.NoError(t, transactionRepo.Create(ctx, stray))

	t.Run("unwindowed", func(t *testing.T) {
		totals, err := repo.GetCategoryTotals(ctx, entity.DateWindow{})
		require.NoError(t, err)
		require.Len(t, totals, 2)

		byType := map[entity.TransactionType]decimal.Decimal{}
		for _, total := range totals {
			assert.Equal(t, food.ID, total.CategoryID)
			byType[total.Type] = total.Total
		}
		assert.True(t, byType[entity.TransactionTypeExpense].Equal(decimal.NewFromInt(200)))
		assert.True(t, byType[entity.TransactionTypeIncome].Equal(decimal.NewFromInt(30)))
	})

	t.Run("windowed", func(t *testing.T) {
		start := day(2026, time.March, 10)
		end := day(2026, time.March, 12)
		totals, err := repo.GetCategoryTotals(ctx, entity.DateWindow{Start: &start, End: &end})
		require.NoError(t, err)
		require.Len(t, totals, 1)
		assert.Equal(t, entity.TransactionTypeExpense, totals[0].Type)
		assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(80)))
	})
}
