// Package charts contains read-only chart projections over the transaction store.
package charts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetIncomeExpenseInput represents the input for the income vs. expense totals.
type GetIncomeExpenseInput struct {
	Window entity.DateWindow
}

// GetIncomeExpenseOutput represents the income and expense totals within the window.
type GetIncomeExpenseOutput struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GetIncomeExpenseUseCase computes the two-row income/expense aggregate.
type GetIncomeExpenseUseCase struct {
	chartRepo adapter.ChartRepository
}

// NewGetIncomeExpenseUseCase creates a new GetIncomeExpenseUseCase instance.
func NewGetIncomeExpenseUseCase(chartRepo adapter.ChartRepository) *GetIncomeExpenseUseCase {
	return &GetIncomeExpenseUseCase{
		chartRepo: chartRepo,
	}
}

// Execute computes the income and expense totals.
func (uc *GetIncomeExpenseUseCase) Execute(ctx context.Context, input GetIncomeExpenseInput) (*GetIncomeExpenseOutput, error) {
	totals, err := uc.chartRepo.GetTypeTotals(ctx, input.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to compute income/expense totals: %w", err)
	}

	output := &GetIncomeExpenseOutput{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, total := range totals {
		switch total.Type {
		case entity.TransactionTypeIncome:
			output.Income = total.Total
		case entity.TransactionTypeExpense:
			output.Expense = total.Total
		}
	}

	return output, nil
}
