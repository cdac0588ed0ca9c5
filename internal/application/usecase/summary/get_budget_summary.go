// Package summary contains the budget summary engine.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// GetBudgetSummaryInput represents the input for budget summary computation.
// PeriodID selects which budget limits apply; Window restricts which
// transactions are summed. The two axes are independent: selecting a period
// does not bound the transaction window to the period's own dates.
type GetBudgetSummaryInput struct {
	Window   entity.DateWindow
	PeriodID *uuid.UUID
}

// GetBudgetSummaryOutput represents the output of budget summary computation.
type GetBudgetSummaryOutput struct {
	Summaries []*entity.CategorySummary
}

// GetBudgetSummaryUseCase computes per-category spent/remaining/percentage
// figures for every active, budgetable category. Categories without matching
// transactions still appear with zero sums.
type GetBudgetSummaryUseCase struct {
	summaryRepo adapter.SummaryRepository
}

// NewGetBudgetSummaryUseCase creates a new GetBudgetSummaryUseCase instance.
func NewGetBudgetSummaryUseCase(summaryRepo adapter.SummaryRepository) *GetBudgetSummaryUseCase {
	return &GetBudgetSummaryUseCase{
		summaryRepo: summaryRepo,
	}
}

// Execute performs the budget summary computation.
func (uc *GetBudgetSummaryUseCase) Execute(ctx context.Context, input GetBudgetSummaryInput) (*GetBudgetSummaryOutput, error) {
	// An unknown period ID yields no override rows and silently falls back
	// to category defaults inside the repository.
	limits, err := uc.summaryRepo.GetCategoryLimits(ctx, input.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category limits: %w", err)
	}

	totals, err := uc.summaryRepo.GetCategoryTotals(ctx, input.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to load category totals: %w", err)
	}

	spentByCategory := make(map[uuid.UUID]decimal.Decimal)
	incomeByCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, total := range totals {
		switch total.Type {
		case entity.TransactionTypeExpense:
			spentByCategory[total.CategoryID] = total.Total
		case entity.TransactionTypeIncome:
			incomeByCategory[total.CategoryID] = total.Total
		}
	}

	summaries := make([]*entity.CategorySummary, len(limits))
	for i, limit := range limits {
		spent := spentByCategory[limit.CategoryID]
		income := incomeByCategory[limit.CategoryID]

		// Zero-limit categories always report 0%, whatever the spend.
		percentage := decimal.Zero
		if limit.BudgetLimit.IsPositive() {
			percentage = spent.Div(limit.BudgetLimit).Mul(oneHundred)
		}

		summaries[i] = &entity.CategorySummary{
			CategoryID:  limit.CategoryID,
			Name:        limit.Name,
			BudgetLimit: limit.BudgetLimit,
			Spent:       spent,
			Income:      income,
			Remaining:   limit.BudgetLimit.Sub(spent),
			Percentage:  percentage,
		}
	}

	return &GetBudgetSummaryOutput{
		Summaries: summaries,
	}, nil
}
