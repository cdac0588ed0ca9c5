// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// csvDateLayout is the date format used for exported transaction dates.
const csvDateLayout = "2006-01-02"

// ExportTransactionsOutput represents the output of the CSV export.
type ExportTransactionsOutput struct {
	Filename string
	Content  string
}

// ExportTransactionsUseCase dumps every transaction as CSV with the columns
// ID, Description, Amount, Type, Date, Category. Description and category are
// wrapped in double quotes; embedded quotes are not escaped.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute builds the CSV dump of all transactions.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context) (*ExportTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx, entity.DateWindow{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	var b strings.Builder
	b.WriteString("ID,Description,Amount,Type,Date,Category\n")

	for _, t := range transactions {
		categoryName := ""
		if t.CategoryName != nil {
			categoryName = *t.CategoryName
		}

		fmt.Fprintf(&b, "%s,\"%s\",%s,%s,%s,\"%s\"\n",
			t.Transaction.ID,
			t.Transaction.Description,
			t.Transaction.Amount.StringFixed(2),
			t.Transaction.Type,
			t.Transaction.Date.Format(csvDateLayout),
			categoryName,
		)
	}

	return &ExportTransactionsOutput{
		Filename: "transactions.csv",
		Content:  b.String(),
	}, nil
}
