// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
)

// csvFieldCount is the number of fields per CSV row:
// date, amount, category, justification.
const csvFieldCount = 4

// ImportCSVInput represents the input for a CSV import.
type ImportCSVInput struct {
	Reader io.Reader
}

// ImportCSVOutput represents the output of a CSV import.
type ImportCSVOutput struct {
	Imported int
}

// ImportCSVUseCase appends the contents of a CSV stream to the ledger.
type ImportCSVUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(expenseRepo adapter.ExpenseRepository) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute parses and validates every row before any write, then inserts the
// whole batch in a single transaction. A failing row aborts the import with
// its row number and leaves the ledger unchanged.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) (*ImportCSVOutput, error) {
	reader := csv.NewReader(input.Reader)
	reader.FieldsPerRecord = csvFieldCount

	var expenses []*entity.Expense
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		date, err := parseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		amount, err := parseAmount(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		category, err := normalizeCategory(record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		expenses = append(expenses, entity.NewExpense(date, amount, category, record[3]))
	}

	if len(expenses) > 0 {
		if err := uc.expenseRepo.InsertBatch(ctx, expenses); err != nil {
			return nil, fmt.Errorf("failed to import expenses: %w", err)
		}
	}

	return &ImportCSVOutput{Imported: len(expenses)}, nil
}
