// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/expense-ledger/backend/internal/application/adapter"
)

// ExportCSVInput represents the input for a CSV export.
type ExportCSVInput struct {
	Writer io.Writer
}

// ExportCSVOutput represents the output of a CSV export.
type ExportCSVOutput struct {
	Exported int
}

// ExportCSVUseCase writes the full ledger to a CSV stream, using the same
// headerless row format the import expects.
type ExportCSVUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(expenseRepo adapter.ExpenseRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute writes every expense in date/ID order.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	writer := csv.NewWriter(input.Writer)
	for _, exp := range expenses {
		record := []string{
			exp.Date.Format(DateLayout),
			exp.Amount.StringFixed(2),
			exp.Category,
			exp.Justification,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv output: %w", err)
	}

	return &ExportCSVOutput{Exported: len(expenses)}, nil
}
