// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses. Empty bounds
// list the whole ledger; otherwise both bounds are required and inclusive.
type ListExpensesInput struct {
	StartDate string
	EndDate   string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists expenses in date/ID order, bounded when a range is given.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var (
		entries []*entity.Expense
		err     error
	)

	if input.StartDate == "" && input.EndDate == "" {
		entries, err = uc.expenseRepo.FindAll(ctx)
	} else {
		startDate, parseErr := parseDate(input.StartDate)
		if parseErr != nil {
			return nil, parseErr
		}
		endDate, parseErr := parseDate(input.EndDate)
		if parseErr != nil {
			return nil, parseErr
		}
		entries, err = uc.expenseRepo.FindByDateRange(ctx, startDate, endDate)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*ExpenseOutput, len(entries))
	for i, e := range entries {
		expenses[i] = &ExpenseOutput{
			ID:            e.ID,
			Date:          e.Date,
			Amount:        e.Amount,
			Category:      e.Category,
			Justification: e.Justification,
		}
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
