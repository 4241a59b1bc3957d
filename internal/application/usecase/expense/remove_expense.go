// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-ledger/backend/internal/application/adapter"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// RemoveExpenseInput represents the input for expense removal.
type RemoveExpenseInput struct {
	ExpenseID int64
}

// RemoveExpenseOutput represents the output of expense removal.
type RemoveExpenseOutput struct {
	Removed bool
}

// RemoveExpenseUseCase handles expense removal logic.
type RemoveExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewRemoveExpenseUseCase creates a new RemoveExpenseUseCase instance.
func NewRemoveExpenseUseCase(expenseRepo adapter.ExpenseRepository) *RemoveExpenseUseCase {
	return &RemoveExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute removes the expense with the given ID. The store-level delete is
// idempotent; here a caller-named ID that does not exist is a usage error
// and reported as not found.
func (uc *RemoveExpenseUseCase) Execute(ctx context.Context, input RemoveExpenseInput) (*RemoveExpenseOutput, error) {
	removed, err := uc.expenseRepo.Delete(ctx, input.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	if !removed {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			fmt.Sprintf("expense %d not found", input.ExpenseID),
			domainerror.ErrExpenseNotFound,
		)
	}

	return &RemoveExpenseOutput{Removed: true}, nil
}
