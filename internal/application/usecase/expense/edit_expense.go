// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-ledger/backend/internal/application/adapter"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// EditExpenseInput represents the input for expense update. Nil fields are
// left unchanged; provided fields are validated with the same rules as
// expense creation.
type EditExpenseInput struct {
	ExpenseID     int64
	Date          *string
	Amount        *string
	Category      *string
	Justification *string
}

// EditExpenseOutput represents the output of expense update.
type EditExpenseOutput struct {
	Expense *ExpenseOutput
}

// EditExpenseUseCase handles expense update logic.
type EditExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewEditExpenseUseCase creates a new EditExpenseUseCase instance.
func NewEditExpenseUseCase(expenseRepo adapter.ExpenseRepository) *EditExpenseUseCase {
	return &EditExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute validates the changed fields, merges them onto the stored row and
// replaces it in full. Validation happens before any storage write, so a
// rejected edit leaves the ledger unchanged.
func (uc *EditExpenseUseCase) Execute(ctx context.Context, input EditExpenseInput) (*EditExpenseOutput, error) {
	exp, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				fmt.Sprintf("expense %d not found", input.ExpenseID),
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		exp.Date = date
	}

	if input.Amount != nil {
		amount, err := parseAmount(*input.Amount)
		if err != nil {
			return nil, err
		}
		exp.Amount = amount
	}

	if input.Category != nil {
		category, err := normalizeCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		exp.Category = category
	}

	if input.Justification != nil {
		exp.Justification = *input.Justification
	}

	updated, err := uc.expenseRepo.Update(ctx, exp)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	// The row can disappear between the read and the write when a
	// concurrent remove wins the race; the loser observes not found.
	if !updated {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			fmt.Sprintf("expense %d not found", input.ExpenseID),
			domainerror.ErrExpenseNotFound,
		)
	}

	return &EditExpenseOutput{
		Expense: &ExpenseOutput{
			ID:            exp.ID,
			Date:          exp.Date,
			Amount:        exp.Amount,
			Category:      exp.Category,
			Justification: exp.Justification,
		},
	}, nil
}
