// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
)

// AddExpenseInput carries the raw candidate fields for a new expense.
// Presentation layers pass fields as received; validation happens here,
// before any storage transaction begins.
type AddExpenseInput struct {
	Date          string
	Amount        string
	Category      string
	Justification string
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *ExpenseOutput
}

// ExpenseOutput is the validated, normalized view of a stored expense.
type ExpenseOutput struct {
	ID            int64
	Date          time.Time
	Amount        decimal.Decimal
	Category      string
	Justification string
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute validates the candidate fields and inserts the expense.
// Rules apply in order, first failure wins: date, amount, category.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}

	exp := entity.NewExpense(date, amount, category, input.Justification)

	id, err := uc.expenseRepo.Insert(ctx, exp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}

	return &AddExpenseOutput{
		Expense: &ExpenseOutput{
			ID:            id,
			Date:          exp.Date,
			Amount:        exp.Amount,
			Category:      exp.Category,
			Justification: exp.Justification,
		},
	}, nil
}
