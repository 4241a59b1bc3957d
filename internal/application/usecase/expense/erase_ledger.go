// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-ledger/backend/internal/application/adapter"
)

// EraseLedgerUseCase removes every expense from the ledger.
type EraseLedgerUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewEraseLedgerUseCase creates a new EraseLedgerUseCase instance.
func NewEraseLedgerUseCase(expenseRepo adapter.ExpenseRepository) *EraseLedgerUseCase {
	return &EraseLedgerUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes all expenses. Erasing an already-empty ledger succeeds.
func (uc *EraseLedgerUseCase) Execute(ctx context.Context) error {
	if err := uc.expenseRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to erase ledger: %w", err)
	}
	return nil
}
