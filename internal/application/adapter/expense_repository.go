// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"
	"time"

	"github.com/expense-ledger/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense ledger persistence.
// Every mutating call runs in its own storage transaction: commit on
// success, rollback on any error.
type ExpenseRepository interface {
	// Insert persists a new expense and returns the storage-assigned ID.
	Insert(ctx context.Context, expense *entity.Expense) (int64, error)

	// Delete removes an expense by ID. It reports whether a row existed;
	// deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// Update replaces the mutable fields of an existing expense. It reports
	// whether a row existed; updating an absent ID is not an error.
	Update(ctx context.Context, expense *entity.Expense) (bool, error)

	// FindByID retrieves an expense by ID. Returns ErrExpenseNotFound when
	// the ID is absent.
	FindByID(ctx context.Context, id int64) (*entity.Expense, error)

	// FindByDateRange retrieves all expenses with start <= date <= end,
	// ordered by date ascending then ID ascending.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error)

	// FindAll retrieves the entire ledger, ordered by date ascending then
	// ID ascending.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// InsertBatch persists a set of expenses in a single transaction.
	InsertBatch(ctx context.Context, expenses []*entity.Expense) error

	// DeleteAll removes every expense from the ledger.
	DeleteAll(ctx context.Context) error
}
