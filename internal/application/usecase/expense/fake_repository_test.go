// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"sort"
	"time"

	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

// fakeExpenseRepository is an in-memory adapter.ExpenseRepository for
// use case tests. IDs are assigned sequentially and never reused.
type fakeExpenseRepository struct {
	nextID   int64
	expenses map[int64]entity.Expense
	failWith error
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{
		nextID:   1,
		expenses: make(map[int64]entity.Expense),
	}
}

func (r *fakeExpenseRepository) Insert(_ context.Context, expense *entity.Expense) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	expense.ID = r.nextID
	r.nextID++
	r.expenses[expense.ID] = *expense
	return expense.ID, nil
}

func (r *fakeExpenseRepository) Delete(_ context.Context, id int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if _, ok := r.expenses[id]; !ok {
		return false, nil
	}
	delete(r.expenses, id)
	return true, nil
}

func (r *fakeExpenseRepository) Update(_ context.Context, expense *entity.Expense) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if _, ok := r.expenses[expense.ID]; !ok {
		return false, nil
	}
	r.expenses[expense.ID] = *expense
	return true, nil
}

func (r *fakeExpenseRepository) FindByID(_ context.Context, id int64) (*entity.Expense, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	expense, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return &expense, nil
}

func (r *fakeExpenseRepository) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Expense, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var result []*entity.Expense
	for _, expense := range r.expenses {
		if expense.Date.Before(start) || expense.Date.After(end) {
			continue
		}
		e := expense
		result = append(result, &e)
	}
	sortExpenses(result)
	return result, nil
}

func (r *fakeExpenseRepository) FindAll(_ context.Context) ([]*entity.Expense, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var result []*entity.Expense
	for _, expense := range r.expenses {
		e := expense
		result = append(result, &e)
	}
	sortExpenses(result)
	return result, nil
}

func (r *fakeExpenseRepository) InsertBatch(ctx context.Context, expenses []*entity.Expense) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, expense := range expenses {
		if _, err := r.Insert(ctx, expense); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeExpenseRepository) DeleteAll(_ context.Context) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.expenses = make(map[int64]entity.Expense)
	return nil
}

func sortExpenses(expenses []*entity.Expense) {
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.Before(expenses[j].Date)
		}
		return expenses[i].ID < expenses[j].ID
	})
}
