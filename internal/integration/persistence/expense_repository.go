// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Insert persists a new expense and returns the storage-assigned ID.
func (r *expenseRepository) Insert(ctx context.Context, expense *entity.Expense) (int64, error) {
	expenseModel := model.ExpenseFromEntity(expense)
	expenseModel.ID = 0 // the store assigns IDs, never the caller

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(expenseModel).Error
	})
	if err != nil {
		return 0, err
	}

	expense.ID = expenseModel.ID
	return expenseModel.ID, nil
}

// Delete removes an expense by ID. Deleting an absent ID is not an error;
// the return value reports whether a row existed.
func (r *expenseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.ExpenseModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Update replaces the mutable fields of an existing expense in a single
// transaction. The existence check and the write share the transaction, so
// a concurrent delete rolls the whole call back to "not found".
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) (bool, error) {
	var updated bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ExpenseModel
		if err := tx.First(&existing, expense.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Save(model.ExpenseFromEntity(expense)).Error; err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id int64) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).First(&expenseModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByDateRange retrieves all expenses within the inclusive date range,
// ordered by date ascending with ID as the stable secondary key.
func (r *expenseRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(expenseModels), nil
}

// FindAll retrieves the entire ledger in date/ID order.
func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Order("date ASC, id ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(expenseModels), nil
}

// InsertBatch persists a set of expenses in one transaction. Any failure
// rolls back the whole batch.
func (r *expenseRepository) InsertBatch(ctx context.Context, expenses []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, expense := range expenses {
			expenseModel := model.ExpenseFromEntity(expense)
			expenseModel.ID = 0
			if err := tx.Create(expenseModel).Error; err != nil {
				return err
			}
			expense.ID = expenseModel.ID
		}
		return nil
	})
}

// DeleteAll removes every expense from the ledger.
func (r *expenseRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("1 = 1").Delete(&model.ExpenseModel{}).Error
	})
}

func toEntities(expenseModels []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses
}
