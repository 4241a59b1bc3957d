// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/domain/entity"
	domainerror "github.com/expense-ledger/backend/internal/domain/error"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

const dateLayout = "2006-01-02"

func newTestRepository(t *testing.T) adapter.ExpenseRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.ExpenseModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewExpenseRepository(db)
}

func testExpense(t *testing.T, date, amount, category, justification string) *entity.Expense {
	t.Helper()
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return entity.NewExpense(parsed, decimal.RequireFromString(amount), category, justification)
}

func TestExpenseRepository_Insert(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	t.Run("assigns sequential ids", func(t *testing.T) {
		first, err := repo.Insert(ctx, testExpense(t, "2024-01-01", "10.00", "food", "lunch"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := repo.Insert(ctx, testExpense(t, "2024-01-02", "5.00", "food", ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == 0 || second <= first {
			t.Errorf("expected increasing ids, got %d then %d", first, second)
		}
	})

	t.Run("ignores a caller-supplied id", func(t *testing.T) {
		expense := testExpense(t, "2024-01-03", "1.00", "misc", "")
		expense.ID = 9999

		id, err := repo.Insert(ctx, expense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == 9999 {
			t.Error("expected the store to assign its own id")
		}
		if expense.ID != id {
			t.Errorf("expected the entity id to be back-filled to %d, got %d", id, expense.ID)
		}
	})

	t.Run("does not reuse the id of a deleted row", func(t *testing.T) {
		repo := newTestRepository(t)

		id, err := repo.Insert(ctx, testExpense(t, "2024-01-01", "10.00", "food", ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Delete(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		next, err := repo.Insert(ctx, testExpense(t, "2024-01-02", "5.00", "food", ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next <= id {
			t.Errorf("expected a fresh id after delete, got %d after %d", next, id)
		}
	})
}

func TestExpenseRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	id, err := repo.Insert(ctx, testExpense(t, "2024-01-01", "10.00", "food", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	removed, err := repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Error("expected delete of an existing row to report true")
	}

	// Absent ids are not an error.
	removed, err = repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("expected delete of an absent row to report false")
	}

	if _, err := repo.FindByID(ctx, id); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound after delete, got %v", err)
	}
}

func TestExpenseRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces every mutable field", func(t *testing.T) {
		repo := newTestRepository(t)
		expense := testExpense(t, "2024-01-01", "10.00", "food", "lunch")
		id, err := repo.Insert(ctx, expense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		replacement := testExpense(t, "2024-02-15", "-3.50", "refund", "")
		replacement.ID = id
		updated, err := repo.Update(ctx, replacement)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated {
			t.Fatal("expected update of an existing row to report true")
		}

		stored, err := repo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Date.Format(dateLayout) != "2024-02-15" {
			t.Errorf("expected date 2024-02-15, got %s", stored.Date.Format(dateLayout))
		}
		if stored.Amount.StringFixed(2) != "-3.50" {
			t.Errorf("expected amount -3.50, got %s", stored.Amount.StringFixed(2))
		}
		if stored.Category != "refund" || stored.Justification != "" {
			t.Errorf("expected a full replacement, got %+v", stored)
		}
	})

	t.Run("absent id reports false", func(t *testing.T) {
		repo := newTestRepository(t)
		ghost := testExpense(t, "2024-01-01", "1.00", "misc", "")
		ghost.ID = 42

		updated, err := repo.Update(ctx, ghost)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated {
			t.Error("expected update of an absent row to report false")
		}
	})
}

func TestExpenseRepository_FindByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	seed := []*entity.Expense{
		testExpense(t, "2024-01-31", "4.00", "c", ""),
		testExpense(t, "2024-01-01", "1.00", "a", ""),
		testExpense(t, "2024-02-01", "8.00", "d", ""),
		testExpense(t, "2024-01-01", "2.00", "b", ""),
		testExpense(t, "2023-12-31", "16.00", "e", ""),
	}
	for _, expense := range seed {
		if _, err := repo.Insert(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	start, _ := time.Parse(dateLayout, "2024-01-01")
	end, _ := time.Parse(dateLayout, "2024-01-31")
	got, err := repo.FindByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bounds are inclusive; order is date ascending with id as tie-breaker.
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Date.Format(dateLayout) != "2024-01-01" || got[1].Date.Format(dateLayout) != "2024-01-01" {
		t.Errorf("expected the two 2024-01-01 entries first, got %s and %s",
			got[0].Date.Format(dateLayout), got[1].Date.Format(dateLayout))
	}
	if got[0].ID >= got[1].ID {
		t.Errorf("expected id order on equal dates, got %d before %d", got[0].ID, got[1].ID)
	}
	if got[2].Category != "c" {
		t.Errorf("expected the 2024-01-31 entry last, got %q", got[2].Category)
	}
}

func TestExpenseRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	if _, err := repo.Insert(ctx, testExpense(t, "2024-03-01", "1.00", "late", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Insert(ctx, testExpense(t, "2024-01-01", "2.00", "early", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Category != "early" || got[1].Category != "late" {
		t.Errorf("expected date order, got %q then %q", got[0].Category, got[1].Category)
	}
}

func TestExpenseRepository_InsertBatch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	batch := []*entity.Expense{
		testExpense(t, "2024-01-01", "1.00", "a", ""),
		testExpense(t, "2024-01-02", "2.00", "b", ""),
		testExpense(t, "2024-01-03", "4.00", "c", ""),
	}
	if err := repo.InsertBatch(ctx, batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, expense := range batch {
		if expense.ID == 0 {
			t.Errorf("entry %d: expected a back-filled id", i)
		}
	}

	got, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 entries, got %d", len(got))
	}
}

func TestExpenseRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	if _, err := repo.Insert(ctx, testExpense(t, "2024-01-01", "1.00", "a", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Insert(ctx, testExpense(t, "2024-01-02", "2.00", "b", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected an empty ledger, got %d entries", len(got))
	}

	// Erasing an already empty ledger succeeds.
	if err := repo.DeleteAll(ctx); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
