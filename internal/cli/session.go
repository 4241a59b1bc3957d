package cli

import (
	"fmt"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/application/adapter"
	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	"github.com/expense-ledger/backend/internal/application/usecase/report"
	"github.com/expense-ledger/backend/internal/infra/db"
	"github.com/expense-ledger/backend/internal/integration/persistence"
	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// session bundles an open ledger connection with the use cases a command
// needs. Each CLI invocation opens one session and closes it on exit.
type session struct {
	database *db.Database

	Add    *expense.AddExpenseUseCase
	Get    *expense.GetExpenseUseCase
	List   *expense.ListExpensesUseCase
	Edit   *expense.EditExpenseUseCase
	Remove *expense.RemoveExpenseUseCase
	Erase  *expense.EraseLedgerUseCase
	Import *expense.ImportCSVUseCase
	Export *expense.ExportCSVUseCase
	Report *report.BuildReportUseCase
}

// openSession loads configuration, connects to the ledger database and
// wires the use cases.
func openSession(opts *RootOptions) (*session, error) {
	cfg, err := config.LoadWithFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	if err := database.AutoMigrate(&model.ExpenseModel{}); err != nil {
		_ = database.Close()
		return nil, err
	}

	var repo adapter.ExpenseRepository = persistence.NewExpenseRepository(database.DB())

	return &session{
		database: database,
		Add:      expense.NewAddExpenseUseCase(repo),
		Get:      expense.NewGetExpenseUseCase(repo),
		List:     expense.NewListExpensesUseCase(repo),
		Edit:     expense.NewEditExpenseUseCase(repo),
		Remove:   expense.NewRemoveExpenseUseCase(repo),
		Erase:    expense.NewEraseLedgerUseCase(repo),
		Import:   expense.NewImportCSVUseCase(repo),
		Export:   expense.NewExportCSVUseCase(repo),
		Report:   report.NewBuildReportUseCase(repo),
	}, nil
}

// Close releases the database connection.
func (s *session) Close() error {
	return s.database.Close()
}
