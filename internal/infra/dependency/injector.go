// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-ledger/backend/config"
	"github.com/expense-ledger/backend/internal/application/usecase/expense"
	"github.com/expense-ledger/backend/internal/application/usecase/report"
	"github.com/expense-ledger/backend/internal/infra/server/router"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector wires repositories, use cases, controllers and the router.
// redisClient may be nil; rate limiting is then disabled.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool, redisClient *redis.Client) *Injector {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)

	// Create use cases (the facade surface shared by HTTP and CLI)
	addUseCase := expense.NewAddExpenseUseCase(expenseRepo)
	getUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	listUseCase := expense.NewListExpensesUseCase(expenseRepo)
	editUseCase := expense.NewEditExpenseUseCase(expenseRepo)
	removeUseCase := expense.NewRemoveExpenseUseCase(expenseRepo)
	eraseUseCase := expense.NewEraseLedgerUseCase(expenseRepo)
	importUseCase := expense.NewImportCSVUseCase(expenseRepo)
	exportUseCase := expense.NewExportCSVUseCase(expenseRepo)
	buildReportUseCase := report.NewBuildReportUseCase(expenseRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	expenseController := controller.NewExpenseController(
		addUseCase,
		getUseCase,
		listUseCase,
		editUseCase,
		removeUseCase,
		eraseUseCase,
		importUseCase,
		exportUseCase,
	)
	reportController := controller.NewReportController(buildReportUseCase)

	// Create middleware
	var writeRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(
			redisClient,
			cfg.Redis.RateLimitRequests,
			cfg.Redis.RateLimitWindow,
		)
	}

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: router.NewRouter(healthController, expenseController, reportController, writeRateLimiter),
	}
}
