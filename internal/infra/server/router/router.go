// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/expense-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	expenseController *controller.ExpenseController
	reportController  *controller.ReportController
	writeRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// The rate limiter may be nil when Redis is not configured.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		expenseController: expenseController,
		reportController:  reportController,
		writeRateLimiter:  writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		expenses := v1.Group("/expenses")
		if r.writeRateLimiter != nil {
			expenses.Use(r.writeRateLimiter.Middleware())
		}
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Add)
			expenses.GET("/export", r.expenseController.Export)
			expenses.POST("/import", r.expenseController.Import)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.PATCH("/:id", r.expenseController.Edit)
			expenses.DELETE("/:id", r.expenseController.Remove)
			expenses.DELETE("", r.expenseController.Erase)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("", r.reportController.Get)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
