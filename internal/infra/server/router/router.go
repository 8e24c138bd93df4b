// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger-reports/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger-reports/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	reportController *controller.ReportController
	rateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reportController *controller.ReportController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController: healthController,
		reportController: reportController,
		rateLimiter:      rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
// Rate limiting is disabled in the test environment.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes(environment != "test")

	return r.engine
}

// setupHealthRoutes configures health check routes.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the versioned report API.
func (r *Router) setupAPIRoutes(rateLimited bool) {
	v1 := r.engine.Group("/api/v1")
	if rateLimited && r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/accounts", r.reportController.AccountBalances)
		reports.GET("/categories", r.reportController.CategoryBalances)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/summary", r.reportController.DashboardSummary)
		dashboard.GET("/balance-evolution", r.reportController.BalanceEvolution)
		dashboard.GET("/revenues-vs-expenses", r.reportController.RevenuesVsExpenses)
		dashboard.GET("/expenses-by-category", r.reportController.ExpensesByCategory)
		dashboard.GET("/category-totals", r.reportController.CategoryTotals)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("/options", r.reportController.CategoryOptions)
	}
}

// Engine returns the Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
