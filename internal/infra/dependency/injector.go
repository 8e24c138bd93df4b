// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger-reports/config"
	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
	"github.com/finance-tracker/ledger-reports/internal/application/usecase/report"
	"github.com/finance-tracker/ledger-reports/internal/infra/server/router"
	"github.com/finance-tracker/ledger-reports/internal/integration/cache"
	"github.com/finance-tracker/ledger-reports/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger-reports/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger-reports/internal/integration/persistence"
)

const cachePingTimeout = 2 * time.Second

// ReportUseCases groups the report use cases shared by the HTTP and MCP surfaces.
type ReportUseCases struct {
	AccountBalances         *report.GetAccountBalanceReportUseCase
	CategoryBalances        *report.GetCategoryBalanceReportUseCase
	DashboardSummary        *report.GetDashboardSummaryUseCase
	BalanceEvolution        *report.GetBalanceEvolutionUseCase
	RevenueExpenseEvolution *report.GetRevenueExpenseEvolutionUseCase
	ExpenseBreakdown        *report.GetExpenseCategoryBreakdownUseCase
	CategoryTotals          *report.GetCategoryTotalsEvolutionUseCase
	CategoryOptions         *report.ListCategoryOptionsUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Cache       adapter.ReportCache
	Reports     *ReportUseCases
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables the report cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	entryRepo := persistence.NewEntryRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	reportCache := cache.NewNoopReportCache()
	if redisClient != nil {
		reportCache = cache.NewRedisReportCache(redisClient, cfg.Redis.TTL, cfg.Redis.Prefix)
	}

	// Create report use cases
	reports := &ReportUseCases{
		AccountBalances:         report.NewGetAccountBalanceReportUseCase(entryRepo, accountRepo, reportCache),
		CategoryBalances:        report.NewGetCategoryBalanceReportUseCase(entryRepo, categoryRepo, reportCache),
		DashboardSummary:        report.NewGetDashboardSummaryUseCase(entryRepo, reportCache),
		BalanceEvolution:        report.NewGetBalanceEvolutionUseCase(entryRepo, reportCache),
		RevenueExpenseEvolution: report.NewGetRevenueExpenseEvolutionUseCase(entryRepo, reportCache),
		ExpenseBreakdown:        report.NewGetExpenseCategoryBreakdownUseCase(entryRepo, categoryRepo, reportCache),
		CategoryTotals:          report.NewGetCategoryTotalsEvolutionUseCase(entryRepo, categoryRepo, reportCache),
		CategoryOptions:         report.NewListCategoryOptionsUseCase(categoryRepo),
	}

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker(redisClient))

	reportController := controller.NewReportController(
		reports.AccountBalances,
		reports.CategoryBalances,
		reports.DashboardSummary,
		reports.BalanceEvolution,
		reports.RevenueExpenseEvolution,
		reports.ExpenseBreakdown,
		reports.CategoryTotals,
		reports.CategoryOptions,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	// Create router
	r := router.NewRouter(healthController, reportController, rateLimiter)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Cache:       reportCache,
		Reports:     reports,
		RateLimiter: rateLimiter,
		Router:      r,
	}
}

func cacheHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), cachePingTimeout)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
