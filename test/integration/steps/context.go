// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger-reports/config"
	"github.com/finance-tracker/ledger-reports/internal/infra/dependency"
	"github.com/finance-tracker/ledger-reports/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger-reports/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	client       *http.Client
	response     *http.Response
	responseBody []byte

	// Ledger
	db         *mock.Db
	redis      *mock.Redis
	accounts   map[string]uuid.UUID
	categories map[string]uuid.UUID

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Redis: config.RedisConfig{
			Enabled: true,
			TTL:     time.Minute,
			Prefix:  "ledger-reports:",
		},
		RateLimit: config.RateLimitConfig{MaxRequests: 100, Window: time.Minute},
	}
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			client: &http.Client{Timeout: 10 * time.Second},
			db: mock.NewDb(map[string]any{
				"entries":    &model.EntryModel{},
				"categories": &model.CategoryModel{},
				"accounts":   &model.AccountModel{},
			}, []string{"entries", "categories", "accounts"}),
			redis:      mock.NewRedis(),
			accounts:   make(map[string]uuid.UUID),
			categories: make(map[string]uuid.UUID),
			cfg:        newTestConfig(),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := tc.redis.ClearRedis(); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, tc.redis.Client)
		tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	// Register step definitions
	registerLedgerSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerStorageSteps(ctx)
}

// registerLedgerSteps registers ledger seeding steps.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an account "([^"]*)" exists$`, anAccountExists)
	ctx.Step(`^a category "([^"]*)" exists$`, aCategoryExists)
	ctx.Step(`^a category "([^"]*)" exists under "([^"]*)"$`, aCategoryExistsUnder)
	ctx.Step(`^the following entries exist:$`, theFollowingEntriesExist)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) elements$`, theResponseFieldShouldHaveElements)
	ctx.Step(`^the response field "([^"]*)" should be the id of category "([^"]*)"$`, theResponseFieldShouldBeCategoryID)
}

// registerStorageSteps registers database and cache assertion steps.
func registerStorageSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the report cache should contain (\d+) entries$`, theReportCacheShouldContainEntries)
}
