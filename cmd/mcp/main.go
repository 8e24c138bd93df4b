// Package main serves the ledger reports as MCP tools over stdio.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger-reports/config"
	"github.com/finance-tracker/ledger-reports/internal/infra/db"
	"github.com/finance-tracker/ledger-reports/internal/infra/dependency"
	"github.com/finance-tracker/ledger-reports/internal/integration/cache"
	"github.com/finance-tracker/ledger-reports/internal/integration/mcptools"
)

func main() {
	_ = godotenv.Load()

	// stdout carries the MCP protocol, so logs go to stderr
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg := config.Load()

	database, err := db.Open(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid report cache configuration: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
	}

	reports := dependency.NewInjector(cfg, database.DB(), redisClient).Reports

	s := server.NewMCPServer(
		cfg.MCP.Name,
		cfg.MCP.Version,
		server.WithToolCapabilities(false),
	)

	mcptools.NewReportTools(
		reports.AccountBalances,
		reports.CategoryBalances,
		reports.DashboardSummary,
		reports.BalanceEvolution,
		reports.RevenueExpenseEvolution,
		reports.ExpenseBreakdown,
		reports.CategoryTotals,
		reports.CategoryOptions,
	).Register(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
