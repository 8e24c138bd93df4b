package report

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
)

// Report kinds used as cache key prefixes.
const (
	kindAccountBalances    = "account-balances"
	kindCategoryBalances   = "category-balances"
	kindDashboardSummary   = "dashboard-summary"
	kindBalanceEvolution   = "balance-evolution"
	kindRevenueExpense     = "revenue-expense-evolution"
	kindExpensesByCategory = "expenses-by-category"
	kindCategoryTotals     = "category-totals"
)

// cached returns the report stored under key or builds and stores it. Cache
// failures are logged and never fail the report.
func cached[T any](
	ctx context.Context,
	cache adapter.ReportCache,
	key string,
	build func() (T, error),
) (T, error) {
	if cache == nil {
		return build()
	}

	var hit T
	found, err := cache.Get(ctx, key, &hit)
	if err != nil {
		slog.WarnContext(ctx, "Report cache read failed", "key", key, "error", err)
	} else if found {
		slog.DebugContext(ctx, "Report cache hit", "key", key)
		return hit, nil
	}

	value, err := build()
	if err != nil {
		return value, err
	}

	if err := cache.Set(ctx, key, value); err != nil {
		slog.WarnContext(ctx, "Report cache write failed", "key", key, "error", err)
	}
	return value, nil
}
