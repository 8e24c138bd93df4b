package report

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
)

// GetBalanceEvolutionUseCase handles the running balance series.
type GetBalanceEvolutionUseCase struct {
	entryRepo adapter.EntryRepository
	cache     adapter.ReportCache
}

// NewGetBalanceEvolutionUseCase creates a new GetBalanceEvolutionUseCase instance.
func NewGetBalanceEvolutionUseCase(entryRepo adapter.EntryRepository, cache adapter.ReportCache) *GetBalanceEvolutionUseCase {
	return &GetBalanceEvolutionUseCase{
		entryRepo: entryRepo,
		cache:     cache,
	}
}

// Execute returns the accumulated balance per bucket.
func (uc *GetBalanceEvolutionUseCase) Execute(ctx context.Context, input RangeInput) (*BalanceEvolution, error) {
	if err := ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, input.cacheKey(kindBalanceEvolution), func() (*BalanceEvolution, error) {
		entries, err := loadEntries(ctx, uc.entryRepo, DateOf(input.EndDate))
		if err != nil {
			return nil, err
		}

		evolution, err := BuildBalanceEvolution(entries, input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Balance evolution built",
			"report", kindBalanceEvolution,
			"start_date", FormatDate(evolution.StartDate),
			"end_date", FormatDate(evolution.EndDate),
			"granularity", evolution.Granularity,
			"points", len(evolution.Points),
		)
		return evolution, nil
	})
}

// GetRevenueExpenseEvolutionUseCase handles the revenue versus expense series.
type GetRevenueExpenseEvolutionUseCase struct {
	entryRepo adapter.EntryRepository
	cache     adapter.ReportCache
}

// NewGetRevenueExpenseEvolutionUseCase creates a new GetRevenueExpenseEvolutionUseCase instance.
func NewGetRevenueExpenseEvolutionUseCase(entryRepo adapter.EntryRepository, cache adapter.ReportCache) *GetRevenueExpenseEvolutionUseCase {
	return &GetRevenueExpenseEvolutionUseCase{
		entryRepo: entryRepo,
		cache:     cache,
	}
}

// Execute returns revenues and expenses per bucket.
func (uc *GetRevenueExpenseEvolutionUseCase) Execute(ctx context.Context, input RangeInput) (*RevenueExpenseEvolution, error) {
	if err := ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, input.cacheKey(kindRevenueExpense), func() (*RevenueExpenseEvolution, error) {
		entries, err := loadEntries(ctx, uc.entryRepo, DateOf(input.EndDate))
		if err != nil {
			return nil, err
		}

		evolution, err := BuildRevenueExpenseEvolution(entries, input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Revenue and expense evolution built",
			"report", kindRevenueExpense,
			"start_date", FormatDate(evolution.StartDate),
			"end_date", FormatDate(evolution.EndDate),
			"granularity", evolution.Granularity,
			"points", len(evolution.Points),
		)
		return evolution, nil
	})
}
