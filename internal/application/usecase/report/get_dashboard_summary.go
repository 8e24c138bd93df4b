package report

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
)

// GetDashboardSummaryUseCase handles the period-over-period dashboard summary.
type GetDashboardSummaryUseCase struct {
	entryRepo adapter.EntryRepository
	cache     adapter.ReportCache
}

// NewGetDashboardSummaryUseCase creates a new GetDashboardSummaryUseCase instance.
func NewGetDashboardSummaryUseCase(entryRepo adapter.EntryRepository, cache adapter.ReportCache) *GetDashboardSummaryUseCase {
	return &GetDashboardSummaryUseCase{
		entryRepo: entryRepo,
		cache:     cache,
	}
}

// Execute compares balance, expenses and revenues with the preceding period.
func (uc *GetDashboardSummaryUseCase) Execute(ctx context.Context, input RangeInput) (*DashboardSummary, error) {
	if err := ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, input.cacheKey(kindDashboardSummary), func() (*DashboardSummary, error) {
		entries, err := loadEntries(ctx, uc.entryRepo, DateOf(input.EndDate))
		if err != nil {
			return nil, err
		}

		summary, err := BuildDashboardSummary(entries, input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Dashboard summary built",
			"report", kindDashboardSummary,
			"start_date", FormatDate(summary.StartDate),
			"end_date", FormatDate(summary.EndDate),
			"entries", len(entries),
		)
		return summary, nil
	})
}
