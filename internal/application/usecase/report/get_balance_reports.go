package report

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
)

// GetAccountBalanceReportUseCase builds the account balance table.
type GetAccountBalanceReportUseCase struct {
	entryRepo   adapter.EntryRepository
	accountRepo adapter.AccountRepository
	cache       adapter.ReportCache
}

// NewGetAccountBalanceReportUseCase creates a new GetAccountBalanceReportUseCase instance.
func NewGetAccountBalanceReportUseCase(
	entryRepo adapter.EntryRepository,
	accountRepo adapter.AccountRepository,
	cache adapter.ReportCache,
) *GetAccountBalanceReportUseCase {
	return &GetAccountBalanceReportUseCase{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// Execute returns opening and per-bucket balances of every account.
func (uc *GetAccountBalanceReportUseCase) Execute(ctx context.Context, input RangeInput) (*BalanceReport, error) {
	if err := ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, input.cacheKey(kindAccountBalances), func() (*BalanceReport, error) {
		entries, accounts, err := loadEntriesAndAccounts(ctx, uc.entryRepo, uc.accountRepo, DateOf(input.EndDate))
		if err != nil {
			return nil, err
		}

		report, err := BuildAccountBalanceReport(accounts, entries, input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Account balance report built",
			"report", kindAccountBalances,
			"start_date", FormatDate(report.StartDate),
			"end_date", FormatDate(report.EndDate),
			"granularity", report.Granularity,
			"rows", len(report.Rows),
		)
		return report, nil
	})
}

// GetCategoryBalanceReportUseCase builds the category balance table.
type GetCategoryBalanceReportUseCase struct {
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewGetCategoryBalanceReportUseCase creates a new GetCategoryBalanceReportUseCase instance.
func NewGetCategoryBalanceReportUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *GetCategoryBalanceReportUseCase {
	return &GetCategoryBalanceReportUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute returns opening and per-bucket balances of every category.
func (uc *GetCategoryBalanceReportUseCase) Execute(ctx context.Context, input RangeInput) (*BalanceReport, error) {
	if err := ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, input.cacheKey(kindCategoryBalances), func() (*BalanceReport, error) {
		entries, categories, err := loadEntriesAndCategories(ctx, uc.entryRepo, uc.categoryRepo, DateOf(input.EndDate))
		if err != nil {
			return nil, err
		}

		report, err := BuildCategoryBalanceReport(categories, entries, input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Category balance report built",
			"report", kindCategoryBalances,
			"start_date", FormatDate(report.StartDate),
			"end_date", FormatDate(report.EndDate),
			"granularity", report.Granularity,
			"rows", len(report.Rows),
		)
		return report, nil
	})
}
