package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// GetExpenseCategoryBreakdownUseCase handles the drill-down expense breakdown.
type GetExpenseCategoryBreakdownUseCase struct {
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewGetExpenseCategoryBreakdownUseCase creates a new GetExpenseCategoryBreakdownUseCase instance.
func NewGetExpenseCategoryBreakdownUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *GetExpenseCategoryBreakdownUseCase {
	return &GetExpenseCategoryBreakdownUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute returns expense totals of the categories below input.ParentCategoryID.
func (uc *GetExpenseCategoryBreakdownUseCase) Execute(ctx context.Context, input DrillDownInput) (*ExpenseCategoryBreakdown, error) {
	if err := ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, input.cacheKey(kindExpensesByCategory), func() (*ExpenseCategoryBreakdown, error) {
		entries, categories, err := loadEntriesAndCategories(ctx, uc.entryRepo, uc.categoryRepo, DateOf(input.EndDate))
		if err != nil {
			return nil, err
		}

		breakdown, err := BuildExpenseCategoryBreakdown(categories, entries, input.StartDate, input.EndDate, input.ParentCategoryID)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Expense breakdown built",
			"report", kindExpensesByCategory,
			"start_date", FormatDate(breakdown.StartDate),
			"end_date", FormatDate(breakdown.EndDate),
			"items", len(breakdown.Items),
		)
		return breakdown, nil
	})
}

// GetCategoryTotalsEvolutionUseCase handles the drill-down category series.
type GetCategoryTotalsEvolutionUseCase struct {
	entryRepo    adapter.EntryRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.ReportCache
}

// NewGetCategoryTotalsEvolutionUseCase creates a new GetCategoryTotalsEvolutionUseCase instance.
func NewGetCategoryTotalsEvolutionUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.ReportCache,
) *GetCategoryTotalsEvolutionUseCase {
	return &GetCategoryTotalsEvolutionUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

// Execute returns bucketed totals of the categories below input.ParentCategoryID.
func (uc *GetCategoryTotalsEvolutionUseCase) Execute(ctx context.Context, input DrillDownInput) (*CategoryTotalsEvolution, error) {
	if err := ValidateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, input.cacheKey(kindCategoryTotals), func() (*CategoryTotalsEvolution, error) {
		entries, categories, err := loadEntriesAndCategories(ctx, uc.entryRepo, uc.categoryRepo, DateOf(input.EndDate))
		if err != nil {
			return nil, err
		}

		evolution, err := BuildCategoryTotalsEvolution(categories, entries, input.StartDate, input.EndDate, input.ParentCategoryID)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Category totals evolution built",
			"report", kindCategoryTotals,
			"start_date", FormatDate(evolution.StartDate),
			"end_date", FormatDate(evolution.EndDate),
			"granularity", evolution.Granularity,
			"series", len(evolution.Series),
		)
		return evolution, nil
	})
}

// ListCategoryOptionsUseCase flattens the category hierarchy for selection.
type ListCategoryOptionsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoryOptionsUseCase creates a new ListCategoryOptionsUseCase instance.
func NewListCategoryOptionsUseCase(categoryRepo adapter.CategoryRepository) *ListCategoryOptionsUseCase {
	return &ListCategoryOptionsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns every category as an indented option.
func (uc *ListCategoryOptionsUseCase) Execute(ctx context.Context) ([]entity.CategoryOption, error) {
	categories, err := uc.categoryRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return BuildCategoryOptions(categories), nil
}
