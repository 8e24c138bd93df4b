package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// RevenueExpensePoint is one bucket of a revenue versus expense evolution.
type RevenueExpensePoint struct {
	Date     time.Time
	Revenues decimal.Decimal
	Expenses decimal.Decimal
}

// RevenueExpenseEvolution compares revenues and expenses over a series axis.
type RevenueExpenseEvolution struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
	Points      []RevenueExpensePoint
}

// BuildRevenueExpenseEvolution sums positive amounts as revenues and absolute
// negative amounts as expenses per bucket. Trailing empty buckets are trimmed.
func BuildRevenueExpenseEvolution(entries []*entity.Entry, startDate, endDate time.Time) (*RevenueExpenseEvolution, error) {
	if err := ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	startDate, endDate = DateOf(startDate), DateOf(endDate)

	granularity := ResolveSeriesGranularity(startDate, endDate)
	revenues := PartitionWith(entries, startDate, endDate, granularity, Ungrouped, RevenueAmount)
	expenses := PartitionWith(entries, startDate, endDate, granularity, Ungrouped, ExpenseAmount)
	key := NoGroup{}

	lastBucket := maxDate(revenues.LastBucket(), expenses.LastBucket())
	axis := BuildBucketStarts(startDate, EffectiveEndDate(startDate, lastBucket, granularity), granularity)

	revenueSeries := revenues.Series(key, axis)
	expenseSeries := expenses.Series(key, axis)
	points := make([]RevenueExpensePoint, len(axis))
	for i, bucketStart := range axis {
		points[i] = RevenueExpensePoint{
			Date:     bucketStart,
			Revenues: revenueSeries[i],
			Expenses: expenseSeries[i],
		}
	}

	return &RevenueExpenseEvolution{
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: granularity,
		Points:      points,
	}, nil
}
