package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// BalancePoint is one bucket of a balance evolution.
type BalancePoint struct {
	Date               time.Time
	PeriodAmount       decimal.Decimal
	AccumulatedBalance decimal.Decimal
}

// BalanceEvolution is the running balance over a series axis.
type BalanceEvolution struct {
	StartDate      time.Time
	EndDate        time.Time
	Granularity    Granularity
	OpeningBalance decimal.Decimal
	Points         []BalancePoint
}

// BuildBalanceEvolution accumulates period amounts bucket by bucket, starting
// from the balance settled before startDate. Trailing empty buckets are trimmed.
func BuildBalanceEvolution(entries []*entity.Entry, startDate, endDate time.Time) (*BalanceEvolution, error) {
	if err := ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	startDate, endDate = DateOf(startDate), DateOf(endDate)

	granularity := ResolveSeriesGranularity(startDate, endDate)
	partitioned := Partition(entries, startDate, endDate, granularity, Ungrouped)
	key := NoGroup{}

	openingBalance := partitioned.BeforeTotal(key)
	axis := BuildBucketStarts(startDate, EffectiveEndDate(startDate, partitioned.LastBucket(), granularity), granularity)

	points := make([]BalancePoint, 0, len(axis))
	accumulated := openingBalance
	for i, periodAmount := range partitioned.Series(key, axis) {
		accumulated = accumulated.Add(periodAmount)
		points = append(points, BalancePoint{
			Date:               axis[i],
			PeriodAmount:       periodAmount,
			AccumulatedBalance: accumulated,
		})
	}

	return &BalanceEvolution{
		StartDate:      startDate,
		EndDate:        endDate,
		Granularity:    granularity,
		OpeningBalance: openingBalance,
		Points:         points,
	}, nil
}
