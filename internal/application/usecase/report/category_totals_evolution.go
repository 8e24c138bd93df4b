package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// CategoryTotalsSeries is the bucketed subtree total of one visible category.
type CategoryTotalsSeries struct {
	CategoryID   uuid.UUID
	CategoryName string
	HasChildren  bool
	Values       []decimal.Decimal
}

// CategoryTotalsEvolution is the per-category evolution at one drill-down level.
type CategoryTotalsEvolution struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
	CategoryNavigation
	Buckets []time.Time
	Series  []CategoryTotalsSeries
}

type pendingSeries struct {
	series    CategoryTotalsSeries
	byBucket  map[time.Time]decimal.Decimal
	magnitude decimal.Decimal
}

// BuildCategoryTotalsEvolution sums signed in-range amounts per category subtree
// and bucket for the direct children of parentID. Series are ordered by total
// absolute magnitude, largest first.
func BuildCategoryTotalsEvolution(
	categories []*entity.Category,
	entries []*entity.Entry,
	startDate, endDate time.Time,
	parentID *uuid.UUID,
) (*CategoryTotalsEvolution, error) {
	if err := ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	startDate, endDate = DateOf(startDate), DateOf(endDate)

	tree := NewCategoryTree(categories)
	navigation, err := resolveNavigation(tree, parentID)
	if err != nil {
		return nil, err
	}

	granularity := ResolveSeriesGranularity(startDate, endDate)
	direct := Partition(entries, startDate, endDate, granularity, ByCategory).Within
	totals := SubtreeBucketTotals(tree, direct)

	var lastBucket time.Time
	pending := make([]pendingSeries, 0)
	for _, categoryID := range tree.Children(parentID) {
		byBucket := totals[categoryID]
		magnitude := decimal.Zero
		for _, amount := range byBucket {
			magnitude = magnitude.Add(amount.Abs())
		}
		if magnitude.IsZero() {
			continue
		}

		for bucketStart := range byBucket {
			lastBucket = maxDate(lastBucket, bucketStart)
		}
		pending = append(pending, pendingSeries{
			series: CategoryTotalsSeries{
				CategoryID:   categoryID,
				CategoryName: tree.Title(categoryID),
				HasChildren:  tree.HasChildren(categoryID),
			},
			byBucket:  byBucket,
			magnitude: magnitude,
		})
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].magnitude.GreaterThan(pending[j].magnitude)
	})

	axis := BuildBucketStarts(startDate, EffectiveEndDate(startDate, lastBucket, granularity), granularity)
	series := make([]CategoryTotalsSeries, len(pending))
	for i, p := range pending {
		p.series.Values = zipOnAxis(p.byBucket, axis)
		series[i] = p.series
	}

	return &CategoryTotalsEvolution{
		StartDate:          startDate,
		EndDate:            endDate,
		Granularity:        granularity,
		CategoryNavigation: navigation,
		Buckets:            axis,
		Series:             series,
	}, nil
}
