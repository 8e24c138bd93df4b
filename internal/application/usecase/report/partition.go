package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// KeyFunc extracts the grouping key of an entry.
type KeyFunc[K comparable] func(entry *entity.Entry) K

// AmountFunc maps an entry to the amount it contributes. Entries for which
// it reports false are skipped.
type AmountFunc func(entry *entity.Entry) (decimal.Decimal, bool)

// NoGroup is the single key used by ungrouped reports.
type NoGroup struct{}

// ByAccount groups entries by account id.
func ByAccount(entry *entity.Entry) uuid.UUID { return entry.AccountID }

// ByCategory groups entries by category id.
func ByCategory(entry *entity.Entry) uuid.UUID { return entry.CategoryID }

// Ungrouped puts every entry under the same key.
func Ungrouped(*entity.Entry) NoGroup { return NoGroup{} }

// SignedAmount contributes the entry's signed amount.
func SignedAmount(entry *entity.Entry) (decimal.Decimal, bool) {
	return entry.Amount, true
}

// RevenueAmount contributes positive amounts only.
func RevenueAmount(entry *entity.Entry) (decimal.Decimal, bool) {
	if !entry.Amount.IsPositive() {
		return decimal.Zero, false
	}
	return entry.Amount, true
}

// ExpenseAmount contributes the absolute value of negative amounts only.
func ExpenseAmount(entry *entity.Entry) (decimal.Decimal, bool) {
	if !entry.Amount.IsNegative() {
		return decimal.Zero, false
	}
	return entry.Amount.Abs(), true
}

// Partitioned holds entry sums split around a report range.
type Partitioned[K comparable] struct {
	// Before sums entries settled before the range start.
	Before map[K]decimal.Decimal
	// Within sums in-range entries per key and normalized bucket start.
	Within map[K]map[time.Time]decimal.Decimal

	lastBucket time.Time
}

// Partition splits entries into opening sums and bucketed in-range sums using
// their signed amounts. Entries settled after endDate are ignored.
func Partition[K comparable](
	entries []*entity.Entry,
	startDate, endDate time.Time,
	granularity Granularity,
	keyOf KeyFunc[K],
) *Partitioned[K] {
	return PartitionWith(entries, startDate, endDate, granularity, keyOf, SignedAmount)
}

// PartitionWith is Partition with a custom amount selector.
func PartitionWith[K comparable](
	entries []*entity.Entry,
	startDate, endDate time.Time,
	granularity Granularity,
	keyOf KeyFunc[K],
	amountOf AmountFunc,
) *Partitioned[K] {
	startDate, endDate = DateOf(startDate), DateOf(endDate)
	p := &Partitioned[K]{
		Before: make(map[K]decimal.Decimal),
		Within: make(map[K]map[time.Time]decimal.Decimal),
	}

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		amount, ok := amountOf(entry)
		if !ok {
			continue
		}

		settlementDate := DateOf(entry.SettlementDate)
		key := keyOf(entry)

		if settlementDate.Before(startDate) {
			p.Before[key] = p.Before[key].Add(amount)
			continue
		}
		if settlementDate.After(endDate) {
			continue
		}

		bucketStart := NormalizeBucketStart(settlementDate, granularity)
		buckets, exists := p.Within[key]
		if !exists {
			buckets = make(map[time.Time]decimal.Decimal)
			p.Within[key] = buckets
		}
		buckets[bucketStart] = buckets[bucketStart].Add(amount)
		p.lastBucket = maxDate(p.lastBucket, bucketStart)
	}

	return p
}

// LastBucket returns the latest bucket start that received any amount, or the
// zero time when nothing fell inside the range.
func (p *Partitioned[K]) LastBucket() time.Time {
	return p.lastBucket
}

// BeforeTotal returns the opening sum for key.
func (p *Partitioned[K]) BeforeTotal(key K) decimal.Decimal {
	return p.Before[key]
}

// WithinTotal returns the in-range sum for key across all buckets.
func (p *Partitioned[K]) WithinTotal(key K) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range p.Within[key] {
		total = total.Add(amount)
	}
	return total
}

// WithinTotals returns the in-range sum of every key across all buckets.
func (p *Partitioned[K]) WithinTotals() map[K]decimal.Decimal {
	totals := make(map[K]decimal.Decimal, len(p.Within))
	for key := range p.Within {
		totals[key] = p.WithinTotal(key)
	}
	return totals
}

// Series lays the bucketed sums of key onto axis, defaulting missing buckets to zero.
func (p *Partitioned[K]) Series(key K, axis []time.Time) []decimal.Decimal {
	return zipOnAxis(p.Within[key], axis)
}

func zipOnAxis(valuesByBucket map[time.Time]decimal.Decimal, axis []time.Time) []decimal.Decimal {
	values := make([]decimal.Decimal, len(axis))
	for i, bucketStart := range axis {
		values[i] = valuesByBucket[bucketStart]
	}
	return values
}
