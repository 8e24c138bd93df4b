package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// BalanceRow is one account or category line of a balance table.
type BalanceRow struct {
	ID                    uuid.UUID
	Title                 string
	Description           string
	PreviousPeriodBalance decimal.Decimal
	PeriodBalances        []decimal.Decimal
}

// BalanceReport is a bucketed balance table of accounts or categories.
type BalanceReport struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
	Buckets     []Bucket
	Rows        []BalanceRow
}

type balanceSubject struct {
	id          uuid.UUID
	title       string
	description string
}

// BuildAccountBalanceReport sums entries per account and table bucket. Rows
// follow the order of accounts.
func BuildAccountBalanceReport(
	accounts []*entity.Account,
	entries []*entity.Entry,
	startDate, endDate time.Time,
) (*BalanceReport, error) {
	subjects := make([]balanceSubject, 0, len(accounts))
	for _, account := range accounts {
		if account == nil {
			continue
		}
		subjects = append(subjects, balanceSubject{
			id:          account.ID,
			title:       account.Title,
			description: account.Description,
		})
	}
	return buildBalanceReport(subjects, entries, startDate, endDate, ByAccount)
}

// BuildCategoryBalanceReport sums entries per category and table bucket. Rows
// follow the order of categories; amounts are not rolled up to parents.
func BuildCategoryBalanceReport(
	categories []*entity.Category,
	entries []*entity.Entry,
	startDate, endDate time.Time,
) (*BalanceReport, error) {
	subjects := make([]balanceSubject, 0, len(categories))
	for _, category := range categories {
		if category == nil {
			continue
		}
		subjects = append(subjects, balanceSubject{
			id:          category.ID,
			title:       category.Title,
			description: category.Description,
		})
	}
	return buildBalanceReport(subjects, entries, startDate, endDate, ByCategory)
}

func buildBalanceReport(
	subjects []balanceSubject,
	entries []*entity.Entry,
	startDate, endDate time.Time,
	keyOf KeyFunc[uuid.UUID],
) (*BalanceReport, error) {
	if err := ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	startDate, endDate = DateOf(startDate), DateOf(endDate)

	granularity := ResolveTableGranularity(startDate, endDate)
	buckets := BuildBuckets(startDate, endDate, granularity)
	axis := make([]time.Time, len(buckets))
	for i, bucket := range buckets {
		axis[i] = bucket.StartDate
	}

	partitioned := Partition(entries, startDate, endDate, granularity, keyOf)

	rows := make([]BalanceRow, 0, len(subjects))
	for _, subject := range subjects {
		rows = append(rows, BalanceRow{
			ID:                    subject.id,
			Title:                 subject.title,
			Description:           subject.description,
			PreviousPeriodBalance: partitioned.BeforeTotal(subject.id),
			PeriodBalances:        partitioned.Series(subject.id, axis),
		})
	}

	return &BalanceReport{
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: granularity,
		Buckets:     buckets,
		Rows:        rows,
	}, nil
}
