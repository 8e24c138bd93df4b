package report

import (
	"time"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// DashboardSummary compares the requested period with the equal-length period
// right before it.
type DashboardSummary struct {
	StartDate         time.Time
	EndDate           time.Time
	PreviousStartDate time.Time
	PreviousEndDate   time.Time
	CurrentBalance    Metric
	TotalExpenses     Metric
	TotalRevenues     Metric
}

// PreviousPeriod returns the equal-length range immediately preceding
// [startDate, endDate].
func PreviousPeriod(startDate, endDate time.Time) (time.Time, time.Time) {
	startDate, endDate = DateOf(startDate), DateOf(endDate)
	length := daysBetweenInclusive(startDate, endDate)
	return startDate.AddDate(0, 0, -length), startDate.AddDate(0, 0, -1)
}

// BuildDashboardSummary computes balance, expense and revenue metrics. The
// current balance is cumulative over every entry settled up to endDate; the
// previous balance is the one right before startDate.
func BuildDashboardSummary(entries []*entity.Entry, startDate, endDate time.Time) (*DashboardSummary, error) {
	if err := ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	startDate, endDate = DateOf(startDate), DateOf(endDate)
	previousStart, previousEnd := PreviousPeriod(startDate, endDate)

	key := NoGroup{}

	balances := Partition(entries, startDate, endDate, GranularityDay, Ungrouped)
	previousBalance := balances.BeforeTotal(key)
	currentBalance := previousBalance.Add(balances.WithinTotal(key))

	currentExpenses := PartitionWith(entries, startDate, endDate, GranularityDay, Ungrouped, ExpenseAmount).WithinTotal(key)
	previousExpenses := PartitionWith(entries, previousStart, previousEnd, GranularityDay, Ungrouped, ExpenseAmount).WithinTotal(key)
	currentRevenues := PartitionWith(entries, startDate, endDate, GranularityDay, Ungrouped, RevenueAmount).WithinTotal(key)
	previousRevenues := PartitionWith(entries, previousStart, previousEnd, GranularityDay, Ungrouped, RevenueAmount).WithinTotal(key)

	return &DashboardSummary{
		StartDate:         startDate,
		EndDate:           endDate,
		PreviousStartDate: previousStart,
		PreviousEndDate:   previousEnd,
		CurrentBalance:    NewMetric(currentBalance, previousBalance),
		TotalExpenses:     NewMetric(currentExpenses, previousExpenses),
		TotalRevenues:     NewMetric(currentRevenues, previousRevenues),
	}, nil
}
