package report

import (
	"time"

	domainerror "github.com/finance-tracker/ledger-reports/internal/domain/error"
)

// Granularity represents the size of a report bucket.
type Granularity string

const (
	GranularityDay   Granularity = "DAY"
	GranularityMonth Granularity = "MONTH"
	GranularityYear  Granularity = "YEAR"
)

// ResolveTableGranularity picks the bucket size for balance tables:
// YEAR above one year, MONTH above one month, DAY otherwise.
func ResolveTableGranularity(startDate, endDate time.Time) Granularity {
	startDate, endDate = DateOf(startDate), DateOf(endDate)

	if endDate.After(addYears(startDate, 1)) {
		return GranularityYear
	}
	if endDate.After(addMonths(startDate, 1)) {
		return GranularityMonth
	}
	return GranularityDay
}

// ResolveSeriesGranularity picks the bucket size for dashboard evolutions:
// MONTH from two months on, DAY otherwise. YEAR is never used by series.
func ResolveSeriesGranularity(startDate, endDate time.Time) Granularity {
	startDate, endDate = DateOf(startDate), DateOf(endDate)

	if !endDate.Before(addMonths(startDate, 2)) {
		return GranularityMonth
	}
	return GranularityDay
}

// ValidateRange checks that both dates are present and ordered.
func ValidateRange(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if endDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if DateOf(endDate).Before(DateOf(startDate)) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidRange,
			"end_date must be greater than or equal to start_date",
			domainerror.ErrInvalidRange,
		)
	}

	return nil
}
