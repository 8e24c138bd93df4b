// Package report contains the ledger report aggregation engine and the
// use cases that feed it from the ledger store.
package report

import "time"

// DateLayout is the calendar date layout used across report inputs and outputs.
const DateLayout = "2006-01-02"

// DateOf strips the clock part of t, keeping its calendar date in UTC.
// All report arithmetic runs on values produced by DateOf so they can be
// compared and used as map keys.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// addMonths adds n calendar months, clamping the day to the target month's
// length (Jan 31 + 1 month is the last day of February).
func addMonths(date time.Time, n int) time.Time {
	first := time.Date(date.Year(), date.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := date.Day()
	if last := daysInMonth(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// addYears adds n calendar years, mapping Feb 29 to Feb 28 on non-leap years.
func addYears(date time.Time, n int) time.Time {
	return addMonths(date, 12*n)
}

func daysInMonth(date time.Time) int {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetweenInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func maxDate(first, second time.Time) time.Time {
	if first.IsZero() {
		return second
	}
	if second.After(first) {
		return second
	}
	return first
}

func minDate(first, second time.Time) time.Time {
	if first.Before(second) {
		return first
	}
	return second
}

