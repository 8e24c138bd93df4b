package report

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/finance-tracker/ledger-reports/internal/domain/error"
)

func TestResolveTableGranularity(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected Granularity
	}{
		{name: "single day", start: date(2026, 1, 1), end: date(2026, 1, 1), expected: GranularityDay},
		{name: "exactly one month", start: date(2026, 1, 1), end: date(2026, 2, 1), expected: GranularityDay},
		{name: "one month and a day", start: date(2026, 1, 1), end: date(2026, 2, 2), expected: GranularityMonth},
		{name: "month end clamps to february", start: date(2026, 1, 31), end: date(2026, 2, 28), expected: GranularityDay},
		{name: "past clamped month end", start: date(2026, 1, 31), end: date(2026, 3, 1), expected: GranularityMonth},
		{name: "exactly one year", start: date(2026, 1, 1), end: date(2027, 1, 1), expected: GranularityMonth},
		{name: "one year and a day", start: date(2026, 1, 1), end: date(2027, 1, 2), expected: GranularityYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTableGranularity(tt.start, tt.end)
			if got != tt.expected {
				t.Errorf("ResolveTableGranularity() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestResolveSeriesGranularity(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected Granularity
	}{
		{name: "a few days", start: date(2026, 1, 1), end: date(2026, 1, 3), expected: GranularityDay},
		{name: "one day short of two months", start: date(2026, 1, 15), end: date(2026, 3, 14), expected: GranularityDay},
		{name: "exactly two months", start: date(2026, 1, 15), end: date(2026, 3, 15), expected: GranularityMonth},
		{name: "half a year", start: date(2026, 1, 1), end: date(2026, 6, 30), expected: GranularityMonth},
		{name: "several years stay monthly", start: date(2020, 1, 1), end: date(2026, 1, 1), expected: GranularityMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSeriesGranularity(tt.start, tt.end)
			if got != tt.expected {
				t.Errorf("ResolveSeriesGranularity() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name         string
		start        time.Time
		end          time.Time
		expectedErr  error
		expectedCode domainerror.ReportErrorCode
	}{
		{name: "missing start", end: date(2026, 1, 1), expectedErr: domainerror.ErrMissingStartDate, expectedCode: domainerror.ErrCodeMissingStartDate},
		{name: "missing end", start: date(2026, 1, 1), expectedErr: domainerror.ErrMissingEndDate, expectedCode: domainerror.ErrCodeMissingEndDate},
		{name: "end before start", start: date(2026, 1, 2), end: date(2026, 1, 1), expectedErr: domainerror.ErrInvalidRange, expectedCode: domainerror.ErrCodeInvalidRange},
		{name: "same day", start: date(2026, 1, 1), end: date(2026, 1, 1)},
		{name: "clock part is ignored", start: date(2026, 1, 1).Add(20 * time.Hour), end: date(2026, 1, 1).Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.start, tt.end)
			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("ValidateRange() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("ValidateRange() error = %v, want %v", err, tt.expectedErr)
			}
			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) || reportErr.Code != tt.expectedCode {
				t.Errorf("ValidateRange() code = %v, want %s", err, tt.expectedCode)
			}
			if !domainerror.IsInvalidRange(err) {
				t.Error("IsInvalidRange() = false, want true")
			}
		})
	}
}
