package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

var (
	testAccountID  = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	testCategoryID = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newTestEntry(settlementDate time.Time, amount string) *entity.Entry {
	return newTestCategoryEntry(settlementDate, amount, testCategoryID)
}

func newTestCategoryEntry(settlementDate time.Time, amount string, categoryID uuid.UUID) *entity.Entry {
	return entity.NewEntry(testAccountID, categoryID, settlementDate, settlementDate, dec(amount), "", "")
}

func newTestCategory(title string, parent *entity.Category) *entity.Category {
	var parentID *uuid.UUID
	if parent != nil {
		id := parent.ID
		parentID = &id
	}
	return entity.NewCategory(title, "", parentID)
}

func assertDecimal(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", label, got.String(), want)
	}
}

func assertDate(t *testing.T, label string, got, want time.Time) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", label, FormatDate(got), FormatDate(want))
	}
}
