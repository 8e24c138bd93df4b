package report

import (
	"testing"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

func TestBuildAccountBalanceReport(t *testing.T) {
	checking := entity.NewAccount("Conta corrente", "Banco")
	savings := entity.NewAccount("Poupança", "")
	idle := entity.NewAccount("Carteira", "")

	entries := []*entity.Entry{
		entity.NewEntry(checking.ID, testCategoryID, date(2025, 12, 20), date(2025, 12, 20), dec("500.00"), "", ""),
		entity.NewEntry(checking.ID, testCategoryID, date(2026, 1, 5), date(2026, 1, 5), dec("-120.00"), "", ""),
		entity.NewEntry(checking.ID, testCategoryID, date(2026, 2, 28), date(2026, 3, 2), dec("-30.00"), "", ""),
		entity.NewEntry(savings.ID, testCategoryID, date(2026, 2, 1), date(2026, 2, 1), dec("300.00"), "", ""),
		entity.NewEntry(savings.ID, testCategoryID, date(2026, 4, 1), date(2026, 4, 1), dec("999.00"), "", ""),
	}

	report, err := BuildAccountBalanceReport([]*entity.Account{checking, savings, idle}, entries, date(2026, 1, 1), date(2026, 3, 31))
	if err != nil {
		t.Fatalf("BuildAccountBalanceReport() error = %v", err)
	}

	if report.Granularity != GranularityMonth {
		t.Errorf("granularity = %s, want MONTH", report.Granularity)
	}
	if len(report.Buckets) != 3 {
		t.Fatalf("buckets = %d, want 3", len(report.Buckets))
	}
	if len(report.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(report.Rows))
	}

	tests := []struct {
		name     string
		row      BalanceRow
		title    string
		previous string
		periods  []string
	}{
		{name: "checking", row: report.Rows[0], title: "Conta corrente", previous: "500.00", periods: []string{"-120.00", "0", "-30.00"}},
		{name: "savings", row: report.Rows[1], title: "Poupança", previous: "0", periods: []string{"0", "300.00", "0"}},
		{name: "idle", row: report.Rows[2], title: "Carteira", previous: "0", periods: []string{"0", "0", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.row.Title != tt.title {
				t.Errorf("title = %s, want %s", tt.row.Title, tt.title)
			}
			assertDecimal(t, "previous", tt.row.PreviousPeriodBalance, tt.previous)
			if len(tt.row.PeriodBalances) != len(tt.periods) {
				t.Fatalf("periods = %d, want %d", len(tt.row.PeriodBalances), len(tt.periods))
			}
			for i, want := range tt.periods {
				assertDecimal(t, "period", tt.row.PeriodBalances[i], want)
			}
		})
	}
}

func TestBuildCategoryBalanceReport(t *testing.T) {
	food := newTestCategory("Alimentação", nil)
	market := newTestCategory("Mercado", food)

	entries := []*entity.Entry{
		newTestCategoryEntry(date(2026, 1, 2), "-10.00", market.ID),
		newTestCategoryEntry(date(2026, 1, 3), "-5.00", food.ID),
	}

	report, err := BuildCategoryBalanceReport([]*entity.Category{food, market}, entries, date(2026, 1, 1), date(2026, 1, 3))
	if err != nil {
		t.Fatalf("BuildCategoryBalanceReport() error = %v", err)
	}

	if report.Granularity != GranularityDay || len(report.Buckets) != 3 {
		t.Fatalf("granularity = %s, buckets = %d", report.Granularity, len(report.Buckets))
	}
	assertDecimal(t, "food is not rolled up", report.Rows[0].PeriodBalances[1], "0")
	assertDecimal(t, "food own entry", report.Rows[0].PeriodBalances[2], "-5.00")
	assertDecimal(t, "market", report.Rows[1].PeriodBalances[1], "-10.00")
}

func TestBuildBalanceReportRejectsInvalidRange(t *testing.T) {
	if _, err := BuildAccountBalanceReport(nil, nil, date(2026, 1, 2), date(2026, 1, 1)); err == nil {
		t.Fatal("expected an error")
	}
}
