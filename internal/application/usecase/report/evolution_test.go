package report

import (
	"testing"
	"time"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

func TestBuildBalanceEvolution(t *testing.T) {
	t.Run("daily for ranges shorter than two months", func(t *testing.T) {
		entries := []*entity.Entry{
			newTestEntry(date(2025, 12, 31), "200.00"),
			newTestEntry(date(2026, 1, 1), "10.00"),
			newTestEntry(date(2026, 1, 2), "-3.00"),
		}

		evolution, err := BuildBalanceEvolution(entries, date(2026, 1, 1), date(2026, 1, 3))
		if err != nil {
			t.Fatalf("BuildBalanceEvolution() error = %v", err)
		}

		if evolution.Granularity != GranularityDay {
			t.Errorf("granularity = %s, want DAY", evolution.Granularity)
		}
		assertDecimal(t, "opening balance", evolution.OpeningBalance, "200.00")
		if len(evolution.Points) != 2 {
			t.Fatalf("points = %d, want 2", len(evolution.Points))
		}
		assertDecimal(t, "first period", evolution.Points[0].PeriodAmount, "10.00")
		assertDecimal(t, "first accumulated", evolution.Points[0].AccumulatedBalance, "210.00")
		assertDecimal(t, "second period", evolution.Points[1].PeriodAmount, "-3.00")
		assertDecimal(t, "second accumulated", evolution.Points[1].AccumulatedBalance, "207.00")
	})

	t.Run("monthly for ranges of two months or more", func(t *testing.T) {
		entries := []*entity.Entry{
			newTestEntry(date(2025, 12, 10), "40.00"),
			newTestEntry(date(2026, 1, 20), "100.00"),
			newTestEntry(date(2026, 2, 10), "-25.00"),
			newTestEntry(date(2026, 3, 5), "10.00"),
		}

		evolution, err := BuildBalanceEvolution(entries, date(2026, 1, 15), date(2026, 3, 15))
		if err != nil {
			t.Fatalf("BuildBalanceEvolution() error = %v", err)
		}

		if evolution.Granularity != GranularityMonth {
			t.Errorf("granularity = %s, want MONTH", evolution.Granularity)
		}
		if len(evolution.Points) != 3 {
			t.Fatalf("points = %d, want 3", len(evolution.Points))
		}
		assertDate(t, "first date", evolution.Points[0].Date, date(2026, 1, 1))
		assertDecimal(t, "january", evolution.Points[0].PeriodAmount, "100.00")
		assertDecimal(t, "february", evolution.Points[1].PeriodAmount, "-25.00")
		assertDecimal(t, "march", evolution.Points[2].PeriodAmount, "10.00")
		assertDecimal(t, "closing", evolution.Points[2].AccumulatedBalance, "125.00")
	})

	t.Run("trims trailing months without records", func(t *testing.T) {
		entries := []*entity.Entry{
			newTestEntry(date(2026, 1, 20), "50.00"),
			newTestEntry(date(2026, 2, 10), "-10.00"),
		}

		evolution, err := BuildBalanceEvolution(entries, date(2026, 1, 1), date(2026, 6, 30))
		if err != nil {
			t.Fatalf("BuildBalanceEvolution() error = %v", err)
		}

		if len(evolution.Points) != 2 {
			t.Fatalf("points = %d, want 2", len(evolution.Points))
		}
		assertDate(t, "first date", evolution.Points[0].Date, date(2026, 1, 1))
		assertDate(t, "second date", evolution.Points[1].Date, date(2026, 2, 1))
	})

	t.Run("no records in range", func(t *testing.T) {
		entries := []*entity.Entry{newTestEntry(date(2025, 12, 1), "5.00")}

		evolution, err := BuildBalanceEvolution(entries, date(2026, 1, 1), date(2026, 6, 30))
		if err != nil {
			t.Fatalf("BuildBalanceEvolution() error = %v", err)
		}

		assertDecimal(t, "opening balance", evolution.OpeningBalance, "5.00")
		if len(evolution.Points) != 0 {
			t.Errorf("points = %d, want 0", len(evolution.Points))
		}
	})
}

func TestBuildRevenueExpenseEvolution(t *testing.T) {
	type point struct {
		date     time.Time
		revenues string
		expenses string
	}

	tests := []struct {
		name        string
		entries     []*entity.Entry
		start       time.Time
		end         time.Time
		granularity Granularity
		expected    []point
	}{
		{
			name: "daily",
			entries: []*entity.Entry{
				newTestEntry(date(2026, 1, 1), "15.00"),
				newTestEntry(date(2026, 1, 1), "-4.00"),
				newTestEntry(date(2026, 1, 2), "-3.50"),
			},
			start:       date(2026, 1, 1),
			end:         date(2026, 1, 3),
			granularity: GranularityDay,
			expected: []point{
				{date(2026, 1, 1), "15.00", "4.00"},
				{date(2026, 1, 2), "0", "3.50"},
			},
		},
		{
			name: "monthly",
			entries: []*entity.Entry{
				newTestEntry(date(2026, 1, 20), "100.00"),
				newTestEntry(date(2026, 2, 5), "-25.00"),
				newTestEntry(date(2026, 2, 20), "40.00"),
				newTestEntry(date(2026, 3, 2), "-10.00"),
			},
			start:       date(2026, 1, 15),
			end:         date(2026, 3, 20),
			granularity: GranularityMonth,
			expected: []point{
				{date(2026, 1, 1), "100.00", "0"},
				{date(2026, 2, 1), "40.00", "25.00"},
				{date(2026, 3, 1), "0", "10.00"},
			},
		},
		{
			name: "trims trailing months but keeps inner gaps",
			entries: []*entity.Entry{
				newTestEntry(date(2026, 1, 15), "100.00"),
				newTestEntry(date(2026, 3, 10), "-20.00"),
			},
			start:       date(2026, 1, 1),
			end:         date(2026, 5, 31),
			granularity: GranularityMonth,
			expected: []point{
				{date(2026, 1, 1), "100.00", "0"},
				{date(2026, 2, 1), "0", "0"},
				{date(2026, 3, 1), "0", "20.00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evolution, err := BuildRevenueExpenseEvolution(tt.entries, tt.start, tt.end)
			if err != nil {
				t.Fatalf("BuildRevenueExpenseEvolution() error = %v", err)
			}
			if evolution.Granularity != tt.granularity {
				t.Errorf("granularity = %s, want %s", evolution.Granularity, tt.granularity)
			}
			if len(evolution.Points) != len(tt.expected) {
				t.Fatalf("points = %d, want %d", len(evolution.Points), len(tt.expected))
			}
			for i, want := range tt.expected {
				got := evolution.Points[i]
				assertDate(t, "date", got.Date, want.date)
				assertDecimal(t, "revenues", got.Revenues, want.revenues)
				assertDecimal(t, "expenses", got.Expenses, want.expenses)
			}
		})
	}
}
