package report

import (
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger-reports/internal/domain/error"
)

func TestBuildExpenseCategoryBreakdown(t *testing.T) {
	t.Run("root categories", func(t *testing.T) {
		housing := newTestCategory("Moradia", nil)
		food := newTestCategory("Alimentação", nil)
		transport := newTestCategory("Transporte", nil)
		health := newTestCategory("Saúde", nil)
		education := newTestCategory("Educação", nil)
		leisure := newTestCategory("Lazer", nil)
		services := newTestCategory("Serviços", nil)
		market := newTestCategory("Mercado", food)
		restaurant := newTestCategory("Restaurante", food)

		categories := []*entity.Category{housing, food, transport, health, education, leisure, services, market, restaurant}
		entries := []*entity.Entry{
			newTestCategoryEntry(date(2026, 2, 1), "-100.00", housing.ID),
			newTestCategoryEntry(date(2026, 2, 2), "-80.00", market.ID),
			newTestCategoryEntry(date(2026, 2, 3), "-20.00", restaurant.ID),
			newTestCategoryEntry(date(2026, 2, 4), "-60.00", transport.ID),
			newTestCategoryEntry(date(2026, 2, 5), "-40.00", health.ID),
			newTestCategoryEntry(date(2026, 2, 6), "-30.00", education.ID),
			newTestCategoryEntry(date(2026, 2, 7), "-20.00", leisure.ID),
			newTestCategoryEntry(date(2026, 2, 8), "-10.00", services.ID),
			newTestCategoryEntry(date(2026, 2, 9), "500.00", services.ID),
			newTestCategoryEntry(date(2026, 1, 31), "-999.00", housing.ID),
		}

		breakdown, err := BuildExpenseCategoryBreakdown(categories, entries, date(2026, 2, 1), date(2026, 2, 28), nil)
		if err != nil {
			t.Fatalf("BuildExpenseCategoryBreakdown() error = %v", err)
		}

		if breakdown.CurrentParentCategoryID != nil || breakdown.CurrentParentCategoryName != nil || breakdown.DrillUpParentCategoryID != nil {
			t.Errorf("navigation = %+v, want empty", breakdown.CategoryNavigation)
		}

		expected := []struct {
			name        string
			amount      string
			hasChildren bool
		}{
			{"Moradia", "100.00", false},
			{"Alimentação", "100.00", true},
			{"Transporte", "60.00", false},
			{"Saúde", "40.00", false},
			{"Educação", "30.00", false},
			{"Lazer", "20.00", false},
			{"Serviços", "10.00", false},
		}
		if len(breakdown.Items) != len(expected) {
			t.Fatalf("items = %d, want %d", len(breakdown.Items), len(expected))
		}
		for i, want := range expected {
			got := breakdown.Items[i]
			if got.CategoryName != want.name {
				t.Errorf("items[%d] = %s, want %s", i, got.CategoryName, want.name)
			}
			assertDecimal(t, want.name, got.Amount, want.amount)
			if got.HasChildren != want.hasChildren {
				t.Errorf("%s hasChildren = %v, want %v", want.name, got.HasChildren, want.hasChildren)
			}
		}
	})

	t.Run("categories without expenses are dropped", func(t *testing.T) {
		house := newTestCategory("Casa", nil)
		transport := newTestCategory("Transporte", nil)
		idle := newTestCategory("Sem uso", nil)

		entries := []*entity.Entry{
			newTestCategoryEntry(date(2026, 1, 10), "-12.00", house.ID),
			newTestCategoryEntry(date(2026, 1, 11), "-8.00", transport.ID),
		}

		breakdown, err := BuildExpenseCategoryBreakdown([]*entity.Category{house, transport, idle}, entries, date(2026, 1, 1), date(2026, 1, 31), nil)
		if err != nil {
			t.Fatalf("BuildExpenseCategoryBreakdown() error = %v", err)
		}

		if len(breakdown.Items) != 2 {
			t.Fatalf("items = %d, want 2", len(breakdown.Items))
		}
		if breakdown.Items[0].CategoryName != "Casa" || breakdown.Items[1].CategoryName != "Transporte" {
			t.Errorf("items = %s, %s", breakdown.Items[0].CategoryName, breakdown.Items[1].CategoryName)
		}
	})

	t.Run("drill down into a root", func(t *testing.T) {
		food := newTestCategory("Alimentação", nil)
		health := newTestCategory("Saúde", nil)
		market := newTestCategory("Mercado", food)
		restaurant := newTestCategory("Restaurante", food)
		pharmacy := newTestCategory("Farmácia", health)

		entries := []*entity.Entry{
			newTestCategoryEntry(date(2026, 3, 1), "-50.00", market.ID),
			newTestCategoryEntry(date(2026, 3, 2), "-30.00", restaurant.ID),
			newTestCategoryEntry(date(2026, 3, 3), "-20.00", pharmacy.ID),
		}

		breakdown, err := BuildExpenseCategoryBreakdown(
			[]*entity.Category{food, health, market, restaurant, pharmacy},
			entries,
			date(2026, 3, 1),
			date(2026, 3, 31),
			&food.ID,
		)
		if err != nil {
			t.Fatalf("BuildExpenseCategoryBreakdown() error = %v", err)
		}

		if breakdown.CurrentParentCategoryID == nil || *breakdown.CurrentParentCategoryID != food.ID {
			t.Errorf("current parent = %v, want %s", breakdown.CurrentParentCategoryID, food.ID)
		}
		if breakdown.CurrentParentCategoryName == nil || *breakdown.CurrentParentCategoryName != "Alimentação" {
			t.Errorf("current parent name = %v, want Alimentação", breakdown.CurrentParentCategoryName)
		}
		if breakdown.DrillUpParentCategoryID != nil {
			t.Errorf("drill up = %s, want nil", breakdown.DrillUpParentCategoryID)
		}
		if len(breakdown.Items) != 2 {
			t.Fatalf("items = %d, want 2", len(breakdown.Items))
		}
		if breakdown.Items[0].CategoryName != "Mercado" {
			t.Errorf("items[0] = %s, want Mercado", breakdown.Items[0].CategoryName)
		}
		assertDecimal(t, "Mercado", breakdown.Items[0].Amount, "50.00")
		if breakdown.Items[1].CategoryName != "Restaurante" {
			t.Errorf("items[1] = %s, want Restaurante", breakdown.Items[1].CategoryName)
		}
	})

	t.Run("drill up points to the grandparent", func(t *testing.T) {
		food := newTestCategory("Alimentação", nil)
		market := newTestCategory("Mercado", food)

		breakdown, err := BuildExpenseCategoryBreakdown([]*entity.Category{food, market}, nil, date(2026, 3, 1), date(2026, 3, 31), &market.ID)
		if err != nil {
			t.Fatalf("BuildExpenseCategoryBreakdown() error = %v", err)
		}
		if breakdown.DrillUpParentCategoryID == nil || *breakdown.DrillUpParentCategoryID != food.ID {
			t.Errorf("drill up = %v, want %s", breakdown.DrillUpParentCategoryID, food.ID)
		}
		if len(breakdown.Items) != 0 {
			t.Errorf("items = %d, want 0", len(breakdown.Items))
		}
	})

	t.Run("unknown parent", func(t *testing.T) {
		unknown := uuid.New()
		_, err := BuildExpenseCategoryBreakdown(nil, nil, date(2026, 3, 1), date(2026, 3, 31), &unknown)
		if !domainerror.IsUnknownCategory(err) {
			t.Fatalf("error = %v, want unknown category", err)
		}
	})
}
