package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

func TestSubtreeTotals(t *testing.T) {
	food := newTestCategory("Food", nil)
	market := newTestCategory("Market", food)
	bakery := newTestCategory("Bakery", market)
	restaurant := newTestCategory("Restaurant", food)
	health := newTestCategory("Health", nil)

	tree := NewCategoryTree([]*entity.Category{food, market, bakery, restaurant, health})
	direct := map[uuid.UUID]decimal.Decimal{
		food.ID:       dec("1.00"),
		market.ID:     dec("10.00"),
		bakery.ID:     dec("5.00"),
		restaurant.ID: dec("20.00"),
	}

	totals := SubtreeTotals(tree, direct)

	tests := []struct {
		name     string
		id       uuid.UUID
		expected string
	}{
		{name: "leaf", id: bakery.ID, expected: "5.00"},
		{name: "inner node", id: market.ID, expected: "15.00"},
		{name: "root", id: food.ID, expected: "36.00"},
		{name: "root without amounts", id: health.ID, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, "subtree total", totals[tt.id], tt.expected)
		})
	}

	t.Run("additive over children", func(t *testing.T) {
		for _, id := range tree.order {
			expected := direct[id]
			for _, childID := range tree.childrenByParent[id] {
				expected = expected.Add(totals[childID])
			}
			if !totals[id].Equal(expected) {
				t.Errorf("subtree(%s) = %s, want %s", tree.Title(id), totals[id], expected)
			}
		}
	})
}

func TestSubtreeBucketTotals(t *testing.T) {
	root := newTestCategory("Root", nil)
	child := newTestCategory("Child", root)
	tree := NewCategoryTree([]*entity.Category{root, child})

	january, february := date(2026, 1, 1), date(2026, 2, 1)
	direct := map[uuid.UUID]map[time.Time]decimal.Decimal{
		root.ID:  {january: dec("1")},
		child.ID: {january: dec("2"), february: dec("-3")},
	}

	totals := SubtreeBucketTotals(tree, direct)

	assertDecimal(t, "root january", totals[root.ID][january], "3")
	assertDecimal(t, "root february", totals[root.ID][february], "-3")
	assertDecimal(t, "child january", totals[child.ID][january], "2")
	assertDecimal(t, "direct input untouched", direct[root.ID][january], "1")
	if _, exists := direct[root.ID][february]; exists {
		t.Error("direct input was mutated")
	}
}

func TestSubtreeTotalsTerminatesOnCycles(t *testing.T) {
	first := entity.NewCategory("First", "", nil)
	second := entity.NewCategory("Second", "", nil)
	first.ParentID = &second.ID
	second.ParentID = &first.ID

	tree := NewCategoryTree([]*entity.Category{first, second})
	totals := SubtreeTotals(tree, map[uuid.UUID]decimal.Decimal{
		first.ID:  dec("1"),
		second.ID: dec("2"),
	})

	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2", len(totals))
	}
	assertDecimal(t, "first", totals[first.ID], "3")
	assertDecimal(t, "second", totals[second.ID], "2")
}

func TestSubtreeTotalsDeepChain(t *testing.T) {
	const depth = 50000

	categories := make([]*entity.Category, 0, depth)
	direct := make(map[uuid.UUID]decimal.Decimal, depth)
	var parent *entity.Category
	for i := 0; i < depth; i++ {
		category := newTestCategory("level", parent)
		categories = append(categories, category)
		direct[category.ID] = decimal.NewFromInt(1)
		parent = category
	}

	totals := SubtreeTotals(NewCategoryTree(categories), direct)
	assertDecimal(t, "root", totals[categories[0].ID], "50000")
	assertDecimal(t, "leaf", totals[categories[depth-1].ID], "1")
}
