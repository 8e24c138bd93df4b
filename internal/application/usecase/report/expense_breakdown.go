package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// ExpenseCategoryItem is one visible category of an expense breakdown.
type ExpenseCategoryItem struct {
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	HasChildren  bool
}

// ExpenseCategoryBreakdown lists expenses per category at one drill-down level.
type ExpenseCategoryBreakdown struct {
	StartDate time.Time
	EndDate   time.Time
	CategoryNavigation
	Items []ExpenseCategoryItem
}

// BuildExpenseCategoryBreakdown sums in-range expenses per category subtree and
// keeps the direct children of parentID with a positive total, largest first.
func BuildExpenseCategoryBreakdown(
	categories []*entity.Category,
	entries []*entity.Entry,
	startDate, endDate time.Time,
	parentID *uuid.UUID,
) (*ExpenseCategoryBreakdown, error) {
	if err := ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	startDate, endDate = DateOf(startDate), DateOf(endDate)

	tree := NewCategoryTree(categories)
	navigation, err := resolveNavigation(tree, parentID)
	if err != nil {
		return nil, err
	}

	direct := PartitionWith(entries, startDate, endDate, GranularityDay, ByCategory, ExpenseAmount).WithinTotals()
	totals := SubtreeTotals(tree, direct)

	items := make([]ExpenseCategoryItem, 0)
	for _, categoryID := range tree.Children(parentID) {
		amount := totals[categoryID]
		if !amount.IsPositive() {
			continue
		}
		items = append(items, ExpenseCategoryItem{
			CategoryID:   categoryID,
			CategoryName: tree.Title(categoryID),
			Amount:       amount,
			HasChildren:  tree.HasChildren(categoryID),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})

	return &ExpenseCategoryBreakdown{
		StartDate:          startDate,
		EndDate:            endDate,
		CategoryNavigation: navigation,
		Items:              items,
	}, nil
}
