package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// CategoryTree indexes a flat category list as a forest. Roots are stored
// under uuid.Nil. Children keep the order of the input list.
type CategoryTree struct {
	byID             map[uuid.UUID]*entity.Category
	childrenByParent map[uuid.UUID][]uuid.UUID
	order            []uuid.UUID
}

// NewCategoryTree builds the parent/children index for one report call.
func NewCategoryTree(categories []*entity.Category) *CategoryTree {
	tree := &CategoryTree{
		byID:             make(map[uuid.UUID]*entity.Category, len(categories)),
		childrenByParent: make(map[uuid.UUID][]uuid.UUID),
		order:            make([]uuid.UUID, 0, len(categories)),
	}

	for _, category := range categories {
		if category == nil {
			continue
		}
		if _, exists := tree.byID[category.ID]; exists {
			continue
		}
		tree.byID[category.ID] = category
		tree.order = append(tree.order, category.ID)

		parentKey := parentKeyOf(category.ParentID)
		tree.childrenByParent[parentKey] = append(tree.childrenByParent[parentKey], category.ID)
	}

	return tree
}

func parentKeyOf(parentID *uuid.UUID) uuid.UUID {
	if parentID == nil {
		return uuid.Nil
	}
	return *parentID
}

// Get returns the category with id.
func (t *CategoryTree) Get(id uuid.UUID) (*entity.Category, bool) {
	category, ok := t.byID[id]
	return category, ok
}

// Children returns the direct children of parentID; nil selects the roots.
func (t *CategoryTree) Children(parentID *uuid.UUID) []uuid.UUID {
	return t.childrenByParent[parentKeyOf(parentID)]
}

// HasChildren reports whether id has at least one child.
func (t *CategoryTree) HasChildren(id uuid.UUID) bool {
	return len(t.childrenByParent[id]) > 0
}

// Title returns the title of id, or an empty string when it is unknown.
func (t *CategoryTree) Title(id uuid.UUID) string {
	if category, ok := t.byID[id]; ok {
		return category.Title
	}
	return ""
}

// aggregateSubtrees folds every category's direct value with its descendants'
// values in post-order. The traversal is iterative with an explicit stack and
// a per-call memo; a node already on the current path is never re-entered, so
// malformed cyclic input still terminates.
func aggregateSubtrees[V any](
	tree *CategoryTree,
	direct func(id uuid.UUID) V,
	combine func(total, child V) V,
) map[uuid.UUID]V {
	type frame struct {
		id   uuid.UUID
		next int
	}

	memo := make(map[uuid.UUID]V, len(tree.order))
	onPath := make(map[uuid.UUID]bool)

	for _, rootID := range tree.order {
		if _, done := memo[rootID]; done {
			continue
		}

		stack := []frame{{id: rootID}}
		onPath[rootID] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := tree.childrenByParent[top.id]

			if top.next < len(children) {
				childID := children[top.next]
				top.next++
				if _, done := memo[childID]; done || onPath[childID] {
					continue
				}
				onPath[childID] = true
				stack = append(stack, frame{id: childID})
				continue
			}

			total := direct(top.id)
			for _, childID := range children {
				if childValue, ok := memo[childID]; ok {
					total = combine(total, childValue)
				}
			}
			memo[top.id] = total
			delete(onPath, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	return memo
}

// SubtreeTotals returns, for each category, its direct amount plus the
// amounts of all its descendants.
func SubtreeTotals(tree *CategoryTree, direct map[uuid.UUID]decimal.Decimal) map[uuid.UUID]decimal.Decimal {
	return aggregateSubtrees(
		tree,
		func(id uuid.UUID) decimal.Decimal { return direct[id] },
		func(total, child decimal.Decimal) decimal.Decimal { return total.Add(child) },
	)
}

// SubtreeBucketTotals is SubtreeTotals over per-bucket amounts.
func SubtreeBucketTotals(
	tree *CategoryTree,
	direct map[uuid.UUID]map[time.Time]decimal.Decimal,
) map[uuid.UUID]map[time.Time]decimal.Decimal {
	return aggregateSubtrees(
		tree,
		func(id uuid.UUID) map[time.Time]decimal.Decimal {
			own := make(map[time.Time]decimal.Decimal, len(direct[id]))
			for bucketStart, amount := range direct[id] {
				own[bucketStart] = amount
			}
			return own
		},
		func(total, child map[time.Time]decimal.Decimal) map[time.Time]decimal.Decimal {
			for bucketStart, amount := range child {
				total[bucketStart] = total[bucketStart].Add(amount)
			}
			return total
		},
	)
}
