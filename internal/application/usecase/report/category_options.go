package report

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

const optionIndent = "- "

// BuildCategoryOptions flattens the category forest depth-first for select
// inputs. Siblings are ordered by title ignoring case, then by title, then by id.
func BuildCategoryOptions(categories []*entity.Category) []entity.CategoryOption {
	tree := NewCategoryTree(categories)
	options := make([]entity.CategoryOption, 0, len(tree.order))

	type frame struct {
		id    uuid.UUID
		depth int
	}

	visited := make(map[uuid.UUID]bool, len(tree.order))
	stack := make([]frame, 0)
	pushChildren := func(parentKey uuid.UUID, depth int) {
		children := sortedByTitle(tree, tree.childrenByParent[parentKey])
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: children[i], depth: depth})
		}
	}

	pushChildren(uuid.Nil, 0)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.id] {
			continue
		}
		visited[top.id] = true

		options = append(options, entity.CategoryOption{
			ID:    top.id,
			Label: strings.Repeat(optionIndent, top.depth) + tree.Title(top.id),
			Depth: top.depth,
		})
		pushChildren(top.id, top.depth+1)
	}

	return options
}

func sortedByTitle(tree *CategoryTree, ids []uuid.UUID) []uuid.UUID {
	sorted := append([]uuid.UUID(nil), ids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := tree.Title(sorted[i]), tree.Title(sorted[j])
		if foldedLeft, foldedRight := strings.ToLower(left), strings.ToLower(right); foldedLeft != foldedRight {
			return foldedLeft < foldedRight
		}
		if left != right {
			return left < right
		}
		return sorted[i].String() < sorted[j].String()
	})
	return sorted
}
