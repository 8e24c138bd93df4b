package report

import (
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger-reports/internal/domain/error"
)

// CategoryNavigation locates a drill-down level in the category forest.
type CategoryNavigation struct {
	CurrentParentCategoryID   *uuid.UUID
	CurrentParentCategoryName *string
	DrillUpParentCategoryID   *uuid.UUID
}

// resolveNavigation checks that parentID exists and describes the level below
// it. A nil parentID selects the roots.
func resolveNavigation(tree *CategoryTree, parentID *uuid.UUID) (CategoryNavigation, error) {
	if parentID == nil {
		return CategoryNavigation{}, nil
	}

	parent, ok := tree.Get(*parentID)
	if !ok {
		return CategoryNavigation{}, domainerror.NewReportError(
			domainerror.ErrCodeUnknownCategory,
			"parent category was not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	currentID := parent.ID
	currentName := parent.Title
	navigation := CategoryNavigation{
		CurrentParentCategoryID:   &currentID,
		CurrentParentCategoryName: &currentName,
	}
	if parent.ParentID != nil {
		drillUpID := *parent.ParentID
		navigation.DrillUpParentCategoryID = &drillUpID
	}

	return navigation, nil
}
