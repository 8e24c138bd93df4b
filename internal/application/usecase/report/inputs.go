package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RangeInput selects the date range of a report.
type RangeInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// DrillDownInput selects a date range and a category level. A nil
// ParentCategoryID selects the root categories.
type DrillDownInput struct {
	StartDate        time.Time
	EndDate          time.Time
	ParentCategoryID *uuid.UUID
}

func (in RangeInput) cacheKey(kind string) string {
	return fmt.Sprintf("%s:%s:%s", kind, FormatDate(in.StartDate), FormatDate(in.EndDate))
}

func (in DrillDownInput) cacheKey(kind string) string {
	parent := "root"
	if in.ParentCategoryID != nil {
		parent = in.ParentCategoryID.String()
	}
	return fmt.Sprintf("%s:%s:%s:%s", kind, FormatDate(in.StartDate), FormatDate(in.EndDate), parent)
}
