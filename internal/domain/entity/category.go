// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents an entry category. Categories form a forest through
// ParentID; a nil ParentID marks a root category.
type Category struct {
	ID          uuid.UUID
	Title       string
	Description string
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category entity.
// Hierarchy cycles must be rejected by the caller before persisting.
func NewCategory(title, description string, parentID *uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		ParentID:    parentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryOption is a flattened hierarchy entry used by select inputs.
type CategoryOption struct {
	ID    uuid.UUID
	Label string
	Depth int
}
