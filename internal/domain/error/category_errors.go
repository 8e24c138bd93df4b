// Package error defines domain-specific errors for the ledger reports application.
package error

import "errors"

// Ledger store domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")
)
