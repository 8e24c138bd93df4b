// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a ledger account (bank account, wallet, card...).
type Account struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(title, description string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
