// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry represents a single ledger movement.
// The sign of Amount is the only expense/revenue discriminant:
// negative for expenses, positive for revenues.
type Entry struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	CategoryID     uuid.UUID
	MovementDate   time.Time
	SettlementDate time.Time // Used for all report bucketing
	Amount         decimal.Decimal
	Description    string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewEntry creates a new Entry entity.
func NewEntry(
	accountID uuid.UUID,
	categoryID uuid.UUID,
	movementDate time.Time,
	settlementDate time.Time,
	amount decimal.Decimal,
	description string,
	notes string,
) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:             uuid.New(),
		AccountID:      accountID,
		CategoryID:     categoryID,
		MovementDate:   movementDate,
		SettlementDate: settlementDate,
		Amount:         amount,
		Description:    description,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsExpense reports whether the entry decreases the balance.
func (e *Entry) IsExpense() bool {
	return e.Amount.IsNegative()
}

// IsRevenue reports whether the entry increases the balance.
func (e *Entry) IsRevenue() bool {
	return e.Amount.IsPositive()
}
