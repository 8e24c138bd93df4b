package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
type EntryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MovementDate   time.Time       `gorm:"type:date;not null"`
	SettlementDate time.Time       `gorm:"type:date;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description    string          `gorm:"type:varchar(255)"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:             m.ID,
		AccountID:      m.AccountID,
		CategoryID:     m.CategoryID,
		MovementDate:   m.MovementDate,
		SettlementDate: m.SettlementDate,
		Amount:         m.Amount,
		Description:    m.Description,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:             entry.ID,
		AccountID:      entry.AccountID,
		CategoryID:     entry.CategoryID,
		MovementDate:   entry.MovementDate,
		SettlementDate: entry.SettlementDate,
		Amount:         entry.Amount,
		Description:    entry.Description,
		Notes:          entry.Notes,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

// All returns every model managed by the ledger store, in migration order.
func All() []interface{} {
	return []interface{}{
		&AccountModel{},
		&CategoryModel{},
		&EntryModel{},
	}
}
