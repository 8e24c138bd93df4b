package adapter

import (
	"context"
	"time"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// EntryRepository defines the interface for ledger entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// ListBySettlementDateLessThanEqual retrieves every entry settled on or before endDate.
	ListBySettlementDateLessThanEqual(ctx context.Context, endDate time.Time) ([]*entity.Entry, error)
}
