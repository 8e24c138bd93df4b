package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
	"github.com/finance-tracker/ledger-reports/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	return r.db.WithContext(ctx).Create(model.EntryFromEntity(entry)).Error
}

// ListBySettlementDateLessThanEqual retrieves entries settled on or before endDate,
// oldest first.
func (r *entryRepository) ListBySettlementDateLessThanEqual(ctx context.Context, endDate time.Time) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("settlement_date <= ?", endDate).
		Order("settlement_date ASC, id ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.Entry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}
