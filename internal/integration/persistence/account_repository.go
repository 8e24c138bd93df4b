package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
	"github.com/finance-tracker/ledger-reports/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(model.AccountFromEntity(account)).Error
}

// FindAllOrdered retrieves every account ordered by title.
func (r *accountRepository) FindAllOrdered(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Order(orderByTitle).
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}
