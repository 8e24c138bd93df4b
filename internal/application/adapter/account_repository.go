package adapter

import (
	"context"

	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindAllOrdered retrieves every account ordered by title ignoring case, then by id.
	FindAllOrdered(ctx context.Context) ([]*entity.Account, error)
}
