package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger-reports/config"
	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger-reports/internal/domain/error"
	"github.com/finance-tracker/ledger-reports/internal/infra/db"
	"github.com/finance-tracker/ledger-reports/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database.DB()
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	food := entity.NewCategory("alimentação", "", nil)
	market := entity.NewCategory("Mercado", "Supermercado", &food.ID)
	bills := entity.NewCategory("Contas", "", nil)
	for _, category := range []*entity.Category{food, market, bills} {
		if err := repo.Create(ctx, category); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("find all ordered by title ignoring case", func(t *testing.T) {
		categories, err := repo.FindAllOrdered(ctx)
		if err != nil {
			t.Fatalf("FindAllOrdered() error = %v", err)
		}
		expected := []string{"alimentação", "Contas", "Mercado"}
		if len(categories) != len(expected) {
			t.Fatalf("categories = %d, want %d", len(categories), len(expected))
		}
		for i, title := range expected {
			if categories[i].Title != title {
				t.Errorf("categories[%d] = %s, want %s", i, categories[i].Title, title)
			}
		}
	})

	t.Run("find by id keeps the parent", func(t *testing.T) {
		found, err := repo.FindByID(ctx, market.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.ParentID == nil || *found.ParentID != food.ID {
			t.Errorf("ParentID = %v, want %s", found.ParentID, food.ID)
		}
		if found.Description != "Supermercado" {
			t.Errorf("Description = %s, want Supermercado", found.Description)
		}
	})

	t.Run("find by id not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("FindByID() error = %v, want ErrCategoryNotFound", err)
		}
	})
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	for _, title := range []string{"Poupança", "carteira", "Banco"} {
		if err := repo.Create(ctx, entity.NewAccount(title, "")); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	accounts, err := repo.FindAllOrdered(ctx)
	if err != nil {
		t.Fatalf("FindAllOrdered() error = %v", err)
	}
	expected := []string{"Banco", "carteira", "Poupança"}
	for i, title := range expected {
		if accounts[i].Title != title {
			t.Errorf("accounts[%d] = %s, want %s", i, accounts[i].Title, title)
		}
	}
}

func TestEntryRepository(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	accounts := NewAccountRepository(gormDB)
	categories := NewCategoryRepository(gormDB)
	repo := NewEntryRepository(gormDB)

	account := entity.NewAccount("Conta", "")
	category := entity.NewCategory("Geral", "", nil)
	if err := accounts.Create(ctx, account); err != nil {
		t.Fatalf("Create(account) error = %v", err)
	}
	if err := categories.Create(ctx, category); err != nil {
		t.Fatalf("Create(category) error = %v", err)
	}

	entries := []*entity.Entry{
		entity.NewEntry(account.ID, category.ID, day(2026, 3, 1), day(2026, 3, 31), decimal.RequireFromString("-40.25"), "Mercado", "cartão"),
		entity.NewEntry(account.ID, category.ID, day(2026, 2, 10), day(2026, 2, 10), decimal.RequireFromString("80.00"), "Salário", ""),
		entity.NewEntry(account.ID, category.ID, day(2026, 4, 1), day(2026, 4, 1), decimal.RequireFromString("10.00"), "Futuro", ""),
	}
	for _, entry := range entries {
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Create(entry) error = %v", err)
		}
	}

	found, err := repo.ListBySettlementDateLessThanEqual(ctx, day(2026, 3, 31))
	if err != nil {
		t.Fatalf("ListBySettlementDateLessThanEqual() error = %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("entries = %d, want 2", len(found))
	}

	first, second := found[0], found[1]
	if first.Description != "Salário" || second.Description != "Mercado" {
		t.Errorf("order = %s, %s, want oldest settlement first", first.Description, second.Description)
	}
	if !second.Amount.Equal(decimal.RequireFromString("-40.25")) {
		t.Errorf("Amount = %s, want -40.25", second.Amount)
	}
	if !second.SettlementDate.Equal(day(2026, 3, 31)) {
		t.Errorf("SettlementDate = %s, want 2026-03-31", second.SettlementDate)
	}
	if !second.MovementDate.Equal(day(2026, 3, 1)) {
		t.Errorf("MovementDate = %s, want 2026-03-01", second.MovementDate)
	}
	if second.Notes != "cartão" || second.AccountID != account.ID || second.CategoryID != category.ID {
		t.Errorf("entry = %+v", second)
	}
}
