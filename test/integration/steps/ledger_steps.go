package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger-reports/internal/application/usecase/report"
	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
	"github.com/finance-tracker/ledger-reports/internal/integration/persistence"
)

func anAccountExists(ctx context.Context, title string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	account := entity.NewAccount(title, "")
	if err := persistence.NewAccountRepository(tc.db.DbConn).Create(ctx, account); err != nil {
		return fmt.Errorf("failed to create account %s: %w", title, err)
	}
	tc.accounts[title] = account.ID
	return nil
}

func aCategoryExists(ctx context.Context, title string) error {
	return createCategory(ctx, title, nil)
}

func aCategoryExistsUnder(ctx context.Context, title, parentTitle string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	parentID, ok := tc.categories[parentTitle]
	if !ok {
		return fmt.Errorf("category %s has not been created", parentTitle)
	}
	return createCategory(ctx, title, &parentID)
}

func createCategory(ctx context.Context, title string, parentID *uuid.UUID) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	category := entity.NewCategory(title, "", parentID)
	if err := persistence.NewCategoryRepository(tc.db.DbConn).Create(ctx, category); err != nil {
		return fmt.Errorf("failed to create category %s: %w", title, err)
	}
	tc.categories[title] = category.ID
	return nil
}

// theFollowingEntriesExist reads a table with the columns
// account | category | settlement_date | amount.
func theFollowingEntriesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("entries table has no rows")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[strings.TrimSpace(cell.Value)] = i
	}
	for _, name := range []string{"account", "category", "settlement_date", "amount"} {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("entries table is missing column %s", name)
		}
	}

	repo := persistence.NewEntryRepository(tc.db.DbConn)
	for _, row := range table.Rows[1:] {
		value := func(column string) string {
			return strings.TrimSpace(row.Cells[columns[column]].Value)
		}

		accountID, ok := tc.accounts[value("account")]
		if !ok {
			return fmt.Errorf("account %s has not been created", value("account"))
		}
		categoryID, ok := tc.categories[value("category")]
		if !ok {
			return fmt.Errorf("category %s has not been created", value("category"))
		}
		settled, err := report.ParseDate(value("settlement_date"))
		if err != nil {
			return fmt.Errorf("invalid settlement_date %s: %w", value("settlement_date"), err)
		}
		amount, err := decimal.NewFromString(value("amount"))
		if err != nil {
			return fmt.Errorf("invalid amount %s: %w", value("amount"), err)
		}

		entry := entity.NewEntry(accountID, categoryID, settled, settled, amount, "", "")
		if err := repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}
	}
	return nil
}
