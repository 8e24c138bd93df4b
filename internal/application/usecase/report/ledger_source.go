package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger-reports/internal/application/adapter"
	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// loadEntriesAndCategories fetches entries settled up to endDate and every
// category concurrently.
func loadEntriesAndCategories(
	ctx context.Context,
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	endDate time.Time,
) ([]*entity.Entry, []*entity.Category, error) {
	var (
		entries    []*entity.Entry
		categories []*entity.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = entryRepo.ListBySettlementDateLessThanEqual(gctx, endDate)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = categoryRepo.FindAllOrdered(gctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return entries, categories, nil
}

// loadEntriesAndAccounts fetches entries settled up to endDate and every
// account concurrently.
func loadEntriesAndAccounts(
	ctx context.Context,
	entryRepo adapter.EntryRepository,
	accountRepo adapter.AccountRepository,
	endDate time.Time,
) ([]*entity.Entry, []*entity.Account, error) {
	var (
		entries  []*entity.Entry
		accounts []*entity.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = entryRepo.ListBySettlementDateLessThanEqual(gctx, endDate)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		accounts, err = accountRepo.FindAllOrdered(gctx)
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return entries, accounts, nil
}

func loadEntries(ctx context.Context, entryRepo adapter.EntryRepository, endDate time.Time) ([]*entity.Entry, error) {
	entries, err := entryRepo.ListBySettlementDateLessThanEqual(ctx, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}
