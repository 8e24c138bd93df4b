package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger-reports/config"
)

// NewSQLiteConnection opens the embedded SQLite ledger store at cfg.SQLitePath.
// The pool is pinned to one connection so in-memory databases live as long as it.
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	database := &Database{
		db:  db,
		cfg: cfg,
	}
	if err := database.ping(5 * time.Second); err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"driver", config.DriverSQLite,
		"path", cfg.SQLitePath,
	)

	return database, nil
}
