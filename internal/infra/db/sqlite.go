package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/budget/config"
)

// NewSQLiteConnection opens the embedded database file, creating its directory
// when needed. SQLite allows a single writer, so the pool is capped at one
// connection.
func NewSQLiteConnection(cfg *config.SQLiteConfig) (*Database, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
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

	database := &Database{db: db, dialect: config.StorageDriverSQLite}
	if err := database.ping(5 * time.Second); err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"dialect", database.dialect,
		"path", cfg.Path,
	)

	return database, nil
}
