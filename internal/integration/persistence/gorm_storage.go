package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/budget/internal/application/adapter"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
	"github.com/finance-tracker/budget/internal/integration/persistence/model"
)

// gormStorage stores collections as rows of the collections table. It works
// with any GORM dialect; PostgreSQL and SQLite are wired.
type gormStorage struct {
	db     *gorm.DB
	prefix string
}

// NewGormStorage creates a storage gateway backed by db.
func NewGormStorage(db *gorm.DB, prefix string) adapter.StorageGateway {
	return &gormStorage{
		db:     db,
		prefix: prefix,
	}
}

// Migrate creates or updates the collections table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.CollectionModel{}); err != nil {
		return fmt.Errorf("failed to migrate collections table: %w", err)
	}
	return nil
}

// Get retrieves the value stored under key.
func (s *gormStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row model.CollectionModel
	result := s.db.WithContext(ctx).Where("collection_key = ?", s.prefix+key).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, domainerror.NewStorageError("get", key, result.Error)
	}
	return row.Data, true, nil
}

// Set inserts or replaces the row for key.
func (s *gormStorage) Set(ctx context.Context, key string, data []byte) error {
	row := model.NewCollectionModel(s.prefix+key, data)
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(row)
	if result.Error != nil {
		return domainerror.NewStorageError("set", key, result.Error)
	}
	return nil
}

// Remove deletes the row for key.
func (s *gormStorage) Remove(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Where("collection_key = ?", s.prefix+key).Delete(&model.CollectionModel{})
	if result.Error != nil {
		return domainerror.NewStorageError("remove", key, result.Error)
	}
	return nil
}

// Ping checks the database connection.
func (s *gormStorage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err)
	}
	return sqlDB.PingContext(ctx)
}
