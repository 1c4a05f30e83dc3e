package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-tracker/budget/config"
	"github.com/finance-tracker/budget/internal/application/adapter"
	"github.com/finance-tracker/budget/internal/infra/cache"
	"github.com/finance-tracker/budget/internal/infra/db"
	"github.com/finance-tracker/budget/internal/integration/persistence"
)

// Storage is an opened storage backend.
type Storage struct {
	Driver  string
	Gateway adapter.StorageGateway
	close   func() error
}

// HealthCheck pings the backend with a short timeout.
func (s *Storage) HealthCheck() bool {
	checker, ok := s.Gateway.(adapter.HealthChecker)
	if !ok {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := checker.Ping(ctx); err != nil {
		slog.Error("Storage health check failed", "driver", s.Driver, "error", err)
		return false
	}
	return true
}

// Close releases the backend connection.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewStorage wraps an already constructed gateway, mainly for tests.
func NewStorage(driver string, gateway adapter.StorageGateway) *Storage {
	return &Storage{Driver: driver, Gateway: gateway}
}

// OpenStorage connects the backend selected by cfg.Storage.Driver.
func OpenStorage(cfg *config.Config) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		slog.Warn("Using in-memory storage, data is lost on exit")
		return NewStorage(config.StorageDriverMemory, persistence.NewMemoryStorage()), nil

	case config.StorageDriverRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Driver:  config.StorageDriverRedis,
			Gateway: persistence.NewRedisStorage(client, cfg.Storage.KeyPrefix),
			close:   client.Close,
		}, nil

	case config.StorageDriverPostgres:
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return openSQLStorage(cfg, database)

	case config.StorageDriverSQLite:
		database, err := db.NewSQLiteConnection(&cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return openSQLStorage(cfg, database)
	}

	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}

func openSQLStorage(cfg *config.Config, database *db.Database) (*Storage, error) {
	if cfg.Storage.AutoMigrate {
		if err := persistence.Migrate(database.DB()); err != nil {
			_ = database.Close()
			return nil, err
		}
		slog.Info("Database migrations completed successfully", "dialect", database.Dialect())
	}

	return &Storage{
		Driver:  database.Dialect(),
		Gateway: persistence.NewGormStorage(database.DB(), cfg.Storage.KeyPrefix),
		close:   database.Close,
	}, nil
}
