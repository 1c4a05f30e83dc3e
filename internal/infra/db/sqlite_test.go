package db

import (
	"path/filepath"
	"testing"

	"github.com/finance-tracker/budget/config"
	"github.com/finance-tracker/budget/internal/integration/persistence"
	"github.com/finance-tracker/budget/internal/integration/persistence/model"
)

func TestNewSQLiteConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "budget.db")

	database, err := NewSQLiteConnection(&config.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if database.Dialect() != config.StorageDriverSQLite {
		t.Errorf("expected sqlite dialect, got %q", database.Dialect())
	}
	if !database.HealthCheck() {
		t.Error("expected a healthy connection")
	}

	if err := persistence.Migrate(database.DB()); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !database.DB().Migrator().HasTable(&model.CollectionModel{}) {
		t.Error("expected the collections table to exist")
	}
}
