package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/budget/internal/integration/persistence"
	"github.com/finance-tracker/budget/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db is an in-memory SQLite database holding the collections table.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the shared in-memory database on first use.
func NewDb() *Db {
	if db == nil {
		once.Do(
			func() {
				db = open()
			},
		)
	}

	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := persistence.Migrate(dbConn); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn}
}

// ClearDB removes every stored collection.
func (d *Db) ClearDB() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.CollectionModel{}).Error
}

// CountCollections returns how many collection rows exist.
func (d *Db) CountCollections() (int64, error) {
	var count int64
	err := d.DbConn.Model(&model.CollectionModel{}).Count(&count).Error
	return count, err
}
