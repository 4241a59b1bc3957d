// Package mock provides in-memory infrastructure for the BDD suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-ledger/backend/internal/integration/persistence/model"
)

// Db wraps an in-memory sqlite connection shared by every scenario.
// Reset truncates the ledger between scenarios so state never leaks.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens a shared in-memory sqlite database and migrates the
// expense schema. A single connection keeps the memory database alive
// for the whole suite.
func NewDb() *Db {
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

	if err := dbConn.AutoMigrate(&model.ExpenseModel{}); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn}
}

// Reset empties the expenses table and restarts the id sequence, so every
// scenario sees a fresh ledger with ids starting at 1.
func (d *Db) Reset() error {
	if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ExpenseModel{}).Error; err != nil {
		return err
	}

	err := d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", model.ExpenseModel{}.TableName()).Error
	if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
		return err
	}
	return nil
}
