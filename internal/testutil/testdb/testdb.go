// Package testdb opens throwaway in-memory SQLite databases with the real schema.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"nexhr-leave/internal/adapter/repository/mysql"
	"nexhr-leave/internal/infrastructure/db"

	"gorm.io/gorm"
)

var seq atomic.Int64

// Open returns a migrated database private to the calling test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:nexhr_test_%d?mode=memory&cache=shared", seq.Add(1))
	gdb, err := db.Open(db.DriverSQLite, dsn, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := mysql.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}
