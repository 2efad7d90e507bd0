package testutil

import (
	"database/sql"
	"testing"

	"github.com/minsukang/stagegate/internal/db"
)

// NewTestDB opens an in-memory SQLite database with the full schema
// applied, registered for cleanup with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps the test database in a UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
