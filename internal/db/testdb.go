package db

import (
	"context"
	"database/sql"
	"testing"
)

// NewTestDB returns an in-memory inventory database with every migration
// applied. It is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, _, err := OpenMigrated(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
