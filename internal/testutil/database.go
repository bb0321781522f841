// Package testutil provides shared helpers for tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/whatiftr/whatif-backend/internal/database"
)

// SetupTestDB creates an in-memory SQLite database with the full schema
// applied. The connection is closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
