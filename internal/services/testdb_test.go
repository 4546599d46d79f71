package services

import (
	"database/sql"
	"testing"

	"github.com/sayantonsadhu/portfolio-be/internal/database"
)

// newTestDB opens an in-memory SQLite database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("database.Migrate: %v", err)
	}
	return db
}
