package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/joestump/recrutas/internal/db"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB and runs all goose migrations.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// A shared-cache file URI keeps every pool connection on the same
	// in-memory database; the test name keeps tests apart.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_busy_timeout=5000&_time_format=sqlite"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}
