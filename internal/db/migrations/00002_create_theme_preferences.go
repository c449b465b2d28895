package migrations

// theme_preferences holds one persisted theme per device profile for the SQL
// preference backend.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateThemePreferences, downCreateThemePreferences)
}

func upCreateThemePreferences(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS theme_preferences (
    profile_id UUID PRIMARY KEY,
    theme      TEXT NOT NULL CHECK (theme IN ('light', 'dark')),
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS theme_preferences (
    profile_id CHAR(36) PRIMARY KEY,
    theme      VARCHAR(5) NOT NULL,
    created_at DATETIME(6) NOT NULL,
    updated_at DATETIME(6) NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS theme_preferences (
    profile_id TEXT PRIMARY KEY,
    theme      TEXT NOT NULL CHECK (theme IN ('light', 'dark')),
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create theme_preferences table: %w", err)
	}
	return nil
}

func downCreateThemePreferences(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS theme_preferences`)
	return err
}
