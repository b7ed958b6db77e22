package store

import (
	"context"
	"database/sql"
	"strings"
)

// schema contains the DDL for all client-side tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	// Single-row session table: the client holds at most one active
	// session, so the primary key is fixed.
	`CREATE TABLE IF NOT EXISTS session (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		user_json  TEXT NOT NULL,
		token      TEXT NOT NULL,
		refresh    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	// Write-once-read-once hand-off values between flows.
	`CREATE TABLE IF NOT EXISTS handoff (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

// migrate applies all schema statements in order.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			// Include the first line of the statement for context.
			first := strings.SplitN(strings.TrimSpace(stmt), "\n", 2)[0]
			return &migrationError{stmt: first, err: err}
		}
	}
	return nil
}

type migrationError struct {
	stmt string
	err  error
}

func (e *migrationError) Error() string {
	return "migrate: " + e.stmt + ": " + e.err.Error()
}

func (e *migrationError) Unwrap() error {
	return e.err
}
