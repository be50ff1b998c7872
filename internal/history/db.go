// internal/history/db.go
//
// SQLite plumbing for the solve-history store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Creating the schema on first open (single table, idempotent).
//
// Note: This file assumes SQLite but can be adapted for other backends.

package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS solve_results (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	mode        TEXT NOT NULL,
	date        TEXT NOT NULL,
	word_length INTEGER NOT NULL,
	attempts    INTEGER NOT NULL,
	solved      INTEGER NOT NULL,
	answer      TEXT NOT NULL DEFAULT '',
	elapsed_ms  INTEGER NOT NULL,
	created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
);
CREATE INDEX IF NOT EXISTS idx_solve_results_date ON solve_results(date);
`

// Open opens (and creates if missing) the SQLite history database.
//
// - Ensures the parent directory exists for relative DSNs (e.g. ./data/solver.db).
// - Configures busy timeout and WAL journaling mode.
// - Enforces foreign keys.
// - Applies the schema (idempotent).
func Open(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/solver.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
