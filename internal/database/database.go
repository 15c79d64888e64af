// Package database implements the local store for applications, tasks,
// notes, and settings on top of SQLite.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const dbFileName = "jobtrackr.db"

// tables is the declarative schema: one entry per store, applied
// idempotently on every open. Adding a table is a one-entry change.
var tables = []struct {
	name   string
	schema string
}{
	{
		name: "applications",
		schema: `CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			job_title TEXT NOT NULL,
			company TEXT NOT NULL,
			status TEXT NOT NULL,
			application_date TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	},
	{
		name: "tasks",
		schema: `CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL DEFAULT '',
			completed INTEGER NOT NULL DEFAULT 0,
			application_id TEXT,
			created_at TEXT NOT NULL
		)`,
	},
	{
		name: "notes",
		schema: `CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	},
	{
		name: "settings",
		schema: `CREATE TABLE IF NOT EXISTS settings (
			id TEXT PRIMARY KEY,
			theme TEXT NOT NULL,
			language TEXT NOT NULL,
			auto_save INTEGER NOT NULL,
			onboarding_completed INTEGER NOT NULL
		)`,
	},
}

// Open creates dir if needed and opens the SQLite database inside it,
// running migrations before returning. Open failures are reported as
// ErrStorageUnavailable.
func Open(dir string) (*sql.DB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrStorageUnavailable, err)
	}

	dbPath := filepath.Join(dir, dbFileName)

	// DSN options for SQLite pragmas
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", ErrStorageUnavailable, err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates any missing tables.
func RunMigrations(db *sql.DB) error {
	for _, t := range tables {
		if _, err := db.Exec(t.schema); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}
