// Package db provides sqlite storage for aide.
package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection.
type DB struct {
	*sqlx.DB
	path string
}

// DefaultDBPath returns the default database path under ~/.aide.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aide", "aide.db")
	}
	return filepath.Join(home, ".aide", "aide.db")
}

// Open opens or creates the database and runs migrations. An empty path
// selects the default location.
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultDBPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &DB{DB: db, path: path}

	if err := d.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return d, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// DataDir returns the directory holding the database, used for aide files
// and task logs.
func (d *DB) DataDir() string {
	return filepath.Dir(d.path)
}

// migrate runs database migrations and seeds the default task_log aide.
func (d *DB) migrate() error {
	migrations := []string{
		migrationAides,
		migrationData,
		migrationTasks,
		migrationConfig,
		migrationIndexes,
	}

	for _, m := range migrations {
		if _, err := d.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	if _, err := d.Exec(seedTaskLogAide); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	return nil
}

// ClearAll wipes tasks, aides, and data, then reseeds the default task_log
// aide. Configuration keys survive a clear.
func (d *DB) ClearAll() error {
	stmts := []string{
		`DELETE FROM data`,
		`DELETE FROM tasks`,
		`DELETE FROM aides`,
		seedTaskLogAide,
	}
	for _, s := range stmts {
		if _, err := d.Exec(s); err != nil {
			return fmt.Errorf("clear failed: %w", err)
		}
	}
	return nil
}

const migrationAides = `
CREATE TABLE IF NOT EXISTS aides (
    id INTEGER PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    aide_type TEXT NOT NULL
);
`

const migrationData = `
CREATE TABLE IF NOT EXISTS data (
    id TEXT PRIMARY KEY,
    aide_id INTEGER NOT NULL,
    input_text TEXT NOT NULL,
    command_output TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (aide_id) REFERENCES aides (id)
);
`

const migrationTasks = `
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    priority INTEGER NOT NULL DEFAULT 3,
    status TEXT NOT NULL DEFAULT 'created',
    task_log_file_path TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

const migrationConfig = `
CREATE TABLE IF NOT EXISTS config_data (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

const migrationIndexes = `
CREATE INDEX IF NOT EXISTS idx_data_aide_id ON data(aide_id);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
`

const seedTaskLogAide = `
INSERT OR IGNORE INTO aides (name, aide_type) VALUES ('task_log', 'file');
`
