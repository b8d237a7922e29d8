// Package storage persists canonical ledgers in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is a SQLite-backed ledger store.
type Store struct {
	db     *sql.DB
	dbPath string
}

// migrations are applied in order; PRAGMA user_version tracks progress.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS transactions (
		hash        TEXT PRIMARY KEY,
		date        TEXT NOT NULL,
		description TEXT NOT NULL,
		amount      TEXT NOT NULL,
		type        TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		reason      TEXT NOT NULL DEFAULT '',
		source      TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);`,

	`CREATE TABLE IF NOT EXISTS ingests (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		source       TEXT NOT NULL,
		strategy     TEXT NOT NULL,
		transactions INTEGER NOT NULL,
		warnings     TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`,
}

// New opens (creating if needed) a ledger store at dbPath.
func New(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := s.db.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}
	return nil
}
