// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads every person in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) (models.Ledger, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, money FROM people ORDER BY position",
	)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var (
			p     models.Person
			money string
		)
		if err := rows.Scan(&p.ID, &p.Name, &money); err != nil {
			return models.Ledger{}, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Money, err = decimal.NewFromString(money)
		if err != nil {
			return models.Ledger{}, fmt.Errorf("%w: person %d money %q", storage.ErrCorrupt, p.ID, money)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return models.Ledger{}, fmt.Errorf("failed to iterate people: %w", err)
	}

	return models.Restore(people), nil
}

// Save replaces the stored people with the contents of l in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, l models.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM people"); err != nil {
		return fmt.Errorf("failed to clear people: %w", err)
	}

	for i, p := range l.People() {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO people (id, position, name, money, difference) VALUES (?, ?, ?, ?, ?)",
			p.ID, i, p.Name, p.Money.String(), p.Difference.StringFixed(1),
		)
		if err != nil {
			return fmt.Errorf("failed to insert person %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
