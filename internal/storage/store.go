// Package storage provides abstractions for persisting a ledger.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/evenup/internal/models"
)

// ErrCorrupt marks stored data that exists but cannot be decoded.
var ErrCorrupt = errors.New("stored ledger is corrupt")

// Store defines how the ledger is persisted.
// The ledger is always read and written as a whole; there are no partial updates.
type Store interface {
	// Load returns the persisted ledger. A store that holds nothing yet
	// returns an empty ledger and no error.
	Load(ctx context.Context) (models.Ledger, error)

	// Save replaces whatever was persisted with l.
	Save(ctx context.Context, l models.Ledger) error

	// Close releases any resources held by the store.
	Close() error
}
