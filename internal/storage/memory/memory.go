// Package memory provides an in-process implementation of storage.Store.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps the last saved ledger in memory. It holds the encoded form so
// loads go through the same decoding as the persistent backends.
type Store struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// New returns an empty store.
func New() *Store { return &Store{} }

// NewWithData returns a store whose contents are the raw serialized bytes.
// It is mostly useful for exercising corrupt data.
func NewWithData(data []byte) *Store {
	return &Store{data: append([]byte(nil), data...)}
}

// Load decodes the last saved ledger.
func (s *Store) Load(ctx context.Context) (models.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.Decode(s.data)
}

// Save replaces the stored ledger.
func (s *Store) Save(ctx context.Context, l models.Ledger) error {
	data, err := storage.Encode(l)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
