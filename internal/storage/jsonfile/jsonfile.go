// Package jsonfile persists the ledger as a single JSON file, the on-disk
// counterpart of the widget's browser storage.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mmynk/evenup/internal/models"
	"github.com/mmynk/evenup/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store reads and writes one JSON file holding an array of person records.
type Store struct {
	path string
}

// New returns a store backed by path, creating the parent directory.
// The file itself is created on the first Save.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load reads the file. A missing file is an empty ledger.
func (s *Store) Load(ctx context.Context) (models.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Ledger{}, nil
	}
	if err != nil {
		return models.Ledger{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	l, err := storage.Decode(data)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return l, nil
}

// Save overwrites the file. The data is written to a temporary file first and
// renamed into place so readers never observe a partial write.
func (s *Store) Save(ctx context.Context, l models.Ledger) error {
	data, err := storage.Encode(l)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *Store) Close() error { return nil }
