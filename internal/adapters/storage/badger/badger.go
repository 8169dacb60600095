package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"training-reels/internal/core/domain"

	"github.com/dgraph-io/badger/v4"
)

// Store is a key value store backed by badger
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens the badger database at path. An empty path keeps everything in memory.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	db, err := badger.Open(buildOptions(ctx, path, logger))
	if err != nil {
		return nil, fmt.Errorf("could not open badger at %q: %w", path, err)
	}
	return NewStore(db, logger), nil
}

// NewStore wraps an open badger database
func NewStore(db *badger.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func buildOptions(ctx context.Context, path string, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		options = options.WithInMemory(true)
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}

// Get returns a copy of the value stored under key or domain.ErrRecordNotFound
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: key %s", domain.ErrRecordNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read key %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("could not write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key, a missing key is not an error
func (s *Store) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("could not delete key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
