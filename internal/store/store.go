// Package store persists the library catalog, user directory, and circulation
// ledger in a Badger key-value database.
//
// Entities are JSON records under typed key prefixes (book:, user:, loan:).
// Uniqueness invariants are enforced with index keys written in the same
// transaction as the record they guard: book:idx:isbn:<isbn> holds the catalog
// ISBN constraint, and loan:idx:active:<book_id> existing IS the
// one-active-loan-per-copy invariant. Borrow and return touch the loan record,
// the active index, and the book status inside a single transaction, so no
// caller can observe one effect without the other.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

const (
	bookKeyPrefix   = "book:"
	userKeyPrefix   = "user:"
	loanKeyPrefix   = "loan:"
	isbnIndexPrefix = "book:idx:isbn:"
	activeIdxPrefix = "loan:idx:active:"

	bookSeqKey = "seq:book"
	loanSeqKey = "seq:loan"
)

// Store wraps a Badger database instance holding the combined
// catalog + directory + ledger state.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// mu serializes all mutating operations. The entity count is small, so a
	// single coarse lock over the combined state is sufficient; readers go
	// through snapshot View transactions and never block on it.
	mu sync.Mutex

	bookSeq *badger.Sequence
	loanSeq *badger.Sequence
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	// Bandwidth 1 keeps IDs dense across restarts: nothing is leased ahead,
	// so a crash never burns a range of unissued IDs.
	bookSeq, err := db.GetSequence([]byte(bookSeqKey), 1)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open book sequence: %w", err)
	}
	loanSeq, err := db.GetSequence([]byte(loanSeqKey), 1)
	if err != nil {
		_ = bookSeq.Release()
		_ = db.Close()
		return nil, fmt.Errorf("failed to open loan sequence: %w", err)
	}

	store := &Store{
		db:      db,
		logger:  logger,
		bookSeq: bookSeq,
		loanSeq: loanSeq,
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close releases the ID sequences and closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}

	err := errors.Join(
		s.bookSeq.Release(),
		s.loanSeq.Release(),
	)
	return errors.Join(err, s.db.Close())
}

// Helper functions for reading and writing JSON records inside transactions.

// getJSON reads the value at key into dest.
// Returns badger.ErrKeyNotFound unchanged so callers can translate it.
func getJSON(txn *badger.Txn, key []byte, dest any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dest)
	})
}

// unmarshalJSON decodes a raw value into dest. Used by iterators.
func unmarshalJSON(val []byte, dest any) error {
	return json.Unmarshal(val, dest)
}

// setJSON marshals value and writes it at key.
func setJSON(txn *badger.Txn, key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}
	return txn.Set(key, data)
}

// checkContext is the shared guard at the top of every store operation.
func checkContext(ctx context.Context) error {
	return ctx.Err()
}
