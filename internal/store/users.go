package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
)

// userKey builds the primary key for a user name.
func userKey(name string) []byte {
	return []byte(userKeyPrefix + name)
}

// CreateUser persists a new user. The name is the primary key, so uniqueness
// is checked and the record written in one transaction.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user.CreatedAt = time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(user.Name))
		if err == nil {
			return errors.DuplicateUser("user %s already exists", user.Name)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check user exists: %w", err)
		}
		return setJSON(txn, userKey(user.Name), user)
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "user registered",
			slog.String("name", user.Name),
		)
	}
	return nil
}

// GetUser retrieves a user by name.
func (s *Store) GetUser(ctx context.Context, name string) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var user domain.User
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(name), &user)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.UserNotFound("user %s not found", name)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(userKeyPrefix)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(userKeyPrefix)); it.ValidForPrefix([]byte(userKeyPrefix)); it.Next() {
			key := string(it.Item().Key())
			if strings.HasPrefix(key[len(userKeyPrefix):], "idx:") {
				continue
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
