package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf-server/internal/domain"
)

// setupTestStore opens a store backed by a temp directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// addTestBook creates a book and returns it with its assigned ID.
func addTestBook(t *testing.T, s *Store, title, author, isbn string) *domain.Book {
	t.Helper()

	book := &domain.Book{Title: title, Author: author, ISBN: isbn}
	require.NoError(t, s.CreateBook(context.Background(), book))
	return book
}

// addTestUser registers a user with a throwaway password hash.
func addTestUser(t *testing.T, s *Store, name string) {
	t.Helper()

	user := &domain.User{Name: name, PasswordHash: "$argon2id$test"}
	require.NoError(t, s.CreateUser(context.Background(), user))
}
