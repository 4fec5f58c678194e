package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/service"
	"github.com/openshelf/openshelf-server/internal/store"
)

// newTestLibrary wires the full service layer over a temp-dir store.
func newTestLibrary(t *testing.T) *service.LibraryService {
	t.Helper()

	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return service.NewLibraryService(s, logger.Discard().Logger)
}

func addBook(t *testing.T, lib *service.LibraryService, title, author, isbn string) *domain.Book {
	t.Helper()

	book, err := lib.Catalog.Add(context.Background(), title, author, isbn)
	require.NoError(t, err)
	return book
}

func registerUser(t *testing.T, lib *service.LibraryService, name string) {
	t.Helper()

	_, err := lib.Users.Register(context.Background(), name, "secret")
	require.NoError(t, err)
}
