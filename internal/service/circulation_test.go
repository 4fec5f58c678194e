package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
)

func TestCirculationService_BorrowAndReturn(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	book := addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")
	registerUser(t, lib, "alice")

	loan, err := lib.Circulation.Borrow(ctx, "alice", book.ID)
	require.NoError(t, err)
	assert.True(t, loan.IsActive())

	current, err := lib.Catalog.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookStatusBorrowed, current.Status)

	closed, err := lib.Circulation.Return(ctx, "alice", book.ID)
	require.NoError(t, err)
	assert.False(t, closed.IsActive())

	current, err = lib.Catalog.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookStatusAvailable, current.Status)
}

func TestCirculationService_BorrowFailures(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	book := addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")
	registerUser(t, lib, "alice")
	registerUser(t, lib, "bob")

	_, err := lib.Circulation.Borrow(ctx, "nobody", book.ID)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	_, err = lib.Circulation.Borrow(ctx, "alice", 99)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)

	_, err = lib.Circulation.Borrow(ctx, "alice", book.ID)
	require.NoError(t, err)

	_, err = lib.Circulation.Borrow(ctx, "bob", book.ID)
	assert.ErrorIs(t, err, errors.ErrBookUnavailable)
}

func TestCirculationService_ReturnFailures(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	book := addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")
	registerUser(t, lib, "alice")
	registerUser(t, lib, "bob")

	_, err := lib.Circulation.Return(ctx, "alice", 99)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)

	_, err = lib.Circulation.Return(ctx, "alice", book.ID)
	assert.ErrorIs(t, err, errors.ErrNoActiveLoan)

	_, err = lib.Circulation.Borrow(ctx, "alice", book.ID)
	require.NoError(t, err)

	_, err = lib.Circulation.Return(ctx, "bob", book.ID)
	assert.ErrorIs(t, err, errors.ErrLoanMismatch)
}

func TestCirculationService_ListActiveAndHistory(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	b1 := addBook(t, lib, "First", "A", "isbn-1")
	b2 := addBook(t, lib, "Second", "B", "isbn-2")
	registerUser(t, lib, "alice")

	_, err := lib.Circulation.Borrow(ctx, "alice", b1.ID)
	require.NoError(t, err)
	_, err = lib.Circulation.Borrow(ctx, "alice", b2.ID)
	require.NoError(t, err)
	_, err = lib.Circulation.Return(ctx, "alice", b1.ID)
	require.NoError(t, err)

	active, err := lib.Circulation.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b2.ID, active[0].BookID)

	// History keeps the closed loan, oldest first.
	history, err := lib.Circulation.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, b1.ID, history[0].BookID)
	assert.False(t, history[0].IsActive())
}
