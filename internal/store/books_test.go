package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
)

// TestCreateBook tests creating a new book
func TestCreateBook(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	book := addTestBook(t, s, "Dune", "Frank Herbert", "978-0441013593")
	assert.Equal(t, int64(1), book.ID)
	assert.Equal(t, domain.BookStatusAvailable, book.Status)
	assert.False(t, book.CreatedAt.IsZero())

	retrieved, err := s.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.Title, retrieved.Title)
	assert.Equal(t, book.Author, retrieved.Author)
	assert.Equal(t, book.ISBN, retrieved.ISBN)
	assert.Equal(t, domain.BookStatusAvailable, retrieved.Status)
}

// TestCreateBook_MonotonicIDs tests that IDs are assigned in increasing order
func TestCreateBook_MonotonicIDs(t *testing.T) {
	s := setupTestStore(t)

	var lastID int64
	for i := 0; i < 5; i++ {
		book := addTestBook(t, s, fmt.Sprintf("Book %d", i), "Author", fmt.Sprintf("isbn-%d", i))
		assert.Greater(t, book.ID, lastID)
		lastID = book.ID
	}
}

// TestCreateBook_DuplicateISBN tests that a second book with the same ISBN is rejected
func TestCreateBook_DuplicateISBN(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	addTestBook(t, s, "First", "Author", "dup-isbn")

	second := &domain.Book{Title: "Second", Author: "Other", ISBN: "dup-isbn"}
	err := s.CreateBook(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateISBN)

	// Catalog size unchanged.
	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

// TestGetBook_NotFound tests getting a nonexistent book
func TestGetBook_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetBook(context.Background(), 42)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}

// TestUpdateBook_PartialUpdate tests that empty fields keep existing values
func TestUpdateBook_PartialUpdate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	book := addTestBook(t, s, "Original Title", "Original Author", "isbn-1")

	updated, err := s.UpdateBook(ctx, book.ID, "New Title", "", "")
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Original Author", updated.Author)
	assert.Equal(t, "isbn-1", updated.ISBN)
}

// TestUpdateBook_StatusUntouched tests that update never alters circulation status
func TestUpdateBook_StatusUntouched(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	book := addTestBook(t, s, "Title", "Author", "isbn-1")
	addTestUser(t, s, "bob")
	_, err := s.BorrowBook(ctx, "bob", book.ID)
	require.NoError(t, err)

	updated, err := s.UpdateBook(ctx, book.ID, "Renamed", "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.BookStatusBorrowed, updated.Status)
}

// TestUpdateBook_DuplicateISBN tests ISBN collision with a different book
func TestUpdateBook_DuplicateISBN(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	addTestBook(t, s, "First", "Author", "isbn-1")
	second := addTestBook(t, s, "Second", "Author", "isbn-2")

	_, err := s.UpdateBook(ctx, second.ID, "", "", "isbn-1")
	assert.ErrorIs(t, err, errors.ErrDuplicateISBN)

	// Re-submitting a book's own ISBN is not a collision.
	_, err = s.UpdateBook(ctx, second.ID, "", "", "isbn-2")
	assert.NoError(t, err)
}

// TestUpdateBook_ISBNIndexMoved tests that the old ISBN is freed after a change
func TestUpdateBook_ISBNIndexMoved(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	book := addTestBook(t, s, "First", "Author", "isbn-old")

	_, err := s.UpdateBook(ctx, book.ID, "", "", "isbn-new")
	require.NoError(t, err)

	// The old ISBN can now be claimed by a new book.
	other := &domain.Book{Title: "Second", Author: "Author", ISBN: "isbn-old"}
	assert.NoError(t, s.CreateBook(ctx, other))
}

// TestUpdateBook_NotFound tests updating a nonexistent book
func TestUpdateBook_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.UpdateBook(context.Background(), 42, "Title", "", "")
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}

// TestDeleteBook tests removing a book
func TestDeleteBook(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	book := addTestBook(t, s, "Title", "Author", "isbn-1")

	require.NoError(t, s.DeleteBook(ctx, book.ID))

	_, err := s.GetBook(ctx, book.ID)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)

	// The ISBN is freed for reuse.
	other := &domain.Book{Title: "Replacement", Author: "Author", ISBN: "isbn-1"}
	assert.NoError(t, s.CreateBook(ctx, other))
}

// TestDeleteBook_Borrowed tests that a borrowed book cannot be removed
func TestDeleteBook_Borrowed(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	book := addTestBook(t, s, "Title", "Author", "isbn-1")
	addTestUser(t, s, "bob")
	_, err := s.BorrowBook(ctx, "bob", book.ID)
	require.NoError(t, err)

	err = s.DeleteBook(ctx, book.ID)
	assert.ErrorIs(t, err, errors.ErrBookBorrowed)

	// After returning, removal succeeds.
	_, err = s.ReturnBook(ctx, "bob", book.ID)
	require.NoError(t, err)
	assert.NoError(t, s.DeleteBook(ctx, book.ID))
}

// TestDeleteBook_NotFound tests removing a nonexistent book
func TestDeleteBook_NotFound(t *testing.T) {
	s := setupTestStore(t)

	err := s.DeleteBook(context.Background(), 42)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}

// TestListBooks_InsertionOrder tests that listing preserves insertion order
func TestListBooks_InsertionOrder(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	titles := []string{"Alpha", "Beta", "Gamma", "Delta"}
	for i, title := range titles {
		addTestBook(t, s, title, "Author", fmt.Sprintf("isbn-%d", i))
	}

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, len(titles))
	for i, book := range books {
		assert.Equal(t, titles[i], book.Title)
	}
}

// TestListBooks_Empty tests listing an empty catalog
func TestListBooks_Empty(t *testing.T) {
	s := setupTestStore(t)

	books, err := s.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
}

// TestCountBooksByStatus tests the status tally
func TestCountBooksByStatus(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	b1 := addTestBook(t, s, "One", "A", "isbn-1")
	addTestBook(t, s, "Two", "A", "isbn-2")
	addTestBook(t, s, "Three", "B", "isbn-3")
	addTestUser(t, s, "bob")

	_, err := s.BorrowBook(ctx, "bob", b1.ID)
	require.NoError(t, err)

	available, borrowed, err := s.CountBooksByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, available)
	assert.Equal(t, 1, borrowed)
}
