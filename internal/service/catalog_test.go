package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
)

func TestCatalogService_Add(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	book, err := lib.Catalog.Add(ctx, "  Dune ", " Frank Herbert ", " 9780441172719 ")
	require.NoError(t, err)

	assert.Equal(t, int64(1), book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, "9780441172719", book.ISBN)
	assert.Equal(t, domain.BookStatusAvailable, book.Status)
}

func TestCatalogService_AddEmptyFields(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	tests := []struct {
		name                string
		title, author, isbn string
	}{
		{"empty title", "", "Author", "isbn-1"},
		{"empty author", "Title", "", "isbn-1"},
		{"empty isbn", "Title", "Author", ""},
		{"whitespace title", "   ", "Author", "isbn-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lib.Catalog.Add(ctx, tt.title, tt.author, tt.isbn)
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
		})
	}
}

func TestCatalogService_AddDuplicateISBN(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")

	_, err := lib.Catalog.Add(ctx, "Other", "Other Author", "isbn-1")
	assert.ErrorIs(t, err, errors.ErrDuplicateISBN)
}

func TestCatalogService_Update(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	book := addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")

	// Empty fields keep existing values.
	updated, err := lib.Catalog.Update(ctx, book.ID, "Dune Messiah", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, "Frank Herbert", updated.Author)
	assert.Equal(t, "isbn-1", updated.ISBN)
}

func TestCatalogService_UpdateNotFound(t *testing.T) {
	lib := newTestLibrary(t)

	_, err := lib.Catalog.Update(context.Background(), 99, "Title", "", "")
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}

func TestCatalogService_Remove(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	book := addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")
	require.NoError(t, lib.Catalog.Remove(ctx, book.ID))

	_, err := lib.Catalog.Get(ctx, book.ID)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}

func TestCatalogService_RemoveBorrowed(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	book := addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")
	registerUser(t, lib, "alice")
	_, err := lib.Circulation.Borrow(ctx, "alice", book.ID)
	require.NoError(t, err)

	err = lib.Catalog.Remove(ctx, book.ID)
	assert.ErrorIs(t, err, errors.ErrBookBorrowed)
}

func TestCatalogService_ListInsertionOrder(t *testing.T) {
	lib := newTestLibrary(t)

	addBook(t, lib, "Zebra", "Z", "isbn-3")
	addBook(t, lib, "Apple", "A", "isbn-1")
	addBook(t, lib, "Mango", "M", "isbn-2")

	books, err := lib.Catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "Zebra", books[0].Title)
	assert.Equal(t, "Apple", books[1].Title)
	assert.Equal(t, "Mango", books[2].Title)
}

func TestCatalogService_Search(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	addBook(t, lib, "The Go Programming Language", "Alan Donovan", "9780134190440")
	addBook(t, lib, "Learning Go", "Jon Bodner", "9781492077213")
	addBook(t, lib, "Dune", "Frank Herbert", "9780441172719")

	tests := []struct {
		name    string
		keyword string
		want    int
	}{
		{"title match", "go", 2},
		{"case insensitive", "DUNE", 1},
		{"author match", "herbert", 1},
		{"partial isbn", "1724", 1},
		{"no match", "rust", 0},
		{"empty keyword returns all", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := lib.Catalog.Search(ctx, tt.keyword)
			require.NoError(t, err)
			assert.Len(t, books, tt.want)
		})
	}
}

func TestCatalogService_SearchByAuthor(t *testing.T) {
	lib := newTestLibrary(t)
	ctx := context.Background()

	addBook(t, lib, "Dune", "Frank Herbert", "isbn-1")
	addBook(t, lib, "Dune Messiah", "Frank Herbert", "isbn-2")
	addBook(t, lib, "Neuromancer", "William Gibson", "isbn-3")

	books, err := lib.Catalog.SearchByAuthor(ctx, "herbert")
	require.NoError(t, err)
	assert.Len(t, books, 2)

	// A title hit is not an author hit.
	books, err = lib.Catalog.SearchByAuthor(ctx, "dune")
	require.NoError(t, err)
	assert.Empty(t, books)
}
