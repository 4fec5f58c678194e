package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
)

// bookKey builds the primary key for a book ID. IDs are zero-padded so that
// lexicographic key order matches numeric order, which keeps prefix iteration
// in insertion order (IDs are monotonic).
func bookKey(id int64) []byte {
	return fmt.Appendf(nil, "%s%012d", bookKeyPrefix, id)
}

// isbnKey builds the ISBN uniqueness index key.
func isbnKey(isbn string) []byte {
	return []byte(isbnIndexPrefix + isbn)
}

// CreateBook assigns the next catalog ID to the book and persists it.
// The ISBN index is checked and written in the same transaction, so two
// concurrent adds can never both claim the same ISBN.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.bookSeq.Next()
	if err != nil {
		return fmt.Errorf("next book id: %w", err)
	}
	book.ID = int64(next) + 1 // sequence starts at 0, catalog IDs at 1
	book.Status = domain.BookStatusAvailable
	book.InitTimestamps()

	err = s.db.Update(func(txn *badger.Txn) error {
		// Claim the ISBN.
		_, err := txn.Get(isbnKey(book.ISBN))
		if err == nil {
			return errors.DuplicateISBN("a book with ISBN %s already exists", book.ISBN)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check isbn index: %w", err)
		}

		if err := setJSON(txn, bookKey(book.ID), book); err != nil {
			return fmt.Errorf("set book: %w", err)
		}
		return txn.Set(isbnKey(book.ISBN), fmt.Appendf(nil, "%d", book.ID))
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "book created",
			slog.Int64("id", book.ID),
			slog.String("title", book.Title),
			slog.String("isbn", book.ISBN),
		)
	}
	return nil
}

// GetBook retrieves a book by ID.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var book domain.Book
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, bookKey(id), &book)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.BookNotFound("book %d not found", id)
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &book, nil
}

// UpdateBook applies a partial update to a book's descriptive fields.
// Empty fields keep their existing values. Status is never altered here;
// only borrow/return transitions may flip it.
func (s *Store) UpdateBook(ctx context.Context, id int64, title, author, isbn string) (*domain.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var book domain.Book
	err := s.db.Update(func(txn *badger.Txn) error {
		err := getJSON(txn, bookKey(id), &book)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.BookNotFound("book %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		if title != "" {
			book.Title = title
		}
		if author != "" {
			book.Author = author
		}
		if isbn != "" && isbn != book.ISBN {
			// The new ISBN must not belong to a different book.
			_, err := txn.Get(isbnKey(isbn))
			if err == nil {
				return errors.DuplicateISBN("a book with ISBN %s already exists", isbn)
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("check isbn index: %w", err)
			}

			if err := txn.Delete(isbnKey(book.ISBN)); err != nil {
				return fmt.Errorf("delete old isbn index: %w", err)
			}
			if err := txn.Set(isbnKey(isbn), fmt.Appendf(nil, "%d", id)); err != nil {
				return fmt.Errorf("set isbn index: %w", err)
			}
			book.ISBN = isbn
		}

		book.Touch()
		return setJSON(txn, bookKey(id), &book)
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "book updated",
			slog.Int64("id", id),
			slog.String("title", book.Title),
		)
	}
	return &book, nil
}

// DeleteBook permanently removes a book from the catalog.
// A borrowed copy must be returned first. Historical loans referencing the
// book are retained; they record the ID and title by value.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var book domain.Book
	err := s.db.Update(func(txn *badger.Txn) error {
		err := getJSON(txn, bookKey(id), &book)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.BookNotFound("book %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		if book.IsBorrowed() {
			return errors.BookBorrowed("book %d is currently borrowed and must be returned first", id)
		}

		if err := txn.Delete(isbnKey(book.ISBN)); err != nil {
			return fmt.Errorf("delete isbn index: %w", err)
		}
		return txn.Delete(bookKey(id))
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "book deleted",
			slog.Int64("id", id),
			slog.String("title", book.Title),
		)
	}
	return nil
}

// ListBooks returns all books in insertion order.
func (s *Store) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	books := make([]*domain.Book, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(bookKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(bookKeyPrefix)); it.ValidForPrefix([]byte(bookKeyPrefix)); it.Next() {
			// Skip index keys sharing the prefix.
			key := string(it.Item().Key())
			if strings.HasPrefix(key[len(bookKeyPrefix):], "idx:") {
				continue
			}

			var book domain.Book
			err := it.Item().Value(func(val []byte) error {
				return unmarshalJSON(val, &book)
			})
			if err != nil {
				return err
			}
			books = append(books, &book)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// CountBooksByStatus tallies the catalog by circulation state.
func (s *Store) CountBooksByStatus(ctx context.Context) (available, borrowed int, err error) {
	books, err := s.ListBooks(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, b := range books {
		if b.IsBorrowed() {
			borrowed++
		} else {
			available++
		}
	}
	return available, borrowed, nil
}
