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
	"github.com/openshelf/openshelf-server/internal/id"
)

// loanRecordKey builds the primary key for a loan. The monotonic sequence
// number is zero-padded so prefix iteration yields loans in borrow order.
func loanRecordKey(seq uint64) []byte {
	return fmt.Appendf(nil, "%s%012d", loanKeyPrefix, seq)
}

// activeLoanKey builds the open-loan index key for a book. The existence of
// this key is the one-active-loan-per-copy invariant; its value is the loan's
// record key.
func activeLoanKey(bookID int64) []byte {
	return fmt.Appendf(nil, "%s%d", activeIdxPrefix, bookID)
}

// BorrowBook opens a loan for the given user and book.
//
// The loan record, the active-loan index entry, and the book's status flip to
// BORROWED are written in a single transaction: either all three happen or
// none do.
func (s *Store) BorrowBook(ctx context.Context, userName string, bookID int64) (*domain.Loan, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	loanID, err := id.Generate("loan")
	if err != nil {
		return nil, fmt.Errorf("generate loan id: %w", err)
	}
	seq, err := s.loanSeq.Next()
	if err != nil {
		return nil, fmt.Errorf("next loan seq: %w", err)
	}

	var loan domain.Loan
	err = s.db.Update(func(txn *badger.Txn) error {
		// The borrower must be registered.
		var user domain.User
		err := getJSON(txn, userKey(userName), &user)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.UserNotFound("user %s is not registered", userName)
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		var book domain.Book
		err = getJSON(txn, bookKey(bookID), &book)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.BookNotFound("book %d not found", bookID)
		}
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		if book.IsBorrowed() {
			return errors.BookUnavailable("book %q is already borrowed", book.Title)
		}

		loan = domain.Loan{
			ID:         loanID,
			BookID:     bookID,
			BookTitle:  book.Title,
			UserName:   userName,
			BorrowedAt: time.Now(),
		}
		if err := setJSON(txn, loanRecordKey(seq), &loan); err != nil {
			return fmt.Errorf("set loan: %w", err)
		}
		if err := txn.Set(activeLoanKey(bookID), loanRecordKey(seq)); err != nil {
			return fmt.Errorf("set active index: %w", err)
		}

		book.Status = domain.BookStatusBorrowed
		book.Touch()
		return setJSON(txn, bookKey(bookID), &book)
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "loan opened",
			slog.String("loan_id", loan.ID),
			slog.Int64("book_id", bookID),
			slog.String("user", userName),
		)
	}
	return &loan, nil
}

// ReturnBook closes the open loan for the given book.
//
// The returning user must match the borrower on the open loan. Closing the
// loan, removing the active index entry, and flipping the book back to
// AVAILABLE happen in one transaction.
func (s *Store) ReturnBook(ctx context.Context, userName string, bookID int64) (*domain.Loan, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var loan domain.Loan
	err := s.db.Update(func(txn *badger.Txn) error {
		var book domain.Book
		err := getJSON(txn, bookKey(bookID), &book)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.BookNotFound("book %d not found", bookID)
		}
		if err != nil {
			return fmt.Errorf("get book: %w", err)
		}

		// Locate the open loan through the active index.
		item, err := txn.Get(activeLoanKey(bookID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.NoActiveLoan("book %q is not currently borrowed", book.Title)
		}
		if err != nil {
			return fmt.Errorf("get active index: %w", err)
		}

		var loanKey []byte
		if err := item.Value(func(val []byte) error {
			loanKey = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return fmt.Errorf("read active index: %w", err)
		}

		if err := getJSON(txn, loanKey, &loan); err != nil {
			return fmt.Errorf("get loan: %w", err)
		}

		if loan.UserName != userName {
			return errors.LoanMismatch("book %q was borrowed by %s", book.Title, loan.UserName)
		}

		loan.Close(time.Now())
		if err := setJSON(txn, loanKey, &loan); err != nil {
			return fmt.Errorf("set loan: %w", err)
		}
		if err := txn.Delete(activeLoanKey(bookID)); err != nil {
			return fmt.Errorf("delete active index: %w", err)
		}

		book.Status = domain.BookStatusAvailable
		book.Touch()
		return setJSON(txn, bookKey(bookID), &book)
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "loan closed",
			slog.String("loan_id", loan.ID),
			slog.Int64("book_id", bookID),
			slog.String("user", userName),
		)
	}
	return &loan, nil
}

// ListLoans returns the full circulation history, oldest first.
func (s *Store) ListLoans(ctx context.Context) ([]*domain.Loan, error) {
	return s.listLoans(ctx, false)
}

// ListActiveLoans returns open loans ordered by borrow time ascending.
func (s *Store) ListActiveLoans(ctx context.Context) ([]*domain.Loan, error) {
	return s.listLoans(ctx, true)
}

func (s *Store) listLoans(ctx context.Context, activeOnly bool) ([]*domain.Loan, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	loans := make([]*domain.Loan, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(loanKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(loanKeyPrefix)); it.ValidForPrefix([]byte(loanKeyPrefix)); it.Next() {
			key := string(it.Item().Key())
			if strings.HasPrefix(key[len(loanKeyPrefix):], "idx:") {
				continue
			}

			var loan domain.Loan
			err := it.Item().Value(func(val []byte) error {
				return unmarshalJSON(val, &loan)
			})
			if err != nil {
				return err
			}
			if activeOnly && !loan.IsActive() {
				continue
			}
			loans = append(loans, &loan)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}
