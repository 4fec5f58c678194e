package dto

import (
	"time"

	"github.com/openshelf/openshelf-server/internal/domain"
)

// BorrowedRecord is the client-facing representation of a loan. Dates are
// RFC 3339 strings; ReturnDate is empty while the book is still out.
type BorrowedRecord struct {
	BookID     int64  `json:"book_id"`
	BookTitle  string `json:"book_title"`
	UserName   string `json:"user_name"`
	BorrowDate string `json:"borrow_date"`
	ReturnDate string `json:"return_date"`
}

// FromLoan converts a domain loan.
func FromLoan(l *domain.Loan) BorrowedRecord {
	rec := BorrowedRecord{
		BookID:     l.BookID,
		BookTitle:  l.BookTitle,
		UserName:   l.UserName,
		BorrowDate: l.BorrowedAt.Format(time.RFC3339),
	}
	if l.ReturnedAt != nil {
		rec.ReturnDate = l.ReturnedAt.Format(time.RFC3339)
	}
	return rec
}

// FromLoans converts a slice of domain loans, preserving order.
func FromLoans(loans []*domain.Loan) []BorrowedRecord {
	out := make([]BorrowedRecord, 0, len(loans))
	for _, l := range loans {
		out = append(out, FromLoan(l))
	}
	return out
}
