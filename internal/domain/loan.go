package domain

import "time"

// Loan is a single borrow/return record in the circulation ledger.
//
// Loans are append-mostly history: a loan is created on borrow, closed on
// return, and never deleted. At most one loan per book may be open (no
// ReturnedAt) at any time. BookTitle is denormalized so history survives a
// hard delete of the book record.
type Loan struct {
	ID         string     `json:"id"`
	BookID     int64      `json:"book_id"`
	BookTitle  string     `json:"book_title"`
	UserName   string     `json:"user_name"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

// IsActive returns true while the book is still out.
func (l *Loan) IsActive() bool {
	return l.ReturnedAt == nil
}

// Close marks the loan as returned at the given time.
func (l *Loan) Close(at time.Time) {
	l.ReturnedAt = &at
}
