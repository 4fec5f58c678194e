// Package domain contains the core business entities for the OpenShelf library catalog.
package domain

import (
	"strings"
	"time"
)

// BookStatus represents the circulation state of a book copy.
type BookStatus string

const (
	// BookStatusAvailable indicates the copy is on the shelf and can be borrowed.
	BookStatusAvailable BookStatus = "AVAILABLE"
	// BookStatusBorrowed indicates the copy is out on an active loan.
	BookStatusBorrowed BookStatus = "BORROWED"
)

// Book represents a book copy in the catalog.
//
// Status is a materialized view of the circulation ledger: it equals BORROWED
// exactly when an open loan exists for this copy, and is only ever flipped
// inside a borrow or return transaction.
type Book struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	ISBN      string     `json:"isbn"`
	Status    BookStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsBorrowed returns true if the copy is out on an active loan.
func (b *Book) IsBorrowed() bool {
	return b.Status == BookStatusBorrowed
}

// Touch updates the UpdatedAt timestamp to the current time.
// Call this whenever the underlying record changes.
func (b *Book) Touch() {
	b.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new record.
func (b *Book) InitTimestamps() {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Matches reports whether the keyword occurs in the title, author, or ISBN,
// ignoring case. An empty keyword matches everything.
func (b *Book) Matches(keyword string) bool {
	if keyword == "" {
		return true
	}
	kw := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(b.Title), kw) ||
		strings.Contains(strings.ToLower(b.Author), kw) ||
		strings.Contains(strings.ToLower(b.ISBN), kw)
}

// MatchesAuthor reports whether the keyword occurs in the author name, ignoring case.
func (b *Book) MatchesAuthor(author string) bool {
	if author == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Author), strings.ToLower(author))
}
