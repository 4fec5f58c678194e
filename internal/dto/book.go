// Package dto provides client-facing representations of domain records.
//
// DTOs carry denormalized fields the frontend renders directly (the
// is_borrowed flag, loan dates as plain strings) so responses are
// self-contained.
package dto

import (
	"time"

	"github.com/openshelf/openshelf-server/internal/domain"
)

// Book is the client-facing representation of a catalog entry. Status and
// IsBorrowed carry the same fact in both shapes the frontend uses.
type Book struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	ISBN       string    `json:"isbn"`
	Status     string    `json:"status"`
	IsBorrowed bool      `json:"is_borrowed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromBook converts a domain book.
func FromBook(b *domain.Book) Book {
	return Book{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		ISBN:       b.ISBN,
		Status:     string(b.Status),
		IsBorrowed: b.IsBorrowed(),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromBooks converts a slice of domain books, preserving order. The result
// is never nil so empty lists serialize as [] rather than null.
func FromBooks(books []*domain.Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		out = append(out, FromBook(b))
	}
	return out
}
