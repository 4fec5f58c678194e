package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
	"github.com/openshelf/openshelf-server/internal/store"
)

// CatalogService manages the book catalog.
type CatalogService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *store.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// Add registers a new book. The store assigns the next sequence ID and the
// book starts out available.
func (s *CatalogService) Add(ctx context.Context, title, author, isbn string) (*domain.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	isbn = strings.TrimSpace(isbn)

	if title == "" {
		return nil, errors.InvalidInput("book title cannot be empty")
	}
	if author == "" {
		return nil, errors.InvalidInput("book author cannot be empty")
	}
	if isbn == "" {
		return nil, errors.InvalidInput("book ISBN cannot be empty")
	}

	book := &domain.Book{
		Title:  title,
		Author: author,
		ISBN:   isbn,
	}
	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info("book added", "id", book.ID, "title", book.Title, "isbn", book.ISBN)
	return book, nil
}

// Update changes a book's details. Empty fields keep their current values;
// the borrow status is never touched here.
func (s *CatalogService) Update(ctx context.Context, id int64, title, author, isbn string) (*domain.Book, error) {
	book, err := s.store.UpdateBook(ctx, id,
		strings.TrimSpace(title),
		strings.TrimSpace(author),
		strings.TrimSpace(isbn),
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book updated", "id", book.ID, "title", book.Title)
	return book, nil
}

// Remove hard-deletes a book. A borrowed copy cannot be removed.
func (s *CatalogService) Remove(ctx context.Context, id int64) error {
	if err := s.store.DeleteBook(ctx, id); err != nil {
		return err
	}

	s.logger.Info("book removed", "id", id)
	return nil
}

// Get returns a single book by ID.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	return s.store.GetBook(ctx, id)
}

// List returns all books in insertion order.
func (s *CatalogService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.store.ListBooks(ctx)
}

// Search returns books whose title, author, or ISBN contains the keyword,
// case-insensitively. An empty keyword returns the full catalog.
func (s *CatalogService) Search(ctx context.Context, keyword string) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Book, 0, len(books))
	for _, b := range books {
		if b.Matches(keyword) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// SearchByAuthor returns books whose author contains the given fragment,
// case-insensitively.
func (s *CatalogService) SearchByAuthor(ctx context.Context, author string) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Book, 0, len(books))
	for _, b := range books {
		if b.MatchesAuthor(author) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}
