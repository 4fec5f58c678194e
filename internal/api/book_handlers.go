package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openshelf/openshelf-server/internal/dto"
	"github.com/openshelf/openshelf-server/internal/http/response"
)

// AddBookRequest contains the details of a new catalog entry.
type AddBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
}

// UpdateBookRequest contains fields to change on a book. Empty fields keep
// their current values.
type UpdateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// handleListBooks returns the full catalog in insertion order.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.library.Catalog.List(r.Context())
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "books", dto.FromBooks(books), s.logger)
}

// handleAddBook registers a new book.
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var req AddBookRequest
	if err := s.decode(r, &req); err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	book, err := s.library.Catalog.Add(r.Context(), req.Title, req.Author, req.ISBN)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "book", dto.FromBook(book), s.logger)
}

// handleUpdateBook changes a book's details.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	var req UpdateBookRequest
	if err := s.decode(r, &req); err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	book, err := s.library.Catalog.Update(r.Context(), id, req.Title, req.Author, req.ISBN)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "book", dto.FromBook(book), s.logger)
}

// handleDeleteBook removes a book from the catalog.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	if err := s.library.Catalog.Remove(r.Context(), id); err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Success(w, fmt.Sprintf("book %d deleted successfully", id), s.logger)
}

// handleSearchBooks searches title, author, and ISBN for the keyword.
func (s *Server) handleSearchBooks(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	books, err := s.library.Catalog.Search(r.Context(), keyword)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "books", dto.FromBooks(books), s.logger)
}

// handleSearchByAuthor returns books whose author matches the path fragment.
func (s *Server) handleSearchByAuthor(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")

	books, err := s.library.Catalog.SearchByAuthor(r.Context(), author)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "books", dto.FromBooks(books), s.logger)
}
