package api

import (
	"fmt"
	"net/http"

	"github.com/openshelf/openshelf-server/internal/dto"
	"github.com/openshelf/openshelf-server/internal/http/response"
)

// CirculationRequest identifies the member and the copy for a borrow or a
// return.
type CirculationRequest struct {
	UserName string `json:"user_name" validate:"required"`
	BookID   int64  `json:"book_id" validate:"required,gte=1"`
}

// handleBorrow checks a book out to a member.
func (s *Server) handleBorrow(w http.ResponseWriter, r *http.Request) {
	var req CirculationRequest
	if err := s.decode(r, &req); err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	loan, err := s.library.Circulation.Borrow(r.Context(), req.UserName, req.BookID)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Success(w, fmt.Sprintf("%s borrowed %q", loan.UserName, loan.BookTitle), s.logger)
}

// handleReturn closes a member's active loan.
func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	var req CirculationRequest
	if err := s.decode(r, &req); err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	loan, err := s.library.Circulation.Return(r.Context(), req.UserName, req.BookID)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Success(w, fmt.Sprintf("%s returned %q", loan.UserName, loan.BookTitle), s.logger)
}

// handleListBorrowed returns all open loans in borrow order.
func (s *Server) handleListBorrowed(w http.ResponseWriter, r *http.Request) {
	loans, err := s.library.Circulation.ListActive(r.Context())
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "borrowed_books", dto.FromLoans(loans), s.logger)
}
