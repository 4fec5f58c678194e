package api

import (
	"fmt"
	"net/http"

	"github.com/openshelf/openshelf-server/internal/http/response"
)

// RegisterRequest contains member registration data.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// handleRegister creates a new member account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := s.decode(r, &req); err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	user, err := s.library.Users.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Success(w, fmt.Sprintf("user %s registered successfully", user.Name), s.logger)
}
