package api

import (
	"net/http"
	"strconv"

	"github.com/openshelf/openshelf-server/internal/errors"
	"github.com/openshelf/openshelf-server/internal/http/response"
)

// handleBookStatusStats returns catalog-wide availability counts.
func (s *Server) handleBookStatusStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.library.Stats.BookStatusCounts(r.Context())
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "statistics", counts, s.logger)
}

// handleAuthorDistribution returns per-author book counts.
func (s *Server) handleAuthorDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := s.library.Stats.AuthorDistribution(r.Context())
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "distribution", dist, s.logger)
}

// handleBorrowTrend returns daily borrow counts for the requested window.
// The days query parameter defaults to 30.
func (s *Server) handleBorrowTrend(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.DomainError(w, errors.InvalidInput("days must be a positive integer"), s.logger)
			return
		}
		days = parsed
	}

	trend, err := s.library.Stats.BorrowTrend(r.Context(), days)
	if err != nil {
		response.DomainError(w, err, s.logger)
		return
	}

	response.Data(w, "trend", trend, s.logger)
}
