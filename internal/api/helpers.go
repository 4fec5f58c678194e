package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openshelf/openshelf-server/internal/errors"
)

// decode reads and validates a JSON request body. Failures are coded
// INVALID_INPUT so they surface like any other anticipated input error.
func (s *Server) decode(r *http.Request, v any) error {
	if err := json.UnmarshalRead(r.Body, v); err != nil {
		return errors.InvalidInput("invalid request body")
	}
	return s.validator.Validate(v)
}

// bookIDParam parses the {id} path parameter.
func bookIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.InvalidInput("invalid book id")
	}
	return id, nil
}
