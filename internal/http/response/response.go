// Package response writes the JSON envelope the API speaks:
// {success, message?, <data_key>: ...}. Anticipated domain failures go out
// as HTTP 200 with success=false; only unexpected faults produce a 500.
package response

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"

	domainerrors "github.com/openshelf/openshelf-server/internal/errors"
)

func write(w http.ResponseWriter, status int, body map[string]any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	// json/v2 MarshalWrite doesn't add a newline, but that's fine for HTTP responses.
	if err := json.MarshalWrite(w, body); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// OK writes a bare success envelope.
func OK(w http.ResponseWriter, logger *slog.Logger) {
	write(w, http.StatusOK, map[string]any{"success": true}, logger)
}

// Data writes a success envelope carrying a payload under the given key.
func Data(w http.ResponseWriter, key string, value any, logger *slog.Logger) {
	write(w, http.StatusOK, map[string]any{"success": true, key: value}, logger)
}

// Success writes a success envelope with a human-readable message.
func Success(w http.ResponseWriter, message string, logger *slog.Logger) {
	write(w, http.StatusOK, map[string]any{"success": true, "message": message}, logger)
}

// Failure writes a success=false envelope at the given status.
func Failure(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	write(w, status, map[string]any{"success": false, "message": message}, logger)
}

// DomainError maps an error onto the wire. Coded domain errors are
// anticipated outcomes and go out as 200 with their message; anything else
// is logged and hidden behind a generic 500.
func DomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var domainErr *domainerrors.Error
	if domainerrors.As(err, &domainErr) {
		Failure(w, http.StatusOK, domainErr.Message, logger)
		return
	}

	if logger != nil {
		logger.Error("Unexpected error handling request", "error", err)
	}
	Failure(w, http.StatusInternalServerError, "internal server error", logger)
}

// RouteNotFound writes the 404 envelope for unknown API paths.
func RouteNotFound(w http.ResponseWriter, logger *slog.Logger) {
	Failure(w, http.StatusNotFound, "API endpoint not found", logger)
}

// Raw writes v as-is, outside the envelope. Used by the health check.
func Raw(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.MarshalWrite(w, v); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}
