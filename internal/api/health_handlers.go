package api

import (
	"net/http"

	"github.com/openshelf/openshelf-server/internal/http/response"
)

// handleHealthCheck reports liveness. The body is deliberately outside the
// usual envelope so probes can match it verbatim.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Raw(w, http.StatusOK, map[string]string{"status": "healthy"}, s.logger)
}
