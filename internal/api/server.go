// Package api provides the HTTP API server and handlers for the OpenShelf
// library service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openshelf/openshelf-server/internal/http/response"
	"github.com/openshelf/openshelf-server/internal/service"
	"github.com/openshelf/openshelf-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	library   *service.LibraryService
	validator *validation.Validator
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// corsOrigins lists the allowed origins; ["*"] allows everything.
func NewServer(library *service.LibraryService, corsOrigins []string, logger *slog.Logger) *Server {
	s := &Server{
		library:   library,
		validator: validation.New(),
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware(corsOrigins)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(corsOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", s.handleListBooks)
			r.Post("/", s.handleAddBook)
			r.Get("/search", s.handleSearchBooks)
			r.Get("/author/{author}", s.handleSearchByAuthor)
			r.Put("/{id}", s.handleUpdateBook)
			r.Delete("/{id}", s.handleDeleteBook)
		})

		r.Post("/borrow", s.handleBorrow)
		r.Post("/return", s.handleReturn)
		r.Get("/borrowed", s.handleListBorrowed)

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/book-status", s.handleBookStatusStats)
			r.Get("/author-distribution", s.handleAuthorDistribution)
			r.Get("/borrow-trend", s.handleBorrowTrend)
		})

		r.Get("/health", s.handleHealthCheck)
	})

	// Anything else is an unknown endpoint.
	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.RouteNotFound(w, s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.RouteNotFound(w, s.logger)
	})
}
