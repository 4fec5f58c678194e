package service

import (
	"log/slog"

	"github.com/openshelf/openshelf-server/internal/store"
)

// LibraryService bundles the member, catalog, circulation, and stats
// services behind one constructor so callers wire a single dependency.
type LibraryService struct {
	Users       *UserService
	Catalog     *CatalogService
	Circulation *CirculationService
	Stats       *StatsService
}

// NewLibraryService creates the full service layer over one store.
func NewLibraryService(store *store.Store, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		Users:       NewUserService(store, logger),
		Catalog:     NewCatalogService(store, logger),
		Circulation: NewCirculationService(store, logger),
		Stats:       NewStatsService(store, logger),
	}
}
