package service

import (
	"context"
	"log/slog"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/store"
)

// CirculationService manages borrowing and returning books.
type CirculationService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewCirculationService creates a new circulation service.
func NewCirculationService(store *store.Store, logger *slog.Logger) *CirculationService {
	return &CirculationService{
		store:  store,
		logger: logger,
	}
}

// Borrow checks the book out to the named member. The loan record and the
// status flip commit together; a copy can be out to at most one member.
func (s *CirculationService) Borrow(ctx context.Context, userName string, bookID int64) (*domain.Loan, error) {
	loan, err := s.store.BorrowBook(ctx, userName, bookID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book borrowed",
		"loan_id", loan.ID,
		"book_id", loan.BookID,
		"user", loan.UserName,
	)
	return loan, nil
}

// Return closes the member's active loan on the book. Only the member who
// borrowed the copy may return it.
func (s *CirculationService) Return(ctx context.Context, userName string, bookID int64) (*domain.Loan, error) {
	loan, err := s.store.ReturnBook(ctx, userName, bookID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book returned",
		"loan_id", loan.ID,
		"book_id", loan.BookID,
		"user", loan.UserName,
	)
	return loan, nil
}

// ListActive returns all open loans in borrow order.
func (s *CirculationService) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	return s.store.ListActiveLoans(ctx)
}

// History returns every loan ever recorded, oldest first. Loan records are
// kept even after the book they cover is removed from the catalog.
func (s *CirculationService) History(ctx context.Context) ([]*domain.Loan, error) {
	return s.store.ListLoans(ctx)
}
