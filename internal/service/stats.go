package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/openshelf/openshelf-server/internal/domain"
	"github.com/openshelf/openshelf-server/internal/errors"
	"github.com/openshelf/openshelf-server/internal/store"
)

// Bounds on the borrow trend window.
const (
	defaultTrendDays = 30
	maxTrendDays     = 365
)

// StatsService derives reporting data from the catalog and the loan ledger.
type StatsService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(store *store.Store, logger *slog.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
	}
}

// BookStatusCounts returns catalog-wide availability counts plus the number
// of registered members.
func (s *StatsService) BookStatusCounts(ctx context.Context) (*domain.BookStatusCounts, error) {
	available, borrowed, err := s.store.CountBooksByStatus(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.BookStatusCounts{
		TotalBooks:     available + borrowed,
		AvailableBooks: available,
		BorrowedBooks:  borrowed,
		TotalUsers:     users,
	}, nil
}

// AuthorDistribution returns per-author book counts, most prolific first.
// Ties break alphabetically so the ordering is stable.
func (s *StatsService) AuthorDistribution(ctx context.Context) ([]domain.AuthorCount, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, b := range books {
		counts[b.Author]++
	}

	dist := make([]domain.AuthorCount, 0, len(counts))
	for author, n := range counts {
		dist = append(dist, domain.AuthorCount{Author: author, BookCount: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].BookCount != dist[j].BookCount {
			return dist[i].BookCount > dist[j].BookCount
		}
		return dist[i].Author < dist[j].Author
	})
	return dist, nil
}

// BorrowTrend returns the number of loans opened on each of the last days
// calendar days, ending today. Days with no borrows appear with a zero
// count. The window is capped at a year.
func (s *StatsService) BorrowTrend(ctx context.Context, days int) ([]domain.TrendPoint, error) {
	if days < 1 {
		return nil, errors.InvalidInput("days must be at least 1")
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}

	loans, err := s.store.ListLoans(ctx)
	if err != nil {
		return nil, err
	}

	// Bucket by local calendar date.
	perDay := make(map[string]int, days)
	for _, loan := range loans {
		perDay[loan.BorrowedAt.Format(time.DateOnly)]++
	}

	now := time.Now()
	trend := make([]domain.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(time.DateOnly)
		trend = append(trend, domain.TrendPoint{Date: date, Count: perDay[date]})
	}
	return trend, nil
}
