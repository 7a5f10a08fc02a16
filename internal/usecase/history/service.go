package history

import (
	"context"
	"fmt"

	"github.com/simaogato/investment-tracker/internal/domain"
)

// Service exposes the time series through the injected repository.
// It is the single writer for every series; readers get snapshots.
type Service struct {
	HistoryRepo domain.HistoryRepository
}

// NewService creates a new history Service instance
func NewService(historyRepo domain.HistoryRepository) *Service {
	return &Service{HistoryRepo: historyRepo}
}

// Record appends a point to the series, applying the dedup/sort/trim
// invariants. Repeated same-day calls are idempotent apart from the
// value, which is last-write-wins.
func (s *Service) Record(ctx context.Context, series string, point domain.HistoricalDataPoint) error {
	points, err := s.HistoryRepo.Load(ctx, series)
	if err != nil {
		return fmt.Errorf("failed to load series %q: %w", series, err)
	}

	if err := s.HistoryRepo.Save(ctx, series, Append(points, point)); err != nil {
		return fmt.Errorf("failed to save series %q: %w", series, err)
	}

	return nil
}

// List returns the ordered point sequence for the series, oldest first.
// The returned slice is the caller's to keep; mutating it does not
// affect stored data.
func (s *Service) List(ctx context.Context, series string) ([]domain.HistoricalDataPoint, error) {
	points, err := s.HistoryRepo.Load(ctx, series)
	if err != nil {
		return nil, fmt.Errorf("failed to load series %q: %w", series, err)
	}

	out := make([]domain.HistoricalDataPoint, len(points))
	copy(out, points)
	return out, nil
}
