package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/simaogato/investment-tracker/internal/domain"
)

const historyKeyPrefix = "investment-tracker-historical-"

// historyRepository implements domain.HistoryRepository
type historyRepository struct {
	db  *DB
	log zerolog.Logger
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *DB, log zerolog.Logger) domain.HistoryRepository {
	return &historyRepository{
		db:  db,
		log: log.With().Str("component", "history_repo").Logger(),
	}
}

// Load retrieves all points for the series, oldest first
func (r *historyRepository) Load(ctx context.Context, series string) ([]domain.HistoricalDataPoint, error) {
	raw, found, err := r.db.getValue(ctx, historyKeyPrefix+series)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.HistoricalDataPoint{}, nil
	}

	var points []domain.HistoricalDataPoint
	if err := json.Unmarshal([]byte(raw), &points); err != nil {
		r.log.Warn().Err(err).Str("series", series).Msg("Malformed history blob, treating as empty")
		return []domain.HistoricalDataPoint{}, nil
	}

	return points, nil
}

// Save replaces all points for the series
func (r *historyRepository) Save(ctx context.Context, series string, points []domain.HistoricalDataPoint) error {
	if points == nil {
		points = []domain.HistoricalDataPoint{}
	}

	raw, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to marshal history series %q: %w", series, err)
	}

	return r.db.setValue(ctx, historyKeyPrefix+series, string(raw))
}
