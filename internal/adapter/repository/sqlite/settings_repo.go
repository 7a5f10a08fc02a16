package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/simaogato/investment-tracker/internal/domain"
)

const settingsKey = "investment-tracker-settings"

// settingsRepository implements domain.SettingsRepository
type settingsRepository struct {
	db  *DB
	log zerolog.Logger
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *DB, log zerolog.Logger) domain.SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With().Str("component", "settings_repo").Logger(),
	}
}

// Load retrieves settings. Stored values are unmarshaled over the
// defaults, so fields absent from an older blob keep their default.
// A missing key or malformed blob yields the defaults.
func (r *settingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	raw, found, err := r.db.getValue(ctx, settingsKey)
	if err != nil {
		return settings, err
	}
	if !found {
		return settings, nil
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		r.log.Warn().Err(err).Msg("Malformed settings blob, using defaults")
		return domain.DefaultSettings(), nil
	}

	return settings, nil
}

// Save persists the full settings blob
func (r *settingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return r.db.setValue(ctx, settingsKey, string(raw))
}
