package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/simaogato/investment-tracker/internal/domain"
)

const investmentsKey = "investment-tracker-investments"

// investmentRepository implements domain.InvestmentRepository
type investmentRepository struct {
	db  *DB
	log zerolog.Logger
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *DB, log zerolog.Logger) domain.InvestmentRepository {
	return &investmentRepository{
		db:  db,
		log: log.With().Str("component", "investment_repo").Logger(),
	}
}

// Load retrieves the full lot list. A missing key or a malformed blob
// loads as an empty list; corruption is recovered locally, never
// surfaced to the engine.
func (r *investmentRepository) Load(ctx context.Context) ([]domain.Investment, error) {
	raw, found, err := r.db.getValue(ctx, investmentsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Investment{}, nil
	}

	var investments []domain.Investment
	if err := json.Unmarshal([]byte(raw), &investments); err != nil {
		r.log.Warn().Err(err).Msg("Malformed investments blob, treating as empty")
		return []domain.Investment{}, nil
	}

	return investments, nil
}

// Save replaces the full lot list
func (r *investmentRepository) Save(ctx context.Context, investments []domain.Investment) error {
	if investments == nil {
		investments = []domain.Investment{}
	}

	raw, err := json.Marshal(investments)
	if err != nil {
		return fmt.Errorf("failed to marshal investments: %w", err)
	}

	return r.db.setValue(ctx, investmentsKey, string(raw))
}
