package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/investment-tracker/internal/domain"
)

func setupDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInvestmentRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewInvestmentRepository(db, zerolog.Nop())

	inv := domain.Investment{
		ID:              uuid.New(),
		AssetName:       "Bitcoin",
		Ticker:          "BTC",
		Category:        domain.CategoryCrypto,
		RiskLevel:       domain.RiskSpeculative,
		MarketScenarios: []domain.MarketScenario{domain.ScenarioInflation, domain.ScenarioGrowth},
		Quantity:        decimal.RequireFromString("0.05"),
		PurchasePrice:   decimal.NewFromInt(62000),
		Fees:            decimal.RequireFromString("15.50"),
		Currency:        "USD",
	}
	inv.RecalculateTotalCost()

	require.NoError(t, repo.Save(ctx, []domain.Investment{inv}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, inv.ID, loaded[0].ID)
	assert.Equal(t, inv.Ticker, loaded[0].Ticker)
	assert.True(t, inv.TotalCost.Equal(loaded[0].TotalCost))
	assert.Equal(t, inv.MarketScenarios, loaded[0].MarketScenarios)
}

func TestInvestmentRepository_EmptyStoreLoadsEmptyList(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentRepository(setupDB(t), zerolog.Nop())

	loaded, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestInvestmentRepository_MalformedBlobLoadsEmptyList(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewInvestmentRepository(db, zerolog.Nop())

	require.NoError(t, db.setValue(ctx, investmentsKey, "{not json"))

	loaded, err := repo.Load(ctx)

	require.NoError(t, err, "corruption is recovered locally, never surfaced")
	assert.Empty(t, loaded)
}

func TestHistoryRepository_SeriesAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(setupDB(t), zerolog.Nop())

	portfolioPoints := []domain.HistoricalDataPoint{
		{Date: "2026-02-10", Value: decimal.NewFromInt(1450)},
	}
	require.NoError(t, repo.Save(ctx, "portfolio", portfolioPoints))

	loaded, err := repo.Load(ctx, "portfolio")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "2026-02-10", loaded[0].Date)
	assert.True(t, decimal.NewFromInt(1450).Equal(loaded[0].Value))

	other, err := repo.Load(ctx, "benchmark")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSettingsRepository_DefaultsAndMerge(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewSettingsRepository(db, zerolog.Nop())

	settings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	// A partial stored blob keeps defaults for absent fields
	require.NoError(t, db.setValue(ctx, settingsKey, `{"autoRefresh":true}`))

	settings, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, settings.AutoRefresh)
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, 15, settings.RefreshInterval)

	settings.Currency = "EUR"
	require.NoError(t, repo.Save(ctx, settings))

	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", reloaded.Currency)
}
