package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/investment-tracker/internal/domain"
)

// Fixed UUIDs for the starter lots so repeated seeding stays idempotent
var (
	seedEquityETF = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	seedBitcoin   = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	seedGold      = uuid.MustParse("00000000-0000-0000-0000-000000000103")
	seedBonds     = uuid.MustParse("00000000-0000-0000-0000-000000000104")
	seedCash      = uuid.MustParse("00000000-0000-0000-0000-000000000105")
)

// Seeder populates an empty lot store with a small starter portfolio so
// the dashboard has something to show on first run
type Seeder struct {
	repo domain.InvestmentRepository
}

// NewSeeder creates a new Seeder instance
func NewSeeder(repo domain.InvestmentRepository) *Seeder {
	return &Seeder{repo: repo}
}

// Seed writes the starter portfolio if and only if no lots are stored
func (s *Seeder) Seed(ctx context.Context) error {
	existing, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load investments: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	investments := starterPortfolio()
	for i := range investments {
		if err := investments[i].Validate(); err != nil {
			return fmt.Errorf("invalid seed lot %q: %w", investments[i].AssetName, err)
		}
	}

	if err := s.repo.Save(ctx, investments); err != nil {
		return fmt.Errorf("failed to save seed investments: %w", err)
	}

	return nil
}

func starterPortfolio() []domain.Investment {
	purchaseDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	lots := []domain.Investment{
		{
			ID:              seedEquityETF,
			AssetName:       "Vanguard World Equity ETF",
			Ticker:          "VT",
			Category:        domain.CategoryEquity,
			RiskLevel:       domain.RiskModerate,
			MarketScenarios: []domain.MarketScenario{domain.ScenarioGrowth, domain.ScenarioLowInterest},
			PurchaseDate:    purchaseDate,
			Quantity:        decimal.NewFromInt(50),
			PurchasePrice:   decimal.RequireFromString("105.20"),
			Fees:            decimal.RequireFromString("9.95"),
			Currency:        "USD",
			DataSource:      domain.DataSourceManual,
		},
		{
			ID:              seedBitcoin,
			AssetName:       "Bitcoin",
			Ticker:          "BTC",
			Category:        domain.CategoryCrypto,
			RiskLevel:       domain.RiskSpeculative,
			MarketScenarios: []domain.MarketScenario{domain.ScenarioInflation, domain.ScenarioGrowth},
			PurchaseDate:    purchaseDate,
			Quantity:        decimal.RequireFromString("0.05"),
			PurchasePrice:   decimal.NewFromInt(62000),
			Fees:            decimal.RequireFromString("15.50"),
			Currency:        "USD",
			DataSource:      domain.DataSourceManual,
		},
		{
			ID:              seedGold,
			AssetName:       "SPDR Gold Shares",
			Ticker:          "GLD",
			Category:        domain.CategoryCommodity,
			RiskLevel:       domain.RiskModerate,
			MarketScenarios: []domain.MarketScenario{domain.ScenarioInflation, domain.ScenarioStagflation},
			PurchaseDate:    purchaseDate,
			Quantity:        decimal.NewFromInt(20),
			PurchasePrice:   decimal.RequireFromString("190.40"),
			Fees:            decimal.RequireFromString("9.95"),
			Currency:        "USD",
			DataSource:      domain.DataSourceManual,
		},
		{
			ID:              seedBonds,
			AssetName:       "iShares 20+ Year Treasury Bond ETF",
			Ticker:          "TLT",
			Category:        domain.CategoryFixedIncome,
			RiskLevel:       domain.RiskSafe,
			MarketScenarios: []domain.MarketScenario{domain.ScenarioDeflation, domain.ScenarioHighInterest},
			PurchaseDate:    purchaseDate,
			Quantity:        decimal.NewFromInt(30),
			PurchasePrice:   decimal.RequireFromString("92.15"),
			Fees:            decimal.RequireFromString("9.95"),
			Currency:        "USD",
			DataSource:      domain.DataSourceManual,
		},
		{
			ID:              seedCash,
			AssetName:       "High-Yield Savings",
			Category:        domain.CategoryCash,
			RiskLevel:       domain.RiskSafe,
			MarketScenarios: []domain.MarketScenario{domain.ScenarioHighInterest, domain.ScenarioRecession},
			PurchaseDate:    purchaseDate,
			Quantity:        decimal.NewFromInt(5000),
			PurchasePrice:   decimal.NewFromInt(1),
			Fees:            decimal.Zero,
			Currency:        "USD",
			DataSource:      domain.DataSourceManual,
		},
	}

	for i := range lots {
		lots[i].RecalculateTotalCost()
	}

	return lots
}
