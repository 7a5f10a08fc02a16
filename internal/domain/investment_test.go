package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInvestment() Investment {
	inv := Investment{
		AssetName:       "Gold ETF",
		Ticker:          "GLD",
		Category:        CategoryCommodity,
		RiskLevel:       RiskModerate,
		MarketScenarios: []MarketScenario{ScenarioInflation, ScenarioStagflation},
		Quantity:        decimal.NewFromInt(8),
		PurchasePrice:   decimal.RequireFromString("185.40"),
		Fees:            decimal.RequireFromString("4.95"),
		Currency:        "USD",
	}
	inv.RecalculateTotalCost()
	return inv
}

func TestInvestmentValidate(t *testing.T) {
	inv := validInvestment()
	require.NoError(t, inv.Validate())

	tests := []struct {
		name   string
		mutate func(*Investment)
	}{
		{"empty asset name", func(i *Investment) { i.AssetName = "" }},
		{"unknown category", func(i *Investment) { i.Category = "bonds" }},
		{"unknown risk level", func(i *Investment) { i.RiskLevel = "extreme" }},
		{"unknown scenario", func(i *Investment) { i.MarketScenarios = []MarketScenario{"hyperinflation"} }},
		{"zero quantity", func(i *Investment) { i.Quantity = decimal.Zero }},
		{"negative quantity", func(i *Investment) { i.Quantity = decimal.NewFromInt(-1) }},
		{"zero purchase price", func(i *Investment) { i.PurchasePrice = decimal.Zero }},
		{"negative fees", func(i *Investment) { i.Fees = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvestment()
			tt.mutate(&inv)
			assert.Error(t, inv.Validate())
		})
	}
}

func TestRecalculateTotalCost(t *testing.T) {
	inv := validInvestment()

	// 8 * 185.40 + 4.95 = 1488.15
	assert.True(t, decimal.RequireFromString("1488.15").Equal(inv.TotalCost), "got %s", inv.TotalCost)

	inv.Quantity = decimal.NewFromInt(10)
	inv.RecalculateTotalCost()
	assert.True(t, decimal.RequireFromString("1858.95").Equal(inv.TotalCost), "got %s", inv.TotalCost)
}

func TestThrivesIn(t *testing.T) {
	inv := validInvestment()

	assert.True(t, inv.ThrivesIn(ScenarioInflation))
	assert.True(t, inv.ThrivesIn(ScenarioStagflation))
	assert.False(t, inv.ThrivesIn(ScenarioDeflation))

	inv.MarketScenarios = nil
	assert.False(t, inv.ThrivesIn(ScenarioInflation))
}

func TestEnumCatalogs(t *testing.T) {
	assert.Len(t, Categories(), 6)
	assert.Len(t, RiskLevels(), 4)
	assert.Len(t, MarketScenarios(), 7)

	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %s", c)
		info := c.Info()
		assert.NotEmpty(t, info.Label)
	}
	for _, r := range RiskLevels() {
		assert.True(t, r.Valid(), "risk level %s", r)
	}
	for _, s := range MarketScenarios() {
		assert.True(t, s.Valid(), "scenario %s", s)
		info := s.Info()
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.Description)
	}

	assert.False(t, Category("stocks").Valid())
	assert.False(t, RiskLevel("wild").Valid())
	assert.False(t, MarketScenario("boom").Valid())
}
