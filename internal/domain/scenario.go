package domain

// MarketScenario is a market condition tag. Investments carry the set of
// scenarios under which they are expected to perform well.
type MarketScenario string

const (
	ScenarioInflation    MarketScenario = "inflation"
	ScenarioDeflation    MarketScenario = "deflation"
	ScenarioStagflation  MarketScenario = "stagflation"
	ScenarioRecession    MarketScenario = "recession"
	ScenarioGrowth       MarketScenario = "growth"
	ScenarioHighInterest MarketScenario = "high-interest"
	ScenarioLowInterest  MarketScenario = "low-interest"
)

// MarketScenarios returns the fixed closed set of scenarios in
// enumeration order. This order is the tie-break order for scenario
// analysis ranking.
func MarketScenarios() []MarketScenario {
	return []MarketScenario{
		ScenarioInflation,
		ScenarioDeflation,
		ScenarioStagflation,
		ScenarioRecession,
		ScenarioGrowth,
		ScenarioHighInterest,
		ScenarioLowInterest,
	}
}

// Valid reports whether the scenario is one of the known market conditions
func (s MarketScenario) Valid() bool {
	switch s {
	case ScenarioInflation, ScenarioDeflation, ScenarioStagflation,
		ScenarioRecession, ScenarioGrowth, ScenarioHighInterest, ScenarioLowInterest:
		return true
	}
	return false
}

// ScenarioInfo carries static reference data for a market scenario
type ScenarioInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var scenarioCatalog = map[MarketScenario]ScenarioInfo{
	ScenarioInflation: {
		Label:       "High Inflation",
		Description: "Rising prices, devaluing currency",
	},
	ScenarioDeflation: {
		Label:       "Deflation",
		Description: "Falling prices, strengthening currency",
	},
	ScenarioStagflation: {
		Label:       "Stagflation",
		Description: "High inflation with economic stagnation",
	},
	ScenarioRecession: {
		Label:       "Recession",
		Description: "Economic downturn, reduced spending",
	},
	ScenarioGrowth: {
		Label:       "Economic Growth",
		Description: "Expanding economy, increasing corporate profits",
	},
	ScenarioHighInterest: {
		Label:       "High Interest Rates",
		Description: "Central bank raising rates to control inflation",
	},
	ScenarioLowInterest: {
		Label:       "Low Interest Rates",
		Description: "Central bank lowering rates to stimulate growth",
	},
}

// Info returns the static label and description for the scenario
func (s MarketScenario) Info() ScenarioInfo {
	return scenarioCatalog[s]
}

// CategoryInfo carries static reference data for an asset category
type CategoryInfo struct {
	Label            string           `json:"label"`
	Description      string           `json:"description"`
	TypicalScenarios []MarketScenario `json:"typicalScenarios"`
}

var categoryCatalog = map[Category]CategoryInfo{
	CategoryEquity: {
		Label:            "Stocks & Equity",
		Description:      "Stocks, ETFs, and equity investments",
		TypicalScenarios: []MarketScenario{ScenarioGrowth, ScenarioLowInterest},
	},
	CategoryCommodity: {
		Label:            "Commodities",
		Description:      "Gold, silver, oil, agricultural products",
		TypicalScenarios: []MarketScenario{ScenarioInflation, ScenarioStagflation},
	},
	CategoryCrypto: {
		Label:            "Cryptocurrency",
		Description:      "Bitcoin, Ethereum, and other cryptocurrencies",
		TypicalScenarios: []MarketScenario{ScenarioInflation, ScenarioGrowth},
	},
	CategoryFixedIncome: {
		Label:            "Fixed Income",
		Description:      "Bonds, CDs, treasury securities",
		TypicalScenarios: []MarketScenario{ScenarioDeflation, ScenarioHighInterest},
	},
	CategoryRealEstate: {
		Label:            "Real Estate",
		Description:      "REITs, property investments",
		TypicalScenarios: []MarketScenario{ScenarioInflation, ScenarioGrowth},
	},
	CategoryCash: {
		Label:            "Cash & Cash Equivalents",
		Description:      "Savings accounts, money market funds",
		TypicalScenarios: []MarketScenario{ScenarioHighInterest, ScenarioRecession},
	},
}

// Info returns the static label, description, and typical scenarios for
// the category
func (c Category) Info() CategoryInfo {
	return categoryCatalog[c]
}

// RiskLevelInfo carries static reference data for a risk level
type RiskLevelInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var riskCatalog = map[RiskLevel]RiskLevelInfo{
	RiskSafe:        {Label: "Safe", Description: "Low volatility, capital preservation"},
	RiskModerate:    {Label: "Moderate", Description: "Balanced risk and return"},
	RiskRisky:       {Label: "Risky", Description: "Higher volatility, potential for good returns"},
	RiskSpeculative: {Label: "Speculative", Description: "Very high risk, potential for large gains or losses"},
}

// Info returns the static label and description for the risk level
func (r RiskLevel) Info() RiskLevelInfo {
	return riskCatalog[r]
}
