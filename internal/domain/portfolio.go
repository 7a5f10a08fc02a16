package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Portfolio is a derived snapshot of the full lot list with aggregate
// totals. It is recomputed on every analytics call and never persisted
// as its own entity; only TotalValue feeds the historical time series.
type Portfolio struct {
	Investments          []Investment    `json:"investments"`
	TotalValue           decimal.Decimal `json:"totalValue"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	TotalGainLoss        decimal.Decimal `json:"totalGainLoss"`
	TotalGainLossPercent decimal.Decimal `json:"totalGainLossPercent"`
	LastUpdated          time.Time       `json:"lastUpdated"`
}

// DateFormat is the calendar-day format used by historical data points.
// Lexicographic order on formatted dates matches chronological order.
const DateFormat = "2006-01-02"

// HistoricalDataPoint is one (calendar day, portfolio value) sample
type HistoricalDataPoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// NewHistoricalDataPoint builds a point for the calendar day of t
func NewHistoricalDataPoint(t time.Time, value decimal.Decimal) HistoricalDataPoint {
	return HistoricalDataPoint{
		Date:  t.Format(DateFormat),
		Value: value,
	}
}

// BreakdownGroup holds the aggregate for one classifier key (one asset
// category or one risk level)
type BreakdownGroup struct {
	Key        string          `json:"key"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
	Count      int             `json:"count"`
}

// ScenarioAnalysis describes how well the portfolio is positioned for
// one market scenario
type ScenarioAnalysis struct {
	Scenario    MarketScenario `json:"scenario"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	// Exposure is the percentage of total portfolio value held in lots
	// tagged for this scenario, rounded to 2 decimal places
	Exposure        decimal.Decimal `json:"exposure"`
	ExposureValue   decimal.Decimal `json:"exposureValue"`
	InvestmentCount int             `json:"investmentCount"`
	// StrengthScore is a 0-100 composite of exposure magnitude and
	// category diversity
	StrengthScore int `json:"strengthScore"`
}

// PriceQuote is a resolved market price for one normalized symbol
type PriceQuote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	LastUpdated   time.Time       `json:"lastUpdated"`
	// Source identifies the provider that resolved the quote
	Source DataSource `json:"source"`
}
