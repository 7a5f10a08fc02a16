package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category represents the asset class of an investment
type Category string

const (
	CategoryEquity      Category = "equity"
	CategoryCommodity   Category = "commodity"
	CategoryCrypto      Category = "crypto"
	CategoryFixedIncome Category = "fixed-income"
	CategoryRealEstate  Category = "real-estate"
	CategoryCash        Category = "cash"
)

// Categories returns all asset categories in display order
func Categories() []Category {
	return []Category{
		CategoryEquity,
		CategoryCommodity,
		CategoryCrypto,
		CategoryFixedIncome,
		CategoryRealEstate,
		CategoryCash,
	}
}

// Valid reports whether the category is one of the known asset classes
func (c Category) Valid() bool {
	switch c {
	case CategoryEquity, CategoryCommodity, CategoryCrypto,
		CategoryFixedIncome, CategoryRealEstate, CategoryCash:
		return true
	}
	return false
}

// RiskLevel represents the risk classification of an investment
type RiskLevel string

const (
	RiskSafe        RiskLevel = "safe"
	RiskModerate    RiskLevel = "moderate"
	RiskRisky       RiskLevel = "risky"
	RiskSpeculative RiskLevel = "speculative"
)

// RiskLevels returns all risk levels in display order (safest first)
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskSafe, RiskModerate, RiskRisky, RiskSpeculative}
}

// Valid reports whether the risk level is one of the known classifications
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskSafe, RiskModerate, RiskRisky, RiskSpeculative:
		return true
	}
	return false
}

// DataSource identifies where an investment's current price came from
type DataSource string

const (
	DataSourceYahoo        DataSource = "yahoo"
	DataSourceAlphaVantage DataSource = "alphavantage"
	DataSourceManual       DataSource = "manual"
)

// Investment represents one purchased position (a lot) in the portfolio
type Investment struct {
	ID        uuid.UUID `json:"id"`
	AssetName string    `json:"assetName"`
	// Ticker is the optional market symbol. Empty means prices must be
	// supplied manually and valuation falls back to the purchase price.
	Ticker          string           `json:"ticker,omitempty"`
	Category        Category         `json:"category"`
	RiskLevel       RiskLevel        `json:"riskLevel"`
	MarketScenarios []MarketScenario `json:"marketScenarios"`

	// Purchase details
	PurchaseDate  time.Time       `json:"purchaseDate"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Fees          decimal.Decimal `json:"fees"`
	// TotalCost = Quantity * PurchasePrice + Fees, computed at
	// creation/edit time and stored (not recomputed downstream)
	TotalCost decimal.Decimal `json:"totalCost"`

	// Current data (fetched from price providers)
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	LastUpdated  *time.Time       `json:"lastUpdated,omitempty"`
	Currency     string           `json:"currency"`

	// Additional metadata
	Notes      string     `json:"notes,omitempty"`
	DataSource DataSource `json:"dataSource,omitempty"`
}

// RecalculateTotalCost recomputes the stored total cost from quantity,
// purchase price, and fees. Must be called whenever any of those change.
func (i *Investment) RecalculateTotalCost() {
	i.TotalCost = i.Quantity.Mul(i.PurchasePrice).Add(i.Fees)
}

// Validate ensures the investment adheres to domain rules
// Returns an error if validation fails
func (i *Investment) Validate() error {
	if i.AssetName == "" {
		return errors.New("asset name cannot be empty")
	}

	if !i.Category.Valid() {
		return errors.New("unknown investment category")
	}

	if !i.RiskLevel.Valid() {
		return errors.New("unknown risk level")
	}

	for _, scenario := range i.MarketScenarios {
		if !scenario.Valid() {
			return errors.New("unknown market scenario")
		}
	}

	if i.Quantity.LessThanOrEqual(decimal.Zero) {
		return errors.New("quantity must be positive")
	}

	if i.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return errors.New("purchase price must be positive")
	}

	if i.Fees.IsNegative() {
		return errors.New("fees cannot be negative")
	}

	return nil
}

// ThrivesIn reports whether this investment is tagged for the given
// market scenario
func (i *Investment) ThrivesIn(scenario MarketScenario) bool {
	for _, s := range i.MarketScenarios {
		if s == scenario {
			return true
		}
	}
	return false
}
