package domain

import (
	"context"
	"errors"
)

// ErrInvestmentNotFound is returned when an investment ID does not exist
var ErrInvestmentNotFound = errors.New("investment not found")

// ErrInvalidInvestment wraps domain validation failures so transport
// layers can map them to client errors
var ErrInvalidInvestment = errors.New("invalid investment")

// InvestmentRepository defines the interface for lot persistence operations.
// The full lot list is loaded and saved as a unit; callers take data by
// value and the engine holds no ambient state.
type InvestmentRepository interface {
	// Load retrieves the full lot list. Missing or malformed stored
	// data loads as an empty list, never an error.
	Load(ctx context.Context) ([]Investment, error)

	// Save replaces the full lot list
	Save(ctx context.Context, investments []Investment) error
}

// HistoryRepository defines the interface for time-series persistence.
// Each series is an independent ordered list of points under its own key.
type HistoryRepository interface {
	// Load retrieves all points for the series, oldest first
	Load(ctx context.Context, series string) ([]HistoricalDataPoint, error)

	// Save replaces all points for the series
	Save(ctx context.Context, series string, points []HistoricalDataPoint) error
}

// SettingsRepository defines the interface for settings persistence
type SettingsRepository interface {
	// Load retrieves settings, merging stored values over defaults
	Load(ctx context.Context) (Settings, error)

	// Save persists the full settings blob
	Save(ctx context.Context, settings Settings) error
}

// SymbolRequest identifies a quoted instrument by its raw ticker and
// category. The category drives symbol normalization (crypto tickers map
// to exchange pairs).
type SymbolRequest struct {
	Symbol   string
	Category Category
}

// PriceProvider fetches current market prices for a batch of symbols.
// The result map is keyed by the raw (uppercased, trimmed) request
// symbol; symbols the provider could not resolve are absent, which means
// "no update" rather than an error.
type PriceProvider interface {
	FetchQuotes(ctx context.Context, requests []SymbolRequest) (map[string]PriceQuote, error)
}
