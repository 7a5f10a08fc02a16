// Package prices fetches current market quotes from the Yahoo Finance
// chart API, falling back to Alpha Vantage when an API key is
// configured. Symbols that cannot be resolved are simply absent from
// the result; a failed quote never fails the whole batch.
package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/simaogato/investment-tracker/internal/domain"
)

const (
	defaultBaseURL             = "https://query1.finance.yahoo.com"
	defaultAlphaVantageBaseURL = "https://www.alphavantage.co"
)

// Yahoo tolerates modest request rates from browser-like clients
const requestsPerSecond = 4

// Client fetches quotes over HTTP. It implements domain.PriceProvider.
type Client struct {
	httpClient      *http.Client
	limiter         *rate.Limiter
	baseURL         string
	alphaVantageURL string
	// alphaVantageKey enables the fallback provider; empty disables it
	alphaVantageKey string
	log             zerolog.Logger
}

// Option customizes the client
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithAlphaVantageKey enables the Alpha Vantage fallback provider
func WithAlphaVantageKey(key string) Option {
	return func(c *Client) {
		c.alphaVantageKey = key
	}
}

// WithAlphaVantageBaseURL overrides the fallback API base URL (used by
// tests)
func WithAlphaVantageBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.alphaVantageURL = baseURL
	}
}

// NewClient creates a new quote client
func NewClient(log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		limiter:         rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		baseURL:         defaultBaseURL,
		alphaVantageURL: defaultAlphaVantageBaseURL,
		log:             log.With().Str("component", "prices").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// FetchQuotes fetches a quote for each requested symbol. The result map
// is keyed by the raw request symbol; unresolved symbols are absent.
func (c *Client) FetchQuotes(ctx context.Context, requests []domain.SymbolRequest) (map[string]domain.PriceQuote, error) {
	quotes := make(map[string]domain.PriceQuote, len(requests))

	for _, req := range requests {
		if err := c.limiter.Wait(ctx); err != nil {
			return quotes, fmt.Errorf("rate limit wait: %w", err)
		}

		normalized := NormalizeSymbol(req.Symbol, string(req.Category))
		quote, err := c.fetchQuote(ctx, normalized)
		if err != nil && c.alphaVantageKey != "" {
			c.log.Warn().Err(err).Str("symbol", normalized).Msg("Quote fetch failed, trying Alpha Vantage")
			if err := c.limiter.Wait(ctx); err != nil {
				return quotes, fmt.Errorf("rate limit wait: %w", err)
			}
			quote, err = c.fetchAlphaVantageQuote(ctx, normalized)
		}
		if err != nil {
			c.log.Warn().Err(err).Str("symbol", normalized).Msg("Quote fetch failed, skipping symbol")
			continue
		}

		quote.Symbol = req.Symbol
		quotes[req.Symbol] = quote
	}

	return quotes, nil
}

func (c *Client) fetchQuote(ctx context.Context, symbol string) (domain.PriceQuote, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to create request: %w", err)
	}
	// Yahoo rejects requests without a browser-like user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PriceQuote{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(payload.Chart.Result) == 0 {
		return domain.PriceQuote{}, fmt.Errorf("no result for symbol %s", symbol)
	}

	meta := payload.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return domain.PriceQuote{}, fmt.Errorf("no market price for symbol %s", symbol)
	}

	price := decimal.NewFromFloat(meta.RegularMarketPrice)
	change := decimal.Zero
	changePercent := decimal.Zero
	if meta.PreviousClose > 0 {
		previous := decimal.NewFromFloat(meta.PreviousClose)
		change = price.Sub(previous)
		changePercent = change.Div(previous).Mul(decimal.NewFromInt(100))
	}

	return domain.PriceQuote{
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
		LastUpdated:   time.Now(),
		Source:        domain.DataSourceYahoo,
	}, nil
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Price         string `json:"05. price"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
}

func (c *Client) fetchAlphaVantageQuote(ctx context.Context, symbol string) (domain.PriceQuote, error) {
	endpoint := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		c.alphaVantageURL, url.QueryEscape(symbol), url.QueryEscape(c.alphaVantageKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PriceQuote{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("failed to decode response: %w", err)
	}

	// The API reports errors and rate-limit notes as 200 responses
	if payload.ErrorMessage != "" {
		return domain.PriceQuote{}, fmt.Errorf("alpha vantage error: %s", payload.ErrorMessage)
	}
	if payload.Note != "" {
		return domain.PriceQuote{}, fmt.Errorf("alpha vantage throttled: %s", payload.Note)
	}

	raw := payload.GlobalQuote
	if raw.Price == "" {
		return domain.PriceQuote{}, fmt.Errorf("no quote data for symbol %s", symbol)
	}

	price, err := decimal.NewFromString(raw.Price)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("malformed price %q: %w", raw.Price, err)
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return domain.PriceQuote{}, fmt.Errorf("no market price for symbol %s", symbol)
	}

	change := decimal.Zero
	if raw.Change != "" {
		if parsed, err := decimal.NewFromString(raw.Change); err == nil {
			change = parsed
		}
	}
	changePercent := decimal.Zero
	if trimmed := strings.TrimSuffix(raw.ChangePercent, "%"); trimmed != "" {
		if parsed, err := decimal.NewFromString(trimmed); err == nil {
			changePercent = parsed
		}
	}

	return domain.PriceQuote{
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
		LastUpdated:   time.Now(),
		Source:        domain.DataSourceAlphaVantage,
	}, nil
}
