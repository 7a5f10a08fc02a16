package refresh

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/usecase/history"
	"github.com/simaogato/investment-tracker/internal/usecase/portfolio"
)

// Service refreshes current prices for lots that carry a ticker and
// recomputes the portfolio snapshot
type Service struct {
	InvestmentRepo domain.InvestmentRepository
	HistoryRepo    domain.HistoryRepository
	Prices         domain.PriceProvider
}

// NewService creates a new refresh Service instance
func NewService(
	investmentRepo domain.InvestmentRepository,
	historyRepo domain.HistoryRepository,
	prices domain.PriceProvider,
) *Service {
	return &Service{
		InvestmentRepo: investmentRepo,
		HistoryRepo:    historyRepo,
		Prices:         prices,
	}
}

// RefreshPrices fetches quotes for every lot with a ticker and applies
// them to the stored lot list.
// Logic:
//  1. Load the lot list; an empty list short-circuits to an empty snapshot
//  2. Fetch quotes for the distinct tickers. A symbol absent from the
//     result means "no update": the lot keeps its previous price state
//     and valuation falls back where no price was ever observed.
//  3. Save the updated lots
//  4. Compute the snapshot and record today's total value when positive
func (s *Service) RefreshPrices(ctx context.Context) (*domain.Portfolio, error) {
	investments, err := s.InvestmentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	if len(investments) == 0 {
		snapshot := portfolio.Calculate(investments)
		return &snapshot, nil
	}

	requests := collectSymbols(investments)
	if len(requests) > 0 {
		quotes, err := s.Prices.FetchQuotes(ctx, requests)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch quotes: %w", err)
		}

		for i := range investments {
			symbol := canonicalSymbol(investments[i].Ticker)
			if symbol == "" {
				continue
			}
			quote, ok := quotes[symbol]
			if !ok {
				continue
			}
			price := quote.Price
			updatedAt := quote.LastUpdated
			investments[i].CurrentPrice = &price
			investments[i].LastUpdated = &updatedAt
			investments[i].DataSource = quote.Source
		}

		if err := s.InvestmentRepo.Save(ctx, investments); err != nil {
			return nil, fmt.Errorf("failed to save investments: %w", err)
		}
	}

	snapshot := portfolio.Calculate(investments)

	if snapshot.TotalValue.GreaterThan(decimal.Zero) {
		point := domain.NewHistoricalDataPoint(snapshot.LastUpdated, snapshot.TotalValue)
		points, err := s.HistoryRepo.Load(ctx, history.PortfolioSeries)
		if err != nil {
			return nil, fmt.Errorf("failed to load portfolio history: %w", err)
		}
		if err := s.HistoryRepo.Save(ctx, history.PortfolioSeries, history.Append(points, point)); err != nil {
			return nil, fmt.Errorf("failed to save portfolio history: %w", err)
		}
	}

	return &snapshot, nil
}

// collectSymbols gathers one request per distinct ticker
func collectSymbols(investments []domain.Investment) []domain.SymbolRequest {
	seen := make(map[string]bool)
	requests := make([]domain.SymbolRequest, 0, len(investments))

	for _, inv := range investments {
		symbol := canonicalSymbol(inv.Ticker)
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		requests = append(requests, domain.SymbolRequest{
			Symbol:   symbol,
			Category: inv.Category,
		})
	}

	return requests
}

func canonicalSymbol(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
