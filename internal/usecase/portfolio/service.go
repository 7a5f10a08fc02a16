package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/usecase/history"
	"github.com/simaogato/investment-tracker/internal/usecase/valuation"
)

var oneHundred = decimal.NewFromInt(100)

// Calculate reduces the lot list to a portfolio snapshot.
// Logic:
//   - totalCost  = sum of each lot's stored totalCost
//   - totalValue = sum of each lot's current value (purchase-price
//     fallback applies per lot)
//   - totalGainLoss = totalValue - totalCost
//   - totalGainLossPercent = gain/cost * 100, or 0 for a zero-cost
//     portfolio so the summary is always renderable
//
// Pure: the input list is not mutated and is carried into the snapshot.
func Calculate(investments []domain.Investment) domain.Portfolio {
	totalValue := decimal.Zero
	totalCost := decimal.Zero

	for _, inv := range investments {
		totalCost = totalCost.Add(valuation.CostBasis(inv))
		totalValue = totalValue.Add(valuation.CurrentValue(inv))
	}

	totalGainLoss := totalValue.Sub(totalCost)
	totalGainLossPercent := decimal.Zero
	if totalCost.GreaterThan(decimal.Zero) {
		totalGainLossPercent = totalGainLoss.Div(totalCost).Mul(oneHundred)
	}

	return domain.Portfolio{
		Investments:          investments,
		TotalValue:           totalValue,
		TotalCost:            totalCost,
		TotalGainLoss:        totalGainLoss,
		TotalGainLossPercent: totalGainLossPercent,
		LastUpdated:          time.Now(),
	}
}

// Service computes portfolio snapshots over the stored lot list and
// records the daily value history
type Service struct {
	InvestmentRepo domain.InvestmentRepository
	HistoryRepo    domain.HistoryRepository
}

// NewService creates a new portfolio Service instance
func NewService(investmentRepo domain.InvestmentRepository, historyRepo domain.HistoryRepository) *Service {
	return &Service{
		InvestmentRepo: investmentRepo,
		HistoryRepo:    historyRepo,
	}
}

// Summarize loads the current lot list, computes the snapshot, and
// records today's total value into the portfolio series. A zero-value
// portfolio is not recorded, so history is not polluted before any
// data exists.
func (s *Service) Summarize(ctx context.Context) (*domain.Portfolio, error) {
	investments, err := s.InvestmentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	snapshot := Calculate(investments)

	if snapshot.TotalValue.GreaterThan(decimal.Zero) {
		point := domain.NewHistoricalDataPoint(snapshot.LastUpdated, snapshot.TotalValue)
		if err := s.recordPoint(ctx, point); err != nil {
			return nil, err
		}
	}

	return &snapshot, nil
}

func (s *Service) recordPoint(ctx context.Context, point domain.HistoricalDataPoint) error {
	points, err := s.HistoryRepo.Load(ctx, history.PortfolioSeries)
	if err != nil {
		return fmt.Errorf("failed to load portfolio history: %w", err)
	}

	if err := s.HistoryRepo.Save(ctx, history.PortfolioSeries, history.Append(points, point)); err != nil {
		return fmt.Errorf("failed to save portfolio history: %w", err)
	}

	return nil
}
