package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/investment-tracker/internal/domain"
	"github.com/simaogato/investment-tracker/internal/usecase/history"
)

// MockInvestmentRepository is a mock implementation of InvestmentRepository for testing
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) Load(ctx context.Context) ([]domain.Investment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) Save(ctx context.Context, investments []domain.Investment) error {
	args := m.Called(ctx, investments)
	return args.Error(0)
}

// MockHistoryRepository is a mock implementation of HistoryRepository for testing
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Load(ctx context.Context, series string) ([]domain.HistoricalDataPoint, error) {
	args := m.Called(ctx, series)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoricalDataPoint), args.Error(1)
}

func (m *MockHistoryRepository) Save(ctx context.Context, series string, points []domain.HistoricalDataPoint) error {
	args := m.Called(ctx, series, points)
	return args.Error(0)
}

func lot(quantity, purchasePrice, fees int64, currentPrice *int64) domain.Investment {
	inv := domain.Investment{
		AssetName:     "Test Asset",
		Category:      domain.CategoryEquity,
		RiskLevel:     domain.RiskModerate,
		Quantity:      decimal.NewFromInt(quantity),
		PurchasePrice: decimal.NewFromInt(purchasePrice),
		Fees:          decimal.NewFromInt(fees),
	}
	inv.RecalculateTotalCost()
	if currentPrice != nil {
		p := decimal.NewFromInt(*currentPrice)
		inv.CurrentPrice = &p
	}
	return inv
}

func int64p(v int64) *int64 { return &v }

func TestCalculate_MixedPriceSources(t *testing.T) {
	// Lot A: 10 @ 100, current 120 (value 1200, cost 1000)
	// Lot B: 5 @ 50, no current price (value 250 via purchase price)
	investments := []domain.Investment{
		lot(10, 100, 0, int64p(120)),
		lot(5, 50, 0, nil),
	}

	p := Calculate(investments)

	assert.True(t, decimal.NewFromInt(1450).Equal(p.TotalValue), "got %s", p.TotalValue)
	assert.True(t, decimal.NewFromInt(1250).Equal(p.TotalCost), "got %s", p.TotalCost)
	assert.True(t, decimal.NewFromInt(200).Equal(p.TotalGainLoss), "got %s", p.TotalGainLoss)
	assert.True(t, decimal.NewFromInt(16).Equal(p.TotalGainLossPercent), "got %s", p.TotalGainLossPercent)
	assert.WithinDuration(t, time.Now(), p.LastUpdated, time.Minute)
}

func TestCalculate_TotalCostMatchesStoredCostsExactly(t *testing.T) {
	investments := []domain.Investment{
		lot(3, 7, 1, nil),
		lot(11, 13, 2, int64p(17)),
		lot(19, 23, 0, nil),
	}

	expected := decimal.Zero
	for _, inv := range investments {
		expected = expected.Add(inv.TotalCost)
	}

	p := Calculate(investments)

	assert.True(t, expected.Equal(p.TotalCost), "no rounding drift allowed")
}

func TestCalculate_ZeroCostPortfolioReportsZeroPercent(t *testing.T) {
	inv := lot(10, 100, 0, nil)
	inv.TotalCost = decimal.Zero

	p := Calculate([]domain.Investment{inv})

	assert.True(t, p.TotalGainLossPercent.IsZero(), "zero-cost portfolio reports 0%%, not NaN")
}

func TestCalculate_EmptyLotList(t *testing.T) {
	p := Calculate(nil)

	assert.True(t, p.TotalValue.IsZero())
	assert.True(t, p.TotalCost.IsZero())
	assert.True(t, p.TotalGainLoss.IsZero())
	assert.True(t, p.TotalGainLossPercent.IsZero())
}

func TestSummarize_RecordsDailyValuePoint(t *testing.T) {
	ctx := context.Background()
	mockInvestments := new(MockInvestmentRepository)
	mockHistory := new(MockHistoryRepository)
	service := NewService(mockInvestments, mockHistory)

	investments := []domain.Investment{lot(10, 100, 0, int64p(120))}
	mockInvestments.On("Load", ctx).Return(investments, nil)
	mockHistory.On("Load", ctx, history.PortfolioSeries).Return([]domain.HistoricalDataPoint{}, nil)

	var saved []domain.HistoricalDataPoint
	mockHistory.On("Save", ctx, history.PortfolioSeries, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).([]domain.HistoricalDataPoint)
		}).
		Return(nil)

	p, err := service.Summarize(ctx)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1200).Equal(p.TotalValue))

	require.Len(t, saved, 1)
	assert.Equal(t, time.Now().Format(domain.DateFormat), saved[0].Date)
	assert.True(t, decimal.NewFromInt(1200).Equal(saved[0].Value))

	mockInvestments.AssertExpectations(t)
	mockHistory.AssertExpectations(t)
}

func TestSummarize_ZeroValuePortfolioIsNotRecorded(t *testing.T) {
	ctx := context.Background()
	mockInvestments := new(MockInvestmentRepository)
	mockHistory := new(MockHistoryRepository)
	service := NewService(mockInvestments, mockHistory)

	mockInvestments.On("Load", ctx).Return([]domain.Investment{}, nil)

	p, err := service.Summarize(ctx)

	require.NoError(t, err)
	assert.True(t, p.TotalValue.IsZero())
	mockHistory.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}
