package refresh

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

// MockPriceProvider is a mock implementation of PriceProvider for testing
type MockPriceProvider struct {
	mock.Mock
}

func (m *MockPriceProvider) FetchQuotes(ctx context.Context, requests []domain.SymbolRequest) (map[string]domain.PriceQuote, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.PriceQuote), args.Error(1)
}

func lot(name, ticker string, quantity, purchasePrice int64) domain.Investment {
	inv := domain.Investment{
		AssetName:     name,
		Ticker:        ticker,
		Category:      domain.CategoryEquity,
		RiskLevel:     domain.RiskModerate,
		Quantity:      decimal.NewFromInt(quantity),
		PurchasePrice: decimal.NewFromInt(purchasePrice),
		Fees:          decimal.Zero,
	}
	inv.RecalculateTotalCost()
	return inv
}

func TestRefreshPrices_AppliesQuotesAndRecordsHistory(t *testing.T) {
	ctx := context.Background()
	mockInvestments := new(MockInvestmentRepository)
	mockHistory := new(MockHistoryRepository)
	mockPrices := new(MockPriceProvider)
	service := NewService(mockInvestments, mockHistory, mockPrices)

	investments := []domain.Investment{
		lot("Apple", "aapl", 10, 100),
		lot("Manual Holding", "", 5, 50),
	}
	mockInvestments.On("Load", ctx).Return(investments, nil)

	now := time.Now()
	mockPrices.On("FetchQuotes", ctx, mock.MatchedBy(func(reqs []domain.SymbolRequest) bool {
		return len(reqs) == 1 && reqs[0].Symbol == "AAPL"
	})).Return(map[string]domain.PriceQuote{
		"AAPL": {Symbol: "AAPL", Price: decimal.NewFromInt(120), LastUpdated: now, Source: domain.DataSourceYahoo},
	}, nil)

	var savedLots []domain.Investment
	mockInvestments.On("Save", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			savedLots = args.Get(1).([]domain.Investment)
		}).
		Return(nil)

	mockHistory.On("Load", ctx, history.PortfolioSeries).Return([]domain.HistoricalDataPoint{}, nil)

	var savedPoints []domain.HistoricalDataPoint
	mockHistory.On("Save", ctx, history.PortfolioSeries, mock.Anything).
		Run(func(args mock.Arguments) {
			savedPoints = args.Get(2).([]domain.HistoricalDataPoint)
		}).
		Return(nil)

	snapshot, err := service.RefreshPrices(ctx)

	require.NoError(t, err)
	// 10 * 120 (fresh quote) + 5 * 50 (purchase price fallback)
	assert.True(t, decimal.NewFromInt(1450).Equal(snapshot.TotalValue), "got %s", snapshot.TotalValue)

	require.Len(t, savedLots, 2)
	require.NotNil(t, savedLots[0].CurrentPrice)
	assert.True(t, decimal.NewFromInt(120).Equal(*savedLots[0].CurrentPrice))
	assert.Equal(t, domain.DataSourceYahoo, savedLots[0].DataSource)
	assert.Nil(t, savedLots[1].CurrentPrice, "lot without ticker keeps manual pricing")

	require.Len(t, savedPoints, 1)
	assert.True(t, decimal.NewFromInt(1450).Equal(savedPoints[0].Value))

	mockInvestments.AssertExpectations(t)
	mockHistory.AssertExpectations(t)
	mockPrices.AssertExpectations(t)
}

func TestRefreshPrices_AbsentQuoteMeansNoUpdate(t *testing.T) {
	ctx := context.Background()
	mockInvestments := new(MockInvestmentRepository)
	mockHistory := new(MockHistoryRepository)
	mockPrices := new(MockPriceProvider)
	service := NewService(mockInvestments, mockHistory, mockPrices)

	stale := decimal.NewFromInt(90)
	inv := lot("Apple", "AAPL", 10, 100)
	inv.CurrentPrice = &stale

	mockInvestments.On("Load", ctx).Return([]domain.Investment{inv}, nil)
	mockPrices.On("FetchQuotes", ctx, mock.Anything).Return(map[string]domain.PriceQuote{}, nil)
	mockInvestments.On("Save", ctx, mock.Anything).Return(nil)
	mockHistory.On("Load", ctx, history.PortfolioSeries).Return([]domain.HistoricalDataPoint{}, nil)
	mockHistory.On("Save", ctx, history.PortfolioSeries, mock.Anything).Return(nil)

	snapshot, err := service.RefreshPrices(ctx)

	require.NoError(t, err)
	// Previous observed price survives an unresolved symbol
	assert.True(t, decimal.NewFromInt(900).Equal(snapshot.TotalValue), "got %s", snapshot.TotalValue)
}

func TestRefreshPrices_EmptyPortfolioSkipsFetch(t *testing.T) {
	ctx := context.Background()
	mockInvestments := new(MockInvestmentRepository)
	mockHistory := new(MockHistoryRepository)
	mockPrices := new(MockPriceProvider)
	service := NewService(mockInvestments, mockHistory, mockPrices)

	mockInvestments.On("Load", ctx).Return([]domain.Investment{}, nil)

	snapshot, err := service.RefreshPrices(ctx)

	require.NoError(t, err)
	assert.True(t, snapshot.TotalValue.IsZero())
	mockPrices.AssertNotCalled(t, "FetchQuotes", mock.Anything, mock.Anything)
	mockHistory.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}
