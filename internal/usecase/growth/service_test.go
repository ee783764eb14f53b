package growth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stockscope-backend/internal/domain"
	"github.com/simaogato/stockscope-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func num(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

var (
	testCompanies = []domain.CompanyRecord{
		{Symbol: "AAPL", Shortname: "Apple Inc.", Sector: "Technology", RevenueGrowth: num("0.061")},
		{Symbol: "XOM", Shortname: "Exxon Mobil Corporation", Sector: "Energy"},
	}
	testStocks = []domain.StockRecord{
		{Symbol: "AAPL", Date: day(2019, 12, 31), Close: num("73.41")},
		{Symbol: "AAPL", Date: day(2020, 1, 2), Close: num("75.09")},
		{Symbol: "AAPL", Date: day(2020, 1, 3), Close: num("74.36")},
		{Symbol: "ORPH", Date: day(2020, 1, 2), Close: num("12")},
		{Symbol: "XOM", Date: day(2020, 1, 2), Close: num("70.90")},
	}
)

func TestAnalyze_JoinsAndFiltersYear(t *testing.T) {
	ctx := context.Background()
	stockRepo := new(mocks.MockStockRepository)
	companyRepo := new(mocks.MockCompanyRepository)
	service := NewGrowthService(stockRepo, companyRepo)

	companyRepo.On("List", ctx).Return(testCompanies, nil)
	stockRepo.On("List", ctx).Return(testStocks, nil)

	result, err := service.Analyze(ctx, 2020)
	require.NoError(t, err)

	assert.Equal(t, 2020, result.Year)
	assert.False(t, result.NoData)
	assert.Empty(t, result.Message)

	// ORPH has no company and 2019 is outside the year
	require.Len(t, result.Points, 3)

	first := result.Points[0]
	assert.Equal(t, "AAPL", first.Symbol)
	assert.Equal(t, day(2020, 1, 2), first.Date)
	assert.Equal(t, "Technology", first.Sector)
	assert.Equal(t, "Apple Inc.", first.Shortname)
	assert.True(t, decimal.RequireFromString("75.09").Equal(first.Close.Decimal))
	assert.True(t, decimal.RequireFromString("0.061").Equal(first.RevenueGrowth.Decimal))

	xom := result.Points[2]
	assert.Equal(t, "XOM", xom.Symbol)
	assert.Equal(t, "Energy", xom.Sector)
	assert.False(t, xom.RevenueGrowth.Valid)

	stockRepo.AssertExpectations(t)
	companyRepo.AssertExpectations(t)
}

func TestAnalyze_NoRowsIsNoData(t *testing.T) {
	ctx := context.Background()
	stockRepo := new(mocks.MockStockRepository)
	companyRepo := new(mocks.MockCompanyRepository)
	service := NewGrowthService(stockRepo, companyRepo)

	companyRepo.On("List", ctx).Return(testCompanies, nil)
	stockRepo.On("List", ctx).Return(testStocks, nil)

	result, err := service.Analyze(ctx, 2024)
	require.NoError(t, err)

	assert.True(t, result.NoData)
	assert.Empty(t, result.Points)
	assert.Equal(t, "No data available for the year 2024.", result.Message)
}

func TestAnalyze_YearOutOfList(t *testing.T) {
	ctx := context.Background()
	stockRepo := new(mocks.MockStockRepository)
	companyRepo := new(mocks.MockCompanyRepository)
	service := NewGrowthService(stockRepo, companyRepo)

	result, err := service.Analyze(ctx, 2030)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	stockRepo.AssertNotCalled(t, "List", mock.Anything)
	companyRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestAnalyze_RepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Company repository error", func(t *testing.T) {
		stockRepo := new(mocks.MockStockRepository)
		companyRepo := new(mocks.MockCompanyRepository)
		companyRepo.On("List", ctx).Return(nil, errors.New("boom"))

		_, err := NewGrowthService(stockRepo, companyRepo).Analyze(ctx, 2020)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list companies")
	})

	t.Run("Stock repository error", func(t *testing.T) {
		stockRepo := new(mocks.MockStockRepository)
		companyRepo := new(mocks.MockCompanyRepository)
		companyRepo.On("List", ctx).Return(testCompanies, nil)
		stockRepo.On("List", ctx).Return(nil, errors.New("boom"))

		_, err := NewGrowthService(stockRepo, companyRepo).Analyze(ctx, 2020)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list stocks")
	})
}
