package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/simaogato/stockscope-backend/internal/domain"
	"github.com/simaogato/stockscope-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSectorsAndShortnames(t *testing.T) {
	ctx := context.Background()
	companyRepo := new(mocks.MockCompanyRepository)
	service := NewCatalogService(companyRepo, new(mocks.MockCompanyIndex))

	companyRepo.On("ListSectors", ctx).Return([]string{"Energy", "Technology"}, nil)
	companyRepo.On("ListShortnames", ctx).Return(nil, errors.New("boom"))

	sectors, err := service.Sectors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Energy", "Technology"}, sectors)

	_, err = service.Shortnames(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list company names")

	companyRepo.AssertExpectations(t)
}

func TestYearsAndMonths(t *testing.T) {
	service := NewCatalogService(nil, nil)

	assert.Equal(t, []int{2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024}, service.Years())
	assert.Len(t, service.Months(), 12)
}

func TestSearchCompanies(t *testing.T) {
	ctx := context.Background()
	companyRepo := new(mocks.MockCompanyRepository)
	companyIndex := new(mocks.MockCompanyIndex)
	service := NewCatalogService(companyRepo, companyIndex)

	apple := &domain.CompanyRecord{Symbol: "AAPL", Shortname: "Apple Inc."}
	companyIndex.On("Search", ctx, "apple", DefaultSearchLimit).Return([]string{"AAPL", "STALE"}, nil)
	companyRepo.On("GetBySymbol", ctx, "AAPL").Return(apple, nil)
	companyRepo.On("GetBySymbol", ctx, "STALE").Return(nil, errors.Join(domain.ErrNotFound))

	got, err := service.SearchCompanies(ctx, "  apple ", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Symbol)

	companyIndex.AssertExpectations(t)
	companyRepo.AssertExpectations(t)
}

func TestSearchCompanies_CapsLimit(t *testing.T) {
	ctx := context.Background()
	companyRepo := new(mocks.MockCompanyRepository)
	companyIndex := new(mocks.MockCompanyIndex)
	service := NewCatalogService(companyRepo, companyIndex)

	companyIndex.On("Search", ctx, "corp", MaxSearchLimit).Return([]string{}, nil)

	got, err := service.SearchCompanies(ctx, "corp", 1000)
	require.NoError(t, err)
	assert.Empty(t, got)
	companyIndex.AssertExpectations(t)
}

func TestSearchCompanies_EmptyQuery(t *testing.T) {
	companyIndex := new(mocks.MockCompanyIndex)
	service := NewCatalogService(new(mocks.MockCompanyRepository), companyIndex)

	_, err := service.SearchCompanies(context.Background(), "   ", 5)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	companyIndex.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}
