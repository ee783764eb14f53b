// Package mocks holds testify mocks of the domain repository ports.
package mocks

import (
	"context"

	"github.com/simaogato/stockscope-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockStockRepository is a mock implementation of StockRepository for testing
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) List(ctx context.Context) ([]domain.StockRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockRecord), args.Error(1)
}

func (m *MockStockRepository) ListBySymbol(ctx context.Context, symbol string) ([]domain.StockRecord, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockRecord), args.Error(1)
}

// MockCompanyRepository is a mock implementation of CompanyRepository for testing
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]domain.CompanyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyRecord), args.Error(1)
}

func (m *MockCompanyRepository) GetBySymbol(ctx context.Context, symbol string) (*domain.CompanyRecord, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyRecord), args.Error(1)
}

func (m *MockCompanyRepository) FindByShortname(ctx context.Context, shortname string) (*domain.CompanyRecord, error) {
	args := m.Called(ctx, shortname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyRecord), args.Error(1)
}

func (m *MockCompanyRepository) ListSectors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCompanyRepository) ListShortnames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockIndexRepository is a mock implementation of IndexRepository for testing
type MockIndexRepository struct {
	mock.Mock
}

func (m *MockIndexRepository) List(ctx context.Context) ([]domain.IndexRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndexRecord), args.Error(1)
}

// MockDatasetSource is a mock implementation of DatasetSource for testing
type MockDatasetSource struct {
	mock.Mock
}

func (m *MockDatasetSource) LoadStocks(ctx context.Context) ([]domain.StockRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockRecord), args.Error(1)
}

func (m *MockDatasetSource) LoadCompanies(ctx context.Context) ([]domain.CompanyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyRecord), args.Error(1)
}

func (m *MockDatasetSource) LoadIndex(ctx context.Context) ([]domain.IndexRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndexRecord), args.Error(1)
}

// MockCompanyIndex is a mock implementation of CompanyIndex for testing
type MockCompanyIndex struct {
	mock.Mock
}

func (m *MockCompanyIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
