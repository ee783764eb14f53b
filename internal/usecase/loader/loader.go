package loader

import (
	"context"
	"fmt"

	"github.com/simaogato/stockscope-backend/internal/domain"
)

// LoadReport summarises what was loaded at startup
type LoadReport struct {
	StockRows     int
	CompanyRows   int
	IndexRows     int
	OrphanSymbols []string // stock symbols with no company row; they drop out of joins
}

// DatasetLoader pulls the three tables from a source once at startup
type DatasetLoader struct {
	source domain.DatasetSource
}

// NewDatasetLoader creates a new DatasetLoader instance
func NewDatasetLoader(source domain.DatasetSource) *DatasetLoader {
	return &DatasetLoader{
		source: source,
	}
}

// Load reads and validates the dataset.
// Any source or validation error is fatal for the caller; orphan symbols are
// only reported.
func (l *DatasetLoader) Load(ctx context.Context) (*domain.Dataset, *LoadReport, error) {
	companies, err := l.source.LoadCompanies(ctx)
	if err != nil {
		return nil, nil, err
	}

	index, err := l.source.LoadIndex(ctx)
	if err != nil {
		return nil, nil, err
	}

	stocks, err := l.source.LoadStocks(ctx)
	if err != nil {
		return nil, nil, err
	}

	ds := &domain.Dataset{
		Stocks:    stocks,
		Companies: companies,
		Index:     index,
	}
	if err := ds.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid dataset: %w", err)
	}

	report := &LoadReport{
		StockRows:     len(stocks),
		CompanyRows:   len(companies),
		IndexRows:     len(index),
		OrphanSymbols: ds.OrphanSymbols(),
	}

	return ds, report, nil
}
