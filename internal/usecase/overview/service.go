package overview

import (
	"context"
	"fmt"
	"time"

	"github.com/simaogato/stockscope-backend/internal/domain"
)

// View describes one analysis the launcher can open
type View struct {
	ID         string
	Title      string
	Parameters []string
}

// Views are the analyses offered by the launcher, in menu order
var Views = []View{
	{
		ID:         "sector-performance",
		Title:      "Sector Performance Analysis",
		Parameters: []string{"sector", "from_year", "to_year"},
	},
	{
		ID:         "revenue-growth",
		Title:      "Revenue Growth vs. Stock Performance Analysis",
		Parameters: []string{"year"},
	},
	{
		ID:         "monthly-range",
		Title:      "Monthly Stock Analysis",
		Parameters: []string{"shortname", "month", "year"},
	},
}

// OverviewResult represents the launcher menu plus facts about the loaded tables
type OverviewResult struct {
	Views     []View
	StockRows int
	Companies int
	IndexRows int
	Sectors   int
	FirstDate time.Time
	LastDate  time.Time
}

// OverviewService handles the launcher
type OverviewService struct {
	StockRepo   domain.StockRepository
	CompanyRepo domain.CompanyRepository
	IndexRepo   domain.IndexRepository
}

// NewOverviewService creates a new OverviewService instance
func NewOverviewService(
	stockRepo domain.StockRepository,
	companyRepo domain.CompanyRepository,
	indexRepo domain.IndexRepository,
) *OverviewService {
	return &OverviewService{
		StockRepo:   stockRepo,
		CompanyRepo: companyRepo,
		IndexRepo:   indexRepo,
	}
}

// Overview lists the views and summarises the tables.
// FirstDate and LastDate span the stock table; both are zero when it is empty.
func (s *OverviewService) Overview(ctx context.Context) (*OverviewResult, error) {
	stocks, err := s.StockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	companies, err := s.CompanyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	sectors, err := s.CompanyRepo.ListSectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	index, err := s.IndexRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list index: %w", err)
	}

	result := &OverviewResult{
		Views:     Views,
		StockRows: len(stocks),
		Companies: len(companies),
		IndexRows: len(index),
		Sectors:   len(sectors),
	}

	// Stocks are ordered by symbol, so the span needs a full pass
	for i, row := range stocks {
		if i == 0 || row.Date.Before(result.FirstDate) {
			result.FirstDate = row.Date
		}
		if i == 0 || row.Date.After(result.LastDate) {
			result.LastDate = row.Date
		}
	}

	return result, nil
}
