package growth

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// GrowthPoint is one (Symbol, Date) row of the stock/company join
type GrowthPoint struct {
	Symbol        string
	Date          time.Time
	Close         decimal.NullDecimal
	Sector        string
	RevenueGrowth decimal.NullDecimal
	Shortname     string
}

// GrowthResult holds the joined rows for one year.
// NoData is set, with a user-facing Message, when the year has no rows.
type GrowthResult struct {
	Year    int
	Points  []GrowthPoint
	NoData  bool
	Message string
}

// GrowthService handles the revenue growth vs. stock price analysis
type GrowthService struct {
	StockRepo   domain.StockRepository
	CompanyRepo domain.CompanyRepository
}

// NewGrowthService creates a new GrowthService instance
func NewGrowthService(stockRepo domain.StockRepository, companyRepo domain.CompanyRepository) *GrowthService {
	return &GrowthService{
		StockRepo:   stockRepo,
		CompanyRepo: companyRepo,
	}
}

// Analyze joins stock rows with their company on Symbol and keeps the rows of the year.
// Stock rows without a company are dropped (inner join).
// An empty result is reported through NoData, not as an error.
func (s *GrowthService) Analyze(ctx context.Context, year int) (*GrowthResult, error) {
	if err := domain.ValidateYear(year); err != nil {
		return nil, err
	}

	companies, err := s.CompanyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	bySymbol := make(map[string]domain.CompanyRecord, len(companies))
	for _, c := range companies {
		if _, dup := bySymbol[c.Symbol]; !dup {
			bySymbol[c.Symbol] = c
		}
	}

	stocks, err := s.StockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	points := make([]GrowthPoint, 0)
	for _, row := range stocks {
		if row.Date.Year() != year {
			continue
		}
		company, ok := bySymbol[row.Symbol]
		if !ok {
			continue
		}
		points = append(points, GrowthPoint{
			Symbol:        row.Symbol,
			Date:          row.Date,
			Close:         row.Close,
			Sector:        company.Sector,
			RevenueGrowth: company.RevenueGrowth,
			Shortname:     company.Shortname,
		})
	}

	result := &GrowthResult{
		Year:   year,
		Points: points,
	}
	if len(points) == 0 {
		result.NoData = true
		result.Message = fmt.Sprintf("No data available for the year %d.", year)
	}

	return result, nil
}
