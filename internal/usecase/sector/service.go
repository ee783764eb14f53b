package sector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// SectorInput holds the raw view parameters; years arrive as typed text
type SectorInput struct {
	Sector   string
	FromYear string
	ToYear   string
}

// SectorPerformance is the mean daily Close of a sector next to the index level
type SectorPerformance struct {
	Sector       string
	Range        domain.YearRange
	SectorSeries []domain.SeriesPoint
	IndexSeries  []domain.SeriesPoint
}

// SectorService handles the sector vs. index analysis
type SectorService struct {
	StockRepo   domain.StockRepository
	CompanyRepo domain.CompanyRepository
	IndexRepo   domain.IndexRepository
}

// NewSectorService creates a new SectorService instance
func NewSectorService(
	stockRepo domain.StockRepository,
	companyRepo domain.CompanyRepository,
	indexRepo domain.IndexRepository,
) *SectorService {
	return &SectorService{
		StockRepo:   stockRepo,
		CompanyRepo: companyRepo,
		IndexRepo:   indexRepo,
	}
}

// ValidateYears returns the message to show for the current year inputs,
// or "" when they are valid. Safe to call on every keystroke.
func (s *SectorService) ValidateYears(fromYear, toYear string) string {
	return domain.ValidateYears(fromYear, toYear)
}

// Analyze computes the sector and index series for the input.
// Logic:
//  1. Validate the year range (same rules as ValidateYears)
//  2. Check the sector exists in the company table
//  3. Join stock rows to their company sector by Symbol, keep the sector's rows
//     inside the range, group by Date and average the valid Close values
//  4. Keep the index rows inside the range
//
// Both series are ordered by date.
func (s *SectorService) Analyze(ctx context.Context, input SectorInput) (*SectorPerformance, error) {
	yearRange, err := domain.ParseYearRange(input.FromYear, input.ToYear)
	if err != nil {
		return nil, err
	}

	sectors, err := s.CompanyRepo.ListSectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	if !containsSorted(sectors, input.Sector) {
		return nil, fmt.Errorf("sector %q %w", input.Sector, domain.ErrNotFound)
	}

	companies, err := s.CompanyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	inSector := make(map[string]bool)
	for _, c := range companies {
		if c.Sector == input.Sector {
			inSector[c.Symbol] = true
		}
	}

	stocks, err := s.StockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	indexRows, err := s.IndexRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list index: %w", err)
	}

	return &SectorPerformance{
		Sector:       input.Sector,
		Range:        yearRange,
		SectorSeries: meanCloseByDate(stocks, inSector, yearRange),
		IndexSeries:  indexInRange(indexRows, yearRange),
	}, nil
}

type closeAccumulator struct {
	date  time.Time
	sum   decimal.Decimal
	count int64
}

// meanCloseByDate averages the valid Close values per date over the rows whose
// symbol is in the set. A date with rows but no valid Close keeps a null mean.
func meanCloseByDate(stocks []domain.StockRecord, symbols map[string]bool, yearRange domain.YearRange) []domain.SeriesPoint {
	byDate := make(map[int64]*closeAccumulator)
	for _, row := range stocks {
		if !symbols[row.Symbol] || !yearRange.Contains(row.Date) {
			continue
		}

		key := row.Date.Unix()
		acc, ok := byDate[key]
		if !ok {
			acc = &closeAccumulator{date: row.Date}
			byDate[key] = acc
		}
		if row.Close.Valid {
			acc.sum = acc.sum.Add(row.Close.Decimal)
			acc.count++
		}
	}

	series := make([]domain.SeriesPoint, 0, len(byDate))
	for _, acc := range byDate {
		point := domain.SeriesPoint{Date: acc.date}
		if acc.count > 0 {
			point.Value = decimal.NewNullDecimal(acc.sum.Div(decimal.NewFromInt(acc.count)))
		}
		series = append(series, point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// indexInRange keeps the index rows inside the range
func indexInRange(rows []domain.IndexRecord, yearRange domain.YearRange) []domain.SeriesPoint {
	series := make([]domain.SeriesPoint, 0)
	for _, row := range rows {
		if yearRange.Contains(row.Date) {
			series = append(series, domain.SeriesPoint{
				Date:  row.Date,
				Value: decimal.NewNullDecimal(row.Level),
			})
		}
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

func containsSorted(sorted []string, v string) bool {
	i := sort.SearchStrings(sorted, v)
	return i < len(sorted) && sorted[i] == v
}
