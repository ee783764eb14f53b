package monthly

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// MonthlyInput selects one company and one calendar month
type MonthlyInput struct {
	Shortname string
	Month     int
	Year      int
}

// Extremum marks the day a price extreme was reached
type Extremum struct {
	Date  time.Time
	Value decimal.Decimal
}

// MonthlyRange holds one company's daily rows for a month with its extremes.
// Highest is nil when no row has a High value, Lowest when no row has a Low value.
type MonthlyRange struct {
	Company domain.CompanyRecord
	Month   int
	Year    int
	Rows    []domain.StockRecord
	Highest *Extremum
	Lowest  *Extremum
	NoData  bool
	Message string
}

// MonthlyService handles the monthly High/Low analysis of one company
type MonthlyService struct {
	StockRepo   domain.StockRepository
	CompanyRepo domain.CompanyRepository
}

// NewMonthlyService creates a new MonthlyService instance
func NewMonthlyService(stockRepo domain.StockRepository, companyRepo domain.CompanyRepository) *MonthlyService {
	return &MonthlyService{
		StockRepo:   stockRepo,
		CompanyRepo: companyRepo,
	}
}

// Analyze resolves the short name to a symbol and keeps that symbol's rows in the month.
// Logic:
//  1. Validate month and year
//  2. Resolve Shortname -> Symbol (first match); an unknown name is ErrNotFound
//  3. Keep the rows of the month, ordered by date
//  4. Find the first row with the maximum High and the first with the minimum Low
//
// An empty month is reported through NoData, not as an error.
func (s *MonthlyService) Analyze(ctx context.Context, input MonthlyInput) (*MonthlyRange, error) {
	if err := domain.ValidateMonth(input.Month); err != nil {
		return nil, err
	}
	if err := domain.ValidateYear(input.Year); err != nil {
		return nil, err
	}

	company, err := s.CompanyRepo.FindByShortname(ctx, input.Shortname)
	if err != nil {
		return nil, err
	}

	rows, err := s.StockRepo.ListBySymbol(ctx, company.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks for %s: %w", company.Symbol, err)
	}

	inMonth := make([]domain.StockRecord, 0)
	for _, row := range rows {
		if row.InMonth(input.Month, input.Year) {
			inMonth = append(inMonth, row)
		}
	}

	result := &MonthlyRange{
		Company: *company,
		Month:   input.Month,
		Year:    input.Year,
		Rows:    inMonth,
	}
	if len(inMonth) == 0 {
		result.NoData = true
		result.Message = fmt.Sprintf("No data available for %s in %02d-%d.", input.Shortname, input.Month, input.Year)
		return result, nil
	}

	result.Highest = findExtremum(inMonth, func(r domain.StockRecord) decimal.NullDecimal { return r.High }, func(a, b decimal.Decimal) bool {
		return a.GreaterThan(b)
	})
	result.Lowest = findExtremum(inMonth, func(r domain.StockRecord) decimal.NullDecimal { return r.Low }, func(a, b decimal.Decimal) bool {
		return a.LessThan(b)
	})

	return result, nil
}

// findExtremum returns the first row whose value beats every other valid value.
// Returns nil when no row carries a valid value.
func findExtremum(
	rows []domain.StockRecord,
	value func(domain.StockRecord) decimal.NullDecimal,
	better func(a, b decimal.Decimal) bool,
) *Extremum {
	var best *Extremum
	for _, row := range rows {
		v := value(row)
		if !v.Valid {
			continue
		}
		if best == nil || better(v.Decimal, best.Value) {
			best = &Extremum{Date: row.Date, Value: v.Decimal}
		}
	}
	return best
}
