package postgres

import (
	"context"
	"fmt"

	"github.com/simaogato/stockscope-backend/internal/domain"
)

// Table names mirror the CSV file names
const (
	StocksTable    = "sp500_stocks"
	CompaniesTable = "sp500_companies"
	IndexTable     = "sp500_index"
)

// source implements domain.DatasetSource over three read-only tables.
// NUMERIC columns scan straight into decimal.NullDecimal; NULL stays invalid.
// The company table needs a row_no column numbering rows in file order
// (e.g. BIGINT GENERATED ALWAYS AS IDENTITY filled by the import); short name
// lookups return the first match in that order.
type source struct {
	db *DB
}

// NewSource creates a new Postgres dataset source
func NewSource(db *DB) domain.DatasetSource {
	return &source{db: db}
}

// LoadStocks reads every daily price row
func (s *source) LoadStocks(ctx context.Context) ([]domain.StockRecord, error) {
	query := `
		SELECT symbol, date, open, high, low, close
		FROM ` + StocksTable + `
		ORDER BY symbol, date
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocks: %w", err)
	}
	defer rows.Close()

	stocks := make([]domain.StockRecord, 0)
	for rows.Next() {
		var r domain.StockRecord
		if err := rows.Scan(&r.Symbol, &r.Date, &r.Open, &r.High, &r.Low, &r.Close); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		r.Date = domain.TruncateDate(r.Date)
		stocks = append(stocks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stocks: %w", err)
	}

	return stocks, nil
}

// LoadCompanies reads the company table ordered by row_no
func (s *source) LoadCompanies(ctx context.Context) ([]domain.CompanyRecord, error) {
	query := `
		SELECT symbol,
		       COALESCE(exchange, ''),
		       COALESCE(sector, ''),
		       COALESCE(industry, ''),
		       shortname,
		       COALESCE(longname, ''),
		       revenuegrowth
		FROM ` + CompaniesTable + `
		ORDER BY row_no
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.CompanyRecord, 0)
	for rows.Next() {
		var c domain.CompanyRecord
		if err := rows.Scan(&c.Symbol, &c.Exchange, &c.Sector, &c.Industry, &c.Shortname, &c.Longname, &c.RevenueGrowth); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}

	return companies, nil
}

// LoadIndex reads the index level per trading day
func (s *source) LoadIndex(ctx context.Context) ([]domain.IndexRecord, error) {
	query := `
		SELECT date, level
		FROM ` + IndexTable + `
		ORDER BY date
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer rows.Close()

	index := make([]domain.IndexRecord, 0)
	for rows.Next() {
		var r domain.IndexRecord
		if err := rows.Scan(&r.Date, &r.Level); err != nil {
			return nil, fmt.Errorf("failed to scan index row: %w", err)
		}
		r.Date = domain.TruncateDate(r.Date)
		index = append(index, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating index: %w", err)
	}

	return index, nil
}
