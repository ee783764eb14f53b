package csvfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// Column names of the S&P 500 dataset files
const (
	colDate          = "Date"
	colSymbol        = "Symbol"
	colOpen          = "Open"
	colHigh          = "High"
	colLow           = "Low"
	colClose         = "Close"
	colExchange      = "Exchange"
	colSector        = "Sector"
	colIndustry      = "Industry"
	colShortname     = "Shortname"
	colLongname      = "Longname"
	colRevenuegrowth = "Revenuegrowth"
	colIndexLevel    = "S&P500"
)

// source implements domain.DatasetSource over three CSV files
type source struct {
	stocksPath    string
	companiesPath string
	indexPath     string
}

// NewSource creates a dataset source reading the stocks, companies and index files
func NewSource(stocksPath, companiesPath, indexPath string) domain.DatasetSource {
	return &source{
		stocksPath:    stocksPath,
		companiesPath: companiesPath,
		indexPath:     indexPath,
	}
}

// LoadStocks reads the daily price file
func (s *source) LoadStocks(ctx context.Context) ([]domain.StockRecord, error) {
	required := []string{colDate, colSymbol, colOpen, colHigh, colLow, colClose}
	stocks := make([]domain.StockRecord, 0)

	err := readTable(ctx, s.stocksPath, required, func(_ int, cols columns, row []string) error {
		date, err := parseDate(cols.get(row, colDate))
		if err != nil {
			return err
		}

		rec := domain.StockRecord{
			Symbol: cols.get(row, colSymbol),
			Date:   date,
		}
		prices := []struct {
			col string
			dst *decimal.NullDecimal
		}{
			{colOpen, &rec.Open},
			{colHigh, &rec.High},
			{colLow, &rec.Low},
			{colClose, &rec.Close},
		}
		for _, p := range prices {
			v, err := parseNullDecimal(cols.get(row, p.col))
			if err != nil {
				return fmt.Errorf("column %s: %w", p.col, err)
			}
			*p.dst = v
		}

		stocks = append(stocks, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load stocks: %w", err)
	}

	return stocks, nil
}

// LoadCompanies reads the company metadata file
func (s *source) LoadCompanies(ctx context.Context) ([]domain.CompanyRecord, error) {
	required := []string{colSymbol, colSector, colShortname, colLongname, colRevenuegrowth}
	companies := make([]domain.CompanyRecord, 0)

	err := readTable(ctx, s.companiesPath, required, func(_ int, cols columns, row []string) error {
		growth, err := parseNullDecimal(cols.get(row, colRevenuegrowth))
		if err != nil {
			return fmt.Errorf("column %s: %w", colRevenuegrowth, err)
		}

		companies = append(companies, domain.CompanyRecord{
			Symbol:        cols.get(row, colSymbol),
			Exchange:      cols.get(row, colExchange),
			Sector:        cols.get(row, colSector),
			Industry:      cols.get(row, colIndustry),
			Shortname:     cols.get(row, colShortname),
			Longname:      cols.get(row, colLongname),
			RevenueGrowth: growth,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}

	return companies, nil
}

// LoadIndex reads the S&P 500 index level file
func (s *source) LoadIndex(ctx context.Context) ([]domain.IndexRecord, error) {
	required := []string{colDate, colIndexLevel}
	index := make([]domain.IndexRecord, 0)

	err := readTable(ctx, s.indexPath, required, func(_ int, cols columns, row []string) error {
		date, err := parseDate(cols.get(row, colDate))
		if err != nil {
			return err
		}

		level, err := parseNullDecimal(cols.get(row, colIndexLevel))
		if err != nil {
			return fmt.Errorf("column %s: %w", colIndexLevel, err)
		}
		if !level.Valid {
			return errors.New("index level cannot be empty")
		}

		index = append(index, domain.IndexRecord{Date: date, Level: level.Decimal})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	return index, nil
}
