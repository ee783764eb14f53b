package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CompanyRecord holds the metadata of one S&P 500 constituent.
// Symbol is the join key to StockRecord.
type CompanyRecord struct {
	Symbol        string
	Exchange      string
	Sector        string
	Industry      string
	Shortname     string
	Longname      string
	RevenueGrowth decimal.NullDecimal
}

// Validate ensures the company can be joined and listed
func (c *CompanyRecord) Validate() error {
	if c.Symbol == "" {
		return errors.New("company symbol cannot be empty")
	}
	if c.Shortname == "" {
		return errors.New("company shortname cannot be empty")
	}
	return nil
}
