package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by every table
const DateLayout = "2006-01-02"

// StockRecord is one trading day of one symbol.
// Prices are nullable: the source tables carry empty cells for days a
// symbol was not yet listed.
type StockRecord struct {
	Symbol string
	Date   time.Time
	Open   decimal.NullDecimal
	High   decimal.NullDecimal
	Low    decimal.NullDecimal
	Close  decimal.NullDecimal
}

// Validate ensures the record can take part in joins and date filters
func (s *StockRecord) Validate() error {
	if s.Symbol == "" {
		return errors.New("stock record symbol cannot be empty")
	}
	if s.Date.IsZero() {
		return errors.New("stock record date cannot be empty")
	}
	return nil
}

// InMonth reports whether the record falls in the given calendar month
func (s *StockRecord) InMonth(month, year int) bool {
	return s.Date.Year() == year && int(s.Date.Month()) == month
}

// TruncateDate drops the clock part of t, keeping the calendar date in UTC
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
