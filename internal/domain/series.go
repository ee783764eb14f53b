package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one value of a date-indexed series.
// Value is null when every contributing row lacked the value.
type SeriesPoint struct {
	Date  time.Time
	Value decimal.NullDecimal
}
