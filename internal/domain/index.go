package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IndexRecord is the S&P 500 level on one trading day
type IndexRecord struct {
	Date  time.Time
	Level decimal.Decimal
}
