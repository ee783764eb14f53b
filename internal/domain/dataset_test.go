package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDataset_Validate(t *testing.T) {
	validCompanies := []CompanyRecord{
		{Symbol: "AAPL", Shortname: "Apple Inc.", Sector: "Technology"},
		{Symbol: "XOM", Shortname: "Exxon Mobil Corporation", Sector: "Energy"},
	}
	validIndex := []IndexRecord{{Date: day(2020, 1, 2), Level: decimal.NewFromInt(3257)}}

	tests := []struct {
		name    string
		ds      Dataset
		wantErr bool
		errMsg  string
	}{
		{
			name: "Valid dataset should pass",
			ds: Dataset{
				Stocks:    []StockRecord{{Symbol: "AAPL", Date: day(2020, 1, 2)}},
				Companies: validCompanies,
				Index:     validIndex,
			},
			wantErr: false,
		},
		{
			name: "Orphan stock symbol is tolerated",
			ds: Dataset{
				Stocks:    []StockRecord{{Symbol: "ZZZZ", Date: day(2020, 1, 2)}},
				Companies: validCompanies,
				Index:     validIndex,
			},
			wantErr: false,
		},
		{
			name:    "Empty company table should fail",
			ds:      Dataset{Index: validIndex},
			wantErr: true,
			errMsg:  "company table cannot be empty",
		},
		{
			name:    "Empty index table should fail",
			ds:      Dataset{Companies: validCompanies},
			wantErr: true,
			errMsg:  "index table cannot be empty",
		},
		{
			name: "Duplicate company symbol should fail",
			ds: Dataset{
				Companies: append(validCompanies, CompanyRecord{Symbol: "AAPL", Shortname: "Apple again"}),
				Index:     validIndex,
			},
			wantErr: true,
			errMsg:  "duplicate company symbol AAPL",
		},
		{
			name: "Company without shortname should fail",
			ds: Dataset{
				Companies: []CompanyRecord{{Symbol: "AAPL"}},
				Index:     validIndex,
			},
			wantErr: true,
			errMsg:  "company shortname cannot be empty",
		},
		{
			name: "Stock row without date should fail",
			ds: Dataset{
				Stocks:    []StockRecord{{Symbol: "AAPL"}},
				Companies: validCompanies,
				Index:     validIndex,
			},
			wantErr: true,
			errMsg:  "stock record date cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDataset_OrphanSymbols(t *testing.T) {
	ds := Dataset{
		Stocks: []StockRecord{
			{Symbol: "AAPL", Date: day(2020, 1, 2)},
			{Symbol: "OLD", Date: day(2020, 1, 2)},
			{Symbol: "OLD", Date: day(2020, 1, 3)},
			{Symbol: "GONE", Date: day(2020, 1, 2)},
		},
		Companies: []CompanyRecord{{Symbol: "AAPL", Shortname: "Apple Inc."}},
	}

	assert.Equal(t, []string{"OLD", "GONE"}, ds.OrphanSymbols())
}

func TestStockRecord_InMonth(t *testing.T) {
	rec := StockRecord{Symbol: "AAPL", Date: day(2021, 3, 15)}

	assert.True(t, rec.InMonth(3, 2021))
	assert.False(t, rec.InMonth(3, 2020))
	assert.False(t, rec.InMonth(4, 2021))
}

func TestTruncateDate(t *testing.T) {
	in := time.Date(2021, 3, 15, 16, 30, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, day(2021, 3, 15), TruncateDate(in))
}
