package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// ctxCheckEvery is how many rows are read between context checks
const ctxCheckEvery = 10000

var dateLayouts = []string{
	domain.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// columns maps a header name to its position in the row
type columns map[string]int

func (c columns) get(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// readTable streams a CSV file with a header row and calls fn for each data row.
// Column order is free; every name in required must be present in the header.
func readTable(ctx context.Context, path string, required []string, fn func(line int, cols columns, row []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s is empty", path)
		}
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	cols := make(columns, len(head))
	for i, name := range head {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("%s is missing required column %q", path, name)
		}
	}

	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("failed to read %s line %d: %w", path, line, err)
		}

		if line%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := fn(line, cols, row); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
}

// parseDate accepts a plain calendar date or a timestamp and keeps the date part
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.TruncateDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// parseNullDecimal treats an empty or NaN cell as a missing value
func parseNullDecimal(s string) (decimal.NullDecimal, error) {
	if s == "" || strings.EqualFold(s, "nan") {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return decimal.NewNullDecimal(d), nil
}
