package domain

import (
	"errors"
	"fmt"
)

// Dataset is the full set of tables loaded at startup.
// It is never mutated after load; every analysis derives new slices.
type Dataset struct {
	Stocks    []StockRecord
	Companies []CompanyRecord
	Index     []IndexRecord
}

// Validate ensures the dataset can serve all three views.
// Stock rows whose symbol has no company are allowed: they drop out of joins.
func (d *Dataset) Validate() error {
	if len(d.Companies) == 0 {
		return errors.New("company table cannot be empty")
	}
	if len(d.Index) == 0 {
		return errors.New("index table cannot be empty")
	}

	seen := make(map[string]bool, len(d.Companies))
	for i := range d.Companies {
		c := &d.Companies[i]
		if err := c.Validate(); err != nil {
			return fmt.Errorf("company row %d: %w", i+1, err)
		}
		if seen[c.Symbol] {
			return fmt.Errorf("duplicate company symbol %s", c.Symbol)
		}
		seen[c.Symbol] = true
	}

	for i := range d.Stocks {
		if err := d.Stocks[i].Validate(); err != nil {
			return fmt.Errorf("stock row %d: %w", i+1, err)
		}
	}

	return nil
}

// OrphanSymbols returns the distinct stock symbols with no company record,
// in first-seen order
func (d *Dataset) OrphanSymbols() []string {
	known := make(map[string]bool, len(d.Companies))
	for _, c := range d.Companies {
		known[c.Symbol] = true
	}

	reported := make(map[string]bool)
	orphans := make([]string, 0)
	for _, s := range d.Stocks {
		if known[s.Symbol] || reported[s.Symbol] {
			continue
		}
		reported[s.Symbol] = true
		orphans = append(orphans, s.Symbol)
	}
	return orphans
}
