package chart

import (
	"fmt"

	"github.com/simaogato/stockscope-backend/internal/domain"
	"github.com/simaogato/stockscope-backend/internal/usecase/monthly"
)

// MonthlyFigure draws the daily High and Low lines of one company for a month
// and points at the extremes. Returns nil when the month has no data.
func MonthlyFigure(result *monthly.MonthlyRange) *Figure {
	if result.NoData {
		return nil
	}

	x := make([]any, 0, len(result.Rows))
	high := make([]any, 0, len(result.Rows))
	low := make([]any, 0, len(result.Rows))
	for _, row := range result.Rows {
		x = append(x, row.Date.Format(domain.DateLayout))
		high = append(high, nullableNumber(row.High))
		low = append(low, nullableNumber(row.Low))
	}

	annotations := make([]Annotation, 0, 2)
	if result.Highest != nil {
		annotations = append(annotations, extremumAnnotation("Highest Price", result.Highest))
	}
	if result.Lowest != nil {
		annotations = append(annotations, extremumAnnotation("Lowest Price", result.Lowest))
	}

	return &Figure{
		Data: []Trace{
			{Type: "scatter", Mode: "lines", Name: "High Price", X: x, Y: high},
			{Type: "scatter", Mode: "lines", Name: "Low Price", X: x, Y: low},
		},
		Layout: Layout{
			Title:       Title{Text: fmt.Sprintf("Stock Prices for %s - %d/%d", result.Company.Shortname, result.Month, result.Year)},
			XAxis:       Axis{Title: Title{Text: "Date"}, Type: "date"},
			YAxis:       Axis{Title: Title{Text: "Price"}},
			Annotations: annotations,
		},
	}
}

func extremumAnnotation(label string, e *monthly.Extremum) Annotation {
	return Annotation{
		X:         e.Date.Format(domain.DateLayout),
		Y:         number(e.Value),
		Text:      fmt.Sprintf("%s: %s", label, e.Value.String()),
		ShowArrow: true,
		ArrowHead: 1,
	}
}
