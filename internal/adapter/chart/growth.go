package chart

import (
	"fmt"

	"github.com/simaogato/stockscope-backend/internal/usecase/growth"
)

// GrowthFigure scatters revenue growth against Close, one trace per sector.
// Sectors appear in the order they are first met in the points.
// Returns nil when the result has no data.
func GrowthFigure(result *growth.GrowthResult) *Figure {
	if result.NoData {
		return nil
	}

	traces := make([]Trace, 0)
	bySector := make(map[string]int)
	for _, p := range result.Points {
		i, ok := bySector[p.Sector]
		if !ok {
			i = len(traces)
			bySector[p.Sector] = i
			traces = append(traces, Trace{
				Type:      "scatter",
				Mode:      "markers",
				Name:      p.Sector,
				X:         make([]any, 0),
				Y:         make([]any, 0),
				HoverInfo: "text+x+y",
			})
		}
		traces[i].X = append(traces[i].X, nullableNumber(p.RevenueGrowth))
		traces[i].Y = append(traces[i].Y, nullableNumber(p.Close))
		traces[i].Text = append(traces[i].Text, p.Shortname)
	}

	return &Figure{
		Data: traces,
		Layout: Layout{
			Title:  Title{Text: fmt.Sprintf("Revenue Growth vs. Stock Performance (%d)", result.Year)},
			XAxis:  Axis{Title: Title{Text: "Revenuegrowth"}},
			YAxis:  Axis{Title: Title{Text: "Stock Performance"}},
			Legend: &Legend{Title: Title{Text: "Sector"}},
		},
	}
}
