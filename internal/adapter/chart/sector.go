package chart

import (
	"fmt"

	"github.com/simaogato/stockscope-backend/internal/usecase/sector"
)

const (
	sectorColor = "blue"
	indexColor  = "red"
)

// SectorFigure draws the sector mean on the left axis and the index on the right
func SectorFigure(perf *sector.SectorPerformance) *Figure {
	sx, sy := seriesXY(perf.SectorSeries)
	ix, iy := seriesXY(perf.IndexSeries)

	return &Figure{
		Data: []Trace{
			{
				Type: "scatter",
				Mode: "lines",
				Name: fmt.Sprintf("%s Sector", perf.Sector),
				X:    sx,
				Y:    sy,
				Line: &Line{Color: sectorColor},
			},
			{
				Type:    "scatter",
				Mode:    "lines",
				Name:    "S&P 500 Index",
				X:       ix,
				Y:       iy,
				YAxis:   "y2",
				Opacity: 0.7,
				Line:    &Line{Color: indexColor},
			},
		},
		Layout: Layout{
			Title: Title{Text: fmt.Sprintf("Sector Performance Analysis: %s (%d-%d)", perf.Sector, perf.Range.From, perf.Range.To)},
			XAxis: Axis{Title: Title{Text: "Year"}, Type: "date"},
			YAxis: Axis{
				Title: Title{Text: fmt.Sprintf("%s Sector Price", perf.Sector), Font: &Font{Color: sectorColor}},
			},
			YAxis2: &Axis{
				Title:      Title{Text: "S&P 500 Index Price", Font: &Font{Color: indexColor}},
				Side:       "right",
				Overlaying: "y",
			},
		},
	}
}
