package chart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// Figure is a Plotly figure document: traces plus layout.
// Missing values are encoded as JSON null so the renderer leaves a gap.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly scatter trace (lines or markers)
type Trace struct {
	Type      string   `json:"type"`
	Mode      string   `json:"mode"`
	Name      string   `json:"name"`
	X         []any    `json:"x"`
	Y         []any    `json:"y"`
	Text      []string `json:"text,omitempty"`
	HoverInfo string   `json:"hoverinfo,omitempty"`
	YAxis     string   `json:"yaxis,omitempty"`
	Opacity   float64  `json:"opacity,omitempty"`
	Line      *Line    `json:"line,omitempty"`
}

type Line struct {
	Color string `json:"color"`
}

type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

type Font struct {
	Color string `json:"color"`
}

type Axis struct {
	Title      Title  `json:"title"`
	Side       string `json:"side,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
	Type       string `json:"type,omitempty"`
}

type Legend struct {
	Title Title `json:"title"`
}

// Annotation is a labelled arrow pointing at one data point
type Annotation struct {
	X         any    `json:"x"`
	Y         any    `json:"y"`
	Text      string `json:"text"`
	ShowArrow bool   `json:"showarrow"`
	ArrowHead int    `json:"arrowhead"`
}

type Layout struct {
	Title       Title        `json:"title"`
	XAxis       Axis         `json:"xaxis"`
	YAxis       Axis         `json:"yaxis"`
	YAxis2      *Axis        `json:"yaxis2,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// number renders a decimal as a JSON number carrying the decimal's own text.
// Transports that decode JSON numbers as float64 (structpb) round it there.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// nullableNumber renders an invalid NullDecimal as null
func nullableNumber(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return number(d.Decimal)
}

func date(point domain.SeriesPoint) string {
	return point.Date.Format(domain.DateLayout)
}

// seriesXY splits a series into its date and value columns
func seriesXY(series []domain.SeriesPoint) ([]any, []any) {
	x := make([]any, 0, len(series))
	y := make([]any, 0, len(series))
	for _, p := range series {
		x = append(x, date(p))
		y = append(y, nullableNumber(p.Value))
	}
	return x, y
}
