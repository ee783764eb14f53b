package grpc

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/stockscope-backend/internal/adapter/chart"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// Response documents. Field names are the JSON keys clients read.

type viewMessage struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Parameters []string `json:"parameters"`
}

type overviewResponse struct {
	Views     []viewMessage `json:"views"`
	StockRows int           `json:"stock_rows"`
	Companies int           `json:"companies"`
	IndexRows int           `json:"index_rows"`
	Sectors   int           `json:"sectors"`
	FirstDate string        `json:"first_date"`
	LastDate  string        `json:"last_date"`
	Years     []int         `json:"years"`
	Months    []int         `json:"months"`
}

type companyMessage struct {
	Symbol        string `json:"symbol"`
	Shortname     string `json:"shortname"`
	Longname      string `json:"longname"`
	Exchange      string `json:"exchange"`
	Sector        string `json:"sector"`
	Industry      string `json:"industry"`
	RevenueGrowth any    `json:"revenue_growth"`
}

type pointMessage struct {
	Date  string `json:"date"`
	Value any    `json:"value"`
}

type sectorResponse struct {
	Sector       string         `json:"sector"`
	FromYear     int            `json:"from_year"`
	ToYear       int            `json:"to_year"`
	SectorSeries []pointMessage `json:"sector_series"`
	IndexSeries  []pointMessage `json:"index_series"`
	Figure       *chart.Figure  `json:"figure"`
}

type growthPointMessage struct {
	Symbol        string `json:"symbol"`
	Date          string `json:"date"`
	Close         any    `json:"close"`
	Sector        string `json:"sector"`
	RevenueGrowth any    `json:"revenue_growth"`
	Shortname     string `json:"shortname"`
}

// growthResponse carries the figure; the joined rows are only sent when asked
// for, since a full year holds one row per symbol and trading day.
type growthResponse struct {
	Year       int                  `json:"year"`
	NoData     bool                 `json:"no_data"`
	Message    string               `json:"message"`
	PointCount int                  `json:"point_count"`
	Points     []growthPointMessage `json:"points,omitempty"`
	Figure     *chart.Figure        `json:"figure"`
}

type priceRowMessage struct {
	Date  string `json:"date"`
	Open  any    `json:"open"`
	High  any    `json:"high"`
	Low   any    `json:"low"`
	Close any    `json:"close"`
}

type monthlyResponse struct {
	Symbol    string            `json:"symbol"`
	Shortname string            `json:"shortname"`
	Month     int               `json:"month"`
	Year      int               `json:"year"`
	NoData    bool              `json:"no_data"`
	Message   string            `json:"message"`
	Rows      []priceRowMessage `json:"rows"`
	Highest   *pointMessage     `json:"highest"`
	Lowest    *pointMessage     `json:"lowest"`
	Figure    *chart.Figure     `json:"figure"`
}

// toStruct encodes a response document as a google.protobuf.Struct
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

// value renders a NullDecimal as a JSON number, or null when invalid.
// Struct numbers are float64, so the client sees the nearest double.
func value(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return json.Number(d.Decimal.String())
}

func toCompanyMessage(c domain.CompanyRecord) companyMessage {
	return companyMessage{
		Symbol:        c.Symbol,
		Shortname:     c.Shortname,
		Longname:      c.Longname,
		Exchange:      c.Exchange,
		Sector:        c.Sector,
		Industry:      c.Industry,
		RevenueGrowth: value(c.RevenueGrowth),
	}
}

func toPointMessages(series []domain.SeriesPoint) []pointMessage {
	points := make([]pointMessage, 0, len(series))
	for _, p := range series {
		points = append(points, pointMessage{
			Date:  p.Date.Format(domain.DateLayout),
			Value: value(p.Value),
		})
	}
	return points
}

// Request fields

// stringField reads a required string field
func stringField(req *structpb.Struct, name string) (string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "missing field %q", name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "field %q must be a string", name)
	}
	return s.StringValue, nil
}

// intField reads a required integer field given either as a whole number or
// as its decimal text
func intField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "missing field %q", name)
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
			return 0, status.Errorf(codes.InvalidArgument, "field %q must be a whole number", name)
		}
		return int(n), nil
	case *structpb.Value_StringValue:
		n, err := strconv.Atoi(strings.TrimSpace(kind.StringValue))
		if err != nil {
			return 0, status.Errorf(codes.InvalidArgument, "field %q must be a whole number", name)
		}
		return n, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "field %q must be a whole number", name)
	}
}

// optionalIntField reads an integer field, returning fallback when it is absent
func optionalIntField(req *structpb.Struct, name string, fallback int) (int, error) {
	if _, ok := req.GetFields()[name]; !ok {
		return fallback, nil
	}
	return intField(req, name)
}

// optionalBoolField reads a boolean field, returning false when it is absent
func optionalBoolField(req *structpb.Struct, name string) (bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return false, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, status.Errorf(codes.InvalidArgument, "field %q must be a boolean", name)
	}
	return b.BoolValue, nil
}

func stringValues(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
