package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls the analysis service over an existing connection.
// Every call carries the API token in the authorization metadata and accepts
// responses up to MaxMessageSize.
type Client struct {
	conn  grpc.ClientConnInterface
	token string
}

// NewClient creates a new analysis service client
func NewClient(conn grpc.ClientConnInterface, token string) *Client {
	return &Client{
		conn:  conn,
		token: token,
	}
}

// Invoke calls method with a request built from fields.
// fields must hold structpb-compatible values (string, float64, int, bool, []any, map[string]any).
func (c *Client) Invoke(ctx context.Context, method string, fields map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}

	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	opts = append([]grpc.CallOption{grpc.MaxCallRecvMsgSize(MaxMessageSize)}, opts...)
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Overview(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodOverview, nil, opts...)
}

func (c *Client) ListSectors(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodListSectors, nil, opts...)
}

func (c *Client) ListCompanies(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodListCompanies, nil, opts...)
}

func (c *Client) SearchCompanies(ctx context.Context, query string, limit int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodSearchCompanies, map[string]any{
		"query": query,
		"limit": limit,
	}, opts...)
}

func (c *Client) ValidateYears(ctx context.Context, fromYear, toYear string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodValidateYears, map[string]any{
		"from_year": fromYear,
		"to_year":   toYear,
	}, opts...)
}

func (c *Client) AnalyzeSector(ctx context.Context, sector, fromYear, toYear string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodAnalyzeSector, map[string]any{
		"sector":    sector,
		"from_year": fromYear,
		"to_year":   toYear,
	}, opts...)
}

// AnalyzeRevenueGrowth requests the growth view; includePoints adds the joined rows
func (c *Client) AnalyzeRevenueGrowth(ctx context.Context, year int, includePoints bool, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodAnalyzeRevenueGrowth, map[string]any{
		"year":           year,
		"include_points": includePoints,
	}, opts...)
}

func (c *Client) AnalyzeMonthly(ctx context.Context, shortname string, month, year int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.Invoke(ctx, MethodAnalyzeMonthly, map[string]any{
		"shortname": shortname,
		"month":     month,
		"year":      year,
	}, opts...)
}
