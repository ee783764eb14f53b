package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/stockscope-backend/internal/adapter/chart"
	"github.com/simaogato/stockscope-backend/internal/domain"
	"github.com/simaogato/stockscope-backend/internal/usecase/catalog"
	"github.com/simaogato/stockscope-backend/internal/usecase/growth"
	"github.com/simaogato/stockscope-backend/internal/usecase/monthly"
	"github.com/simaogato/stockscope-backend/internal/usecase/overview"
	"github.com/simaogato/stockscope-backend/internal/usecase/sector"
)

// Server implements the AnalysisService gRPC server
type Server struct {
	OverviewService *overview.OverviewService
	CatalogService  *catalog.CatalogService
	SectorService   *sector.SectorService
	GrowthService   *growth.GrowthService
	MonthlyService  *monthly.MonthlyService
}

var _ AnalysisServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	overviewService *overview.OverviewService,
	catalogService *catalog.CatalogService,
	sectorService *sector.SectorService,
	growthService *growth.GrowthService,
	monthlyService *monthly.MonthlyService,
) *Server {
	return &Server{
		OverviewService: overviewService,
		CatalogService:  catalogService,
		SectorService:   sectorService,
		GrowthService:   growthService,
		MonthlyService:  monthlyService,
	}
}

// Overview handles the Overview RPC: the launcher menu plus dataset facts
func (s *Server) Overview(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	result, err := s.OverviewService.Overview(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	views := make([]viewMessage, 0, len(result.Views))
	for _, v := range result.Views {
		views = append(views, viewMessage{
			ID:         v.ID,
			Title:      v.Title,
			Parameters: v.Parameters,
		})
	}

	resp := overviewResponse{
		Views:     views,
		StockRows: result.StockRows,
		Companies: result.Companies,
		IndexRows: result.IndexRows,
		Sectors:   result.Sectors,
		Years:     s.CatalogService.Years(),
		Months:    s.CatalogService.Months(),
	}
	if !result.FirstDate.IsZero() {
		resp.FirstDate = result.FirstDate.Format(domain.DateLayout)
		resp.LastDate = result.LastDate.Format(domain.DateLayout)
	}

	return toStruct(resp)
}

// ListSectors handles the ListSectors RPC
func (s *Server) ListSectors(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	sectors, err := s.CatalogService.Sectors(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(map[string]any{
		"sectors": stringValues(sectors),
	})
}

// ListCompanies handles the ListCompanies RPC: the short names the monthly view offers
func (s *Server) ListCompanies(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	names, err := s.CatalogService.Shortnames(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(map[string]any{
		"shortnames": stringValues(names),
	})
}

// SearchCompanies handles the SearchCompanies RPC
func (s *Server) SearchCompanies(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	query, err := stringField(req, "query")
	if err != nil {
		return nil, err
	}
	limit, err := optionalIntField(req, "limit", catalog.DefaultSearchLimit)
	if err != nil {
		return nil, err
	}

	companies, err := s.CatalogService.SearchCompanies(ctx, query, limit)
	if err != nil {
		return nil, mapError(err)
	}

	messages := make([]companyMessage, 0, len(companies))
	for _, c := range companies {
		messages = append(messages, toCompanyMessage(c))
	}

	return toStruct(map[string]any{
		"companies": messages,
	})
}

// ValidateYears handles the ValidateYears RPC.
// Invalid years are a normal response carrying the message, not an error.
func (s *Server) ValidateYears(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fromYear, err := stringField(req, "from_year")
	if err != nil {
		return nil, err
	}
	toYear, err := stringField(req, "to_year")
	if err != nil {
		return nil, err
	}

	message := s.SectorService.ValidateYears(fromYear, toYear)

	return toStruct(map[string]any{
		"valid":   message == "",
		"message": message,
	})
}

// AnalyzeSector handles the AnalyzeSector RPC
func (s *Server) AnalyzeSector(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sectorName, err := stringField(req, "sector")
	if err != nil {
		return nil, err
	}
	fromYear, err := stringField(req, "from_year")
	if err != nil {
		return nil, err
	}
	toYear, err := stringField(req, "to_year")
	if err != nil {
		return nil, err
	}

	perf, err := s.SectorService.Analyze(ctx, sector.SectorInput{
		Sector:   sectorName,
		FromYear: fromYear,
		ToYear:   toYear,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(sectorResponse{
		Sector:       perf.Sector,
		FromYear:     perf.Range.From,
		ToYear:       perf.Range.To,
		SectorSeries: toPointMessages(perf.SectorSeries),
		IndexSeries:  toPointMessages(perf.IndexSeries),
		Figure:       chart.SectorFigure(perf),
	})
}

// AnalyzeRevenueGrowth handles the AnalyzeRevenueGrowth RPC.
// The joined rows are included only when include_points is true; the figure
// already carries every (growth, close) pair.
func (s *Server) AnalyzeRevenueGrowth(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	year, err := intField(req, "year")
	if err != nil {
		return nil, err
	}
	includePoints, err := optionalBoolField(req, "include_points")
	if err != nil {
		return nil, err
	}

	result, err := s.GrowthService.Analyze(ctx, year)
	if err != nil {
		return nil, mapError(err)
	}

	resp := growthResponse{
		Year:       result.Year,
		NoData:     result.NoData,
		Message:    result.Message,
		PointCount: len(result.Points),
		Figure:     chart.GrowthFigure(result),
	}
	if includePoints {
		resp.Points = make([]growthPointMessage, 0, len(result.Points))
		for _, p := range result.Points {
			resp.Points = append(resp.Points, growthPointMessage{
				Symbol:        p.Symbol,
				Date:          p.Date.Format(domain.DateLayout),
				Close:         value(p.Close),
				Sector:        p.Sector,
				RevenueGrowth: value(p.RevenueGrowth),
				Shortname:     p.Shortname,
			})
		}
	}

	return toStruct(resp)
}

// AnalyzeMonthly handles the AnalyzeMonthly RPC
func (s *Server) AnalyzeMonthly(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	shortname, err := stringField(req, "shortname")
	if err != nil {
		return nil, err
	}
	month, err := intField(req, "month")
	if err != nil {
		return nil, err
	}
	year, err := intField(req, "year")
	if err != nil {
		return nil, err
	}

	result, err := s.MonthlyService.Analyze(ctx, monthly.MonthlyInput{
		Shortname: shortname,
		Month:     month,
		Year:      year,
	})
	if err != nil {
		return nil, mapError(err)
	}

	rows := make([]priceRowMessage, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, priceRowMessage{
			Date:  r.Date.Format(domain.DateLayout),
			Open:  value(r.Open),
			High:  value(r.High),
			Low:   value(r.Low),
			Close: value(r.Close),
		})
	}

	return toStruct(monthlyResponse{
		Symbol:    result.Company.Symbol,
		Shortname: result.Company.Shortname,
		Month:     result.Month,
		Year:      result.Year,
		NoData:    result.NoData,
		Message:   result.Message,
		Rows:      rows,
		Highest:   toExtremumMessage(result.Highest),
		Lowest:    toExtremumMessage(result.Lowest),
		Figure:    chart.MonthlyFigure(result),
	})
}

func toExtremumMessage(e *monthly.Extremum) *pointMessage {
	if e == nil {
		return nil
	}
	return &pointMessage{
		Date:  e.Date.Format(domain.DateLayout),
		Value: value(decimal.NewNullDecimal(e.Value)),
	}
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	// Validation messages are shown verbatim, so they go out unprefixed
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return status.Error(codes.InvalidArgument, validationErr.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	return status.Errorf(codes.Internal, "%s", err.Error())
}
