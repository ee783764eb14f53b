package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the analysis service
const ServiceName = "stockscope.v1.AnalysisService"

// MaxMessageSize bounds a single response. A full year of the revenue growth
// figure is several megabytes, above grpc's 4 MB receive default.
const MaxMessageSize = 64 << 20

// Method names of the analysis service
const (
	MethodOverview             = "Overview"
	MethodListSectors          = "ListSectors"
	MethodListCompanies        = "ListCompanies"
	MethodSearchCompanies      = "SearchCompanies"
	MethodValidateYears        = "ValidateYears"
	MethodAnalyzeSector        = "AnalyzeSector"
	MethodAnalyzeRevenueGrowth = "AnalyzeRevenueGrowth"
	MethodAnalyzeMonthly       = "AnalyzeMonthly"
)

// AnalysisServiceServer is the server API for the analysis service.
// Requests and responses are google.protobuf.Struct documents.
type AnalysisServiceServer interface {
	Overview(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSectors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCompanies(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SearchCompanies(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ValidateYears(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AnalyzeSector(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AnalyzeRevenueGrowth(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AnalyzeMonthly(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterAnalysisServiceServer registers srv on s
func RegisterAnalysisServiceServer(s grpc.ServiceRegistrar, srv AnalysisServiceServer) {
	s.RegisterService(&AnalysisServiceDesc, srv)
}

// AnalysisServiceDesc describes the analysis service to the grpc runtime
var AnalysisServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalysisServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodOverview,
			Handler:    structHandler(MethodOverview, AnalysisServiceServer.Overview),
		},
		{
			MethodName: MethodListSectors,
			Handler:    structHandler(MethodListSectors, AnalysisServiceServer.ListSectors),
		},
		{
			MethodName: MethodListCompanies,
			Handler:    structHandler(MethodListCompanies, AnalysisServiceServer.ListCompanies),
		},
		{
			MethodName: MethodSearchCompanies,
			Handler:    structHandler(MethodSearchCompanies, AnalysisServiceServer.SearchCompanies),
		},
		{
			MethodName: MethodValidateYears,
			Handler:    structHandler(MethodValidateYears, AnalysisServiceServer.ValidateYears),
		},
		{
			MethodName: MethodAnalyzeSector,
			Handler:    structHandler(MethodAnalyzeSector, AnalysisServiceServer.AnalyzeSector),
		},
		{
			MethodName: MethodAnalyzeRevenueGrowth,
			Handler:    structHandler(MethodAnalyzeRevenueGrowth, AnalysisServiceServer.AnalyzeRevenueGrowth),
		},
		{
			MethodName: MethodAnalyzeMonthly,
			Handler:    structHandler(MethodAnalyzeMonthly, AnalysisServiceServer.AnalyzeMonthly),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stockscope/v1/analysis.proto",
}

type structMethod func(AnalysisServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// structHandler adapts a server method to a grpc.MethodHandler, running the
// interceptor chain when one is installed
func structHandler(method string, call structMethod) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := FullMethod(method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AnalysisServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AnalysisServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FullMethod returns the "/service/method" path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}
