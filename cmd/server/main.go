package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/stockscope-backend/internal/adapter/grpc"
	"github.com/simaogato/stockscope-backend/internal/adapter/repository/csvfile"
	"github.com/simaogato/stockscope-backend/internal/adapter/repository/memory"
	"github.com/simaogato/stockscope-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/stockscope-backend/internal/adapter/search"
	"github.com/simaogato/stockscope-backend/internal/config"
	"github.com/simaogato/stockscope-backend/internal/domain"
	"github.com/simaogato/stockscope-backend/internal/usecase/catalog"
	"github.com/simaogato/stockscope-backend/internal/usecase/growth"
	"github.com/simaogato/stockscope-backend/internal/usecase/loader"
	"github.com/simaogato/stockscope-backend/internal/usecase/monthly"
	"github.com/simaogato/stockscope-backend/internal/usecase/overview"
	"github.com/simaogato/stockscope-backend/internal/usecase/sector"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// 1. Load the three tables once
	source, closeSource := openSource(ctx, cfg)
	datasetLoader := loader.NewDatasetLoader(source)
	dataset, report, err := datasetLoader.Load(ctx)
	closeSource()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("Loaded %d stock rows, %d companies, %d index rows", report.StockRows, report.CompanyRows, report.IndexRows)
	if len(report.OrphanSymbols) > 0 {
		log.Printf("Warning: %d stock symbols have no company row and are left out of sector and growth views: %s",
			len(report.OrphanSymbols), strings.Join(report.OrphanSymbols, ", "))
	}

	// 2. Initialize Repositories (in memory, read-only)
	store := memory.NewStore(dataset)
	stockRepo := memory.NewStockRepository(store)
	companyRepo := memory.NewCompanyRepository(store)
	indexRepo := memory.NewIndexRepository(store)

	companies, err := companyRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list companies: %v", err)
	}
	companyIndex, err := search.NewCompanyIndex(companies)
	if err != nil {
		log.Fatalf("Failed to build company index: %v", err)
	}
	defer companyIndex.Close()

	// 3. Initialize Services (Use Cases)
	overviewService := overview.NewOverviewService(stockRepo, companyRepo, indexRepo)
	catalogService := catalog.NewCatalogService(companyRepo, companyIndex)
	sectorService := sector.NewSectorService(stockRepo, companyRepo, indexRepo)
	growthService := growth.NewGrowthService(stockRepo, companyRepo)
	monthlyService := monthly.NewMonthlyService(stockRepo, companyRepo)

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(),
			grpcadapter.SizeLimitInterceptor(grpcadapter.MaxMessageSize),
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
		),
		grpclib.MaxSendMsgSize(grpcadapter.MaxMessageSize),
	)

	grpcAdapter := grpcadapter.NewServer(overviewService, catalogService, sectorService, growthService, monthlyService)
	grpcadapter.RegisterAnalysisServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCPort, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

// openSource picks the dataset source from the config.
// The returned func releases whatever the source holds once loading is done.
func openSource(ctx context.Context, cfg *config.Config) (domain.DatasetSource, func()) {
	if cfg.Data.Source == config.SourcePostgres {
		db, err := postgres.NewDB(ctx, cfg.DBConnStr())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		log.Println("Loading dataset from Postgres")
		return postgres.NewSource(db), func() {
			if err := db.Close(); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}
	}

	log.Printf("Loading dataset from %s, %s, %s", cfg.StocksPath(), cfg.CompaniesPath(), cfg.IndexPath())
	return csvfile.NewSource(cfg.StocksPath(), cfg.CompaniesPath(), cfg.IndexPath()), func() {}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
