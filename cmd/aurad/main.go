package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	aurav1 "github.com/TadiwanasheNdombo/aura-document-system/gen/proto/aura/v1"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/async"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/auth"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/export"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/fields"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ingest"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm/gemini"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
	processor "github.com/TadiwanasheNdombo/aura-document-system/internal/pipeline"
	repo "github.com/TadiwanasheNdombo/aura-document-system/internal/repository"
	svc "github.com/TadiwanasheNdombo/aura-document-system/internal/server"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/triage"
)

func main() {
	logger := common.NewLogger()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	authKeys, err := auth.ParseKeySpec(cfg.Server.AuthKeys)
	if err != nil {
		logger.Error("invalid AUTH_KEYS", "error", err)
		os.Exit(1)
	}
	provider := auth.NewStaticProvider(authKeys)
	if !provider.Enabled() {
		logger.Warn("no auth keys configured, serving unauthenticated")
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(auth.UnaryInterceptor(provider)))

	fieldsRepo := repo.NewExtractionFieldRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		TessdataDir:      cfg.OCR.TessdataDir,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
		DPI:              cfg.OCR.RasterDPI,
	}, logger)

	var vision llm.FieldExtractor
	if cfg.Vision.APIKey != "" {
		vision = gemini.NewClient(gemini.Config{
			Model:       cfg.Vision.Model,
			APIKey:      cfg.Vision.APIKey,
			BaseURL:     cfg.Vision.Endpoint,
			Temperature: cfg.Vision.Temperature,
			Timeout:     cfg.Vision.Timeout,
			RateLimit:   cfg.Vision.RateLimit,
		}, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set, vision extraction disabled")
	}

	proc := processor.NewProcessor(logger, extractor, fields.NewParser(logger), vision, fieldsRepo)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	if watchDir := os.Getenv("INGEST_WATCH_DIR"); watchDir != "" {
		ingestor := ingest.NewFSIngestor(queue, logger)
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{watchDir},
			InitialScan: true,
			Debounce:    500 * time.Millisecond,
		}, logger)
		if err != nil {
			logger.Error("failed to start intake watcher", "dir", watchDir, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range evCh {
				if _, err := ingestor.IngestPath(ctx, path); err != nil {
					logger.Warn("intake failed", "path", path, "error", err)
				}
			}
		}()
		go func() {
			for err := range errCh {
				logger.Error("intake watcher error", "error", err)
			}
		}()
		logger.Info("intake watcher started", "dir", watchDir)
	}

	extractionService := svc.NewExtractionService(proc, fieldsRepo, logger)
	aurav1.RegisterExtractionServiceServer(grpcServer, extractionService)

	rules, err := triage.LoadRules(cfg.Triage.RulesPath)
	if err != nil {
		logger.Error("failed to load triage rules", "path", cfg.Triage.RulesPath, "error", err)
		os.Exit(1)
	}
	store := triage.NewStore(cfg.Triage, logger)
	engine := triage.NewEngine(logger, store, rules, extractor)
	triageService := svc.NewTriageServer(engine, store, logger)
	aurav1.RegisterTriageServiceServer(grpcServer, triageService)

	exportService := svc.NewExportServer(export.NewService(fieldsRepo, logger), logger)
	aurav1.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("aurad listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
