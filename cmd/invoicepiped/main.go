// invoicepiped is the long-running extraction daemon: gRPC API, async
// worker pool and optional filesystem watchers.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1"
	"github.com/elitizon/invoicepipe/internal/async"
	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/core"
	"github.com/elitizon/invoicepipe/internal/export"
	"github.com/elitizon/invoicepipe/internal/ingest"
	"github.com/elitizon/invoicepipe/internal/llm/provider"
	"github.com/elitizon/invoicepipe/internal/ocr"
	repo "github.com/elitizon/invoicepipe/internal/repository"
	"github.com/elitizon/invoicepipe/internal/server"
)

func main() {
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		zlog.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		zlog.Fatal("database ping failed", zap.Error(err))
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	filesRepo := repo.NewInvoiceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	ocrExtractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TessdataDir:   cfg.OCR.TessdataDir,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)

	llmExtractor, err := provider.FromConfig(cfg, logger)
	if err != nil {
		zlog.Fatal("no usable LLM provider", zap.Error(err))
	}

	processor := core.NewProcessor(logger, ocrExtractor, llmExtractor,
		filesRepo, jobsRepo, profilesRepo, invoicesRepo, 0.60)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.RequestIDInterceptor(logger)),
	)
	v1.RegisterProfilesServiceServer(grpcServer, server.NewProfileServer(profilesRepo, logger))
	v1.RegisterIngestionServiceServer(grpcServer, server.NewIngestionServer(ingestor, queue, profilesRepo, logger))
	v1.RegisterInvoicesServiceServer(grpcServer, server.NewInvoicesServer(invoicesRepo, jobsRepo, logger))
	v1.RegisterExportServiceServer(grpcServer, server.NewExportServer(export.NewService(invoicesRepo, filesRepo, logger), logger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if dirs := os.Getenv("WATCH_DIRS"); dirs != "" {
		profileID, err := watchProfile(ctx, profilesRepo)
		if err != nil {
			zlog.Fatal("watch profile setup failed", zap.Error(err))
		}
		startWatchers(ctx, strings.Split(dirs, ","), profileID, ingestor, queue, logger)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		zlog.Fatal("listen failed", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}

	zlog.Info("invoicepiped listening", zap.String("addr", cfg.Server.GRPCAddr))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatal("grpc serve failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// watchProfile resolves the profile used for watcher-driven ingestion,
// either WATCH_PROFILE_ID or a "Watcher" profile created on demand.
func watchProfile(ctx context.Context, profiles repo.ProfileRepository) (uuid.UUID, error) {
	if raw := os.Getenv("WATCH_PROFILE_ID"); raw != "" {
		return uuid.Parse(raw)
	}
	p, err := profiles.GetOrCreateByName(ctx, "Watcher", "USD")
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID, nil
}

// startWatchers funnels filesystem events into ingestion and the work queue.
func startWatchers(ctx context.Context, roots []string, profileID uuid.UUID, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	for i := range roots {
		roots[i] = strings.TrimSpace(roots[i])
	}
	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: true,
		Debounce:    2 * time.Second,
	})
	if err != nil {
		logger.Error("watcher.start_failed", "roots", roots, "error", err)
		return
	}
	logger.Info("watcher.started", "roots", roots, "profile_id", profileID)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-errs:
				if !ok {
					return
				}
				logger.Error("watcher.error", "error", err)
			case path, ok := <-paths:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, profileID, path)
				if err != nil {
					logger.Error("watcher.ingest_failed", "path", path, "error", err)
					continue
				}
				if r.Deduplicated {
					continue
				}
				fileID, err := uuid.Parse(r.FileID)
				if err != nil {
					continue
				}
				if err := queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()}); err != nil {
					logger.Error("watcher.enqueue_failed", "file_id", r.FileID, "error", err)
				}
			}
		}
	}()
}
