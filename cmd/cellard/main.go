package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	cellarpb "github.com/sahlen/vinkallaren/gen/proto/cellar/v1"
	"github.com/sahlen/vinkallaren/internal/analysis"
	"github.com/sahlen/vinkallaren/internal/cellar"
	"github.com/sahlen/vinkallaren/internal/common"
	"github.com/sahlen/vinkallaren/internal/detect"
	"github.com/sahlen/vinkallaren/internal/export"
	"github.com/sahlen/vinkallaren/internal/imaging"
	"github.com/sahlen/vinkallaren/internal/importer"
	"github.com/sahlen/vinkallaren/internal/ingest"
	"github.com/sahlen/vinkallaren/internal/ocr"
	"github.com/sahlen/vinkallaren/internal/pipeline"
	"github.com/sahlen/vinkallaren/internal/repository"
	"github.com/sahlen/vinkallaren/internal/server"
	"github.com/sahlen/vinkallaren/internal/sysb"
)

func main() {
	// Logger
	zl, _ := zap.NewProduction()
	defer zl.Sync()
	log := zl.Sugar()

	// Components log through slog.
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Database
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, slogger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repository.Close(entc, pool, slogger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, slogger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Repositories
	wines := repository.NewWineRepository(entc, slogger)
	photos := repository.NewLabelPhotoRepository(entc, slogger)
	jobs := repository.NewScanJobRepository(entc, slogger)
	notes := repository.NewTastingNoteRepository(entc, slogger)
	locations := repository.NewLocationRepository(entc, slogger)

	// Scan pipeline
	detector := detect.NewClient(detect.Config{
		BaseURL: cfg.Detect.BaseURL,
		Model:   cfg.Detect.Model,
		APIKey:  cfg.Detect.APIKey,
		Timeout: cfg.Detect.Timeout,
	}, nil, slogger)
	recognizer := ocr.NewRecognizer(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, slogger)
	store, err := imaging.NewTempStore(cfg.OCR.ArtifactCacheDir, imaging.DefaultTempMaxAge, slogger)
	if err != nil {
		log.Fatalf("artifact cache: %v", err)
	}
	processor := pipeline.NewProcessor(slogger, pipeline.Config{}, photos, jobs, detector, recognizer, store)

	// Domain services
	estimator := analysis.NewEstimator(nil)
	cellarSvc := cellar.NewService(wines, notes, locations, jobs, estimator, slogger)
	exporter := export.NewService(wines, estimator, slogger)
	imp := importer.NewImporter(wines, slogger)
	catalog := sysb.NewClient(sysb.Config{
		BaseURL: cfg.Sysb.BaseURL,
		APIKey:  cfg.Sysb.APIKey,
		Timeout: cfg.Sysb.Timeout,
	}, nil, slogger)
	ingestor := ingest.NewFSIngestor(photos, slogger)

	// Optional photo-inbox watcher
	if len(cfg.Ingest.WatchRoots) > 0 {
		paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchRoots,
			InitialScan: true,
			Debounce:    cfg.Ingest.Debounce,
		}, slogger)
		if err != nil {
			log.Fatalf("starting watcher: %v", err)
		}
		go runInbox(ctx, paths, errs, ingestor, processor, slogger)
		log.Infow("photo inbox watching", "roots", cfg.Ingest.WatchRoots)
	}

	// Periodic sweep of stale cropped-label files.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				store.Sweep()
			}
		}
	}()

	// gRPC server
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(server.UnaryRequestID(slogger)))
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	cellarpb.RegisterCellarServiceServer(grpcServer, server.NewCellarServer(cellarSvc, exporter, imp, slogger))
	cellarpb.RegisterScanServiceServer(grpcServer, server.NewScanServer(ingestor, processor, jobs, cellarSvc, catalog, slogger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}

// runInbox drains watcher events, registering each new photo and running
// the scan pipeline on it. Failures are logged and the loop keeps going.
func runInbox(
	ctx context.Context,
	paths <-chan string,
	errs <-chan error,
	ingestor ingest.Ingestor,
	processor *pipeline.Processor,
	logger *slog.Logger,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)
		case path, ok := <-paths:
			if !ok {
				return
			}
			res, err := ingestor.IngestPath(ctx, path)
			if err != nil {
				logger.Warn("inbox ingest failed", "path", path, "error", err)
				continue
			}
			if res.Deduplicated {
				logger.Info("inbox photo already known", "path", path, "photo_id", res.PhotoID)
				continue
			}
			photoID, err := uuid.Parse(res.PhotoID)
			if err != nil {
				logger.Warn("inbox ingest returned bad photo id", "path", path, "photo_id", res.PhotoID)
				continue
			}
			if _, err := processor.Run(ctx, photoID); err != nil {
				logger.Warn("inbox scan failed", "photo_id", res.PhotoID, "error", err)
			}
		}
	}
}
