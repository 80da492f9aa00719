package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/internal/common"
	"github.com/sahlen/vinkallaren/internal/detect"
	"github.com/sahlen/vinkallaren/internal/imaging"
	"github.com/sahlen/vinkallaren/internal/ingest"
	"github.com/sahlen/vinkallaren/internal/ocr"
	"github.com/sahlen/vinkallaren/internal/pipeline"
	repo "github.com/sahlen/vinkallaren/internal/repository"
	"github.com/sahlen/vinkallaren/internal/scanner"
)

// scanlabel runs the full scan pipeline over a single label photo and
// prints the extracted fields. Useful for tuning extraction heuristics
// against real bottles without the daemon running.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "scanlabel <photo-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	photos := repo.NewLabelPhotoRepository(entc, logger)
	jobs := repo.NewScanJobRepository(entc, logger)

	ingestor := ingest.NewFSIngestor(photos, logger)
	res, err := ingestor.IngestPath(ctx, path)
	if err != nil {
		logger.Error("ingest failed", "path", path, "error", err)
		os.Exit(1)
	}
	photoID, err := uuid.Parse(res.PhotoID)
	if err != nil {
		logger.Error("bad photo id", "photo_id", res.PhotoID)
		os.Exit(1)
	}
	if res.Deduplicated {
		logger.Info("photo already registered", "photo_id", res.PhotoID)
	}

	detector := detect.NewClient(detect.Config{
		BaseURL: cfg.Detect.BaseURL,
		Model:   cfg.Detect.Model,
		APIKey:  cfg.Detect.APIKey,
		Timeout: cfg.Detect.Timeout,
	}, nil, logger)
	recognizer := ocr.NewRecognizer(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)
	store, err := imaging.NewTempStore(cfg.OCR.ArtifactCacheDir, imaging.DefaultTempMaxAge, logger)
	if err != nil {
		logger.Error("artifact cache", "error", err)
		os.Exit(1)
	}

	p := pipeline.NewProcessor(logger, pipeline.Config{}, photos, jobs, detector, recognizer, store)

	start := time.Now()
	outcome, err := p.Run(ctx, photoID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("scan failed", "photo_id", photoID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("scan OK",
		"job_id", outcome.JobID,
		"confidence", outcome.Confidence,
		"needs_review", outcome.NeedsReview,
		"duration_ms", dur.Milliseconds())

	printExtracted(outcome.Data)
}

func printExtracted(d scanner.ExtractedWineData) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		fmt.Printf("%+v\n", d)
		return
	}
	fmt.Println(string(out))
}
