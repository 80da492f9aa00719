// Package pipeline runs the three-stage label scan: localize the label
// in the photo, recognize its text, and extract structured wine fields.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/internal/analysis"
	"github.com/sahlen/vinkallaren/internal/common"
	"github.com/sahlen/vinkallaren/internal/detect"
	"github.com/sahlen/vinkallaren/internal/imaging"
	"github.com/sahlen/vinkallaren/internal/ocr"
	"github.com/sahlen/vinkallaren/internal/repository"
	"github.com/sahlen/vinkallaren/internal/scanner"
)

// Config holds thresholds and behavior flags for the scan pipeline.
type Config struct {
	MinConfidence float32 // extraction confidence below this flags review; default 0.60
}

// ScanOutcome summarizes a finished scan for callers.
type ScanOutcome struct {
	JobID               uuid.UUID
	Data                scanner.ExtractedWineData
	Confidence          float32
	RawText             string
	NeedsReview         bool
	DetectionConfidence *float32
	CroppedPath         string
}

type Processor struct {
	Logger     *slog.Logger
	Cfg        Config
	Photos     repository.LabelPhotoRepository
	Jobs       repository.ScanJobRepository
	Detector   *detect.Client
	Recognizer *ocr.Recognizer
	Store      *imaging.TempStore
	Clock      analysis.Clock
}

func NewProcessor(
	logger *slog.Logger,
	cfg Config,
	photos repository.LabelPhotoRepository,
	jobs repository.ScanJobRepository,
	detector *detect.Client,
	recognizer *ocr.Recognizer,
	store *imaging.TempStore,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Processor{
		Logger:     logger,
		Cfg:        cfg,
		Photos:     photos,
		Jobs:       jobs,
		Detector:   detector,
		Recognizer: recognizer,
		Store:      store,
		Clock:      analysis.RealClock{},
	}
}

// Run processes one registered photo end to end. Detection is advisory:
// when the detector is unconfigured, fails, or finds nothing above
// threshold, recognition falls back to the full photograph. Blank OCR
// output and text without a plausible name, producer, or vintage are
// terminal failures.
func (p *Processor) Run(ctx context.Context, photoID uuid.UUID) (*ScanOutcome, error) {
	photo, err := p.Photos.GetByID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}

	format := constants.MapExtToFormat(photo.FileExt)
	if format == "" {
		return nil, fmt.Errorf("unsupported format: %s", photo.FileExt)
	}

	job, err := p.Jobs.Start(ctx, photo.ID, format)
	if err != nil {
		return nil, err
	}
	ctx = common.WithScanID(ctx, job.ID.String())
	if err := p.Jobs.MarkStatus(ctx, job.ID, constants.JobStatusRunning); err != nil {
		return nil, err
	}

	outcome := &ScanOutcome{JobID: job.ID}

	// Stage 1: label detection.
	ocrPath := photo.SourcePath
	if cropped, conf, ok := p.detectAndCrop(ctx, job.ID, photo.SourcePath); ok {
		ocrPath = cropped
		outcome.CroppedPath = cropped
		outcome.DetectionConfidence = &conf
	} else if err := p.Jobs.MarkStatus(ctx, job.ID, constants.JobStatusDetectOK); err != nil {
		return outcome, err
	}

	// Stage 2: text recognition.
	res, err := p.Recognizer.Recognize(ctx, ocrPath)
	if err != nil {
		msg := fmt.Sprintf("text recognition failed: %v", err)
		_ = p.Jobs.FinishFailure(ctx, job.ID, msg)
		return outcome, fmt.Errorf("recognize: %w", err)
	}
	if res.IsBlank() {
		_ = p.Jobs.FinishFailure(ctx, job.ID, "no text found on label")
		return outcome, fmt.Errorf("no text found on label")
	}
	if err := p.Jobs.RecordOCR(ctx, job.ID, res.FullText); err != nil {
		return outcome, err
	}
	outcome.RawText = res.FullText

	// Stage 3: field extraction.
	data := scanner.ExtractFields(res.Lines, res.FullText, p.Clock.Now().Year())
	if !data.HasMinimumData() {
		_ = p.Jobs.FinishFailure(ctx, job.ID, "could not extract wine information from label text")
		return outcome, fmt.Errorf("could not extract wine information from label text")
	}

	confidence := scanner.Confidence(data)
	needsReview := confidence < p.Cfg.MinConfidence
	if needsReview {
		p.Logger.Warn("extraction confidence low; needs review",
			"photo_id", photoID, "job_id", job.ID, "confidence", confidence)
	}
	if err := p.Jobs.FinishExtraction(ctx, job.ID, data, confidence, needsReview); err != nil {
		return outcome, err
	}

	outcome.Data = data
	outcome.Confidence = confidence
	outcome.NeedsReview = needsReview
	return outcome, nil
}

// detectAndCrop tries to localize the label and write a cropped temp
// file. It reports ok=false for every failure path so the caller can
// continue on the original photo.
func (p *Processor) detectAndCrop(ctx context.Context, jobID uuid.UUID, sourcePath string) (string, float32, bool) {
	if p.Detector == nil || !p.Detector.IsConfigured() {
		p.Logger.Debug("label detection disabled; using full photo", "job_id", jobID)
		return "", 0, false
	}

	payload, err := imaging.ReadJPEGBytes(sourcePath)
	if err != nil {
		p.Logger.Warn("label detection skipped: read photo", "job_id", jobID, "error", err)
		return "", 0, false
	}

	resp, err := p.Detector.Detect(ctx, payload)
	if err != nil {
		p.Logger.Warn("label detection failed; using full photo", "job_id", jobID, "error", err)
		return "", 0, false
	}
	best := detect.BestPrediction(resp)
	if best == nil {
		p.Logger.Info("no label found above threshold; using full photo", "job_id", jobID)
		return "", 0, false
	}

	src, err := imaging.LoadImage(sourcePath)
	if err != nil {
		p.Logger.Warn("label crop skipped: decode photo", "job_id", jobID, "error", err)
		return "", 0, false
	}
	cropped, err := imaging.Crop(src, best.BoundingBox())
	if err != nil {
		p.Logger.Warn("label crop failed; using full photo", "job_id", jobID, "error", err)
		return "", 0, false
	}
	path, err := p.Store.SaveJPEG(cropped)
	if err != nil {
		p.Logger.Warn("label crop failed; using full photo", "job_id", jobID, "error", err)
		return "", 0, false
	}

	conf := float32(best.Confidence)
	if err := p.Jobs.RecordDetection(ctx, jobID, conf, path); err != nil {
		p.Logger.Warn("label detection not persisted", "job_id", jobID, "error", err)
	}
	return path, conf, true
}
