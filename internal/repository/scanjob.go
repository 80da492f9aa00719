package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/gen/ent"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
)

type ScanJobRepository interface {
	Start(ctx context.Context, photoID uuid.UUID, format string) (*ent.ScanJob, error)
	MarkStatus(ctx context.Context, jobID uuid.UUID, status constants.JobStatus) error
	RecordDetection(ctx context.Context, jobID uuid.UUID, confidence float32, croppedPath string) error
	RecordOCR(ctx context.Context, jobID uuid.UUID, rawText string) error
	FinishExtraction(ctx context.Context, jobID uuid.UUID, extracted any, confidence float32, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	LinkWine(ctx context.Context, jobID, wineID uuid.UUID) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ScanJob, error)
	ListRecent(ctx context.Context, limit int) ([]*ent.ScanJob, error)
}

type scanJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, log *slog.Logger) ScanJobRepository {
	return &scanJobRepo{ent: entc, log: log}
}

func (r *scanJobRepo) Start(ctx context.Context, photoID uuid.UUID, format string) (*ent.ScanJob, error) {
	job, err := r.ent.ScanJob.
		Create().
		SetPhotoID(photoID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job start failed", "photo_id", photoID, "err", err)
		return nil, err
	}
	r.log.Info("scan_job started", "job_id", job.ID, "photo_id", photoID, "format", format)
	return job, nil
}

func (r *scanJobRepo) MarkStatus(ctx context.Context, jobID uuid.UUID, status constants.JobStatus) error {
	err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.log.Error("scan_job status update failed", "job_id", jobID, "status", status, "err", err)
	}
	return err
}

func (r *scanJobRepo) RecordDetection(ctx context.Context, jobID uuid.UUID, confidence float32, croppedPath string) error {
	err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetDetectionConfidence(confidence).
		SetCroppedPath(croppedPath).
		SetStatus(string(constants.JobStatusDetectOK)).
		Exec(ctx)
	if err != nil {
		r.log.Error("scan_job detection update failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job label detected", "job_id", jobID, "confidence", confidence)
	return nil
}

func (r *scanJobRepo) RecordOCR(ctx context.Context, jobID uuid.UUID, rawText string) error {
	err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetRawText(rawText).
		SetStatus(string(constants.JobStatusOCROK)).
		Exec(ctx)
	if err != nil {
		r.log.Error("scan_job ocr update failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job text recognized", "job_id", jobID, "chars", len(rawText))
	return nil
}

func (r *scanJobRepo) FinishExtraction(ctx context.Context, jobID uuid.UUID, extracted any, confidence float32, needsReview bool) error {
	payload, err := json.Marshal(extracted)
	if err != nil {
		return err
	}
	err = r.ent.ScanJob.
		UpdateOneID(jobID).
		SetExtractedJSON(payload).
		SetExtractionConfidence(confidence).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK)).
		Exec(ctx)
	if err != nil {
		r.log.Error("scan_job finish(EXTRACT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job finished (EXTRACT_OK)", "job_id", jobID, "confidence", confidence, "needs_review", needsReview)
	return nil
}

func (r *scanJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.log.Error("scan_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("scan_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *scanJobRepo) LinkWine(ctx context.Context, jobID, wineID uuid.UUID) error {
	return r.ent.ScanJob.
		UpdateOneID(jobID).
		SetWineID(wineID).
		Exec(ctx)
}

func (r *scanJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ScanJob, error) {
	return r.ent.ScanJob.Get(ctx, jobID)
}

func (r *scanJobRepo) ListRecent(ctx context.Context, limit int) ([]*ent.ScanJob, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.ent.ScanJob.Query().
		Order(scanjob.ByStartedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
}
