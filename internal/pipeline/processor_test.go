package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/gen/ent"
	"github.com/sahlen/vinkallaren/internal/ocr"
)

type stubPhotoRepo struct {
	photo *ent.LabelPhoto
	err   error
}

func (s *stubPhotoRepo) GetByID(context.Context, uuid.UUID) (*ent.LabelPhoto, error) {
	return s.photo, s.err
}

func (s *stubPhotoRepo) GetByHash(context.Context, string) (*ent.LabelPhoto, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPhotoRepo) Create(context.Context, string, string, string, int, string, time.Time) (*ent.LabelPhoto, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPhotoRepo) UpsertByHash(context.Context, string, string, string, int, string, time.Time) (*ent.LabelPhoto, bool, error) {
	return nil, false, errors.New("not implemented")
}

type jobUpdate struct {
	kind    string
	status  constants.JobStatus
	message string
}

type stubJobRepo struct {
	jobID      uuid.UUID
	updates    []jobUpdate
	confidence float32
	review     bool
	rawText    string
}

func (s *stubJobRepo) Start(_ context.Context, photoID uuid.UUID, format string) (*ent.ScanJob, error) {
	s.jobID = uuid.New()
	s.updates = append(s.updates, jobUpdate{kind: "start"})
	return &ent.ScanJob{ID: s.jobID, PhotoID: photoID, Format: format}, nil
}

func (s *stubJobRepo) MarkStatus(_ context.Context, _ uuid.UUID, status constants.JobStatus) error {
	s.updates = append(s.updates, jobUpdate{kind: "status", status: status})
	return nil
}

func (s *stubJobRepo) RecordDetection(_ context.Context, _ uuid.UUID, confidence float32, _ string) error {
	s.updates = append(s.updates, jobUpdate{kind: "detection"})
	return nil
}

func (s *stubJobRepo) RecordOCR(_ context.Context, _ uuid.UUID, rawText string) error {
	s.rawText = rawText
	s.updates = append(s.updates, jobUpdate{kind: "ocr"})
	return nil
}

func (s *stubJobRepo) FinishExtraction(_ context.Context, _ uuid.UUID, _ any, confidence float32, needsReview bool) error {
	s.confidence = confidence
	s.review = needsReview
	s.updates = append(s.updates, jobUpdate{kind: "extract"})
	return nil
}

func (s *stubJobRepo) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	s.updates = append(s.updates, jobUpdate{kind: "failure", message: message})
	return nil
}

func (s *stubJobRepo) LinkWine(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (s *stubJobRepo) GetByID(context.Context, uuid.UUID) (*ent.ScanJob, error) {
	return nil, errors.New("not implemented")
}

func (s *stubJobRepo) ListRecent(context.Context, int) ([]*ent.ScanJob, error) {
	return nil, nil
}

func (s *stubJobRepo) lastKind() string {
	if len(s.updates) == 0 {
		return ""
	}
	return s.updates[len(s.updates)-1].kind
}

type stubRunner struct {
	stdout []byte
	err    error
}

func (s stubRunner) Run(context.Context, string, ...string) ([]byte, []byte, error) {
	return s.stdout, nil, s.err
}

func newTestProcessor(jobs *stubJobRepo, photos *stubPhotoRepo, ocrOutput string, ocrErr error) *Processor {
	recognizer := ocr.NewRecognizer(ocr.Config{}, nil).
		WithRunner(stubRunner{stdout: []byte(ocrOutput), err: ocrErr})
	return NewProcessor(nil, Config{}, photos, jobs, nil, recognizer, nil)
}

func testPhoto() *ent.LabelPhoto {
	return &ent.LabelPhoto{
		ID:         uuid.New(),
		SourcePath: "/photos/label.jpg",
		Filename:   "label.jpg",
		FileExt:    "jpg",
	}
}

func TestProcessor_FullScan(t *testing.T) {
	jobs := &stubJobRepo{}
	photos := &stubPhotoRepo{photo: testPhoto()}
	labelText := "Chateau Margaux\nMargaux\n2015\nProduct of France\n13,5% vol"
	p := newTestProcessor(jobs, photos, labelText, nil)

	outcome, err := p.Run(context.Background(), photos.photo.ID)
	require.NoError(t, err)

	assert.Equal(t, jobs.jobID, outcome.JobID)
	require.NotNil(t, outcome.Data.Name)
	assert.Equal(t, "Chateau Margaux", *outcome.Data.Name)
	require.NotNil(t, outcome.Data.Vintage)
	assert.Equal(t, 2015, *outcome.Data.Vintage)
	assert.Equal(t, labelText, outcome.RawText)
	assert.Greater(t, outcome.Confidence, float32(0))

	// Detector is unconfigured, so the detect stage completes without a crop.
	assert.Nil(t, outcome.DetectionConfidence)
	assert.Empty(t, outcome.CroppedPath)
	assert.Equal(t, "extract", jobs.lastKind())
}

func TestProcessor_BlankOCRFails(t *testing.T) {
	jobs := &stubJobRepo{}
	photos := &stubPhotoRepo{photo: testPhoto()}
	p := newTestProcessor(jobs, photos, "   \n\n  ", nil)

	_, err := p.Run(context.Background(), photos.photo.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text found")
	assert.Equal(t, "failure", jobs.lastKind())
}

func TestProcessor_OCRErrorFails(t *testing.T) {
	jobs := &stubJobRepo{}
	photos := &stubPhotoRepo{photo: testPhoto()}
	p := newTestProcessor(jobs, photos, "", errors.New("tesseract not installed"))

	_, err := p.Run(context.Background(), photos.photo.ID)
	require.Error(t, err)
	assert.Equal(t, "failure", jobs.lastKind())
}

func TestProcessor_ProducerFallbackKeepsScanAlive(t *testing.T) {
	jobs := &stubJobRepo{}
	photos := &stubPhotoRepo{photo: testPhoto()}
	// No name candidate, no producer keyword, no vintage: the first-line
	// producer fallback is the only field, so the scan finishes flagged.
	p := newTestProcessor(jobs, photos, "750\nml", nil)

	outcome, err := p.Run(context.Background(), photos.photo.ID)
	require.NoError(t, err)
	require.NotNil(t, outcome.Data.Producer)
	assert.Equal(t, "750", *outcome.Data.Producer)
	assert.True(t, outcome.NeedsReview)
	assert.Equal(t, "extract", jobs.lastKind())
}

func TestProcessor_LowConfidenceFlagsReview(t *testing.T) {
	jobs := &stubJobRepo{}
	photos := &stubPhotoRepo{photo: testPhoto()}
	// Fallback producer plus vintage: 45 of 100 stays below the review
	// threshold.
	p := newTestProcessor(jobs, photos, "1999", nil)

	outcome, err := p.Run(context.Background(), photos.photo.ID)
	require.NoError(t, err)
	assert.True(t, outcome.NeedsReview)
	assert.InDelta(t, 0.45, float64(outcome.Confidence), 1e-6)
	assert.True(t, jobs.review)
}

func TestProcessor_UnsupportedFormat(t *testing.T) {
	jobs := &stubJobRepo{}
	photo := testPhoto()
	photo.FileExt = "pdf"
	photos := &stubPhotoRepo{photo: photo}
	p := newTestProcessor(jobs, photos, "irrelevant", nil)

	_, err := p.Run(context.Background(), photo.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Empty(t, jobs.updates)
}
