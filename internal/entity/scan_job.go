package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanJob represents a label scan job for data transfer between layers.
type ScanJob struct {
	ID                   uuid.UUID       `json:"id"`
	PhotoID              uuid.UUID       `json:"photo_id"`
	WineID               *uuid.UUID      `json:"wine_id,omitempty"`
	Format               string          `json:"format"`
	StartedAt            time.Time       `json:"started_at"`
	FinishedAt           *time.Time      `json:"finished_at,omitempty"`
	Status               *string         `json:"status,omitempty"`
	ErrorMessage         *string         `json:"error_message,omitempty"`
	DetectionConfidence  *float32        `json:"detection_confidence,omitempty"`
	CroppedPath          *string         `json:"cropped_path,omitempty"`
	RawText              *string         `json:"raw_text,omitempty"`
	ExtractedJSON        json.RawMessage `json:"extracted_json,omitempty"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	NeedsReview          bool            `json:"needs_review"`
}
