// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/labelphoto"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// ScanJob is the model entity for the ScanJob schema.
type ScanJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PhotoID holds the value of the "photo_id" field.
	PhotoID uuid.UUID `json:"photo_id,omitempty"`
	// WineID holds the value of the "wine_id" field.
	WineID *uuid.UUID `json:"wine_id,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// DetectionConfidence holds the value of the "detection_confidence" field.
	DetectionConfidence *float32 `json:"detection_confidence,omitempty"`
	// CroppedPath holds the value of the "cropped_path" field.
	CroppedPath *string `json:"cropped_path,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence *float32 `json:"extraction_confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScanJobQuery when eager-loading is set.
	Edges        ScanJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScanJobEdges holds the relations/edges for other nodes in the graph.
type ScanJobEdges struct {
	// Photo holds the value of the photo edge.
	Photo *LabelPhoto `json:"photo,omitempty"`
	// Wine holds the value of the wine edge.
	Wine *Wine `json:"wine,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PhotoOrErr returns the Photo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScanJobEdges) PhotoOrErr() (*LabelPhoto, error) {
	if e.Photo != nil {
		return e.Photo, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: labelphoto.Label}
	}
	return nil, &NotLoadedError{edge: "photo"}
}

// WineOrErr returns the Wine value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScanJobEdges) WineOrErr() (*Wine, error) {
	if e.Wine != nil {
		return e.Wine, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: wine.Label}
	}
	return nil, &NotLoadedError{edge: "wine"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScanJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scanjob.FieldWineID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case scanjob.FieldExtractedJSON:
			values[i] = new([]byte)
		case scanjob.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case scanjob.FieldDetectionConfidence, scanjob.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case scanjob.FieldFormat, scanjob.FieldStatus, scanjob.FieldErrorMessage, scanjob.FieldCroppedPath, scanjob.FieldRawText:
			values[i] = new(sql.NullString)
		case scanjob.FieldStartedAt, scanjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case scanjob.FieldID, scanjob.FieldPhotoID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScanJob fields.
func (_m *ScanJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scanjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scanjob.FieldPhotoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field photo_id", values[i])
			} else if value != nil {
				_m.PhotoID = *value
			}
		case scanjob.FieldWineID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field wine_id", values[i])
			} else if value.Valid {
				_m.WineID = new(uuid.UUID)
				*_m.WineID = *value.S.(*uuid.UUID)
			}
		case scanjob.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case scanjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case scanjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case scanjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case scanjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case scanjob.FieldDetectionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field detection_confidence", values[i])
			} else if value.Valid {
				_m.DetectionConfidence = new(float32)
				*_m.DetectionConfidence = float32(value.Float64)
			}
		case scanjob.FieldCroppedPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cropped_path", values[i])
			} else if value.Valid {
				_m.CroppedPath = new(string)
				*_m.CroppedPath = value.String
			}
		case scanjob.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case scanjob.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case scanjob.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = new(float32)
				*_m.ExtractionConfidence = float32(value.Float64)
			}
		case scanjob.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScanJob.
// This includes values selected through modifiers, order, etc.
func (_m *ScanJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPhoto queries the "photo" edge of the ScanJob entity.
func (_m *ScanJob) QueryPhoto() *LabelPhotoQuery {
	return NewScanJobClient(_m.config).QueryPhoto(_m)
}

// QueryWine queries the "wine" edge of the ScanJob entity.
func (_m *ScanJob) QueryWine() *WineQuery {
	return NewScanJobClient(_m.config).QueryWine(_m)
}

// Update returns a builder for updating this ScanJob.
// Note that you need to call ScanJob.Unwrap() before calling this method if this ScanJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScanJob) Update() *ScanJobUpdateOne {
	return NewScanJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScanJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScanJob) Unwrap() *ScanJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScanJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScanJob) String() string {
	var builder strings.Builder
	builder.WriteString("ScanJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("photo_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhotoID))
	builder.WriteString(", ")
	if v := _m.WineID; v != nil {
		builder.WriteString("wine_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DetectionConfidence; v != nil {
		builder.WriteString("detection_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CroppedPath; v != nil {
		builder.WriteString("cropped_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	if v := _m.ExtractionConfidence; v != nil {
		builder.WriteString("extraction_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteByte(')')
	return builder.String()
}

// ScanJobs is a parsable slice of ScanJob.
type ScanJobs []*ScanJob
