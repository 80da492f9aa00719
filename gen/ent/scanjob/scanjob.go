// Code generated by ent, DO NOT EDIT.

package scanjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scanjob type in the database.
	Label = "scan_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPhotoID holds the string denoting the photo_id field in the database.
	FieldPhotoID = "photo_id"
	// FieldWineID holds the string denoting the wine_id field in the database.
	FieldWineID = "wine_id"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldDetectionConfidence holds the string denoting the detection_confidence field in the database.
	FieldDetectionConfidence = "detection_confidence"
	// FieldCroppedPath holds the string denoting the cropped_path field in the database.
	FieldCroppedPath = "cropped_path"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// EdgePhoto holds the string denoting the photo edge name in mutations.
	EdgePhoto = "photo"
	// EdgeWine holds the string denoting the wine edge name in mutations.
	EdgeWine = "wine"
	// Table holds the table name of the scanjob in the database.
	Table = "scan_jobs"
	// PhotoTable is the table that holds the photo relation/edge.
	PhotoTable = "scan_jobs"
	// PhotoInverseTable is the table name for the LabelPhoto entity.
	// It exists in this package in order to avoid circular dependency with the "labelphoto" package.
	PhotoInverseTable = "label_photos"
	// PhotoColumn is the table column denoting the photo relation/edge.
	PhotoColumn = "photo_id"
	// WineTable is the table that holds the wine relation/edge.
	WineTable = "scan_jobs"
	// WineInverseTable is the table name for the Wine entity.
	// It exists in this package in order to avoid circular dependency with the "wine" package.
	WineInverseTable = "wines"
	// WineColumn is the table column denoting the wine relation/edge.
	WineColumn = "wine_id"
)

// Columns holds all SQL columns for scanjob fields.
var Columns = []string{
	FieldID,
	FieldPhotoID,
	FieldWineID,
	FieldFormat,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldDetectionConfidence,
	FieldCroppedPath,
	FieldRawText,
	FieldExtractedJSON,
	FieldExtractionConfidence,
	FieldNeedsReview,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ScanJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhotoID orders the results by the photo_id field.
func ByPhotoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoID, opts...).ToFunc()
}

// ByWineID orders the results by the wine_id field.
func ByWineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWineID, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByDetectionConfidence orders the results by the detection_confidence field.
func ByDetectionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectionConfidence, opts...).ToFunc()
}

// ByCroppedPath orders the results by the cropped_path field.
func ByCroppedPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCroppedPath, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByPhotoField orders the results by photo field.
func ByPhotoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhotoStep(), sql.OrderByField(field, opts...))
	}
}

// ByWineField orders the results by wine field.
func ByWineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWineStep(), sql.OrderByField(field, opts...))
	}
}
func newPhotoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhotoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PhotoTable, PhotoColumn),
	)
}
func newWineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WineInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WineTable, WineColumn),
	)
}
