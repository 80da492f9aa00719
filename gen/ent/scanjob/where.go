// Code generated by ent, DO NOT EDIT.

package scanjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldID, id))
}

// PhotoID applies equality check predicate on the "photo_id" field. It's identical to PhotoIDEQ.
func PhotoID(v uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldPhotoID, v))
}

// WineID applies equality check predicate on the "wine_id" field. It's identical to WineIDEQ.
func WineID(v uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldWineID, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFormat, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldErrorMessage, v))
}

// DetectionConfidence applies equality check predicate on the "detection_confidence" field. It's identical to DetectionConfidenceEQ.
func DetectionConfidence(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldDetectionConfidence, v))
}

// CroppedPath applies equality check predicate on the "cropped_path" field. It's identical to CroppedPathEQ.
func CroppedPath(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldCroppedPath, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldRawText, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldExtractionConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldNeedsReview, v))
}

// PhotoIDEQ applies the EQ predicate on the "photo_id" field.
func PhotoIDEQ(v uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldPhotoID, v))
}

// PhotoIDNEQ applies the NEQ predicate on the "photo_id" field.
func PhotoIDNEQ(v uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldPhotoID, v))
}

// PhotoIDIn applies the In predicate on the "photo_id" field.
func PhotoIDIn(vs ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldPhotoID, vs...))
}

// PhotoIDNotIn applies the NotIn predicate on the "photo_id" field.
func PhotoIDNotIn(vs ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldPhotoID, vs...))
}

// WineIDEQ applies the EQ predicate on the "wine_id" field.
func WineIDEQ(v uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldWineID, v))
}

// WineIDNEQ applies the NEQ predicate on the "wine_id" field.
func WineIDNEQ(v uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldWineID, v))
}

// WineIDIn applies the In predicate on the "wine_id" field.
func WineIDIn(vs ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldWineID, vs...))
}

// WineIDNotIn applies the NotIn predicate on the "wine_id" field.
func WineIDNotIn(vs ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldWineID, vs...))
}

// WineIDIsNil applies the IsNil predicate on the "wine_id" field.
func WineIDIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldWineID))
}

// WineIDNotNil applies the NotNil predicate on the "wine_id" field.
func WineIDNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldWineID))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContainsFold(FieldFormat, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DetectionConfidenceEQ applies the EQ predicate on the "detection_confidence" field.
func DetectionConfidenceEQ(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldDetectionConfidence, v))
}

// DetectionConfidenceNEQ applies the NEQ predicate on the "detection_confidence" field.
func DetectionConfidenceNEQ(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldDetectionConfidence, v))
}

// DetectionConfidenceIn applies the In predicate on the "detection_confidence" field.
func DetectionConfidenceIn(vs ...float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldDetectionConfidence, vs...))
}

// DetectionConfidenceNotIn applies the NotIn predicate on the "detection_confidence" field.
func DetectionConfidenceNotIn(vs ...float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldDetectionConfidence, vs...))
}

// DetectionConfidenceGT applies the GT predicate on the "detection_confidence" field.
func DetectionConfidenceGT(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldDetectionConfidence, v))
}

// DetectionConfidenceGTE applies the GTE predicate on the "detection_confidence" field.
func DetectionConfidenceGTE(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldDetectionConfidence, v))
}

// DetectionConfidenceLT applies the LT predicate on the "detection_confidence" field.
func DetectionConfidenceLT(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldDetectionConfidence, v))
}

// DetectionConfidenceLTE applies the LTE predicate on the "detection_confidence" field.
func DetectionConfidenceLTE(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldDetectionConfidence, v))
}

// DetectionConfidenceIsNil applies the IsNil predicate on the "detection_confidence" field.
func DetectionConfidenceIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldDetectionConfidence))
}

// DetectionConfidenceNotNil applies the NotNil predicate on the "detection_confidence" field.
func DetectionConfidenceNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldDetectionConfidence))
}

// CroppedPathEQ applies the EQ predicate on the "cropped_path" field.
func CroppedPathEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldCroppedPath, v))
}

// CroppedPathNEQ applies the NEQ predicate on the "cropped_path" field.
func CroppedPathNEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldCroppedPath, v))
}

// CroppedPathIn applies the In predicate on the "cropped_path" field.
func CroppedPathIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldCroppedPath, vs...))
}

// CroppedPathNotIn applies the NotIn predicate on the "cropped_path" field.
func CroppedPathNotIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldCroppedPath, vs...))
}

// CroppedPathGT applies the GT predicate on the "cropped_path" field.
func CroppedPathGT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldCroppedPath, v))
}

// CroppedPathGTE applies the GTE predicate on the "cropped_path" field.
func CroppedPathGTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldCroppedPath, v))
}

// CroppedPathLT applies the LT predicate on the "cropped_path" field.
func CroppedPathLT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldCroppedPath, v))
}

// CroppedPathLTE applies the LTE predicate on the "cropped_path" field.
func CroppedPathLTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldCroppedPath, v))
}

// CroppedPathContains applies the Contains predicate on the "cropped_path" field.
func CroppedPathContains(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContains(FieldCroppedPath, v))
}

// CroppedPathHasPrefix applies the HasPrefix predicate on the "cropped_path" field.
func CroppedPathHasPrefix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasPrefix(FieldCroppedPath, v))
}

// CroppedPathHasSuffix applies the HasSuffix predicate on the "cropped_path" field.
func CroppedPathHasSuffix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasSuffix(FieldCroppedPath, v))
}

// CroppedPathIsNil applies the IsNil predicate on the "cropped_path" field.
func CroppedPathIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldCroppedPath))
}

// CroppedPathNotNil applies the NotNil predicate on the "cropped_path" field.
func CroppedPathNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldCroppedPath))
}

// CroppedPathEqualFold applies the EqualFold predicate on the "cropped_path" field.
func CroppedPathEqualFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEqualFold(FieldCroppedPath, v))
}

// CroppedPathContainsFold applies the ContainsFold predicate on the "cropped_path" field.
func CroppedPathContainsFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContainsFold(FieldCroppedPath, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContainsFold(FieldRawText, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldExtractedJSON))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIsNil applies the IsNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldExtractionConfidence))
}

// ExtractionConfidenceNotNil applies the NotNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldExtractionConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldNeedsReview, v))
}

// HasPhoto applies the HasEdge predicate on the "photo" edge.
func HasPhoto() predicate.ScanJob {
	return predicate.ScanJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PhotoTable, PhotoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhotoWith applies the HasEdge predicate on the "photo" edge with a given conditions (other predicates).
func HasPhotoWith(preds ...predicate.LabelPhoto) predicate.ScanJob {
	return predicate.ScanJob(func(s *sql.Selector) {
		step := newPhotoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWine applies the HasEdge predicate on the "wine" edge.
func HasWine() predicate.ScanJob {
	return predicate.ScanJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WineTable, WineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWineWith applies the HasEdge predicate on the "wine" edge with a given conditions (other predicates).
func HasWineWith(preds ...predicate.Wine) predicate.ScanJob {
	return predicate.ScanJob(func(s *sql.Selector) {
		step := newWineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScanJob) predicate.ScanJob {
	return predicate.ScanJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScanJob) predicate.ScanJob {
	return predicate.ScanJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScanJob) predicate.ScanJob {
	return predicate.ScanJob(sql.NotPredicates(p))
}
