// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/labelphoto"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// ScanJobUpdate is the builder for updating ScanJob entities.
type ScanJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScanJobMutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdate) Where(ps ...predicate.ScanJob) *ScanJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhotoID sets the "photo_id" field.
func (_u *ScanJobUpdate) SetPhotoID(v uuid.UUID) *ScanJobUpdate {
	_u.mutation.SetPhotoID(v)
	return _u
}

// SetNillablePhotoID sets the "photo_id" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillablePhotoID(v *uuid.UUID) *ScanJobUpdate {
	if v != nil {
		_u.SetPhotoID(*v)
	}
	return _u
}

// SetWineID sets the "wine_id" field.
func (_u *ScanJobUpdate) SetWineID(v uuid.UUID) *ScanJobUpdate {
	_u.mutation.SetWineID(v)
	return _u
}

// SetNillableWineID sets the "wine_id" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableWineID(v *uuid.UUID) *ScanJobUpdate {
	if v != nil {
		_u.SetWineID(*v)
	}
	return _u
}

// ClearWineID clears the value of the "wine_id" field.
func (_u *ScanJobUpdate) ClearWineID() *ScanJobUpdate {
	_u.mutation.ClearWineID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ScanJobUpdate) SetFormat(v string) *ScanJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFormat(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdate) SetStartedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStartedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdate) SetFinishedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFinishedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdate) ClearFinishedAt() *ScanJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdate) SetStatus(v string) *ScanJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStatus(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ScanJobUpdate) ClearStatus() *ScanJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdate) SetErrorMessage(v string) *ScanJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableErrorMessage(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdate) ClearErrorMessage() *ScanJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDetectionConfidence sets the "detection_confidence" field.
func (_u *ScanJobUpdate) SetDetectionConfidence(v float32) *ScanJobUpdate {
	_u.mutation.ResetDetectionConfidence()
	_u.mutation.SetDetectionConfidence(v)
	return _u
}

// SetNillableDetectionConfidence sets the "detection_confidence" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableDetectionConfidence(v *float32) *ScanJobUpdate {
	if v != nil {
		_u.SetDetectionConfidence(*v)
	}
	return _u
}

// AddDetectionConfidence adds value to the "detection_confidence" field.
func (_u *ScanJobUpdate) AddDetectionConfidence(v float32) *ScanJobUpdate {
	_u.mutation.AddDetectionConfidence(v)
	return _u
}

// ClearDetectionConfidence clears the value of the "detection_confidence" field.
func (_u *ScanJobUpdate) ClearDetectionConfidence() *ScanJobUpdate {
	_u.mutation.ClearDetectionConfidence()
	return _u
}

// SetCroppedPath sets the "cropped_path" field.
func (_u *ScanJobUpdate) SetCroppedPath(v string) *ScanJobUpdate {
	_u.mutation.SetCroppedPath(v)
	return _u
}

// SetNillableCroppedPath sets the "cropped_path" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableCroppedPath(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetCroppedPath(*v)
	}
	return _u
}

// ClearCroppedPath clears the value of the "cropped_path" field.
func (_u *ScanJobUpdate) ClearCroppedPath() *ScanJobUpdate {
	_u.mutation.ClearCroppedPath()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ScanJobUpdate) SetRawText(v string) *ScanJobUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableRawText(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ScanJobUpdate) ClearRawText() *ScanJobUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ScanJobUpdate) SetExtractedJSON(v json.RawMessage) *ScanJobUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ScanJobUpdate) AppendExtractedJSON(v json.RawMessage) *ScanJobUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ScanJobUpdate) ClearExtractedJSON() *ScanJobUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ScanJobUpdate) SetExtractionConfidence(v float32) *ScanJobUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableExtractionConfidence(v *float32) *ScanJobUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ScanJobUpdate) AddExtractionConfidence(v float32) *ScanJobUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *ScanJobUpdate) ClearExtractionConfidence() *ScanJobUpdate {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ScanJobUpdate) SetNeedsReview(v bool) *ScanJobUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableNeedsReview(v *bool) *ScanJobUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetPhoto sets the "photo" edge to the LabelPhoto entity.
func (_u *ScanJobUpdate) SetPhoto(v *LabelPhoto) *ScanJobUpdate {
	return _u.SetPhotoID(v.ID)
}

// SetWine sets the "wine" edge to the Wine entity.
func (_u *ScanJobUpdate) SetWine(v *Wine) *ScanJobUpdate {
	return _u.SetWineID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdate) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearPhoto clears the "photo" edge to the LabelPhoto entity.
func (_u *ScanJobUpdate) ClearPhoto() *ScanJobUpdate {
	_u.mutation.ClearPhoto()
	return _u
}

// ClearWine clears the "wine" edge to the Wine entity.
func (_u *ScanJobUpdate) ClearWine() *ScanJobUpdate {
	_u.mutation.ClearWine()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := scanjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ScanJob.format": %w`, err)}
		}
	}
	if _u.mutation.PhotoCleared() && len(_u.mutation.PhotoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanJob.photo"`)
	}
	return nil
}

func (_u *ScanJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(scanjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(scanjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DetectionConfidence(); ok {
		_spec.SetField(scanjob.FieldDetectionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedDetectionConfidence(); ok {
		_spec.AddField(scanjob.FieldDetectionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.DetectionConfidenceCleared() {
		_spec.ClearField(scanjob.FieldDetectionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CroppedPath(); ok {
		_spec.SetField(scanjob.FieldCroppedPath, field.TypeString, value)
	}
	if _u.mutation.CroppedPathCleared() {
		_spec.ClearField(scanjob.FieldCroppedPath, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(scanjob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(scanjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(scanjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(scanjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(scanjob.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(scanjob.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.PhotoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.PhotoTable,
			Columns: []string{scanjob.PhotoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelphoto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhotoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.PhotoTable,
			Columns: []string{scanjob.PhotoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelphoto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.WineTable,
			Columns: []string{scanjob.WineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.WineTable,
			Columns: []string{scanjob.WineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanJobUpdateOne is the builder for updating a single ScanJob entity.
type ScanJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanJobMutation
}

// SetPhotoID sets the "photo_id" field.
func (_u *ScanJobUpdateOne) SetPhotoID(v uuid.UUID) *ScanJobUpdateOne {
	_u.mutation.SetPhotoID(v)
	return _u
}

// SetNillablePhotoID sets the "photo_id" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillablePhotoID(v *uuid.UUID) *ScanJobUpdateOne {
	if v != nil {
		_u.SetPhotoID(*v)
	}
	return _u
}

// SetWineID sets the "wine_id" field.
func (_u *ScanJobUpdateOne) SetWineID(v uuid.UUID) *ScanJobUpdateOne {
	_u.mutation.SetWineID(v)
	return _u
}

// SetNillableWineID sets the "wine_id" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableWineID(v *uuid.UUID) *ScanJobUpdateOne {
	if v != nil {
		_u.SetWineID(*v)
	}
	return _u
}

// ClearWineID clears the value of the "wine_id" field.
func (_u *ScanJobUpdateOne) ClearWineID() *ScanJobUpdateOne {
	_u.mutation.ClearWineID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ScanJobUpdateOne) SetFormat(v string) *ScanJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFormat(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdateOne) SetStartedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStartedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdateOne) SetFinishedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdateOne) ClearFinishedAt() *ScanJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdateOne) SetStatus(v string) *ScanJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStatus(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ScanJobUpdateOne) ClearStatus() *ScanJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdateOne) SetErrorMessage(v string) *ScanJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableErrorMessage(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdateOne) ClearErrorMessage() *ScanJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetDetectionConfidence sets the "detection_confidence" field.
func (_u *ScanJobUpdateOne) SetDetectionConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.ResetDetectionConfidence()
	_u.mutation.SetDetectionConfidence(v)
	return _u
}

// SetNillableDetectionConfidence sets the "detection_confidence" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableDetectionConfidence(v *float32) *ScanJobUpdateOne {
	if v != nil {
		_u.SetDetectionConfidence(*v)
	}
	return _u
}

// AddDetectionConfidence adds value to the "detection_confidence" field.
func (_u *ScanJobUpdateOne) AddDetectionConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.AddDetectionConfidence(v)
	return _u
}

// ClearDetectionConfidence clears the value of the "detection_confidence" field.
func (_u *ScanJobUpdateOne) ClearDetectionConfidence() *ScanJobUpdateOne {
	_u.mutation.ClearDetectionConfidence()
	return _u
}

// SetCroppedPath sets the "cropped_path" field.
func (_u *ScanJobUpdateOne) SetCroppedPath(v string) *ScanJobUpdateOne {
	_u.mutation.SetCroppedPath(v)
	return _u
}

// SetNillableCroppedPath sets the "cropped_path" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableCroppedPath(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetCroppedPath(*v)
	}
	return _u
}

// ClearCroppedPath clears the value of the "cropped_path" field.
func (_u *ScanJobUpdateOne) ClearCroppedPath() *ScanJobUpdateOne {
	_u.mutation.ClearCroppedPath()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ScanJobUpdateOne) SetRawText(v string) *ScanJobUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableRawText(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ScanJobUpdateOne) ClearRawText() *ScanJobUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ScanJobUpdateOne) SetExtractedJSON(v json.RawMessage) *ScanJobUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ScanJobUpdateOne) AppendExtractedJSON(v json.RawMessage) *ScanJobUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ScanJobUpdateOne) ClearExtractedJSON() *ScanJobUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *ScanJobUpdateOne) SetExtractionConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableExtractionConfidence(v *float32) *ScanJobUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *ScanJobUpdateOne) AddExtractionConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *ScanJobUpdateOne) ClearExtractionConfidence() *ScanJobUpdateOne {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ScanJobUpdateOne) SetNeedsReview(v bool) *ScanJobUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableNeedsReview(v *bool) *ScanJobUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetPhoto sets the "photo" edge to the LabelPhoto entity.
func (_u *ScanJobUpdateOne) SetPhoto(v *LabelPhoto) *ScanJobUpdateOne {
	return _u.SetPhotoID(v.ID)
}

// SetWine sets the "wine" edge to the Wine entity.
func (_u *ScanJobUpdateOne) SetWine(v *Wine) *ScanJobUpdateOne {
	return _u.SetWineID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdateOne) Mutation() *ScanJobMutation {
	return _u.mutation
}

// ClearPhoto clears the "photo" edge to the LabelPhoto entity.
func (_u *ScanJobUpdateOne) ClearPhoto() *ScanJobUpdateOne {
	_u.mutation.ClearPhoto()
	return _u
}

// ClearWine clears the "wine" edge to the Wine entity.
func (_u *ScanJobUpdateOne) ClearWine() *ScanJobUpdateOne {
	_u.mutation.ClearWine()
	return _u
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdateOne) Where(ps ...predicate.ScanJob) *ScanJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanJobUpdateOne) Select(field string, fields ...string) *ScanJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanJob entity.
func (_u *ScanJobUpdateOne) Save(ctx context.Context) (*ScanJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdateOne) SaveX(ctx context.Context) *ScanJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := scanjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ScanJob.format": %w`, err)}
		}
	}
	if _u.mutation.PhotoCleared() && len(_u.mutation.PhotoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScanJob.photo"`)
	}
	return nil
}

func (_u *ScanJobUpdateOne) sqlSave(ctx context.Context) (_node *ScanJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for _, f := range fields {
			if !scanjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(scanjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(scanjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DetectionConfidence(); ok {
		_spec.SetField(scanjob.FieldDetectionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedDetectionConfidence(); ok {
		_spec.AddField(scanjob.FieldDetectionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.DetectionConfidenceCleared() {
		_spec.ClearField(scanjob.FieldDetectionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CroppedPath(); ok {
		_spec.SetField(scanjob.FieldCroppedPath, field.TypeString, value)
	}
	if _u.mutation.CroppedPathCleared() {
		_spec.ClearField(scanjob.FieldCroppedPath, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(scanjob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(scanjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(scanjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(scanjob.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(scanjob.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(scanjob.FieldNeedsReview, field.TypeBool, value)
	}
	if _u.mutation.PhotoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.PhotoTable,
			Columns: []string{scanjob.PhotoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelphoto.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhotoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.PhotoTable,
			Columns: []string{scanjob.PhotoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labelphoto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.WineTable,
			Columns: []string{scanjob.WineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scanjob.WineTable,
			Columns: []string{scanjob.WineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScanJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
