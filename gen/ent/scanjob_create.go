// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/labelphoto"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// ScanJobCreate is the builder for creating a ScanJob entity.
type ScanJobCreate struct {
	config
	mutation *ScanJobMutation
	hooks    []Hook
}

// SetPhotoID sets the "photo_id" field.
func (_c *ScanJobCreate) SetPhotoID(v uuid.UUID) *ScanJobCreate {
	_c.mutation.SetPhotoID(v)
	return _c
}

// SetWineID sets the "wine_id" field.
func (_c *ScanJobCreate) SetWineID(v uuid.UUID) *ScanJobCreate {
	_c.mutation.SetWineID(v)
	return _c
}

// SetNillableWineID sets the "wine_id" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableWineID(v *uuid.UUID) *ScanJobCreate {
	if v != nil {
		_c.SetWineID(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *ScanJobCreate) SetFormat(v string) *ScanJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScanJobCreate) SetStartedAt(v time.Time) *ScanJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableStartedAt(v *time.Time) *ScanJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ScanJobCreate) SetFinishedAt(v time.Time) *ScanJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableFinishedAt(v *time.Time) *ScanJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScanJobCreate) SetStatus(v string) *ScanJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableStatus(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScanJobCreate) SetErrorMessage(v string) *ScanJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableErrorMessage(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDetectionConfidence sets the "detection_confidence" field.
func (_c *ScanJobCreate) SetDetectionConfidence(v float32) *ScanJobCreate {
	_c.mutation.SetDetectionConfidence(v)
	return _c
}

// SetNillableDetectionConfidence sets the "detection_confidence" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableDetectionConfidence(v *float32) *ScanJobCreate {
	if v != nil {
		_c.SetDetectionConfidence(*v)
	}
	return _c
}

// SetCroppedPath sets the "cropped_path" field.
func (_c *ScanJobCreate) SetCroppedPath(v string) *ScanJobCreate {
	_c.mutation.SetCroppedPath(v)
	return _c
}

// SetNillableCroppedPath sets the "cropped_path" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableCroppedPath(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetCroppedPath(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ScanJobCreate) SetRawText(v string) *ScanJobCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableRawText(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *ScanJobCreate) SetExtractedJSON(v json.RawMessage) *ScanJobCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *ScanJobCreate) SetExtractionConfidence(v float32) *ScanJobCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableExtractionConfidence(v *float32) *ScanJobCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ScanJobCreate) SetNeedsReview(v bool) *ScanJobCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableNeedsReview(v *bool) *ScanJobCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScanJobCreate) SetID(v uuid.UUID) *ScanJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableID(v *uuid.UUID) *ScanJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPhoto sets the "photo" edge to the LabelPhoto entity.
func (_c *ScanJobCreate) SetPhoto(v *LabelPhoto) *ScanJobCreate {
	return _c.SetPhotoID(v.ID)
}

// SetWine sets the "wine" edge to the Wine entity.
func (_c *ScanJobCreate) SetWine(v *Wine) *ScanJobCreate {
	return _c.SetWineID(v.ID)
}

// Mutation returns the ScanJobMutation object of the builder.
func (_c *ScanJobCreate) Mutation() *ScanJobMutation {
	return _c.mutation
}

// Save creates the ScanJob in the database.
func (_c *ScanJobCreate) Save(ctx context.Context) (*ScanJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanJobCreate) SaveX(ctx context.Context) *ScanJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := scanjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := scanjob.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scanjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanJobCreate) check() error {
	if _, ok := _c.mutation.PhotoID(); !ok {
		return &ValidationError{Name: "photo_id", err: errors.New(`ent: missing required field "ScanJob.photo_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ScanJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := scanjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ScanJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ScanJob.started_at"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ScanJob.needs_review"`)}
	}
	if len(_c.mutation.PhotoIDs()) == 0 {
		return &ValidationError{Name: "photo", err: errors.New(`ent: missing required edge "ScanJob.photo"`)}
	}
	return nil
}

func (_c *ScanJobCreate) sqlSave(ctx context.Context) (*ScanJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScanJobCreate) createSpec() (*ScanJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanjob.Table, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(scanjob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.DetectionConfidence(); ok {
		_spec.SetField(scanjob.FieldDetectionConfidence, field.TypeFloat32, value)
		_node.DetectionConfidence = &value
	}
	if value, ok := _c.mutation.CroppedPath(); ok {
		_spec.SetField(scanjob.FieldCroppedPath, field.TypeString, value)
		_node.CroppedPath = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(scanjob.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(scanjob.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(scanjob.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if nodes := _c.mutation.PhotoIDs(); len(nodes) > 0 {
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
		_node.PhotoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WineIDs(); len(nodes) > 0 {
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
		_node.WineID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScanJobCreateBulk is the builder for creating many ScanJob entities in bulk.
type ScanJobCreateBulk struct {
	config
	err      error
	builders []*ScanJobCreate
}

// Save creates the ScanJob entities in the database.
func (_c *ScanJobCreateBulk) Save(ctx context.Context) ([]*ScanJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScanJobCreateBulk) SaveX(ctx context.Context) []*ScanJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
