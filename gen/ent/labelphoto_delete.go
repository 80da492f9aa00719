// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sahlen/vinkallaren/gen/ent/labelphoto"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
)

// LabelPhotoDelete is the builder for deleting a LabelPhoto entity.
type LabelPhotoDelete struct {
	config
	hooks    []Hook
	mutation *LabelPhotoMutation
}

// Where appends a list predicates to the LabelPhotoDelete builder.
func (_d *LabelPhotoDelete) Where(ps ...predicate.LabelPhoto) *LabelPhotoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LabelPhotoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LabelPhotoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LabelPhotoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(labelphoto.Table, sqlgraph.NewFieldSpec(labelphoto.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LabelPhotoDeleteOne is the builder for deleting a single LabelPhoto entity.
type LabelPhotoDeleteOne struct {
	_d *LabelPhotoDelete
}

// Where appends a list predicates to the LabelPhotoDelete builder.
func (_d *LabelPhotoDeleteOne) Where(ps ...predicate.LabelPhoto) *LabelPhotoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LabelPhotoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{labelphoto.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LabelPhotoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
