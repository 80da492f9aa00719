// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// TastingNoteCreate is the builder for creating a TastingNote entity.
type TastingNoteCreate struct {
	config
	mutation *TastingNoteMutation
	hooks    []Hook
}

// SetWineID sets the "wine_id" field.
func (_c *TastingNoteCreate) SetWineID(v uuid.UUID) *TastingNoteCreate {
	_c.mutation.SetWineID(v)
	return _c
}

// SetTastingDate sets the "tasting_date" field.
func (_c *TastingNoteCreate) SetTastingDate(v time.Time) *TastingNoteCreate {
	_c.mutation.SetTastingDate(v)
	return _c
}

// SetNillableTastingDate sets the "tasting_date" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableTastingDate(v *time.Time) *TastingNoteCreate {
	if v != nil {
		_c.SetTastingDate(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *TastingNoteCreate) SetLocation(v string) *TastingNoteCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableLocation(v *string) *TastingNoteCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetOccasion sets the "occasion" field.
func (_c *TastingNoteCreate) SetOccasion(v string) *TastingNoteCreate {
	_c.mutation.SetOccasion(v)
	return _c
}

// SetNillableOccasion sets the "occasion" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableOccasion(v *string) *TastingNoteCreate {
	if v != nil {
		_c.SetOccasion(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *TastingNoteCreate) SetColor(v string) *TastingNoteCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableColor(v *string) *TastingNoteCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetAromas sets the "aromas" field.
func (_c *TastingNoteCreate) SetAromas(v string) *TastingNoteCreate {
	_c.mutation.SetAromas(v)
	return _c
}

// SetNillableAromas sets the "aromas" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableAromas(v *string) *TastingNoteCreate {
	if v != nil {
		_c.SetAromas(*v)
	}
	return _c
}

// SetPalate sets the "palate" field.
func (_c *TastingNoteCreate) SetPalate(v string) *TastingNoteCreate {
	_c.mutation.SetPalate(v)
	return _c
}

// SetNillablePalate sets the "palate" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillablePalate(v *string) *TastingNoteCreate {
	if v != nil {
		_c.SetPalate(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *TastingNoteCreate) SetScore(v float32) *TastingNoteCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableScore(v *float32) *TastingNoteCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *TastingNoteCreate) SetNotes(v string) *TastingNoteCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableNotes(v *string) *TastingNoteCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TastingNoteCreate) SetCreatedAt(v time.Time) *TastingNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableCreatedAt(v *time.Time) *TastingNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TastingNoteCreate) SetUpdatedAt(v time.Time) *TastingNoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableUpdatedAt(v *time.Time) *TastingNoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TastingNoteCreate) SetID(v uuid.UUID) *TastingNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TastingNoteCreate) SetNillableID(v *uuid.UUID) *TastingNoteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWine sets the "wine" edge to the Wine entity.
func (_c *TastingNoteCreate) SetWine(v *Wine) *TastingNoteCreate {
	return _c.SetWineID(v.ID)
}

// Mutation returns the TastingNoteMutation object of the builder.
func (_c *TastingNoteCreate) Mutation() *TastingNoteMutation {
	return _c.mutation
}

// Save creates the TastingNote in the database.
func (_c *TastingNoteCreate) Save(ctx context.Context) (*TastingNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TastingNoteCreate) SaveX(ctx context.Context) *TastingNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TastingNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TastingNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TastingNoteCreate) defaults() {
	if _, ok := _c.mutation.TastingDate(); !ok {
		v := tastingnote.DefaultTastingDate()
		_c.mutation.SetTastingDate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tastingnote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tastingnote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tastingnote.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TastingNoteCreate) check() error {
	if _, ok := _c.mutation.WineID(); !ok {
		return &ValidationError{Name: "wine_id", err: errors.New(`ent: missing required field "TastingNote.wine_id"`)}
	}
	if _, ok := _c.mutation.TastingDate(); !ok {
		return &ValidationError{Name: "tasting_date", err: errors.New(`ent: missing required field "TastingNote.tasting_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TastingNote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TastingNote.updated_at"`)}
	}
	if len(_c.mutation.WineIDs()) == 0 {
		return &ValidationError{Name: "wine", err: errors.New(`ent: missing required edge "TastingNote.wine"`)}
	}
	return nil
}

func (_c *TastingNoteCreate) sqlSave(ctx context.Context) (*TastingNote, error) {
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

func (_c *TastingNoteCreate) createSpec() (*TastingNote, *sqlgraph.CreateSpec) {
	var (
		_node = &TastingNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tastingnote.Table, sqlgraph.NewFieldSpec(tastingnote.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TastingDate(); ok {
		_spec.SetField(tastingnote.FieldTastingDate, field.TypeTime, value)
		_node.TastingDate = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(tastingnote.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Occasion(); ok {
		_spec.SetField(tastingnote.FieldOccasion, field.TypeString, value)
		_node.Occasion = &value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(tastingnote.FieldColor, field.TypeString, value)
		_node.Color = &value
	}
	if value, ok := _c.mutation.Aromas(); ok {
		_spec.SetField(tastingnote.FieldAromas, field.TypeString, value)
		_node.Aromas = &value
	}
	if value, ok := _c.mutation.Palate(); ok {
		_spec.SetField(tastingnote.FieldPalate, field.TypeString, value)
		_node.Palate = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(tastingnote.FieldScore, field.TypeFloat32, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(tastingnote.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tastingnote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tastingnote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tastingnote.WineTable,
			Columns: []string{tastingnote.WineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WineID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TastingNoteCreateBulk is the builder for creating many TastingNote entities in bulk.
type TastingNoteCreateBulk struct {
	config
	err      error
	builders []*TastingNoteCreate
}

// Save creates the TastingNote entities in the database.
func (_c *TastingNoteCreateBulk) Save(ctx context.Context) ([]*TastingNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TastingNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TastingNoteMutation)
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
func (_c *TastingNoteCreateBulk) SaveX(ctx context.Context) []*TastingNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TastingNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TastingNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
