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
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// StorageLocationCreate is the builder for creating a StorageLocation entity.
type StorageLocationCreate struct {
	config
	mutation *StorageLocationMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *StorageLocationCreate) SetName(v string) *StorageLocationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StorageLocationCreate) SetDescription(v string) *StorageLocationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableDescription(v *string) *StorageLocationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLocationType sets the "location_type" field.
func (_c *StorageLocationCreate) SetLocationType(v string) *StorageLocationCreate {
	_c.mutation.SetLocationType(v)
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *StorageLocationCreate) SetCapacity(v int) *StorageLocationCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableCapacity(v *int) *StorageLocationCreate {
	if v != nil {
		_c.SetCapacity(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *StorageLocationCreate) SetTemperature(v float32) *StorageLocationCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableTemperature(v *float32) *StorageLocationCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetHumidity sets the "humidity" field.
func (_c *StorageLocationCreate) SetHumidity(v float32) *StorageLocationCreate {
	_c.mutation.SetHumidity(v)
	return _c
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableHumidity(v *float32) *StorageLocationCreate {
	if v != nil {
		_c.SetHumidity(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *StorageLocationCreate) SetIsActive(v bool) *StorageLocationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableIsActive(v *bool) *StorageLocationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StorageLocationCreate) SetCreatedAt(v time.Time) *StorageLocationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableCreatedAt(v *time.Time) *StorageLocationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StorageLocationCreate) SetUpdatedAt(v time.Time) *StorageLocationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableUpdatedAt(v *time.Time) *StorageLocationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StorageLocationCreate) SetID(v uuid.UUID) *StorageLocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StorageLocationCreate) SetNillableID(v *uuid.UUID) *StorageLocationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddWineIDs adds the "wines" edge to the Wine entity by IDs.
func (_c *StorageLocationCreate) AddWineIDs(ids ...uuid.UUID) *StorageLocationCreate {
	_c.mutation.AddWineIDs(ids...)
	return _c
}

// AddWines adds the "wines" edges to the Wine entity.
func (_c *StorageLocationCreate) AddWines(v ...*Wine) *StorageLocationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWineIDs(ids...)
}

// Mutation returns the StorageLocationMutation object of the builder.
func (_c *StorageLocationCreate) Mutation() *StorageLocationMutation {
	return _c.mutation
}

// Save creates the StorageLocation in the database.
func (_c *StorageLocationCreate) Save(ctx context.Context) (*StorageLocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StorageLocationCreate) SaveX(ctx context.Context) *StorageLocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StorageLocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StorageLocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StorageLocationCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := storagelocation.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := storagelocation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := storagelocation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := storagelocation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StorageLocationCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "StorageLocation.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := storagelocation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "StorageLocation.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LocationType(); !ok {
		return &ValidationError{Name: "location_type", err: errors.New(`ent: missing required field "StorageLocation.location_type"`)}
	}
	if v, ok := _c.mutation.LocationType(); ok {
		if err := storagelocation.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "StorageLocation.location_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "StorageLocation.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StorageLocation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StorageLocation.updated_at"`)}
	}
	return nil
}

func (_c *StorageLocationCreate) sqlSave(ctx context.Context) (*StorageLocation, error) {
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

func (_c *StorageLocationCreate) createSpec() (*StorageLocation, *sqlgraph.CreateSpec) {
	var (
		_node = &StorageLocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storagelocation.Table, sqlgraph.NewFieldSpec(storagelocation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(storagelocation.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(storagelocation.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.LocationType(); ok {
		_spec.SetField(storagelocation.FieldLocationType, field.TypeString, value)
		_node.LocationType = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(storagelocation.FieldCapacity, field.TypeInt, value)
		_node.Capacity = &value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(storagelocation.FieldTemperature, field.TypeFloat32, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.Humidity(); ok {
		_spec.SetField(storagelocation.FieldHumidity, field.TypeFloat32, value)
		_node.Humidity = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(storagelocation.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(storagelocation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(storagelocation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   storagelocation.WinesTable,
			Columns: []string{storagelocation.WinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StorageLocationCreateBulk is the builder for creating many StorageLocation entities in bulk.
type StorageLocationCreateBulk struct {
	config
	err      error
	builders []*StorageLocationCreate
}

// Save creates the StorageLocation entities in the database.
func (_c *StorageLocationCreateBulk) Save(ctx context.Context) ([]*StorageLocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StorageLocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StorageLocationMutation)
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
func (_c *StorageLocationCreateBulk) SaveX(ctx context.Context) []*StorageLocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StorageLocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StorageLocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
