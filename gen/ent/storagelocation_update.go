// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// StorageLocationUpdate is the builder for updating StorageLocation entities.
type StorageLocationUpdate struct {
	config
	hooks    []Hook
	mutation *StorageLocationMutation
}

// Where appends a list predicates to the StorageLocationUpdate builder.
func (_u *StorageLocationUpdate) Where(ps ...predicate.StorageLocation) *StorageLocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StorageLocationUpdate) SetName(v string) *StorageLocationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableName(v *string) *StorageLocationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StorageLocationUpdate) SetDescription(v string) *StorageLocationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableDescription(v *string) *StorageLocationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StorageLocationUpdate) ClearDescription() *StorageLocationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLocationType sets the "location_type" field.
func (_u *StorageLocationUpdate) SetLocationType(v string) *StorageLocationUpdate {
	_u.mutation.SetLocationType(v)
	return _u
}

// SetNillableLocationType sets the "location_type" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableLocationType(v *string) *StorageLocationUpdate {
	if v != nil {
		_u.SetLocationType(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *StorageLocationUpdate) SetCapacity(v int) *StorageLocationUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableCapacity(v *int) *StorageLocationUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *StorageLocationUpdate) AddCapacity(v int) *StorageLocationUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// ClearCapacity clears the value of the "capacity" field.
func (_u *StorageLocationUpdate) ClearCapacity() *StorageLocationUpdate {
	_u.mutation.ClearCapacity()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *StorageLocationUpdate) SetTemperature(v float32) *StorageLocationUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableTemperature(v *float32) *StorageLocationUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *StorageLocationUpdate) AddTemperature(v float32) *StorageLocationUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *StorageLocationUpdate) ClearTemperature() *StorageLocationUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *StorageLocationUpdate) SetHumidity(v float32) *StorageLocationUpdate {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableHumidity(v *float32) *StorageLocationUpdate {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *StorageLocationUpdate) AddHumidity(v float32) *StorageLocationUpdate {
	_u.mutation.AddHumidity(v)
	return _u
}

// ClearHumidity clears the value of the "humidity" field.
func (_u *StorageLocationUpdate) ClearHumidity() *StorageLocationUpdate {
	_u.mutation.ClearHumidity()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StorageLocationUpdate) SetIsActive(v bool) *StorageLocationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableIsActive(v *bool) *StorageLocationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StorageLocationUpdate) SetCreatedAt(v time.Time) *StorageLocationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StorageLocationUpdate) SetNillableCreatedAt(v *time.Time) *StorageLocationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StorageLocationUpdate) SetUpdatedAt(v time.Time) *StorageLocationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWineIDs adds the "wines" edge to the Wine entity by IDs.
func (_u *StorageLocationUpdate) AddWineIDs(ids ...uuid.UUID) *StorageLocationUpdate {
	_u.mutation.AddWineIDs(ids...)
	return _u
}

// AddWines adds the "wines" edges to the Wine entity.
func (_u *StorageLocationUpdate) AddWines(v ...*Wine) *StorageLocationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWineIDs(ids...)
}

// Mutation returns the StorageLocationMutation object of the builder.
func (_u *StorageLocationUpdate) Mutation() *StorageLocationMutation {
	return _u.mutation
}

// ClearWines clears all "wines" edges to the Wine entity.
func (_u *StorageLocationUpdate) ClearWines() *StorageLocationUpdate {
	_u.mutation.ClearWines()
	return _u
}

// RemoveWineIDs removes the "wines" edge to Wine entities by IDs.
func (_u *StorageLocationUpdate) RemoveWineIDs(ids ...uuid.UUID) *StorageLocationUpdate {
	_u.mutation.RemoveWineIDs(ids...)
	return _u
}

// RemoveWines removes "wines" edges to Wine entities.
func (_u *StorageLocationUpdate) RemoveWines(v ...*Wine) *StorageLocationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWineIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StorageLocationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StorageLocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StorageLocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StorageLocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StorageLocationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := storagelocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StorageLocationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := storagelocation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "StorageLocation.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationType(); ok {
		if err := storagelocation.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "StorageLocation.location_type": %w`, err)}
		}
	}
	return nil
}

func (_u *StorageLocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storagelocation.Table, storagelocation.Columns, sqlgraph.NewFieldSpec(storagelocation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(storagelocation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(storagelocation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(storagelocation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LocationType(); ok {
		_spec.SetField(storagelocation.FieldLocationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(storagelocation.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(storagelocation.FieldCapacity, field.TypeInt, value)
	}
	if _u.mutation.CapacityCleared() {
		_spec.ClearField(storagelocation.FieldCapacity, field.TypeInt)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(storagelocation.FieldTemperature, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(storagelocation.FieldTemperature, field.TypeFloat32, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(storagelocation.FieldTemperature, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(storagelocation.FieldHumidity, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(storagelocation.FieldHumidity, field.TypeFloat32, value)
	}
	if _u.mutation.HumidityCleared() {
		_spec.ClearField(storagelocation.FieldHumidity, field.TypeFloat32)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(storagelocation.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(storagelocation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(storagelocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWinesIDs(); len(nodes) > 0 && !_u.mutation.WinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storagelocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StorageLocationUpdateOne is the builder for updating a single StorageLocation entity.
type StorageLocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StorageLocationMutation
}

// SetName sets the "name" field.
func (_u *StorageLocationUpdateOne) SetName(v string) *StorageLocationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableName(v *string) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StorageLocationUpdateOne) SetDescription(v string) *StorageLocationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableDescription(v *string) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StorageLocationUpdateOne) ClearDescription() *StorageLocationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLocationType sets the "location_type" field.
func (_u *StorageLocationUpdateOne) SetLocationType(v string) *StorageLocationUpdateOne {
	_u.mutation.SetLocationType(v)
	return _u
}

// SetNillableLocationType sets the "location_type" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableLocationType(v *string) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetLocationType(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *StorageLocationUpdateOne) SetCapacity(v int) *StorageLocationUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableCapacity(v *int) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *StorageLocationUpdateOne) AddCapacity(v int) *StorageLocationUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// ClearCapacity clears the value of the "capacity" field.
func (_u *StorageLocationUpdateOne) ClearCapacity() *StorageLocationUpdateOne {
	_u.mutation.ClearCapacity()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *StorageLocationUpdateOne) SetTemperature(v float32) *StorageLocationUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableTemperature(v *float32) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *StorageLocationUpdateOne) AddTemperature(v float32) *StorageLocationUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *StorageLocationUpdateOne) ClearTemperature() *StorageLocationUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetHumidity sets the "humidity" field.
func (_u *StorageLocationUpdateOne) SetHumidity(v float32) *StorageLocationUpdateOne {
	_u.mutation.ResetHumidity()
	_u.mutation.SetHumidity(v)
	return _u
}

// SetNillableHumidity sets the "humidity" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableHumidity(v *float32) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetHumidity(*v)
	}
	return _u
}

// AddHumidity adds value to the "humidity" field.
func (_u *StorageLocationUpdateOne) AddHumidity(v float32) *StorageLocationUpdateOne {
	_u.mutation.AddHumidity(v)
	return _u
}

// ClearHumidity clears the value of the "humidity" field.
func (_u *StorageLocationUpdateOne) ClearHumidity() *StorageLocationUpdateOne {
	_u.mutation.ClearHumidity()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StorageLocationUpdateOne) SetIsActive(v bool) *StorageLocationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableIsActive(v *bool) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StorageLocationUpdateOne) SetCreatedAt(v time.Time) *StorageLocationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StorageLocationUpdateOne) SetNillableCreatedAt(v *time.Time) *StorageLocationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StorageLocationUpdateOne) SetUpdatedAt(v time.Time) *StorageLocationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddWineIDs adds the "wines" edge to the Wine entity by IDs.
func (_u *StorageLocationUpdateOne) AddWineIDs(ids ...uuid.UUID) *StorageLocationUpdateOne {
	_u.mutation.AddWineIDs(ids...)
	return _u
}

// AddWines adds the "wines" edges to the Wine entity.
func (_u *StorageLocationUpdateOne) AddWines(v ...*Wine) *StorageLocationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWineIDs(ids...)
}

// Mutation returns the StorageLocationMutation object of the builder.
func (_u *StorageLocationUpdateOne) Mutation() *StorageLocationMutation {
	return _u.mutation
}

// ClearWines clears all "wines" edges to the Wine entity.
func (_u *StorageLocationUpdateOne) ClearWines() *StorageLocationUpdateOne {
	_u.mutation.ClearWines()
	return _u
}

// RemoveWineIDs removes the "wines" edge to Wine entities by IDs.
func (_u *StorageLocationUpdateOne) RemoveWineIDs(ids ...uuid.UUID) *StorageLocationUpdateOne {
	_u.mutation.RemoveWineIDs(ids...)
	return _u
}

// RemoveWines removes "wines" edges to Wine entities.
func (_u *StorageLocationUpdateOne) RemoveWines(v ...*Wine) *StorageLocationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWineIDs(ids...)
}

// Where appends a list predicates to the StorageLocationUpdate builder.
func (_u *StorageLocationUpdateOne) Where(ps ...predicate.StorageLocation) *StorageLocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StorageLocationUpdateOne) Select(field string, fields ...string) *StorageLocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StorageLocation entity.
func (_u *StorageLocationUpdateOne) Save(ctx context.Context) (*StorageLocation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StorageLocationUpdateOne) SaveX(ctx context.Context) *StorageLocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StorageLocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StorageLocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StorageLocationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := storagelocation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StorageLocationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := storagelocation.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "StorageLocation.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LocationType(); ok {
		if err := storagelocation.LocationTypeValidator(v); err != nil {
			return &ValidationError{Name: "location_type", err: fmt.Errorf(`ent: validator failed for field "StorageLocation.location_type": %w`, err)}
		}
	}
	return nil
}

func (_u *StorageLocationUpdateOne) sqlSave(ctx context.Context) (_node *StorageLocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storagelocation.Table, storagelocation.Columns, sqlgraph.NewFieldSpec(storagelocation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StorageLocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storagelocation.FieldID)
		for _, f := range fields {
			if !storagelocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storagelocation.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(storagelocation.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(storagelocation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(storagelocation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LocationType(); ok {
		_spec.SetField(storagelocation.FieldLocationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(storagelocation.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(storagelocation.FieldCapacity, field.TypeInt, value)
	}
	if _u.mutation.CapacityCleared() {
		_spec.ClearField(storagelocation.FieldCapacity, field.TypeInt)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(storagelocation.FieldTemperature, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(storagelocation.FieldTemperature, field.TypeFloat32, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(storagelocation.FieldTemperature, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Humidity(); ok {
		_spec.SetField(storagelocation.FieldHumidity, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedHumidity(); ok {
		_spec.AddField(storagelocation.FieldHumidity, field.TypeFloat32, value)
	}
	if _u.mutation.HumidityCleared() {
		_spec.ClearField(storagelocation.FieldHumidity, field.TypeFloat32)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(storagelocation.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(storagelocation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(storagelocation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWinesIDs(); len(nodes) > 0 && !_u.mutation.WinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StorageLocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storagelocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
