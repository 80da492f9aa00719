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
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// TastingNoteUpdate is the builder for updating TastingNote entities.
type TastingNoteUpdate struct {
	config
	hooks    []Hook
	mutation *TastingNoteMutation
}

// Where appends a list predicates to the TastingNoteUpdate builder.
func (_u *TastingNoteUpdate) Where(ps ...predicate.TastingNote) *TastingNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWineID sets the "wine_id" field.
func (_u *TastingNoteUpdate) SetWineID(v uuid.UUID) *TastingNoteUpdate {
	_u.mutation.SetWineID(v)
	return _u
}

// SetNillableWineID sets the "wine_id" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableWineID(v *uuid.UUID) *TastingNoteUpdate {
	if v != nil {
		_u.SetWineID(*v)
	}
	return _u
}

// SetTastingDate sets the "tasting_date" field.
func (_u *TastingNoteUpdate) SetTastingDate(v time.Time) *TastingNoteUpdate {
	_u.mutation.SetTastingDate(v)
	return _u
}

// SetNillableTastingDate sets the "tasting_date" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableTastingDate(v *time.Time) *TastingNoteUpdate {
	if v != nil {
		_u.SetTastingDate(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *TastingNoteUpdate) SetLocation(v string) *TastingNoteUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableLocation(v *string) *TastingNoteUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TastingNoteUpdate) ClearLocation() *TastingNoteUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetOccasion sets the "occasion" field.
func (_u *TastingNoteUpdate) SetOccasion(v string) *TastingNoteUpdate {
	_u.mutation.SetOccasion(v)
	return _u
}

// SetNillableOccasion sets the "occasion" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableOccasion(v *string) *TastingNoteUpdate {
	if v != nil {
		_u.SetOccasion(*v)
	}
	return _u
}

// ClearOccasion clears the value of the "occasion" field.
func (_u *TastingNoteUpdate) ClearOccasion() *TastingNoteUpdate {
	_u.mutation.ClearOccasion()
	return _u
}

// SetColor sets the "color" field.
func (_u *TastingNoteUpdate) SetColor(v string) *TastingNoteUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableColor(v *string) *TastingNoteUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *TastingNoteUpdate) ClearColor() *TastingNoteUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetAromas sets the "aromas" field.
func (_u *TastingNoteUpdate) SetAromas(v string) *TastingNoteUpdate {
	_u.mutation.SetAromas(v)
	return _u
}

// SetNillableAromas sets the "aromas" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableAromas(v *string) *TastingNoteUpdate {
	if v != nil {
		_u.SetAromas(*v)
	}
	return _u
}

// ClearAromas clears the value of the "aromas" field.
func (_u *TastingNoteUpdate) ClearAromas() *TastingNoteUpdate {
	_u.mutation.ClearAromas()
	return _u
}

// SetPalate sets the "palate" field.
func (_u *TastingNoteUpdate) SetPalate(v string) *TastingNoteUpdate {
	_u.mutation.SetPalate(v)
	return _u
}

// SetNillablePalate sets the "palate" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillablePalate(v *string) *TastingNoteUpdate {
	if v != nil {
		_u.SetPalate(*v)
	}
	return _u
}

// ClearPalate clears the value of the "palate" field.
func (_u *TastingNoteUpdate) ClearPalate() *TastingNoteUpdate {
	_u.mutation.ClearPalate()
	return _u
}

// SetScore sets the "score" field.
func (_u *TastingNoteUpdate) SetScore(v float32) *TastingNoteUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableScore(v *float32) *TastingNoteUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TastingNoteUpdate) AddScore(v float32) *TastingNoteUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *TastingNoteUpdate) ClearScore() *TastingNoteUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TastingNoteUpdate) SetNotes(v string) *TastingNoteUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableNotes(v *string) *TastingNoteUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TastingNoteUpdate) ClearNotes() *TastingNoteUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TastingNoteUpdate) SetCreatedAt(v time.Time) *TastingNoteUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TastingNoteUpdate) SetNillableCreatedAt(v *time.Time) *TastingNoteUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TastingNoteUpdate) SetUpdatedAt(v time.Time) *TastingNoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWine sets the "wine" edge to the Wine entity.
func (_u *TastingNoteUpdate) SetWine(v *Wine) *TastingNoteUpdate {
	return _u.SetWineID(v.ID)
}

// Mutation returns the TastingNoteMutation object of the builder.
func (_u *TastingNoteUpdate) Mutation() *TastingNoteMutation {
	return _u.mutation
}

// ClearWine clears the "wine" edge to the Wine entity.
func (_u *TastingNoteUpdate) ClearWine() *TastingNoteUpdate {
	_u.mutation.ClearWine()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TastingNoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TastingNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TastingNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TastingNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TastingNoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tastingnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TastingNoteUpdate) check() error {
	if _u.mutation.WineCleared() && len(_u.mutation.WineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TastingNote.wine"`)
	}
	return nil
}

func (_u *TastingNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tastingnote.Table, tastingnote.Columns, sqlgraph.NewFieldSpec(tastingnote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TastingDate(); ok {
		_spec.SetField(tastingnote.FieldTastingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(tastingnote.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(tastingnote.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Occasion(); ok {
		_spec.SetField(tastingnote.FieldOccasion, field.TypeString, value)
	}
	if _u.mutation.OccasionCleared() {
		_spec.ClearField(tastingnote.FieldOccasion, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(tastingnote.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(tastingnote.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Aromas(); ok {
		_spec.SetField(tastingnote.FieldAromas, field.TypeString, value)
	}
	if _u.mutation.AromasCleared() {
		_spec.ClearField(tastingnote.FieldAromas, field.TypeString)
	}
	if value, ok := _u.mutation.Palate(); ok {
		_spec.SetField(tastingnote.FieldPalate, field.TypeString, value)
	}
	if _u.mutation.PalateCleared() {
		_spec.ClearField(tastingnote.FieldPalate, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(tastingnote.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(tastingnote.FieldScore, field.TypeFloat32, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(tastingnote.FieldScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(tastingnote.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(tastingnote.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tastingnote.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tastingnote.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WineCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WineIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tastingnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TastingNoteUpdateOne is the builder for updating a single TastingNote entity.
type TastingNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TastingNoteMutation
}

// SetWineID sets the "wine_id" field.
func (_u *TastingNoteUpdateOne) SetWineID(v uuid.UUID) *TastingNoteUpdateOne {
	_u.mutation.SetWineID(v)
	return _u
}

// SetNillableWineID sets the "wine_id" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableWineID(v *uuid.UUID) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetWineID(*v)
	}
	return _u
}

// SetTastingDate sets the "tasting_date" field.
func (_u *TastingNoteUpdateOne) SetTastingDate(v time.Time) *TastingNoteUpdateOne {
	_u.mutation.SetTastingDate(v)
	return _u
}

// SetNillableTastingDate sets the "tasting_date" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableTastingDate(v *time.Time) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetTastingDate(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *TastingNoteUpdateOne) SetLocation(v string) *TastingNoteUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableLocation(v *string) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *TastingNoteUpdateOne) ClearLocation() *TastingNoteUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetOccasion sets the "occasion" field.
func (_u *TastingNoteUpdateOne) SetOccasion(v string) *TastingNoteUpdateOne {
	_u.mutation.SetOccasion(v)
	return _u
}

// SetNillableOccasion sets the "occasion" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableOccasion(v *string) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetOccasion(*v)
	}
	return _u
}

// ClearOccasion clears the value of the "occasion" field.
func (_u *TastingNoteUpdateOne) ClearOccasion() *TastingNoteUpdateOne {
	_u.mutation.ClearOccasion()
	return _u
}

// SetColor sets the "color" field.
func (_u *TastingNoteUpdateOne) SetColor(v string) *TastingNoteUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableColor(v *string) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *TastingNoteUpdateOne) ClearColor() *TastingNoteUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetAromas sets the "aromas" field.
func (_u *TastingNoteUpdateOne) SetAromas(v string) *TastingNoteUpdateOne {
	_u.mutation.SetAromas(v)
	return _u
}

// SetNillableAromas sets the "aromas" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableAromas(v *string) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetAromas(*v)
	}
	return _u
}

// ClearAromas clears the value of the "aromas" field.
func (_u *TastingNoteUpdateOne) ClearAromas() *TastingNoteUpdateOne {
	_u.mutation.ClearAromas()
	return _u
}

// SetPalate sets the "palate" field.
func (_u *TastingNoteUpdateOne) SetPalate(v string) *TastingNoteUpdateOne {
	_u.mutation.SetPalate(v)
	return _u
}

// SetNillablePalate sets the "palate" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillablePalate(v *string) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetPalate(*v)
	}
	return _u
}

// ClearPalate clears the value of the "palate" field.
func (_u *TastingNoteUpdateOne) ClearPalate() *TastingNoteUpdateOne {
	_u.mutation.ClearPalate()
	return _u
}

// SetScore sets the "score" field.
func (_u *TastingNoteUpdateOne) SetScore(v float32) *TastingNoteUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableScore(v *float32) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TastingNoteUpdateOne) AddScore(v float32) *TastingNoteUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *TastingNoteUpdateOne) ClearScore() *TastingNoteUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TastingNoteUpdateOne) SetNotes(v string) *TastingNoteUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableNotes(v *string) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TastingNoteUpdateOne) ClearNotes() *TastingNoteUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TastingNoteUpdateOne) SetCreatedAt(v time.Time) *TastingNoteUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TastingNoteUpdateOne) SetNillableCreatedAt(v *time.Time) *TastingNoteUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TastingNoteUpdateOne) SetUpdatedAt(v time.Time) *TastingNoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWine sets the "wine" edge to the Wine entity.
func (_u *TastingNoteUpdateOne) SetWine(v *Wine) *TastingNoteUpdateOne {
	return _u.SetWineID(v.ID)
}

// Mutation returns the TastingNoteMutation object of the builder.
func (_u *TastingNoteUpdateOne) Mutation() *TastingNoteMutation {
	return _u.mutation
}

// ClearWine clears the "wine" edge to the Wine entity.
func (_u *TastingNoteUpdateOne) ClearWine() *TastingNoteUpdateOne {
	_u.mutation.ClearWine()
	return _u
}

// Where appends a list predicates to the TastingNoteUpdate builder.
func (_u *TastingNoteUpdateOne) Where(ps ...predicate.TastingNote) *TastingNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TastingNoteUpdateOne) Select(field string, fields ...string) *TastingNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TastingNote entity.
func (_u *TastingNoteUpdateOne) Save(ctx context.Context) (*TastingNote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TastingNoteUpdateOne) SaveX(ctx context.Context) *TastingNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TastingNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TastingNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TastingNoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tastingnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TastingNoteUpdateOne) check() error {
	if _u.mutation.WineCleared() && len(_u.mutation.WineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TastingNote.wine"`)
	}
	return nil
}

func (_u *TastingNoteUpdateOne) sqlSave(ctx context.Context) (_node *TastingNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tastingnote.Table, tastingnote.Columns, sqlgraph.NewFieldSpec(tastingnote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TastingNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tastingnote.FieldID)
		for _, f := range fields {
			if !tastingnote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tastingnote.FieldID {
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
	if value, ok := _u.mutation.TastingDate(); ok {
		_spec.SetField(tastingnote.FieldTastingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(tastingnote.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(tastingnote.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Occasion(); ok {
		_spec.SetField(tastingnote.FieldOccasion, field.TypeString, value)
	}
	if _u.mutation.OccasionCleared() {
		_spec.ClearField(tastingnote.FieldOccasion, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(tastingnote.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(tastingnote.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Aromas(); ok {
		_spec.SetField(tastingnote.FieldAromas, field.TypeString, value)
	}
	if _u.mutation.AromasCleared() {
		_spec.ClearField(tastingnote.FieldAromas, field.TypeString)
	}
	if value, ok := _u.mutation.Palate(); ok {
		_spec.SetField(tastingnote.FieldPalate, field.TypeString, value)
	}
	if _u.mutation.PalateCleared() {
		_spec.ClearField(tastingnote.FieldPalate, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(tastingnote.FieldScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(tastingnote.FieldScore, field.TypeFloat32, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(tastingnote.FieldScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(tastingnote.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(tastingnote.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(tastingnote.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tastingnote.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WineCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WineIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TastingNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tastingnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
