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
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// WineCreate is the builder for creating a Wine entity.
type WineCreate struct {
	config
	mutation *WineMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WineCreate) SetName(v string) *WineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProducer sets the "producer" field.
func (_c *WineCreate) SetProducer(v string) *WineCreate {
	_c.mutation.SetProducer(v)
	return _c
}

// SetVintage sets the "vintage" field.
func (_c *WineCreate) SetVintage(v int) *WineCreate {
	_c.mutation.SetVintage(v)
	return _c
}

// SetNillableVintage sets the "vintage" field if the given value is not nil.
func (_c *WineCreate) SetNillableVintage(v *int) *WineCreate {
	if v != nil {
		_c.SetVintage(*v)
	}
	return _c
}

// SetWineType sets the "wine_type" field.
func (_c *WineCreate) SetWineType(v string) *WineCreate {
	_c.mutation.SetWineType(v)
	return _c
}

// SetCountry sets the "country" field.
func (_c *WineCreate) SetCountry(v string) *WineCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *WineCreate) SetNillableCountry(v *string) *WineCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *WineCreate) SetRegion(v string) *WineCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *WineCreate) SetNillableRegion(v *string) *WineCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetSubRegion sets the "sub_region" field.
func (_c *WineCreate) SetSubRegion(v string) *WineCreate {
	_c.mutation.SetSubRegion(v)
	return _c
}

// SetNillableSubRegion sets the "sub_region" field if the given value is not nil.
func (_c *WineCreate) SetNillableSubRegion(v *string) *WineCreate {
	if v != nil {
		_c.SetSubRegion(*v)
	}
	return _c
}

// SetAppellation sets the "appellation" field.
func (_c *WineCreate) SetAppellation(v string) *WineCreate {
	_c.mutation.SetAppellation(v)
	return _c
}

// SetNillableAppellation sets the "appellation" field if the given value is not nil.
func (_c *WineCreate) SetNillableAppellation(v *string) *WineCreate {
	if v != nil {
		_c.SetAppellation(*v)
	}
	return _c
}

// SetGrapeVarieties sets the "grape_varieties" field.
func (_c *WineCreate) SetGrapeVarieties(v []string) *WineCreate {
	_c.mutation.SetGrapeVarieties(v)
	return _c
}

// SetAlcoholContent sets the "alcohol_content" field.
func (_c *WineCreate) SetAlcoholContent(v float32) *WineCreate {
	_c.mutation.SetAlcoholContent(v)
	return _c
}

// SetNillableAlcoholContent sets the "alcohol_content" field if the given value is not nil.
func (_c *WineCreate) SetNillableAlcoholContent(v *float32) *WineCreate {
	if v != nil {
		_c.SetAlcoholContent(*v)
	}
	return _c
}

// SetBottleSize sets the "bottle_size" field.
func (_c *WineCreate) SetBottleSize(v string) *WineCreate {
	_c.mutation.SetBottleSize(v)
	return _c
}

// SetNillableBottleSize sets the "bottle_size" field if the given value is not nil.
func (_c *WineCreate) SetNillableBottleSize(v *string) *WineCreate {
	if v != nil {
		_c.SetBottleSize(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *WineCreate) SetQuantity(v int) *WineCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *WineCreate) SetNillableQuantity(v *int) *WineCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetPurchasePrice sets the "purchase_price" field.
func (_c *WineCreate) SetPurchasePrice(v float64) *WineCreate {
	_c.mutation.SetPurchasePrice(v)
	return _c
}

// SetNillablePurchasePrice sets the "purchase_price" field if the given value is not nil.
func (_c *WineCreate) SetNillablePurchasePrice(v *float64) *WineCreate {
	if v != nil {
		_c.SetPurchasePrice(*v)
	}
	return _c
}

// SetPurchaseDate sets the "purchase_date" field.
func (_c *WineCreate) SetPurchaseDate(v time.Time) *WineCreate {
	_c.mutation.SetPurchaseDate(v)
	return _c
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_c *WineCreate) SetNillablePurchaseDate(v *time.Time) *WineCreate {
	if v != nil {
		_c.SetPurchaseDate(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *WineCreate) SetCurrency(v string) *WineCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *WineCreate) SetNillableCurrency(v *string) *WineCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetPersonalRating sets the "personal_rating" field.
func (_c *WineCreate) SetPersonalRating(v float32) *WineCreate {
	_c.mutation.SetPersonalRating(v)
	return _c
}

// SetNillablePersonalRating sets the "personal_rating" field if the given value is not nil.
func (_c *WineCreate) SetNillablePersonalRating(v *float32) *WineCreate {
	if v != nil {
		_c.SetPersonalRating(*v)
	}
	return _c
}

// SetDrinkingWindowStart sets the "drinking_window_start" field.
func (_c *WineCreate) SetDrinkingWindowStart(v int) *WineCreate {
	_c.mutation.SetDrinkingWindowStart(v)
	return _c
}

// SetNillableDrinkingWindowStart sets the "drinking_window_start" field if the given value is not nil.
func (_c *WineCreate) SetNillableDrinkingWindowStart(v *int) *WineCreate {
	if v != nil {
		_c.SetDrinkingWindowStart(*v)
	}
	return _c
}

// SetDrinkingWindowEnd sets the "drinking_window_end" field.
func (_c *WineCreate) SetDrinkingWindowEnd(v int) *WineCreate {
	_c.mutation.SetDrinkingWindowEnd(v)
	return _c
}

// SetNillableDrinkingWindowEnd sets the "drinking_window_end" field if the given value is not nil.
func (_c *WineCreate) SetNillableDrinkingWindowEnd(v *int) *WineCreate {
	if v != nil {
		_c.SetDrinkingWindowEnd(*v)
	}
	return _c
}

// SetPeakMaturityYear sets the "peak_maturity_year" field.
func (_c *WineCreate) SetPeakMaturityYear(v int) *WineCreate {
	_c.mutation.SetPeakMaturityYear(v)
	return _c
}

// SetNillablePeakMaturityYear sets the "peak_maturity_year" field if the given value is not nil.
func (_c *WineCreate) SetNillablePeakMaturityYear(v *int) *WineCreate {
	if v != nil {
		_c.SetPeakMaturityYear(*v)
	}
	return _c
}

// SetTastingSummary sets the "tasting_summary" field.
func (_c *WineCreate) SetTastingSummary(v string) *WineCreate {
	_c.mutation.SetTastingSummary(v)
	return _c
}

// SetNillableTastingSummary sets the "tasting_summary" field if the given value is not nil.
func (_c *WineCreate) SetNillableTastingSummary(v *string) *WineCreate {
	if v != nil {
		_c.SetTastingSummary(*v)
	}
	return _c
}

// SetFoodPairings sets the "food_pairings" field.
func (_c *WineCreate) SetFoodPairings(v []string) *WineCreate {
	_c.mutation.SetFoodPairings(v)
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *WineCreate) SetLocationID(v uuid.UUID) *WineCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_c *WineCreate) SetNillableLocationID(v *uuid.UUID) *WineCreate {
	if v != nil {
		_c.SetLocationID(*v)
	}
	return _c
}

// SetSystembolagetID sets the "systembolaget_id" field.
func (_c *WineCreate) SetSystembolagetID(v string) *WineCreate {
	_c.mutation.SetSystembolagetID(v)
	return _c
}

// SetNillableSystembolagetID sets the "systembolaget_id" field if the given value is not nil.
func (_c *WineCreate) SetNillableSystembolagetID(v *string) *WineCreate {
	if v != nil {
		_c.SetSystembolagetID(*v)
	}
	return _c
}

// SetBarcode sets the "barcode" field.
func (_c *WineCreate) SetBarcode(v string) *WineCreate {
	_c.mutation.SetBarcode(v)
	return _c
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_c *WineCreate) SetNillableBarcode(v *string) *WineCreate {
	if v != nil {
		_c.SetBarcode(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *WineCreate) SetIsDeleted(v bool) *WineCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *WineCreate) SetNillableIsDeleted(v *bool) *WineCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WineCreate) SetCreatedAt(v time.Time) *WineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WineCreate) SetNillableCreatedAt(v *time.Time) *WineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WineCreate) SetUpdatedAt(v time.Time) *WineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WineCreate) SetNillableUpdatedAt(v *time.Time) *WineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WineCreate) SetID(v uuid.UUID) *WineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WineCreate) SetNillableID(v *uuid.UUID) *WineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLocation sets the "location" edge to the StorageLocation entity.
func (_c *WineCreate) SetLocation(v *StorageLocation) *WineCreate {
	return _c.SetLocationID(v.ID)
}

// AddNoteIDs adds the "notes" edge to the TastingNote entity by IDs.
func (_c *WineCreate) AddNoteIDs(ids ...uuid.UUID) *WineCreate {
	_c.mutation.AddNoteIDs(ids...)
	return _c
}

// AddNotes adds the "notes" edges to the TastingNote entity.
func (_c *WineCreate) AddNotes(v ...*TastingNote) *WineCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNoteIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by IDs.
func (_c *WineCreate) AddJobIDs(ids ...uuid.UUID) *WineCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ScanJob entity.
func (_c *WineCreate) AddJobs(v ...*ScanJob) *WineCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the WineMutation object of the builder.
func (_c *WineCreate) Mutation() *WineMutation {
	return _c.mutation
}

// Save creates the Wine in the database.
func (_c *WineCreate) Save(ctx context.Context) (*Wine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WineCreate) SaveX(ctx context.Context) *Wine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WineCreate) defaults() {
	if _, ok := _c.mutation.BottleSize(); !ok {
		v := wine.DefaultBottleSize
		_c.mutation.SetBottleSize(v)
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		v := wine.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := wine.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := wine.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := wine.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := wine.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := wine.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WineCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Wine.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := wine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Wine.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Producer(); !ok {
		return &ValidationError{Name: "producer", err: errors.New(`ent: missing required field "Wine.producer"`)}
	}
	if v, ok := _c.mutation.Producer(); ok {
		if err := wine.ProducerValidator(v); err != nil {
			return &ValidationError{Name: "producer", err: fmt.Errorf(`ent: validator failed for field "Wine.producer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WineType(); !ok {
		return &ValidationError{Name: "wine_type", err: errors.New(`ent: missing required field "Wine.wine_type"`)}
	}
	if v, ok := _c.mutation.WineType(); ok {
		if err := wine.WineTypeValidator(v); err != nil {
			return &ValidationError{Name: "wine_type", err: fmt.Errorf(`ent: validator failed for field "Wine.wine_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BottleSize(); !ok {
		return &ValidationError{Name: "bottle_size", err: errors.New(`ent: missing required field "Wine.bottle_size"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "Wine.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := wine.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Wine.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Wine.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := wine.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Wine.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Wine.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Wine.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Wine.updated_at"`)}
	}
	return nil
}

func (_c *WineCreate) sqlSave(ctx context.Context) (*Wine, error) {
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

func (_c *WineCreate) createSpec() (*Wine, *sqlgraph.CreateSpec) {
	var (
		_node = &Wine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wine.Table, sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(wine.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Producer(); ok {
		_spec.SetField(wine.FieldProducer, field.TypeString, value)
		_node.Producer = value
	}
	if value, ok := _c.mutation.Vintage(); ok {
		_spec.SetField(wine.FieldVintage, field.TypeInt, value)
		_node.Vintage = &value
	}
	if value, ok := _c.mutation.WineType(); ok {
		_spec.SetField(wine.FieldWineType, field.TypeString, value)
		_node.WineType = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(wine.FieldCountry, field.TypeString, value)
		_node.Country = &value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(wine.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := _c.mutation.SubRegion(); ok {
		_spec.SetField(wine.FieldSubRegion, field.TypeString, value)
		_node.SubRegion = &value
	}
	if value, ok := _c.mutation.Appellation(); ok {
		_spec.SetField(wine.FieldAppellation, field.TypeString, value)
		_node.Appellation = &value
	}
	if value, ok := _c.mutation.GrapeVarieties(); ok {
		_spec.SetField(wine.FieldGrapeVarieties, field.TypeJSON, value)
		_node.GrapeVarieties = value
	}
	if value, ok := _c.mutation.AlcoholContent(); ok {
		_spec.SetField(wine.FieldAlcoholContent, field.TypeFloat32, value)
		_node.AlcoholContent = &value
	}
	if value, ok := _c.mutation.BottleSize(); ok {
		_spec.SetField(wine.FieldBottleSize, field.TypeString, value)
		_node.BottleSize = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(wine.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.PurchasePrice(); ok {
		_spec.SetField(wine.FieldPurchasePrice, field.TypeFloat64, value)
		_node.PurchasePrice = &value
	}
	if value, ok := _c.mutation.PurchaseDate(); ok {
		_spec.SetField(wine.FieldPurchaseDate, field.TypeTime, value)
		_node.PurchaseDate = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(wine.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.PersonalRating(); ok {
		_spec.SetField(wine.FieldPersonalRating, field.TypeFloat32, value)
		_node.PersonalRating = &value
	}
	if value, ok := _c.mutation.DrinkingWindowStart(); ok {
		_spec.SetField(wine.FieldDrinkingWindowStart, field.TypeInt, value)
		_node.DrinkingWindowStart = &value
	}
	if value, ok := _c.mutation.DrinkingWindowEnd(); ok {
		_spec.SetField(wine.FieldDrinkingWindowEnd, field.TypeInt, value)
		_node.DrinkingWindowEnd = &value
	}
	if value, ok := _c.mutation.PeakMaturityYear(); ok {
		_spec.SetField(wine.FieldPeakMaturityYear, field.TypeInt, value)
		_node.PeakMaturityYear = &value
	}
	if value, ok := _c.mutation.TastingSummary(); ok {
		_spec.SetField(wine.FieldTastingSummary, field.TypeString, value)
		_node.TastingSummary = &value
	}
	if value, ok := _c.mutation.FoodPairings(); ok {
		_spec.SetField(wine.FieldFoodPairings, field.TypeJSON, value)
		_node.FoodPairings = value
	}
	if value, ok := _c.mutation.SystembolagetID(); ok {
		_spec.SetField(wine.FieldSystembolagetID, field.TypeString, value)
		_node.SystembolagetID = &value
	}
	if value, ok := _c.mutation.Barcode(); ok {
		_spec.SetField(wine.FieldBarcode, field.TypeString, value)
		_node.Barcode = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(wine.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(wine.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(wine.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LocationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   wine.LocationTable,
			Columns: []string{wine.LocationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storagelocation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LocationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   wine.NotesTable,
			Columns: []string{wine.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tastingnote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   wine.JobsTable,
			Columns: []string{wine.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WineCreateBulk is the builder for creating many Wine entities in bulk.
type WineCreateBulk struct {
	config
	err      error
	builders []*WineCreate
}

// Save creates the Wine entities in the database.
func (_c *WineCreateBulk) Save(ctx context.Context) ([]*Wine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Wine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WineMutation)
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
func (_c *WineCreateBulk) SaveX(ctx context.Context) []*Wine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
