// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// WineUpdate is the builder for updating Wine entities.
type WineUpdate struct {
	config
	hooks    []Hook
	mutation *WineMutation
}

// Where appends a list predicates to the WineUpdate builder.
func (_u *WineUpdate) Where(ps ...predicate.Wine) *WineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WineUpdate) SetName(v string) *WineUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WineUpdate) SetNillableName(v *string) *WineUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProducer sets the "producer" field.
func (_u *WineUpdate) SetProducer(v string) *WineUpdate {
	_u.mutation.SetProducer(v)
	return _u
}

// SetNillableProducer sets the "producer" field if the given value is not nil.
func (_u *WineUpdate) SetNillableProducer(v *string) *WineUpdate {
	if v != nil {
		_u.SetProducer(*v)
	}
	return _u
}

// SetVintage sets the "vintage" field.
func (_u *WineUpdate) SetVintage(v int) *WineUpdate {
	_u.mutation.ResetVintage()
	_u.mutation.SetVintage(v)
	return _u
}

// SetNillableVintage sets the "vintage" field if the given value is not nil.
func (_u *WineUpdate) SetNillableVintage(v *int) *WineUpdate {
	if v != nil {
		_u.SetVintage(*v)
	}
	return _u
}

// AddVintage adds value to the "vintage" field.
func (_u *WineUpdate) AddVintage(v int) *WineUpdate {
	_u.mutation.AddVintage(v)
	return _u
}

// ClearVintage clears the value of the "vintage" field.
func (_u *WineUpdate) ClearVintage() *WineUpdate {
	_u.mutation.ClearVintage()
	return _u
}

// SetWineType sets the "wine_type" field.
func (_u *WineUpdate) SetWineType(v string) *WineUpdate {
	_u.mutation.SetWineType(v)
	return _u
}

// SetNillableWineType sets the "wine_type" field if the given value is not nil.
func (_u *WineUpdate) SetNillableWineType(v *string) *WineUpdate {
	if v != nil {
		_u.SetWineType(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *WineUpdate) SetCountry(v string) *WineUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *WineUpdate) SetNillableCountry(v *string) *WineUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *WineUpdate) ClearCountry() *WineUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetRegion sets the "region" field.
func (_u *WineUpdate) SetRegion(v string) *WineUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *WineUpdate) SetNillableRegion(v *string) *WineUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *WineUpdate) ClearRegion() *WineUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetSubRegion sets the "sub_region" field.
func (_u *WineUpdate) SetSubRegion(v string) *WineUpdate {
	_u.mutation.SetSubRegion(v)
	return _u
}

// SetNillableSubRegion sets the "sub_region" field if the given value is not nil.
func (_u *WineUpdate) SetNillableSubRegion(v *string) *WineUpdate {
	if v != nil {
		_u.SetSubRegion(*v)
	}
	return _u
}

// ClearSubRegion clears the value of the "sub_region" field.
func (_u *WineUpdate) ClearSubRegion() *WineUpdate {
	_u.mutation.ClearSubRegion()
	return _u
}

// SetAppellation sets the "appellation" field.
func (_u *WineUpdate) SetAppellation(v string) *WineUpdate {
	_u.mutation.SetAppellation(v)
	return _u
}

// SetNillableAppellation sets the "appellation" field if the given value is not nil.
func (_u *WineUpdate) SetNillableAppellation(v *string) *WineUpdate {
	if v != nil {
		_u.SetAppellation(*v)
	}
	return _u
}

// ClearAppellation clears the value of the "appellation" field.
func (_u *WineUpdate) ClearAppellation() *WineUpdate {
	_u.mutation.ClearAppellation()
	return _u
}

// SetGrapeVarieties sets the "grape_varieties" field.
func (_u *WineUpdate) SetGrapeVarieties(v []string) *WineUpdate {
	_u.mutation.SetGrapeVarieties(v)
	return _u
}

// AppendGrapeVarieties appends value to the "grape_varieties" field.
func (_u *WineUpdate) AppendGrapeVarieties(v []string) *WineUpdate {
	_u.mutation.AppendGrapeVarieties(v)
	return _u
}

// ClearGrapeVarieties clears the value of the "grape_varieties" field.
func (_u *WineUpdate) ClearGrapeVarieties() *WineUpdate {
	_u.mutation.ClearGrapeVarieties()
	return _u
}

// SetAlcoholContent sets the "alcohol_content" field.
func (_u *WineUpdate) SetAlcoholContent(v float32) *WineUpdate {
	_u.mutation.ResetAlcoholContent()
	_u.mutation.SetAlcoholContent(v)
	return _u
}

// SetNillableAlcoholContent sets the "alcohol_content" field if the given value is not nil.
func (_u *WineUpdate) SetNillableAlcoholContent(v *float32) *WineUpdate {
	if v != nil {
		_u.SetAlcoholContent(*v)
	}
	return _u
}

// AddAlcoholContent adds value to the "alcohol_content" field.
func (_u *WineUpdate) AddAlcoholContent(v float32) *WineUpdate {
	_u.mutation.AddAlcoholContent(v)
	return _u
}

// ClearAlcoholContent clears the value of the "alcohol_content" field.
func (_u *WineUpdate) ClearAlcoholContent() *WineUpdate {
	_u.mutation.ClearAlcoholContent()
	return _u
}

// SetBottleSize sets the "bottle_size" field.
func (_u *WineUpdate) SetBottleSize(v string) *WineUpdate {
	_u.mutation.SetBottleSize(v)
	return _u
}

// SetNillableBottleSize sets the "bottle_size" field if the given value is not nil.
func (_u *WineUpdate) SetNillableBottleSize(v *string) *WineUpdate {
	if v != nil {
		_u.SetBottleSize(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *WineUpdate) SetQuantity(v int) *WineUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *WineUpdate) SetNillableQuantity(v *int) *WineUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *WineUpdate) AddQuantity(v int) *WineUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPurchasePrice sets the "purchase_price" field.
func (_u *WineUpdate) SetPurchasePrice(v float64) *WineUpdate {
	_u.mutation.ResetPurchasePrice()
	_u.mutation.SetPurchasePrice(v)
	return _u
}

// SetNillablePurchasePrice sets the "purchase_price" field if the given value is not nil.
func (_u *WineUpdate) SetNillablePurchasePrice(v *float64) *WineUpdate {
	if v != nil {
		_u.SetPurchasePrice(*v)
	}
	return _u
}

// AddPurchasePrice adds value to the "purchase_price" field.
func (_u *WineUpdate) AddPurchasePrice(v float64) *WineUpdate {
	_u.mutation.AddPurchasePrice(v)
	return _u
}

// ClearPurchasePrice clears the value of the "purchase_price" field.
func (_u *WineUpdate) ClearPurchasePrice() *WineUpdate {
	_u.mutation.ClearPurchasePrice()
	return _u
}

// SetPurchaseDate sets the "purchase_date" field.
func (_u *WineUpdate) SetPurchaseDate(v time.Time) *WineUpdate {
	_u.mutation.SetPurchaseDate(v)
	return _u
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_u *WineUpdate) SetNillablePurchaseDate(v *time.Time) *WineUpdate {
	if v != nil {
		_u.SetPurchaseDate(*v)
	}
	return _u
}

// ClearPurchaseDate clears the value of the "purchase_date" field.
func (_u *WineUpdate) ClearPurchaseDate() *WineUpdate {
	_u.mutation.ClearPurchaseDate()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *WineUpdate) SetCurrency(v string) *WineUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *WineUpdate) SetNillableCurrency(v *string) *WineUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPersonalRating sets the "personal_rating" field.
func (_u *WineUpdate) SetPersonalRating(v float32) *WineUpdate {
	_u.mutation.ResetPersonalRating()
	_u.mutation.SetPersonalRating(v)
	return _u
}

// SetNillablePersonalRating sets the "personal_rating" field if the given value is not nil.
func (_u *WineUpdate) SetNillablePersonalRating(v *float32) *WineUpdate {
	if v != nil {
		_u.SetPersonalRating(*v)
	}
	return _u
}

// AddPersonalRating adds value to the "personal_rating" field.
func (_u *WineUpdate) AddPersonalRating(v float32) *WineUpdate {
	_u.mutation.AddPersonalRating(v)
	return _u
}

// ClearPersonalRating clears the value of the "personal_rating" field.
func (_u *WineUpdate) ClearPersonalRating() *WineUpdate {
	_u.mutation.ClearPersonalRating()
	return _u
}

// SetDrinkingWindowStart sets the "drinking_window_start" field.
func (_u *WineUpdate) SetDrinkingWindowStart(v int) *WineUpdate {
	_u.mutation.ResetDrinkingWindowStart()
	_u.mutation.SetDrinkingWindowStart(v)
	return _u
}

// SetNillableDrinkingWindowStart sets the "drinking_window_start" field if the given value is not nil.
func (_u *WineUpdate) SetNillableDrinkingWindowStart(v *int) *WineUpdate {
	if v != nil {
		_u.SetDrinkingWindowStart(*v)
	}
	return _u
}

// AddDrinkingWindowStart adds value to the "drinking_window_start" field.
func (_u *WineUpdate) AddDrinkingWindowStart(v int) *WineUpdate {
	_u.mutation.AddDrinkingWindowStart(v)
	return _u
}

// ClearDrinkingWindowStart clears the value of the "drinking_window_start" field.
func (_u *WineUpdate) ClearDrinkingWindowStart() *WineUpdate {
	_u.mutation.ClearDrinkingWindowStart()
	return _u
}

// SetDrinkingWindowEnd sets the "drinking_window_end" field.
func (_u *WineUpdate) SetDrinkingWindowEnd(v int) *WineUpdate {
	_u.mutation.ResetDrinkingWindowEnd()
	_u.mutation.SetDrinkingWindowEnd(v)
	return _u
}

// SetNillableDrinkingWindowEnd sets the "drinking_window_end" field if the given value is not nil.
func (_u *WineUpdate) SetNillableDrinkingWindowEnd(v *int) *WineUpdate {
	if v != nil {
		_u.SetDrinkingWindowEnd(*v)
	}
	return _u
}

// AddDrinkingWindowEnd adds value to the "drinking_window_end" field.
func (_u *WineUpdate) AddDrinkingWindowEnd(v int) *WineUpdate {
	_u.mutation.AddDrinkingWindowEnd(v)
	return _u
}

// ClearDrinkingWindowEnd clears the value of the "drinking_window_end" field.
func (_u *WineUpdate) ClearDrinkingWindowEnd() *WineUpdate {
	_u.mutation.ClearDrinkingWindowEnd()
	return _u
}

// SetPeakMaturityYear sets the "peak_maturity_year" field.
func (_u *WineUpdate) SetPeakMaturityYear(v int) *WineUpdate {
	_u.mutation.ResetPeakMaturityYear()
	_u.mutation.SetPeakMaturityYear(v)
	return _u
}

// SetNillablePeakMaturityYear sets the "peak_maturity_year" field if the given value is not nil.
func (_u *WineUpdate) SetNillablePeakMaturityYear(v *int) *WineUpdate {
	if v != nil {
		_u.SetPeakMaturityYear(*v)
	}
	return _u
}

// AddPeakMaturityYear adds value to the "peak_maturity_year" field.
func (_u *WineUpdate) AddPeakMaturityYear(v int) *WineUpdate {
	_u.mutation.AddPeakMaturityYear(v)
	return _u
}

// ClearPeakMaturityYear clears the value of the "peak_maturity_year" field.
func (_u *WineUpdate) ClearPeakMaturityYear() *WineUpdate {
	_u.mutation.ClearPeakMaturityYear()
	return _u
}

// SetTastingSummary sets the "tasting_summary" field.
func (_u *WineUpdate) SetTastingSummary(v string) *WineUpdate {
	_u.mutation.SetTastingSummary(v)
	return _u
}

// SetNillableTastingSummary sets the "tasting_summary" field if the given value is not nil.
func (_u *WineUpdate) SetNillableTastingSummary(v *string) *WineUpdate {
	if v != nil {
		_u.SetTastingSummary(*v)
	}
	return _u
}

// ClearTastingSummary clears the value of the "tasting_summary" field.
func (_u *WineUpdate) ClearTastingSummary() *WineUpdate {
	_u.mutation.ClearTastingSummary()
	return _u
}

// SetFoodPairings sets the "food_pairings" field.
func (_u *WineUpdate) SetFoodPairings(v []string) *WineUpdate {
	_u.mutation.SetFoodPairings(v)
	return _u
}

// AppendFoodPairings appends value to the "food_pairings" field.
func (_u *WineUpdate) AppendFoodPairings(v []string) *WineUpdate {
	_u.mutation.AppendFoodPairings(v)
	return _u
}

// ClearFoodPairings clears the value of the "food_pairings" field.
func (_u *WineUpdate) ClearFoodPairings() *WineUpdate {
	_u.mutation.ClearFoodPairings()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *WineUpdate) SetLocationID(v uuid.UUID) *WineUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *WineUpdate) SetNillableLocationID(v *uuid.UUID) *WineUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// ClearLocationID clears the value of the "location_id" field.
func (_u *WineUpdate) ClearLocationID() *WineUpdate {
	_u.mutation.ClearLocationID()
	return _u
}

// SetSystembolagetID sets the "systembolaget_id" field.
func (_u *WineUpdate) SetSystembolagetID(v string) *WineUpdate {
	_u.mutation.SetSystembolagetID(v)
	return _u
}

// SetNillableSystembolagetID sets the "systembolaget_id" field if the given value is not nil.
func (_u *WineUpdate) SetNillableSystembolagetID(v *string) *WineUpdate {
	if v != nil {
		_u.SetSystembolagetID(*v)
	}
	return _u
}

// ClearSystembolagetID clears the value of the "systembolaget_id" field.
func (_u *WineUpdate) ClearSystembolagetID() *WineUpdate {
	_u.mutation.ClearSystembolagetID()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *WineUpdate) SetBarcode(v string) *WineUpdate {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *WineUpdate) SetNillableBarcode(v *string) *WineUpdate {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *WineUpdate) ClearBarcode() *WineUpdate {
	_u.mutation.ClearBarcode()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *WineUpdate) SetIsDeleted(v bool) *WineUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *WineUpdate) SetNillableIsDeleted(v *bool) *WineUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WineUpdate) SetCreatedAt(v time.Time) *WineUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WineUpdate) SetNillableCreatedAt(v *time.Time) *WineUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WineUpdate) SetUpdatedAt(v time.Time) *WineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocation sets the "location" edge to the StorageLocation entity.
func (_u *WineUpdate) SetLocation(v *StorageLocation) *WineUpdate {
	return _u.SetLocationID(v.ID)
}

// AddNoteIDs adds the "notes" edge to the TastingNote entity by IDs.
func (_u *WineUpdate) AddNoteIDs(ids ...uuid.UUID) *WineUpdate {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the TastingNote entity.
func (_u *WineUpdate) AddNotes(v ...*TastingNote) *WineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by IDs.
func (_u *WineUpdate) AddJobIDs(ids ...uuid.UUID) *WineUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ScanJob entity.
func (_u *WineUpdate) AddJobs(v ...*ScanJob) *WineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the WineMutation object of the builder.
func (_u *WineUpdate) Mutation() *WineMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the StorageLocation entity.
func (_u *WineUpdate) ClearLocation() *WineUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// ClearNotes clears all "notes" edges to the TastingNote entity.
func (_u *WineUpdate) ClearNotes() *WineUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to TastingNote entities by IDs.
func (_u *WineUpdate) RemoveNoteIDs(ids ...uuid.UUID) *WineUpdate {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to TastingNote entities.
func (_u *WineUpdate) RemoveNotes(v ...*TastingNote) *WineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ScanJob entity.
func (_u *WineUpdate) ClearJobs() *WineUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ScanJob entities by IDs.
func (_u *WineUpdate) RemoveJobIDs(ids ...uuid.UUID) *WineUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ScanJob entities.
func (_u *WineUpdate) RemoveJobs(v ...*ScanJob) *WineUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := wine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WineUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := wine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Wine.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Producer(); ok {
		if err := wine.ProducerValidator(v); err != nil {
			return &ValidationError{Name: "producer", err: fmt.Errorf(`ent: validator failed for field "Wine.producer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WineType(); ok {
		if err := wine.WineTypeValidator(v); err != nil {
			return &ValidationError{Name: "wine_type", err: fmt.Errorf(`ent: validator failed for field "Wine.wine_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := wine.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Wine.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := wine.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Wine.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *WineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wine.Table, wine.Columns, sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(wine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Producer(); ok {
		_spec.SetField(wine.FieldProducer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vintage(); ok {
		_spec.SetField(wine.FieldVintage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVintage(); ok {
		_spec.AddField(wine.FieldVintage, field.TypeInt, value)
	}
	if _u.mutation.VintageCleared() {
		_spec.ClearField(wine.FieldVintage, field.TypeInt)
	}
	if value, ok := _u.mutation.WineType(); ok {
		_spec.SetField(wine.FieldWineType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(wine.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(wine.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(wine.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(wine.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.SubRegion(); ok {
		_spec.SetField(wine.FieldSubRegion, field.TypeString, value)
	}
	if _u.mutation.SubRegionCleared() {
		_spec.ClearField(wine.FieldSubRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Appellation(); ok {
		_spec.SetField(wine.FieldAppellation, field.TypeString, value)
	}
	if _u.mutation.AppellationCleared() {
		_spec.ClearField(wine.FieldAppellation, field.TypeString)
	}
	if value, ok := _u.mutation.GrapeVarieties(); ok {
		_spec.SetField(wine.FieldGrapeVarieties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGrapeVarieties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wine.FieldGrapeVarieties, value)
		})
	}
	if _u.mutation.GrapeVarietiesCleared() {
		_spec.ClearField(wine.FieldGrapeVarieties, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlcoholContent(); ok {
		_spec.SetField(wine.FieldAlcoholContent, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedAlcoholContent(); ok {
		_spec.AddField(wine.FieldAlcoholContent, field.TypeFloat32, value)
	}
	if _u.mutation.AlcoholContentCleared() {
		_spec.ClearField(wine.FieldAlcoholContent, field.TypeFloat32)
	}
	if value, ok := _u.mutation.BottleSize(); ok {
		_spec.SetField(wine.FieldBottleSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(wine.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(wine.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PurchasePrice(); ok {
		_spec.SetField(wine.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPurchasePrice(); ok {
		_spec.AddField(wine.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if _u.mutation.PurchasePriceCleared() {
		_spec.ClearField(wine.FieldPurchasePrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PurchaseDate(); ok {
		_spec.SetField(wine.FieldPurchaseDate, field.TypeTime, value)
	}
	if _u.mutation.PurchaseDateCleared() {
		_spec.ClearField(wine.FieldPurchaseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(wine.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalRating(); ok {
		_spec.SetField(wine.FieldPersonalRating, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedPersonalRating(); ok {
		_spec.AddField(wine.FieldPersonalRating, field.TypeFloat32, value)
	}
	if _u.mutation.PersonalRatingCleared() {
		_spec.ClearField(wine.FieldPersonalRating, field.TypeFloat32)
	}
	if value, ok := _u.mutation.DrinkingWindowStart(); ok {
		_spec.SetField(wine.FieldDrinkingWindowStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrinkingWindowStart(); ok {
		_spec.AddField(wine.FieldDrinkingWindowStart, field.TypeInt, value)
	}
	if _u.mutation.DrinkingWindowStartCleared() {
		_spec.ClearField(wine.FieldDrinkingWindowStart, field.TypeInt)
	}
	if value, ok := _u.mutation.DrinkingWindowEnd(); ok {
		_spec.SetField(wine.FieldDrinkingWindowEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrinkingWindowEnd(); ok {
		_spec.AddField(wine.FieldDrinkingWindowEnd, field.TypeInt, value)
	}
	if _u.mutation.DrinkingWindowEndCleared() {
		_spec.ClearField(wine.FieldDrinkingWindowEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.PeakMaturityYear(); ok {
		_spec.SetField(wine.FieldPeakMaturityYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPeakMaturityYear(); ok {
		_spec.AddField(wine.FieldPeakMaturityYear, field.TypeInt, value)
	}
	if _u.mutation.PeakMaturityYearCleared() {
		_spec.ClearField(wine.FieldPeakMaturityYear, field.TypeInt)
	}
	if value, ok := _u.mutation.TastingSummary(); ok {
		_spec.SetField(wine.FieldTastingSummary, field.TypeString, value)
	}
	if _u.mutation.TastingSummaryCleared() {
		_spec.ClearField(wine.FieldTastingSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FoodPairings(); ok {
		_spec.SetField(wine.FieldFoodPairings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFoodPairings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wine.FieldFoodPairings, value)
		})
	}
	if _u.mutation.FoodPairingsCleared() {
		_spec.ClearField(wine.FieldFoodPairings, field.TypeJSON)
	}
	if value, ok := _u.mutation.SystembolagetID(); ok {
		_spec.SetField(wine.FieldSystembolagetID, field.TypeString, value)
	}
	if _u.mutation.SystembolagetIDCleared() {
		_spec.ClearField(wine.FieldSystembolagetID, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(wine.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(wine.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(wine.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(wine.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(wine.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WineUpdateOne is the builder for updating a single Wine entity.
type WineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WineMutation
}

// SetName sets the "name" field.
func (_u *WineUpdateOne) SetName(v string) *WineUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableName(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProducer sets the "producer" field.
func (_u *WineUpdateOne) SetProducer(v string) *WineUpdateOne {
	_u.mutation.SetProducer(v)
	return _u
}

// SetNillableProducer sets the "producer" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableProducer(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetProducer(*v)
	}
	return _u
}

// SetVintage sets the "vintage" field.
func (_u *WineUpdateOne) SetVintage(v int) *WineUpdateOne {
	_u.mutation.ResetVintage()
	_u.mutation.SetVintage(v)
	return _u
}

// SetNillableVintage sets the "vintage" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableVintage(v *int) *WineUpdateOne {
	if v != nil {
		_u.SetVintage(*v)
	}
	return _u
}

// AddVintage adds value to the "vintage" field.
func (_u *WineUpdateOne) AddVintage(v int) *WineUpdateOne {
	_u.mutation.AddVintage(v)
	return _u
}

// ClearVintage clears the value of the "vintage" field.
func (_u *WineUpdateOne) ClearVintage() *WineUpdateOne {
	_u.mutation.ClearVintage()
	return _u
}

// SetWineType sets the "wine_type" field.
func (_u *WineUpdateOne) SetWineType(v string) *WineUpdateOne {
	_u.mutation.SetWineType(v)
	return _u
}

// SetNillableWineType sets the "wine_type" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableWineType(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetWineType(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *WineUpdateOne) SetCountry(v string) *WineUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableCountry(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *WineUpdateOne) ClearCountry() *WineUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetRegion sets the "region" field.
func (_u *WineUpdateOne) SetRegion(v string) *WineUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableRegion(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *WineUpdateOne) ClearRegion() *WineUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetSubRegion sets the "sub_region" field.
func (_u *WineUpdateOne) SetSubRegion(v string) *WineUpdateOne {
	_u.mutation.SetSubRegion(v)
	return _u
}

// SetNillableSubRegion sets the "sub_region" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableSubRegion(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetSubRegion(*v)
	}
	return _u
}

// ClearSubRegion clears the value of the "sub_region" field.
func (_u *WineUpdateOne) ClearSubRegion() *WineUpdateOne {
	_u.mutation.ClearSubRegion()
	return _u
}

// SetAppellation sets the "appellation" field.
func (_u *WineUpdateOne) SetAppellation(v string) *WineUpdateOne {
	_u.mutation.SetAppellation(v)
	return _u
}

// SetNillableAppellation sets the "appellation" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableAppellation(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetAppellation(*v)
	}
	return _u
}

// ClearAppellation clears the value of the "appellation" field.
func (_u *WineUpdateOne) ClearAppellation() *WineUpdateOne {
	_u.mutation.ClearAppellation()
	return _u
}

// SetGrapeVarieties sets the "grape_varieties" field.
func (_u *WineUpdateOne) SetGrapeVarieties(v []string) *WineUpdateOne {
	_u.mutation.SetGrapeVarieties(v)
	return _u
}

// AppendGrapeVarieties appends value to the "grape_varieties" field.
func (_u *WineUpdateOne) AppendGrapeVarieties(v []string) *WineUpdateOne {
	_u.mutation.AppendGrapeVarieties(v)
	return _u
}

// ClearGrapeVarieties clears the value of the "grape_varieties" field.
func (_u *WineUpdateOne) ClearGrapeVarieties() *WineUpdateOne {
	_u.mutation.ClearGrapeVarieties()
	return _u
}

// SetAlcoholContent sets the "alcohol_content" field.
func (_u *WineUpdateOne) SetAlcoholContent(v float32) *WineUpdateOne {
	_u.mutation.ResetAlcoholContent()
	_u.mutation.SetAlcoholContent(v)
	return _u
}

// SetNillableAlcoholContent sets the "alcohol_content" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableAlcoholContent(v *float32) *WineUpdateOne {
	if v != nil {
		_u.SetAlcoholContent(*v)
	}
	return _u
}

// AddAlcoholContent adds value to the "alcohol_content" field.
func (_u *WineUpdateOne) AddAlcoholContent(v float32) *WineUpdateOne {
	_u.mutation.AddAlcoholContent(v)
	return _u
}

// ClearAlcoholContent clears the value of the "alcohol_content" field.
func (_u *WineUpdateOne) ClearAlcoholContent() *WineUpdateOne {
	_u.mutation.ClearAlcoholContent()
	return _u
}

// SetBottleSize sets the "bottle_size" field.
func (_u *WineUpdateOne) SetBottleSize(v string) *WineUpdateOne {
	_u.mutation.SetBottleSize(v)
	return _u
}

// SetNillableBottleSize sets the "bottle_size" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableBottleSize(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetBottleSize(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *WineUpdateOne) SetQuantity(v int) *WineUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableQuantity(v *int) *WineUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *WineUpdateOne) AddQuantity(v int) *WineUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPurchasePrice sets the "purchase_price" field.
func (_u *WineUpdateOne) SetPurchasePrice(v float64) *WineUpdateOne {
	_u.mutation.ResetPurchasePrice()
	_u.mutation.SetPurchasePrice(v)
	return _u
}

// SetNillablePurchasePrice sets the "purchase_price" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillablePurchasePrice(v *float64) *WineUpdateOne {
	if v != nil {
		_u.SetPurchasePrice(*v)
	}
	return _u
}

// AddPurchasePrice adds value to the "purchase_price" field.
func (_u *WineUpdateOne) AddPurchasePrice(v float64) *WineUpdateOne {
	_u.mutation.AddPurchasePrice(v)
	return _u
}

// ClearPurchasePrice clears the value of the "purchase_price" field.
func (_u *WineUpdateOne) ClearPurchasePrice() *WineUpdateOne {
	_u.mutation.ClearPurchasePrice()
	return _u
}

// SetPurchaseDate sets the "purchase_date" field.
func (_u *WineUpdateOne) SetPurchaseDate(v time.Time) *WineUpdateOne {
	_u.mutation.SetPurchaseDate(v)
	return _u
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillablePurchaseDate(v *time.Time) *WineUpdateOne {
	if v != nil {
		_u.SetPurchaseDate(*v)
	}
	return _u
}

// ClearPurchaseDate clears the value of the "purchase_date" field.
func (_u *WineUpdateOne) ClearPurchaseDate() *WineUpdateOne {
	_u.mutation.ClearPurchaseDate()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *WineUpdateOne) SetCurrency(v string) *WineUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableCurrency(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPersonalRating sets the "personal_rating" field.
func (_u *WineUpdateOne) SetPersonalRating(v float32) *WineUpdateOne {
	_u.mutation.ResetPersonalRating()
	_u.mutation.SetPersonalRating(v)
	return _u
}

// SetNillablePersonalRating sets the "personal_rating" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillablePersonalRating(v *float32) *WineUpdateOne {
	if v != nil {
		_u.SetPersonalRating(*v)
	}
	return _u
}

// AddPersonalRating adds value to the "personal_rating" field.
func (_u *WineUpdateOne) AddPersonalRating(v float32) *WineUpdateOne {
	_u.mutation.AddPersonalRating(v)
	return _u
}

// ClearPersonalRating clears the value of the "personal_rating" field.
func (_u *WineUpdateOne) ClearPersonalRating() *WineUpdateOne {
	_u.mutation.ClearPersonalRating()
	return _u
}

// SetDrinkingWindowStart sets the "drinking_window_start" field.
func (_u *WineUpdateOne) SetDrinkingWindowStart(v int) *WineUpdateOne {
	_u.mutation.ResetDrinkingWindowStart()
	_u.mutation.SetDrinkingWindowStart(v)
	return _u
}

// SetNillableDrinkingWindowStart sets the "drinking_window_start" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableDrinkingWindowStart(v *int) *WineUpdateOne {
	if v != nil {
		_u.SetDrinkingWindowStart(*v)
	}
	return _u
}

// AddDrinkingWindowStart adds value to the "drinking_window_start" field.
func (_u *WineUpdateOne) AddDrinkingWindowStart(v int) *WineUpdateOne {
	_u.mutation.AddDrinkingWindowStart(v)
	return _u
}

// ClearDrinkingWindowStart clears the value of the "drinking_window_start" field.
func (_u *WineUpdateOne) ClearDrinkingWindowStart() *WineUpdateOne {
	_u.mutation.ClearDrinkingWindowStart()
	return _u
}

// SetDrinkingWindowEnd sets the "drinking_window_end" field.
func (_u *WineUpdateOne) SetDrinkingWindowEnd(v int) *WineUpdateOne {
	_u.mutation.ResetDrinkingWindowEnd()
	_u.mutation.SetDrinkingWindowEnd(v)
	return _u
}

// SetNillableDrinkingWindowEnd sets the "drinking_window_end" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableDrinkingWindowEnd(v *int) *WineUpdateOne {
	if v != nil {
		_u.SetDrinkingWindowEnd(*v)
	}
	return _u
}

// AddDrinkingWindowEnd adds value to the "drinking_window_end" field.
func (_u *WineUpdateOne) AddDrinkingWindowEnd(v int) *WineUpdateOne {
	_u.mutation.AddDrinkingWindowEnd(v)
	return _u
}

// ClearDrinkingWindowEnd clears the value of the "drinking_window_end" field.
func (_u *WineUpdateOne) ClearDrinkingWindowEnd() *WineUpdateOne {
	_u.mutation.ClearDrinkingWindowEnd()
	return _u
}

// SetPeakMaturityYear sets the "peak_maturity_year" field.
func (_u *WineUpdateOne) SetPeakMaturityYear(v int) *WineUpdateOne {
	_u.mutation.ResetPeakMaturityYear()
	_u.mutation.SetPeakMaturityYear(v)
	return _u
}

// SetNillablePeakMaturityYear sets the "peak_maturity_year" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillablePeakMaturityYear(v *int) *WineUpdateOne {
	if v != nil {
		_u.SetPeakMaturityYear(*v)
	}
	return _u
}

// AddPeakMaturityYear adds value to the "peak_maturity_year" field.
func (_u *WineUpdateOne) AddPeakMaturityYear(v int) *WineUpdateOne {
	_u.mutation.AddPeakMaturityYear(v)
	return _u
}

// ClearPeakMaturityYear clears the value of the "peak_maturity_year" field.
func (_u *WineUpdateOne) ClearPeakMaturityYear() *WineUpdateOne {
	_u.mutation.ClearPeakMaturityYear()
	return _u
}

// SetTastingSummary sets the "tasting_summary" field.
func (_u *WineUpdateOne) SetTastingSummary(v string) *WineUpdateOne {
	_u.mutation.SetTastingSummary(v)
	return _u
}

// SetNillableTastingSummary sets the "tasting_summary" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableTastingSummary(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetTastingSummary(*v)
	}
	return _u
}

// ClearTastingSummary clears the value of the "tasting_summary" field.
func (_u *WineUpdateOne) ClearTastingSummary() *WineUpdateOne {
	_u.mutation.ClearTastingSummary()
	return _u
}

// SetFoodPairings sets the "food_pairings" field.
func (_u *WineUpdateOne) SetFoodPairings(v []string) *WineUpdateOne {
	_u.mutation.SetFoodPairings(v)
	return _u
}

// AppendFoodPairings appends value to the "food_pairings" field.
func (_u *WineUpdateOne) AppendFoodPairings(v []string) *WineUpdateOne {
	_u.mutation.AppendFoodPairings(v)
	return _u
}

// ClearFoodPairings clears the value of the "food_pairings" field.
func (_u *WineUpdateOne) ClearFoodPairings() *WineUpdateOne {
	_u.mutation.ClearFoodPairings()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *WineUpdateOne) SetLocationID(v uuid.UUID) *WineUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableLocationID(v *uuid.UUID) *WineUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// ClearLocationID clears the value of the "location_id" field.
func (_u *WineUpdateOne) ClearLocationID() *WineUpdateOne {
	_u.mutation.ClearLocationID()
	return _u
}

// SetSystembolagetID sets the "systembolaget_id" field.
func (_u *WineUpdateOne) SetSystembolagetID(v string) *WineUpdateOne {
	_u.mutation.SetSystembolagetID(v)
	return _u
}

// SetNillableSystembolagetID sets the "systembolaget_id" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableSystembolagetID(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetSystembolagetID(*v)
	}
	return _u
}

// ClearSystembolagetID clears the value of the "systembolaget_id" field.
func (_u *WineUpdateOne) ClearSystembolagetID() *WineUpdateOne {
	_u.mutation.ClearSystembolagetID()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *WineUpdateOne) SetBarcode(v string) *WineUpdateOne {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableBarcode(v *string) *WineUpdateOne {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *WineUpdateOne) ClearBarcode() *WineUpdateOne {
	_u.mutation.ClearBarcode()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *WineUpdateOne) SetIsDeleted(v bool) *WineUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableIsDeleted(v *bool) *WineUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WineUpdateOne) SetCreatedAt(v time.Time) *WineUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WineUpdateOne) SetNillableCreatedAt(v *time.Time) *WineUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WineUpdateOne) SetUpdatedAt(v time.Time) *WineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocation sets the "location" edge to the StorageLocation entity.
func (_u *WineUpdateOne) SetLocation(v *StorageLocation) *WineUpdateOne {
	return _u.SetLocationID(v.ID)
}

// AddNoteIDs adds the "notes" edge to the TastingNote entity by IDs.
func (_u *WineUpdateOne) AddNoteIDs(ids ...uuid.UUID) *WineUpdateOne {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the TastingNote entity.
func (_u *WineUpdateOne) AddNotes(v ...*TastingNote) *WineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by IDs.
func (_u *WineUpdateOne) AddJobIDs(ids ...uuid.UUID) *WineUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ScanJob entity.
func (_u *WineUpdateOne) AddJobs(v ...*ScanJob) *WineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the WineMutation object of the builder.
func (_u *WineUpdateOne) Mutation() *WineMutation {
	return _u.mutation
}

// ClearLocation clears the "location" edge to the StorageLocation entity.
func (_u *WineUpdateOne) ClearLocation() *WineUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// ClearNotes clears all "notes" edges to the TastingNote entity.
func (_u *WineUpdateOne) ClearNotes() *WineUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to TastingNote entities by IDs.
func (_u *WineUpdateOne) RemoveNoteIDs(ids ...uuid.UUID) *WineUpdateOne {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to TastingNote entities.
func (_u *WineUpdateOne) RemoveNotes(v ...*TastingNote) *WineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ScanJob entity.
func (_u *WineUpdateOne) ClearJobs() *WineUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ScanJob entities by IDs.
func (_u *WineUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *WineUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ScanJob entities.
func (_u *WineUpdateOne) RemoveJobs(v ...*ScanJob) *WineUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the WineUpdate builder.
func (_u *WineUpdateOne) Where(ps ...predicate.Wine) *WineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WineUpdateOne) Select(field string, fields ...string) *WineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Wine entity.
func (_u *WineUpdateOne) Save(ctx context.Context) (*Wine, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WineUpdateOne) SaveX(ctx context.Context) *Wine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := wine.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WineUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := wine.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Wine.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Producer(); ok {
		if err := wine.ProducerValidator(v); err != nil {
			return &ValidationError{Name: "producer", err: fmt.Errorf(`ent: validator failed for field "Wine.producer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WineType(); ok {
		if err := wine.WineTypeValidator(v); err != nil {
			return &ValidationError{Name: "wine_type", err: fmt.Errorf(`ent: validator failed for field "Wine.wine_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := wine.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Wine.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := wine.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Wine.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *WineUpdateOne) sqlSave(ctx context.Context) (_node *Wine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wine.Table, wine.Columns, sqlgraph.NewFieldSpec(wine.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Wine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wine.FieldID)
		for _, f := range fields {
			if !wine.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wine.FieldID {
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
		_spec.SetField(wine.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Producer(); ok {
		_spec.SetField(wine.FieldProducer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vintage(); ok {
		_spec.SetField(wine.FieldVintage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVintage(); ok {
		_spec.AddField(wine.FieldVintage, field.TypeInt, value)
	}
	if _u.mutation.VintageCleared() {
		_spec.ClearField(wine.FieldVintage, field.TypeInt)
	}
	if value, ok := _u.mutation.WineType(); ok {
		_spec.SetField(wine.FieldWineType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(wine.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(wine.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(wine.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(wine.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.SubRegion(); ok {
		_spec.SetField(wine.FieldSubRegion, field.TypeString, value)
	}
	if _u.mutation.SubRegionCleared() {
		_spec.ClearField(wine.FieldSubRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Appellation(); ok {
		_spec.SetField(wine.FieldAppellation, field.TypeString, value)
	}
	if _u.mutation.AppellationCleared() {
		_spec.ClearField(wine.FieldAppellation, field.TypeString)
	}
	if value, ok := _u.mutation.GrapeVarieties(); ok {
		_spec.SetField(wine.FieldGrapeVarieties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGrapeVarieties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wine.FieldGrapeVarieties, value)
		})
	}
	if _u.mutation.GrapeVarietiesCleared() {
		_spec.ClearField(wine.FieldGrapeVarieties, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlcoholContent(); ok {
		_spec.SetField(wine.FieldAlcoholContent, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedAlcoholContent(); ok {
		_spec.AddField(wine.FieldAlcoholContent, field.TypeFloat32, value)
	}
	if _u.mutation.AlcoholContentCleared() {
		_spec.ClearField(wine.FieldAlcoholContent, field.TypeFloat32)
	}
	if value, ok := _u.mutation.BottleSize(); ok {
		_spec.SetField(wine.FieldBottleSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(wine.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(wine.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PurchasePrice(); ok {
		_spec.SetField(wine.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPurchasePrice(); ok {
		_spec.AddField(wine.FieldPurchasePrice, field.TypeFloat64, value)
	}
	if _u.mutation.PurchasePriceCleared() {
		_spec.ClearField(wine.FieldPurchasePrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PurchaseDate(); ok {
		_spec.SetField(wine.FieldPurchaseDate, field.TypeTime, value)
	}
	if _u.mutation.PurchaseDateCleared() {
		_spec.ClearField(wine.FieldPurchaseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(wine.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalRating(); ok {
		_spec.SetField(wine.FieldPersonalRating, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedPersonalRating(); ok {
		_spec.AddField(wine.FieldPersonalRating, field.TypeFloat32, value)
	}
	if _u.mutation.PersonalRatingCleared() {
		_spec.ClearField(wine.FieldPersonalRating, field.TypeFloat32)
	}
	if value, ok := _u.mutation.DrinkingWindowStart(); ok {
		_spec.SetField(wine.FieldDrinkingWindowStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrinkingWindowStart(); ok {
		_spec.AddField(wine.FieldDrinkingWindowStart, field.TypeInt, value)
	}
	if _u.mutation.DrinkingWindowStartCleared() {
		_spec.ClearField(wine.FieldDrinkingWindowStart, field.TypeInt)
	}
	if value, ok := _u.mutation.DrinkingWindowEnd(); ok {
		_spec.SetField(wine.FieldDrinkingWindowEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDrinkingWindowEnd(); ok {
		_spec.AddField(wine.FieldDrinkingWindowEnd, field.TypeInt, value)
	}
	if _u.mutation.DrinkingWindowEndCleared() {
		_spec.ClearField(wine.FieldDrinkingWindowEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.PeakMaturityYear(); ok {
		_spec.SetField(wine.FieldPeakMaturityYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPeakMaturityYear(); ok {
		_spec.AddField(wine.FieldPeakMaturityYear, field.TypeInt, value)
	}
	if _u.mutation.PeakMaturityYearCleared() {
		_spec.ClearField(wine.FieldPeakMaturityYear, field.TypeInt)
	}
	if value, ok := _u.mutation.TastingSummary(); ok {
		_spec.SetField(wine.FieldTastingSummary, field.TypeString, value)
	}
	if _u.mutation.TastingSummaryCleared() {
		_spec.ClearField(wine.FieldTastingSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FoodPairings(); ok {
		_spec.SetField(wine.FieldFoodPairings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFoodPairings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, wine.FieldFoodPairings, value)
		})
	}
	if _u.mutation.FoodPairingsCleared() {
		_spec.ClearField(wine.FieldFoodPairings, field.TypeJSON)
	}
	if value, ok := _u.mutation.SystembolagetID(); ok {
		_spec.SetField(wine.FieldSystembolagetID, field.TypeString, value)
	}
	if _u.mutation.SystembolagetIDCleared() {
		_spec.ClearField(wine.FieldSystembolagetID, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(wine.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(wine.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(wine.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(wine.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(wine.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LocationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LocationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Wine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wine.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
