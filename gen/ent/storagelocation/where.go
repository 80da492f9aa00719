// Code generated by ent, DO NOT EDIT.

package storagelocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldDescription, v))
}

// LocationType applies equality check predicate on the "location_type" field. It's identical to LocationTypeEQ.
func LocationType(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldLocationType, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldCapacity, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldTemperature, v))
}

// Humidity applies equality check predicate on the "humidity" field. It's identical to HumidityEQ.
func Humidity(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldHumidity, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldContainsFold(FieldDescription, v))
}

// LocationTypeEQ applies the EQ predicate on the "location_type" field.
func LocationTypeEQ(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldLocationType, v))
}

// LocationTypeNEQ applies the NEQ predicate on the "location_type" field.
func LocationTypeNEQ(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldLocationType, v))
}

// LocationTypeIn applies the In predicate on the "location_type" field.
func LocationTypeIn(vs ...string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldLocationType, vs...))
}

// LocationTypeNotIn applies the NotIn predicate on the "location_type" field.
func LocationTypeNotIn(vs ...string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldLocationType, vs...))
}

// LocationTypeGT applies the GT predicate on the "location_type" field.
func LocationTypeGT(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldLocationType, v))
}

// LocationTypeGTE applies the GTE predicate on the "location_type" field.
func LocationTypeGTE(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldLocationType, v))
}

// LocationTypeLT applies the LT predicate on the "location_type" field.
func LocationTypeLT(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldLocationType, v))
}

// LocationTypeLTE applies the LTE predicate on the "location_type" field.
func LocationTypeLTE(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldLocationType, v))
}

// LocationTypeContains applies the Contains predicate on the "location_type" field.
func LocationTypeContains(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldContains(FieldLocationType, v))
}

// LocationTypeHasPrefix applies the HasPrefix predicate on the "location_type" field.
func LocationTypeHasPrefix(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldHasPrefix(FieldLocationType, v))
}

// LocationTypeHasSuffix applies the HasSuffix predicate on the "location_type" field.
func LocationTypeHasSuffix(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldHasSuffix(FieldLocationType, v))
}

// LocationTypeEqualFold applies the EqualFold predicate on the "location_type" field.
func LocationTypeEqualFold(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEqualFold(FieldLocationType, v))
}

// LocationTypeContainsFold applies the ContainsFold predicate on the "location_type" field.
func LocationTypeContainsFold(v string) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldContainsFold(FieldLocationType, v))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldCapacity, v))
}

// CapacityIsNil applies the IsNil predicate on the "capacity" field.
func CapacityIsNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIsNull(FieldCapacity))
}

// CapacityNotNil applies the NotNil predicate on the "capacity" field.
func CapacityNotNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotNull(FieldCapacity))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotNull(FieldTemperature))
}

// HumidityEQ applies the EQ predicate on the "humidity" field.
func HumidityEQ(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldHumidity, v))
}

// HumidityNEQ applies the NEQ predicate on the "humidity" field.
func HumidityNEQ(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldHumidity, v))
}

// HumidityIn applies the In predicate on the "humidity" field.
func HumidityIn(vs ...float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldHumidity, vs...))
}

// HumidityNotIn applies the NotIn predicate on the "humidity" field.
func HumidityNotIn(vs ...float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldHumidity, vs...))
}

// HumidityGT applies the GT predicate on the "humidity" field.
func HumidityGT(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldHumidity, v))
}

// HumidityGTE applies the GTE predicate on the "humidity" field.
func HumidityGTE(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldHumidity, v))
}

// HumidityLT applies the LT predicate on the "humidity" field.
func HumidityLT(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldHumidity, v))
}

// HumidityLTE applies the LTE predicate on the "humidity" field.
func HumidityLTE(v float32) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldHumidity, v))
}

// HumidityIsNil applies the IsNil predicate on the "humidity" field.
func HumidityIsNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIsNull(FieldHumidity))
}

// HumidityNotNil applies the NotNil predicate on the "humidity" field.
func HumidityNotNil() predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotNull(FieldHumidity))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StorageLocation {
	return predicate.StorageLocation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWines applies the HasEdge predicate on the "wines" edge.
func HasWines() predicate.StorageLocation {
	return predicate.StorageLocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WinesTable, WinesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWinesWith applies the HasEdge predicate on the "wines" edge with a given conditions (other predicates).
func HasWinesWith(preds ...predicate.Wine) predicate.StorageLocation {
	return predicate.StorageLocation(func(s *sql.Selector) {
		step := newWinesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StorageLocation) predicate.StorageLocation {
	return predicate.StorageLocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StorageLocation) predicate.StorageLocation {
	return predicate.StorageLocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StorageLocation) predicate.StorageLocation {
	return predicate.StorageLocation(sql.NotPredicates(p))
}
