// Code generated by ent, DO NOT EDIT.

package wine

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldName, v))
}

// Producer applies equality check predicate on the "producer" field. It's identical to ProducerEQ.
func Producer(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldProducer, v))
}

// Vintage applies equality check predicate on the "vintage" field. It's identical to VintageEQ.
func Vintage(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldVintage, v))
}

// WineType applies equality check predicate on the "wine_type" field. It's identical to WineTypeEQ.
func WineType(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldWineType, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldCountry, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldRegion, v))
}

// SubRegion applies equality check predicate on the "sub_region" field. It's identical to SubRegionEQ.
func SubRegion(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldSubRegion, v))
}

// Appellation applies equality check predicate on the "appellation" field. It's identical to AppellationEQ.
func Appellation(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldAppellation, v))
}

// AlcoholContent applies equality check predicate on the "alcohol_content" field. It's identical to AlcoholContentEQ.
func AlcoholContent(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldAlcoholContent, v))
}

// BottleSize applies equality check predicate on the "bottle_size" field. It's identical to BottleSizeEQ.
func BottleSize(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldBottleSize, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldQuantity, v))
}

// PurchasePrice applies equality check predicate on the "purchase_price" field. It's identical to PurchasePriceEQ.
func PurchasePrice(v float64) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPurchasePrice, v))
}

// PurchaseDate applies equality check predicate on the "purchase_date" field. It's identical to PurchaseDateEQ.
func PurchaseDate(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPurchaseDate, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldCurrency, v))
}

// PersonalRating applies equality check predicate on the "personal_rating" field. It's identical to PersonalRatingEQ.
func PersonalRating(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPersonalRating, v))
}

// DrinkingWindowStart applies equality check predicate on the "drinking_window_start" field. It's identical to DrinkingWindowStartEQ.
func DrinkingWindowStart(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldDrinkingWindowStart, v))
}

// DrinkingWindowEnd applies equality check predicate on the "drinking_window_end" field. It's identical to DrinkingWindowEndEQ.
func DrinkingWindowEnd(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldDrinkingWindowEnd, v))
}

// PeakMaturityYear applies equality check predicate on the "peak_maturity_year" field. It's identical to PeakMaturityYearEQ.
func PeakMaturityYear(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPeakMaturityYear, v))
}

// TastingSummary applies equality check predicate on the "tasting_summary" field. It's identical to TastingSummaryEQ.
func TastingSummary(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldTastingSummary, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldLocationID, v))
}

// SystembolagetID applies equality check predicate on the "systembolaget_id" field. It's identical to SystembolagetIDEQ.
func SystembolagetID(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldSystembolagetID, v))
}

// Barcode applies equality check predicate on the "barcode" field. It's identical to BarcodeEQ.
func Barcode(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldBarcode, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldName, v))
}

// ProducerEQ applies the EQ predicate on the "producer" field.
func ProducerEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldProducer, v))
}

// ProducerNEQ applies the NEQ predicate on the "producer" field.
func ProducerNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldProducer, v))
}

// ProducerIn applies the In predicate on the "producer" field.
func ProducerIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldProducer, vs...))
}

// ProducerNotIn applies the NotIn predicate on the "producer" field.
func ProducerNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldProducer, vs...))
}

// ProducerGT applies the GT predicate on the "producer" field.
func ProducerGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldProducer, v))
}

// ProducerGTE applies the GTE predicate on the "producer" field.
func ProducerGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldProducer, v))
}

// ProducerLT applies the LT predicate on the "producer" field.
func ProducerLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldProducer, v))
}

// ProducerLTE applies the LTE predicate on the "producer" field.
func ProducerLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldProducer, v))
}

// ProducerContains applies the Contains predicate on the "producer" field.
func ProducerContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldProducer, v))
}

// ProducerHasPrefix applies the HasPrefix predicate on the "producer" field.
func ProducerHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldProducer, v))
}

// ProducerHasSuffix applies the HasSuffix predicate on the "producer" field.
func ProducerHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldProducer, v))
}

// ProducerEqualFold applies the EqualFold predicate on the "producer" field.
func ProducerEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldProducer, v))
}

// ProducerContainsFold applies the ContainsFold predicate on the "producer" field.
func ProducerContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldProducer, v))
}

// VintageEQ applies the EQ predicate on the "vintage" field.
func VintageEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldVintage, v))
}

// VintageNEQ applies the NEQ predicate on the "vintage" field.
func VintageNEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldVintage, v))
}

// VintageIn applies the In predicate on the "vintage" field.
func VintageIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldVintage, vs...))
}

// VintageNotIn applies the NotIn predicate on the "vintage" field.
func VintageNotIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldVintage, vs...))
}

// VintageGT applies the GT predicate on the "vintage" field.
func VintageGT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldVintage, v))
}

// VintageGTE applies the GTE predicate on the "vintage" field.
func VintageGTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldVintage, v))
}

// VintageLT applies the LT predicate on the "vintage" field.
func VintageLT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldVintage, v))
}

// VintageLTE applies the LTE predicate on the "vintage" field.
func VintageLTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldVintage, v))
}

// VintageIsNil applies the IsNil predicate on the "vintage" field.
func VintageIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldVintage))
}

// VintageNotNil applies the NotNil predicate on the "vintage" field.
func VintageNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldVintage))
}

// WineTypeEQ applies the EQ predicate on the "wine_type" field.
func WineTypeEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldWineType, v))
}

// WineTypeNEQ applies the NEQ predicate on the "wine_type" field.
func WineTypeNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldWineType, v))
}

// WineTypeIn applies the In predicate on the "wine_type" field.
func WineTypeIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldWineType, vs...))
}

// WineTypeNotIn applies the NotIn predicate on the "wine_type" field.
func WineTypeNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldWineType, vs...))
}

// WineTypeGT applies the GT predicate on the "wine_type" field.
func WineTypeGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldWineType, v))
}

// WineTypeGTE applies the GTE predicate on the "wine_type" field.
func WineTypeGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldWineType, v))
}

// WineTypeLT applies the LT predicate on the "wine_type" field.
func WineTypeLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldWineType, v))
}

// WineTypeLTE applies the LTE predicate on the "wine_type" field.
func WineTypeLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldWineType, v))
}

// WineTypeContains applies the Contains predicate on the "wine_type" field.
func WineTypeContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldWineType, v))
}

// WineTypeHasPrefix applies the HasPrefix predicate on the "wine_type" field.
func WineTypeHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldWineType, v))
}

// WineTypeHasSuffix applies the HasSuffix predicate on the "wine_type" field.
func WineTypeHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldWineType, v))
}

// WineTypeEqualFold applies the EqualFold predicate on the "wine_type" field.
func WineTypeEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldWineType, v))
}

// WineTypeContainsFold applies the ContainsFold predicate on the "wine_type" field.
func WineTypeContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldWineType, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldCountry, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionIsNil applies the IsNil predicate on the "region" field.
func RegionIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldRegion))
}

// RegionNotNil applies the NotNil predicate on the "region" field.
func RegionNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldRegion))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldRegion, v))
}

// SubRegionEQ applies the EQ predicate on the "sub_region" field.
func SubRegionEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldSubRegion, v))
}

// SubRegionNEQ applies the NEQ predicate on the "sub_region" field.
func SubRegionNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldSubRegion, v))
}

// SubRegionIn applies the In predicate on the "sub_region" field.
func SubRegionIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldSubRegion, vs...))
}

// SubRegionNotIn applies the NotIn predicate on the "sub_region" field.
func SubRegionNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldSubRegion, vs...))
}

// SubRegionGT applies the GT predicate on the "sub_region" field.
func SubRegionGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldSubRegion, v))
}

// SubRegionGTE applies the GTE predicate on the "sub_region" field.
func SubRegionGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldSubRegion, v))
}

// SubRegionLT applies the LT predicate on the "sub_region" field.
func SubRegionLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldSubRegion, v))
}

// SubRegionLTE applies the LTE predicate on the "sub_region" field.
func SubRegionLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldSubRegion, v))
}

// SubRegionContains applies the Contains predicate on the "sub_region" field.
func SubRegionContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldSubRegion, v))
}

// SubRegionHasPrefix applies the HasPrefix predicate on the "sub_region" field.
func SubRegionHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldSubRegion, v))
}

// SubRegionHasSuffix applies the HasSuffix predicate on the "sub_region" field.
func SubRegionHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldSubRegion, v))
}

// SubRegionIsNil applies the IsNil predicate on the "sub_region" field.
func SubRegionIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldSubRegion))
}

// SubRegionNotNil applies the NotNil predicate on the "sub_region" field.
func SubRegionNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldSubRegion))
}

// SubRegionEqualFold applies the EqualFold predicate on the "sub_region" field.
func SubRegionEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldSubRegion, v))
}

// SubRegionContainsFold applies the ContainsFold predicate on the "sub_region" field.
func SubRegionContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldSubRegion, v))
}

// AppellationEQ applies the EQ predicate on the "appellation" field.
func AppellationEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldAppellation, v))
}

// AppellationNEQ applies the NEQ predicate on the "appellation" field.
func AppellationNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldAppellation, v))
}

// AppellationIn applies the In predicate on the "appellation" field.
func AppellationIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldAppellation, vs...))
}

// AppellationNotIn applies the NotIn predicate on the "appellation" field.
func AppellationNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldAppellation, vs...))
}

// AppellationGT applies the GT predicate on the "appellation" field.
func AppellationGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldAppellation, v))
}

// AppellationGTE applies the GTE predicate on the "appellation" field.
func AppellationGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldAppellation, v))
}

// AppellationLT applies the LT predicate on the "appellation" field.
func AppellationLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldAppellation, v))
}

// AppellationLTE applies the LTE predicate on the "appellation" field.
func AppellationLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldAppellation, v))
}

// AppellationContains applies the Contains predicate on the "appellation" field.
func AppellationContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldAppellation, v))
}

// AppellationHasPrefix applies the HasPrefix predicate on the "appellation" field.
func AppellationHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldAppellation, v))
}

// AppellationHasSuffix applies the HasSuffix predicate on the "appellation" field.
func AppellationHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldAppellation, v))
}

// AppellationIsNil applies the IsNil predicate on the "appellation" field.
func AppellationIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldAppellation))
}

// AppellationNotNil applies the NotNil predicate on the "appellation" field.
func AppellationNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldAppellation))
}

// AppellationEqualFold applies the EqualFold predicate on the "appellation" field.
func AppellationEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldAppellation, v))
}

// AppellationContainsFold applies the ContainsFold predicate on the "appellation" field.
func AppellationContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldAppellation, v))
}

// GrapeVarietiesIsNil applies the IsNil predicate on the "grape_varieties" field.
func GrapeVarietiesIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldGrapeVarieties))
}

// GrapeVarietiesNotNil applies the NotNil predicate on the "grape_varieties" field.
func GrapeVarietiesNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldGrapeVarieties))
}

// AlcoholContentEQ applies the EQ predicate on the "alcohol_content" field.
func AlcoholContentEQ(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldAlcoholContent, v))
}

// AlcoholContentNEQ applies the NEQ predicate on the "alcohol_content" field.
func AlcoholContentNEQ(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldAlcoholContent, v))
}

// AlcoholContentIn applies the In predicate on the "alcohol_content" field.
func AlcoholContentIn(vs ...float32) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldAlcoholContent, vs...))
}

// AlcoholContentNotIn applies the NotIn predicate on the "alcohol_content" field.
func AlcoholContentNotIn(vs ...float32) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldAlcoholContent, vs...))
}

// AlcoholContentGT applies the GT predicate on the "alcohol_content" field.
func AlcoholContentGT(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldAlcoholContent, v))
}

// AlcoholContentGTE applies the GTE predicate on the "alcohol_content" field.
func AlcoholContentGTE(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldAlcoholContent, v))
}

// AlcoholContentLT applies the LT predicate on the "alcohol_content" field.
func AlcoholContentLT(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldAlcoholContent, v))
}

// AlcoholContentLTE applies the LTE predicate on the "alcohol_content" field.
func AlcoholContentLTE(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldAlcoholContent, v))
}

// AlcoholContentIsNil applies the IsNil predicate on the "alcohol_content" field.
func AlcoholContentIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldAlcoholContent))
}

// AlcoholContentNotNil applies the NotNil predicate on the "alcohol_content" field.
func AlcoholContentNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldAlcoholContent))
}

// BottleSizeEQ applies the EQ predicate on the "bottle_size" field.
func BottleSizeEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldBottleSize, v))
}

// BottleSizeNEQ applies the NEQ predicate on the "bottle_size" field.
func BottleSizeNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldBottleSize, v))
}

// BottleSizeIn applies the In predicate on the "bottle_size" field.
func BottleSizeIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldBottleSize, vs...))
}

// BottleSizeNotIn applies the NotIn predicate on the "bottle_size" field.
func BottleSizeNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldBottleSize, vs...))
}

// BottleSizeGT applies the GT predicate on the "bottle_size" field.
func BottleSizeGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldBottleSize, v))
}

// BottleSizeGTE applies the GTE predicate on the "bottle_size" field.
func BottleSizeGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldBottleSize, v))
}

// BottleSizeLT applies the LT predicate on the "bottle_size" field.
func BottleSizeLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldBottleSize, v))
}

// BottleSizeLTE applies the LTE predicate on the "bottle_size" field.
func BottleSizeLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldBottleSize, v))
}

// BottleSizeContains applies the Contains predicate on the "bottle_size" field.
func BottleSizeContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldBottleSize, v))
}

// BottleSizeHasPrefix applies the HasPrefix predicate on the "bottle_size" field.
func BottleSizeHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldBottleSize, v))
}

// BottleSizeHasSuffix applies the HasSuffix predicate on the "bottle_size" field.
func BottleSizeHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldBottleSize, v))
}

// BottleSizeEqualFold applies the EqualFold predicate on the "bottle_size" field.
func BottleSizeEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldBottleSize, v))
}

// BottleSizeContainsFold applies the ContainsFold predicate on the "bottle_size" field.
func BottleSizeContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldBottleSize, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldQuantity, v))
}

// PurchasePriceEQ applies the EQ predicate on the "purchase_price" field.
func PurchasePriceEQ(v float64) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPurchasePrice, v))
}

// PurchasePriceNEQ applies the NEQ predicate on the "purchase_price" field.
func PurchasePriceNEQ(v float64) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldPurchasePrice, v))
}

// PurchasePriceIn applies the In predicate on the "purchase_price" field.
func PurchasePriceIn(vs ...float64) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldPurchasePrice, vs...))
}

// PurchasePriceNotIn applies the NotIn predicate on the "purchase_price" field.
func PurchasePriceNotIn(vs ...float64) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldPurchasePrice, vs...))
}

// PurchasePriceGT applies the GT predicate on the "purchase_price" field.
func PurchasePriceGT(v float64) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldPurchasePrice, v))
}

// PurchasePriceGTE applies the GTE predicate on the "purchase_price" field.
func PurchasePriceGTE(v float64) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldPurchasePrice, v))
}

// PurchasePriceLT applies the LT predicate on the "purchase_price" field.
func PurchasePriceLT(v float64) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldPurchasePrice, v))
}

// PurchasePriceLTE applies the LTE predicate on the "purchase_price" field.
func PurchasePriceLTE(v float64) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldPurchasePrice, v))
}

// PurchasePriceIsNil applies the IsNil predicate on the "purchase_price" field.
func PurchasePriceIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldPurchasePrice))
}

// PurchasePriceNotNil applies the NotNil predicate on the "purchase_price" field.
func PurchasePriceNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldPurchasePrice))
}

// PurchaseDateEQ applies the EQ predicate on the "purchase_date" field.
func PurchaseDateEQ(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPurchaseDate, v))
}

// PurchaseDateNEQ applies the NEQ predicate on the "purchase_date" field.
func PurchaseDateNEQ(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldPurchaseDate, v))
}

// PurchaseDateIn applies the In predicate on the "purchase_date" field.
func PurchaseDateIn(vs ...time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldPurchaseDate, vs...))
}

// PurchaseDateNotIn applies the NotIn predicate on the "purchase_date" field.
func PurchaseDateNotIn(vs ...time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldPurchaseDate, vs...))
}

// PurchaseDateGT applies the GT predicate on the "purchase_date" field.
func PurchaseDateGT(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldPurchaseDate, v))
}

// PurchaseDateGTE applies the GTE predicate on the "purchase_date" field.
func PurchaseDateGTE(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldPurchaseDate, v))
}

// PurchaseDateLT applies the LT predicate on the "purchase_date" field.
func PurchaseDateLT(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldPurchaseDate, v))
}

// PurchaseDateLTE applies the LTE predicate on the "purchase_date" field.
func PurchaseDateLTE(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldPurchaseDate, v))
}

// PurchaseDateIsNil applies the IsNil predicate on the "purchase_date" field.
func PurchaseDateIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldPurchaseDate))
}

// PurchaseDateNotNil applies the NotNil predicate on the "purchase_date" field.
func PurchaseDateNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldPurchaseDate))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldCurrency, v))
}

// PersonalRatingEQ applies the EQ predicate on the "personal_rating" field.
func PersonalRatingEQ(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPersonalRating, v))
}

// PersonalRatingNEQ applies the NEQ predicate on the "personal_rating" field.
func PersonalRatingNEQ(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldPersonalRating, v))
}

// PersonalRatingIn applies the In predicate on the "personal_rating" field.
func PersonalRatingIn(vs ...float32) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldPersonalRating, vs...))
}

// PersonalRatingNotIn applies the NotIn predicate on the "personal_rating" field.
func PersonalRatingNotIn(vs ...float32) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldPersonalRating, vs...))
}

// PersonalRatingGT applies the GT predicate on the "personal_rating" field.
func PersonalRatingGT(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldPersonalRating, v))
}

// PersonalRatingGTE applies the GTE predicate on the "personal_rating" field.
func PersonalRatingGTE(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldPersonalRating, v))
}

// PersonalRatingLT applies the LT predicate on the "personal_rating" field.
func PersonalRatingLT(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldPersonalRating, v))
}

// PersonalRatingLTE applies the LTE predicate on the "personal_rating" field.
func PersonalRatingLTE(v float32) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldPersonalRating, v))
}

// PersonalRatingIsNil applies the IsNil predicate on the "personal_rating" field.
func PersonalRatingIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldPersonalRating))
}

// PersonalRatingNotNil applies the NotNil predicate on the "personal_rating" field.
func PersonalRatingNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldPersonalRating))
}

// DrinkingWindowStartEQ applies the EQ predicate on the "drinking_window_start" field.
func DrinkingWindowStartEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldDrinkingWindowStart, v))
}

// DrinkingWindowStartNEQ applies the NEQ predicate on the "drinking_window_start" field.
func DrinkingWindowStartNEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldDrinkingWindowStart, v))
}

// DrinkingWindowStartIn applies the In predicate on the "drinking_window_start" field.
func DrinkingWindowStartIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldDrinkingWindowStart, vs...))
}

// DrinkingWindowStartNotIn applies the NotIn predicate on the "drinking_window_start" field.
func DrinkingWindowStartNotIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldDrinkingWindowStart, vs...))
}

// DrinkingWindowStartGT applies the GT predicate on the "drinking_window_start" field.
func DrinkingWindowStartGT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldDrinkingWindowStart, v))
}

// DrinkingWindowStartGTE applies the GTE predicate on the "drinking_window_start" field.
func DrinkingWindowStartGTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldDrinkingWindowStart, v))
}

// DrinkingWindowStartLT applies the LT predicate on the "drinking_window_start" field.
func DrinkingWindowStartLT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldDrinkingWindowStart, v))
}

// DrinkingWindowStartLTE applies the LTE predicate on the "drinking_window_start" field.
func DrinkingWindowStartLTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldDrinkingWindowStart, v))
}

// DrinkingWindowStartIsNil applies the IsNil predicate on the "drinking_window_start" field.
func DrinkingWindowStartIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldDrinkingWindowStart))
}

// DrinkingWindowStartNotNil applies the NotNil predicate on the "drinking_window_start" field.
func DrinkingWindowStartNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldDrinkingWindowStart))
}

// DrinkingWindowEndEQ applies the EQ predicate on the "drinking_window_end" field.
func DrinkingWindowEndEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldDrinkingWindowEnd, v))
}

// DrinkingWindowEndNEQ applies the NEQ predicate on the "drinking_window_end" field.
func DrinkingWindowEndNEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldDrinkingWindowEnd, v))
}

// DrinkingWindowEndIn applies the In predicate on the "drinking_window_end" field.
func DrinkingWindowEndIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldDrinkingWindowEnd, vs...))
}

// DrinkingWindowEndNotIn applies the NotIn predicate on the "drinking_window_end" field.
func DrinkingWindowEndNotIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldDrinkingWindowEnd, vs...))
}

// DrinkingWindowEndGT applies the GT predicate on the "drinking_window_end" field.
func DrinkingWindowEndGT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldDrinkingWindowEnd, v))
}

// DrinkingWindowEndGTE applies the GTE predicate on the "drinking_window_end" field.
func DrinkingWindowEndGTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldDrinkingWindowEnd, v))
}

// DrinkingWindowEndLT applies the LT predicate on the "drinking_window_end" field.
func DrinkingWindowEndLT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldDrinkingWindowEnd, v))
}

// DrinkingWindowEndLTE applies the LTE predicate on the "drinking_window_end" field.
func DrinkingWindowEndLTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldDrinkingWindowEnd, v))
}

// DrinkingWindowEndIsNil applies the IsNil predicate on the "drinking_window_end" field.
func DrinkingWindowEndIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldDrinkingWindowEnd))
}

// DrinkingWindowEndNotNil applies the NotNil predicate on the "drinking_window_end" field.
func DrinkingWindowEndNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldDrinkingWindowEnd))
}

// PeakMaturityYearEQ applies the EQ predicate on the "peak_maturity_year" field.
func PeakMaturityYearEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldPeakMaturityYear, v))
}

// PeakMaturityYearNEQ applies the NEQ predicate on the "peak_maturity_year" field.
func PeakMaturityYearNEQ(v int) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldPeakMaturityYear, v))
}

// PeakMaturityYearIn applies the In predicate on the "peak_maturity_year" field.
func PeakMaturityYearIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldPeakMaturityYear, vs...))
}

// PeakMaturityYearNotIn applies the NotIn predicate on the "peak_maturity_year" field.
func PeakMaturityYearNotIn(vs ...int) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldPeakMaturityYear, vs...))
}

// PeakMaturityYearGT applies the GT predicate on the "peak_maturity_year" field.
func PeakMaturityYearGT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldPeakMaturityYear, v))
}

// PeakMaturityYearGTE applies the GTE predicate on the "peak_maturity_year" field.
func PeakMaturityYearGTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldPeakMaturityYear, v))
}

// PeakMaturityYearLT applies the LT predicate on the "peak_maturity_year" field.
func PeakMaturityYearLT(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldPeakMaturityYear, v))
}

// PeakMaturityYearLTE applies the LTE predicate on the "peak_maturity_year" field.
func PeakMaturityYearLTE(v int) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldPeakMaturityYear, v))
}

// PeakMaturityYearIsNil applies the IsNil predicate on the "peak_maturity_year" field.
func PeakMaturityYearIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldPeakMaturityYear))
}

// PeakMaturityYearNotNil applies the NotNil predicate on the "peak_maturity_year" field.
func PeakMaturityYearNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldPeakMaturityYear))
}

// TastingSummaryEQ applies the EQ predicate on the "tasting_summary" field.
func TastingSummaryEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldTastingSummary, v))
}

// TastingSummaryNEQ applies the NEQ predicate on the "tasting_summary" field.
func TastingSummaryNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldTastingSummary, v))
}

// TastingSummaryIn applies the In predicate on the "tasting_summary" field.
func TastingSummaryIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldTastingSummary, vs...))
}

// TastingSummaryNotIn applies the NotIn predicate on the "tasting_summary" field.
func TastingSummaryNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldTastingSummary, vs...))
}

// TastingSummaryGT applies the GT predicate on the "tasting_summary" field.
func TastingSummaryGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldTastingSummary, v))
}

// TastingSummaryGTE applies the GTE predicate on the "tasting_summary" field.
func TastingSummaryGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldTastingSummary, v))
}

// TastingSummaryLT applies the LT predicate on the "tasting_summary" field.
func TastingSummaryLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldTastingSummary, v))
}

// TastingSummaryLTE applies the LTE predicate on the "tasting_summary" field.
func TastingSummaryLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldTastingSummary, v))
}

// TastingSummaryContains applies the Contains predicate on the "tasting_summary" field.
func TastingSummaryContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldTastingSummary, v))
}

// TastingSummaryHasPrefix applies the HasPrefix predicate on the "tasting_summary" field.
func TastingSummaryHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldTastingSummary, v))
}

// TastingSummaryHasSuffix applies the HasSuffix predicate on the "tasting_summary" field.
func TastingSummaryHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldTastingSummary, v))
}

// TastingSummaryIsNil applies the IsNil predicate on the "tasting_summary" field.
func TastingSummaryIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldTastingSummary))
}

// TastingSummaryNotNil applies the NotNil predicate on the "tasting_summary" field.
func TastingSummaryNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldTastingSummary))
}

// TastingSummaryEqualFold applies the EqualFold predicate on the "tasting_summary" field.
func TastingSummaryEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldTastingSummary, v))
}

// TastingSummaryContainsFold applies the ContainsFold predicate on the "tasting_summary" field.
func TastingSummaryContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldTastingSummary, v))
}

// FoodPairingsIsNil applies the IsNil predicate on the "food_pairings" field.
func FoodPairingsIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldFoodPairings))
}

// FoodPairingsNotNil applies the NotNil predicate on the "food_pairings" field.
func FoodPairingsNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldFoodPairings))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...uuid.UUID) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDIsNil applies the IsNil predicate on the "location_id" field.
func LocationIDIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldLocationID))
}

// LocationIDNotNil applies the NotNil predicate on the "location_id" field.
func LocationIDNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldLocationID))
}

// SystembolagetIDEQ applies the EQ predicate on the "systembolaget_id" field.
func SystembolagetIDEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldSystembolagetID, v))
}

// SystembolagetIDNEQ applies the NEQ predicate on the "systembolaget_id" field.
func SystembolagetIDNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldSystembolagetID, v))
}

// SystembolagetIDIn applies the In predicate on the "systembolaget_id" field.
func SystembolagetIDIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldSystembolagetID, vs...))
}

// SystembolagetIDNotIn applies the NotIn predicate on the "systembolaget_id" field.
func SystembolagetIDNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldSystembolagetID, vs...))
}

// SystembolagetIDGT applies the GT predicate on the "systembolaget_id" field.
func SystembolagetIDGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldSystembolagetID, v))
}

// SystembolagetIDGTE applies the GTE predicate on the "systembolaget_id" field.
func SystembolagetIDGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldSystembolagetID, v))
}

// SystembolagetIDLT applies the LT predicate on the "systembolaget_id" field.
func SystembolagetIDLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldSystembolagetID, v))
}

// SystembolagetIDLTE applies the LTE predicate on the "systembolaget_id" field.
func SystembolagetIDLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldSystembolagetID, v))
}

// SystembolagetIDContains applies the Contains predicate on the "systembolaget_id" field.
func SystembolagetIDContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldSystembolagetID, v))
}

// SystembolagetIDHasPrefix applies the HasPrefix predicate on the "systembolaget_id" field.
func SystembolagetIDHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldSystembolagetID, v))
}

// SystembolagetIDHasSuffix applies the HasSuffix predicate on the "systembolaget_id" field.
func SystembolagetIDHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldSystembolagetID, v))
}

// SystembolagetIDIsNil applies the IsNil predicate on the "systembolaget_id" field.
func SystembolagetIDIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldSystembolagetID))
}

// SystembolagetIDNotNil applies the NotNil predicate on the "systembolaget_id" field.
func SystembolagetIDNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldSystembolagetID))
}

// SystembolagetIDEqualFold applies the EqualFold predicate on the "systembolaget_id" field.
func SystembolagetIDEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldSystembolagetID, v))
}

// SystembolagetIDContainsFold applies the ContainsFold predicate on the "systembolaget_id" field.
func SystembolagetIDContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldSystembolagetID, v))
}

// BarcodeEQ applies the EQ predicate on the "barcode" field.
func BarcodeEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldBarcode, v))
}

// BarcodeNEQ applies the NEQ predicate on the "barcode" field.
func BarcodeNEQ(v string) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldBarcode, v))
}

// BarcodeIn applies the In predicate on the "barcode" field.
func BarcodeIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldBarcode, vs...))
}

// BarcodeNotIn applies the NotIn predicate on the "barcode" field.
func BarcodeNotIn(vs ...string) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldBarcode, vs...))
}

// BarcodeGT applies the GT predicate on the "barcode" field.
func BarcodeGT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldBarcode, v))
}

// BarcodeGTE applies the GTE predicate on the "barcode" field.
func BarcodeGTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldBarcode, v))
}

// BarcodeLT applies the LT predicate on the "barcode" field.
func BarcodeLT(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldBarcode, v))
}

// BarcodeLTE applies the LTE predicate on the "barcode" field.
func BarcodeLTE(v string) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldBarcode, v))
}

// BarcodeContains applies the Contains predicate on the "barcode" field.
func BarcodeContains(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContains(FieldBarcode, v))
}

// BarcodeHasPrefix applies the HasPrefix predicate on the "barcode" field.
func BarcodeHasPrefix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasPrefix(FieldBarcode, v))
}

// BarcodeHasSuffix applies the HasSuffix predicate on the "barcode" field.
func BarcodeHasSuffix(v string) predicate.Wine {
	return predicate.Wine(sql.FieldHasSuffix(FieldBarcode, v))
}

// BarcodeIsNil applies the IsNil predicate on the "barcode" field.
func BarcodeIsNil() predicate.Wine {
	return predicate.Wine(sql.FieldIsNull(FieldBarcode))
}

// BarcodeNotNil applies the NotNil predicate on the "barcode" field.
func BarcodeNotNil() predicate.Wine {
	return predicate.Wine(sql.FieldNotNull(FieldBarcode))
}

// BarcodeEqualFold applies the EqualFold predicate on the "barcode" field.
func BarcodeEqualFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldEqualFold(FieldBarcode, v))
}

// BarcodeContainsFold applies the ContainsFold predicate on the "barcode" field.
func BarcodeContainsFold(v string) predicate.Wine {
	return predicate.Wine(sql.FieldContainsFold(FieldBarcode, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Wine {
	return predicate.Wine(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLocation applies the HasEdge predicate on the "location" edge.
func HasLocation() predicate.Wine {
	return predicate.Wine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LocationTable, LocationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLocationWith applies the HasEdge predicate on the "location" edge with a given conditions (other predicates).
func HasLocationWith(preds ...predicate.StorageLocation) predicate.Wine {
	return predicate.Wine(func(s *sql.Selector) {
		step := newLocationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNotes applies the HasEdge predicate on the "notes" edge.
func HasNotes() predicate.Wine {
	return predicate.Wine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotesWith applies the HasEdge predicate on the "notes" edge with a given conditions (other predicates).
func HasNotesWith(preds ...predicate.TastingNote) predicate.Wine {
	return predicate.Wine(func(s *sql.Selector) {
		step := newNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Wine {
	return predicate.Wine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ScanJob) predicate.Wine {
	return predicate.Wine(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Wine) predicate.Wine {
	return predicate.Wine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Wine) predicate.Wine {
	return predicate.Wine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Wine) predicate.Wine {
	return predicate.Wine(sql.NotPredicates(p))
}
