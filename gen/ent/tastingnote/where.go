// Code generated by ent, DO NOT EDIT.

package tastingnote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldID, id))
}

// WineID applies equality check predicate on the "wine_id" field. It's identical to WineIDEQ.
func WineID(v uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldWineID, v))
}

// TastingDate applies equality check predicate on the "tasting_date" field. It's identical to TastingDateEQ.
func TastingDate(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldTastingDate, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldLocation, v))
}

// Occasion applies equality check predicate on the "occasion" field. It's identical to OccasionEQ.
func Occasion(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldOccasion, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldColor, v))
}

// Aromas applies equality check predicate on the "aromas" field. It's identical to AromasEQ.
func Aromas(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldAromas, v))
}

// Palate applies equality check predicate on the "palate" field. It's identical to PalateEQ.
func Palate(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldPalate, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldScore, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldUpdatedAt, v))
}

// WineIDEQ applies the EQ predicate on the "wine_id" field.
func WineIDEQ(v uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldWineID, v))
}

// WineIDNEQ applies the NEQ predicate on the "wine_id" field.
func WineIDNEQ(v uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldWineID, v))
}

// WineIDIn applies the In predicate on the "wine_id" field.
func WineIDIn(vs ...uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldWineID, vs...))
}

// WineIDNotIn applies the NotIn predicate on the "wine_id" field.
func WineIDNotIn(vs ...uuid.UUID) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldWineID, vs...))
}

// TastingDateEQ applies the EQ predicate on the "tasting_date" field.
func TastingDateEQ(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldTastingDate, v))
}

// TastingDateNEQ applies the NEQ predicate on the "tasting_date" field.
func TastingDateNEQ(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldTastingDate, v))
}

// TastingDateIn applies the In predicate on the "tasting_date" field.
func TastingDateIn(vs ...time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldTastingDate, vs...))
}

// TastingDateNotIn applies the NotIn predicate on the "tasting_date" field.
func TastingDateNotIn(vs ...time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldTastingDate, vs...))
}

// TastingDateGT applies the GT predicate on the "tasting_date" field.
func TastingDateGT(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldTastingDate, v))
}

// TastingDateGTE applies the GTE predicate on the "tasting_date" field.
func TastingDateGTE(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldTastingDate, v))
}

// TastingDateLT applies the LT predicate on the "tasting_date" field.
func TastingDateLT(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldTastingDate, v))
}

// TastingDateLTE applies the LTE predicate on the "tasting_date" field.
func TastingDateLTE(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldTastingDate, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContainsFold(FieldLocation, v))
}

// OccasionEQ applies the EQ predicate on the "occasion" field.
func OccasionEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldOccasion, v))
}

// OccasionNEQ applies the NEQ predicate on the "occasion" field.
func OccasionNEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldOccasion, v))
}

// OccasionIn applies the In predicate on the "occasion" field.
func OccasionIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldOccasion, vs...))
}

// OccasionNotIn applies the NotIn predicate on the "occasion" field.
func OccasionNotIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldOccasion, vs...))
}

// OccasionGT applies the GT predicate on the "occasion" field.
func OccasionGT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldOccasion, v))
}

// OccasionGTE applies the GTE predicate on the "occasion" field.
func OccasionGTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldOccasion, v))
}

// OccasionLT applies the LT predicate on the "occasion" field.
func OccasionLT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldOccasion, v))
}

// OccasionLTE applies the LTE predicate on the "occasion" field.
func OccasionLTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldOccasion, v))
}

// OccasionContains applies the Contains predicate on the "occasion" field.
func OccasionContains(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContains(FieldOccasion, v))
}

// OccasionHasPrefix applies the HasPrefix predicate on the "occasion" field.
func OccasionHasPrefix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasPrefix(FieldOccasion, v))
}

// OccasionHasSuffix applies the HasSuffix predicate on the "occasion" field.
func OccasionHasSuffix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasSuffix(FieldOccasion, v))
}

// OccasionIsNil applies the IsNil predicate on the "occasion" field.
func OccasionIsNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIsNull(FieldOccasion))
}

// OccasionNotNil applies the NotNil predicate on the "occasion" field.
func OccasionNotNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotNull(FieldOccasion))
}

// OccasionEqualFold applies the EqualFold predicate on the "occasion" field.
func OccasionEqualFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEqualFold(FieldOccasion, v))
}

// OccasionContainsFold applies the ContainsFold predicate on the "occasion" field.
func OccasionContainsFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContainsFold(FieldOccasion, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasSuffix(FieldColor, v))
}

// ColorIsNil applies the IsNil predicate on the "color" field.
func ColorIsNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIsNull(FieldColor))
}

// ColorNotNil applies the NotNil predicate on the "color" field.
func ColorNotNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotNull(FieldColor))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContainsFold(FieldColor, v))
}

// AromasEQ applies the EQ predicate on the "aromas" field.
func AromasEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldAromas, v))
}

// AromasNEQ applies the NEQ predicate on the "aromas" field.
func AromasNEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldAromas, v))
}

// AromasIn applies the In predicate on the "aromas" field.
func AromasIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldAromas, vs...))
}

// AromasNotIn applies the NotIn predicate on the "aromas" field.
func AromasNotIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldAromas, vs...))
}

// AromasGT applies the GT predicate on the "aromas" field.
func AromasGT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldAromas, v))
}

// AromasGTE applies the GTE predicate on the "aromas" field.
func AromasGTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldAromas, v))
}

// AromasLT applies the LT predicate on the "aromas" field.
func AromasLT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldAromas, v))
}

// AromasLTE applies the LTE predicate on the "aromas" field.
func AromasLTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldAromas, v))
}

// AromasContains applies the Contains predicate on the "aromas" field.
func AromasContains(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContains(FieldAromas, v))
}

// AromasHasPrefix applies the HasPrefix predicate on the "aromas" field.
func AromasHasPrefix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasPrefix(FieldAromas, v))
}

// AromasHasSuffix applies the HasSuffix predicate on the "aromas" field.
func AromasHasSuffix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasSuffix(FieldAromas, v))
}

// AromasIsNil applies the IsNil predicate on the "aromas" field.
func AromasIsNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIsNull(FieldAromas))
}

// AromasNotNil applies the NotNil predicate on the "aromas" field.
func AromasNotNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotNull(FieldAromas))
}

// AromasEqualFold applies the EqualFold predicate on the "aromas" field.
func AromasEqualFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEqualFold(FieldAromas, v))
}

// AromasContainsFold applies the ContainsFold predicate on the "aromas" field.
func AromasContainsFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContainsFold(FieldAromas, v))
}

// PalateEQ applies the EQ predicate on the "palate" field.
func PalateEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldPalate, v))
}

// PalateNEQ applies the NEQ predicate on the "palate" field.
func PalateNEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldPalate, v))
}

// PalateIn applies the In predicate on the "palate" field.
func PalateIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldPalate, vs...))
}

// PalateNotIn applies the NotIn predicate on the "palate" field.
func PalateNotIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldPalate, vs...))
}

// PalateGT applies the GT predicate on the "palate" field.
func PalateGT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldPalate, v))
}

// PalateGTE applies the GTE predicate on the "palate" field.
func PalateGTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldPalate, v))
}

// PalateLT applies the LT predicate on the "palate" field.
func PalateLT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldPalate, v))
}

// PalateLTE applies the LTE predicate on the "palate" field.
func PalateLTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldPalate, v))
}

// PalateContains applies the Contains predicate on the "palate" field.
func PalateContains(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContains(FieldPalate, v))
}

// PalateHasPrefix applies the HasPrefix predicate on the "palate" field.
func PalateHasPrefix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasPrefix(FieldPalate, v))
}

// PalateHasSuffix applies the HasSuffix predicate on the "palate" field.
func PalateHasSuffix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasSuffix(FieldPalate, v))
}

// PalateIsNil applies the IsNil predicate on the "palate" field.
func PalateIsNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIsNull(FieldPalate))
}

// PalateNotNil applies the NotNil predicate on the "palate" field.
func PalateNotNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotNull(FieldPalate))
}

// PalateEqualFold applies the EqualFold predicate on the "palate" field.
func PalateEqualFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEqualFold(FieldPalate, v))
}

// PalateContainsFold applies the ContainsFold predicate on the "palate" field.
func PalateContainsFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContainsFold(FieldPalate, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float32) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotNull(FieldScore))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TastingNote {
	return predicate.TastingNote(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWine applies the HasEdge predicate on the "wine" edge.
func HasWine() predicate.TastingNote {
	return predicate.TastingNote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WineTable, WineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWineWith applies the HasEdge predicate on the "wine" edge with a given conditions (other predicates).
func HasWineWith(preds ...predicate.Wine) predicate.TastingNote {
	return predicate.TastingNote(func(s *sql.Selector) {
		step := newWineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TastingNote) predicate.TastingNote {
	return predicate.TastingNote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TastingNote) predicate.TastingNote {
	return predicate.TastingNote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TastingNote) predicate.TastingNote {
	return predicate.TastingNote(sql.NotPredicates(p))
}
