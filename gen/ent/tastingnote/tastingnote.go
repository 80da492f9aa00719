// Code generated by ent, DO NOT EDIT.

package tastingnote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tastingnote type in the database.
	Label = "tasting_note"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWineID holds the string denoting the wine_id field in the database.
	FieldWineID = "wine_id"
	// FieldTastingDate holds the string denoting the tasting_date field in the database.
	FieldTastingDate = "tasting_date"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldOccasion holds the string denoting the occasion field in the database.
	FieldOccasion = "occasion"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldAromas holds the string denoting the aromas field in the database.
	FieldAromas = "aromas"
	// FieldPalate holds the string denoting the palate field in the database.
	FieldPalate = "palate"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWine holds the string denoting the wine edge name in mutations.
	EdgeWine = "wine"
	// Table holds the table name of the tastingnote in the database.
	Table = "tasting_notes"
	// WineTable is the table that holds the wine relation/edge.
	WineTable = "tasting_notes"
	// WineInverseTable is the table name for the Wine entity.
	// It exists in this package in order to avoid circular dependency with the "wine" package.
	WineInverseTable = "wines"
	// WineColumn is the table column denoting the wine relation/edge.
	WineColumn = "wine_id"
)

// Columns holds all SQL columns for tastingnote fields.
var Columns = []string{
	FieldID,
	FieldWineID,
	FieldTastingDate,
	FieldLocation,
	FieldOccasion,
	FieldColor,
	FieldAromas,
	FieldPalate,
	FieldScore,
	FieldNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTastingDate holds the default value on creation for the "tasting_date" field.
	DefaultTastingDate func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TastingNote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWineID orders the results by the wine_id field.
func ByWineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWineID, opts...).ToFunc()
}

// ByTastingDate orders the results by the tasting_date field.
func ByTastingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTastingDate, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByOccasion orders the results by the occasion field.
func ByOccasion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccasion, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByAromas orders the results by the aromas field.
func ByAromas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAromas, opts...).ToFunc()
}

// ByPalate orders the results by the palate field.
func ByPalate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPalate, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWineField orders the results by wine field.
func ByWineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWineStep(), sql.OrderByField(field, opts...))
	}
}
func newWineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WineInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WineTable, WineColumn),
	)
}
