// Code generated by ent, DO NOT EDIT.

package wine

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the wine type in the database.
	Label = "wine"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldProducer holds the string denoting the producer field in the database.
	FieldProducer = "producer"
	// FieldVintage holds the string denoting the vintage field in the database.
	FieldVintage = "vintage"
	// FieldWineType holds the string denoting the wine_type field in the database.
	FieldWineType = "wine_type"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldSubRegion holds the string denoting the sub_region field in the database.
	FieldSubRegion = "sub_region"
	// FieldAppellation holds the string denoting the appellation field in the database.
	FieldAppellation = "appellation"
	// FieldGrapeVarieties holds the string denoting the grape_varieties field in the database.
	FieldGrapeVarieties = "grape_varieties"
	// FieldAlcoholContent holds the string denoting the alcohol_content field in the database.
	FieldAlcoholContent = "alcohol_content"
	// FieldBottleSize holds the string denoting the bottle_size field in the database.
	FieldBottleSize = "bottle_size"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldPurchasePrice holds the string denoting the purchase_price field in the database.
	FieldPurchasePrice = "purchase_price"
	// FieldPurchaseDate holds the string denoting the purchase_date field in the database.
	FieldPurchaseDate = "purchase_date"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldPersonalRating holds the string denoting the personal_rating field in the database.
	FieldPersonalRating = "personal_rating"
	// FieldDrinkingWindowStart holds the string denoting the drinking_window_start field in the database.
	FieldDrinkingWindowStart = "drinking_window_start"
	// FieldDrinkingWindowEnd holds the string denoting the drinking_window_end field in the database.
	FieldDrinkingWindowEnd = "drinking_window_end"
	// FieldPeakMaturityYear holds the string denoting the peak_maturity_year field in the database.
	FieldPeakMaturityYear = "peak_maturity_year"
	// FieldTastingSummary holds the string denoting the tasting_summary field in the database.
	FieldTastingSummary = "tasting_summary"
	// FieldFoodPairings holds the string denoting the food_pairings field in the database.
	FieldFoodPairings = "food_pairings"
	// FieldLocationID holds the string denoting the location_id field in the database.
	FieldLocationID = "location_id"
	// FieldSystembolagetID holds the string denoting the systembolaget_id field in the database.
	FieldSystembolagetID = "systembolaget_id"
	// FieldBarcode holds the string denoting the barcode field in the database.
	FieldBarcode = "barcode"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLocation holds the string denoting the location edge name in mutations.
	EdgeLocation = "location"
	// EdgeNotes holds the string denoting the notes edge name in mutations.
	EdgeNotes = "notes"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the wine in the database.
	Table = "wines"
	// LocationTable is the table that holds the location relation/edge.
	LocationTable = "wines"
	// LocationInverseTable is the table name for the StorageLocation entity.
	// It exists in this package in order to avoid circular dependency with the "storagelocation" package.
	LocationInverseTable = "storage_locations"
	// LocationColumn is the table column denoting the location relation/edge.
	LocationColumn = "location_id"
	// NotesTable is the table that holds the notes relation/edge.
	NotesTable = "tasting_notes"
	// NotesInverseTable is the table name for the TastingNote entity.
	// It exists in this package in order to avoid circular dependency with the "tastingnote" package.
	NotesInverseTable = "tasting_notes"
	// NotesColumn is the table column denoting the notes relation/edge.
	NotesColumn = "wine_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "scan_jobs"
	// JobsInverseTable is the table name for the ScanJob entity.
	// It exists in this package in order to avoid circular dependency with the "scanjob" package.
	JobsInverseTable = "scan_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "wine_id"
)

// Columns holds all SQL columns for wine fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldProducer,
	FieldVintage,
	FieldWineType,
	FieldCountry,
	FieldRegion,
	FieldSubRegion,
	FieldAppellation,
	FieldGrapeVarieties,
	FieldAlcoholContent,
	FieldBottleSize,
	FieldQuantity,
	FieldPurchasePrice,
	FieldPurchaseDate,
	FieldCurrency,
	FieldPersonalRating,
	FieldDrinkingWindowStart,
	FieldDrinkingWindowEnd,
	FieldPeakMaturityYear,
	FieldTastingSummary,
	FieldFoodPairings,
	FieldLocationID,
	FieldSystembolagetID,
	FieldBarcode,
	FieldIsDeleted,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ProducerValidator is a validator for the "producer" field. It is called by the builders before save.
	ProducerValidator func(string) error
	// WineTypeValidator is a validator for the "wine_type" field. It is called by the builders before save.
	WineTypeValidator func(string) error
	// DefaultBottleSize holds the default value on creation for the "bottle_size" field.
	DefaultBottleSize string
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity int
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Wine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProducer orders the results by the producer field.
func ByProducer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProducer, opts...).ToFunc()
}

// ByVintage orders the results by the vintage field.
func ByVintage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVintage, opts...).ToFunc()
}

// ByWineType orders the results by the wine_type field.
func ByWineType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWineType, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// BySubRegion orders the results by the sub_region field.
func BySubRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubRegion, opts...).ToFunc()
}

// ByAppellation orders the results by the appellation field.
func ByAppellation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppellation, opts...).ToFunc()
}

// ByAlcoholContent orders the results by the alcohol_content field.
func ByAlcoholContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlcoholContent, opts...).ToFunc()
}

// ByBottleSize orders the results by the bottle_size field.
func ByBottleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBottleSize, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByPurchasePrice orders the results by the purchase_price field.
func ByPurchasePrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchasePrice, opts...).ToFunc()
}

// ByPurchaseDate orders the results by the purchase_date field.
func ByPurchaseDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseDate, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByPersonalRating orders the results by the personal_rating field.
func ByPersonalRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonalRating, opts...).ToFunc()
}

// ByDrinkingWindowStart orders the results by the drinking_window_start field.
func ByDrinkingWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrinkingWindowStart, opts...).ToFunc()
}

// ByDrinkingWindowEnd orders the results by the drinking_window_end field.
func ByDrinkingWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrinkingWindowEnd, opts...).ToFunc()
}

// ByPeakMaturityYear orders the results by the peak_maturity_year field.
func ByPeakMaturityYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeakMaturityYear, opts...).ToFunc()
}

// ByTastingSummary orders the results by the tasting_summary field.
func ByTastingSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTastingSummary, opts...).ToFunc()
}

// ByLocationID orders the results by the location_id field.
func ByLocationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationID, opts...).ToFunc()
}

// BySystembolagetID orders the results by the systembolaget_id field.
func BySystembolagetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystembolagetID, opts...).ToFunc()
}

// ByBarcode orders the results by the barcode field.
func ByBarcode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBarcode, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLocationField orders the results by location field.
func ByLocationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLocationStep(), sql.OrderByField(field, opts...))
	}
}

// ByNotesCount orders the results by notes count.
func ByNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotesStep(), opts...)
	}
}

// ByNotes orders the results by notes terms.
func ByNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLocationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LocationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LocationTable, LocationColumn),
	)
}
func newNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
