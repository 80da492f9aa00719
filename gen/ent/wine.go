// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// Wine is the model entity for the Wine schema.
type Wine struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Producer holds the value of the "producer" field.
	Producer string `json:"producer,omitempty"`
	// Vintage holds the value of the "vintage" field.
	Vintage *int `json:"vintage,omitempty"`
	// WineType holds the value of the "wine_type" field.
	WineType string `json:"wine_type,omitempty"`
	// Country holds the value of the "country" field.
	Country *string `json:"country,omitempty"`
	// Region holds the value of the "region" field.
	Region *string `json:"region,omitempty"`
	// SubRegion holds the value of the "sub_region" field.
	SubRegion *string `json:"sub_region,omitempty"`
	// Appellation holds the value of the "appellation" field.
	Appellation *string `json:"appellation,omitempty"`
	// GrapeVarieties holds the value of the "grape_varieties" field.
	GrapeVarieties []string `json:"grape_varieties,omitempty"`
	// AlcoholContent holds the value of the "alcohol_content" field.
	AlcoholContent *float32 `json:"alcohol_content,omitempty"`
	// BottleSize holds the value of the "bottle_size" field.
	BottleSize string `json:"bottle_size,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// PurchasePrice holds the value of the "purchase_price" field.
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	// PurchaseDate holds the value of the "purchase_date" field.
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// PersonalRating holds the value of the "personal_rating" field.
	PersonalRating *float32 `json:"personal_rating,omitempty"`
	// DrinkingWindowStart holds the value of the "drinking_window_start" field.
	DrinkingWindowStart *int `json:"drinking_window_start,omitempty"`
	// DrinkingWindowEnd holds the value of the "drinking_window_end" field.
	DrinkingWindowEnd *int `json:"drinking_window_end,omitempty"`
	// PeakMaturityYear holds the value of the "peak_maturity_year" field.
	PeakMaturityYear *int `json:"peak_maturity_year,omitempty"`
	// TastingSummary holds the value of the "tasting_summary" field.
	TastingSummary *string `json:"tasting_summary,omitempty"`
	// FoodPairings holds the value of the "food_pairings" field.
	FoodPairings []string `json:"food_pairings,omitempty"`
	// LocationID holds the value of the "location_id" field.
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	// SystembolagetID holds the value of the "systembolaget_id" field.
	SystembolagetID *string `json:"systembolaget_id,omitempty"`
	// Barcode holds the value of the "barcode" field.
	Barcode *string `json:"barcode,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WineQuery when eager-loading is set.
	Edges        WineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WineEdges holds the relations/edges for other nodes in the graph.
type WineEdges struct {
	// Location holds the value of the location edge.
	Location *StorageLocation `json:"location,omitempty"`
	// Notes holds the value of the notes edge.
	Notes []*TastingNote `json:"notes,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ScanJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// LocationOrErr returns the Location value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WineEdges) LocationOrErr() (*StorageLocation, error) {
	if e.Location != nil {
		return e.Location, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: storagelocation.Label}
	}
	return nil, &NotLoadedError{edge: "location"}
}

// NotesOrErr returns the Notes value or an error if the edge
// was not loaded in eager-loading.
func (e WineEdges) NotesOrErr() ([]*TastingNote, error) {
	if e.loadedTypes[1] {
		return e.Notes, nil
	}
	return nil, &NotLoadedError{edge: "notes"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e WineEdges) JobsOrErr() ([]*ScanJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Wine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wine.FieldLocationID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case wine.FieldGrapeVarieties, wine.FieldFoodPairings:
			values[i] = new([]byte)
		case wine.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case wine.FieldAlcoholContent, wine.FieldPurchasePrice, wine.FieldPersonalRating:
			values[i] = new(sql.NullFloat64)
		case wine.FieldVintage, wine.FieldQuantity, wine.FieldDrinkingWindowStart, wine.FieldDrinkingWindowEnd, wine.FieldPeakMaturityYear:
			values[i] = new(sql.NullInt64)
		case wine.FieldName, wine.FieldProducer, wine.FieldWineType, wine.FieldCountry, wine.FieldRegion, wine.FieldSubRegion, wine.FieldAppellation, wine.FieldBottleSize, wine.FieldCurrency, wine.FieldTastingSummary, wine.FieldSystembolagetID, wine.FieldBarcode:
			values[i] = new(sql.NullString)
		case wine.FieldPurchaseDate, wine.FieldCreatedAt, wine.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case wine.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Wine fields.
func (_m *Wine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wine.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case wine.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case wine.FieldProducer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field producer", values[i])
			} else if value.Valid {
				_m.Producer = value.String
			}
		case wine.FieldVintage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vintage", values[i])
			} else if value.Valid {
				_m.Vintage = new(int)
				*_m.Vintage = int(value.Int64)
			}
		case wine.FieldWineType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wine_type", values[i])
			} else if value.Valid {
				_m.WineType = value.String
			}
		case wine.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = new(string)
				*_m.Country = value.String
			}
		case wine.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = new(string)
				*_m.Region = value.String
			}
		case wine.FieldSubRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_region", values[i])
			} else if value.Valid {
				_m.SubRegion = new(string)
				*_m.SubRegion = value.String
			}
		case wine.FieldAppellation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field appellation", values[i])
			} else if value.Valid {
				_m.Appellation = new(string)
				*_m.Appellation = value.String
			}
		case wine.FieldGrapeVarieties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grape_varieties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GrapeVarieties); err != nil {
					return fmt.Errorf("unmarshal field grape_varieties: %w", err)
				}
			}
		case wine.FieldAlcoholContent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field alcohol_content", values[i])
			} else if value.Valid {
				_m.AlcoholContent = new(float32)
				*_m.AlcoholContent = float32(value.Float64)
			}
		case wine.FieldBottleSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bottle_size", values[i])
			} else if value.Valid {
				_m.BottleSize = value.String
			}
		case wine.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case wine.FieldPurchasePrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_price", values[i])
			} else if value.Valid {
				_m.PurchasePrice = new(float64)
				*_m.PurchasePrice = value.Float64
			}
		case wine.FieldPurchaseDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_date", values[i])
			} else if value.Valid {
				_m.PurchaseDate = new(time.Time)
				*_m.PurchaseDate = value.Time
			}
		case wine.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case wine.FieldPersonalRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field personal_rating", values[i])
			} else if value.Valid {
				_m.PersonalRating = new(float32)
				*_m.PersonalRating = float32(value.Float64)
			}
		case wine.FieldDrinkingWindowStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drinking_window_start", values[i])
			} else if value.Valid {
				_m.DrinkingWindowStart = new(int)
				*_m.DrinkingWindowStart = int(value.Int64)
			}
		case wine.FieldDrinkingWindowEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field drinking_window_end", values[i])
			} else if value.Valid {
				_m.DrinkingWindowEnd = new(int)
				*_m.DrinkingWindowEnd = int(value.Int64)
			}
		case wine.FieldPeakMaturityYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field peak_maturity_year", values[i])
			} else if value.Valid {
				_m.PeakMaturityYear = new(int)
				*_m.PeakMaturityYear = int(value.Int64)
			}
		case wine.FieldTastingSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tasting_summary", values[i])
			} else if value.Valid {
				_m.TastingSummary = new(string)
				*_m.TastingSummary = value.String
			}
		case wine.FieldFoodPairings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field food_pairings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FoodPairings); err != nil {
					return fmt.Errorf("unmarshal field food_pairings: %w", err)
				}
			}
		case wine.FieldLocationID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value.Valid {
				_m.LocationID = new(uuid.UUID)
				*_m.LocationID = *value.S.(*uuid.UUID)
			}
		case wine.FieldSystembolagetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field systembolaget_id", values[i])
			} else if value.Valid {
				_m.SystembolagetID = new(string)
				*_m.SystembolagetID = value.String
			}
		case wine.FieldBarcode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field barcode", values[i])
			} else if value.Valid {
				_m.Barcode = new(string)
				*_m.Barcode = value.String
			}
		case wine.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case wine.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case wine.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Wine.
// This includes values selected through modifiers, order, etc.
func (_m *Wine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLocation queries the "location" edge of the Wine entity.
func (_m *Wine) QueryLocation() *StorageLocationQuery {
	return NewWineClient(_m.config).QueryLocation(_m)
}

// QueryNotes queries the "notes" edge of the Wine entity.
func (_m *Wine) QueryNotes() *TastingNoteQuery {
	return NewWineClient(_m.config).QueryNotes(_m)
}

// QueryJobs queries the "jobs" edge of the Wine entity.
func (_m *Wine) QueryJobs() *ScanJobQuery {
	return NewWineClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Wine.
// Note that you need to call Wine.Unwrap() before calling this method if this Wine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Wine) Update() *WineUpdateOne {
	return NewWineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Wine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Wine) Unwrap() *Wine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Wine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Wine) String() string {
	var builder strings.Builder
	builder.WriteString("Wine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("producer=")
	builder.WriteString(_m.Producer)
	builder.WriteString(", ")
	if v := _m.Vintage; v != nil {
		builder.WriteString("vintage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("wine_type=")
	builder.WriteString(_m.WineType)
	builder.WriteString(", ")
	if v := _m.Country; v != nil {
		builder.WriteString("country=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Region; v != nil {
		builder.WriteString("region=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubRegion; v != nil {
		builder.WriteString("sub_region=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Appellation; v != nil {
		builder.WriteString("appellation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("grape_varieties=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrapeVarieties))
	builder.WriteString(", ")
	if v := _m.AlcoholContent; v != nil {
		builder.WriteString("alcohol_content=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("bottle_size=")
	builder.WriteString(_m.BottleSize)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	if v := _m.PurchasePrice; v != nil {
		builder.WriteString("purchase_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PurchaseDate; v != nil {
		builder.WriteString("purchase_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.PersonalRating; v != nil {
		builder.WriteString("personal_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DrinkingWindowStart; v != nil {
		builder.WriteString("drinking_window_start=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DrinkingWindowEnd; v != nil {
		builder.WriteString("drinking_window_end=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PeakMaturityYear; v != nil {
		builder.WriteString("peak_maturity_year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TastingSummary; v != nil {
		builder.WriteString("tasting_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("food_pairings=")
	builder.WriteString(fmt.Sprintf("%v", _m.FoodPairings))
	builder.WriteString(", ")
	if v := _m.LocationID; v != nil {
		builder.WriteString("location_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SystembolagetID; v != nil {
		builder.WriteString("systembolaget_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Barcode; v != nil {
		builder.WriteString("barcode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Wines is a parsable slice of Wine.
type Wines []*Wine
