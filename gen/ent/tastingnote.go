// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// TastingNote is the model entity for the TastingNote schema.
type TastingNote struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WineID holds the value of the "wine_id" field.
	WineID uuid.UUID `json:"wine_id,omitempty"`
	// TastingDate holds the value of the "tasting_date" field.
	TastingDate time.Time `json:"tasting_date,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// Occasion holds the value of the "occasion" field.
	Occasion *string `json:"occasion,omitempty"`
	// Color holds the value of the "color" field.
	Color *string `json:"color,omitempty"`
	// Aromas holds the value of the "aromas" field.
	Aromas *string `json:"aromas,omitempty"`
	// Palate holds the value of the "palate" field.
	Palate *string `json:"palate,omitempty"`
	// Score holds the value of the "score" field.
	Score *float32 `json:"score,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TastingNoteQuery when eager-loading is set.
	Edges        TastingNoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TastingNoteEdges holds the relations/edges for other nodes in the graph.
type TastingNoteEdges struct {
	// Wine holds the value of the wine edge.
	Wine *Wine `json:"wine,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WineOrErr returns the Wine value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TastingNoteEdges) WineOrErr() (*Wine, error) {
	if e.Wine != nil {
		return e.Wine, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: wine.Label}
	}
	return nil, &NotLoadedError{edge: "wine"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TastingNote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tastingnote.FieldScore:
			values[i] = new(sql.NullFloat64)
		case tastingnote.FieldLocation, tastingnote.FieldOccasion, tastingnote.FieldColor, tastingnote.FieldAromas, tastingnote.FieldPalate, tastingnote.FieldNotes:
			values[i] = new(sql.NullString)
		case tastingnote.FieldTastingDate, tastingnote.FieldCreatedAt, tastingnote.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tastingnote.FieldID, tastingnote.FieldWineID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TastingNote fields.
func (_m *TastingNote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tastingnote.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tastingnote.FieldWineID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field wine_id", values[i])
			} else if value != nil {
				_m.WineID = *value
			}
		case tastingnote.FieldTastingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tasting_date", values[i])
			} else if value.Valid {
				_m.TastingDate = value.Time
			}
		case tastingnote.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case tastingnote.FieldOccasion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field occasion", values[i])
			} else if value.Valid {
				_m.Occasion = new(string)
				*_m.Occasion = value.String
			}
		case tastingnote.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = new(string)
				*_m.Color = value.String
			}
		case tastingnote.FieldAromas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field aromas", values[i])
			} else if value.Valid {
				_m.Aromas = new(string)
				*_m.Aromas = value.String
			}
		case tastingnote.FieldPalate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field palate", values[i])
			} else if value.Valid {
				_m.Palate = new(string)
				*_m.Palate = value.String
			}
		case tastingnote.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float32)
				*_m.Score = float32(value.Float64)
			}
		case tastingnote.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case tastingnote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tastingnote.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TastingNote.
// This includes values selected through modifiers, order, etc.
func (_m *TastingNote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWine queries the "wine" edge of the TastingNote entity.
func (_m *TastingNote) QueryWine() *WineQuery {
	return NewTastingNoteClient(_m.config).QueryWine(_m)
}

// Update returns a builder for updating this TastingNote.
// Note that you need to call TastingNote.Unwrap() before calling this method if this TastingNote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TastingNote) Update() *TastingNoteUpdateOne {
	return NewTastingNoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TastingNote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TastingNote) Unwrap() *TastingNote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TastingNote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TastingNote) String() string {
	var builder strings.Builder
	builder.WriteString("TastingNote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("wine_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WineID))
	builder.WriteString(", ")
	builder.WriteString("tasting_date=")
	builder.WriteString(_m.TastingDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Occasion; v != nil {
		builder.WriteString("occasion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Color; v != nil {
		builder.WriteString("color=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Aromas; v != nil {
		builder.WriteString("aromas=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Palate; v != nil {
		builder.WriteString("palate=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TastingNotes is a parsable slice of TastingNote.
type TastingNotes []*TastingNote
