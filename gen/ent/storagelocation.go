// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
)

// StorageLocation is the model entity for the StorageLocation schema.
type StorageLocation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// LocationType holds the value of the "location_type" field.
	LocationType string `json:"location_type,omitempty"`
	// Capacity holds the value of the "capacity" field.
	Capacity *int `json:"capacity,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float32 `json:"temperature,omitempty"`
	// Humidity holds the value of the "humidity" field.
	Humidity *float32 `json:"humidity,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StorageLocationQuery when eager-loading is set.
	Edges        StorageLocationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StorageLocationEdges holds the relations/edges for other nodes in the graph.
type StorageLocationEdges struct {
	// Wines holds the value of the wines edge.
	Wines []*Wine `json:"wines,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WinesOrErr returns the Wines value or an error if the edge
// was not loaded in eager-loading.
func (e StorageLocationEdges) WinesOrErr() ([]*Wine, error) {
	if e.loadedTypes[0] {
		return e.Wines, nil
	}
	return nil, &NotLoadedError{edge: "wines"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StorageLocation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storagelocation.FieldIsActive:
			values[i] = new(sql.NullBool)
		case storagelocation.FieldTemperature, storagelocation.FieldHumidity:
			values[i] = new(sql.NullFloat64)
		case storagelocation.FieldCapacity:
			values[i] = new(sql.NullInt64)
		case storagelocation.FieldName, storagelocation.FieldDescription, storagelocation.FieldLocationType:
			values[i] = new(sql.NullString)
		case storagelocation.FieldCreatedAt, storagelocation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case storagelocation.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StorageLocation fields.
func (_m *StorageLocation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storagelocation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case storagelocation.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case storagelocation.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case storagelocation.FieldLocationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_type", values[i])
			} else if value.Valid {
				_m.LocationType = value.String
			}
		case storagelocation.FieldCapacity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field capacity", values[i])
			} else if value.Valid {
				_m.Capacity = new(int)
				*_m.Capacity = int(value.Int64)
			}
		case storagelocation.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float32)
				*_m.Temperature = float32(value.Float64)
			}
		case storagelocation.FieldHumidity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field humidity", values[i])
			} else if value.Valid {
				_m.Humidity = new(float32)
				*_m.Humidity = float32(value.Float64)
			}
		case storagelocation.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case storagelocation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case storagelocation.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StorageLocation.
// This includes values selected through modifiers, order, etc.
func (_m *StorageLocation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWines queries the "wines" edge of the StorageLocation entity.
func (_m *StorageLocation) QueryWines() *WineQuery {
	return NewStorageLocationClient(_m.config).QueryWines(_m)
}

// Update returns a builder for updating this StorageLocation.
// Note that you need to call StorageLocation.Unwrap() before calling this method if this StorageLocation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StorageLocation) Update() *StorageLocationUpdateOne {
	return NewStorageLocationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StorageLocation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StorageLocation) Unwrap() *StorageLocation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StorageLocation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StorageLocation) String() string {
	var builder strings.Builder
	builder.WriteString("StorageLocation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("location_type=")
	builder.WriteString(_m.LocationType)
	builder.WriteString(", ")
	if v := _m.Capacity; v != nil {
		builder.WriteString("capacity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Humidity; v != nil {
		builder.WriteString("humidity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StorageLocations is a parsable slice of StorageLocation.
type StorageLocations []*StorageLocation
