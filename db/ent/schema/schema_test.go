package schema

import (
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldByName(t *testing.T, fields []ent.Field, name string) *field.Descriptor {
	t.Helper()
	for _, f := range fields {
		if d := f.Descriptor(); d.Name == name {
			return d
		}
	}
	t.Fatalf("field %q not declared", name)
	return nil
}

// The repositories and converters address generated fields by name and
// Go type, so the descriptors below are part of their contract.

func TestWineSchema_JSONFieldsAreStringSlices(t *testing.T) {
	fields := Wine{}.Fields()

	for _, name := range []string{"grape_varieties", "food_pairings"} {
		d := fieldByName(t, fields, name)
		require.Equal(t, field.TypeJSON, d.Info.Type, name)
		assert.Equal(t, "[]string", d.Info.Ident, name)
	}
}

func TestWineSchema_PurchasePriceIsFloat64(t *testing.T) {
	d := fieldByName(t, Wine{}.Fields(), "purchase_price")
	assert.Equal(t, field.TypeFloat64, d.Info.Type)
}

func TestStorageLocationSchema_FieldNames(t *testing.T) {
	names := make(map[string]bool)
	for _, f := range (StorageLocation{}).Fields() {
		names[f.Descriptor().Name] = true
	}

	for _, want := range []string{"temperature", "humidity", "created_at", "updated_at"} {
		assert.True(t, names[want], "missing field %q", want)
	}
	assert.False(t, names["temperature_celsius"])
	assert.False(t, names["humidity_percent"])
}

func TestLabelPhotoSchema_FileSizeIsInt(t *testing.T) {
	d := fieldByName(t, LabelPhoto{}.Fields(), "file_size")
	assert.Equal(t, field.TypeInt, d.Info.Type)
}
