// Package importer loads cellar backups from JSON, validating the
// payload before any row is written.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sahlen/vinkallaren/constants"
)

// wineImportSchema constrains one imported wine record. Unknown keys
// are allowed so exports from newer app versions still load.
func wineImportSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"name", "producer", "wine_type"},
		"properties": map[string]any{
			"name":     map[string]any{"type": "string", "minLength": 1},
			"producer": map[string]any{"type": "string", "minLength": 1},
			"wine_type": map[string]any{
				"type": "string",
				"enum": toAnySlice(constants.WineTypesAsStringSlice()),
			},
			"vintage": map[string]any{
				"type":    "integer",
				"minimum": 1900,
			},
			"country":         map[string]any{"type": "string"},
			"region":          map[string]any{"type": "string"},
			"sub_region":      map[string]any{"type": "string"},
			"appellation":     map[string]any{"type": "string"},
			"grape_varieties": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"alcohol_content": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"bottle_size":     map[string]any{"type": "string"},
			"quantity":        map[string]any{"type": "integer", "minimum": 0},
			"purchase_price":  map[string]any{"type": "number", "minimum": 0},
			"currency":        map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
			"personal_rating": map[string]any{"type": "number", "minimum": 0, "maximum": 5},
			"drinking_window_start": map[string]any{"type": "integer"},
			"drinking_window_end":   map[string]any{"type": "integer"},
			"peak_maturity_year":    map[string]any{"type": "integer"},
			"tasting_summary":       map[string]any{"type": "string"},
			"food_pairings":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"systembolaget_id":      map[string]any{"type": "string"},
			"barcode":               map[string]any{"type": "string"},
		},
	}
}

func backupSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"wines"},
		"properties": map[string]any{
			"version": map[string]any{"type": "integer"},
			"wines":   map[string]any{"type": "array", "items": wineImportSchema()},
		},
	}
}

// ValidateBackup validates raw backup JSON against the backup schema.
func ValidateBackup(data []byte) error {
	b, err := json.Marshal(backupSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("backup.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("backup.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("backup does not match schema: %w", err)
	}
	return nil
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
