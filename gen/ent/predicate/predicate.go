// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LabelPhoto is the predicate function for labelphoto builders.
type LabelPhoto func(*sql.Selector)

// ScanJob is the predicate function for scanjob builders.
type ScanJob func(*sql.Selector)

// StorageLocation is the predicate function for storagelocation builders.
type StorageLocation func(*sql.Selector)

// TastingNote is the predicate function for tastingnote builders.
type TastingNote func(*sql.Selector)

// Wine is the predicate function for wine builders.
type Wine func(*sql.Selector)
