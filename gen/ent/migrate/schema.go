// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LabelPhotosColumns holds the columns for the "label_photos" table.
	LabelPhotosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Size: 64},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// LabelPhotosTable holds the schema information for the "label_photos" table.
	LabelPhotosTable = &schema.Table{
		Name:       "label_photos",
		Columns:    LabelPhotosColumns,
		PrimaryKey: []*schema.Column{LabelPhotosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "labelphoto_content_hash",
				Unique:  true,
				Columns: []*schema.Column{LabelPhotosColumns[2]},
			},
		},
	}
	// ScanJobsColumns holds the columns for the "scan_jobs" table.
	ScanJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "detection_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "cropped_path", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "photo_id", Type: field.TypeUUID},
		{Name: "wine_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScanJobsTable holds the schema information for the "scan_jobs" table.
	ScanJobsTable = &schema.Table{
		Name:       "scan_jobs",
		Columns:    ScanJobsColumns,
		PrimaryKey: []*schema.Column{ScanJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_jobs_label_photos_jobs",
				Columns:    []*schema.Column{ScanJobsColumns[12]},
				RefColumns: []*schema.Column{LabelPhotosColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "scan_jobs_wines_jobs",
				Columns:    []*schema.Column{ScanJobsColumns[13]},
				RefColumns: []*schema.Column{WinesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[4], ScanJobsColumns[2]},
			},
			{
				Name:    "scanjob_photo_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[12]},
			},
			{
				Name:    "scanjob_wine_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[13]},
			},
		},
	}
	// StorageLocationsColumns holds the columns for the "storage_locations" table.
	StorageLocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "location_type", Type: field.TypeString},
		{Name: "capacity", Type: field.TypeInt, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat32, Nullable: true},
		{Name: "humidity", Type: field.TypeFloat32, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StorageLocationsTable holds the schema information for the "storage_locations" table.
	StorageLocationsTable = &schema.Table{
		Name:       "storage_locations",
		Columns:    StorageLocationsColumns,
		PrimaryKey: []*schema.Column{StorageLocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "storagelocation_name",
				Unique:  true,
				Columns: []*schema.Column{StorageLocationsColumns[1]},
			},
		},
	}
	// TastingNotesColumns holds the columns for the "tasting_notes" table.
	TastingNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tasting_date", Type: field.TypeTime},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "occasion", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "aromas", Type: field.TypeString, Nullable: true},
		{Name: "palate", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeFloat32, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "wine_id", Type: field.TypeUUID},
	}
	// TastingNotesTable holds the schema information for the "tasting_notes" table.
	TastingNotesTable = &schema.Table{
		Name:       "tasting_notes",
		Columns:    TastingNotesColumns,
		PrimaryKey: []*schema.Column{TastingNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasting_notes_wines_notes",
				Columns:    []*schema.Column{TastingNotesColumns[11]},
				RefColumns: []*schema.Column{WinesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tastingnote_wine_id",
				Unique:  false,
				Columns: []*schema.Column{TastingNotesColumns[11]},
			},
		},
	}
	// WinesColumns holds the columns for the "wines" table.
	WinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "producer", Type: field.TypeString},
		{Name: "vintage", Type: field.TypeInt, Nullable: true},
		{Name: "wine_type", Type: field.TypeString},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "sub_region", Type: field.TypeString, Nullable: true},
		{Name: "appellation", Type: field.TypeString, Nullable: true},
		{Name: "grape_varieties", Type: field.TypeJSON, Nullable: true},
		{Name: "alcohol_content", Type: field.TypeFloat32, Nullable: true},
		{Name: "bottle_size", Type: field.TypeString, Default: "750ml"},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "purchase_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "purchase_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "SEK", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "personal_rating", Type: field.TypeFloat32, Nullable: true},
		{Name: "drinking_window_start", Type: field.TypeInt, Nullable: true},
		{Name: "drinking_window_end", Type: field.TypeInt, Nullable: true},
		{Name: "peak_maturity_year", Type: field.TypeInt, Nullable: true},
		{Name: "tasting_summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "food_pairings", Type: field.TypeJSON, Nullable: true},
		{Name: "systembolaget_id", Type: field.TypeString, Nullable: true},
		{Name: "barcode", Type: field.TypeString, Nullable: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "location_id", Type: field.TypeUUID, Nullable: true},
	}
	// WinesTable holds the schema information for the "wines" table.
	WinesTable = &schema.Table{
		Name:       "wines",
		Columns:    WinesColumns,
		PrimaryKey: []*schema.Column{WinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "wines_storage_locations_wines",
				Columns:    []*schema.Column{WinesColumns[27]},
				RefColumns: []*schema.Column{StorageLocationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "wine_name",
				Unique:  false,
				Columns: []*schema.Column{WinesColumns[1]},
			},
			{
				Name:    "wine_producer",
				Unique:  false,
				Columns: []*schema.Column{WinesColumns[2]},
			},
			{
				Name:    "wine_vintage",
				Unique:  false,
				Columns: []*schema.Column{WinesColumns[3]},
			},
			{
				Name:    "wine_wine_type",
				Unique:  false,
				Columns: []*schema.Column{WinesColumns[4]},
			},
			{
				Name:    "wine_region",
				Unique:  false,
				Columns: []*schema.Column{WinesColumns[6]},
			},
			{
				Name:    "wine_drinking_window_start_drinking_window_end",
				Unique:  false,
				Columns: []*schema.Column{WinesColumns[17], WinesColumns[18]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LabelPhotosTable,
		ScanJobsTable,
		StorageLocationsTable,
		TastingNotesTable,
		WinesTable,
	}
)

func init() {
	LabelPhotosTable.Annotation = &entsql.Annotation{
		Table: "label_photos",
	}
	ScanJobsTable.ForeignKeys[0].RefTable = LabelPhotosTable
	ScanJobsTable.ForeignKeys[1].RefTable = WinesTable
	ScanJobsTable.Annotation = &entsql.Annotation{
		Table: "scan_jobs",
	}
	StorageLocationsTable.Annotation = &entsql.Annotation{
		Table: "storage_locations",
	}
	TastingNotesTable.ForeignKeys[0].RefTable = WinesTable
	TastingNotesTable.Annotation = &entsql.Annotation{
		Table: "tasting_notes",
	}
	WinesTable.ForeignKeys[0].RefTable = StorageLocationsTable
	WinesTable.Annotation = &entsql.Annotation{
		Table: "wines",
	}
}
