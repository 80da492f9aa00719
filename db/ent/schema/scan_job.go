package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/db/ent/schema/utils"
)

type ScanJob struct{ ent.Schema }

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_jobs"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("photo_id", uuid.UUID{}),
		field.UUID("wine_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.PhotoFormats...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Float32("detection_confidence").Optional().Nillable(),
		field.String("cropped_path").Optional().Nillable(),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
	}
}

func (ScanJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("photo", LabelPhoto.Type).
			Ref("jobs").
			Field("photo_id").
			Unique().
			Required(),
		edge.From("wine", Wine.Type).
			Ref("jobs").
			Field("wine_id").
			Unique(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("photo_id"),
		index.Fields("wine_id"),
	}
}
