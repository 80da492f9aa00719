package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LabelPhoto is a captured bottle photograph registered for scanning.
type LabelPhoto struct{ ent.Schema }

func (LabelPhoto) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "label_photos"},
	}
}

func (LabelPhoto) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("source_path").NotEmpty(),
		field.String("content_hash").NotEmpty().MinLen(64).MaxLen(64),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (LabelPhoto) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ScanJob.Type),
	}
}

func (LabelPhoto) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
	}
}
