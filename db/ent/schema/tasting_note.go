package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type TastingNote struct{ ent.Schema }

func (TastingNote) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tasting_notes"},
	}
}

func (TastingNote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("wine_id", uuid.UUID{}),
		field.Time("tasting_date").Default(time.Now),
		field.String("location").Optional().Nillable(),
		field.String("occasion").Optional().Nillable(),
		field.String("color").Optional().Nillable(),
		field.String("aromas").Optional().Nillable(),
		field.String("palate").Optional().Nillable(),
		field.Float32("score").Optional().Nillable(),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TastingNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("wine", Wine.Type).
			Ref("notes").
			Field("wine_id").
			Unique().
			Required(),
	}
}

func (TastingNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("wine_id"),
	}
}
