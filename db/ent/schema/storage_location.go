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
	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/db/ent/schema/utils"
)

type StorageLocation struct{ ent.Schema }

func (StorageLocation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "storage_locations"},
	}
}

func (StorageLocation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.String("location_type").NotEmpty().
			Validate(utils.EnumValidator(constants.LocationTypes...)),
		field.Int("capacity").Optional().Nillable(),
		field.Float32("temperature").Optional().Nillable(),
		field.Float32("humidity").Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (StorageLocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("wines", Wine.Type),
	}
}

func (StorageLocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
