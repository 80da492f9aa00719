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
	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/db/ent/schema/utils"
)

type Wine struct{ ent.Schema }

func (Wine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "wines"},
	}
}

func (Wine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.String("producer").NotEmpty(),
		field.Int("vintage").Optional().Nillable(),
		field.String("wine_type").NotEmpty().
			Validate(utils.EnumValidator(constants.WineTypesAsStringSlice()...)),
		field.String("country").Optional().Nillable(),
		field.String("region").Optional().Nillable(),
		field.String("sub_region").Optional().Nillable(),
		field.String("appellation").Optional().Nillable(),
		field.JSON("grape_varieties", []string{}).Optional(),
		field.Float32("alcohol_content").Optional().Nillable(),
		field.String("bottle_size").Default("750ml"),
		field.Int("quantity").Default(1).NonNegative(),
		field.Float("purchase_price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("purchase_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).Default("SEK").
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float32("personal_rating").Optional().Nillable(),
		field.Int("drinking_window_start").Optional().Nillable(),
		field.Int("drinking_window_end").Optional().Nillable(),
		field.Int("peak_maturity_year").Optional().Nillable(),
		field.String("tasting_summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("food_pairings", []string{}).Optional(),
		field.UUID("location_id", uuid.UUID{}).Optional().Nillable(),
		field.String("systembolaget_id").Optional().Nillable(),
		field.String("barcode").Optional().Nillable(),
		field.Bool("is_deleted").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Wine) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY wines -> ONE storage location (FK: wines.location_id)
		edge.From("location", StorageLocation.Type).
			Ref("wines").
			Field("location_id").
			Unique(),
		// ONE wine -> MANY tasting notes
		edge.To("notes", TastingNote.Type),
		// ONE wine -> MANY scan jobs (the scans that produced/updated it)
		edge.To("jobs", ScanJob.Type),
	}
}

func (Wine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("producer"),
		index.Fields("vintage"),
		index.Fields("wine_type"),
		index.Fields("region"),
		index.Fields("drinking_window_start", "drinking_window_end"),
	}
}
