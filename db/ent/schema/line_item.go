package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type LineItem struct{ ent.Schema }

func (LineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "line_items"},
	}
}

func (LineItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("invoice_id", uuid.UUID{}),
		// position preserves the order the items appear on the document
		field.Int("position").NonNegative(),
		field.String("description").NotEmpty(),
		field.Float("quantity").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("unit_price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_rate").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
	}
}

func (LineItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("line_items").
			Field("invoice_id").
			Required().
			Unique(),
	}
}

func (LineItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "position"),
	}
}
