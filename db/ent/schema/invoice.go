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

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("file_id", uuid.UUID{}).Optional().Nillable(),
		field.String("invoice_number").NotEmpty(),
		field.Time("invoice_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("vendor_name").NotEmpty(),
		field.String("vendor_tax_id").Optional().Nillable(),
		field.String("vendor_address").Optional().Nillable(),
		field.String("customer_name").Optional().Nillable(),
		field.Float("subtotal").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("payment_terms").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE profile (FK: invoices.profile_id)
		edge.From("profile", Profile.Type).
			Ref("invoices").
			Field("profile_id").
			Required().
			Unique(),
		// ONE invoice -> MANY line items
		edge.To("line_items", LineItem.Type),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		// the same document ingested twice must not create a second invoice
		index.Fields("profile_id", "invoice_number", "vendor_name").Unique(),
		index.Fields("profile_id", "invoice_date"),
	}
}
