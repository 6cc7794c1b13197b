package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Payment records money received against an invoice.
type Payment struct {
	ent.Schema
}

func (Payment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		CreatedMixin{},
	}
}

func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("invoice_id", uuid.UUID{}),

		field.Int64("amount_cents"),

		field.String("currency").
			MaxLen(3).
			Default("usd"),

		field.String("provider").
			MaxLen(32).
			Default("stripe"),

		field.String("provider_ref").
			MaxLen(255).
			Unique().
			Comment("Provider-side id, used for webhook idempotency"),
	}
}

func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}

func (Payment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("payments").
			Unique().
			Required().
			Field("invoice_id"),
	}
}
