package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Invoice bills a client for sessions or a retainer period.
type Invoice struct {
	ent.Schema
}

func (Invoice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		AuditMixin{},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("number").
			MaxLen(32).
			Unique().
			Comment("Human-facing invoice number, e.g. INV-2026-0042"),

		field.String("description").
			MaxLen(500).
			Optional(),

		field.Int64("amount_cents"),

		field.String("currency").
			MaxLen(3).
			Default("usd"),

		field.Enum("status").
			Values("draft", "sent", "paid", "void").
			Default("draft"),

		field.Time("issued_on").
			Optional().
			Nillable(),

		field.Time("due_on").
			Optional().
			Nillable(),

		field.String("checkout_url").
			MaxLen(500).
			Optional(),

		field.Time("paid_at").
			Optional().
			Nillable(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "status"),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", User.Type).
			Ref("invoices").
			Unique().
			Required().
			Field("client_id"),
		edge.To("payments", Payment.Type),
	}
}
