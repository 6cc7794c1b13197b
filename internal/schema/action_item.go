package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ActionItem is homework assigned to a client, usually out of a session.
type ActionItem struct {
	ent.Schema
}

func (ActionItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		AuditMixin{},
	}
}

func (ActionItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("session_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Session the item came out of, if any"),

		field.String("title").
			MaxLen(255),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("due_on").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("open", "done").
			Default("open"),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (ActionItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "status", "due_on"),
	}
}

func (ActionItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", User.Type).
			Ref("action_items").
			Unique().
			Required().
			Field("client_id"),
		edge.From("session", Session.Type).
			Ref("action_items").
			Unique().
			Field("session_id"),
	}
}
