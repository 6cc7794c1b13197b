package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Session is a scheduled coaching session. Times are stored in UTC; the
// timezone field captures the client's zone at scheduling time so
// confirmations and reminders render local wall-clock times.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		AuditMixin{},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("title").
			MaxLen(255).
			Optional(),

		field.Time("scheduled_at").
			Comment("Session start, UTC"),

		field.Int("duration_minutes").
			Default(60),

		field.String("timezone").
			MaxLen(64).
			Default("UTC"),

		field.Enum("status").
			Values("pending_confirmation", "confirmed", "completed", "cancelled").
			Default("pending_confirmation"),

		field.String("confirm_token").
			MaxLen(64).
			Unique().
			Optional(),

		field.Time("confirmed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.String("cancel_reason").
			MaxLen(500).
			Optional(),

		field.String("recurrence_rule").
			MaxLen(255).
			Optional().
			Comment("RFC 5545 RRULE for recurring sessions"),

		field.Time("reminder_sent_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.String("meeting_url").
			MaxLen(500).
			Optional(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "scheduled_at"),
		index.Fields("status", "scheduled_at"),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", User.Type).
			Ref("sessions").
			Unique().
			Required().
			Field("client_id"),
		edge.To("action_items", ActionItem.Type),
	}
}
