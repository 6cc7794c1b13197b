package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ClientProfile holds the per-client coaching record attached to a user.
type ClientProfile struct {
	ent.Schema
}

func (ClientProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		AuditMixin{},
	}
}

func (ClientProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("company").
			MaxLen(255).
			Optional(),

		field.Text("goals").
			Optional().
			Nillable(),

		field.Text("notification_prefs").
			Optional().
			Nillable().
			Comment("Raw JSON preference blob; parsed leniently, defaults on absence or corruption"),

		field.Time("onboarded_at").
			Optional().
			Nillable(),
	}
}

func (ClientProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}

func (ClientProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("profile").
			Unique().
			Required().
			Field("user_id"),
	}
}
