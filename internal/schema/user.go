package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is anyone who can sign in to the portal: the coach or a client.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		AuditMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			MaxLen(255).
			Unique(),

		field.String("password_hash").
			Sensitive(),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.Enum("role").
			Values("coach", "client").
			Default("client"),

		field.String("timezone").
			MaxLen(64).
			Default("UTC").
			Comment("IANA zone name, e.g. America/Chicago"),

		field.Bool("is_active").
			Default(true),

		field.Time("email_verified_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("profile", ClientProfile.Type).
			Unique(),
		edge.To("sessions", Session.Type),
		edge.To("action_items", ActionItem.Type),
		edge.To("notifications", Notification.Type),
		edge.To("invoices", Invoice.Type),
		edge.To("resource_shares", ResourceShare.Type),
	}
}
