package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContactMessage is an inbound message from the marketing site: either a
// plain contact-form note or a coaching intake request.
type ContactMessage struct {
	ent.Schema
}

func (ContactMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		CreatedMixin{},
	}
}

func (ContactMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255),

		field.String("email").
			MaxLen(255),

		field.String("subject").
			MaxLen(255).
			Optional(),

		field.Text("body"),

		field.Enum("kind").
			Values("contact", "intake").
			Default("contact"),

		field.Bool("handled").
			Default(false),
	}
}

func (ContactMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("handled", "created_at"),
	}
}
