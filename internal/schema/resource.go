package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Resource is an entry in the shared library: worksheets, recordings,
// slide decks, or plain links.
type Resource struct {
	ent.Schema
}

func (Resource) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		AuditMixin{},
		SoftDeleteMixin{},
	}
}

func (Resource) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Enum("kind").
			Values("article", "worksheet", "video", "slides", "link").
			Default("article"),

		field.String("object_key").
			MaxLen(500).
			Optional().
			Comment("S3 key when the resource is an uploaded file"),

		field.String("external_url").
			MaxLen(500).
			Optional(),

		field.Bool("published").
			Default(false).
			Comment("Published resources are visible to every client"),
	}
}

func (Resource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("shares", ResourceShare.Type),
	}
}
