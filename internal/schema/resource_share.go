package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ResourceShare grants a specific client access to an unpublished resource.
type ResourceShare struct {
	ent.Schema
}

func (ResourceShare) Mixin() []ent.Mixin {
	return []ent.Mixin{
		IDMixin{},
		CreatedMixin{},
	}
}

func (ResourceShare) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("resource_id", uuid.UUID{}),
		field.UUID("client_id", uuid.UUID{}),
	}
}

func (ResourceShare) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resource_id", "client_id").Unique(),
		index.Fields("client_id"),
	}
}

func (ResourceShare) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("resource", Resource.Type).
			Ref("shares").
			Unique().
			Required().
			Field("resource_id"),
		edge.From("client", User.Type).
			Ref("resource_shares").
			Unique().
			Required().
			Field("client_id"),
	}
}
