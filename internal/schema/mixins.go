package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"

	"github.com/google/uuid"
)

// newUUIDv7 is the id default for every table. V7 ids are time-ordered,
// which keeps inserts append-mostly on the primary key index.
func newUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// IDMixin gives an entity an immutable UUIDv7 primary key.
type IDMixin struct{ mixin.Schema }

func (IDMixin) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7).Immutable(),
	}
}

// AuditMixin tracks creation and last-update times in UTC.
type AuditMixin struct{ mixin.Schema }

func (AuditMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").Default(utcNow).Immutable(),
		field.Time("updated_at").Default(utcNow).UpdateDefault(utcNow),
	}
}

// CreatedMixin tracks only creation time, for append-only rows that are
// never updated in place (payments, notifications, contact messages).
type CreatedMixin struct{ mixin.Schema }

func (CreatedMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").Default(utcNow).Immutable(),
	}
}

// SoftDeleteMixin adds a nullable deleted_at marker. Queries must filter
// it out themselves; there is no global interceptor.
type SoftDeleteMixin struct{ mixin.Schema }

func (SoftDeleteMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("deleted_at").Optional().Nillable(),
	}
}
