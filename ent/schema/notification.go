package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for an operational alert
// raised by the background scanners (warranty expiry, maintenance due).
// The (kind, activo_id, due_date) key keeps repeated scans idempotent.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("warranty_expiry", "maintenance_due").
			Immutable(),
		field.String("activo_id").
			NotEmpty().
			Immutable(),
		field.Time("due_date").
			Immutable(),
		field.String("message").
			NotEmpty(),
		field.Bool("read").
			Default(false),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "activo_id", "due_date").
			Unique(),
		index.Fields("read"),
	}
}
