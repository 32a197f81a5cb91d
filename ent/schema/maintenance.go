package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Maintenance holds the schema definition for a single maintenance event.
// Rows are append-only history; the asset's maintenance cache is a
// projection of the latest-recorded row.
type Maintenance struct {
	ent.Schema
}

// Mixin of the Maintenance.
func (Maintenance) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Maintenance.
func (Maintenance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("activo_id").
			NotEmpty().
			Immutable(),
		field.Time("fecha_mantenimiento"),
		// Persisted at creation: caller-supplied or derived from
		// fecha_mantenimiento. Never null once the row exists.
		field.Time("proximo_mantenimiento"),
		field.String("tecnico_id").
			NotEmpty(),
		field.String("hallazgos").
			Optional(),
		field.JSON("attachments", []string{}).
			Optional(),
	}
}

// Indexes of the Maintenance.
func (Maintenance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activo_id"),
		index.Fields("fecha_mantenimiento"),
	}
}
