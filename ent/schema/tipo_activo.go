package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TipoActivo holds the schema definition for the asset-type catalog entity
// (computadora, laptop, switch, impresora, ...). The type drives which spec
// fields are relevant for a model and backs the one-active-assignment-per-type
// rule in the assignment coordinator.
type TipoActivo struct {
	ent.Schema
}

// Mixin of the TipoActivo.
func (TipoActivo) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the TipoActivo.
func (TipoActivo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("description").
			Optional(),
	}
}
