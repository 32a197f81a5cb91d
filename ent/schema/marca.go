package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Marca holds the schema definition for the brand catalog entity.
type Marca struct {
	ent.Schema
}

// Mixin of the Marca.
func (Marca) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Marca.
func (Marca) Fields() []ent.Field {
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
