package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Departamento holds the schema definition for the Departamento catalog entity.
type Departamento struct {
	ent.Schema
}

// Mixin of the Departamento.
func (Departamento) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Departamento.
func (Departamento) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
	}
}
