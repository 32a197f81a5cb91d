package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Region holds the schema definition for the Region catalog entity.
type Region struct {
	ent.Schema
}

// Mixin of the Region.
func (Region) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Region.
func (Region) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
	}
}
