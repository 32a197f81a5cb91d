package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Area holds the schema definition for the Area catalog entity.
// Area names are unique within their departamento, not globally.
type Area struct {
	ent.Schema
}

// Mixin of the Area.
func (Area) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Area.
func (Area) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("departamento_id").
			NotEmpty(),
	}
}

// Indexes of the Area.
func (Area) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "departamento_id").Unique(),
	}
}
