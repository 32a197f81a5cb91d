package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Finca holds the schema definition for the Finca (site) catalog entity.
// Each finca belongs to exactly one region.
type Finca struct {
	ent.Schema
}

// Mixin of the Finca.
func (Finca) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Finca.
func (Finca) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("region_id").
			NotEmpty(),
	}
}

// Indexes of the Finca.
func (Finca) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "region_id").Unique(),
	}
}
