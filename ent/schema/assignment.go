package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment holds the schema definition for an asset custody record.
// A row with a nil returned_date is active; at most one active row may
// exist per asset, enforced by a partial unique index so the invariant
// survives concurrent writers.
type Assignment struct {
	ent.Schema
}

// Mixin of the Assignment.
func (Assignment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Assignment.
func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("activo_id").
			NotEmpty().
			Immutable(),
		field.String("employee_id").
			NotEmpty().
			Immutable(),
		field.Time("assigned_date"),
		field.Time("returned_date").
			Optional().
			Nillable(),
		field.String("assigned_by_id").
			NotEmpty().
			Immutable(),
		field.String("returned_by_id").
			Optional(),
		field.String("notes").
			Optional(),
	}
}

// Indexes of the Assignment.
func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activo_id").
			Unique().
			Annotations(entsql.IndexWhere("returned_date IS NULL")),
		index.Fields("employee_id"),
	}
}
