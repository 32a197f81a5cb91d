package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Employee holds the schema definition for an employee record.
// Employees are the targets of asset assignments; they are reference
// data as far as the core invariants are concerned.
type Employee struct {
	ent.Schema
}

// Mixin of the Employee.
func (Employee) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Employee.
func (Employee) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("employee_number").
			NotEmpty().
			Unique(),
		field.String("first_name").
			NotEmpty(),
		field.String("last_name").
			NotEmpty(),
		field.String("region_id").
			Optional(),
		field.String("finca_id").
			Optional(),
		field.String("departamento_id").
			Optional(),
		field.String("area_id").
			Optional(),
		field.Time("start_date").
			Optional().
			Nillable(),
		field.String("supervisor_id").
			Optional(),
		field.String("document_path").
			Optional(),
	}
}

// Indexes of the Employee.
func (Employee) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("departamento_id"),
		index.Fields("region_id"),
	}
}
