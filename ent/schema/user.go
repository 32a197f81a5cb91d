package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the identity directory entry.
// A user may optionally be linked to an Employee record; at most one
// account exists per employee, and that link is what the assignment
// coordinator follows when it sets an asset's holder pointer.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("full_name").
			Optional(),
		field.String("password_hash").
			Sensitive().
			Optional(),
		field.String("employee_id").
			Optional(),
		field.Bool("active").
			Default(true),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// One account per employee.
		index.Fields("employee_id").Unique(),
	}
}
