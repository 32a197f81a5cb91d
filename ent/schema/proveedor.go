package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Proveedor holds the schema definition for the supplier catalog entity.
type Proveedor struct {
	ent.Schema
}

// Mixin of the Proveedor.
func (Proveedor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Proveedor.
func (Proveedor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("nombre_empresa").
			NotEmpty().
			Unique(),
		field.String("nit").
			NotEmpty().
			Unique(),
		field.String("direccion").
			Optional(),
		field.String("nombre_contacto").
			Optional(),
		field.String("telefono_ventas").
			Optional(),
		field.String("correo_ventas").
			Optional(),
		field.String("telefono_soporte").
			Optional(),
		field.String("correo_soporte").
			Optional(),
	}
}
