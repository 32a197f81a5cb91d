package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModeloActivo holds the schema definition for a concrete asset model
// (brand + model + type). It carries the default technical spec values;
// individual assets may override any of them, and reads fall back to the
// model default when the asset-level field is null.
type ModeloActivo struct {
	ent.Schema
}

// Mixin of the ModeloActivo.
func (ModeloActivo) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ModeloActivo.
func (ModeloActivo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("marca_id").
			NotEmpty(),
		field.String("tipo_activo_id").
			Optional(),

		// Compute spec defaults (computadora, laptop, servidor, ...)
		field.String("procesador").
			Optional(),
		field.Int("ram").
			Optional(),
		field.String("almacenamiento").
			Optional(),
		field.String("tarjeta_grafica").
			Optional(),
		field.Bool("wifi").
			Default(false),
		field.Bool("ethernet").
			Default(false),

		// Network gear spec defaults (switch, router, firewall, ...)
		field.String("puertos_ethernet").
			Optional(),
		field.String("puertos_sfp").
			Optional(),
		field.Bool("puerto_consola").
			Default(false),
		field.String("puertos_poe").
			Optional(),
		field.String("alimentacion").
			Optional(),
		field.Bool("administrable").
			Default(false),

		// Peripheral spec defaults (everything else)
		field.String("tamano").
			Optional(),
		field.String("color").
			Optional(),
		field.String("conectores").
			Optional(),
		field.String("cables").
			Optional(),
	}
}

// Indexes of the ModeloActivo.
func (ModeloActivo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("marca_id"),
		index.Fields("tipo_activo_id"),
	}
}
