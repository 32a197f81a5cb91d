package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activo holds the schema definition for an individual technology asset.
//
// Two groups of fields are denormalized caches with single-writer
// discipline: the holder pointer (assigned_to_id, written only by the
// assignment coordinator) and the maintenance cache (ultimo_mantenimiento,
// proximo_mantenimiento, tecnico_mantenimiento_id,
// ultimo_mantenimiento_hallazgos, written only by the maintenance recorder).
// Asset-editing operations never touch either group.
type Activo struct {
	ent.Schema
}

// Mixin of the Activo.
func (Activo) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Activo.
func (Activo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),

		// Catalog references.
		field.String("tipo_activo_id").
			NotEmpty(),
		field.String("marca_id").
			NotEmpty(),
		field.String("modelo_id").
			NotEmpty(),
		field.String("proveedor_id").
			NotEmpty(),
		field.String("region_id").
			NotEmpty(),
		field.String("finca_id").
			NotEmpty(),
		field.String("departamento_id").
			NotEmpty(),
		field.String("area_id").
			NotEmpty(),

		// Identifiers: unique and immutable for the asset's lifetime.
		field.String("serie").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("hostname").
			NotEmpty().
			Unique().
			Immutable(),

		field.Time("fecha_registro"),
		field.Time("fecha_fin_garantia").
			Optional().
			Nillable(),

		// Commercial fields, all optional.
		field.String("solicitante").
			Optional(),
		field.String("correo_electronico").
			Optional(),
		field.String("orden_compra").
			Optional(),
		field.String("cuenta_contable").
			Optional(),
		field.Enum("tipo_costo").
			Values("costo", "mensualidad").
			Optional(),
		field.Int("cuotas").
			Optional().
			Nillable(),
		field.Enum("moneda").
			Values("USD", "GTQ").
			Optional(),
		field.Float("costo").
			Optional().
			Nillable(),

		// Technical spec overrides. Null means "inherit from the model".
		field.String("procesador").
			Optional().
			Nillable(),
		field.Int("ram").
			Optional().
			Nillable(),
		field.String("almacenamiento").
			Optional().
			Nillable(),
		field.String("tarjeta_grafica").
			Optional().
			Nillable(),
		field.Bool("wifi").
			Optional().
			Nillable(),
		field.Bool("ethernet").
			Optional().
			Nillable(),
		field.String("puertos_ethernet").
			Optional().
			Nillable(),
		field.String("puertos_sfp").
			Optional().
			Nillable(),
		field.Bool("puerto_consola").
			Optional().
			Nillable(),
		field.String("puertos_poe").
			Optional().
			Nillable(),
		field.String("alimentacion").
			Optional().
			Nillable(),
		field.Bool("administrable").
			Optional().
			Nillable(),
		field.String("tamano").
			Optional().
			Nillable(),
		field.String("color").
			Optional().
			Nillable(),
		field.String("conectores").
			Optional().
			Nillable(),
		field.String("cables").
			Optional().
			Nillable(),

		// Lifecycle state. A retired asset always carries fecha_baja and a
		// non-empty motivo_baja; reactivation clears all four fields.
		field.Enum("estado").
			Values("activo", "retirado").
			Default("activo"),
		field.Time("fecha_baja").
			Optional().
			Nillable(),
		field.String("motivo_baja").
			Optional(),
		field.String("usuario_baja_id").
			Optional(),
		field.JSON("documentos_baja", []string{}).
			Optional(),

		// Holder pointer cache owned by the assignment coordinator.
		field.String("assigned_to_id").
			Optional(),

		// Maintenance cache owned by the maintenance recorder.
		field.Time("ultimo_mantenimiento").
			Optional().
			Nillable(),
		field.Time("proximo_mantenimiento").
			Optional().
			Nillable(),
		field.String("tecnico_mantenimiento_id").
			Optional(),
		field.String("ultimo_mantenimiento_hallazgos").
			Optional(),
	}
}

// Indexes of the Activo.
func (Activo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("estado"),
		index.Fields("tipo_activo_id"),
		index.Fields("region_id"),
		index.Fields("modelo_id"),
		index.Fields("fecha_fin_garantia"),
		index.Fields("proximo_mantenimiento"),
	}
}
