// Code generated by ent, DO NOT EDIT.

package maintenance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActivoID applies equality check predicate on the "activo_id" field. It's identical to ActivoIDEQ.
func ActivoID(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldActivoID, v))
}

// FechaMantenimiento applies equality check predicate on the "fecha_mantenimiento" field. It's identical to FechaMantenimientoEQ.
func FechaMantenimiento(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldFechaMantenimiento, v))
}

// ProximoMantenimiento applies equality check predicate on the "proximo_mantenimiento" field. It's identical to ProximoMantenimientoEQ.
func ProximoMantenimiento(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldProximoMantenimiento, v))
}

// TecnicoID applies equality check predicate on the "tecnico_id" field. It's identical to TecnicoIDEQ.
func TecnicoID(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldTecnicoID, v))
}

// Hallazgos applies equality check predicate on the "hallazgos" field. It's identical to HallazgosEQ.
func Hallazgos(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldHallazgos, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldUpdatedAt, v))
}

// ActivoIDEQ applies the EQ predicate on the "activo_id" field.
func ActivoIDEQ(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldActivoID, v))
}

// ActivoIDNEQ applies the NEQ predicate on the "activo_id" field.
func ActivoIDNEQ(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldActivoID, v))
}

// ActivoIDIn applies the In predicate on the "activo_id" field.
func ActivoIDIn(vs ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldActivoID, vs...))
}

// ActivoIDNotIn applies the NotIn predicate on the "activo_id" field.
func ActivoIDNotIn(vs ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldActivoID, vs...))
}

// ActivoIDGT applies the GT predicate on the "activo_id" field.
func ActivoIDGT(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldActivoID, v))
}

// ActivoIDGTE applies the GTE predicate on the "activo_id" field.
func ActivoIDGTE(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldActivoID, v))
}

// ActivoIDLT applies the LT predicate on the "activo_id" field.
func ActivoIDLT(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldActivoID, v))
}

// ActivoIDLTE applies the LTE predicate on the "activo_id" field.
func ActivoIDLTE(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldActivoID, v))
}

// ActivoIDContains applies the Contains predicate on the "activo_id" field.
func ActivoIDContains(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldContains(FieldActivoID, v))
}

// ActivoIDHasPrefix applies the HasPrefix predicate on the "activo_id" field.
func ActivoIDHasPrefix(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldHasPrefix(FieldActivoID, v))
}

// ActivoIDHasSuffix applies the HasSuffix predicate on the "activo_id" field.
func ActivoIDHasSuffix(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldHasSuffix(FieldActivoID, v))
}

// ActivoIDEqualFold applies the EqualFold predicate on the "activo_id" field.
func ActivoIDEqualFold(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEqualFold(FieldActivoID, v))
}

// ActivoIDContainsFold applies the ContainsFold predicate on the "activo_id" field.
func ActivoIDContainsFold(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldContainsFold(FieldActivoID, v))
}

// FechaMantenimientoEQ applies the EQ predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldFechaMantenimiento, v))
}

// FechaMantenimientoNEQ applies the NEQ predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoNEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldFechaMantenimiento, v))
}

// FechaMantenimientoIn applies the In predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldFechaMantenimiento, vs...))
}

// FechaMantenimientoNotIn applies the NotIn predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoNotIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldFechaMantenimiento, vs...))
}

// FechaMantenimientoGT applies the GT predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoGT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldFechaMantenimiento, v))
}

// FechaMantenimientoGTE applies the GTE predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoGTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldFechaMantenimiento, v))
}

// FechaMantenimientoLT applies the LT predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoLT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldFechaMantenimiento, v))
}

// FechaMantenimientoLTE applies the LTE predicate on the "fecha_mantenimiento" field.
func FechaMantenimientoLTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldFechaMantenimiento, v))
}

// ProximoMantenimientoEQ applies the EQ predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoNEQ applies the NEQ predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoNEQ(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoIn applies the In predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldProximoMantenimiento, vs...))
}

// ProximoMantenimientoNotIn applies the NotIn predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoNotIn(vs ...time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldProximoMantenimiento, vs...))
}

// ProximoMantenimientoGT applies the GT predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoGT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoGTE applies the GTE predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoGTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoLT applies the LT predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoLT(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoLTE applies the LTE predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoLTE(v time.Time) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldProximoMantenimiento, v))
}

// TecnicoIDEQ applies the EQ predicate on the "tecnico_id" field.
func TecnicoIDEQ(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldTecnicoID, v))
}

// TecnicoIDNEQ applies the NEQ predicate on the "tecnico_id" field.
func TecnicoIDNEQ(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldTecnicoID, v))
}

// TecnicoIDIn applies the In predicate on the "tecnico_id" field.
func TecnicoIDIn(vs ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldTecnicoID, vs...))
}

// TecnicoIDNotIn applies the NotIn predicate on the "tecnico_id" field.
func TecnicoIDNotIn(vs ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldTecnicoID, vs...))
}

// TecnicoIDGT applies the GT predicate on the "tecnico_id" field.
func TecnicoIDGT(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldTecnicoID, v))
}

// TecnicoIDGTE applies the GTE predicate on the "tecnico_id" field.
func TecnicoIDGTE(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldTecnicoID, v))
}

// TecnicoIDLT applies the LT predicate on the "tecnico_id" field.
func TecnicoIDLT(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldTecnicoID, v))
}

// TecnicoIDLTE applies the LTE predicate on the "tecnico_id" field.
func TecnicoIDLTE(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldTecnicoID, v))
}

// TecnicoIDContains applies the Contains predicate on the "tecnico_id" field.
func TecnicoIDContains(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldContains(FieldTecnicoID, v))
}

// TecnicoIDHasPrefix applies the HasPrefix predicate on the "tecnico_id" field.
func TecnicoIDHasPrefix(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldHasPrefix(FieldTecnicoID, v))
}

// TecnicoIDHasSuffix applies the HasSuffix predicate on the "tecnico_id" field.
func TecnicoIDHasSuffix(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldHasSuffix(FieldTecnicoID, v))
}

// TecnicoIDEqualFold applies the EqualFold predicate on the "tecnico_id" field.
func TecnicoIDEqualFold(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEqualFold(FieldTecnicoID, v))
}

// TecnicoIDContainsFold applies the ContainsFold predicate on the "tecnico_id" field.
func TecnicoIDContainsFold(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldContainsFold(FieldTecnicoID, v))
}

// HallazgosEQ applies the EQ predicate on the "hallazgos" field.
func HallazgosEQ(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEQ(FieldHallazgos, v))
}

// HallazgosNEQ applies the NEQ predicate on the "hallazgos" field.
func HallazgosNEQ(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNEQ(FieldHallazgos, v))
}

// HallazgosIn applies the In predicate on the "hallazgos" field.
func HallazgosIn(vs ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIn(FieldHallazgos, vs...))
}

// HallazgosNotIn applies the NotIn predicate on the "hallazgos" field.
func HallazgosNotIn(vs ...string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotIn(FieldHallazgos, vs...))
}

// HallazgosGT applies the GT predicate on the "hallazgos" field.
func HallazgosGT(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGT(FieldHallazgos, v))
}

// HallazgosGTE applies the GTE predicate on the "hallazgos" field.
func HallazgosGTE(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldGTE(FieldHallazgos, v))
}

// HallazgosLT applies the LT predicate on the "hallazgos" field.
func HallazgosLT(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLT(FieldHallazgos, v))
}

// HallazgosLTE applies the LTE predicate on the "hallazgos" field.
func HallazgosLTE(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldLTE(FieldHallazgos, v))
}

// HallazgosContains applies the Contains predicate on the "hallazgos" field.
func HallazgosContains(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldContains(FieldHallazgos, v))
}

// HallazgosHasPrefix applies the HasPrefix predicate on the "hallazgos" field.
func HallazgosHasPrefix(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldHasPrefix(FieldHallazgos, v))
}

// HallazgosHasSuffix applies the HasSuffix predicate on the "hallazgos" field.
func HallazgosHasSuffix(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldHasSuffix(FieldHallazgos, v))
}

// HallazgosIsNil applies the IsNil predicate on the "hallazgos" field.
func HallazgosIsNil() predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIsNull(FieldHallazgos))
}

// HallazgosNotNil applies the NotNil predicate on the "hallazgos" field.
func HallazgosNotNil() predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotNull(FieldHallazgos))
}

// HallazgosEqualFold applies the EqualFold predicate on the "hallazgos" field.
func HallazgosEqualFold(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldEqualFold(FieldHallazgos, v))
}

// HallazgosContainsFold applies the ContainsFold predicate on the "hallazgos" field.
func HallazgosContainsFold(v string) predicate.Maintenance {
	return predicate.Maintenance(sql.FieldContainsFold(FieldHallazgos, v))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.Maintenance {
	return predicate.Maintenance(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.Maintenance {
	return predicate.Maintenance(sql.FieldNotNull(FieldAttachments))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Maintenance) predicate.Maintenance {
	return predicate.Maintenance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Maintenance) predicate.Maintenance {
	return predicate.Maintenance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Maintenance) predicate.Maintenance {
	return predicate.Maintenance(sql.NotPredicates(p))
}
