// Code generated by ent, DO NOT EDIT.

package proveedor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldUpdatedAt, v))
}

// NombreEmpresa applies equality check predicate on the "nombre_empresa" field. It's identical to NombreEmpresaEQ.
func NombreEmpresa(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldNombreEmpresa, v))
}

// Nit applies equality check predicate on the "nit" field. It's identical to NitEQ.
func Nit(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldNit, v))
}

// Direccion applies equality check predicate on the "direccion" field. It's identical to DireccionEQ.
func Direccion(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldDireccion, v))
}

// NombreContacto applies equality check predicate on the "nombre_contacto" field. It's identical to NombreContactoEQ.
func NombreContacto(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldNombreContacto, v))
}

// TelefonoVentas applies equality check predicate on the "telefono_ventas" field. It's identical to TelefonoVentasEQ.
func TelefonoVentas(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldTelefonoVentas, v))
}

// CorreoVentas applies equality check predicate on the "correo_ventas" field. It's identical to CorreoVentasEQ.
func CorreoVentas(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldCorreoVentas, v))
}

// TelefonoSoporte applies equality check predicate on the "telefono_soporte" field. It's identical to TelefonoSoporteEQ.
func TelefonoSoporte(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldTelefonoSoporte, v))
}

// CorreoSoporte applies equality check predicate on the "correo_soporte" field. It's identical to CorreoSoporteEQ.
func CorreoSoporte(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldCorreoSoporte, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldUpdatedAt, v))
}

// NombreEmpresaEQ applies the EQ predicate on the "nombre_empresa" field.
func NombreEmpresaEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldNombreEmpresa, v))
}

// NombreEmpresaNEQ applies the NEQ predicate on the "nombre_empresa" field.
func NombreEmpresaNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldNombreEmpresa, v))
}

// NombreEmpresaIn applies the In predicate on the "nombre_empresa" field.
func NombreEmpresaIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldNombreEmpresa, vs...))
}

// NombreEmpresaNotIn applies the NotIn predicate on the "nombre_empresa" field.
func NombreEmpresaNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldNombreEmpresa, vs...))
}

// NombreEmpresaGT applies the GT predicate on the "nombre_empresa" field.
func NombreEmpresaGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldNombreEmpresa, v))
}

// NombreEmpresaGTE applies the GTE predicate on the "nombre_empresa" field.
func NombreEmpresaGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldNombreEmpresa, v))
}

// NombreEmpresaLT applies the LT predicate on the "nombre_empresa" field.
func NombreEmpresaLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldNombreEmpresa, v))
}

// NombreEmpresaLTE applies the LTE predicate on the "nombre_empresa" field.
func NombreEmpresaLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldNombreEmpresa, v))
}

// NombreEmpresaContains applies the Contains predicate on the "nombre_empresa" field.
func NombreEmpresaContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldNombreEmpresa, v))
}

// NombreEmpresaHasPrefix applies the HasPrefix predicate on the "nombre_empresa" field.
func NombreEmpresaHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldNombreEmpresa, v))
}

// NombreEmpresaHasSuffix applies the HasSuffix predicate on the "nombre_empresa" field.
func NombreEmpresaHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldNombreEmpresa, v))
}

// NombreEmpresaEqualFold applies the EqualFold predicate on the "nombre_empresa" field.
func NombreEmpresaEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldNombreEmpresa, v))
}

// NombreEmpresaContainsFold applies the ContainsFold predicate on the "nombre_empresa" field.
func NombreEmpresaContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldNombreEmpresa, v))
}

// NitEQ applies the EQ predicate on the "nit" field.
func NitEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldNit, v))
}

// NitNEQ applies the NEQ predicate on the "nit" field.
func NitNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldNit, v))
}

// NitIn applies the In predicate on the "nit" field.
func NitIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldNit, vs...))
}

// NitNotIn applies the NotIn predicate on the "nit" field.
func NitNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldNit, vs...))
}

// NitGT applies the GT predicate on the "nit" field.
func NitGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldNit, v))
}

// NitGTE applies the GTE predicate on the "nit" field.
func NitGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldNit, v))
}

// NitLT applies the LT predicate on the "nit" field.
func NitLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldNit, v))
}

// NitLTE applies the LTE predicate on the "nit" field.
func NitLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldNit, v))
}

// NitContains applies the Contains predicate on the "nit" field.
func NitContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldNit, v))
}

// NitHasPrefix applies the HasPrefix predicate on the "nit" field.
func NitHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldNit, v))
}

// NitHasSuffix applies the HasSuffix predicate on the "nit" field.
func NitHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldNit, v))
}

// NitEqualFold applies the EqualFold predicate on the "nit" field.
func NitEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldNit, v))
}

// NitContainsFold applies the ContainsFold predicate on the "nit" field.
func NitContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldNit, v))
}

// DireccionEQ applies the EQ predicate on the "direccion" field.
func DireccionEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldDireccion, v))
}

// DireccionNEQ applies the NEQ predicate on the "direccion" field.
func DireccionNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldDireccion, v))
}

// DireccionIn applies the In predicate on the "direccion" field.
func DireccionIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldDireccion, vs...))
}

// DireccionNotIn applies the NotIn predicate on the "direccion" field.
func DireccionNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldDireccion, vs...))
}

// DireccionGT applies the GT predicate on the "direccion" field.
func DireccionGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldDireccion, v))
}

// DireccionGTE applies the GTE predicate on the "direccion" field.
func DireccionGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldDireccion, v))
}

// DireccionLT applies the LT predicate on the "direccion" field.
func DireccionLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldDireccion, v))
}

// DireccionLTE applies the LTE predicate on the "direccion" field.
func DireccionLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldDireccion, v))
}

// DireccionContains applies the Contains predicate on the "direccion" field.
func DireccionContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldDireccion, v))
}

// DireccionHasPrefix applies the HasPrefix predicate on the "direccion" field.
func DireccionHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldDireccion, v))
}

// DireccionHasSuffix applies the HasSuffix predicate on the "direccion" field.
func DireccionHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldDireccion, v))
}

// DireccionIsNil applies the IsNil predicate on the "direccion" field.
func DireccionIsNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIsNull(FieldDireccion))
}

// DireccionNotNil applies the NotNil predicate on the "direccion" field.
func DireccionNotNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotNull(FieldDireccion))
}

// DireccionEqualFold applies the EqualFold predicate on the "direccion" field.
func DireccionEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldDireccion, v))
}

// DireccionContainsFold applies the ContainsFold predicate on the "direccion" field.
func DireccionContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldDireccion, v))
}

// NombreContactoEQ applies the EQ predicate on the "nombre_contacto" field.
func NombreContactoEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldNombreContacto, v))
}

// NombreContactoNEQ applies the NEQ predicate on the "nombre_contacto" field.
func NombreContactoNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldNombreContacto, v))
}

// NombreContactoIn applies the In predicate on the "nombre_contacto" field.
func NombreContactoIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldNombreContacto, vs...))
}

// NombreContactoNotIn applies the NotIn predicate on the "nombre_contacto" field.
func NombreContactoNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldNombreContacto, vs...))
}

// NombreContactoGT applies the GT predicate on the "nombre_contacto" field.
func NombreContactoGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldNombreContacto, v))
}

// NombreContactoGTE applies the GTE predicate on the "nombre_contacto" field.
func NombreContactoGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldNombreContacto, v))
}

// NombreContactoLT applies the LT predicate on the "nombre_contacto" field.
func NombreContactoLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldNombreContacto, v))
}

// NombreContactoLTE applies the LTE predicate on the "nombre_contacto" field.
func NombreContactoLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldNombreContacto, v))
}

// NombreContactoContains applies the Contains predicate on the "nombre_contacto" field.
func NombreContactoContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldNombreContacto, v))
}

// NombreContactoHasPrefix applies the HasPrefix predicate on the "nombre_contacto" field.
func NombreContactoHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldNombreContacto, v))
}

// NombreContactoHasSuffix applies the HasSuffix predicate on the "nombre_contacto" field.
func NombreContactoHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldNombreContacto, v))
}

// NombreContactoIsNil applies the IsNil predicate on the "nombre_contacto" field.
func NombreContactoIsNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIsNull(FieldNombreContacto))
}

// NombreContactoNotNil applies the NotNil predicate on the "nombre_contacto" field.
func NombreContactoNotNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotNull(FieldNombreContacto))
}

// NombreContactoEqualFold applies the EqualFold predicate on the "nombre_contacto" field.
func NombreContactoEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldNombreContacto, v))
}

// NombreContactoContainsFold applies the ContainsFold predicate on the "nombre_contacto" field.
func NombreContactoContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldNombreContacto, v))
}

// TelefonoVentasEQ applies the EQ predicate on the "telefono_ventas" field.
func TelefonoVentasEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldTelefonoVentas, v))
}

// TelefonoVentasNEQ applies the NEQ predicate on the "telefono_ventas" field.
func TelefonoVentasNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldTelefonoVentas, v))
}

// TelefonoVentasIn applies the In predicate on the "telefono_ventas" field.
func TelefonoVentasIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldTelefonoVentas, vs...))
}

// TelefonoVentasNotIn applies the NotIn predicate on the "telefono_ventas" field.
func TelefonoVentasNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldTelefonoVentas, vs...))
}

// TelefonoVentasGT applies the GT predicate on the "telefono_ventas" field.
func TelefonoVentasGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldTelefonoVentas, v))
}

// TelefonoVentasGTE applies the GTE predicate on the "telefono_ventas" field.
func TelefonoVentasGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldTelefonoVentas, v))
}

// TelefonoVentasLT applies the LT predicate on the "telefono_ventas" field.
func TelefonoVentasLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldTelefonoVentas, v))
}

// TelefonoVentasLTE applies the LTE predicate on the "telefono_ventas" field.
func TelefonoVentasLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldTelefonoVentas, v))
}

// TelefonoVentasContains applies the Contains predicate on the "telefono_ventas" field.
func TelefonoVentasContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldTelefonoVentas, v))
}

// TelefonoVentasHasPrefix applies the HasPrefix predicate on the "telefono_ventas" field.
func TelefonoVentasHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldTelefonoVentas, v))
}

// TelefonoVentasHasSuffix applies the HasSuffix predicate on the "telefono_ventas" field.
func TelefonoVentasHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldTelefonoVentas, v))
}

// TelefonoVentasIsNil applies the IsNil predicate on the "telefono_ventas" field.
func TelefonoVentasIsNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIsNull(FieldTelefonoVentas))
}

// TelefonoVentasNotNil applies the NotNil predicate on the "telefono_ventas" field.
func TelefonoVentasNotNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotNull(FieldTelefonoVentas))
}

// TelefonoVentasEqualFold applies the EqualFold predicate on the "telefono_ventas" field.
func TelefonoVentasEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldTelefonoVentas, v))
}

// TelefonoVentasContainsFold applies the ContainsFold predicate on the "telefono_ventas" field.
func TelefonoVentasContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldTelefonoVentas, v))
}

// CorreoVentasEQ applies the EQ predicate on the "correo_ventas" field.
func CorreoVentasEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldCorreoVentas, v))
}

// CorreoVentasNEQ applies the NEQ predicate on the "correo_ventas" field.
func CorreoVentasNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldCorreoVentas, v))
}

// CorreoVentasIn applies the In predicate on the "correo_ventas" field.
func CorreoVentasIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldCorreoVentas, vs...))
}

// CorreoVentasNotIn applies the NotIn predicate on the "correo_ventas" field.
func CorreoVentasNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldCorreoVentas, vs...))
}

// CorreoVentasGT applies the GT predicate on the "correo_ventas" field.
func CorreoVentasGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldCorreoVentas, v))
}

// CorreoVentasGTE applies the GTE predicate on the "correo_ventas" field.
func CorreoVentasGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldCorreoVentas, v))
}

// CorreoVentasLT applies the LT predicate on the "correo_ventas" field.
func CorreoVentasLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldCorreoVentas, v))
}

// CorreoVentasLTE applies the LTE predicate on the "correo_ventas" field.
func CorreoVentasLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldCorreoVentas, v))
}

// CorreoVentasContains applies the Contains predicate on the "correo_ventas" field.
func CorreoVentasContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldCorreoVentas, v))
}

// CorreoVentasHasPrefix applies the HasPrefix predicate on the "correo_ventas" field.
func CorreoVentasHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldCorreoVentas, v))
}

// CorreoVentasHasSuffix applies the HasSuffix predicate on the "correo_ventas" field.
func CorreoVentasHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldCorreoVentas, v))
}

// CorreoVentasIsNil applies the IsNil predicate on the "correo_ventas" field.
func CorreoVentasIsNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIsNull(FieldCorreoVentas))
}

// CorreoVentasNotNil applies the NotNil predicate on the "correo_ventas" field.
func CorreoVentasNotNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotNull(FieldCorreoVentas))
}

// CorreoVentasEqualFold applies the EqualFold predicate on the "correo_ventas" field.
func CorreoVentasEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldCorreoVentas, v))
}

// CorreoVentasContainsFold applies the ContainsFold predicate on the "correo_ventas" field.
func CorreoVentasContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldCorreoVentas, v))
}

// TelefonoSoporteEQ applies the EQ predicate on the "telefono_soporte" field.
func TelefonoSoporteEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldTelefonoSoporte, v))
}

// TelefonoSoporteNEQ applies the NEQ predicate on the "telefono_soporte" field.
func TelefonoSoporteNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldTelefonoSoporte, v))
}

// TelefonoSoporteIn applies the In predicate on the "telefono_soporte" field.
func TelefonoSoporteIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldTelefonoSoporte, vs...))
}

// TelefonoSoporteNotIn applies the NotIn predicate on the "telefono_soporte" field.
func TelefonoSoporteNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldTelefonoSoporte, vs...))
}

// TelefonoSoporteGT applies the GT predicate on the "telefono_soporte" field.
func TelefonoSoporteGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldTelefonoSoporte, v))
}

// TelefonoSoporteGTE applies the GTE predicate on the "telefono_soporte" field.
func TelefonoSoporteGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldTelefonoSoporte, v))
}

// TelefonoSoporteLT applies the LT predicate on the "telefono_soporte" field.
func TelefonoSoporteLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldTelefonoSoporte, v))
}

// TelefonoSoporteLTE applies the LTE predicate on the "telefono_soporte" field.
func TelefonoSoporteLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldTelefonoSoporte, v))
}

// TelefonoSoporteContains applies the Contains predicate on the "telefono_soporte" field.
func TelefonoSoporteContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldTelefonoSoporte, v))
}

// TelefonoSoporteHasPrefix applies the HasPrefix predicate on the "telefono_soporte" field.
func TelefonoSoporteHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldTelefonoSoporte, v))
}

// TelefonoSoporteHasSuffix applies the HasSuffix predicate on the "telefono_soporte" field.
func TelefonoSoporteHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldTelefonoSoporte, v))
}

// TelefonoSoporteIsNil applies the IsNil predicate on the "telefono_soporte" field.
func TelefonoSoporteIsNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIsNull(FieldTelefonoSoporte))
}

// TelefonoSoporteNotNil applies the NotNil predicate on the "telefono_soporte" field.
func TelefonoSoporteNotNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotNull(FieldTelefonoSoporte))
}

// TelefonoSoporteEqualFold applies the EqualFold predicate on the "telefono_soporte" field.
func TelefonoSoporteEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldTelefonoSoporte, v))
}

// TelefonoSoporteContainsFold applies the ContainsFold predicate on the "telefono_soporte" field.
func TelefonoSoporteContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldTelefonoSoporte, v))
}

// CorreoSoporteEQ applies the EQ predicate on the "correo_soporte" field.
func CorreoSoporteEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEQ(FieldCorreoSoporte, v))
}

// CorreoSoporteNEQ applies the NEQ predicate on the "correo_soporte" field.
func CorreoSoporteNEQ(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNEQ(FieldCorreoSoporte, v))
}

// CorreoSoporteIn applies the In predicate on the "correo_soporte" field.
func CorreoSoporteIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIn(FieldCorreoSoporte, vs...))
}

// CorreoSoporteNotIn applies the NotIn predicate on the "correo_soporte" field.
func CorreoSoporteNotIn(vs ...string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotIn(FieldCorreoSoporte, vs...))
}

// CorreoSoporteGT applies the GT predicate on the "correo_soporte" field.
func CorreoSoporteGT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGT(FieldCorreoSoporte, v))
}

// CorreoSoporteGTE applies the GTE predicate on the "correo_soporte" field.
func CorreoSoporteGTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldGTE(FieldCorreoSoporte, v))
}

// CorreoSoporteLT applies the LT predicate on the "correo_soporte" field.
func CorreoSoporteLT(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLT(FieldCorreoSoporte, v))
}

// CorreoSoporteLTE applies the LTE predicate on the "correo_soporte" field.
func CorreoSoporteLTE(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldLTE(FieldCorreoSoporte, v))
}

// CorreoSoporteContains applies the Contains predicate on the "correo_soporte" field.
func CorreoSoporteContains(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContains(FieldCorreoSoporte, v))
}

// CorreoSoporteHasPrefix applies the HasPrefix predicate on the "correo_soporte" field.
func CorreoSoporteHasPrefix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasPrefix(FieldCorreoSoporte, v))
}

// CorreoSoporteHasSuffix applies the HasSuffix predicate on the "correo_soporte" field.
func CorreoSoporteHasSuffix(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldHasSuffix(FieldCorreoSoporte, v))
}

// CorreoSoporteIsNil applies the IsNil predicate on the "correo_soporte" field.
func CorreoSoporteIsNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldIsNull(FieldCorreoSoporte))
}

// CorreoSoporteNotNil applies the NotNil predicate on the "correo_soporte" field.
func CorreoSoporteNotNil() predicate.Proveedor {
	return predicate.Proveedor(sql.FieldNotNull(FieldCorreoSoporte))
}

// CorreoSoporteEqualFold applies the EqualFold predicate on the "correo_soporte" field.
func CorreoSoporteEqualFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldEqualFold(FieldCorreoSoporte, v))
}

// CorreoSoporteContainsFold applies the ContainsFold predicate on the "correo_soporte" field.
func CorreoSoporteContainsFold(v string) predicate.Proveedor {
	return predicate.Proveedor(sql.FieldContainsFold(FieldCorreoSoporte, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Proveedor) predicate.Proveedor {
	return predicate.Proveedor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Proveedor) predicate.Proveedor {
	return predicate.Proveedor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Proveedor) predicate.Proveedor {
	return predicate.Proveedor(sql.NotPredicates(p))
}
