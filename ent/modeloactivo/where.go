// Code generated by ent, DO NOT EDIT.

package modeloactivo

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldName, v))
}

// MarcaID applies equality check predicate on the "marca_id" field. It's identical to MarcaIDEQ.
func MarcaID(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldMarcaID, v))
}

// TipoActivoID applies equality check predicate on the "tipo_activo_id" field. It's identical to TipoActivoIDEQ.
func TipoActivoID(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldTipoActivoID, v))
}

// Procesador applies equality check predicate on the "procesador" field. It's identical to ProcesadorEQ.
func Procesador(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldProcesador, v))
}

// RAM applies equality check predicate on the "ram" field. It's identical to RAMEQ.
func RAM(v int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldRAM, v))
}

// Almacenamiento applies equality check predicate on the "almacenamiento" field. It's identical to AlmacenamientoEQ.
func Almacenamiento(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldAlmacenamiento, v))
}

// TarjetaGrafica applies equality check predicate on the "tarjeta_grafica" field. It's identical to TarjetaGraficaEQ.
func TarjetaGrafica(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldTarjetaGrafica, v))
}

// Wifi applies equality check predicate on the "wifi" field. It's identical to WifiEQ.
func Wifi(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldWifi, v))
}

// Ethernet applies equality check predicate on the "ethernet" field. It's identical to EthernetEQ.
func Ethernet(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldEthernet, v))
}

// PuertosEthernet applies equality check predicate on the "puertos_ethernet" field. It's identical to PuertosEthernetEQ.
func PuertosEthernet(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertosEthernet, v))
}

// PuertosSfp applies equality check predicate on the "puertos_sfp" field. It's identical to PuertosSfpEQ.
func PuertosSfp(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertosSfp, v))
}

// PuertoConsola applies equality check predicate on the "puerto_consola" field. It's identical to PuertoConsolaEQ.
func PuertoConsola(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertoConsola, v))
}

// PuertosPoe applies equality check predicate on the "puertos_poe" field. It's identical to PuertosPoeEQ.
func PuertosPoe(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertosPoe, v))
}

// Alimentacion applies equality check predicate on the "alimentacion" field. It's identical to AlimentacionEQ.
func Alimentacion(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldAlimentacion, v))
}

// Administrable applies equality check predicate on the "administrable" field. It's identical to AdministrableEQ.
func Administrable(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldAdministrable, v))
}

// Tamano applies equality check predicate on the "tamano" field. It's identical to TamanoEQ.
func Tamano(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldTamano, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldColor, v))
}

// Conectores applies equality check predicate on the "conectores" field. It's identical to ConectoresEQ.
func Conectores(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldConectores, v))
}

// Cables applies equality check predicate on the "cables" field. It's identical to CablesEQ.
func Cables(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldCables, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldName, v))
}

// MarcaIDEQ applies the EQ predicate on the "marca_id" field.
func MarcaIDEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldMarcaID, v))
}

// MarcaIDNEQ applies the NEQ predicate on the "marca_id" field.
func MarcaIDNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldMarcaID, v))
}

// MarcaIDIn applies the In predicate on the "marca_id" field.
func MarcaIDIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldMarcaID, vs...))
}

// MarcaIDNotIn applies the NotIn predicate on the "marca_id" field.
func MarcaIDNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldMarcaID, vs...))
}

// MarcaIDGT applies the GT predicate on the "marca_id" field.
func MarcaIDGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldMarcaID, v))
}

// MarcaIDGTE applies the GTE predicate on the "marca_id" field.
func MarcaIDGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldMarcaID, v))
}

// MarcaIDLT applies the LT predicate on the "marca_id" field.
func MarcaIDLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldMarcaID, v))
}

// MarcaIDLTE applies the LTE predicate on the "marca_id" field.
func MarcaIDLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldMarcaID, v))
}

// MarcaIDContains applies the Contains predicate on the "marca_id" field.
func MarcaIDContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldMarcaID, v))
}

// MarcaIDHasPrefix applies the HasPrefix predicate on the "marca_id" field.
func MarcaIDHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldMarcaID, v))
}

// MarcaIDHasSuffix applies the HasSuffix predicate on the "marca_id" field.
func MarcaIDHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldMarcaID, v))
}

// MarcaIDEqualFold applies the EqualFold predicate on the "marca_id" field.
func MarcaIDEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldMarcaID, v))
}

// MarcaIDContainsFold applies the ContainsFold predicate on the "marca_id" field.
func MarcaIDContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldMarcaID, v))
}

// TipoActivoIDEQ applies the EQ predicate on the "tipo_activo_id" field.
func TipoActivoIDEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldTipoActivoID, v))
}

// TipoActivoIDNEQ applies the NEQ predicate on the "tipo_activo_id" field.
func TipoActivoIDNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldTipoActivoID, v))
}

// TipoActivoIDIn applies the In predicate on the "tipo_activo_id" field.
func TipoActivoIDIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldTipoActivoID, vs...))
}

// TipoActivoIDNotIn applies the NotIn predicate on the "tipo_activo_id" field.
func TipoActivoIDNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldTipoActivoID, vs...))
}

// TipoActivoIDGT applies the GT predicate on the "tipo_activo_id" field.
func TipoActivoIDGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldTipoActivoID, v))
}

// TipoActivoIDGTE applies the GTE predicate on the "tipo_activo_id" field.
func TipoActivoIDGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldTipoActivoID, v))
}

// TipoActivoIDLT applies the LT predicate on the "tipo_activo_id" field.
func TipoActivoIDLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldTipoActivoID, v))
}

// TipoActivoIDLTE applies the LTE predicate on the "tipo_activo_id" field.
func TipoActivoIDLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldTipoActivoID, v))
}

// TipoActivoIDContains applies the Contains predicate on the "tipo_activo_id" field.
func TipoActivoIDContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldTipoActivoID, v))
}

// TipoActivoIDHasPrefix applies the HasPrefix predicate on the "tipo_activo_id" field.
func TipoActivoIDHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldTipoActivoID, v))
}

// TipoActivoIDHasSuffix applies the HasSuffix predicate on the "tipo_activo_id" field.
func TipoActivoIDHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldTipoActivoID, v))
}

// TipoActivoIDIsNil applies the IsNil predicate on the "tipo_activo_id" field.
func TipoActivoIDIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldTipoActivoID))
}

// TipoActivoIDNotNil applies the NotNil predicate on the "tipo_activo_id" field.
func TipoActivoIDNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldTipoActivoID))
}

// TipoActivoIDEqualFold applies the EqualFold predicate on the "tipo_activo_id" field.
func TipoActivoIDEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldTipoActivoID, v))
}

// TipoActivoIDContainsFold applies the ContainsFold predicate on the "tipo_activo_id" field.
func TipoActivoIDContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldTipoActivoID, v))
}

// ProcesadorEQ applies the EQ predicate on the "procesador" field.
func ProcesadorEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldProcesador, v))
}

// ProcesadorNEQ applies the NEQ predicate on the "procesador" field.
func ProcesadorNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldProcesador, v))
}

// ProcesadorIn applies the In predicate on the "procesador" field.
func ProcesadorIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldProcesador, vs...))
}

// ProcesadorNotIn applies the NotIn predicate on the "procesador" field.
func ProcesadorNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldProcesador, vs...))
}

// ProcesadorGT applies the GT predicate on the "procesador" field.
func ProcesadorGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldProcesador, v))
}

// ProcesadorGTE applies the GTE predicate on the "procesador" field.
func ProcesadorGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldProcesador, v))
}

// ProcesadorLT applies the LT predicate on the "procesador" field.
func ProcesadorLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldProcesador, v))
}

// ProcesadorLTE applies the LTE predicate on the "procesador" field.
func ProcesadorLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldProcesador, v))
}

// ProcesadorContains applies the Contains predicate on the "procesador" field.
func ProcesadorContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldProcesador, v))
}

// ProcesadorHasPrefix applies the HasPrefix predicate on the "procesador" field.
func ProcesadorHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldProcesador, v))
}

// ProcesadorHasSuffix applies the HasSuffix predicate on the "procesador" field.
func ProcesadorHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldProcesador, v))
}

// ProcesadorIsNil applies the IsNil predicate on the "procesador" field.
func ProcesadorIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldProcesador))
}

// ProcesadorNotNil applies the NotNil predicate on the "procesador" field.
func ProcesadorNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldProcesador))
}

// ProcesadorEqualFold applies the EqualFold predicate on the "procesador" field.
func ProcesadorEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldProcesador, v))
}

// ProcesadorContainsFold applies the ContainsFold predicate on the "procesador" field.
func ProcesadorContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldProcesador, v))
}

// RAMEQ applies the EQ predicate on the "ram" field.
func RAMEQ(v int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldRAM, v))
}

// RAMNEQ applies the NEQ predicate on the "ram" field.
func RAMNEQ(v int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldRAM, v))
}

// RAMIn applies the In predicate on the "ram" field.
func RAMIn(vs ...int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldRAM, vs...))
}

// RAMNotIn applies the NotIn predicate on the "ram" field.
func RAMNotIn(vs ...int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldRAM, vs...))
}

// RAMGT applies the GT predicate on the "ram" field.
func RAMGT(v int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldRAM, v))
}

// RAMGTE applies the GTE predicate on the "ram" field.
func RAMGTE(v int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldRAM, v))
}

// RAMLT applies the LT predicate on the "ram" field.
func RAMLT(v int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldRAM, v))
}

// RAMLTE applies the LTE predicate on the "ram" field.
func RAMLTE(v int) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldRAM, v))
}

// RAMIsNil applies the IsNil predicate on the "ram" field.
func RAMIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldRAM))
}

// RAMNotNil applies the NotNil predicate on the "ram" field.
func RAMNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldRAM))
}

// AlmacenamientoEQ applies the EQ predicate on the "almacenamiento" field.
func AlmacenamientoEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldAlmacenamiento, v))
}

// AlmacenamientoNEQ applies the NEQ predicate on the "almacenamiento" field.
func AlmacenamientoNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldAlmacenamiento, v))
}

// AlmacenamientoIn applies the In predicate on the "almacenamiento" field.
func AlmacenamientoIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldAlmacenamiento, vs...))
}

// AlmacenamientoNotIn applies the NotIn predicate on the "almacenamiento" field.
func AlmacenamientoNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldAlmacenamiento, vs...))
}

// AlmacenamientoGT applies the GT predicate on the "almacenamiento" field.
func AlmacenamientoGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldAlmacenamiento, v))
}

// AlmacenamientoGTE applies the GTE predicate on the "almacenamiento" field.
func AlmacenamientoGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldAlmacenamiento, v))
}

// AlmacenamientoLT applies the LT predicate on the "almacenamiento" field.
func AlmacenamientoLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldAlmacenamiento, v))
}

// AlmacenamientoLTE applies the LTE predicate on the "almacenamiento" field.
func AlmacenamientoLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldAlmacenamiento, v))
}

// AlmacenamientoContains applies the Contains predicate on the "almacenamiento" field.
func AlmacenamientoContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldAlmacenamiento, v))
}

// AlmacenamientoHasPrefix applies the HasPrefix predicate on the "almacenamiento" field.
func AlmacenamientoHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldAlmacenamiento, v))
}

// AlmacenamientoHasSuffix applies the HasSuffix predicate on the "almacenamiento" field.
func AlmacenamientoHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldAlmacenamiento, v))
}

// AlmacenamientoIsNil applies the IsNil predicate on the "almacenamiento" field.
func AlmacenamientoIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldAlmacenamiento))
}

// AlmacenamientoNotNil applies the NotNil predicate on the "almacenamiento" field.
func AlmacenamientoNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldAlmacenamiento))
}

// AlmacenamientoEqualFold applies the EqualFold predicate on the "almacenamiento" field.
func AlmacenamientoEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldAlmacenamiento, v))
}

// AlmacenamientoContainsFold applies the ContainsFold predicate on the "almacenamiento" field.
func AlmacenamientoContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldAlmacenamiento, v))
}

// TarjetaGraficaEQ applies the EQ predicate on the "tarjeta_grafica" field.
func TarjetaGraficaEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldTarjetaGrafica, v))
}

// TarjetaGraficaNEQ applies the NEQ predicate on the "tarjeta_grafica" field.
func TarjetaGraficaNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldTarjetaGrafica, v))
}

// TarjetaGraficaIn applies the In predicate on the "tarjeta_grafica" field.
func TarjetaGraficaIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldTarjetaGrafica, vs...))
}

// TarjetaGraficaNotIn applies the NotIn predicate on the "tarjeta_grafica" field.
func TarjetaGraficaNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldTarjetaGrafica, vs...))
}

// TarjetaGraficaGT applies the GT predicate on the "tarjeta_grafica" field.
func TarjetaGraficaGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldTarjetaGrafica, v))
}

// TarjetaGraficaGTE applies the GTE predicate on the "tarjeta_grafica" field.
func TarjetaGraficaGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldTarjetaGrafica, v))
}

// TarjetaGraficaLT applies the LT predicate on the "tarjeta_grafica" field.
func TarjetaGraficaLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldTarjetaGrafica, v))
}

// TarjetaGraficaLTE applies the LTE predicate on the "tarjeta_grafica" field.
func TarjetaGraficaLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldTarjetaGrafica, v))
}

// TarjetaGraficaContains applies the Contains predicate on the "tarjeta_grafica" field.
func TarjetaGraficaContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldTarjetaGrafica, v))
}

// TarjetaGraficaHasPrefix applies the HasPrefix predicate on the "tarjeta_grafica" field.
func TarjetaGraficaHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldTarjetaGrafica, v))
}

// TarjetaGraficaHasSuffix applies the HasSuffix predicate on the "tarjeta_grafica" field.
func TarjetaGraficaHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldTarjetaGrafica, v))
}

// TarjetaGraficaIsNil applies the IsNil predicate on the "tarjeta_grafica" field.
func TarjetaGraficaIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldTarjetaGrafica))
}

// TarjetaGraficaNotNil applies the NotNil predicate on the "tarjeta_grafica" field.
func TarjetaGraficaNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldTarjetaGrafica))
}

// TarjetaGraficaEqualFold applies the EqualFold predicate on the "tarjeta_grafica" field.
func TarjetaGraficaEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldTarjetaGrafica, v))
}

// TarjetaGraficaContainsFold applies the ContainsFold predicate on the "tarjeta_grafica" field.
func TarjetaGraficaContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldTarjetaGrafica, v))
}

// WifiEQ applies the EQ predicate on the "wifi" field.
func WifiEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldWifi, v))
}

// WifiNEQ applies the NEQ predicate on the "wifi" field.
func WifiNEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldWifi, v))
}

// EthernetEQ applies the EQ predicate on the "ethernet" field.
func EthernetEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldEthernet, v))
}

// EthernetNEQ applies the NEQ predicate on the "ethernet" field.
func EthernetNEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldEthernet, v))
}

// PuertosEthernetEQ applies the EQ predicate on the "puertos_ethernet" field.
func PuertosEthernetEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertosEthernet, v))
}

// PuertosEthernetNEQ applies the NEQ predicate on the "puertos_ethernet" field.
func PuertosEthernetNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldPuertosEthernet, v))
}

// PuertosEthernetIn applies the In predicate on the "puertos_ethernet" field.
func PuertosEthernetIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldPuertosEthernet, vs...))
}

// PuertosEthernetNotIn applies the NotIn predicate on the "puertos_ethernet" field.
func PuertosEthernetNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldPuertosEthernet, vs...))
}

// PuertosEthernetGT applies the GT predicate on the "puertos_ethernet" field.
func PuertosEthernetGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldPuertosEthernet, v))
}

// PuertosEthernetGTE applies the GTE predicate on the "puertos_ethernet" field.
func PuertosEthernetGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldPuertosEthernet, v))
}

// PuertosEthernetLT applies the LT predicate on the "puertos_ethernet" field.
func PuertosEthernetLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldPuertosEthernet, v))
}

// PuertosEthernetLTE applies the LTE predicate on the "puertos_ethernet" field.
func PuertosEthernetLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldPuertosEthernet, v))
}

// PuertosEthernetContains applies the Contains predicate on the "puertos_ethernet" field.
func PuertosEthernetContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldPuertosEthernet, v))
}

// PuertosEthernetHasPrefix applies the HasPrefix predicate on the "puertos_ethernet" field.
func PuertosEthernetHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldPuertosEthernet, v))
}

// PuertosEthernetHasSuffix applies the HasSuffix predicate on the "puertos_ethernet" field.
func PuertosEthernetHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldPuertosEthernet, v))
}

// PuertosEthernetIsNil applies the IsNil predicate on the "puertos_ethernet" field.
func PuertosEthernetIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldPuertosEthernet))
}

// PuertosEthernetNotNil applies the NotNil predicate on the "puertos_ethernet" field.
func PuertosEthernetNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldPuertosEthernet))
}

// PuertosEthernetEqualFold applies the EqualFold predicate on the "puertos_ethernet" field.
func PuertosEthernetEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldPuertosEthernet, v))
}

// PuertosEthernetContainsFold applies the ContainsFold predicate on the "puertos_ethernet" field.
func PuertosEthernetContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldPuertosEthernet, v))
}

// PuertosSfpEQ applies the EQ predicate on the "puertos_sfp" field.
func PuertosSfpEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertosSfp, v))
}

// PuertosSfpNEQ applies the NEQ predicate on the "puertos_sfp" field.
func PuertosSfpNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldPuertosSfp, v))
}

// PuertosSfpIn applies the In predicate on the "puertos_sfp" field.
func PuertosSfpIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldPuertosSfp, vs...))
}

// PuertosSfpNotIn applies the NotIn predicate on the "puertos_sfp" field.
func PuertosSfpNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldPuertosSfp, vs...))
}

// PuertosSfpGT applies the GT predicate on the "puertos_sfp" field.
func PuertosSfpGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldPuertosSfp, v))
}

// PuertosSfpGTE applies the GTE predicate on the "puertos_sfp" field.
func PuertosSfpGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldPuertosSfp, v))
}

// PuertosSfpLT applies the LT predicate on the "puertos_sfp" field.
func PuertosSfpLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldPuertosSfp, v))
}

// PuertosSfpLTE applies the LTE predicate on the "puertos_sfp" field.
func PuertosSfpLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldPuertosSfp, v))
}

// PuertosSfpContains applies the Contains predicate on the "puertos_sfp" field.
func PuertosSfpContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldPuertosSfp, v))
}

// PuertosSfpHasPrefix applies the HasPrefix predicate on the "puertos_sfp" field.
func PuertosSfpHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldPuertosSfp, v))
}

// PuertosSfpHasSuffix applies the HasSuffix predicate on the "puertos_sfp" field.
func PuertosSfpHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldPuertosSfp, v))
}

// PuertosSfpIsNil applies the IsNil predicate on the "puertos_sfp" field.
func PuertosSfpIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldPuertosSfp))
}

// PuertosSfpNotNil applies the NotNil predicate on the "puertos_sfp" field.
func PuertosSfpNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldPuertosSfp))
}

// PuertosSfpEqualFold applies the EqualFold predicate on the "puertos_sfp" field.
func PuertosSfpEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldPuertosSfp, v))
}

// PuertosSfpContainsFold applies the ContainsFold predicate on the "puertos_sfp" field.
func PuertosSfpContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldPuertosSfp, v))
}

// PuertoConsolaEQ applies the EQ predicate on the "puerto_consola" field.
func PuertoConsolaEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertoConsola, v))
}

// PuertoConsolaNEQ applies the NEQ predicate on the "puerto_consola" field.
func PuertoConsolaNEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldPuertoConsola, v))
}

// PuertosPoeEQ applies the EQ predicate on the "puertos_poe" field.
func PuertosPoeEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldPuertosPoe, v))
}

// PuertosPoeNEQ applies the NEQ predicate on the "puertos_poe" field.
func PuertosPoeNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldPuertosPoe, v))
}

// PuertosPoeIn applies the In predicate on the "puertos_poe" field.
func PuertosPoeIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldPuertosPoe, vs...))
}

// PuertosPoeNotIn applies the NotIn predicate on the "puertos_poe" field.
func PuertosPoeNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldPuertosPoe, vs...))
}

// PuertosPoeGT applies the GT predicate on the "puertos_poe" field.
func PuertosPoeGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldPuertosPoe, v))
}

// PuertosPoeGTE applies the GTE predicate on the "puertos_poe" field.
func PuertosPoeGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldPuertosPoe, v))
}

// PuertosPoeLT applies the LT predicate on the "puertos_poe" field.
func PuertosPoeLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldPuertosPoe, v))
}

// PuertosPoeLTE applies the LTE predicate on the "puertos_poe" field.
func PuertosPoeLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldPuertosPoe, v))
}

// PuertosPoeContains applies the Contains predicate on the "puertos_poe" field.
func PuertosPoeContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldPuertosPoe, v))
}

// PuertosPoeHasPrefix applies the HasPrefix predicate on the "puertos_poe" field.
func PuertosPoeHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldPuertosPoe, v))
}

// PuertosPoeHasSuffix applies the HasSuffix predicate on the "puertos_poe" field.
func PuertosPoeHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldPuertosPoe, v))
}

// PuertosPoeIsNil applies the IsNil predicate on the "puertos_poe" field.
func PuertosPoeIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldPuertosPoe))
}

// PuertosPoeNotNil applies the NotNil predicate on the "puertos_poe" field.
func PuertosPoeNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldPuertosPoe))
}

// PuertosPoeEqualFold applies the EqualFold predicate on the "puertos_poe" field.
func PuertosPoeEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldPuertosPoe, v))
}

// PuertosPoeContainsFold applies the ContainsFold predicate on the "puertos_poe" field.
func PuertosPoeContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldPuertosPoe, v))
}

// AlimentacionEQ applies the EQ predicate on the "alimentacion" field.
func AlimentacionEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldAlimentacion, v))
}

// AlimentacionNEQ applies the NEQ predicate on the "alimentacion" field.
func AlimentacionNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldAlimentacion, v))
}

// AlimentacionIn applies the In predicate on the "alimentacion" field.
func AlimentacionIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldAlimentacion, vs...))
}

// AlimentacionNotIn applies the NotIn predicate on the "alimentacion" field.
func AlimentacionNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldAlimentacion, vs...))
}

// AlimentacionGT applies the GT predicate on the "alimentacion" field.
func AlimentacionGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldAlimentacion, v))
}

// AlimentacionGTE applies the GTE predicate on the "alimentacion" field.
func AlimentacionGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldAlimentacion, v))
}

// AlimentacionLT applies the LT predicate on the "alimentacion" field.
func AlimentacionLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldAlimentacion, v))
}

// AlimentacionLTE applies the LTE predicate on the "alimentacion" field.
func AlimentacionLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldAlimentacion, v))
}

// AlimentacionContains applies the Contains predicate on the "alimentacion" field.
func AlimentacionContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldAlimentacion, v))
}

// AlimentacionHasPrefix applies the HasPrefix predicate on the "alimentacion" field.
func AlimentacionHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldAlimentacion, v))
}

// AlimentacionHasSuffix applies the HasSuffix predicate on the "alimentacion" field.
func AlimentacionHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldAlimentacion, v))
}

// AlimentacionIsNil applies the IsNil predicate on the "alimentacion" field.
func AlimentacionIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldAlimentacion))
}

// AlimentacionNotNil applies the NotNil predicate on the "alimentacion" field.
func AlimentacionNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldAlimentacion))
}

// AlimentacionEqualFold applies the EqualFold predicate on the "alimentacion" field.
func AlimentacionEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldAlimentacion, v))
}

// AlimentacionContainsFold applies the ContainsFold predicate on the "alimentacion" field.
func AlimentacionContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldAlimentacion, v))
}

// AdministrableEQ applies the EQ predicate on the "administrable" field.
func AdministrableEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldAdministrable, v))
}

// AdministrableNEQ applies the NEQ predicate on the "administrable" field.
func AdministrableNEQ(v bool) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldAdministrable, v))
}

// TamanoEQ applies the EQ predicate on the "tamano" field.
func TamanoEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldTamano, v))
}

// TamanoNEQ applies the NEQ predicate on the "tamano" field.
func TamanoNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldTamano, v))
}

// TamanoIn applies the In predicate on the "tamano" field.
func TamanoIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldTamano, vs...))
}

// TamanoNotIn applies the NotIn predicate on the "tamano" field.
func TamanoNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldTamano, vs...))
}

// TamanoGT applies the GT predicate on the "tamano" field.
func TamanoGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldTamano, v))
}

// TamanoGTE applies the GTE predicate on the "tamano" field.
func TamanoGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldTamano, v))
}

// TamanoLT applies the LT predicate on the "tamano" field.
func TamanoLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldTamano, v))
}

// TamanoLTE applies the LTE predicate on the "tamano" field.
func TamanoLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldTamano, v))
}

// TamanoContains applies the Contains predicate on the "tamano" field.
func TamanoContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldTamano, v))
}

// TamanoHasPrefix applies the HasPrefix predicate on the "tamano" field.
func TamanoHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldTamano, v))
}

// TamanoHasSuffix applies the HasSuffix predicate on the "tamano" field.
func TamanoHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldTamano, v))
}

// TamanoIsNil applies the IsNil predicate on the "tamano" field.
func TamanoIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldTamano))
}

// TamanoNotNil applies the NotNil predicate on the "tamano" field.
func TamanoNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldTamano))
}

// TamanoEqualFold applies the EqualFold predicate on the "tamano" field.
func TamanoEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldTamano, v))
}

// TamanoContainsFold applies the ContainsFold predicate on the "tamano" field.
func TamanoContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldTamano, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldColor, v))
}

// ColorIsNil applies the IsNil predicate on the "color" field.
func ColorIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldColor))
}

// ColorNotNil applies the NotNil predicate on the "color" field.
func ColorNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldColor))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldColor, v))
}

// ConectoresEQ applies the EQ predicate on the "conectores" field.
func ConectoresEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldConectores, v))
}

// ConectoresNEQ applies the NEQ predicate on the "conectores" field.
func ConectoresNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldConectores, v))
}

// ConectoresIn applies the In predicate on the "conectores" field.
func ConectoresIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldConectores, vs...))
}

// ConectoresNotIn applies the NotIn predicate on the "conectores" field.
func ConectoresNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldConectores, vs...))
}

// ConectoresGT applies the GT predicate on the "conectores" field.
func ConectoresGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldConectores, v))
}

// ConectoresGTE applies the GTE predicate on the "conectores" field.
func ConectoresGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldConectores, v))
}

// ConectoresLT applies the LT predicate on the "conectores" field.
func ConectoresLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldConectores, v))
}

// ConectoresLTE applies the LTE predicate on the "conectores" field.
func ConectoresLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldConectores, v))
}

// ConectoresContains applies the Contains predicate on the "conectores" field.
func ConectoresContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldConectores, v))
}

// ConectoresHasPrefix applies the HasPrefix predicate on the "conectores" field.
func ConectoresHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldConectores, v))
}

// ConectoresHasSuffix applies the HasSuffix predicate on the "conectores" field.
func ConectoresHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldConectores, v))
}

// ConectoresIsNil applies the IsNil predicate on the "conectores" field.
func ConectoresIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldConectores))
}

// ConectoresNotNil applies the NotNil predicate on the "conectores" field.
func ConectoresNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldConectores))
}

// ConectoresEqualFold applies the EqualFold predicate on the "conectores" field.
func ConectoresEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldConectores, v))
}

// ConectoresContainsFold applies the ContainsFold predicate on the "conectores" field.
func ConectoresContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldConectores, v))
}

// CablesEQ applies the EQ predicate on the "cables" field.
func CablesEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEQ(FieldCables, v))
}

// CablesNEQ applies the NEQ predicate on the "cables" field.
func CablesNEQ(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNEQ(FieldCables, v))
}

// CablesIn applies the In predicate on the "cables" field.
func CablesIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIn(FieldCables, vs...))
}

// CablesNotIn applies the NotIn predicate on the "cables" field.
func CablesNotIn(vs ...string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotIn(FieldCables, vs...))
}

// CablesGT applies the GT predicate on the "cables" field.
func CablesGT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGT(FieldCables, v))
}

// CablesGTE applies the GTE predicate on the "cables" field.
func CablesGTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldGTE(FieldCables, v))
}

// CablesLT applies the LT predicate on the "cables" field.
func CablesLT(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLT(FieldCables, v))
}

// CablesLTE applies the LTE predicate on the "cables" field.
func CablesLTE(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldLTE(FieldCables, v))
}

// CablesContains applies the Contains predicate on the "cables" field.
func CablesContains(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContains(FieldCables, v))
}

// CablesHasPrefix applies the HasPrefix predicate on the "cables" field.
func CablesHasPrefix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasPrefix(FieldCables, v))
}

// CablesHasSuffix applies the HasSuffix predicate on the "cables" field.
func CablesHasSuffix(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldHasSuffix(FieldCables, v))
}

// CablesIsNil applies the IsNil predicate on the "cables" field.
func CablesIsNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldIsNull(FieldCables))
}

// CablesNotNil applies the NotNil predicate on the "cables" field.
func CablesNotNil() predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldNotNull(FieldCables))
}

// CablesEqualFold applies the EqualFold predicate on the "cables" field.
func CablesEqualFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldEqualFold(FieldCables, v))
}

// CablesContainsFold applies the ContainsFold predicate on the "cables" field.
func CablesContainsFold(v string) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.FieldContainsFold(FieldCables, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModeloActivo) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModeloActivo) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModeloActivo) predicate.ModeloActivo {
	return predicate.ModeloActivo(sql.NotPredicates(p))
}
