// Code generated by ent, DO NOT EDIT.

package activo

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUpdatedAt, v))
}

// TipoActivoID applies equality check predicate on the "tipo_activo_id" field. It's identical to TipoActivoIDEQ.
func TipoActivoID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTipoActivoID, v))
}

// MarcaID applies equality check predicate on the "marca_id" field. It's identical to MarcaIDEQ.
func MarcaID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldMarcaID, v))
}

// ModeloID applies equality check predicate on the "modelo_id" field. It's identical to ModeloIDEQ.
func ModeloID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldModeloID, v))
}

// ProveedorID applies equality check predicate on the "proveedor_id" field. It's identical to ProveedorIDEQ.
func ProveedorID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldProveedorID, v))
}

// RegionID applies equality check predicate on the "region_id" field. It's identical to RegionIDEQ.
func RegionID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldRegionID, v))
}

// FincaID applies equality check predicate on the "finca_id" field. It's identical to FincaIDEQ.
func FincaID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFincaID, v))
}

// DepartamentoID applies equality check predicate on the "departamento_id" field. It's identical to DepartamentoIDEQ.
func DepartamentoID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldDepartamentoID, v))
}

// AreaID applies equality check predicate on the "area_id" field. It's identical to AreaIDEQ.
func AreaID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAreaID, v))
}

// Serie applies equality check predicate on the "serie" field. It's identical to SerieEQ.
func Serie(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldSerie, v))
}

// Hostname applies equality check predicate on the "hostname" field. It's identical to HostnameEQ.
func Hostname(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldHostname, v))
}

// FechaRegistro applies equality check predicate on the "fecha_registro" field. It's identical to FechaRegistroEQ.
func FechaRegistro(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFechaRegistro, v))
}

// FechaFinGarantia applies equality check predicate on the "fecha_fin_garantia" field. It's identical to FechaFinGarantiaEQ.
func FechaFinGarantia(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFechaFinGarantia, v))
}

// Solicitante applies equality check predicate on the "solicitante" field. It's identical to SolicitanteEQ.
func Solicitante(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldSolicitante, v))
}

// CorreoElectronico applies equality check predicate on the "correo_electronico" field. It's identical to CorreoElectronicoEQ.
func CorreoElectronico(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCorreoElectronico, v))
}

// OrdenCompra applies equality check predicate on the "orden_compra" field. It's identical to OrdenCompraEQ.
func OrdenCompra(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldOrdenCompra, v))
}

// CuentaContable applies equality check predicate on the "cuenta_contable" field. It's identical to CuentaContableEQ.
func CuentaContable(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCuentaContable, v))
}

// Cuotas applies equality check predicate on the "cuotas" field. It's identical to CuotasEQ.
func Cuotas(v int) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCuotas, v))
}

// Costo applies equality check predicate on the "costo" field. It's identical to CostoEQ.
func Costo(v float64) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCosto, v))
}

// Procesador applies equality check predicate on the "procesador" field. It's identical to ProcesadorEQ.
func Procesador(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldProcesador, v))
}

// RAM applies equality check predicate on the "ram" field. It's identical to RAMEQ.
func RAM(v int) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldRAM, v))
}

// Almacenamiento applies equality check predicate on the "almacenamiento" field. It's identical to AlmacenamientoEQ.
func Almacenamiento(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAlmacenamiento, v))
}

// TarjetaGrafica applies equality check predicate on the "tarjeta_grafica" field. It's identical to TarjetaGraficaEQ.
func TarjetaGrafica(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTarjetaGrafica, v))
}

// Wifi applies equality check predicate on the "wifi" field. It's identical to WifiEQ.
func Wifi(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldWifi, v))
}

// Ethernet applies equality check predicate on the "ethernet" field. It's identical to EthernetEQ.
func Ethernet(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldEthernet, v))
}

// PuertosEthernet applies equality check predicate on the "puertos_ethernet" field. It's identical to PuertosEthernetEQ.
func PuertosEthernet(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertosEthernet, v))
}

// PuertosSfp applies equality check predicate on the "puertos_sfp" field. It's identical to PuertosSfpEQ.
func PuertosSfp(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertosSfp, v))
}

// PuertoConsola applies equality check predicate on the "puerto_consola" field. It's identical to PuertoConsolaEQ.
func PuertoConsola(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertoConsola, v))
}

// PuertosPoe applies equality check predicate on the "puertos_poe" field. It's identical to PuertosPoeEQ.
func PuertosPoe(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertosPoe, v))
}

// Alimentacion applies equality check predicate on the "alimentacion" field. It's identical to AlimentacionEQ.
func Alimentacion(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAlimentacion, v))
}

// Administrable applies equality check predicate on the "administrable" field. It's identical to AdministrableEQ.
func Administrable(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAdministrable, v))
}

// Tamano applies equality check predicate on the "tamano" field. It's identical to TamanoEQ.
func Tamano(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTamano, v))
}

// Color applies equality check predicate on the "color" field. It's identical to ColorEQ.
func Color(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldColor, v))
}

// Conectores applies equality check predicate on the "conectores" field. It's identical to ConectoresEQ.
func Conectores(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldConectores, v))
}

// Cables applies equality check predicate on the "cables" field. It's identical to CablesEQ.
func Cables(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCables, v))
}

// FechaBaja applies equality check predicate on the "fecha_baja" field. It's identical to FechaBajaEQ.
func FechaBaja(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFechaBaja, v))
}

// MotivoBaja applies equality check predicate on the "motivo_baja" field. It's identical to MotivoBajaEQ.
func MotivoBaja(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldMotivoBaja, v))
}

// UsuarioBajaID applies equality check predicate on the "usuario_baja_id" field. It's identical to UsuarioBajaIDEQ.
func UsuarioBajaID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUsuarioBajaID, v))
}

// AssignedToID applies equality check predicate on the "assigned_to_id" field. It's identical to AssignedToIDEQ.
func AssignedToID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAssignedToID, v))
}

// UltimoMantenimiento applies equality check predicate on the "ultimo_mantenimiento" field. It's identical to UltimoMantenimientoEQ.
func UltimoMantenimiento(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUltimoMantenimiento, v))
}

// ProximoMantenimiento applies equality check predicate on the "proximo_mantenimiento" field. It's identical to ProximoMantenimientoEQ.
func ProximoMantenimiento(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldProximoMantenimiento, v))
}

// TecnicoMantenimientoID applies equality check predicate on the "tecnico_mantenimiento_id" field. It's identical to TecnicoMantenimientoIDEQ.
func TecnicoMantenimientoID(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTecnicoMantenimientoID, v))
}

// UltimoMantenimientoHallazgos applies equality check predicate on the "ultimo_mantenimiento_hallazgos" field. It's identical to UltimoMantenimientoHallazgosEQ.
func UltimoMantenimientoHallazgos(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUltimoMantenimientoHallazgos, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldUpdatedAt, v))
}

// TipoActivoIDEQ applies the EQ predicate on the "tipo_activo_id" field.
func TipoActivoIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTipoActivoID, v))
}

// TipoActivoIDNEQ applies the NEQ predicate on the "tipo_activo_id" field.
func TipoActivoIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldTipoActivoID, v))
}

// TipoActivoIDIn applies the In predicate on the "tipo_activo_id" field.
func TipoActivoIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldTipoActivoID, vs...))
}

// TipoActivoIDNotIn applies the NotIn predicate on the "tipo_activo_id" field.
func TipoActivoIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldTipoActivoID, vs...))
}

// TipoActivoIDGT applies the GT predicate on the "tipo_activo_id" field.
func TipoActivoIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldTipoActivoID, v))
}

// TipoActivoIDGTE applies the GTE predicate on the "tipo_activo_id" field.
func TipoActivoIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldTipoActivoID, v))
}

// TipoActivoIDLT applies the LT predicate on the "tipo_activo_id" field.
func TipoActivoIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldTipoActivoID, v))
}

// TipoActivoIDLTE applies the LTE predicate on the "tipo_activo_id" field.
func TipoActivoIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldTipoActivoID, v))
}

// TipoActivoIDContains applies the Contains predicate on the "tipo_activo_id" field.
func TipoActivoIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldTipoActivoID, v))
}

// TipoActivoIDHasPrefix applies the HasPrefix predicate on the "tipo_activo_id" field.
func TipoActivoIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldTipoActivoID, v))
}

// TipoActivoIDHasSuffix applies the HasSuffix predicate on the "tipo_activo_id" field.
func TipoActivoIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldTipoActivoID, v))
}

// TipoActivoIDEqualFold applies the EqualFold predicate on the "tipo_activo_id" field.
func TipoActivoIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldTipoActivoID, v))
}

// TipoActivoIDContainsFold applies the ContainsFold predicate on the "tipo_activo_id" field.
func TipoActivoIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldTipoActivoID, v))
}

// MarcaIDEQ applies the EQ predicate on the "marca_id" field.
func MarcaIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldMarcaID, v))
}

// MarcaIDNEQ applies the NEQ predicate on the "marca_id" field.
func MarcaIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldMarcaID, v))
}

// MarcaIDIn applies the In predicate on the "marca_id" field.
func MarcaIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldMarcaID, vs...))
}

// MarcaIDNotIn applies the NotIn predicate on the "marca_id" field.
func MarcaIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldMarcaID, vs...))
}

// MarcaIDGT applies the GT predicate on the "marca_id" field.
func MarcaIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldMarcaID, v))
}

// MarcaIDGTE applies the GTE predicate on the "marca_id" field.
func MarcaIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldMarcaID, v))
}

// MarcaIDLT applies the LT predicate on the "marca_id" field.
func MarcaIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldMarcaID, v))
}

// MarcaIDLTE applies the LTE predicate on the "marca_id" field.
func MarcaIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldMarcaID, v))
}

// MarcaIDContains applies the Contains predicate on the "marca_id" field.
func MarcaIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldMarcaID, v))
}

// MarcaIDHasPrefix applies the HasPrefix predicate on the "marca_id" field.
func MarcaIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldMarcaID, v))
}

// MarcaIDHasSuffix applies the HasSuffix predicate on the "marca_id" field.
func MarcaIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldMarcaID, v))
}

// MarcaIDEqualFold applies the EqualFold predicate on the "marca_id" field.
func MarcaIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldMarcaID, v))
}

// MarcaIDContainsFold applies the ContainsFold predicate on the "marca_id" field.
func MarcaIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldMarcaID, v))
}

// ModeloIDEQ applies the EQ predicate on the "modelo_id" field.
func ModeloIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldModeloID, v))
}

// ModeloIDNEQ applies the NEQ predicate on the "modelo_id" field.
func ModeloIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldModeloID, v))
}

// ModeloIDIn applies the In predicate on the "modelo_id" field.
func ModeloIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldModeloID, vs...))
}

// ModeloIDNotIn applies the NotIn predicate on the "modelo_id" field.
func ModeloIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldModeloID, vs...))
}

// ModeloIDGT applies the GT predicate on the "modelo_id" field.
func ModeloIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldModeloID, v))
}

// ModeloIDGTE applies the GTE predicate on the "modelo_id" field.
func ModeloIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldModeloID, v))
}

// ModeloIDLT applies the LT predicate on the "modelo_id" field.
func ModeloIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldModeloID, v))
}

// ModeloIDLTE applies the LTE predicate on the "modelo_id" field.
func ModeloIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldModeloID, v))
}

// ModeloIDContains applies the Contains predicate on the "modelo_id" field.
func ModeloIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldModeloID, v))
}

// ModeloIDHasPrefix applies the HasPrefix predicate on the "modelo_id" field.
func ModeloIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldModeloID, v))
}

// ModeloIDHasSuffix applies the HasSuffix predicate on the "modelo_id" field.
func ModeloIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldModeloID, v))
}

// ModeloIDEqualFold applies the EqualFold predicate on the "modelo_id" field.
func ModeloIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldModeloID, v))
}

// ModeloIDContainsFold applies the ContainsFold predicate on the "modelo_id" field.
func ModeloIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldModeloID, v))
}

// ProveedorIDEQ applies the EQ predicate on the "proveedor_id" field.
func ProveedorIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldProveedorID, v))
}

// ProveedorIDNEQ applies the NEQ predicate on the "proveedor_id" field.
func ProveedorIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldProveedorID, v))
}

// ProveedorIDIn applies the In predicate on the "proveedor_id" field.
func ProveedorIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldProveedorID, vs...))
}

// ProveedorIDNotIn applies the NotIn predicate on the "proveedor_id" field.
func ProveedorIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldProveedorID, vs...))
}

// ProveedorIDGT applies the GT predicate on the "proveedor_id" field.
func ProveedorIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldProveedorID, v))
}

// ProveedorIDGTE applies the GTE predicate on the "proveedor_id" field.
func ProveedorIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldProveedorID, v))
}

// ProveedorIDLT applies the LT predicate on the "proveedor_id" field.
func ProveedorIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldProveedorID, v))
}

// ProveedorIDLTE applies the LTE predicate on the "proveedor_id" field.
func ProveedorIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldProveedorID, v))
}

// ProveedorIDContains applies the Contains predicate on the "proveedor_id" field.
func ProveedorIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldProveedorID, v))
}

// ProveedorIDHasPrefix applies the HasPrefix predicate on the "proveedor_id" field.
func ProveedorIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldProveedorID, v))
}

// ProveedorIDHasSuffix applies the HasSuffix predicate on the "proveedor_id" field.
func ProveedorIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldProveedorID, v))
}

// ProveedorIDEqualFold applies the EqualFold predicate on the "proveedor_id" field.
func ProveedorIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldProveedorID, v))
}

// ProveedorIDContainsFold applies the ContainsFold predicate on the "proveedor_id" field.
func ProveedorIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldProveedorID, v))
}

// RegionIDEQ applies the EQ predicate on the "region_id" field.
func RegionIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldRegionID, v))
}

// RegionIDNEQ applies the NEQ predicate on the "region_id" field.
func RegionIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldRegionID, v))
}

// RegionIDIn applies the In predicate on the "region_id" field.
func RegionIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldRegionID, vs...))
}

// RegionIDNotIn applies the NotIn predicate on the "region_id" field.
func RegionIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldRegionID, vs...))
}

// RegionIDGT applies the GT predicate on the "region_id" field.
func RegionIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldRegionID, v))
}

// RegionIDGTE applies the GTE predicate on the "region_id" field.
func RegionIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldRegionID, v))
}

// RegionIDLT applies the LT predicate on the "region_id" field.
func RegionIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldRegionID, v))
}

// RegionIDLTE applies the LTE predicate on the "region_id" field.
func RegionIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldRegionID, v))
}

// RegionIDContains applies the Contains predicate on the "region_id" field.
func RegionIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldRegionID, v))
}

// RegionIDHasPrefix applies the HasPrefix predicate on the "region_id" field.
func RegionIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldRegionID, v))
}

// RegionIDHasSuffix applies the HasSuffix predicate on the "region_id" field.
func RegionIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldRegionID, v))
}

// RegionIDEqualFold applies the EqualFold predicate on the "region_id" field.
func RegionIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldRegionID, v))
}

// RegionIDContainsFold applies the ContainsFold predicate on the "region_id" field.
func RegionIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldRegionID, v))
}

// FincaIDEQ applies the EQ predicate on the "finca_id" field.
func FincaIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFincaID, v))
}

// FincaIDNEQ applies the NEQ predicate on the "finca_id" field.
func FincaIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldFincaID, v))
}

// FincaIDIn applies the In predicate on the "finca_id" field.
func FincaIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldFincaID, vs...))
}

// FincaIDNotIn applies the NotIn predicate on the "finca_id" field.
func FincaIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldFincaID, vs...))
}

// FincaIDGT applies the GT predicate on the "finca_id" field.
func FincaIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldFincaID, v))
}

// FincaIDGTE applies the GTE predicate on the "finca_id" field.
func FincaIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldFincaID, v))
}

// FincaIDLT applies the LT predicate on the "finca_id" field.
func FincaIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldFincaID, v))
}

// FincaIDLTE applies the LTE predicate on the "finca_id" field.
func FincaIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldFincaID, v))
}

// FincaIDContains applies the Contains predicate on the "finca_id" field.
func FincaIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldFincaID, v))
}

// FincaIDHasPrefix applies the HasPrefix predicate on the "finca_id" field.
func FincaIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldFincaID, v))
}

// FincaIDHasSuffix applies the HasSuffix predicate on the "finca_id" field.
func FincaIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldFincaID, v))
}

// FincaIDEqualFold applies the EqualFold predicate on the "finca_id" field.
func FincaIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldFincaID, v))
}

// FincaIDContainsFold applies the ContainsFold predicate on the "finca_id" field.
func FincaIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldFincaID, v))
}

// DepartamentoIDEQ applies the EQ predicate on the "departamento_id" field.
func DepartamentoIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldDepartamentoID, v))
}

// DepartamentoIDNEQ applies the NEQ predicate on the "departamento_id" field.
func DepartamentoIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldDepartamentoID, v))
}

// DepartamentoIDIn applies the In predicate on the "departamento_id" field.
func DepartamentoIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldDepartamentoID, vs...))
}

// DepartamentoIDNotIn applies the NotIn predicate on the "departamento_id" field.
func DepartamentoIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldDepartamentoID, vs...))
}

// DepartamentoIDGT applies the GT predicate on the "departamento_id" field.
func DepartamentoIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldDepartamentoID, v))
}

// DepartamentoIDGTE applies the GTE predicate on the "departamento_id" field.
func DepartamentoIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldDepartamentoID, v))
}

// DepartamentoIDLT applies the LT predicate on the "departamento_id" field.
func DepartamentoIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldDepartamentoID, v))
}

// DepartamentoIDLTE applies the LTE predicate on the "departamento_id" field.
func DepartamentoIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldDepartamentoID, v))
}

// DepartamentoIDContains applies the Contains predicate on the "departamento_id" field.
func DepartamentoIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldDepartamentoID, v))
}

// DepartamentoIDHasPrefix applies the HasPrefix predicate on the "departamento_id" field.
func DepartamentoIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldDepartamentoID, v))
}

// DepartamentoIDHasSuffix applies the HasSuffix predicate on the "departamento_id" field.
func DepartamentoIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldDepartamentoID, v))
}

// DepartamentoIDEqualFold applies the EqualFold predicate on the "departamento_id" field.
func DepartamentoIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldDepartamentoID, v))
}

// DepartamentoIDContainsFold applies the ContainsFold predicate on the "departamento_id" field.
func DepartamentoIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldDepartamentoID, v))
}

// AreaIDEQ applies the EQ predicate on the "area_id" field.
func AreaIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAreaID, v))
}

// AreaIDNEQ applies the NEQ predicate on the "area_id" field.
func AreaIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldAreaID, v))
}

// AreaIDIn applies the In predicate on the "area_id" field.
func AreaIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldAreaID, vs...))
}

// AreaIDNotIn applies the NotIn predicate on the "area_id" field.
func AreaIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldAreaID, vs...))
}

// AreaIDGT applies the GT predicate on the "area_id" field.
func AreaIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldAreaID, v))
}

// AreaIDGTE applies the GTE predicate on the "area_id" field.
func AreaIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldAreaID, v))
}

// AreaIDLT applies the LT predicate on the "area_id" field.
func AreaIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldAreaID, v))
}

// AreaIDLTE applies the LTE predicate on the "area_id" field.
func AreaIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldAreaID, v))
}

// AreaIDContains applies the Contains predicate on the "area_id" field.
func AreaIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldAreaID, v))
}

// AreaIDHasPrefix applies the HasPrefix predicate on the "area_id" field.
func AreaIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldAreaID, v))
}

// AreaIDHasSuffix applies the HasSuffix predicate on the "area_id" field.
func AreaIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldAreaID, v))
}

// AreaIDEqualFold applies the EqualFold predicate on the "area_id" field.
func AreaIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldAreaID, v))
}

// AreaIDContainsFold applies the ContainsFold predicate on the "area_id" field.
func AreaIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldAreaID, v))
}

// SerieEQ applies the EQ predicate on the "serie" field.
func SerieEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldSerie, v))
}

// SerieNEQ applies the NEQ predicate on the "serie" field.
func SerieNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldSerie, v))
}

// SerieIn applies the In predicate on the "serie" field.
func SerieIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldSerie, vs...))
}

// SerieNotIn applies the NotIn predicate on the "serie" field.
func SerieNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldSerie, vs...))
}

// SerieGT applies the GT predicate on the "serie" field.
func SerieGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldSerie, v))
}

// SerieGTE applies the GTE predicate on the "serie" field.
func SerieGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldSerie, v))
}

// SerieLT applies the LT predicate on the "serie" field.
func SerieLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldSerie, v))
}

// SerieLTE applies the LTE predicate on the "serie" field.
func SerieLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldSerie, v))
}

// SerieContains applies the Contains predicate on the "serie" field.
func SerieContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldSerie, v))
}

// SerieHasPrefix applies the HasPrefix predicate on the "serie" field.
func SerieHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldSerie, v))
}

// SerieHasSuffix applies the HasSuffix predicate on the "serie" field.
func SerieHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldSerie, v))
}

// SerieEqualFold applies the EqualFold predicate on the "serie" field.
func SerieEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldSerie, v))
}

// SerieContainsFold applies the ContainsFold predicate on the "serie" field.
func SerieContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldSerie, v))
}

// HostnameEQ applies the EQ predicate on the "hostname" field.
func HostnameEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldHostname, v))
}

// HostnameNEQ applies the NEQ predicate on the "hostname" field.
func HostnameNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldHostname, v))
}

// HostnameIn applies the In predicate on the "hostname" field.
func HostnameIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldHostname, vs...))
}

// HostnameNotIn applies the NotIn predicate on the "hostname" field.
func HostnameNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldHostname, vs...))
}

// HostnameGT applies the GT predicate on the "hostname" field.
func HostnameGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldHostname, v))
}

// HostnameGTE applies the GTE predicate on the "hostname" field.
func HostnameGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldHostname, v))
}

// HostnameLT applies the LT predicate on the "hostname" field.
func HostnameLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldHostname, v))
}

// HostnameLTE applies the LTE predicate on the "hostname" field.
func HostnameLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldHostname, v))
}

// HostnameContains applies the Contains predicate on the "hostname" field.
func HostnameContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldHostname, v))
}

// HostnameHasPrefix applies the HasPrefix predicate on the "hostname" field.
func HostnameHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldHostname, v))
}

// HostnameHasSuffix applies the HasSuffix predicate on the "hostname" field.
func HostnameHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldHostname, v))
}

// HostnameEqualFold applies the EqualFold predicate on the "hostname" field.
func HostnameEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldHostname, v))
}

// HostnameContainsFold applies the ContainsFold predicate on the "hostname" field.
func HostnameContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldHostname, v))
}

// FechaRegistroEQ applies the EQ predicate on the "fecha_registro" field.
func FechaRegistroEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFechaRegistro, v))
}

// FechaRegistroNEQ applies the NEQ predicate on the "fecha_registro" field.
func FechaRegistroNEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldFechaRegistro, v))
}

// FechaRegistroIn applies the In predicate on the "fecha_registro" field.
func FechaRegistroIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldFechaRegistro, vs...))
}

// FechaRegistroNotIn applies the NotIn predicate on the "fecha_registro" field.
func FechaRegistroNotIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldFechaRegistro, vs...))
}

// FechaRegistroGT applies the GT predicate on the "fecha_registro" field.
func FechaRegistroGT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldFechaRegistro, v))
}

// FechaRegistroGTE applies the GTE predicate on the "fecha_registro" field.
func FechaRegistroGTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldFechaRegistro, v))
}

// FechaRegistroLT applies the LT predicate on the "fecha_registro" field.
func FechaRegistroLT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldFechaRegistro, v))
}

// FechaRegistroLTE applies the LTE predicate on the "fecha_registro" field.
func FechaRegistroLTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldFechaRegistro, v))
}

// FechaFinGarantiaEQ applies the EQ predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFechaFinGarantia, v))
}

// FechaFinGarantiaNEQ applies the NEQ predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaNEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldFechaFinGarantia, v))
}

// FechaFinGarantiaIn applies the In predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldFechaFinGarantia, vs...))
}

// FechaFinGarantiaNotIn applies the NotIn predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaNotIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldFechaFinGarantia, vs...))
}

// FechaFinGarantiaGT applies the GT predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaGT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldFechaFinGarantia, v))
}

// FechaFinGarantiaGTE applies the GTE predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaGTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldFechaFinGarantia, v))
}

// FechaFinGarantiaLT applies the LT predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaLT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldFechaFinGarantia, v))
}

// FechaFinGarantiaLTE applies the LTE predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaLTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldFechaFinGarantia, v))
}

// FechaFinGarantiaIsNil applies the IsNil predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldFechaFinGarantia))
}

// FechaFinGarantiaNotNil applies the NotNil predicate on the "fecha_fin_garantia" field.
func FechaFinGarantiaNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldFechaFinGarantia))
}

// SolicitanteEQ applies the EQ predicate on the "solicitante" field.
func SolicitanteEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldSolicitante, v))
}

// SolicitanteNEQ applies the NEQ predicate on the "solicitante" field.
func SolicitanteNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldSolicitante, v))
}

// SolicitanteIn applies the In predicate on the "solicitante" field.
func SolicitanteIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldSolicitante, vs...))
}

// SolicitanteNotIn applies the NotIn predicate on the "solicitante" field.
func SolicitanteNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldSolicitante, vs...))
}

// SolicitanteGT applies the GT predicate on the "solicitante" field.
func SolicitanteGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldSolicitante, v))
}

// SolicitanteGTE applies the GTE predicate on the "solicitante" field.
func SolicitanteGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldSolicitante, v))
}

// SolicitanteLT applies the LT predicate on the "solicitante" field.
func SolicitanteLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldSolicitante, v))
}

// SolicitanteLTE applies the LTE predicate on the "solicitante" field.
func SolicitanteLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldSolicitante, v))
}

// SolicitanteContains applies the Contains predicate on the "solicitante" field.
func SolicitanteContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldSolicitante, v))
}

// SolicitanteHasPrefix applies the HasPrefix predicate on the "solicitante" field.
func SolicitanteHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldSolicitante, v))
}

// SolicitanteHasSuffix applies the HasSuffix predicate on the "solicitante" field.
func SolicitanteHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldSolicitante, v))
}

// SolicitanteIsNil applies the IsNil predicate on the "solicitante" field.
func SolicitanteIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldSolicitante))
}

// SolicitanteNotNil applies the NotNil predicate on the "solicitante" field.
func SolicitanteNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldSolicitante))
}

// SolicitanteEqualFold applies the EqualFold predicate on the "solicitante" field.
func SolicitanteEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldSolicitante, v))
}

// SolicitanteContainsFold applies the ContainsFold predicate on the "solicitante" field.
func SolicitanteContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldSolicitante, v))
}

// CorreoElectronicoEQ applies the EQ predicate on the "correo_electronico" field.
func CorreoElectronicoEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCorreoElectronico, v))
}

// CorreoElectronicoNEQ applies the NEQ predicate on the "correo_electronico" field.
func CorreoElectronicoNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldCorreoElectronico, v))
}

// CorreoElectronicoIn applies the In predicate on the "correo_electronico" field.
func CorreoElectronicoIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldCorreoElectronico, vs...))
}

// CorreoElectronicoNotIn applies the NotIn predicate on the "correo_electronico" field.
func CorreoElectronicoNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldCorreoElectronico, vs...))
}

// CorreoElectronicoGT applies the GT predicate on the "correo_electronico" field.
func CorreoElectronicoGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldCorreoElectronico, v))
}

// CorreoElectronicoGTE applies the GTE predicate on the "correo_electronico" field.
func CorreoElectronicoGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldCorreoElectronico, v))
}

// CorreoElectronicoLT applies the LT predicate on the "correo_electronico" field.
func CorreoElectronicoLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldCorreoElectronico, v))
}

// CorreoElectronicoLTE applies the LTE predicate on the "correo_electronico" field.
func CorreoElectronicoLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldCorreoElectronico, v))
}

// CorreoElectronicoContains applies the Contains predicate on the "correo_electronico" field.
func CorreoElectronicoContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldCorreoElectronico, v))
}

// CorreoElectronicoHasPrefix applies the HasPrefix predicate on the "correo_electronico" field.
func CorreoElectronicoHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldCorreoElectronico, v))
}

// CorreoElectronicoHasSuffix applies the HasSuffix predicate on the "correo_electronico" field.
func CorreoElectronicoHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldCorreoElectronico, v))
}

// CorreoElectronicoIsNil applies the IsNil predicate on the "correo_electronico" field.
func CorreoElectronicoIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldCorreoElectronico))
}

// CorreoElectronicoNotNil applies the NotNil predicate on the "correo_electronico" field.
func CorreoElectronicoNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldCorreoElectronico))
}

// CorreoElectronicoEqualFold applies the EqualFold predicate on the "correo_electronico" field.
func CorreoElectronicoEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldCorreoElectronico, v))
}

// CorreoElectronicoContainsFold applies the ContainsFold predicate on the "correo_electronico" field.
func CorreoElectronicoContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldCorreoElectronico, v))
}

// OrdenCompraEQ applies the EQ predicate on the "orden_compra" field.
func OrdenCompraEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldOrdenCompra, v))
}

// OrdenCompraNEQ applies the NEQ predicate on the "orden_compra" field.
func OrdenCompraNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldOrdenCompra, v))
}

// OrdenCompraIn applies the In predicate on the "orden_compra" field.
func OrdenCompraIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldOrdenCompra, vs...))
}

// OrdenCompraNotIn applies the NotIn predicate on the "orden_compra" field.
func OrdenCompraNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldOrdenCompra, vs...))
}

// OrdenCompraGT applies the GT predicate on the "orden_compra" field.
func OrdenCompraGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldOrdenCompra, v))
}

// OrdenCompraGTE applies the GTE predicate on the "orden_compra" field.
func OrdenCompraGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldOrdenCompra, v))
}

// OrdenCompraLT applies the LT predicate on the "orden_compra" field.
func OrdenCompraLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldOrdenCompra, v))
}

// OrdenCompraLTE applies the LTE predicate on the "orden_compra" field.
func OrdenCompraLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldOrdenCompra, v))
}

// OrdenCompraContains applies the Contains predicate on the "orden_compra" field.
func OrdenCompraContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldOrdenCompra, v))
}

// OrdenCompraHasPrefix applies the HasPrefix predicate on the "orden_compra" field.
func OrdenCompraHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldOrdenCompra, v))
}

// OrdenCompraHasSuffix applies the HasSuffix predicate on the "orden_compra" field.
func OrdenCompraHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldOrdenCompra, v))
}

// OrdenCompraIsNil applies the IsNil predicate on the "orden_compra" field.
func OrdenCompraIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldOrdenCompra))
}

// OrdenCompraNotNil applies the NotNil predicate on the "orden_compra" field.
func OrdenCompraNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldOrdenCompra))
}

// OrdenCompraEqualFold applies the EqualFold predicate on the "orden_compra" field.
func OrdenCompraEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldOrdenCompra, v))
}

// OrdenCompraContainsFold applies the ContainsFold predicate on the "orden_compra" field.
func OrdenCompraContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldOrdenCompra, v))
}

// CuentaContableEQ applies the EQ predicate on the "cuenta_contable" field.
func CuentaContableEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCuentaContable, v))
}

// CuentaContableNEQ applies the NEQ predicate on the "cuenta_contable" field.
func CuentaContableNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldCuentaContable, v))
}

// CuentaContableIn applies the In predicate on the "cuenta_contable" field.
func CuentaContableIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldCuentaContable, vs...))
}

// CuentaContableNotIn applies the NotIn predicate on the "cuenta_contable" field.
func CuentaContableNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldCuentaContable, vs...))
}

// CuentaContableGT applies the GT predicate on the "cuenta_contable" field.
func CuentaContableGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldCuentaContable, v))
}

// CuentaContableGTE applies the GTE predicate on the "cuenta_contable" field.
func CuentaContableGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldCuentaContable, v))
}

// CuentaContableLT applies the LT predicate on the "cuenta_contable" field.
func CuentaContableLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldCuentaContable, v))
}

// CuentaContableLTE applies the LTE predicate on the "cuenta_contable" field.
func CuentaContableLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldCuentaContable, v))
}

// CuentaContableContains applies the Contains predicate on the "cuenta_contable" field.
func CuentaContableContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldCuentaContable, v))
}

// CuentaContableHasPrefix applies the HasPrefix predicate on the "cuenta_contable" field.
func CuentaContableHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldCuentaContable, v))
}

// CuentaContableHasSuffix applies the HasSuffix predicate on the "cuenta_contable" field.
func CuentaContableHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldCuentaContable, v))
}

// CuentaContableIsNil applies the IsNil predicate on the "cuenta_contable" field.
func CuentaContableIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldCuentaContable))
}

// CuentaContableNotNil applies the NotNil predicate on the "cuenta_contable" field.
func CuentaContableNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldCuentaContable))
}

// CuentaContableEqualFold applies the EqualFold predicate on the "cuenta_contable" field.
func CuentaContableEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldCuentaContable, v))
}

// CuentaContableContainsFold applies the ContainsFold predicate on the "cuenta_contable" field.
func CuentaContableContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldCuentaContable, v))
}

// TipoCostoEQ applies the EQ predicate on the "tipo_costo" field.
func TipoCostoEQ(v TipoCosto) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTipoCosto, v))
}

// TipoCostoNEQ applies the NEQ predicate on the "tipo_costo" field.
func TipoCostoNEQ(v TipoCosto) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldTipoCosto, v))
}

// TipoCostoIn applies the In predicate on the "tipo_costo" field.
func TipoCostoIn(vs ...TipoCosto) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldTipoCosto, vs...))
}

// TipoCostoNotIn applies the NotIn predicate on the "tipo_costo" field.
func TipoCostoNotIn(vs ...TipoCosto) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldTipoCosto, vs...))
}

// TipoCostoIsNil applies the IsNil predicate on the "tipo_costo" field.
func TipoCostoIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldTipoCosto))
}

// TipoCostoNotNil applies the NotNil predicate on the "tipo_costo" field.
func TipoCostoNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldTipoCosto))
}

// CuotasEQ applies the EQ predicate on the "cuotas" field.
func CuotasEQ(v int) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCuotas, v))
}

// CuotasNEQ applies the NEQ predicate on the "cuotas" field.
func CuotasNEQ(v int) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldCuotas, v))
}

// CuotasIn applies the In predicate on the "cuotas" field.
func CuotasIn(vs ...int) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldCuotas, vs...))
}

// CuotasNotIn applies the NotIn predicate on the "cuotas" field.
func CuotasNotIn(vs ...int) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldCuotas, vs...))
}

// CuotasGT applies the GT predicate on the "cuotas" field.
func CuotasGT(v int) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldCuotas, v))
}

// CuotasGTE applies the GTE predicate on the "cuotas" field.
func CuotasGTE(v int) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldCuotas, v))
}

// CuotasLT applies the LT predicate on the "cuotas" field.
func CuotasLT(v int) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldCuotas, v))
}

// CuotasLTE applies the LTE predicate on the "cuotas" field.
func CuotasLTE(v int) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldCuotas, v))
}

// CuotasIsNil applies the IsNil predicate on the "cuotas" field.
func CuotasIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldCuotas))
}

// CuotasNotNil applies the NotNil predicate on the "cuotas" field.
func CuotasNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldCuotas))
}

// MonedaEQ applies the EQ predicate on the "moneda" field.
func MonedaEQ(v Moneda) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldMoneda, v))
}

// MonedaNEQ applies the NEQ predicate on the "moneda" field.
func MonedaNEQ(v Moneda) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldMoneda, v))
}

// MonedaIn applies the In predicate on the "moneda" field.
func MonedaIn(vs ...Moneda) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldMoneda, vs...))
}

// MonedaNotIn applies the NotIn predicate on the "moneda" field.
func MonedaNotIn(vs ...Moneda) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldMoneda, vs...))
}

// MonedaIsNil applies the IsNil predicate on the "moneda" field.
func MonedaIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldMoneda))
}

// MonedaNotNil applies the NotNil predicate on the "moneda" field.
func MonedaNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldMoneda))
}

// CostoEQ applies the EQ predicate on the "costo" field.
func CostoEQ(v float64) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCosto, v))
}

// CostoNEQ applies the NEQ predicate on the "costo" field.
func CostoNEQ(v float64) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldCosto, v))
}

// CostoIn applies the In predicate on the "costo" field.
func CostoIn(vs ...float64) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldCosto, vs...))
}

// CostoNotIn applies the NotIn predicate on the "costo" field.
func CostoNotIn(vs ...float64) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldCosto, vs...))
}

// CostoGT applies the GT predicate on the "costo" field.
func CostoGT(v float64) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldCosto, v))
}

// CostoGTE applies the GTE predicate on the "costo" field.
func CostoGTE(v float64) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldCosto, v))
}

// CostoLT applies the LT predicate on the "costo" field.
func CostoLT(v float64) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldCosto, v))
}

// CostoLTE applies the LTE predicate on the "costo" field.
func CostoLTE(v float64) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldCosto, v))
}

// CostoIsNil applies the IsNil predicate on the "costo" field.
func CostoIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldCosto))
}

// CostoNotNil applies the NotNil predicate on the "costo" field.
func CostoNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldCosto))
}

// ProcesadorEQ applies the EQ predicate on the "procesador" field.
func ProcesadorEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldProcesador, v))
}

// ProcesadorNEQ applies the NEQ predicate on the "procesador" field.
func ProcesadorNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldProcesador, v))
}

// ProcesadorIn applies the In predicate on the "procesador" field.
func ProcesadorIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldProcesador, vs...))
}

// ProcesadorNotIn applies the NotIn predicate on the "procesador" field.
func ProcesadorNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldProcesador, vs...))
}

// ProcesadorGT applies the GT predicate on the "procesador" field.
func ProcesadorGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldProcesador, v))
}

// ProcesadorGTE applies the GTE predicate on the "procesador" field.
func ProcesadorGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldProcesador, v))
}

// ProcesadorLT applies the LT predicate on the "procesador" field.
func ProcesadorLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldProcesador, v))
}

// ProcesadorLTE applies the LTE predicate on the "procesador" field.
func ProcesadorLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldProcesador, v))
}

// ProcesadorContains applies the Contains predicate on the "procesador" field.
func ProcesadorContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldProcesador, v))
}

// ProcesadorHasPrefix applies the HasPrefix predicate on the "procesador" field.
func ProcesadorHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldProcesador, v))
}

// ProcesadorHasSuffix applies the HasSuffix predicate on the "procesador" field.
func ProcesadorHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldProcesador, v))
}

// ProcesadorIsNil applies the IsNil predicate on the "procesador" field.
func ProcesadorIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldProcesador))
}

// ProcesadorNotNil applies the NotNil predicate on the "procesador" field.
func ProcesadorNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldProcesador))
}

// ProcesadorEqualFold applies the EqualFold predicate on the "procesador" field.
func ProcesadorEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldProcesador, v))
}

// ProcesadorContainsFold applies the ContainsFold predicate on the "procesador" field.
func ProcesadorContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldProcesador, v))
}

// RAMEQ applies the EQ predicate on the "ram" field.
func RAMEQ(v int) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldRAM, v))
}

// RAMNEQ applies the NEQ predicate on the "ram" field.
func RAMNEQ(v int) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldRAM, v))
}

// RAMIn applies the In predicate on the "ram" field.
func RAMIn(vs ...int) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldRAM, vs...))
}

// RAMNotIn applies the NotIn predicate on the "ram" field.
func RAMNotIn(vs ...int) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldRAM, vs...))
}

// RAMGT applies the GT predicate on the "ram" field.
func RAMGT(v int) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldRAM, v))
}

// RAMGTE applies the GTE predicate on the "ram" field.
func RAMGTE(v int) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldRAM, v))
}

// RAMLT applies the LT predicate on the "ram" field.
func RAMLT(v int) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldRAM, v))
}

// RAMLTE applies the LTE predicate on the "ram" field.
func RAMLTE(v int) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldRAM, v))
}

// RAMIsNil applies the IsNil predicate on the "ram" field.
func RAMIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldRAM))
}

// RAMNotNil applies the NotNil predicate on the "ram" field.
func RAMNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldRAM))
}

// AlmacenamientoEQ applies the EQ predicate on the "almacenamiento" field.
func AlmacenamientoEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAlmacenamiento, v))
}

// AlmacenamientoNEQ applies the NEQ predicate on the "almacenamiento" field.
func AlmacenamientoNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldAlmacenamiento, v))
}

// AlmacenamientoIn applies the In predicate on the "almacenamiento" field.
func AlmacenamientoIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldAlmacenamiento, vs...))
}

// AlmacenamientoNotIn applies the NotIn predicate on the "almacenamiento" field.
func AlmacenamientoNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldAlmacenamiento, vs...))
}

// AlmacenamientoGT applies the GT predicate on the "almacenamiento" field.
func AlmacenamientoGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldAlmacenamiento, v))
}

// AlmacenamientoGTE applies the GTE predicate on the "almacenamiento" field.
func AlmacenamientoGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldAlmacenamiento, v))
}

// AlmacenamientoLT applies the LT predicate on the "almacenamiento" field.
func AlmacenamientoLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldAlmacenamiento, v))
}

// AlmacenamientoLTE applies the LTE predicate on the "almacenamiento" field.
func AlmacenamientoLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldAlmacenamiento, v))
}

// AlmacenamientoContains applies the Contains predicate on the "almacenamiento" field.
func AlmacenamientoContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldAlmacenamiento, v))
}

// AlmacenamientoHasPrefix applies the HasPrefix predicate on the "almacenamiento" field.
func AlmacenamientoHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldAlmacenamiento, v))
}

// AlmacenamientoHasSuffix applies the HasSuffix predicate on the "almacenamiento" field.
func AlmacenamientoHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldAlmacenamiento, v))
}

// AlmacenamientoIsNil applies the IsNil predicate on the "almacenamiento" field.
func AlmacenamientoIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldAlmacenamiento))
}

// AlmacenamientoNotNil applies the NotNil predicate on the "almacenamiento" field.
func AlmacenamientoNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldAlmacenamiento))
}

// AlmacenamientoEqualFold applies the EqualFold predicate on the "almacenamiento" field.
func AlmacenamientoEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldAlmacenamiento, v))
}

// AlmacenamientoContainsFold applies the ContainsFold predicate on the "almacenamiento" field.
func AlmacenamientoContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldAlmacenamiento, v))
}

// TarjetaGraficaEQ applies the EQ predicate on the "tarjeta_grafica" field.
func TarjetaGraficaEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTarjetaGrafica, v))
}

// TarjetaGraficaNEQ applies the NEQ predicate on the "tarjeta_grafica" field.
func TarjetaGraficaNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldTarjetaGrafica, v))
}

// TarjetaGraficaIn applies the In predicate on the "tarjeta_grafica" field.
func TarjetaGraficaIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldTarjetaGrafica, vs...))
}

// TarjetaGraficaNotIn applies the NotIn predicate on the "tarjeta_grafica" field.
func TarjetaGraficaNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldTarjetaGrafica, vs...))
}

// TarjetaGraficaGT applies the GT predicate on the "tarjeta_grafica" field.
func TarjetaGraficaGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldTarjetaGrafica, v))
}

// TarjetaGraficaGTE applies the GTE predicate on the "tarjeta_grafica" field.
func TarjetaGraficaGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldTarjetaGrafica, v))
}

// TarjetaGraficaLT applies the LT predicate on the "tarjeta_grafica" field.
func TarjetaGraficaLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldTarjetaGrafica, v))
}

// TarjetaGraficaLTE applies the LTE predicate on the "tarjeta_grafica" field.
func TarjetaGraficaLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldTarjetaGrafica, v))
}

// TarjetaGraficaContains applies the Contains predicate on the "tarjeta_grafica" field.
func TarjetaGraficaContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldTarjetaGrafica, v))
}

// TarjetaGraficaHasPrefix applies the HasPrefix predicate on the "tarjeta_grafica" field.
func TarjetaGraficaHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldTarjetaGrafica, v))
}

// TarjetaGraficaHasSuffix applies the HasSuffix predicate on the "tarjeta_grafica" field.
func TarjetaGraficaHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldTarjetaGrafica, v))
}

// TarjetaGraficaIsNil applies the IsNil predicate on the "tarjeta_grafica" field.
func TarjetaGraficaIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldTarjetaGrafica))
}

// TarjetaGraficaNotNil applies the NotNil predicate on the "tarjeta_grafica" field.
func TarjetaGraficaNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldTarjetaGrafica))
}

// TarjetaGraficaEqualFold applies the EqualFold predicate on the "tarjeta_grafica" field.
func TarjetaGraficaEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldTarjetaGrafica, v))
}

// TarjetaGraficaContainsFold applies the ContainsFold predicate on the "tarjeta_grafica" field.
func TarjetaGraficaContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldTarjetaGrafica, v))
}

// WifiEQ applies the EQ predicate on the "wifi" field.
func WifiEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldWifi, v))
}

// WifiNEQ applies the NEQ predicate on the "wifi" field.
func WifiNEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldWifi, v))
}

// WifiIsNil applies the IsNil predicate on the "wifi" field.
func WifiIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldWifi))
}

// WifiNotNil applies the NotNil predicate on the "wifi" field.
func WifiNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldWifi))
}

// EthernetEQ applies the EQ predicate on the "ethernet" field.
func EthernetEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldEthernet, v))
}

// EthernetNEQ applies the NEQ predicate on the "ethernet" field.
func EthernetNEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldEthernet, v))
}

// EthernetIsNil applies the IsNil predicate on the "ethernet" field.
func EthernetIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldEthernet))
}

// EthernetNotNil applies the NotNil predicate on the "ethernet" field.
func EthernetNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldEthernet))
}

// PuertosEthernetEQ applies the EQ predicate on the "puertos_ethernet" field.
func PuertosEthernetEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertosEthernet, v))
}

// PuertosEthernetNEQ applies the NEQ predicate on the "puertos_ethernet" field.
func PuertosEthernetNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldPuertosEthernet, v))
}

// PuertosEthernetIn applies the In predicate on the "puertos_ethernet" field.
func PuertosEthernetIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldPuertosEthernet, vs...))
}

// PuertosEthernetNotIn applies the NotIn predicate on the "puertos_ethernet" field.
func PuertosEthernetNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldPuertosEthernet, vs...))
}

// PuertosEthernetGT applies the GT predicate on the "puertos_ethernet" field.
func PuertosEthernetGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldPuertosEthernet, v))
}

// PuertosEthernetGTE applies the GTE predicate on the "puertos_ethernet" field.
func PuertosEthernetGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldPuertosEthernet, v))
}

// PuertosEthernetLT applies the LT predicate on the "puertos_ethernet" field.
func PuertosEthernetLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldPuertosEthernet, v))
}

// PuertosEthernetLTE applies the LTE predicate on the "puertos_ethernet" field.
func PuertosEthernetLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldPuertosEthernet, v))
}

// PuertosEthernetContains applies the Contains predicate on the "puertos_ethernet" field.
func PuertosEthernetContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldPuertosEthernet, v))
}

// PuertosEthernetHasPrefix applies the HasPrefix predicate on the "puertos_ethernet" field.
func PuertosEthernetHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldPuertosEthernet, v))
}

// PuertosEthernetHasSuffix applies the HasSuffix predicate on the "puertos_ethernet" field.
func PuertosEthernetHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldPuertosEthernet, v))
}

// PuertosEthernetIsNil applies the IsNil predicate on the "puertos_ethernet" field.
func PuertosEthernetIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldPuertosEthernet))
}

// PuertosEthernetNotNil applies the NotNil predicate on the "puertos_ethernet" field.
func PuertosEthernetNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldPuertosEthernet))
}

// PuertosEthernetEqualFold applies the EqualFold predicate on the "puertos_ethernet" field.
func PuertosEthernetEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldPuertosEthernet, v))
}

// PuertosEthernetContainsFold applies the ContainsFold predicate on the "puertos_ethernet" field.
func PuertosEthernetContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldPuertosEthernet, v))
}

// PuertosSfpEQ applies the EQ predicate on the "puertos_sfp" field.
func PuertosSfpEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertosSfp, v))
}

// PuertosSfpNEQ applies the NEQ predicate on the "puertos_sfp" field.
func PuertosSfpNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldPuertosSfp, v))
}

// PuertosSfpIn applies the In predicate on the "puertos_sfp" field.
func PuertosSfpIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldPuertosSfp, vs...))
}

// PuertosSfpNotIn applies the NotIn predicate on the "puertos_sfp" field.
func PuertosSfpNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldPuertosSfp, vs...))
}

// PuertosSfpGT applies the GT predicate on the "puertos_sfp" field.
func PuertosSfpGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldPuertosSfp, v))
}

// PuertosSfpGTE applies the GTE predicate on the "puertos_sfp" field.
func PuertosSfpGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldPuertosSfp, v))
}

// PuertosSfpLT applies the LT predicate on the "puertos_sfp" field.
func PuertosSfpLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldPuertosSfp, v))
}

// PuertosSfpLTE applies the LTE predicate on the "puertos_sfp" field.
func PuertosSfpLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldPuertosSfp, v))
}

// PuertosSfpContains applies the Contains predicate on the "puertos_sfp" field.
func PuertosSfpContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldPuertosSfp, v))
}

// PuertosSfpHasPrefix applies the HasPrefix predicate on the "puertos_sfp" field.
func PuertosSfpHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldPuertosSfp, v))
}

// PuertosSfpHasSuffix applies the HasSuffix predicate on the "puertos_sfp" field.
func PuertosSfpHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldPuertosSfp, v))
}

// PuertosSfpIsNil applies the IsNil predicate on the "puertos_sfp" field.
func PuertosSfpIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldPuertosSfp))
}

// PuertosSfpNotNil applies the NotNil predicate on the "puertos_sfp" field.
func PuertosSfpNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldPuertosSfp))
}

// PuertosSfpEqualFold applies the EqualFold predicate on the "puertos_sfp" field.
func PuertosSfpEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldPuertosSfp, v))
}

// PuertosSfpContainsFold applies the ContainsFold predicate on the "puertos_sfp" field.
func PuertosSfpContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldPuertosSfp, v))
}

// PuertoConsolaEQ applies the EQ predicate on the "puerto_consola" field.
func PuertoConsolaEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertoConsola, v))
}

// PuertoConsolaNEQ applies the NEQ predicate on the "puerto_consola" field.
func PuertoConsolaNEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldPuertoConsola, v))
}

// PuertoConsolaIsNil applies the IsNil predicate on the "puerto_consola" field.
func PuertoConsolaIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldPuertoConsola))
}

// PuertoConsolaNotNil applies the NotNil predicate on the "puerto_consola" field.
func PuertoConsolaNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldPuertoConsola))
}

// PuertosPoeEQ applies the EQ predicate on the "puertos_poe" field.
func PuertosPoeEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldPuertosPoe, v))
}

// PuertosPoeNEQ applies the NEQ predicate on the "puertos_poe" field.
func PuertosPoeNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldPuertosPoe, v))
}

// PuertosPoeIn applies the In predicate on the "puertos_poe" field.
func PuertosPoeIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldPuertosPoe, vs...))
}

// PuertosPoeNotIn applies the NotIn predicate on the "puertos_poe" field.
func PuertosPoeNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldPuertosPoe, vs...))
}

// PuertosPoeGT applies the GT predicate on the "puertos_poe" field.
func PuertosPoeGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldPuertosPoe, v))
}

// PuertosPoeGTE applies the GTE predicate on the "puertos_poe" field.
func PuertosPoeGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldPuertosPoe, v))
}

// PuertosPoeLT applies the LT predicate on the "puertos_poe" field.
func PuertosPoeLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldPuertosPoe, v))
}

// PuertosPoeLTE applies the LTE predicate on the "puertos_poe" field.
func PuertosPoeLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldPuertosPoe, v))
}

// PuertosPoeContains applies the Contains predicate on the "puertos_poe" field.
func PuertosPoeContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldPuertosPoe, v))
}

// PuertosPoeHasPrefix applies the HasPrefix predicate on the "puertos_poe" field.
func PuertosPoeHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldPuertosPoe, v))
}

// PuertosPoeHasSuffix applies the HasSuffix predicate on the "puertos_poe" field.
func PuertosPoeHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldPuertosPoe, v))
}

// PuertosPoeIsNil applies the IsNil predicate on the "puertos_poe" field.
func PuertosPoeIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldPuertosPoe))
}

// PuertosPoeNotNil applies the NotNil predicate on the "puertos_poe" field.
func PuertosPoeNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldPuertosPoe))
}

// PuertosPoeEqualFold applies the EqualFold predicate on the "puertos_poe" field.
func PuertosPoeEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldPuertosPoe, v))
}

// PuertosPoeContainsFold applies the ContainsFold predicate on the "puertos_poe" field.
func PuertosPoeContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldPuertosPoe, v))
}

// AlimentacionEQ applies the EQ predicate on the "alimentacion" field.
func AlimentacionEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAlimentacion, v))
}

// AlimentacionNEQ applies the NEQ predicate on the "alimentacion" field.
func AlimentacionNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldAlimentacion, v))
}

// AlimentacionIn applies the In predicate on the "alimentacion" field.
func AlimentacionIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldAlimentacion, vs...))
}

// AlimentacionNotIn applies the NotIn predicate on the "alimentacion" field.
func AlimentacionNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldAlimentacion, vs...))
}

// AlimentacionGT applies the GT predicate on the "alimentacion" field.
func AlimentacionGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldAlimentacion, v))
}

// AlimentacionGTE applies the GTE predicate on the "alimentacion" field.
func AlimentacionGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldAlimentacion, v))
}

// AlimentacionLT applies the LT predicate on the "alimentacion" field.
func AlimentacionLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldAlimentacion, v))
}

// AlimentacionLTE applies the LTE predicate on the "alimentacion" field.
func AlimentacionLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldAlimentacion, v))
}

// AlimentacionContains applies the Contains predicate on the "alimentacion" field.
func AlimentacionContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldAlimentacion, v))
}

// AlimentacionHasPrefix applies the HasPrefix predicate on the "alimentacion" field.
func AlimentacionHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldAlimentacion, v))
}

// AlimentacionHasSuffix applies the HasSuffix predicate on the "alimentacion" field.
func AlimentacionHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldAlimentacion, v))
}

// AlimentacionIsNil applies the IsNil predicate on the "alimentacion" field.
func AlimentacionIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldAlimentacion))
}

// AlimentacionNotNil applies the NotNil predicate on the "alimentacion" field.
func AlimentacionNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldAlimentacion))
}

// AlimentacionEqualFold applies the EqualFold predicate on the "alimentacion" field.
func AlimentacionEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldAlimentacion, v))
}

// AlimentacionContainsFold applies the ContainsFold predicate on the "alimentacion" field.
func AlimentacionContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldAlimentacion, v))
}

// AdministrableEQ applies the EQ predicate on the "administrable" field.
func AdministrableEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAdministrable, v))
}

// AdministrableNEQ applies the NEQ predicate on the "administrable" field.
func AdministrableNEQ(v bool) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldAdministrable, v))
}

// AdministrableIsNil applies the IsNil predicate on the "administrable" field.
func AdministrableIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldAdministrable))
}

// AdministrableNotNil applies the NotNil predicate on the "administrable" field.
func AdministrableNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldAdministrable))
}

// TamanoEQ applies the EQ predicate on the "tamano" field.
func TamanoEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTamano, v))
}

// TamanoNEQ applies the NEQ predicate on the "tamano" field.
func TamanoNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldTamano, v))
}

// TamanoIn applies the In predicate on the "tamano" field.
func TamanoIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldTamano, vs...))
}

// TamanoNotIn applies the NotIn predicate on the "tamano" field.
func TamanoNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldTamano, vs...))
}

// TamanoGT applies the GT predicate on the "tamano" field.
func TamanoGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldTamano, v))
}

// TamanoGTE applies the GTE predicate on the "tamano" field.
func TamanoGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldTamano, v))
}

// TamanoLT applies the LT predicate on the "tamano" field.
func TamanoLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldTamano, v))
}

// TamanoLTE applies the LTE predicate on the "tamano" field.
func TamanoLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldTamano, v))
}

// TamanoContains applies the Contains predicate on the "tamano" field.
func TamanoContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldTamano, v))
}

// TamanoHasPrefix applies the HasPrefix predicate on the "tamano" field.
func TamanoHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldTamano, v))
}

// TamanoHasSuffix applies the HasSuffix predicate on the "tamano" field.
func TamanoHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldTamano, v))
}

// TamanoIsNil applies the IsNil predicate on the "tamano" field.
func TamanoIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldTamano))
}

// TamanoNotNil applies the NotNil predicate on the "tamano" field.
func TamanoNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldTamano))
}

// TamanoEqualFold applies the EqualFold predicate on the "tamano" field.
func TamanoEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldTamano, v))
}

// TamanoContainsFold applies the ContainsFold predicate on the "tamano" field.
func TamanoContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldTamano, v))
}

// ColorEQ applies the EQ predicate on the "color" field.
func ColorEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldColor, v))
}

// ColorNEQ applies the NEQ predicate on the "color" field.
func ColorNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldColor, v))
}

// ColorIn applies the In predicate on the "color" field.
func ColorIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldColor, vs...))
}

// ColorNotIn applies the NotIn predicate on the "color" field.
func ColorNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldColor, vs...))
}

// ColorGT applies the GT predicate on the "color" field.
func ColorGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldColor, v))
}

// ColorGTE applies the GTE predicate on the "color" field.
func ColorGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldColor, v))
}

// ColorLT applies the LT predicate on the "color" field.
func ColorLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldColor, v))
}

// ColorLTE applies the LTE predicate on the "color" field.
func ColorLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldColor, v))
}

// ColorContains applies the Contains predicate on the "color" field.
func ColorContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldColor, v))
}

// ColorHasPrefix applies the HasPrefix predicate on the "color" field.
func ColorHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldColor, v))
}

// ColorHasSuffix applies the HasSuffix predicate on the "color" field.
func ColorHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldColor, v))
}

// ColorIsNil applies the IsNil predicate on the "color" field.
func ColorIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldColor))
}

// ColorNotNil applies the NotNil predicate on the "color" field.
func ColorNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldColor))
}

// ColorEqualFold applies the EqualFold predicate on the "color" field.
func ColorEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldColor, v))
}

// ColorContainsFold applies the ContainsFold predicate on the "color" field.
func ColorContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldColor, v))
}

// ConectoresEQ applies the EQ predicate on the "conectores" field.
func ConectoresEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldConectores, v))
}

// ConectoresNEQ applies the NEQ predicate on the "conectores" field.
func ConectoresNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldConectores, v))
}

// ConectoresIn applies the In predicate on the "conectores" field.
func ConectoresIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldConectores, vs...))
}

// ConectoresNotIn applies the NotIn predicate on the "conectores" field.
func ConectoresNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldConectores, vs...))
}

// ConectoresGT applies the GT predicate on the "conectores" field.
func ConectoresGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldConectores, v))
}

// ConectoresGTE applies the GTE predicate on the "conectores" field.
func ConectoresGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldConectores, v))
}

// ConectoresLT applies the LT predicate on the "conectores" field.
func ConectoresLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldConectores, v))
}

// ConectoresLTE applies the LTE predicate on the "conectores" field.
func ConectoresLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldConectores, v))
}

// ConectoresContains applies the Contains predicate on the "conectores" field.
func ConectoresContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldConectores, v))
}

// ConectoresHasPrefix applies the HasPrefix predicate on the "conectores" field.
func ConectoresHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldConectores, v))
}

// ConectoresHasSuffix applies the HasSuffix predicate on the "conectores" field.
func ConectoresHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldConectores, v))
}

// ConectoresIsNil applies the IsNil predicate on the "conectores" field.
func ConectoresIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldConectores))
}

// ConectoresNotNil applies the NotNil predicate on the "conectores" field.
func ConectoresNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldConectores))
}

// ConectoresEqualFold applies the EqualFold predicate on the "conectores" field.
func ConectoresEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldConectores, v))
}

// ConectoresContainsFold applies the ContainsFold predicate on the "conectores" field.
func ConectoresContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldConectores, v))
}

// CablesEQ applies the EQ predicate on the "cables" field.
func CablesEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldCables, v))
}

// CablesNEQ applies the NEQ predicate on the "cables" field.
func CablesNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldCables, v))
}

// CablesIn applies the In predicate on the "cables" field.
func CablesIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldCables, vs...))
}

// CablesNotIn applies the NotIn predicate on the "cables" field.
func CablesNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldCables, vs...))
}

// CablesGT applies the GT predicate on the "cables" field.
func CablesGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldCables, v))
}

// CablesGTE applies the GTE predicate on the "cables" field.
func CablesGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldCables, v))
}

// CablesLT applies the LT predicate on the "cables" field.
func CablesLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldCables, v))
}

// CablesLTE applies the LTE predicate on the "cables" field.
func CablesLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldCables, v))
}

// CablesContains applies the Contains predicate on the "cables" field.
func CablesContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldCables, v))
}

// CablesHasPrefix applies the HasPrefix predicate on the "cables" field.
func CablesHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldCables, v))
}

// CablesHasSuffix applies the HasSuffix predicate on the "cables" field.
func CablesHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldCables, v))
}

// CablesIsNil applies the IsNil predicate on the "cables" field.
func CablesIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldCables))
}

// CablesNotNil applies the NotNil predicate on the "cables" field.
func CablesNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldCables))
}

// CablesEqualFold applies the EqualFold predicate on the "cables" field.
func CablesEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldCables, v))
}

// CablesContainsFold applies the ContainsFold predicate on the "cables" field.
func CablesContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldCables, v))
}

// EstadoEQ applies the EQ predicate on the "estado" field.
func EstadoEQ(v Estado) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldEstado, v))
}

// EstadoNEQ applies the NEQ predicate on the "estado" field.
func EstadoNEQ(v Estado) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldEstado, v))
}

// EstadoIn applies the In predicate on the "estado" field.
func EstadoIn(vs ...Estado) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldEstado, vs...))
}

// EstadoNotIn applies the NotIn predicate on the "estado" field.
func EstadoNotIn(vs ...Estado) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldEstado, vs...))
}

// FechaBajaEQ applies the EQ predicate on the "fecha_baja" field.
func FechaBajaEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldFechaBaja, v))
}

// FechaBajaNEQ applies the NEQ predicate on the "fecha_baja" field.
func FechaBajaNEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldFechaBaja, v))
}

// FechaBajaIn applies the In predicate on the "fecha_baja" field.
func FechaBajaIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldFechaBaja, vs...))
}

// FechaBajaNotIn applies the NotIn predicate on the "fecha_baja" field.
func FechaBajaNotIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldFechaBaja, vs...))
}

// FechaBajaGT applies the GT predicate on the "fecha_baja" field.
func FechaBajaGT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldFechaBaja, v))
}

// FechaBajaGTE applies the GTE predicate on the "fecha_baja" field.
func FechaBajaGTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldFechaBaja, v))
}

// FechaBajaLT applies the LT predicate on the "fecha_baja" field.
func FechaBajaLT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldFechaBaja, v))
}

// FechaBajaLTE applies the LTE predicate on the "fecha_baja" field.
func FechaBajaLTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldFechaBaja, v))
}

// FechaBajaIsNil applies the IsNil predicate on the "fecha_baja" field.
func FechaBajaIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldFechaBaja))
}

// FechaBajaNotNil applies the NotNil predicate on the "fecha_baja" field.
func FechaBajaNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldFechaBaja))
}

// MotivoBajaEQ applies the EQ predicate on the "motivo_baja" field.
func MotivoBajaEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldMotivoBaja, v))
}

// MotivoBajaNEQ applies the NEQ predicate on the "motivo_baja" field.
func MotivoBajaNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldMotivoBaja, v))
}

// MotivoBajaIn applies the In predicate on the "motivo_baja" field.
func MotivoBajaIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldMotivoBaja, vs...))
}

// MotivoBajaNotIn applies the NotIn predicate on the "motivo_baja" field.
func MotivoBajaNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldMotivoBaja, vs...))
}

// MotivoBajaGT applies the GT predicate on the "motivo_baja" field.
func MotivoBajaGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldMotivoBaja, v))
}

// MotivoBajaGTE applies the GTE predicate on the "motivo_baja" field.
func MotivoBajaGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldMotivoBaja, v))
}

// MotivoBajaLT applies the LT predicate on the "motivo_baja" field.
func MotivoBajaLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldMotivoBaja, v))
}

// MotivoBajaLTE applies the LTE predicate on the "motivo_baja" field.
func MotivoBajaLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldMotivoBaja, v))
}

// MotivoBajaContains applies the Contains predicate on the "motivo_baja" field.
func MotivoBajaContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldMotivoBaja, v))
}

// MotivoBajaHasPrefix applies the HasPrefix predicate on the "motivo_baja" field.
func MotivoBajaHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldMotivoBaja, v))
}

// MotivoBajaHasSuffix applies the HasSuffix predicate on the "motivo_baja" field.
func MotivoBajaHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldMotivoBaja, v))
}

// MotivoBajaIsNil applies the IsNil predicate on the "motivo_baja" field.
func MotivoBajaIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldMotivoBaja))
}

// MotivoBajaNotNil applies the NotNil predicate on the "motivo_baja" field.
func MotivoBajaNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldMotivoBaja))
}

// MotivoBajaEqualFold applies the EqualFold predicate on the "motivo_baja" field.
func MotivoBajaEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldMotivoBaja, v))
}

// MotivoBajaContainsFold applies the ContainsFold predicate on the "motivo_baja" field.
func MotivoBajaContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldMotivoBaja, v))
}

// UsuarioBajaIDEQ applies the EQ predicate on the "usuario_baja_id" field.
func UsuarioBajaIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDNEQ applies the NEQ predicate on the "usuario_baja_id" field.
func UsuarioBajaIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDIn applies the In predicate on the "usuario_baja_id" field.
func UsuarioBajaIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldUsuarioBajaID, vs...))
}

// UsuarioBajaIDNotIn applies the NotIn predicate on the "usuario_baja_id" field.
func UsuarioBajaIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldUsuarioBajaID, vs...))
}

// UsuarioBajaIDGT applies the GT predicate on the "usuario_baja_id" field.
func UsuarioBajaIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDGTE applies the GTE predicate on the "usuario_baja_id" field.
func UsuarioBajaIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDLT applies the LT predicate on the "usuario_baja_id" field.
func UsuarioBajaIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDLTE applies the LTE predicate on the "usuario_baja_id" field.
func UsuarioBajaIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDContains applies the Contains predicate on the "usuario_baja_id" field.
func UsuarioBajaIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDHasPrefix applies the HasPrefix predicate on the "usuario_baja_id" field.
func UsuarioBajaIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDHasSuffix applies the HasSuffix predicate on the "usuario_baja_id" field.
func UsuarioBajaIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDIsNil applies the IsNil predicate on the "usuario_baja_id" field.
func UsuarioBajaIDIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldUsuarioBajaID))
}

// UsuarioBajaIDNotNil applies the NotNil predicate on the "usuario_baja_id" field.
func UsuarioBajaIDNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldUsuarioBajaID))
}

// UsuarioBajaIDEqualFold applies the EqualFold predicate on the "usuario_baja_id" field.
func UsuarioBajaIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldUsuarioBajaID, v))
}

// UsuarioBajaIDContainsFold applies the ContainsFold predicate on the "usuario_baja_id" field.
func UsuarioBajaIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldUsuarioBajaID, v))
}

// DocumentosBajaIsNil applies the IsNil predicate on the "documentos_baja" field.
func DocumentosBajaIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldDocumentosBaja))
}

// DocumentosBajaNotNil applies the NotNil predicate on the "documentos_baja" field.
func DocumentosBajaNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldDocumentosBaja))
}

// AssignedToIDEQ applies the EQ predicate on the "assigned_to_id" field.
func AssignedToIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldAssignedToID, v))
}

// AssignedToIDNEQ applies the NEQ predicate on the "assigned_to_id" field.
func AssignedToIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldAssignedToID, v))
}

// AssignedToIDIn applies the In predicate on the "assigned_to_id" field.
func AssignedToIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldAssignedToID, vs...))
}

// AssignedToIDNotIn applies the NotIn predicate on the "assigned_to_id" field.
func AssignedToIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldAssignedToID, vs...))
}

// AssignedToIDGT applies the GT predicate on the "assigned_to_id" field.
func AssignedToIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldAssignedToID, v))
}

// AssignedToIDGTE applies the GTE predicate on the "assigned_to_id" field.
func AssignedToIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldAssignedToID, v))
}

// AssignedToIDLT applies the LT predicate on the "assigned_to_id" field.
func AssignedToIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldAssignedToID, v))
}

// AssignedToIDLTE applies the LTE predicate on the "assigned_to_id" field.
func AssignedToIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldAssignedToID, v))
}

// AssignedToIDContains applies the Contains predicate on the "assigned_to_id" field.
func AssignedToIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldAssignedToID, v))
}

// AssignedToIDHasPrefix applies the HasPrefix predicate on the "assigned_to_id" field.
func AssignedToIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldAssignedToID, v))
}

// AssignedToIDHasSuffix applies the HasSuffix predicate on the "assigned_to_id" field.
func AssignedToIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldAssignedToID, v))
}

// AssignedToIDIsNil applies the IsNil predicate on the "assigned_to_id" field.
func AssignedToIDIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldAssignedToID))
}

// AssignedToIDNotNil applies the NotNil predicate on the "assigned_to_id" field.
func AssignedToIDNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldAssignedToID))
}

// AssignedToIDEqualFold applies the EqualFold predicate on the "assigned_to_id" field.
func AssignedToIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldAssignedToID, v))
}

// AssignedToIDContainsFold applies the ContainsFold predicate on the "assigned_to_id" field.
func AssignedToIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldAssignedToID, v))
}

// UltimoMantenimientoEQ applies the EQ predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUltimoMantenimiento, v))
}

// UltimoMantenimientoNEQ applies the NEQ predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoNEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldUltimoMantenimiento, v))
}

// UltimoMantenimientoIn applies the In predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldUltimoMantenimiento, vs...))
}

// UltimoMantenimientoNotIn applies the NotIn predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoNotIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldUltimoMantenimiento, vs...))
}

// UltimoMantenimientoGT applies the GT predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoGT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldUltimoMantenimiento, v))
}

// UltimoMantenimientoGTE applies the GTE predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoGTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldUltimoMantenimiento, v))
}

// UltimoMantenimientoLT applies the LT predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoLT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldUltimoMantenimiento, v))
}

// UltimoMantenimientoLTE applies the LTE predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoLTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldUltimoMantenimiento, v))
}

// UltimoMantenimientoIsNil applies the IsNil predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldUltimoMantenimiento))
}

// UltimoMantenimientoNotNil applies the NotNil predicate on the "ultimo_mantenimiento" field.
func UltimoMantenimientoNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldUltimoMantenimiento))
}

// ProximoMantenimientoEQ applies the EQ predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoNEQ applies the NEQ predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoNEQ(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoIn applies the In predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldProximoMantenimiento, vs...))
}

// ProximoMantenimientoNotIn applies the NotIn predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoNotIn(vs ...time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldProximoMantenimiento, vs...))
}

// ProximoMantenimientoGT applies the GT predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoGT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoGTE applies the GTE predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoGTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoLT applies the LT predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoLT(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoLTE applies the LTE predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoLTE(v time.Time) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldProximoMantenimiento, v))
}

// ProximoMantenimientoIsNil applies the IsNil predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldProximoMantenimiento))
}

// ProximoMantenimientoNotNil applies the NotNil predicate on the "proximo_mantenimiento" field.
func ProximoMantenimientoNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldProximoMantenimiento))
}

// TecnicoMantenimientoIDEQ applies the EQ predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDNEQ applies the NEQ predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDIn applies the In predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldTecnicoMantenimientoID, vs...))
}

// TecnicoMantenimientoIDNotIn applies the NotIn predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldTecnicoMantenimientoID, vs...))
}

// TecnicoMantenimientoIDGT applies the GT predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDGTE applies the GTE predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDLT applies the LT predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDLTE applies the LTE predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDContains applies the Contains predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDHasPrefix applies the HasPrefix predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDHasSuffix applies the HasSuffix predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDIsNil applies the IsNil predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldTecnicoMantenimientoID))
}

// TecnicoMantenimientoIDNotNil applies the NotNil predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldTecnicoMantenimientoID))
}

// TecnicoMantenimientoIDEqualFold applies the EqualFold predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldTecnicoMantenimientoID, v))
}

// TecnicoMantenimientoIDContainsFold applies the ContainsFold predicate on the "tecnico_mantenimiento_id" field.
func TecnicoMantenimientoIDContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldTecnicoMantenimientoID, v))
}

// UltimoMantenimientoHallazgosEQ applies the EQ predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEQ(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosNEQ applies the NEQ predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosNEQ(v string) predicate.Activo {
	return predicate.Activo(sql.FieldNEQ(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosIn applies the In predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldIn(FieldUltimoMantenimientoHallazgos, vs...))
}

// UltimoMantenimientoHallazgosNotIn applies the NotIn predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosNotIn(vs ...string) predicate.Activo {
	return predicate.Activo(sql.FieldNotIn(FieldUltimoMantenimientoHallazgos, vs...))
}

// UltimoMantenimientoHallazgosGT applies the GT predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosGT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGT(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosGTE applies the GTE predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosGTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldGTE(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosLT applies the LT predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosLT(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLT(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosLTE applies the LTE predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosLTE(v string) predicate.Activo {
	return predicate.Activo(sql.FieldLTE(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosContains applies the Contains predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosContains(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContains(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosHasPrefix applies the HasPrefix predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosHasPrefix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasPrefix(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosHasSuffix applies the HasSuffix predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosHasSuffix(v string) predicate.Activo {
	return predicate.Activo(sql.FieldHasSuffix(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosIsNil applies the IsNil predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosIsNil() predicate.Activo {
	return predicate.Activo(sql.FieldIsNull(FieldUltimoMantenimientoHallazgos))
}

// UltimoMantenimientoHallazgosNotNil applies the NotNil predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosNotNil() predicate.Activo {
	return predicate.Activo(sql.FieldNotNull(FieldUltimoMantenimientoHallazgos))
}

// UltimoMantenimientoHallazgosEqualFold applies the EqualFold predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosEqualFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldEqualFold(FieldUltimoMantenimientoHallazgos, v))
}

// UltimoMantenimientoHallazgosContainsFold applies the ContainsFold predicate on the "ultimo_mantenimiento_hallazgos" field.
func UltimoMantenimientoHallazgosContainsFold(v string) predicate.Activo {
	return predicate.Activo(sql.FieldContainsFold(FieldUltimoMantenimientoHallazgos, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Activo) predicate.Activo {
	return predicate.Activo(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Activo) predicate.Activo {
	return predicate.Activo(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Activo) predicate.Activo {
	return predicate.Activo(sql.NotPredicates(p))
}
