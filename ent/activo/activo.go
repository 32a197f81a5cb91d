// Code generated by ent, DO NOT EDIT.

package activo

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activo type in the database.
	Label = "activo"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTipoActivoID holds the string denoting the tipo_activo_id field in the database.
	FieldTipoActivoID = "tipo_activo_id"
	// FieldMarcaID holds the string denoting the marca_id field in the database.
	FieldMarcaID = "marca_id"
	// FieldModeloID holds the string denoting the modelo_id field in the database.
	FieldModeloID = "modelo_id"
	// FieldProveedorID holds the string denoting the proveedor_id field in the database.
	FieldProveedorID = "proveedor_id"
	// FieldRegionID holds the string denoting the region_id field in the database.
	FieldRegionID = "region_id"
	// FieldFincaID holds the string denoting the finca_id field in the database.
	FieldFincaID = "finca_id"
	// FieldDepartamentoID holds the string denoting the departamento_id field in the database.
	FieldDepartamentoID = "departamento_id"
	// FieldAreaID holds the string denoting the area_id field in the database.
	FieldAreaID = "area_id"
	// FieldSerie holds the string denoting the serie field in the database.
	FieldSerie = "serie"
	// FieldHostname holds the string denoting the hostname field in the database.
	FieldHostname = "hostname"
	// FieldFechaRegistro holds the string denoting the fecha_registro field in the database.
	FieldFechaRegistro = "fecha_registro"
	// FieldFechaFinGarantia holds the string denoting the fecha_fin_garantia field in the database.
	FieldFechaFinGarantia = "fecha_fin_garantia"
	// FieldSolicitante holds the string denoting the solicitante field in the database.
	FieldSolicitante = "solicitante"
	// FieldCorreoElectronico holds the string denoting the correo_electronico field in the database.
	FieldCorreoElectronico = "correo_electronico"
	// FieldOrdenCompra holds the string denoting the orden_compra field in the database.
	FieldOrdenCompra = "orden_compra"
	// FieldCuentaContable holds the string denoting the cuenta_contable field in the database.
	FieldCuentaContable = "cuenta_contable"
	// FieldTipoCosto holds the string denoting the tipo_costo field in the database.
	FieldTipoCosto = "tipo_costo"
	// FieldCuotas holds the string denoting the cuotas field in the database.
	FieldCuotas = "cuotas"
	// FieldMoneda holds the string denoting the moneda field in the database.
	FieldMoneda = "moneda"
	// FieldCosto holds the string denoting the costo field in the database.
	FieldCosto = "costo"
	// FieldProcesador holds the string denoting the procesador field in the database.
	FieldProcesador = "procesador"
	// FieldRAM holds the string denoting the ram field in the database.
	FieldRAM = "ram"
	// FieldAlmacenamiento holds the string denoting the almacenamiento field in the database.
	FieldAlmacenamiento = "almacenamiento"
	// FieldTarjetaGrafica holds the string denoting the tarjeta_grafica field in the database.
	FieldTarjetaGrafica = "tarjeta_grafica"
	// FieldWifi holds the string denoting the wifi field in the database.
	FieldWifi = "wifi"
	// FieldEthernet holds the string denoting the ethernet field in the database.
	FieldEthernet = "ethernet"
	// FieldPuertosEthernet holds the string denoting the puertos_ethernet field in the database.
	FieldPuertosEthernet = "puertos_ethernet"
	// FieldPuertosSfp holds the string denoting the puertos_sfp field in the database.
	FieldPuertosSfp = "puertos_sfp"
	// FieldPuertoConsola holds the string denoting the puerto_consola field in the database.
	FieldPuertoConsola = "puerto_consola"
	// FieldPuertosPoe holds the string denoting the puertos_poe field in the database.
	FieldPuertosPoe = "puertos_poe"
	// FieldAlimentacion holds the string denoting the alimentacion field in the database.
	FieldAlimentacion = "alimentacion"
	// FieldAdministrable holds the string denoting the administrable field in the database.
	FieldAdministrable = "administrable"
	// FieldTamano holds the string denoting the tamano field in the database.
	FieldTamano = "tamano"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldConectores holds the string denoting the conectores field in the database.
	FieldConectores = "conectores"
	// FieldCables holds the string denoting the cables field in the database.
	FieldCables = "cables"
	// FieldEstado holds the string denoting the estado field in the database.
	FieldEstado = "estado"
	// FieldFechaBaja holds the string denoting the fecha_baja field in the database.
	FieldFechaBaja = "fecha_baja"
	// FieldMotivoBaja holds the string denoting the motivo_baja field in the database.
	FieldMotivoBaja = "motivo_baja"
	// FieldUsuarioBajaID holds the string denoting the usuario_baja_id field in the database.
	FieldUsuarioBajaID = "usuario_baja_id"
	// FieldDocumentosBaja holds the string denoting the documentos_baja field in the database.
	FieldDocumentosBaja = "documentos_baja"
	// FieldAssignedToID holds the string denoting the assigned_to_id field in the database.
	FieldAssignedToID = "assigned_to_id"
	// FieldUltimoMantenimiento holds the string denoting the ultimo_mantenimiento field in the database.
	FieldUltimoMantenimiento = "ultimo_mantenimiento"
	// FieldProximoMantenimiento holds the string denoting the proximo_mantenimiento field in the database.
	FieldProximoMantenimiento = "proximo_mantenimiento"
	// FieldTecnicoMantenimientoID holds the string denoting the tecnico_mantenimiento_id field in the database.
	FieldTecnicoMantenimientoID = "tecnico_mantenimiento_id"
	// FieldUltimoMantenimientoHallazgos holds the string denoting the ultimo_mantenimiento_hallazgos field in the database.
	FieldUltimoMantenimientoHallazgos = "ultimo_mantenimiento_hallazgos"
	// Table holds the table name of the activo in the database.
	Table = "activos"
)

// Columns holds all SQL columns for activo fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTipoActivoID,
	FieldMarcaID,
	FieldModeloID,
	FieldProveedorID,
	FieldRegionID,
	FieldFincaID,
	FieldDepartamentoID,
	FieldAreaID,
	FieldSerie,
	FieldHostname,
	FieldFechaRegistro,
	FieldFechaFinGarantia,
	FieldSolicitante,
	FieldCorreoElectronico,
	FieldOrdenCompra,
	FieldCuentaContable,
	FieldTipoCosto,
	FieldCuotas,
	FieldMoneda,
	FieldCosto,
	FieldProcesador,
	FieldRAM,
	FieldAlmacenamiento,
	FieldTarjetaGrafica,
	FieldWifi,
	FieldEthernet,
	FieldPuertosEthernet,
	FieldPuertosSfp,
	FieldPuertoConsola,
	FieldPuertosPoe,
	FieldAlimentacion,
	FieldAdministrable,
	FieldTamano,
	FieldColor,
	FieldConectores,
	FieldCables,
	FieldEstado,
	FieldFechaBaja,
	FieldMotivoBaja,
	FieldUsuarioBajaID,
	FieldDocumentosBaja,
	FieldAssignedToID,
	FieldUltimoMantenimiento,
	FieldProximoMantenimiento,
	FieldTecnicoMantenimientoID,
	FieldUltimoMantenimientoHallazgos,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TipoActivoIDValidator is a validator for the "tipo_activo_id" field. It is called by the builders before save.
	TipoActivoIDValidator func(string) error
	// MarcaIDValidator is a validator for the "marca_id" field. It is called by the builders before save.
	MarcaIDValidator func(string) error
	// ModeloIDValidator is a validator for the "modelo_id" field. It is called by the builders before save.
	ModeloIDValidator func(string) error
	// ProveedorIDValidator is a validator for the "proveedor_id" field. It is called by the builders before save.
	ProveedorIDValidator func(string) error
	// RegionIDValidator is a validator for the "region_id" field. It is called by the builders before save.
	RegionIDValidator func(string) error
	// FincaIDValidator is a validator for the "finca_id" field. It is called by the builders before save.
	FincaIDValidator func(string) error
	// DepartamentoIDValidator is a validator for the "departamento_id" field. It is called by the builders before save.
	DepartamentoIDValidator func(string) error
	// AreaIDValidator is a validator for the "area_id" field. It is called by the builders before save.
	AreaIDValidator func(string) error
	// SerieValidator is a validator for the "serie" field. It is called by the builders before save.
	SerieValidator func(string) error
	// HostnameValidator is a validator for the "hostname" field. It is called by the builders before save.
	HostnameValidator func(string) error
)

// TipoCosto defines the type for the "tipo_costo" enum field.
type TipoCosto string

// TipoCosto values.
const (
	TipoCostoCosto       TipoCosto = "costo"
	TipoCostoMensualidad TipoCosto = "mensualidad"
)

func (tc TipoCosto) String() string {
	return string(tc)
}

// TipoCostoValidator is a validator for the "tipo_costo" field enum values. It is called by the builders before save.
func TipoCostoValidator(tc TipoCosto) error {
	switch tc {
	case TipoCostoCosto, TipoCostoMensualidad:
		return nil
	default:
		return fmt.Errorf("activo: invalid enum value for tipo_costo field: %q", tc)
	}
}

// Moneda defines the type for the "moneda" enum field.
type Moneda string

// Moneda values.
const (
	MonedaUSD Moneda = "USD"
	MonedaGTQ Moneda = "GTQ"
)

func (m Moneda) String() string {
	return string(m)
}

// MonedaValidator is a validator for the "moneda" field enum values. It is called by the builders before save.
func MonedaValidator(m Moneda) error {
	switch m {
	case MonedaUSD, MonedaGTQ:
		return nil
	default:
		return fmt.Errorf("activo: invalid enum value for moneda field: %q", m)
	}
}

// Estado defines the type for the "estado" enum field.
type Estado string

// EstadoActivo is the default value of the Estado enum.
const DefaultEstado = EstadoActivo

// Estado values.
const (
	EstadoActivo   Estado = "activo"
	EstadoRetirado Estado = "retirado"
)

func (e Estado) String() string {
	return string(e)
}

// EstadoValidator is a validator for the "estado" field enum values. It is called by the builders before save.
func EstadoValidator(e Estado) error {
	switch e {
	case EstadoActivo, EstadoRetirado:
		return nil
	default:
		return fmt.Errorf("activo: invalid enum value for estado field: %q", e)
	}
}

// OrderOption defines the ordering options for the Activo queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTipoActivoID orders the results by the tipo_activo_id field.
func ByTipoActivoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoActivoID, opts...).ToFunc()
}

// ByMarcaID orders the results by the marca_id field.
func ByMarcaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarcaID, opts...).ToFunc()
}

// ByModeloID orders the results by the modelo_id field.
func ByModeloID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModeloID, opts...).ToFunc()
}

// ByProveedorID orders the results by the proveedor_id field.
func ByProveedorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProveedorID, opts...).ToFunc()
}

// ByRegionID orders the results by the region_id field.
func ByRegionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegionID, opts...).ToFunc()
}

// ByFincaID orders the results by the finca_id field.
func ByFincaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFincaID, opts...).ToFunc()
}

// ByDepartamentoID orders the results by the departamento_id field.
func ByDepartamentoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartamentoID, opts...).ToFunc()
}

// ByAreaID orders the results by the area_id field.
func ByAreaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaID, opts...).ToFunc()
}

// BySerie orders the results by the serie field.
func BySerie(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerie, opts...).ToFunc()
}

// ByHostname orders the results by the hostname field.
func ByHostname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostname, opts...).ToFunc()
}

// ByFechaRegistro orders the results by the fecha_registro field.
func ByFechaRegistro(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaRegistro, opts...).ToFunc()
}

// ByFechaFinGarantia orders the results by the fecha_fin_garantia field.
func ByFechaFinGarantia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaFinGarantia, opts...).ToFunc()
}

// BySolicitante orders the results by the solicitante field.
func BySolicitante(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolicitante, opts...).ToFunc()
}

// ByCorreoElectronico orders the results by the correo_electronico field.
func ByCorreoElectronico(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorreoElectronico, opts...).ToFunc()
}

// ByOrdenCompra orders the results by the orden_compra field.
func ByOrdenCompra(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrdenCompra, opts...).ToFunc()
}

// ByCuentaContable orders the results by the cuenta_contable field.
func ByCuentaContable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCuentaContable, opts...).ToFunc()
}

// ByTipoCosto orders the results by the tipo_costo field.
func ByTipoCosto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoCosto, opts...).ToFunc()
}

// ByCuotas orders the results by the cuotas field.
func ByCuotas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCuotas, opts...).ToFunc()
}

// ByMoneda orders the results by the moneda field.
func ByMoneda(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoneda, opts...).ToFunc()
}

// ByCosto orders the results by the costo field.
func ByCosto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCosto, opts...).ToFunc()
}

// ByProcesador orders the results by the procesador field.
func ByProcesador(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcesador, opts...).ToFunc()
}

// ByRAM orders the results by the ram field.
func ByRAM(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRAM, opts...).ToFunc()
}

// ByAlmacenamiento orders the results by the almacenamiento field.
func ByAlmacenamiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlmacenamiento, opts...).ToFunc()
}

// ByTarjetaGrafica orders the results by the tarjeta_grafica field.
func ByTarjetaGrafica(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarjetaGrafica, opts...).ToFunc()
}

// ByWifi orders the results by the wifi field.
func ByWifi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWifi, opts...).ToFunc()
}

// ByEthernet orders the results by the ethernet field.
func ByEthernet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEthernet, opts...).ToFunc()
}

// ByPuertosEthernet orders the results by the puertos_ethernet field.
func ByPuertosEthernet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPuertosEthernet, opts...).ToFunc()
}

// ByPuertosSfp orders the results by the puertos_sfp field.
func ByPuertosSfp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPuertosSfp, opts...).ToFunc()
}

// ByPuertoConsola orders the results by the puerto_consola field.
func ByPuertoConsola(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPuertoConsola, opts...).ToFunc()
}

// ByPuertosPoe orders the results by the puertos_poe field.
func ByPuertosPoe(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPuertosPoe, opts...).ToFunc()
}

// ByAlimentacion orders the results by the alimentacion field.
func ByAlimentacion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlimentacion, opts...).ToFunc()
}

// ByAdministrable orders the results by the administrable field.
func ByAdministrable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdministrable, opts...).ToFunc()
}

// ByTamano orders the results by the tamano field.
func ByTamano(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTamano, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByConectores orders the results by the conectores field.
func ByConectores(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConectores, opts...).ToFunc()
}

// ByCables orders the results by the cables field.
func ByCables(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCables, opts...).ToFunc()
}

// ByEstado orders the results by the estado field.
func ByEstado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstado, opts...).ToFunc()
}

// ByFechaBaja orders the results by the fecha_baja field.
func ByFechaBaja(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaBaja, opts...).ToFunc()
}

// ByMotivoBaja orders the results by the motivo_baja field.
func ByMotivoBaja(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMotivoBaja, opts...).ToFunc()
}

// ByUsuarioBajaID orders the results by the usuario_baja_id field.
func ByUsuarioBajaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsuarioBajaID, opts...).ToFunc()
}

// ByAssignedToID orders the results by the assigned_to_id field.
func ByAssignedToID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedToID, opts...).ToFunc()
}

// ByUltimoMantenimiento orders the results by the ultimo_mantenimiento field.
func ByUltimoMantenimiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUltimoMantenimiento, opts...).ToFunc()
}

// ByProximoMantenimiento orders the results by the proximo_mantenimiento field.
func ByProximoMantenimiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProximoMantenimiento, opts...).ToFunc()
}

// ByTecnicoMantenimientoID orders the results by the tecnico_mantenimiento_id field.
func ByTecnicoMantenimientoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTecnicoMantenimientoID, opts...).ToFunc()
}

// ByUltimoMantenimientoHallazgos orders the results by the ultimo_mantenimiento_hallazgos field.
func ByUltimoMantenimientoHallazgos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUltimoMantenimientoHallazgos, opts...).ToFunc()
}
