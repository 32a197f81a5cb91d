// Code generated by ent, DO NOT EDIT.

package modeloactivo

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modeloactivo type in the database.
	Label = "modelo_activo"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMarcaID holds the string denoting the marca_id field in the database.
	FieldMarcaID = "marca_id"
	// FieldTipoActivoID holds the string denoting the tipo_activo_id field in the database.
	FieldTipoActivoID = "tipo_activo_id"
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
	// Table holds the table name of the modeloactivo in the database.
	Table = "modelo_activos"
)

// Columns holds all SQL columns for modeloactivo fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldMarcaID,
	FieldTipoActivoID,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// MarcaIDValidator is a validator for the "marca_id" field. It is called by the builders before save.
	MarcaIDValidator func(string) error
	// DefaultWifi holds the default value on creation for the "wifi" field.
	DefaultWifi bool
	// DefaultEthernet holds the default value on creation for the "ethernet" field.
	DefaultEthernet bool
	// DefaultPuertoConsola holds the default value on creation for the "puerto_consola" field.
	DefaultPuertoConsola bool
	// DefaultAdministrable holds the default value on creation for the "administrable" field.
	DefaultAdministrable bool
)

// OrderOption defines the ordering options for the ModeloActivo queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMarcaID orders the results by the marca_id field.
func ByMarcaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarcaID, opts...).ToFunc()
}

// ByTipoActivoID orders the results by the tipo_activo_id field.
func ByTipoActivoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoActivoID, opts...).ToFunc()
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
