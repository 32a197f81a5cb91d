// Code generated by ent, DO NOT EDIT.

package proveedor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proveedor type in the database.
	Label = "proveedor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNombreEmpresa holds the string denoting the nombre_empresa field in the database.
	FieldNombreEmpresa = "nombre_empresa"
	// FieldNit holds the string denoting the nit field in the database.
	FieldNit = "nit"
	// FieldDireccion holds the string denoting the direccion field in the database.
	FieldDireccion = "direccion"
	// FieldNombreContacto holds the string denoting the nombre_contacto field in the database.
	FieldNombreContacto = "nombre_contacto"
	// FieldTelefonoVentas holds the string denoting the telefono_ventas field in the database.
	FieldTelefonoVentas = "telefono_ventas"
	// FieldCorreoVentas holds the string denoting the correo_ventas field in the database.
	FieldCorreoVentas = "correo_ventas"
	// FieldTelefonoSoporte holds the string denoting the telefono_soporte field in the database.
	FieldTelefonoSoporte = "telefono_soporte"
	// FieldCorreoSoporte holds the string denoting the correo_soporte field in the database.
	FieldCorreoSoporte = "correo_soporte"
	// Table holds the table name of the proveedor in the database.
	Table = "proveedors"
)

// Columns holds all SQL columns for proveedor fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNombreEmpresa,
	FieldNit,
	FieldDireccion,
	FieldNombreContacto,
	FieldTelefonoVentas,
	FieldCorreoVentas,
	FieldTelefonoSoporte,
	FieldCorreoSoporte,
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
	// NombreEmpresaValidator is a validator for the "nombre_empresa" field. It is called by the builders before save.
	NombreEmpresaValidator func(string) error
	// NitValidator is a validator for the "nit" field. It is called by the builders before save.
	NitValidator func(string) error
)

// OrderOption defines the ordering options for the Proveedor queries.
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

// ByNombreEmpresa orders the results by the nombre_empresa field.
func ByNombreEmpresa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreEmpresa, opts...).ToFunc()
}

// ByNit orders the results by the nit field.
func ByNit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNit, opts...).ToFunc()
}

// ByDireccion orders the results by the direccion field.
func ByDireccion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDireccion, opts...).ToFunc()
}

// ByNombreContacto orders the results by the nombre_contacto field.
func ByNombreContacto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreContacto, opts...).ToFunc()
}

// ByTelefonoVentas orders the results by the telefono_ventas field.
func ByTelefonoVentas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefonoVentas, opts...).ToFunc()
}

// ByCorreoVentas orders the results by the correo_ventas field.
func ByCorreoVentas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorreoVentas, opts...).ToFunc()
}

// ByTelefonoSoporte orders the results by the telefono_soporte field.
func ByTelefonoSoporte(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefonoSoporte, opts...).ToFunc()
}

// ByCorreoSoporte orders the results by the correo_soporte field.
func ByCorreoSoporte(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorreoSoporte, opts...).ToFunc()
}
