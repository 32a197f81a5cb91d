// Code generated by ent, DO NOT EDIT.

package maintenance

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the maintenance type in the database.
	Label = "maintenance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldActivoID holds the string denoting the activo_id field in the database.
	FieldActivoID = "activo_id"
	// FieldFechaMantenimiento holds the string denoting the fecha_mantenimiento field in the database.
	FieldFechaMantenimiento = "fecha_mantenimiento"
	// FieldProximoMantenimiento holds the string denoting the proximo_mantenimiento field in the database.
	FieldProximoMantenimiento = "proximo_mantenimiento"
	// FieldTecnicoID holds the string denoting the tecnico_id field in the database.
	FieldTecnicoID = "tecnico_id"
	// FieldHallazgos holds the string denoting the hallazgos field in the database.
	FieldHallazgos = "hallazgos"
	// FieldAttachments holds the string denoting the attachments field in the database.
	FieldAttachments = "attachments"
	// Table holds the table name of the maintenance in the database.
	Table = "maintenances"
)

// Columns holds all SQL columns for maintenance fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldActivoID,
	FieldFechaMantenimiento,
	FieldProximoMantenimiento,
	FieldTecnicoID,
	FieldHallazgos,
	FieldAttachments,
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
	// ActivoIDValidator is a validator for the "activo_id" field. It is called by the builders before save.
	ActivoIDValidator func(string) error
	// TecnicoIDValidator is a validator for the "tecnico_id" field. It is called by the builders before save.
	TecnicoIDValidator func(string) error
)

// OrderOption defines the ordering options for the Maintenance queries.
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

// ByActivoID orders the results by the activo_id field.
func ByActivoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivoID, opts...).ToFunc()
}

// ByFechaMantenimiento orders the results by the fecha_mantenimiento field.
func ByFechaMantenimiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaMantenimiento, opts...).ToFunc()
}

// ByProximoMantenimiento orders the results by the proximo_mantenimiento field.
func ByProximoMantenimiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProximoMantenimiento, opts...).ToFunc()
}

// ByTecnicoID orders the results by the tecnico_id field.
func ByTecnicoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTecnicoID, opts...).ToFunc()
}

// ByHallazgos orders the results by the hallazgos field.
func ByHallazgos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHallazgos, opts...).ToFunc()
}
