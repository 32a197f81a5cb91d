// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assignment type in the database.
	Label = "assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldActivoID holds the string denoting the activo_id field in the database.
	FieldActivoID = "activo_id"
	// FieldEmployeeID holds the string denoting the employee_id field in the database.
	FieldEmployeeID = "employee_id"
	// FieldAssignedDate holds the string denoting the assigned_date field in the database.
	FieldAssignedDate = "assigned_date"
	// FieldReturnedDate holds the string denoting the returned_date field in the database.
	FieldReturnedDate = "returned_date"
	// FieldAssignedByID holds the string denoting the assigned_by_id field in the database.
	FieldAssignedByID = "assigned_by_id"
	// FieldReturnedByID holds the string denoting the returned_by_id field in the database.
	FieldReturnedByID = "returned_by_id"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// Table holds the table name of the assignment in the database.
	Table = "assignments"
)

// Columns holds all SQL columns for assignment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldActivoID,
	FieldEmployeeID,
	FieldAssignedDate,
	FieldReturnedDate,
	FieldAssignedByID,
	FieldReturnedByID,
	FieldNotes,
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
	// EmployeeIDValidator is a validator for the "employee_id" field. It is called by the builders before save.
	EmployeeIDValidator func(string) error
	// AssignedByIDValidator is a validator for the "assigned_by_id" field. It is called by the builders before save.
	AssignedByIDValidator func(string) error
)

// OrderOption defines the ordering options for the Assignment queries.
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

// ByEmployeeID orders the results by the employee_id field.
func ByEmployeeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeID, opts...).ToFunc()
}

// ByAssignedDate orders the results by the assigned_date field.
func ByAssignedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedDate, opts...).ToFunc()
}

// ByReturnedDate orders the results by the returned_date field.
func ByReturnedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReturnedDate, opts...).ToFunc()
}

// ByAssignedByID orders the results by the assigned_by_id field.
func ByAssignedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedByID, opts...).ToFunc()
}

// ByReturnedByID orders the results by the returned_by_id field.
func ByReturnedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReturnedByID, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}
