// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activo is the predicate function for activo builders.
type Activo func(*sql.Selector)

// Area is the predicate function for area builders.
type Area func(*sql.Selector)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Departamento is the predicate function for departamento builders.
type Departamento func(*sql.Selector)

// Employee is the predicate function for employee builders.
type Employee func(*sql.Selector)

// Finca is the predicate function for finca builders.
type Finca func(*sql.Selector)

// Maintenance is the predicate function for maintenance builders.
type Maintenance func(*sql.Selector)

// Marca is the predicate function for marca builders.
type Marca func(*sql.Selector)

// ModeloActivo is the predicate function for modeloactivo builders.
type ModeloActivo func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Proveedor is the predicate function for proveedor builders.
type Proveedor func(*sql.Selector)

// Region is the predicate function for region builders.
type Region func(*sql.Selector)

// TipoActivo is the predicate function for tipoactivo builders.
type TipoActivo func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
