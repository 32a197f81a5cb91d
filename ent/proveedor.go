// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/proveedor"
)

// Proveedor is the model entity for the Proveedor schema.
type Proveedor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NombreEmpresa holds the value of the "nombre_empresa" field.
	NombreEmpresa string `json:"nombre_empresa,omitempty"`
	// Nit holds the value of the "nit" field.
	Nit string `json:"nit,omitempty"`
	// Direccion holds the value of the "direccion" field.
	Direccion string `json:"direccion,omitempty"`
	// NombreContacto holds the value of the "nombre_contacto" field.
	NombreContacto string `json:"nombre_contacto,omitempty"`
	// TelefonoVentas holds the value of the "telefono_ventas" field.
	TelefonoVentas string `json:"telefono_ventas,omitempty"`
	// CorreoVentas holds the value of the "correo_ventas" field.
	CorreoVentas string `json:"correo_ventas,omitempty"`
	// TelefonoSoporte holds the value of the "telefono_soporte" field.
	TelefonoSoporte string `json:"telefono_soporte,omitempty"`
	// CorreoSoporte holds the value of the "correo_soporte" field.
	CorreoSoporte string `json:"correo_soporte,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Proveedor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proveedor.FieldID, proveedor.FieldNombreEmpresa, proveedor.FieldNit, proveedor.FieldDireccion, proveedor.FieldNombreContacto, proveedor.FieldTelefonoVentas, proveedor.FieldCorreoVentas, proveedor.FieldTelefonoSoporte, proveedor.FieldCorreoSoporte:
			values[i] = new(sql.NullString)
		case proveedor.FieldCreatedAt, proveedor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Proveedor fields.
func (_m *Proveedor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proveedor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case proveedor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case proveedor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case proveedor.FieldNombreEmpresa:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_empresa", values[i])
			} else if value.Valid {
				_m.NombreEmpresa = value.String
			}
		case proveedor.FieldNit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nit", values[i])
			} else if value.Valid {
				_m.Nit = value.String
			}
		case proveedor.FieldDireccion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direccion", values[i])
			} else if value.Valid {
				_m.Direccion = value.String
			}
		case proveedor.FieldNombreContacto:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_contacto", values[i])
			} else if value.Valid {
				_m.NombreContacto = value.String
			}
		case proveedor.FieldTelefonoVentas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono_ventas", values[i])
			} else if value.Valid {
				_m.TelefonoVentas = value.String
			}
		case proveedor.FieldCorreoVentas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correo_ventas", values[i])
			} else if value.Valid {
				_m.CorreoVentas = value.String
			}
		case proveedor.FieldTelefonoSoporte:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono_soporte", values[i])
			} else if value.Valid {
				_m.TelefonoSoporte = value.String
			}
		case proveedor.FieldCorreoSoporte:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correo_soporte", values[i])
			} else if value.Valid {
				_m.CorreoSoporte = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Proveedor.
// This includes values selected through modifiers, order, etc.
func (_m *Proveedor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Proveedor.
// Note that you need to call Proveedor.Unwrap() before calling this method if this Proveedor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Proveedor) Update() *ProveedorUpdateOne {
	return NewProveedorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Proveedor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Proveedor) Unwrap() *Proveedor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Proveedor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Proveedor) String() string {
	var builder strings.Builder
	builder.WriteString("Proveedor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("nombre_empresa=")
	builder.WriteString(_m.NombreEmpresa)
	builder.WriteString(", ")
	builder.WriteString("nit=")
	builder.WriteString(_m.Nit)
	builder.WriteString(", ")
	builder.WriteString("direccion=")
	builder.WriteString(_m.Direccion)
	builder.WriteString(", ")
	builder.WriteString("nombre_contacto=")
	builder.WriteString(_m.NombreContacto)
	builder.WriteString(", ")
	builder.WriteString("telefono_ventas=")
	builder.WriteString(_m.TelefonoVentas)
	builder.WriteString(", ")
	builder.WriteString("correo_ventas=")
	builder.WriteString(_m.CorreoVentas)
	builder.WriteString(", ")
	builder.WriteString("telefono_soporte=")
	builder.WriteString(_m.TelefonoSoporte)
	builder.WriteString(", ")
	builder.WriteString("correo_soporte=")
	builder.WriteString(_m.CorreoSoporte)
	builder.WriteByte(')')
	return builder.String()
}

// Proveedors is a parsable slice of Proveedor.
type Proveedors []*Proveedor
