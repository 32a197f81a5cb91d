// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/maintenance"
)

// Maintenance is the model entity for the Maintenance schema.
type Maintenance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ActivoID holds the value of the "activo_id" field.
	ActivoID string `json:"activo_id,omitempty"`
	// FechaMantenimiento holds the value of the "fecha_mantenimiento" field.
	FechaMantenimiento time.Time `json:"fecha_mantenimiento,omitempty"`
	// ProximoMantenimiento holds the value of the "proximo_mantenimiento" field.
	ProximoMantenimiento time.Time `json:"proximo_mantenimiento,omitempty"`
	// TecnicoID holds the value of the "tecnico_id" field.
	TecnicoID string `json:"tecnico_id,omitempty"`
	// Hallazgos holds the value of the "hallazgos" field.
	Hallazgos string `json:"hallazgos,omitempty"`
	// Attachments holds the value of the "attachments" field.
	Attachments  []string `json:"attachments,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Maintenance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case maintenance.FieldAttachments:
			values[i] = new([]byte)
		case maintenance.FieldID, maintenance.FieldActivoID, maintenance.FieldTecnicoID, maintenance.FieldHallazgos:
			values[i] = new(sql.NullString)
		case maintenance.FieldCreatedAt, maintenance.FieldUpdatedAt, maintenance.FieldFechaMantenimiento, maintenance.FieldProximoMantenimiento:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Maintenance fields.
func (_m *Maintenance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case maintenance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case maintenance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case maintenance.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case maintenance.FieldActivoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activo_id", values[i])
			} else if value.Valid {
				_m.ActivoID = value.String
			}
		case maintenance.FieldFechaMantenimiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_mantenimiento", values[i])
			} else if value.Valid {
				_m.FechaMantenimiento = value.Time
			}
		case maintenance.FieldProximoMantenimiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field proximo_mantenimiento", values[i])
			} else if value.Valid {
				_m.ProximoMantenimiento = value.Time
			}
		case maintenance.FieldTecnicoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tecnico_id", values[i])
			} else if value.Valid {
				_m.TecnicoID = value.String
			}
		case maintenance.FieldHallazgos:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hallazgos", values[i])
			} else if value.Valid {
				_m.Hallazgos = value.String
			}
		case maintenance.FieldAttachments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attachments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attachments); err != nil {
					return fmt.Errorf("unmarshal field attachments: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Maintenance.
// This includes values selected through modifiers, order, etc.
func (_m *Maintenance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Maintenance.
// Note that you need to call Maintenance.Unwrap() before calling this method if this Maintenance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Maintenance) Update() *MaintenanceUpdateOne {
	return NewMaintenanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Maintenance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Maintenance) Unwrap() *Maintenance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Maintenance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Maintenance) String() string {
	var builder strings.Builder
	builder.WriteString("Maintenance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("activo_id=")
	builder.WriteString(_m.ActivoID)
	builder.WriteString(", ")
	builder.WriteString("fecha_mantenimiento=")
	builder.WriteString(_m.FechaMantenimiento.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("proximo_mantenimiento=")
	builder.WriteString(_m.ProximoMantenimiento.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tecnico_id=")
	builder.WriteString(_m.TecnicoID)
	builder.WriteString(", ")
	builder.WriteString("hallazgos=")
	builder.WriteString(_m.Hallazgos)
	builder.WriteString(", ")
	builder.WriteString("attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attachments))
	builder.WriteByte(')')
	return builder.String()
}

// Maintenances is a parsable slice of Maintenance.
type Maintenances []*Maintenance
