// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/modeloactivo"
)

// ModeloActivo is the model entity for the ModeloActivo schema.
type ModeloActivo struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MarcaID holds the value of the "marca_id" field.
	MarcaID string `json:"marca_id,omitempty"`
	// TipoActivoID holds the value of the "tipo_activo_id" field.
	TipoActivoID string `json:"tipo_activo_id,omitempty"`
	// Procesador holds the value of the "procesador" field.
	Procesador string `json:"procesador,omitempty"`
	// RAM holds the value of the "ram" field.
	RAM int `json:"ram,omitempty"`
	// Almacenamiento holds the value of the "almacenamiento" field.
	Almacenamiento string `json:"almacenamiento,omitempty"`
	// TarjetaGrafica holds the value of the "tarjeta_grafica" field.
	TarjetaGrafica string `json:"tarjeta_grafica,omitempty"`
	// Wifi holds the value of the "wifi" field.
	Wifi bool `json:"wifi,omitempty"`
	// Ethernet holds the value of the "ethernet" field.
	Ethernet bool `json:"ethernet,omitempty"`
	// PuertosEthernet holds the value of the "puertos_ethernet" field.
	PuertosEthernet string `json:"puertos_ethernet,omitempty"`
	// PuertosSfp holds the value of the "puertos_sfp" field.
	PuertosSfp string `json:"puertos_sfp,omitempty"`
	// PuertoConsola holds the value of the "puerto_consola" field.
	PuertoConsola bool `json:"puerto_consola,omitempty"`
	// PuertosPoe holds the value of the "puertos_poe" field.
	PuertosPoe string `json:"puertos_poe,omitempty"`
	// Alimentacion holds the value of the "alimentacion" field.
	Alimentacion string `json:"alimentacion,omitempty"`
	// Administrable holds the value of the "administrable" field.
	Administrable bool `json:"administrable,omitempty"`
	// Tamano holds the value of the "tamano" field.
	Tamano string `json:"tamano,omitempty"`
	// Color holds the value of the "color" field.
	Color string `json:"color,omitempty"`
	// Conectores holds the value of the "conectores" field.
	Conectores string `json:"conectores,omitempty"`
	// Cables holds the value of the "cables" field.
	Cables       string `json:"cables,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModeloActivo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modeloactivo.FieldWifi, modeloactivo.FieldEthernet, modeloactivo.FieldPuertoConsola, modeloactivo.FieldAdministrable:
			values[i] = new(sql.NullBool)
		case modeloactivo.FieldRAM:
			values[i] = new(sql.NullInt64)
		case modeloactivo.FieldID, modeloactivo.FieldName, modeloactivo.FieldMarcaID, modeloactivo.FieldTipoActivoID, modeloactivo.FieldProcesador, modeloactivo.FieldAlmacenamiento, modeloactivo.FieldTarjetaGrafica, modeloactivo.FieldPuertosEthernet, modeloactivo.FieldPuertosSfp, modeloactivo.FieldPuertosPoe, modeloactivo.FieldAlimentacion, modeloactivo.FieldTamano, modeloactivo.FieldColor, modeloactivo.FieldConectores, modeloactivo.FieldCables:
			values[i] = new(sql.NullString)
		case modeloactivo.FieldCreatedAt, modeloactivo.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModeloActivo fields.
func (_m *ModeloActivo) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modeloactivo.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case modeloactivo.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case modeloactivo.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case modeloactivo.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case modeloactivo.FieldMarcaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field marca_id", values[i])
			} else if value.Valid {
				_m.MarcaID = value.String
			}
		case modeloactivo.FieldTipoActivoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_activo_id", values[i])
			} else if value.Valid {
				_m.TipoActivoID = value.String
			}
		case modeloactivo.FieldProcesador:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field procesador", values[i])
			} else if value.Valid {
				_m.Procesador = value.String
			}
		case modeloactivo.FieldRAM:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ram", values[i])
			} else if value.Valid {
				_m.RAM = int(value.Int64)
			}
		case modeloactivo.FieldAlmacenamiento:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field almacenamiento", values[i])
			} else if value.Valid {
				_m.Almacenamiento = value.String
			}
		case modeloactivo.FieldTarjetaGrafica:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tarjeta_grafica", values[i])
			} else if value.Valid {
				_m.TarjetaGrafica = value.String
			}
		case modeloactivo.FieldWifi:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field wifi", values[i])
			} else if value.Valid {
				_m.Wifi = value.Bool
			}
		case modeloactivo.FieldEthernet:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ethernet", values[i])
			} else if value.Valid {
				_m.Ethernet = value.Bool
			}
		case modeloactivo.FieldPuertosEthernet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field puertos_ethernet", values[i])
			} else if value.Valid {
				_m.PuertosEthernet = value.String
			}
		case modeloactivo.FieldPuertosSfp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field puertos_sfp", values[i])
			} else if value.Valid {
				_m.PuertosSfp = value.String
			}
		case modeloactivo.FieldPuertoConsola:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field puerto_consola", values[i])
			} else if value.Valid {
				_m.PuertoConsola = value.Bool
			}
		case modeloactivo.FieldPuertosPoe:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field puertos_poe", values[i])
			} else if value.Valid {
				_m.PuertosPoe = value.String
			}
		case modeloactivo.FieldAlimentacion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alimentacion", values[i])
			} else if value.Valid {
				_m.Alimentacion = value.String
			}
		case modeloactivo.FieldAdministrable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field administrable", values[i])
			} else if value.Valid {
				_m.Administrable = value.Bool
			}
		case modeloactivo.FieldTamano:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tamano", values[i])
			} else if value.Valid {
				_m.Tamano = value.String
			}
		case modeloactivo.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case modeloactivo.FieldConectores:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conectores", values[i])
			} else if value.Valid {
				_m.Conectores = value.String
			}
		case modeloactivo.FieldCables:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cables", values[i])
			} else if value.Valid {
				_m.Cables = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModeloActivo.
// This includes values selected through modifiers, order, etc.
func (_m *ModeloActivo) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModeloActivo.
// Note that you need to call ModeloActivo.Unwrap() before calling this method if this ModeloActivo
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModeloActivo) Update() *ModeloActivoUpdateOne {
	return NewModeloActivoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModeloActivo entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModeloActivo) Unwrap() *ModeloActivo {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModeloActivo is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModeloActivo) String() string {
	var builder strings.Builder
	builder.WriteString("ModeloActivo(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("marca_id=")
	builder.WriteString(_m.MarcaID)
	builder.WriteString(", ")
	builder.WriteString("tipo_activo_id=")
	builder.WriteString(_m.TipoActivoID)
	builder.WriteString(", ")
	builder.WriteString("procesador=")
	builder.WriteString(_m.Procesador)
	builder.WriteString(", ")
	builder.WriteString("ram=")
	builder.WriteString(fmt.Sprintf("%v", _m.RAM))
	builder.WriteString(", ")
	builder.WriteString("almacenamiento=")
	builder.WriteString(_m.Almacenamiento)
	builder.WriteString(", ")
	builder.WriteString("tarjeta_grafica=")
	builder.WriteString(_m.TarjetaGrafica)
	builder.WriteString(", ")
	builder.WriteString("wifi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wifi))
	builder.WriteString(", ")
	builder.WriteString("ethernet=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ethernet))
	builder.WriteString(", ")
	builder.WriteString("puertos_ethernet=")
	builder.WriteString(_m.PuertosEthernet)
	builder.WriteString(", ")
	builder.WriteString("puertos_sfp=")
	builder.WriteString(_m.PuertosSfp)
	builder.WriteString(", ")
	builder.WriteString("puerto_consola=")
	builder.WriteString(fmt.Sprintf("%v", _m.PuertoConsola))
	builder.WriteString(", ")
	builder.WriteString("puertos_poe=")
	builder.WriteString(_m.PuertosPoe)
	builder.WriteString(", ")
	builder.WriteString("alimentacion=")
	builder.WriteString(_m.Alimentacion)
	builder.WriteString(", ")
	builder.WriteString("administrable=")
	builder.WriteString(fmt.Sprintf("%v", _m.Administrable))
	builder.WriteString(", ")
	builder.WriteString("tamano=")
	builder.WriteString(_m.Tamano)
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	builder.WriteString("conectores=")
	builder.WriteString(_m.Conectores)
	builder.WriteString(", ")
	builder.WriteString("cables=")
	builder.WriteString(_m.Cables)
	builder.WriteByte(')')
	return builder.String()
}

// ModeloActivos is a parsable slice of ModeloActivo.
type ModeloActivos []*ModeloActivo
