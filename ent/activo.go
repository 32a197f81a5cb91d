// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/activo"
)

// Activo is the model entity for the Activo schema.
type Activo struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TipoActivoID holds the value of the "tipo_activo_id" field.
	TipoActivoID string `json:"tipo_activo_id,omitempty"`
	// MarcaID holds the value of the "marca_id" field.
	MarcaID string `json:"marca_id,omitempty"`
	// ModeloID holds the value of the "modelo_id" field.
	ModeloID string `json:"modelo_id,omitempty"`
	// ProveedorID holds the value of the "proveedor_id" field.
	ProveedorID string `json:"proveedor_id,omitempty"`
	// RegionID holds the value of the "region_id" field.
	RegionID string `json:"region_id,omitempty"`
	// FincaID holds the value of the "finca_id" field.
	FincaID string `json:"finca_id,omitempty"`
	// DepartamentoID holds the value of the "departamento_id" field.
	DepartamentoID string `json:"departamento_id,omitempty"`
	// AreaID holds the value of the "area_id" field.
	AreaID string `json:"area_id,omitempty"`
	// Serie holds the value of the "serie" field.
	Serie string `json:"serie,omitempty"`
	// Hostname holds the value of the "hostname" field.
	Hostname string `json:"hostname,omitempty"`
	// FechaRegistro holds the value of the "fecha_registro" field.
	FechaRegistro time.Time `json:"fecha_registro,omitempty"`
	// FechaFinGarantia holds the value of the "fecha_fin_garantia" field.
	FechaFinGarantia *time.Time `json:"fecha_fin_garantia,omitempty"`
	// Solicitante holds the value of the "solicitante" field.
	Solicitante string `json:"solicitante,omitempty"`
	// CorreoElectronico holds the value of the "correo_electronico" field.
	CorreoElectronico string `json:"correo_electronico,omitempty"`
	// OrdenCompra holds the value of the "orden_compra" field.
	OrdenCompra string `json:"orden_compra,omitempty"`
	// CuentaContable holds the value of the "cuenta_contable" field.
	CuentaContable string `json:"cuenta_contable,omitempty"`
	// TipoCosto holds the value of the "tipo_costo" field.
	TipoCosto activo.TipoCosto `json:"tipo_costo,omitempty"`
	// Cuotas holds the value of the "cuotas" field.
	Cuotas *int `json:"cuotas,omitempty"`
	// Moneda holds the value of the "moneda" field.
	Moneda activo.Moneda `json:"moneda,omitempty"`
	// Costo holds the value of the "costo" field.
	Costo *float64 `json:"costo,omitempty"`
	// Procesador holds the value of the "procesador" field.
	Procesador *string `json:"procesador,omitempty"`
	// RAM holds the value of the "ram" field.
	RAM *int `json:"ram,omitempty"`
	// Almacenamiento holds the value of the "almacenamiento" field.
	Almacenamiento *string `json:"almacenamiento,omitempty"`
	// TarjetaGrafica holds the value of the "tarjeta_grafica" field.
	TarjetaGrafica *string `json:"tarjeta_grafica,omitempty"`
	// Wifi holds the value of the "wifi" field.
	Wifi *bool `json:"wifi,omitempty"`
	// Ethernet holds the value of the "ethernet" field.
	Ethernet *bool `json:"ethernet,omitempty"`
	// PuertosEthernet holds the value of the "puertos_ethernet" field.
	PuertosEthernet *string `json:"puertos_ethernet,omitempty"`
	// PuertosSfp holds the value of the "puertos_sfp" field.
	PuertosSfp *string `json:"puertos_sfp,omitempty"`
	// PuertoConsola holds the value of the "puerto_consola" field.
	PuertoConsola *bool `json:"puerto_consola,omitempty"`
	// PuertosPoe holds the value of the "puertos_poe" field.
	PuertosPoe *string `json:"puertos_poe,omitempty"`
	// Alimentacion holds the value of the "alimentacion" field.
	Alimentacion *string `json:"alimentacion,omitempty"`
	// Administrable holds the value of the "administrable" field.
	Administrable *bool `json:"administrable,omitempty"`
	// Tamano holds the value of the "tamano" field.
	Tamano *string `json:"tamano,omitempty"`
	// Color holds the value of the "color" field.
	Color *string `json:"color,omitempty"`
	// Conectores holds the value of the "conectores" field.
	Conectores *string `json:"conectores,omitempty"`
	// Cables holds the value of the "cables" field.
	Cables *string `json:"cables,omitempty"`
	// Estado holds the value of the "estado" field.
	Estado activo.Estado `json:"estado,omitempty"`
	// FechaBaja holds the value of the "fecha_baja" field.
	FechaBaja *time.Time `json:"fecha_baja,omitempty"`
	// MotivoBaja holds the value of the "motivo_baja" field.
	MotivoBaja string `json:"motivo_baja,omitempty"`
	// UsuarioBajaID holds the value of the "usuario_baja_id" field.
	UsuarioBajaID string `json:"usuario_baja_id,omitempty"`
	// DocumentosBaja holds the value of the "documentos_baja" field.
	DocumentosBaja []string `json:"documentos_baja,omitempty"`
	// AssignedToID holds the value of the "assigned_to_id" field.
	AssignedToID string `json:"assigned_to_id,omitempty"`
	// UltimoMantenimiento holds the value of the "ultimo_mantenimiento" field.
	UltimoMantenimiento *time.Time `json:"ultimo_mantenimiento,omitempty"`
	// ProximoMantenimiento holds the value of the "proximo_mantenimiento" field.
	ProximoMantenimiento *time.Time `json:"proximo_mantenimiento,omitempty"`
	// TecnicoMantenimientoID holds the value of the "tecnico_mantenimiento_id" field.
	TecnicoMantenimientoID string `json:"tecnico_mantenimiento_id,omitempty"`
	// UltimoMantenimientoHallazgos holds the value of the "ultimo_mantenimiento_hallazgos" field.
	UltimoMantenimientoHallazgos string `json:"ultimo_mantenimiento_hallazgos,omitempty"`
	selectValues                 sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Activo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activo.FieldDocumentosBaja:
			values[i] = new([]byte)
		case activo.FieldWifi, activo.FieldEthernet, activo.FieldPuertoConsola, activo.FieldAdministrable:
			values[i] = new(sql.NullBool)
		case activo.FieldCosto:
			values[i] = new(sql.NullFloat64)
		case activo.FieldCuotas, activo.FieldRAM:
			values[i] = new(sql.NullInt64)
		case activo.FieldID, activo.FieldTipoActivoID, activo.FieldMarcaID, activo.FieldModeloID, activo.FieldProveedorID, activo.FieldRegionID, activo.FieldFincaID, activo.FieldDepartamentoID, activo.FieldAreaID, activo.FieldSerie, activo.FieldHostname, activo.FieldSolicitante, activo.FieldCorreoElectronico, activo.FieldOrdenCompra, activo.FieldCuentaContable, activo.FieldTipoCosto, activo.FieldMoneda, activo.FieldProcesador, activo.FieldAlmacenamiento, activo.FieldTarjetaGrafica, activo.FieldPuertosEthernet, activo.FieldPuertosSfp, activo.FieldPuertosPoe, activo.FieldAlimentacion, activo.FieldTamano, activo.FieldColor, activo.FieldConectores, activo.FieldCables, activo.FieldEstado, activo.FieldMotivoBaja, activo.FieldUsuarioBajaID, activo.FieldAssignedToID, activo.FieldTecnicoMantenimientoID, activo.FieldUltimoMantenimientoHallazgos:
			values[i] = new(sql.NullString)
		case activo.FieldCreatedAt, activo.FieldUpdatedAt, activo.FieldFechaRegistro, activo.FieldFechaFinGarantia, activo.FieldFechaBaja, activo.FieldUltimoMantenimiento, activo.FieldProximoMantenimiento:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Activo fields.
func (_m *Activo) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activo.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case activo.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case activo.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case activo.FieldTipoActivoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_activo_id", values[i])
			} else if value.Valid {
				_m.TipoActivoID = value.String
			}
		case activo.FieldMarcaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field marca_id", values[i])
			} else if value.Valid {
				_m.MarcaID = value.String
			}
		case activo.FieldModeloID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modelo_id", values[i])
			} else if value.Valid {
				_m.ModeloID = value.String
			}
		case activo.FieldProveedorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proveedor_id", values[i])
			} else if value.Valid {
				_m.ProveedorID = value.String
			}
		case activo.FieldRegionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region_id", values[i])
			} else if value.Valid {
				_m.RegionID = value.String
			}
		case activo.FieldFincaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field finca_id", values[i])
			} else if value.Valid {
				_m.FincaID = value.String
			}
		case activo.FieldDepartamentoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field departamento_id", values[i])
			} else if value.Valid {
				_m.DepartamentoID = value.String
			}
		case activo.FieldAreaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field area_id", values[i])
			} else if value.Valid {
				_m.AreaID = value.String
			}
		case activo.FieldSerie:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serie", values[i])
			} else if value.Valid {
				_m.Serie = value.String
			}
		case activo.FieldHostname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hostname", values[i])
			} else if value.Valid {
				_m.Hostname = value.String
			}
		case activo.FieldFechaRegistro:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_registro", values[i])
			} else if value.Valid {
				_m.FechaRegistro = value.Time
			}
		case activo.FieldFechaFinGarantia:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_fin_garantia", values[i])
			} else if value.Valid {
				_m.FechaFinGarantia = new(time.Time)
				*_m.FechaFinGarantia = value.Time
			}
		case activo.FieldSolicitante:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solicitante", values[i])
			} else if value.Valid {
				_m.Solicitante = value.String
			}
		case activo.FieldCorreoElectronico:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correo_electronico", values[i])
			} else if value.Valid {
				_m.CorreoElectronico = value.String
			}
		case activo.FieldOrdenCompra:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orden_compra", values[i])
			} else if value.Valid {
				_m.OrdenCompra = value.String
			}
		case activo.FieldCuentaContable:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cuenta_contable", values[i])
			} else if value.Valid {
				_m.CuentaContable = value.String
			}
		case activo.FieldTipoCosto:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_costo", values[i])
			} else if value.Valid {
				_m.TipoCosto = activo.TipoCosto(value.String)
			}
		case activo.FieldCuotas:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cuotas", values[i])
			} else if value.Valid {
				_m.Cuotas = new(int)
				*_m.Cuotas = int(value.Int64)
			}
		case activo.FieldMoneda:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field moneda", values[i])
			} else if value.Valid {
				_m.Moneda = activo.Moneda(value.String)
			}
		case activo.FieldCosto:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field costo", values[i])
			} else if value.Valid {
				_m.Costo = new(float64)
				*_m.Costo = value.Float64
			}
		case activo.FieldProcesador:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field procesador", values[i])
			} else if value.Valid {
				_m.Procesador = new(string)
				*_m.Procesador = value.String
			}
		case activo.FieldRAM:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ram", values[i])
			} else if value.Valid {
				_m.RAM = new(int)
				*_m.RAM = int(value.Int64)
			}
		case activo.FieldAlmacenamiento:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field almacenamiento", values[i])
			} else if value.Valid {
				_m.Almacenamiento = new(string)
				*_m.Almacenamiento = value.String
			}
		case activo.FieldTarjetaGrafica:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tarjeta_grafica", values[i])
			} else if value.Valid {
				_m.TarjetaGrafica = new(string)
				*_m.TarjetaGrafica = value.String
			}
		case activo.FieldWifi:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field wifi", values[i])
			} else if value.Valid {
				_m.Wifi = new(bool)
				*_m.Wifi = value.Bool
			}
		case activo.FieldEthernet:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ethernet", values[i])
			} else if value.Valid {
				_m.Ethernet = new(bool)
				*_m.Ethernet = value.Bool
			}
		case activo.FieldPuertosEthernet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field puertos_ethernet", values[i])
			} else if value.Valid {
				_m.PuertosEthernet = new(string)
				*_m.PuertosEthernet = value.String
			}
		case activo.FieldPuertosSfp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field puertos_sfp", values[i])
			} else if value.Valid {
				_m.PuertosSfp = new(string)
				*_m.PuertosSfp = value.String
			}
		case activo.FieldPuertoConsola:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field puerto_consola", values[i])
			} else if value.Valid {
				_m.PuertoConsola = new(bool)
				*_m.PuertoConsola = value.Bool
			}
		case activo.FieldPuertosPoe:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field puertos_poe", values[i])
			} else if value.Valid {
				_m.PuertosPoe = new(string)
				*_m.PuertosPoe = value.String
			}
		case activo.FieldAlimentacion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alimentacion", values[i])
			} else if value.Valid {
				_m.Alimentacion = new(string)
				*_m.Alimentacion = value.String
			}
		case activo.FieldAdministrable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field administrable", values[i])
			} else if value.Valid {
				_m.Administrable = new(bool)
				*_m.Administrable = value.Bool
			}
		case activo.FieldTamano:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tamano", values[i])
			} else if value.Valid {
				_m.Tamano = new(string)
				*_m.Tamano = value.String
			}
		case activo.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = new(string)
				*_m.Color = value.String
			}
		case activo.FieldConectores:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conectores", values[i])
			} else if value.Valid {
				_m.Conectores = new(string)
				*_m.Conectores = value.String
			}
		case activo.FieldCables:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cables", values[i])
			} else if value.Valid {
				_m.Cables = new(string)
				*_m.Cables = value.String
			}
		case activo.FieldEstado:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado", values[i])
			} else if value.Valid {
				_m.Estado = activo.Estado(value.String)
			}
		case activo.FieldFechaBaja:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_baja", values[i])
			} else if value.Valid {
				_m.FechaBaja = new(time.Time)
				*_m.FechaBaja = value.Time
			}
		case activo.FieldMotivoBaja:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field motivo_baja", values[i])
			} else if value.Valid {
				_m.MotivoBaja = value.String
			}
		case activo.FieldUsuarioBajaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field usuario_baja_id", values[i])
			} else if value.Valid {
				_m.UsuarioBajaID = value.String
			}
		case activo.FieldDocumentosBaja:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field documentos_baja", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DocumentosBaja); err != nil {
					return fmt.Errorf("unmarshal field documentos_baja: %w", err)
				}
			}
		case activo.FieldAssignedToID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to_id", values[i])
			} else if value.Valid {
				_m.AssignedToID = value.String
			}
		case activo.FieldUltimoMantenimiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ultimo_mantenimiento", values[i])
			} else if value.Valid {
				_m.UltimoMantenimiento = new(time.Time)
				*_m.UltimoMantenimiento = value.Time
			}
		case activo.FieldProximoMantenimiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field proximo_mantenimiento", values[i])
			} else if value.Valid {
				_m.ProximoMantenimiento = new(time.Time)
				*_m.ProximoMantenimiento = value.Time
			}
		case activo.FieldTecnicoMantenimientoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tecnico_mantenimiento_id", values[i])
			} else if value.Valid {
				_m.TecnicoMantenimientoID = value.String
			}
		case activo.FieldUltimoMantenimientoHallazgos:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ultimo_mantenimiento_hallazgos", values[i])
			} else if value.Valid {
				_m.UltimoMantenimientoHallazgos = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Activo.
// This includes values selected through modifiers, order, etc.
func (_m *Activo) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Activo.
// Note that you need to call Activo.Unwrap() before calling this method if this Activo
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Activo) Update() *ActivoUpdateOne {
	return NewActivoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Activo entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Activo) Unwrap() *Activo {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Activo is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Activo) String() string {
	var builder strings.Builder
	builder.WriteString("Activo(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tipo_activo_id=")
	builder.WriteString(_m.TipoActivoID)
	builder.WriteString(", ")
	builder.WriteString("marca_id=")
	builder.WriteString(_m.MarcaID)
	builder.WriteString(", ")
	builder.WriteString("modelo_id=")
	builder.WriteString(_m.ModeloID)
	builder.WriteString(", ")
	builder.WriteString("proveedor_id=")
	builder.WriteString(_m.ProveedorID)
	builder.WriteString(", ")
	builder.WriteString("region_id=")
	builder.WriteString(_m.RegionID)
	builder.WriteString(", ")
	builder.WriteString("finca_id=")
	builder.WriteString(_m.FincaID)
	builder.WriteString(", ")
	builder.WriteString("departamento_id=")
	builder.WriteString(_m.DepartamentoID)
	builder.WriteString(", ")
	builder.WriteString("area_id=")
	builder.WriteString(_m.AreaID)
	builder.WriteString(", ")
	builder.WriteString("serie=")
	builder.WriteString(_m.Serie)
	builder.WriteString(", ")
	builder.WriteString("hostname=")
	builder.WriteString(_m.Hostname)
	builder.WriteString(", ")
	builder.WriteString("fecha_registro=")
	builder.WriteString(_m.FechaRegistro.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FechaFinGarantia; v != nil {
		builder.WriteString("fecha_fin_garantia=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("solicitante=")
	builder.WriteString(_m.Solicitante)
	builder.WriteString(", ")
	builder.WriteString("correo_electronico=")
	builder.WriteString(_m.CorreoElectronico)
	builder.WriteString(", ")
	builder.WriteString("orden_compra=")
	builder.WriteString(_m.OrdenCompra)
	builder.WriteString(", ")
	builder.WriteString("cuenta_contable=")
	builder.WriteString(_m.CuentaContable)
	builder.WriteString(", ")
	builder.WriteString("tipo_costo=")
	builder.WriteString(fmt.Sprintf("%v", _m.TipoCosto))
	builder.WriteString(", ")
	if v := _m.Cuotas; v != nil {
		builder.WriteString("cuotas=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("moneda=")
	builder.WriteString(fmt.Sprintf("%v", _m.Moneda))
	builder.WriteString(", ")
	if v := _m.Costo; v != nil {
		builder.WriteString("costo=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Procesador; v != nil {
		builder.WriteString("procesador=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RAM; v != nil {
		builder.WriteString("ram=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Almacenamiento; v != nil {
		builder.WriteString("almacenamiento=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TarjetaGrafica; v != nil {
		builder.WriteString("tarjeta_grafica=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Wifi; v != nil {
		builder.WriteString("wifi=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Ethernet; v != nil {
		builder.WriteString("ethernet=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PuertosEthernet; v != nil {
		builder.WriteString("puertos_ethernet=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PuertosSfp; v != nil {
		builder.WriteString("puertos_sfp=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PuertoConsola; v != nil {
		builder.WriteString("puerto_consola=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PuertosPoe; v != nil {
		builder.WriteString("puertos_poe=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Alimentacion; v != nil {
		builder.WriteString("alimentacion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Administrable; v != nil {
		builder.WriteString("administrable=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Tamano; v != nil {
		builder.WriteString("tamano=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Color; v != nil {
		builder.WriteString("color=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Conectores; v != nil {
		builder.WriteString("conectores=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Cables; v != nil {
		builder.WriteString("cables=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("estado=")
	builder.WriteString(fmt.Sprintf("%v", _m.Estado))
	builder.WriteString(", ")
	if v := _m.FechaBaja; v != nil {
		builder.WriteString("fecha_baja=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("motivo_baja=")
	builder.WriteString(_m.MotivoBaja)
	builder.WriteString(", ")
	builder.WriteString("usuario_baja_id=")
	builder.WriteString(_m.UsuarioBajaID)
	builder.WriteString(", ")
	builder.WriteString("documentos_baja=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentosBaja))
	builder.WriteString(", ")
	builder.WriteString("assigned_to_id=")
	builder.WriteString(_m.AssignedToID)
	builder.WriteString(", ")
	if v := _m.UltimoMantenimiento; v != nil {
		builder.WriteString("ultimo_mantenimiento=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ProximoMantenimiento; v != nil {
		builder.WriteString("proximo_mantenimiento=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("tecnico_mantenimiento_id=")
	builder.WriteString(_m.TecnicoMantenimientoID)
	builder.WriteString(", ")
	builder.WriteString("ultimo_mantenimiento_hallazgos=")
	builder.WriteString(_m.UltimoMantenimientoHallazgos)
	builder.WriteByte(')')
	return builder.String()
}

// Activos is a parsable slice of Activo.
type Activos []*Activo
