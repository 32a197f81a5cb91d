// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/activo"
)

// ActivoCreate is the builder for creating a Activo entity.
type ActivoCreate struct {
	config
	mutation *ActivoMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivoCreate) SetCreatedAt(v time.Time) *ActivoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableCreatedAt(v *time.Time) *ActivoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActivoCreate) SetUpdatedAt(v time.Time) *ActivoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableUpdatedAt(v *time.Time) *ActivoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (_c *ActivoCreate) SetTipoActivoID(v string) *ActivoCreate {
	_c.mutation.SetTipoActivoID(v)
	return _c
}

// SetMarcaID sets the "marca_id" field.
func (_c *ActivoCreate) SetMarcaID(v string) *ActivoCreate {
	_c.mutation.SetMarcaID(v)
	return _c
}

// SetModeloID sets the "modelo_id" field.
func (_c *ActivoCreate) SetModeloID(v string) *ActivoCreate {
	_c.mutation.SetModeloID(v)
	return _c
}

// SetProveedorID sets the "proveedor_id" field.
func (_c *ActivoCreate) SetProveedorID(v string) *ActivoCreate {
	_c.mutation.SetProveedorID(v)
	return _c
}

// SetRegionID sets the "region_id" field.
func (_c *ActivoCreate) SetRegionID(v string) *ActivoCreate {
	_c.mutation.SetRegionID(v)
	return _c
}

// SetFincaID sets the "finca_id" field.
func (_c *ActivoCreate) SetFincaID(v string) *ActivoCreate {
	_c.mutation.SetFincaID(v)
	return _c
}

// SetDepartamentoID sets the "departamento_id" field.
func (_c *ActivoCreate) SetDepartamentoID(v string) *ActivoCreate {
	_c.mutation.SetDepartamentoID(v)
	return _c
}

// SetAreaID sets the "area_id" field.
func (_c *ActivoCreate) SetAreaID(v string) *ActivoCreate {
	_c.mutation.SetAreaID(v)
	return _c
}

// SetSerie sets the "serie" field.
func (_c *ActivoCreate) SetSerie(v string) *ActivoCreate {
	_c.mutation.SetSerie(v)
	return _c
}

// SetHostname sets the "hostname" field.
func (_c *ActivoCreate) SetHostname(v string) *ActivoCreate {
	_c.mutation.SetHostname(v)
	return _c
}

// SetFechaRegistro sets the "fecha_registro" field.
func (_c *ActivoCreate) SetFechaRegistro(v time.Time) *ActivoCreate {
	_c.mutation.SetFechaRegistro(v)
	return _c
}

// SetFechaFinGarantia sets the "fecha_fin_garantia" field.
func (_c *ActivoCreate) SetFechaFinGarantia(v time.Time) *ActivoCreate {
	_c.mutation.SetFechaFinGarantia(v)
	return _c
}

// SetNillableFechaFinGarantia sets the "fecha_fin_garantia" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableFechaFinGarantia(v *time.Time) *ActivoCreate {
	if v != nil {
		_c.SetFechaFinGarantia(*v)
	}
	return _c
}

// SetSolicitante sets the "solicitante" field.
func (_c *ActivoCreate) SetSolicitante(v string) *ActivoCreate {
	_c.mutation.SetSolicitante(v)
	return _c
}

// SetNillableSolicitante sets the "solicitante" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableSolicitante(v *string) *ActivoCreate {
	if v != nil {
		_c.SetSolicitante(*v)
	}
	return _c
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (_c *ActivoCreate) SetCorreoElectronico(v string) *ActivoCreate {
	_c.mutation.SetCorreoElectronico(v)
	return _c
}

// SetNillableCorreoElectronico sets the "correo_electronico" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableCorreoElectronico(v *string) *ActivoCreate {
	if v != nil {
		_c.SetCorreoElectronico(*v)
	}
	return _c
}

// SetOrdenCompra sets the "orden_compra" field.
func (_c *ActivoCreate) SetOrdenCompra(v string) *ActivoCreate {
	_c.mutation.SetOrdenCompra(v)
	return _c
}

// SetNillableOrdenCompra sets the "orden_compra" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableOrdenCompra(v *string) *ActivoCreate {
	if v != nil {
		_c.SetOrdenCompra(*v)
	}
	return _c
}

// SetCuentaContable sets the "cuenta_contable" field.
func (_c *ActivoCreate) SetCuentaContable(v string) *ActivoCreate {
	_c.mutation.SetCuentaContable(v)
	return _c
}

// SetNillableCuentaContable sets the "cuenta_contable" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableCuentaContable(v *string) *ActivoCreate {
	if v != nil {
		_c.SetCuentaContable(*v)
	}
	return _c
}

// SetTipoCosto sets the "tipo_costo" field.
func (_c *ActivoCreate) SetTipoCosto(v activo.TipoCosto) *ActivoCreate {
	_c.mutation.SetTipoCosto(v)
	return _c
}

// SetNillableTipoCosto sets the "tipo_costo" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableTipoCosto(v *activo.TipoCosto) *ActivoCreate {
	if v != nil {
		_c.SetTipoCosto(*v)
	}
	return _c
}

// SetCuotas sets the "cuotas" field.
func (_c *ActivoCreate) SetCuotas(v int) *ActivoCreate {
	_c.mutation.SetCuotas(v)
	return _c
}

// SetNillableCuotas sets the "cuotas" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableCuotas(v *int) *ActivoCreate {
	if v != nil {
		_c.SetCuotas(*v)
	}
	return _c
}

// SetMoneda sets the "moneda" field.
func (_c *ActivoCreate) SetMoneda(v activo.Moneda) *ActivoCreate {
	_c.mutation.SetMoneda(v)
	return _c
}

// SetNillableMoneda sets the "moneda" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableMoneda(v *activo.Moneda) *ActivoCreate {
	if v != nil {
		_c.SetMoneda(*v)
	}
	return _c
}

// SetCosto sets the "costo" field.
func (_c *ActivoCreate) SetCosto(v float64) *ActivoCreate {
	_c.mutation.SetCosto(v)
	return _c
}

// SetNillableCosto sets the "costo" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableCosto(v *float64) *ActivoCreate {
	if v != nil {
		_c.SetCosto(*v)
	}
	return _c
}

// SetProcesador sets the "procesador" field.
func (_c *ActivoCreate) SetProcesador(v string) *ActivoCreate {
	_c.mutation.SetProcesador(v)
	return _c
}

// SetNillableProcesador sets the "procesador" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableProcesador(v *string) *ActivoCreate {
	if v != nil {
		_c.SetProcesador(*v)
	}
	return _c
}

// SetRAM sets the "ram" field.
func (_c *ActivoCreate) SetRAM(v int) *ActivoCreate {
	_c.mutation.SetRAM(v)
	return _c
}

// SetNillableRAM sets the "ram" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableRAM(v *int) *ActivoCreate {
	if v != nil {
		_c.SetRAM(*v)
	}
	return _c
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (_c *ActivoCreate) SetAlmacenamiento(v string) *ActivoCreate {
	_c.mutation.SetAlmacenamiento(v)
	return _c
}

// SetNillableAlmacenamiento sets the "almacenamiento" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableAlmacenamiento(v *string) *ActivoCreate {
	if v != nil {
		_c.SetAlmacenamiento(*v)
	}
	return _c
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (_c *ActivoCreate) SetTarjetaGrafica(v string) *ActivoCreate {
	_c.mutation.SetTarjetaGrafica(v)
	return _c
}

// SetNillableTarjetaGrafica sets the "tarjeta_grafica" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableTarjetaGrafica(v *string) *ActivoCreate {
	if v != nil {
		_c.SetTarjetaGrafica(*v)
	}
	return _c
}

// SetWifi sets the "wifi" field.
func (_c *ActivoCreate) SetWifi(v bool) *ActivoCreate {
	_c.mutation.SetWifi(v)
	return _c
}

// SetNillableWifi sets the "wifi" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableWifi(v *bool) *ActivoCreate {
	if v != nil {
		_c.SetWifi(*v)
	}
	return _c
}

// SetEthernet sets the "ethernet" field.
func (_c *ActivoCreate) SetEthernet(v bool) *ActivoCreate {
	_c.mutation.SetEthernet(v)
	return _c
}

// SetNillableEthernet sets the "ethernet" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableEthernet(v *bool) *ActivoCreate {
	if v != nil {
		_c.SetEthernet(*v)
	}
	return _c
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (_c *ActivoCreate) SetPuertosEthernet(v string) *ActivoCreate {
	_c.mutation.SetPuertosEthernet(v)
	return _c
}

// SetNillablePuertosEthernet sets the "puertos_ethernet" field if the given value is not nil.
func (_c *ActivoCreate) SetNillablePuertosEthernet(v *string) *ActivoCreate {
	if v != nil {
		_c.SetPuertosEthernet(*v)
	}
	return _c
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (_c *ActivoCreate) SetPuertosSfp(v string) *ActivoCreate {
	_c.mutation.SetPuertosSfp(v)
	return _c
}

// SetNillablePuertosSfp sets the "puertos_sfp" field if the given value is not nil.
func (_c *ActivoCreate) SetNillablePuertosSfp(v *string) *ActivoCreate {
	if v != nil {
		_c.SetPuertosSfp(*v)
	}
	return _c
}

// SetPuertoConsola sets the "puerto_consola" field.
func (_c *ActivoCreate) SetPuertoConsola(v bool) *ActivoCreate {
	_c.mutation.SetPuertoConsola(v)
	return _c
}

// SetNillablePuertoConsola sets the "puerto_consola" field if the given value is not nil.
func (_c *ActivoCreate) SetNillablePuertoConsola(v *bool) *ActivoCreate {
	if v != nil {
		_c.SetPuertoConsola(*v)
	}
	return _c
}

// SetPuertosPoe sets the "puertos_poe" field.
func (_c *ActivoCreate) SetPuertosPoe(v string) *ActivoCreate {
	_c.mutation.SetPuertosPoe(v)
	return _c
}

// SetNillablePuertosPoe sets the "puertos_poe" field if the given value is not nil.
func (_c *ActivoCreate) SetNillablePuertosPoe(v *string) *ActivoCreate {
	if v != nil {
		_c.SetPuertosPoe(*v)
	}
	return _c
}

// SetAlimentacion sets the "alimentacion" field.
func (_c *ActivoCreate) SetAlimentacion(v string) *ActivoCreate {
	_c.mutation.SetAlimentacion(v)
	return _c
}

// SetNillableAlimentacion sets the "alimentacion" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableAlimentacion(v *string) *ActivoCreate {
	if v != nil {
		_c.SetAlimentacion(*v)
	}
	return _c
}

// SetAdministrable sets the "administrable" field.
func (_c *ActivoCreate) SetAdministrable(v bool) *ActivoCreate {
	_c.mutation.SetAdministrable(v)
	return _c
}

// SetNillableAdministrable sets the "administrable" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableAdministrable(v *bool) *ActivoCreate {
	if v != nil {
		_c.SetAdministrable(*v)
	}
	return _c
}

// SetTamano sets the "tamano" field.
func (_c *ActivoCreate) SetTamano(v string) *ActivoCreate {
	_c.mutation.SetTamano(v)
	return _c
}

// SetNillableTamano sets the "tamano" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableTamano(v *string) *ActivoCreate {
	if v != nil {
		_c.SetTamano(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *ActivoCreate) SetColor(v string) *ActivoCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableColor(v *string) *ActivoCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetConectores sets the "conectores" field.
func (_c *ActivoCreate) SetConectores(v string) *ActivoCreate {
	_c.mutation.SetConectores(v)
	return _c
}

// SetNillableConectores sets the "conectores" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableConectores(v *string) *ActivoCreate {
	if v != nil {
		_c.SetConectores(*v)
	}
	return _c
}

// SetCables sets the "cables" field.
func (_c *ActivoCreate) SetCables(v string) *ActivoCreate {
	_c.mutation.SetCables(v)
	return _c
}

// SetNillableCables sets the "cables" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableCables(v *string) *ActivoCreate {
	if v != nil {
		_c.SetCables(*v)
	}
	return _c
}

// SetEstado sets the "estado" field.
func (_c *ActivoCreate) SetEstado(v activo.Estado) *ActivoCreate {
	_c.mutation.SetEstado(v)
	return _c
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableEstado(v *activo.Estado) *ActivoCreate {
	if v != nil {
		_c.SetEstado(*v)
	}
	return _c
}

// SetFechaBaja sets the "fecha_baja" field.
func (_c *ActivoCreate) SetFechaBaja(v time.Time) *ActivoCreate {
	_c.mutation.SetFechaBaja(v)
	return _c
}

// SetNillableFechaBaja sets the "fecha_baja" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableFechaBaja(v *time.Time) *ActivoCreate {
	if v != nil {
		_c.SetFechaBaja(*v)
	}
	return _c
}

// SetMotivoBaja sets the "motivo_baja" field.
func (_c *ActivoCreate) SetMotivoBaja(v string) *ActivoCreate {
	_c.mutation.SetMotivoBaja(v)
	return _c
}

// SetNillableMotivoBaja sets the "motivo_baja" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableMotivoBaja(v *string) *ActivoCreate {
	if v != nil {
		_c.SetMotivoBaja(*v)
	}
	return _c
}

// SetUsuarioBajaID sets the "usuario_baja_id" field.
func (_c *ActivoCreate) SetUsuarioBajaID(v string) *ActivoCreate {
	_c.mutation.SetUsuarioBajaID(v)
	return _c
}

// SetNillableUsuarioBajaID sets the "usuario_baja_id" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableUsuarioBajaID(v *string) *ActivoCreate {
	if v != nil {
		_c.SetUsuarioBajaID(*v)
	}
	return _c
}

// SetDocumentosBaja sets the "documentos_baja" field.
func (_c *ActivoCreate) SetDocumentosBaja(v []string) *ActivoCreate {
	_c.mutation.SetDocumentosBaja(v)
	return _c
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_c *ActivoCreate) SetAssignedToID(v string) *ActivoCreate {
	_c.mutation.SetAssignedToID(v)
	return _c
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableAssignedToID(v *string) *ActivoCreate {
	if v != nil {
		_c.SetAssignedToID(*v)
	}
	return _c
}

// SetUltimoMantenimiento sets the "ultimo_mantenimiento" field.
func (_c *ActivoCreate) SetUltimoMantenimiento(v time.Time) *ActivoCreate {
	_c.mutation.SetUltimoMantenimiento(v)
	return _c
}

// SetNillableUltimoMantenimiento sets the "ultimo_mantenimiento" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableUltimoMantenimiento(v *time.Time) *ActivoCreate {
	if v != nil {
		_c.SetUltimoMantenimiento(*v)
	}
	return _c
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (_c *ActivoCreate) SetProximoMantenimiento(v time.Time) *ActivoCreate {
	_c.mutation.SetProximoMantenimiento(v)
	return _c
}

// SetNillableProximoMantenimiento sets the "proximo_mantenimiento" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableProximoMantenimiento(v *time.Time) *ActivoCreate {
	if v != nil {
		_c.SetProximoMantenimiento(*v)
	}
	return _c
}

// SetTecnicoMantenimientoID sets the "tecnico_mantenimiento_id" field.
func (_c *ActivoCreate) SetTecnicoMantenimientoID(v string) *ActivoCreate {
	_c.mutation.SetTecnicoMantenimientoID(v)
	return _c
}

// SetNillableTecnicoMantenimientoID sets the "tecnico_mantenimiento_id" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableTecnicoMantenimientoID(v *string) *ActivoCreate {
	if v != nil {
		_c.SetTecnicoMantenimientoID(*v)
	}
	return _c
}

// SetUltimoMantenimientoHallazgos sets the "ultimo_mantenimiento_hallazgos" field.
func (_c *ActivoCreate) SetUltimoMantenimientoHallazgos(v string) *ActivoCreate {
	_c.mutation.SetUltimoMantenimientoHallazgos(v)
	return _c
}

// SetNillableUltimoMantenimientoHallazgos sets the "ultimo_mantenimiento_hallazgos" field if the given value is not nil.
func (_c *ActivoCreate) SetNillableUltimoMantenimientoHallazgos(v *string) *ActivoCreate {
	if v != nil {
		_c.SetUltimoMantenimientoHallazgos(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivoCreate) SetID(v string) *ActivoCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActivoMutation object of the builder.
func (_c *ActivoCreate) Mutation() *ActivoMutation {
	return _c.mutation
}

// Save creates the Activo in the database.
func (_c *ActivoCreate) Save(ctx context.Context) (*Activo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivoCreate) SaveX(ctx context.Context) *Activo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := activo.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Estado(); !ok {
		v := activo.DefaultEstado
		_c.mutation.SetEstado(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivoCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Activo.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Activo.updated_at"`)}
	}
	if _, ok := _c.mutation.TipoActivoID(); !ok {
		return &ValidationError{Name: "tipo_activo_id", err: errors.New(`ent: missing required field "Activo.tipo_activo_id"`)}
	}
	if v, ok := _c.mutation.TipoActivoID(); ok {
		if err := activo.TipoActivoIDValidator(v); err != nil {
			return &ValidationError{Name: "tipo_activo_id", err: fmt.Errorf(`ent: validator failed for field "Activo.tipo_activo_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MarcaID(); !ok {
		return &ValidationError{Name: "marca_id", err: errors.New(`ent: missing required field "Activo.marca_id"`)}
	}
	if v, ok := _c.mutation.MarcaID(); ok {
		if err := activo.MarcaIDValidator(v); err != nil {
			return &ValidationError{Name: "marca_id", err: fmt.Errorf(`ent: validator failed for field "Activo.marca_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModeloID(); !ok {
		return &ValidationError{Name: "modelo_id", err: errors.New(`ent: missing required field "Activo.modelo_id"`)}
	}
	if v, ok := _c.mutation.ModeloID(); ok {
		if err := activo.ModeloIDValidator(v); err != nil {
			return &ValidationError{Name: "modelo_id", err: fmt.Errorf(`ent: validator failed for field "Activo.modelo_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProveedorID(); !ok {
		return &ValidationError{Name: "proveedor_id", err: errors.New(`ent: missing required field "Activo.proveedor_id"`)}
	}
	if v, ok := _c.mutation.ProveedorID(); ok {
		if err := activo.ProveedorIDValidator(v); err != nil {
			return &ValidationError{Name: "proveedor_id", err: fmt.Errorf(`ent: validator failed for field "Activo.proveedor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RegionID(); !ok {
		return &ValidationError{Name: "region_id", err: errors.New(`ent: missing required field "Activo.region_id"`)}
	}
	if v, ok := _c.mutation.RegionID(); ok {
		if err := activo.RegionIDValidator(v); err != nil {
			return &ValidationError{Name: "region_id", err: fmt.Errorf(`ent: validator failed for field "Activo.region_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FincaID(); !ok {
		return &ValidationError{Name: "finca_id", err: errors.New(`ent: missing required field "Activo.finca_id"`)}
	}
	if v, ok := _c.mutation.FincaID(); ok {
		if err := activo.FincaIDValidator(v); err != nil {
			return &ValidationError{Name: "finca_id", err: fmt.Errorf(`ent: validator failed for field "Activo.finca_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DepartamentoID(); !ok {
		return &ValidationError{Name: "departamento_id", err: errors.New(`ent: missing required field "Activo.departamento_id"`)}
	}
	if v, ok := _c.mutation.DepartamentoID(); ok {
		if err := activo.DepartamentoIDValidator(v); err != nil {
			return &ValidationError{Name: "departamento_id", err: fmt.Errorf(`ent: validator failed for field "Activo.departamento_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AreaID(); !ok {
		return &ValidationError{Name: "area_id", err: errors.New(`ent: missing required field "Activo.area_id"`)}
	}
	if v, ok := _c.mutation.AreaID(); ok {
		if err := activo.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "Activo.area_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Serie(); !ok {
		return &ValidationError{Name: "serie", err: errors.New(`ent: missing required field "Activo.serie"`)}
	}
	if v, ok := _c.mutation.Serie(); ok {
		if err := activo.SerieValidator(v); err != nil {
			return &ValidationError{Name: "serie", err: fmt.Errorf(`ent: validator failed for field "Activo.serie": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hostname(); !ok {
		return &ValidationError{Name: "hostname", err: errors.New(`ent: missing required field "Activo.hostname"`)}
	}
	if v, ok := _c.mutation.Hostname(); ok {
		if err := activo.HostnameValidator(v); err != nil {
			return &ValidationError{Name: "hostname", err: fmt.Errorf(`ent: validator failed for field "Activo.hostname": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FechaRegistro(); !ok {
		return &ValidationError{Name: "fecha_registro", err: errors.New(`ent: missing required field "Activo.fecha_registro"`)}
	}
	if v, ok := _c.mutation.TipoCosto(); ok {
		if err := activo.TipoCostoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_costo", err: fmt.Errorf(`ent: validator failed for field "Activo.tipo_costo": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Moneda(); ok {
		if err := activo.MonedaValidator(v); err != nil {
			return &ValidationError{Name: "moneda", err: fmt.Errorf(`ent: validator failed for field "Activo.moneda": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Estado(); !ok {
		return &ValidationError{Name: "estado", err: errors.New(`ent: missing required field "Activo.estado"`)}
	}
	if v, ok := _c.mutation.Estado(); ok {
		if err := activo.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Activo.estado": %w`, err)}
		}
	}
	return nil
}

func (_c *ActivoCreate) sqlSave(ctx context.Context) (*Activo, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Activo.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivoCreate) createSpec() (*Activo, *sqlgraph.CreateSpec) {
	var (
		_node = &Activo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activo.Table, sqlgraph.NewFieldSpec(activo.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(activo.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TipoActivoID(); ok {
		_spec.SetField(activo.FieldTipoActivoID, field.TypeString, value)
		_node.TipoActivoID = value
	}
	if value, ok := _c.mutation.MarcaID(); ok {
		_spec.SetField(activo.FieldMarcaID, field.TypeString, value)
		_node.MarcaID = value
	}
	if value, ok := _c.mutation.ModeloID(); ok {
		_spec.SetField(activo.FieldModeloID, field.TypeString, value)
		_node.ModeloID = value
	}
	if value, ok := _c.mutation.ProveedorID(); ok {
		_spec.SetField(activo.FieldProveedorID, field.TypeString, value)
		_node.ProveedorID = value
	}
	if value, ok := _c.mutation.RegionID(); ok {
		_spec.SetField(activo.FieldRegionID, field.TypeString, value)
		_node.RegionID = value
	}
	if value, ok := _c.mutation.FincaID(); ok {
		_spec.SetField(activo.FieldFincaID, field.TypeString, value)
		_node.FincaID = value
	}
	if value, ok := _c.mutation.DepartamentoID(); ok {
		_spec.SetField(activo.FieldDepartamentoID, field.TypeString, value)
		_node.DepartamentoID = value
	}
	if value, ok := _c.mutation.AreaID(); ok {
		_spec.SetField(activo.FieldAreaID, field.TypeString, value)
		_node.AreaID = value
	}
	if value, ok := _c.mutation.Serie(); ok {
		_spec.SetField(activo.FieldSerie, field.TypeString, value)
		_node.Serie = value
	}
	if value, ok := _c.mutation.Hostname(); ok {
		_spec.SetField(activo.FieldHostname, field.TypeString, value)
		_node.Hostname = value
	}
	if value, ok := _c.mutation.FechaRegistro(); ok {
		_spec.SetField(activo.FieldFechaRegistro, field.TypeTime, value)
		_node.FechaRegistro = value
	}
	if value, ok := _c.mutation.FechaFinGarantia(); ok {
		_spec.SetField(activo.FieldFechaFinGarantia, field.TypeTime, value)
		_node.FechaFinGarantia = &value
	}
	if value, ok := _c.mutation.Solicitante(); ok {
		_spec.SetField(activo.FieldSolicitante, field.TypeString, value)
		_node.Solicitante = value
	}
	if value, ok := _c.mutation.CorreoElectronico(); ok {
		_spec.SetField(activo.FieldCorreoElectronico, field.TypeString, value)
		_node.CorreoElectronico = value
	}
	if value, ok := _c.mutation.OrdenCompra(); ok {
		_spec.SetField(activo.FieldOrdenCompra, field.TypeString, value)
		_node.OrdenCompra = value
	}
	if value, ok := _c.mutation.CuentaContable(); ok {
		_spec.SetField(activo.FieldCuentaContable, field.TypeString, value)
		_node.CuentaContable = value
	}
	if value, ok := _c.mutation.TipoCosto(); ok {
		_spec.SetField(activo.FieldTipoCosto, field.TypeEnum, value)
		_node.TipoCosto = value
	}
	if value, ok := _c.mutation.Cuotas(); ok {
		_spec.SetField(activo.FieldCuotas, field.TypeInt, value)
		_node.Cuotas = &value
	}
	if value, ok := _c.mutation.Moneda(); ok {
		_spec.SetField(activo.FieldMoneda, field.TypeEnum, value)
		_node.Moneda = value
	}
	if value, ok := _c.mutation.Costo(); ok {
		_spec.SetField(activo.FieldCosto, field.TypeFloat64, value)
		_node.Costo = &value
	}
	if value, ok := _c.mutation.Procesador(); ok {
		_spec.SetField(activo.FieldProcesador, field.TypeString, value)
		_node.Procesador = &value
	}
	if value, ok := _c.mutation.RAM(); ok {
		_spec.SetField(activo.FieldRAM, field.TypeInt, value)
		_node.RAM = &value
	}
	if value, ok := _c.mutation.Almacenamiento(); ok {
		_spec.SetField(activo.FieldAlmacenamiento, field.TypeString, value)
		_node.Almacenamiento = &value
	}
	if value, ok := _c.mutation.TarjetaGrafica(); ok {
		_spec.SetField(activo.FieldTarjetaGrafica, field.TypeString, value)
		_node.TarjetaGrafica = &value
	}
	if value, ok := _c.mutation.Wifi(); ok {
		_spec.SetField(activo.FieldWifi, field.TypeBool, value)
		_node.Wifi = &value
	}
	if value, ok := _c.mutation.Ethernet(); ok {
		_spec.SetField(activo.FieldEthernet, field.TypeBool, value)
		_node.Ethernet = &value
	}
	if value, ok := _c.mutation.PuertosEthernet(); ok {
		_spec.SetField(activo.FieldPuertosEthernet, field.TypeString, value)
		_node.PuertosEthernet = &value
	}
	if value, ok := _c.mutation.PuertosSfp(); ok {
		_spec.SetField(activo.FieldPuertosSfp, field.TypeString, value)
		_node.PuertosSfp = &value
	}
	if value, ok := _c.mutation.PuertoConsola(); ok {
		_spec.SetField(activo.FieldPuertoConsola, field.TypeBool, value)
		_node.PuertoConsola = &value
	}
	if value, ok := _c.mutation.PuertosPoe(); ok {
		_spec.SetField(activo.FieldPuertosPoe, field.TypeString, value)
		_node.PuertosPoe = &value
	}
	if value, ok := _c.mutation.Alimentacion(); ok {
		_spec.SetField(activo.FieldAlimentacion, field.TypeString, value)
		_node.Alimentacion = &value
	}
	if value, ok := _c.mutation.Administrable(); ok {
		_spec.SetField(activo.FieldAdministrable, field.TypeBool, value)
		_node.Administrable = &value
	}
	if value, ok := _c.mutation.Tamano(); ok {
		_spec.SetField(activo.FieldTamano, field.TypeString, value)
		_node.Tamano = &value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(activo.FieldColor, field.TypeString, value)
		_node.Color = &value
	}
	if value, ok := _c.mutation.Conectores(); ok {
		_spec.SetField(activo.FieldConectores, field.TypeString, value)
		_node.Conectores = &value
	}
	if value, ok := _c.mutation.Cables(); ok {
		_spec.SetField(activo.FieldCables, field.TypeString, value)
		_node.Cables = &value
	}
	if value, ok := _c.mutation.Estado(); ok {
		_spec.SetField(activo.FieldEstado, field.TypeEnum, value)
		_node.Estado = value
	}
	if value, ok := _c.mutation.FechaBaja(); ok {
		_spec.SetField(activo.FieldFechaBaja, field.TypeTime, value)
		_node.FechaBaja = &value
	}
	if value, ok := _c.mutation.MotivoBaja(); ok {
		_spec.SetField(activo.FieldMotivoBaja, field.TypeString, value)
		_node.MotivoBaja = value
	}
	if value, ok := _c.mutation.UsuarioBajaID(); ok {
		_spec.SetField(activo.FieldUsuarioBajaID, field.TypeString, value)
		_node.UsuarioBajaID = value
	}
	if value, ok := _c.mutation.DocumentosBaja(); ok {
		_spec.SetField(activo.FieldDocumentosBaja, field.TypeJSON, value)
		_node.DocumentosBaja = value
	}
	if value, ok := _c.mutation.AssignedToID(); ok {
		_spec.SetField(activo.FieldAssignedToID, field.TypeString, value)
		_node.AssignedToID = value
	}
	if value, ok := _c.mutation.UltimoMantenimiento(); ok {
		_spec.SetField(activo.FieldUltimoMantenimiento, field.TypeTime, value)
		_node.UltimoMantenimiento = &value
	}
	if value, ok := _c.mutation.ProximoMantenimiento(); ok {
		_spec.SetField(activo.FieldProximoMantenimiento, field.TypeTime, value)
		_node.ProximoMantenimiento = &value
	}
	if value, ok := _c.mutation.TecnicoMantenimientoID(); ok {
		_spec.SetField(activo.FieldTecnicoMantenimientoID, field.TypeString, value)
		_node.TecnicoMantenimientoID = value
	}
	if value, ok := _c.mutation.UltimoMantenimientoHallazgos(); ok {
		_spec.SetField(activo.FieldUltimoMantenimientoHallazgos, field.TypeString, value)
		_node.UltimoMantenimientoHallazgos = value
	}
	return _node, _spec
}

// ActivoCreateBulk is the builder for creating many Activo entities in bulk.
type ActivoCreateBulk struct {
	config
	err      error
	builders []*ActivoCreate
}

// Save creates the Activo entities in the database.
func (_c *ActivoCreateBulk) Save(ctx context.Context) ([]*Activo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Activo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivoMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActivoCreateBulk) SaveX(ctx context.Context) []*Activo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
