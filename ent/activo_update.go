// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/activo"
	"fincatech.io/itam/ent/predicate"
)

// ActivoUpdate is the builder for updating Activo entities.
type ActivoUpdate struct {
	config
	hooks    []Hook
	mutation *ActivoMutation
}

// Where appends a list predicates to the ActivoUpdate builder.
func (_u *ActivoUpdate) Where(ps ...predicate.Activo) *ActivoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivoUpdate) SetUpdatedAt(v time.Time) *ActivoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (_u *ActivoUpdate) SetTipoActivoID(v string) *ActivoUpdate {
	_u.mutation.SetTipoActivoID(v)
	return _u
}

// SetNillableTipoActivoID sets the "tipo_activo_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableTipoActivoID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetTipoActivoID(*v)
	}
	return _u
}

// SetMarcaID sets the "marca_id" field.
func (_u *ActivoUpdate) SetMarcaID(v string) *ActivoUpdate {
	_u.mutation.SetMarcaID(v)
	return _u
}

// SetNillableMarcaID sets the "marca_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableMarcaID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetMarcaID(*v)
	}
	return _u
}

// SetModeloID sets the "modelo_id" field.
func (_u *ActivoUpdate) SetModeloID(v string) *ActivoUpdate {
	_u.mutation.SetModeloID(v)
	return _u
}

// SetNillableModeloID sets the "modelo_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableModeloID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetModeloID(*v)
	}
	return _u
}

// SetProveedorID sets the "proveedor_id" field.
func (_u *ActivoUpdate) SetProveedorID(v string) *ActivoUpdate {
	_u.mutation.SetProveedorID(v)
	return _u
}

// SetNillableProveedorID sets the "proveedor_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableProveedorID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetProveedorID(*v)
	}
	return _u
}

// SetRegionID sets the "region_id" field.
func (_u *ActivoUpdate) SetRegionID(v string) *ActivoUpdate {
	_u.mutation.SetRegionID(v)
	return _u
}

// SetNillableRegionID sets the "region_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableRegionID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetRegionID(*v)
	}
	return _u
}

// SetFincaID sets the "finca_id" field.
func (_u *ActivoUpdate) SetFincaID(v string) *ActivoUpdate {
	_u.mutation.SetFincaID(v)
	return _u
}

// SetNillableFincaID sets the "finca_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableFincaID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetFincaID(*v)
	}
	return _u
}

// SetDepartamentoID sets the "departamento_id" field.
func (_u *ActivoUpdate) SetDepartamentoID(v string) *ActivoUpdate {
	_u.mutation.SetDepartamentoID(v)
	return _u
}

// SetNillableDepartamentoID sets the "departamento_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableDepartamentoID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetDepartamentoID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ActivoUpdate) SetAreaID(v string) *ActivoUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableAreaID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetFechaRegistro sets the "fecha_registro" field.
func (_u *ActivoUpdate) SetFechaRegistro(v time.Time) *ActivoUpdate {
	_u.mutation.SetFechaRegistro(v)
	return _u
}

// SetNillableFechaRegistro sets the "fecha_registro" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableFechaRegistro(v *time.Time) *ActivoUpdate {
	if v != nil {
		_u.SetFechaRegistro(*v)
	}
	return _u
}

// SetFechaFinGarantia sets the "fecha_fin_garantia" field.
func (_u *ActivoUpdate) SetFechaFinGarantia(v time.Time) *ActivoUpdate {
	_u.mutation.SetFechaFinGarantia(v)
	return _u
}

// SetNillableFechaFinGarantia sets the "fecha_fin_garantia" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableFechaFinGarantia(v *time.Time) *ActivoUpdate {
	if v != nil {
		_u.SetFechaFinGarantia(*v)
	}
	return _u
}

// ClearFechaFinGarantia clears the value of the "fecha_fin_garantia" field.
func (_u *ActivoUpdate) ClearFechaFinGarantia() *ActivoUpdate {
	_u.mutation.ClearFechaFinGarantia()
	return _u
}

// SetSolicitante sets the "solicitante" field.
func (_u *ActivoUpdate) SetSolicitante(v string) *ActivoUpdate {
	_u.mutation.SetSolicitante(v)
	return _u
}

// SetNillableSolicitante sets the "solicitante" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableSolicitante(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetSolicitante(*v)
	}
	return _u
}

// ClearSolicitante clears the value of the "solicitante" field.
func (_u *ActivoUpdate) ClearSolicitante() *ActivoUpdate {
	_u.mutation.ClearSolicitante()
	return _u
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (_u *ActivoUpdate) SetCorreoElectronico(v string) *ActivoUpdate {
	_u.mutation.SetCorreoElectronico(v)
	return _u
}

// SetNillableCorreoElectronico sets the "correo_electronico" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableCorreoElectronico(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetCorreoElectronico(*v)
	}
	return _u
}

// ClearCorreoElectronico clears the value of the "correo_electronico" field.
func (_u *ActivoUpdate) ClearCorreoElectronico() *ActivoUpdate {
	_u.mutation.ClearCorreoElectronico()
	return _u
}

// SetOrdenCompra sets the "orden_compra" field.
func (_u *ActivoUpdate) SetOrdenCompra(v string) *ActivoUpdate {
	_u.mutation.SetOrdenCompra(v)
	return _u
}

// SetNillableOrdenCompra sets the "orden_compra" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableOrdenCompra(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetOrdenCompra(*v)
	}
	return _u
}

// ClearOrdenCompra clears the value of the "orden_compra" field.
func (_u *ActivoUpdate) ClearOrdenCompra() *ActivoUpdate {
	_u.mutation.ClearOrdenCompra()
	return _u
}

// SetCuentaContable sets the "cuenta_contable" field.
func (_u *ActivoUpdate) SetCuentaContable(v string) *ActivoUpdate {
	_u.mutation.SetCuentaContable(v)
	return _u
}

// SetNillableCuentaContable sets the "cuenta_contable" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableCuentaContable(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetCuentaContable(*v)
	}
	return _u
}

// ClearCuentaContable clears the value of the "cuenta_contable" field.
func (_u *ActivoUpdate) ClearCuentaContable() *ActivoUpdate {
	_u.mutation.ClearCuentaContable()
	return _u
}

// SetTipoCosto sets the "tipo_costo" field.
func (_u *ActivoUpdate) SetTipoCosto(v activo.TipoCosto) *ActivoUpdate {
	_u.mutation.SetTipoCosto(v)
	return _u
}

// SetNillableTipoCosto sets the "tipo_costo" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableTipoCosto(v *activo.TipoCosto) *ActivoUpdate {
	if v != nil {
		_u.SetTipoCosto(*v)
	}
	return _u
}

// ClearTipoCosto clears the value of the "tipo_costo" field.
func (_u *ActivoUpdate) ClearTipoCosto() *ActivoUpdate {
	_u.mutation.ClearTipoCosto()
	return _u
}

// SetCuotas sets the "cuotas" field.
func (_u *ActivoUpdate) SetCuotas(v int) *ActivoUpdate {
	_u.mutation.ResetCuotas()
	_u.mutation.SetCuotas(v)
	return _u
}

// SetNillableCuotas sets the "cuotas" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableCuotas(v *int) *ActivoUpdate {
	if v != nil {
		_u.SetCuotas(*v)
	}
	return _u
}

// AddCuotas adds value to the "cuotas" field.
func (_u *ActivoUpdate) AddCuotas(v int) *ActivoUpdate {
	_u.mutation.AddCuotas(v)
	return _u
}

// ClearCuotas clears the value of the "cuotas" field.
func (_u *ActivoUpdate) ClearCuotas() *ActivoUpdate {
	_u.mutation.ClearCuotas()
	return _u
}

// SetMoneda sets the "moneda" field.
func (_u *ActivoUpdate) SetMoneda(v activo.Moneda) *ActivoUpdate {
	_u.mutation.SetMoneda(v)
	return _u
}

// SetNillableMoneda sets the "moneda" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableMoneda(v *activo.Moneda) *ActivoUpdate {
	if v != nil {
		_u.SetMoneda(*v)
	}
	return _u
}

// ClearMoneda clears the value of the "moneda" field.
func (_u *ActivoUpdate) ClearMoneda() *ActivoUpdate {
	_u.mutation.ClearMoneda()
	return _u
}

// SetCosto sets the "costo" field.
func (_u *ActivoUpdate) SetCosto(v float64) *ActivoUpdate {
	_u.mutation.ResetCosto()
	_u.mutation.SetCosto(v)
	return _u
}

// SetNillableCosto sets the "costo" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableCosto(v *float64) *ActivoUpdate {
	if v != nil {
		_u.SetCosto(*v)
	}
	return _u
}

// AddCosto adds value to the "costo" field.
func (_u *ActivoUpdate) AddCosto(v float64) *ActivoUpdate {
	_u.mutation.AddCosto(v)
	return _u
}

// ClearCosto clears the value of the "costo" field.
func (_u *ActivoUpdate) ClearCosto() *ActivoUpdate {
	_u.mutation.ClearCosto()
	return _u
}

// SetProcesador sets the "procesador" field.
func (_u *ActivoUpdate) SetProcesador(v string) *ActivoUpdate {
	_u.mutation.SetProcesador(v)
	return _u
}

// SetNillableProcesador sets the "procesador" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableProcesador(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetProcesador(*v)
	}
	return _u
}

// ClearProcesador clears the value of the "procesador" field.
func (_u *ActivoUpdate) ClearProcesador() *ActivoUpdate {
	_u.mutation.ClearProcesador()
	return _u
}

// SetRAM sets the "ram" field.
func (_u *ActivoUpdate) SetRAM(v int) *ActivoUpdate {
	_u.mutation.ResetRAM()
	_u.mutation.SetRAM(v)
	return _u
}

// SetNillableRAM sets the "ram" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableRAM(v *int) *ActivoUpdate {
	if v != nil {
		_u.SetRAM(*v)
	}
	return _u
}

// AddRAM adds value to the "ram" field.
func (_u *ActivoUpdate) AddRAM(v int) *ActivoUpdate {
	_u.mutation.AddRAM(v)
	return _u
}

// ClearRAM clears the value of the "ram" field.
func (_u *ActivoUpdate) ClearRAM() *ActivoUpdate {
	_u.mutation.ClearRAM()
	return _u
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (_u *ActivoUpdate) SetAlmacenamiento(v string) *ActivoUpdate {
	_u.mutation.SetAlmacenamiento(v)
	return _u
}

// SetNillableAlmacenamiento sets the "almacenamiento" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableAlmacenamiento(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetAlmacenamiento(*v)
	}
	return _u
}

// ClearAlmacenamiento clears the value of the "almacenamiento" field.
func (_u *ActivoUpdate) ClearAlmacenamiento() *ActivoUpdate {
	_u.mutation.ClearAlmacenamiento()
	return _u
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (_u *ActivoUpdate) SetTarjetaGrafica(v string) *ActivoUpdate {
	_u.mutation.SetTarjetaGrafica(v)
	return _u
}

// SetNillableTarjetaGrafica sets the "tarjeta_grafica" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableTarjetaGrafica(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetTarjetaGrafica(*v)
	}
	return _u
}

// ClearTarjetaGrafica clears the value of the "tarjeta_grafica" field.
func (_u *ActivoUpdate) ClearTarjetaGrafica() *ActivoUpdate {
	_u.mutation.ClearTarjetaGrafica()
	return _u
}

// SetWifi sets the "wifi" field.
func (_u *ActivoUpdate) SetWifi(v bool) *ActivoUpdate {
	_u.mutation.SetWifi(v)
	return _u
}

// SetNillableWifi sets the "wifi" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableWifi(v *bool) *ActivoUpdate {
	if v != nil {
		_u.SetWifi(*v)
	}
	return _u
}

// ClearWifi clears the value of the "wifi" field.
func (_u *ActivoUpdate) ClearWifi() *ActivoUpdate {
	_u.mutation.ClearWifi()
	return _u
}

// SetEthernet sets the "ethernet" field.
func (_u *ActivoUpdate) SetEthernet(v bool) *ActivoUpdate {
	_u.mutation.SetEthernet(v)
	return _u
}

// SetNillableEthernet sets the "ethernet" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableEthernet(v *bool) *ActivoUpdate {
	if v != nil {
		_u.SetEthernet(*v)
	}
	return _u
}

// ClearEthernet clears the value of the "ethernet" field.
func (_u *ActivoUpdate) ClearEthernet() *ActivoUpdate {
	_u.mutation.ClearEthernet()
	return _u
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (_u *ActivoUpdate) SetPuertosEthernet(v string) *ActivoUpdate {
	_u.mutation.SetPuertosEthernet(v)
	return _u
}

// SetNillablePuertosEthernet sets the "puertos_ethernet" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillablePuertosEthernet(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetPuertosEthernet(*v)
	}
	return _u
}

// ClearPuertosEthernet clears the value of the "puertos_ethernet" field.
func (_u *ActivoUpdate) ClearPuertosEthernet() *ActivoUpdate {
	_u.mutation.ClearPuertosEthernet()
	return _u
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (_u *ActivoUpdate) SetPuertosSfp(v string) *ActivoUpdate {
	_u.mutation.SetPuertosSfp(v)
	return _u
}

// SetNillablePuertosSfp sets the "puertos_sfp" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillablePuertosSfp(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetPuertosSfp(*v)
	}
	return _u
}

// ClearPuertosSfp clears the value of the "puertos_sfp" field.
func (_u *ActivoUpdate) ClearPuertosSfp() *ActivoUpdate {
	_u.mutation.ClearPuertosSfp()
	return _u
}

// SetPuertoConsola sets the "puerto_consola" field.
func (_u *ActivoUpdate) SetPuertoConsola(v bool) *ActivoUpdate {
	_u.mutation.SetPuertoConsola(v)
	return _u
}

// SetNillablePuertoConsola sets the "puerto_consola" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillablePuertoConsola(v *bool) *ActivoUpdate {
	if v != nil {
		_u.SetPuertoConsola(*v)
	}
	return _u
}

// ClearPuertoConsola clears the value of the "puerto_consola" field.
func (_u *ActivoUpdate) ClearPuertoConsola() *ActivoUpdate {
	_u.mutation.ClearPuertoConsola()
	return _u
}

// SetPuertosPoe sets the "puertos_poe" field.
func (_u *ActivoUpdate) SetPuertosPoe(v string) *ActivoUpdate {
	_u.mutation.SetPuertosPoe(v)
	return _u
}

// SetNillablePuertosPoe sets the "puertos_poe" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillablePuertosPoe(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetPuertosPoe(*v)
	}
	return _u
}

// ClearPuertosPoe clears the value of the "puertos_poe" field.
func (_u *ActivoUpdate) ClearPuertosPoe() *ActivoUpdate {
	_u.mutation.ClearPuertosPoe()
	return _u
}

// SetAlimentacion sets the "alimentacion" field.
func (_u *ActivoUpdate) SetAlimentacion(v string) *ActivoUpdate {
	_u.mutation.SetAlimentacion(v)
	return _u
}

// SetNillableAlimentacion sets the "alimentacion" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableAlimentacion(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetAlimentacion(*v)
	}
	return _u
}

// ClearAlimentacion clears the value of the "alimentacion" field.
func (_u *ActivoUpdate) ClearAlimentacion() *ActivoUpdate {
	_u.mutation.ClearAlimentacion()
	return _u
}

// SetAdministrable sets the "administrable" field.
func (_u *ActivoUpdate) SetAdministrable(v bool) *ActivoUpdate {
	_u.mutation.SetAdministrable(v)
	return _u
}

// SetNillableAdministrable sets the "administrable" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableAdministrable(v *bool) *ActivoUpdate {
	if v != nil {
		_u.SetAdministrable(*v)
	}
	return _u
}

// ClearAdministrable clears the value of the "administrable" field.
func (_u *ActivoUpdate) ClearAdministrable() *ActivoUpdate {
	_u.mutation.ClearAdministrable()
	return _u
}

// SetTamano sets the "tamano" field.
func (_u *ActivoUpdate) SetTamano(v string) *ActivoUpdate {
	_u.mutation.SetTamano(v)
	return _u
}

// SetNillableTamano sets the "tamano" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableTamano(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetTamano(*v)
	}
	return _u
}

// ClearTamano clears the value of the "tamano" field.
func (_u *ActivoUpdate) ClearTamano() *ActivoUpdate {
	_u.mutation.ClearTamano()
	return _u
}

// SetColor sets the "color" field.
func (_u *ActivoUpdate) SetColor(v string) *ActivoUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableColor(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *ActivoUpdate) ClearColor() *ActivoUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetConectores sets the "conectores" field.
func (_u *ActivoUpdate) SetConectores(v string) *ActivoUpdate {
	_u.mutation.SetConectores(v)
	return _u
}

// SetNillableConectores sets the "conectores" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableConectores(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetConectores(*v)
	}
	return _u
}

// ClearConectores clears the value of the "conectores" field.
func (_u *ActivoUpdate) ClearConectores() *ActivoUpdate {
	_u.mutation.ClearConectores()
	return _u
}

// SetCables sets the "cables" field.
func (_u *ActivoUpdate) SetCables(v string) *ActivoUpdate {
	_u.mutation.SetCables(v)
	return _u
}

// SetNillableCables sets the "cables" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableCables(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetCables(*v)
	}
	return _u
}

// ClearCables clears the value of the "cables" field.
func (_u *ActivoUpdate) ClearCables() *ActivoUpdate {
	_u.mutation.ClearCables()
	return _u
}

// SetEstado sets the "estado" field.
func (_u *ActivoUpdate) SetEstado(v activo.Estado) *ActivoUpdate {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableEstado(v *activo.Estado) *ActivoUpdate {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetFechaBaja sets the "fecha_baja" field.
func (_u *ActivoUpdate) SetFechaBaja(v time.Time) *ActivoUpdate {
	_u.mutation.SetFechaBaja(v)
	return _u
}

// SetNillableFechaBaja sets the "fecha_baja" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableFechaBaja(v *time.Time) *ActivoUpdate {
	if v != nil {
		_u.SetFechaBaja(*v)
	}
	return _u
}

// ClearFechaBaja clears the value of the "fecha_baja" field.
func (_u *ActivoUpdate) ClearFechaBaja() *ActivoUpdate {
	_u.mutation.ClearFechaBaja()
	return _u
}

// SetMotivoBaja sets the "motivo_baja" field.
func (_u *ActivoUpdate) SetMotivoBaja(v string) *ActivoUpdate {
	_u.mutation.SetMotivoBaja(v)
	return _u
}

// SetNillableMotivoBaja sets the "motivo_baja" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableMotivoBaja(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetMotivoBaja(*v)
	}
	return _u
}

// ClearMotivoBaja clears the value of the "motivo_baja" field.
func (_u *ActivoUpdate) ClearMotivoBaja() *ActivoUpdate {
	_u.mutation.ClearMotivoBaja()
	return _u
}

// SetUsuarioBajaID sets the "usuario_baja_id" field.
func (_u *ActivoUpdate) SetUsuarioBajaID(v string) *ActivoUpdate {
	_u.mutation.SetUsuarioBajaID(v)
	return _u
}

// SetNillableUsuarioBajaID sets the "usuario_baja_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableUsuarioBajaID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetUsuarioBajaID(*v)
	}
	return _u
}

// ClearUsuarioBajaID clears the value of the "usuario_baja_id" field.
func (_u *ActivoUpdate) ClearUsuarioBajaID() *ActivoUpdate {
	_u.mutation.ClearUsuarioBajaID()
	return _u
}

// SetDocumentosBaja sets the "documentos_baja" field.
func (_u *ActivoUpdate) SetDocumentosBaja(v []string) *ActivoUpdate {
	_u.mutation.SetDocumentosBaja(v)
	return _u
}

// AppendDocumentosBaja appends value to the "documentos_baja" field.
func (_u *ActivoUpdate) AppendDocumentosBaja(v []string) *ActivoUpdate {
	_u.mutation.AppendDocumentosBaja(v)
	return _u
}

// ClearDocumentosBaja clears the value of the "documentos_baja" field.
func (_u *ActivoUpdate) ClearDocumentosBaja() *ActivoUpdate {
	_u.mutation.ClearDocumentosBaja()
	return _u
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_u *ActivoUpdate) SetAssignedToID(v string) *ActivoUpdate {
	_u.mutation.SetAssignedToID(v)
	return _u
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableAssignedToID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetAssignedToID(*v)
	}
	return _u
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (_u *ActivoUpdate) ClearAssignedToID() *ActivoUpdate {
	_u.mutation.ClearAssignedToID()
	return _u
}

// SetUltimoMantenimiento sets the "ultimo_mantenimiento" field.
func (_u *ActivoUpdate) SetUltimoMantenimiento(v time.Time) *ActivoUpdate {
	_u.mutation.SetUltimoMantenimiento(v)
	return _u
}

// SetNillableUltimoMantenimiento sets the "ultimo_mantenimiento" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableUltimoMantenimiento(v *time.Time) *ActivoUpdate {
	if v != nil {
		_u.SetUltimoMantenimiento(*v)
	}
	return _u
}

// ClearUltimoMantenimiento clears the value of the "ultimo_mantenimiento" field.
func (_u *ActivoUpdate) ClearUltimoMantenimiento() *ActivoUpdate {
	_u.mutation.ClearUltimoMantenimiento()
	return _u
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (_u *ActivoUpdate) SetProximoMantenimiento(v time.Time) *ActivoUpdate {
	_u.mutation.SetProximoMantenimiento(v)
	return _u
}

// SetNillableProximoMantenimiento sets the "proximo_mantenimiento" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableProximoMantenimiento(v *time.Time) *ActivoUpdate {
	if v != nil {
		_u.SetProximoMantenimiento(*v)
	}
	return _u
}

// ClearProximoMantenimiento clears the value of the "proximo_mantenimiento" field.
func (_u *ActivoUpdate) ClearProximoMantenimiento() *ActivoUpdate {
	_u.mutation.ClearProximoMantenimiento()
	return _u
}

// SetTecnicoMantenimientoID sets the "tecnico_mantenimiento_id" field.
func (_u *ActivoUpdate) SetTecnicoMantenimientoID(v string) *ActivoUpdate {
	_u.mutation.SetTecnicoMantenimientoID(v)
	return _u
}

// SetNillableTecnicoMantenimientoID sets the "tecnico_mantenimiento_id" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableTecnicoMantenimientoID(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetTecnicoMantenimientoID(*v)
	}
	return _u
}

// ClearTecnicoMantenimientoID clears the value of the "tecnico_mantenimiento_id" field.
func (_u *ActivoUpdate) ClearTecnicoMantenimientoID() *ActivoUpdate {
	_u.mutation.ClearTecnicoMantenimientoID()
	return _u
}

// SetUltimoMantenimientoHallazgos sets the "ultimo_mantenimiento_hallazgos" field.
func (_u *ActivoUpdate) SetUltimoMantenimientoHallazgos(v string) *ActivoUpdate {
	_u.mutation.SetUltimoMantenimientoHallazgos(v)
	return _u
}

// SetNillableUltimoMantenimientoHallazgos sets the "ultimo_mantenimiento_hallazgos" field if the given value is not nil.
func (_u *ActivoUpdate) SetNillableUltimoMantenimientoHallazgos(v *string) *ActivoUpdate {
	if v != nil {
		_u.SetUltimoMantenimientoHallazgos(*v)
	}
	return _u
}

// ClearUltimoMantenimientoHallazgos clears the value of the "ultimo_mantenimiento_hallazgos" field.
func (_u *ActivoUpdate) ClearUltimoMantenimientoHallazgos() *ActivoUpdate {
	_u.mutation.ClearUltimoMantenimientoHallazgos()
	return _u
}

// Mutation returns the ActivoMutation object of the builder.
func (_u *ActivoUpdate) Mutation() *ActivoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivoUpdate) check() error {
	if v, ok := _u.mutation.TipoActivoID(); ok {
		if err := activo.TipoActivoIDValidator(v); err != nil {
			return &ValidationError{Name: "tipo_activo_id", err: fmt.Errorf(`ent: validator failed for field "Activo.tipo_activo_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarcaID(); ok {
		if err := activo.MarcaIDValidator(v); err != nil {
			return &ValidationError{Name: "marca_id", err: fmt.Errorf(`ent: validator failed for field "Activo.marca_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModeloID(); ok {
		if err := activo.ModeloIDValidator(v); err != nil {
			return &ValidationError{Name: "modelo_id", err: fmt.Errorf(`ent: validator failed for field "Activo.modelo_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProveedorID(); ok {
		if err := activo.ProveedorIDValidator(v); err != nil {
			return &ValidationError{Name: "proveedor_id", err: fmt.Errorf(`ent: validator failed for field "Activo.proveedor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegionID(); ok {
		if err := activo.RegionIDValidator(v); err != nil {
			return &ValidationError{Name: "region_id", err: fmt.Errorf(`ent: validator failed for field "Activo.region_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FincaID(); ok {
		if err := activo.FincaIDValidator(v); err != nil {
			return &ValidationError{Name: "finca_id", err: fmt.Errorf(`ent: validator failed for field "Activo.finca_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DepartamentoID(); ok {
		if err := activo.DepartamentoIDValidator(v); err != nil {
			return &ValidationError{Name: "departamento_id", err: fmt.Errorf(`ent: validator failed for field "Activo.departamento_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := activo.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "Activo.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoCosto(); ok {
		if err := activo.TipoCostoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_costo", err: fmt.Errorf(`ent: validator failed for field "Activo.tipo_costo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Moneda(); ok {
		if err := activo.MonedaValidator(v); err != nil {
			return &ValidationError{Name: "moneda", err: fmt.Errorf(`ent: validator failed for field "Activo.moneda": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := activo.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Activo.estado": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activo.Table, activo.Columns, sqlgraph.NewFieldSpec(activo.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activo.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TipoActivoID(); ok {
		_spec.SetField(activo.FieldTipoActivoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarcaID(); ok {
		_spec.SetField(activo.FieldMarcaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModeloID(); ok {
		_spec.SetField(activo.FieldModeloID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProveedorID(); ok {
		_spec.SetField(activo.FieldProveedorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionID(); ok {
		_spec.SetField(activo.FieldRegionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FincaID(); ok {
		_spec.SetField(activo.FieldFincaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepartamentoID(); ok {
		_spec.SetField(activo.FieldDepartamentoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(activo.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FechaRegistro(); ok {
		_spec.SetField(activo.FieldFechaRegistro, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaFinGarantia(); ok {
		_spec.SetField(activo.FieldFechaFinGarantia, field.TypeTime, value)
	}
	if _u.mutation.FechaFinGarantiaCleared() {
		_spec.ClearField(activo.FieldFechaFinGarantia, field.TypeTime)
	}
	if value, ok := _u.mutation.Solicitante(); ok {
		_spec.SetField(activo.FieldSolicitante, field.TypeString, value)
	}
	if _u.mutation.SolicitanteCleared() {
		_spec.ClearField(activo.FieldSolicitante, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoElectronico(); ok {
		_spec.SetField(activo.FieldCorreoElectronico, field.TypeString, value)
	}
	if _u.mutation.CorreoElectronicoCleared() {
		_spec.ClearField(activo.FieldCorreoElectronico, field.TypeString)
	}
	if value, ok := _u.mutation.OrdenCompra(); ok {
		_spec.SetField(activo.FieldOrdenCompra, field.TypeString, value)
	}
	if _u.mutation.OrdenCompraCleared() {
		_spec.ClearField(activo.FieldOrdenCompra, field.TypeString)
	}
	if value, ok := _u.mutation.CuentaContable(); ok {
		_spec.SetField(activo.FieldCuentaContable, field.TypeString, value)
	}
	if _u.mutation.CuentaContableCleared() {
		_spec.ClearField(activo.FieldCuentaContable, field.TypeString)
	}
	if value, ok := _u.mutation.TipoCosto(); ok {
		_spec.SetField(activo.FieldTipoCosto, field.TypeEnum, value)
	}
	if _u.mutation.TipoCostoCleared() {
		_spec.ClearField(activo.FieldTipoCosto, field.TypeEnum)
	}
	if value, ok := _u.mutation.Cuotas(); ok {
		_spec.SetField(activo.FieldCuotas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCuotas(); ok {
		_spec.AddField(activo.FieldCuotas, field.TypeInt, value)
	}
	if _u.mutation.CuotasCleared() {
		_spec.ClearField(activo.FieldCuotas, field.TypeInt)
	}
	if value, ok := _u.mutation.Moneda(); ok {
		_spec.SetField(activo.FieldMoneda, field.TypeEnum, value)
	}
	if _u.mutation.MonedaCleared() {
		_spec.ClearField(activo.FieldMoneda, field.TypeEnum)
	}
	if value, ok := _u.mutation.Costo(); ok {
		_spec.SetField(activo.FieldCosto, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCosto(); ok {
		_spec.AddField(activo.FieldCosto, field.TypeFloat64, value)
	}
	if _u.mutation.CostoCleared() {
		_spec.ClearField(activo.FieldCosto, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Procesador(); ok {
		_spec.SetField(activo.FieldProcesador, field.TypeString, value)
	}
	if _u.mutation.ProcesadorCleared() {
		_spec.ClearField(activo.FieldProcesador, field.TypeString)
	}
	if value, ok := _u.mutation.RAM(); ok {
		_spec.SetField(activo.FieldRAM, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRAM(); ok {
		_spec.AddField(activo.FieldRAM, field.TypeInt, value)
	}
	if _u.mutation.RAMCleared() {
		_spec.ClearField(activo.FieldRAM, field.TypeInt)
	}
	if value, ok := _u.mutation.Almacenamiento(); ok {
		_spec.SetField(activo.FieldAlmacenamiento, field.TypeString, value)
	}
	if _u.mutation.AlmacenamientoCleared() {
		_spec.ClearField(activo.FieldAlmacenamiento, field.TypeString)
	}
	if value, ok := _u.mutation.TarjetaGrafica(); ok {
		_spec.SetField(activo.FieldTarjetaGrafica, field.TypeString, value)
	}
	if _u.mutation.TarjetaGraficaCleared() {
		_spec.ClearField(activo.FieldTarjetaGrafica, field.TypeString)
	}
	if value, ok := _u.mutation.Wifi(); ok {
		_spec.SetField(activo.FieldWifi, field.TypeBool, value)
	}
	if _u.mutation.WifiCleared() {
		_spec.ClearField(activo.FieldWifi, field.TypeBool)
	}
	if value, ok := _u.mutation.Ethernet(); ok {
		_spec.SetField(activo.FieldEthernet, field.TypeBool, value)
	}
	if _u.mutation.EthernetCleared() {
		_spec.ClearField(activo.FieldEthernet, field.TypeBool)
	}
	if value, ok := _u.mutation.PuertosEthernet(); ok {
		_spec.SetField(activo.FieldPuertosEthernet, field.TypeString, value)
	}
	if _u.mutation.PuertosEthernetCleared() {
		_spec.ClearField(activo.FieldPuertosEthernet, field.TypeString)
	}
	if value, ok := _u.mutation.PuertosSfp(); ok {
		_spec.SetField(activo.FieldPuertosSfp, field.TypeString, value)
	}
	if _u.mutation.PuertosSfpCleared() {
		_spec.ClearField(activo.FieldPuertosSfp, field.TypeString)
	}
	if value, ok := _u.mutation.PuertoConsola(); ok {
		_spec.SetField(activo.FieldPuertoConsola, field.TypeBool, value)
	}
	if _u.mutation.PuertoConsolaCleared() {
		_spec.ClearField(activo.FieldPuertoConsola, field.TypeBool)
	}
	if value, ok := _u.mutation.PuertosPoe(); ok {
		_spec.SetField(activo.FieldPuertosPoe, field.TypeString, value)
	}
	if _u.mutation.PuertosPoeCleared() {
		_spec.ClearField(activo.FieldPuertosPoe, field.TypeString)
	}
	if value, ok := _u.mutation.Alimentacion(); ok {
		_spec.SetField(activo.FieldAlimentacion, field.TypeString, value)
	}
	if _u.mutation.AlimentacionCleared() {
		_spec.ClearField(activo.FieldAlimentacion, field.TypeString)
	}
	if value, ok := _u.mutation.Administrable(); ok {
		_spec.SetField(activo.FieldAdministrable, field.TypeBool, value)
	}
	if _u.mutation.AdministrableCleared() {
		_spec.ClearField(activo.FieldAdministrable, field.TypeBool)
	}
	if value, ok := _u.mutation.Tamano(); ok {
		_spec.SetField(activo.FieldTamano, field.TypeString, value)
	}
	if _u.mutation.TamanoCleared() {
		_spec.ClearField(activo.FieldTamano, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(activo.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(activo.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Conectores(); ok {
		_spec.SetField(activo.FieldConectores, field.TypeString, value)
	}
	if _u.mutation.ConectoresCleared() {
		_spec.ClearField(activo.FieldConectores, field.TypeString)
	}
	if value, ok := _u.mutation.Cables(); ok {
		_spec.SetField(activo.FieldCables, field.TypeString, value)
	}
	if _u.mutation.CablesCleared() {
		_spec.ClearField(activo.FieldCables, field.TypeString)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(activo.FieldEstado, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FechaBaja(); ok {
		_spec.SetField(activo.FieldFechaBaja, field.TypeTime, value)
	}
	if _u.mutation.FechaBajaCleared() {
		_spec.ClearField(activo.FieldFechaBaja, field.TypeTime)
	}
	if value, ok := _u.mutation.MotivoBaja(); ok {
		_spec.SetField(activo.FieldMotivoBaja, field.TypeString, value)
	}
	if _u.mutation.MotivoBajaCleared() {
		_spec.ClearField(activo.FieldMotivoBaja, field.TypeString)
	}
	if value, ok := _u.mutation.UsuarioBajaID(); ok {
		_spec.SetField(activo.FieldUsuarioBajaID, field.TypeString, value)
	}
	if _u.mutation.UsuarioBajaIDCleared() {
		_spec.ClearField(activo.FieldUsuarioBajaID, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentosBaja(); ok {
		_spec.SetField(activo.FieldDocumentosBaja, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocumentosBaja(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, activo.FieldDocumentosBaja, value)
		})
	}
	if _u.mutation.DocumentosBajaCleared() {
		_spec.ClearField(activo.FieldDocumentosBaja, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedToID(); ok {
		_spec.SetField(activo.FieldAssignedToID, field.TypeString, value)
	}
	if _u.mutation.AssignedToIDCleared() {
		_spec.ClearField(activo.FieldAssignedToID, field.TypeString)
	}
	if value, ok := _u.mutation.UltimoMantenimiento(); ok {
		_spec.SetField(activo.FieldUltimoMantenimiento, field.TypeTime, value)
	}
	if _u.mutation.UltimoMantenimientoCleared() {
		_spec.ClearField(activo.FieldUltimoMantenimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.ProximoMantenimiento(); ok {
		_spec.SetField(activo.FieldProximoMantenimiento, field.TypeTime, value)
	}
	if _u.mutation.ProximoMantenimientoCleared() {
		_spec.ClearField(activo.FieldProximoMantenimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.TecnicoMantenimientoID(); ok {
		_spec.SetField(activo.FieldTecnicoMantenimientoID, field.TypeString, value)
	}
	if _u.mutation.TecnicoMantenimientoIDCleared() {
		_spec.ClearField(activo.FieldTecnicoMantenimientoID, field.TypeString)
	}
	if value, ok := _u.mutation.UltimoMantenimientoHallazgos(); ok {
		_spec.SetField(activo.FieldUltimoMantenimientoHallazgos, field.TypeString, value)
	}
	if _u.mutation.UltimoMantenimientoHallazgosCleared() {
		_spec.ClearField(activo.FieldUltimoMantenimientoHallazgos, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivoUpdateOne is the builder for updating a single Activo entity.
type ActivoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivoMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivoUpdateOne) SetUpdatedAt(v time.Time) *ActivoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (_u *ActivoUpdateOne) SetTipoActivoID(v string) *ActivoUpdateOne {
	_u.mutation.SetTipoActivoID(v)
	return _u
}

// SetNillableTipoActivoID sets the "tipo_activo_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableTipoActivoID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetTipoActivoID(*v)
	}
	return _u
}

// SetMarcaID sets the "marca_id" field.
func (_u *ActivoUpdateOne) SetMarcaID(v string) *ActivoUpdateOne {
	_u.mutation.SetMarcaID(v)
	return _u
}

// SetNillableMarcaID sets the "marca_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableMarcaID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetMarcaID(*v)
	}
	return _u
}

// SetModeloID sets the "modelo_id" field.
func (_u *ActivoUpdateOne) SetModeloID(v string) *ActivoUpdateOne {
	_u.mutation.SetModeloID(v)
	return _u
}

// SetNillableModeloID sets the "modelo_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableModeloID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetModeloID(*v)
	}
	return _u
}

// SetProveedorID sets the "proveedor_id" field.
func (_u *ActivoUpdateOne) SetProveedorID(v string) *ActivoUpdateOne {
	_u.mutation.SetProveedorID(v)
	return _u
}

// SetNillableProveedorID sets the "proveedor_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableProveedorID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetProveedorID(*v)
	}
	return _u
}

// SetRegionID sets the "region_id" field.
func (_u *ActivoUpdateOne) SetRegionID(v string) *ActivoUpdateOne {
	_u.mutation.SetRegionID(v)
	return _u
}

// SetNillableRegionID sets the "region_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableRegionID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetRegionID(*v)
	}
	return _u
}

// SetFincaID sets the "finca_id" field.
func (_u *ActivoUpdateOne) SetFincaID(v string) *ActivoUpdateOne {
	_u.mutation.SetFincaID(v)
	return _u
}

// SetNillableFincaID sets the "finca_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableFincaID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetFincaID(*v)
	}
	return _u
}

// SetDepartamentoID sets the "departamento_id" field.
func (_u *ActivoUpdateOne) SetDepartamentoID(v string) *ActivoUpdateOne {
	_u.mutation.SetDepartamentoID(v)
	return _u
}

// SetNillableDepartamentoID sets the "departamento_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableDepartamentoID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetDepartamentoID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ActivoUpdateOne) SetAreaID(v string) *ActivoUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableAreaID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetFechaRegistro sets the "fecha_registro" field.
func (_u *ActivoUpdateOne) SetFechaRegistro(v time.Time) *ActivoUpdateOne {
	_u.mutation.SetFechaRegistro(v)
	return _u
}

// SetNillableFechaRegistro sets the "fecha_registro" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableFechaRegistro(v *time.Time) *ActivoUpdateOne {
	if v != nil {
		_u.SetFechaRegistro(*v)
	}
	return _u
}

// SetFechaFinGarantia sets the "fecha_fin_garantia" field.
func (_u *ActivoUpdateOne) SetFechaFinGarantia(v time.Time) *ActivoUpdateOne {
	_u.mutation.SetFechaFinGarantia(v)
	return _u
}

// SetNillableFechaFinGarantia sets the "fecha_fin_garantia" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableFechaFinGarantia(v *time.Time) *ActivoUpdateOne {
	if v != nil {
		_u.SetFechaFinGarantia(*v)
	}
	return _u
}

// ClearFechaFinGarantia clears the value of the "fecha_fin_garantia" field.
func (_u *ActivoUpdateOne) ClearFechaFinGarantia() *ActivoUpdateOne {
	_u.mutation.ClearFechaFinGarantia()
	return _u
}

// SetSolicitante sets the "solicitante" field.
func (_u *ActivoUpdateOne) SetSolicitante(v string) *ActivoUpdateOne {
	_u.mutation.SetSolicitante(v)
	return _u
}

// SetNillableSolicitante sets the "solicitante" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableSolicitante(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetSolicitante(*v)
	}
	return _u
}

// ClearSolicitante clears the value of the "solicitante" field.
func (_u *ActivoUpdateOne) ClearSolicitante() *ActivoUpdateOne {
	_u.mutation.ClearSolicitante()
	return _u
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (_u *ActivoUpdateOne) SetCorreoElectronico(v string) *ActivoUpdateOne {
	_u.mutation.SetCorreoElectronico(v)
	return _u
}

// SetNillableCorreoElectronico sets the "correo_electronico" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableCorreoElectronico(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetCorreoElectronico(*v)
	}
	return _u
}

// ClearCorreoElectronico clears the value of the "correo_electronico" field.
func (_u *ActivoUpdateOne) ClearCorreoElectronico() *ActivoUpdateOne {
	_u.mutation.ClearCorreoElectronico()
	return _u
}

// SetOrdenCompra sets the "orden_compra" field.
func (_u *ActivoUpdateOne) SetOrdenCompra(v string) *ActivoUpdateOne {
	_u.mutation.SetOrdenCompra(v)
	return _u
}

// SetNillableOrdenCompra sets the "orden_compra" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableOrdenCompra(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetOrdenCompra(*v)
	}
	return _u
}

// ClearOrdenCompra clears the value of the "orden_compra" field.
func (_u *ActivoUpdateOne) ClearOrdenCompra() *ActivoUpdateOne {
	_u.mutation.ClearOrdenCompra()
	return _u
}

// SetCuentaContable sets the "cuenta_contable" field.
func (_u *ActivoUpdateOne) SetCuentaContable(v string) *ActivoUpdateOne {
	_u.mutation.SetCuentaContable(v)
	return _u
}

// SetNillableCuentaContable sets the "cuenta_contable" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableCuentaContable(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetCuentaContable(*v)
	}
	return _u
}

// ClearCuentaContable clears the value of the "cuenta_contable" field.
func (_u *ActivoUpdateOne) ClearCuentaContable() *ActivoUpdateOne {
	_u.mutation.ClearCuentaContable()
	return _u
}

// SetTipoCosto sets the "tipo_costo" field.
func (_u *ActivoUpdateOne) SetTipoCosto(v activo.TipoCosto) *ActivoUpdateOne {
	_u.mutation.SetTipoCosto(v)
	return _u
}

// SetNillableTipoCosto sets the "tipo_costo" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableTipoCosto(v *activo.TipoCosto) *ActivoUpdateOne {
	if v != nil {
		_u.SetTipoCosto(*v)
	}
	return _u
}

// ClearTipoCosto clears the value of the "tipo_costo" field.
func (_u *ActivoUpdateOne) ClearTipoCosto() *ActivoUpdateOne {
	_u.mutation.ClearTipoCosto()
	return _u
}

// SetCuotas sets the "cuotas" field.
func (_u *ActivoUpdateOne) SetCuotas(v int) *ActivoUpdateOne {
	_u.mutation.ResetCuotas()
	_u.mutation.SetCuotas(v)
	return _u
}

// SetNillableCuotas sets the "cuotas" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableCuotas(v *int) *ActivoUpdateOne {
	if v != nil {
		_u.SetCuotas(*v)
	}
	return _u
}

// AddCuotas adds value to the "cuotas" field.
func (_u *ActivoUpdateOne) AddCuotas(v int) *ActivoUpdateOne {
	_u.mutation.AddCuotas(v)
	return _u
}

// ClearCuotas clears the value of the "cuotas" field.
func (_u *ActivoUpdateOne) ClearCuotas() *ActivoUpdateOne {
	_u.mutation.ClearCuotas()
	return _u
}

// SetMoneda sets the "moneda" field.
func (_u *ActivoUpdateOne) SetMoneda(v activo.Moneda) *ActivoUpdateOne {
	_u.mutation.SetMoneda(v)
	return _u
}

// SetNillableMoneda sets the "moneda" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableMoneda(v *activo.Moneda) *ActivoUpdateOne {
	if v != nil {
		_u.SetMoneda(*v)
	}
	return _u
}

// ClearMoneda clears the value of the "moneda" field.
func (_u *ActivoUpdateOne) ClearMoneda() *ActivoUpdateOne {
	_u.mutation.ClearMoneda()
	return _u
}

// SetCosto sets the "costo" field.
func (_u *ActivoUpdateOne) SetCosto(v float64) *ActivoUpdateOne {
	_u.mutation.ResetCosto()
	_u.mutation.SetCosto(v)
	return _u
}

// SetNillableCosto sets the "costo" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableCosto(v *float64) *ActivoUpdateOne {
	if v != nil {
		_u.SetCosto(*v)
	}
	return _u
}

// AddCosto adds value to the "costo" field.
func (_u *ActivoUpdateOne) AddCosto(v float64) *ActivoUpdateOne {
	_u.mutation.AddCosto(v)
	return _u
}

// ClearCosto clears the value of the "costo" field.
func (_u *ActivoUpdateOne) ClearCosto() *ActivoUpdateOne {
	_u.mutation.ClearCosto()
	return _u
}

// SetProcesador sets the "procesador" field.
func (_u *ActivoUpdateOne) SetProcesador(v string) *ActivoUpdateOne {
	_u.mutation.SetProcesador(v)
	return _u
}

// SetNillableProcesador sets the "procesador" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableProcesador(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetProcesador(*v)
	}
	return _u
}

// ClearProcesador clears the value of the "procesador" field.
func (_u *ActivoUpdateOne) ClearProcesador() *ActivoUpdateOne {
	_u.mutation.ClearProcesador()
	return _u
}

// SetRAM sets the "ram" field.
func (_u *ActivoUpdateOne) SetRAM(v int) *ActivoUpdateOne {
	_u.mutation.ResetRAM()
	_u.mutation.SetRAM(v)
	return _u
}

// SetNillableRAM sets the "ram" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableRAM(v *int) *ActivoUpdateOne {
	if v != nil {
		_u.SetRAM(*v)
	}
	return _u
}

// AddRAM adds value to the "ram" field.
func (_u *ActivoUpdateOne) AddRAM(v int) *ActivoUpdateOne {
	_u.mutation.AddRAM(v)
	return _u
}

// ClearRAM clears the value of the "ram" field.
func (_u *ActivoUpdateOne) ClearRAM() *ActivoUpdateOne {
	_u.mutation.ClearRAM()
	return _u
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (_u *ActivoUpdateOne) SetAlmacenamiento(v string) *ActivoUpdateOne {
	_u.mutation.SetAlmacenamiento(v)
	return _u
}

// SetNillableAlmacenamiento sets the "almacenamiento" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableAlmacenamiento(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetAlmacenamiento(*v)
	}
	return _u
}

// ClearAlmacenamiento clears the value of the "almacenamiento" field.
func (_u *ActivoUpdateOne) ClearAlmacenamiento() *ActivoUpdateOne {
	_u.mutation.ClearAlmacenamiento()
	return _u
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (_u *ActivoUpdateOne) SetTarjetaGrafica(v string) *ActivoUpdateOne {
	_u.mutation.SetTarjetaGrafica(v)
	return _u
}

// SetNillableTarjetaGrafica sets the "tarjeta_grafica" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableTarjetaGrafica(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetTarjetaGrafica(*v)
	}
	return _u
}

// ClearTarjetaGrafica clears the value of the "tarjeta_grafica" field.
func (_u *ActivoUpdateOne) ClearTarjetaGrafica() *ActivoUpdateOne {
	_u.mutation.ClearTarjetaGrafica()
	return _u
}

// SetWifi sets the "wifi" field.
func (_u *ActivoUpdateOne) SetWifi(v bool) *ActivoUpdateOne {
	_u.mutation.SetWifi(v)
	return _u
}

// SetNillableWifi sets the "wifi" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableWifi(v *bool) *ActivoUpdateOne {
	if v != nil {
		_u.SetWifi(*v)
	}
	return _u
}

// ClearWifi clears the value of the "wifi" field.
func (_u *ActivoUpdateOne) ClearWifi() *ActivoUpdateOne {
	_u.mutation.ClearWifi()
	return _u
}

// SetEthernet sets the "ethernet" field.
func (_u *ActivoUpdateOne) SetEthernet(v bool) *ActivoUpdateOne {
	_u.mutation.SetEthernet(v)
	return _u
}

// SetNillableEthernet sets the "ethernet" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableEthernet(v *bool) *ActivoUpdateOne {
	if v != nil {
		_u.SetEthernet(*v)
	}
	return _u
}

// ClearEthernet clears the value of the "ethernet" field.
func (_u *ActivoUpdateOne) ClearEthernet() *ActivoUpdateOne {
	_u.mutation.ClearEthernet()
	return _u
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (_u *ActivoUpdateOne) SetPuertosEthernet(v string) *ActivoUpdateOne {
	_u.mutation.SetPuertosEthernet(v)
	return _u
}

// SetNillablePuertosEthernet sets the "puertos_ethernet" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillablePuertosEthernet(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetPuertosEthernet(*v)
	}
	return _u
}

// ClearPuertosEthernet clears the value of the "puertos_ethernet" field.
func (_u *ActivoUpdateOne) ClearPuertosEthernet() *ActivoUpdateOne {
	_u.mutation.ClearPuertosEthernet()
	return _u
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (_u *ActivoUpdateOne) SetPuertosSfp(v string) *ActivoUpdateOne {
	_u.mutation.SetPuertosSfp(v)
	return _u
}

// SetNillablePuertosSfp sets the "puertos_sfp" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillablePuertosSfp(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetPuertosSfp(*v)
	}
	return _u
}

// ClearPuertosSfp clears the value of the "puertos_sfp" field.
func (_u *ActivoUpdateOne) ClearPuertosSfp() *ActivoUpdateOne {
	_u.mutation.ClearPuertosSfp()
	return _u
}

// SetPuertoConsola sets the "puerto_consola" field.
func (_u *ActivoUpdateOne) SetPuertoConsola(v bool) *ActivoUpdateOne {
	_u.mutation.SetPuertoConsola(v)
	return _u
}

// SetNillablePuertoConsola sets the "puerto_consola" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillablePuertoConsola(v *bool) *ActivoUpdateOne {
	if v != nil {
		_u.SetPuertoConsola(*v)
	}
	return _u
}

// ClearPuertoConsola clears the value of the "puerto_consola" field.
func (_u *ActivoUpdateOne) ClearPuertoConsola() *ActivoUpdateOne {
	_u.mutation.ClearPuertoConsola()
	return _u
}

// SetPuertosPoe sets the "puertos_poe" field.
func (_u *ActivoUpdateOne) SetPuertosPoe(v string) *ActivoUpdateOne {
	_u.mutation.SetPuertosPoe(v)
	return _u
}

// SetNillablePuertosPoe sets the "puertos_poe" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillablePuertosPoe(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetPuertosPoe(*v)
	}
	return _u
}

// ClearPuertosPoe clears the value of the "puertos_poe" field.
func (_u *ActivoUpdateOne) ClearPuertosPoe() *ActivoUpdateOne {
	_u.mutation.ClearPuertosPoe()
	return _u
}

// SetAlimentacion sets the "alimentacion" field.
func (_u *ActivoUpdateOne) SetAlimentacion(v string) *ActivoUpdateOne {
	_u.mutation.SetAlimentacion(v)
	return _u
}

// SetNillableAlimentacion sets the "alimentacion" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableAlimentacion(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetAlimentacion(*v)
	}
	return _u
}

// ClearAlimentacion clears the value of the "alimentacion" field.
func (_u *ActivoUpdateOne) ClearAlimentacion() *ActivoUpdateOne {
	_u.mutation.ClearAlimentacion()
	return _u
}

// SetAdministrable sets the "administrable" field.
func (_u *ActivoUpdateOne) SetAdministrable(v bool) *ActivoUpdateOne {
	_u.mutation.SetAdministrable(v)
	return _u
}

// SetNillableAdministrable sets the "administrable" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableAdministrable(v *bool) *ActivoUpdateOne {
	if v != nil {
		_u.SetAdministrable(*v)
	}
	return _u
}

// ClearAdministrable clears the value of the "administrable" field.
func (_u *ActivoUpdateOne) ClearAdministrable() *ActivoUpdateOne {
	_u.mutation.ClearAdministrable()
	return _u
}

// SetTamano sets the "tamano" field.
func (_u *ActivoUpdateOne) SetTamano(v string) *ActivoUpdateOne {
	_u.mutation.SetTamano(v)
	return _u
}

// SetNillableTamano sets the "tamano" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableTamano(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetTamano(*v)
	}
	return _u
}

// ClearTamano clears the value of the "tamano" field.
func (_u *ActivoUpdateOne) ClearTamano() *ActivoUpdateOne {
	_u.mutation.ClearTamano()
	return _u
}

// SetColor sets the "color" field.
func (_u *ActivoUpdateOne) SetColor(v string) *ActivoUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableColor(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *ActivoUpdateOne) ClearColor() *ActivoUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetConectores sets the "conectores" field.
func (_u *ActivoUpdateOne) SetConectores(v string) *ActivoUpdateOne {
	_u.mutation.SetConectores(v)
	return _u
}

// SetNillableConectores sets the "conectores" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableConectores(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetConectores(*v)
	}
	return _u
}

// ClearConectores clears the value of the "conectores" field.
func (_u *ActivoUpdateOne) ClearConectores() *ActivoUpdateOne {
	_u.mutation.ClearConectores()
	return _u
}

// SetCables sets the "cables" field.
func (_u *ActivoUpdateOne) SetCables(v string) *ActivoUpdateOne {
	_u.mutation.SetCables(v)
	return _u
}

// SetNillableCables sets the "cables" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableCables(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetCables(*v)
	}
	return _u
}

// ClearCables clears the value of the "cables" field.
func (_u *ActivoUpdateOne) ClearCables() *ActivoUpdateOne {
	_u.mutation.ClearCables()
	return _u
}

// SetEstado sets the "estado" field.
func (_u *ActivoUpdateOne) SetEstado(v activo.Estado) *ActivoUpdateOne {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableEstado(v *activo.Estado) *ActivoUpdateOne {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetFechaBaja sets the "fecha_baja" field.
func (_u *ActivoUpdateOne) SetFechaBaja(v time.Time) *ActivoUpdateOne {
	_u.mutation.SetFechaBaja(v)
	return _u
}

// SetNillableFechaBaja sets the "fecha_baja" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableFechaBaja(v *time.Time) *ActivoUpdateOne {
	if v != nil {
		_u.SetFechaBaja(*v)
	}
	return _u
}

// ClearFechaBaja clears the value of the "fecha_baja" field.
func (_u *ActivoUpdateOne) ClearFechaBaja() *ActivoUpdateOne {
	_u.mutation.ClearFechaBaja()
	return _u
}

// SetMotivoBaja sets the "motivo_baja" field.
func (_u *ActivoUpdateOne) SetMotivoBaja(v string) *ActivoUpdateOne {
	_u.mutation.SetMotivoBaja(v)
	return _u
}

// SetNillableMotivoBaja sets the "motivo_baja" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableMotivoBaja(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetMotivoBaja(*v)
	}
	return _u
}

// ClearMotivoBaja clears the value of the "motivo_baja" field.
func (_u *ActivoUpdateOne) ClearMotivoBaja() *ActivoUpdateOne {
	_u.mutation.ClearMotivoBaja()
	return _u
}

// SetUsuarioBajaID sets the "usuario_baja_id" field.
func (_u *ActivoUpdateOne) SetUsuarioBajaID(v string) *ActivoUpdateOne {
	_u.mutation.SetUsuarioBajaID(v)
	return _u
}

// SetNillableUsuarioBajaID sets the "usuario_baja_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableUsuarioBajaID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetUsuarioBajaID(*v)
	}
	return _u
}

// ClearUsuarioBajaID clears the value of the "usuario_baja_id" field.
func (_u *ActivoUpdateOne) ClearUsuarioBajaID() *ActivoUpdateOne {
	_u.mutation.ClearUsuarioBajaID()
	return _u
}

// SetDocumentosBaja sets the "documentos_baja" field.
func (_u *ActivoUpdateOne) SetDocumentosBaja(v []string) *ActivoUpdateOne {
	_u.mutation.SetDocumentosBaja(v)
	return _u
}

// AppendDocumentosBaja appends value to the "documentos_baja" field.
func (_u *ActivoUpdateOne) AppendDocumentosBaja(v []string) *ActivoUpdateOne {
	_u.mutation.AppendDocumentosBaja(v)
	return _u
}

// ClearDocumentosBaja clears the value of the "documentos_baja" field.
func (_u *ActivoUpdateOne) ClearDocumentosBaja() *ActivoUpdateOne {
	_u.mutation.ClearDocumentosBaja()
	return _u
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_u *ActivoUpdateOne) SetAssignedToID(v string) *ActivoUpdateOne {
	_u.mutation.SetAssignedToID(v)
	return _u
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableAssignedToID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetAssignedToID(*v)
	}
	return _u
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (_u *ActivoUpdateOne) ClearAssignedToID() *ActivoUpdateOne {
	_u.mutation.ClearAssignedToID()
	return _u
}

// SetUltimoMantenimiento sets the "ultimo_mantenimiento" field.
func (_u *ActivoUpdateOne) SetUltimoMantenimiento(v time.Time) *ActivoUpdateOne {
	_u.mutation.SetUltimoMantenimiento(v)
	return _u
}

// SetNillableUltimoMantenimiento sets the "ultimo_mantenimiento" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableUltimoMantenimiento(v *time.Time) *ActivoUpdateOne {
	if v != nil {
		_u.SetUltimoMantenimiento(*v)
	}
	return _u
}

// ClearUltimoMantenimiento clears the value of the "ultimo_mantenimiento" field.
func (_u *ActivoUpdateOne) ClearUltimoMantenimiento() *ActivoUpdateOne {
	_u.mutation.ClearUltimoMantenimiento()
	return _u
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (_u *ActivoUpdateOne) SetProximoMantenimiento(v time.Time) *ActivoUpdateOne {
	_u.mutation.SetProximoMantenimiento(v)
	return _u
}

// SetNillableProximoMantenimiento sets the "proximo_mantenimiento" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableProximoMantenimiento(v *time.Time) *ActivoUpdateOne {
	if v != nil {
		_u.SetProximoMantenimiento(*v)
	}
	return _u
}

// ClearProximoMantenimiento clears the value of the "proximo_mantenimiento" field.
func (_u *ActivoUpdateOne) ClearProximoMantenimiento() *ActivoUpdateOne {
	_u.mutation.ClearProximoMantenimiento()
	return _u
}

// SetTecnicoMantenimientoID sets the "tecnico_mantenimiento_id" field.
func (_u *ActivoUpdateOne) SetTecnicoMantenimientoID(v string) *ActivoUpdateOne {
	_u.mutation.SetTecnicoMantenimientoID(v)
	return _u
}

// SetNillableTecnicoMantenimientoID sets the "tecnico_mantenimiento_id" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableTecnicoMantenimientoID(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetTecnicoMantenimientoID(*v)
	}
	return _u
}

// ClearTecnicoMantenimientoID clears the value of the "tecnico_mantenimiento_id" field.
func (_u *ActivoUpdateOne) ClearTecnicoMantenimientoID() *ActivoUpdateOne {
	_u.mutation.ClearTecnicoMantenimientoID()
	return _u
}

// SetUltimoMantenimientoHallazgos sets the "ultimo_mantenimiento_hallazgos" field.
func (_u *ActivoUpdateOne) SetUltimoMantenimientoHallazgos(v string) *ActivoUpdateOne {
	_u.mutation.SetUltimoMantenimientoHallazgos(v)
	return _u
}

// SetNillableUltimoMantenimientoHallazgos sets the "ultimo_mantenimiento_hallazgos" field if the given value is not nil.
func (_u *ActivoUpdateOne) SetNillableUltimoMantenimientoHallazgos(v *string) *ActivoUpdateOne {
	if v != nil {
		_u.SetUltimoMantenimientoHallazgos(*v)
	}
	return _u
}

// ClearUltimoMantenimientoHallazgos clears the value of the "ultimo_mantenimiento_hallazgos" field.
func (_u *ActivoUpdateOne) ClearUltimoMantenimientoHallazgos() *ActivoUpdateOne {
	_u.mutation.ClearUltimoMantenimientoHallazgos()
	return _u
}

// Mutation returns the ActivoMutation object of the builder.
func (_u *ActivoUpdateOne) Mutation() *ActivoMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivoUpdate builder.
func (_u *ActivoUpdateOne) Where(ps ...predicate.Activo) *ActivoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivoUpdateOne) Select(field string, fields ...string) *ActivoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activo entity.
func (_u *ActivoUpdateOne) Save(ctx context.Context) (*Activo, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivoUpdateOne) SaveX(ctx context.Context) *Activo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivoUpdateOne) check() error {
	if v, ok := _u.mutation.TipoActivoID(); ok {
		if err := activo.TipoActivoIDValidator(v); err != nil {
			return &ValidationError{Name: "tipo_activo_id", err: fmt.Errorf(`ent: validator failed for field "Activo.tipo_activo_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarcaID(); ok {
		if err := activo.MarcaIDValidator(v); err != nil {
			return &ValidationError{Name: "marca_id", err: fmt.Errorf(`ent: validator failed for field "Activo.marca_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModeloID(); ok {
		if err := activo.ModeloIDValidator(v); err != nil {
			return &ValidationError{Name: "modelo_id", err: fmt.Errorf(`ent: validator failed for field "Activo.modelo_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProveedorID(); ok {
		if err := activo.ProveedorIDValidator(v); err != nil {
			return &ValidationError{Name: "proveedor_id", err: fmt.Errorf(`ent: validator failed for field "Activo.proveedor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegionID(); ok {
		if err := activo.RegionIDValidator(v); err != nil {
			return &ValidationError{Name: "region_id", err: fmt.Errorf(`ent: validator failed for field "Activo.region_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FincaID(); ok {
		if err := activo.FincaIDValidator(v); err != nil {
			return &ValidationError{Name: "finca_id", err: fmt.Errorf(`ent: validator failed for field "Activo.finca_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DepartamentoID(); ok {
		if err := activo.DepartamentoIDValidator(v); err != nil {
			return &ValidationError{Name: "departamento_id", err: fmt.Errorf(`ent: validator failed for field "Activo.departamento_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := activo.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "Activo.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TipoCosto(); ok {
		if err := activo.TipoCostoValidator(v); err != nil {
			return &ValidationError{Name: "tipo_costo", err: fmt.Errorf(`ent: validator failed for field "Activo.tipo_costo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Moneda(); ok {
		if err := activo.MonedaValidator(v); err != nil {
			return &ValidationError{Name: "moneda", err: fmt.Errorf(`ent: validator failed for field "Activo.moneda": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := activo.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Activo.estado": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivoUpdateOne) sqlSave(ctx context.Context) (_node *Activo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activo.Table, activo.Columns, sqlgraph.NewFieldSpec(activo.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Activo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activo.FieldID)
		for _, f := range fields {
			if !activo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activo.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activo.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TipoActivoID(); ok {
		_spec.SetField(activo.FieldTipoActivoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarcaID(); ok {
		_spec.SetField(activo.FieldMarcaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModeloID(); ok {
		_spec.SetField(activo.FieldModeloID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProveedorID(); ok {
		_spec.SetField(activo.FieldProveedorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionID(); ok {
		_spec.SetField(activo.FieldRegionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FincaID(); ok {
		_spec.SetField(activo.FieldFincaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepartamentoID(); ok {
		_spec.SetField(activo.FieldDepartamentoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(activo.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FechaRegistro(); ok {
		_spec.SetField(activo.FieldFechaRegistro, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaFinGarantia(); ok {
		_spec.SetField(activo.FieldFechaFinGarantia, field.TypeTime, value)
	}
	if _u.mutation.FechaFinGarantiaCleared() {
		_spec.ClearField(activo.FieldFechaFinGarantia, field.TypeTime)
	}
	if value, ok := _u.mutation.Solicitante(); ok {
		_spec.SetField(activo.FieldSolicitante, field.TypeString, value)
	}
	if _u.mutation.SolicitanteCleared() {
		_spec.ClearField(activo.FieldSolicitante, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoElectronico(); ok {
		_spec.SetField(activo.FieldCorreoElectronico, field.TypeString, value)
	}
	if _u.mutation.CorreoElectronicoCleared() {
		_spec.ClearField(activo.FieldCorreoElectronico, field.TypeString)
	}
	if value, ok := _u.mutation.OrdenCompra(); ok {
		_spec.SetField(activo.FieldOrdenCompra, field.TypeString, value)
	}
	if _u.mutation.OrdenCompraCleared() {
		_spec.ClearField(activo.FieldOrdenCompra, field.TypeString)
	}
	if value, ok := _u.mutation.CuentaContable(); ok {
		_spec.SetField(activo.FieldCuentaContable, field.TypeString, value)
	}
	if _u.mutation.CuentaContableCleared() {
		_spec.ClearField(activo.FieldCuentaContable, field.TypeString)
	}
	if value, ok := _u.mutation.TipoCosto(); ok {
		_spec.SetField(activo.FieldTipoCosto, field.TypeEnum, value)
	}
	if _u.mutation.TipoCostoCleared() {
		_spec.ClearField(activo.FieldTipoCosto, field.TypeEnum)
	}
	if value, ok := _u.mutation.Cuotas(); ok {
		_spec.SetField(activo.FieldCuotas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCuotas(); ok {
		_spec.AddField(activo.FieldCuotas, field.TypeInt, value)
	}
	if _u.mutation.CuotasCleared() {
		_spec.ClearField(activo.FieldCuotas, field.TypeInt)
	}
	if value, ok := _u.mutation.Moneda(); ok {
		_spec.SetField(activo.FieldMoneda, field.TypeEnum, value)
	}
	if _u.mutation.MonedaCleared() {
		_spec.ClearField(activo.FieldMoneda, field.TypeEnum)
	}
	if value, ok := _u.mutation.Costo(); ok {
		_spec.SetField(activo.FieldCosto, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCosto(); ok {
		_spec.AddField(activo.FieldCosto, field.TypeFloat64, value)
	}
	if _u.mutation.CostoCleared() {
		_spec.ClearField(activo.FieldCosto, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Procesador(); ok {
		_spec.SetField(activo.FieldProcesador, field.TypeString, value)
	}
	if _u.mutation.ProcesadorCleared() {
		_spec.ClearField(activo.FieldProcesador, field.TypeString)
	}
	if value, ok := _u.mutation.RAM(); ok {
		_spec.SetField(activo.FieldRAM, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRAM(); ok {
		_spec.AddField(activo.FieldRAM, field.TypeInt, value)
	}
	if _u.mutation.RAMCleared() {
		_spec.ClearField(activo.FieldRAM, field.TypeInt)
	}
	if value, ok := _u.mutation.Almacenamiento(); ok {
		_spec.SetField(activo.FieldAlmacenamiento, field.TypeString, value)
	}
	if _u.mutation.AlmacenamientoCleared() {
		_spec.ClearField(activo.FieldAlmacenamiento, field.TypeString)
	}
	if value, ok := _u.mutation.TarjetaGrafica(); ok {
		_spec.SetField(activo.FieldTarjetaGrafica, field.TypeString, value)
	}
	if _u.mutation.TarjetaGraficaCleared() {
		_spec.ClearField(activo.FieldTarjetaGrafica, field.TypeString)
	}
	if value, ok := _u.mutation.Wifi(); ok {
		_spec.SetField(activo.FieldWifi, field.TypeBool, value)
	}
	if _u.mutation.WifiCleared() {
		_spec.ClearField(activo.FieldWifi, field.TypeBool)
	}
	if value, ok := _u.mutation.Ethernet(); ok {
		_spec.SetField(activo.FieldEthernet, field.TypeBool, value)
	}
	if _u.mutation.EthernetCleared() {
		_spec.ClearField(activo.FieldEthernet, field.TypeBool)
	}
	if value, ok := _u.mutation.PuertosEthernet(); ok {
		_spec.SetField(activo.FieldPuertosEthernet, field.TypeString, value)
	}
	if _u.mutation.PuertosEthernetCleared() {
		_spec.ClearField(activo.FieldPuertosEthernet, field.TypeString)
	}
	if value, ok := _u.mutation.PuertosSfp(); ok {
		_spec.SetField(activo.FieldPuertosSfp, field.TypeString, value)
	}
	if _u.mutation.PuertosSfpCleared() {
		_spec.ClearField(activo.FieldPuertosSfp, field.TypeString)
	}
	if value, ok := _u.mutation.PuertoConsola(); ok {
		_spec.SetField(activo.FieldPuertoConsola, field.TypeBool, value)
	}
	if _u.mutation.PuertoConsolaCleared() {
		_spec.ClearField(activo.FieldPuertoConsola, field.TypeBool)
	}
	if value, ok := _u.mutation.PuertosPoe(); ok {
		_spec.SetField(activo.FieldPuertosPoe, field.TypeString, value)
	}
	if _u.mutation.PuertosPoeCleared() {
		_spec.ClearField(activo.FieldPuertosPoe, field.TypeString)
	}
	if value, ok := _u.mutation.Alimentacion(); ok {
		_spec.SetField(activo.FieldAlimentacion, field.TypeString, value)
	}
	if _u.mutation.AlimentacionCleared() {
		_spec.ClearField(activo.FieldAlimentacion, field.TypeString)
	}
	if value, ok := _u.mutation.Administrable(); ok {
		_spec.SetField(activo.FieldAdministrable, field.TypeBool, value)
	}
	if _u.mutation.AdministrableCleared() {
		_spec.ClearField(activo.FieldAdministrable, field.TypeBool)
	}
	if value, ok := _u.mutation.Tamano(); ok {
		_spec.SetField(activo.FieldTamano, field.TypeString, value)
	}
	if _u.mutation.TamanoCleared() {
		_spec.ClearField(activo.FieldTamano, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(activo.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(activo.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Conectores(); ok {
		_spec.SetField(activo.FieldConectores, field.TypeString, value)
	}
	if _u.mutation.ConectoresCleared() {
		_spec.ClearField(activo.FieldConectores, field.TypeString)
	}
	if value, ok := _u.mutation.Cables(); ok {
		_spec.SetField(activo.FieldCables, field.TypeString, value)
	}
	if _u.mutation.CablesCleared() {
		_spec.ClearField(activo.FieldCables, field.TypeString)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(activo.FieldEstado, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FechaBaja(); ok {
		_spec.SetField(activo.FieldFechaBaja, field.TypeTime, value)
	}
	if _u.mutation.FechaBajaCleared() {
		_spec.ClearField(activo.FieldFechaBaja, field.TypeTime)
	}
	if value, ok := _u.mutation.MotivoBaja(); ok {
		_spec.SetField(activo.FieldMotivoBaja, field.TypeString, value)
	}
	if _u.mutation.MotivoBajaCleared() {
		_spec.ClearField(activo.FieldMotivoBaja, field.TypeString)
	}
	if value, ok := _u.mutation.UsuarioBajaID(); ok {
		_spec.SetField(activo.FieldUsuarioBajaID, field.TypeString, value)
	}
	if _u.mutation.UsuarioBajaIDCleared() {
		_spec.ClearField(activo.FieldUsuarioBajaID, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentosBaja(); ok {
		_spec.SetField(activo.FieldDocumentosBaja, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocumentosBaja(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, activo.FieldDocumentosBaja, value)
		})
	}
	if _u.mutation.DocumentosBajaCleared() {
		_spec.ClearField(activo.FieldDocumentosBaja, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignedToID(); ok {
		_spec.SetField(activo.FieldAssignedToID, field.TypeString, value)
	}
	if _u.mutation.AssignedToIDCleared() {
		_spec.ClearField(activo.FieldAssignedToID, field.TypeString)
	}
	if value, ok := _u.mutation.UltimoMantenimiento(); ok {
		_spec.SetField(activo.FieldUltimoMantenimiento, field.TypeTime, value)
	}
	if _u.mutation.UltimoMantenimientoCleared() {
		_spec.ClearField(activo.FieldUltimoMantenimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.ProximoMantenimiento(); ok {
		_spec.SetField(activo.FieldProximoMantenimiento, field.TypeTime, value)
	}
	if _u.mutation.ProximoMantenimientoCleared() {
		_spec.ClearField(activo.FieldProximoMantenimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.TecnicoMantenimientoID(); ok {
		_spec.SetField(activo.FieldTecnicoMantenimientoID, field.TypeString, value)
	}
	if _u.mutation.TecnicoMantenimientoIDCleared() {
		_spec.ClearField(activo.FieldTecnicoMantenimientoID, field.TypeString)
	}
	if value, ok := _u.mutation.UltimoMantenimientoHallazgos(); ok {
		_spec.SetField(activo.FieldUltimoMantenimientoHallazgos, field.TypeString, value)
	}
	if _u.mutation.UltimoMantenimientoHallazgosCleared() {
		_spec.ClearField(activo.FieldUltimoMantenimientoHallazgos, field.TypeString)
	}
	_node = &Activo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
