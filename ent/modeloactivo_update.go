// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/modeloactivo"
	"fincatech.io/itam/ent/predicate"
)

// ModeloActivoUpdate is the builder for updating ModeloActivo entities.
type ModeloActivoUpdate struct {
	config
	hooks    []Hook
	mutation *ModeloActivoMutation
}

// Where appends a list predicates to the ModeloActivoUpdate builder.
func (_u *ModeloActivoUpdate) Where(ps ...predicate.ModeloActivo) *ModeloActivoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModeloActivoUpdate) SetUpdatedAt(v time.Time) *ModeloActivoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ModeloActivoUpdate) SetName(v string) *ModeloActivoUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableName(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMarcaID sets the "marca_id" field.
func (_u *ModeloActivoUpdate) SetMarcaID(v string) *ModeloActivoUpdate {
	_u.mutation.SetMarcaID(v)
	return _u
}

// SetNillableMarcaID sets the "marca_id" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableMarcaID(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetMarcaID(*v)
	}
	return _u
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (_u *ModeloActivoUpdate) SetTipoActivoID(v string) *ModeloActivoUpdate {
	_u.mutation.SetTipoActivoID(v)
	return _u
}

// SetNillableTipoActivoID sets the "tipo_activo_id" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableTipoActivoID(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetTipoActivoID(*v)
	}
	return _u
}

// ClearTipoActivoID clears the value of the "tipo_activo_id" field.
func (_u *ModeloActivoUpdate) ClearTipoActivoID() *ModeloActivoUpdate {
	_u.mutation.ClearTipoActivoID()
	return _u
}

// SetProcesador sets the "procesador" field.
func (_u *ModeloActivoUpdate) SetProcesador(v string) *ModeloActivoUpdate {
	_u.mutation.SetProcesador(v)
	return _u
}

// SetNillableProcesador sets the "procesador" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableProcesador(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetProcesador(*v)
	}
	return _u
}

// ClearProcesador clears the value of the "procesador" field.
func (_u *ModeloActivoUpdate) ClearProcesador() *ModeloActivoUpdate {
	_u.mutation.ClearProcesador()
	return _u
}

// SetRAM sets the "ram" field.
func (_u *ModeloActivoUpdate) SetRAM(v int) *ModeloActivoUpdate {
	_u.mutation.ResetRAM()
	_u.mutation.SetRAM(v)
	return _u
}

// SetNillableRAM sets the "ram" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableRAM(v *int) *ModeloActivoUpdate {
	if v != nil {
		_u.SetRAM(*v)
	}
	return _u
}

// AddRAM adds value to the "ram" field.
func (_u *ModeloActivoUpdate) AddRAM(v int) *ModeloActivoUpdate {
	_u.mutation.AddRAM(v)
	return _u
}

// ClearRAM clears the value of the "ram" field.
func (_u *ModeloActivoUpdate) ClearRAM() *ModeloActivoUpdate {
	_u.mutation.ClearRAM()
	return _u
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (_u *ModeloActivoUpdate) SetAlmacenamiento(v string) *ModeloActivoUpdate {
	_u.mutation.SetAlmacenamiento(v)
	return _u
}

// SetNillableAlmacenamiento sets the "almacenamiento" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableAlmacenamiento(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetAlmacenamiento(*v)
	}
	return _u
}

// ClearAlmacenamiento clears the value of the "almacenamiento" field.
func (_u *ModeloActivoUpdate) ClearAlmacenamiento() *ModeloActivoUpdate {
	_u.mutation.ClearAlmacenamiento()
	return _u
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (_u *ModeloActivoUpdate) SetTarjetaGrafica(v string) *ModeloActivoUpdate {
	_u.mutation.SetTarjetaGrafica(v)
	return _u
}

// SetNillableTarjetaGrafica sets the "tarjeta_grafica" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableTarjetaGrafica(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetTarjetaGrafica(*v)
	}
	return _u
}

// ClearTarjetaGrafica clears the value of the "tarjeta_grafica" field.
func (_u *ModeloActivoUpdate) ClearTarjetaGrafica() *ModeloActivoUpdate {
	_u.mutation.ClearTarjetaGrafica()
	return _u
}

// SetWifi sets the "wifi" field.
func (_u *ModeloActivoUpdate) SetWifi(v bool) *ModeloActivoUpdate {
	_u.mutation.SetWifi(v)
	return _u
}

// SetNillableWifi sets the "wifi" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableWifi(v *bool) *ModeloActivoUpdate {
	if v != nil {
		_u.SetWifi(*v)
	}
	return _u
}

// SetEthernet sets the "ethernet" field.
func (_u *ModeloActivoUpdate) SetEthernet(v bool) *ModeloActivoUpdate {
	_u.mutation.SetEthernet(v)
	return _u
}

// SetNillableEthernet sets the "ethernet" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableEthernet(v *bool) *ModeloActivoUpdate {
	if v != nil {
		_u.SetEthernet(*v)
	}
	return _u
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (_u *ModeloActivoUpdate) SetPuertosEthernet(v string) *ModeloActivoUpdate {
	_u.mutation.SetPuertosEthernet(v)
	return _u
}

// SetNillablePuertosEthernet sets the "puertos_ethernet" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillablePuertosEthernet(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetPuertosEthernet(*v)
	}
	return _u
}

// ClearPuertosEthernet clears the value of the "puertos_ethernet" field.
func (_u *ModeloActivoUpdate) ClearPuertosEthernet() *ModeloActivoUpdate {
	_u.mutation.ClearPuertosEthernet()
	return _u
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (_u *ModeloActivoUpdate) SetPuertosSfp(v string) *ModeloActivoUpdate {
	_u.mutation.SetPuertosSfp(v)
	return _u
}

// SetNillablePuertosSfp sets the "puertos_sfp" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillablePuertosSfp(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetPuertosSfp(*v)
	}
	return _u
}

// ClearPuertosSfp clears the value of the "puertos_sfp" field.
func (_u *ModeloActivoUpdate) ClearPuertosSfp() *ModeloActivoUpdate {
	_u.mutation.ClearPuertosSfp()
	return _u
}

// SetPuertoConsola sets the "puerto_consola" field.
func (_u *ModeloActivoUpdate) SetPuertoConsola(v bool) *ModeloActivoUpdate {
	_u.mutation.SetPuertoConsola(v)
	return _u
}

// SetNillablePuertoConsola sets the "puerto_consola" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillablePuertoConsola(v *bool) *ModeloActivoUpdate {
	if v != nil {
		_u.SetPuertoConsola(*v)
	}
	return _u
}

// SetPuertosPoe sets the "puertos_poe" field.
func (_u *ModeloActivoUpdate) SetPuertosPoe(v string) *ModeloActivoUpdate {
	_u.mutation.SetPuertosPoe(v)
	return _u
}

// SetNillablePuertosPoe sets the "puertos_poe" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillablePuertosPoe(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetPuertosPoe(*v)
	}
	return _u
}

// ClearPuertosPoe clears the value of the "puertos_poe" field.
func (_u *ModeloActivoUpdate) ClearPuertosPoe() *ModeloActivoUpdate {
	_u.mutation.ClearPuertosPoe()
	return _u
}

// SetAlimentacion sets the "alimentacion" field.
func (_u *ModeloActivoUpdate) SetAlimentacion(v string) *ModeloActivoUpdate {
	_u.mutation.SetAlimentacion(v)
	return _u
}

// SetNillableAlimentacion sets the "alimentacion" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableAlimentacion(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetAlimentacion(*v)
	}
	return _u
}

// ClearAlimentacion clears the value of the "alimentacion" field.
func (_u *ModeloActivoUpdate) ClearAlimentacion() *ModeloActivoUpdate {
	_u.mutation.ClearAlimentacion()
	return _u
}

// SetAdministrable sets the "administrable" field.
func (_u *ModeloActivoUpdate) SetAdministrable(v bool) *ModeloActivoUpdate {
	_u.mutation.SetAdministrable(v)
	return _u
}

// SetNillableAdministrable sets the "administrable" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableAdministrable(v *bool) *ModeloActivoUpdate {
	if v != nil {
		_u.SetAdministrable(*v)
	}
	return _u
}

// SetTamano sets the "tamano" field.
func (_u *ModeloActivoUpdate) SetTamano(v string) *ModeloActivoUpdate {
	_u.mutation.SetTamano(v)
	return _u
}

// SetNillableTamano sets the "tamano" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableTamano(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetTamano(*v)
	}
	return _u
}

// ClearTamano clears the value of the "tamano" field.
func (_u *ModeloActivoUpdate) ClearTamano() *ModeloActivoUpdate {
	_u.mutation.ClearTamano()
	return _u
}

// SetColor sets the "color" field.
func (_u *ModeloActivoUpdate) SetColor(v string) *ModeloActivoUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableColor(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *ModeloActivoUpdate) ClearColor() *ModeloActivoUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetConectores sets the "conectores" field.
func (_u *ModeloActivoUpdate) SetConectores(v string) *ModeloActivoUpdate {
	_u.mutation.SetConectores(v)
	return _u
}

// SetNillableConectores sets the "conectores" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableConectores(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetConectores(*v)
	}
	return _u
}

// ClearConectores clears the value of the "conectores" field.
func (_u *ModeloActivoUpdate) ClearConectores() *ModeloActivoUpdate {
	_u.mutation.ClearConectores()
	return _u
}

// SetCables sets the "cables" field.
func (_u *ModeloActivoUpdate) SetCables(v string) *ModeloActivoUpdate {
	_u.mutation.SetCables(v)
	return _u
}

// SetNillableCables sets the "cables" field if the given value is not nil.
func (_u *ModeloActivoUpdate) SetNillableCables(v *string) *ModeloActivoUpdate {
	if v != nil {
		_u.SetCables(*v)
	}
	return _u
}

// ClearCables clears the value of the "cables" field.
func (_u *ModeloActivoUpdate) ClearCables() *ModeloActivoUpdate {
	_u.mutation.ClearCables()
	return _u
}

// Mutation returns the ModeloActivoMutation object of the builder.
func (_u *ModeloActivoUpdate) Mutation() *ModeloActivoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModeloActivoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModeloActivoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModeloActivoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModeloActivoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModeloActivoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modeloactivo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModeloActivoUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := modeloactivo.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ModeloActivo.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarcaID(); ok {
		if err := modeloactivo.MarcaIDValidator(v); err != nil {
			return &ValidationError{Name: "marca_id", err: fmt.Errorf(`ent: validator failed for field "ModeloActivo.marca_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModeloActivoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modeloactivo.Table, modeloactivo.Columns, sqlgraph.NewFieldSpec(modeloactivo.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modeloactivo.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(modeloactivo.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarcaID(); ok {
		_spec.SetField(modeloactivo.FieldMarcaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoActivoID(); ok {
		_spec.SetField(modeloactivo.FieldTipoActivoID, field.TypeString, value)
	}
	if _u.mutation.TipoActivoIDCleared() {
		_spec.ClearField(modeloactivo.FieldTipoActivoID, field.TypeString)
	}
	if value, ok := _u.mutation.Procesador(); ok {
		_spec.SetField(modeloactivo.FieldProcesador, field.TypeString, value)
	}
	if _u.mutation.ProcesadorCleared() {
		_spec.ClearField(modeloactivo.FieldProcesador, field.TypeString)
	}
	if value, ok := _u.mutation.RAM(); ok {
		_spec.SetField(modeloactivo.FieldRAM, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRAM(); ok {
		_spec.AddField(modeloactivo.FieldRAM, field.TypeInt, value)
	}
	if _u.mutation.RAMCleared() {
		_spec.ClearField(modeloactivo.FieldRAM, field.TypeInt)
	}
	if value, ok := _u.mutation.Almacenamiento(); ok {
		_spec.SetField(modeloactivo.FieldAlmacenamiento, field.TypeString, value)
	}
	if _u.mutation.AlmacenamientoCleared() {
		_spec.ClearField(modeloactivo.FieldAlmacenamiento, field.TypeString)
	}
	if value, ok := _u.mutation.TarjetaGrafica(); ok {
		_spec.SetField(modeloactivo.FieldTarjetaGrafica, field.TypeString, value)
	}
	if _u.mutation.TarjetaGraficaCleared() {
		_spec.ClearField(modeloactivo.FieldTarjetaGrafica, field.TypeString)
	}
	if value, ok := _u.mutation.Wifi(); ok {
		_spec.SetField(modeloactivo.FieldWifi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ethernet(); ok {
		_spec.SetField(modeloactivo.FieldEthernet, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PuertosEthernet(); ok {
		_spec.SetField(modeloactivo.FieldPuertosEthernet, field.TypeString, value)
	}
	if _u.mutation.PuertosEthernetCleared() {
		_spec.ClearField(modeloactivo.FieldPuertosEthernet, field.TypeString)
	}
	if value, ok := _u.mutation.PuertosSfp(); ok {
		_spec.SetField(modeloactivo.FieldPuertosSfp, field.TypeString, value)
	}
	if _u.mutation.PuertosSfpCleared() {
		_spec.ClearField(modeloactivo.FieldPuertosSfp, field.TypeString)
	}
	if value, ok := _u.mutation.PuertoConsola(); ok {
		_spec.SetField(modeloactivo.FieldPuertoConsola, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PuertosPoe(); ok {
		_spec.SetField(modeloactivo.FieldPuertosPoe, field.TypeString, value)
	}
	if _u.mutation.PuertosPoeCleared() {
		_spec.ClearField(modeloactivo.FieldPuertosPoe, field.TypeString)
	}
	if value, ok := _u.mutation.Alimentacion(); ok {
		_spec.SetField(modeloactivo.FieldAlimentacion, field.TypeString, value)
	}
	if _u.mutation.AlimentacionCleared() {
		_spec.ClearField(modeloactivo.FieldAlimentacion, field.TypeString)
	}
	if value, ok := _u.mutation.Administrable(); ok {
		_spec.SetField(modeloactivo.FieldAdministrable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tamano(); ok {
		_spec.SetField(modeloactivo.FieldTamano, field.TypeString, value)
	}
	if _u.mutation.TamanoCleared() {
		_spec.ClearField(modeloactivo.FieldTamano, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(modeloactivo.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(modeloactivo.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Conectores(); ok {
		_spec.SetField(modeloactivo.FieldConectores, field.TypeString, value)
	}
	if _u.mutation.ConectoresCleared() {
		_spec.ClearField(modeloactivo.FieldConectores, field.TypeString)
	}
	if value, ok := _u.mutation.Cables(); ok {
		_spec.SetField(modeloactivo.FieldCables, field.TypeString, value)
	}
	if _u.mutation.CablesCleared() {
		_spec.ClearField(modeloactivo.FieldCables, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeloactivo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModeloActivoUpdateOne is the builder for updating a single ModeloActivo entity.
type ModeloActivoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModeloActivoMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModeloActivoUpdateOne) SetUpdatedAt(v time.Time) *ModeloActivoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ModeloActivoUpdateOne) SetName(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableName(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMarcaID sets the "marca_id" field.
func (_u *ModeloActivoUpdateOne) SetMarcaID(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetMarcaID(v)
	return _u
}

// SetNillableMarcaID sets the "marca_id" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableMarcaID(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetMarcaID(*v)
	}
	return _u
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (_u *ModeloActivoUpdateOne) SetTipoActivoID(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetTipoActivoID(v)
	return _u
}

// SetNillableTipoActivoID sets the "tipo_activo_id" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableTipoActivoID(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetTipoActivoID(*v)
	}
	return _u
}

// ClearTipoActivoID clears the value of the "tipo_activo_id" field.
func (_u *ModeloActivoUpdateOne) ClearTipoActivoID() *ModeloActivoUpdateOne {
	_u.mutation.ClearTipoActivoID()
	return _u
}

// SetProcesador sets the "procesador" field.
func (_u *ModeloActivoUpdateOne) SetProcesador(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetProcesador(v)
	return _u
}

// SetNillableProcesador sets the "procesador" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableProcesador(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetProcesador(*v)
	}
	return _u
}

// ClearProcesador clears the value of the "procesador" field.
func (_u *ModeloActivoUpdateOne) ClearProcesador() *ModeloActivoUpdateOne {
	_u.mutation.ClearProcesador()
	return _u
}

// SetRAM sets the "ram" field.
func (_u *ModeloActivoUpdateOne) SetRAM(v int) *ModeloActivoUpdateOne {
	_u.mutation.ResetRAM()
	_u.mutation.SetRAM(v)
	return _u
}

// SetNillableRAM sets the "ram" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableRAM(v *int) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetRAM(*v)
	}
	return _u
}

// AddRAM adds value to the "ram" field.
func (_u *ModeloActivoUpdateOne) AddRAM(v int) *ModeloActivoUpdateOne {
	_u.mutation.AddRAM(v)
	return _u
}

// ClearRAM clears the value of the "ram" field.
func (_u *ModeloActivoUpdateOne) ClearRAM() *ModeloActivoUpdateOne {
	_u.mutation.ClearRAM()
	return _u
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (_u *ModeloActivoUpdateOne) SetAlmacenamiento(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetAlmacenamiento(v)
	return _u
}

// SetNillableAlmacenamiento sets the "almacenamiento" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableAlmacenamiento(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetAlmacenamiento(*v)
	}
	return _u
}

// ClearAlmacenamiento clears the value of the "almacenamiento" field.
func (_u *ModeloActivoUpdateOne) ClearAlmacenamiento() *ModeloActivoUpdateOne {
	_u.mutation.ClearAlmacenamiento()
	return _u
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (_u *ModeloActivoUpdateOne) SetTarjetaGrafica(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetTarjetaGrafica(v)
	return _u
}

// SetNillableTarjetaGrafica sets the "tarjeta_grafica" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableTarjetaGrafica(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetTarjetaGrafica(*v)
	}
	return _u
}

// ClearTarjetaGrafica clears the value of the "tarjeta_grafica" field.
func (_u *ModeloActivoUpdateOne) ClearTarjetaGrafica() *ModeloActivoUpdateOne {
	_u.mutation.ClearTarjetaGrafica()
	return _u
}

// SetWifi sets the "wifi" field.
func (_u *ModeloActivoUpdateOne) SetWifi(v bool) *ModeloActivoUpdateOne {
	_u.mutation.SetWifi(v)
	return _u
}

// SetNillableWifi sets the "wifi" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableWifi(v *bool) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetWifi(*v)
	}
	return _u
}

// SetEthernet sets the "ethernet" field.
func (_u *ModeloActivoUpdateOne) SetEthernet(v bool) *ModeloActivoUpdateOne {
	_u.mutation.SetEthernet(v)
	return _u
}

// SetNillableEthernet sets the "ethernet" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableEthernet(v *bool) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetEthernet(*v)
	}
	return _u
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (_u *ModeloActivoUpdateOne) SetPuertosEthernet(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetPuertosEthernet(v)
	return _u
}

// SetNillablePuertosEthernet sets the "puertos_ethernet" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillablePuertosEthernet(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetPuertosEthernet(*v)
	}
	return _u
}

// ClearPuertosEthernet clears the value of the "puertos_ethernet" field.
func (_u *ModeloActivoUpdateOne) ClearPuertosEthernet() *ModeloActivoUpdateOne {
	_u.mutation.ClearPuertosEthernet()
	return _u
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (_u *ModeloActivoUpdateOne) SetPuertosSfp(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetPuertosSfp(v)
	return _u
}

// SetNillablePuertosSfp sets the "puertos_sfp" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillablePuertosSfp(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetPuertosSfp(*v)
	}
	return _u
}

// ClearPuertosSfp clears the value of the "puertos_sfp" field.
func (_u *ModeloActivoUpdateOne) ClearPuertosSfp() *ModeloActivoUpdateOne {
	_u.mutation.ClearPuertosSfp()
	return _u
}

// SetPuertoConsola sets the "puerto_consola" field.
func (_u *ModeloActivoUpdateOne) SetPuertoConsola(v bool) *ModeloActivoUpdateOne {
	_u.mutation.SetPuertoConsola(v)
	return _u
}

// SetNillablePuertoConsola sets the "puerto_consola" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillablePuertoConsola(v *bool) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetPuertoConsola(*v)
	}
	return _u
}

// SetPuertosPoe sets the "puertos_poe" field.
func (_u *ModeloActivoUpdateOne) SetPuertosPoe(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetPuertosPoe(v)
	return _u
}

// SetNillablePuertosPoe sets the "puertos_poe" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillablePuertosPoe(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetPuertosPoe(*v)
	}
	return _u
}

// ClearPuertosPoe clears the value of the "puertos_poe" field.
func (_u *ModeloActivoUpdateOne) ClearPuertosPoe() *ModeloActivoUpdateOne {
	_u.mutation.ClearPuertosPoe()
	return _u
}

// SetAlimentacion sets the "alimentacion" field.
func (_u *ModeloActivoUpdateOne) SetAlimentacion(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetAlimentacion(v)
	return _u
}

// SetNillableAlimentacion sets the "alimentacion" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableAlimentacion(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetAlimentacion(*v)
	}
	return _u
}

// ClearAlimentacion clears the value of the "alimentacion" field.
func (_u *ModeloActivoUpdateOne) ClearAlimentacion() *ModeloActivoUpdateOne {
	_u.mutation.ClearAlimentacion()
	return _u
}

// SetAdministrable sets the "administrable" field.
func (_u *ModeloActivoUpdateOne) SetAdministrable(v bool) *ModeloActivoUpdateOne {
	_u.mutation.SetAdministrable(v)
	return _u
}

// SetNillableAdministrable sets the "administrable" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableAdministrable(v *bool) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetAdministrable(*v)
	}
	return _u
}

// SetTamano sets the "tamano" field.
func (_u *ModeloActivoUpdateOne) SetTamano(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetTamano(v)
	return _u
}

// SetNillableTamano sets the "tamano" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableTamano(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetTamano(*v)
	}
	return _u
}

// ClearTamano clears the value of the "tamano" field.
func (_u *ModeloActivoUpdateOne) ClearTamano() *ModeloActivoUpdateOne {
	_u.mutation.ClearTamano()
	return _u
}

// SetColor sets the "color" field.
func (_u *ModeloActivoUpdateOne) SetColor(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableColor(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *ModeloActivoUpdateOne) ClearColor() *ModeloActivoUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetConectores sets the "conectores" field.
func (_u *ModeloActivoUpdateOne) SetConectores(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetConectores(v)
	return _u
}

// SetNillableConectores sets the "conectores" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableConectores(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetConectores(*v)
	}
	return _u
}

// ClearConectores clears the value of the "conectores" field.
func (_u *ModeloActivoUpdateOne) ClearConectores() *ModeloActivoUpdateOne {
	_u.mutation.ClearConectores()
	return _u
}

// SetCables sets the "cables" field.
func (_u *ModeloActivoUpdateOne) SetCables(v string) *ModeloActivoUpdateOne {
	_u.mutation.SetCables(v)
	return _u
}

// SetNillableCables sets the "cables" field if the given value is not nil.
func (_u *ModeloActivoUpdateOne) SetNillableCables(v *string) *ModeloActivoUpdateOne {
	if v != nil {
		_u.SetCables(*v)
	}
	return _u
}

// ClearCables clears the value of the "cables" field.
func (_u *ModeloActivoUpdateOne) ClearCables() *ModeloActivoUpdateOne {
	_u.mutation.ClearCables()
	return _u
}

// Mutation returns the ModeloActivoMutation object of the builder.
func (_u *ModeloActivoUpdateOne) Mutation() *ModeloActivoMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModeloActivoUpdate builder.
func (_u *ModeloActivoUpdateOne) Where(ps ...predicate.ModeloActivo) *ModeloActivoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModeloActivoUpdateOne) Select(field string, fields ...string) *ModeloActivoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModeloActivo entity.
func (_u *ModeloActivoUpdateOne) Save(ctx context.Context) (*ModeloActivo, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModeloActivoUpdateOne) SaveX(ctx context.Context) *ModeloActivo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModeloActivoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModeloActivoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModeloActivoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modeloactivo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModeloActivoUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := modeloactivo.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ModeloActivo.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MarcaID(); ok {
		if err := modeloactivo.MarcaIDValidator(v); err != nil {
			return &ValidationError{Name: "marca_id", err: fmt.Errorf(`ent: validator failed for field "ModeloActivo.marca_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModeloActivoUpdateOne) sqlSave(ctx context.Context) (_node *ModeloActivo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modeloactivo.Table, modeloactivo.Columns, sqlgraph.NewFieldSpec(modeloactivo.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModeloActivo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modeloactivo.FieldID)
		for _, f := range fields {
			if !modeloactivo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modeloactivo.FieldID {
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
		_spec.SetField(modeloactivo.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(modeloactivo.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarcaID(); ok {
		_spec.SetField(modeloactivo.FieldMarcaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TipoActivoID(); ok {
		_spec.SetField(modeloactivo.FieldTipoActivoID, field.TypeString, value)
	}
	if _u.mutation.TipoActivoIDCleared() {
		_spec.ClearField(modeloactivo.FieldTipoActivoID, field.TypeString)
	}
	if value, ok := _u.mutation.Procesador(); ok {
		_spec.SetField(modeloactivo.FieldProcesador, field.TypeString, value)
	}
	if _u.mutation.ProcesadorCleared() {
		_spec.ClearField(modeloactivo.FieldProcesador, field.TypeString)
	}
	if value, ok := _u.mutation.RAM(); ok {
		_spec.SetField(modeloactivo.FieldRAM, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRAM(); ok {
		_spec.AddField(modeloactivo.FieldRAM, field.TypeInt, value)
	}
	if _u.mutation.RAMCleared() {
		_spec.ClearField(modeloactivo.FieldRAM, field.TypeInt)
	}
	if value, ok := _u.mutation.Almacenamiento(); ok {
		_spec.SetField(modeloactivo.FieldAlmacenamiento, field.TypeString, value)
	}
	if _u.mutation.AlmacenamientoCleared() {
		_spec.ClearField(modeloactivo.FieldAlmacenamiento, field.TypeString)
	}
	if value, ok := _u.mutation.TarjetaGrafica(); ok {
		_spec.SetField(modeloactivo.FieldTarjetaGrafica, field.TypeString, value)
	}
	if _u.mutation.TarjetaGraficaCleared() {
		_spec.ClearField(modeloactivo.FieldTarjetaGrafica, field.TypeString)
	}
	if value, ok := _u.mutation.Wifi(); ok {
		_spec.SetField(modeloactivo.FieldWifi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ethernet(); ok {
		_spec.SetField(modeloactivo.FieldEthernet, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PuertosEthernet(); ok {
		_spec.SetField(modeloactivo.FieldPuertosEthernet, field.TypeString, value)
	}
	if _u.mutation.PuertosEthernetCleared() {
		_spec.ClearField(modeloactivo.FieldPuertosEthernet, field.TypeString)
	}
	if value, ok := _u.mutation.PuertosSfp(); ok {
		_spec.SetField(modeloactivo.FieldPuertosSfp, field.TypeString, value)
	}
	if _u.mutation.PuertosSfpCleared() {
		_spec.ClearField(modeloactivo.FieldPuertosSfp, field.TypeString)
	}
	if value, ok := _u.mutation.PuertoConsola(); ok {
		_spec.SetField(modeloactivo.FieldPuertoConsola, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PuertosPoe(); ok {
		_spec.SetField(modeloactivo.FieldPuertosPoe, field.TypeString, value)
	}
	if _u.mutation.PuertosPoeCleared() {
		_spec.ClearField(modeloactivo.FieldPuertosPoe, field.TypeString)
	}
	if value, ok := _u.mutation.Alimentacion(); ok {
		_spec.SetField(modeloactivo.FieldAlimentacion, field.TypeString, value)
	}
	if _u.mutation.AlimentacionCleared() {
		_spec.ClearField(modeloactivo.FieldAlimentacion, field.TypeString)
	}
	if value, ok := _u.mutation.Administrable(); ok {
		_spec.SetField(modeloactivo.FieldAdministrable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tamano(); ok {
		_spec.SetField(modeloactivo.FieldTamano, field.TypeString, value)
	}
	if _u.mutation.TamanoCleared() {
		_spec.ClearField(modeloactivo.FieldTamano, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(modeloactivo.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(modeloactivo.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.Conectores(); ok {
		_spec.SetField(modeloactivo.FieldConectores, field.TypeString, value)
	}
	if _u.mutation.ConectoresCleared() {
		_spec.ClearField(modeloactivo.FieldConectores, field.TypeString)
	}
	if value, ok := _u.mutation.Cables(); ok {
		_spec.SetField(modeloactivo.FieldCables, field.TypeString, value)
	}
	if _u.mutation.CablesCleared() {
		_spec.ClearField(modeloactivo.FieldCables, field.TypeString)
	}
	_node = &ModeloActivo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeloactivo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
