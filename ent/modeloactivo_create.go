// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/modeloactivo"
)

// ModeloActivoCreate is the builder for creating a ModeloActivo entity.
type ModeloActivoCreate struct {
	config
	mutation *ModeloActivoMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModeloActivoCreate) SetCreatedAt(v time.Time) *ModeloActivoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableCreatedAt(v *time.Time) *ModeloActivoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModeloActivoCreate) SetUpdatedAt(v time.Time) *ModeloActivoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableUpdatedAt(v *time.Time) *ModeloActivoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ModeloActivoCreate) SetName(v string) *ModeloActivoCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMarcaID sets the "marca_id" field.
func (_c *ModeloActivoCreate) SetMarcaID(v string) *ModeloActivoCreate {
	_c.mutation.SetMarcaID(v)
	return _c
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (_c *ModeloActivoCreate) SetTipoActivoID(v string) *ModeloActivoCreate {
	_c.mutation.SetTipoActivoID(v)
	return _c
}

// SetNillableTipoActivoID sets the "tipo_activo_id" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableTipoActivoID(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetTipoActivoID(*v)
	}
	return _c
}

// SetProcesador sets the "procesador" field.
func (_c *ModeloActivoCreate) SetProcesador(v string) *ModeloActivoCreate {
	_c.mutation.SetProcesador(v)
	return _c
}

// SetNillableProcesador sets the "procesador" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableProcesador(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetProcesador(*v)
	}
	return _c
}

// SetRAM sets the "ram" field.
func (_c *ModeloActivoCreate) SetRAM(v int) *ModeloActivoCreate {
	_c.mutation.SetRAM(v)
	return _c
}

// SetNillableRAM sets the "ram" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableRAM(v *int) *ModeloActivoCreate {
	if v != nil {
		_c.SetRAM(*v)
	}
	return _c
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (_c *ModeloActivoCreate) SetAlmacenamiento(v string) *ModeloActivoCreate {
	_c.mutation.SetAlmacenamiento(v)
	return _c
}

// SetNillableAlmacenamiento sets the "almacenamiento" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableAlmacenamiento(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetAlmacenamiento(*v)
	}
	return _c
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (_c *ModeloActivoCreate) SetTarjetaGrafica(v string) *ModeloActivoCreate {
	_c.mutation.SetTarjetaGrafica(v)
	return _c
}

// SetNillableTarjetaGrafica sets the "tarjeta_grafica" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableTarjetaGrafica(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetTarjetaGrafica(*v)
	}
	return _c
}

// SetWifi sets the "wifi" field.
func (_c *ModeloActivoCreate) SetWifi(v bool) *ModeloActivoCreate {
	_c.mutation.SetWifi(v)
	return _c
}

// SetNillableWifi sets the "wifi" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableWifi(v *bool) *ModeloActivoCreate {
	if v != nil {
		_c.SetWifi(*v)
	}
	return _c
}

// SetEthernet sets the "ethernet" field.
func (_c *ModeloActivoCreate) SetEthernet(v bool) *ModeloActivoCreate {
	_c.mutation.SetEthernet(v)
	return _c
}

// SetNillableEthernet sets the "ethernet" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableEthernet(v *bool) *ModeloActivoCreate {
	if v != nil {
		_c.SetEthernet(*v)
	}
	return _c
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (_c *ModeloActivoCreate) SetPuertosEthernet(v string) *ModeloActivoCreate {
	_c.mutation.SetPuertosEthernet(v)
	return _c
}

// SetNillablePuertosEthernet sets the "puertos_ethernet" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillablePuertosEthernet(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetPuertosEthernet(*v)
	}
	return _c
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (_c *ModeloActivoCreate) SetPuertosSfp(v string) *ModeloActivoCreate {
	_c.mutation.SetPuertosSfp(v)
	return _c
}

// SetNillablePuertosSfp sets the "puertos_sfp" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillablePuertosSfp(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetPuertosSfp(*v)
	}
	return _c
}

// SetPuertoConsola sets the "puerto_consola" field.
func (_c *ModeloActivoCreate) SetPuertoConsola(v bool) *ModeloActivoCreate {
	_c.mutation.SetPuertoConsola(v)
	return _c
}

// SetNillablePuertoConsola sets the "puerto_consola" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillablePuertoConsola(v *bool) *ModeloActivoCreate {
	if v != nil {
		_c.SetPuertoConsola(*v)
	}
	return _c
}

// SetPuertosPoe sets the "puertos_poe" field.
func (_c *ModeloActivoCreate) SetPuertosPoe(v string) *ModeloActivoCreate {
	_c.mutation.SetPuertosPoe(v)
	return _c
}

// SetNillablePuertosPoe sets the "puertos_poe" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillablePuertosPoe(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetPuertosPoe(*v)
	}
	return _c
}

// SetAlimentacion sets the "alimentacion" field.
func (_c *ModeloActivoCreate) SetAlimentacion(v string) *ModeloActivoCreate {
	_c.mutation.SetAlimentacion(v)
	return _c
}

// SetNillableAlimentacion sets the "alimentacion" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableAlimentacion(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetAlimentacion(*v)
	}
	return _c
}

// SetAdministrable sets the "administrable" field.
func (_c *ModeloActivoCreate) SetAdministrable(v bool) *ModeloActivoCreate {
	_c.mutation.SetAdministrable(v)
	return _c
}

// SetNillableAdministrable sets the "administrable" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableAdministrable(v *bool) *ModeloActivoCreate {
	if v != nil {
		_c.SetAdministrable(*v)
	}
	return _c
}

// SetTamano sets the "tamano" field.
func (_c *ModeloActivoCreate) SetTamano(v string) *ModeloActivoCreate {
	_c.mutation.SetTamano(v)
	return _c
}

// SetNillableTamano sets the "tamano" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableTamano(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetTamano(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *ModeloActivoCreate) SetColor(v string) *ModeloActivoCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableColor(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetConectores sets the "conectores" field.
func (_c *ModeloActivoCreate) SetConectores(v string) *ModeloActivoCreate {
	_c.mutation.SetConectores(v)
	return _c
}

// SetNillableConectores sets the "conectores" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableConectores(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetConectores(*v)
	}
	return _c
}

// SetCables sets the "cables" field.
func (_c *ModeloActivoCreate) SetCables(v string) *ModeloActivoCreate {
	_c.mutation.SetCables(v)
	return _c
}

// SetNillableCables sets the "cables" field if the given value is not nil.
func (_c *ModeloActivoCreate) SetNillableCables(v *string) *ModeloActivoCreate {
	if v != nil {
		_c.SetCables(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModeloActivoCreate) SetID(v string) *ModeloActivoCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModeloActivoMutation object of the builder.
func (_c *ModeloActivoCreate) Mutation() *ModeloActivoMutation {
	return _c.mutation
}

// Save creates the ModeloActivo in the database.
func (_c *ModeloActivoCreate) Save(ctx context.Context) (*ModeloActivo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModeloActivoCreate) SaveX(ctx context.Context) *ModeloActivo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModeloActivoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModeloActivoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModeloActivoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modeloactivo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modeloactivo.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Wifi(); !ok {
		v := modeloactivo.DefaultWifi
		_c.mutation.SetWifi(v)
	}
	if _, ok := _c.mutation.Ethernet(); !ok {
		v := modeloactivo.DefaultEthernet
		_c.mutation.SetEthernet(v)
	}
	if _, ok := _c.mutation.PuertoConsola(); !ok {
		v := modeloactivo.DefaultPuertoConsola
		_c.mutation.SetPuertoConsola(v)
	}
	if _, ok := _c.mutation.Administrable(); !ok {
		v := modeloactivo.DefaultAdministrable
		_c.mutation.SetAdministrable(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModeloActivoCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModeloActivo.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModeloActivo.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ModeloActivo.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := modeloactivo.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ModeloActivo.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MarcaID(); !ok {
		return &ValidationError{Name: "marca_id", err: errors.New(`ent: missing required field "ModeloActivo.marca_id"`)}
	}
	if v, ok := _c.mutation.MarcaID(); ok {
		if err := modeloactivo.MarcaIDValidator(v); err != nil {
			return &ValidationError{Name: "marca_id", err: fmt.Errorf(`ent: validator failed for field "ModeloActivo.marca_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Wifi(); !ok {
		return &ValidationError{Name: "wifi", err: errors.New(`ent: missing required field "ModeloActivo.wifi"`)}
	}
	if _, ok := _c.mutation.Ethernet(); !ok {
		return &ValidationError{Name: "ethernet", err: errors.New(`ent: missing required field "ModeloActivo.ethernet"`)}
	}
	if _, ok := _c.mutation.PuertoConsola(); !ok {
		return &ValidationError{Name: "puerto_consola", err: errors.New(`ent: missing required field "ModeloActivo.puerto_consola"`)}
	}
	if _, ok := _c.mutation.Administrable(); !ok {
		return &ValidationError{Name: "administrable", err: errors.New(`ent: missing required field "ModeloActivo.administrable"`)}
	}
	return nil
}

func (_c *ModeloActivoCreate) sqlSave(ctx context.Context) (*ModeloActivo, error) {
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
			return nil, fmt.Errorf("unexpected ModeloActivo.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModeloActivoCreate) createSpec() (*ModeloActivo, *sqlgraph.CreateSpec) {
	var (
		_node = &ModeloActivo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modeloactivo.Table, sqlgraph.NewFieldSpec(modeloactivo.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modeloactivo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modeloactivo.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(modeloactivo.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MarcaID(); ok {
		_spec.SetField(modeloactivo.FieldMarcaID, field.TypeString, value)
		_node.MarcaID = value
	}
	if value, ok := _c.mutation.TipoActivoID(); ok {
		_spec.SetField(modeloactivo.FieldTipoActivoID, field.TypeString, value)
		_node.TipoActivoID = value
	}
	if value, ok := _c.mutation.Procesador(); ok {
		_spec.SetField(modeloactivo.FieldProcesador, field.TypeString, value)
		_node.Procesador = value
	}
	if value, ok := _c.mutation.RAM(); ok {
		_spec.SetField(modeloactivo.FieldRAM, field.TypeInt, value)
		_node.RAM = value
	}
	if value, ok := _c.mutation.Almacenamiento(); ok {
		_spec.SetField(modeloactivo.FieldAlmacenamiento, field.TypeString, value)
		_node.Almacenamiento = value
	}
	if value, ok := _c.mutation.TarjetaGrafica(); ok {
		_spec.SetField(modeloactivo.FieldTarjetaGrafica, field.TypeString, value)
		_node.TarjetaGrafica = value
	}
	if value, ok := _c.mutation.Wifi(); ok {
		_spec.SetField(modeloactivo.FieldWifi, field.TypeBool, value)
		_node.Wifi = value
	}
	if value, ok := _c.mutation.Ethernet(); ok {
		_spec.SetField(modeloactivo.FieldEthernet, field.TypeBool, value)
		_node.Ethernet = value
	}
	if value, ok := _c.mutation.PuertosEthernet(); ok {
		_spec.SetField(modeloactivo.FieldPuertosEthernet, field.TypeString, value)
		_node.PuertosEthernet = value
	}
	if value, ok := _c.mutation.PuertosSfp(); ok {
		_spec.SetField(modeloactivo.FieldPuertosSfp, field.TypeString, value)
		_node.PuertosSfp = value
	}
	if value, ok := _c.mutation.PuertoConsola(); ok {
		_spec.SetField(modeloactivo.FieldPuertoConsola, field.TypeBool, value)
		_node.PuertoConsola = value
	}
	if value, ok := _c.mutation.PuertosPoe(); ok {
		_spec.SetField(modeloactivo.FieldPuertosPoe, field.TypeString, value)
		_node.PuertosPoe = value
	}
	if value, ok := _c.mutation.Alimentacion(); ok {
		_spec.SetField(modeloactivo.FieldAlimentacion, field.TypeString, value)
		_node.Alimentacion = value
	}
	if value, ok := _c.mutation.Administrable(); ok {
		_spec.SetField(modeloactivo.FieldAdministrable, field.TypeBool, value)
		_node.Administrable = value
	}
	if value, ok := _c.mutation.Tamano(); ok {
		_spec.SetField(modeloactivo.FieldTamano, field.TypeString, value)
		_node.Tamano = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(modeloactivo.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.Conectores(); ok {
		_spec.SetField(modeloactivo.FieldConectores, field.TypeString, value)
		_node.Conectores = value
	}
	if value, ok := _c.mutation.Cables(); ok {
		_spec.SetField(modeloactivo.FieldCables, field.TypeString, value)
		_node.Cables = value
	}
	return _node, _spec
}

// ModeloActivoCreateBulk is the builder for creating many ModeloActivo entities in bulk.
type ModeloActivoCreateBulk struct {
	config
	err      error
	builders []*ModeloActivoCreate
}

// Save creates the ModeloActivo entities in the database.
func (_c *ModeloActivoCreateBulk) Save(ctx context.Context) ([]*ModeloActivo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModeloActivo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModeloActivoMutation)
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
func (_c *ModeloActivoCreateBulk) SaveX(ctx context.Context) []*ModeloActivo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModeloActivoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModeloActivoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
