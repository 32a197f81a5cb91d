// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/proveedor"
)

// ProveedorCreate is the builder for creating a Proveedor entity.
type ProveedorCreate struct {
	config
	mutation *ProveedorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProveedorCreate) SetCreatedAt(v time.Time) *ProveedorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableCreatedAt(v *time.Time) *ProveedorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProveedorCreate) SetUpdatedAt(v time.Time) *ProveedorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableUpdatedAt(v *time.Time) *ProveedorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNombreEmpresa sets the "nombre_empresa" field.
func (_c *ProveedorCreate) SetNombreEmpresa(v string) *ProveedorCreate {
	_c.mutation.SetNombreEmpresa(v)
	return _c
}

// SetNit sets the "nit" field.
func (_c *ProveedorCreate) SetNit(v string) *ProveedorCreate {
	_c.mutation.SetNit(v)
	return _c
}

// SetDireccion sets the "direccion" field.
func (_c *ProveedorCreate) SetDireccion(v string) *ProveedorCreate {
	_c.mutation.SetDireccion(v)
	return _c
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableDireccion(v *string) *ProveedorCreate {
	if v != nil {
		_c.SetDireccion(*v)
	}
	return _c
}

// SetNombreContacto sets the "nombre_contacto" field.
func (_c *ProveedorCreate) SetNombreContacto(v string) *ProveedorCreate {
	_c.mutation.SetNombreContacto(v)
	return _c
}

// SetNillableNombreContacto sets the "nombre_contacto" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableNombreContacto(v *string) *ProveedorCreate {
	if v != nil {
		_c.SetNombreContacto(*v)
	}
	return _c
}

// SetTelefonoVentas sets the "telefono_ventas" field.
func (_c *ProveedorCreate) SetTelefonoVentas(v string) *ProveedorCreate {
	_c.mutation.SetTelefonoVentas(v)
	return _c
}

// SetNillableTelefonoVentas sets the "telefono_ventas" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableTelefonoVentas(v *string) *ProveedorCreate {
	if v != nil {
		_c.SetTelefonoVentas(*v)
	}
	return _c
}

// SetCorreoVentas sets the "correo_ventas" field.
func (_c *ProveedorCreate) SetCorreoVentas(v string) *ProveedorCreate {
	_c.mutation.SetCorreoVentas(v)
	return _c
}

// SetNillableCorreoVentas sets the "correo_ventas" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableCorreoVentas(v *string) *ProveedorCreate {
	if v != nil {
		_c.SetCorreoVentas(*v)
	}
	return _c
}

// SetTelefonoSoporte sets the "telefono_soporte" field.
func (_c *ProveedorCreate) SetTelefonoSoporte(v string) *ProveedorCreate {
	_c.mutation.SetTelefonoSoporte(v)
	return _c
}

// SetNillableTelefonoSoporte sets the "telefono_soporte" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableTelefonoSoporte(v *string) *ProveedorCreate {
	if v != nil {
		_c.SetTelefonoSoporte(*v)
	}
	return _c
}

// SetCorreoSoporte sets the "correo_soporte" field.
func (_c *ProveedorCreate) SetCorreoSoporte(v string) *ProveedorCreate {
	_c.mutation.SetCorreoSoporte(v)
	return _c
}

// SetNillableCorreoSoporte sets the "correo_soporte" field if the given value is not nil.
func (_c *ProveedorCreate) SetNillableCorreoSoporte(v *string) *ProveedorCreate {
	if v != nil {
		_c.SetCorreoSoporte(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProveedorCreate) SetID(v string) *ProveedorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProveedorMutation object of the builder.
func (_c *ProveedorCreate) Mutation() *ProveedorMutation {
	return _c.mutation
}

// Save creates the Proveedor in the database.
func (_c *ProveedorCreate) Save(ctx context.Context) (*Proveedor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProveedorCreate) SaveX(ctx context.Context) *Proveedor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProveedorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProveedorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProveedorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proveedor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := proveedor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProveedorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Proveedor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Proveedor.updated_at"`)}
	}
	if _, ok := _c.mutation.NombreEmpresa(); !ok {
		return &ValidationError{Name: "nombre_empresa", err: errors.New(`ent: missing required field "Proveedor.nombre_empresa"`)}
	}
	if v, ok := _c.mutation.NombreEmpresa(); ok {
		if err := proveedor.NombreEmpresaValidator(v); err != nil {
			return &ValidationError{Name: "nombre_empresa", err: fmt.Errorf(`ent: validator failed for field "Proveedor.nombre_empresa": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Nit(); !ok {
		return &ValidationError{Name: "nit", err: errors.New(`ent: missing required field "Proveedor.nit"`)}
	}
	if v, ok := _c.mutation.Nit(); ok {
		if err := proveedor.NitValidator(v); err != nil {
			return &ValidationError{Name: "nit", err: fmt.Errorf(`ent: validator failed for field "Proveedor.nit": %w`, err)}
		}
	}
	return nil
}

func (_c *ProveedorCreate) sqlSave(ctx context.Context) (*Proveedor, error) {
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
			return nil, fmt.Errorf("unexpected Proveedor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProveedorCreate) createSpec() (*Proveedor, *sqlgraph.CreateSpec) {
	var (
		_node = &Proveedor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proveedor.Table, sqlgraph.NewFieldSpec(proveedor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proveedor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(proveedor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.NombreEmpresa(); ok {
		_spec.SetField(proveedor.FieldNombreEmpresa, field.TypeString, value)
		_node.NombreEmpresa = value
	}
	if value, ok := _c.mutation.Nit(); ok {
		_spec.SetField(proveedor.FieldNit, field.TypeString, value)
		_node.Nit = value
	}
	if value, ok := _c.mutation.Direccion(); ok {
		_spec.SetField(proveedor.FieldDireccion, field.TypeString, value)
		_node.Direccion = value
	}
	if value, ok := _c.mutation.NombreContacto(); ok {
		_spec.SetField(proveedor.FieldNombreContacto, field.TypeString, value)
		_node.NombreContacto = value
	}
	if value, ok := _c.mutation.TelefonoVentas(); ok {
		_spec.SetField(proveedor.FieldTelefonoVentas, field.TypeString, value)
		_node.TelefonoVentas = value
	}
	if value, ok := _c.mutation.CorreoVentas(); ok {
		_spec.SetField(proveedor.FieldCorreoVentas, field.TypeString, value)
		_node.CorreoVentas = value
	}
	if value, ok := _c.mutation.TelefonoSoporte(); ok {
		_spec.SetField(proveedor.FieldTelefonoSoporte, field.TypeString, value)
		_node.TelefonoSoporte = value
	}
	if value, ok := _c.mutation.CorreoSoporte(); ok {
		_spec.SetField(proveedor.FieldCorreoSoporte, field.TypeString, value)
		_node.CorreoSoporte = value
	}
	return _node, _spec
}

// ProveedorCreateBulk is the builder for creating many Proveedor entities in bulk.
type ProveedorCreateBulk struct {
	config
	err      error
	builders []*ProveedorCreate
}

// Save creates the Proveedor entities in the database.
func (_c *ProveedorCreateBulk) Save(ctx context.Context) ([]*Proveedor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Proveedor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProveedorMutation)
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
func (_c *ProveedorCreateBulk) SaveX(ctx context.Context) []*Proveedor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProveedorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProveedorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
