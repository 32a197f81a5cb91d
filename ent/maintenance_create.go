// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/maintenance"
)

// MaintenanceCreate is the builder for creating a Maintenance entity.
type MaintenanceCreate struct {
	config
	mutation *MaintenanceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaintenanceCreate) SetCreatedAt(v time.Time) *MaintenanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaintenanceCreate) SetNillableCreatedAt(v *time.Time) *MaintenanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MaintenanceCreate) SetUpdatedAt(v time.Time) *MaintenanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MaintenanceCreate) SetNillableUpdatedAt(v *time.Time) *MaintenanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetActivoID sets the "activo_id" field.
func (_c *MaintenanceCreate) SetActivoID(v string) *MaintenanceCreate {
	_c.mutation.SetActivoID(v)
	return _c
}

// SetFechaMantenimiento sets the "fecha_mantenimiento" field.
func (_c *MaintenanceCreate) SetFechaMantenimiento(v time.Time) *MaintenanceCreate {
	_c.mutation.SetFechaMantenimiento(v)
	return _c
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (_c *MaintenanceCreate) SetProximoMantenimiento(v time.Time) *MaintenanceCreate {
	_c.mutation.SetProximoMantenimiento(v)
	return _c
}

// SetTecnicoID sets the "tecnico_id" field.
func (_c *MaintenanceCreate) SetTecnicoID(v string) *MaintenanceCreate {
	_c.mutation.SetTecnicoID(v)
	return _c
}

// SetHallazgos sets the "hallazgos" field.
func (_c *MaintenanceCreate) SetHallazgos(v string) *MaintenanceCreate {
	_c.mutation.SetHallazgos(v)
	return _c
}

// SetNillableHallazgos sets the "hallazgos" field if the given value is not nil.
func (_c *MaintenanceCreate) SetNillableHallazgos(v *string) *MaintenanceCreate {
	if v != nil {
		_c.SetHallazgos(*v)
	}
	return _c
}

// SetAttachments sets the "attachments" field.
func (_c *MaintenanceCreate) SetAttachments(v []string) *MaintenanceCreate {
	_c.mutation.SetAttachments(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MaintenanceCreate) SetID(v string) *MaintenanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MaintenanceMutation object of the builder.
func (_c *MaintenanceCreate) Mutation() *MaintenanceMutation {
	return _c.mutation
}

// Save creates the Maintenance in the database.
func (_c *MaintenanceCreate) Save(ctx context.Context) (*Maintenance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaintenanceCreate) SaveX(ctx context.Context) *Maintenance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaintenanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaintenanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaintenanceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := maintenance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := maintenance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaintenanceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Maintenance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Maintenance.updated_at"`)}
	}
	if _, ok := _c.mutation.ActivoID(); !ok {
		return &ValidationError{Name: "activo_id", err: errors.New(`ent: missing required field "Maintenance.activo_id"`)}
	}
	if v, ok := _c.mutation.ActivoID(); ok {
		if err := maintenance.ActivoIDValidator(v); err != nil {
			return &ValidationError{Name: "activo_id", err: fmt.Errorf(`ent: validator failed for field "Maintenance.activo_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FechaMantenimiento(); !ok {
		return &ValidationError{Name: "fecha_mantenimiento", err: errors.New(`ent: missing required field "Maintenance.fecha_mantenimiento"`)}
	}
	if _, ok := _c.mutation.ProximoMantenimiento(); !ok {
		return &ValidationError{Name: "proximo_mantenimiento", err: errors.New(`ent: missing required field "Maintenance.proximo_mantenimiento"`)}
	}
	if _, ok := _c.mutation.TecnicoID(); !ok {
		return &ValidationError{Name: "tecnico_id", err: errors.New(`ent: missing required field "Maintenance.tecnico_id"`)}
	}
	if v, ok := _c.mutation.TecnicoID(); ok {
		if err := maintenance.TecnicoIDValidator(v); err != nil {
			return &ValidationError{Name: "tecnico_id", err: fmt.Errorf(`ent: validator failed for field "Maintenance.tecnico_id": %w`, err)}
		}
	}
	return nil
}

func (_c *MaintenanceCreate) sqlSave(ctx context.Context) (*Maintenance, error) {
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
			return nil, fmt.Errorf("unexpected Maintenance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MaintenanceCreate) createSpec() (*Maintenance, *sqlgraph.CreateSpec) {
	var (
		_node = &Maintenance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(maintenance.Table, sqlgraph.NewFieldSpec(maintenance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(maintenance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(maintenance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ActivoID(); ok {
		_spec.SetField(maintenance.FieldActivoID, field.TypeString, value)
		_node.ActivoID = value
	}
	if value, ok := _c.mutation.FechaMantenimiento(); ok {
		_spec.SetField(maintenance.FieldFechaMantenimiento, field.TypeTime, value)
		_node.FechaMantenimiento = value
	}
	if value, ok := _c.mutation.ProximoMantenimiento(); ok {
		_spec.SetField(maintenance.FieldProximoMantenimiento, field.TypeTime, value)
		_node.ProximoMantenimiento = value
	}
	if value, ok := _c.mutation.TecnicoID(); ok {
		_spec.SetField(maintenance.FieldTecnicoID, field.TypeString, value)
		_node.TecnicoID = value
	}
	if value, ok := _c.mutation.Hallazgos(); ok {
		_spec.SetField(maintenance.FieldHallazgos, field.TypeString, value)
		_node.Hallazgos = value
	}
	if value, ok := _c.mutation.Attachments(); ok {
		_spec.SetField(maintenance.FieldAttachments, field.TypeJSON, value)
		_node.Attachments = value
	}
	return _node, _spec
}

// MaintenanceCreateBulk is the builder for creating many Maintenance entities in bulk.
type MaintenanceCreateBulk struct {
	config
	err      error
	builders []*MaintenanceCreate
}

// Save creates the Maintenance entities in the database.
func (_c *MaintenanceCreateBulk) Save(ctx context.Context) ([]*Maintenance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Maintenance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaintenanceMutation)
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
func (_c *MaintenanceCreateBulk) SaveX(ctx context.Context) []*Maintenance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaintenanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaintenanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
