// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/finca"
)

// FincaCreate is the builder for creating a Finca entity.
type FincaCreate struct {
	config
	mutation *FincaMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FincaCreate) SetCreatedAt(v time.Time) *FincaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FincaCreate) SetNillableCreatedAt(v *time.Time) *FincaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FincaCreate) SetUpdatedAt(v time.Time) *FincaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FincaCreate) SetNillableUpdatedAt(v *time.Time) *FincaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *FincaCreate) SetName(v string) *FincaCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRegionID sets the "region_id" field.
func (_c *FincaCreate) SetRegionID(v string) *FincaCreate {
	_c.mutation.SetRegionID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FincaCreate) SetID(v string) *FincaCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FincaMutation object of the builder.
func (_c *FincaCreate) Mutation() *FincaMutation {
	return _c.mutation
}

// Save creates the Finca in the database.
func (_c *FincaCreate) Save(ctx context.Context) (*Finca, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FincaCreate) SaveX(ctx context.Context) *Finca {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FincaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FincaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FincaCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := finca.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := finca.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FincaCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Finca.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Finca.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Finca.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := finca.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Finca.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RegionID(); !ok {
		return &ValidationError{Name: "region_id", err: errors.New(`ent: missing required field "Finca.region_id"`)}
	}
	if v, ok := _c.mutation.RegionID(); ok {
		if err := finca.RegionIDValidator(v); err != nil {
			return &ValidationError{Name: "region_id", err: fmt.Errorf(`ent: validator failed for field "Finca.region_id": %w`, err)}
		}
	}
	return nil
}

func (_c *FincaCreate) sqlSave(ctx context.Context) (*Finca, error) {
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
			return nil, fmt.Errorf("unexpected Finca.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FincaCreate) createSpec() (*Finca, *sqlgraph.CreateSpec) {
	var (
		_node = &Finca{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(finca.Table, sqlgraph.NewFieldSpec(finca.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(finca.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(finca.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(finca.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RegionID(); ok {
		_spec.SetField(finca.FieldRegionID, field.TypeString, value)
		_node.RegionID = value
	}
	return _node, _spec
}

// FincaCreateBulk is the builder for creating many Finca entities in bulk.
type FincaCreateBulk struct {
	config
	err      error
	builders []*FincaCreate
}

// Save creates the Finca entities in the database.
func (_c *FincaCreateBulk) Save(ctx context.Context) ([]*Finca, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Finca, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FincaMutation)
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
func (_c *FincaCreateBulk) SaveX(ctx context.Context) []*Finca {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FincaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FincaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
