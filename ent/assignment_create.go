// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/assignment"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssignmentCreate) SetCreatedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCreatedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssignmentCreate) SetUpdatedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableUpdatedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetActivoID sets the "activo_id" field.
func (_c *AssignmentCreate) SetActivoID(v string) *AssignmentCreate {
	_c.mutation.SetActivoID(v)
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *AssignmentCreate) SetEmployeeID(v string) *AssignmentCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetAssignedDate sets the "assigned_date" field.
func (_c *AssignmentCreate) SetAssignedDate(v time.Time) *AssignmentCreate {
	_c.mutation.SetAssignedDate(v)
	return _c
}

// SetReturnedDate sets the "returned_date" field.
func (_c *AssignmentCreate) SetReturnedDate(v time.Time) *AssignmentCreate {
	_c.mutation.SetReturnedDate(v)
	return _c
}

// SetNillableReturnedDate sets the "returned_date" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableReturnedDate(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetReturnedDate(*v)
	}
	return _c
}

// SetAssignedByID sets the "assigned_by_id" field.
func (_c *AssignmentCreate) SetAssignedByID(v string) *AssignmentCreate {
	_c.mutation.SetAssignedByID(v)
	return _c
}

// SetReturnedByID sets the "returned_by_id" field.
func (_c *AssignmentCreate) SetReturnedByID(v string) *AssignmentCreate {
	_c.mutation.SetReturnedByID(v)
	return _c
}

// SetNillableReturnedByID sets the "returned_by_id" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableReturnedByID(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetReturnedByID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *AssignmentCreate) SetNotes(v string) *AssignmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableNotes(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssignmentCreate) SetID(v string) *AssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assignment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assignment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Assignment.updated_at"`)}
	}
	if _, ok := _c.mutation.ActivoID(); !ok {
		return &ValidationError{Name: "activo_id", err: errors.New(`ent: missing required field "Assignment.activo_id"`)}
	}
	if v, ok := _c.mutation.ActivoID(); ok {
		if err := assignment.ActivoIDValidator(v); err != nil {
			return &ValidationError{Name: "activo_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.activo_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`ent: missing required field "Assignment.employee_id"`)}
	}
	if v, ok := _c.mutation.EmployeeID(); ok {
		if err := assignment.EmployeeIDValidator(v); err != nil {
			return &ValidationError{Name: "employee_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.employee_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedDate(); !ok {
		return &ValidationError{Name: "assigned_date", err: errors.New(`ent: missing required field "Assignment.assigned_date"`)}
	}
	if _, ok := _c.mutation.AssignedByID(); !ok {
		return &ValidationError{Name: "assigned_by_id", err: errors.New(`ent: missing required field "Assignment.assigned_by_id"`)}
	}
	if v, ok := _c.mutation.AssignedByID(); ok {
		if err := assignment.AssignedByIDValidator(v); err != nil {
			return &ValidationError{Name: "assigned_by_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.assigned_by_id": %w`, err)}
		}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
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
			return nil, fmt.Errorf("unexpected Assignment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ActivoID(); ok {
		_spec.SetField(assignment.FieldActivoID, field.TypeString, value)
		_node.ActivoID = value
	}
	if value, ok := _c.mutation.EmployeeID(); ok {
		_spec.SetField(assignment.FieldEmployeeID, field.TypeString, value)
		_node.EmployeeID = value
	}
	if value, ok := _c.mutation.AssignedDate(); ok {
		_spec.SetField(assignment.FieldAssignedDate, field.TypeTime, value)
		_node.AssignedDate = value
	}
	if value, ok := _c.mutation.ReturnedDate(); ok {
		_spec.SetField(assignment.FieldReturnedDate, field.TypeTime, value)
		_node.ReturnedDate = &value
	}
	if value, ok := _c.mutation.AssignedByID(); ok {
		_spec.SetField(assignment.FieldAssignedByID, field.TypeString, value)
		_node.AssignedByID = value
	}
	if value, ok := _c.mutation.ReturnedByID(); ok {
		_spec.SetField(assignment.FieldReturnedByID, field.TypeString, value)
		_node.ReturnedByID = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(assignment.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	return _node, _spec
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
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
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
