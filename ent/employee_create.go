// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/employee"
)

// EmployeeCreate is the builder for creating a Employee entity.
type EmployeeCreate struct {
	config
	mutation *EmployeeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmployeeCreate) SetCreatedAt(v time.Time) *EmployeeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableCreatedAt(v *time.Time) *EmployeeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmployeeCreate) SetUpdatedAt(v time.Time) *EmployeeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableUpdatedAt(v *time.Time) *EmployeeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmployeeNumber sets the "employee_number" field.
func (_c *EmployeeCreate) SetEmployeeNumber(v string) *EmployeeCreate {
	_c.mutation.SetEmployeeNumber(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *EmployeeCreate) SetFirstName(v string) *EmployeeCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *EmployeeCreate) SetLastName(v string) *EmployeeCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetRegionID sets the "region_id" field.
func (_c *EmployeeCreate) SetRegionID(v string) *EmployeeCreate {
	_c.mutation.SetRegionID(v)
	return _c
}

// SetNillableRegionID sets the "region_id" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableRegionID(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetRegionID(*v)
	}
	return _c
}

// SetFincaID sets the "finca_id" field.
func (_c *EmployeeCreate) SetFincaID(v string) *EmployeeCreate {
	_c.mutation.SetFincaID(v)
	return _c
}

// SetNillableFincaID sets the "finca_id" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableFincaID(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetFincaID(*v)
	}
	return _c
}

// SetDepartamentoID sets the "departamento_id" field.
func (_c *EmployeeCreate) SetDepartamentoID(v string) *EmployeeCreate {
	_c.mutation.SetDepartamentoID(v)
	return _c
}

// SetNillableDepartamentoID sets the "departamento_id" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableDepartamentoID(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetDepartamentoID(*v)
	}
	return _c
}

// SetAreaID sets the "area_id" field.
func (_c *EmployeeCreate) SetAreaID(v string) *EmployeeCreate {
	_c.mutation.SetAreaID(v)
	return _c
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableAreaID(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetAreaID(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *EmployeeCreate) SetStartDate(v time.Time) *EmployeeCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableStartDate(v *time.Time) *EmployeeCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetSupervisorID sets the "supervisor_id" field.
func (_c *EmployeeCreate) SetSupervisorID(v string) *EmployeeCreate {
	_c.mutation.SetSupervisorID(v)
	return _c
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableSupervisorID(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetSupervisorID(*v)
	}
	return _c
}

// SetDocumentPath sets the "document_path" field.
func (_c *EmployeeCreate) SetDocumentPath(v string) *EmployeeCreate {
	_c.mutation.SetDocumentPath(v)
	return _c
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableDocumentPath(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetDocumentPath(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmployeeCreate) SetID(v string) *EmployeeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EmployeeMutation object of the builder.
func (_c *EmployeeCreate) Mutation() *EmployeeMutation {
	return _c.mutation
}

// Save creates the Employee in the database.
func (_c *EmployeeCreate) Save(ctx context.Context) (*Employee, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmployeeCreate) SaveX(ctx context.Context) *Employee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmployeeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := employee.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := employee.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmployeeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Employee.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Employee.updated_at"`)}
	}
	if _, ok := _c.mutation.EmployeeNumber(); !ok {
		return &ValidationError{Name: "employee_number", err: errors.New(`ent: missing required field "Employee.employee_number"`)}
	}
	if v, ok := _c.mutation.EmployeeNumber(); ok {
		if err := employee.EmployeeNumberValidator(v); err != nil {
			return &ValidationError{Name: "employee_number", err: fmt.Errorf(`ent: validator failed for field "Employee.employee_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Employee.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := employee.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Employee.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`ent: missing required field "Employee.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := employee.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Employee.last_name": %w`, err)}
		}
	}
	return nil
}

func (_c *EmployeeCreate) sqlSave(ctx context.Context) (*Employee, error) {
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
			return nil, fmt.Errorf("unexpected Employee.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmployeeCreate) createSpec() (*Employee, *sqlgraph.CreateSpec) {
	var (
		_node = &Employee{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(employee.Table, sqlgraph.NewFieldSpec(employee.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(employee.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(employee.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EmployeeNumber(); ok {
		_spec.SetField(employee.FieldEmployeeNumber, field.TypeString, value)
		_node.EmployeeNumber = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(employee.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(employee.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.RegionID(); ok {
		_spec.SetField(employee.FieldRegionID, field.TypeString, value)
		_node.RegionID = value
	}
	if value, ok := _c.mutation.FincaID(); ok {
		_spec.SetField(employee.FieldFincaID, field.TypeString, value)
		_node.FincaID = value
	}
	if value, ok := _c.mutation.DepartamentoID(); ok {
		_spec.SetField(employee.FieldDepartamentoID, field.TypeString, value)
		_node.DepartamentoID = value
	}
	if value, ok := _c.mutation.AreaID(); ok {
		_spec.SetField(employee.FieldAreaID, field.TypeString, value)
		_node.AreaID = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(employee.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.SupervisorID(); ok {
		_spec.SetField(employee.FieldSupervisorID, field.TypeString, value)
		_node.SupervisorID = value
	}
	if value, ok := _c.mutation.DocumentPath(); ok {
		_spec.SetField(employee.FieldDocumentPath, field.TypeString, value)
		_node.DocumentPath = value
	}
	return _node, _spec
}

// EmployeeCreateBulk is the builder for creating many Employee entities in bulk.
type EmployeeCreateBulk struct {
	config
	err      error
	builders []*EmployeeCreate
}

// Save creates the Employee entities in the database.
func (_c *EmployeeCreateBulk) Save(ctx context.Context) ([]*Employee, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Employee, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmployeeMutation)
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
func (_c *EmployeeCreateBulk) SaveX(ctx context.Context) []*Employee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
