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
	"fincatech.io/itam/ent/employee"
	"fincatech.io/itam/ent/predicate"
)

// EmployeeUpdate is the builder for updating Employee entities.
type EmployeeUpdate struct {
	config
	hooks    []Hook
	mutation *EmployeeMutation
}

// Where appends a list predicates to the EmployeeUpdate builder.
func (_u *EmployeeUpdate) Where(ps ...predicate.Employee) *EmployeeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmployeeUpdate) SetUpdatedAt(v time.Time) *EmployeeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployeeNumber sets the "employee_number" field.
func (_u *EmployeeUpdate) SetEmployeeNumber(v string) *EmployeeUpdate {
	_u.mutation.SetEmployeeNumber(v)
	return _u
}

// SetNillableEmployeeNumber sets the "employee_number" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableEmployeeNumber(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetEmployeeNumber(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *EmployeeUpdate) SetFirstName(v string) *EmployeeUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableFirstName(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *EmployeeUpdate) SetLastName(v string) *EmployeeUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableLastName(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetRegionID sets the "region_id" field.
func (_u *EmployeeUpdate) SetRegionID(v string) *EmployeeUpdate {
	_u.mutation.SetRegionID(v)
	return _u
}

// SetNillableRegionID sets the "region_id" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableRegionID(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetRegionID(*v)
	}
	return _u
}

// ClearRegionID clears the value of the "region_id" field.
func (_u *EmployeeUpdate) ClearRegionID() *EmployeeUpdate {
	_u.mutation.ClearRegionID()
	return _u
}

// SetFincaID sets the "finca_id" field.
func (_u *EmployeeUpdate) SetFincaID(v string) *EmployeeUpdate {
	_u.mutation.SetFincaID(v)
	return _u
}

// SetNillableFincaID sets the "finca_id" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableFincaID(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetFincaID(*v)
	}
	return _u
}

// ClearFincaID clears the value of the "finca_id" field.
func (_u *EmployeeUpdate) ClearFincaID() *EmployeeUpdate {
	_u.mutation.ClearFincaID()
	return _u
}

// SetDepartamentoID sets the "departamento_id" field.
func (_u *EmployeeUpdate) SetDepartamentoID(v string) *EmployeeUpdate {
	_u.mutation.SetDepartamentoID(v)
	return _u
}

// SetNillableDepartamentoID sets the "departamento_id" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableDepartamentoID(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetDepartamentoID(*v)
	}
	return _u
}

// ClearDepartamentoID clears the value of the "departamento_id" field.
func (_u *EmployeeUpdate) ClearDepartamentoID() *EmployeeUpdate {
	_u.mutation.ClearDepartamentoID()
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *EmployeeUpdate) SetAreaID(v string) *EmployeeUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableAreaID(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// ClearAreaID clears the value of the "area_id" field.
func (_u *EmployeeUpdate) ClearAreaID() *EmployeeUpdate {
	_u.mutation.ClearAreaID()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EmployeeUpdate) SetStartDate(v time.Time) *EmployeeUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableStartDate(v *time.Time) *EmployeeUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *EmployeeUpdate) ClearStartDate() *EmployeeUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *EmployeeUpdate) SetSupervisorID(v string) *EmployeeUpdate {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableSupervisorID(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (_u *EmployeeUpdate) ClearSupervisorID() *EmployeeUpdate {
	_u.mutation.ClearSupervisorID()
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *EmployeeUpdate) SetDocumentPath(v string) *EmployeeUpdate {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableDocumentPath(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *EmployeeUpdate) ClearDocumentPath() *EmployeeUpdate {
	_u.mutation.ClearDocumentPath()
	return _u
}

// Mutation returns the EmployeeMutation object of the builder.
func (_u *EmployeeUpdate) Mutation() *EmployeeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmployeeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmployeeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmployeeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := employee.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeeUpdate) check() error {
	if v, ok := _u.mutation.EmployeeNumber(); ok {
		if err := employee.EmployeeNumberValidator(v); err != nil {
			return &ValidationError{Name: "employee_number", err: fmt.Errorf(`ent: validator failed for field "Employee.employee_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := employee.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Employee.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := employee.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Employee.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *EmployeeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employee.Table, employee.Columns, sqlgraph.NewFieldSpec(employee.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(employee.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmployeeNumber(); ok {
		_spec.SetField(employee.FieldEmployeeNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(employee.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(employee.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionID(); ok {
		_spec.SetField(employee.FieldRegionID, field.TypeString, value)
	}
	if _u.mutation.RegionIDCleared() {
		_spec.ClearField(employee.FieldRegionID, field.TypeString)
	}
	if value, ok := _u.mutation.FincaID(); ok {
		_spec.SetField(employee.FieldFincaID, field.TypeString, value)
	}
	if _u.mutation.FincaIDCleared() {
		_spec.ClearField(employee.FieldFincaID, field.TypeString)
	}
	if value, ok := _u.mutation.DepartamentoID(); ok {
		_spec.SetField(employee.FieldDepartamentoID, field.TypeString, value)
	}
	if _u.mutation.DepartamentoIDCleared() {
		_spec.ClearField(employee.FieldDepartamentoID, field.TypeString)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(employee.FieldAreaID, field.TypeString, value)
	}
	if _u.mutation.AreaIDCleared() {
		_spec.ClearField(employee.FieldAreaID, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(employee.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(employee.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SupervisorID(); ok {
		_spec.SetField(employee.FieldSupervisorID, field.TypeString, value)
	}
	if _u.mutation.SupervisorIDCleared() {
		_spec.ClearField(employee.FieldSupervisorID, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(employee.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(employee.FieldDocumentPath, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmployeeUpdateOne is the builder for updating a single Employee entity.
type EmployeeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmployeeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmployeeUpdateOne) SetUpdatedAt(v time.Time) *EmployeeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployeeNumber sets the "employee_number" field.
func (_u *EmployeeUpdateOne) SetEmployeeNumber(v string) *EmployeeUpdateOne {
	_u.mutation.SetEmployeeNumber(v)
	return _u
}

// SetNillableEmployeeNumber sets the "employee_number" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableEmployeeNumber(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetEmployeeNumber(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *EmployeeUpdateOne) SetFirstName(v string) *EmployeeUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableFirstName(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *EmployeeUpdateOne) SetLastName(v string) *EmployeeUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableLastName(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetRegionID sets the "region_id" field.
func (_u *EmployeeUpdateOne) SetRegionID(v string) *EmployeeUpdateOne {
	_u.mutation.SetRegionID(v)
	return _u
}

// SetNillableRegionID sets the "region_id" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableRegionID(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetRegionID(*v)
	}
	return _u
}

// ClearRegionID clears the value of the "region_id" field.
func (_u *EmployeeUpdateOne) ClearRegionID() *EmployeeUpdateOne {
	_u.mutation.ClearRegionID()
	return _u
}

// SetFincaID sets the "finca_id" field.
func (_u *EmployeeUpdateOne) SetFincaID(v string) *EmployeeUpdateOne {
	_u.mutation.SetFincaID(v)
	return _u
}

// SetNillableFincaID sets the "finca_id" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableFincaID(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetFincaID(*v)
	}
	return _u
}

// ClearFincaID clears the value of the "finca_id" field.
func (_u *EmployeeUpdateOne) ClearFincaID() *EmployeeUpdateOne {
	_u.mutation.ClearFincaID()
	return _u
}

// SetDepartamentoID sets the "departamento_id" field.
func (_u *EmployeeUpdateOne) SetDepartamentoID(v string) *EmployeeUpdateOne {
	_u.mutation.SetDepartamentoID(v)
	return _u
}

// SetNillableDepartamentoID sets the "departamento_id" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableDepartamentoID(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetDepartamentoID(*v)
	}
	return _u
}

// ClearDepartamentoID clears the value of the "departamento_id" field.
func (_u *EmployeeUpdateOne) ClearDepartamentoID() *EmployeeUpdateOne {
	_u.mutation.ClearDepartamentoID()
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *EmployeeUpdateOne) SetAreaID(v string) *EmployeeUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableAreaID(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// ClearAreaID clears the value of the "area_id" field.
func (_u *EmployeeUpdateOne) ClearAreaID() *EmployeeUpdateOne {
	_u.mutation.ClearAreaID()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *EmployeeUpdateOne) SetStartDate(v time.Time) *EmployeeUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableStartDate(v *time.Time) *EmployeeUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *EmployeeUpdateOne) ClearStartDate() *EmployeeUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *EmployeeUpdateOne) SetSupervisorID(v string) *EmployeeUpdateOne {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableSupervisorID(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (_u *EmployeeUpdateOne) ClearSupervisorID() *EmployeeUpdateOne {
	_u.mutation.ClearSupervisorID()
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *EmployeeUpdateOne) SetDocumentPath(v string) *EmployeeUpdateOne {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableDocumentPath(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *EmployeeUpdateOne) ClearDocumentPath() *EmployeeUpdateOne {
	_u.mutation.ClearDocumentPath()
	return _u
}

// Mutation returns the EmployeeMutation object of the builder.
func (_u *EmployeeUpdateOne) Mutation() *EmployeeMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmployeeUpdate builder.
func (_u *EmployeeUpdateOne) Where(ps ...predicate.Employee) *EmployeeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmployeeUpdateOne) Select(field string, fields ...string) *EmployeeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Employee entity.
func (_u *EmployeeUpdateOne) Save(ctx context.Context) (*Employee, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeeUpdateOne) SaveX(ctx context.Context) *Employee {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmployeeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmployeeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := employee.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeeUpdateOne) check() error {
	if v, ok := _u.mutation.EmployeeNumber(); ok {
		if err := employee.EmployeeNumberValidator(v); err != nil {
			return &ValidationError{Name: "employee_number", err: fmt.Errorf(`ent: validator failed for field "Employee.employee_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := employee.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Employee.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := employee.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`ent: validator failed for field "Employee.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *EmployeeUpdateOne) sqlSave(ctx context.Context) (_node *Employee, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employee.Table, employee.Columns, sqlgraph.NewFieldSpec(employee.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Employee.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, employee.FieldID)
		for _, f := range fields {
			if !employee.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != employee.FieldID {
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
		_spec.SetField(employee.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmployeeNumber(); ok {
		_spec.SetField(employee.FieldEmployeeNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(employee.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(employee.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionID(); ok {
		_spec.SetField(employee.FieldRegionID, field.TypeString, value)
	}
	if _u.mutation.RegionIDCleared() {
		_spec.ClearField(employee.FieldRegionID, field.TypeString)
	}
	if value, ok := _u.mutation.FincaID(); ok {
		_spec.SetField(employee.FieldFincaID, field.TypeString, value)
	}
	if _u.mutation.FincaIDCleared() {
		_spec.ClearField(employee.FieldFincaID, field.TypeString)
	}
	if value, ok := _u.mutation.DepartamentoID(); ok {
		_spec.SetField(employee.FieldDepartamentoID, field.TypeString, value)
	}
	if _u.mutation.DepartamentoIDCleared() {
		_spec.ClearField(employee.FieldDepartamentoID, field.TypeString)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(employee.FieldAreaID, field.TypeString, value)
	}
	if _u.mutation.AreaIDCleared() {
		_spec.ClearField(employee.FieldAreaID, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(employee.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(employee.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SupervisorID(); ok {
		_spec.SetField(employee.FieldSupervisorID, field.TypeString, value)
	}
	if _u.mutation.SupervisorIDCleared() {
		_spec.ClearField(employee.FieldSupervisorID, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(employee.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(employee.FieldDocumentPath, field.TypeString)
	}
	_node = &Employee{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
