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
	"fincatech.io/itam/ent/assignment"
	"fincatech.io/itam/ent/predicate"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentUpdate) SetUpdatedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignedDate sets the "assigned_date" field.
func (_u *AssignmentUpdate) SetAssignedDate(v time.Time) *AssignmentUpdate {
	_u.mutation.SetAssignedDate(v)
	return _u
}

// SetNillableAssignedDate sets the "assigned_date" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAssignedDate(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetAssignedDate(*v)
	}
	return _u
}

// SetReturnedDate sets the "returned_date" field.
func (_u *AssignmentUpdate) SetReturnedDate(v time.Time) *AssignmentUpdate {
	_u.mutation.SetReturnedDate(v)
	return _u
}

// SetNillableReturnedDate sets the "returned_date" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableReturnedDate(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetReturnedDate(*v)
	}
	return _u
}

// ClearReturnedDate clears the value of the "returned_date" field.
func (_u *AssignmentUpdate) ClearReturnedDate() *AssignmentUpdate {
	_u.mutation.ClearReturnedDate()
	return _u
}

// SetReturnedByID sets the "returned_by_id" field.
func (_u *AssignmentUpdate) SetReturnedByID(v string) *AssignmentUpdate {
	_u.mutation.SetReturnedByID(v)
	return _u
}

// SetNillableReturnedByID sets the "returned_by_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableReturnedByID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetReturnedByID(*v)
	}
	return _u
}

// ClearReturnedByID clears the value of the "returned_by_id" field.
func (_u *AssignmentUpdate) ClearReturnedByID() *AssignmentUpdate {
	_u.mutation.ClearReturnedByID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AssignmentUpdate) SetNotes(v string) *AssignmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableNotes(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AssignmentUpdate) ClearNotes() *AssignmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedDate(); ok {
		_spec.SetField(assignment.FieldAssignedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReturnedDate(); ok {
		_spec.SetField(assignment.FieldReturnedDate, field.TypeTime, value)
	}
	if _u.mutation.ReturnedDateCleared() {
		_spec.ClearField(assignment.FieldReturnedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReturnedByID(); ok {
		_spec.SetField(assignment.FieldReturnedByID, field.TypeString, value)
	}
	if _u.mutation.ReturnedByIDCleared() {
		_spec.ClearField(assignment.FieldReturnedByID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(assignment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(assignment.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentUpdateOne) SetUpdatedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignedDate sets the "assigned_date" field.
func (_u *AssignmentUpdateOne) SetAssignedDate(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetAssignedDate(v)
	return _u
}

// SetNillableAssignedDate sets the "assigned_date" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAssignedDate(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedDate(*v)
	}
	return _u
}

// SetReturnedDate sets the "returned_date" field.
func (_u *AssignmentUpdateOne) SetReturnedDate(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetReturnedDate(v)
	return _u
}

// SetNillableReturnedDate sets the "returned_date" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableReturnedDate(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetReturnedDate(*v)
	}
	return _u
}

// ClearReturnedDate clears the value of the "returned_date" field.
func (_u *AssignmentUpdateOne) ClearReturnedDate() *AssignmentUpdateOne {
	_u.mutation.ClearReturnedDate()
	return _u
}

// SetReturnedByID sets the "returned_by_id" field.
func (_u *AssignmentUpdateOne) SetReturnedByID(v string) *AssignmentUpdateOne {
	_u.mutation.SetReturnedByID(v)
	return _u
}

// SetNillableReturnedByID sets the "returned_by_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableReturnedByID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetReturnedByID(*v)
	}
	return _u
}

// ClearReturnedByID clears the value of the "returned_by_id" field.
func (_u *AssignmentUpdateOne) ClearReturnedByID() *AssignmentUpdateOne {
	_u.mutation.ClearReturnedByID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AssignmentUpdateOne) SetNotes(v string) *AssignmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableNotes(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AssignmentUpdateOne) ClearNotes() *AssignmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedDate(); ok {
		_spec.SetField(assignment.FieldAssignedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReturnedDate(); ok {
		_spec.SetField(assignment.FieldReturnedDate, field.TypeTime, value)
	}
	if _u.mutation.ReturnedDateCleared() {
		_spec.ClearField(assignment.FieldReturnedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReturnedByID(); ok {
		_spec.SetField(assignment.FieldReturnedByID, field.TypeString, value)
	}
	if _u.mutation.ReturnedByIDCleared() {
		_spec.ClearField(assignment.FieldReturnedByID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(assignment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(assignment.FieldNotes, field.TypeString)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
