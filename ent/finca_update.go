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
	"fincatech.io/itam/ent/finca"
	"fincatech.io/itam/ent/predicate"
)

// FincaUpdate is the builder for updating Finca entities.
type FincaUpdate struct {
	config
	hooks    []Hook
	mutation *FincaMutation
}

// Where appends a list predicates to the FincaUpdate builder.
func (_u *FincaUpdate) Where(ps ...predicate.Finca) *FincaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FincaUpdate) SetUpdatedAt(v time.Time) *FincaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FincaUpdate) SetName(v string) *FincaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FincaUpdate) SetNillableName(v *string) *FincaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRegionID sets the "region_id" field.
func (_u *FincaUpdate) SetRegionID(v string) *FincaUpdate {
	_u.mutation.SetRegionID(v)
	return _u
}

// SetNillableRegionID sets the "region_id" field if the given value is not nil.
func (_u *FincaUpdate) SetNillableRegionID(v *string) *FincaUpdate {
	if v != nil {
		_u.SetRegionID(*v)
	}
	return _u
}

// Mutation returns the FincaMutation object of the builder.
func (_u *FincaUpdate) Mutation() *FincaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FincaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FincaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FincaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FincaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FincaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := finca.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FincaUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := finca.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Finca.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegionID(); ok {
		if err := finca.RegionIDValidator(v); err != nil {
			return &ValidationError{Name: "region_id", err: fmt.Errorf(`ent: validator failed for field "Finca.region_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FincaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finca.Table, finca.Columns, sqlgraph.NewFieldSpec(finca.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(finca.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(finca.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionID(); ok {
		_spec.SetField(finca.FieldRegionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finca.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FincaUpdateOne is the builder for updating a single Finca entity.
type FincaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FincaMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FincaUpdateOne) SetUpdatedAt(v time.Time) *FincaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FincaUpdateOne) SetName(v string) *FincaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FincaUpdateOne) SetNillableName(v *string) *FincaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRegionID sets the "region_id" field.
func (_u *FincaUpdateOne) SetRegionID(v string) *FincaUpdateOne {
	_u.mutation.SetRegionID(v)
	return _u
}

// SetNillableRegionID sets the "region_id" field if the given value is not nil.
func (_u *FincaUpdateOne) SetNillableRegionID(v *string) *FincaUpdateOne {
	if v != nil {
		_u.SetRegionID(*v)
	}
	return _u
}

// Mutation returns the FincaMutation object of the builder.
func (_u *FincaUpdateOne) Mutation() *FincaMutation {
	return _u.mutation
}

// Where appends a list predicates to the FincaUpdate builder.
func (_u *FincaUpdateOne) Where(ps ...predicate.Finca) *FincaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FincaUpdateOne) Select(field string, fields ...string) *FincaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Finca entity.
func (_u *FincaUpdateOne) Save(ctx context.Context) (*Finca, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FincaUpdateOne) SaveX(ctx context.Context) *Finca {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FincaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FincaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FincaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := finca.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FincaUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := finca.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Finca.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RegionID(); ok {
		if err := finca.RegionIDValidator(v); err != nil {
			return &ValidationError{Name: "region_id", err: fmt.Errorf(`ent: validator failed for field "Finca.region_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FincaUpdateOne) sqlSave(ctx context.Context) (_node *Finca, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finca.Table, finca.Columns, sqlgraph.NewFieldSpec(finca.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Finca.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, finca.FieldID)
		for _, f := range fields {
			if !finca.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != finca.FieldID {
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
		_spec.SetField(finca.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(finca.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegionID(); ok {
		_spec.SetField(finca.FieldRegionID, field.TypeString, value)
	}
	_node = &Finca{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finca.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
