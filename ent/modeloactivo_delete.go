// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/modeloactivo"
	"fincatech.io/itam/ent/predicate"
)

// ModeloActivoDelete is the builder for deleting a ModeloActivo entity.
type ModeloActivoDelete struct {
	config
	hooks    []Hook
	mutation *ModeloActivoMutation
}

// Where appends a list predicates to the ModeloActivoDelete builder.
func (_d *ModeloActivoDelete) Where(ps ...predicate.ModeloActivo) *ModeloActivoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ModeloActivoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModeloActivoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ModeloActivoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(modeloactivo.Table, sqlgraph.NewFieldSpec(modeloactivo.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ModeloActivoDeleteOne is the builder for deleting a single ModeloActivo entity.
type ModeloActivoDeleteOne struct {
	_d *ModeloActivoDelete
}

// Where appends a list predicates to the ModeloActivoDelete builder.
func (_d *ModeloActivoDeleteOne) Where(ps ...predicate.ModeloActivo) *ModeloActivoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ModeloActivoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{modeloactivo.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ModeloActivoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
