// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"fincatech.io/itam/ent/maintenance"
	"fincatech.io/itam/ent/predicate"
)

// MaintenanceUpdate is the builder for updating Maintenance entities.
type MaintenanceUpdate struct {
	config
	hooks    []Hook
	mutation *MaintenanceMutation
}

// Where appends a list predicates to the MaintenanceUpdate builder.
func (_u *MaintenanceUpdate) Where(ps ...predicate.Maintenance) *MaintenanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaintenanceUpdate) SetUpdatedAt(v time.Time) *MaintenanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFechaMantenimiento sets the "fecha_mantenimiento" field.
func (_u *MaintenanceUpdate) SetFechaMantenimiento(v time.Time) *MaintenanceUpdate {
	_u.mutation.SetFechaMantenimiento(v)
	return _u
}

// SetNillableFechaMantenimiento sets the "fecha_mantenimiento" field if the given value is not nil.
func (_u *MaintenanceUpdate) SetNillableFechaMantenimiento(v *time.Time) *MaintenanceUpdate {
	if v != nil {
		_u.SetFechaMantenimiento(*v)
	}
	return _u
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (_u *MaintenanceUpdate) SetProximoMantenimiento(v time.Time) *MaintenanceUpdate {
	_u.mutation.SetProximoMantenimiento(v)
	return _u
}

// SetNillableProximoMantenimiento sets the "proximo_mantenimiento" field if the given value is not nil.
func (_u *MaintenanceUpdate) SetNillableProximoMantenimiento(v *time.Time) *MaintenanceUpdate {
	if v != nil {
		_u.SetProximoMantenimiento(*v)
	}
	return _u
}

// SetTecnicoID sets the "tecnico_id" field.
func (_u *MaintenanceUpdate) SetTecnicoID(v string) *MaintenanceUpdate {
	_u.mutation.SetTecnicoID(v)
	return _u
}

// SetNillableTecnicoID sets the "tecnico_id" field if the given value is not nil.
func (_u *MaintenanceUpdate) SetNillableTecnicoID(v *string) *MaintenanceUpdate {
	if v != nil {
		_u.SetTecnicoID(*v)
	}
	return _u
}

// SetHallazgos sets the "hallazgos" field.
func (_u *MaintenanceUpdate) SetHallazgos(v string) *MaintenanceUpdate {
	_u.mutation.SetHallazgos(v)
	return _u
}

// SetNillableHallazgos sets the "hallazgos" field if the given value is not nil.
func (_u *MaintenanceUpdate) SetNillableHallazgos(v *string) *MaintenanceUpdate {
	if v != nil {
		_u.SetHallazgos(*v)
	}
	return _u
}

// ClearHallazgos clears the value of the "hallazgos" field.
func (_u *MaintenanceUpdate) ClearHallazgos() *MaintenanceUpdate {
	_u.mutation.ClearHallazgos()
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *MaintenanceUpdate) SetAttachments(v []string) *MaintenanceUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *MaintenanceUpdate) AppendAttachments(v []string) *MaintenanceUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *MaintenanceUpdate) ClearAttachments() *MaintenanceUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// Mutation returns the MaintenanceMutation object of the builder.
func (_u *MaintenanceUpdate) Mutation() *MaintenanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaintenanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaintenanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaintenanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaintenanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaintenanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := maintenance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaintenanceUpdate) check() error {
	if v, ok := _u.mutation.TecnicoID(); ok {
		if err := maintenance.TecnicoIDValidator(v); err != nil {
			return &ValidationError{Name: "tecnico_id", err: fmt.Errorf(`ent: validator failed for field "Maintenance.tecnico_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MaintenanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(maintenance.Table, maintenance.Columns, sqlgraph.NewFieldSpec(maintenance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(maintenance.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaMantenimiento(); ok {
		_spec.SetField(maintenance.FieldFechaMantenimiento, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProximoMantenimiento(); ok {
		_spec.SetField(maintenance.FieldProximoMantenimiento, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TecnicoID(); ok {
		_spec.SetField(maintenance.FieldTecnicoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hallazgos(); ok {
		_spec.SetField(maintenance.FieldHallazgos, field.TypeString, value)
	}
	if _u.mutation.HallazgosCleared() {
		_spec.ClearField(maintenance.FieldHallazgos, field.TypeString)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(maintenance.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maintenance.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(maintenance.FieldAttachments, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{maintenance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaintenanceUpdateOne is the builder for updating a single Maintenance entity.
type MaintenanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaintenanceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaintenanceUpdateOne) SetUpdatedAt(v time.Time) *MaintenanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFechaMantenimiento sets the "fecha_mantenimiento" field.
func (_u *MaintenanceUpdateOne) SetFechaMantenimiento(v time.Time) *MaintenanceUpdateOne {
	_u.mutation.SetFechaMantenimiento(v)
	return _u
}

// SetNillableFechaMantenimiento sets the "fecha_mantenimiento" field if the given value is not nil.
func (_u *MaintenanceUpdateOne) SetNillableFechaMantenimiento(v *time.Time) *MaintenanceUpdateOne {
	if v != nil {
		_u.SetFechaMantenimiento(*v)
	}
	return _u
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (_u *MaintenanceUpdateOne) SetProximoMantenimiento(v time.Time) *MaintenanceUpdateOne {
	_u.mutation.SetProximoMantenimiento(v)
	return _u
}

// SetNillableProximoMantenimiento sets the "proximo_mantenimiento" field if the given value is not nil.
func (_u *MaintenanceUpdateOne) SetNillableProximoMantenimiento(v *time.Time) *MaintenanceUpdateOne {
	if v != nil {
		_u.SetProximoMantenimiento(*v)
	}
	return _u
}

// SetTecnicoID sets the "tecnico_id" field.
func (_u *MaintenanceUpdateOne) SetTecnicoID(v string) *MaintenanceUpdateOne {
	_u.mutation.SetTecnicoID(v)
	return _u
}

// SetNillableTecnicoID sets the "tecnico_id" field if the given value is not nil.
func (_u *MaintenanceUpdateOne) SetNillableTecnicoID(v *string) *MaintenanceUpdateOne {
	if v != nil {
		_u.SetTecnicoID(*v)
	}
	return _u
}

// SetHallazgos sets the "hallazgos" field.
func (_u *MaintenanceUpdateOne) SetHallazgos(v string) *MaintenanceUpdateOne {
	_u.mutation.SetHallazgos(v)
	return _u
}

// SetNillableHallazgos sets the "hallazgos" field if the given value is not nil.
func (_u *MaintenanceUpdateOne) SetNillableHallazgos(v *string) *MaintenanceUpdateOne {
	if v != nil {
		_u.SetHallazgos(*v)
	}
	return _u
}

// ClearHallazgos clears the value of the "hallazgos" field.
func (_u *MaintenanceUpdateOne) ClearHallazgos() *MaintenanceUpdateOne {
	_u.mutation.ClearHallazgos()
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *MaintenanceUpdateOne) SetAttachments(v []string) *MaintenanceUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *MaintenanceUpdateOne) AppendAttachments(v []string) *MaintenanceUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *MaintenanceUpdateOne) ClearAttachments() *MaintenanceUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// Mutation returns the MaintenanceMutation object of the builder.
func (_u *MaintenanceUpdateOne) Mutation() *MaintenanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the MaintenanceUpdate builder.
func (_u *MaintenanceUpdateOne) Where(ps ...predicate.Maintenance) *MaintenanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaintenanceUpdateOne) Select(field string, fields ...string) *MaintenanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Maintenance entity.
func (_u *MaintenanceUpdateOne) Save(ctx context.Context) (*Maintenance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaintenanceUpdateOne) SaveX(ctx context.Context) *Maintenance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaintenanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaintenanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaintenanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := maintenance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaintenanceUpdateOne) check() error {
	if v, ok := _u.mutation.TecnicoID(); ok {
		if err := maintenance.TecnicoIDValidator(v); err != nil {
			return &ValidationError{Name: "tecnico_id", err: fmt.Errorf(`ent: validator failed for field "Maintenance.tecnico_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MaintenanceUpdateOne) sqlSave(ctx context.Context) (_node *Maintenance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(maintenance.Table, maintenance.Columns, sqlgraph.NewFieldSpec(maintenance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Maintenance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, maintenance.FieldID)
		for _, f := range fields {
			if !maintenance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != maintenance.FieldID {
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
		_spec.SetField(maintenance.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaMantenimiento(); ok {
		_spec.SetField(maintenance.FieldFechaMantenimiento, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProximoMantenimiento(); ok {
		_spec.SetField(maintenance.FieldProximoMantenimiento, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TecnicoID(); ok {
		_spec.SetField(maintenance.FieldTecnicoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hallazgos(); ok {
		_spec.SetField(maintenance.FieldHallazgos, field.TypeString, value)
	}
	if _u.mutation.HallazgosCleared() {
		_spec.ClearField(maintenance.FieldHallazgos, field.TypeString)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(maintenance.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maintenance.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(maintenance.FieldAttachments, field.TypeJSON)
	}
	_node = &Maintenance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{maintenance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
