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
	"fincatech.io/itam/ent/predicate"
	"fincatech.io/itam/ent/proveedor"
)

// ProveedorUpdate is the builder for updating Proveedor entities.
type ProveedorUpdate struct {
	config
	hooks    []Hook
	mutation *ProveedorMutation
}

// Where appends a list predicates to the ProveedorUpdate builder.
func (_u *ProveedorUpdate) Where(ps ...predicate.Proveedor) *ProveedorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProveedorUpdate) SetUpdatedAt(v time.Time) *ProveedorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombreEmpresa sets the "nombre_empresa" field.
func (_u *ProveedorUpdate) SetNombreEmpresa(v string) *ProveedorUpdate {
	_u.mutation.SetNombreEmpresa(v)
	return _u
}

// SetNillableNombreEmpresa sets the "nombre_empresa" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableNombreEmpresa(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetNombreEmpresa(*v)
	}
	return _u
}

// SetNit sets the "nit" field.
func (_u *ProveedorUpdate) SetNit(v string) *ProveedorUpdate {
	_u.mutation.SetNit(v)
	return _u
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableNit(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetNit(*v)
	}
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *ProveedorUpdate) SetDireccion(v string) *ProveedorUpdate {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableDireccion(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// ClearDireccion clears the value of the "direccion" field.
func (_u *ProveedorUpdate) ClearDireccion() *ProveedorUpdate {
	_u.mutation.ClearDireccion()
	return _u
}

// SetNombreContacto sets the "nombre_contacto" field.
func (_u *ProveedorUpdate) SetNombreContacto(v string) *ProveedorUpdate {
	_u.mutation.SetNombreContacto(v)
	return _u
}

// SetNillableNombreContacto sets the "nombre_contacto" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableNombreContacto(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetNombreContacto(*v)
	}
	return _u
}

// ClearNombreContacto clears the value of the "nombre_contacto" field.
func (_u *ProveedorUpdate) ClearNombreContacto() *ProveedorUpdate {
	_u.mutation.ClearNombreContacto()
	return _u
}

// SetTelefonoVentas sets the "telefono_ventas" field.
func (_u *ProveedorUpdate) SetTelefonoVentas(v string) *ProveedorUpdate {
	_u.mutation.SetTelefonoVentas(v)
	return _u
}

// SetNillableTelefonoVentas sets the "telefono_ventas" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableTelefonoVentas(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetTelefonoVentas(*v)
	}
	return _u
}

// ClearTelefonoVentas clears the value of the "telefono_ventas" field.
func (_u *ProveedorUpdate) ClearTelefonoVentas() *ProveedorUpdate {
	_u.mutation.ClearTelefonoVentas()
	return _u
}

// SetCorreoVentas sets the "correo_ventas" field.
func (_u *ProveedorUpdate) SetCorreoVentas(v string) *ProveedorUpdate {
	_u.mutation.SetCorreoVentas(v)
	return _u
}

// SetNillableCorreoVentas sets the "correo_ventas" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableCorreoVentas(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetCorreoVentas(*v)
	}
	return _u
}

// ClearCorreoVentas clears the value of the "correo_ventas" field.
func (_u *ProveedorUpdate) ClearCorreoVentas() *ProveedorUpdate {
	_u.mutation.ClearCorreoVentas()
	return _u
}

// SetTelefonoSoporte sets the "telefono_soporte" field.
func (_u *ProveedorUpdate) SetTelefonoSoporte(v string) *ProveedorUpdate {
	_u.mutation.SetTelefonoSoporte(v)
	return _u
}

// SetNillableTelefonoSoporte sets the "telefono_soporte" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableTelefonoSoporte(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetTelefonoSoporte(*v)
	}
	return _u
}

// ClearTelefonoSoporte clears the value of the "telefono_soporte" field.
func (_u *ProveedorUpdate) ClearTelefonoSoporte() *ProveedorUpdate {
	_u.mutation.ClearTelefonoSoporte()
	return _u
}

// SetCorreoSoporte sets the "correo_soporte" field.
func (_u *ProveedorUpdate) SetCorreoSoporte(v string) *ProveedorUpdate {
	_u.mutation.SetCorreoSoporte(v)
	return _u
}

// SetNillableCorreoSoporte sets the "correo_soporte" field if the given value is not nil.
func (_u *ProveedorUpdate) SetNillableCorreoSoporte(v *string) *ProveedorUpdate {
	if v != nil {
		_u.SetCorreoSoporte(*v)
	}
	return _u
}

// ClearCorreoSoporte clears the value of the "correo_soporte" field.
func (_u *ProveedorUpdate) ClearCorreoSoporte() *ProveedorUpdate {
	_u.mutation.ClearCorreoSoporte()
	return _u
}

// Mutation returns the ProveedorMutation object of the builder.
func (_u *ProveedorUpdate) Mutation() *ProveedorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProveedorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProveedorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProveedorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProveedorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProveedorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proveedor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProveedorUpdate) check() error {
	if v, ok := _u.mutation.NombreEmpresa(); ok {
		if err := proveedor.NombreEmpresaValidator(v); err != nil {
			return &ValidationError{Name: "nombre_empresa", err: fmt.Errorf(`ent: validator failed for field "Proveedor.nombre_empresa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nit(); ok {
		if err := proveedor.NitValidator(v); err != nil {
			return &ValidationError{Name: "nit", err: fmt.Errorf(`ent: validator failed for field "Proveedor.nit": %w`, err)}
		}
	}
	return nil
}

func (_u *ProveedorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proveedor.Table, proveedor.Columns, sqlgraph.NewFieldSpec(proveedor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proveedor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NombreEmpresa(); ok {
		_spec.SetField(proveedor.FieldNombreEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nit(); ok {
		_spec.SetField(proveedor.FieldNit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(proveedor.FieldDireccion, field.TypeString, value)
	}
	if _u.mutation.DireccionCleared() {
		_spec.ClearField(proveedor.FieldDireccion, field.TypeString)
	}
	if value, ok := _u.mutation.NombreContacto(); ok {
		_spec.SetField(proveedor.FieldNombreContacto, field.TypeString, value)
	}
	if _u.mutation.NombreContactoCleared() {
		_spec.ClearField(proveedor.FieldNombreContacto, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoVentas(); ok {
		_spec.SetField(proveedor.FieldTelefonoVentas, field.TypeString, value)
	}
	if _u.mutation.TelefonoVentasCleared() {
		_spec.ClearField(proveedor.FieldTelefonoVentas, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoVentas(); ok {
		_spec.SetField(proveedor.FieldCorreoVentas, field.TypeString, value)
	}
	if _u.mutation.CorreoVentasCleared() {
		_spec.ClearField(proveedor.FieldCorreoVentas, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoSoporte(); ok {
		_spec.SetField(proveedor.FieldTelefonoSoporte, field.TypeString, value)
	}
	if _u.mutation.TelefonoSoporteCleared() {
		_spec.ClearField(proveedor.FieldTelefonoSoporte, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoSoporte(); ok {
		_spec.SetField(proveedor.FieldCorreoSoporte, field.TypeString, value)
	}
	if _u.mutation.CorreoSoporteCleared() {
		_spec.ClearField(proveedor.FieldCorreoSoporte, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proveedor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProveedorUpdateOne is the builder for updating a single Proveedor entity.
type ProveedorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProveedorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProveedorUpdateOne) SetUpdatedAt(v time.Time) *ProveedorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombreEmpresa sets the "nombre_empresa" field.
func (_u *ProveedorUpdateOne) SetNombreEmpresa(v string) *ProveedorUpdateOne {
	_u.mutation.SetNombreEmpresa(v)
	return _u
}

// SetNillableNombreEmpresa sets the "nombre_empresa" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableNombreEmpresa(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetNombreEmpresa(*v)
	}
	return _u
}

// SetNit sets the "nit" field.
func (_u *ProveedorUpdateOne) SetNit(v string) *ProveedorUpdateOne {
	_u.mutation.SetNit(v)
	return _u
}

// SetNillableNit sets the "nit" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableNit(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetNit(*v)
	}
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *ProveedorUpdateOne) SetDireccion(v string) *ProveedorUpdateOne {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableDireccion(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// ClearDireccion clears the value of the "direccion" field.
func (_u *ProveedorUpdateOne) ClearDireccion() *ProveedorUpdateOne {
	_u.mutation.ClearDireccion()
	return _u
}

// SetNombreContacto sets the "nombre_contacto" field.
func (_u *ProveedorUpdateOne) SetNombreContacto(v string) *ProveedorUpdateOne {
	_u.mutation.SetNombreContacto(v)
	return _u
}

// SetNillableNombreContacto sets the "nombre_contacto" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableNombreContacto(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetNombreContacto(*v)
	}
	return _u
}

// ClearNombreContacto clears the value of the "nombre_contacto" field.
func (_u *ProveedorUpdateOne) ClearNombreContacto() *ProveedorUpdateOne {
	_u.mutation.ClearNombreContacto()
	return _u
}

// SetTelefonoVentas sets the "telefono_ventas" field.
func (_u *ProveedorUpdateOne) SetTelefonoVentas(v string) *ProveedorUpdateOne {
	_u.mutation.SetTelefonoVentas(v)
	return _u
}

// SetNillableTelefonoVentas sets the "telefono_ventas" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableTelefonoVentas(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetTelefonoVentas(*v)
	}
	return _u
}

// ClearTelefonoVentas clears the value of the "telefono_ventas" field.
func (_u *ProveedorUpdateOne) ClearTelefonoVentas() *ProveedorUpdateOne {
	_u.mutation.ClearTelefonoVentas()
	return _u
}

// SetCorreoVentas sets the "correo_ventas" field.
func (_u *ProveedorUpdateOne) SetCorreoVentas(v string) *ProveedorUpdateOne {
	_u.mutation.SetCorreoVentas(v)
	return _u
}

// SetNillableCorreoVentas sets the "correo_ventas" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableCorreoVentas(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetCorreoVentas(*v)
	}
	return _u
}

// ClearCorreoVentas clears the value of the "correo_ventas" field.
func (_u *ProveedorUpdateOne) ClearCorreoVentas() *ProveedorUpdateOne {
	_u.mutation.ClearCorreoVentas()
	return _u
}

// SetTelefonoSoporte sets the "telefono_soporte" field.
func (_u *ProveedorUpdateOne) SetTelefonoSoporte(v string) *ProveedorUpdateOne {
	_u.mutation.SetTelefonoSoporte(v)
	return _u
}

// SetNillableTelefonoSoporte sets the "telefono_soporte" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableTelefonoSoporte(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetTelefonoSoporte(*v)
	}
	return _u
}

// ClearTelefonoSoporte clears the value of the "telefono_soporte" field.
func (_u *ProveedorUpdateOne) ClearTelefonoSoporte() *ProveedorUpdateOne {
	_u.mutation.ClearTelefonoSoporte()
	return _u
}

// SetCorreoSoporte sets the "correo_soporte" field.
func (_u *ProveedorUpdateOne) SetCorreoSoporte(v string) *ProveedorUpdateOne {
	_u.mutation.SetCorreoSoporte(v)
	return _u
}

// SetNillableCorreoSoporte sets the "correo_soporte" field if the given value is not nil.
func (_u *ProveedorUpdateOne) SetNillableCorreoSoporte(v *string) *ProveedorUpdateOne {
	if v != nil {
		_u.SetCorreoSoporte(*v)
	}
	return _u
}

// ClearCorreoSoporte clears the value of the "correo_soporte" field.
func (_u *ProveedorUpdateOne) ClearCorreoSoporte() *ProveedorUpdateOne {
	_u.mutation.ClearCorreoSoporte()
	return _u
}

// Mutation returns the ProveedorMutation object of the builder.
func (_u *ProveedorUpdateOne) Mutation() *ProveedorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProveedorUpdate builder.
func (_u *ProveedorUpdateOne) Where(ps ...predicate.Proveedor) *ProveedorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProveedorUpdateOne) Select(field string, fields ...string) *ProveedorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Proveedor entity.
func (_u *ProveedorUpdateOne) Save(ctx context.Context) (*Proveedor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProveedorUpdateOne) SaveX(ctx context.Context) *Proveedor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProveedorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProveedorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProveedorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proveedor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProveedorUpdateOne) check() error {
	if v, ok := _u.mutation.NombreEmpresa(); ok {
		if err := proveedor.NombreEmpresaValidator(v); err != nil {
			return &ValidationError{Name: "nombre_empresa", err: fmt.Errorf(`ent: validator failed for field "Proveedor.nombre_empresa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nit(); ok {
		if err := proveedor.NitValidator(v); err != nil {
			return &ValidationError{Name: "nit", err: fmt.Errorf(`ent: validator failed for field "Proveedor.nit": %w`, err)}
		}
	}
	return nil
}

func (_u *ProveedorUpdateOne) sqlSave(ctx context.Context) (_node *Proveedor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proveedor.Table, proveedor.Columns, sqlgraph.NewFieldSpec(proveedor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Proveedor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proveedor.FieldID)
		for _, f := range fields {
			if !proveedor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proveedor.FieldID {
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
		_spec.SetField(proveedor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NombreEmpresa(); ok {
		_spec.SetField(proveedor.FieldNombreEmpresa, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nit(); ok {
		_spec.SetField(proveedor.FieldNit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(proveedor.FieldDireccion, field.TypeString, value)
	}
	if _u.mutation.DireccionCleared() {
		_spec.ClearField(proveedor.FieldDireccion, field.TypeString)
	}
	if value, ok := _u.mutation.NombreContacto(); ok {
		_spec.SetField(proveedor.FieldNombreContacto, field.TypeString, value)
	}
	if _u.mutation.NombreContactoCleared() {
		_spec.ClearField(proveedor.FieldNombreContacto, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoVentas(); ok {
		_spec.SetField(proveedor.FieldTelefonoVentas, field.TypeString, value)
	}
	if _u.mutation.TelefonoVentasCleared() {
		_spec.ClearField(proveedor.FieldTelefonoVentas, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoVentas(); ok {
		_spec.SetField(proveedor.FieldCorreoVentas, field.TypeString, value)
	}
	if _u.mutation.CorreoVentasCleared() {
		_spec.ClearField(proveedor.FieldCorreoVentas, field.TypeString)
	}
	if value, ok := _u.mutation.TelefonoSoporte(); ok {
		_spec.SetField(proveedor.FieldTelefonoSoporte, field.TypeString, value)
	}
	if _u.mutation.TelefonoSoporteCleared() {
		_spec.ClearField(proveedor.FieldTelefonoSoporte, field.TypeString)
	}
	if value, ok := _u.mutation.CorreoSoporte(); ok {
		_spec.SetField(proveedor.FieldCorreoSoporte, field.TypeString, value)
	}
	if _u.mutation.CorreoSoporteCleared() {
		_spec.ClearField(proveedor.FieldCorreoSoporte, field.TypeString)
	}
	_node = &Proveedor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proveedor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
