// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/activo"
	"fincatech.io/itam/ent/area"
	"fincatech.io/itam/ent/assignment"
	"fincatech.io/itam/ent/auditlog"
	"fincatech.io/itam/ent/departamento"
	"fincatech.io/itam/ent/employee"
	"fincatech.io/itam/ent/finca"
	"fincatech.io/itam/ent/maintenance"
	"fincatech.io/itam/ent/marca"
	"fincatech.io/itam/ent/modeloactivo"
	"fincatech.io/itam/ent/notification"
	"fincatech.io/itam/ent/predicate"
	"fincatech.io/itam/ent/proveedor"
	"fincatech.io/itam/ent/region"
	"fincatech.io/itam/ent/tipoactivo"
	"fincatech.io/itam/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivo       = "Activo"
	TypeArea         = "Area"
	TypeAssignment   = "Assignment"
	TypeAuditLog     = "AuditLog"
	TypeDepartamento = "Departamento"
	TypeEmployee     = "Employee"
	TypeFinca        = "Finca"
	TypeMaintenance  = "Maintenance"
	TypeMarca        = "Marca"
	TypeModeloActivo = "ModeloActivo"
	TypeNotification = "Notification"
	TypeProveedor    = "Proveedor"
	TypeRegion       = "Region"
	TypeTipoActivo   = "TipoActivo"
	TypeUser         = "User"
)

// ActivoMutation represents an operation that mutates the Activo nodes in the graph.
type ActivoMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	created_at                     *time.Time
	updated_at                     *time.Time
	tipo_activo_id                 *string
	marca_id                       *string
	modelo_id                      *string
	proveedor_id                   *string
	region_id                      *string
	finca_id                       *string
	departamento_id                *string
	area_id                        *string
	serie                          *string
	hostname                       *string
	fecha_registro                 *time.Time
	fecha_fin_garantia             *time.Time
	solicitante                    *string
	correo_electronico             *string
	orden_compra                   *string
	cuenta_contable                *string
	tipo_costo                     *activo.TipoCosto
	cuotas                         *int
	addcuotas                      *int
	moneda                         *activo.Moneda
	costo                          *float64
	addcosto                       *float64
	procesador                     *string
	ram                            *int
	addram                         *int
	almacenamiento                 *string
	tarjeta_grafica                *string
	wifi                           *bool
	ethernet                       *bool
	puertos_ethernet               *string
	puertos_sfp                    *string
	puerto_consola                 *bool
	puertos_poe                    *string
	alimentacion                   *string
	administrable                  *bool
	tamano                         *string
	color                          *string
	conectores                     *string
	cables                         *string
	estado                         *activo.Estado
	fecha_baja                     *time.Time
	motivo_baja                    *string
	usuario_baja_id                *string
	documentos_baja                *[]string
	appenddocumentos_baja          []string
	assigned_to_id                 *string
	ultimo_mantenimiento           *time.Time
	proximo_mantenimiento          *time.Time
	tecnico_mantenimiento_id       *string
	ultimo_mantenimiento_hallazgos *string
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*Activo, error)
	predicates                     []predicate.Activo
}

var _ ent.Mutation = (*ActivoMutation)(nil)

// activoOption allows management of the mutation configuration using functional options.
type activoOption func(*ActivoMutation)

// newActivoMutation creates new mutation for the Activo entity.
func newActivoMutation(c config, op Op, opts ...activoOption) *ActivoMutation {
	m := &ActivoMutation{
		config:        c,
		op:            op,
		typ:           TypeActivo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivoID sets the ID field of the mutation.
func withActivoID(id string) activoOption {
	return func(m *ActivoMutation) {
		var (
			err   error
			once  sync.Once
			value *Activo
		)
		m.oldValue = func(ctx context.Context) (*Activo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Activo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivo sets the old Activo of the mutation.
func withActivo(node *Activo) activoOption {
	return func(m *ActivoMutation) {
		m.oldValue = func(context.Context) (*Activo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Activo entities.
func (m *ActivoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Activo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ActivoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ActivoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ActivoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (m *ActivoMutation) SetTipoActivoID(s string) {
	m.tipo_activo_id = &s
}

// TipoActivoID returns the value of the "tipo_activo_id" field in the mutation.
func (m *ActivoMutation) TipoActivoID() (r string, exists bool) {
	v := m.tipo_activo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoActivoID returns the old "tipo_activo_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldTipoActivoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoActivoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoActivoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoActivoID: %w", err)
	}
	return oldValue.TipoActivoID, nil
}

// ResetTipoActivoID resets all changes to the "tipo_activo_id" field.
func (m *ActivoMutation) ResetTipoActivoID() {
	m.tipo_activo_id = nil
}

// SetMarcaID sets the "marca_id" field.
func (m *ActivoMutation) SetMarcaID(s string) {
	m.marca_id = &s
}

// MarcaID returns the value of the "marca_id" field in the mutation.
func (m *ActivoMutation) MarcaID() (r string, exists bool) {
	v := m.marca_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMarcaID returns the old "marca_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldMarcaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarcaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarcaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarcaID: %w", err)
	}
	return oldValue.MarcaID, nil
}

// ResetMarcaID resets all changes to the "marca_id" field.
func (m *ActivoMutation) ResetMarcaID() {
	m.marca_id = nil
}

// SetModeloID sets the "modelo_id" field.
func (m *ActivoMutation) SetModeloID(s string) {
	m.modelo_id = &s
}

// ModeloID returns the value of the "modelo_id" field in the mutation.
func (m *ActivoMutation) ModeloID() (r string, exists bool) {
	v := m.modelo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModeloID returns the old "modelo_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldModeloID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModeloID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModeloID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModeloID: %w", err)
	}
	return oldValue.ModeloID, nil
}

// ResetModeloID resets all changes to the "modelo_id" field.
func (m *ActivoMutation) ResetModeloID() {
	m.modelo_id = nil
}

// SetProveedorID sets the "proveedor_id" field.
func (m *ActivoMutation) SetProveedorID(s string) {
	m.proveedor_id = &s
}

// ProveedorID returns the value of the "proveedor_id" field in the mutation.
func (m *ActivoMutation) ProveedorID() (r string, exists bool) {
	v := m.proveedor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProveedorID returns the old "proveedor_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldProveedorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProveedorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProveedorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProveedorID: %w", err)
	}
	return oldValue.ProveedorID, nil
}

// ResetProveedorID resets all changes to the "proveedor_id" field.
func (m *ActivoMutation) ResetProveedorID() {
	m.proveedor_id = nil
}

// SetRegionID sets the "region_id" field.
func (m *ActivoMutation) SetRegionID(s string) {
	m.region_id = &s
}

// RegionID returns the value of the "region_id" field in the mutation.
func (m *ActivoMutation) RegionID() (r string, exists bool) {
	v := m.region_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRegionID returns the old "region_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldRegionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegionID: %w", err)
	}
	return oldValue.RegionID, nil
}

// ResetRegionID resets all changes to the "region_id" field.
func (m *ActivoMutation) ResetRegionID() {
	m.region_id = nil
}

// SetFincaID sets the "finca_id" field.
func (m *ActivoMutation) SetFincaID(s string) {
	m.finca_id = &s
}

// FincaID returns the value of the "finca_id" field in the mutation.
func (m *ActivoMutation) FincaID() (r string, exists bool) {
	v := m.finca_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFincaID returns the old "finca_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldFincaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFincaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFincaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFincaID: %w", err)
	}
	return oldValue.FincaID, nil
}

// ResetFincaID resets all changes to the "finca_id" field.
func (m *ActivoMutation) ResetFincaID() {
	m.finca_id = nil
}

// SetDepartamentoID sets the "departamento_id" field.
func (m *ActivoMutation) SetDepartamentoID(s string) {
	m.departamento_id = &s
}

// DepartamentoID returns the value of the "departamento_id" field in the mutation.
func (m *ActivoMutation) DepartamentoID() (r string, exists bool) {
	v := m.departamento_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartamentoID returns the old "departamento_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldDepartamentoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartamentoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartamentoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartamentoID: %w", err)
	}
	return oldValue.DepartamentoID, nil
}

// ResetDepartamentoID resets all changes to the "departamento_id" field.
func (m *ActivoMutation) ResetDepartamentoID() {
	m.departamento_id = nil
}

// SetAreaID sets the "area_id" field.
func (m *ActivoMutation) SetAreaID(s string) {
	m.area_id = &s
}

// AreaID returns the value of the "area_id" field in the mutation.
func (m *ActivoMutation) AreaID() (r string, exists bool) {
	v := m.area_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaID returns the old "area_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldAreaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaID: %w", err)
	}
	return oldValue.AreaID, nil
}

// ResetAreaID resets all changes to the "area_id" field.
func (m *ActivoMutation) ResetAreaID() {
	m.area_id = nil
}

// SetSerie sets the "serie" field.
func (m *ActivoMutation) SetSerie(s string) {
	m.serie = &s
}

// Serie returns the value of the "serie" field in the mutation.
func (m *ActivoMutation) Serie() (r string, exists bool) {
	v := m.serie
	if v == nil {
		return
	}
	return *v, true
}

// OldSerie returns the old "serie" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldSerie(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerie is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerie requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerie: %w", err)
	}
	return oldValue.Serie, nil
}

// ResetSerie resets all changes to the "serie" field.
func (m *ActivoMutation) ResetSerie() {
	m.serie = nil
}

// SetHostname sets the "hostname" field.
func (m *ActivoMutation) SetHostname(s string) {
	m.hostname = &s
}

// Hostname returns the value of the "hostname" field in the mutation.
func (m *ActivoMutation) Hostname() (r string, exists bool) {
	v := m.hostname
	if v == nil {
		return
	}
	return *v, true
}

// OldHostname returns the old "hostname" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldHostname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostname: %w", err)
	}
	return oldValue.Hostname, nil
}

// ResetHostname resets all changes to the "hostname" field.
func (m *ActivoMutation) ResetHostname() {
	m.hostname = nil
}

// SetFechaRegistro sets the "fecha_registro" field.
func (m *ActivoMutation) SetFechaRegistro(t time.Time) {
	m.fecha_registro = &t
}

// FechaRegistro returns the value of the "fecha_registro" field in the mutation.
func (m *ActivoMutation) FechaRegistro() (r time.Time, exists bool) {
	v := m.fecha_registro
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaRegistro returns the old "fecha_registro" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldFechaRegistro(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaRegistro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaRegistro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaRegistro: %w", err)
	}
	return oldValue.FechaRegistro, nil
}

// ResetFechaRegistro resets all changes to the "fecha_registro" field.
func (m *ActivoMutation) ResetFechaRegistro() {
	m.fecha_registro = nil
}

// SetFechaFinGarantia sets the "fecha_fin_garantia" field.
func (m *ActivoMutation) SetFechaFinGarantia(t time.Time) {
	m.fecha_fin_garantia = &t
}

// FechaFinGarantia returns the value of the "fecha_fin_garantia" field in the mutation.
func (m *ActivoMutation) FechaFinGarantia() (r time.Time, exists bool) {
	v := m.fecha_fin_garantia
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaFinGarantia returns the old "fecha_fin_garantia" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldFechaFinGarantia(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaFinGarantia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaFinGarantia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaFinGarantia: %w", err)
	}
	return oldValue.FechaFinGarantia, nil
}

// ClearFechaFinGarantia clears the value of the "fecha_fin_garantia" field.
func (m *ActivoMutation) ClearFechaFinGarantia() {
	m.fecha_fin_garantia = nil
	m.clearedFields[activo.FieldFechaFinGarantia] = struct{}{}
}

// FechaFinGarantiaCleared returns if the "fecha_fin_garantia" field was cleared in this mutation.
func (m *ActivoMutation) FechaFinGarantiaCleared() bool {
	_, ok := m.clearedFields[activo.FieldFechaFinGarantia]
	return ok
}

// ResetFechaFinGarantia resets all changes to the "fecha_fin_garantia" field.
func (m *ActivoMutation) ResetFechaFinGarantia() {
	m.fecha_fin_garantia = nil
	delete(m.clearedFields, activo.FieldFechaFinGarantia)
}

// SetSolicitante sets the "solicitante" field.
func (m *ActivoMutation) SetSolicitante(s string) {
	m.solicitante = &s
}

// Solicitante returns the value of the "solicitante" field in the mutation.
func (m *ActivoMutation) Solicitante() (r string, exists bool) {
	v := m.solicitante
	if v == nil {
		return
	}
	return *v, true
}

// OldSolicitante returns the old "solicitante" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldSolicitante(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolicitante is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolicitante requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolicitante: %w", err)
	}
	return oldValue.Solicitante, nil
}

// ClearSolicitante clears the value of the "solicitante" field.
func (m *ActivoMutation) ClearSolicitante() {
	m.solicitante = nil
	m.clearedFields[activo.FieldSolicitante] = struct{}{}
}

// SolicitanteCleared returns if the "solicitante" field was cleared in this mutation.
func (m *ActivoMutation) SolicitanteCleared() bool {
	_, ok := m.clearedFields[activo.FieldSolicitante]
	return ok
}

// ResetSolicitante resets all changes to the "solicitante" field.
func (m *ActivoMutation) ResetSolicitante() {
	m.solicitante = nil
	delete(m.clearedFields, activo.FieldSolicitante)
}

// SetCorreoElectronico sets the "correo_electronico" field.
func (m *ActivoMutation) SetCorreoElectronico(s string) {
	m.correo_electronico = &s
}

// CorreoElectronico returns the value of the "correo_electronico" field in the mutation.
func (m *ActivoMutation) CorreoElectronico() (r string, exists bool) {
	v := m.correo_electronico
	if v == nil {
		return
	}
	return *v, true
}

// OldCorreoElectronico returns the old "correo_electronico" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldCorreoElectronico(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorreoElectronico is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorreoElectronico requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorreoElectronico: %w", err)
	}
	return oldValue.CorreoElectronico, nil
}

// ClearCorreoElectronico clears the value of the "correo_electronico" field.
func (m *ActivoMutation) ClearCorreoElectronico() {
	m.correo_electronico = nil
	m.clearedFields[activo.FieldCorreoElectronico] = struct{}{}
}

// CorreoElectronicoCleared returns if the "correo_electronico" field was cleared in this mutation.
func (m *ActivoMutation) CorreoElectronicoCleared() bool {
	_, ok := m.clearedFields[activo.FieldCorreoElectronico]
	return ok
}

// ResetCorreoElectronico resets all changes to the "correo_electronico" field.
func (m *ActivoMutation) ResetCorreoElectronico() {
	m.correo_electronico = nil
	delete(m.clearedFields, activo.FieldCorreoElectronico)
}

// SetOrdenCompra sets the "orden_compra" field.
func (m *ActivoMutation) SetOrdenCompra(s string) {
	m.orden_compra = &s
}

// OrdenCompra returns the value of the "orden_compra" field in the mutation.
func (m *ActivoMutation) OrdenCompra() (r string, exists bool) {
	v := m.orden_compra
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdenCompra returns the old "orden_compra" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldOrdenCompra(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdenCompra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdenCompra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdenCompra: %w", err)
	}
	return oldValue.OrdenCompra, nil
}

// ClearOrdenCompra clears the value of the "orden_compra" field.
func (m *ActivoMutation) ClearOrdenCompra() {
	m.orden_compra = nil
	m.clearedFields[activo.FieldOrdenCompra] = struct{}{}
}

// OrdenCompraCleared returns if the "orden_compra" field was cleared in this mutation.
func (m *ActivoMutation) OrdenCompraCleared() bool {
	_, ok := m.clearedFields[activo.FieldOrdenCompra]
	return ok
}

// ResetOrdenCompra resets all changes to the "orden_compra" field.
func (m *ActivoMutation) ResetOrdenCompra() {
	m.orden_compra = nil
	delete(m.clearedFields, activo.FieldOrdenCompra)
}

// SetCuentaContable sets the "cuenta_contable" field.
func (m *ActivoMutation) SetCuentaContable(s string) {
	m.cuenta_contable = &s
}

// CuentaContable returns the value of the "cuenta_contable" field in the mutation.
func (m *ActivoMutation) CuentaContable() (r string, exists bool) {
	v := m.cuenta_contable
	if v == nil {
		return
	}
	return *v, true
}

// OldCuentaContable returns the old "cuenta_contable" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldCuentaContable(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCuentaContable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCuentaContable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCuentaContable: %w", err)
	}
	return oldValue.CuentaContable, nil
}

// ClearCuentaContable clears the value of the "cuenta_contable" field.
func (m *ActivoMutation) ClearCuentaContable() {
	m.cuenta_contable = nil
	m.clearedFields[activo.FieldCuentaContable] = struct{}{}
}

// CuentaContableCleared returns if the "cuenta_contable" field was cleared in this mutation.
func (m *ActivoMutation) CuentaContableCleared() bool {
	_, ok := m.clearedFields[activo.FieldCuentaContable]
	return ok
}

// ResetCuentaContable resets all changes to the "cuenta_contable" field.
func (m *ActivoMutation) ResetCuentaContable() {
	m.cuenta_contable = nil
	delete(m.clearedFields, activo.FieldCuentaContable)
}

// SetTipoCosto sets the "tipo_costo" field.
func (m *ActivoMutation) SetTipoCosto(ac activo.TipoCosto) {
	m.tipo_costo = &ac
}

// TipoCosto returns the value of the "tipo_costo" field in the mutation.
func (m *ActivoMutation) TipoCosto() (r activo.TipoCosto, exists bool) {
	v := m.tipo_costo
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoCosto returns the old "tipo_costo" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldTipoCosto(ctx context.Context) (v activo.TipoCosto, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoCosto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoCosto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoCosto: %w", err)
	}
	return oldValue.TipoCosto, nil
}

// ClearTipoCosto clears the value of the "tipo_costo" field.
func (m *ActivoMutation) ClearTipoCosto() {
	m.tipo_costo = nil
	m.clearedFields[activo.FieldTipoCosto] = struct{}{}
}

// TipoCostoCleared returns if the "tipo_costo" field was cleared in this mutation.
func (m *ActivoMutation) TipoCostoCleared() bool {
	_, ok := m.clearedFields[activo.FieldTipoCosto]
	return ok
}

// ResetTipoCosto resets all changes to the "tipo_costo" field.
func (m *ActivoMutation) ResetTipoCosto() {
	m.tipo_costo = nil
	delete(m.clearedFields, activo.FieldTipoCosto)
}

// SetCuotas sets the "cuotas" field.
func (m *ActivoMutation) SetCuotas(i int) {
	m.cuotas = &i
	m.addcuotas = nil
}

// Cuotas returns the value of the "cuotas" field in the mutation.
func (m *ActivoMutation) Cuotas() (r int, exists bool) {
	v := m.cuotas
	if v == nil {
		return
	}
	return *v, true
}

// OldCuotas returns the old "cuotas" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldCuotas(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCuotas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCuotas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCuotas: %w", err)
	}
	return oldValue.Cuotas, nil
}

// AddCuotas adds i to the "cuotas" field.
func (m *ActivoMutation) AddCuotas(i int) {
	if m.addcuotas != nil {
		*m.addcuotas += i
	} else {
		m.addcuotas = &i
	}
}

// AddedCuotas returns the value that was added to the "cuotas" field in this mutation.
func (m *ActivoMutation) AddedCuotas() (r int, exists bool) {
	v := m.addcuotas
	if v == nil {
		return
	}
	return *v, true
}

// ClearCuotas clears the value of the "cuotas" field.
func (m *ActivoMutation) ClearCuotas() {
	m.cuotas = nil
	m.addcuotas = nil
	m.clearedFields[activo.FieldCuotas] = struct{}{}
}

// CuotasCleared returns if the "cuotas" field was cleared in this mutation.
func (m *ActivoMutation) CuotasCleared() bool {
	_, ok := m.clearedFields[activo.FieldCuotas]
	return ok
}

// ResetCuotas resets all changes to the "cuotas" field.
func (m *ActivoMutation) ResetCuotas() {
	m.cuotas = nil
	m.addcuotas = nil
	delete(m.clearedFields, activo.FieldCuotas)
}

// SetMoneda sets the "moneda" field.
func (m *ActivoMutation) SetMoneda(a activo.Moneda) {
	m.moneda = &a
}

// Moneda returns the value of the "moneda" field in the mutation.
func (m *ActivoMutation) Moneda() (r activo.Moneda, exists bool) {
	v := m.moneda
	if v == nil {
		return
	}
	return *v, true
}

// OldMoneda returns the old "moneda" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldMoneda(ctx context.Context) (v activo.Moneda, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoneda is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoneda requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoneda: %w", err)
	}
	return oldValue.Moneda, nil
}

// ClearMoneda clears the value of the "moneda" field.
func (m *ActivoMutation) ClearMoneda() {
	m.moneda = nil
	m.clearedFields[activo.FieldMoneda] = struct{}{}
}

// MonedaCleared returns if the "moneda" field was cleared in this mutation.
func (m *ActivoMutation) MonedaCleared() bool {
	_, ok := m.clearedFields[activo.FieldMoneda]
	return ok
}

// ResetMoneda resets all changes to the "moneda" field.
func (m *ActivoMutation) ResetMoneda() {
	m.moneda = nil
	delete(m.clearedFields, activo.FieldMoneda)
}

// SetCosto sets the "costo" field.
func (m *ActivoMutation) SetCosto(f float64) {
	m.costo = &f
	m.addcosto = nil
}

// Costo returns the value of the "costo" field in the mutation.
func (m *ActivoMutation) Costo() (r float64, exists bool) {
	v := m.costo
	if v == nil {
		return
	}
	return *v, true
}

// OldCosto returns the old "costo" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldCosto(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCosto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCosto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCosto: %w", err)
	}
	return oldValue.Costo, nil
}

// AddCosto adds f to the "costo" field.
func (m *ActivoMutation) AddCosto(f float64) {
	if m.addcosto != nil {
		*m.addcosto += f
	} else {
		m.addcosto = &f
	}
}

// AddedCosto returns the value that was added to the "costo" field in this mutation.
func (m *ActivoMutation) AddedCosto() (r float64, exists bool) {
	v := m.addcosto
	if v == nil {
		return
	}
	return *v, true
}

// ClearCosto clears the value of the "costo" field.
func (m *ActivoMutation) ClearCosto() {
	m.costo = nil
	m.addcosto = nil
	m.clearedFields[activo.FieldCosto] = struct{}{}
}

// CostoCleared returns if the "costo" field was cleared in this mutation.
func (m *ActivoMutation) CostoCleared() bool {
	_, ok := m.clearedFields[activo.FieldCosto]
	return ok
}

// ResetCosto resets all changes to the "costo" field.
func (m *ActivoMutation) ResetCosto() {
	m.costo = nil
	m.addcosto = nil
	delete(m.clearedFields, activo.FieldCosto)
}

// SetProcesador sets the "procesador" field.
func (m *ActivoMutation) SetProcesador(s string) {
	m.procesador = &s
}

// Procesador returns the value of the "procesador" field in the mutation.
func (m *ActivoMutation) Procesador() (r string, exists bool) {
	v := m.procesador
	if v == nil {
		return
	}
	return *v, true
}

// OldProcesador returns the old "procesador" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldProcesador(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcesador is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcesador requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcesador: %w", err)
	}
	return oldValue.Procesador, nil
}

// ClearProcesador clears the value of the "procesador" field.
func (m *ActivoMutation) ClearProcesador() {
	m.procesador = nil
	m.clearedFields[activo.FieldProcesador] = struct{}{}
}

// ProcesadorCleared returns if the "procesador" field was cleared in this mutation.
func (m *ActivoMutation) ProcesadorCleared() bool {
	_, ok := m.clearedFields[activo.FieldProcesador]
	return ok
}

// ResetProcesador resets all changes to the "procesador" field.
func (m *ActivoMutation) ResetProcesador() {
	m.procesador = nil
	delete(m.clearedFields, activo.FieldProcesador)
}

// SetRAM sets the "ram" field.
func (m *ActivoMutation) SetRAM(i int) {
	m.ram = &i
	m.addram = nil
}

// RAM returns the value of the "ram" field in the mutation.
func (m *ActivoMutation) RAM() (r int, exists bool) {
	v := m.ram
	if v == nil {
		return
	}
	return *v, true
}

// OldRAM returns the old "ram" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldRAM(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRAM is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRAM requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRAM: %w", err)
	}
	return oldValue.RAM, nil
}

// AddRAM adds i to the "ram" field.
func (m *ActivoMutation) AddRAM(i int) {
	if m.addram != nil {
		*m.addram += i
	} else {
		m.addram = &i
	}
}

// AddedRAM returns the value that was added to the "ram" field in this mutation.
func (m *ActivoMutation) AddedRAM() (r int, exists bool) {
	v := m.addram
	if v == nil {
		return
	}
	return *v, true
}

// ClearRAM clears the value of the "ram" field.
func (m *ActivoMutation) ClearRAM() {
	m.ram = nil
	m.addram = nil
	m.clearedFields[activo.FieldRAM] = struct{}{}
}

// RAMCleared returns if the "ram" field was cleared in this mutation.
func (m *ActivoMutation) RAMCleared() bool {
	_, ok := m.clearedFields[activo.FieldRAM]
	return ok
}

// ResetRAM resets all changes to the "ram" field.
func (m *ActivoMutation) ResetRAM() {
	m.ram = nil
	m.addram = nil
	delete(m.clearedFields, activo.FieldRAM)
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (m *ActivoMutation) SetAlmacenamiento(s string) {
	m.almacenamiento = &s
}

// Almacenamiento returns the value of the "almacenamiento" field in the mutation.
func (m *ActivoMutation) Almacenamiento() (r string, exists bool) {
	v := m.almacenamiento
	if v == nil {
		return
	}
	return *v, true
}

// OldAlmacenamiento returns the old "almacenamiento" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldAlmacenamiento(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlmacenamiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlmacenamiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlmacenamiento: %w", err)
	}
	return oldValue.Almacenamiento, nil
}

// ClearAlmacenamiento clears the value of the "almacenamiento" field.
func (m *ActivoMutation) ClearAlmacenamiento() {
	m.almacenamiento = nil
	m.clearedFields[activo.FieldAlmacenamiento] = struct{}{}
}

// AlmacenamientoCleared returns if the "almacenamiento" field was cleared in this mutation.
func (m *ActivoMutation) AlmacenamientoCleared() bool {
	_, ok := m.clearedFields[activo.FieldAlmacenamiento]
	return ok
}

// ResetAlmacenamiento resets all changes to the "almacenamiento" field.
func (m *ActivoMutation) ResetAlmacenamiento() {
	m.almacenamiento = nil
	delete(m.clearedFields, activo.FieldAlmacenamiento)
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (m *ActivoMutation) SetTarjetaGrafica(s string) {
	m.tarjeta_grafica = &s
}

// TarjetaGrafica returns the value of the "tarjeta_grafica" field in the mutation.
func (m *ActivoMutation) TarjetaGrafica() (r string, exists bool) {
	v := m.tarjeta_grafica
	if v == nil {
		return
	}
	return *v, true
}

// OldTarjetaGrafica returns the old "tarjeta_grafica" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldTarjetaGrafica(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarjetaGrafica is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarjetaGrafica requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarjetaGrafica: %w", err)
	}
	return oldValue.TarjetaGrafica, nil
}

// ClearTarjetaGrafica clears the value of the "tarjeta_grafica" field.
func (m *ActivoMutation) ClearTarjetaGrafica() {
	m.tarjeta_grafica = nil
	m.clearedFields[activo.FieldTarjetaGrafica] = struct{}{}
}

// TarjetaGraficaCleared returns if the "tarjeta_grafica" field was cleared in this mutation.
func (m *ActivoMutation) TarjetaGraficaCleared() bool {
	_, ok := m.clearedFields[activo.FieldTarjetaGrafica]
	return ok
}

// ResetTarjetaGrafica resets all changes to the "tarjeta_grafica" field.
func (m *ActivoMutation) ResetTarjetaGrafica() {
	m.tarjeta_grafica = nil
	delete(m.clearedFields, activo.FieldTarjetaGrafica)
}

// SetWifi sets the "wifi" field.
func (m *ActivoMutation) SetWifi(b bool) {
	m.wifi = &b
}

// Wifi returns the value of the "wifi" field in the mutation.
func (m *ActivoMutation) Wifi() (r bool, exists bool) {
	v := m.wifi
	if v == nil {
		return
	}
	return *v, true
}

// OldWifi returns the old "wifi" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldWifi(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWifi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWifi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWifi: %w", err)
	}
	return oldValue.Wifi, nil
}

// ClearWifi clears the value of the "wifi" field.
func (m *ActivoMutation) ClearWifi() {
	m.wifi = nil
	m.clearedFields[activo.FieldWifi] = struct{}{}
}

// WifiCleared returns if the "wifi" field was cleared in this mutation.
func (m *ActivoMutation) WifiCleared() bool {
	_, ok := m.clearedFields[activo.FieldWifi]
	return ok
}

// ResetWifi resets all changes to the "wifi" field.
func (m *ActivoMutation) ResetWifi() {
	m.wifi = nil
	delete(m.clearedFields, activo.FieldWifi)
}

// SetEthernet sets the "ethernet" field.
func (m *ActivoMutation) SetEthernet(b bool) {
	m.ethernet = &b
}

// Ethernet returns the value of the "ethernet" field in the mutation.
func (m *ActivoMutation) Ethernet() (r bool, exists bool) {
	v := m.ethernet
	if v == nil {
		return
	}
	return *v, true
}

// OldEthernet returns the old "ethernet" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldEthernet(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEthernet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEthernet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEthernet: %w", err)
	}
	return oldValue.Ethernet, nil
}

// ClearEthernet clears the value of the "ethernet" field.
func (m *ActivoMutation) ClearEthernet() {
	m.ethernet = nil
	m.clearedFields[activo.FieldEthernet] = struct{}{}
}

// EthernetCleared returns if the "ethernet" field was cleared in this mutation.
func (m *ActivoMutation) EthernetCleared() bool {
	_, ok := m.clearedFields[activo.FieldEthernet]
	return ok
}

// ResetEthernet resets all changes to the "ethernet" field.
func (m *ActivoMutation) ResetEthernet() {
	m.ethernet = nil
	delete(m.clearedFields, activo.FieldEthernet)
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (m *ActivoMutation) SetPuertosEthernet(s string) {
	m.puertos_ethernet = &s
}

// PuertosEthernet returns the value of the "puertos_ethernet" field in the mutation.
func (m *ActivoMutation) PuertosEthernet() (r string, exists bool) {
	v := m.puertos_ethernet
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertosEthernet returns the old "puertos_ethernet" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldPuertosEthernet(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertosEthernet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertosEthernet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertosEthernet: %w", err)
	}
	return oldValue.PuertosEthernet, nil
}

// ClearPuertosEthernet clears the value of the "puertos_ethernet" field.
func (m *ActivoMutation) ClearPuertosEthernet() {
	m.puertos_ethernet = nil
	m.clearedFields[activo.FieldPuertosEthernet] = struct{}{}
}

// PuertosEthernetCleared returns if the "puertos_ethernet" field was cleared in this mutation.
func (m *ActivoMutation) PuertosEthernetCleared() bool {
	_, ok := m.clearedFields[activo.FieldPuertosEthernet]
	return ok
}

// ResetPuertosEthernet resets all changes to the "puertos_ethernet" field.
func (m *ActivoMutation) ResetPuertosEthernet() {
	m.puertos_ethernet = nil
	delete(m.clearedFields, activo.FieldPuertosEthernet)
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (m *ActivoMutation) SetPuertosSfp(s string) {
	m.puertos_sfp = &s
}

// PuertosSfp returns the value of the "puertos_sfp" field in the mutation.
func (m *ActivoMutation) PuertosSfp() (r string, exists bool) {
	v := m.puertos_sfp
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertosSfp returns the old "puertos_sfp" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldPuertosSfp(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertosSfp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertosSfp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertosSfp: %w", err)
	}
	return oldValue.PuertosSfp, nil
}

// ClearPuertosSfp clears the value of the "puertos_sfp" field.
func (m *ActivoMutation) ClearPuertosSfp() {
	m.puertos_sfp = nil
	m.clearedFields[activo.FieldPuertosSfp] = struct{}{}
}

// PuertosSfpCleared returns if the "puertos_sfp" field was cleared in this mutation.
func (m *ActivoMutation) PuertosSfpCleared() bool {
	_, ok := m.clearedFields[activo.FieldPuertosSfp]
	return ok
}

// ResetPuertosSfp resets all changes to the "puertos_sfp" field.
func (m *ActivoMutation) ResetPuertosSfp() {
	m.puertos_sfp = nil
	delete(m.clearedFields, activo.FieldPuertosSfp)
}

// SetPuertoConsola sets the "puerto_consola" field.
func (m *ActivoMutation) SetPuertoConsola(b bool) {
	m.puerto_consola = &b
}

// PuertoConsola returns the value of the "puerto_consola" field in the mutation.
func (m *ActivoMutation) PuertoConsola() (r bool, exists bool) {
	v := m.puerto_consola
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertoConsola returns the old "puerto_consola" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldPuertoConsola(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertoConsola is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertoConsola requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertoConsola: %w", err)
	}
	return oldValue.PuertoConsola, nil
}

// ClearPuertoConsola clears the value of the "puerto_consola" field.
func (m *ActivoMutation) ClearPuertoConsola() {
	m.puerto_consola = nil
	m.clearedFields[activo.FieldPuertoConsola] = struct{}{}
}

// PuertoConsolaCleared returns if the "puerto_consola" field was cleared in this mutation.
func (m *ActivoMutation) PuertoConsolaCleared() bool {
	_, ok := m.clearedFields[activo.FieldPuertoConsola]
	return ok
}

// ResetPuertoConsola resets all changes to the "puerto_consola" field.
func (m *ActivoMutation) ResetPuertoConsola() {
	m.puerto_consola = nil
	delete(m.clearedFields, activo.FieldPuertoConsola)
}

// SetPuertosPoe sets the "puertos_poe" field.
func (m *ActivoMutation) SetPuertosPoe(s string) {
	m.puertos_poe = &s
}

// PuertosPoe returns the value of the "puertos_poe" field in the mutation.
func (m *ActivoMutation) PuertosPoe() (r string, exists bool) {
	v := m.puertos_poe
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertosPoe returns the old "puertos_poe" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldPuertosPoe(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertosPoe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertosPoe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertosPoe: %w", err)
	}
	return oldValue.PuertosPoe, nil
}

// ClearPuertosPoe clears the value of the "puertos_poe" field.
func (m *ActivoMutation) ClearPuertosPoe() {
	m.puertos_poe = nil
	m.clearedFields[activo.FieldPuertosPoe] = struct{}{}
}

// PuertosPoeCleared returns if the "puertos_poe" field was cleared in this mutation.
func (m *ActivoMutation) PuertosPoeCleared() bool {
	_, ok := m.clearedFields[activo.FieldPuertosPoe]
	return ok
}

// ResetPuertosPoe resets all changes to the "puertos_poe" field.
func (m *ActivoMutation) ResetPuertosPoe() {
	m.puertos_poe = nil
	delete(m.clearedFields, activo.FieldPuertosPoe)
}

// SetAlimentacion sets the "alimentacion" field.
func (m *ActivoMutation) SetAlimentacion(s string) {
	m.alimentacion = &s
}

// Alimentacion returns the value of the "alimentacion" field in the mutation.
func (m *ActivoMutation) Alimentacion() (r string, exists bool) {
	v := m.alimentacion
	if v == nil {
		return
	}
	return *v, true
}

// OldAlimentacion returns the old "alimentacion" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldAlimentacion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlimentacion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlimentacion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlimentacion: %w", err)
	}
	return oldValue.Alimentacion, nil
}

// ClearAlimentacion clears the value of the "alimentacion" field.
func (m *ActivoMutation) ClearAlimentacion() {
	m.alimentacion = nil
	m.clearedFields[activo.FieldAlimentacion] = struct{}{}
}

// AlimentacionCleared returns if the "alimentacion" field was cleared in this mutation.
func (m *ActivoMutation) AlimentacionCleared() bool {
	_, ok := m.clearedFields[activo.FieldAlimentacion]
	return ok
}

// ResetAlimentacion resets all changes to the "alimentacion" field.
func (m *ActivoMutation) ResetAlimentacion() {
	m.alimentacion = nil
	delete(m.clearedFields, activo.FieldAlimentacion)
}

// SetAdministrable sets the "administrable" field.
func (m *ActivoMutation) SetAdministrable(b bool) {
	m.administrable = &b
}

// Administrable returns the value of the "administrable" field in the mutation.
func (m *ActivoMutation) Administrable() (r bool, exists bool) {
	v := m.administrable
	if v == nil {
		return
	}
	return *v, true
}

// OldAdministrable returns the old "administrable" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldAdministrable(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdministrable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdministrable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdministrable: %w", err)
	}
	return oldValue.Administrable, nil
}

// ClearAdministrable clears the value of the "administrable" field.
func (m *ActivoMutation) ClearAdministrable() {
	m.administrable = nil
	m.clearedFields[activo.FieldAdministrable] = struct{}{}
}

// AdministrableCleared returns if the "administrable" field was cleared in this mutation.
func (m *ActivoMutation) AdministrableCleared() bool {
	_, ok := m.clearedFields[activo.FieldAdministrable]
	return ok
}

// ResetAdministrable resets all changes to the "administrable" field.
func (m *ActivoMutation) ResetAdministrable() {
	m.administrable = nil
	delete(m.clearedFields, activo.FieldAdministrable)
}

// SetTamano sets the "tamano" field.
func (m *ActivoMutation) SetTamano(s string) {
	m.tamano = &s
}

// Tamano returns the value of the "tamano" field in the mutation.
func (m *ActivoMutation) Tamano() (r string, exists bool) {
	v := m.tamano
	if v == nil {
		return
	}
	return *v, true
}

// OldTamano returns the old "tamano" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldTamano(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTamano is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTamano requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTamano: %w", err)
	}
	return oldValue.Tamano, nil
}

// ClearTamano clears the value of the "tamano" field.
func (m *ActivoMutation) ClearTamano() {
	m.tamano = nil
	m.clearedFields[activo.FieldTamano] = struct{}{}
}

// TamanoCleared returns if the "tamano" field was cleared in this mutation.
func (m *ActivoMutation) TamanoCleared() bool {
	_, ok := m.clearedFields[activo.FieldTamano]
	return ok
}

// ResetTamano resets all changes to the "tamano" field.
func (m *ActivoMutation) ResetTamano() {
	m.tamano = nil
	delete(m.clearedFields, activo.FieldTamano)
}

// SetColor sets the "color" field.
func (m *ActivoMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *ActivoMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *ActivoMutation) ClearColor() {
	m.color = nil
	m.clearedFields[activo.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *ActivoMutation) ColorCleared() bool {
	_, ok := m.clearedFields[activo.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *ActivoMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, activo.FieldColor)
}

// SetConectores sets the "conectores" field.
func (m *ActivoMutation) SetConectores(s string) {
	m.conectores = &s
}

// Conectores returns the value of the "conectores" field in the mutation.
func (m *ActivoMutation) Conectores() (r string, exists bool) {
	v := m.conectores
	if v == nil {
		return
	}
	return *v, true
}

// OldConectores returns the old "conectores" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldConectores(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConectores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConectores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConectores: %w", err)
	}
	return oldValue.Conectores, nil
}

// ClearConectores clears the value of the "conectores" field.
func (m *ActivoMutation) ClearConectores() {
	m.conectores = nil
	m.clearedFields[activo.FieldConectores] = struct{}{}
}

// ConectoresCleared returns if the "conectores" field was cleared in this mutation.
func (m *ActivoMutation) ConectoresCleared() bool {
	_, ok := m.clearedFields[activo.FieldConectores]
	return ok
}

// ResetConectores resets all changes to the "conectores" field.
func (m *ActivoMutation) ResetConectores() {
	m.conectores = nil
	delete(m.clearedFields, activo.FieldConectores)
}

// SetCables sets the "cables" field.
func (m *ActivoMutation) SetCables(s string) {
	m.cables = &s
}

// Cables returns the value of the "cables" field in the mutation.
func (m *ActivoMutation) Cables() (r string, exists bool) {
	v := m.cables
	if v == nil {
		return
	}
	return *v, true
}

// OldCables returns the old "cables" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldCables(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCables: %w", err)
	}
	return oldValue.Cables, nil
}

// ClearCables clears the value of the "cables" field.
func (m *ActivoMutation) ClearCables() {
	m.cables = nil
	m.clearedFields[activo.FieldCables] = struct{}{}
}

// CablesCleared returns if the "cables" field was cleared in this mutation.
func (m *ActivoMutation) CablesCleared() bool {
	_, ok := m.clearedFields[activo.FieldCables]
	return ok
}

// ResetCables resets all changes to the "cables" field.
func (m *ActivoMutation) ResetCables() {
	m.cables = nil
	delete(m.clearedFields, activo.FieldCables)
}

// SetEstado sets the "estado" field.
func (m *ActivoMutation) SetEstado(a activo.Estado) {
	m.estado = &a
}

// Estado returns the value of the "estado" field in the mutation.
func (m *ActivoMutation) Estado() (r activo.Estado, exists bool) {
	v := m.estado
	if v == nil {
		return
	}
	return *v, true
}

// OldEstado returns the old "estado" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldEstado(ctx context.Context) (v activo.Estado, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstado: %w", err)
	}
	return oldValue.Estado, nil
}

// ResetEstado resets all changes to the "estado" field.
func (m *ActivoMutation) ResetEstado() {
	m.estado = nil
}

// SetFechaBaja sets the "fecha_baja" field.
func (m *ActivoMutation) SetFechaBaja(t time.Time) {
	m.fecha_baja = &t
}

// FechaBaja returns the value of the "fecha_baja" field in the mutation.
func (m *ActivoMutation) FechaBaja() (r time.Time, exists bool) {
	v := m.fecha_baja
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaBaja returns the old "fecha_baja" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldFechaBaja(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaBaja is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaBaja requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaBaja: %w", err)
	}
	return oldValue.FechaBaja, nil
}

// ClearFechaBaja clears the value of the "fecha_baja" field.
func (m *ActivoMutation) ClearFechaBaja() {
	m.fecha_baja = nil
	m.clearedFields[activo.FieldFechaBaja] = struct{}{}
}

// FechaBajaCleared returns if the "fecha_baja" field was cleared in this mutation.
func (m *ActivoMutation) FechaBajaCleared() bool {
	_, ok := m.clearedFields[activo.FieldFechaBaja]
	return ok
}

// ResetFechaBaja resets all changes to the "fecha_baja" field.
func (m *ActivoMutation) ResetFechaBaja() {
	m.fecha_baja = nil
	delete(m.clearedFields, activo.FieldFechaBaja)
}

// SetMotivoBaja sets the "motivo_baja" field.
func (m *ActivoMutation) SetMotivoBaja(s string) {
	m.motivo_baja = &s
}

// MotivoBaja returns the value of the "motivo_baja" field in the mutation.
func (m *ActivoMutation) MotivoBaja() (r string, exists bool) {
	v := m.motivo_baja
	if v == nil {
		return
	}
	return *v, true
}

// OldMotivoBaja returns the old "motivo_baja" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldMotivoBaja(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMotivoBaja is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMotivoBaja requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMotivoBaja: %w", err)
	}
	return oldValue.MotivoBaja, nil
}

// ClearMotivoBaja clears the value of the "motivo_baja" field.
func (m *ActivoMutation) ClearMotivoBaja() {
	m.motivo_baja = nil
	m.clearedFields[activo.FieldMotivoBaja] = struct{}{}
}

// MotivoBajaCleared returns if the "motivo_baja" field was cleared in this mutation.
func (m *ActivoMutation) MotivoBajaCleared() bool {
	_, ok := m.clearedFields[activo.FieldMotivoBaja]
	return ok
}

// ResetMotivoBaja resets all changes to the "motivo_baja" field.
func (m *ActivoMutation) ResetMotivoBaja() {
	m.motivo_baja = nil
	delete(m.clearedFields, activo.FieldMotivoBaja)
}

// SetUsuarioBajaID sets the "usuario_baja_id" field.
func (m *ActivoMutation) SetUsuarioBajaID(s string) {
	m.usuario_baja_id = &s
}

// UsuarioBajaID returns the value of the "usuario_baja_id" field in the mutation.
func (m *ActivoMutation) UsuarioBajaID() (r string, exists bool) {
	v := m.usuario_baja_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUsuarioBajaID returns the old "usuario_baja_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldUsuarioBajaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsuarioBajaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsuarioBajaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsuarioBajaID: %w", err)
	}
	return oldValue.UsuarioBajaID, nil
}

// ClearUsuarioBajaID clears the value of the "usuario_baja_id" field.
func (m *ActivoMutation) ClearUsuarioBajaID() {
	m.usuario_baja_id = nil
	m.clearedFields[activo.FieldUsuarioBajaID] = struct{}{}
}

// UsuarioBajaIDCleared returns if the "usuario_baja_id" field was cleared in this mutation.
func (m *ActivoMutation) UsuarioBajaIDCleared() bool {
	_, ok := m.clearedFields[activo.FieldUsuarioBajaID]
	return ok
}

// ResetUsuarioBajaID resets all changes to the "usuario_baja_id" field.
func (m *ActivoMutation) ResetUsuarioBajaID() {
	m.usuario_baja_id = nil
	delete(m.clearedFields, activo.FieldUsuarioBajaID)
}

// SetDocumentosBaja sets the "documentos_baja" field.
func (m *ActivoMutation) SetDocumentosBaja(s []string) {
	m.documentos_baja = &s
	m.appenddocumentos_baja = nil
}

// DocumentosBaja returns the value of the "documentos_baja" field in the mutation.
func (m *ActivoMutation) DocumentosBaja() (r []string, exists bool) {
	v := m.documentos_baja
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentosBaja returns the old "documentos_baja" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldDocumentosBaja(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentosBaja is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentosBaja requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentosBaja: %w", err)
	}
	return oldValue.DocumentosBaja, nil
}

// AppendDocumentosBaja adds s to the "documentos_baja" field.
func (m *ActivoMutation) AppendDocumentosBaja(s []string) {
	m.appenddocumentos_baja = append(m.appenddocumentos_baja, s...)
}

// AppendedDocumentosBaja returns the list of values that were appended to the "documentos_baja" field in this mutation.
func (m *ActivoMutation) AppendedDocumentosBaja() ([]string, bool) {
	if len(m.appenddocumentos_baja) == 0 {
		return nil, false
	}
	return m.appenddocumentos_baja, true
}

// ClearDocumentosBaja clears the value of the "documentos_baja" field.
func (m *ActivoMutation) ClearDocumentosBaja() {
	m.documentos_baja = nil
	m.appenddocumentos_baja = nil
	m.clearedFields[activo.FieldDocumentosBaja] = struct{}{}
}

// DocumentosBajaCleared returns if the "documentos_baja" field was cleared in this mutation.
func (m *ActivoMutation) DocumentosBajaCleared() bool {
	_, ok := m.clearedFields[activo.FieldDocumentosBaja]
	return ok
}

// ResetDocumentosBaja resets all changes to the "documentos_baja" field.
func (m *ActivoMutation) ResetDocumentosBaja() {
	m.documentos_baja = nil
	m.appenddocumentos_baja = nil
	delete(m.clearedFields, activo.FieldDocumentosBaja)
}

// SetAssignedToID sets the "assigned_to_id" field.
func (m *ActivoMutation) SetAssignedToID(s string) {
	m.assigned_to_id = &s
}

// AssignedToID returns the value of the "assigned_to_id" field in the mutation.
func (m *ActivoMutation) AssignedToID() (r string, exists bool) {
	v := m.assigned_to_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedToID returns the old "assigned_to_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldAssignedToID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedToID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedToID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedToID: %w", err)
	}
	return oldValue.AssignedToID, nil
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (m *ActivoMutation) ClearAssignedToID() {
	m.assigned_to_id = nil
	m.clearedFields[activo.FieldAssignedToID] = struct{}{}
}

// AssignedToIDCleared returns if the "assigned_to_id" field was cleared in this mutation.
func (m *ActivoMutation) AssignedToIDCleared() bool {
	_, ok := m.clearedFields[activo.FieldAssignedToID]
	return ok
}

// ResetAssignedToID resets all changes to the "assigned_to_id" field.
func (m *ActivoMutation) ResetAssignedToID() {
	m.assigned_to_id = nil
	delete(m.clearedFields, activo.FieldAssignedToID)
}

// SetUltimoMantenimiento sets the "ultimo_mantenimiento" field.
func (m *ActivoMutation) SetUltimoMantenimiento(t time.Time) {
	m.ultimo_mantenimiento = &t
}

// UltimoMantenimiento returns the value of the "ultimo_mantenimiento" field in the mutation.
func (m *ActivoMutation) UltimoMantenimiento() (r time.Time, exists bool) {
	v := m.ultimo_mantenimiento
	if v == nil {
		return
	}
	return *v, true
}

// OldUltimoMantenimiento returns the old "ultimo_mantenimiento" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldUltimoMantenimiento(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUltimoMantenimiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUltimoMantenimiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUltimoMantenimiento: %w", err)
	}
	return oldValue.UltimoMantenimiento, nil
}

// ClearUltimoMantenimiento clears the value of the "ultimo_mantenimiento" field.
func (m *ActivoMutation) ClearUltimoMantenimiento() {
	m.ultimo_mantenimiento = nil
	m.clearedFields[activo.FieldUltimoMantenimiento] = struct{}{}
}

// UltimoMantenimientoCleared returns if the "ultimo_mantenimiento" field was cleared in this mutation.
func (m *ActivoMutation) UltimoMantenimientoCleared() bool {
	_, ok := m.clearedFields[activo.FieldUltimoMantenimiento]
	return ok
}

// ResetUltimoMantenimiento resets all changes to the "ultimo_mantenimiento" field.
func (m *ActivoMutation) ResetUltimoMantenimiento() {
	m.ultimo_mantenimiento = nil
	delete(m.clearedFields, activo.FieldUltimoMantenimiento)
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (m *ActivoMutation) SetProximoMantenimiento(t time.Time) {
	m.proximo_mantenimiento = &t
}

// ProximoMantenimiento returns the value of the "proximo_mantenimiento" field in the mutation.
func (m *ActivoMutation) ProximoMantenimiento() (r time.Time, exists bool) {
	v := m.proximo_mantenimiento
	if v == nil {
		return
	}
	return *v, true
}

// OldProximoMantenimiento returns the old "proximo_mantenimiento" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldProximoMantenimiento(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProximoMantenimiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProximoMantenimiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProximoMantenimiento: %w", err)
	}
	return oldValue.ProximoMantenimiento, nil
}

// ClearProximoMantenimiento clears the value of the "proximo_mantenimiento" field.
func (m *ActivoMutation) ClearProximoMantenimiento() {
	m.proximo_mantenimiento = nil
	m.clearedFields[activo.FieldProximoMantenimiento] = struct{}{}
}

// ProximoMantenimientoCleared returns if the "proximo_mantenimiento" field was cleared in this mutation.
func (m *ActivoMutation) ProximoMantenimientoCleared() bool {
	_, ok := m.clearedFields[activo.FieldProximoMantenimiento]
	return ok
}

// ResetProximoMantenimiento resets all changes to the "proximo_mantenimiento" field.
func (m *ActivoMutation) ResetProximoMantenimiento() {
	m.proximo_mantenimiento = nil
	delete(m.clearedFields, activo.FieldProximoMantenimiento)
}

// SetTecnicoMantenimientoID sets the "tecnico_mantenimiento_id" field.
func (m *ActivoMutation) SetTecnicoMantenimientoID(s string) {
	m.tecnico_mantenimiento_id = &s
}

// TecnicoMantenimientoID returns the value of the "tecnico_mantenimiento_id" field in the mutation.
func (m *ActivoMutation) TecnicoMantenimientoID() (r string, exists bool) {
	v := m.tecnico_mantenimiento_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTecnicoMantenimientoID returns the old "tecnico_mantenimiento_id" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldTecnicoMantenimientoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTecnicoMantenimientoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTecnicoMantenimientoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTecnicoMantenimientoID: %w", err)
	}
	return oldValue.TecnicoMantenimientoID, nil
}

// ClearTecnicoMantenimientoID clears the value of the "tecnico_mantenimiento_id" field.
func (m *ActivoMutation) ClearTecnicoMantenimientoID() {
	m.tecnico_mantenimiento_id = nil
	m.clearedFields[activo.FieldTecnicoMantenimientoID] = struct{}{}
}

// TecnicoMantenimientoIDCleared returns if the "tecnico_mantenimiento_id" field was cleared in this mutation.
func (m *ActivoMutation) TecnicoMantenimientoIDCleared() bool {
	_, ok := m.clearedFields[activo.FieldTecnicoMantenimientoID]
	return ok
}

// ResetTecnicoMantenimientoID resets all changes to the "tecnico_mantenimiento_id" field.
func (m *ActivoMutation) ResetTecnicoMantenimientoID() {
	m.tecnico_mantenimiento_id = nil
	delete(m.clearedFields, activo.FieldTecnicoMantenimientoID)
}

// SetUltimoMantenimientoHallazgos sets the "ultimo_mantenimiento_hallazgos" field.
func (m *ActivoMutation) SetUltimoMantenimientoHallazgos(s string) {
	m.ultimo_mantenimiento_hallazgos = &s
}

// UltimoMantenimientoHallazgos returns the value of the "ultimo_mantenimiento_hallazgos" field in the mutation.
func (m *ActivoMutation) UltimoMantenimientoHallazgos() (r string, exists bool) {
	v := m.ultimo_mantenimiento_hallazgos
	if v == nil {
		return
	}
	return *v, true
}

// OldUltimoMantenimientoHallazgos returns the old "ultimo_mantenimiento_hallazgos" field's value of the Activo entity.
// If the Activo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivoMutation) OldUltimoMantenimientoHallazgos(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUltimoMantenimientoHallazgos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUltimoMantenimientoHallazgos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUltimoMantenimientoHallazgos: %w", err)
	}
	return oldValue.UltimoMantenimientoHallazgos, nil
}

// ClearUltimoMantenimientoHallazgos clears the value of the "ultimo_mantenimiento_hallazgos" field.
func (m *ActivoMutation) ClearUltimoMantenimientoHallazgos() {
	m.ultimo_mantenimiento_hallazgos = nil
	m.clearedFields[activo.FieldUltimoMantenimientoHallazgos] = struct{}{}
}

// UltimoMantenimientoHallazgosCleared returns if the "ultimo_mantenimiento_hallazgos" field was cleared in this mutation.
func (m *ActivoMutation) UltimoMantenimientoHallazgosCleared() bool {
	_, ok := m.clearedFields[activo.FieldUltimoMantenimientoHallazgos]
	return ok
}

// ResetUltimoMantenimientoHallazgos resets all changes to the "ultimo_mantenimiento_hallazgos" field.
func (m *ActivoMutation) ResetUltimoMantenimientoHallazgos() {
	m.ultimo_mantenimiento_hallazgos = nil
	delete(m.clearedFields, activo.FieldUltimoMantenimientoHallazgos)
}

// Where appends a list predicates to the ActivoMutation builder.
func (m *ActivoMutation) Where(ps ...predicate.Activo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Activo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Activo).
func (m *ActivoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivoMutation) Fields() []string {
	fields := make([]string, 0, 48)
	if m.created_at != nil {
		fields = append(fields, activo.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, activo.FieldUpdatedAt)
	}
	if m.tipo_activo_id != nil {
		fields = append(fields, activo.FieldTipoActivoID)
	}
	if m.marca_id != nil {
		fields = append(fields, activo.FieldMarcaID)
	}
	if m.modelo_id != nil {
		fields = append(fields, activo.FieldModeloID)
	}
	if m.proveedor_id != nil {
		fields = append(fields, activo.FieldProveedorID)
	}
	if m.region_id != nil {
		fields = append(fields, activo.FieldRegionID)
	}
	if m.finca_id != nil {
		fields = append(fields, activo.FieldFincaID)
	}
	if m.departamento_id != nil {
		fields = append(fields, activo.FieldDepartamentoID)
	}
	if m.area_id != nil {
		fields = append(fields, activo.FieldAreaID)
	}
	if m.serie != nil {
		fields = append(fields, activo.FieldSerie)
	}
	if m.hostname != nil {
		fields = append(fields, activo.FieldHostname)
	}
	if m.fecha_registro != nil {
		fields = append(fields, activo.FieldFechaRegistro)
	}
	if m.fecha_fin_garantia != nil {
		fields = append(fields, activo.FieldFechaFinGarantia)
	}
	if m.solicitante != nil {
		fields = append(fields, activo.FieldSolicitante)
	}
	if m.correo_electronico != nil {
		fields = append(fields, activo.FieldCorreoElectronico)
	}
	if m.orden_compra != nil {
		fields = append(fields, activo.FieldOrdenCompra)
	}
	if m.cuenta_contable != nil {
		fields = append(fields, activo.FieldCuentaContable)
	}
	if m.tipo_costo != nil {
		fields = append(fields, activo.FieldTipoCosto)
	}
	if m.cuotas != nil {
		fields = append(fields, activo.FieldCuotas)
	}
	if m.moneda != nil {
		fields = append(fields, activo.FieldMoneda)
	}
	if m.costo != nil {
		fields = append(fields, activo.FieldCosto)
	}
	if m.procesador != nil {
		fields = append(fields, activo.FieldProcesador)
	}
	if m.ram != nil {
		fields = append(fields, activo.FieldRAM)
	}
	if m.almacenamiento != nil {
		fields = append(fields, activo.FieldAlmacenamiento)
	}
	if m.tarjeta_grafica != nil {
		fields = append(fields, activo.FieldTarjetaGrafica)
	}
	if m.wifi != nil {
		fields = append(fields, activo.FieldWifi)
	}
	if m.ethernet != nil {
		fields = append(fields, activo.FieldEthernet)
	}
	if m.puertos_ethernet != nil {
		fields = append(fields, activo.FieldPuertosEthernet)
	}
	if m.puertos_sfp != nil {
		fields = append(fields, activo.FieldPuertosSfp)
	}
	if m.puerto_consola != nil {
		fields = append(fields, activo.FieldPuertoConsola)
	}
	if m.puertos_poe != nil {
		fields = append(fields, activo.FieldPuertosPoe)
	}
	if m.alimentacion != nil {
		fields = append(fields, activo.FieldAlimentacion)
	}
	if m.administrable != nil {
		fields = append(fields, activo.FieldAdministrable)
	}
	if m.tamano != nil {
		fields = append(fields, activo.FieldTamano)
	}
	if m.color != nil {
		fields = append(fields, activo.FieldColor)
	}
	if m.conectores != nil {
		fields = append(fields, activo.FieldConectores)
	}
	if m.cables != nil {
		fields = append(fields, activo.FieldCables)
	}
	if m.estado != nil {
		fields = append(fields, activo.FieldEstado)
	}
	if m.fecha_baja != nil {
		fields = append(fields, activo.FieldFechaBaja)
	}
	if m.motivo_baja != nil {
		fields = append(fields, activo.FieldMotivoBaja)
	}
	if m.usuario_baja_id != nil {
		fields = append(fields, activo.FieldUsuarioBajaID)
	}
	if m.documentos_baja != nil {
		fields = append(fields, activo.FieldDocumentosBaja)
	}
	if m.assigned_to_id != nil {
		fields = append(fields, activo.FieldAssignedToID)
	}
	if m.ultimo_mantenimiento != nil {
		fields = append(fields, activo.FieldUltimoMantenimiento)
	}
	if m.proximo_mantenimiento != nil {
		fields = append(fields, activo.FieldProximoMantenimiento)
	}
	if m.tecnico_mantenimiento_id != nil {
		fields = append(fields, activo.FieldTecnicoMantenimientoID)
	}
	if m.ultimo_mantenimiento_hallazgos != nil {
		fields = append(fields, activo.FieldUltimoMantenimientoHallazgos)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activo.FieldCreatedAt:
		return m.CreatedAt()
	case activo.FieldUpdatedAt:
		return m.UpdatedAt()
	case activo.FieldTipoActivoID:
		return m.TipoActivoID()
	case activo.FieldMarcaID:
		return m.MarcaID()
	case activo.FieldModeloID:
		return m.ModeloID()
	case activo.FieldProveedorID:
		return m.ProveedorID()
	case activo.FieldRegionID:
		return m.RegionID()
	case activo.FieldFincaID:
		return m.FincaID()
	case activo.FieldDepartamentoID:
		return m.DepartamentoID()
	case activo.FieldAreaID:
		return m.AreaID()
	case activo.FieldSerie:
		return m.Serie()
	case activo.FieldHostname:
		return m.Hostname()
	case activo.FieldFechaRegistro:
		return m.FechaRegistro()
	case activo.FieldFechaFinGarantia:
		return m.FechaFinGarantia()
	case activo.FieldSolicitante:
		return m.Solicitante()
	case activo.FieldCorreoElectronico:
		return m.CorreoElectronico()
	case activo.FieldOrdenCompra:
		return m.OrdenCompra()
	case activo.FieldCuentaContable:
		return m.CuentaContable()
	case activo.FieldTipoCosto:
		return m.TipoCosto()
	case activo.FieldCuotas:
		return m.Cuotas()
	case activo.FieldMoneda:
		return m.Moneda()
	case activo.FieldCosto:
		return m.Costo()
	case activo.FieldProcesador:
		return m.Procesador()
	case activo.FieldRAM:
		return m.RAM()
	case activo.FieldAlmacenamiento:
		return m.Almacenamiento()
	case activo.FieldTarjetaGrafica:
		return m.TarjetaGrafica()
	case activo.FieldWifi:
		return m.Wifi()
	case activo.FieldEthernet:
		return m.Ethernet()
	case activo.FieldPuertosEthernet:
		return m.PuertosEthernet()
	case activo.FieldPuertosSfp:
		return m.PuertosSfp()
	case activo.FieldPuertoConsola:
		return m.PuertoConsola()
	case activo.FieldPuertosPoe:
		return m.PuertosPoe()
	case activo.FieldAlimentacion:
		return m.Alimentacion()
	case activo.FieldAdministrable:
		return m.Administrable()
	case activo.FieldTamano:
		return m.Tamano()
	case activo.FieldColor:
		return m.Color()
	case activo.FieldConectores:
		return m.Conectores()
	case activo.FieldCables:
		return m.Cables()
	case activo.FieldEstado:
		return m.Estado()
	case activo.FieldFechaBaja:
		return m.FechaBaja()
	case activo.FieldMotivoBaja:
		return m.MotivoBaja()
	case activo.FieldUsuarioBajaID:
		return m.UsuarioBajaID()
	case activo.FieldDocumentosBaja:
		return m.DocumentosBaja()
	case activo.FieldAssignedToID:
		return m.AssignedToID()
	case activo.FieldUltimoMantenimiento:
		return m.UltimoMantenimiento()
	case activo.FieldProximoMantenimiento:
		return m.ProximoMantenimiento()
	case activo.FieldTecnicoMantenimientoID:
		return m.TecnicoMantenimientoID()
	case activo.FieldUltimoMantenimientoHallazgos:
		return m.UltimoMantenimientoHallazgos()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case activo.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case activo.FieldTipoActivoID:
		return m.OldTipoActivoID(ctx)
	case activo.FieldMarcaID:
		return m.OldMarcaID(ctx)
	case activo.FieldModeloID:
		return m.OldModeloID(ctx)
	case activo.FieldProveedorID:
		return m.OldProveedorID(ctx)
	case activo.FieldRegionID:
		return m.OldRegionID(ctx)
	case activo.FieldFincaID:
		return m.OldFincaID(ctx)
	case activo.FieldDepartamentoID:
		return m.OldDepartamentoID(ctx)
	case activo.FieldAreaID:
		return m.OldAreaID(ctx)
	case activo.FieldSerie:
		return m.OldSerie(ctx)
	case activo.FieldHostname:
		return m.OldHostname(ctx)
	case activo.FieldFechaRegistro:
		return m.OldFechaRegistro(ctx)
	case activo.FieldFechaFinGarantia:
		return m.OldFechaFinGarantia(ctx)
	case activo.FieldSolicitante:
		return m.OldSolicitante(ctx)
	case activo.FieldCorreoElectronico:
		return m.OldCorreoElectronico(ctx)
	case activo.FieldOrdenCompra:
		return m.OldOrdenCompra(ctx)
	case activo.FieldCuentaContable:
		return m.OldCuentaContable(ctx)
	case activo.FieldTipoCosto:
		return m.OldTipoCosto(ctx)
	case activo.FieldCuotas:
		return m.OldCuotas(ctx)
	case activo.FieldMoneda:
		return m.OldMoneda(ctx)
	case activo.FieldCosto:
		return m.OldCosto(ctx)
	case activo.FieldProcesador:
		return m.OldProcesador(ctx)
	case activo.FieldRAM:
		return m.OldRAM(ctx)
	case activo.FieldAlmacenamiento:
		return m.OldAlmacenamiento(ctx)
	case activo.FieldTarjetaGrafica:
		return m.OldTarjetaGrafica(ctx)
	case activo.FieldWifi:
		return m.OldWifi(ctx)
	case activo.FieldEthernet:
		return m.OldEthernet(ctx)
	case activo.FieldPuertosEthernet:
		return m.OldPuertosEthernet(ctx)
	case activo.FieldPuertosSfp:
		return m.OldPuertosSfp(ctx)
	case activo.FieldPuertoConsola:
		return m.OldPuertoConsola(ctx)
	case activo.FieldPuertosPoe:
		return m.OldPuertosPoe(ctx)
	case activo.FieldAlimentacion:
		return m.OldAlimentacion(ctx)
	case activo.FieldAdministrable:
		return m.OldAdministrable(ctx)
	case activo.FieldTamano:
		return m.OldTamano(ctx)
	case activo.FieldColor:
		return m.OldColor(ctx)
	case activo.FieldConectores:
		return m.OldConectores(ctx)
	case activo.FieldCables:
		return m.OldCables(ctx)
	case activo.FieldEstado:
		return m.OldEstado(ctx)
	case activo.FieldFechaBaja:
		return m.OldFechaBaja(ctx)
	case activo.FieldMotivoBaja:
		return m.OldMotivoBaja(ctx)
	case activo.FieldUsuarioBajaID:
		return m.OldUsuarioBajaID(ctx)
	case activo.FieldDocumentosBaja:
		return m.OldDocumentosBaja(ctx)
	case activo.FieldAssignedToID:
		return m.OldAssignedToID(ctx)
	case activo.FieldUltimoMantenimiento:
		return m.OldUltimoMantenimiento(ctx)
	case activo.FieldProximoMantenimiento:
		return m.OldProximoMantenimiento(ctx)
	case activo.FieldTecnicoMantenimientoID:
		return m.OldTecnicoMantenimientoID(ctx)
	case activo.FieldUltimoMantenimientoHallazgos:
		return m.OldUltimoMantenimientoHallazgos(ctx)
	}
	return nil, fmt.Errorf("unknown Activo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case activo.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case activo.FieldTipoActivoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoActivoID(v)
		return nil
	case activo.FieldMarcaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarcaID(v)
		return nil
	case activo.FieldModeloID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModeloID(v)
		return nil
	case activo.FieldProveedorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProveedorID(v)
		return nil
	case activo.FieldRegionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegionID(v)
		return nil
	case activo.FieldFincaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFincaID(v)
		return nil
	case activo.FieldDepartamentoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartamentoID(v)
		return nil
	case activo.FieldAreaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaID(v)
		return nil
	case activo.FieldSerie:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerie(v)
		return nil
	case activo.FieldHostname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostname(v)
		return nil
	case activo.FieldFechaRegistro:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaRegistro(v)
		return nil
	case activo.FieldFechaFinGarantia:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaFinGarantia(v)
		return nil
	case activo.FieldSolicitante:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolicitante(v)
		return nil
	case activo.FieldCorreoElectronico:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorreoElectronico(v)
		return nil
	case activo.FieldOrdenCompra:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdenCompra(v)
		return nil
	case activo.FieldCuentaContable:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCuentaContable(v)
		return nil
	case activo.FieldTipoCosto:
		v, ok := value.(activo.TipoCosto)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoCosto(v)
		return nil
	case activo.FieldCuotas:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCuotas(v)
		return nil
	case activo.FieldMoneda:
		v, ok := value.(activo.Moneda)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoneda(v)
		return nil
	case activo.FieldCosto:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCosto(v)
		return nil
	case activo.FieldProcesador:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcesador(v)
		return nil
	case activo.FieldRAM:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRAM(v)
		return nil
	case activo.FieldAlmacenamiento:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlmacenamiento(v)
		return nil
	case activo.FieldTarjetaGrafica:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarjetaGrafica(v)
		return nil
	case activo.FieldWifi:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWifi(v)
		return nil
	case activo.FieldEthernet:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEthernet(v)
		return nil
	case activo.FieldPuertosEthernet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertosEthernet(v)
		return nil
	case activo.FieldPuertosSfp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertosSfp(v)
		return nil
	case activo.FieldPuertoConsola:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertoConsola(v)
		return nil
	case activo.FieldPuertosPoe:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertosPoe(v)
		return nil
	case activo.FieldAlimentacion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlimentacion(v)
		return nil
	case activo.FieldAdministrable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdministrable(v)
		return nil
	case activo.FieldTamano:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTamano(v)
		return nil
	case activo.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case activo.FieldConectores:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConectores(v)
		return nil
	case activo.FieldCables:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCables(v)
		return nil
	case activo.FieldEstado:
		v, ok := value.(activo.Estado)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstado(v)
		return nil
	case activo.FieldFechaBaja:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaBaja(v)
		return nil
	case activo.FieldMotivoBaja:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMotivoBaja(v)
		return nil
	case activo.FieldUsuarioBajaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsuarioBajaID(v)
		return nil
	case activo.FieldDocumentosBaja:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentosBaja(v)
		return nil
	case activo.FieldAssignedToID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedToID(v)
		return nil
	case activo.FieldUltimoMantenimiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUltimoMantenimiento(v)
		return nil
	case activo.FieldProximoMantenimiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProximoMantenimiento(v)
		return nil
	case activo.FieldTecnicoMantenimientoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTecnicoMantenimientoID(v)
		return nil
	case activo.FieldUltimoMantenimientoHallazgos:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUltimoMantenimientoHallazgos(v)
		return nil
	}
	return fmt.Errorf("unknown Activo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivoMutation) AddedFields() []string {
	var fields []string
	if m.addcuotas != nil {
		fields = append(fields, activo.FieldCuotas)
	}
	if m.addcosto != nil {
		fields = append(fields, activo.FieldCosto)
	}
	if m.addram != nil {
		fields = append(fields, activo.FieldRAM)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activo.FieldCuotas:
		return m.AddedCuotas()
	case activo.FieldCosto:
		return m.AddedCosto()
	case activo.FieldRAM:
		return m.AddedRAM()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activo.FieldCuotas:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCuotas(v)
		return nil
	case activo.FieldCosto:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCosto(v)
		return nil
	case activo.FieldRAM:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRAM(v)
		return nil
	}
	return fmt.Errorf("unknown Activo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activo.FieldFechaFinGarantia) {
		fields = append(fields, activo.FieldFechaFinGarantia)
	}
	if m.FieldCleared(activo.FieldSolicitante) {
		fields = append(fields, activo.FieldSolicitante)
	}
	if m.FieldCleared(activo.FieldCorreoElectronico) {
		fields = append(fields, activo.FieldCorreoElectronico)
	}
	if m.FieldCleared(activo.FieldOrdenCompra) {
		fields = append(fields, activo.FieldOrdenCompra)
	}
	if m.FieldCleared(activo.FieldCuentaContable) {
		fields = append(fields, activo.FieldCuentaContable)
	}
	if m.FieldCleared(activo.FieldTipoCosto) {
		fields = append(fields, activo.FieldTipoCosto)
	}
	if m.FieldCleared(activo.FieldCuotas) {
		fields = append(fields, activo.FieldCuotas)
	}
	if m.FieldCleared(activo.FieldMoneda) {
		fields = append(fields, activo.FieldMoneda)
	}
	if m.FieldCleared(activo.FieldCosto) {
		fields = append(fields, activo.FieldCosto)
	}
	if m.FieldCleared(activo.FieldProcesador) {
		fields = append(fields, activo.FieldProcesador)
	}
	if m.FieldCleared(activo.FieldRAM) {
		fields = append(fields, activo.FieldRAM)
	}
	if m.FieldCleared(activo.FieldAlmacenamiento) {
		fields = append(fields, activo.FieldAlmacenamiento)
	}
	if m.FieldCleared(activo.FieldTarjetaGrafica) {
		fields = append(fields, activo.FieldTarjetaGrafica)
	}
	if m.FieldCleared(activo.FieldWifi) {
		fields = append(fields, activo.FieldWifi)
	}
	if m.FieldCleared(activo.FieldEthernet) {
		fields = append(fields, activo.FieldEthernet)
	}
	if m.FieldCleared(activo.FieldPuertosEthernet) {
		fields = append(fields, activo.FieldPuertosEthernet)
	}
	if m.FieldCleared(activo.FieldPuertosSfp) {
		fields = append(fields, activo.FieldPuertosSfp)
	}
	if m.FieldCleared(activo.FieldPuertoConsola) {
		fields = append(fields, activo.FieldPuertoConsola)
	}
	if m.FieldCleared(activo.FieldPuertosPoe) {
		fields = append(fields, activo.FieldPuertosPoe)
	}
	if m.FieldCleared(activo.FieldAlimentacion) {
		fields = append(fields, activo.FieldAlimentacion)
	}
	if m.FieldCleared(activo.FieldAdministrable) {
		fields = append(fields, activo.FieldAdministrable)
	}
	if m.FieldCleared(activo.FieldTamano) {
		fields = append(fields, activo.FieldTamano)
	}
	if m.FieldCleared(activo.FieldColor) {
		fields = append(fields, activo.FieldColor)
	}
	if m.FieldCleared(activo.FieldConectores) {
		fields = append(fields, activo.FieldConectores)
	}
	if m.FieldCleared(activo.FieldCables) {
		fields = append(fields, activo.FieldCables)
	}
	if m.FieldCleared(activo.FieldFechaBaja) {
		fields = append(fields, activo.FieldFechaBaja)
	}
	if m.FieldCleared(activo.FieldMotivoBaja) {
		fields = append(fields, activo.FieldMotivoBaja)
	}
	if m.FieldCleared(activo.FieldUsuarioBajaID) {
		fields = append(fields, activo.FieldUsuarioBajaID)
	}
	if m.FieldCleared(activo.FieldDocumentosBaja) {
		fields = append(fields, activo.FieldDocumentosBaja)
	}
	if m.FieldCleared(activo.FieldAssignedToID) {
		fields = append(fields, activo.FieldAssignedToID)
	}
	if m.FieldCleared(activo.FieldUltimoMantenimiento) {
		fields = append(fields, activo.FieldUltimoMantenimiento)
	}
	if m.FieldCleared(activo.FieldProximoMantenimiento) {
		fields = append(fields, activo.FieldProximoMantenimiento)
	}
	if m.FieldCleared(activo.FieldTecnicoMantenimientoID) {
		fields = append(fields, activo.FieldTecnicoMantenimientoID)
	}
	if m.FieldCleared(activo.FieldUltimoMantenimientoHallazgos) {
		fields = append(fields, activo.FieldUltimoMantenimientoHallazgos)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivoMutation) ClearField(name string) error {
	switch name {
	case activo.FieldFechaFinGarantia:
		m.ClearFechaFinGarantia()
		return nil
	case activo.FieldSolicitante:
		m.ClearSolicitante()
		return nil
	case activo.FieldCorreoElectronico:
		m.ClearCorreoElectronico()
		return nil
	case activo.FieldOrdenCompra:
		m.ClearOrdenCompra()
		return nil
	case activo.FieldCuentaContable:
		m.ClearCuentaContable()
		return nil
	case activo.FieldTipoCosto:
		m.ClearTipoCosto()
		return nil
	case activo.FieldCuotas:
		m.ClearCuotas()
		return nil
	case activo.FieldMoneda:
		m.ClearMoneda()
		return nil
	case activo.FieldCosto:
		m.ClearCosto()
		return nil
	case activo.FieldProcesador:
		m.ClearProcesador()
		return nil
	case activo.FieldRAM:
		m.ClearRAM()
		return nil
	case activo.FieldAlmacenamiento:
		m.ClearAlmacenamiento()
		return nil
	case activo.FieldTarjetaGrafica:
		m.ClearTarjetaGrafica()
		return nil
	case activo.FieldWifi:
		m.ClearWifi()
		return nil
	case activo.FieldEthernet:
		m.ClearEthernet()
		return nil
	case activo.FieldPuertosEthernet:
		m.ClearPuertosEthernet()
		return nil
	case activo.FieldPuertosSfp:
		m.ClearPuertosSfp()
		return nil
	case activo.FieldPuertoConsola:
		m.ClearPuertoConsola()
		return nil
	case activo.FieldPuertosPoe:
		m.ClearPuertosPoe()
		return nil
	case activo.FieldAlimentacion:
		m.ClearAlimentacion()
		return nil
	case activo.FieldAdministrable:
		m.ClearAdministrable()
		return nil
	case activo.FieldTamano:
		m.ClearTamano()
		return nil
	case activo.FieldColor:
		m.ClearColor()
		return nil
	case activo.FieldConectores:
		m.ClearConectores()
		return nil
	case activo.FieldCables:
		m.ClearCables()
		return nil
	case activo.FieldFechaBaja:
		m.ClearFechaBaja()
		return nil
	case activo.FieldMotivoBaja:
		m.ClearMotivoBaja()
		return nil
	case activo.FieldUsuarioBajaID:
		m.ClearUsuarioBajaID()
		return nil
	case activo.FieldDocumentosBaja:
		m.ClearDocumentosBaja()
		return nil
	case activo.FieldAssignedToID:
		m.ClearAssignedToID()
		return nil
	case activo.FieldUltimoMantenimiento:
		m.ClearUltimoMantenimiento()
		return nil
	case activo.FieldProximoMantenimiento:
		m.ClearProximoMantenimiento()
		return nil
	case activo.FieldTecnicoMantenimientoID:
		m.ClearTecnicoMantenimientoID()
		return nil
	case activo.FieldUltimoMantenimientoHallazgos:
		m.ClearUltimoMantenimientoHallazgos()
		return nil
	}
	return fmt.Errorf("unknown Activo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivoMutation) ResetField(name string) error {
	switch name {
	case activo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case activo.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case activo.FieldTipoActivoID:
		m.ResetTipoActivoID()
		return nil
	case activo.FieldMarcaID:
		m.ResetMarcaID()
		return nil
	case activo.FieldModeloID:
		m.ResetModeloID()
		return nil
	case activo.FieldProveedorID:
		m.ResetProveedorID()
		return nil
	case activo.FieldRegionID:
		m.ResetRegionID()
		return nil
	case activo.FieldFincaID:
		m.ResetFincaID()
		return nil
	case activo.FieldDepartamentoID:
		m.ResetDepartamentoID()
		return nil
	case activo.FieldAreaID:
		m.ResetAreaID()
		return nil
	case activo.FieldSerie:
		m.ResetSerie()
		return nil
	case activo.FieldHostname:
		m.ResetHostname()
		return nil
	case activo.FieldFechaRegistro:
		m.ResetFechaRegistro()
		return nil
	case activo.FieldFechaFinGarantia:
		m.ResetFechaFinGarantia()
		return nil
	case activo.FieldSolicitante:
		m.ResetSolicitante()
		return nil
	case activo.FieldCorreoElectronico:
		m.ResetCorreoElectronico()
		return nil
	case activo.FieldOrdenCompra:
		m.ResetOrdenCompra()
		return nil
	case activo.FieldCuentaContable:
		m.ResetCuentaContable()
		return nil
	case activo.FieldTipoCosto:
		m.ResetTipoCosto()
		return nil
	case activo.FieldCuotas:
		m.ResetCuotas()
		return nil
	case activo.FieldMoneda:
		m.ResetMoneda()
		return nil
	case activo.FieldCosto:
		m.ResetCosto()
		return nil
	case activo.FieldProcesador:
		m.ResetProcesador()
		return nil
	case activo.FieldRAM:
		m.ResetRAM()
		return nil
	case activo.FieldAlmacenamiento:
		m.ResetAlmacenamiento()
		return nil
	case activo.FieldTarjetaGrafica:
		m.ResetTarjetaGrafica()
		return nil
	case activo.FieldWifi:
		m.ResetWifi()
		return nil
	case activo.FieldEthernet:
		m.ResetEthernet()
		return nil
	case activo.FieldPuertosEthernet:
		m.ResetPuertosEthernet()
		return nil
	case activo.FieldPuertosSfp:
		m.ResetPuertosSfp()
		return nil
	case activo.FieldPuertoConsola:
		m.ResetPuertoConsola()
		return nil
	case activo.FieldPuertosPoe:
		m.ResetPuertosPoe()
		return nil
	case activo.FieldAlimentacion:
		m.ResetAlimentacion()
		return nil
	case activo.FieldAdministrable:
		m.ResetAdministrable()
		return nil
	case activo.FieldTamano:
		m.ResetTamano()
		return nil
	case activo.FieldColor:
		m.ResetColor()
		return nil
	case activo.FieldConectores:
		m.ResetConectores()
		return nil
	case activo.FieldCables:
		m.ResetCables()
		return nil
	case activo.FieldEstado:
		m.ResetEstado()
		return nil
	case activo.FieldFechaBaja:
		m.ResetFechaBaja()
		return nil
	case activo.FieldMotivoBaja:
		m.ResetMotivoBaja()
		return nil
	case activo.FieldUsuarioBajaID:
		m.ResetUsuarioBajaID()
		return nil
	case activo.FieldDocumentosBaja:
		m.ResetDocumentosBaja()
		return nil
	case activo.FieldAssignedToID:
		m.ResetAssignedToID()
		return nil
	case activo.FieldUltimoMantenimiento:
		m.ResetUltimoMantenimiento()
		return nil
	case activo.FieldProximoMantenimiento:
		m.ResetProximoMantenimiento()
		return nil
	case activo.FieldTecnicoMantenimientoID:
		m.ResetTecnicoMantenimientoID()
		return nil
	case activo.FieldUltimoMantenimientoHallazgos:
		m.ResetUltimoMantenimientoHallazgos()
		return nil
	}
	return fmt.Errorf("unknown Activo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Activo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Activo edge %s", name)
}

// AreaMutation represents an operation that mutates the Area nodes in the graph.
type AreaMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	name            *string
	departamento_id *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Area, error)
	predicates      []predicate.Area
}

var _ ent.Mutation = (*AreaMutation)(nil)

// areaOption allows management of the mutation configuration using functional options.
type areaOption func(*AreaMutation)

// newAreaMutation creates new mutation for the Area entity.
func newAreaMutation(c config, op Op, opts ...areaOption) *AreaMutation {
	m := &AreaMutation{
		config:        c,
		op:            op,
		typ:           TypeArea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAreaID sets the ID field of the mutation.
func withAreaID(id string) areaOption {
	return func(m *AreaMutation) {
		var (
			err   error
			once  sync.Once
			value *Area
		)
		m.oldValue = func(ctx context.Context) (*Area, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Area.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArea sets the old Area of the mutation.
func withArea(node *Area) areaOption {
	return func(m *AreaMutation) {
		m.oldValue = func(context.Context) (*Area, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AreaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AreaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Area entities.
func (m *AreaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AreaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AreaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Area.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AreaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AreaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AreaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AreaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AreaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AreaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *AreaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AreaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AreaMutation) ResetName() {
	m.name = nil
}

// SetDepartamentoID sets the "departamento_id" field.
func (m *AreaMutation) SetDepartamentoID(s string) {
	m.departamento_id = &s
}

// DepartamentoID returns the value of the "departamento_id" field in the mutation.
func (m *AreaMutation) DepartamentoID() (r string, exists bool) {
	v := m.departamento_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartamentoID returns the old "departamento_id" field's value of the Area entity.
// If the Area object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AreaMutation) OldDepartamentoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartamentoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartamentoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartamentoID: %w", err)
	}
	return oldValue.DepartamentoID, nil
}

// ResetDepartamentoID resets all changes to the "departamento_id" field.
func (m *AreaMutation) ResetDepartamentoID() {
	m.departamento_id = nil
}

// Where appends a list predicates to the AreaMutation builder.
func (m *AreaMutation) Where(ps ...predicate.Area) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AreaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AreaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Area, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AreaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AreaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Area).
func (m *AreaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AreaMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, area.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, area.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, area.FieldName)
	}
	if m.departamento_id != nil {
		fields = append(fields, area.FieldDepartamentoID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AreaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case area.FieldCreatedAt:
		return m.CreatedAt()
	case area.FieldUpdatedAt:
		return m.UpdatedAt()
	case area.FieldName:
		return m.Name()
	case area.FieldDepartamentoID:
		return m.DepartamentoID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AreaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case area.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case area.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case area.FieldName:
		return m.OldName(ctx)
	case area.FieldDepartamentoID:
		return m.OldDepartamentoID(ctx)
	}
	return nil, fmt.Errorf("unknown Area field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AreaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case area.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case area.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case area.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case area.FieldDepartamentoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartamentoID(v)
		return nil
	}
	return fmt.Errorf("unknown Area field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AreaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AreaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AreaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Area numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AreaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AreaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AreaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Area nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AreaMutation) ResetField(name string) error {
	switch name {
	case area.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case area.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case area.FieldName:
		m.ResetName()
		return nil
	case area.FieldDepartamentoID:
		m.ResetDepartamentoID()
		return nil
	}
	return fmt.Errorf("unknown Area field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AreaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AreaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AreaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AreaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AreaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AreaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AreaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Area unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AreaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Area edge %s", name)
}

// AssignmentMutation represents an operation that mutates the Assignment nodes in the graph.
type AssignmentMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	activo_id      *string
	employee_id    *string
	assigned_date  *time.Time
	returned_date  *time.Time
	assigned_by_id *string
	returned_by_id *string
	notes          *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Assignment, error)
	predicates     []predicate.Assignment
}

var _ ent.Mutation = (*AssignmentMutation)(nil)

// assignmentOption allows management of the mutation configuration using functional options.
type assignmentOption func(*AssignmentMutation)

// newAssignmentMutation creates new mutation for the Assignment entity.
func newAssignmentMutation(c config, op Op, opts ...assignmentOption) *AssignmentMutation {
	m := &AssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentID sets the ID field of the mutation.
func withAssignmentID(id string) assignmentOption {
	return func(m *AssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assignment
		)
		m.oldValue = func(ctx context.Context) (*Assignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignment sets the old Assignment of the mutation.
func withAssignment(node *Assignment) assignmentOption {
	return func(m *AssignmentMutation) {
		m.oldValue = func(context.Context) (*Assignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assignment entities.
func (m *AssignmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssignmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssignmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssignmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetActivoID sets the "activo_id" field.
func (m *AssignmentMutation) SetActivoID(s string) {
	m.activo_id = &s
}

// ActivoID returns the value of the "activo_id" field in the mutation.
func (m *AssignmentMutation) ActivoID() (r string, exists bool) {
	v := m.activo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivoID returns the old "activo_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldActivoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivoID: %w", err)
	}
	return oldValue.ActivoID, nil
}

// ResetActivoID resets all changes to the "activo_id" field.
func (m *AssignmentMutation) ResetActivoID() {
	m.activo_id = nil
}

// SetEmployeeID sets the "employee_id" field.
func (m *AssignmentMutation) SetEmployeeID(s string) {
	m.employee_id = &s
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *AssignmentMutation) EmployeeID() (r string, exists bool) {
	v := m.employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldEmployeeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *AssignmentMutation) ResetEmployeeID() {
	m.employee_id = nil
}

// SetAssignedDate sets the "assigned_date" field.
func (m *AssignmentMutation) SetAssignedDate(t time.Time) {
	m.assigned_date = &t
}

// AssignedDate returns the value of the "assigned_date" field in the mutation.
func (m *AssignmentMutation) AssignedDate() (r time.Time, exists bool) {
	v := m.assigned_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedDate returns the old "assigned_date" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldAssignedDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedDate: %w", err)
	}
	return oldValue.AssignedDate, nil
}

// ResetAssignedDate resets all changes to the "assigned_date" field.
func (m *AssignmentMutation) ResetAssignedDate() {
	m.assigned_date = nil
}

// SetReturnedDate sets the "returned_date" field.
func (m *AssignmentMutation) SetReturnedDate(t time.Time) {
	m.returned_date = &t
}

// ReturnedDate returns the value of the "returned_date" field in the mutation.
func (m *AssignmentMutation) ReturnedDate() (r time.Time, exists bool) {
	v := m.returned_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReturnedDate returns the old "returned_date" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldReturnedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReturnedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReturnedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReturnedDate: %w", err)
	}
	return oldValue.ReturnedDate, nil
}

// ClearReturnedDate clears the value of the "returned_date" field.
func (m *AssignmentMutation) ClearReturnedDate() {
	m.returned_date = nil
	m.clearedFields[assignment.FieldReturnedDate] = struct{}{}
}

// ReturnedDateCleared returns if the "returned_date" field was cleared in this mutation.
func (m *AssignmentMutation) ReturnedDateCleared() bool {
	_, ok := m.clearedFields[assignment.FieldReturnedDate]
	return ok
}

// ResetReturnedDate resets all changes to the "returned_date" field.
func (m *AssignmentMutation) ResetReturnedDate() {
	m.returned_date = nil
	delete(m.clearedFields, assignment.FieldReturnedDate)
}

// SetAssignedByID sets the "assigned_by_id" field.
func (m *AssignmentMutation) SetAssignedByID(s string) {
	m.assigned_by_id = &s
}

// AssignedByID returns the value of the "assigned_by_id" field in the mutation.
func (m *AssignmentMutation) AssignedByID() (r string, exists bool) {
	v := m.assigned_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedByID returns the old "assigned_by_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldAssignedByID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedByID: %w", err)
	}
	return oldValue.AssignedByID, nil
}

// ResetAssignedByID resets all changes to the "assigned_by_id" field.
func (m *AssignmentMutation) ResetAssignedByID() {
	m.assigned_by_id = nil
}

// SetReturnedByID sets the "returned_by_id" field.
func (m *AssignmentMutation) SetReturnedByID(s string) {
	m.returned_by_id = &s
}

// ReturnedByID returns the value of the "returned_by_id" field in the mutation.
func (m *AssignmentMutation) ReturnedByID() (r string, exists bool) {
	v := m.returned_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReturnedByID returns the old "returned_by_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldReturnedByID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReturnedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReturnedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReturnedByID: %w", err)
	}
	return oldValue.ReturnedByID, nil
}

// ClearReturnedByID clears the value of the "returned_by_id" field.
func (m *AssignmentMutation) ClearReturnedByID() {
	m.returned_by_id = nil
	m.clearedFields[assignment.FieldReturnedByID] = struct{}{}
}

// ReturnedByIDCleared returns if the "returned_by_id" field was cleared in this mutation.
func (m *AssignmentMutation) ReturnedByIDCleared() bool {
	_, ok := m.clearedFields[assignment.FieldReturnedByID]
	return ok
}

// ResetReturnedByID resets all changes to the "returned_by_id" field.
func (m *AssignmentMutation) ResetReturnedByID() {
	m.returned_by_id = nil
	delete(m.clearedFields, assignment.FieldReturnedByID)
}

// SetNotes sets the "notes" field.
func (m *AssignmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AssignmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *AssignmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[assignment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AssignmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[assignment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AssignmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, assignment.FieldNotes)
}

// Where appends a list predicates to the AssignmentMutation builder.
func (m *AssignmentMutation) Where(ps ...predicate.Assignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assignment).
func (m *AssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, assignment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assignment.FieldUpdatedAt)
	}
	if m.activo_id != nil {
		fields = append(fields, assignment.FieldActivoID)
	}
	if m.employee_id != nil {
		fields = append(fields, assignment.FieldEmployeeID)
	}
	if m.assigned_date != nil {
		fields = append(fields, assignment.FieldAssignedDate)
	}
	if m.returned_date != nil {
		fields = append(fields, assignment.FieldReturnedDate)
	}
	if m.assigned_by_id != nil {
		fields = append(fields, assignment.FieldAssignedByID)
	}
	if m.returned_by_id != nil {
		fields = append(fields, assignment.FieldReturnedByID)
	}
	if m.notes != nil {
		fields = append(fields, assignment.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignment.FieldCreatedAt:
		return m.CreatedAt()
	case assignment.FieldUpdatedAt:
		return m.UpdatedAt()
	case assignment.FieldActivoID:
		return m.ActivoID()
	case assignment.FieldEmployeeID:
		return m.EmployeeID()
	case assignment.FieldAssignedDate:
		return m.AssignedDate()
	case assignment.FieldReturnedDate:
		return m.ReturnedDate()
	case assignment.FieldAssignedByID:
		return m.AssignedByID()
	case assignment.FieldReturnedByID:
		return m.ReturnedByID()
	case assignment.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assignment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case assignment.FieldActivoID:
		return m.OldActivoID(ctx)
	case assignment.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case assignment.FieldAssignedDate:
		return m.OldAssignedDate(ctx)
	case assignment.FieldReturnedDate:
		return m.OldReturnedDate(ctx)
	case assignment.FieldAssignedByID:
		return m.OldAssignedByID(ctx)
	case assignment.FieldReturnedByID:
		return m.OldReturnedByID(ctx)
	case assignment.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown Assignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assignment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case assignment.FieldActivoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivoID(v)
		return nil
	case assignment.FieldEmployeeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case assignment.FieldAssignedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedDate(v)
		return nil
	case assignment.FieldReturnedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReturnedDate(v)
		return nil
	case assignment.FieldAssignedByID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedByID(v)
		return nil
	case assignment.FieldReturnedByID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReturnedByID(v)
		return nil
	case assignment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Assignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assignment.FieldReturnedDate) {
		fields = append(fields, assignment.FieldReturnedDate)
	}
	if m.FieldCleared(assignment.FieldReturnedByID) {
		fields = append(fields, assignment.FieldReturnedByID)
	}
	if m.FieldCleared(assignment.FieldNotes) {
		fields = append(fields, assignment.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentMutation) ClearField(name string) error {
	switch name {
	case assignment.FieldReturnedDate:
		m.ClearReturnedDate()
		return nil
	case assignment.FieldReturnedByID:
		m.ClearReturnedByID()
		return nil
	case assignment.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Assignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentMutation) ResetField(name string) error {
	switch name {
	case assignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assignment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case assignment.FieldActivoID:
		m.ResetActivoID()
		return nil
	case assignment.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case assignment.FieldAssignedDate:
		m.ResetAssignedDate()
		return nil
	case assignment.FieldReturnedDate:
		m.ResetReturnedDate()
		return nil
	case assignment.FieldAssignedByID:
		m.ResetAssignedByID()
		return nil
	case assignment.FieldReturnedByID:
		m.ResetReturnedByID()
		return nil
	case assignment.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Assignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Assignment edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	activity_type *string
	entity_type   *string
	entity_id     *string
	user_id       *string
	description   *string
	old_data      *map[string]interface{}
	new_data      *map[string]interface{}
	ip_address    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActivityType sets the "activity_type" field.
func (m *AuditLogMutation) SetActivityType(s string) {
	m.activity_type = &s
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *AuditLogMutation) ActivityType() (r string, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActivityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *AuditLogMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetEntityType sets the "entity_type" field.
func (m *AuditLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AuditLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetDescription sets the "description" field.
func (m *AuditLogMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AuditLogMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AuditLogMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[auditlog.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AuditLogMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AuditLogMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, auditlog.FieldDescription)
}

// SetOldData sets the "old_data" field.
func (m *AuditLogMutation) SetOldData(value map[string]interface{}) {
	m.old_data = &value
}

// OldData returns the value of the "old_data" field in the mutation.
func (m *AuditLogMutation) OldData() (r map[string]interface{}, exists bool) {
	v := m.old_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOldData returns the old "old_data" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldOldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldData: %w", err)
	}
	return oldValue.OldData, nil
}

// ClearOldData clears the value of the "old_data" field.
func (m *AuditLogMutation) ClearOldData() {
	m.old_data = nil
	m.clearedFields[auditlog.FieldOldData] = struct{}{}
}

// OldDataCleared returns if the "old_data" field was cleared in this mutation.
func (m *AuditLogMutation) OldDataCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldOldData]
	return ok
}

// ResetOldData resets all changes to the "old_data" field.
func (m *AuditLogMutation) ResetOldData() {
	m.old_data = nil
	delete(m.clearedFields, auditlog.FieldOldData)
}

// SetNewData sets the "new_data" field.
func (m *AuditLogMutation) SetNewData(value map[string]interface{}) {
	m.new_data = &value
}

// NewData returns the value of the "new_data" field in the mutation.
func (m *AuditLogMutation) NewData() (r map[string]interface{}, exists bool) {
	v := m.new_data
	if v == nil {
		return
	}
	return *v, true
}

// OldNewData returns the old "new_data" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldNewData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewData: %w", err)
	}
	return oldValue.NewData, nil
}

// ClearNewData clears the value of the "new_data" field.
func (m *AuditLogMutation) ClearNewData() {
	m.new_data = nil
	m.clearedFields[auditlog.FieldNewData] = struct{}{}
}

// NewDataCleared returns if the "new_data" field was cleared in this mutation.
func (m *AuditLogMutation) NewDataCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldNewData]
	return ok
}

// ResetNewData resets all changes to the "new_data" field.
func (m *AuditLogMutation) ResetNewData() {
	m.new_data = nil
	delete(m.clearedFields, auditlog.FieldNewData)
}

// SetIPAddress sets the "ip_address" field.
func (m *AuditLogMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AuditLogMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *AuditLogMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[auditlog.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *AuditLogMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AuditLogMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, auditlog.FieldIPAddress)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.activity_type != nil {
		fields = append(fields, auditlog.FieldActivityType)
	}
	if m.entity_type != nil {
		fields = append(fields, auditlog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.user_id != nil {
		fields = append(fields, auditlog.FieldUserID)
	}
	if m.description != nil {
		fields = append(fields, auditlog.FieldDescription)
	}
	if m.old_data != nil {
		fields = append(fields, auditlog.FieldOldData)
	}
	if m.new_data != nil {
		fields = append(fields, auditlog.FieldNewData)
	}
	if m.ip_address != nil {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldActivityType:
		return m.ActivityType()
	case auditlog.FieldEntityType:
		return m.EntityType()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldUserID:
		return m.UserID()
	case auditlog.FieldDescription:
		return m.Description()
	case auditlog.FieldOldData:
		return m.OldData()
	case auditlog.FieldNewData:
		return m.NewData()
	case auditlog.FieldIPAddress:
		return m.IPAddress()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldActivityType:
		return m.OldActivityType(ctx)
	case auditlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldUserID:
		return m.OldUserID(ctx)
	case auditlog.FieldDescription:
		return m.OldDescription(ctx)
	case auditlog.FieldOldData:
		return m.OldOldData(ctx)
	case auditlog.FieldNewData:
		return m.OldNewData(ctx)
	case auditlog.FieldIPAddress:
		return m.OldIPAddress(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldActivityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case auditlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case auditlog.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case auditlog.FieldOldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldData(v)
		return nil
	case auditlog.FieldNewData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewData(v)
		return nil
	case auditlog.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDescription) {
		fields = append(fields, auditlog.FieldDescription)
	}
	if m.FieldCleared(auditlog.FieldOldData) {
		fields = append(fields, auditlog.FieldOldData)
	}
	if m.FieldCleared(auditlog.FieldNewData) {
		fields = append(fields, auditlog.FieldNewData)
	}
	if m.FieldCleared(auditlog.FieldIPAddress) {
		fields = append(fields, auditlog.FieldIPAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDescription:
		m.ClearDescription()
		return nil
	case auditlog.FieldOldData:
		m.ClearOldData()
		return nil
	case auditlog.FieldNewData:
		m.ClearNewData()
		return nil
	case auditlog.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldActivityType:
		m.ResetActivityType()
		return nil
	case auditlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldUserID:
		m.ResetUserID()
		return nil
	case auditlog.FieldDescription:
		m.ResetDescription()
		return nil
	case auditlog.FieldOldData:
		m.ResetOldData()
		return nil
	case auditlog.FieldNewData:
		m.ResetNewData()
		return nil
	case auditlog.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// DepartamentoMutation represents an operation that mutates the Departamento nodes in the graph.
type DepartamentoMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Departamento, error)
	predicates    []predicate.Departamento
}

var _ ent.Mutation = (*DepartamentoMutation)(nil)

// departamentoOption allows management of the mutation configuration using functional options.
type departamentoOption func(*DepartamentoMutation)

// newDepartamentoMutation creates new mutation for the Departamento entity.
func newDepartamentoMutation(c config, op Op, opts ...departamentoOption) *DepartamentoMutation {
	m := &DepartamentoMutation{
		config:        c,
		op:            op,
		typ:           TypeDepartamento,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDepartamentoID sets the ID field of the mutation.
func withDepartamentoID(id string) departamentoOption {
	return func(m *DepartamentoMutation) {
		var (
			err   error
			once  sync.Once
			value *Departamento
		)
		m.oldValue = func(ctx context.Context) (*Departamento, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Departamento.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDepartamento sets the old Departamento of the mutation.
func withDepartamento(node *Departamento) departamentoOption {
	return func(m *DepartamentoMutation) {
		m.oldValue = func(context.Context) (*Departamento, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DepartamentoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DepartamentoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Departamento entities.
func (m *DepartamentoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DepartamentoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DepartamentoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Departamento.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DepartamentoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DepartamentoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Departamento entity.
// If the Departamento object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartamentoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DepartamentoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DepartamentoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DepartamentoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Departamento entity.
// If the Departamento object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartamentoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DepartamentoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *DepartamentoMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DepartamentoMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Departamento entity.
// If the Departamento object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartamentoMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DepartamentoMutation) ResetName() {
	m.name = nil
}

// Where appends a list predicates to the DepartamentoMutation builder.
func (m *DepartamentoMutation) Where(ps ...predicate.Departamento) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DepartamentoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DepartamentoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Departamento, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DepartamentoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DepartamentoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Departamento).
func (m *DepartamentoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DepartamentoMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, departamento.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, departamento.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, departamento.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DepartamentoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case departamento.FieldCreatedAt:
		return m.CreatedAt()
	case departamento.FieldUpdatedAt:
		return m.UpdatedAt()
	case departamento.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DepartamentoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case departamento.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case departamento.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case departamento.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Departamento field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartamentoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case departamento.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case departamento.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case departamento.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Departamento field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DepartamentoMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DepartamentoMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartamentoMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Departamento numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DepartamentoMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DepartamentoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DepartamentoMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Departamento nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DepartamentoMutation) ResetField(name string) error {
	switch name {
	case departamento.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case departamento.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case departamento.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Departamento field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DepartamentoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DepartamentoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DepartamentoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DepartamentoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DepartamentoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DepartamentoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DepartamentoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Departamento unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DepartamentoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Departamento edge %s", name)
}

// EmployeeMutation represents an operation that mutates the Employee nodes in the graph.
type EmployeeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	employee_number *string
	first_name      *string
	last_name       *string
	region_id       *string
	finca_id        *string
	departamento_id *string
	area_id         *string
	start_date      *time.Time
	supervisor_id   *string
	document_path   *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Employee, error)
	predicates      []predicate.Employee
}

var _ ent.Mutation = (*EmployeeMutation)(nil)

// employeeOption allows management of the mutation configuration using functional options.
type employeeOption func(*EmployeeMutation)

// newEmployeeMutation creates new mutation for the Employee entity.
func newEmployeeMutation(c config, op Op, opts ...employeeOption) *EmployeeMutation {
	m := &EmployeeMutation{
		config:        c,
		op:            op,
		typ:           TypeEmployee,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmployeeID sets the ID field of the mutation.
func withEmployeeID(id string) employeeOption {
	return func(m *EmployeeMutation) {
		var (
			err   error
			once  sync.Once
			value *Employee
		)
		m.oldValue = func(ctx context.Context) (*Employee, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Employee.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmployee sets the old Employee of the mutation.
func withEmployee(node *Employee) employeeOption {
	return func(m *EmployeeMutation) {
		m.oldValue = func(context.Context) (*Employee, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmployeeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmployeeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Employee entities.
func (m *EmployeeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmployeeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmployeeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Employee.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EmployeeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmployeeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmployeeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmployeeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmployeeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmployeeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmployeeNumber sets the "employee_number" field.
func (m *EmployeeMutation) SetEmployeeNumber(s string) {
	m.employee_number = &s
}

// EmployeeNumber returns the value of the "employee_number" field in the mutation.
func (m *EmployeeMutation) EmployeeNumber() (r string, exists bool) {
	v := m.employee_number
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeNumber returns the old "employee_number" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldEmployeeNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeNumber: %w", err)
	}
	return oldValue.EmployeeNumber, nil
}

// ResetEmployeeNumber resets all changes to the "employee_number" field.
func (m *EmployeeMutation) ResetEmployeeNumber() {
	m.employee_number = nil
}

// SetFirstName sets the "first_name" field.
func (m *EmployeeMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *EmployeeMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *EmployeeMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *EmployeeMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *EmployeeMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *EmployeeMutation) ResetLastName() {
	m.last_name = nil
}

// SetRegionID sets the "region_id" field.
func (m *EmployeeMutation) SetRegionID(s string) {
	m.region_id = &s
}

// RegionID returns the value of the "region_id" field in the mutation.
func (m *EmployeeMutation) RegionID() (r string, exists bool) {
	v := m.region_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRegionID returns the old "region_id" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldRegionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegionID: %w", err)
	}
	return oldValue.RegionID, nil
}

// ClearRegionID clears the value of the "region_id" field.
func (m *EmployeeMutation) ClearRegionID() {
	m.region_id = nil
	m.clearedFields[employee.FieldRegionID] = struct{}{}
}

// RegionIDCleared returns if the "region_id" field was cleared in this mutation.
func (m *EmployeeMutation) RegionIDCleared() bool {
	_, ok := m.clearedFields[employee.FieldRegionID]
	return ok
}

// ResetRegionID resets all changes to the "region_id" field.
func (m *EmployeeMutation) ResetRegionID() {
	m.region_id = nil
	delete(m.clearedFields, employee.FieldRegionID)
}

// SetFincaID sets the "finca_id" field.
func (m *EmployeeMutation) SetFincaID(s string) {
	m.finca_id = &s
}

// FincaID returns the value of the "finca_id" field in the mutation.
func (m *EmployeeMutation) FincaID() (r string, exists bool) {
	v := m.finca_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFincaID returns the old "finca_id" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldFincaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFincaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFincaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFincaID: %w", err)
	}
	return oldValue.FincaID, nil
}

// ClearFincaID clears the value of the "finca_id" field.
func (m *EmployeeMutation) ClearFincaID() {
	m.finca_id = nil
	m.clearedFields[employee.FieldFincaID] = struct{}{}
}

// FincaIDCleared returns if the "finca_id" field was cleared in this mutation.
func (m *EmployeeMutation) FincaIDCleared() bool {
	_, ok := m.clearedFields[employee.FieldFincaID]
	return ok
}

// ResetFincaID resets all changes to the "finca_id" field.
func (m *EmployeeMutation) ResetFincaID() {
	m.finca_id = nil
	delete(m.clearedFields, employee.FieldFincaID)
}

// SetDepartamentoID sets the "departamento_id" field.
func (m *EmployeeMutation) SetDepartamentoID(s string) {
	m.departamento_id = &s
}

// DepartamentoID returns the value of the "departamento_id" field in the mutation.
func (m *EmployeeMutation) DepartamentoID() (r string, exists bool) {
	v := m.departamento_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartamentoID returns the old "departamento_id" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldDepartamentoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartamentoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartamentoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartamentoID: %w", err)
	}
	return oldValue.DepartamentoID, nil
}

// ClearDepartamentoID clears the value of the "departamento_id" field.
func (m *EmployeeMutation) ClearDepartamentoID() {
	m.departamento_id = nil
	m.clearedFields[employee.FieldDepartamentoID] = struct{}{}
}

// DepartamentoIDCleared returns if the "departamento_id" field was cleared in this mutation.
func (m *EmployeeMutation) DepartamentoIDCleared() bool {
	_, ok := m.clearedFields[employee.FieldDepartamentoID]
	return ok
}

// ResetDepartamentoID resets all changes to the "departamento_id" field.
func (m *EmployeeMutation) ResetDepartamentoID() {
	m.departamento_id = nil
	delete(m.clearedFields, employee.FieldDepartamentoID)
}

// SetAreaID sets the "area_id" field.
func (m *EmployeeMutation) SetAreaID(s string) {
	m.area_id = &s
}

// AreaID returns the value of the "area_id" field in the mutation.
func (m *EmployeeMutation) AreaID() (r string, exists bool) {
	v := m.area_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaID returns the old "area_id" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldAreaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaID: %w", err)
	}
	return oldValue.AreaID, nil
}

// ClearAreaID clears the value of the "area_id" field.
func (m *EmployeeMutation) ClearAreaID() {
	m.area_id = nil
	m.clearedFields[employee.FieldAreaID] = struct{}{}
}

// AreaIDCleared returns if the "area_id" field was cleared in this mutation.
func (m *EmployeeMutation) AreaIDCleared() bool {
	_, ok := m.clearedFields[employee.FieldAreaID]
	return ok
}

// ResetAreaID resets all changes to the "area_id" field.
func (m *EmployeeMutation) ResetAreaID() {
	m.area_id = nil
	delete(m.clearedFields, employee.FieldAreaID)
}

// SetStartDate sets the "start_date" field.
func (m *EmployeeMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *EmployeeMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *EmployeeMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[employee.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *EmployeeMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[employee.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *EmployeeMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, employee.FieldStartDate)
}

// SetSupervisorID sets the "supervisor_id" field.
func (m *EmployeeMutation) SetSupervisorID(s string) {
	m.supervisor_id = &s
}

// SupervisorID returns the value of the "supervisor_id" field in the mutation.
func (m *EmployeeMutation) SupervisorID() (r string, exists bool) {
	v := m.supervisor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupervisorID returns the old "supervisor_id" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldSupervisorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupervisorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupervisorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupervisorID: %w", err)
	}
	return oldValue.SupervisorID, nil
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (m *EmployeeMutation) ClearSupervisorID() {
	m.supervisor_id = nil
	m.clearedFields[employee.FieldSupervisorID] = struct{}{}
}

// SupervisorIDCleared returns if the "supervisor_id" field was cleared in this mutation.
func (m *EmployeeMutation) SupervisorIDCleared() bool {
	_, ok := m.clearedFields[employee.FieldSupervisorID]
	return ok
}

// ResetSupervisorID resets all changes to the "supervisor_id" field.
func (m *EmployeeMutation) ResetSupervisorID() {
	m.supervisor_id = nil
	delete(m.clearedFields, employee.FieldSupervisorID)
}

// SetDocumentPath sets the "document_path" field.
func (m *EmployeeMutation) SetDocumentPath(s string) {
	m.document_path = &s
}

// DocumentPath returns the value of the "document_path" field in the mutation.
func (m *EmployeeMutation) DocumentPath() (r string, exists bool) {
	v := m.document_path
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentPath returns the old "document_path" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldDocumentPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentPath: %w", err)
	}
	return oldValue.DocumentPath, nil
}

// ClearDocumentPath clears the value of the "document_path" field.
func (m *EmployeeMutation) ClearDocumentPath() {
	m.document_path = nil
	m.clearedFields[employee.FieldDocumentPath] = struct{}{}
}

// DocumentPathCleared returns if the "document_path" field was cleared in this mutation.
func (m *EmployeeMutation) DocumentPathCleared() bool {
	_, ok := m.clearedFields[employee.FieldDocumentPath]
	return ok
}

// ResetDocumentPath resets all changes to the "document_path" field.
func (m *EmployeeMutation) ResetDocumentPath() {
	m.document_path = nil
	delete(m.clearedFields, employee.FieldDocumentPath)
}

// Where appends a list predicates to the EmployeeMutation builder.
func (m *EmployeeMutation) Where(ps ...predicate.Employee) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmployeeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmployeeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Employee, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmployeeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmployeeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Employee).
func (m *EmployeeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmployeeMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, employee.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, employee.FieldUpdatedAt)
	}
	if m.employee_number != nil {
		fields = append(fields, employee.FieldEmployeeNumber)
	}
	if m.first_name != nil {
		fields = append(fields, employee.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, employee.FieldLastName)
	}
	if m.region_id != nil {
		fields = append(fields, employee.FieldRegionID)
	}
	if m.finca_id != nil {
		fields = append(fields, employee.FieldFincaID)
	}
	if m.departamento_id != nil {
		fields = append(fields, employee.FieldDepartamentoID)
	}
	if m.area_id != nil {
		fields = append(fields, employee.FieldAreaID)
	}
	if m.start_date != nil {
		fields = append(fields, employee.FieldStartDate)
	}
	if m.supervisor_id != nil {
		fields = append(fields, employee.FieldSupervisorID)
	}
	if m.document_path != nil {
		fields = append(fields, employee.FieldDocumentPath)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmployeeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case employee.FieldCreatedAt:
		return m.CreatedAt()
	case employee.FieldUpdatedAt:
		return m.UpdatedAt()
	case employee.FieldEmployeeNumber:
		return m.EmployeeNumber()
	case employee.FieldFirstName:
		return m.FirstName()
	case employee.FieldLastName:
		return m.LastName()
	case employee.FieldRegionID:
		return m.RegionID()
	case employee.FieldFincaID:
		return m.FincaID()
	case employee.FieldDepartamentoID:
		return m.DepartamentoID()
	case employee.FieldAreaID:
		return m.AreaID()
	case employee.FieldStartDate:
		return m.StartDate()
	case employee.FieldSupervisorID:
		return m.SupervisorID()
	case employee.FieldDocumentPath:
		return m.DocumentPath()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmployeeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case employee.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case employee.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case employee.FieldEmployeeNumber:
		return m.OldEmployeeNumber(ctx)
	case employee.FieldFirstName:
		return m.OldFirstName(ctx)
	case employee.FieldLastName:
		return m.OldLastName(ctx)
	case employee.FieldRegionID:
		return m.OldRegionID(ctx)
	case employee.FieldFincaID:
		return m.OldFincaID(ctx)
	case employee.FieldDepartamentoID:
		return m.OldDepartamentoID(ctx)
	case employee.FieldAreaID:
		return m.OldAreaID(ctx)
	case employee.FieldStartDate:
		return m.OldStartDate(ctx)
	case employee.FieldSupervisorID:
		return m.OldSupervisorID(ctx)
	case employee.FieldDocumentPath:
		return m.OldDocumentPath(ctx)
	}
	return nil, fmt.Errorf("unknown Employee field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployeeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case employee.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case employee.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case employee.FieldEmployeeNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeNumber(v)
		return nil
	case employee.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case employee.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case employee.FieldRegionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegionID(v)
		return nil
	case employee.FieldFincaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFincaID(v)
		return nil
	case employee.FieldDepartamentoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartamentoID(v)
		return nil
	case employee.FieldAreaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaID(v)
		return nil
	case employee.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case employee.FieldSupervisorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupervisorID(v)
		return nil
	case employee.FieldDocumentPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentPath(v)
		return nil
	}
	return fmt.Errorf("unknown Employee field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmployeeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmployeeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployeeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Employee numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmployeeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(employee.FieldRegionID) {
		fields = append(fields, employee.FieldRegionID)
	}
	if m.FieldCleared(employee.FieldFincaID) {
		fields = append(fields, employee.FieldFincaID)
	}
	if m.FieldCleared(employee.FieldDepartamentoID) {
		fields = append(fields, employee.FieldDepartamentoID)
	}
	if m.FieldCleared(employee.FieldAreaID) {
		fields = append(fields, employee.FieldAreaID)
	}
	if m.FieldCleared(employee.FieldStartDate) {
		fields = append(fields, employee.FieldStartDate)
	}
	if m.FieldCleared(employee.FieldSupervisorID) {
		fields = append(fields, employee.FieldSupervisorID)
	}
	if m.FieldCleared(employee.FieldDocumentPath) {
		fields = append(fields, employee.FieldDocumentPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmployeeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmployeeMutation) ClearField(name string) error {
	switch name {
	case employee.FieldRegionID:
		m.ClearRegionID()
		return nil
	case employee.FieldFincaID:
		m.ClearFincaID()
		return nil
	case employee.FieldDepartamentoID:
		m.ClearDepartamentoID()
		return nil
	case employee.FieldAreaID:
		m.ClearAreaID()
		return nil
	case employee.FieldStartDate:
		m.ClearStartDate()
		return nil
	case employee.FieldSupervisorID:
		m.ClearSupervisorID()
		return nil
	case employee.FieldDocumentPath:
		m.ClearDocumentPath()
		return nil
	}
	return fmt.Errorf("unknown Employee nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmployeeMutation) ResetField(name string) error {
	switch name {
	case employee.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case employee.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case employee.FieldEmployeeNumber:
		m.ResetEmployeeNumber()
		return nil
	case employee.FieldFirstName:
		m.ResetFirstName()
		return nil
	case employee.FieldLastName:
		m.ResetLastName()
		return nil
	case employee.FieldRegionID:
		m.ResetRegionID()
		return nil
	case employee.FieldFincaID:
		m.ResetFincaID()
		return nil
	case employee.FieldDepartamentoID:
		m.ResetDepartamentoID()
		return nil
	case employee.FieldAreaID:
		m.ResetAreaID()
		return nil
	case employee.FieldStartDate:
		m.ResetStartDate()
		return nil
	case employee.FieldSupervisorID:
		m.ResetSupervisorID()
		return nil
	case employee.FieldDocumentPath:
		m.ResetDocumentPath()
		return nil
	}
	return fmt.Errorf("unknown Employee field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmployeeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmployeeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmployeeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmployeeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmployeeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmployeeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmployeeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Employee unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmployeeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Employee edge %s", name)
}

// FincaMutation represents an operation that mutates the Finca nodes in the graph.
type FincaMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	region_id     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Finca, error)
	predicates    []predicate.Finca
}

var _ ent.Mutation = (*FincaMutation)(nil)

// fincaOption allows management of the mutation configuration using functional options.
type fincaOption func(*FincaMutation)

// newFincaMutation creates new mutation for the Finca entity.
func newFincaMutation(c config, op Op, opts ...fincaOption) *FincaMutation {
	m := &FincaMutation{
		config:        c,
		op:            op,
		typ:           TypeFinca,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFincaID sets the ID field of the mutation.
func withFincaID(id string) fincaOption {
	return func(m *FincaMutation) {
		var (
			err   error
			once  sync.Once
			value *Finca
		)
		m.oldValue = func(ctx context.Context) (*Finca, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Finca.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinca sets the old Finca of the mutation.
func withFinca(node *Finca) fincaOption {
	return func(m *FincaMutation) {
		m.oldValue = func(context.Context) (*Finca, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FincaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FincaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Finca entities.
func (m *FincaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FincaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FincaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Finca.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FincaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FincaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Finca entity.
// If the Finca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FincaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FincaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FincaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FincaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Finca entity.
// If the Finca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FincaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FincaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *FincaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FincaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Finca entity.
// If the Finca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FincaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FincaMutation) ResetName() {
	m.name = nil
}

// SetRegionID sets the "region_id" field.
func (m *FincaMutation) SetRegionID(s string) {
	m.region_id = &s
}

// RegionID returns the value of the "region_id" field in the mutation.
func (m *FincaMutation) RegionID() (r string, exists bool) {
	v := m.region_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRegionID returns the old "region_id" field's value of the Finca entity.
// If the Finca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FincaMutation) OldRegionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegionID: %w", err)
	}
	return oldValue.RegionID, nil
}

// ResetRegionID resets all changes to the "region_id" field.
func (m *FincaMutation) ResetRegionID() {
	m.region_id = nil
}

// Where appends a list predicates to the FincaMutation builder.
func (m *FincaMutation) Where(ps ...predicate.Finca) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FincaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FincaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Finca, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FincaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FincaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Finca).
func (m *FincaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FincaMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, finca.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, finca.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, finca.FieldName)
	}
	if m.region_id != nil {
		fields = append(fields, finca.FieldRegionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FincaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case finca.FieldCreatedAt:
		return m.CreatedAt()
	case finca.FieldUpdatedAt:
		return m.UpdatedAt()
	case finca.FieldName:
		return m.Name()
	case finca.FieldRegionID:
		return m.RegionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FincaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case finca.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case finca.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case finca.FieldName:
		return m.OldName(ctx)
	case finca.FieldRegionID:
		return m.OldRegionID(ctx)
	}
	return nil, fmt.Errorf("unknown Finca field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FincaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case finca.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case finca.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case finca.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case finca.FieldRegionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegionID(v)
		return nil
	}
	return fmt.Errorf("unknown Finca field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FincaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FincaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FincaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Finca numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FincaMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FincaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FincaMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Finca nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FincaMutation) ResetField(name string) error {
	switch name {
	case finca.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case finca.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case finca.FieldName:
		m.ResetName()
		return nil
	case finca.FieldRegionID:
		m.ResetRegionID()
		return nil
	}
	return fmt.Errorf("unknown Finca field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FincaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FincaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FincaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FincaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FincaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FincaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FincaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Finca unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FincaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Finca edge %s", name)
}

// MaintenanceMutation represents an operation that mutates the Maintenance nodes in the graph.
type MaintenanceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	activo_id             *string
	fecha_mantenimiento   *time.Time
	proximo_mantenimiento *time.Time
	tecnico_id            *string
	hallazgos             *string
	attachments           *[]string
	appendattachments     []string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Maintenance, error)
	predicates            []predicate.Maintenance
}

var _ ent.Mutation = (*MaintenanceMutation)(nil)

// maintenanceOption allows management of the mutation configuration using functional options.
type maintenanceOption func(*MaintenanceMutation)

// newMaintenanceMutation creates new mutation for the Maintenance entity.
func newMaintenanceMutation(c config, op Op, opts ...maintenanceOption) *MaintenanceMutation {
	m := &MaintenanceMutation{
		config:        c,
		op:            op,
		typ:           TypeMaintenance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaintenanceID sets the ID field of the mutation.
func withMaintenanceID(id string) maintenanceOption {
	return func(m *MaintenanceMutation) {
		var (
			err   error
			once  sync.Once
			value *Maintenance
		)
		m.oldValue = func(ctx context.Context) (*Maintenance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Maintenance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaintenance sets the old Maintenance of the mutation.
func withMaintenance(node *Maintenance) maintenanceOption {
	return func(m *MaintenanceMutation) {
		m.oldValue = func(context.Context) (*Maintenance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaintenanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaintenanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Maintenance entities.
func (m *MaintenanceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaintenanceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaintenanceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Maintenance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MaintenanceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaintenanceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaintenanceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MaintenanceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MaintenanceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MaintenanceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetActivoID sets the "activo_id" field.
func (m *MaintenanceMutation) SetActivoID(s string) {
	m.activo_id = &s
}

// ActivoID returns the value of the "activo_id" field in the mutation.
func (m *MaintenanceMutation) ActivoID() (r string, exists bool) {
	v := m.activo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivoID returns the old "activo_id" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldActivoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivoID: %w", err)
	}
	return oldValue.ActivoID, nil
}

// ResetActivoID resets all changes to the "activo_id" field.
func (m *MaintenanceMutation) ResetActivoID() {
	m.activo_id = nil
}

// SetFechaMantenimiento sets the "fecha_mantenimiento" field.
func (m *MaintenanceMutation) SetFechaMantenimiento(t time.Time) {
	m.fecha_mantenimiento = &t
}

// FechaMantenimiento returns the value of the "fecha_mantenimiento" field in the mutation.
func (m *MaintenanceMutation) FechaMantenimiento() (r time.Time, exists bool) {
	v := m.fecha_mantenimiento
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaMantenimiento returns the old "fecha_mantenimiento" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldFechaMantenimiento(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaMantenimiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaMantenimiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaMantenimiento: %w", err)
	}
	return oldValue.FechaMantenimiento, nil
}

// ResetFechaMantenimiento resets all changes to the "fecha_mantenimiento" field.
func (m *MaintenanceMutation) ResetFechaMantenimiento() {
	m.fecha_mantenimiento = nil
}

// SetProximoMantenimiento sets the "proximo_mantenimiento" field.
func (m *MaintenanceMutation) SetProximoMantenimiento(t time.Time) {
	m.proximo_mantenimiento = &t
}

// ProximoMantenimiento returns the value of the "proximo_mantenimiento" field in the mutation.
func (m *MaintenanceMutation) ProximoMantenimiento() (r time.Time, exists bool) {
	v := m.proximo_mantenimiento
	if v == nil {
		return
	}
	return *v, true
}

// OldProximoMantenimiento returns the old "proximo_mantenimiento" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldProximoMantenimiento(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProximoMantenimiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProximoMantenimiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProximoMantenimiento: %w", err)
	}
	return oldValue.ProximoMantenimiento, nil
}

// ResetProximoMantenimiento resets all changes to the "proximo_mantenimiento" field.
func (m *MaintenanceMutation) ResetProximoMantenimiento() {
	m.proximo_mantenimiento = nil
}

// SetTecnicoID sets the "tecnico_id" field.
func (m *MaintenanceMutation) SetTecnicoID(s string) {
	m.tecnico_id = &s
}

// TecnicoID returns the value of the "tecnico_id" field in the mutation.
func (m *MaintenanceMutation) TecnicoID() (r string, exists bool) {
	v := m.tecnico_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTecnicoID returns the old "tecnico_id" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldTecnicoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTecnicoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTecnicoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTecnicoID: %w", err)
	}
	return oldValue.TecnicoID, nil
}

// ResetTecnicoID resets all changes to the "tecnico_id" field.
func (m *MaintenanceMutation) ResetTecnicoID() {
	m.tecnico_id = nil
}

// SetHallazgos sets the "hallazgos" field.
func (m *MaintenanceMutation) SetHallazgos(s string) {
	m.hallazgos = &s
}

// Hallazgos returns the value of the "hallazgos" field in the mutation.
func (m *MaintenanceMutation) Hallazgos() (r string, exists bool) {
	v := m.hallazgos
	if v == nil {
		return
	}
	return *v, true
}

// OldHallazgos returns the old "hallazgos" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldHallazgos(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHallazgos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHallazgos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHallazgos: %w", err)
	}
	return oldValue.Hallazgos, nil
}

// ClearHallazgos clears the value of the "hallazgos" field.
func (m *MaintenanceMutation) ClearHallazgos() {
	m.hallazgos = nil
	m.clearedFields[maintenance.FieldHallazgos] = struct{}{}
}

// HallazgosCleared returns if the "hallazgos" field was cleared in this mutation.
func (m *MaintenanceMutation) HallazgosCleared() bool {
	_, ok := m.clearedFields[maintenance.FieldHallazgos]
	return ok
}

// ResetHallazgos resets all changes to the "hallazgos" field.
func (m *MaintenanceMutation) ResetHallazgos() {
	m.hallazgos = nil
	delete(m.clearedFields, maintenance.FieldHallazgos)
}

// SetAttachments sets the "attachments" field.
func (m *MaintenanceMutation) SetAttachments(s []string) {
	m.attachments = &s
	m.appendattachments = nil
}

// Attachments returns the value of the "attachments" field in the mutation.
func (m *MaintenanceMutation) Attachments() (r []string, exists bool) {
	v := m.attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachments returns the old "attachments" field's value of the Maintenance entity.
// If the Maintenance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceMutation) OldAttachments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachments: %w", err)
	}
	return oldValue.Attachments, nil
}

// AppendAttachments adds s to the "attachments" field.
func (m *MaintenanceMutation) AppendAttachments(s []string) {
	m.appendattachments = append(m.appendattachments, s...)
}

// AppendedAttachments returns the list of values that were appended to the "attachments" field in this mutation.
func (m *MaintenanceMutation) AppendedAttachments() ([]string, bool) {
	if len(m.appendattachments) == 0 {
		return nil, false
	}
	return m.appendattachments, true
}

// ClearAttachments clears the value of the "attachments" field.
func (m *MaintenanceMutation) ClearAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	m.clearedFields[maintenance.FieldAttachments] = struct{}{}
}

// AttachmentsCleared returns if the "attachments" field was cleared in this mutation.
func (m *MaintenanceMutation) AttachmentsCleared() bool {
	_, ok := m.clearedFields[maintenance.FieldAttachments]
	return ok
}

// ResetAttachments resets all changes to the "attachments" field.
func (m *MaintenanceMutation) ResetAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	delete(m.clearedFields, maintenance.FieldAttachments)
}

// Where appends a list predicates to the MaintenanceMutation builder.
func (m *MaintenanceMutation) Where(ps ...predicate.Maintenance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaintenanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaintenanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Maintenance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaintenanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaintenanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Maintenance).
func (m *MaintenanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaintenanceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, maintenance.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, maintenance.FieldUpdatedAt)
	}
	if m.activo_id != nil {
		fields = append(fields, maintenance.FieldActivoID)
	}
	if m.fecha_mantenimiento != nil {
		fields = append(fields, maintenance.FieldFechaMantenimiento)
	}
	if m.proximo_mantenimiento != nil {
		fields = append(fields, maintenance.FieldProximoMantenimiento)
	}
	if m.tecnico_id != nil {
		fields = append(fields, maintenance.FieldTecnicoID)
	}
	if m.hallazgos != nil {
		fields = append(fields, maintenance.FieldHallazgos)
	}
	if m.attachments != nil {
		fields = append(fields, maintenance.FieldAttachments)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaintenanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case maintenance.FieldCreatedAt:
		return m.CreatedAt()
	case maintenance.FieldUpdatedAt:
		return m.UpdatedAt()
	case maintenance.FieldActivoID:
		return m.ActivoID()
	case maintenance.FieldFechaMantenimiento:
		return m.FechaMantenimiento()
	case maintenance.FieldProximoMantenimiento:
		return m.ProximoMantenimiento()
	case maintenance.FieldTecnicoID:
		return m.TecnicoID()
	case maintenance.FieldHallazgos:
		return m.Hallazgos()
	case maintenance.FieldAttachments:
		return m.Attachments()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaintenanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case maintenance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case maintenance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case maintenance.FieldActivoID:
		return m.OldActivoID(ctx)
	case maintenance.FieldFechaMantenimiento:
		return m.OldFechaMantenimiento(ctx)
	case maintenance.FieldProximoMantenimiento:
		return m.OldProximoMantenimiento(ctx)
	case maintenance.FieldTecnicoID:
		return m.OldTecnicoID(ctx)
	case maintenance.FieldHallazgos:
		return m.OldHallazgos(ctx)
	case maintenance.FieldAttachments:
		return m.OldAttachments(ctx)
	}
	return nil, fmt.Errorf("unknown Maintenance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaintenanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case maintenance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case maintenance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case maintenance.FieldActivoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivoID(v)
		return nil
	case maintenance.FieldFechaMantenimiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaMantenimiento(v)
		return nil
	case maintenance.FieldProximoMantenimiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProximoMantenimiento(v)
		return nil
	case maintenance.FieldTecnicoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTecnicoID(v)
		return nil
	case maintenance.FieldHallazgos:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHallazgos(v)
		return nil
	case maintenance.FieldAttachments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachments(v)
		return nil
	}
	return fmt.Errorf("unknown Maintenance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaintenanceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaintenanceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaintenanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Maintenance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaintenanceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(maintenance.FieldHallazgos) {
		fields = append(fields, maintenance.FieldHallazgos)
	}
	if m.FieldCleared(maintenance.FieldAttachments) {
		fields = append(fields, maintenance.FieldAttachments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaintenanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaintenanceMutation) ClearField(name string) error {
	switch name {
	case maintenance.FieldHallazgos:
		m.ClearHallazgos()
		return nil
	case maintenance.FieldAttachments:
		m.ClearAttachments()
		return nil
	}
	return fmt.Errorf("unknown Maintenance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaintenanceMutation) ResetField(name string) error {
	switch name {
	case maintenance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case maintenance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case maintenance.FieldActivoID:
		m.ResetActivoID()
		return nil
	case maintenance.FieldFechaMantenimiento:
		m.ResetFechaMantenimiento()
		return nil
	case maintenance.FieldProximoMantenimiento:
		m.ResetProximoMantenimiento()
		return nil
	case maintenance.FieldTecnicoID:
		m.ResetTecnicoID()
		return nil
	case maintenance.FieldHallazgos:
		m.ResetHallazgos()
		return nil
	case maintenance.FieldAttachments:
		m.ResetAttachments()
		return nil
	}
	return fmt.Errorf("unknown Maintenance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaintenanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaintenanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaintenanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaintenanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaintenanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaintenanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaintenanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Maintenance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaintenanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Maintenance edge %s", name)
}

// MarcaMutation represents an operation that mutates the Marca nodes in the graph.
type MarcaMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	description   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Marca, error)
	predicates    []predicate.Marca
}

var _ ent.Mutation = (*MarcaMutation)(nil)

// marcaOption allows management of the mutation configuration using functional options.
type marcaOption func(*MarcaMutation)

// newMarcaMutation creates new mutation for the Marca entity.
func newMarcaMutation(c config, op Op, opts ...marcaOption) *MarcaMutation {
	m := &MarcaMutation{
		config:        c,
		op:            op,
		typ:           TypeMarca,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMarcaID sets the ID field of the mutation.
func withMarcaID(id string) marcaOption {
	return func(m *MarcaMutation) {
		var (
			err   error
			once  sync.Once
			value *Marca
		)
		m.oldValue = func(ctx context.Context) (*Marca, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Marca.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMarca sets the old Marca of the mutation.
func withMarca(node *Marca) marcaOption {
	return func(m *MarcaMutation) {
		m.oldValue = func(context.Context) (*Marca, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MarcaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MarcaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Marca entities.
func (m *MarcaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MarcaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MarcaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Marca.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MarcaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MarcaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Marca entity.
// If the Marca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarcaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MarcaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MarcaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MarcaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Marca entity.
// If the Marca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarcaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MarcaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *MarcaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MarcaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Marca entity.
// If the Marca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarcaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MarcaMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *MarcaMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MarcaMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Marca entity.
// If the Marca object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MarcaMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MarcaMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[marca.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MarcaMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[marca.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MarcaMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, marca.FieldDescription)
}

// Where appends a list predicates to the MarcaMutation builder.
func (m *MarcaMutation) Where(ps ...predicate.Marca) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MarcaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MarcaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Marca, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MarcaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MarcaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Marca).
func (m *MarcaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MarcaMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, marca.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, marca.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, marca.FieldName)
	}
	if m.description != nil {
		fields = append(fields, marca.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MarcaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case marca.FieldCreatedAt:
		return m.CreatedAt()
	case marca.FieldUpdatedAt:
		return m.UpdatedAt()
	case marca.FieldName:
		return m.Name()
	case marca.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MarcaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case marca.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case marca.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case marca.FieldName:
		return m.OldName(ctx)
	case marca.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Marca field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarcaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case marca.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case marca.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case marca.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case marca.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Marca field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MarcaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MarcaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MarcaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Marca numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MarcaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(marca.FieldDescription) {
		fields = append(fields, marca.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MarcaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MarcaMutation) ClearField(name string) error {
	switch name {
	case marca.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Marca nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MarcaMutation) ResetField(name string) error {
	switch name {
	case marca.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case marca.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case marca.FieldName:
		m.ResetName()
		return nil
	case marca.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Marca field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MarcaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MarcaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MarcaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MarcaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MarcaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MarcaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MarcaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Marca unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MarcaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Marca edge %s", name)
}

// ModeloActivoMutation represents an operation that mutates the ModeloActivo nodes in the graph.
type ModeloActivoMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	marca_id         *string
	tipo_activo_id   *string
	procesador       *string
	ram              *int
	addram           *int
	almacenamiento   *string
	tarjeta_grafica  *string
	wifi             *bool
	ethernet         *bool
	puertos_ethernet *string
	puertos_sfp      *string
	puerto_consola   *bool
	puertos_poe      *string
	alimentacion     *string
	administrable    *bool
	tamano           *string
	color            *string
	conectores       *string
	cables           *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ModeloActivo, error)
	predicates       []predicate.ModeloActivo
}

var _ ent.Mutation = (*ModeloActivoMutation)(nil)

// modeloactivoOption allows management of the mutation configuration using functional options.
type modeloactivoOption func(*ModeloActivoMutation)

// newModeloActivoMutation creates new mutation for the ModeloActivo entity.
func newModeloActivoMutation(c config, op Op, opts ...modeloactivoOption) *ModeloActivoMutation {
	m := &ModeloActivoMutation{
		config:        c,
		op:            op,
		typ:           TypeModeloActivo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModeloActivoID sets the ID field of the mutation.
func withModeloActivoID(id string) modeloactivoOption {
	return func(m *ModeloActivoMutation) {
		var (
			err   error
			once  sync.Once
			value *ModeloActivo
		)
		m.oldValue = func(ctx context.Context) (*ModeloActivo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModeloActivo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModeloActivo sets the old ModeloActivo of the mutation.
func withModeloActivo(node *ModeloActivo) modeloactivoOption {
	return func(m *ModeloActivoMutation) {
		m.oldValue = func(context.Context) (*ModeloActivo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModeloActivoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModeloActivoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModeloActivo entities.
func (m *ModeloActivoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModeloActivoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModeloActivoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModeloActivo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ModeloActivoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModeloActivoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModeloActivoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModeloActivoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModeloActivoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModeloActivoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ModeloActivoMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ModeloActivoMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ModeloActivoMutation) ResetName() {
	m.name = nil
}

// SetMarcaID sets the "marca_id" field.
func (m *ModeloActivoMutation) SetMarcaID(s string) {
	m.marca_id = &s
}

// MarcaID returns the value of the "marca_id" field in the mutation.
func (m *ModeloActivoMutation) MarcaID() (r string, exists bool) {
	v := m.marca_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMarcaID returns the old "marca_id" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldMarcaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarcaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarcaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarcaID: %w", err)
	}
	return oldValue.MarcaID, nil
}

// ResetMarcaID resets all changes to the "marca_id" field.
func (m *ModeloActivoMutation) ResetMarcaID() {
	m.marca_id = nil
}

// SetTipoActivoID sets the "tipo_activo_id" field.
func (m *ModeloActivoMutation) SetTipoActivoID(s string) {
	m.tipo_activo_id = &s
}

// TipoActivoID returns the value of the "tipo_activo_id" field in the mutation.
func (m *ModeloActivoMutation) TipoActivoID() (r string, exists bool) {
	v := m.tipo_activo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoActivoID returns the old "tipo_activo_id" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldTipoActivoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoActivoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoActivoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoActivoID: %w", err)
	}
	return oldValue.TipoActivoID, nil
}

// ClearTipoActivoID clears the value of the "tipo_activo_id" field.
func (m *ModeloActivoMutation) ClearTipoActivoID() {
	m.tipo_activo_id = nil
	m.clearedFields[modeloactivo.FieldTipoActivoID] = struct{}{}
}

// TipoActivoIDCleared returns if the "tipo_activo_id" field was cleared in this mutation.
func (m *ModeloActivoMutation) TipoActivoIDCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldTipoActivoID]
	return ok
}

// ResetTipoActivoID resets all changes to the "tipo_activo_id" field.
func (m *ModeloActivoMutation) ResetTipoActivoID() {
	m.tipo_activo_id = nil
	delete(m.clearedFields, modeloactivo.FieldTipoActivoID)
}

// SetProcesador sets the "procesador" field.
func (m *ModeloActivoMutation) SetProcesador(s string) {
	m.procesador = &s
}

// Procesador returns the value of the "procesador" field in the mutation.
func (m *ModeloActivoMutation) Procesador() (r string, exists bool) {
	v := m.procesador
	if v == nil {
		return
	}
	return *v, true
}

// OldProcesador returns the old "procesador" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldProcesador(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcesador is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcesador requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcesador: %w", err)
	}
	return oldValue.Procesador, nil
}

// ClearProcesador clears the value of the "procesador" field.
func (m *ModeloActivoMutation) ClearProcesador() {
	m.procesador = nil
	m.clearedFields[modeloactivo.FieldProcesador] = struct{}{}
}

// ProcesadorCleared returns if the "procesador" field was cleared in this mutation.
func (m *ModeloActivoMutation) ProcesadorCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldProcesador]
	return ok
}

// ResetProcesador resets all changes to the "procesador" field.
func (m *ModeloActivoMutation) ResetProcesador() {
	m.procesador = nil
	delete(m.clearedFields, modeloactivo.FieldProcesador)
}

// SetRAM sets the "ram" field.
func (m *ModeloActivoMutation) SetRAM(i int) {
	m.ram = &i
	m.addram = nil
}

// RAM returns the value of the "ram" field in the mutation.
func (m *ModeloActivoMutation) RAM() (r int, exists bool) {
	v := m.ram
	if v == nil {
		return
	}
	return *v, true
}

// OldRAM returns the old "ram" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldRAM(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRAM is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRAM requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRAM: %w", err)
	}
	return oldValue.RAM, nil
}

// AddRAM adds i to the "ram" field.
func (m *ModeloActivoMutation) AddRAM(i int) {
	if m.addram != nil {
		*m.addram += i
	} else {
		m.addram = &i
	}
}

// AddedRAM returns the value that was added to the "ram" field in this mutation.
func (m *ModeloActivoMutation) AddedRAM() (r int, exists bool) {
	v := m.addram
	if v == nil {
		return
	}
	return *v, true
}

// ClearRAM clears the value of the "ram" field.
func (m *ModeloActivoMutation) ClearRAM() {
	m.ram = nil
	m.addram = nil
	m.clearedFields[modeloactivo.FieldRAM] = struct{}{}
}

// RAMCleared returns if the "ram" field was cleared in this mutation.
func (m *ModeloActivoMutation) RAMCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldRAM]
	return ok
}

// ResetRAM resets all changes to the "ram" field.
func (m *ModeloActivoMutation) ResetRAM() {
	m.ram = nil
	m.addram = nil
	delete(m.clearedFields, modeloactivo.FieldRAM)
}

// SetAlmacenamiento sets the "almacenamiento" field.
func (m *ModeloActivoMutation) SetAlmacenamiento(s string) {
	m.almacenamiento = &s
}

// Almacenamiento returns the value of the "almacenamiento" field in the mutation.
func (m *ModeloActivoMutation) Almacenamiento() (r string, exists bool) {
	v := m.almacenamiento
	if v == nil {
		return
	}
	return *v, true
}

// OldAlmacenamiento returns the old "almacenamiento" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldAlmacenamiento(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlmacenamiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlmacenamiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlmacenamiento: %w", err)
	}
	return oldValue.Almacenamiento, nil
}

// ClearAlmacenamiento clears the value of the "almacenamiento" field.
func (m *ModeloActivoMutation) ClearAlmacenamiento() {
	m.almacenamiento = nil
	m.clearedFields[modeloactivo.FieldAlmacenamiento] = struct{}{}
}

// AlmacenamientoCleared returns if the "almacenamiento" field was cleared in this mutation.
func (m *ModeloActivoMutation) AlmacenamientoCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldAlmacenamiento]
	return ok
}

// ResetAlmacenamiento resets all changes to the "almacenamiento" field.
func (m *ModeloActivoMutation) ResetAlmacenamiento() {
	m.almacenamiento = nil
	delete(m.clearedFields, modeloactivo.FieldAlmacenamiento)
}

// SetTarjetaGrafica sets the "tarjeta_grafica" field.
func (m *ModeloActivoMutation) SetTarjetaGrafica(s string) {
	m.tarjeta_grafica = &s
}

// TarjetaGrafica returns the value of the "tarjeta_grafica" field in the mutation.
func (m *ModeloActivoMutation) TarjetaGrafica() (r string, exists bool) {
	v := m.tarjeta_grafica
	if v == nil {
		return
	}
	return *v, true
}

// OldTarjetaGrafica returns the old "tarjeta_grafica" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldTarjetaGrafica(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarjetaGrafica is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarjetaGrafica requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarjetaGrafica: %w", err)
	}
	return oldValue.TarjetaGrafica, nil
}

// ClearTarjetaGrafica clears the value of the "tarjeta_grafica" field.
func (m *ModeloActivoMutation) ClearTarjetaGrafica() {
	m.tarjeta_grafica = nil
	m.clearedFields[modeloactivo.FieldTarjetaGrafica] = struct{}{}
}

// TarjetaGraficaCleared returns if the "tarjeta_grafica" field was cleared in this mutation.
func (m *ModeloActivoMutation) TarjetaGraficaCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldTarjetaGrafica]
	return ok
}

// ResetTarjetaGrafica resets all changes to the "tarjeta_grafica" field.
func (m *ModeloActivoMutation) ResetTarjetaGrafica() {
	m.tarjeta_grafica = nil
	delete(m.clearedFields, modeloactivo.FieldTarjetaGrafica)
}

// SetWifi sets the "wifi" field.
func (m *ModeloActivoMutation) SetWifi(b bool) {
	m.wifi = &b
}

// Wifi returns the value of the "wifi" field in the mutation.
func (m *ModeloActivoMutation) Wifi() (r bool, exists bool) {
	v := m.wifi
	if v == nil {
		return
	}
	return *v, true
}

// OldWifi returns the old "wifi" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldWifi(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWifi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWifi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWifi: %w", err)
	}
	return oldValue.Wifi, nil
}

// ResetWifi resets all changes to the "wifi" field.
func (m *ModeloActivoMutation) ResetWifi() {
	m.wifi = nil
}

// SetEthernet sets the "ethernet" field.
func (m *ModeloActivoMutation) SetEthernet(b bool) {
	m.ethernet = &b
}

// Ethernet returns the value of the "ethernet" field in the mutation.
func (m *ModeloActivoMutation) Ethernet() (r bool, exists bool) {
	v := m.ethernet
	if v == nil {
		return
	}
	return *v, true
}

// OldEthernet returns the old "ethernet" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldEthernet(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEthernet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEthernet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEthernet: %w", err)
	}
	return oldValue.Ethernet, nil
}

// ResetEthernet resets all changes to the "ethernet" field.
func (m *ModeloActivoMutation) ResetEthernet() {
	m.ethernet = nil
}

// SetPuertosEthernet sets the "puertos_ethernet" field.
func (m *ModeloActivoMutation) SetPuertosEthernet(s string) {
	m.puertos_ethernet = &s
}

// PuertosEthernet returns the value of the "puertos_ethernet" field in the mutation.
func (m *ModeloActivoMutation) PuertosEthernet() (r string, exists bool) {
	v := m.puertos_ethernet
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertosEthernet returns the old "puertos_ethernet" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldPuertosEthernet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertosEthernet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertosEthernet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertosEthernet: %w", err)
	}
	return oldValue.PuertosEthernet, nil
}

// ClearPuertosEthernet clears the value of the "puertos_ethernet" field.
func (m *ModeloActivoMutation) ClearPuertosEthernet() {
	m.puertos_ethernet = nil
	m.clearedFields[modeloactivo.FieldPuertosEthernet] = struct{}{}
}

// PuertosEthernetCleared returns if the "puertos_ethernet" field was cleared in this mutation.
func (m *ModeloActivoMutation) PuertosEthernetCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldPuertosEthernet]
	return ok
}

// ResetPuertosEthernet resets all changes to the "puertos_ethernet" field.
func (m *ModeloActivoMutation) ResetPuertosEthernet() {
	m.puertos_ethernet = nil
	delete(m.clearedFields, modeloactivo.FieldPuertosEthernet)
}

// SetPuertosSfp sets the "puertos_sfp" field.
func (m *ModeloActivoMutation) SetPuertosSfp(s string) {
	m.puertos_sfp = &s
}

// PuertosSfp returns the value of the "puertos_sfp" field in the mutation.
func (m *ModeloActivoMutation) PuertosSfp() (r string, exists bool) {
	v := m.puertos_sfp
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertosSfp returns the old "puertos_sfp" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldPuertosSfp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertosSfp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertosSfp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertosSfp: %w", err)
	}
	return oldValue.PuertosSfp, nil
}

// ClearPuertosSfp clears the value of the "puertos_sfp" field.
func (m *ModeloActivoMutation) ClearPuertosSfp() {
	m.puertos_sfp = nil
	m.clearedFields[modeloactivo.FieldPuertosSfp] = struct{}{}
}

// PuertosSfpCleared returns if the "puertos_sfp" field was cleared in this mutation.
func (m *ModeloActivoMutation) PuertosSfpCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldPuertosSfp]
	return ok
}

// ResetPuertosSfp resets all changes to the "puertos_sfp" field.
func (m *ModeloActivoMutation) ResetPuertosSfp() {
	m.puertos_sfp = nil
	delete(m.clearedFields, modeloactivo.FieldPuertosSfp)
}

// SetPuertoConsola sets the "puerto_consola" field.
func (m *ModeloActivoMutation) SetPuertoConsola(b bool) {
	m.puerto_consola = &b
}

// PuertoConsola returns the value of the "puerto_consola" field in the mutation.
func (m *ModeloActivoMutation) PuertoConsola() (r bool, exists bool) {
	v := m.puerto_consola
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertoConsola returns the old "puerto_consola" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldPuertoConsola(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertoConsola is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertoConsola requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertoConsola: %w", err)
	}
	return oldValue.PuertoConsola, nil
}

// ResetPuertoConsola resets all changes to the "puerto_consola" field.
func (m *ModeloActivoMutation) ResetPuertoConsola() {
	m.puerto_consola = nil
}

// SetPuertosPoe sets the "puertos_poe" field.
func (m *ModeloActivoMutation) SetPuertosPoe(s string) {
	m.puertos_poe = &s
}

// PuertosPoe returns the value of the "puertos_poe" field in the mutation.
func (m *ModeloActivoMutation) PuertosPoe() (r string, exists bool) {
	v := m.puertos_poe
	if v == nil {
		return
	}
	return *v, true
}

// OldPuertosPoe returns the old "puertos_poe" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldPuertosPoe(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPuertosPoe is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPuertosPoe requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPuertosPoe: %w", err)
	}
	return oldValue.PuertosPoe, nil
}

// ClearPuertosPoe clears the value of the "puertos_poe" field.
func (m *ModeloActivoMutation) ClearPuertosPoe() {
	m.puertos_poe = nil
	m.clearedFields[modeloactivo.FieldPuertosPoe] = struct{}{}
}

// PuertosPoeCleared returns if the "puertos_poe" field was cleared in this mutation.
func (m *ModeloActivoMutation) PuertosPoeCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldPuertosPoe]
	return ok
}

// ResetPuertosPoe resets all changes to the "puertos_poe" field.
func (m *ModeloActivoMutation) ResetPuertosPoe() {
	m.puertos_poe = nil
	delete(m.clearedFields, modeloactivo.FieldPuertosPoe)
}

// SetAlimentacion sets the "alimentacion" field.
func (m *ModeloActivoMutation) SetAlimentacion(s string) {
	m.alimentacion = &s
}

// Alimentacion returns the value of the "alimentacion" field in the mutation.
func (m *ModeloActivoMutation) Alimentacion() (r string, exists bool) {
	v := m.alimentacion
	if v == nil {
		return
	}
	return *v, true
}

// OldAlimentacion returns the old "alimentacion" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldAlimentacion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlimentacion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlimentacion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlimentacion: %w", err)
	}
	return oldValue.Alimentacion, nil
}

// ClearAlimentacion clears the value of the "alimentacion" field.
func (m *ModeloActivoMutation) ClearAlimentacion() {
	m.alimentacion = nil
	m.clearedFields[modeloactivo.FieldAlimentacion] = struct{}{}
}

// AlimentacionCleared returns if the "alimentacion" field was cleared in this mutation.
func (m *ModeloActivoMutation) AlimentacionCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldAlimentacion]
	return ok
}

// ResetAlimentacion resets all changes to the "alimentacion" field.
func (m *ModeloActivoMutation) ResetAlimentacion() {
	m.alimentacion = nil
	delete(m.clearedFields, modeloactivo.FieldAlimentacion)
}

// SetAdministrable sets the "administrable" field.
func (m *ModeloActivoMutation) SetAdministrable(b bool) {
	m.administrable = &b
}

// Administrable returns the value of the "administrable" field in the mutation.
func (m *ModeloActivoMutation) Administrable() (r bool, exists bool) {
	v := m.administrable
	if v == nil {
		return
	}
	return *v, true
}

// OldAdministrable returns the old "administrable" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldAdministrable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdministrable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdministrable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdministrable: %w", err)
	}
	return oldValue.Administrable, nil
}

// ResetAdministrable resets all changes to the "administrable" field.
func (m *ModeloActivoMutation) ResetAdministrable() {
	m.administrable = nil
}

// SetTamano sets the "tamano" field.
func (m *ModeloActivoMutation) SetTamano(s string) {
	m.tamano = &s
}

// Tamano returns the value of the "tamano" field in the mutation.
func (m *ModeloActivoMutation) Tamano() (r string, exists bool) {
	v := m.tamano
	if v == nil {
		return
	}
	return *v, true
}

// OldTamano returns the old "tamano" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldTamano(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTamano is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTamano requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTamano: %w", err)
	}
	return oldValue.Tamano, nil
}

// ClearTamano clears the value of the "tamano" field.
func (m *ModeloActivoMutation) ClearTamano() {
	m.tamano = nil
	m.clearedFields[modeloactivo.FieldTamano] = struct{}{}
}

// TamanoCleared returns if the "tamano" field was cleared in this mutation.
func (m *ModeloActivoMutation) TamanoCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldTamano]
	return ok
}

// ResetTamano resets all changes to the "tamano" field.
func (m *ModeloActivoMutation) ResetTamano() {
	m.tamano = nil
	delete(m.clearedFields, modeloactivo.FieldTamano)
}

// SetColor sets the "color" field.
func (m *ModeloActivoMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *ModeloActivoMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *ModeloActivoMutation) ClearColor() {
	m.color = nil
	m.clearedFields[modeloactivo.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *ModeloActivoMutation) ColorCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *ModeloActivoMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, modeloactivo.FieldColor)
}

// SetConectores sets the "conectores" field.
func (m *ModeloActivoMutation) SetConectores(s string) {
	m.conectores = &s
}

// Conectores returns the value of the "conectores" field in the mutation.
func (m *ModeloActivoMutation) Conectores() (r string, exists bool) {
	v := m.conectores
	if v == nil {
		return
	}
	return *v, true
}

// OldConectores returns the old "conectores" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldConectores(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConectores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConectores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConectores: %w", err)
	}
	return oldValue.Conectores, nil
}

// ClearConectores clears the value of the "conectores" field.
func (m *ModeloActivoMutation) ClearConectores() {
	m.conectores = nil
	m.clearedFields[modeloactivo.FieldConectores] = struct{}{}
}

// ConectoresCleared returns if the "conectores" field was cleared in this mutation.
func (m *ModeloActivoMutation) ConectoresCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldConectores]
	return ok
}

// ResetConectores resets all changes to the "conectores" field.
func (m *ModeloActivoMutation) ResetConectores() {
	m.conectores = nil
	delete(m.clearedFields, modeloactivo.FieldConectores)
}

// SetCables sets the "cables" field.
func (m *ModeloActivoMutation) SetCables(s string) {
	m.cables = &s
}

// Cables returns the value of the "cables" field in the mutation.
func (m *ModeloActivoMutation) Cables() (r string, exists bool) {
	v := m.cables
	if v == nil {
		return
	}
	return *v, true
}

// OldCables returns the old "cables" field's value of the ModeloActivo entity.
// If the ModeloActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModeloActivoMutation) OldCables(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCables: %w", err)
	}
	return oldValue.Cables, nil
}

// ClearCables clears the value of the "cables" field.
func (m *ModeloActivoMutation) ClearCables() {
	m.cables = nil
	m.clearedFields[modeloactivo.FieldCables] = struct{}{}
}

// CablesCleared returns if the "cables" field was cleared in this mutation.
func (m *ModeloActivoMutation) CablesCleared() bool {
	_, ok := m.clearedFields[modeloactivo.FieldCables]
	return ok
}

// ResetCables resets all changes to the "cables" field.
func (m *ModeloActivoMutation) ResetCables() {
	m.cables = nil
	delete(m.clearedFields, modeloactivo.FieldCables)
}

// Where appends a list predicates to the ModeloActivoMutation builder.
func (m *ModeloActivoMutation) Where(ps ...predicate.ModeloActivo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModeloActivoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModeloActivoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModeloActivo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModeloActivoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModeloActivoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModeloActivo).
func (m *ModeloActivoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModeloActivoMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, modeloactivo.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modeloactivo.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, modeloactivo.FieldName)
	}
	if m.marca_id != nil {
		fields = append(fields, modeloactivo.FieldMarcaID)
	}
	if m.tipo_activo_id != nil {
		fields = append(fields, modeloactivo.FieldTipoActivoID)
	}
	if m.procesador != nil {
		fields = append(fields, modeloactivo.FieldProcesador)
	}
	if m.ram != nil {
		fields = append(fields, modeloactivo.FieldRAM)
	}
	if m.almacenamiento != nil {
		fields = append(fields, modeloactivo.FieldAlmacenamiento)
	}
	if m.tarjeta_grafica != nil {
		fields = append(fields, modeloactivo.FieldTarjetaGrafica)
	}
	if m.wifi != nil {
		fields = append(fields, modeloactivo.FieldWifi)
	}
	if m.ethernet != nil {
		fields = append(fields, modeloactivo.FieldEthernet)
	}
	if m.puertos_ethernet != nil {
		fields = append(fields, modeloactivo.FieldPuertosEthernet)
	}
	if m.puertos_sfp != nil {
		fields = append(fields, modeloactivo.FieldPuertosSfp)
	}
	if m.puerto_consola != nil {
		fields = append(fields, modeloactivo.FieldPuertoConsola)
	}
	if m.puertos_poe != nil {
		fields = append(fields, modeloactivo.FieldPuertosPoe)
	}
	if m.alimentacion != nil {
		fields = append(fields, modeloactivo.FieldAlimentacion)
	}
	if m.administrable != nil {
		fields = append(fields, modeloactivo.FieldAdministrable)
	}
	if m.tamano != nil {
		fields = append(fields, modeloactivo.FieldTamano)
	}
	if m.color != nil {
		fields = append(fields, modeloactivo.FieldColor)
	}
	if m.conectores != nil {
		fields = append(fields, modeloactivo.FieldConectores)
	}
	if m.cables != nil {
		fields = append(fields, modeloactivo.FieldCables)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModeloActivoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modeloactivo.FieldCreatedAt:
		return m.CreatedAt()
	case modeloactivo.FieldUpdatedAt:
		return m.UpdatedAt()
	case modeloactivo.FieldName:
		return m.Name()
	case modeloactivo.FieldMarcaID:
		return m.MarcaID()
	case modeloactivo.FieldTipoActivoID:
		return m.TipoActivoID()
	case modeloactivo.FieldProcesador:
		return m.Procesador()
	case modeloactivo.FieldRAM:
		return m.RAM()
	case modeloactivo.FieldAlmacenamiento:
		return m.Almacenamiento()
	case modeloactivo.FieldTarjetaGrafica:
		return m.TarjetaGrafica()
	case modeloactivo.FieldWifi:
		return m.Wifi()
	case modeloactivo.FieldEthernet:
		return m.Ethernet()
	case modeloactivo.FieldPuertosEthernet:
		return m.PuertosEthernet()
	case modeloactivo.FieldPuertosSfp:
		return m.PuertosSfp()
	case modeloactivo.FieldPuertoConsola:
		return m.PuertoConsola()
	case modeloactivo.FieldPuertosPoe:
		return m.PuertosPoe()
	case modeloactivo.FieldAlimentacion:
		return m.Alimentacion()
	case modeloactivo.FieldAdministrable:
		return m.Administrable()
	case modeloactivo.FieldTamano:
		return m.Tamano()
	case modeloactivo.FieldColor:
		return m.Color()
	case modeloactivo.FieldConectores:
		return m.Conectores()
	case modeloactivo.FieldCables:
		return m.Cables()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModeloActivoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modeloactivo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modeloactivo.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case modeloactivo.FieldName:
		return m.OldName(ctx)
	case modeloactivo.FieldMarcaID:
		return m.OldMarcaID(ctx)
	case modeloactivo.FieldTipoActivoID:
		return m.OldTipoActivoID(ctx)
	case modeloactivo.FieldProcesador:
		return m.OldProcesador(ctx)
	case modeloactivo.FieldRAM:
		return m.OldRAM(ctx)
	case modeloactivo.FieldAlmacenamiento:
		return m.OldAlmacenamiento(ctx)
	case modeloactivo.FieldTarjetaGrafica:
		return m.OldTarjetaGrafica(ctx)
	case modeloactivo.FieldWifi:
		return m.OldWifi(ctx)
	case modeloactivo.FieldEthernet:
		return m.OldEthernet(ctx)
	case modeloactivo.FieldPuertosEthernet:
		return m.OldPuertosEthernet(ctx)
	case modeloactivo.FieldPuertosSfp:
		return m.OldPuertosSfp(ctx)
	case modeloactivo.FieldPuertoConsola:
		return m.OldPuertoConsola(ctx)
	case modeloactivo.FieldPuertosPoe:
		return m.OldPuertosPoe(ctx)
	case modeloactivo.FieldAlimentacion:
		return m.OldAlimentacion(ctx)
	case modeloactivo.FieldAdministrable:
		return m.OldAdministrable(ctx)
	case modeloactivo.FieldTamano:
		return m.OldTamano(ctx)
	case modeloactivo.FieldColor:
		return m.OldColor(ctx)
	case modeloactivo.FieldConectores:
		return m.OldConectores(ctx)
	case modeloactivo.FieldCables:
		return m.OldCables(ctx)
	}
	return nil, fmt.Errorf("unknown ModeloActivo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModeloActivoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modeloactivo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modeloactivo.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case modeloactivo.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case modeloactivo.FieldMarcaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarcaID(v)
		return nil
	case modeloactivo.FieldTipoActivoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoActivoID(v)
		return nil
	case modeloactivo.FieldProcesador:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcesador(v)
		return nil
	case modeloactivo.FieldRAM:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRAM(v)
		return nil
	case modeloactivo.FieldAlmacenamiento:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlmacenamiento(v)
		return nil
	case modeloactivo.FieldTarjetaGrafica:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarjetaGrafica(v)
		return nil
	case modeloactivo.FieldWifi:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWifi(v)
		return nil
	case modeloactivo.FieldEthernet:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEthernet(v)
		return nil
	case modeloactivo.FieldPuertosEthernet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertosEthernet(v)
		return nil
	case modeloactivo.FieldPuertosSfp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertosSfp(v)
		return nil
	case modeloactivo.FieldPuertoConsola:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertoConsola(v)
		return nil
	case modeloactivo.FieldPuertosPoe:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPuertosPoe(v)
		return nil
	case modeloactivo.FieldAlimentacion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlimentacion(v)
		return nil
	case modeloactivo.FieldAdministrable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdministrable(v)
		return nil
	case modeloactivo.FieldTamano:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTamano(v)
		return nil
	case modeloactivo.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case modeloactivo.FieldConectores:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConectores(v)
		return nil
	case modeloactivo.FieldCables:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCables(v)
		return nil
	}
	return fmt.Errorf("unknown ModeloActivo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModeloActivoMutation) AddedFields() []string {
	var fields []string
	if m.addram != nil {
		fields = append(fields, modeloactivo.FieldRAM)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModeloActivoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modeloactivo.FieldRAM:
		return m.AddedRAM()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModeloActivoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modeloactivo.FieldRAM:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRAM(v)
		return nil
	}
	return fmt.Errorf("unknown ModeloActivo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModeloActivoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modeloactivo.FieldTipoActivoID) {
		fields = append(fields, modeloactivo.FieldTipoActivoID)
	}
	if m.FieldCleared(modeloactivo.FieldProcesador) {
		fields = append(fields, modeloactivo.FieldProcesador)
	}
	if m.FieldCleared(modeloactivo.FieldRAM) {
		fields = append(fields, modeloactivo.FieldRAM)
	}
	if m.FieldCleared(modeloactivo.FieldAlmacenamiento) {
		fields = append(fields, modeloactivo.FieldAlmacenamiento)
	}
	if m.FieldCleared(modeloactivo.FieldTarjetaGrafica) {
		fields = append(fields, modeloactivo.FieldTarjetaGrafica)
	}
	if m.FieldCleared(modeloactivo.FieldPuertosEthernet) {
		fields = append(fields, modeloactivo.FieldPuertosEthernet)
	}
	if m.FieldCleared(modeloactivo.FieldPuertosSfp) {
		fields = append(fields, modeloactivo.FieldPuertosSfp)
	}
	if m.FieldCleared(modeloactivo.FieldPuertosPoe) {
		fields = append(fields, modeloactivo.FieldPuertosPoe)
	}
	if m.FieldCleared(modeloactivo.FieldAlimentacion) {
		fields = append(fields, modeloactivo.FieldAlimentacion)
	}
	if m.FieldCleared(modeloactivo.FieldTamano) {
		fields = append(fields, modeloactivo.FieldTamano)
	}
	if m.FieldCleared(modeloactivo.FieldColor) {
		fields = append(fields, modeloactivo.FieldColor)
	}
	if m.FieldCleared(modeloactivo.FieldConectores) {
		fields = append(fields, modeloactivo.FieldConectores)
	}
	if m.FieldCleared(modeloactivo.FieldCables) {
		fields = append(fields, modeloactivo.FieldCables)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModeloActivoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModeloActivoMutation) ClearField(name string) error {
	switch name {
	case modeloactivo.FieldTipoActivoID:
		m.ClearTipoActivoID()
		return nil
	case modeloactivo.FieldProcesador:
		m.ClearProcesador()
		return nil
	case modeloactivo.FieldRAM:
		m.ClearRAM()
		return nil
	case modeloactivo.FieldAlmacenamiento:
		m.ClearAlmacenamiento()
		return nil
	case modeloactivo.FieldTarjetaGrafica:
		m.ClearTarjetaGrafica()
		return nil
	case modeloactivo.FieldPuertosEthernet:
		m.ClearPuertosEthernet()
		return nil
	case modeloactivo.FieldPuertosSfp:
		m.ClearPuertosSfp()
		return nil
	case modeloactivo.FieldPuertosPoe:
		m.ClearPuertosPoe()
		return nil
	case modeloactivo.FieldAlimentacion:
		m.ClearAlimentacion()
		return nil
	case modeloactivo.FieldTamano:
		m.ClearTamano()
		return nil
	case modeloactivo.FieldColor:
		m.ClearColor()
		return nil
	case modeloactivo.FieldConectores:
		m.ClearConectores()
		return nil
	case modeloactivo.FieldCables:
		m.ClearCables()
		return nil
	}
	return fmt.Errorf("unknown ModeloActivo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModeloActivoMutation) ResetField(name string) error {
	switch name {
	case modeloactivo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modeloactivo.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case modeloactivo.FieldName:
		m.ResetName()
		return nil
	case modeloactivo.FieldMarcaID:
		m.ResetMarcaID()
		return nil
	case modeloactivo.FieldTipoActivoID:
		m.ResetTipoActivoID()
		return nil
	case modeloactivo.FieldProcesador:
		m.ResetProcesador()
		return nil
	case modeloactivo.FieldRAM:
		m.ResetRAM()
		return nil
	case modeloactivo.FieldAlmacenamiento:
		m.ResetAlmacenamiento()
		return nil
	case modeloactivo.FieldTarjetaGrafica:
		m.ResetTarjetaGrafica()
		return nil
	case modeloactivo.FieldWifi:
		m.ResetWifi()
		return nil
	case modeloactivo.FieldEthernet:
		m.ResetEthernet()
		return nil
	case modeloactivo.FieldPuertosEthernet:
		m.ResetPuertosEthernet()
		return nil
	case modeloactivo.FieldPuertosSfp:
		m.ResetPuertosSfp()
		return nil
	case modeloactivo.FieldPuertoConsola:
		m.ResetPuertoConsola()
		return nil
	case modeloactivo.FieldPuertosPoe:
		m.ResetPuertosPoe()
		return nil
	case modeloactivo.FieldAlimentacion:
		m.ResetAlimentacion()
		return nil
	case modeloactivo.FieldAdministrable:
		m.ResetAdministrable()
		return nil
	case modeloactivo.FieldTamano:
		m.ResetTamano()
		return nil
	case modeloactivo.FieldColor:
		m.ResetColor()
		return nil
	case modeloactivo.FieldConectores:
		m.ResetConectores()
		return nil
	case modeloactivo.FieldCables:
		m.ResetCables()
		return nil
	}
	return fmt.Errorf("unknown ModeloActivo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModeloActivoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModeloActivoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModeloActivoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModeloActivoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModeloActivoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModeloActivoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModeloActivoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModeloActivo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModeloActivoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModeloActivo edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	kind          *notification.Kind
	activo_id     *string
	due_date      *time.Time
	message       *string
	read          *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetKind sets the "kind" field.
func (m *NotificationMutation) SetKind(n notification.Kind) {
	m.kind = &n
}

// Kind returns the value of the "kind" field in the mutation.
func (m *NotificationMutation) Kind() (r notification.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldKind(ctx context.Context) (v notification.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *NotificationMutation) ResetKind() {
	m.kind = nil
}

// SetActivoID sets the "activo_id" field.
func (m *NotificationMutation) SetActivoID(s string) {
	m.activo_id = &s
}

// ActivoID returns the value of the "activo_id" field in the mutation.
func (m *NotificationMutation) ActivoID() (r string, exists bool) {
	v := m.activo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActivoID returns the old "activo_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldActivoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivoID: %w", err)
	}
	return oldValue.ActivoID, nil
}

// ResetActivoID resets all changes to the "activo_id" field.
func (m *NotificationMutation) ResetActivoID() {
	m.activo_id = nil
}

// SetDueDate sets the "due_date" field.
func (m *NotificationMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *NotificationMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *NotificationMutation) ResetDueDate() {
	m.due_date = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notification.FieldUpdatedAt)
	}
	if m.kind != nil {
		fields = append(fields, notification.FieldKind)
	}
	if m.activo_id != nil {
		fields = append(fields, notification.FieldActivoID)
	}
	if m.due_date != nil {
		fields = append(fields, notification.FieldDueDate)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUpdatedAt:
		return m.UpdatedAt()
	case notification.FieldKind:
		return m.Kind()
	case notification.FieldActivoID:
		return m.ActivoID()
	case notification.FieldDueDate:
		return m.DueDate()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldRead:
		return m.Read()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case notification.FieldKind:
		return m.OldKind(ctx)
	case notification.FieldActivoID:
		return m.OldActivoID(ctx)
	case notification.FieldDueDate:
		return m.OldDueDate(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case notification.FieldKind:
		v, ok := value.(notification.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case notification.FieldActivoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivoID(v)
		return nil
	case notification.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case notification.FieldKind:
		m.ResetKind()
		return nil
	case notification.FieldActivoID:
		m.ResetActivoID()
		return nil
	case notification.FieldDueDate:
		m.ResetDueDate()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// ProveedorMutation represents an operation that mutates the Proveedor nodes in the graph.
type ProveedorMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	nombre_empresa   *string
	nit              *string
	direccion        *string
	nombre_contacto  *string
	telefono_ventas  *string
	correo_ventas    *string
	telefono_soporte *string
	correo_soporte   *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Proveedor, error)
	predicates       []predicate.Proveedor
}

var _ ent.Mutation = (*ProveedorMutation)(nil)

// proveedorOption allows management of the mutation configuration using functional options.
type proveedorOption func(*ProveedorMutation)

// newProveedorMutation creates new mutation for the Proveedor entity.
func newProveedorMutation(c config, op Op, opts ...proveedorOption) *ProveedorMutation {
	m := &ProveedorMutation{
		config:        c,
		op:            op,
		typ:           TypeProveedor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProveedorID sets the ID field of the mutation.
func withProveedorID(id string) proveedorOption {
	return func(m *ProveedorMutation) {
		var (
			err   error
			once  sync.Once
			value *Proveedor
		)
		m.oldValue = func(ctx context.Context) (*Proveedor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proveedor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProveedor sets the old Proveedor of the mutation.
func withProveedor(node *Proveedor) proveedorOption {
	return func(m *ProveedorMutation) {
		m.oldValue = func(context.Context) (*Proveedor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProveedorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProveedorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Proveedor entities.
func (m *ProveedorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProveedorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProveedorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proveedor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ProveedorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProveedorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProveedorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProveedorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProveedorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProveedorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNombreEmpresa sets the "nombre_empresa" field.
func (m *ProveedorMutation) SetNombreEmpresa(s string) {
	m.nombre_empresa = &s
}

// NombreEmpresa returns the value of the "nombre_empresa" field in the mutation.
func (m *ProveedorMutation) NombreEmpresa() (r string, exists bool) {
	v := m.nombre_empresa
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreEmpresa returns the old "nombre_empresa" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldNombreEmpresa(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreEmpresa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreEmpresa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreEmpresa: %w", err)
	}
	return oldValue.NombreEmpresa, nil
}

// ResetNombreEmpresa resets all changes to the "nombre_empresa" field.
func (m *ProveedorMutation) ResetNombreEmpresa() {
	m.nombre_empresa = nil
}

// SetNit sets the "nit" field.
func (m *ProveedorMutation) SetNit(s string) {
	m.nit = &s
}

// Nit returns the value of the "nit" field in the mutation.
func (m *ProveedorMutation) Nit() (r string, exists bool) {
	v := m.nit
	if v == nil {
		return
	}
	return *v, true
}

// OldNit returns the old "nit" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldNit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNit: %w", err)
	}
	return oldValue.Nit, nil
}

// ResetNit resets all changes to the "nit" field.
func (m *ProveedorMutation) ResetNit() {
	m.nit = nil
}

// SetDireccion sets the "direccion" field.
func (m *ProveedorMutation) SetDireccion(s string) {
	m.direccion = &s
}

// Direccion returns the value of the "direccion" field in the mutation.
func (m *ProveedorMutation) Direccion() (r string, exists bool) {
	v := m.direccion
	if v == nil {
		return
	}
	return *v, true
}

// OldDireccion returns the old "direccion" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldDireccion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDireccion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDireccion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDireccion: %w", err)
	}
	return oldValue.Direccion, nil
}

// ClearDireccion clears the value of the "direccion" field.
func (m *ProveedorMutation) ClearDireccion() {
	m.direccion = nil
	m.clearedFields[proveedor.FieldDireccion] = struct{}{}
}

// DireccionCleared returns if the "direccion" field was cleared in this mutation.
func (m *ProveedorMutation) DireccionCleared() bool {
	_, ok := m.clearedFields[proveedor.FieldDireccion]
	return ok
}

// ResetDireccion resets all changes to the "direccion" field.
func (m *ProveedorMutation) ResetDireccion() {
	m.direccion = nil
	delete(m.clearedFields, proveedor.FieldDireccion)
}

// SetNombreContacto sets the "nombre_contacto" field.
func (m *ProveedorMutation) SetNombreContacto(s string) {
	m.nombre_contacto = &s
}

// NombreContacto returns the value of the "nombre_contacto" field in the mutation.
func (m *ProveedorMutation) NombreContacto() (r string, exists bool) {
	v := m.nombre_contacto
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreContacto returns the old "nombre_contacto" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldNombreContacto(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreContacto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreContacto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreContacto: %w", err)
	}
	return oldValue.NombreContacto, nil
}

// ClearNombreContacto clears the value of the "nombre_contacto" field.
func (m *ProveedorMutation) ClearNombreContacto() {
	m.nombre_contacto = nil
	m.clearedFields[proveedor.FieldNombreContacto] = struct{}{}
}

// NombreContactoCleared returns if the "nombre_contacto" field was cleared in this mutation.
func (m *ProveedorMutation) NombreContactoCleared() bool {
	_, ok := m.clearedFields[proveedor.FieldNombreContacto]
	return ok
}

// ResetNombreContacto resets all changes to the "nombre_contacto" field.
func (m *ProveedorMutation) ResetNombreContacto() {
	m.nombre_contacto = nil
	delete(m.clearedFields, proveedor.FieldNombreContacto)
}

// SetTelefonoVentas sets the "telefono_ventas" field.
func (m *ProveedorMutation) SetTelefonoVentas(s string) {
	m.telefono_ventas = &s
}

// TelefonoVentas returns the value of the "telefono_ventas" field in the mutation.
func (m *ProveedorMutation) TelefonoVentas() (r string, exists bool) {
	v := m.telefono_ventas
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefonoVentas returns the old "telefono_ventas" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldTelefonoVentas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefonoVentas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefonoVentas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefonoVentas: %w", err)
	}
	return oldValue.TelefonoVentas, nil
}

// ClearTelefonoVentas clears the value of the "telefono_ventas" field.
func (m *ProveedorMutation) ClearTelefonoVentas() {
	m.telefono_ventas = nil
	m.clearedFields[proveedor.FieldTelefonoVentas] = struct{}{}
}

// TelefonoVentasCleared returns if the "telefono_ventas" field was cleared in this mutation.
func (m *ProveedorMutation) TelefonoVentasCleared() bool {
	_, ok := m.clearedFields[proveedor.FieldTelefonoVentas]
	return ok
}

// ResetTelefonoVentas resets all changes to the "telefono_ventas" field.
func (m *ProveedorMutation) ResetTelefonoVentas() {
	m.telefono_ventas = nil
	delete(m.clearedFields, proveedor.FieldTelefonoVentas)
}

// SetCorreoVentas sets the "correo_ventas" field.
func (m *ProveedorMutation) SetCorreoVentas(s string) {
	m.correo_ventas = &s
}

// CorreoVentas returns the value of the "correo_ventas" field in the mutation.
func (m *ProveedorMutation) CorreoVentas() (r string, exists bool) {
	v := m.correo_ventas
	if v == nil {
		return
	}
	return *v, true
}

// OldCorreoVentas returns the old "correo_ventas" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldCorreoVentas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorreoVentas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorreoVentas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorreoVentas: %w", err)
	}
	return oldValue.CorreoVentas, nil
}

// ClearCorreoVentas clears the value of the "correo_ventas" field.
func (m *ProveedorMutation) ClearCorreoVentas() {
	m.correo_ventas = nil
	m.clearedFields[proveedor.FieldCorreoVentas] = struct{}{}
}

// CorreoVentasCleared returns if the "correo_ventas" field was cleared in this mutation.
func (m *ProveedorMutation) CorreoVentasCleared() bool {
	_, ok := m.clearedFields[proveedor.FieldCorreoVentas]
	return ok
}

// ResetCorreoVentas resets all changes to the "correo_ventas" field.
func (m *ProveedorMutation) ResetCorreoVentas() {
	m.correo_ventas = nil
	delete(m.clearedFields, proveedor.FieldCorreoVentas)
}

// SetTelefonoSoporte sets the "telefono_soporte" field.
func (m *ProveedorMutation) SetTelefonoSoporte(s string) {
	m.telefono_soporte = &s
}

// TelefonoSoporte returns the value of the "telefono_soporte" field in the mutation.
func (m *ProveedorMutation) TelefonoSoporte() (r string, exists bool) {
	v := m.telefono_soporte
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefonoSoporte returns the old "telefono_soporte" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldTelefonoSoporte(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefonoSoporte is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefonoSoporte requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefonoSoporte: %w", err)
	}
	return oldValue.TelefonoSoporte, nil
}

// ClearTelefonoSoporte clears the value of the "telefono_soporte" field.
func (m *ProveedorMutation) ClearTelefonoSoporte() {
	m.telefono_soporte = nil
	m.clearedFields[proveedor.FieldTelefonoSoporte] = struct{}{}
}

// TelefonoSoporteCleared returns if the "telefono_soporte" field was cleared in this mutation.
func (m *ProveedorMutation) TelefonoSoporteCleared() bool {
	_, ok := m.clearedFields[proveedor.FieldTelefonoSoporte]
	return ok
}

// ResetTelefonoSoporte resets all changes to the "telefono_soporte" field.
func (m *ProveedorMutation) ResetTelefonoSoporte() {
	m.telefono_soporte = nil
	delete(m.clearedFields, proveedor.FieldTelefonoSoporte)
}

// SetCorreoSoporte sets the "correo_soporte" field.
func (m *ProveedorMutation) SetCorreoSoporte(s string) {
	m.correo_soporte = &s
}

// CorreoSoporte returns the value of the "correo_soporte" field in the mutation.
func (m *ProveedorMutation) CorreoSoporte() (r string, exists bool) {
	v := m.correo_soporte
	if v == nil {
		return
	}
	return *v, true
}

// OldCorreoSoporte returns the old "correo_soporte" field's value of the Proveedor entity.
// If the Proveedor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProveedorMutation) OldCorreoSoporte(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorreoSoporte is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorreoSoporte requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorreoSoporte: %w", err)
	}
	return oldValue.CorreoSoporte, nil
}

// ClearCorreoSoporte clears the value of the "correo_soporte" field.
func (m *ProveedorMutation) ClearCorreoSoporte() {
	m.correo_soporte = nil
	m.clearedFields[proveedor.FieldCorreoSoporte] = struct{}{}
}

// CorreoSoporteCleared returns if the "correo_soporte" field was cleared in this mutation.
func (m *ProveedorMutation) CorreoSoporteCleared() bool {
	_, ok := m.clearedFields[proveedor.FieldCorreoSoporte]
	return ok
}

// ResetCorreoSoporte resets all changes to the "correo_soporte" field.
func (m *ProveedorMutation) ResetCorreoSoporte() {
	m.correo_soporte = nil
	delete(m.clearedFields, proveedor.FieldCorreoSoporte)
}

// Where appends a list predicates to the ProveedorMutation builder.
func (m *ProveedorMutation) Where(ps ...predicate.Proveedor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProveedorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProveedorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proveedor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProveedorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProveedorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proveedor).
func (m *ProveedorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProveedorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, proveedor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, proveedor.FieldUpdatedAt)
	}
	if m.nombre_empresa != nil {
		fields = append(fields, proveedor.FieldNombreEmpresa)
	}
	if m.nit != nil {
		fields = append(fields, proveedor.FieldNit)
	}
	if m.direccion != nil {
		fields = append(fields, proveedor.FieldDireccion)
	}
	if m.nombre_contacto != nil {
		fields = append(fields, proveedor.FieldNombreContacto)
	}
	if m.telefono_ventas != nil {
		fields = append(fields, proveedor.FieldTelefonoVentas)
	}
	if m.correo_ventas != nil {
		fields = append(fields, proveedor.FieldCorreoVentas)
	}
	if m.telefono_soporte != nil {
		fields = append(fields, proveedor.FieldTelefonoSoporte)
	}
	if m.correo_soporte != nil {
		fields = append(fields, proveedor.FieldCorreoSoporte)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProveedorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proveedor.FieldCreatedAt:
		return m.CreatedAt()
	case proveedor.FieldUpdatedAt:
		return m.UpdatedAt()
	case proveedor.FieldNombreEmpresa:
		return m.NombreEmpresa()
	case proveedor.FieldNit:
		return m.Nit()
	case proveedor.FieldDireccion:
		return m.Direccion()
	case proveedor.FieldNombreContacto:
		return m.NombreContacto()
	case proveedor.FieldTelefonoVentas:
		return m.TelefonoVentas()
	case proveedor.FieldCorreoVentas:
		return m.CorreoVentas()
	case proveedor.FieldTelefonoSoporte:
		return m.TelefonoSoporte()
	case proveedor.FieldCorreoSoporte:
		return m.CorreoSoporte()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProveedorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proveedor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case proveedor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case proveedor.FieldNombreEmpresa:
		return m.OldNombreEmpresa(ctx)
	case proveedor.FieldNit:
		return m.OldNit(ctx)
	case proveedor.FieldDireccion:
		return m.OldDireccion(ctx)
	case proveedor.FieldNombreContacto:
		return m.OldNombreContacto(ctx)
	case proveedor.FieldTelefonoVentas:
		return m.OldTelefonoVentas(ctx)
	case proveedor.FieldCorreoVentas:
		return m.OldCorreoVentas(ctx)
	case proveedor.FieldTelefonoSoporte:
		return m.OldTelefonoSoporte(ctx)
	case proveedor.FieldCorreoSoporte:
		return m.OldCorreoSoporte(ctx)
	}
	return nil, fmt.Errorf("unknown Proveedor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProveedorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proveedor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case proveedor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case proveedor.FieldNombreEmpresa:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreEmpresa(v)
		return nil
	case proveedor.FieldNit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNit(v)
		return nil
	case proveedor.FieldDireccion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDireccion(v)
		return nil
	case proveedor.FieldNombreContacto:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreContacto(v)
		return nil
	case proveedor.FieldTelefonoVentas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefonoVentas(v)
		return nil
	case proveedor.FieldCorreoVentas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorreoVentas(v)
		return nil
	case proveedor.FieldTelefonoSoporte:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefonoSoporte(v)
		return nil
	case proveedor.FieldCorreoSoporte:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorreoSoporte(v)
		return nil
	}
	return fmt.Errorf("unknown Proveedor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProveedorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProveedorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProveedorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Proveedor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProveedorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proveedor.FieldDireccion) {
		fields = append(fields, proveedor.FieldDireccion)
	}
	if m.FieldCleared(proveedor.FieldNombreContacto) {
		fields = append(fields, proveedor.FieldNombreContacto)
	}
	if m.FieldCleared(proveedor.FieldTelefonoVentas) {
		fields = append(fields, proveedor.FieldTelefonoVentas)
	}
	if m.FieldCleared(proveedor.FieldCorreoVentas) {
		fields = append(fields, proveedor.FieldCorreoVentas)
	}
	if m.FieldCleared(proveedor.FieldTelefonoSoporte) {
		fields = append(fields, proveedor.FieldTelefonoSoporte)
	}
	if m.FieldCleared(proveedor.FieldCorreoSoporte) {
		fields = append(fields, proveedor.FieldCorreoSoporte)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProveedorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProveedorMutation) ClearField(name string) error {
	switch name {
	case proveedor.FieldDireccion:
		m.ClearDireccion()
		return nil
	case proveedor.FieldNombreContacto:
		m.ClearNombreContacto()
		return nil
	case proveedor.FieldTelefonoVentas:
		m.ClearTelefonoVentas()
		return nil
	case proveedor.FieldCorreoVentas:
		m.ClearCorreoVentas()
		return nil
	case proveedor.FieldTelefonoSoporte:
		m.ClearTelefonoSoporte()
		return nil
	case proveedor.FieldCorreoSoporte:
		m.ClearCorreoSoporte()
		return nil
	}
	return fmt.Errorf("unknown Proveedor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProveedorMutation) ResetField(name string) error {
	switch name {
	case proveedor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case proveedor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case proveedor.FieldNombreEmpresa:
		m.ResetNombreEmpresa()
		return nil
	case proveedor.FieldNit:
		m.ResetNit()
		return nil
	case proveedor.FieldDireccion:
		m.ResetDireccion()
		return nil
	case proveedor.FieldNombreContacto:
		m.ResetNombreContacto()
		return nil
	case proveedor.FieldTelefonoVentas:
		m.ResetTelefonoVentas()
		return nil
	case proveedor.FieldCorreoVentas:
		m.ResetCorreoVentas()
		return nil
	case proveedor.FieldTelefonoSoporte:
		m.ResetTelefonoSoporte()
		return nil
	case proveedor.FieldCorreoSoporte:
		m.ResetCorreoSoporte()
		return nil
	}
	return fmt.Errorf("unknown Proveedor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProveedorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProveedorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProveedorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProveedorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProveedorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProveedorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProveedorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Proveedor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProveedorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Proveedor edge %s", name)
}

// RegionMutation represents an operation that mutates the Region nodes in the graph.
type RegionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Region, error)
	predicates    []predicate.Region
}

var _ ent.Mutation = (*RegionMutation)(nil)

// regionOption allows management of the mutation configuration using functional options.
type regionOption func(*RegionMutation)

// newRegionMutation creates new mutation for the Region entity.
func newRegionMutation(c config, op Op, opts ...regionOption) *RegionMutation {
	m := &RegionMutation{
		config:        c,
		op:            op,
		typ:           TypeRegion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRegionID sets the ID field of the mutation.
func withRegionID(id string) regionOption {
	return func(m *RegionMutation) {
		var (
			err   error
			once  sync.Once
			value *Region
		)
		m.oldValue = func(ctx context.Context) (*Region, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Region.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRegion sets the old Region of the mutation.
func withRegion(node *Region) regionOption {
	return func(m *RegionMutation) {
		m.oldValue = func(context.Context) (*Region, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RegionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RegionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Region entities.
func (m *RegionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RegionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RegionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Region.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RegionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RegionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Region entity.
// If the Region object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RegionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RegionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RegionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Region entity.
// If the Region object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RegionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *RegionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RegionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Region entity.
// If the Region object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RegionMutation) ResetName() {
	m.name = nil
}

// Where appends a list predicates to the RegionMutation builder.
func (m *RegionMutation) Where(ps ...predicate.Region) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RegionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RegionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Region, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RegionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RegionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Region).
func (m *RegionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RegionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, region.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, region.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, region.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RegionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case region.FieldCreatedAt:
		return m.CreatedAt()
	case region.FieldUpdatedAt:
		return m.UpdatedAt()
	case region.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RegionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case region.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case region.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case region.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Region field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case region.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case region.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case region.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Region field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RegionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RegionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Region numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RegionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RegionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RegionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Region nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RegionMutation) ResetField(name string) error {
	switch name {
	case region.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case region.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case region.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Region field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RegionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RegionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RegionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RegionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RegionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RegionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RegionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Region unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RegionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Region edge %s", name)
}

// TipoActivoMutation represents an operation that mutates the TipoActivo nodes in the graph.
type TipoActivoMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	description   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TipoActivo, error)
	predicates    []predicate.TipoActivo
}

var _ ent.Mutation = (*TipoActivoMutation)(nil)

// tipoactivoOption allows management of the mutation configuration using functional options.
type tipoactivoOption func(*TipoActivoMutation)

// newTipoActivoMutation creates new mutation for the TipoActivo entity.
func newTipoActivoMutation(c config, op Op, opts ...tipoactivoOption) *TipoActivoMutation {
	m := &TipoActivoMutation{
		config:        c,
		op:            op,
		typ:           TypeTipoActivo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipoActivoID sets the ID field of the mutation.
func withTipoActivoID(id string) tipoactivoOption {
	return func(m *TipoActivoMutation) {
		var (
			err   error
			once  sync.Once
			value *TipoActivo
		)
		m.oldValue = func(ctx context.Context) (*TipoActivo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipoActivo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipoActivo sets the old TipoActivo of the mutation.
func withTipoActivo(node *TipoActivo) tipoactivoOption {
	return func(m *TipoActivoMutation) {
		m.oldValue = func(context.Context) (*TipoActivo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipoActivoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipoActivoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipoActivo entities.
func (m *TipoActivoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipoActivoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipoActivoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipoActivo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipoActivoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipoActivoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipoActivo entity.
// If the TipoActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipoActivoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipoActivoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TipoActivoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TipoActivoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TipoActivo entity.
// If the TipoActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipoActivoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TipoActivoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *TipoActivoMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TipoActivoMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TipoActivo entity.
// If the TipoActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipoActivoMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TipoActivoMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TipoActivoMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TipoActivoMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TipoActivo entity.
// If the TipoActivo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipoActivoMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TipoActivoMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tipoactivo.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TipoActivoMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tipoactivo.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TipoActivoMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tipoactivo.FieldDescription)
}

// Where appends a list predicates to the TipoActivoMutation builder.
func (m *TipoActivoMutation) Where(ps ...predicate.TipoActivo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipoActivoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipoActivoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipoActivo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipoActivoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipoActivoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipoActivo).
func (m *TipoActivoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipoActivoMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, tipoactivo.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tipoactivo.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, tipoactivo.FieldName)
	}
	if m.description != nil {
		fields = append(fields, tipoactivo.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipoActivoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipoactivo.FieldCreatedAt:
		return m.CreatedAt()
	case tipoactivo.FieldUpdatedAt:
		return m.UpdatedAt()
	case tipoactivo.FieldName:
		return m.Name()
	case tipoactivo.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipoActivoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipoactivo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tipoactivo.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tipoactivo.FieldName:
		return m.OldName(ctx)
	case tipoactivo.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown TipoActivo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipoActivoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipoactivo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tipoactivo.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tipoactivo.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tipoactivo.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown TipoActivo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipoActivoMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipoActivoMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipoActivoMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TipoActivo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipoActivoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tipoactivo.FieldDescription) {
		fields = append(fields, tipoactivo.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipoActivoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipoActivoMutation) ClearField(name string) error {
	switch name {
	case tipoactivo.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown TipoActivo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipoActivoMutation) ResetField(name string) error {
	switch name {
	case tipoactivo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tipoactivo.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tipoactivo.FieldName:
		m.ResetName()
		return nil
	case tipoactivo.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown TipoActivo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipoActivoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipoActivoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipoActivoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipoActivoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipoActivoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipoActivoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipoActivoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TipoActivo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipoActivoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TipoActivo edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	email         *string
	full_name     *string
	password_hash *string
	employee_id   *string
	active        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *UserMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[user.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *UserMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, user.FieldFullName)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetEmployeeID sets the "employee_id" field.
func (m *UserMutation) SetEmployeeID(s string) {
	m.employee_id = &s
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *UserMutation) EmployeeID() (r string, exists bool) {
	v := m.employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmployeeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (m *UserMutation) ClearEmployeeID() {
	m.employee_id = nil
	m.clearedFields[user.FieldEmployeeID] = struct{}{}
}

// EmployeeIDCleared returns if the "employee_id" field was cleared in this mutation.
func (m *UserMutation) EmployeeIDCleared() bool {
	_, ok := m.clearedFields[user.FieldEmployeeID]
	return ok
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *UserMutation) ResetEmployeeID() {
	m.employee_id = nil
	delete(m.clearedFields, user.FieldEmployeeID)
}

// SetActive sets the "active" field.
func (m *UserMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *UserMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *UserMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.employee_id != nil {
		fields = append(fields, user.FieldEmployeeID)
	}
	if m.active != nil {
		fields = append(fields, user.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldFullName:
		return m.FullName()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldEmployeeID:
		return m.EmployeeID()
	case user.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case user.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldEmployeeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case user.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldFullName) {
		fields = append(fields, user.FieldFullName)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldEmployeeID) {
		fields = append(fields, user.FieldEmployeeID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldFullName:
		m.ClearFullName()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldEmployeeID:
		m.ClearEmployeeID()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case user.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
