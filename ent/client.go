// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"fincatech.io/itam/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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
	"fincatech.io/itam/ent/proveedor"
	"fincatech.io/itam/ent/region"
	"fincatech.io/itam/ent/tipoactivo"
	"fincatech.io/itam/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Activo is the client for interacting with the Activo builders.
	Activo *ActivoClient
	// Area is the client for interacting with the Area builders.
	Area *AreaClient
	// Assignment is the client for interacting with the Assignment builders.
	Assignment *AssignmentClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Departamento is the client for interacting with the Departamento builders.
	Departamento *DepartamentoClient
	// Employee is the client for interacting with the Employee builders.
	Employee *EmployeeClient
	// Finca is the client for interacting with the Finca builders.
	Finca *FincaClient
	// Maintenance is the client for interacting with the Maintenance builders.
	Maintenance *MaintenanceClient
	// Marca is the client for interacting with the Marca builders.
	Marca *MarcaClient
	// ModeloActivo is the client for interacting with the ModeloActivo builders.
	ModeloActivo *ModeloActivoClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Proveedor is the client for interacting with the Proveedor builders.
	Proveedor *ProveedorClient
	// Region is the client for interacting with the Region builders.
	Region *RegionClient
	// TipoActivo is the client for interacting with the TipoActivo builders.
	TipoActivo *TipoActivoClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Activo = NewActivoClient(c.config)
	c.Area = NewAreaClient(c.config)
	c.Assignment = NewAssignmentClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Departamento = NewDepartamentoClient(c.config)
	c.Employee = NewEmployeeClient(c.config)
	c.Finca = NewFincaClient(c.config)
	c.Maintenance = NewMaintenanceClient(c.config)
	c.Marca = NewMarcaClient(c.config)
	c.ModeloActivo = NewModeloActivoClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Proveedor = NewProveedorClient(c.config)
	c.Region = NewRegionClient(c.config)
	c.TipoActivo = NewTipoActivoClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Activo:       NewActivoClient(cfg),
		Area:         NewAreaClient(cfg),
		Assignment:   NewAssignmentClient(cfg),
		AuditLog:     NewAuditLogClient(cfg),
		Departamento: NewDepartamentoClient(cfg),
		Employee:     NewEmployeeClient(cfg),
		Finca:        NewFincaClient(cfg),
		Maintenance:  NewMaintenanceClient(cfg),
		Marca:        NewMarcaClient(cfg),
		ModeloActivo: NewModeloActivoClient(cfg),
		Notification: NewNotificationClient(cfg),
		Proveedor:    NewProveedorClient(cfg),
		Region:       NewRegionClient(cfg),
		TipoActivo:   NewTipoActivoClient(cfg),
		User:         NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Activo:       NewActivoClient(cfg),
		Area:         NewAreaClient(cfg),
		Assignment:   NewAssignmentClient(cfg),
		AuditLog:     NewAuditLogClient(cfg),
		Departamento: NewDepartamentoClient(cfg),
		Employee:     NewEmployeeClient(cfg),
		Finca:        NewFincaClient(cfg),
		Maintenance:  NewMaintenanceClient(cfg),
		Marca:        NewMarcaClient(cfg),
		ModeloActivo: NewModeloActivoClient(cfg),
		Notification: NewNotificationClient(cfg),
		Proveedor:    NewProveedorClient(cfg),
		Region:       NewRegionClient(cfg),
		TipoActivo:   NewTipoActivoClient(cfg),
		User:         NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Activo.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Activo, c.Area, c.Assignment, c.AuditLog, c.Departamento, c.Employee, c.Finca,
		c.Maintenance, c.Marca, c.ModeloActivo, c.Notification, c.Proveedor, c.Region,
		c.TipoActivo, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Activo, c.Area, c.Assignment, c.AuditLog, c.Departamento, c.Employee, c.Finca,
		c.Maintenance, c.Marca, c.ModeloActivo, c.Notification, c.Proveedor, c.Region,
		c.TipoActivo, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivoMutation:
		return c.Activo.mutate(ctx, m)
	case *AreaMutation:
		return c.Area.mutate(ctx, m)
	case *AssignmentMutation:
		return c.Assignment.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *DepartamentoMutation:
		return c.Departamento.mutate(ctx, m)
	case *EmployeeMutation:
		return c.Employee.mutate(ctx, m)
	case *FincaMutation:
		return c.Finca.mutate(ctx, m)
	case *MaintenanceMutation:
		return c.Maintenance.mutate(ctx, m)
	case *MarcaMutation:
		return c.Marca.mutate(ctx, m)
	case *ModeloActivoMutation:
		return c.ModeloActivo.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *ProveedorMutation:
		return c.Proveedor.mutate(ctx, m)
	case *RegionMutation:
		return c.Region.mutate(ctx, m)
	case *TipoActivoMutation:
		return c.TipoActivo.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivoClient is a client for the Activo schema.
type ActivoClient struct {
	config
}

// NewActivoClient returns a client for the Activo from the given config.
func NewActivoClient(c config) *ActivoClient {
	return &ActivoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activo.Hooks(f(g(h())))`.
func (c *ActivoClient) Use(hooks ...Hook) {
	c.hooks.Activo = append(c.hooks.Activo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activo.Intercept(f(g(h())))`.
func (c *ActivoClient) Intercept(interceptors ...Interceptor) {
	c.inters.Activo = append(c.inters.Activo, interceptors...)
}

// Create returns a builder for creating a Activo entity.
func (c *ActivoClient) Create() *ActivoCreate {
	mutation := newActivoMutation(c.config, OpCreate)
	return &ActivoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Activo entities.
func (c *ActivoClient) CreateBulk(builders ...*ActivoCreate) *ActivoCreateBulk {
	return &ActivoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivoClient) MapCreateBulk(slice any, setFunc func(*ActivoCreate, int)) *ActivoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivoCreateBulk{err: fmt.Errorf("calling to ActivoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Activo.
func (c *ActivoClient) Update() *ActivoUpdate {
	mutation := newActivoMutation(c.config, OpUpdate)
	return &ActivoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivoClient) UpdateOne(_m *Activo) *ActivoUpdateOne {
	mutation := newActivoMutation(c.config, OpUpdateOne, withActivo(_m))
	return &ActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivoClient) UpdateOneID(id string) *ActivoUpdateOne {
	mutation := newActivoMutation(c.config, OpUpdateOne, withActivoID(id))
	return &ActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Activo.
func (c *ActivoClient) Delete() *ActivoDelete {
	mutation := newActivoMutation(c.config, OpDelete)
	return &ActivoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivoClient) DeleteOne(_m *Activo) *ActivoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivoClient) DeleteOneID(id string) *ActivoDeleteOne {
	builder := c.Delete().Where(activo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivoDeleteOne{builder}
}

// Query returns a query builder for Activo.
func (c *ActivoClient) Query() *ActivoQuery {
	return &ActivoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivo},
		inters: c.Interceptors(),
	}
}

// Get returns a Activo entity by its id.
func (c *ActivoClient) Get(ctx context.Context, id string) (*Activo, error) {
	return c.Query().Where(activo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivoClient) GetX(ctx context.Context, id string) *Activo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivoClient) Hooks() []Hook {
	return c.hooks.Activo
}

// Interceptors returns the client interceptors.
func (c *ActivoClient) Interceptors() []Interceptor {
	return c.inters.Activo
}

func (c *ActivoClient) mutate(ctx context.Context, m *ActivoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Activo mutation op: %q", m.Op())
	}
}

// AreaClient is a client for the Area schema.
type AreaClient struct {
	config
}

// NewAreaClient returns a client for the Area from the given config.
func NewAreaClient(c config) *AreaClient {
	return &AreaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `area.Hooks(f(g(h())))`.
func (c *AreaClient) Use(hooks ...Hook) {
	c.hooks.Area = append(c.hooks.Area, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `area.Intercept(f(g(h())))`.
func (c *AreaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Area = append(c.inters.Area, interceptors...)
}

// Create returns a builder for creating a Area entity.
func (c *AreaClient) Create() *AreaCreate {
	mutation := newAreaMutation(c.config, OpCreate)
	return &AreaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Area entities.
func (c *AreaClient) CreateBulk(builders ...*AreaCreate) *AreaCreateBulk {
	return &AreaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AreaClient) MapCreateBulk(slice any, setFunc func(*AreaCreate, int)) *AreaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AreaCreateBulk{err: fmt.Errorf("calling to AreaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AreaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AreaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Area.
func (c *AreaClient) Update() *AreaUpdate {
	mutation := newAreaMutation(c.config, OpUpdate)
	return &AreaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AreaClient) UpdateOne(_m *Area) *AreaUpdateOne {
	mutation := newAreaMutation(c.config, OpUpdateOne, withArea(_m))
	return &AreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AreaClient) UpdateOneID(id string) *AreaUpdateOne {
	mutation := newAreaMutation(c.config, OpUpdateOne, withAreaID(id))
	return &AreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Area.
func (c *AreaClient) Delete() *AreaDelete {
	mutation := newAreaMutation(c.config, OpDelete)
	return &AreaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AreaClient) DeleteOne(_m *Area) *AreaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AreaClient) DeleteOneID(id string) *AreaDeleteOne {
	builder := c.Delete().Where(area.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AreaDeleteOne{builder}
}

// Query returns a query builder for Area.
func (c *AreaClient) Query() *AreaQuery {
	return &AreaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArea},
		inters: c.Interceptors(),
	}
}

// Get returns a Area entity by its id.
func (c *AreaClient) Get(ctx context.Context, id string) (*Area, error) {
	return c.Query().Where(area.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AreaClient) GetX(ctx context.Context, id string) *Area {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AreaClient) Hooks() []Hook {
	return c.hooks.Area
}

// Interceptors returns the client interceptors.
func (c *AreaClient) Interceptors() []Interceptor {
	return c.inters.Area
}

func (c *AreaClient) mutate(ctx context.Context, m *AreaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AreaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AreaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AreaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AreaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Area mutation op: %q", m.Op())
	}
}

// AssignmentClient is a client for the Assignment schema.
type AssignmentClient struct {
	config
}

// NewAssignmentClient returns a client for the Assignment from the given config.
func NewAssignmentClient(c config) *AssignmentClient {
	return &AssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assignment.Hooks(f(g(h())))`.
func (c *AssignmentClient) Use(hooks ...Hook) {
	c.hooks.Assignment = append(c.hooks.Assignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assignment.Intercept(f(g(h())))`.
func (c *AssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assignment = append(c.inters.Assignment, interceptors...)
}

// Create returns a builder for creating a Assignment entity.
func (c *AssignmentClient) Create() *AssignmentCreate {
	mutation := newAssignmentMutation(c.config, OpCreate)
	return &AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assignment entities.
func (c *AssignmentClient) CreateBulk(builders ...*AssignmentCreate) *AssignmentCreateBulk {
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignmentClient) MapCreateBulk(slice any, setFunc func(*AssignmentCreate, int)) *AssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignmentCreateBulk{err: fmt.Errorf("calling to AssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assignment.
func (c *AssignmentClient) Update() *AssignmentUpdate {
	mutation := newAssignmentMutation(c.config, OpUpdate)
	return &AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignmentClient) UpdateOne(_m *Assignment) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignment(_m))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignmentClient) UpdateOneID(id string) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignmentID(id))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assignment.
func (c *AssignmentClient) Delete() *AssignmentDelete {
	mutation := newAssignmentMutation(c.config, OpDelete)
	return &AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignmentClient) DeleteOne(_m *Assignment) *AssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignmentClient) DeleteOneID(id string) *AssignmentDeleteOne {
	builder := c.Delete().Where(assignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignmentDeleteOne{builder}
}

// Query returns a query builder for Assignment.
func (c *AssignmentClient) Query() *AssignmentQuery {
	return &AssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a Assignment entity by its id.
func (c *AssignmentClient) Get(ctx context.Context, id string) (*Assignment, error) {
	return c.Query().Where(assignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignmentClient) GetX(ctx context.Context, id string) *Assignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssignmentClient) Hooks() []Hook {
	return c.hooks.Assignment
}

// Interceptors returns the client interceptors.
func (c *AssignmentClient) Interceptors() []Interceptor {
	return c.inters.Assignment
}

func (c *AssignmentClient) mutate(ctx context.Context, m *AssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assignment mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// DepartamentoClient is a client for the Departamento schema.
type DepartamentoClient struct {
	config
}

// NewDepartamentoClient returns a client for the Departamento from the given config.
func NewDepartamentoClient(c config) *DepartamentoClient {
	return &DepartamentoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `departamento.Hooks(f(g(h())))`.
func (c *DepartamentoClient) Use(hooks ...Hook) {
	c.hooks.Departamento = append(c.hooks.Departamento, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `departamento.Intercept(f(g(h())))`.
func (c *DepartamentoClient) Intercept(interceptors ...Interceptor) {
	c.inters.Departamento = append(c.inters.Departamento, interceptors...)
}

// Create returns a builder for creating a Departamento entity.
func (c *DepartamentoClient) Create() *DepartamentoCreate {
	mutation := newDepartamentoMutation(c.config, OpCreate)
	return &DepartamentoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Departamento entities.
func (c *DepartamentoClient) CreateBulk(builders ...*DepartamentoCreate) *DepartamentoCreateBulk {
	return &DepartamentoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DepartamentoClient) MapCreateBulk(slice any, setFunc func(*DepartamentoCreate, int)) *DepartamentoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DepartamentoCreateBulk{err: fmt.Errorf("calling to DepartamentoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DepartamentoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DepartamentoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Departamento.
func (c *DepartamentoClient) Update() *DepartamentoUpdate {
	mutation := newDepartamentoMutation(c.config, OpUpdate)
	return &DepartamentoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DepartamentoClient) UpdateOne(_m *Departamento) *DepartamentoUpdateOne {
	mutation := newDepartamentoMutation(c.config, OpUpdateOne, withDepartamento(_m))
	return &DepartamentoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DepartamentoClient) UpdateOneID(id string) *DepartamentoUpdateOne {
	mutation := newDepartamentoMutation(c.config, OpUpdateOne, withDepartamentoID(id))
	return &DepartamentoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Departamento.
func (c *DepartamentoClient) Delete() *DepartamentoDelete {
	mutation := newDepartamentoMutation(c.config, OpDelete)
	return &DepartamentoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DepartamentoClient) DeleteOne(_m *Departamento) *DepartamentoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DepartamentoClient) DeleteOneID(id string) *DepartamentoDeleteOne {
	builder := c.Delete().Where(departamento.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DepartamentoDeleteOne{builder}
}

// Query returns a query builder for Departamento.
func (c *DepartamentoClient) Query() *DepartamentoQuery {
	return &DepartamentoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDepartamento},
		inters: c.Interceptors(),
	}
}

// Get returns a Departamento entity by its id.
func (c *DepartamentoClient) Get(ctx context.Context, id string) (*Departamento, error) {
	return c.Query().Where(departamento.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DepartamentoClient) GetX(ctx context.Context, id string) *Departamento {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DepartamentoClient) Hooks() []Hook {
	return c.hooks.Departamento
}

// Interceptors returns the client interceptors.
func (c *DepartamentoClient) Interceptors() []Interceptor {
	return c.inters.Departamento
}

func (c *DepartamentoClient) mutate(ctx context.Context, m *DepartamentoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DepartamentoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DepartamentoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DepartamentoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DepartamentoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Departamento mutation op: %q", m.Op())
	}
}

// EmployeeClient is a client for the Employee schema.
type EmployeeClient struct {
	config
}

// NewEmployeeClient returns a client for the Employee from the given config.
func NewEmployeeClient(c config) *EmployeeClient {
	return &EmployeeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `employee.Hooks(f(g(h())))`.
func (c *EmployeeClient) Use(hooks ...Hook) {
	c.hooks.Employee = append(c.hooks.Employee, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `employee.Intercept(f(g(h())))`.
func (c *EmployeeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Employee = append(c.inters.Employee, interceptors...)
}

// Create returns a builder for creating a Employee entity.
func (c *EmployeeClient) Create() *EmployeeCreate {
	mutation := newEmployeeMutation(c.config, OpCreate)
	return &EmployeeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Employee entities.
func (c *EmployeeClient) CreateBulk(builders ...*EmployeeCreate) *EmployeeCreateBulk {
	return &EmployeeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmployeeClient) MapCreateBulk(slice any, setFunc func(*EmployeeCreate, int)) *EmployeeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmployeeCreateBulk{err: fmt.Errorf("calling to EmployeeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmployeeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmployeeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Employee.
func (c *EmployeeClient) Update() *EmployeeUpdate {
	mutation := newEmployeeMutation(c.config, OpUpdate)
	return &EmployeeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmployeeClient) UpdateOne(_m *Employee) *EmployeeUpdateOne {
	mutation := newEmployeeMutation(c.config, OpUpdateOne, withEmployee(_m))
	return &EmployeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmployeeClient) UpdateOneID(id string) *EmployeeUpdateOne {
	mutation := newEmployeeMutation(c.config, OpUpdateOne, withEmployeeID(id))
	return &EmployeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Employee.
func (c *EmployeeClient) Delete() *EmployeeDelete {
	mutation := newEmployeeMutation(c.config, OpDelete)
	return &EmployeeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmployeeClient) DeleteOne(_m *Employee) *EmployeeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmployeeClient) DeleteOneID(id string) *EmployeeDeleteOne {
	builder := c.Delete().Where(employee.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmployeeDeleteOne{builder}
}

// Query returns a query builder for Employee.
func (c *EmployeeClient) Query() *EmployeeQuery {
	return &EmployeeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmployee},
		inters: c.Interceptors(),
	}
}

// Get returns a Employee entity by its id.
func (c *EmployeeClient) Get(ctx context.Context, id string) (*Employee, error) {
	return c.Query().Where(employee.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmployeeClient) GetX(ctx context.Context, id string) *Employee {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EmployeeClient) Hooks() []Hook {
	return c.hooks.Employee
}

// Interceptors returns the client interceptors.
func (c *EmployeeClient) Interceptors() []Interceptor {
	return c.inters.Employee
}

func (c *EmployeeClient) mutate(ctx context.Context, m *EmployeeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmployeeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmployeeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmployeeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmployeeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Employee mutation op: %q", m.Op())
	}
}

// FincaClient is a client for the Finca schema.
type FincaClient struct {
	config
}

// NewFincaClient returns a client for the Finca from the given config.
func NewFincaClient(c config) *FincaClient {
	return &FincaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `finca.Hooks(f(g(h())))`.
func (c *FincaClient) Use(hooks ...Hook) {
	c.hooks.Finca = append(c.hooks.Finca, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `finca.Intercept(f(g(h())))`.
func (c *FincaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Finca = append(c.inters.Finca, interceptors...)
}

// Create returns a builder for creating a Finca entity.
func (c *FincaClient) Create() *FincaCreate {
	mutation := newFincaMutation(c.config, OpCreate)
	return &FincaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Finca entities.
func (c *FincaClient) CreateBulk(builders ...*FincaCreate) *FincaCreateBulk {
	return &FincaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FincaClient) MapCreateBulk(slice any, setFunc func(*FincaCreate, int)) *FincaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FincaCreateBulk{err: fmt.Errorf("calling to FincaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FincaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FincaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Finca.
func (c *FincaClient) Update() *FincaUpdate {
	mutation := newFincaMutation(c.config, OpUpdate)
	return &FincaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FincaClient) UpdateOne(_m *Finca) *FincaUpdateOne {
	mutation := newFincaMutation(c.config, OpUpdateOne, withFinca(_m))
	return &FincaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FincaClient) UpdateOneID(id string) *FincaUpdateOne {
	mutation := newFincaMutation(c.config, OpUpdateOne, withFincaID(id))
	return &FincaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Finca.
func (c *FincaClient) Delete() *FincaDelete {
	mutation := newFincaMutation(c.config, OpDelete)
	return &FincaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FincaClient) DeleteOne(_m *Finca) *FincaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FincaClient) DeleteOneID(id string) *FincaDeleteOne {
	builder := c.Delete().Where(finca.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FincaDeleteOne{builder}
}

// Query returns a query builder for Finca.
func (c *FincaClient) Query() *FincaQuery {
	return &FincaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinca},
		inters: c.Interceptors(),
	}
}

// Get returns a Finca entity by its id.
func (c *FincaClient) Get(ctx context.Context, id string) (*Finca, error) {
	return c.Query().Where(finca.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FincaClient) GetX(ctx context.Context, id string) *Finca {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FincaClient) Hooks() []Hook {
	return c.hooks.Finca
}

// Interceptors returns the client interceptors.
func (c *FincaClient) Interceptors() []Interceptor {
	return c.inters.Finca
}

func (c *FincaClient) mutate(ctx context.Context, m *FincaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FincaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FincaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FincaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FincaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Finca mutation op: %q", m.Op())
	}
}

// MaintenanceClient is a client for the Maintenance schema.
type MaintenanceClient struct {
	config
}

// NewMaintenanceClient returns a client for the Maintenance from the given config.
func NewMaintenanceClient(c config) *MaintenanceClient {
	return &MaintenanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `maintenance.Hooks(f(g(h())))`.
func (c *MaintenanceClient) Use(hooks ...Hook) {
	c.hooks.Maintenance = append(c.hooks.Maintenance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `maintenance.Intercept(f(g(h())))`.
func (c *MaintenanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Maintenance = append(c.inters.Maintenance, interceptors...)
}

// Create returns a builder for creating a Maintenance entity.
func (c *MaintenanceClient) Create() *MaintenanceCreate {
	mutation := newMaintenanceMutation(c.config, OpCreate)
	return &MaintenanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Maintenance entities.
func (c *MaintenanceClient) CreateBulk(builders ...*MaintenanceCreate) *MaintenanceCreateBulk {
	return &MaintenanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MaintenanceClient) MapCreateBulk(slice any, setFunc func(*MaintenanceCreate, int)) *MaintenanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MaintenanceCreateBulk{err: fmt.Errorf("calling to MaintenanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MaintenanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MaintenanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Maintenance.
func (c *MaintenanceClient) Update() *MaintenanceUpdate {
	mutation := newMaintenanceMutation(c.config, OpUpdate)
	return &MaintenanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MaintenanceClient) UpdateOne(_m *Maintenance) *MaintenanceUpdateOne {
	mutation := newMaintenanceMutation(c.config, OpUpdateOne, withMaintenance(_m))
	return &MaintenanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MaintenanceClient) UpdateOneID(id string) *MaintenanceUpdateOne {
	mutation := newMaintenanceMutation(c.config, OpUpdateOne, withMaintenanceID(id))
	return &MaintenanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Maintenance.
func (c *MaintenanceClient) Delete() *MaintenanceDelete {
	mutation := newMaintenanceMutation(c.config, OpDelete)
	return &MaintenanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MaintenanceClient) DeleteOne(_m *Maintenance) *MaintenanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MaintenanceClient) DeleteOneID(id string) *MaintenanceDeleteOne {
	builder := c.Delete().Where(maintenance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MaintenanceDeleteOne{builder}
}

// Query returns a query builder for Maintenance.
func (c *MaintenanceClient) Query() *MaintenanceQuery {
	return &MaintenanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMaintenance},
		inters: c.Interceptors(),
	}
}

// Get returns a Maintenance entity by its id.
func (c *MaintenanceClient) Get(ctx context.Context, id string) (*Maintenance, error) {
	return c.Query().Where(maintenance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MaintenanceClient) GetX(ctx context.Context, id string) *Maintenance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MaintenanceClient) Hooks() []Hook {
	return c.hooks.Maintenance
}

// Interceptors returns the client interceptors.
func (c *MaintenanceClient) Interceptors() []Interceptor {
	return c.inters.Maintenance
}

func (c *MaintenanceClient) mutate(ctx context.Context, m *MaintenanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MaintenanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MaintenanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MaintenanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MaintenanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Maintenance mutation op: %q", m.Op())
	}
}

// MarcaClient is a client for the Marca schema.
type MarcaClient struct {
	config
}

// NewMarcaClient returns a client for the Marca from the given config.
func NewMarcaClient(c config) *MarcaClient {
	return &MarcaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `marca.Hooks(f(g(h())))`.
func (c *MarcaClient) Use(hooks ...Hook) {
	c.hooks.Marca = append(c.hooks.Marca, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `marca.Intercept(f(g(h())))`.
func (c *MarcaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Marca = append(c.inters.Marca, interceptors...)
}

// Create returns a builder for creating a Marca entity.
func (c *MarcaClient) Create() *MarcaCreate {
	mutation := newMarcaMutation(c.config, OpCreate)
	return &MarcaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Marca entities.
func (c *MarcaClient) CreateBulk(builders ...*MarcaCreate) *MarcaCreateBulk {
	return &MarcaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MarcaClient) MapCreateBulk(slice any, setFunc func(*MarcaCreate, int)) *MarcaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MarcaCreateBulk{err: fmt.Errorf("calling to MarcaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MarcaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MarcaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Marca.
func (c *MarcaClient) Update() *MarcaUpdate {
	mutation := newMarcaMutation(c.config, OpUpdate)
	return &MarcaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MarcaClient) UpdateOne(_m *Marca) *MarcaUpdateOne {
	mutation := newMarcaMutation(c.config, OpUpdateOne, withMarca(_m))
	return &MarcaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MarcaClient) UpdateOneID(id string) *MarcaUpdateOne {
	mutation := newMarcaMutation(c.config, OpUpdateOne, withMarcaID(id))
	return &MarcaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Marca.
func (c *MarcaClient) Delete() *MarcaDelete {
	mutation := newMarcaMutation(c.config, OpDelete)
	return &MarcaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MarcaClient) DeleteOne(_m *Marca) *MarcaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MarcaClient) DeleteOneID(id string) *MarcaDeleteOne {
	builder := c.Delete().Where(marca.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MarcaDeleteOne{builder}
}

// Query returns a query builder for Marca.
func (c *MarcaClient) Query() *MarcaQuery {
	return &MarcaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMarca},
		inters: c.Interceptors(),
	}
}

// Get returns a Marca entity by its id.
func (c *MarcaClient) Get(ctx context.Context, id string) (*Marca, error) {
	return c.Query().Where(marca.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MarcaClient) GetX(ctx context.Context, id string) *Marca {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MarcaClient) Hooks() []Hook {
	return c.hooks.Marca
}

// Interceptors returns the client interceptors.
func (c *MarcaClient) Interceptors() []Interceptor {
	return c.inters.Marca
}

func (c *MarcaClient) mutate(ctx context.Context, m *MarcaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MarcaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MarcaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MarcaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MarcaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Marca mutation op: %q", m.Op())
	}
}

// ModeloActivoClient is a client for the ModeloActivo schema.
type ModeloActivoClient struct {
	config
}

// NewModeloActivoClient returns a client for the ModeloActivo from the given config.
func NewModeloActivoClient(c config) *ModeloActivoClient {
	return &ModeloActivoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modeloactivo.Hooks(f(g(h())))`.
func (c *ModeloActivoClient) Use(hooks ...Hook) {
	c.hooks.ModeloActivo = append(c.hooks.ModeloActivo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modeloactivo.Intercept(f(g(h())))`.
func (c *ModeloActivoClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModeloActivo = append(c.inters.ModeloActivo, interceptors...)
}

// Create returns a builder for creating a ModeloActivo entity.
func (c *ModeloActivoClient) Create() *ModeloActivoCreate {
	mutation := newModeloActivoMutation(c.config, OpCreate)
	return &ModeloActivoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModeloActivo entities.
func (c *ModeloActivoClient) CreateBulk(builders ...*ModeloActivoCreate) *ModeloActivoCreateBulk {
	return &ModeloActivoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModeloActivoClient) MapCreateBulk(slice any, setFunc func(*ModeloActivoCreate, int)) *ModeloActivoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModeloActivoCreateBulk{err: fmt.Errorf("calling to ModeloActivoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModeloActivoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModeloActivoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModeloActivo.
func (c *ModeloActivoClient) Update() *ModeloActivoUpdate {
	mutation := newModeloActivoMutation(c.config, OpUpdate)
	return &ModeloActivoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModeloActivoClient) UpdateOne(_m *ModeloActivo) *ModeloActivoUpdateOne {
	mutation := newModeloActivoMutation(c.config, OpUpdateOne, withModeloActivo(_m))
	return &ModeloActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModeloActivoClient) UpdateOneID(id string) *ModeloActivoUpdateOne {
	mutation := newModeloActivoMutation(c.config, OpUpdateOne, withModeloActivoID(id))
	return &ModeloActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModeloActivo.
func (c *ModeloActivoClient) Delete() *ModeloActivoDelete {
	mutation := newModeloActivoMutation(c.config, OpDelete)
	return &ModeloActivoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModeloActivoClient) DeleteOne(_m *ModeloActivo) *ModeloActivoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModeloActivoClient) DeleteOneID(id string) *ModeloActivoDeleteOne {
	builder := c.Delete().Where(modeloactivo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModeloActivoDeleteOne{builder}
}

// Query returns a query builder for ModeloActivo.
func (c *ModeloActivoClient) Query() *ModeloActivoQuery {
	return &ModeloActivoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModeloActivo},
		inters: c.Interceptors(),
	}
}

// Get returns a ModeloActivo entity by its id.
func (c *ModeloActivoClient) Get(ctx context.Context, id string) (*ModeloActivo, error) {
	return c.Query().Where(modeloactivo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModeloActivoClient) GetX(ctx context.Context, id string) *ModeloActivo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModeloActivoClient) Hooks() []Hook {
	return c.hooks.ModeloActivo
}

// Interceptors returns the client interceptors.
func (c *ModeloActivoClient) Interceptors() []Interceptor {
	return c.inters.ModeloActivo
}

func (c *ModeloActivoClient) mutate(ctx context.Context, m *ModeloActivoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModeloActivoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModeloActivoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModeloActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModeloActivoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModeloActivo mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// ProveedorClient is a client for the Proveedor schema.
type ProveedorClient struct {
	config
}

// NewProveedorClient returns a client for the Proveedor from the given config.
func NewProveedorClient(c config) *ProveedorClient {
	return &ProveedorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proveedor.Hooks(f(g(h())))`.
func (c *ProveedorClient) Use(hooks ...Hook) {
	c.hooks.Proveedor = append(c.hooks.Proveedor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proveedor.Intercept(f(g(h())))`.
func (c *ProveedorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Proveedor = append(c.inters.Proveedor, interceptors...)
}

// Create returns a builder for creating a Proveedor entity.
func (c *ProveedorClient) Create() *ProveedorCreate {
	mutation := newProveedorMutation(c.config, OpCreate)
	return &ProveedorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Proveedor entities.
func (c *ProveedorClient) CreateBulk(builders ...*ProveedorCreate) *ProveedorCreateBulk {
	return &ProveedorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProveedorClient) MapCreateBulk(slice any, setFunc func(*ProveedorCreate, int)) *ProveedorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProveedorCreateBulk{err: fmt.Errorf("calling to ProveedorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProveedorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProveedorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Proveedor.
func (c *ProveedorClient) Update() *ProveedorUpdate {
	mutation := newProveedorMutation(c.config, OpUpdate)
	return &ProveedorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProveedorClient) UpdateOne(_m *Proveedor) *ProveedorUpdateOne {
	mutation := newProveedorMutation(c.config, OpUpdateOne, withProveedor(_m))
	return &ProveedorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProveedorClient) UpdateOneID(id string) *ProveedorUpdateOne {
	mutation := newProveedorMutation(c.config, OpUpdateOne, withProveedorID(id))
	return &ProveedorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Proveedor.
func (c *ProveedorClient) Delete() *ProveedorDelete {
	mutation := newProveedorMutation(c.config, OpDelete)
	return &ProveedorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProveedorClient) DeleteOne(_m *Proveedor) *ProveedorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProveedorClient) DeleteOneID(id string) *ProveedorDeleteOne {
	builder := c.Delete().Where(proveedor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProveedorDeleteOne{builder}
}

// Query returns a query builder for Proveedor.
func (c *ProveedorClient) Query() *ProveedorQuery {
	return &ProveedorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProveedor},
		inters: c.Interceptors(),
	}
}

// Get returns a Proveedor entity by its id.
func (c *ProveedorClient) Get(ctx context.Context, id string) (*Proveedor, error) {
	return c.Query().Where(proveedor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProveedorClient) GetX(ctx context.Context, id string) *Proveedor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProveedorClient) Hooks() []Hook {
	return c.hooks.Proveedor
}

// Interceptors returns the client interceptors.
func (c *ProveedorClient) Interceptors() []Interceptor {
	return c.inters.Proveedor
}

func (c *ProveedorClient) mutate(ctx context.Context, m *ProveedorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProveedorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProveedorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProveedorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProveedorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Proveedor mutation op: %q", m.Op())
	}
}

// RegionClient is a client for the Region schema.
type RegionClient struct {
	config
}

// NewRegionClient returns a client for the Region from the given config.
func NewRegionClient(c config) *RegionClient {
	return &RegionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `region.Hooks(f(g(h())))`.
func (c *RegionClient) Use(hooks ...Hook) {
	c.hooks.Region = append(c.hooks.Region, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `region.Intercept(f(g(h())))`.
func (c *RegionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Region = append(c.inters.Region, interceptors...)
}

// Create returns a builder for creating a Region entity.
func (c *RegionClient) Create() *RegionCreate {
	mutation := newRegionMutation(c.config, OpCreate)
	return &RegionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Region entities.
func (c *RegionClient) CreateBulk(builders ...*RegionCreate) *RegionCreateBulk {
	return &RegionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegionClient) MapCreateBulk(slice any, setFunc func(*RegionCreate, int)) *RegionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegionCreateBulk{err: fmt.Errorf("calling to RegionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Region.
func (c *RegionClient) Update() *RegionUpdate {
	mutation := newRegionMutation(c.config, OpUpdate)
	return &RegionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegionClient) UpdateOne(_m *Region) *RegionUpdateOne {
	mutation := newRegionMutation(c.config, OpUpdateOne, withRegion(_m))
	return &RegionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegionClient) UpdateOneID(id string) *RegionUpdateOne {
	mutation := newRegionMutation(c.config, OpUpdateOne, withRegionID(id))
	return &RegionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Region.
func (c *RegionClient) Delete() *RegionDelete {
	mutation := newRegionMutation(c.config, OpDelete)
	return &RegionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegionClient) DeleteOne(_m *Region) *RegionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegionClient) DeleteOneID(id string) *RegionDeleteOne {
	builder := c.Delete().Where(region.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegionDeleteOne{builder}
}

// Query returns a query builder for Region.
func (c *RegionClient) Query() *RegionQuery {
	return &RegionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegion},
		inters: c.Interceptors(),
	}
}

// Get returns a Region entity by its id.
func (c *RegionClient) Get(ctx context.Context, id string) (*Region, error) {
	return c.Query().Where(region.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegionClient) GetX(ctx context.Context, id string) *Region {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RegionClient) Hooks() []Hook {
	return c.hooks.Region
}

// Interceptors returns the client interceptors.
func (c *RegionClient) Interceptors() []Interceptor {
	return c.inters.Region
}

func (c *RegionClient) mutate(ctx context.Context, m *RegionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Region mutation op: %q", m.Op())
	}
}

// TipoActivoClient is a client for the TipoActivo schema.
type TipoActivoClient struct {
	config
}

// NewTipoActivoClient returns a client for the TipoActivo from the given config.
func NewTipoActivoClient(c config) *TipoActivoClient {
	return &TipoActivoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipoactivo.Hooks(f(g(h())))`.
func (c *TipoActivoClient) Use(hooks ...Hook) {
	c.hooks.TipoActivo = append(c.hooks.TipoActivo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipoactivo.Intercept(f(g(h())))`.
func (c *TipoActivoClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipoActivo = append(c.inters.TipoActivo, interceptors...)
}

// Create returns a builder for creating a TipoActivo entity.
func (c *TipoActivoClient) Create() *TipoActivoCreate {
	mutation := newTipoActivoMutation(c.config, OpCreate)
	return &TipoActivoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipoActivo entities.
func (c *TipoActivoClient) CreateBulk(builders ...*TipoActivoCreate) *TipoActivoCreateBulk {
	return &TipoActivoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipoActivoClient) MapCreateBulk(slice any, setFunc func(*TipoActivoCreate, int)) *TipoActivoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipoActivoCreateBulk{err: fmt.Errorf("calling to TipoActivoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipoActivoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipoActivoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipoActivo.
func (c *TipoActivoClient) Update() *TipoActivoUpdate {
	mutation := newTipoActivoMutation(c.config, OpUpdate)
	return &TipoActivoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipoActivoClient) UpdateOne(_m *TipoActivo) *TipoActivoUpdateOne {
	mutation := newTipoActivoMutation(c.config, OpUpdateOne, withTipoActivo(_m))
	return &TipoActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipoActivoClient) UpdateOneID(id string) *TipoActivoUpdateOne {
	mutation := newTipoActivoMutation(c.config, OpUpdateOne, withTipoActivoID(id))
	return &TipoActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipoActivo.
func (c *TipoActivoClient) Delete() *TipoActivoDelete {
	mutation := newTipoActivoMutation(c.config, OpDelete)
	return &TipoActivoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipoActivoClient) DeleteOne(_m *TipoActivo) *TipoActivoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipoActivoClient) DeleteOneID(id string) *TipoActivoDeleteOne {
	builder := c.Delete().Where(tipoactivo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipoActivoDeleteOne{builder}
}

// Query returns a query builder for TipoActivo.
func (c *TipoActivoClient) Query() *TipoActivoQuery {
	return &TipoActivoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipoActivo},
		inters: c.Interceptors(),
	}
}

// Get returns a TipoActivo entity by its id.
func (c *TipoActivoClient) Get(ctx context.Context, id string) (*TipoActivo, error) {
	return c.Query().Where(tipoactivo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipoActivoClient) GetX(ctx context.Context, id string) *TipoActivo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TipoActivoClient) Hooks() []Hook {
	return c.hooks.TipoActivo
}

// Interceptors returns the client interceptors.
func (c *TipoActivoClient) Interceptors() []Interceptor {
	return c.inters.TipoActivo
}

func (c *TipoActivoClient) mutate(ctx context.Context, m *TipoActivoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipoActivoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipoActivoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipoActivoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipoActivoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TipoActivo mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Activo, Area, Assignment, AuditLog, Departamento, Employee, Finca, Maintenance,
		Marca, ModeloActivo, Notification, Proveedor, Region, TipoActivo,
		User []ent.Hook
	}
	inters struct {
		Activo, Area, Assignment, AuditLog, Departamento, Employee, Finca, Maintenance,
		Marca, ModeloActivo, Notification, Proveedor, Region, TipoActivo,
		User []ent.Interceptor
	}
)
