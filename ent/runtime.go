// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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
	"fincatech.io/itam/ent/schema"
	"fincatech.io/itam/ent/tipoactivo"
	"fincatech.io/itam/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activoMixin := schema.Activo{}.Mixin()
	activoMixinFields0 := activoMixin[0].Fields()
	_ = activoMixinFields0
	activoFields := schema.Activo{}.Fields()
	_ = activoFields
	// activoDescCreatedAt is the schema descriptor for created_at field.
	activoDescCreatedAt := activoMixinFields0[0].Descriptor()
	// activo.DefaultCreatedAt holds the default value on creation for the created_at field.
	activo.DefaultCreatedAt = activoDescCreatedAt.Default.(func() time.Time)
	// activoDescUpdatedAt is the schema descriptor for updated_at field.
	activoDescUpdatedAt := activoMixinFields0[1].Descriptor()
	// activo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activo.DefaultUpdatedAt = activoDescUpdatedAt.Default.(func() time.Time)
	// activo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activo.UpdateDefaultUpdatedAt = activoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// activoDescTipoActivoID is the schema descriptor for tipo_activo_id field.
	activoDescTipoActivoID := activoFields[1].Descriptor()
	// activo.TipoActivoIDValidator is a validator for the "tipo_activo_id" field. It is called by the builders before save.
	activo.TipoActivoIDValidator = activoDescTipoActivoID.Validators[0].(func(string) error)
	// activoDescMarcaID is the schema descriptor for marca_id field.
	activoDescMarcaID := activoFields[2].Descriptor()
	// activo.MarcaIDValidator is a validator for the "marca_id" field. It is called by the builders before save.
	activo.MarcaIDValidator = activoDescMarcaID.Validators[0].(func(string) error)
	// activoDescModeloID is the schema descriptor for modelo_id field.
	activoDescModeloID := activoFields[3].Descriptor()
	// activo.ModeloIDValidator is a validator for the "modelo_id" field. It is called by the builders before save.
	activo.ModeloIDValidator = activoDescModeloID.Validators[0].(func(string) error)
	// activoDescProveedorID is the schema descriptor for proveedor_id field.
	activoDescProveedorID := activoFields[4].Descriptor()
	// activo.ProveedorIDValidator is a validator for the "proveedor_id" field. It is called by the builders before save.
	activo.ProveedorIDValidator = activoDescProveedorID.Validators[0].(func(string) error)
	// activoDescRegionID is the schema descriptor for region_id field.
	activoDescRegionID := activoFields[5].Descriptor()
	// activo.RegionIDValidator is a validator for the "region_id" field. It is called by the builders before save.
	activo.RegionIDValidator = activoDescRegionID.Validators[0].(func(string) error)
	// activoDescFincaID is the schema descriptor for finca_id field.
	activoDescFincaID := activoFields[6].Descriptor()
	// activo.FincaIDValidator is a validator for the "finca_id" field. It is called by the builders before save.
	activo.FincaIDValidator = activoDescFincaID.Validators[0].(func(string) error)
	// activoDescDepartamentoID is the schema descriptor for departamento_id field.
	activoDescDepartamentoID := activoFields[7].Descriptor()
	// activo.DepartamentoIDValidator is a validator for the "departamento_id" field. It is called by the builders before save.
	activo.DepartamentoIDValidator = activoDescDepartamentoID.Validators[0].(func(string) error)
	// activoDescAreaID is the schema descriptor for area_id field.
	activoDescAreaID := activoFields[8].Descriptor()
	// activo.AreaIDValidator is a validator for the "area_id" field. It is called by the builders before save.
	activo.AreaIDValidator = activoDescAreaID.Validators[0].(func(string) error)
	// activoDescSerie is the schema descriptor for serie field.
	activoDescSerie := activoFields[9].Descriptor()
	// activo.SerieValidator is a validator for the "serie" field. It is called by the builders before save.
	activo.SerieValidator = activoDescSerie.Validators[0].(func(string) error)
	// activoDescHostname is the schema descriptor for hostname field.
	activoDescHostname := activoFields[10].Descriptor()
	// activo.HostnameValidator is a validator for the "hostname" field. It is called by the builders before save.
	activo.HostnameValidator = activoDescHostname.Validators[0].(func(string) error)
	areaMixin := schema.Area{}.Mixin()
	areaMixinFields0 := areaMixin[0].Fields()
	_ = areaMixinFields0
	areaFields := schema.Area{}.Fields()
	_ = areaFields
	// areaDescCreatedAt is the schema descriptor for created_at field.
	areaDescCreatedAt := areaMixinFields0[0].Descriptor()
	// area.DefaultCreatedAt holds the default value on creation for the created_at field.
	area.DefaultCreatedAt = areaDescCreatedAt.Default.(func() time.Time)
	// areaDescUpdatedAt is the schema descriptor for updated_at field.
	areaDescUpdatedAt := areaMixinFields0[1].Descriptor()
	// area.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	area.DefaultUpdatedAt = areaDescUpdatedAt.Default.(func() time.Time)
	// area.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	area.UpdateDefaultUpdatedAt = areaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// areaDescName is the schema descriptor for name field.
	areaDescName := areaFields[1].Descriptor()
	// area.NameValidator is a validator for the "name" field. It is called by the builders before save.
	area.NameValidator = areaDescName.Validators[0].(func(string) error)
	// areaDescDepartamentoID is the schema descriptor for departamento_id field.
	areaDescDepartamentoID := areaFields[2].Descriptor()
	// area.DepartamentoIDValidator is a validator for the "departamento_id" field. It is called by the builders before save.
	area.DepartamentoIDValidator = areaDescDepartamentoID.Validators[0].(func(string) error)
	assignmentMixin := schema.Assignment{}.Mixin()
	assignmentMixinFields0 := assignmentMixin[0].Fields()
	_ = assignmentMixinFields0
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentMixinFields0[0].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescUpdatedAt is the schema descriptor for updated_at field.
	assignmentDescUpdatedAt := assignmentMixinFields0[1].Descriptor()
	// assignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assignment.DefaultUpdatedAt = assignmentDescUpdatedAt.Default.(func() time.Time)
	// assignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assignment.UpdateDefaultUpdatedAt = assignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assignmentDescActivoID is the schema descriptor for activo_id field.
	assignmentDescActivoID := assignmentFields[1].Descriptor()
	// assignment.ActivoIDValidator is a validator for the "activo_id" field. It is called by the builders before save.
	assignment.ActivoIDValidator = assignmentDescActivoID.Validators[0].(func(string) error)
	// assignmentDescEmployeeID is the schema descriptor for employee_id field.
	assignmentDescEmployeeID := assignmentFields[2].Descriptor()
	// assignment.EmployeeIDValidator is a validator for the "employee_id" field. It is called by the builders before save.
	assignment.EmployeeIDValidator = assignmentDescEmployeeID.Validators[0].(func(string) error)
	// assignmentDescAssignedByID is the schema descriptor for assigned_by_id field.
	assignmentDescAssignedByID := assignmentFields[5].Descriptor()
	// assignment.AssignedByIDValidator is a validator for the "assigned_by_id" field. It is called by the builders before save.
	assignment.AssignedByIDValidator = assignmentDescAssignedByID.Validators[0].(func(string) error)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescActivityType is the schema descriptor for activity_type field.
	auditlogDescActivityType := auditlogFields[1].Descriptor()
	// auditlog.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	auditlog.ActivityTypeValidator = auditlogDescActivityType.Validators[0].(func(string) error)
	// auditlogDescEntityType is the schema descriptor for entity_type field.
	auditlogDescEntityType := auditlogFields[2].Descriptor()
	// auditlog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	auditlog.EntityTypeValidator = auditlogDescEntityType.Validators[0].(func(string) error)
	// auditlogDescEntityID is the schema descriptor for entity_id field.
	auditlogDescEntityID := auditlogFields[3].Descriptor()
	// auditlog.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	auditlog.EntityIDValidator = auditlogDescEntityID.Validators[0].(func(string) error)
	// auditlogDescUserID is the schema descriptor for user_id field.
	auditlogDescUserID := auditlogFields[4].Descriptor()
	// auditlog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	auditlog.UserIDValidator = auditlogDescUserID.Validators[0].(func(string) error)
	departamentoMixin := schema.Departamento{}.Mixin()
	departamentoMixinFields0 := departamentoMixin[0].Fields()
	_ = departamentoMixinFields0
	departamentoFields := schema.Departamento{}.Fields()
	_ = departamentoFields
	// departamentoDescCreatedAt is the schema descriptor for created_at field.
	departamentoDescCreatedAt := departamentoMixinFields0[0].Descriptor()
	// departamento.DefaultCreatedAt holds the default value on creation for the created_at field.
	departamento.DefaultCreatedAt = departamentoDescCreatedAt.Default.(func() time.Time)
	// departamentoDescUpdatedAt is the schema descriptor for updated_at field.
	departamentoDescUpdatedAt := departamentoMixinFields0[1].Descriptor()
	// departamento.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	departamento.DefaultUpdatedAt = departamentoDescUpdatedAt.Default.(func() time.Time)
	// departamento.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	departamento.UpdateDefaultUpdatedAt = departamentoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departamentoDescName is the schema descriptor for name field.
	departamentoDescName := departamentoFields[1].Descriptor()
	// departamento.NameValidator is a validator for the "name" field. It is called by the builders before save.
	departamento.NameValidator = departamentoDescName.Validators[0].(func(string) error)
	employeeMixin := schema.Employee{}.Mixin()
	employeeMixinFields0 := employeeMixin[0].Fields()
	_ = employeeMixinFields0
	employeeFields := schema.Employee{}.Fields()
	_ = employeeFields
	// employeeDescCreatedAt is the schema descriptor for created_at field.
	employeeDescCreatedAt := employeeMixinFields0[0].Descriptor()
	// employee.DefaultCreatedAt holds the default value on creation for the created_at field.
	employee.DefaultCreatedAt = employeeDescCreatedAt.Default.(func() time.Time)
	// employeeDescUpdatedAt is the schema descriptor for updated_at field.
	employeeDescUpdatedAt := employeeMixinFields0[1].Descriptor()
	// employee.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	employee.DefaultUpdatedAt = employeeDescUpdatedAt.Default.(func() time.Time)
	// employee.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	employee.UpdateDefaultUpdatedAt = employeeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// employeeDescEmployeeNumber is the schema descriptor for employee_number field.
	employeeDescEmployeeNumber := employeeFields[1].Descriptor()
	// employee.EmployeeNumberValidator is a validator for the "employee_number" field. It is called by the builders before save.
	employee.EmployeeNumberValidator = employeeDescEmployeeNumber.Validators[0].(func(string) error)
	// employeeDescFirstName is the schema descriptor for first_name field.
	employeeDescFirstName := employeeFields[2].Descriptor()
	// employee.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	employee.FirstNameValidator = employeeDescFirstName.Validators[0].(func(string) error)
	// employeeDescLastName is the schema descriptor for last_name field.
	employeeDescLastName := employeeFields[3].Descriptor()
	// employee.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	employee.LastNameValidator = employeeDescLastName.Validators[0].(func(string) error)
	fincaMixin := schema.Finca{}.Mixin()
	fincaMixinFields0 := fincaMixin[0].Fields()
	_ = fincaMixinFields0
	fincaFields := schema.Finca{}.Fields()
	_ = fincaFields
	// fincaDescCreatedAt is the schema descriptor for created_at field.
	fincaDescCreatedAt := fincaMixinFields0[0].Descriptor()
	// finca.DefaultCreatedAt holds the default value on creation for the created_at field.
	finca.DefaultCreatedAt = fincaDescCreatedAt.Default.(func() time.Time)
	// fincaDescUpdatedAt is the schema descriptor for updated_at field.
	fincaDescUpdatedAt := fincaMixinFields0[1].Descriptor()
	// finca.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	finca.DefaultUpdatedAt = fincaDescUpdatedAt.Default.(func() time.Time)
	// finca.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	finca.UpdateDefaultUpdatedAt = fincaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fincaDescName is the schema descriptor for name field.
	fincaDescName := fincaFields[1].Descriptor()
	// finca.NameValidator is a validator for the "name" field. It is called by the builders before save.
	finca.NameValidator = fincaDescName.Validators[0].(func(string) error)
	// fincaDescRegionID is the schema descriptor for region_id field.
	fincaDescRegionID := fincaFields[2].Descriptor()
	// finca.RegionIDValidator is a validator for the "region_id" field. It is called by the builders before save.
	finca.RegionIDValidator = fincaDescRegionID.Validators[0].(func(string) error)
	maintenanceMixin := schema.Maintenance{}.Mixin()
	maintenanceMixinFields0 := maintenanceMixin[0].Fields()
	_ = maintenanceMixinFields0
	maintenanceFields := schema.Maintenance{}.Fields()
	_ = maintenanceFields
	// maintenanceDescCreatedAt is the schema descriptor for created_at field.
	maintenanceDescCreatedAt := maintenanceMixinFields0[0].Descriptor()
	// maintenance.DefaultCreatedAt holds the default value on creation for the created_at field.
	maintenance.DefaultCreatedAt = maintenanceDescCreatedAt.Default.(func() time.Time)
	// maintenanceDescUpdatedAt is the schema descriptor for updated_at field.
	maintenanceDescUpdatedAt := maintenanceMixinFields0[1].Descriptor()
	// maintenance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	maintenance.DefaultUpdatedAt = maintenanceDescUpdatedAt.Default.(func() time.Time)
	// maintenance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	maintenance.UpdateDefaultUpdatedAt = maintenanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// maintenanceDescActivoID is the schema descriptor for activo_id field.
	maintenanceDescActivoID := maintenanceFields[1].Descriptor()
	// maintenance.ActivoIDValidator is a validator for the "activo_id" field. It is called by the builders before save.
	maintenance.ActivoIDValidator = maintenanceDescActivoID.Validators[0].(func(string) error)
	// maintenanceDescTecnicoID is the schema descriptor for tecnico_id field.
	maintenanceDescTecnicoID := maintenanceFields[4].Descriptor()
	// maintenance.TecnicoIDValidator is a validator for the "tecnico_id" field. It is called by the builders before save.
	maintenance.TecnicoIDValidator = maintenanceDescTecnicoID.Validators[0].(func(string) error)
	marcaMixin := schema.Marca{}.Mixin()
	marcaMixinFields0 := marcaMixin[0].Fields()
	_ = marcaMixinFields0
	marcaFields := schema.Marca{}.Fields()
	_ = marcaFields
	// marcaDescCreatedAt is the schema descriptor for created_at field.
	marcaDescCreatedAt := marcaMixinFields0[0].Descriptor()
	// marca.DefaultCreatedAt holds the default value on creation for the created_at field.
	marca.DefaultCreatedAt = marcaDescCreatedAt.Default.(func() time.Time)
	// marcaDescUpdatedAt is the schema descriptor for updated_at field.
	marcaDescUpdatedAt := marcaMixinFields0[1].Descriptor()
	// marca.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	marca.DefaultUpdatedAt = marcaDescUpdatedAt.Default.(func() time.Time)
	// marca.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	marca.UpdateDefaultUpdatedAt = marcaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// marcaDescName is the schema descriptor for name field.
	marcaDescName := marcaFields[1].Descriptor()
	// marca.NameValidator is a validator for the "name" field. It is called by the builders before save.
	marca.NameValidator = marcaDescName.Validators[0].(func(string) error)
	modeloactivoMixin := schema.ModeloActivo{}.Mixin()
	modeloactivoMixinFields0 := modeloactivoMixin[0].Fields()
	_ = modeloactivoMixinFields0
	modeloactivoFields := schema.ModeloActivo{}.Fields()
	_ = modeloactivoFields
	// modeloactivoDescCreatedAt is the schema descriptor for created_at field.
	modeloactivoDescCreatedAt := modeloactivoMixinFields0[0].Descriptor()
	// modeloactivo.DefaultCreatedAt holds the default value on creation for the created_at field.
	modeloactivo.DefaultCreatedAt = modeloactivoDescCreatedAt.Default.(func() time.Time)
	// modeloactivoDescUpdatedAt is the schema descriptor for updated_at field.
	modeloactivoDescUpdatedAt := modeloactivoMixinFields0[1].Descriptor()
	// modeloactivo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modeloactivo.DefaultUpdatedAt = modeloactivoDescUpdatedAt.Default.(func() time.Time)
	// modeloactivo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modeloactivo.UpdateDefaultUpdatedAt = modeloactivoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// modeloactivoDescName is the schema descriptor for name field.
	modeloactivoDescName := modeloactivoFields[1].Descriptor()
	// modeloactivo.NameValidator is a validator for the "name" field. It is called by the builders before save.
	modeloactivo.NameValidator = modeloactivoDescName.Validators[0].(func(string) error)
	// modeloactivoDescMarcaID is the schema descriptor for marca_id field.
	modeloactivoDescMarcaID := modeloactivoFields[2].Descriptor()
	// modeloactivo.MarcaIDValidator is a validator for the "marca_id" field. It is called by the builders before save.
	modeloactivo.MarcaIDValidator = modeloactivoDescMarcaID.Validators[0].(func(string) error)
	// modeloactivoDescWifi is the schema descriptor for wifi field.
	modeloactivoDescWifi := modeloactivoFields[8].Descriptor()
	// modeloactivo.DefaultWifi holds the default value on creation for the wifi field.
	modeloactivo.DefaultWifi = modeloactivoDescWifi.Default.(bool)
	// modeloactivoDescEthernet is the schema descriptor for ethernet field.
	modeloactivoDescEthernet := modeloactivoFields[9].Descriptor()
	// modeloactivo.DefaultEthernet holds the default value on creation for the ethernet field.
	modeloactivo.DefaultEthernet = modeloactivoDescEthernet.Default.(bool)
	// modeloactivoDescPuertoConsola is the schema descriptor for puerto_consola field.
	modeloactivoDescPuertoConsola := modeloactivoFields[12].Descriptor()
	// modeloactivo.DefaultPuertoConsola holds the default value on creation for the puerto_consola field.
	modeloactivo.DefaultPuertoConsola = modeloactivoDescPuertoConsola.Default.(bool)
	// modeloactivoDescAdministrable is the schema descriptor for administrable field.
	modeloactivoDescAdministrable := modeloactivoFields[15].Descriptor()
	// modeloactivo.DefaultAdministrable holds the default value on creation for the administrable field.
	modeloactivo.DefaultAdministrable = modeloactivoDescAdministrable.Default.(bool)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields0[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescActivoID is the schema descriptor for activo_id field.
	notificationDescActivoID := notificationFields[2].Descriptor()
	// notification.ActivoIDValidator is a validator for the "activo_id" field. It is called by the builders before save.
	notification.ActivoIDValidator = notificationDescActivoID.Validators[0].(func(string) error)
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = notificationDescMessage.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[5].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	proveedorMixin := schema.Proveedor{}.Mixin()
	proveedorMixinFields0 := proveedorMixin[0].Fields()
	_ = proveedorMixinFields0
	proveedorFields := schema.Proveedor{}.Fields()
	_ = proveedorFields
	// proveedorDescCreatedAt is the schema descriptor for created_at field.
	proveedorDescCreatedAt := proveedorMixinFields0[0].Descriptor()
	// proveedor.DefaultCreatedAt holds the default value on creation for the created_at field.
	proveedor.DefaultCreatedAt = proveedorDescCreatedAt.Default.(func() time.Time)
	// proveedorDescUpdatedAt is the schema descriptor for updated_at field.
	proveedorDescUpdatedAt := proveedorMixinFields0[1].Descriptor()
	// proveedor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	proveedor.DefaultUpdatedAt = proveedorDescUpdatedAt.Default.(func() time.Time)
	// proveedor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	proveedor.UpdateDefaultUpdatedAt = proveedorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// proveedorDescNombreEmpresa is the schema descriptor for nombre_empresa field.
	proveedorDescNombreEmpresa := proveedorFields[1].Descriptor()
	// proveedor.NombreEmpresaValidator is a validator for the "nombre_empresa" field. It is called by the builders before save.
	proveedor.NombreEmpresaValidator = proveedorDescNombreEmpresa.Validators[0].(func(string) error)
	// proveedorDescNit is the schema descriptor for nit field.
	proveedorDescNit := proveedorFields[2].Descriptor()
	// proveedor.NitValidator is a validator for the "nit" field. It is called by the builders before save.
	proveedor.NitValidator = proveedorDescNit.Validators[0].(func(string) error)
	regionMixin := schema.Region{}.Mixin()
	regionMixinFields0 := regionMixin[0].Fields()
	_ = regionMixinFields0
	regionFields := schema.Region{}.Fields()
	_ = regionFields
	// regionDescCreatedAt is the schema descriptor for created_at field.
	regionDescCreatedAt := regionMixinFields0[0].Descriptor()
	// region.DefaultCreatedAt holds the default value on creation for the created_at field.
	region.DefaultCreatedAt = regionDescCreatedAt.Default.(func() time.Time)
	// regionDescUpdatedAt is the schema descriptor for updated_at field.
	regionDescUpdatedAt := regionMixinFields0[1].Descriptor()
	// region.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	region.DefaultUpdatedAt = regionDescUpdatedAt.Default.(func() time.Time)
	// region.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	region.UpdateDefaultUpdatedAt = regionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// regionDescName is the schema descriptor for name field.
	regionDescName := regionFields[1].Descriptor()
	// region.NameValidator is a validator for the "name" field. It is called by the builders before save.
	region.NameValidator = regionDescName.Validators[0].(func(string) error)
	tipoactivoMixin := schema.TipoActivo{}.Mixin()
	tipoactivoMixinFields0 := tipoactivoMixin[0].Fields()
	_ = tipoactivoMixinFields0
	tipoactivoFields := schema.TipoActivo{}.Fields()
	_ = tipoactivoFields
	// tipoactivoDescCreatedAt is the schema descriptor for created_at field.
	tipoactivoDescCreatedAt := tipoactivoMixinFields0[0].Descriptor()
	// tipoactivo.DefaultCreatedAt holds the default value on creation for the created_at field.
	tipoactivo.DefaultCreatedAt = tipoactivoDescCreatedAt.Default.(func() time.Time)
	// tipoactivoDescUpdatedAt is the schema descriptor for updated_at field.
	tipoactivoDescUpdatedAt := tipoactivoMixinFields0[1].Descriptor()
	// tipoactivo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tipoactivo.DefaultUpdatedAt = tipoactivoDescUpdatedAt.Default.(func() time.Time)
	// tipoactivo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tipoactivo.UpdateDefaultUpdatedAt = tipoactivoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tipoactivoDescName is the schema descriptor for name field.
	tipoactivoDescName := tipoactivoFields[1].Descriptor()
	// tipoactivo.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tipoactivo.NameValidator = tipoactivoDescName.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[6].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
}
