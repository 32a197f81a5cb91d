// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivosColumns holds the columns for the "activos" table.
	ActivosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tipo_activo_id", Type: field.TypeString},
		{Name: "marca_id", Type: field.TypeString},
		{Name: "modelo_id", Type: field.TypeString},
		{Name: "proveedor_id", Type: field.TypeString},
		{Name: "region_id", Type: field.TypeString},
		{Name: "finca_id", Type: field.TypeString},
		{Name: "departamento_id", Type: field.TypeString},
		{Name: "area_id", Type: field.TypeString},
		{Name: "serie", Type: field.TypeString, Unique: true},
		{Name: "hostname", Type: field.TypeString, Unique: true},
		{Name: "fecha_registro", Type: field.TypeTime},
		{Name: "fecha_fin_garantia", Type: field.TypeTime, Nullable: true},
		{Name: "solicitante", Type: field.TypeString, Nullable: true},
		{Name: "correo_electronico", Type: field.TypeString, Nullable: true},
		{Name: "orden_compra", Type: field.TypeString, Nullable: true},
		{Name: "cuenta_contable", Type: field.TypeString, Nullable: true},
		{Name: "tipo_costo", Type: field.TypeEnum, Nullable: true, Enums: []string{"costo", "mensualidad"}},
		{Name: "cuotas", Type: field.TypeInt, Nullable: true},
		{Name: "moneda", Type: field.TypeEnum, Nullable: true, Enums: []string{"USD", "GTQ"}},
		{Name: "costo", Type: field.TypeFloat64, Nullable: true},
		{Name: "procesador", Type: field.TypeString, Nullable: true},
		{Name: "ram", Type: field.TypeInt, Nullable: true},
		{Name: "almacenamiento", Type: field.TypeString, Nullable: true},
		{Name: "tarjeta_grafica", Type: field.TypeString, Nullable: true},
		{Name: "wifi", Type: field.TypeBool, Nullable: true},
		{Name: "ethernet", Type: field.TypeBool, Nullable: true},
		{Name: "puertos_ethernet", Type: field.TypeString, Nullable: true},
		{Name: "puertos_sfp", Type: field.TypeString, Nullable: true},
		{Name: "puerto_consola", Type: field.TypeBool, Nullable: true},
		{Name: "puertos_poe", Type: field.TypeString, Nullable: true},
		{Name: "alimentacion", Type: field.TypeString, Nullable: true},
		{Name: "administrable", Type: field.TypeBool, Nullable: true},
		{Name: "tamano", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "conectores", Type: field.TypeString, Nullable: true},
		{Name: "cables", Type: field.TypeString, Nullable: true},
		{Name: "estado", Type: field.TypeEnum, Enums: []string{"activo", "retirado"}, Default: "activo"},
		{Name: "fecha_baja", Type: field.TypeTime, Nullable: true},
		{Name: "motivo_baja", Type: field.TypeString, Nullable: true},
		{Name: "usuario_baja_id", Type: field.TypeString, Nullable: true},
		{Name: "documentos_baja", Type: field.TypeJSON, Nullable: true},
		{Name: "assigned_to_id", Type: field.TypeString, Nullable: true},
		{Name: "ultimo_mantenimiento", Type: field.TypeTime, Nullable: true},
		{Name: "proximo_mantenimiento", Type: field.TypeTime, Nullable: true},
		{Name: "tecnico_mantenimiento_id", Type: field.TypeString, Nullable: true},
		{Name: "ultimo_mantenimiento_hallazgos", Type: field.TypeString, Nullable: true},
	}
	// ActivosTable holds the schema information for the "activos" table.
	ActivosTable = &schema.Table{
		Name:       "activos",
		Columns:    ActivosColumns,
		PrimaryKey: []*schema.Column{ActivosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activo_estado",
				Unique:  false,
				Columns: []*schema.Column{ActivosColumns[39]},
			},
			{
				Name:    "activo_tipo_activo_id",
				Unique:  false,
				Columns: []*schema.Column{ActivosColumns[3]},
			},
			{
				Name:    "activo_region_id",
				Unique:  false,
				Columns: []*schema.Column{ActivosColumns[7]},
			},
			{
				Name:    "activo_modelo_id",
				Unique:  false,
				Columns: []*schema.Column{ActivosColumns[5]},
			},
			{
				Name:    "activo_fecha_fin_garantia",
				Unique:  false,
				Columns: []*schema.Column{ActivosColumns[14]},
			},
			{
				Name:    "activo_proximo_mantenimiento",
				Unique:  false,
				Columns: []*schema.Column{ActivosColumns[46]},
			},
		},
	}
	// AreasColumns holds the columns for the "areas" table.
	AreasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "departamento_id", Type: field.TypeString},
	}
	// AreasTable holds the schema information for the "areas" table.
	AreasTable = &schema.Table{
		Name:       "areas",
		Columns:    AreasColumns,
		PrimaryKey: []*schema.Column{AreasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "area_name_departamento_id",
				Unique:  true,
				Columns: []*schema.Column{AreasColumns[3], AreasColumns[4]},
			},
		},
	}
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "activo_id", Type: field.TypeString},
		{Name: "employee_id", Type: field.TypeString},
		{Name: "assigned_date", Type: field.TypeTime},
		{Name: "returned_date", Type: field.TypeTime, Nullable: true},
		{Name: "assigned_by_id", Type: field.TypeString},
		{Name: "returned_by_id", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_activo_id",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "returned_date IS NULL",
				},
			},
			{
				Name:    "assignment_employee_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[4]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "activity_type", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "old_data", Type: field.TypeJSON, Nullable: true},
		{Name: "new_data", Type: field.TypeJSON, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// DepartamentosColumns holds the columns for the "departamentos" table.
	DepartamentosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// DepartamentosTable holds the schema information for the "departamentos" table.
	DepartamentosTable = &schema.Table{
		Name:       "departamentos",
		Columns:    DepartamentosColumns,
		PrimaryKey: []*schema.Column{DepartamentosColumns[0]},
	}
	// EmployeesColumns holds the columns for the "employees" table.
	EmployeesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "employee_number", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "region_id", Type: field.TypeString, Nullable: true},
		{Name: "finca_id", Type: field.TypeString, Nullable: true},
		{Name: "departamento_id", Type: field.TypeString, Nullable: true},
		{Name: "area_id", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "supervisor_id", Type: field.TypeString, Nullable: true},
		{Name: "document_path", Type: field.TypeString, Nullable: true},
	}
	// EmployeesTable holds the schema information for the "employees" table.
	EmployeesTable = &schema.Table{
		Name:       "employees",
		Columns:    EmployeesColumns,
		PrimaryKey: []*schema.Column{EmployeesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "employee_departamento_id",
				Unique:  false,
				Columns: []*schema.Column{EmployeesColumns[8]},
			},
			{
				Name:    "employee_region_id",
				Unique:  false,
				Columns: []*schema.Column{EmployeesColumns[6]},
			},
		},
	}
	// FincasColumns holds the columns for the "fincas" table.
	FincasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "region_id", Type: field.TypeString},
	}
	// FincasTable holds the schema information for the "fincas" table.
	FincasTable = &schema.Table{
		Name:       "fincas",
		Columns:    FincasColumns,
		PrimaryKey: []*schema.Column{FincasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "finca_name_region_id",
				Unique:  true,
				Columns: []*schema.Column{FincasColumns[3], FincasColumns[4]},
			},
		},
	}
	// MaintenancesColumns holds the columns for the "maintenances" table.
	MaintenancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "activo_id", Type: field.TypeString},
		{Name: "fecha_mantenimiento", Type: field.TypeTime},
		{Name: "proximo_mantenimiento", Type: field.TypeTime},
		{Name: "tecnico_id", Type: field.TypeString},
		{Name: "hallazgos", Type: field.TypeString, Nullable: true},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
	}
	// MaintenancesTable holds the schema information for the "maintenances" table.
	MaintenancesTable = &schema.Table{
		Name:       "maintenances",
		Columns:    MaintenancesColumns,
		PrimaryKey: []*schema.Column{MaintenancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "maintenance_activo_id",
				Unique:  false,
				Columns: []*schema.Column{MaintenancesColumns[3]},
			},
			{
				Name:    "maintenance_fecha_mantenimiento",
				Unique:  false,
				Columns: []*schema.Column{MaintenancesColumns[4]},
			},
		},
	}
	// MarcasColumns holds the columns for the "marcas" table.
	MarcasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// MarcasTable holds the schema information for the "marcas" table.
	MarcasTable = &schema.Table{
		Name:       "marcas",
		Columns:    MarcasColumns,
		PrimaryKey: []*schema.Column{MarcasColumns[0]},
	}
	// ModeloActivosColumns holds the columns for the "modelo_activos" table.
	ModeloActivosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "marca_id", Type: field.TypeString},
		{Name: "tipo_activo_id", Type: field.TypeString, Nullable: true},
		{Name: "procesador", Type: field.TypeString, Nullable: true},
		{Name: "ram", Type: field.TypeInt, Nullable: true},
		{Name: "almacenamiento", Type: field.TypeString, Nullable: true},
		{Name: "tarjeta_grafica", Type: field.TypeString, Nullable: true},
		{Name: "wifi", Type: field.TypeBool, Default: false},
		{Name: "ethernet", Type: field.TypeBool, Default: false},
		{Name: "puertos_ethernet", Type: field.TypeString, Nullable: true},
		{Name: "puertos_sfp", Type: field.TypeString, Nullable: true},
		{Name: "puerto_consola", Type: field.TypeBool, Default: false},
		{Name: "puertos_poe", Type: field.TypeString, Nullable: true},
		{Name: "alimentacion", Type: field.TypeString, Nullable: true},
		{Name: "administrable", Type: field.TypeBool, Default: false},
		{Name: "tamano", Type: field.TypeString, Nullable: true},
		{Name: "color", Type: field.TypeString, Nullable: true},
		{Name: "conectores", Type: field.TypeString, Nullable: true},
		{Name: "cables", Type: field.TypeString, Nullable: true},
	}
	// ModeloActivosTable holds the schema information for the "modelo_activos" table.
	ModeloActivosTable = &schema.Table{
		Name:       "modelo_activos",
		Columns:    ModeloActivosColumns,
		PrimaryKey: []*schema.Column{ModeloActivosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modeloactivo_marca_id",
				Unique:  false,
				Columns: []*schema.Column{ModeloActivosColumns[4]},
			},
			{
				Name:    "modeloactivo_tipo_activo_id",
				Unique:  false,
				Columns: []*schema.Column{ModeloActivosColumns[5]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"warranty_expiry", "maintenance_due"}},
		{Name: "activo_id", Type: field.TypeString},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "message", Type: field.TypeString},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_kind_activo_id_due_date",
				Unique:  true,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[4], NotificationsColumns[5]},
			},
			{
				Name:    "notification_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7]},
			},
		},
	}
	// ProveedorsColumns holds the columns for the "proveedors" table.
	ProveedorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "nombre_empresa", Type: field.TypeString, Unique: true},
		{Name: "nit", Type: field.TypeString, Unique: true},
		{Name: "direccion", Type: field.TypeString, Nullable: true},
		{Name: "nombre_contacto", Type: field.TypeString, Nullable: true},
		{Name: "telefono_ventas", Type: field.TypeString, Nullable: true},
		{Name: "correo_ventas", Type: field.TypeString, Nullable: true},
		{Name: "telefono_soporte", Type: field.TypeString, Nullable: true},
		{Name: "correo_soporte", Type: field.TypeString, Nullable: true},
	}
	// ProveedorsTable holds the schema information for the "proveedors" table.
	ProveedorsTable = &schema.Table{
		Name:       "proveedors",
		Columns:    ProveedorsColumns,
		PrimaryKey: []*schema.Column{ProveedorsColumns[0]},
	}
	// RegionsColumns holds the columns for the "regions" table.
	RegionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// RegionsTable holds the schema information for the "regions" table.
	RegionsTable = &schema.Table{
		Name:       "regions",
		Columns:    RegionsColumns,
		PrimaryKey: []*schema.Column{RegionsColumns[0]},
	}
	// TipoActivosColumns holds the columns for the "tipo_activos" table.
	TipoActivosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// TipoActivosTable holds the schema information for the "tipo_activos" table.
	TipoActivosTable = &schema.Table{
		Name:       "tipo_activos",
		Columns:    TipoActivosColumns,
		PrimaryKey: []*schema.Column{TipoActivosColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "employee_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_employee_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivosTable,
		AreasTable,
		AssignmentsTable,
		AuditLogsTable,
		DepartamentosTable,
		EmployeesTable,
		FincasTable,
		MaintenancesTable,
		MarcasTable,
		ModeloActivosTable,
		NotificationsTable,
		ProveedorsTable,
		RegionsTable,
		TipoActivosTable,
		UsersTable,
	}
)

func init() {
}
