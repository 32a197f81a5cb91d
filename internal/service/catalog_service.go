package service

import (
	"context"
	"fmt"
	"strings"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/activo"
	"fincatech.io/itam/ent/area"
	"fincatech.io/itam/ent/departamento"
	"fincatech.io/itam/ent/finca"
	"fincatech.io/itam/ent/marca"
	"fincatech.io/itam/ent/modeloactivo"
	"fincatech.io/itam/ent/proveedor"
	"fincatech.io/itam/ent/region"
	"fincatech.io/itam/ent/tipoactivo"
	"fincatech.io/itam/internal/governance/audit"
	apperrors "fincatech.io/itam/internal/pkg/errors"
)

// CatalogService owns the static reference data: asset types, brands,
// models, suppliers, and the region/site/department/area hierarchy.
// Entries referenced by any asset are protected from deletion.
type CatalogService struct {
	client      *ent.Client
	auditLogger *audit.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(client *ent.Client, auditLogger *audit.Logger) *CatalogService {
	return &CatalogService{client: client, auditLogger: auditLogger}
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.BadRequest(apperrors.CodeValidationFailed, "name is required")
	}
	return name, nil
}

// catalogCreate wraps an entity insert with duplicate detection and an
// audit entry.
func (s *CatalogService) catalogCreate(ctx context.Context, entityType, actor string, fn func(tx *ent.Tx) (string, string, error)) error {
	return withTx(ctx, s.client, func(tx *ent.Tx) error {
		id, name, err := fn(tx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.Conflict(apperrors.CodeCatalogExists,
					entityType+" already exists")
			}
			return fmt.Errorf("create %s: %w", entityType, err)
		}
		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: entityType + ".create",
			EntityType:   entityType,
			EntityID:     id,
			UserID:       actor,
			Description:  entityType + " created: " + name,
			NewData:      map[string]interface{}{"name": name},
		})
	})
}

// CreateRegion adds a region.
func (s *CatalogService) CreateRegion(ctx context.Context, name, actor string) (*ent.Region, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	var created *ent.Region
	err = s.catalogCreate(ctx, "region", actor, func(tx *ent.Tx) (string, string, error) {
		r, err := tx.Region.Create().SetID(generateID()).SetName(name).Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = r
		return r.ID, r.Name, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListRegions returns all regions.
func (s *CatalogService) ListRegions(ctx context.Context) ([]*ent.Region, error) {
	regions, err := s.client.Region.Query().Order(ent.Asc(region.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

// DeleteRegion removes a region with no dependents.
func (s *CatalogService) DeleteRegion(ctx context.Context, id, actor string) error {
	return withTx(ctx, s.client, func(tx *ent.Tx) error {
		r, err := tx.Region.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeCatalogNotFound, "region not found")
			}
			return fmt.Errorf("get region %s: %w", id, err)
		}
		inUse, err := tx.Activo.Query().Where(activo.RegionIDEQ(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check region usage: %w", err)
		}
		if !inUse {
			inUse, err = tx.Finca.Query().Where(finca.RegionIDEQ(id)).Exist(ctx)
			if err != nil {
				return fmt.Errorf("check region fincas: %w", err)
			}
		}
		if inUse {
			return apperrors.Conflict(apperrors.CodeCatalogInUse, "region is referenced and cannot be deleted")
		}
		if err := tx.Region.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete region %s: %w", id, err)
		}
		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "region.delete",
			EntityType:   "region",
			EntityID:     id,
			UserID:       actor,
			Description:  "region deleted: " + r.Name,
			OldData:      map[string]interface{}{"name": r.Name},
		})
	})
}

// CreateFinca adds a site under a region.
func (s *CatalogService) CreateFinca(ctx context.Context, name, regionID, actor string) (*ent.Finca, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.client.Region.Get(ctx, regionID); err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCatalogNotFound, "region not found")
		}
		return nil, fmt.Errorf("get region %s: %w", regionID, err)
	}
	var created *ent.Finca
	err = s.catalogCreate(ctx, "finca", actor, func(tx *ent.Tx) (string, string, error) {
		f, err := tx.Finca.Create().SetID(generateID()).SetName(name).SetRegionID(regionID).Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = f
		return f.ID, f.Name, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListFincas returns sites, optionally scoped to one region.
func (s *CatalogService) ListFincas(ctx context.Context, regionID string) ([]*ent.Finca, error) {
	q := s.client.Finca.Query()
	if regionID != "" {
		q = q.Where(finca.RegionIDEQ(regionID))
	}
	fincas, err := q.Order(ent.Asc(finca.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fincas: %w", err)
	}
	return fincas, nil
}

// CreateDepartamento adds a department.
func (s *CatalogService) CreateDepartamento(ctx context.Context, name, actor string) (*ent.Departamento, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	var created *ent.Departamento
	err = s.catalogCreate(ctx, "departamento", actor, func(tx *ent.Tx) (string, string, error) {
		d, err := tx.Departamento.Create().SetID(generateID()).SetName(name).Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = d
		return d.ID, d.Name, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListDepartamentos returns all departments.
func (s *CatalogService) ListDepartamentos(ctx context.Context) ([]*ent.Departamento, error) {
	departamentos, err := s.client.Departamento.Query().Order(ent.Asc(departamento.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	return departamentos, nil
}

// CreateArea adds an area under a department.
func (s *CatalogService) CreateArea(ctx context.Context, name, departamentoID, actor string) (*ent.Area, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.client.Departamento.Get(ctx, departamentoID); err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCatalogNotFound, "departamento not found")
		}
		return nil, fmt.Errorf("get departamento %s: %w", departamentoID, err)
	}
	var created *ent.Area
	err = s.catalogCreate(ctx, "area", actor, func(tx *ent.Tx) (string, string, error) {
		a, err := tx.Area.Create().SetID(generateID()).SetName(name).SetDepartamentoID(departamentoID).Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = a
		return a.ID, a.Name, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListAreas returns areas, optionally scoped to one department.
func (s *CatalogService) ListAreas(ctx context.Context, departamentoID string) ([]*ent.Area, error) {
	q := s.client.Area.Query()
	if departamentoID != "" {
		q = q.Where(area.DepartamentoIDEQ(departamentoID))
	}
	areas, err := q.Order(ent.Asc(area.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return areas, nil
}

// CreateTipoActivo adds an asset type.
func (s *CatalogService) CreateTipoActivo(ctx context.Context, name, description, actor string) (*ent.TipoActivo, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	var created *ent.TipoActivo
	err = s.catalogCreate(ctx, "tipo_activo", actor, func(tx *ent.Tx) (string, string, error) {
		ta, err := tx.TipoActivo.Create().SetID(generateID()).SetName(name).SetDescription(description).Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = ta
		return ta.ID, ta.Name, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListTiposActivo returns all asset types.
func (s *CatalogService) ListTiposActivo(ctx context.Context) ([]*ent.TipoActivo, error) {
	tipos, err := s.client.TipoActivo.Query().Order(ent.Asc(tipoactivo.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tipos de activo: %w", err)
	}
	return tipos, nil
}

// DeleteTipoActivo removes an unused asset type.
func (s *CatalogService) DeleteTipoActivo(ctx context.Context, id, actor string) error {
	return withTx(ctx, s.client, func(tx *ent.Tx) error {
		ta, err := tx.TipoActivo.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeCatalogNotFound, "tipo_activo not found")
			}
			return fmt.Errorf("get tipo_activo %s: %w", id, err)
		}
		inUse, err := tx.Activo.Query().Where(activo.TipoActivoIDEQ(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check tipo_activo usage: %w", err)
		}
		if inUse {
			return apperrors.Conflict(apperrors.CodeCatalogInUse, "tipo_activo is referenced and cannot be deleted")
		}
		if err := tx.TipoActivo.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete tipo_activo %s: %w", id, err)
		}
		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "tipo_activo.delete",
			EntityType:   "tipo_activo",
			EntityID:     id,
			UserID:       actor,
			Description:  "tipo_activo deleted: " + ta.Name,
			OldData:      map[string]interface{}{"name": ta.Name},
		})
	})
}

// CreateMarca adds a brand.
func (s *CatalogService) CreateMarca(ctx context.Context, name, description, actor string) (*ent.Marca, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	var created *ent.Marca
	err = s.catalogCreate(ctx, "marca", actor, func(tx *ent.Tx) (string, string, error) {
		m, err := tx.Marca.Create().SetID(generateID()).SetName(name).SetDescription(description).Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = m
		return m.ID, m.Name, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMarcas returns all brands.
func (s *CatalogService) ListMarcas(ctx context.Context) ([]*ent.Marca, error) {
	marcas, err := s.client.Marca.Query().Order(ent.Asc(marca.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	return marcas, nil
}

// ModeloInput carries a model with its spec defaults, inherited by
// assets that do not override them.
type ModeloInput struct {
	Name         string `json:"name"`
	MarcaID      string `json:"marca_id"`
	TipoActivoID string `json:"tipo_activo_id,omitempty"`

	Procesador      string `json:"procesador,omitempty"`
	RAM             int    `json:"ram,omitempty"`
	Almacenamiento  string `json:"almacenamiento,omitempty"`
	TarjetaGrafica  string `json:"tarjeta_grafica,omitempty"`
	Wifi            bool   `json:"wifi"`
	Ethernet        bool   `json:"ethernet"`
	PuertosEthernet string `json:"puertos_ethernet,omitempty"`
	PuertosSfp      string `json:"puertos_sfp,omitempty"`
	PuertoConsola   bool   `json:"puerto_consola"`
	PuertosPoe      string `json:"puertos_poe,omitempty"`
	Alimentacion    string `json:"alimentacion,omitempty"`
	Administrable   bool   `json:"administrable"`
	Tamano          string `json:"tamano,omitempty"`
	Color           string `json:"color,omitempty"`
	Conectores      string `json:"conectores,omitempty"`
	Cables          string `json:"cables,omitempty"`
}

// CreateModelo adds a model with its default spec sheet.
func (s *CatalogService) CreateModelo(ctx context.Context, input ModeloInput, actor string) (*ent.ModeloActivo, error) {
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}
	if _, err := s.client.Marca.Get(ctx, input.MarcaID); err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCatalogNotFound, "marca not found")
		}
		return nil, fmt.Errorf("get marca %s: %w", input.MarcaID, err)
	}
	var created *ent.ModeloActivo
	err = s.catalogCreate(ctx, "modelo_activo", actor, func(tx *ent.Tx) (string, string, error) {
		m, err := tx.ModeloActivo.Create().
			SetID(generateID()).
			SetName(name).
			SetMarcaID(input.MarcaID).
			SetTipoActivoID(input.TipoActivoID).
			SetProcesador(input.Procesador).
			SetRAM(input.RAM).
			SetAlmacenamiento(input.Almacenamiento).
			SetTarjetaGrafica(input.TarjetaGrafica).
			SetWifi(input.Wifi).
			SetEthernet(input.Ethernet).
			SetPuertosEthernet(input.PuertosEthernet).
			SetPuertosSfp(input.PuertosSfp).
			SetPuertoConsola(input.PuertoConsola).
			SetPuertosPoe(input.PuertosPoe).
			SetAlimentacion(input.Alimentacion).
			SetAdministrable(input.Administrable).
			SetTamano(input.Tamano).
			SetColor(input.Color).
			SetConectores(input.Conectores).
			SetCables(input.Cables).
			Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = m
		return m.ID, m.Name, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListModelos returns models, optionally scoped by brand or type.
func (s *CatalogService) ListModelos(ctx context.Context, marcaID, tipoActivoID string) ([]*ent.ModeloActivo, error) {
	q := s.client.ModeloActivo.Query()
	if marcaID != "" {
		q = q.Where(modeloactivo.MarcaIDEQ(marcaID))
	}
	if tipoActivoID != "" {
		q = q.Where(modeloactivo.TipoActivoIDEQ(tipoActivoID))
	}
	modelos, err := q.Order(ent.Asc(modeloactivo.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modelos: %w", err)
	}
	return modelos, nil
}

// ProveedorInput carries a supplier record.
type ProveedorInput struct {
	NombreEmpresa   string `json:"nombre_empresa"`
	Nit             string `json:"nit"`
	Direccion       string `json:"direccion,omitempty"`
	NombreContacto  string `json:"nombre_contacto,omitempty"`
	TelefonoVentas  string `json:"telefono_ventas,omitempty"`
	CorreoVentas    string `json:"correo_ventas,omitempty"`
	TelefonoSoporte string `json:"telefono_soporte,omitempty"`
	CorreoSoporte   string `json:"correo_soporte,omitempty"`
}

// CreateProveedor adds a supplier.
func (s *CatalogService) CreateProveedor(ctx context.Context, input ProveedorInput, actor string) (*ent.Proveedor, error) {
	name, err := requireName(input.NombreEmpresa)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Nit) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "nit is required")
	}
	var created *ent.Proveedor
	err = s.catalogCreate(ctx, "proveedor", actor, func(tx *ent.Tx) (string, string, error) {
		p, err := tx.Proveedor.Create().
			SetID(generateID()).
			SetNombreEmpresa(name).
			SetNit(input.Nit).
			SetDireccion(input.Direccion).
			SetNombreContacto(input.NombreContacto).
			SetTelefonoVentas(input.TelefonoVentas).
			SetCorreoVentas(input.CorreoVentas).
			SetTelefonoSoporte(input.TelefonoSoporte).
			SetCorreoSoporte(input.CorreoSoporte).
			Save(ctx)
		if err != nil {
			return "", "", err
		}
		created = p
		return p.ID, p.NombreEmpresa, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListProveedores returns all suppliers.
func (s *CatalogService) ListProveedores(ctx context.Context) ([]*ent.Proveedor, error) {
	proveedores, err := s.client.Proveedor.Query().Order(ent.Asc(proveedor.FieldNombreEmpresa)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	return proveedores, nil
}
