// Package service provides business logic services for the ITAM core.
//
// Each public operation runs inside a single transaction; invariant
// checks happen in the same transaction as the writes they guard, with
// storage-level constraints (unique and partial unique indexes) as
// defense in depth against concurrent writers.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/activo"
	"fincatech.io/itam/ent/assignment"
	"fincatech.io/itam/ent/maintenance"
	"fincatech.io/itam/internal/docstore"
	"fincatech.io/itam/internal/governance/audit"
	apperrors "fincatech.io/itam/internal/pkg/errors"
	"fincatech.io/itam/internal/pkg/logger"
	"fincatech.io/itam/internal/pkg/worker"
)

// AssetCacheWriter is the narrow capability through which the
// maintenance recorder and assignment coordinator update the
// denormalized cache fields on an asset. No other code path may write
// those fields.
type AssetCacheWriter interface {
	// SetMaintenanceCache unconditionally overwrites the four
	// maintenance cache fields inside the caller's transaction.
	SetMaintenanceCache(ctx context.Context, tx *ent.Tx, activoID string, date, next time.Time, tecnicoID, hallazgos string) error
	// SetHolder overwrites the holder pointer. A nil userID clears it.
	SetHolder(ctx context.Context, tx *ent.Tx, activoID string, userID *string) error
}

// AssetService owns asset records and their lifecycle transitions.
type AssetService struct {
	client      *ent.Client
	docs        *docstore.Store
	auditLogger *audit.Logger
	pools       *worker.Pools
}

// NewAssetService creates a new AssetService.
func NewAssetService(client *ent.Client, docs *docstore.Store, auditLogger *audit.Logger, pools *worker.Pools) *AssetService {
	return &AssetService{
		client:      client,
		docs:        docs,
		auditLogger: auditLogger,
		pools:       pools,
	}
}

// CreateAssetInput carries the registration form for a new asset.
type CreateAssetInput struct {
	TipoActivoID   string `json:"tipo_activo_id"`
	MarcaID        string `json:"marca_id"`
	ModeloID       string `json:"modelo_id"`
	ProveedorID    string `json:"proveedor_id"`
	RegionID       string `json:"region_id"`
	FincaID        string `json:"finca_id"`
	DepartamentoID string `json:"departamento_id"`
	AreaID         string `json:"area_id"`

	Serie            string     `json:"serie"`
	Hostname         string     `json:"hostname"`
	FechaRegistro    time.Time  `json:"fecha_registro"`
	FechaFinGarantia *time.Time `json:"fecha_fin_garantia,omitempty"`

	Solicitante       string   `json:"solicitante,omitempty"`
	CorreoElectronico string   `json:"correo_electronico,omitempty"`
	OrdenCompra       string   `json:"orden_compra,omitempty"`
	CuentaContable    string   `json:"cuenta_contable,omitempty"`
	TipoCosto         string   `json:"tipo_costo,omitempty"`
	Cuotas            *int     `json:"cuotas,omitempty"`
	Moneda            string   `json:"moneda,omitempty"`
	Costo             *float64 `json:"costo,omitempty"`

	Overrides SpecOverrides `json:"overrides"`
}

// SpecOverrides are per-asset technical overrides; nil means inherit
// from the model default.
type SpecOverrides struct {
	Procesador      *string `json:"procesador,omitempty"`
	RAM             *int    `json:"ram,omitempty"`
	Almacenamiento  *string `json:"almacenamiento,omitempty"`
	TarjetaGrafica  *string `json:"tarjeta_grafica,omitempty"`
	Wifi            *bool   `json:"wifi,omitempty"`
	Ethernet        *bool   `json:"ethernet,omitempty"`
	PuertosEthernet *string `json:"puertos_ethernet,omitempty"`
	PuertosSfp      *string `json:"puertos_sfp,omitempty"`
	PuertoConsola   *bool   `json:"puerto_consola,omitempty"`
	PuertosPoe      *string `json:"puertos_poe,omitempty"`
	Alimentacion    *string `json:"alimentacion,omitempty"`
	Administrable   *bool   `json:"administrable,omitempty"`
	Tamano          *string `json:"tamano,omitempty"`
	Color           *string `json:"color,omitempty"`
	Conectores      *string `json:"conectores,omitempty"`
	Cables          *string `json:"cables,omitempty"`
}

// Create registers a new asset.
func (s *AssetService) Create(ctx context.Context, input CreateAssetInput, actor string) (*ent.Activo, error) {
	if strings.TrimSpace(input.Serie) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "serie is required")
	}
	if strings.TrimSpace(input.Hostname) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "hostname is required")
	}
	if input.FechaRegistro.IsZero() {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "fecha_registro is required")
	}
	if err := s.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	var created *ent.Activo
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		create := tx.Activo.Create().
			SetID(generateID()).
			SetTipoActivoID(input.TipoActivoID).
			SetMarcaID(input.MarcaID).
			SetModeloID(input.ModeloID).
			SetProveedorID(input.ProveedorID).
			SetRegionID(input.RegionID).
			SetFincaID(input.FincaID).
			SetDepartamentoID(input.DepartamentoID).
			SetAreaID(input.AreaID).
			SetSerie(strings.TrimSpace(input.Serie)).
			SetHostname(strings.TrimSpace(input.Hostname)).
			SetFechaRegistro(input.FechaRegistro).
			SetNillableFechaFinGarantia(input.FechaFinGarantia).
			SetSolicitante(input.Solicitante).
			SetCorreoElectronico(input.CorreoElectronico).
			SetOrdenCompra(input.OrdenCompra).
			SetCuentaContable(input.CuentaContable).
			SetNillableCuotas(input.Cuotas).
			SetNillableCosto(input.Costo)
		if input.TipoCosto != "" {
			create.SetTipoCosto(activo.TipoCosto(input.TipoCosto))
		}
		if input.Moneda != "" {
			create.SetMoneda(activo.Moneda(input.Moneda))
		}
		applyOverrides(create.Mutation(), input.Overrides)

		a, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.Conflict(apperrors.CodeAssetExists,
					"an asset with this serie or hostname already exists")
			}
			return fmt.Errorf("create asset: %w", err)
		}
		created = a

		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "asset.create",
			EntityType:   "activo",
			EntityID:     a.ID,
			UserID:       actor,
			Description:  "asset registered: " + a.Hostname,
			NewData:      audit.AssetSnapshot(ctx, s.client, a),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Asset registered",
		zap.String("activo_id", created.ID),
		zap.String("serie", created.Serie),
		zap.String("hostname", created.Hostname),
	)
	return created, nil
}

// applyOverrides writes per-asset spec overrides onto a create/update
// mutation, leaving unset pointers untouched so the model fallback
// stays in effect.
func applyOverrides(m *ent.ActivoMutation, o SpecOverrides) {
	if o.Procesador != nil {
		m.SetProcesador(*o.Procesador)
	}
	if o.RAM != nil {
		m.SetRAM(*o.RAM)
	}
	if o.Almacenamiento != nil {
		m.SetAlmacenamiento(*o.Almacenamiento)
	}
	if o.TarjetaGrafica != nil {
		m.SetTarjetaGrafica(*o.TarjetaGrafica)
	}
	if o.Wifi != nil {
		m.SetWifi(*o.Wifi)
	}
	if o.Ethernet != nil {
		m.SetEthernet(*o.Ethernet)
	}
	if o.PuertosEthernet != nil {
		m.SetPuertosEthernet(*o.PuertosEthernet)
	}
	if o.PuertosSfp != nil {
		m.SetPuertosSfp(*o.PuertosSfp)
	}
	if o.PuertoConsola != nil {
		m.SetPuertoConsola(*o.PuertoConsola)
	}
	if o.PuertosPoe != nil {
		m.SetPuertosPoe(*o.PuertosPoe)
	}
	if o.Alimentacion != nil {
		m.SetAlimentacion(*o.Alimentacion)
	}
	if o.Administrable != nil {
		m.SetAdministrable(*o.Administrable)
	}
	if o.Tamano != nil {
		m.SetTamano(*o.Tamano)
	}
	if o.Color != nil {
		m.SetColor(*o.Color)
	}
	if o.Conectores != nil {
		m.SetConectores(*o.Conectores)
	}
	if o.Cables != nil {
		m.SetCables(*o.Cables)
	}
}

// validateReferences checks every catalog reference on the input.
func (s *AssetService) validateReferences(ctx context.Context, input CreateAssetInput) error {
	refs := []struct {
		name string
		id   string
		get  func(context.Context, string) error
	}{
		{"tipo_activo_id", input.TipoActivoID, func(ctx context.Context, id string) error {
			_, err := s.client.TipoActivo.Get(ctx, id)
			return err
		}},
		{"marca_id", input.MarcaID, func(ctx context.Context, id string) error {
			_, err := s.client.Marca.Get(ctx, id)
			return err
		}},
		{"modelo_id", input.ModeloID, func(ctx context.Context, id string) error {
			_, err := s.client.ModeloActivo.Get(ctx, id)
			return err
		}},
		{"proveedor_id", input.ProveedorID, func(ctx context.Context, id string) error {
			_, err := s.client.Proveedor.Get(ctx, id)
			return err
		}},
		{"region_id", input.RegionID, func(ctx context.Context, id string) error {
			_, err := s.client.Region.Get(ctx, id)
			return err
		}},
		{"finca_id", input.FincaID, func(ctx context.Context, id string) error {
			_, err := s.client.Finca.Get(ctx, id)
			return err
		}},
		{"departamento_id", input.DepartamentoID, func(ctx context.Context, id string) error {
			_, err := s.client.Departamento.Get(ctx, id)
			return err
		}},
		{"area_id", input.AreaID, func(ctx context.Context, id string) error {
			_, err := s.client.Area.Get(ctx, id)
			return err
		}},
	}
	for _, ref := range refs {
		if ref.id == "" {
			return apperrors.BadRequest(apperrors.CodeValidationFailed, ref.name+" is required")
		}
		if err := ref.get(ctx, ref.id); err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeCatalogNotFound,
					"referenced "+ref.name+" does not exist")
			}
			return fmt.Errorf("resolve %s: %w", ref.name, err)
		}
	}
	return nil
}

// Get returns an asset by id.
func (s *AssetService) Get(ctx context.Context, id string) (*ent.Activo, error) {
	a, err := s.client.Activo.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrAssetNotFoundf(id)
		}
		return nil, fmt.Errorf("get asset %s: %w", id, err)
	}
	return a, nil
}

// GetByIdentifier resolves an asset by a string that may be either its
// hostname or its serie.
func (s *AssetService) GetByIdentifier(ctx context.Context, identifier string) (*ent.Activo, error) {
	a, err := s.client.Activo.Query().
		Where(activo.Or(
			activo.HostnameEQ(identifier),
			activo.SerieEQ(identifier),
		)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrAssetNotFoundf(identifier)
		}
		return nil, fmt.Errorf("resolve asset %q: %w", identifier, err)
	}
	return a, nil
}

// AssetFilter narrows List results.
type AssetFilter struct {
	Estado       string
	TipoActivoID string
	RegionID     string
	// Search matches serie or hostname prefixes.
	Search string
	Limit  int
	Offset int
}

// List returns assets matching the filter, newest first.
func (s *AssetService) List(ctx context.Context, filter AssetFilter) ([]*ent.Activo, error) {
	q := s.client.Activo.Query()
	if filter.Estado != "" {
		q = q.Where(activo.EstadoEQ(activo.Estado(filter.Estado)))
	}
	if filter.TipoActivoID != "" {
		q = q.Where(activo.TipoActivoIDEQ(filter.TipoActivoID))
	}
	if filter.RegionID != "" {
		q = q.Where(activo.RegionIDEQ(filter.RegionID))
	}
	if filter.Search != "" {
		q = q.Where(activo.Or(
			activo.SerieContainsFold(filter.Search),
			activo.HostnameContainsFold(filter.Search),
		))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	assets, err := q.Order(ent.Desc(activo.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// UpdateAssetInput carries an asset edit. Identity fields (serie,
// hostname), lifecycle state, and the denormalized caches are not
// editable through this path.
type UpdateAssetInput struct {
	ProveedorID    *string `json:"proveedor_id,omitempty"`
	RegionID       *string `json:"region_id,omitempty"`
	FincaID        *string `json:"finca_id,omitempty"`
	DepartamentoID *string `json:"departamento_id,omitempty"`
	AreaID         *string `json:"area_id,omitempty"`

	FechaFinGarantia *time.Time `json:"fecha_fin_garantia,omitempty"`

	Solicitante       *string  `json:"solicitante,omitempty"`
	CorreoElectronico *string  `json:"correo_electronico,omitempty"`
	OrdenCompra       *string  `json:"orden_compra,omitempty"`
	CuentaContable    *string  `json:"cuenta_contable,omitempty"`
	TipoCosto         *string  `json:"tipo_costo,omitempty"`
	Cuotas            *int     `json:"cuotas,omitempty"`
	Moneda            *string  `json:"moneda,omitempty"`
	Costo             *float64 `json:"costo,omitempty"`

	Overrides SpecOverrides `json:"overrides"`
}

// Update edits an asset's commercial, location, and spec fields. The
// audit entry records only the fields that changed.
func (s *AssetService) Update(ctx context.Context, id string, input UpdateAssetInput, actor string) (*ent.Activo, error) {
	var updated *ent.Activo
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		before, err := tx.Activo.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrAssetNotFoundf(id)
			}
			return fmt.Errorf("get asset %s: %w", id, err)
		}
		oldSnap := audit.AssetSnapshot(ctx, s.client, before)

		update := tx.Activo.UpdateOneID(id)
		if input.ProveedorID != nil {
			update.SetProveedorID(*input.ProveedorID)
		}
		if input.RegionID != nil {
			update.SetRegionID(*input.RegionID)
		}
		if input.FincaID != nil {
			update.SetFincaID(*input.FincaID)
		}
		if input.DepartamentoID != nil {
			update.SetDepartamentoID(*input.DepartamentoID)
		}
		if input.AreaID != nil {
			update.SetAreaID(*input.AreaID)
		}
		if input.FechaFinGarantia != nil {
			update.SetFechaFinGarantia(*input.FechaFinGarantia)
		}
		if input.Solicitante != nil {
			update.SetSolicitante(*input.Solicitante)
		}
		if input.CorreoElectronico != nil {
			update.SetCorreoElectronico(*input.CorreoElectronico)
		}
		if input.OrdenCompra != nil {
			update.SetOrdenCompra(*input.OrdenCompra)
		}
		if input.CuentaContable != nil {
			update.SetCuentaContable(*input.CuentaContable)
		}
		if input.TipoCosto != nil {
			update.SetTipoCosto(activo.TipoCosto(*input.TipoCosto))
		}
		if input.Cuotas != nil {
			update.SetCuotas(*input.Cuotas)
		}
		if input.Moneda != nil {
			update.SetMoneda(activo.Moneda(*input.Moneda))
		}
		if input.Costo != nil {
			update.SetCosto(*input.Costo)
		}
		applyOverrides(update.Mutation(), input.Overrides)

		after, err := update.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.BadRequest(apperrors.CodeValidationFailed,
					"asset update violates a reference constraint")
			}
			return fmt.Errorf("update asset %s: %w", id, err)
		}
		updated = after

		oldChanged, newChanged := audit.Diff(oldSnap, audit.AssetSnapshot(ctx, s.client, after))
		if len(oldChanged) == 0 && len(newChanged) == 0 {
			return nil // no-op edit, no audit entry
		}
		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "asset.update",
			EntityType:   "activo",
			EntityID:     id,
			UserID:       actor,
			Description:  "asset updated: " + after.Hostname,
			OldData:      oldChanged,
			NewData:      newChanged,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return updated, nil
}

// Delete removes an asset. Referential protection: an asset with any
// maintenance or assignment history is never hard-deleted.
func (s *AssetService) Delete(ctx context.Context, id string, actor string) error {
	return withTx(ctx, s.client, func(tx *ent.Tx) error {
		a, err := tx.Activo.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrAssetNotFoundf(id)
			}
			return fmt.Errorf("get asset %s: %w", id, err)
		}

		maintCount, err := tx.Maintenance.Query().
			Where(maintenance.ActivoIDEQ(id)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count maintenance history: %w", err)
		}
		asgCount, err := tx.Assignment.Query().
			Where(assignment.ActivoIDEQ(id)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count assignment history: %w", err)
		}
		if maintCount > 0 || asgCount > 0 {
			return apperrors.Conflict(apperrors.CodeCatalogInUse,
				"asset has maintenance or assignment history and cannot be deleted")
		}

		oldSnap := audit.AssetSnapshot(ctx, s.client, a)
		if err := tx.Activo.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete asset %s: %w", id, err)
		}
		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "asset.delete",
			EntityType:   "activo",
			EntityID:     id,
			UserID:       actor,
			Description:  "asset deleted: " + a.Hostname,
			OldData:      oldSnap,
		})
	})
}

// Retire moves an asset to the retired state.
func (s *AssetService) Retire(ctx context.Context, id, reason, actor string, documents []string) (*ent.Activo, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.BadRequest(apperrors.CodeRetireReasonMissing,
			"a retirement reason is required")
	}

	var retired *ent.Activo
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		a, err := tx.Activo.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrAssetNotFoundf(id)
			}
			return fmt.Errorf("get asset %s: %w", id, err)
		}
		if a.Estado == activo.EstadoRetirado {
			return apperrors.InvalidState(apperrors.CodeAssetRetired,
				"asset is already retired")
		}
		oldSnap := audit.AssetSnapshot(ctx, s.client, a)

		update := tx.Activo.UpdateOneID(id).
			SetEstado(activo.EstadoRetirado).
			SetFechaBaja(time.Now()).
			SetMotivoBaja(reason).
			SetUsuarioBajaID(actor)
		if len(documents) > 0 {
			update.SetDocumentosBaja(documents)
		}
		after, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("retire asset %s: %w", id, err)
		}
		retired = after

		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "asset.retire",
			EntityType:   "activo",
			EntityID:     id,
			UserID:       actor,
			Description:  "asset retired: " + reason,
			OldData:      oldSnap,
			NewData:      audit.AssetSnapshot(ctx, s.client, after),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Asset retired",
		zap.String("activo_id", id),
		zap.String("actor", actor),
	)
	return retired, nil
}

// Reactivate returns a retired asset to service, clearing all
// retirement fields. Stored retirement documents are deleted from the
// document store best-effort after commit; a deletion failure is
// logged, never fatal.
func (s *AssetService) Reactivate(ctx context.Context, id, actor string) (*ent.Activo, error) {
	var reactivated *ent.Activo
	var staleDocs []string

	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		a, err := tx.Activo.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.ErrAssetNotFoundf(id)
			}
			return fmt.Errorf("get asset %s: %w", id, err)
		}
		if a.Estado == activo.EstadoActivo {
			return apperrors.InvalidState(apperrors.CodeAssetAlreadyActive,
				"asset is already active")
		}
		oldSnap := audit.AssetSnapshot(ctx, s.client, a)
		staleDocs = a.DocumentosBaja

		after, err := tx.Activo.UpdateOneID(id).
			SetEstado(activo.EstadoActivo).
			ClearFechaBaja().
			ClearMotivoBaja().
			ClearUsuarioBajaID().
			ClearDocumentosBaja().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reactivate asset %s: %w", id, err)
		}
		reactivated = after

		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "asset.reactivate",
			EntityType:   "activo",
			EntityID:     id,
			UserID:       actor,
			Description:  "asset reactivated",
			OldData:      oldSnap,
			NewData:      audit.AssetSnapshot(ctx, s.client, after),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	s.deleteDocumentsBestEffort(ctx, id, staleDocs)

	logger.Info("Asset reactivated",
		zap.String("activo_id", id),
		zap.String("actor", actor),
	)
	return reactivated, nil
}

// deleteDocumentsBestEffort removes retirement documents from the
// store on the storage pool. Failures are logged and swallowed.
func (s *AssetService) deleteDocumentsBestEffort(ctx context.Context, activoID string, paths []string) {
	if s.docs == nil || len(paths) == 0 {
		return
	}
	for _, p := range paths {
		path := p
		err := s.pools.SubmitDetached("storage", func(ctx context.Context) {
			if err := s.docs.Delete(path); err != nil {
				logger.Warn("Failed to delete retirement document",
					zap.String("activo_id", activoID),
					zap.String("path", path),
					zap.Error(err),
				)
			}
		})
		if err != nil {
			logger.Warn("Failed to schedule document deletion",
				zap.String("activo_id", activoID),
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
}

// SetMaintenanceCache implements AssetCacheWriter. The overwrite is
// unconditional: the most recently created maintenance record always
// wins, even when backfilled out of order.
func (s *AssetService) SetMaintenanceCache(ctx context.Context, tx *ent.Tx, activoID string, date, next time.Time, tecnicoID, hallazgos string) error {
	err := tx.Activo.UpdateOneID(activoID).
		SetUltimoMantenimiento(date).
		SetProximoMantenimiento(next).
		SetTecnicoMantenimientoID(tecnicoID).
		SetUltimoMantenimientoHallazgos(hallazgos).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set maintenance cache on %s: %w", activoID, err)
	}
	return nil
}

// SetHolder implements AssetCacheWriter.
func (s *AssetService) SetHolder(ctx context.Context, tx *ent.Tx, activoID string, userID *string) error {
	update := tx.Activo.UpdateOneID(activoID)
	if userID == nil {
		update.ClearAssignedToID()
	} else {
		update.SetAssignedToID(*userID)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("set holder on %s: %w", activoID, err)
	}
	return nil
}

// Specs returns the resolved technical sheet for an asset.
func (s *AssetService) Specs(ctx context.Context, a *ent.Activo) (AssetSpecs, error) {
	m, err := s.client.ModeloActivo.Get(ctx, a.ModeloID)
	if err != nil && !ent.IsNotFound(err) {
		return AssetSpecs{}, fmt.Errorf("resolve model %s: %w", a.ModeloID, err)
	}
	return ResolveSpecs(a, m), nil
}
