package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/activo"
	"fincatech.io/itam/ent/maintenance"
	"fincatech.io/itam/internal/governance/audit"
	apperrors "fincatech.io/itam/internal/pkg/errors"
	"fincatech.io/itam/internal/pkg/logger"
)

// MaintenanceService records maintenance events and projects the
// result onto the owning asset's maintenance cache.
type MaintenanceService struct {
	client      *ent.Client
	cache       AssetCacheWriter
	auditLogger *audit.Logger
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(client *ent.Client, cache AssetCacheWriter, auditLogger *audit.Logger) *MaintenanceService {
	return &MaintenanceService{
		client:      client,
		cache:       cache,
		auditLogger: auditLogger,
	}
}

// RecordInput carries one maintenance event.
type RecordInput struct {
	// AssetIdentifier may be either the asset's hostname or its serie.
	AssetIdentifier string    `json:"asset_identifier"`
	Date            time.Time `json:"fecha_mantenimiento"`
	TecnicoID       string    `json:"tecnico_id"`
	Hallazgos       string    `json:"hallazgos"`
	// NextDate overrides the derived due date when supplied.
	NextDate    *time.Time `json:"proximo_mantenimiento,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
}

// Record persists a maintenance event and unconditionally overwrites
// the asset's maintenance cache with it. No "latest wins" comparison is
// performed: backfilling an older event makes the cache reflect that
// older event. Intentional, pending product clarification.
func (s *MaintenanceService) Record(ctx context.Context, input RecordInput, actor string) (*ent.Maintenance, error) {
	if strings.TrimSpace(input.AssetIdentifier) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "asset identifier is required")
	}
	if input.Date.IsZero() {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "fecha_mantenimiento is required")
	}
	if strings.TrimSpace(input.TecnicoID) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "tecnico_id is required")
	}
	if strings.TrimSpace(input.Hallazgos) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "hallazgos is required")
	}

	tecnico, err := s.client.User.Get(ctx, input.TecnicoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeTechnicianNotFound, "technician not found")
		}
		return nil, fmt.Errorf("resolve technician %s: %w", input.TecnicoID, err)
	}

	next := NextMaintenanceDate(input.Date)
	if input.NextDate != nil {
		next = *input.NextDate
	}

	var created *ent.Maintenance
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		a, err := resolveAssetTx(ctx, tx, input.AssetIdentifier)
		if err != nil {
			return err
		}

		create := tx.Maintenance.Create().
			SetID(generateID()).
			SetActivoID(a.ID).
			SetFechaMantenimiento(input.Date).
			SetProximoMantenimiento(next).
			SetTecnicoID(tecnico.ID).
			SetHallazgos(input.Hallazgos)
		if len(input.Attachments) > 0 {
			create.SetAttachments(input.Attachments)
		}
		m, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create maintenance record: %w", err)
		}
		created = m

		if err := s.cache.SetMaintenanceCache(ctx, tx, a.ID, input.Date, next, tecnico.ID, input.Hallazgos); err != nil {
			return err
		}

		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "maintenance.create",
			EntityType:   "maintenance",
			EntityID:     m.ID,
			UserID:       actor,
			Description:  "maintenance recorded for " + a.Hostname,
			NewData:      audit.MaintenanceSnapshot(ctx, s.client, m),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Maintenance recorded",
		zap.String("maintenance_id", created.ID),
		zap.String("activo_id", created.ActivoID),
		zap.String("tecnico_id", created.TecnicoID),
		zap.Time("proximo_mantenimiento", created.ProximoMantenimiento),
	)
	return created, nil
}

// History returns an asset's maintenance records, newest first.
func (s *MaintenanceService) History(ctx context.Context, activoID string) ([]*ent.Maintenance, error) {
	records, err := s.client.Maintenance.Query().
		Where(maintenance.ActivoIDEQ(activoID)).
		Order(ent.Desc(maintenance.FieldFechaMantenimiento)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list maintenance history: %w", err)
	}
	return records, nil
}

// DueBefore returns active assets whose cached next-maintenance date
// falls on or before the cutoff. Feeds the maintenance overview and the
// background due scan.
func (s *MaintenanceService) DueBefore(ctx context.Context, cutoff time.Time) ([]*ent.Activo, error) {
	return dueAssets(ctx, s.client, cutoff)
}

// MaintenanceFilter narrows the event list.
type MaintenanceFilter struct {
	ActivoID  string
	TecnicoID string
	Limit     int
	Offset    int
}

// List returns maintenance events matching the filter, newest first.
func (s *MaintenanceService) List(ctx context.Context, filter MaintenanceFilter) ([]*ent.Maintenance, error) {
	q := s.client.Maintenance.Query()
	if filter.ActivoID != "" {
		q = q.Where(maintenance.ActivoIDEQ(filter.ActivoID))
	}
	if filter.TecnicoID != "" {
		q = q.Where(maintenance.TecnicoIDEQ(filter.TecnicoID))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	records, err := q.Order(ent.Desc(maintenance.FieldFechaMantenimiento)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list maintenance events: %w", err)
	}
	return records, nil
}

// OverviewRow is one active asset's maintenance standing, read from
// the asset cache.
type OverviewRow struct {
	ActivoID  string     `json:"activo_id"`
	Hostname  string     `json:"hostname"`
	Serie     string     `json:"serie"`
	Estado    string     `json:"estado"`
	Ultimo    *time.Time `json:"ultimo_mantenimiento,omitempty"`
	Proximo   *time.Time `json:"proximo_mantenimiento,omitempty"`
	TecnicoID string     `json:"tecnico_id,omitempty"`
	Hallazgos string     `json:"hallazgos,omitempty"`
}

// Overview returns the maintenance standing of every active asset.
// Estado is "realizados" when at least one maintenance is on record
// and "nunca" otherwise.
func (s *MaintenanceService) Overview(ctx context.Context) ([]OverviewRow, error) {
	assets, err := s.client.Activo.Query().
		Where(activo.EstadoEQ(activo.EstadoActivo)).
		Order(ent.Asc(activo.FieldHostname)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active assets: %w", err)
	}

	rows := make([]OverviewRow, 0, len(assets))
	for _, a := range assets {
		row := OverviewRow{
			ActivoID:  a.ID,
			Hostname:  a.Hostname,
			Serie:     a.Serie,
			Estado:    "nunca",
			TecnicoID: a.TecnicoMantenimientoID,
			Hallazgos: a.UltimoMantenimientoHallazgos,
		}
		if a.UltimoMantenimiento != nil {
			row.Estado = "realizados"
			row.Ultimo = a.UltimoMantenimiento
			row.Proximo = a.ProximoMantenimiento
		}
		rows = append(rows, row)
	}
	return rows, nil
}
