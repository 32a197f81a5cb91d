package service

import (
	"context"
	"fmt"
	"time"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/activo"
	"fincatech.io/itam/ent/assignment"
)

// DashboardService aggregates inventory counts for the overview pages.
// Pure reads, no invariants.
type DashboardService struct {
	client *ent.Client
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(client *ent.Client) *DashboardService {
	return &DashboardService{client: client}
}

// Summary is the headline inventory breakdown.
type Summary struct {
	TotalAssets      int `json:"total_assets"`
	ActiveAssets     int `json:"active_assets"`
	RetiredAssets    int `json:"retired_assets"`
	AssignedAssets   int `json:"assigned_assets"`
	AvailableAssets  int `json:"available_assets"`
	MaintenanceDue   int `json:"maintenance_due"`
	WarrantyExpiring int `json:"warranty_expiring"`
}

// GetSummary computes the dashboard headline numbers. The due and
// warranty windows are supplied in days by the caller.
func (s *DashboardService) GetSummary(ctx context.Context, dueSoonDays, warrantyDays int) (*Summary, error) {
	total, err := s.client.Activo.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count assets: %w", err)
	}
	active, err := s.client.Activo.Query().
		Where(activo.EstadoEQ(activo.EstadoActivo)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active assets: %w", err)
	}
	assigned, err := s.client.Assignment.Query().
		Where(assignment.ReturnedDateIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active assignments: %w", err)
	}

	now := time.Now()
	due, err := dueAssets(ctx, s.client, now.AddDate(0, 0, dueSoonDays))
	if err != nil {
		return nil, err
	}
	expiring, err := warrantyExpiring(ctx, s.client, now, now.AddDate(0, 0, warrantyDays))
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalAssets:      total,
		ActiveAssets:     active,
		RetiredAssets:    total - active,
		AssignedAssets:   assigned,
		AvailableAssets:  active - assigned,
		MaintenanceDue:   len(due),
		WarrantyExpiring: len(expiring),
	}, nil
}

// WarrantyExpiring lists active assets whose warranty ends within the
// given number of days, soonest first.
func (s *DashboardService) WarrantyExpiring(ctx context.Context, days int) ([]*ent.Activo, error) {
	now := time.Now()
	return warrantyExpiring(ctx, s.client, now, now.AddDate(0, 0, days))
}

// MatrixCell is one (asset type, region) bucket.
type MatrixCell struct {
	TipoActivoID string `json:"tipo_activo_id"`
	RegionID     string `json:"region_id"`
	Count        int    `json:"count"`
}

// TypeRegionMatrix counts active assets per (asset type, region) pair.
func (s *DashboardService) TypeRegionMatrix(ctx context.Context) ([]MatrixCell, error) {
	var cells []MatrixCell
	err := s.client.Activo.Query().
		Where(activo.EstadoEQ(activo.EstadoActivo)).
		GroupBy(activo.FieldTipoActivoID, activo.FieldRegionID).
		Aggregate(ent.Count()).
		Scan(ctx, &cells)
	if err != nil {
		return nil, fmt.Errorf("aggregate type/region matrix: %w", err)
	}
	return cells, nil
}
