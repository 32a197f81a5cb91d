package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/assignment"
	"fincatech.io/itam/ent/maintenance"
)

// ReportService streams CSV exports of the inventory. Spec sheets go
// through the same Specs fallback as the API read path, so exports and
// responses never disagree.
type ReportService struct {
	client   *ent.Client
	assetSvc *AssetService
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client, assetSvc *AssetService) *ReportService {
	return &ReportService{client: client, assetSvc: assetSvc}
}

func csvDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// WriteInventoryCSV streams all assets matching the filter.
func (s *ReportService) WriteInventoryCSV(ctx context.Context, w io.Writer, filter AssetFilter) error {
	assets, err := s.assetSvc.List(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"serie", "hostname", "estado", "fecha_registro", "fecha_fin_garantia",
		"procesador", "ram", "almacenamiento",
		"ultimo_mantenimiento", "proximo_mantenimiento",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, a := range assets {
		specs, err := s.assetSvc.Specs(ctx, a)
		if err != nil {
			return err
		}
		row := []string{
			a.Serie,
			a.Hostname,
			string(a.Estado),
			a.FechaRegistro.Format("2006-01-02"),
			csvDate(a.FechaFinGarantia),
			specs.Procesador,
			strconv.Itoa(specs.RAM),
			specs.Almacenamiento,
			csvDate(a.UltimoMantenimiento),
			csvDate(a.ProximoMantenimiento),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAssignmentsCSV streams the assignment ledger.
func (s *ReportService) WriteAssignmentsCSV(ctx context.Context, w io.Writer, filter AssignmentFilter) error {
	assignments, err := s.client.Assignment.Query().
		Order(ent.Desc(assignment.FieldAssignedDate)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list assignments: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"assignment_id", "activo_id", "employee_id",
		"assigned_date", "returned_date", "assigned_by", "returned_by",
	}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, asg := range assignments {
		if filter.ActiveOnly && asg.ReturnedDate != nil {
			continue
		}
		if filter.EmployeeID != "" && asg.EmployeeID != filter.EmployeeID {
			continue
		}
		row := []string{
			asg.ID,
			asg.ActivoID,
			asg.EmployeeID,
			asg.AssignedDate.Format("2006-01-02"),
			csvDate(asg.ReturnedDate),
			asg.AssignedByID,
			asg.ReturnedByID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMaintenanceCSV streams maintenance history, optionally for one
// asset.
func (s *ReportService) WriteMaintenanceCSV(ctx context.Context, w io.Writer, activoID string) error {
	q := s.client.Maintenance.Query()
	if activoID != "" {
		q = q.Where(maintenance.ActivoIDEQ(activoID))
	}
	records, err := q.Order(ent.Desc(maintenance.FieldFechaMantenimiento)).All(ctx)
	if err != nil {
		return fmt.Errorf("list maintenance records: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"maintenance_id", "activo_id", "fecha_mantenimiento",
		"proximo_mantenimiento", "tecnico_id", "hallazgos",
	}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range records {
		row := []string{
			m.ID,
			m.ActivoID,
			m.FechaMantenimiento.Format("2006-01-02"),
			m.ProximoMantenimiento.Format("2006-01-02"),
			m.TecnicoID,
			m.Hallazgos,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
