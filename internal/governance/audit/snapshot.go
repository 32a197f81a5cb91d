package audit

import (
	"context"
	"reflect"
	"time"

	"fincatech.io/itam/ent"
)

// AssetSnapshot builds an audit snapshot of an asset with catalog and
// directory references replaced by display names. Lookups are
// best-effort: a missing reference keeps the raw id so the trail never
// blocks the operation it describes.
func AssetSnapshot(ctx context.Context, client *ent.Client, a *ent.Activo) map[string]interface{} {
	snap := map[string]interface{}{
		"serie":          a.Serie,
		"hostname":       a.Hostname,
		"estado":         string(a.Estado),
		"fecha_registro": formatDate(&a.FechaRegistro),
		"tipo_activo":    tipoActivoName(ctx, client, a.TipoActivoID),
		"marca":          marcaName(ctx, client, a.MarcaID),
		"modelo":         modeloName(ctx, client, a.ModeloID),
		"proveedor":      proveedorName(ctx, client, a.ProveedorID),
		"region":         regionName(ctx, client, a.RegionID),
		"finca":          fincaName(ctx, client, a.FincaID),
		"departamento":   departamentoName(ctx, client, a.DepartamentoID),
		"area":           areaName(ctx, client, a.AreaID),
	}
	if a.FechaFinGarantia != nil {
		snap["fecha_fin_garantia"] = formatDate(a.FechaFinGarantia)
	}
	if a.AssignedToID != "" {
		snap["assigned_to"] = userName(ctx, client, a.AssignedToID)
	}
	if a.Estado == "retirado" {
		snap["fecha_baja"] = formatDate(a.FechaBaja)
		snap["motivo_baja"] = a.MotivoBaja
		if a.UsuarioBajaID != "" {
			snap["usuario_baja"] = userName(ctx, client, a.UsuarioBajaID)
		}
		if len(a.DocumentosBaja) > 0 {
			snap["documentos_baja"] = a.DocumentosBaja
		}
	}
	if a.UltimoMantenimiento != nil {
		snap["ultimo_mantenimiento"] = formatDate(a.UltimoMantenimiento)
		snap["proximo_mantenimiento"] = formatDate(a.ProximoMantenimiento)
		if a.TecnicoMantenimientoID != "" {
			snap["tecnico_mantenimiento"] = userName(ctx, client, a.TecnicoMantenimientoID)
		}
	}
	return snap
}

// AssignmentSnapshot builds an audit snapshot of an assignment record.
func AssignmentSnapshot(ctx context.Context, client *ent.Client, asg *ent.Assignment) map[string]interface{} {
	snap := map[string]interface{}{
		"activo":        activoLabel(ctx, client, asg.ActivoID),
		"employee":      employeeName(ctx, client, asg.EmployeeID),
		"assigned_date": formatDate(&asg.AssignedDate),
	}
	if asg.ReturnedDate != nil {
		snap["returned_date"] = formatDate(asg.ReturnedDate)
		if asg.ReturnedByID != "" {
			snap["returned_by"] = userName(ctx, client, asg.ReturnedByID)
		}
	}
	if asg.AssignedByID != "" {
		snap["assigned_by"] = userName(ctx, client, asg.AssignedByID)
	}
	if asg.Notes != "" {
		snap["notes"] = asg.Notes
	}
	return snap
}

// MaintenanceSnapshot builds an audit snapshot of a maintenance event.
func MaintenanceSnapshot(ctx context.Context, client *ent.Client, m *ent.Maintenance) map[string]interface{} {
	snap := map[string]interface{}{
		"activo":                activoLabel(ctx, client, m.ActivoID),
		"fecha_mantenimiento":   formatDate(&m.FechaMantenimiento),
		"proximo_mantenimiento": formatDate(&m.ProximoMantenimiento),
		"tecnico":               userName(ctx, client, m.TecnicoID),
	}
	if m.Hallazgos != "" {
		snap["hallazgos"] = m.Hallazgos
	}
	return snap
}

// Diff reduces a pair of snapshots to the keys whose values differ,
// keeping audit rows small for partial updates. Values are compared
// with reflect.DeepEqual since snapshots carry slices such as
// documentos_baja.
func Diff(oldSnap, newSnap map[string]interface{}) (oldChanged, newChanged map[string]interface{}) {
	oldChanged = map[string]interface{}{}
	newChanged = map[string]interface{}{}
	for k, ov := range oldSnap {
		nv, ok := newSnap[k]
		if !ok || !reflect.DeepEqual(ov, nv) {
			oldChanged[k] = ov
			if ok {
				newChanged[k] = nv
			}
		}
	}
	for k, nv := range newSnap {
		if _, ok := oldSnap[k]; !ok {
			newChanged[k] = nv
		}
	}
	return oldChanged, newChanged
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func tipoActivoName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.TipoActivo.Get(ctx, id); err == nil {
		return v.Name
	}
	return id
}

func marcaName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Marca.Get(ctx, id); err == nil {
		return v.Name
	}
	return id
}

func modeloName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.ModeloActivo.Get(ctx, id); err == nil {
		return v.Name
	}
	return id
}

func proveedorName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Proveedor.Get(ctx, id); err == nil {
		return v.NombreEmpresa
	}
	return id
}

func regionName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Region.Get(ctx, id); err == nil {
		return v.Name
	}
	return id
}

func fincaName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Finca.Get(ctx, id); err == nil {
		return v.Name
	}
	return id
}

func departamentoName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Departamento.Get(ctx, id); err == nil {
		return v.Name
	}
	return id
}

func areaName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Area.Get(ctx, id); err == nil {
		return v.Name
	}
	return id
}

func employeeName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Employee.Get(ctx, id); err == nil {
		return v.FirstName + " " + v.LastName
	}
	return id
}

func userName(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.User.Get(ctx, id); err == nil {
		return v.Username
	}
	return id
}

func activoLabel(ctx context.Context, client *ent.Client, id string) string {
	if v, err := client.Activo.Get(ctx, id); err == nil {
		return v.Hostname + " (" + v.Serie + ")"
	}
	return id
}
