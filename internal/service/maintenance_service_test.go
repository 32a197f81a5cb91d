package service

import (
	"context"
	"testing"
	"time"

	apperrors "fincatech.io/itam/internal/pkg/errors"
)

func TestMaintenanceRecord_UpdatesAssetCache(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "maint_record")
	fx := seedCatalog(t, client)
	assets, maint, _ := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-M1", "lt-m1")

	performed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: a.Hostname,
		Date:            performed,
		TecnicoID:       fx.TechnicianID,
		Hallazgos:       "limpieza interna, pasta termica",
	}, "tester")
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	wantNext := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)
	if !m.ProximoMantenimiento.Equal(wantNext) {
		t.Errorf("proximo_mantenimiento = %s, want %s",
			m.ProximoMantenimiento.Format("2006-01-02"), wantNext.Format("2006-01-02"))
	}

	after := client.Activo.GetX(ctx, a.ID)
	if after.UltimoMantenimiento == nil || !after.UltimoMantenimiento.Equal(performed) {
		t.Errorf("cached ultimo_mantenimiento = %v, want %s", after.UltimoMantenimiento, performed)
	}
	if after.ProximoMantenimiento == nil || !after.ProximoMantenimiento.Equal(wantNext) {
		t.Errorf("cached proximo_mantenimiento = %v, want %s", after.ProximoMantenimiento, wantNext)
	}
	if after.TecnicoMantenimientoID != fx.TechnicianID {
		t.Errorf("cached tecnico = %q, want %q", after.TecnicoMantenimientoID, fx.TechnicianID)
	}
	if after.UltimoMantenimientoHallazgos != "limpieza interna, pasta termica" {
		t.Errorf("cached hallazgos = %q", after.UltimoMantenimientoHallazgos)
	}
}

func TestMaintenanceRecord_ExplicitNextDateWins(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "maint_next_override")
	fx := seedCatalog(t, client)
	assets, maint, _ := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-M2", "lt-m2")

	next := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	m, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: a.Serie,
		Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TecnicoID:       fx.TechnicianID,
		Hallazgos:       "revision rapida",
		NextDate:        &next,
	}, "tester")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !m.ProximoMantenimiento.Equal(next) {
		t.Errorf("proximo_mantenimiento = %s, want explicit %s",
			m.ProximoMantenimiento.Format("2006-01-02"), next.Format("2006-01-02"))
	}
}

func TestMaintenanceRecord_BackfillOverwritesCache(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "maint_backfill")
	fx := seedCatalog(t, client)
	assets, maint, _ := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-M3", "lt-m3")

	recent := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: a.Hostname,
		Date:            recent,
		TecnicoID:       fx.TechnicianID,
		Hallazgos:       "todo en orden",
	}, "tester"); err != nil {
		t.Fatalf("record recent: %v", err)
	}

	// Backfilling an older event overwrites the cache with the older
	// values. The history keeps both records either way.
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: a.Hostname,
		Date:            older,
		TecnicoID:       fx.TechnicianID,
		Hallazgos:       "registro tardio",
	}, "tester"); err != nil {
		t.Fatalf("record backfill: %v", err)
	}

	after := client.Activo.GetX(ctx, a.ID)
	if after.UltimoMantenimiento == nil || !after.UltimoMantenimiento.Equal(older) {
		t.Errorf("cached ultimo_mantenimiento = %v, want backfilled %s", after.UltimoMantenimiento, older)
	}

	history, err := maint.History(ctx, a.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d records, want 2", len(history))
	}
	if !history[0].FechaMantenimiento.Equal(recent) {
		t.Errorf("history[0] = %s, want newest first", history[0].FechaMantenimiento.Format("2006-01-02"))
	}
}

func TestMaintenanceRecord_UnknownTechnician(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "maint_unknown_tecnico")
	fx := seedCatalog(t, client)
	assets, maint, _ := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-M4", "lt-m4")

	_, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: a.Hostname,
		Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TecnicoID:       "no-such-user",
		Hallazgos:       "n/a",
	}, "tester")
	assertAppCode(t, err, apperrors.CodeTechnicianNotFound)
}

func TestMaintenanceRecord_UnknownAsset(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "maint_unknown_asset")
	fx := seedCatalog(t, client)
	_, maint, _ := newServices(t, client)
	ctx := context.Background()

	_, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: "no-such-host",
		Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TecnicoID:       fx.TechnicianID,
		Hallazgos:       "n/a",
	}, "tester")
	assertAppCode(t, err, apperrors.CodeAssetNotFound)
}

func TestMaintenanceDueBefore(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "maint_due_before")
	fx := seedCatalog(t, client)
	assets, maint, _ := newServices(t, client)
	ctx := context.Background()

	soon := createAsset(t, assets, fx, "SN-M5", "lt-m5")
	later := createAsset(t, assets, fx, "SN-M6", "lt-m6")

	soonNext := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	laterNext := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	performed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: soon.Hostname, Date: performed,
		TecnicoID: fx.TechnicianID, Hallazgos: "ok", NextDate: &soonNext,
	}, "tester"); err != nil {
		t.Fatalf("record soon: %v", err)
	}
	if _, err := maint.Record(ctx, RecordInput{
		AssetIdentifier: later.Hostname, Date: performed,
		TecnicoID: fx.TechnicianID, Hallazgos: "ok", NextDate: &laterNext,
	}, "tester"); err != nil {
		t.Fatalf("record later: %v", err)
	}

	due, err := maint.DueBefore(ctx, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("due before: %v", err)
	}
	if len(due) != 1 || due[0].ID != soon.ID {
		t.Fatalf("due = %d assets, want only %s", len(due), soon.Hostname)
	}

	// Retired assets drop out of the due list.
	if _, err := assets.Retire(ctx, soon.ID, "obsoleto", "tester", nil); err != nil {
		t.Fatalf("retire: %v", err)
	}
	due, err = maint.DueBefore(ctx, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("due before after retire: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("due = %d assets after retire, want 0", len(due))
	}
}
