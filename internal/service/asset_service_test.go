package service

import (
	"context"
	"testing"
	"time"

	"fincatech.io/itam/ent/activo"
	apperrors "fincatech.io/itam/internal/pkg/errors"
)

func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected AppError %s, got nil", code)
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		t.Fatalf("expected AppError %s, got %T: %v", code, err, err)
	}
	if appErr.Code != code {
		t.Fatalf("error code = %s, want %s", appErr.Code, code)
	}
}

func TestAssetCreate_DuplicateSerie(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_dup_serie")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)

	createAsset(t, assets, fx, "SN-100", "lt-100")

	_, err := assets.Create(context.Background(), CreateAssetInput{
		TipoActivoID:   fx.TipoLaptopID,
		MarcaID:        fx.MarcaID,
		ModeloID:       fx.ModeloID,
		ProveedorID:    fx.ProveedorID,
		RegionID:       fx.RegionID,
		FincaID:        fx.FincaID,
		DepartamentoID: fx.DepartamentoID,
		AreaID:         fx.AreaID,
		Serie:          "SN-100",
		Hostname:       "lt-101",
		FechaRegistro:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}, "tester")
	assertAppCode(t, err, apperrors.CodeAssetExists)
}

func TestAssetCreate_UnknownCatalogReference(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_bad_ref")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)

	_, err := assets.Create(context.Background(), CreateAssetInput{
		TipoActivoID:   fx.TipoLaptopID,
		MarcaID:        fx.MarcaID,
		ModeloID:       "no-such-model",
		ProveedorID:    fx.ProveedorID,
		RegionID:       fx.RegionID,
		FincaID:        fx.FincaID,
		DepartamentoID: fx.DepartamentoID,
		AreaID:         fx.AreaID,
		Serie:          "SN-200",
		Hostname:       "lt-200",
		FechaRegistro:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}, "tester")
	assertAppCode(t, err, apperrors.CodeCatalogNotFound)
}

func TestAssetGetByIdentifier(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_identifier")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)
	ctx := context.Background()

	created := createAsset(t, assets, fx, "SN-300", "lt-300")

	bySerie, err := assets.GetByIdentifier(ctx, "SN-300")
	if err != nil {
		t.Fatalf("lookup by serie: %v", err)
	}
	byHostname, err := assets.GetByIdentifier(ctx, "lt-300")
	if err != nil {
		t.Fatalf("lookup by hostname: %v", err)
	}
	if bySerie.ID != created.ID || byHostname.ID != created.ID {
		t.Errorf("identifier lookups resolved %s / %s, want %s", bySerie.ID, byHostname.ID, created.ID)
	}

	_, err = assets.GetByIdentifier(ctx, "missing")
	assertAppCode(t, err, apperrors.CodeAssetNotFound)
}

func TestAssetRetireReactivate_RoundTrip(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_retire_roundtrip")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-400", "lt-400")

	retired, err := assets.Retire(ctx, a.ID, "equipo obsoleto", "tester", []string{"bajas/acta.pdf"})
	if err != nil {
		t.Fatalf("retire: %v", err)
	}
	if retired.Estado != activo.EstadoRetirado {
		t.Errorf("estado = %s, want retirado", retired.Estado)
	}
	if retired.FechaBaja == nil {
		t.Error("fecha_baja not set on retirement")
	}
	if retired.MotivoBaja != "equipo obsoleto" {
		t.Errorf("motivo_baja = %q", retired.MotivoBaja)
	}
	if retired.UsuarioBajaID != "tester" {
		t.Errorf("usuario_baja_id = %q", retired.UsuarioBajaID)
	}
	if len(retired.DocumentosBaja) != 1 || retired.DocumentosBaja[0] != "bajas/acta.pdf" {
		t.Errorf("documentos_baja = %v", retired.DocumentosBaja)
	}

	reactivated, err := assets.Reactivate(ctx, a.ID, "tester")
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if reactivated.Estado != activo.EstadoActivo {
		t.Errorf("estado = %s, want activo", reactivated.Estado)
	}
	if reactivated.FechaBaja != nil || reactivated.MotivoBaja != "" || reactivated.UsuarioBajaID != "" {
		t.Errorf("retirement fields survived reactivation: %v %q %q",
			reactivated.FechaBaja, reactivated.MotivoBaja, reactivated.UsuarioBajaID)
	}
	if len(reactivated.DocumentosBaja) != 0 {
		t.Errorf("documentos_baja = %v, want empty", reactivated.DocumentosBaja)
	}
}

func TestAssetRetire_RequiresReason(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_retire_reason")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)

	a := createAsset(t, assets, fx, "SN-500", "lt-500")

	_, err := assets.Retire(context.Background(), a.ID, "   ", "tester", nil)
	assertAppCode(t, err, apperrors.CodeRetireReasonMissing)
}

func TestAssetRetire_AlreadyRetired(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_retire_twice")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-600", "lt-600")
	if _, err := assets.Retire(ctx, a.ID, "obsoleto", "tester", nil); err != nil {
		t.Fatalf("first retire: %v", err)
	}

	_, err := assets.Retire(ctx, a.ID, "obsoleto", "tester", nil)
	assertAppCode(t, err, apperrors.CodeAssetRetired)
}

func TestAssetReactivate_AlreadyActive(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_reactivate_active")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)

	a := createAsset(t, assets, fx, "SN-700", "lt-700")

	_, err := assets.Reactivate(context.Background(), a.ID, "tester")
	assertAppCode(t, err, apperrors.CodeAssetAlreadyActive)
}

func TestAssetDelete_BlockedByHistory(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_delete_history")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-800", "lt-800")
	asg, err := assignments.Assign(ctx, AssignInput{ActivoID: a.ID, EmployeeID: fx.EmployeeID}, "tester")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := assignments.Return(ctx, asg.ID, nil, "tester"); err != nil {
		t.Fatalf("return: %v", err)
	}

	// History remains after return, so the asset stays undeletable.
	err = assets.Delete(ctx, a.ID, "tester")
	assertAppCode(t, err, apperrors.CodeCatalogInUse)
}

func TestAssetSpecs_OverrideWinsOverModelDefault(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "asset_specs_override")
	fx := seedCatalog(t, client)
	assets, _, _ := newServices(t, client)
	ctx := context.Background()

	ram := 32
	a, err := assets.Create(ctx, CreateAssetInput{
		TipoActivoID:   fx.TipoLaptopID,
		MarcaID:        fx.MarcaID,
		ModeloID:       fx.ModeloID,
		ProveedorID:    fx.ProveedorID,
		RegionID:       fx.RegionID,
		FincaID:        fx.FincaID,
		DepartamentoID: fx.DepartamentoID,
		AreaID:         fx.AreaID,
		Serie:          "SN-900",
		Hostname:       "lt-900",
		FechaRegistro:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Overrides:      SpecOverrides{RAM: &ram},
	}, "tester")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	specs, err := assets.Specs(ctx, a)
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if specs.RAM != 32 {
		t.Errorf("ram = %d, want override 32", specs.RAM)
	}
	if specs.Procesador != "Intel i5-1345U" {
		t.Errorf("procesador = %q, want model default", specs.Procesador)
	}
}
