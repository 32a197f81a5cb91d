package audit

import (
	"context"
	"testing"
	"time"

	"fincatech.io/itam/internal/testutil"
)

func TestAssetSnapshot_AssignedToResolvesAccount(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "audit_snapshot")
	ctx := context.Background()

	client.Employee.Create().
		SetID("emp-1").
		SetEmployeeNumber("EMP-001").
		SetFirstName("Ana").
		SetLastName("Gomez").
		ExecX(ctx)
	account := client.User.Create().
		SetID("user-1").
		SetUsername("ana.gomez").
		SetEmail("ana.gomez@example.com").
		SetEmployeeID("emp-1").
		SaveX(ctx)

	// The holder pointer stores the linked account's user id, not the
	// employee id.
	a := client.Activo.Create().
		SetID("asset-1").
		SetTipoActivoID("tipo-1").
		SetMarcaID("marca-1").
		SetModeloID("modelo-1").
		SetProveedorID("prov-1").
		SetRegionID("region-1").
		SetFincaID("finca-1").
		SetDepartamentoID("depto-1").
		SetAreaID("area-1").
		SetSerie("SN-100").
		SetHostname("lap-100").
		SetFechaRegistro(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)).
		SetAssignedToID(account.ID).
		SaveX(ctx)

	snap := AssetSnapshot(ctx, client, a)
	if got := snap["assigned_to"]; got != "ana.gomez" {
		t.Errorf("assigned_to = %v, want username of the linked account", got)
	}
}
