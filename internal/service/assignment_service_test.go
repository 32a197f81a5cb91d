package service

import (
	"context"
	"testing"

	apperrors "fincatech.io/itam/internal/pkg/errors"
)

func TestAssign_SecondAssignmentOnSameAssetRejected(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "assign_exclusive_asset")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-A1", "lt-a1")
	if _, err := assignments.Assign(ctx, AssignInput{ActivoID: a.ID, EmployeeID: fx.EmployeeID}, "tester"); err != nil {
		t.Fatalf("first assign: %v", err)
	}

	other := client.Employee.Create().
		SetID(generateID()).
		SetEmployeeNumber("EMP-002").
		SetFirstName("Luis").
		SetLastName("Perez").
		SaveX(ctx)

	_, err := assignments.Assign(ctx, AssignInput{ActivoID: a.ID, EmployeeID: other.ID}, "tester")
	assertAppCode(t, err, apperrors.CodeAssetAssigned)
}

func TestAssign_SecondAssetOfSameTypeRejected(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "assign_type_conflict")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	first := createAsset(t, assets, fx, "SN-B1", "lt-b1")
	second := createAsset(t, assets, fx, "SN-B2", "lt-b2")

	if _, err := assignments.Assign(ctx, AssignInput{ActivoID: first.ID, EmployeeID: fx.EmployeeID}, "tester"); err != nil {
		t.Fatalf("first assign: %v", err)
	}

	_, err := assignments.Assign(ctx, AssignInput{ActivoID: second.ID, EmployeeID: fx.EmployeeID}, "tester")
	assertAppCode(t, err, apperrors.CodeTypeConflict)

	// After returning the first asset, the same type can be assigned again.
	asgs, err := assignments.List(ctx, AssignmentFilter{EmployeeID: fx.EmployeeID, ActiveOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(asgs) != 1 {
		t.Fatalf("active assignments = %d, want 1", len(asgs))
	}
	if _, err := assignments.Return(ctx, asgs[0].ID, nil, "tester"); err != nil {
		t.Fatalf("return: %v", err)
	}
	if _, err := assignments.Assign(ctx, AssignInput{ActivoID: second.ID, EmployeeID: fx.EmployeeID}, "tester"); err != nil {
		t.Fatalf("assign after return: %v", err)
	}
}

func TestAssign_RetiredAssetIsValidationFailure(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "assign_retired")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-C1", "lt-c1")
	if _, err := assets.Retire(ctx, a.ID, "obsoleto", "tester", nil); err != nil {
		t.Fatalf("retire: %v", err)
	}

	_, err := assignments.Assign(ctx, AssignInput{ActivoID: a.ID, EmployeeID: fx.EmployeeID}, "tester")
	assertAppCode(t, err, apperrors.CodeValidationFailed)
}

func TestAssignReturn_HolderPointerSync(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "assign_holder_sync")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	account := client.User.Create().
		SetID(generateID()).
		SetUsername("ana.lopez").
		SetEmail("ana.lopez@example.com").
		SetEmployeeID(fx.EmployeeID).
		SaveX(ctx)

	a := createAsset(t, assets, fx, "SN-D1", "lt-d1")
	asg, err := assignments.Assign(ctx, AssignInput{ActivoID: a.ID, EmployeeID: fx.EmployeeID}, "tester")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	afterAssign := client.Activo.GetX(ctx, a.ID)
	if afterAssign.AssignedToID != account.ID {
		t.Errorf("assigned_to_id = %q, want %q", afterAssign.AssignedToID, account.ID)
	}

	if _, err := assignments.Return(ctx, asg.ID, nil, "tester"); err != nil {
		t.Fatalf("return: %v", err)
	}

	afterReturn := client.Activo.GetX(ctx, a.ID)
	if afterReturn.AssignedToID != "" {
		t.Errorf("assigned_to_id = %q after return, want cleared", afterReturn.AssignedToID)
	}
}

func TestAssign_NoLinkedAccountLeavesHolderUnset(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "assign_no_account")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-E1", "lt-e1")
	if _, err := assignments.Assign(ctx, AssignInput{ActivoID: a.ID, EmployeeID: fx.EmployeeID}, "tester"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	after := client.Activo.GetX(ctx, a.ID)
	if after.AssignedToID != "" {
		t.Errorf("assigned_to_id = %q, want unset when employee has no account", after.AssignedToID)
	}
}

func TestReturn_TwiceRejected(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "return_twice")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	a := createAsset(t, assets, fx, "SN-F1", "lt-f1")
	asg, err := assignments.Assign(ctx, AssignInput{ActivoID: a.ID, EmployeeID: fx.EmployeeID}, "tester")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := assignments.Return(ctx, asg.ID, nil, "tester"); err != nil {
		t.Fatalf("first return: %v", err)
	}

	_, err = assignments.Return(ctx, asg.ID, nil, "tester")
	assertAppCode(t, err, apperrors.CodeAlreadyReturned)
}

func TestBulkAssign_AllOrNothing(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "bulk_all_or_nothing")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	free := createAsset(t, assets, fx, "SN-G1", "lt-g1")
	taken := createAsset(t, assets, fx, "SN-G2", "lt-g2")

	other := client.Employee.Create().
		SetID(generateID()).
		SetEmployeeNumber("EMP-003").
		SetFirstName("Mario").
		SetLastName("Gomez").
		SaveX(ctx)
	if _, err := assignments.Assign(ctx, AssignInput{ActivoID: taken.ID, EmployeeID: other.ID}, "tester"); err != nil {
		t.Fatalf("pre-assign: %v", err)
	}

	_, err := assignments.BulkAssign(ctx, fx.EmployeeID, []BulkAssignItem{
		{ActivoID: free.ID},
		{ActivoID: taken.ID},
	}, "tester")
	assertAppCode(t, err, apperrors.CodeAssetAssigned)

	// Nothing from the failed batch may be persisted.
	asgs, err := assignments.List(ctx, AssignmentFilter{EmployeeID: fx.EmployeeID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(asgs) != 0 {
		t.Fatalf("assignments persisted from failed batch: %d", len(asgs))
	}
}

func TestBulkAssign_IntraBatchTypeConflict(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "bulk_intra_batch")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	one := createAsset(t, assets, fx, "SN-H1", "lt-h1")
	two := createAsset(t, assets, fx, "SN-H2", "lt-h2")

	_, err := assignments.BulkAssign(ctx, fx.EmployeeID, []BulkAssignItem{
		{ActivoID: one.ID},
		{ActivoID: two.ID}, // same tipo_activo as the first item
	}, "tester")
	assertAppCode(t, err, apperrors.CodeBulkAssignFailed)

	asgs, err := assignments.List(ctx, AssignmentFilter{EmployeeID: fx.EmployeeID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(asgs) != 0 {
		t.Fatalf("assignments persisted from failed batch: %d", len(asgs))
	}
}

func TestBulkAssign_SuccessAppliesEdits(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "bulk_success_edits")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	laptop := createAsset(t, assets, fx, "SN-I1", "lt-i1")

	monitor, err := assets.Create(ctx, CreateAssetInput{
		TipoActivoID:   fx.TipoMonitorID,
		MarcaID:        fx.MarcaID,
		ModeloID:       fx.ModeloID,
		ProveedorID:    fx.ProveedorID,
		RegionID:       fx.RegionID,
		FincaID:        fx.FincaID,
		DepartamentoID: fx.DepartamentoID,
		AreaID:         fx.AreaID,
		Serie:          "SN-I2",
		Hostname:       "mon-i2",
		FechaRegistro:  laptop.FechaRegistro,
	}, "tester")
	if err != nil {
		t.Fatalf("create monitor: %v", err)
	}

	ram := 64
	created, err := assignments.BulkAssign(ctx, fx.EmployeeID, []BulkAssignItem{
		{ActivoID: laptop.ID, Updates: &BulkItemEdits{Overrides: SpecOverrides{RAM: &ram}}},
		{ActivoID: monitor.ID},
	}, "tester")
	if err != nil {
		t.Fatalf("bulk assign: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created = %d assignments, want 2", len(created))
	}

	edited := client.Activo.GetX(ctx, laptop.ID)
	if edited.RAM == nil || *edited.RAM != 64 {
		t.Errorf("ram override = %v, want 64", edited.RAM)
	}
}

func TestAvailableAssets_ExcludesAssignedAndRetired(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "available_assets")
	fx := seedCatalog(t, client)
	assets, _, assignments := newServices(t, client)
	ctx := context.Background()

	free := createAsset(t, assets, fx, "SN-J1", "lt-j1")
	taken := createAsset(t, assets, fx, "SN-J2", "lt-j2")
	retired := createAsset(t, assets, fx, "SN-J3", "lt-j3")

	if _, err := assignments.Assign(ctx, AssignInput{ActivoID: taken.ID, EmployeeID: fx.EmployeeID}, "tester"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := assets.Retire(ctx, retired.ID, "obsoleto", "tester", nil); err != nil {
		t.Fatalf("retire: %v", err)
	}

	available, err := assignments.AvailableAssets(ctx, AssetFilter{})
	if err != nil {
		t.Fatalf("available assets: %v", err)
	}
	if len(available) != 1 || available[0].ID != free.ID {
		ids := make([]string, 0, len(available))
		for _, a := range available {
			ids = append(ids, a.ID)
		}
		t.Fatalf("available = %v, want only %s", ids, free.ID)
	}
}
