package service

import (
	"context"
	"testing"
	"time"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/internal/docstore"
	"fincatech.io/itam/internal/governance/audit"
	"fincatech.io/itam/internal/pkg/logger"
	"fincatech.io/itam/internal/pkg/worker"
	"fincatech.io/itam/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// catalogFixture holds the IDs of a minimal catalog chain.
type catalogFixture struct {
	RegionID       string
	FincaID        string
	DepartamentoID string
	AreaID         string
	TipoLaptopID   string
	TipoMonitorID  string
	MarcaID        string
	ModeloID       string
	ProveedorID    string
	EmployeeID     string
	TechnicianID   string
}

func seedCatalog(t *testing.T, client *ent.Client) catalogFixture {
	t.Helper()
	ctx := context.Background()

	fx := catalogFixture{
		RegionID:       generateID(),
		FincaID:        generateID(),
		DepartamentoID: generateID(),
		AreaID:         generateID(),
		TipoLaptopID:   generateID(),
		TipoMonitorID:  generateID(),
		MarcaID:        generateID(),
		ModeloID:       generateID(),
		ProveedorID:    generateID(),
		EmployeeID:     generateID(),
		TechnicianID:   generateID(),
	}

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}

	must(client.Region.Create().SetID(fx.RegionID).SetName("Norte").Exec(ctx))
	must(client.Finca.Create().SetID(fx.FincaID).SetName("Finca Uno").SetRegionID(fx.RegionID).Exec(ctx))
	must(client.Departamento.Create().SetID(fx.DepartamentoID).SetName("TI").Exec(ctx))
	must(client.Area.Create().SetID(fx.AreaID).SetName("Infraestructura").SetDepartamentoID(fx.DepartamentoID).Exec(ctx))
	must(client.TipoActivo.Create().SetID(fx.TipoLaptopID).SetName("Laptop").Exec(ctx))
	must(client.TipoActivo.Create().SetID(fx.TipoMonitorID).SetName("Monitor").Exec(ctx))
	must(client.Marca.Create().SetID(fx.MarcaID).SetName("Dell").Exec(ctx))
	must(client.ModeloActivo.Create().
		SetID(fx.ModeloID).
		SetName("Latitude 5440").
		SetMarcaID(fx.MarcaID).
		SetTipoActivoID(fx.TipoLaptopID).
		SetProcesador("Intel i5-1345U").
		SetRAM(16).
		SetAlmacenamiento("512GB SSD").
		SetWifi(true).
		SetEthernet(true).
		Exec(ctx))
	must(client.Proveedor.Create().SetID(fx.ProveedorID).SetNombreEmpresa("Proveedor SA").SetNit("12345-6").Exec(ctx))
	must(client.Employee.Create().
		SetID(fx.EmployeeID).
		SetEmployeeNumber("EMP-001").
		SetFirstName("Ana").
		SetLastName("Lopez").
		Exec(ctx))
	must(client.User.Create().
		SetID(fx.TechnicianID).
		SetUsername("tecnico1").
		SetEmail("tecnico1@example.com").
		Exec(ctx))

	return fx
}

// newServices wires the service layer against a test client.
func newServices(t *testing.T, client *ent.Client) (*AssetService, *MaintenanceService, *AssignmentService) {
	t.Helper()

	docs, err := docstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("init docstore: %v", err)
	}

	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize: 4,
		StoragePoolSize: 2,
	})
	if err != nil {
		t.Fatalf("init pools: %v", err)
	}
	t.Cleanup(pools.Shutdown)

	auditLogger := audit.NewLogger(client)
	assets := NewAssetService(client, docs, auditLogger, pools)
	maintenance := NewMaintenanceService(client, assets, auditLogger)
	assignments := NewAssignmentService(client, assets, auditLogger)
	return assets, maintenance, assignments
}

// createAsset registers an asset via the service so defaults and audit
// run the same path production does.
func createAsset(t *testing.T, assets *AssetService, fx catalogFixture, serie, hostname string) *ent.Activo {
	t.Helper()

	a, err := assets.Create(context.Background(), CreateAssetInput{
		TipoActivoID:   fx.TipoLaptopID,
		MarcaID:        fx.MarcaID,
		ModeloID:       fx.ModeloID,
		ProveedorID:    fx.ProveedorID,
		RegionID:       fx.RegionID,
		FincaID:        fx.FincaID,
		DepartamentoID: fx.DepartamentoID,
		AreaID:         fx.AreaID,
		Serie:          serie,
		Hostname:       hostname,
		FechaRegistro:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}, "tester")
	if err != nil {
		t.Fatalf("create asset %s: %v", serie, err)
	}
	return a
}

func openTestClient(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	return testutil.OpenEntPostgres(t, prefix)
}
