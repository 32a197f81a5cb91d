// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"fincatech.io/itam/internal/api/handlers"
	"fincatech.io/itam/internal/api/middleware"
	"fincatech.io/itam/internal/config"
	"fincatech.io/itam/internal/docstore"
	"fincatech.io/itam/internal/governance/audit"
	"fincatech.io/itam/internal/infrastructure"
	"fincatech.io/itam/internal/jobs"
	"fincatech.io/itam/internal/pkg/worker"
	"fincatech.io/itam/internal/service"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	docs, err := docstore.New(cfg.Storage.Root)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init document store: %w", err)
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		StoragePoolSize: cfg.Worker.StoragePoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	auditLogger := audit.NewLogger(db.EntClient)

	assetSvc := service.NewAssetService(db.EntClient, docs, auditLogger, pools)
	maintenanceSvc := service.NewMaintenanceService(db.EntClient, assetSvc, auditLogger)
	assignmentSvc := service.NewAssignmentService(db.EntClient, assetSvc, auditLogger)
	directorySvc := service.NewDirectoryService(db.EntClient, auditLogger)
	catalogSvc := service.NewCatalogService(db.EntClient, auditLogger)
	dashboardSvc := service.NewDashboardService(db.EntClient)
	reportSvc := service.NewReportService(db.EntClient, assetSvc)
	notificationSvc := service.NewNotificationService(db.EntClient)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewMaintenanceDueScanWorker(maintenanceSvc, notificationSvc, cfg.Maintenance.DueSoonDays))
	river.AddWorker(workers, jobs.NewWarrantyScanWorker(dashboardSvc, notificationSvc, cfg.Maintenance.WarrantyDays))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(notificationSvc, cfg.Maintenance.NotificationRetention))

	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}

	// Daily scans raise maintenance-due and warranty-expiry notifications;
	// cleanup keeps the read inbox bounded. All run once on startup so a
	// freshly provisioned instance is current immediately.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.MaintenanceDueScanArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.WarrantyScanArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	jwtCfg := middleware.JWTConfig{
		SigningKey:       []byte(cfg.Security.SessionSecret),
		VerificationKeys: verificationKeys(cfg.Security.JWTVerificationKeys),
		Issuer:           "itam",
		ExpiresIn:        cfg.Security.TokenExpiry,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:     db.EntClient,
		Pool:          db.Pool,
		JWTCfg:        jwtCfg,
		Audit:         auditLogger,
		Docs:          docs,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
		MaintCfg:      cfg.Maintenance,
		Assets:        assetSvc,
		Maintenance:   maintenanceSvc,
		Assignments:   assignmentSvc,
		Directory:     directorySvc,
		Catalog:       catalogSvc,
		Dashboard:     dashboardSvc,
		Reports:       reportSvc,
		Notifications: notificationSvc,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg),
		DB:     db,
		Pools:  pools,
	}, nil
}

func verificationKeys(keys []string) [][]byte {
	out := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		out = append(out, []byte(k))
	}
	return out
}
