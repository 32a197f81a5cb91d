// Package jobs defines River Queue job types for async processing.
//
// The scans are periodic and idempotent: each run re-derives the due
// set from the asset ledger and relies on the notification uniqueness
// key to avoid duplicate alerts.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"fincatech.io/itam/ent/notification"
	"fincatech.io/itam/internal/pkg/logger"
	"fincatech.io/itam/internal/service"
)

// DefaultDueSoonDays is the look-ahead window for the maintenance scan.
const DefaultDueSoonDays = 15

// MaintenanceDueScanArgs is a periodic job that raises an alert for
// every active asset whose next maintenance falls inside the window.
type MaintenanceDueScanArgs struct{}

// Kind returns the job kind identifier for the maintenance due scan.
func (MaintenanceDueScanArgs) Kind() string { return "maintenance_due_scan" }

// InsertOpts ensures at most one scan is enqueued within the same day.
func (MaintenanceDueScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// MaintenanceDueScanWorker walks the asset ledger's maintenance cache
// and raises maintenance_due notifications.
type MaintenanceDueScanWorker struct {
	river.WorkerDefaults[MaintenanceDueScanArgs]
	maintenanceSvc  *service.MaintenanceService
	notificationSvc *service.NotificationService
	dueSoonDays     int
}

// NewMaintenanceDueScanWorker creates a scan worker. Non-positive
// windows fall back to the default.
func NewMaintenanceDueScanWorker(maintenanceSvc *service.MaintenanceService, notificationSvc *service.NotificationService, dueSoonDays int) *MaintenanceDueScanWorker {
	if dueSoonDays <= 0 {
		dueSoonDays = DefaultDueSoonDays
	}
	return &MaintenanceDueScanWorker{
		maintenanceSvc:  maintenanceSvc,
		notificationSvc: notificationSvc,
		dueSoonDays:     dueSoonDays,
	}
}

// Work raises one notification per due asset.
func (w *MaintenanceDueScanWorker) Work(ctx context.Context, _ *river.Job[MaintenanceDueScanArgs]) error {
	if w == nil || w.maintenanceSvc == nil {
		return fmt.Errorf("maintenance due scan worker is not initialized")
	}

	cutoff := time.Now().AddDate(0, 0, w.dueSoonDays)
	due, err := w.maintenanceSvc.DueBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("scan due maintenances before %s: %w", cutoff.Format("2006-01-02"), err)
	}

	raised := 0
	for _, a := range due {
		if a.ProximoMantenimiento == nil {
			continue
		}
		msg := fmt.Sprintf("maintenance for %s (%s) is due on %s",
			a.Hostname, a.Serie, a.ProximoMantenimiento.Format("2006-01-02"))
		if err := w.notificationSvc.Raise(ctx, notification.KindMaintenanceDue, a.ID, *a.ProximoMantenimiento, msg); err != nil {
			return err
		}
		raised++
	}

	logger.Info("maintenance due scan completed",
		zap.Int("due_assets", len(due)),
		zap.Int("notifications_raised", raised),
		zap.String("cutoff", cutoff.Format("2006-01-02")),
	)
	return nil
}
