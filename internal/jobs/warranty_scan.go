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

// DefaultWarrantyDays is the look-ahead window for the warranty scan.
const DefaultWarrantyDays = 30

// WarrantyScanArgs is a periodic job that raises an alert for every
// active asset whose warranty ends inside the window.
type WarrantyScanArgs struct{}

// Kind returns the job kind identifier for the warranty expiry scan.
func (WarrantyScanArgs) Kind() string { return "warranty_scan" }

// InsertOpts ensures at most one scan is enqueued within the same day.
func (WarrantyScanArgs) InsertOpts() river.InsertOpts {
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

// WarrantyScanWorker raises warranty_expiry notifications.
type WarrantyScanWorker struct {
	river.WorkerDefaults[WarrantyScanArgs]
	dashboardSvc    *service.DashboardService
	notificationSvc *service.NotificationService
	warrantyDays    int
}

// NewWarrantyScanWorker creates a scan worker. Non-positive windows
// fall back to the default.
func NewWarrantyScanWorker(dashboardSvc *service.DashboardService, notificationSvc *service.NotificationService, warrantyDays int) *WarrantyScanWorker {
	if warrantyDays <= 0 {
		warrantyDays = DefaultWarrantyDays
	}
	return &WarrantyScanWorker{
		dashboardSvc:    dashboardSvc,
		notificationSvc: notificationSvc,
		warrantyDays:    warrantyDays,
	}
}

// Work raises one notification per expiring warranty.
func (w *WarrantyScanWorker) Work(ctx context.Context, _ *river.Job[WarrantyScanArgs]) error {
	if w == nil || w.dashboardSvc == nil {
		return fmt.Errorf("warranty scan worker is not initialized")
	}

	expiring, err := w.dashboardSvc.WarrantyExpiring(ctx, w.warrantyDays)
	if err != nil {
		return fmt.Errorf("scan expiring warranties: %w", err)
	}

	raised := 0
	for _, a := range expiring {
		if a.FechaFinGarantia == nil {
			continue
		}
		msg := fmt.Sprintf("warranty for %s (%s) expires on %s",
			a.Hostname, a.Serie, a.FechaFinGarantia.Format("2006-01-02"))
		if err := w.notificationSvc.Raise(ctx, notification.KindWarrantyExpiry, a.ID, *a.FechaFinGarantia, msg); err != nil {
			return err
		}
		raised++
	}

	logger.Info("warranty scan completed",
		zap.Int("expiring_assets", len(expiring)),
		zap.Int("notifications_raised", raised),
		zap.Int("window_days", w.warrantyDays),
	)
	return nil
}
