package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/notification"
	apperrors "fincatech.io/itam/internal/pkg/errors"
	"fincatech.io/itam/internal/pkg/logger"
)

// NotificationService owns the operational alerts raised by the
// background scans. Creation is idempotent on (kind, asset, due date),
// so a scan can run repeatedly without duplicating alerts.
type NotificationService struct {
	client *ent.Client
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Raise creates a notification unless the same (kind, asset, due date)
// alert already exists.
func (s *NotificationService) Raise(ctx context.Context, kind notification.Kind, activoID string, dueDate time.Time, message string) error {
	err := s.client.Notification.Create().
		SetID(generateID()).
		SetKind(kind).
		SetActivoID(activoID).
		SetDueDate(dueDate).
		SetMessage(message).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil // already raised by a previous scan
		}
		return fmt.Errorf("raise notification: %w", err)
	}
	logger.Debug("Notification raised",
		zap.String("kind", string(kind)),
		zap.String("activo_id", activoID),
	)
	return nil
}

// List returns notifications, unread first then newest.
func (s *NotificationService) List(ctx context.Context, unreadOnly bool, limit int) ([]*ent.Notification, error) {
	q := s.client.Notification.Query()
	if unreadOnly {
		q = q.Where(notification.ReadEQ(false))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	notifications, err := q.
		Order(ent.Asc(notification.FieldRead), ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	err := s.client.Notification.UpdateOneID(id).
		SetRead(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeCatalogNotFound, "notification not found")
		}
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// DeleteReadBefore removes read notifications older than the cutoff.
// Called by the retention job.
func (s *NotificationService) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Notification.Delete().
		Where(
			notification.ReadEQ(true),
			notification.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return n, nil
}
