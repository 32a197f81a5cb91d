// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
// Every state-changing operation writes one entry in the same transaction
// as the change itself, with before/after snapshots.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/internal/pkg/logger"
)

// Entry describes one auditable action.
type Entry struct {
	// ActivityType names the operation, e.g. "asset.create",
	// "assignment.return", "asset.retire".
	ActivityType string
	EntityType   string
	EntityID     string
	// UserID is the authenticated actor.
	UserID      string
	Description string
	// OldData and NewData are snapshots with reference ids replaced by
	// display names, so the trail stays readable after catalog edits.
	OldData   map[string]interface{}
	NewData   map[string]interface{}
	IPAddress string
}

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// Record writes an audit entry using the Logger's own client.
func (l *Logger) Record(ctx context.Context, e Entry) error {
	return record(ctx, l.client, e)
}

// RecordTx writes an audit entry inside an open transaction, so the
// entry commits or rolls back together with the change it describes.
func (l *Logger) RecordTx(ctx context.Context, tx *ent.Tx, e Entry) error {
	return record(ctx, tx.Client(), e)
}

func record(ctx context.Context, client *ent.Client, e Entry) error {
	create := client.AuditLog.Create().
		SetID(generateAuditID()).
		SetActivityType(e.ActivityType).
		SetEntityType(e.EntityType).
		SetEntityID(e.EntityID).
		SetUserID(e.UserID).
		SetDescription(e.Description)
	if e.OldData != nil {
		create.SetOldData(e.OldData)
	}
	if e.NewData != nil {
		create.SetNewData(e.NewData)
	}
	if e.IPAddress != "" {
		create.SetIPAddress(e.IPAddress)
	}

	if _, err := create.Save(ctx); err != nil {
		logger.Error("Failed to write audit log",
			zap.String("activity_type", e.ActivityType),
			zap.String("entity_type", e.EntityType),
			zap.String("entity_id", e.EntityID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
