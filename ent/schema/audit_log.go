package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only trail of create/update/delete/assign/return/retire
// operations. Hard-delete is NOT allowed.
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("activity_type").
			NotEmpty().
			Immutable(), // e.g. "asset.create", "assignment.return"
		field.String("entity_type").
			NotEmpty().
			Immutable(), // e.g. "activo", "assignment", "maintenance"
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(), // User who performed the action
		field.String("description").
			Optional().
			Immutable(),
		field.JSON("old_data", map[string]interface{}{}).
			Optional(), // Snapshot before the change, reference ids replaced by names
		field.JSON("new_data", map[string]interface{}{}).
			Optional(), // Snapshot after the change
		field.String("ip_address").
			Optional().
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
