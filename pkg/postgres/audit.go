package postgres

import (
	"context"
	"fmt"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// RecordAudit appends one immutable audit row
func (d *DB) RecordAudit(ctx context.Context, entry db.AuditEntry) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO audit_entry (id, actor_id, actor_name, action,
			entity_type, entity_id, before, after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, entry.ID, entry.ActorID, entry.ActorName, entry.Action,
		entry.EntityType, entry.EntityID, entry.Before, entry.After,
		entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}
