package memdb

import (
	"context"
	"time"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// RecordAudit appends an audit entry
func (d *DB) RecordAudit(ctx context.Context, entry db.AuditEntry) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if entry.ID == "" {
		entry.ID = db.NewAuditID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	d.audits = append(d.audits, entry)
	return nil
}

// AuditEntries returns a copy of all recorded audit entries, oldest
// first. Test helper; the production recorder is append-only.
func (d *DB) AuditEntries() []db.AuditEntry {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]db.AuditEntry(nil), d.audits...)
}
