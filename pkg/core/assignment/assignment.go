// Package assignment mutates the duty-assignment fields of volunteer
// records: location, supervisor, shift list, and notes. Updates are
// allow-listed through db.FieldPatch so arbitrary document keys can
// never reach the store, and every successful operation produces one
// audit entry.
package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// Service applies single and bulk assignment updates
type Service struct {
	store  db.VolunteerStore
	audit  db.AuditRecorder
	logger *zap.Logger
}

// NewService creates an assignment service
func NewService(store db.VolunteerStore, audit db.AuditRecorder, logger *zap.Logger) *Service {
	return &Service{store: store, audit: audit, logger: logger}
}

// BulkResult reports the outcome of a bulk assignment. Updated may be
// less than the number of requested ids: unknown ids are skipped, not
// failures.
type BulkResult struct {
	Requested int `json:"requested"`
	Updated   int `json:"assigned_count"`
}

// Assign applies a partial field patch to one volunteer. Only the
// supplied fields change. Returns db.ErrNotFound for unknown ids and
// db.ErrInvalidArgument for an empty patch.
func (s *Service) Assign(ctx context.Context, actor db.Actor, volunteerID string, patch db.FieldPatch) error {
	if volunteerID == "" {
		return fmt.Errorf("volunteer id is required: %w", db.ErrInvalidArgument)
	}
	if patch.Empty() {
		return fmt.Errorf("no assignment fields supplied: %w", db.ErrInvalidArgument)
	}

	before, err := s.store.GetVolunteer(ctx, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to load volunteer: %w", err)
	}

	if err := s.store.UpdateVolunteerFields(ctx, volunteerID, patch); err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}

	after := *before
	patch.Apply(&after)
	s.record(ctx, actor, "assign", "volunteer", volunteerID,
		assignmentSnapshot(before), assignmentSnapshot(&after))
	return nil
}

// BulkAssign applies the same field patch to every listed volunteer.
// The operation is not all-or-nothing: ids that do not exist are
// skipped and the result reports how many records actually changed.
// One audit entry summarizes the whole batch.
func (s *Service) BulkAssign(ctx context.Context, actor db.Actor, volunteerIDs []string, patch db.FieldPatch) (*BulkResult, error) {
	if len(volunteerIDs) == 0 {
		return nil, fmt.Errorf("no volunteers selected: %w", db.ErrInvalidArgument)
	}
	if patch.Empty() {
		return nil, fmt.Errorf("no assignment fields supplied: %w", db.ErrInvalidArgument)
	}

	updated, err := s.store.UpdateVolunteerFieldsMany(ctx, volunteerIDs, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk update volunteers: %w", err)
	}

	summary, _ := json.Marshal(map[string]any{
		"requested": len(volunteerIDs),
		"updated":   updated,
		"fields":    patchSummary(patch),
	})
	s.record(ctx, actor, "bulk_assign", "volunteer", "", "", string(summary))

	return &BulkResult{Requested: len(volunteerIDs), Updated: updated}, nil
}

// record writes an audit entry, logging and swallowing failures so a
// broken recorder never rolls back a completed mutation
func (s *Service) record(ctx context.Context, actor db.Actor, action, entityType, entityID, before, after string) {
	entry := db.AuditEntry{
		ID:         db.NewAuditID(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Before:     before,
		After:      after,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.RecordAudit(ctx, entry); err != nil {
		s.logger.Warn("failed to record audit entry",
			zap.String("action", action),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}

// assignmentSnapshot captures only the assignment fields for the audit
// before/after values
func assignmentSnapshot(v *db.Volunteer) string {
	snap, _ := json.Marshal(map[string]any{
		"assigned_location":   v.AssignedLocation,
		"assigned_supervisor": v.AssignedSupervisor,
		"assigned_shifts":     v.AssignedShifts,
		"notes":               v.Notes,
	})
	return string(snap)
}

// patchSummary renders the set members of a patch for the batch audit
// entry
func patchSummary(patch db.FieldPatch) map[string]any {
	fields := make(map[string]any)
	if patch.AssignedLocation != nil {
		fields["assigned_location"] = *patch.AssignedLocation
	}
	if patch.AssignedSupervisor != nil {
		fields["assigned_supervisor"] = *patch.AssignedSupervisor
	}
	if patch.AssignedShifts != nil {
		fields["assigned_shifts"] = *patch.AssignedShifts
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}
	return fields
}
