// Package teetime manages fixed-capacity tee-time groups with
// exclusive membership: a volunteer belongs to at most one group
// system-wide, and a full group rejects further additions.
//
// The member list on the group and the back-reference on the volunteer
// are maintained together through the store's conditional updates, so a
// partial failure never leaves a volunteer "in" a group that does not
// list them.
//
// Note: tee-time membership and the free-text assigned_location field
// are two independent assignment mechanisms, both kept as the
// operations team uses them today. Whether they should merge is a
// product question, not one this package answers.
package teetime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// DefaultCapacity is the standard tee-time group size when config does
// not override it
const DefaultCapacity = 3

// Manager enforces the capacity and uniqueness invariants on tee-time
// groups
type Manager struct {
	store  db.Database
	logger *zap.Logger
}

// NewManager creates a tee-time manager
func NewManager(store db.Database, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Create stores a new empty tee-time group
func (m *Manager) Create(ctx context.Context, actor db.Actor, teeNumber int, teeTime, wave, professional string, capacity int) (*db.TeeTime, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive: %w", db.ErrInvalidArgument)
	}
	t := db.TeeTime{
		ID:           db.NewTeeTimeID(),
		TeeNumber:    teeNumber,
		TeeTime:      teeTime,
		Wave:         wave,
		Professional: professional,
		Capacity:     capacity,
		CreatedAt:    time.Now().UTC(),
	}
	if err := m.store.InsertTeeTime(ctx, &t); err != nil {
		return nil, fmt.Errorf("failed to create tee time: %w", err)
	}
	m.record(ctx, actor, "create_tee_time", t.ID, "", teeTimeSnapshot(&t))
	return &t, nil
}

// List returns all tee-time groups ordered by tee number then time
func (m *Manager) List(ctx context.Context) ([]db.TeeTime, error) {
	teeTimes, err := m.store.ListTeeTimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tee times: %w", err)
	}
	return teeTimes, nil
}

// Add places a volunteer into a tee-time group. It fails with
// db.ErrNotFound for unknown ids, db.ErrAlreadyAssigned when the
// volunteer is already in any group, and db.ErrSlotFull at capacity.
// The capacity check is a compare-and-swap against the current member
// count, retried once against fresh state before giving up with
// db.ErrConflict.
func (m *Manager) Add(ctx context.Context, actor db.Actor, teeTimeID, volunteerID string) error {
	v, err := m.store.GetVolunteer(ctx, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to load volunteer: %w", err)
	}
	if v.TeeTimeID != "" {
		return fmt.Errorf("volunteer %s is in tee time %s: %w",
			volunteerID, v.TeeTimeID, db.ErrAlreadyAssigned)
	}

	if err := m.tryAppend(ctx, teeTimeID, volunteerID, true); err != nil {
		return err
	}

	// Denormalized back-reference, guarded on the ref still being unset.
	// Losing this race means another caller slotted the volunteer between
	// our check and now; undo the append and surface it.
	if err := m.store.SetVolunteerTeeTimeRef(ctx, volunteerID, "", teeTimeID); err != nil {
		if removeErr := m.store.RemoveTeeTimeMember(ctx, teeTimeID, volunteerID); removeErr != nil {
			m.logger.Error("failed to roll back tee time membership",
				zap.String("tee_time_id", teeTimeID),
				zap.String("volunteer_id", volunteerID),
				zap.Error(removeErr))
		}
		if errors.Is(err, db.ErrConflict) {
			return fmt.Errorf("volunteer %s was assigned concurrently: %w",
				volunteerID, db.ErrAlreadyAssigned)
		}
		return fmt.Errorf("failed to set tee time reference: %w", err)
	}

	m.record(ctx, actor, "add_to_tee_time", teeTimeID, "", volunteerID)
	return nil
}

// tryAppend performs the capacity-guarded append, retrying once on a
// lost compare-and-swap race
func (m *Manager) tryAppend(ctx context.Context, teeTimeID, volunteerID string, retry bool) error {
	t, err := m.store.GetTeeTime(ctx, teeTimeID)
	if err != nil {
		return fmt.Errorf("failed to load tee time: %w", err)
	}
	if len(t.MemberIDs) >= t.Capacity {
		return fmt.Errorf("tee time %s has %d/%d members: %w",
			teeTimeID, len(t.MemberIDs), t.Capacity, db.ErrSlotFull)
	}

	err = m.store.AppendTeeTimeMember(ctx, teeTimeID, volunteerID, len(t.MemberIDs))
	if err == nil {
		return nil
	}
	if errors.Is(err, db.ErrConflict) && retry {
		return m.tryAppend(ctx, teeTimeID, volunteerID, false)
	}
	if errors.Is(err, db.ErrConflict) {
		return fmt.Errorf("tee time %s changed concurrently: %w", teeTimeID, db.ErrConflict)
	}
	return fmt.Errorf("failed to append tee time member: %w", err)
}

// Remove takes a volunteer out of a tee-time group. Removing a
// volunteer who is not a member is a no-op success; the back-reference
// is cleared whenever it points at this group.
func (m *Manager) Remove(ctx context.Context, actor db.Actor, teeTimeID, volunteerID string) error {
	if _, err := m.store.GetTeeTime(ctx, teeTimeID); err != nil {
		return fmt.Errorf("failed to load tee time: %w", err)
	}

	if err := m.store.RemoveTeeTimeMember(ctx, teeTimeID, volunteerID); err != nil {
		return fmt.Errorf("failed to remove tee time member: %w", err)
	}

	// Clear the back-reference only if it still points here; a conflict
	// means the volunteer was never in this group or has moved on.
	err := m.store.SetVolunteerTeeTimeRef(ctx, volunteerID, teeTimeID, "")
	if err != nil && !errors.Is(err, db.ErrConflict) && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to clear tee time reference: %w", err)
	}

	m.record(ctx, actor, "remove_from_tee_time", teeTimeID, volunteerID, "")
	return nil
}

func (m *Manager) record(ctx context.Context, actor db.Actor, action, entityID, before, after string) {
	entry := db.AuditEntry{
		ID:         db.NewAuditID(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     action,
		EntityType: "tee_time",
		EntityID:   entityID,
		Before:     before,
		After:      after,
		CreatedAt:  time.Now().UTC(),
	}
	if err := m.store.RecordAudit(ctx, entry); err != nil {
		m.logger.Warn("failed to record audit entry",
			zap.String("action", action),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}

func teeTimeSnapshot(t *db.TeeTime) string {
	snap, _ := json.Marshal(t)
	return string(snap)
}
