package memdb

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// ListTeeTimes returns all tee times ordered by tee number then time
func (d *DB) ListTeeTimes(ctx context.Context) ([]db.TeeTime, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]db.TeeTime, 0, len(d.teeTimes))
	for _, t := range d.teeTimes {
		out = append(out, *cloneTeeTime(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeeNumber != out[j].TeeNumber {
			return out[i].TeeNumber < out[j].TeeNumber
		}
		return out[i].TeeTime < out[j].TeeTime
	})
	return out, nil
}

// GetTeeTime returns a copy of the tee time with the given id
func (d *DB) GetTeeTime(ctx context.Context, id string) (*db.TeeTime, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.teeTimes[id]
	if !ok {
		return nil, fmt.Errorf("tee time %s: %w", id, db.ErrNotFound)
	}
	return cloneTeeTime(t), nil
}

// InsertTeeTime stores a new tee-time group
func (d *DB) InsertTeeTime(ctx context.Context, t *db.TeeTime) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.teeTimes[t.ID]; ok {
		return fmt.Errorf("tee time %s: %w", t.ID, db.ErrAlreadyExists)
	}
	d.teeTimes[t.ID] = cloneTeeTime(t)
	return nil
}

// AppendTeeTimeMember appends a volunteer guarded by the expected
// current member count
func (d *DB) AppendTeeTimeMember(ctx context.Context, id, volunteerID string, expectedLen int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.teeTimes[id]
	if !ok {
		return fmt.Errorf("tee time %s: %w", id, db.ErrNotFound)
	}
	if len(t.MemberIDs) != expectedLen {
		return fmt.Errorf("tee time %s has %d members, expected %d: %w",
			id, len(t.MemberIDs), expectedLen, db.ErrConflict)
	}
	t.MemberIDs = append(t.MemberIDs, volunteerID)
	return nil
}

// RemoveTeeTimeMember removes a volunteer from the member list; absent
// members are a no-op
func (d *DB) RemoveTeeTimeMember(ctx context.Context, id, volunteerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.teeTimes[id]
	if !ok {
		return fmt.Errorf("tee time %s: %w", id, db.ErrNotFound)
	}
	idx := slices.Index(t.MemberIDs, volunteerID)
	if idx < 0 {
		return nil
	}
	t.MemberIDs = slices.Delete(t.MemberIDs, idx, idx+1)
	return nil
}
