package memdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// FindVolunteers returns copies of all volunteers matching the filter
func (d *DB) FindVolunteers(ctx context.Context, filter db.VolunteerFilter) ([]db.Volunteer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []db.Volunteer
	for _, v := range d.volunteers {
		if filter.Matches(v) {
			out = append(out, *cloneVolunteer(v))
		}
	}
	return out, nil
}

// GetVolunteer returns a copy of the volunteer with the given id
func (d *DB) GetVolunteer(ctx context.Context, id string) (*db.Volunteer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.volunteers[id]
	if !ok {
		return nil, fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
	}
	return cloneVolunteer(v), nil
}

// FindVolunteerByEmail returns the volunteer registered with the email
func (d *DB) FindVolunteerByEmail(ctx context.Context, email string) (*db.Volunteer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, v := range d.volunteers {
		if strings.ToLower(v.Email) == needle {
			return cloneVolunteer(v), nil
		}
	}
	return nil, fmt.Errorf("volunteer email %s: %w", email, db.ErrNotFound)
}

// InsertVolunteer stores a new volunteer record
func (d *DB) InsertVolunteer(ctx context.Context, v *db.Volunteer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.volunteers[v.ID]; ok {
		return fmt.Errorf("volunteer %s: %w", v.ID, db.ErrAlreadyExists)
	}
	d.volunteers[v.ID] = cloneVolunteer(v)
	return nil
}

// UpdateVolunteerFields applies a partial field patch to one volunteer
func (d *DB) UpdateVolunteerFields(ctx context.Context, id string, patch db.FieldPatch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.volunteers[id]
	if !ok {
		return fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
	}
	patch.Apply(v)
	v.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateVolunteerFieldsMany applies the same patch to every listed id,
// skipping unknown ids, and returns the number updated
func (d *DB) UpdateVolunteerFieldsMany(ctx context.Context, ids []string, patch db.FieldPatch) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	updated := 0
	now := time.Now().UTC()
	for _, id := range ids {
		v, ok := d.volunteers[id]
		if !ok {
			continue
		}
		patch.Apply(v)
		v.UpdatedAt = now
		updated++
	}
	return updated, nil
}

// SetVolunteerStatus updates the review status of one volunteer
func (d *DB) SetVolunteerStatus(ctx context.Context, id string, status string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.volunteers[id]
	if !ok {
		return fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
	}
	v.Status = status
	v.UpdatedAt = time.Now().UTC()
	return nil
}

// SetVolunteerTeeTimeRef conditionally updates the tee-time
// back-reference, succeeding only when the stored reference matches
// expected
func (d *DB) SetVolunteerTeeTimeRef(ctx context.Context, id, expected, teeTimeID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.volunteers[id]
	if !ok {
		return fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
	}
	if v.TeeTimeID != expected {
		return fmt.Errorf("volunteer %s tee time ref is %q, expected %q: %w",
			id, v.TeeTimeID, expected, db.ErrConflict)
	}
	v.TeeTimeID = teeTimeID
	v.UpdatedAt = time.Now().UTC()
	return nil
}
