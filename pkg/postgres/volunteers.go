package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

const volunteerColumns = `id, first_name, last_name, email, phone, nationality,
	identification_number, golf_club, role, status, volunteered_before,
	availability_thursday, availability_friday, availability_saturday,
	availability_sunday, assigned_location, assigned_supervisor,
	assigned_shifts, notes, tee_time_id, photo_attached, consent_given,
	created_at, updated_at`

func scanVolunteer(row pgx.Row) (*db.Volunteer, error) {
	var v db.Volunteer
	err := row.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
		&v.Nationality, &v.IdentificationNumber, &v.GolfClub, &v.Role,
		&v.Status, &v.VolunteeredBefore, &v.AvailabilityThursday,
		&v.AvailabilityFriday, &v.AvailabilitySaturday, &v.AvailabilitySunday,
		&v.AssignedLocation, &v.AssignedSupervisor, &v.AssignedShifts,
		&v.Notes, &v.TeeTimeID, &v.PhotoAttached, &v.ConsentGiven,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindVolunteers returns all volunteers matching the filter
func (d *DB) FindVolunteers(ctx context.Context, filter db.VolunteerFilter) ([]db.Volunteer, error) {
	var conditions []string
	var args []any

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Role != "" {
		addCondition("role = $%d", filter.Role)
	}
	if filter.Status != "" {
		addCondition("status = $%d", filter.Status)
	}
	if filter.VolunteeredBefore != nil {
		addCondition("volunteered_before = $%d", *filter.VolunteeredBefore)
	}
	if filter.AssignedLocation != nil {
		addCondition("assigned_location = $%d", *filter.AssignedLocation)
	}
	if filter.UnassignedOnly {
		conditions = append(conditions, "assigned_location = ''")
	}

	query := "SELECT " + volunteerColumns + " FROM volunteer"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []db.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}
	return volunteers, nil
}

// GetVolunteer returns the volunteer with the given id
func (d *DB) GetVolunteer(ctx context.Context, id string) (*db.Volunteer, error) {
	row := d.pool.QueryRow(ctx,
		"SELECT "+volunteerColumns+" FROM volunteer WHERE id = $1", id)
	v, err := scanVolunteer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	return v, nil
}

// FindVolunteerByEmail returns the volunteer registered with the email
func (d *DB) FindVolunteerByEmail(ctx context.Context, email string) (*db.Volunteer, error) {
	row := d.pool.QueryRow(ctx,
		"SELECT "+volunteerColumns+" FROM volunteer WHERE LOWER(email) = LOWER($1)", email)
	v, err := scanVolunteer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("volunteer email %s: %w", email, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find volunteer by email: %w", err)
	}
	return v, nil
}

// InsertVolunteer stores a new volunteer record
func (d *DB) InsertVolunteer(ctx context.Context, v *db.Volunteer) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO volunteer (`+volunteerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`, v.ID, v.FirstName, v.LastName, v.Email, v.Phone, v.Nationality,
		v.IdentificationNumber, v.GolfClub, v.Role, v.Status,
		v.VolunteeredBefore, v.AvailabilityThursday, v.AvailabilityFriday,
		v.AvailabilitySaturday, v.AvailabilitySunday, v.AssignedLocation,
		v.AssignedSupervisor, v.AssignedShifts, v.Notes, v.TeeTimeID,
		v.PhotoAttached, v.ConsentGiven, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert volunteer: %w", err)
	}
	return nil
}

// buildPatch renders the set members of a field patch into SET clauses
func buildPatch(patch db.FieldPatch) ([]string, []any) {
	var sets []string
	var args []any

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.AssignedLocation != nil {
		addSet("assigned_location", *patch.AssignedLocation)
	}
	if patch.AssignedSupervisor != nil {
		addSet("assigned_supervisor", *patch.AssignedSupervisor)
	}
	if patch.AssignedShifts != nil {
		addSet("assigned_shifts", *patch.AssignedShifts)
	}
	if patch.Notes != nil {
		addSet("notes", *patch.Notes)
	}
	sets = append(sets, "updated_at = NOW()")
	return sets, args
}

// UpdateVolunteerFields applies a partial field patch to one volunteer
func (d *DB) UpdateVolunteerFields(ctx context.Context, id string, patch db.FieldPatch) error {
	sets, args := buildPatch(patch)
	args = append(args, id)

	tag, err := d.pool.Exec(ctx, fmt.Sprintf(
		"UPDATE volunteer SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args)), args...)
	if err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// UpdateVolunteerFieldsMany applies the same patch to every listed id
// and returns the number of rows updated; unknown ids are skipped
func (d *DB) UpdateVolunteerFieldsMany(ctx context.Context, ids []string, patch db.FieldPatch) (int, error) {
	sets, args := buildPatch(patch)
	args = append(args, ids)

	tag, err := d.pool.Exec(ctx, fmt.Sprintf(
		"UPDATE volunteer SET %s WHERE id = ANY($%d)",
		strings.Join(sets, ", "), len(args)), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update volunteers: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// SetVolunteerStatus updates the review status of one volunteer
func (d *DB) SetVolunteerStatus(ctx context.Context, id string, status string) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE volunteer SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
	}
	return nil
}

// SetVolunteerTeeTimeRef conditionally updates the tee-time
// back-reference; the WHERE guard on the current value is the
// compare-and-swap
func (d *DB) SetVolunteerTeeTimeRef(ctx context.Context, id, expected, teeTimeID string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE volunteer SET tee_time_id = $1, updated_at = NOW()
		WHERE id = $2 AND tee_time_id = $3
	`, teeTimeID, id, expected)
	if err != nil {
		return fmt.Errorf("failed to set tee time ref: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing row from a lost race
		var exists bool
		if err := d.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM volunteer WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check volunteer existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("volunteer %s: %w", id, db.ErrNotFound)
		}
		return fmt.Errorf("volunteer %s tee time ref changed: %w", id, db.ErrConflict)
	}
	return nil
}
