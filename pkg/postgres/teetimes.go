package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

const teeTimeColumns = `id, tee_number, tee_time, wave, professional,
	capacity, member_ids, created_at`

func scanTeeTime(row pgx.Row) (*db.TeeTime, error) {
	var t db.TeeTime
	err := row.Scan(&t.ID, &t.TeeNumber, &t.TeeTime, &t.Wave,
		&t.Professional, &t.Capacity, &t.MemberIDs, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTeeTimes returns all tee times ordered by tee number then time
func (d *DB) ListTeeTimes(ctx context.Context) ([]db.TeeTime, error) {
	rows, err := d.pool.Query(ctx,
		"SELECT "+teeTimeColumns+" FROM tee_time ORDER BY tee_number, tee_time")
	if err != nil {
		return nil, fmt.Errorf("failed to query tee times: %w", err)
	}
	defer rows.Close()

	var teeTimes []db.TeeTime
	for rows.Next() {
		t, err := scanTeeTime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tee time: %w", err)
		}
		teeTimes = append(teeTimes, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tee times: %w", err)
	}
	return teeTimes, nil
}

// GetTeeTime returns the tee time with the given id
func (d *DB) GetTeeTime(ctx context.Context, id string) (*db.TeeTime, error) {
	row := d.pool.QueryRow(ctx,
		"SELECT "+teeTimeColumns+" FROM tee_time WHERE id = $1", id)
	t, err := scanTeeTime(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tee time %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tee time: %w", err)
	}
	return t, nil
}

// InsertTeeTime stores a new tee-time group
func (d *DB) InsertTeeTime(ctx context.Context, t *db.TeeTime) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO tee_time (`+teeTimeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.ID, t.TeeNumber, t.TeeTime, t.Wave, t.Professional,
		t.Capacity, t.MemberIDs, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert tee time: %w", err)
	}
	return nil
}

// AppendTeeTimeMember appends a volunteer guarded by the expected
// current member count; the cardinality guard in the WHERE clause is
// the compare-and-swap
func (d *DB) AppendTeeTimeMember(ctx context.Context, id, volunteerID string, expectedLen int) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE tee_time SET member_ids = array_append(member_ids, $1)
		WHERE id = $2 AND cardinality(member_ids) = $3
	`, volunteerID, id, expectedLen)
	if err != nil {
		return fmt.Errorf("failed to append tee time member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := d.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM tee_time WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check tee time existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("tee time %s: %w", id, db.ErrNotFound)
		}
		return fmt.Errorf("tee time %s member count changed: %w", id, db.ErrConflict)
	}
	return nil
}

// RemoveTeeTimeMember removes a volunteer from the member list; absent
// members are a no-op
func (d *DB) RemoveTeeTimeMember(ctx context.Context, id, volunteerID string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE tee_time SET member_ids = array_remove(member_ids, $1)
		WHERE id = $2
	`, volunteerID, id)
	if err != nil {
		return fmt.Errorf("failed to remove tee time member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tee time %s: %w", id, db.ErrNotFound)
	}
	return nil
}
