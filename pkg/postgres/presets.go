package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

const presetColumns = `id, name, description, filters, created_at`

func scanPreset(row pgx.Row) (*db.Preset, error) {
	var p db.Preset
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Filters, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPresets returns all saved presets ordered by creation time
func (d *DB) ListPresets(ctx context.Context) ([]db.Preset, error) {
	rows, err := d.pool.Query(ctx,
		"SELECT "+presetColumns+" FROM query_preset ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query presets: %w", err)
	}
	defer rows.Close()

	var presets []db.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		presets = append(presets, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating presets: %w", err)
	}
	return presets, nil
}

// InsertPreset stores a new saved query preset
func (d *DB) InsertPreset(ctx context.Context, p *db.Preset) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO query_preset (`+presetColumns+`)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Name, p.Description, p.Filters, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert preset: %w", err)
	}
	return nil
}

// DeletePreset removes the preset with the given id
func (d *DB) DeletePreset(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, "DELETE FROM query_preset WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("preset %s: %w", id, db.ErrNotFound)
	}
	return nil
}
