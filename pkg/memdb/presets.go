package memdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// ListPresets returns all presets ordered by creation time then id
func (d *DB) ListPresets(ctx context.Context) ([]db.Preset, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]db.Preset, 0, len(d.presets))
	for _, p := range d.presets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// InsertPreset stores a new preset. Names are not unique; only ids are.
func (d *DB) InsertPreset(ctx context.Context, p *db.Preset) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.presets[p.ID]; ok {
		return fmt.Errorf("preset %s: %w", p.ID, db.ErrAlreadyExists)
	}
	c := *p
	d.presets[p.ID] = &c
	return nil
}

// DeletePreset removes the preset with the given id
func (d *DB) DeletePreset(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.presets[id]; !ok {
		return fmt.Errorf("preset %s: %w", id, db.ErrNotFound)
	}
	delete(d.presets, id)
	return nil
}
