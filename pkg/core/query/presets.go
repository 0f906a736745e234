package query

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// SeedPreset defines a preset inserted the first time an empty store is
// listed
type SeedPreset struct {
	Name        string
	Description string
	Predicate   Predicate
}

// DefaultSeedPresets are the bootstrap presets for a fresh deployment
func DefaultSeedPresets() []SeedPreset {
	boolTrue := true
	return []SeedPreset{
		{
			Name:        "Approved Marshals",
			Description: "All approved marshals",
			Predicate:   Predicate{Role: db.RoleMarshal, Status: db.StatusApproved},
		},
		{
			Name:        "Unassigned Approved",
			Description: "Approved volunteers without a duty location",
			Predicate:   Predicate{Status: db.StatusApproved, UnassignedOnly: true},
		},
		{
			Name:        "Karen Members",
			Description: "Volunteers affiliated with the host club",
			Predicate:   Predicate{KarenMember: &boolTrue},
		},
		{
			Name:        "Weekend Availability",
			Description: "Volunteers available Saturday or Sunday",
			Predicate:   Predicate{Days: []string{"saturday", "sunday"}},
		},
	}
}

// PresetService manages saved query predicates. Names are deliberately
// not unique; presets are addressed and deleted by id.
type PresetService struct {
	store  db.PresetStore
	logger *zap.Logger

	seedOnce sync.Once
	seeds    []SeedPreset
}

// NewPresetService creates a preset service seeding the given presets
// on first empty listing. A nil seed slice uses DefaultSeedPresets.
func NewPresetService(store db.PresetStore, logger *zap.Logger, seeds []SeedPreset) *PresetService {
	if seeds == nil {
		seeds = DefaultSeedPresets()
	}
	return &PresetService{store: store, logger: logger, seeds: seeds}
}

// Save persists a named predicate and returns its id
func (s *PresetService) Save(ctx context.Context, name, description string, p Predicate) (string, error) {
	if name == "" {
		return "", fmt.Errorf("preset name is required: %w", db.ErrInvalidArgument)
	}
	filters, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode preset filters: %w", err)
	}
	preset := db.Preset{
		ID:          db.NewPresetID(),
		Name:        name,
		Description: description,
		Filters:     string(filters),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.InsertPreset(ctx, &preset); err != nil {
		return "", fmt.Errorf("failed to save preset: %w", err)
	}
	return preset.ID, nil
}

// List returns all saved presets. The first-ever listing of an empty
// store seeds the documented defaults; the bootstrap runs at most once
// per process and only against an empty collection.
func (s *PresetService) List(ctx context.Context) ([]db.Preset, error) {
	presets, err := s.store.ListPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	if len(presets) > 0 {
		return presets, nil
	}

	s.seedOnce.Do(func() {
		for _, seed := range s.seeds {
			if _, err := s.Save(ctx, seed.Name, seed.Description, seed.Predicate); err != nil {
				s.logger.Warn("failed to seed preset",
					zap.String("name", seed.Name), zap.Error(err))
			}
		}
	})

	presets, err = s.store.ListPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets after seeding: %w", err)
	}
	return presets, nil
}

// Delete removes a preset by id, returning db.ErrNotFound for unknown
// ids
func (s *PresetService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePreset(ctx, id); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	return nil
}

// DecodePreset parses the stored filter JSON back into a Predicate
func DecodePreset(p *db.Preset) (Predicate, error) {
	var pred Predicate
	if err := json.Unmarshal([]byte(p.Filters), &pred); err != nil {
		return Predicate{}, fmt.Errorf("failed to decode preset %s filters: %w", p.ID, err)
	}
	return pred, nil
}
