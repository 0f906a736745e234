package db

import "context"

// VolunteerStore defines the interface for volunteer record operations
type VolunteerStore interface {
	// FindVolunteers returns all volunteers matching the filter, in no
	// particular order; callers sort
	FindVolunteers(ctx context.Context, filter VolunteerFilter) ([]Volunteer, error)

	// GetVolunteer returns the volunteer with the given id, or ErrNotFound
	GetVolunteer(ctx context.Context, id string) (*Volunteer, error)

	// FindVolunteerByEmail returns the volunteer registered with the
	// given email, or ErrNotFound
	FindVolunteerByEmail(ctx context.Context, email string) (*Volunteer, error)

	// InsertVolunteer stores a new volunteer record
	InsertVolunteer(ctx context.Context, v *Volunteer) error

	// UpdateVolunteerFields applies a partial field patch to one
	// volunteer; ErrNotFound if the id does not exist
	UpdateVolunteerFields(ctx context.Context, id string, patch FieldPatch) error

	// UpdateVolunteerFieldsMany applies the same patch to every listed
	// volunteer and returns the number of records actually updated;
	// unknown ids are skipped, not errors
	UpdateVolunteerFieldsMany(ctx context.Context, ids []string, patch FieldPatch) (int, error)

	// SetVolunteerStatus updates the review status of one volunteer
	SetVolunteerStatus(ctx context.Context, id string, status string) error

	// SetVolunteerTeeTimeRef conditionally updates the tee-time
	// back-reference: the write succeeds only if the current reference
	// equals expected (empty string means unset). Returns ErrConflict
	// when the guard fails and ErrNotFound for unknown ids.
	SetVolunteerTeeTimeRef(ctx context.Context, id, expected, teeTimeID string) error
}

// TeeTimeStore defines the interface for tee-time group operations
type TeeTimeStore interface {
	// ListTeeTimes returns all tee times ordered by tee number then time
	ListTeeTimes(ctx context.Context) ([]TeeTime, error)

	// GetTeeTime returns the tee time with the given id, or ErrNotFound
	GetTeeTime(ctx context.Context, id string) (*TeeTime, error)

	// InsertTeeTime stores a new tee-time group
	InsertTeeTime(ctx context.Context, t *TeeTime) error

	// AppendTeeTimeMember appends a volunteer to the member list only if
	// the list currently holds exactly expectedLen members (the
	// compare-and-swap guard for capacity). Returns ErrConflict when the
	// guard fails and ErrNotFound for unknown tee times.
	AppendTeeTimeMember(ctx context.Context, id, volunteerID string, expectedLen int) error

	// RemoveTeeTimeMember removes a volunteer from the member list.
	// Removing an absent member is a no-op, not an error.
	RemoveTeeTimeMember(ctx context.Context, id, volunteerID string) error
}

// PresetStore defines the interface for saved query presets
type PresetStore interface {
	ListPresets(ctx context.Context) ([]Preset, error)
	InsertPreset(ctx context.Context, p *Preset) error
	DeletePreset(ctx context.Context, id string) error
}

// AuditRecorder appends immutable records of mutating operations.
// Recording failures must never roll back the mutation they describe;
// callers log and continue.
type AuditRecorder interface {
	RecordAudit(ctx context.Context, entry AuditEntry) error
}

// Database is the full store contract the engine consumes. Both the
// in-memory store and the Postgres store implement it.
type Database interface {
	VolunteerStore
	TeeTimeStore
	PresetStore
	AuditRecorder
}
