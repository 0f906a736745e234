package db

import "errors"

// Error taxonomy surfaced by stores and the services built on them.
// Callers match with errors.Is; store implementations wrap these with
// context via fmt.Errorf("...: %w", ...).
var (
	// ErrNotFound indicates an unknown volunteer, tee time, or preset id
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a request the engine rejects outright,
	// such as an empty id list or a non-positive capacity
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists indicates a uniqueness violation on insert
	// (e.g. duplicate registration email)
	ErrAlreadyExists = errors.New("already exists")

	// ErrAlreadyAssigned indicates the volunteer is already a member of a
	// tee-time group somewhere in the system
	ErrAlreadyAssigned = errors.New("already assigned to a tee time")

	// ErrSlotFull indicates the target tee-time group is at capacity
	ErrSlotFull = errors.New("tee time is full")

	// ErrConflict indicates a conditional update lost a concurrent race
	// and did not succeed after a retry
	ErrConflict = errors.New("concurrent update conflict")
)
