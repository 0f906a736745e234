// Package memdb provides an in-memory implementation of the db.Database
// contract. It backs the CLI's --memory fixture mode and the package
// tests; the compare-and-swap operations behave exactly as the Postgres
// store's conditional updates do.
package memdb

import (
	"sync"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// DB is a mutex-guarded in-memory database
type DB struct {
	mu         sync.Mutex
	volunteers map[string]*db.Volunteer
	teeTimes   map[string]*db.TeeTime
	presets    map[string]*db.Preset
	audits     []db.AuditEntry
}

// New creates an empty in-memory database
func New() *DB {
	return &DB{
		volunteers: make(map[string]*db.Volunteer),
		teeTimes:   make(map[string]*db.TeeTime),
		presets:    make(map[string]*db.Preset),
	}
}

var _ db.Database = (*DB)(nil)

func cloneVolunteer(v *db.Volunteer) *db.Volunteer {
	c := *v
	c.AssignedShifts = append([]string(nil), v.AssignedShifts...)
	return &c
}

func cloneTeeTime(t *db.TeeTime) *db.TeeTime {
	c := *t
	c.MemberIDs = append([]string(nil), t.MemberIDs...)
	return &c
}
