package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Volunteer roles
const (
	RoleMarshal = "marshal"
	RoleScorer  = "scorer"
)

// Volunteer review statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Availability values for a single tournament day
const (
	AvailabilityNotAvailable = "not_available"
	AvailabilityMorning      = "morning"
	AvailabilityAfternoon    = "afternoon"
	AvailabilityAllDay       = "all_day"
)

// Tournament days, in calendar order. Availability is stored per day in
// this order.
var TournamentDays = []string{"thursday", "friday", "saturday", "sunday"}

// Volunteer represents a registered volunteer record
type Volunteer struct {
	ID                   string    `json:"volunteer_id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Nationality          string    `json:"nationality"`
	IdentificationNumber string    `json:"identification_number"`
	GolfClub             string    `json:"golf_club"`
	Role                 string    `json:"role"`
	Status               string    `json:"status"`
	VolunteeredBefore    bool      `json:"volunteered_before"`
	AvailabilityThursday string    `json:"availability_thursday"`
	AvailabilityFriday   string    `json:"availability_friday"`
	AvailabilitySaturday string    `json:"availability_saturday"`
	AvailabilitySunday   string    `json:"availability_sunday"`
	AssignedLocation     string    `json:"assigned_location"`
	AssignedSupervisor   string    `json:"assigned_supervisor"`
	AssignedShifts       []string  `json:"assigned_shifts"`
	Notes                string    `json:"notes"`
	TeeTimeID            string    `json:"tee_time_id"`
	PhotoAttached        bool      `json:"photo_attached"`
	ConsentGiven         bool      `json:"consent_given"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Availability returns the stored availability value for the given day
// ("thursday".."sunday"). Unknown days report not_available.
func (v *Volunteer) Availability(day string) string {
	switch day {
	case "thursday":
		return v.AvailabilityThursday
	case "friday":
		return v.AvailabilityFriday
	case "saturday":
		return v.AvailabilitySaturday
	case "sunday":
		return v.AvailabilitySunday
	}
	return AvailabilityNotAvailable
}

// Unassigned reports whether the volunteer has no duty location
func (v *Volunteer) Unassigned() bool {
	return v.AssignedLocation == ""
}

// TeeTime is a fixed-capacity tee-time group. MemberIDs holds volunteer
// ids in join order and never exceeds Capacity.
type TeeTime struct {
	ID           string    `json:"tee_time_id"`
	TeeNumber    int       `json:"tee_number"`
	TeeTime      string    `json:"tee_time"`
	Wave         string    `json:"wave"`
	Professional string    `json:"professional"`
	Capacity     int       `json:"capacity"`
	MemberIDs    []string  `json:"member_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

// Preset is a saved, reusable query filter set. Names are not unique;
// presets are addressed by id.
type Preset struct {
	ID          string    `json:"preset_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Filters     string    `json:"filters"` // JSON-encoded predicate
	CreatedAt   time.Time `json:"created_at"`
}

// Actor identifies the already-authorized caller of a mutating
// operation, for audit attribution. Authorization itself happens
// upstream of this engine.
type Actor struct {
	ID   string
	Name string
	Role string
}

// AuditEntry is an append-only record of a mutating operation
type AuditEntry struct {
	ID         string    `json:"audit_id"`
	ActorID    string    `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Before     string    `json:"before,omitempty"`
	After      string    `json:"after,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewVolunteerID generates a volunteer id in the vol_<hex> form
func NewVolunteerID() string {
	return fmt.Sprintf("vol_%s", uuid.New().String()[:12])
}

// NewTeeTimeID generates a tee time id in the tt_<hex> form
func NewTeeTimeID() string {
	return fmt.Sprintf("tt_%s", uuid.New().String()[:12])
}

// NewPresetID generates a preset id in the preset_<hex> form
func NewPresetID() string {
	return fmt.Sprintf("preset_%s", uuid.New().String()[:12])
}

// NewAuditID generates an audit entry id
func NewAuditID() string {
	return fmt.Sprintf("audit_%s", uuid.New().String()[:12])
}
