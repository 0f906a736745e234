// Package query implements the volunteer query engine: a combinable
// predicate model, compilation into a store filter, post-filtering for
// the heuristic dimensions, deterministic ordering, single-pass result
// statistics, and saved query presets.
package query

import (
	"strings"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

// NationalityExcludePrefix marks a nationality class as negated:
// "non-kenyan" matches every nationality that does NOT contain "kenya".
const NationalityExcludePrefix = "non-"

// Predicate is the declarative filter specification submitted by a
// caller. Every field is optional; absent fields impose no constraint
// and an empty Predicate matches every volunteer. Fields combine with
// AND; multi-valued fields (days, time slots) OR within themselves.
type Predicate struct {
	// Role filters on exact role (marshal, scorer)
	Role string `json:"role,omitempty" yaml:"role,omitempty"`

	// Status filters on exact review status (pending, approved, rejected)
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	// Days restricts to volunteers available on any of the listed
	// tournament days
	Days []string `json:"days,omitempty" yaml:"days,omitempty"`

	// TimeSlots narrows the day filter to specific slots. A slot filter
	// without a day filter has no effect.
	TimeSlots []string `json:"time_slots,omitempty" yaml:"timeSlots,omitempty"`

	// KarenMember requires (true) or excludes (false) volunteers whose
	// golf club resolves to the host club
	KarenMember *bool `json:"karen_member,omitempty" yaml:"karenMember,omitempty"`

	// Nationality is a case-insensitive containment token, e.g.
	// "kenyan"; the "non-" prefix negates it ("non-kenyan")
	Nationality string `json:"nationality,omitempty" yaml:"nationality,omitempty"`

	// VolunteeredBefore filters on prior tournament experience
	VolunteeredBefore *bool `json:"volunteered_before,omitempty" yaml:"volunteeredBefore,omitempty"`

	// Search is matched case-insensitively across name, email, phone,
	// and golf club
	Search string `json:"search,omitempty" yaml:"search,omitempty"`

	// AssignedLocation filters on exact duty location
	AssignedLocation *string `json:"assigned_location,omitempty" yaml:"assignedLocation,omitempty"`

	// UnassignedOnly keeps only volunteers with no duty location
	UnassignedOnly bool `json:"unassigned_only,omitempty" yaml:"unassignedOnly,omitempty"`
}

// Empty reports whether the predicate imposes no constraint at all
func (p Predicate) Empty() bool {
	return p.Role == "" && p.Status == "" && len(p.Days) == 0 &&
		len(p.TimeSlots) == 0 && p.KarenMember == nil && p.Nationality == "" &&
		p.VolunteeredBefore == nil && p.Search == "" &&
		p.AssignedLocation == nil && !p.UnassignedOnly
}

// compile translates the indexed-equality dimensions into a store
// filter. The heuristic dimensions (affiliation, nationality class,
// day/slot availability, free-text search) stay behind as post-filters.
func (p Predicate) compile() db.VolunteerFilter {
	return db.VolunteerFilter{
		Role:              p.Role,
		Status:            p.Status,
		VolunteeredBefore: p.VolunteeredBefore,
		AssignedLocation:  p.AssignedLocation,
		UnassignedOnly:    p.UnassignedOnly,
	}
}

// matchesNationality evaluates the nationality class token against a
// stored nationality
func matchesNationality(token, nationality string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return true
	}
	if rest, ok := strings.CutPrefix(token, NationalityExcludePrefix); ok {
		return !strings.Contains(strings.ToLower(nationality), normalizeNationalityToken(rest))
	}
	return strings.Contains(strings.ToLower(nationality), normalizeNationalityToken(token))
}

// normalizeNationalityToken strips the adjectival suffix so "kenyan"
// also matches a stored "Kenya"
func normalizeNationalityToken(token string) string {
	return strings.TrimSuffix(token, "n")
}

// matchesSearch evaluates the free-text search across name, email,
// phone, and golf club
func matchesSearch(term string, v *db.Volunteer) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	haystacks := []string{
		v.FirstName + " " + v.LastName,
		v.Email,
		v.Phone,
		v.GolfClub,
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), term) {
			return true
		}
	}
	return false
}
