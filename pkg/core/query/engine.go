package query

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nwainaina/fairway-crew/pkg/core/affiliation"
	"github.com/nwainaina/fairway-crew/pkg/core/availability"
	"github.com/nwainaina/fairway-crew/pkg/db"
)

// statusPriority fixes the result ordering: approved first, then
// pending, then rejected, then anything unexpected
var statusPriority = map[string]int{
	db.StatusApproved: 0,
	db.StatusPending:  1,
	db.StatusRejected: 2,
}

// ResultSet holds the volunteers matching a predicate, the exact
// predicate that produced them, and the derived statistics
type ResultSet struct {
	Volunteers []db.Volunteer `json:"volunteers"`
	Total      int            `json:"total"`
	Filters    Predicate      `json:"filters_applied"`
	Statistics Statistics     `json:"statistics"`
}

// Engine compiles and executes predicates against the volunteer store.
// It is read-only, holds no state between calls, and is safe for
// concurrent use.
type Engine struct {
	store      db.VolunteerStore
	normalizer *affiliation.Normalizer
}

// NewEngine creates a query engine over the given store and affiliation
// normalizer
func NewEngine(store db.VolunteerStore, normalizer *affiliation.Normalizer) *Engine {
	return &Engine{store: store, normalizer: normalizer}
}

// Execute runs the predicate and returns the matching volunteers in
// deterministic order together with their statistics. Well-formed
// predicates never fail: an empty predicate returns the full
// population, an unmatchable one returns an empty result, and a time
// slot filter without a day filter is ignored.
func (e *Engine) Execute(ctx context.Context, p Predicate) (*ResultSet, error) {
	candidates, err := e.store.FindVolunteers(ctx, p.compile())
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}

	matched := make([]db.Volunteer, 0, len(candidates))
	for i := range candidates {
		if e.postFilter(p, &candidates[i]) {
			matched = append(matched, candidates[i])
		}
	}

	sortVolunteers(matched)

	return &ResultSet{
		Volunteers: matched,
		Total:      len(matched),
		Filters:    p,
		Statistics: e.Aggregate(matched),
	}, nil
}

// postFilter evaluates the dimensions that cannot be pushed into the
// store query: affiliation matching depends on the normalizer, day/slot
// matching on the availability matrix, and nationality/search are
// substring heuristics
func (e *Engine) postFilter(p Predicate, v *db.Volunteer) bool {
	if p.KarenMember != nil && e.normalizer.IsKnownAffiliate(v.GolfClub) != *p.KarenMember {
		return false
	}
	if !matchesNationality(p.Nationality, v.Nationality) {
		return false
	}
	if !availability.MatchesDaySlots(v, p.Days, p.TimeSlots) {
		return false
	}
	if !matchesSearch(p.Search, v) {
		return false
	}
	return true
}

// sortVolunteers orders results by status priority, surname, then given
// name, so identical inputs always produce identical output
func sortVolunteers(volunteers []db.Volunteer) {
	sort.SliceStable(volunteers, func(i, j int) bool {
		pi, ok := statusPriority[volunteers[i].Status]
		if !ok {
			pi = len(statusPriority)
		}
		pj, ok := statusPriority[volunteers[j].Status]
		if !ok {
			pj = len(statusPriority)
		}
		if pi != pj {
			return pi < pj
		}
		li := strings.ToLower(volunteers[i].LastName)
		lj := strings.ToLower(volunteers[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(volunteers[i].FirstName) < strings.ToLower(volunteers[j].FirstName)
	})
}
