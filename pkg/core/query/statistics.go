package query

import "github.com/nwainaina/fairway-crew/pkg/db"

// Statistics are the counts derived from one result set. They are
// always computed over the filtered volunteers, never the full
// population, and sum(ByStatus) == sum(ByRole) == Total.
type Statistics struct {
	Total             int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	ByRole            map[string]int `json:"by_role"`
	KarenMembers      int            `json:"karen_members"`
	VolunteeredBefore int            `json:"volunteered_before"`
	FirstTime         int            `json:"first_time"`
	Assigned          int            `json:"assigned"`
	Unassigned        int            `json:"unassigned"`
}

// Aggregate derives statistics from a result slice in a single pass.
// Pure function: no store access, no side effects.
func (e *Engine) Aggregate(volunteers []db.Volunteer) Statistics {
	stats := Statistics{
		Total:    len(volunteers),
		ByStatus: make(map[string]int),
		ByRole:   make(map[string]int),
	}
	for i := range volunteers {
		v := &volunteers[i]
		stats.ByStatus[v.Status]++
		stats.ByRole[v.Role]++
		if e.normalizer.IsKnownAffiliate(v.GolfClub) {
			stats.KarenMembers++
		}
		if v.VolunteeredBefore {
			stats.VolunteeredBefore++
		} else {
			stats.FirstTime++
		}
		if v.Unassigned() {
			stats.Unassigned++
		} else {
			stats.Assigned++
		}
	}
	return stats
}
