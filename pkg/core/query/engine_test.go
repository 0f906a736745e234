package query

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwainaina/fairway-crew/pkg/core/affiliation"
	"github.com/nwainaina/fairway-crew/pkg/core/availability"
	"github.com/nwainaina/fairway-crew/pkg/db"
	"github.com/nwainaina/fairway-crew/pkg/memdb"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func testFixture(t *testing.T) (*Engine, []db.Volunteer) {
	t.Helper()

	volunteers := []db.Volunteer{
		{
			ID: "vol_wanjiku", FirstName: "Alice", LastName: "Wanjiku",
			Email: "alice@example.com", Phone: "+254700000001",
			Nationality: "Kenyan", GolfClub: "Karen Country Club",
			Role: db.RoleMarshal, Status: db.StatusApproved, VolunteeredBefore: true,
			AvailabilityThursday: db.AvailabilityAllDay,
			AvailabilityFriday:   db.AvailabilityAllDay,
			AvailabilitySaturday: db.AvailabilityMorning,
			AvailabilitySunday:   db.AvailabilityNotAvailable,
			AssignedLocation:     "Hole 1",
		},
		{
			ID: "vol_omondi", FirstName: "Brian", LastName: "Omondi",
			Email: "brian@example.com", Phone: "+254700000002",
			Nationality: "Kenyan", GolfClub: "Muthaiga Golf Club",
			Role: db.RoleScorer, Status: db.StatusApproved, VolunteeredBefore: false,
			AvailabilityThursday: db.AvailabilityNotAvailable,
			AvailabilityFriday:   db.AvailabilityMorning,
			AvailabilitySaturday: db.AvailabilityAllDay,
			AvailabilitySunday:   db.AvailabilityAllDay,
		},
		{
			ID: "vol_smith", FirstName: "Carol", LastName: "Smith",
			Email: "carol.smith@example.co.uk", Phone: "+447700000003",
			Nationality: "British", GolfClub: "KCC",
			Role: db.RoleMarshal, Status: db.StatusPending, VolunteeredBefore: false,
			AvailabilityThursday: db.AvailabilityAfternoon,
			AvailabilityFriday:   db.AvailabilityNotAvailable,
			AvailabilitySaturday: db.AvailabilityNotAvailable,
			AvailabilitySunday:   db.AvailabilityAfternoon,
		},
		{
			ID: "vol_achieng", FirstName: "Diana", LastName: "Achieng",
			Email: "diana@example.com", Phone: "+254700000004",
			Nationality: "Kenyan", GolfClub: "",
			Role: db.RoleScorer, Status: db.StatusRejected, VolunteeredBefore: true,
			AvailabilityThursday: db.AvailabilityMorning,
			AvailabilityFriday:   db.AvailabilityMorning,
			AvailabilitySaturday: db.AvailabilityMorning,
			AvailabilitySunday:   db.AvailabilityMorning,
		},
		{
			ID: "vol_mueller", FirstName: "Erik", LastName: "Mueller",
			Email: "erik@example.de", Phone: "+491500000005",
			Nationality: "German", GolfClub: "karen golf club",
			Role: db.RoleMarshal, Status: db.StatusApproved, VolunteeredBefore: false,
			AvailabilityThursday: db.AvailabilityNotAvailable,
			AvailabilityFriday:   db.AvailabilityNotAvailable,
			AvailabilitySaturday: db.AvailabilityAfternoon,
			AvailabilitySunday:   db.AvailabilityAllDay,
			AssignedLocation:     "Clubhouse", AssignedSupervisor: "Grace Wanjiru",
		},
	}

	store := memdb.New()
	for i := range volunteers {
		require.NoError(t, store.InsertVolunteer(context.Background(), &volunteers[i]))
	}

	return NewEngine(store, affiliation.NewNormalizer(nil)), volunteers
}

func resultIDs(rs *ResultSet) []string {
	ids := make([]string, 0, len(rs.Volunteers))
	for i := range rs.Volunteers {
		ids = append(ids, rs.Volunteers[i].ID)
	}
	return ids
}

func TestExecute_EmptyPredicateReturnsAll(t *testing.T) {
	engine, volunteers := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{})
	require.NoError(t, err)

	assert.Equal(t, len(volunteers), rs.Total)
	assert.Len(t, rs.Volunteers, rs.Total)
	assert.True(t, rs.Filters.Empty())
}

func TestExecute_Ordering(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{})
	require.NoError(t, err)

	// Approved first by surname, then pending, then rejected
	assert.Equal(t, []string{
		"vol_mueller", "vol_omondi", "vol_wanjiku",
		"vol_smith",
		"vol_achieng",
	}, resultIDs(rs))
}

func TestExecute_RoleAndStatus(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{
		Role:   db.RoleMarshal,
		Status: db.StatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"vol_mueller", "vol_wanjiku"}, resultIDs(rs))
}

func TestExecute_KarenMember(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{KarenMember: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_mueller", "vol_wanjiku", "vol_smith"}, resultIDs(rs))

	rs, err = engine.Execute(context.Background(), Predicate{KarenMember: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_omondi", "vol_achieng"}, resultIDs(rs))
}

func TestExecute_Nationality(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{Nationality: "kenyan"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_omondi", "vol_wanjiku", "vol_achieng"}, resultIDs(rs))

	rs, err = engine.Execute(context.Background(), Predicate{Nationality: "non-kenyan"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_mueller", "vol_smith"}, resultIDs(rs))
}

func TestExecute_DayAndSlot(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{
		Days:      []string{"thursday"},
		TimeSlots: []string{db.AvailabilityMorning},
	})
	require.NoError(t, err)
	// all_day Thursday counts as morning-capable
	assert.Equal(t, []string{"vol_wanjiku", "vol_achieng"}, resultIDs(rs))
}

func TestExecute_SlotWithoutDayHasNoEffect(t *testing.T) {
	engine, _ := testFixture(t)

	withSlot, err := engine.Execute(context.Background(), Predicate{
		TimeSlots: []string{db.AvailabilityMorning},
	})
	require.NoError(t, err)

	unfiltered, err := engine.Execute(context.Background(), Predicate{})
	require.NoError(t, err)

	assert.Equal(t, resultIDs(unfiltered), resultIDs(withSlot))
}

func TestExecute_Search(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{Search: "smith"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_smith"}, resultIDs(rs))

	rs, err = engine.Execute(context.Background(), Predicate{Search: "example.com"})
	require.NoError(t, err)
	assert.Len(t, rs.Volunteers, 3)

	rs, err = engine.Execute(context.Background(), Predicate{Search: "muthaiga"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_omondi"}, resultIDs(rs))
}

func TestExecute_UnassignedAndLocation(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{UnassignedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_omondi", "vol_smith", "vol_achieng"}, resultIDs(rs))

	rs, err = engine.Execute(context.Background(), Predicate{AssignedLocation: strPtr("Hole 1")})
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_wanjiku"}, resultIDs(rs))
}

func TestExecute_UnmatchableCombination(t *testing.T) {
	engine, _ := testFixture(t)

	rs, err := engine.Execute(context.Background(), Predicate{
		Role:        db.RoleScorer,
		KarenMember: boolPtr(true),
		Nationality: "non-kenyan",
	})
	require.NoError(t, err)

	assert.Zero(t, rs.Total)
	assert.Empty(t, rs.Volunteers)
	assert.Zero(t, rs.Statistics.Total)
}

// naiveMatch is an independent restatement of the matching rules used
// to cross-check the engine
func naiveMatch(normalizer *affiliation.Normalizer, p Predicate, v *db.Volunteer) bool {
	if p.Role != "" && v.Role != p.Role {
		return false
	}
	if p.Status != "" && v.Status != p.Status {
		return false
	}
	if p.VolunteeredBefore != nil && v.VolunteeredBefore != *p.VolunteeredBefore {
		return false
	}
	if p.AssignedLocation != nil && v.AssignedLocation != *p.AssignedLocation {
		return false
	}
	if p.UnassignedOnly && v.AssignedLocation != "" {
		return false
	}
	if p.KarenMember != nil && normalizer.IsKnownAffiliate(v.GolfClub) != *p.KarenMember {
		return false
	}
	if p.Nationality != "" {
		token := strings.ToLower(p.Nationality)
		negated := strings.HasPrefix(token, "non-")
		token = strings.TrimPrefix(token, "non-")
		token = strings.TrimSuffix(token, "n")
		contained := strings.Contains(strings.ToLower(v.Nationality), token)
		if contained == negated {
			return false
		}
	}
	if !availability.MatchesDaySlots(v, p.Days, p.TimeSlots) {
		return false
	}
	if p.Search != "" {
		term := strings.ToLower(p.Search)
		hit := strings.Contains(strings.ToLower(v.FirstName+" "+v.LastName), term) ||
			strings.Contains(strings.ToLower(v.Email), term) ||
			strings.Contains(strings.ToLower(v.Phone), term) ||
			strings.Contains(strings.ToLower(v.GolfClub), term)
		if !hit {
			return false
		}
	}
	return true
}

func TestExecute_MatchesNaiveReference(t *testing.T) {
	engine, volunteers := testFixture(t)
	normalizer := affiliation.NewNormalizer(nil)

	predicates := []Predicate{
		{},
		{Role: db.RoleMarshal},
		{Status: db.StatusApproved},
		{Role: db.RoleScorer, Status: db.StatusApproved},
		{KarenMember: boolPtr(true)},
		{KarenMember: boolPtr(false), Status: db.StatusApproved},
		{Nationality: "kenyan"},
		{Nationality: "non-kenyan", Role: db.RoleMarshal},
		{Days: []string{"saturday", "sunday"}},
		{Days: []string{"thursday"}, TimeSlots: []string{db.AvailabilityAfternoon}},
		{TimeSlots: []string{db.AvailabilityMorning}},
		{VolunteeredBefore: boolPtr(true)},
		{VolunteeredBefore: boolPtr(false), UnassignedOnly: true},
		{Search: "karen"},
		{Search: "+2547"},
		{AssignedLocation: strPtr("Clubhouse")},
		{Role: db.RoleMarshal, Status: db.StatusApproved, KarenMember: boolPtr(true),
			Days: []string{"sunday"}, TimeSlots: []string{db.AvailabilityAllDay}},
	}

	for i, p := range predicates {
		t.Run(fmt.Sprintf("predicate_%d", i), func(t *testing.T) {
			rs, err := engine.Execute(context.Background(), p)
			require.NoError(t, err)

			expected := make(map[string]bool)
			for j := range volunteers {
				if naiveMatch(normalizer, p, &volunteers[j]) {
					expected[volunteers[j].ID] = true
				}
			}

			assert.Len(t, rs.Volunteers, len(expected))
			for _, id := range resultIDs(rs) {
				assert.True(t, expected[id], "unexpected volunteer %s", id)
			}
		})
	}
}
