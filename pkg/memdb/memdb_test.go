package memdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwainaina/fairway-crew/pkg/db"
)

func seedVolunteer(t *testing.T, d *DB, id string) {
	t.Helper()
	require.NoError(t, d.InsertVolunteer(context.Background(), &db.Volunteer{
		ID: id, FirstName: "Test", LastName: "Volunteer",
		Email: id + "@example.com", Role: db.RoleMarshal, Status: db.StatusPending,
	}))
}

func TestInsertVolunteer_Duplicate(t *testing.T) {
	d := New()
	seedVolunteer(t, d, "vol_1")

	err := d.InsertVolunteer(context.Background(), &db.Volunteer{ID: "vol_1"})
	assert.ErrorIs(t, err, db.ErrAlreadyExists)
}

func TestGetVolunteer_ReturnsIsolatedCopy(t *testing.T) {
	d := New()
	ctx := context.Background()
	seedVolunteer(t, d, "vol_1")

	v, err := d.GetVolunteer(ctx, "vol_1")
	require.NoError(t, err)

	v.Status = db.StatusApproved
	v.AssignedShifts = append(v.AssignedShifts, "Thursday AM")

	stored, err := d.GetVolunteer(ctx, "vol_1")
	require.NoError(t, err)
	assert.Equal(t, db.StatusPending, stored.Status, "mutating a returned copy must not touch the store")
	assert.Empty(t, stored.AssignedShifts)
}

func TestFindVolunteerByEmail_CaseInsensitive(t *testing.T) {
	d := New()
	ctx := context.Background()
	seedVolunteer(t, d, "vol_1")

	v, err := d.FindVolunteerByEmail(ctx, "VOL_1@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "vol_1", v.ID)

	_, err = d.FindVolunteerByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestSetVolunteerTeeTimeRef_Guard(t *testing.T) {
	d := New()
	ctx := context.Background()
	seedVolunteer(t, d, "vol_1")

	// Unset to set succeeds
	require.NoError(t, d.SetVolunteerTeeTimeRef(ctx, "vol_1", "", "tt_1"))

	// Guard on the old value fails once the ref moved
	err := d.SetVolunteerTeeTimeRef(ctx, "vol_1", "", "tt_2")
	assert.ErrorIs(t, err, db.ErrConflict)

	// Guard on the current value succeeds
	require.NoError(t, d.SetVolunteerTeeTimeRef(ctx, "vol_1", "tt_1", ""))

	v, err := d.GetVolunteer(ctx, "vol_1")
	require.NoError(t, err)
	assert.Empty(t, v.TeeTimeID)

	err = d.SetVolunteerTeeTimeRef(ctx, "vol_missing", "", "tt_1")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestAppendTeeTimeMember_CountGuard(t *testing.T) {
	d := New()
	ctx := context.Background()
	require.NoError(t, d.InsertTeeTime(ctx, &db.TeeTime{ID: "tt_1", TeeNumber: 1, Capacity: 3}))

	require.NoError(t, d.AppendTeeTimeMember(ctx, "tt_1", "vol_1", 0))
	require.NoError(t, d.AppendTeeTimeMember(ctx, "tt_1", "vol_2", 1))

	// Stale expected count loses the swap
	err := d.AppendTeeTimeMember(ctx, "tt_1", "vol_3", 1)
	assert.ErrorIs(t, err, db.ErrConflict)

	tt, err := d.GetTeeTime(ctx, "tt_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_1", "vol_2"}, tt.MemberIDs)

	err = d.AppendTeeTimeMember(ctx, "tt_missing", "vol_1", 0)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestRemoveTeeTimeMember(t *testing.T) {
	d := New()
	ctx := context.Background()
	require.NoError(t, d.InsertTeeTime(ctx, &db.TeeTime{
		ID: "tt_1", TeeNumber: 1, Capacity: 3, MemberIDs: []string{"vol_1", "vol_2"},
	}))

	require.NoError(t, d.RemoveTeeTimeMember(ctx, "tt_1", "vol_1"))
	require.NoError(t, d.RemoveTeeTimeMember(ctx, "tt_1", "vol_1"), "absent member is a no-op")

	tt, err := d.GetTeeTime(ctx, "tt_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"vol_2"}, tt.MemberIDs)

	err = d.RemoveTeeTimeMember(ctx, "tt_missing", "vol_1")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestUpdateVolunteerFieldsMany_SkipsUnknown(t *testing.T) {
	d := New()
	ctx := context.Background()
	seedVolunteer(t, d, "vol_1")
	seedVolunteer(t, d, "vol_2")

	location := "Hole 18"
	updated, err := d.UpdateVolunteerFieldsMany(ctx, []string{"vol_1", "vol_missing", "vol_2"},
		db.FieldPatch{AssignedLocation: &location})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

func TestFindVolunteers_Filter(t *testing.T) {
	d := New()
	ctx := context.Background()
	seedVolunteer(t, d, "vol_1")
	require.NoError(t, d.InsertVolunteer(ctx, &db.Volunteer{
		ID: "vol_2", Email: "vol_2@example.com",
		Role: db.RoleScorer, Status: db.StatusApproved, AssignedLocation: "Hole 1",
	}))

	matched, err := d.FindVolunteers(ctx, db.VolunteerFilter{Role: db.RoleScorer})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "vol_2", matched[0].ID)

	matched, err = d.FindVolunteers(ctx, db.VolunteerFilter{UnassignedOnly: true})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "vol_1", matched[0].ID)
}
