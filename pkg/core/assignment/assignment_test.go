package assignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nwainaina/fairway-crew/pkg/db"
	"github.com/nwainaina/fairway-crew/pkg/memdb"
)

var testActor = db.Actor{ID: "op_1", Name: "Tournament Director", Role: "admin"}

func strPtr(s string) *string { return &s }

func newService(t *testing.T) (*Service, *memdb.DB) {
	t.Helper()
	store := memdb.New()
	return NewService(store, store, zap.NewNop()), store
}

func seedVolunteer(t *testing.T, store *memdb.DB, id string) {
	t.Helper()
	v := db.Volunteer{
		ID: id, FirstName: "Test", LastName: "Volunteer",
		Email: id + "@example.com", Role: db.RoleMarshal, Status: db.StatusApproved,
	}
	require.NoError(t, store.InsertVolunteer(context.Background(), &v))
}

func TestAssign_PartialUpdate(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	seedVolunteer(t, store, "vol_1")

	shifts := []string{"Thursday AM", "Friday AM"}
	err := svc.Assign(ctx, testActor, "vol_1", db.FieldPatch{
		AssignedLocation: strPtr("Hole 1"),
		AssignedShifts:   &shifts,
	})
	require.NoError(t, err)

	v, err := store.GetVolunteer(ctx, "vol_1")
	require.NoError(t, err)
	assert.Equal(t, "Hole 1", v.AssignedLocation)
	assert.Equal(t, shifts, v.AssignedShifts)
	assert.Empty(t, v.AssignedSupervisor, "untouched field stays untouched")

	// A later patch changes only what it names
	err = svc.Assign(ctx, testActor, "vol_1", db.FieldPatch{
		AssignedSupervisor: strPtr("Grace Wanjiru"),
	})
	require.NoError(t, err)

	v, err = store.GetVolunteer(ctx, "vol_1")
	require.NoError(t, err)
	assert.Equal(t, "Hole 1", v.AssignedLocation)
	assert.Equal(t, "Grace Wanjiru", v.AssignedSupervisor)
}

func TestAssign_ClearField(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	seedVolunteer(t, store, "vol_1")

	require.NoError(t, svc.Assign(ctx, testActor, "vol_1", db.FieldPatch{
		AssignedLocation: strPtr("Hole 9"),
	}))
	require.NoError(t, svc.Assign(ctx, testActor, "vol_1", db.FieldPatch{
		AssignedLocation: strPtr(""),
	}))

	v, err := store.GetVolunteer(ctx, "vol_1")
	require.NoError(t, err)
	assert.True(t, v.Unassigned())
}

func TestAssign_Errors(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	seedVolunteer(t, store, "vol_1")

	err := svc.Assign(ctx, testActor, "vol_missing", db.FieldPatch{AssignedLocation: strPtr("Hole 1")})
	assert.ErrorIs(t, err, db.ErrNotFound)

	err = svc.Assign(ctx, testActor, "vol_1", db.FieldPatch{})
	assert.ErrorIs(t, err, db.ErrInvalidArgument)

	err = svc.Assign(ctx, testActor, "", db.FieldPatch{AssignedLocation: strPtr("Hole 1")})
	assert.ErrorIs(t, err, db.ErrInvalidArgument)
}

func TestAssign_WritesAudit(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	seedVolunteer(t, store, "vol_1")

	require.NoError(t, svc.Assign(ctx, testActor, "vol_1", db.FieldPatch{
		AssignedLocation: strPtr("Scoring Tent"),
	}))

	entries := store.AuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "assign", entries[0].Action)
	assert.Equal(t, "vol_1", entries[0].EntityID)
	assert.Equal(t, testActor.ID, entries[0].ActorID)
	assert.Contains(t, entries[0].After, "Scoring Tent")
	assert.NotContains(t, entries[0].Before, "Scoring Tent")
}

func TestBulkAssign_SkipsUnknownIDs(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	seedVolunteer(t, store, "vol_1")
	seedVolunteer(t, store, "vol_2")

	result, err := svc.BulkAssign(ctx, testActor, []string{"vol_1", "vol_missing", "vol_2"}, db.FieldPatch{
		AssignedLocation: strPtr("Hole 1"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 2, result.Updated)

	for _, id := range []string{"vol_1", "vol_2"} {
		v, err := store.GetVolunteer(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Hole 1", v.AssignedLocation)
	}
}

func TestBulkAssign_Idempotent(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	seedVolunteer(t, store, "vol_1")
	seedVolunteer(t, store, "vol_2")

	patch := db.FieldPatch{AssignedLocation: strPtr("Hole 1")}
	ids := []string{"vol_1", "vol_2"}

	first, err := svc.BulkAssign(ctx, testActor, ids, patch)
	require.NoError(t, err)
	second, err := svc.BulkAssign(ctx, testActor, ids, patch)
	require.NoError(t, err)

	assert.Equal(t, first.Updated, second.Updated)
	for _, id := range ids {
		v, err := store.GetVolunteer(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Hole 1", v.AssignedLocation)
	}
}

func TestBulkAssign_EmptySelection(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.BulkAssign(context.Background(), testActor, nil, db.FieldPatch{
		AssignedLocation: strPtr("Hole 1"),
	})
	assert.ErrorIs(t, err, db.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "no volunteers selected")
}

func TestBulkAssign_OneAuditEntryPerBatch(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	seedVolunteer(t, store, "vol_1")
	seedVolunteer(t, store, "vol_2")
	seedVolunteer(t, store, "vol_3")

	_, err := svc.BulkAssign(ctx, testActor, []string{"vol_1", "vol_2", "vol_3"}, db.FieldPatch{
		Notes: strPtr("briefed"),
	})
	require.NoError(t, err)

	entries := store.AuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "bulk_assign", entries[0].Action)
	assert.Contains(t, entries[0].After, "briefed")
}
