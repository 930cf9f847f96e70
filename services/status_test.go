package services

import (
	"context"
	"testing"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusFixture(t *testing.T) (*StatusService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	st.AddUser(&models.User{ID: "user-a", Name: "A", HoopingStatus: models.StatusNotHooping})
	return NewStatusService(st), st
}

func TestUpdateStatusValidation(t *testing.T) {
	svc, _ := newStatusFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "user-a", "corec")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, "nobody", models.GymFeature)
	assert.ErrorIs(t, err, ErrNotFound)

	// A failed update leaves no session behind.
	_, err = svc.Get(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusRecordsSessionWithChange(t *testing.T) {
	svc, st := newStatusFixture(t)
	ctx := context.Background()

	name, err := svc.Update(ctx, "user-a", models.GymGoldAndBlack)
	require.NoError(t, err)
	assert.Equal(t, "A", name)

	status, err := svc.Get(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, models.GymGoldAndBlack, status)

	sessions := st.HoopSessions("user-a")
	require.Len(t, sessions, 1)
	assert.Equal(t, models.GymGoldAndBlack, sessions[0].Gym)

	// Going home records no session, and the earlier one survives.
	_, err = svc.Update(ctx, "user-a", models.StatusNotHooping)
	require.NoError(t, err)

	status, err = svc.Get(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotHooping, status)
	assert.Len(t, st.HoopSessions("user-a"), 1)
}

// The status change and its session commit in one transaction; an update
// rejected mid-flight must not leave the status half-applied.
func TestUpdateStatusUnknownUserLeavesNothingBehind(t *testing.T) {
	svc, st := newStatusFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "nobody", models.GymUpper)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, st.HoopSessions("nobody"))
}
