package services

import (
	"context"
	"testing"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFriendFixture(t *testing.T) (*FriendService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	for _, id := range []string{"user-a", "user-b", "user-c"} {
		st.AddUser(&models.User{ID: id, Name: id, HoopingStatus: models.StatusNotHooping})
	}
	return NewFriendService(st), st
}

func TestRequestFriendValidation(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	cases := []struct {
		name       string
		incomingID string
		wantErr    error
	}{
		{name: "missing_target", incomingID: "", wantErr: ErrValidation},
		{name: "self_request", incomingID: "user-a", wantErr: ErrValidation},
		{name: "unknown_target", incomingID: "nobody", wantErr: ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Request(ctx, "user-a", tc.incomingID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRequestFriendCreatesPending(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	f, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)
	assert.Equal(t, "user-a", f.OutgoingID)
	assert.Equal(t, "user-b", f.IncomingID)
	assert.Equal(t, models.FriendshipPending, f.Status)
}

// One record per unordered pair: the reverse request must conflict, not
// create a second record or silently accept.
func TestRequestFriendBothDirectionsConflict(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	_, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)

	_, err = svc.Request(ctx, "user-b", "user-a")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Request(ctx, "user-a", "user-b")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAcceptFriend(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	f, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, "user-b", "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)

	// The requester cannot accept their own request.
	_, err = svc.Accept(ctx, "user-a", f.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Neither can a third party.
	_, err = svc.Accept(ctx, "user-c", f.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	accepted, err := svc.Accept(ctx, "user-b", f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipAccepted, accepted.Status)

	// Direction is preserved after acceptance.
	assert.Equal(t, "user-a", accepted.OutgoingID)
	assert.Equal(t, "user-b", accepted.IncomingID)

	// Re-accept is an idempotent no-op.
	again, err := svc.Accept(ctx, "user-b", f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipAccepted, again.Status)
}

func TestRemoveFriendship(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	f, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)

	_, err = svc.Remove(ctx, "user-c", f.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The requester may cancel their own pending request.
	_, err = svc.Remove(ctx, "user-a", f.ID)
	require.NoError(t, err)

	status, err := svc.Status(ctx, "user-a", "user-b")
	require.NoError(t, err)
	assert.Nil(t, status)

	_, err = svc.Remove(ctx, "user-a", f.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Full lifecycle: request, accept, unfriend, then a fresh request succeeds.
func TestFriendshipLifecycle(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	f, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, "user-b", f.ID)
	require.NoError(t, err)

	// The recipient may remove an accepted friendship too.
	_, err = svc.Remove(ctx, "user-b", f.ID)
	require.NoError(t, err)

	f2, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipPending, f2.Status)
	assert.NotEqual(t, f.ID, f2.ID)
}

func TestStatusChecksBothDirections(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	f, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)

	forward, err := svc.Status(ctx, "user-a", "user-b")
	require.NoError(t, err)
	require.NotNil(t, forward)
	assert.Equal(t, f.ID, forward.ID)

	reverse, err := svc.Status(ctx, "user-b", "user-a")
	require.NoError(t, err)
	require.NotNil(t, reverse)
	assert.Equal(t, f.ID, reverse.ID)
}

func TestFriendsAndIncomingLists(t *testing.T) {
	svc, _ := newFriendFixture(t)
	ctx := context.Background()

	ab, err := svc.Request(ctx, "user-a", "user-b")
	require.NoError(t, err)
	_, err = svc.Accept(ctx, "user-b", ab.ID)
	require.NoError(t, err)

	_, err = svc.Request(ctx, "user-c", "user-b")
	require.NoError(t, err)

	// user-b sees user-a as a friend regardless of who requested.
	friendsOfB, err := svc.Friends(ctx, "user-b")
	require.NoError(t, err)
	require.Len(t, friendsOfB, 1)
	assert.Equal(t, "user-a", friendsOfB[0].Friend.ID)

	friendsOfA, err := svc.Friends(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, friendsOfA, 1)
	assert.Equal(t, "user-b", friendsOfA[0].Friend.ID)

	// The pending request from user-c shows up only on user-b's incoming list.
	incoming, err := svc.IncomingRequests(ctx, "user-b")
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "user-c", incoming[0].Friend.ID)

	incomingC, err := svc.IncomingRequests(ctx, "user-c")
	require.NoError(t, err)
	assert.Empty(t, incomingC)
}
