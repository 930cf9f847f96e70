package handlers

import (
	"net/http"
	"testing"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, "user-a", "POST", "/api/friends/requests", map[string]any{"incoming_id": "user-b"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var f models.Friendship
	decodeData(t, w, &f)
	assert.Equal(t, models.FriendshipPending, f.Status)
	assert.Equal(t, "user-a", f.OutgoingID)
	assert.Equal(t, "user-b", f.IncomingID)

	// Reverse request hits the unordered-pair invariant.
	w = doRequest(t, r, "user-b", "POST", "/api/friends/requests", map[string]any{"incoming_id": "user-a"})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestFriendRequestEndpointErrors(t *testing.T) {
	r, _ := setupRouter(t)

	cases := []struct {
		name     string
		body     any
		wantCode int
	}{
		{name: "missing_target", body: map[string]any{}, wantCode: http.StatusBadRequest},
		{name: "self_request", body: map[string]any{"incoming_id": "user-a"}, wantCode: http.StatusBadRequest},
		{name: "unknown_target", body: map[string]any{"incoming_id": "nobody"}, wantCode: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, "user-a", "POST", "/api/friends/requests", tc.body)
			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestFriendshipAcceptFlow(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, "user-a", "POST", "/api/friends/requests", map[string]any{"incoming_id": "user-b"})
	require.Equal(t, http.StatusOK, w.Code)
	var f models.Friendship
	decodeData(t, w, &f)

	// The requester cannot accept.
	w = doRequest(t, r, "user-a", "PUT", "/api/friends/requests/incoming/"+f.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = doRequest(t, r, "user-b", "PUT", "/api/friends/requests/incoming/"+f.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var accepted models.Friendship
	decodeData(t, w, &accepted)
	assert.Equal(t, models.FriendshipAccepted, accepted.Status)

	// Both parties now list each other as friends.
	w = doRequest(t, r, "user-a", "GET", "/api/friends/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var friends []models.FriendshipWithUser
	decodeData(t, w, &friends)
	require.Len(t, friends, 1)
	assert.Equal(t, "user-b", friends[0].Friend.ID)
}

func TestFriendshipStatusAndRemoval(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, "user-a", "POST", "/api/friends/requests", map[string]any{"incoming_id": "user-b"})
	require.Equal(t, http.StatusOK, w.Code)
	var f models.Friendship
	decodeData(t, w, &f)

	// Status resolves from either side.
	w = doRequest(t, r, "user-b", "GET", "/api/friends/status/user-a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status models.Friendship
	decodeData(t, w, &status)
	assert.Equal(t, f.ID, status.ID)

	// The pending request shows on the recipient's incoming list.
	w = doRequest(t, r, "user-b", "GET", "/api/friends/requests/incoming", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var incoming []models.FriendshipWithUser
	decodeData(t, w, &incoming)
	require.Len(t, incoming, 1)
	assert.Equal(t, "user-a", incoming[0].Friend.ID)

	// A third party cannot remove it.
	w = doRequest(t, r, "user-c", "DELETE", "/api/friends/requests/"+f.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The recipient rejects; the pair returns to none.
	w = doRequest(t, r, "user-b", "DELETE", "/api/friends/requests/"+f.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, "user-a", "GET", "/api/friends/status/user-b", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":null`)

	// And a fresh request succeeds.
	w = doRequest(t, r, "user-a", "POST", "/api/friends/requests", map[string]any{"incoming_id": "user-b"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
