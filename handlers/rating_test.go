package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRatingEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, "user-b", "PUT", "/api/users/user-a/ratings", map[string]any{"value": 80})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		OverallRating float64 `json:"overall_rating"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, 80.0, data.OverallRating)

	// Same rater again: overwrite, not a second edge.
	w = doRequest(t, r, "user-b", "PUT", "/api/users/user-a/ratings", map[string]any{"value": 90})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &data)
	assert.Equal(t, 90.0, data.OverallRating)

	// A second rater pulls the mean down.
	w = doRequest(t, r, "user-c", "PUT", "/api/users/user-a/ratings", map[string]any{"value": 70})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &data)
	assert.Equal(t, 80.0, data.OverallRating)
}

func TestSubmitRatingEndpointErrors(t *testing.T) {
	r, _ := setupRouter(t)

	cases := []struct {
		name     string
		userID   string
		path     string
		body     any
		wantCode int
	}{
		{name: "no_token", userID: "", path: "/api/users/user-a/ratings", body: map[string]any{"value": 80}, wantCode: http.StatusUnauthorized},
		{name: "missing_value", userID: "user-b", path: "/api/users/user-a/ratings", body: map[string]any{}, wantCode: http.StatusBadRequest},
		{name: "out_of_range", userID: "user-b", path: "/api/users/user-a/ratings", body: map[string]any{"value": 100}, wantCode: http.StatusBadRequest},
		{name: "self_rating", userID: "user-a", path: "/api/users/user-a/ratings", body: map[string]any{"value": 80}, wantCode: http.StatusBadRequest},
		{name: "unknown_ratee", userID: "user-a", path: "/api/users/nobody/ratings", body: map[string]any{"value": 80}, wantCode: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, tc.userID, "PUT", tc.path, tc.body)
			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}
}
