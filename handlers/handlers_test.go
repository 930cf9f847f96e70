package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ZachMcM/purdue-hoops/config"
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/services"
	"github.com/ZachMcM/purdue-hoops/store"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupRouter builds the authenticated core routes over an in-memory store
// seeded with user-a, user-b and user-c.
func setupRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	st := store.NewMemoryStore()
	for _, id := range []string{"user-a", "user-b", "user-c"} {
		st.AddUser(&models.User{ID: id, Name: id, HoopingStatus: models.StatusNotHooping})
	}

	ratingService := services.NewRatingService(st)
	friendService := services.NewFriendService(st)
	statusService := services.NewStatusService(st)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	api.PUT("/users/:user_id/ratings", SubmitRating(ratingService))
	api.GET("/friends/all", GetFriends(friendService))
	api.GET("/friends/requests/incoming", GetIncomingFriendRequests(friendService))
	api.GET("/friends/status/:user_id", GetFriendshipStatus(friendService))
	api.POST("/friends/requests", SendFriendRequest(friendService))
	api.PUT("/friends/requests/incoming/:friendship_id", AcceptFriendRequest(friendService))
	api.DELETE("/friends/requests/:friendship_id", RemoveFriendship(friendService))
	api.GET("/status", GetHoopingStatus(statusService))
	api.PUT("/status", UpdateHoopingStatus(statusService))

	return r, st
}

func doRequest(t *testing.T, r *gin.Engine, userID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		token, err := utils.GenerateToken(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var resp struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NoError(t, json.Unmarshal(resp.Data, out))
}
