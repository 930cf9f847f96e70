package handlers

import (
	"strings"
	"time"

	"github.com/ZachMcM/purdue-hoops/database"
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
)

type AddSearchRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// SearchUsers matches the query against names and usernames,
// case-insensitively.
func SearchUsers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.BadRequest(c, "no search query")
		return
	}

	pattern := "%" + strings.ToLower(query) + "%"

	sb := previewSelectBuilder()
	sb.Where(sb.Or(
		sb.Like("LOWER(u.name)", pattern),
		sb.Like("LOWER(u.username)", pattern),
	))
	sb.OrderBy("u.name")

	sqlQuery, args := sb.Build()
	rows, err := database.DB.Query(sqlQuery, args...)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	defer rows.Close()

	users, err := scanPreviews(rows)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, users)
}

// AddSearch records that the session user opened another user's profile
// from search. Revisiting bumps the entry to the top.
func AddSearch(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "no user id provided")
		return
	}
	if req.UserID == userID {
		utils.BadRequest(c, "cannot add yourself to search history")
		return
	}

	var exists bool
	err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", req.UserID).Scan(&exists)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if !exists {
		utils.NotFound(c, "no user found")
		return
	}

	now := time.Now()
	_, err = database.DB.Exec(`
		INSERT INTO searches (id, outgoing_id, incoming_id, created_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE created_at = ?
	`, utils.GenerateUUID(), userID, req.UserID, now, now)
	if err != nil {
		utils.InternalError(c, "failed to save search")
		return
	}

	utils.Success(c, nil)
}

func RemoveSearch(c *gin.Context) {
	userID := middleware.GetUserID(c)
	incomingID := c.Param("user_id")

	_, err := database.DB.Exec(
		"DELETE FROM searches WHERE outgoing_id = ? AND incoming_id = ?",
		userID, incomingID,
	)
	if err != nil {
		utils.InternalError(c, "failed to remove search")
		return
	}

	utils.Success(c, nil)
}

func GetSearchHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	sb := previewSelectBuilder()
	sb.Join("searches s", "s.incoming_id = u.id")
	sb.Where(sb.Equal("s.outgoing_id", userID))
	sb.OrderBy("s.created_at DESC")

	query, args := sb.Build()
	rows, err := database.DB.Query(query, args...)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	defer rows.Close()

	users, err := scanPreviews(rows)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, users)
}
