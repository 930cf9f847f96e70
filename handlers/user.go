package handlers

import (
	"database/sql"
	"strings"
	"time"

	"github.com/ZachMcM/purdue-hoops/database"
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/services"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
)

const userColumns = `id, name, username, email, password, feet, inches, weight,
	position, primary_skill, secondary_skill, image, hooping_status,
	overall_rating, created_at, updated_at`

type UpdateAccountRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
}

type SetupAccountRequest struct {
	Feet           int    `json:"feet" binding:"required,min=3,max=8"`
	Inches         int    `json:"inches" binding:"min=0,max=11"`
	Weight         int    `json:"weight" binding:"required,min=50"`
	Position       string `json:"position" binding:"required"`
	PrimarySkill   string `json:"primary_skill" binding:"required"`
	SecondarySkill string `json:"secondary_skill" binding:"required"`
}

type UpdateProfileRequest struct {
	SetupAccountRequest
	// Image is a URL; binary upload is handled by the storage collaborator.
	Image string `json:"image"`
}

func queryUser(query string, args ...any) (*models.User, error) {
	var u models.User
	var overall sql.NullFloat64
	err := database.DB.QueryRow(query, args...).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Password, &u.Feet, &u.Inches,
		&u.Weight, &u.Position, &u.PrimarySkill, &u.SecondarySkill, &u.Image,
		&u.HoopingStatus, &overall, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if overall.Valid {
		u.OverallRating = &overall.Float64
	}
	return &u, nil
}

func GetUser(c *gin.Context) {
	userID := c.Param("user_id")

	user, err := queryUser("SELECT "+userColumns+" FROM users WHERE id = ?", userID)
	if err == sql.ErrNoRows {
		utils.NotFound(c, "no user found")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	var ratingCount int
	if err := database.DB.QueryRow(
		"SELECT COUNT(*) FROM ratings WHERE incoming_id = ?", userID,
	).Scan(&ratingCount); err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, gin.H{"user": user, "rating_count": ratingCount})
}

func UpdateAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if !strings.HasSuffix(req.Email, "@purdue.edu") {
		utils.BadRequest(c, "must have a purdue.edu email")
		return
	}

	var exists bool
	err := database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ? AND id != ?)", req.Email, userID,
	).Scan(&exists)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if exists {
		utils.BadRequest(c, "a user with this email already exists")
		return
	}

	err = database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ? AND id != ?)", req.Username, userID,
	).Scan(&exists)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if exists {
		utils.BadRequest(c, "a user with this username already exists")
		return
	}

	_, err = database.DB.Exec(
		"UPDATE users SET name = ?, username = ?, email = ?, updated_at = ? WHERE id = ?",
		req.Name, req.Username, req.Email, time.Now(), userID,
	)
	if err != nil {
		utils.InternalError(c, "failed to update account")
		return
	}

	GetSession(c)
}

func SetupAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SetupAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	_, err := database.DB.Exec(`
		UPDATE users SET feet = ?, inches = ?, weight = ?, position = ?,
			primary_skill = ?, secondary_skill = ?, updated_at = ?
		WHERE id = ?
	`, req.Feet, req.Inches, req.Weight, req.Position, req.PrimarySkill,
		req.SecondarySkill, time.Now(), userID)
	if err != nil {
		utils.InternalError(c, "failed to update account")
		return
	}

	GetSession(c)
}

func UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	_, err := database.DB.Exec(`
		UPDATE users SET feet = ?, inches = ?, weight = ?, position = ?,
			primary_skill = ?, secondary_skill = ?,
			image = COALESCE(NULLIF(?, ''), image), updated_at = ?
		WHERE id = ?
	`, req.Feet, req.Inches, req.Weight, req.Position, req.PrimarySkill,
		req.SecondarySkill, req.Image, time.Now(), userID)
	if err != nil {
		utils.InternalError(c, "failed to update profile")
		return
	}

	GetSession(c)
}

// DeleteAccount removes the user and everything hanging off them, and
// repairs the overall ratings they contributed to.
func DeleteAccount(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		if err := accounts.Delete(c.Request.Context(), userID); err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, gin.H{"deleted": userID})
	}
}

// GetLeaderboard ranks the top 100 users by how many ratings they have
// received, then by overall rating.
func GetLeaderboard(c *gin.Context) {
	sb := previewSelectBuilder()
	sb.OrderBy("rating_count DESC", "u.overall_rating DESC")
	sb.Limit(100)

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
