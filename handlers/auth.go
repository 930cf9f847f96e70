package handlers

import (
	"database/sql"
	"strings"
	"time"

	"github.com/ZachMcM/purdue-hoops/database"
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Username       string `json:"username" binding:"required,min=3,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Feet           int    `json:"feet" binding:"required,min=3,max=8"`
	Inches         int    `json:"inches" binding:"min=0,max=11"`
	Weight         int    `json:"weight" binding:"required,min=50"`
	Position       string `json:"position" binding:"required"`
	PrimarySkill   string `json:"primary_skill" binding:"required"`
	SecondarySkill string `json:"secondary_skill" binding:"required"`
}

type SigninRequest struct {
	// Email also accepts a username; anything without an @ is treated as one.
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if !strings.HasSuffix(req.Email, "@purdue.edu") {
		utils.BadRequest(c, "must have a purdue.edu email")
		return
	}

	var exists bool
	err := database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", req.Email).Scan(&exists)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if exists {
		utils.BadRequest(c, "a user with this email already exists")
		return
	}

	err = database.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)", req.Username).Scan(&exists)
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}
	if exists {
		utils.BadRequest(c, "a user with this username already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, "failed to hash password")
		return
	}

	id := utils.GenerateUUID()
	now := time.Now()

	_, err = database.DB.Exec(`
		INSERT INTO users (id, name, username, email, password, feet, inches, weight,
			position, primary_skill, secondary_skill, hooping_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, req.Name, req.Username, req.Email, string(hashedPassword), req.Feet, req.Inches,
		req.Weight, req.Position, req.PrimarySkill, req.SecondarySkill, models.StatusNotHooping, now, now)
	if err != nil {
		utils.InternalError(c, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(id)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}

	utils.Success(c, AuthResponse{
		Token: token,
		User: &models.User{
			ID:             id,
			Name:           req.Name,
			Username:       req.Username,
			Email:          req.Email,
			Feet:           req.Feet,
			Inches:         req.Inches,
			Weight:         req.Weight,
			Position:       req.Position,
			PrimarySkill:   req.PrimarySkill,
			SecondarySkill: req.SecondarySkill,
			HoopingStatus:  models.StatusNotHooping,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	})
}

func Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	column := "username"
	if strings.Contains(req.Email, "@") {
		column = "email"
	}

	user, err := queryUser("SELECT "+userColumns+" FROM users WHERE "+column+" = ?", req.Email)
	if err == sql.ErrNoRows {
		utils.NotFound(c, "no user found")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.Unauthorized(c, "incorrect password")
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}

	utils.Success(c, AuthResponse{Token: token, User: user})
}

// GetSession returns the authenticated user's own record.
func GetSession(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := queryUser("SELECT "+userColumns+" FROM users WHERE id = ?", userID)
	if err == sql.ErrNoRows {
		utils.NotFound(c, "no user found")
		return
	}
	if err != nil {
		utils.InternalError(c, "database error")
		return
	}

	utils.Success(c, gin.H{"user": user, "user_id": userID})
}
