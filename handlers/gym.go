package handlers

import (
	"github.com/ZachMcM/purdue-hoops/database"
	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
)

// GetGymRoster lists everyone currently hooping at the requested gym.
func GetGymRoster(c *gin.Context) {
	gym := c.Query("gym")
	if !models.ValidGym(gym) {
		utils.BadRequest(c, "no gym provided")
		return
	}

	sb := previewSelectBuilder()
	sb.Where(sb.Equal("u.hooping_status", gym))
	sb.OrderBy("u.name")

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
