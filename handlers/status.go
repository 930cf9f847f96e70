package handlers

import (
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/services"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/ZachMcM/purdue-hoops/websocket"
	"github.com/gin-gonic/gin"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func GetHoopingStatus(status *services.StatusService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		current, err := status.Get(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, gin.H{"hooping_status": current})
	}
}

// UpdateHoopingStatus sets the user's current gym (or not-hooping). Gym
// statuses record a hoop session alongside the change and go out on the
// live presence feed.
func UpdateHoopingStatus(status *services.StatusService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}

		name, err := status.Update(c.Request.Context(), userID, req.Status)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		websocket.BroadcastStatusChange(userID, name, req.Status)

		utils.Success(c, gin.H{"hooping_status": req.Status})
	}
}
