package handlers

import (
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/services"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
)

type FriendRequestBody struct {
	IncomingID string `json:"incoming_id" binding:"required"`
}

func GetFriends(friends *services.FriendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		list, err := friends.Friends(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, list)
	}
}

func GetIncomingFriendRequests(friends *services.FriendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		requests, err := friends.IncomingRequests(c.Request.Context(), userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, requests)
	}
}

// GetFriendshipStatus returns the single record between the session user
// and the user in the path, in either direction, or null when none exists.
func GetFriendshipStatus(friends *services.FriendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		otherID := c.Param("user_id")

		friendship, err := friends.Status(c.Request.Context(), userID, otherID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, friendship)
	}
}

func SendFriendRequest(friends *services.FriendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		var body FriendRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.BadRequest(c, "invalid payload")
			return
		}

		friendship, err := friends.Request(c.Request.Context(), userID, body.IncomingID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, friendship)
	}
}

func AcceptFriendRequest(friends *services.FriendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		friendshipID := c.Param("friendship_id")

		friendship, err := friends.Accept(c.Request.Context(), userID, friendshipID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, friendship)
	}
}

func RemoveFriendship(friends *services.FriendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		friendshipID := c.Param("friendship_id")

		friendship, err := friends.Remove(c.Request.Context(), userID, friendshipID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.Success(c, friendship)
	}
}
