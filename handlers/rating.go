package handlers

import (
	"github.com/ZachMcM/purdue-hoops/middleware"
	"github.com/ZachMcM/purdue-hoops/services"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
)

type SubmitRatingRequest struct {
	Value *int `json:"value" binding:"required"`
}

// SubmitRating rates the user in the path as the authenticated user.
// Resubmitting overwrites the earlier value rather than adding a second
// edge; the response carries the ratee's recomputed overall rating.
func SubmitRating(ratings *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raterID := middleware.GetUserID(c)
		rateeID := c.Param("user_id")

		var req SubmitRatingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "invalid payload")
			return
		}

		overall, err := ratings.Submit(c.Request.Context(), raterID, rateeID, *req.Value)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		utils.Success(c, gin.H{"overall_rating": overall})
	}
}
