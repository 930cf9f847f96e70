package middleware

import (
	"strings"

	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// AuthMiddleware validates the bearer token and stashes the authenticated
// user's id on the request context for the handlers downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.Unauthorized(c, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the id set by AuthMiddleware, or "" on an
// unauthenticated request.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
