package handlers

import (
	"errors"
	"log"

	"github.com/ZachMcM/purdue-hoops/services"
	"github.com/ZachMcM/purdue-hoops/utils"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is a storage failure and surfaces as a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		utils.Forbidden(c, err.Error())
	default:
		log.Printf("storage error: %v", err)
		utils.InternalError(c, "database error")
	}
}
