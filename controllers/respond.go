package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500 with the detail kept out of the response.
func respondError(c *gin.Context, err error) {
	var (
		validationErr   *services.ValidationError
		notFoundErr     *services.NotFoundError
		preconditionErr *services.PreconditionError
		transitionErr   *services.InvalidTransitionError
		conflictErr     *services.ConflictError
		partialErr      *services.PartialFailureError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &preconditionErr):
		utils.JSONError(c, http.StatusPreconditionFailed, preconditionErr.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, transitionErr.Error())
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &partialErr):
		// the write succeeded; tell the caller what still needs attention
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"warning": partialErr.Error(),
		})
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(n), true
}
