package handlers

import (
	"net/http"
	"strconv"

	"entry-tracker-backend/internal/auth"
	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// DeletedResponse is returned after a successful delete
type DeletedResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// requireUser returns the session user set by the session middleware
func requireUser(c *gin.Context) (uint, bool) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrUnauthenticated.Error()})
		return 0, false
	}
	return userID, true
}

// respondError maps a service error to its status; internal details stay in the log
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
