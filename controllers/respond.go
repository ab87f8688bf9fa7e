package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
)

// abortWithError maps a service error to its HTTP status and body. Store
// failures are logged here; expected conditions are not.
func abortWithError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, apperrors.ToResponse(err))
}

// currentUserID reads the user id the auth middleware resolved.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
