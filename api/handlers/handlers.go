package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpost/apperrors"
	"inkpost/dto"
	"inkpost/internal/logger"
)

// respondError maps a service error to the envelope and status class.
// Unexpected failures are logged with their cause but reach the client as a
// generic 500.
func respondError(c *gin.Context, err error) {
	status := dto.StatusOf(err)
	if status == http.StatusInternalServerError && apperrors.KindOf(err) == apperrors.KindUnknown {
		logger.Log.Errorf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, dto.Failure(dto.MessageOf(err)))
}

func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, dto.Success(data, message))
}

func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, dto.Success(data, message))
}
