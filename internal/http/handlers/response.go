package handlers

import (
	"clawdbot-dashboard/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func writeJSON(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func writeMessage(c *gin.Context, status int, message string, data any) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// writeServiceError maps service errors to status codes.
func writeServiceError(c *gin.Context, err error, fallback string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   ve.Message,
			"field":   ve.Field,
		})
	case errors.Is(err, service.ErrInvalidID):
		writeError(c, http.StatusBadRequest, service.ErrInvalidID.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(c, http.StatusNotFound, service.ErrNotFound.Error())
	default:
		writeError(c, http.StatusInternalServerError, fallback)
	}
}
