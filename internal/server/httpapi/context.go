package httpapi

import (
	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = "user_id"
	requestIDKey = "request_id"
)

// UserID returns the id set by AuthRequired, or "".
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// RequestIDFrom returns the id set by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
