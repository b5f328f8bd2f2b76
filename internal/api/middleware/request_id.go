package middleware

import (
	"crm-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(logger.ContextKeyRequestID, requestID)

		c.Next()
	}
}
