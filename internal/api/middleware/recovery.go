package middleware

import (
	"net/http"

	"crm-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c).WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
	})
}
