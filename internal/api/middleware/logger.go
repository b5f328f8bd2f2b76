package middleware

import (
	"time"

	"crm-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger logs one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithContext(c).WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Log(logrus.ErrorLevel, "Request failed")
		case status >= 400:
			entry.Log(logrus.WarnLevel, "Request rejected")
		default:
			entry.Log(logrus.InfoLevel, "Request handled")
		}
	}
}
