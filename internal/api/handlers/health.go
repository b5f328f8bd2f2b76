package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db             *gorm.DB
	version        string
	catalogVersion string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, version, catalogVersion string) *HealthHandler {
	return &HealthHandler{
		db:             db,
		version:        version,
		catalogVersion: catalogVersion,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  map[string]string{"catalog": h.catalogVersion},
	}

	if err := h.pingDatabase(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
	} else {
		response.Services["database"] = "healthy"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := map[string]string{"database": "ready"}
	if err := h.pingDatabase(c.Request.Context()); err != nil {
		ready = false
		services["database"] = "not ready: " + err.Error()
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
