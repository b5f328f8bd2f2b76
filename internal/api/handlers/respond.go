package handlers

import (
	"net/http"
	"strconv"

	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"module not found"`
}

// respondError maps the error taxonomy onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case apperrors.IsNotFound(err):
		status, message = http.StatusNotFound, err.Error()
	case apperrors.IsValidation(err):
		status, message = http.StatusBadRequest, err.Error()
	case apperrors.IsAlreadyExists(err):
		status, message = http.StatusConflict, err.Error()
	case apperrors.IsAuthentication(err):
		status, message = http.StatusUnauthorized, err.Error()
	default:
		logger.WithContext(c).WithError(err).Error("Request failed")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: message})
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, apperrors.NewValidationError("body", "invalid request body: "+err.Error()))
		return false
	}
	return true
}

// queryInt reads an optional integer query parameter; absent means 0
func queryInt(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, apperrors.NewValidationError(key, "must be an integer"))
		return 0, false
	}
	return n, true
}

// NoRoute answers unknown paths with the standard error body
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Success: false, Error: "route not found"})
}
