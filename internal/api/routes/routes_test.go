package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-builder-backend/internal/config"
	"crm-builder-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins:    []string{"http://localhost:3000"},
		RecordValidation:  config.RecordValidationOff,
		RecordPageSize:    20,
		RecordMaxPageSize: 100,
		SearchLimit:       10,
	}
}

func TestSetupRoutes_AuthRequiresSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.AuthEnabled = true
	cfg.JWTSecret = ""

	router, err := SetupRoutes(testutils.NewSQLiteDB(t), cfg)

	assert.Nil(t, router)
	assert.Error(t, err)
}

func TestSetupRoutes_AuthEnabledRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.AuthEnabled = true
	cfg.JWTSecret = "s3cret"

	router, err := SetupRoutes(testutils.NewSQLiteDB(t), cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/pillars", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRoutes_OptionalAuthWithoutSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.JWTSecret = ""

	router, err := SetupRoutes(testutils.NewSQLiteDB(t), cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/pillars", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
