package middleware

import (
	"net/http"
	"slices"
	"time"

	"crm-builder-backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins. A "*" entry opens the API to every
// origin without credentials; an empty list only admits same-origin calls.
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	switch {
	case slices.Contains(cfg.AllowedOrigins, "*"):
		corsConfig.AllowAllOrigins = true
	case len(cfg.AllowedOrigins) == 0:
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	default:
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	return cors.New(corsConfig)
}
