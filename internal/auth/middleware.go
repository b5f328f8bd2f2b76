package auth

import (
	"net/http"
	"strings"

	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const contextKeyClaims = "auth_claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *TokenService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, apperrors.ErrMissingAuthorization)
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c).WithError(err).Debug("Rejected bearer token")
			abort(c, apperrors.ErrInvalidToken)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := m.service.ValidateJWT(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// GetAuthClaims extracts the verified claims from the request context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(contextKeyClaims)
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func setClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(logger.ContextKeyUser, claims.Actor())
	c.Set(logger.ContextKeyEmail, claims.Email)
	c.Set("username", claims.Username)
	c.Set(contextKeyClaims, claims)
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
}
