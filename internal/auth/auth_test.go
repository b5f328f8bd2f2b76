package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key"

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)

	svc, err := NewTokenService(testSecret, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.ttl)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateJWT("user-1", "jdoe", "jdoe@example.com", "tenant-1")
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
	assert.Equal(t, "jdoe@example.com", claims.Actor())
}

func TestValidateJWT_Rejects(t *testing.T) {
	svc, _ := NewTokenService(testSecret, time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewTokenService("another-secret", time.Hour)
		token, err := other.GenerateJWT("user-1", "", "", "")
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    DefaultIssuer,
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", Subject: "user-1"}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestActorFallsBackToSubject(t *testing.T) {
	assert.Equal(t, "jdoe", (&AuthClaims{Username: "jdoe"}).Actor())
	claims := &AuthClaims{}
	claims.Subject = "user-7"
	assert.Equal(t, "user-7", claims.Actor())
}

func newRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", handler, func(c *gin.Context) {
		user, _ := c.Get("user")
		c.JSON(http.StatusOK, gin.H{"user": user})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	svc, _ := NewTokenService(testSecret, time.Hour)
	router := newRouter(NewAuthMiddleware(svc).RequireAuth())
	token, err := svc.GenerateJWT("user-1", "jdoe", "", "")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantUser: "jdoe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUser, body["user"])
			} else {
				assert.Equal(t, false, body["success"])
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	svc, _ := NewTokenService(testSecret, time.Hour)
	router := newRouter(NewAuthMiddleware(svc).OptionalAuth())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer broken")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
}
