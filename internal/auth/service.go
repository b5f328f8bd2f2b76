package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultIssuer is stamped on tokens minted by this service
const DefaultIssuer = "crm-builder-backend"

// AuthClaims represents JWT token claims. Subject carries the acting user id
// recorded as createdBy/updatedBy.
type AuthClaims struct {
	Username string `json:"username,omitempty" example:"jdoe"`
	Email    string `json:"email,omitempty" example:"jdoe@example.com"`
	TenantID string `json:"tenantId,omitempty" example:"3f1c2a9e-5b7d-4e8f-9a10-2b3c4d5e6f70"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Actor returns the identity written to audit columns
func (c *AuthClaims) Actor() string {
	if c.Email != "" {
		return c.Email
	}
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}

// TokenService signs and verifies HS256 bearer tokens
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a token service for the shared secret
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), issuer: DefaultIssuer, ttl: ttl}, nil
}

// GenerateJWT creates a signed token for the given subject
func (s *TokenService) GenerateJWT(subject, username, email, tenantID string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		Email:    email,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
