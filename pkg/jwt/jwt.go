package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims structure
type Claims struct {
	Email string `json:"email"`
	Write bool   `json:"write"`
	jwt.RegisteredClaims
}

// Service handles JWT operations
type Service struct {
	secret string
	expiry time.Duration
}

// NewService creates a new JWT service
func NewService(secret string, expiry time.Duration) *Service {
	return &Service{
		secret: secret,
		expiry: expiry,
	}
}

// Generate creates a signed access token for the account. The write
// flag carries the account's permission to mutate records.
func (s *Service) Generate(email string, write bool) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Write: write,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "personnel-backend",
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a token, returning its claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Expiry returns the configured access token lifetime.
func (s *Service) Expiry() time.Duration {
	return s.expiry
}
