package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	service := NewService("test-secret", 1*time.Hour)

	token, err := service.Generate("admin@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.Write)
	assert.Equal(t, "personnel-backend", claims.Issuer)
	assert.Equal(t, "admin@example.com", claims.Subject)
}

func TestValidateExpiredToken(t *testing.T) {
	service := NewService("test-secret", -1*time.Minute)

	token, err := service.Generate("admin@example.com", true)
	require.NoError(t, err)

	claims, err := service.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := NewService("test-secret", 1*time.Hour).Generate("admin@example.com", false)
	require.NoError(t, err)

	claims, err := NewService("other-secret", 1*time.Hour).Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTamperedToken(t *testing.T) {
	service := NewService("test-secret", 1*time.Hour)

	token, err := service.Generate("viewer@example.com", false)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJ3cml0ZSI6dHJ1ZX0." + parts[2]

	claims, err := service.Validate(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateGarbage(t *testing.T) {
	service := NewService("test-secret", 1*time.Hour)

	claims, err := service.Validate("not a token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestExpiry(t *testing.T) {
	service := NewService("test-secret", 45*time.Minute)
	assert.Equal(t, 45*time.Minute, service.Expiry())
}
