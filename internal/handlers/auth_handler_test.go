package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestionale-hr/personnel-backend/internal/config"
	"github.com/gestionale-hr/personnel-backend/pkg/jwt"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	viewerHash, err := bcrypt.GenerateFromPassword([]byte("viewer-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewService("test-secret", 1*time.Hour)
	handler := NewAuthHandler(jwtService, config.AuthConfig{
		AdminEmail:         "admin@example.com",
		AdminPasswordHash:  string(adminHash),
		ViewerEmail:        "viewer@example.com",
		ViewerPasswordHash: string(viewerHash),
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", handler.Login)
	return router, jwtService
}

func TestLogin(t *testing.T) {
	t.Run("Admin Gets Write Token", func(t *testing.T) {
		router, jwtService := setupAuthRouter(t)

		w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
			"email":    "admin@example.com",
			"password": "admin-pass",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Token     string `json:"token"`
			ExpiresIn int    `json:"expires_in"`
			Write     bool   `json:"write"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Write)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims, err := jwtService.Validate(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.True(t, claims.Write)
	})

	t.Run("Viewer Gets Read Only Token", func(t *testing.T) {
		router, jwtService := setupAuthRouter(t)

		w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
			"email":    "viewer@example.com",
			"password": "viewer-pass",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Token string `json:"token"`
			Write bool   `json:"write"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Write)

		claims, err := jwtService.Validate(resp.Token)
		require.NoError(t, err)
		assert.False(t, claims.Write)
	})

	t.Run("Email Is Case Insensitive", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
			"email":    "Admin@Example.COM",
			"password": "admin-pass",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
			"email":    "admin@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credentials")
	})

	t.Run("Unknown Email", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "admin-pass",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		router, _ := setupAuthRouter(t)

		w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
			"email": "admin@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
