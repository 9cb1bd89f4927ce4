package handlers

import (
	"net/http"
	"strings"

	"github.com/gestionale-hr/personnel-backend/internal/config"
	"github.com/gestionale-hr/personnel-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles login requests
type AuthHandler struct {
	jwtService *jwt.Service
	cfg        config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(jwtService *jwt.Service, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{jwtService: jwtService, cfg: cfg}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues an access token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var (
		hash  string
		write bool
	)
	switch email {
	case strings.ToLower(h.cfg.AdminEmail):
		hash = h.cfg.AdminPasswordHash
		write = true
	case strings.ToLower(h.cfg.ViewerEmail):
		hash = h.cfg.ViewerPasswordHash
	}

	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "invalid_credentials",
			"message": "Invalid email or password",
		})
		return
	}

	token, err := h.jwtService.Generate(email, write)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "token_failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int(h.jwtService.Expiry().Seconds()),
		"write":      write,
	})
}
