package middleware

import (
	"net/http"
	"strings"

	"github.com/gestionale-hr/personnel-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// UserContextKey is the key used to store user information in Gin context
const UserContextKey = "user"

// UserContext represents the authenticated account's information
type UserContext struct {
	Email string `json:"email"`
	Write bool   `json:"write"`
}

// GetUserContext retrieves the authenticated account from the Gin context
func GetUserContext(c *gin.Context) (UserContext, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return UserContext{}, false
	}
	userCtx, ok := value.(UserContext)
	return userCtx, ok
}

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid authorization header format. Expected: Bearer <token>",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Token cannot be empty",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(UserContextKey, UserContext{
			Email: claims.Email,
			Write: claims.Write,
		})

		c.Next()
	}
}

// RequireWrite rejects accounts without write permission. Mutating
// routes are registered behind it.
func RequireWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		userCtx, exists := GetUserContext(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		if !userCtx.Write {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "Write permission is required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
