package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// Authentication accounts
	Auth AuthConfig

	// Attachment storage configuration
	Storage StorageConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string
	Environment string // development, staging, production
	LogLevel    string // debug, info, warn, error
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	URL                string
	MaxConnections     int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// AuthConfig holds the configured accounts. The admin account carries
// write permission; the optional viewer account is read-only.
type AuthConfig struct {
	AdminEmail         string
	AdminPasswordHash  string // bcrypt hash
	ViewerEmail        string
	ViewerPasswordHash string // bcrypt hash
}

// StorageConfig holds attachment storage configuration
type StorageConfig struct {
	Driver          string // "s3" or "fs"
	S3Bucket        string
	S3Region        string
	S3Endpoint      string // optional, for MinIO
	S3AccessKey     string
	S3SecretKey     string
	S3PathStyle     bool
	PresignExpiry   time.Duration
	FilesystemRoot  string
	DownloadURLBase string
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			MaxConnections:     getEnvAsInt("DATABASE_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("DATABASE_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetime:    time.Duration(getEnvAsInt("DATABASE_CONN_MAX_LIFETIME", 300)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", ""),
			AccessTokenExpiry: time.Duration(getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY", 3600)) * time.Second,
		},
		Auth: AuthConfig{
			AdminEmail:         getEnv("AUTH_ADMIN_EMAIL", ""),
			AdminPasswordHash:  getEnv("AUTH_ADMIN_PASSWORD_HASH", ""),
			ViewerEmail:        getEnv("AUTH_VIEWER_EMAIL", ""),
			ViewerPasswordHash: getEnv("AUTH_VIEWER_PASSWORD_HASH", ""),
		},
		Storage: StorageConfig{
			Driver:          getEnv("STORAGE_DRIVER", "fs"),
			S3Bucket:        getEnv("STORAGE_S3_BUCKET", ""),
			S3Region:        getEnv("STORAGE_S3_REGION", ""),
			S3Endpoint:      getEnv("STORAGE_S3_ENDPOINT", ""),
			S3AccessKey:     getEnv("STORAGE_S3_ACCESS_KEY", ""),
			S3SecretKey:     getEnv("STORAGE_S3_SECRET_KEY", ""),
			S3PathStyle:     getEnvAsBool("STORAGE_S3_PATH_STYLE", false),
			PresignExpiry:   time.Duration(getEnvAsInt("STORAGE_PRESIGN_EXPIRY", 900)) * time.Second,
			FilesystemRoot:  getEnv("STORAGE_FS_ROOT", "./data/documents"),
			DownloadURLBase: getEnv("STORAGE_DOWNLOAD_URL_BASE", "/files"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Auth.AdminEmail == "" || c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("AUTH_ADMIN_EMAIL and AUTH_ADMIN_PASSWORD_HASH are required")
	}

	switch c.Storage.Driver {
	case "s3":
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("STORAGE_S3_BUCKET is required for the s3 storage driver")
		}
	case "fs":
		if c.Storage.FilesystemRoot == "" {
			return fmt.Errorf("STORAGE_FS_ROOT is required for the fs storage driver")
		}
	default:
		return fmt.Errorf("invalid storage driver: %s (must be 's3' or 'fs')", c.Storage.Driver)
	}

	return nil
}

// Helper functions to get environment variables

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, v := range strings.Split(valueStr, ",") {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
