package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gestionale-hr/personnel-backend/internal/blob"
	"github.com/gestionale-hr/personnel-backend/internal/config"
	"github.com/gestionale-hr/personnel-backend/internal/database"
	"github.com/gestionale-hr/personnel-backend/internal/handlers"
	"github.com/gestionale-hr/personnel-backend/internal/middleware"
	"github.com/gestionale-hr/personnel-backend/internal/session"
	"github.com/gestionale-hr/personnel-backend/pkg/jwt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Personnel Records Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize attachment storage
	blobStore, err := newBlobStore(cfg.Storage)
	if err != nil {
		logger.Fatalf("Failed to initialize attachment storage: %v", err)
	}
	logger.Infof("Attachment storage initialized (driver: %s)", blobStore.Driver())

	// Initialize services and repositories
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	notifier := session.NewLogNotifier(logger)
	employeeRepository := database.NewEmployeeRepository(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(jwtService, cfg.Auth)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepository, notifier)
	qualificationHandler := handlers.NewQualificationHandler(employeeRepository)
	documentHandler := handlers.NewDocumentHandler(employeeRepository, blobStore, notifier)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// Filesystem driver serves downloads directly
	if fsStore, ok := blobStore.(*blob.FilesystemStore); ok {
		router.Static(cfg.Storage.DownloadURLBase, fsStore.Root())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Authentication routes (public)
		v1.POST("/auth/login", authHandler.Login)

		// Protected routes (require JWT authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/employees", employeeHandler.List)
			protected.GET("/employees/:id", employeeHandler.Get)
			protected.GET("/employees/:id/documents/:ref/url", documentHandler.ResolveURL)
			protected.GET("/qualifications", qualificationHandler.ListCategories)
			protected.GET("/qualifications/:category", qualificationHandler.ListRows)

			// Mutating routes additionally require write permission
			write := protected.Group("")
			write.Use(middleware.RequireWrite())
			{
				write.POST("/employees", employeeHandler.Create)
				write.PUT("/employees/:id", employeeHandler.Update)
				write.DELETE("/employees/:id", employeeHandler.Delete)
				write.POST("/employees/:id/documents", documentHandler.Upload)
				write.DELETE("/employees/:id/documents/:ref", documentHandler.Remove)
			}
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// newBlobStore builds the attachment store for the configured driver.
func newBlobStore(cfg config.StorageConfig) (blob.Store, error) {
	switch cfg.Driver {
	case "s3":
		return blob.NewS3(context.Background(), blob.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			PathStyle:       cfg.S3PathStyle,
			PresignExpiry:   cfg.PresignExpiry,
		})
	case "fs":
		return blob.NewFilesystem(cfg.FilesystemRoot, cfg.DownloadURLBase)
	default:
		return nil, fmt.Errorf("invalid storage driver: %s", cfg.Driver)
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
