package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/carrental/internal/config"
	"github.com/joshua-takyi/carrental/internal/connect"
	"github.com/joshua-takyi/carrental/internal/container"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local", ".env")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting car rental API server", "environment", cfg.Environment)

	if err := helpers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize database connections
	db, err := connect.PostgresConnect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	if err := models.Migrate(ctx, db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	var mongoClient *mongo.Client
	if cfg.MongoDBURI != "" {
		mongoClient, err = connect.MongoDBConnect(ctx, cfg.MongoDBURI, logger)
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		if err := models.MongodbNewRepo(mongoClient, cfg.MongoDBDatabase).EnsureIndexes(ctx); err != nil {
			logger.Warn("Failed to create booking event indexes", "error", err)
		}
	} else {
		logger.Info("MONGODB_URI not set, booking events are not recorded")
	}

	images, err := imageStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to Cloudinary", "error", err)
		os.Exit(1)
	}

	// Initialize dependency container
	repos := container.StoreRepositories(db, mongoClient, cfg.MongoDBDatabase)
	appContainer := container.NewContainer(logger, cfg, repos, images)

	// Setup routes
	router := routes.SetupRoutes(appContainer)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Close database connections
	if err := connect.PostgresDisconnect(db); err != nil {
		logger.Error("Error disconnecting from PostgreSQL", "error", err)
	}
	if err := connect.MongoDBDisconnect(mongoClient); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

// imageStore prefers Cloudinary and falls back to the local upload dir.
func imageStore(cfg *config.Config, logger *slog.Logger) (helpers.ImageStore, error) {
	if !cfg.HasCloudinary() {
		logger.Info("Cloudinary not configured, storing uploads on disk", "dir", cfg.UploadDir)
		return helpers.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL), nil
	}
	cld, err := connect.CloudinaryCredentials(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, err
	}
	logger.Info("Cloudinary connected successfully")
	return helpers.NewCloudinaryStore(cld), nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
