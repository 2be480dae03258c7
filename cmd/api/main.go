package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.bumpjournal/internal/auth"
	"io.winapps.bumpjournal/internal/config"
	"io.winapps.bumpjournal/internal/db"
	"io.winapps.bumpjournal/internal/handlers"
	"io.winapps.bumpjournal/internal/journal"
	"io.winapps.bumpjournal/internal/localstore"
	"io.winapps.bumpjournal/internal/media"
	"io.winapps.bumpjournal/internal/middleware"
	"io.winapps.bumpjournal/internal/recorder"
	"io.winapps.bumpjournal/internal/remotestore"
	"io.winapps.bumpjournal/internal/transcribe"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize PostgreSQL
	postgresDB, err := db.InitPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer postgresDB.Close()

	// Initialize Redis
	redisClient, err := db.InitRedis(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize the local SQLite-backed store
	localKV, err := localstore.OpenSQLite(cfg.LocalDBPath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer localKV.Close()

	local := localstore.New(localKV, logger)
	remote := remotestore.New(postgresDB, redisClient, logger)
	service := journal.NewService(local, remote, logger)

	// Session manager for the mock auth layer
	manager := auth.NewManager(redisClient, cfg.JWTSecret, cfg.JWTExpiryDuration)

	// Media files and the audio capture pipeline
	files := media.NewFileStore(cfg.MediaDir)
	device := recorder.NewPushDevice()
	rec := recorder.New(device, recorder.SinkFunc(files.SaveCapture))

	// Background sync sweep for entries written while offline
	scheduler := journal.NewSyncScheduler(service, manager, logger)
	if err := scheduler.Start(cfg.SyncSchedule); err != nil {
		log.Fatalf("Failed to start sync scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware for mobile app
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(manager, service, logger)
	entryHandler := handlers.NewEntryHandler(service, files, logger)
	groupsHandler := handlers.NewGroupsHandler(service, logger)
	recordingHandler := handlers.NewRecordingHandler(rec, device, transcribe.Mock(), logger)

	// Define routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/create-account", authHandler.CreateAccount)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", middleware.AuthMiddleware(manager), authHandler.Logout)
		}

		// Entry routes allow guest mode: without a session they operate
		// on the local store only.
		entries := v1.Group("/entries")
		entries.Use(middleware.OptionalAuthMiddleware(manager))
		{
			entries.POST("/list-entries", entryHandler.ListEntries)
			entries.POST("/list-favorites", entryHandler.ListFavorites)
			entries.POST("/get-entry", entryHandler.GetEntry)
			entries.POST("/create-entry", entryHandler.CreateEntry)
			entries.POST("/update-entry", entryHandler.UpdateEntry)
			entries.POST("/delete-entry", entryHandler.DeleteEntry)
			entries.POST("/toggle-favorite", entryHandler.ToggleFavorite)
			entries.POST("/update-mood", entryHandler.UpdateMood)
			entries.POST("/update-kick-count", entryHandler.UpdateKickCount)
			entries.POST("/update-sharing", entryHandler.UpdateSharing)
			entries.POST("/add-image", entryHandler.AddImage)
			entries.POST("/remove-image", entryHandler.RemoveImage)
			entries.POST("/add-audio", entryHandler.AddAudio)
			entries.POST("/remove-audio", entryHandler.RemoveAudio)
		}

		groups := v1.Group("/groups")
		groups.Use(middleware.OptionalAuthMiddleware(manager))
		{
			groups.POST("/list-groups", groupsHandler.ListGroups)
			groups.POST("/create-group", groupsHandler.CreateGroup)
			groups.POST("/delete-group", groupsHandler.DeleteGroup)
			groups.POST("/add-member", groupsHandler.AddMember)
			groups.POST("/group-feed", groupsHandler.GroupFeed)
			groups.POST("/add-comment", groupsHandler.AddComment)
			groups.POST("/toggle-like", groupsHandler.ToggleLike)
		}

		recordings := v1.Group("/recordings")
		{
			recordings.POST("/start", recordingHandler.Start)
			recordings.POST("/chunk", recordingHandler.Chunk)
			recordings.POST("/pause", recordingHandler.Pause)
			recordings.POST("/resume", recordingHandler.Resume)
			recordings.POST("/stop", recordingHandler.Stop)
			recordings.POST("/cancel", recordingHandler.Cancel)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Serve static image files
	router.Static("/images", filepath.Join(cfg.MediaDir, "images"))

	// Serve static audio files
	router.Static("/audio", filepath.Join(cfg.MediaDir, "audio"))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Infow("server exited")
}
