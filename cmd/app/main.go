package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amozeshgah/internal/api/v1/router"
	"amozeshgah/internal/config"
	"amozeshgah/internal/database"
	applogger "amozeshgah/internal/logger"
	"amozeshgah/internal/pubsub"
	"amozeshgah/internal/secrets"
	"amozeshgah/internal/storage"

	"github.com/joho/godotenv"
)

// @title Amozeshgah API
// @version 1.0
// @description Course catalog, purchases and tutor dashboards.
// @host localhost:8080
// @BasePath /api
// @Schemes http https

func main() {
	// 1. Load configuration
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger := applogger.New("production", "info")
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	logger := applogger.New(cfg.Environment, cfg.LogLevel)
	if envErr != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}
	logger.Info().Str("environment", cfg.Environment).Msg("App environment loaded")

	ctx := context.Background()

	// 2. Resolve the database password
	password := cfg.DBPassword
	if cfg.DBPasswordSecret != "" {
		resolver, err := secrets.NewResolver(ctx, cfg)
		if err != nil {
			logger.Fatal().Msgf("Failed to create secret resolver: %v", err)
		}
		password, err = resolver.Resolve(ctx, cfg.DBPasswordSecret)
		resolver.Close()
		if err != nil {
			logger.Fatal().Msgf("Failed to resolve DB password: %v", err)
		}
	}

	// 3. Connection pool, opened on first request
	pool := database.NewManager(database.SettingsFromConfig(cfg, password), logger)
	defer pool.Close()

	// 4. Optional Pub/Sub publisher
	var publisher pubsub.Publisher = pubsub.NopPublisher{}
	if cfg.PubSubEnabled() {
		p, err := pubsub.NewPublisher(ctx, cfg)
		if err != nil {
			logger.Fatal().Msgf("Failed to create Pub/Sub publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	// 5. Optional course image signer
	var images storage.ImageSigner = storage.PassthroughSigner{}
	if cfg.ImageSigningEnabled() {
		s, err := storage.NewS3ImageSigner(ctx, cfg)
		if err != nil {
			logger.Fatal().Msgf("Failed to create image signer: %v", err)
		}
		images = s
	}

	r := router.New(cfg, logger, router.Deps{
		DB:        pool,
		Images:    images,
		Publisher: publisher,
	})

	// 6. Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Msgf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Msgf("Listen: %s", err)
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutdown signal received, exiting...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Msgf("Server forced to shutdown: %v", err)
	}
	logger.Info().Msg("Server shut down gracefully")
}
