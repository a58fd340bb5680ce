package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"synonym-search/backend/internal/api"
	"synonym-search/backend/internal/seed"
	"synonym-search/backend/internal/services"
	"synonym-search/backend/internal/synonym"
	"synonym-search/backend/pkg/config"
	"synonym-search/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting synonym search server...", zap.String("env", cfg.Env))

	// Initialize dependencies
	store := synonym.NewStore()

	ctx := context.Background()
	if n, err := seed.Load(ctx, store, cfg.SeedFiles); err != nil {
		log.Fatal("Failed to load seed files", zap.Strings("files", cfg.SeedFiles), zap.Error(err))
	} else if n > 0 {
		stats := store.Stats()
		log.Info("Seeded synonym store",
			zap.Int("groups", n),
			zap.Int("words", stats.Words),
			zap.Int("relations", stats.Relations),
		)
	}

	svc := services.NewSynonymService(store, logger.Named("synonyms"), cfg.MaxSynonymsPerRequest)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(cfg, svc, logger.Named("http"))

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started",
		zap.String("port", cfg.Port),
		zap.Bool("transitive_lookup", cfg.TransitiveLookup),
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
