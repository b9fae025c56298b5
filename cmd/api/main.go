// ABOUTME: Main entry point for the Student Performance API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studentperf-api/api"
	"studentperf-api/api/handlers"
	"studentperf-api/core/clustering"
	"studentperf-api/core/interfaces"
	"studentperf-api/core/model"
	"studentperf-api/core/prediction"
	"studentperf-api/infrastructure/cache/memory"
	"studentperf-api/infrastructure/cache/noop"
	"studentperf-api/infrastructure/cache/redis"
	logruslogger "studentperf-api/infrastructure/logger/logrus"
	"studentperf-api/pkg/auth"
	"studentperf-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting Student Performance API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"environment": cfg.Environment,
	})

	// Create cache. The Redis store is constructed even when the backend
	// is unreachable; it reconnects lazily, so startup never blocks on it.
	var cache interfaces.CacheStore
	switch cfg.Cache.Type {
	case "redis":
		redisStore, err := redis.NewRedisStore(cfg.Cache.Redis, logger)
		if err != nil {
			logger.Error("Failed to create Redis store, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryStore(cfg.Cache.PredictTTL)
		} else {
			cache = redisStore
			logger.Info("Using Redis cache", map[string]interface{}{
				"url": cfg.Cache.Redis.URL,
			})
		}
	case "none":
		cache = noop.NewNoopStore()
		logger.Info("Caching disabled", nil)
	default:
		cache = memory.NewMemoryStore(cfg.Cache.PredictTTL)
		logger.Info("Using memory cache", nil)
	}
	defer cache.Close()

	// Load exported model parameters
	artifacts, err := model.LoadArtifacts(cfg.Model.ArtifactsDir)
	if err != nil {
		log.Fatalf("Failed to load model artifacts: %v", err)
	}
	logger.Info("Model artifacts loaded", map[string]interface{}{
		"dir":      cfg.Model.ArtifactsDir,
		"features": len(artifacts.Scaler.Mean),
		"clusters": len(artifacts.KMeans.Centroids),
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	// Create services
	predictionService := prediction.NewService(deps, artifacts, cfg.Cache.PredictTTL, cfg.Cache.BatchTTL)
	clusteringService := clustering.NewService(deps, artifacts, cfg.Cache.PredictTTL, cfg.Cache.BatchTTL)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
		APIKey:    cfg.Auth.APIKey,
		Tokens:    tokens,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	predictHandler := handlers.NewPredictHandler(predictionService)
	predictHandler.RegisterRoutes(humaAPI)

	clusterHandler := handlers.NewClusterHandler(clusteringService)
	clusterHandler.RegisterRoutes(humaAPI)

	adminHandler := handlers.NewAdminHandler(cache)
	adminHandler.RegisterRoutes(humaAPI)

	authHandler := handlers.NewAuthHandler(cfg.Auth.APIKey, tokens)
	authHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(cache, cfg.Environment)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
