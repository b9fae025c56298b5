// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, auth and model settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Model contains model artifact configuration
	Model ModelConfig

	// Auth contains authentication configuration
	Auth AuthConfig

	// Environment is the deployment environment (development/production)
	Environment string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per second per client IP
	RateLimit int

	// RateBurst is the per-client burst allowance
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/none)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// PredictTTL is the expiration for single-prediction entries
	PredictTTL time.Duration

	// BatchTTL is the expiration for batch write-back entries
	BatchTTL time.Duration
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is the Redis connection URL (redis://...)
	URL string

	// DialTimeout bounds connection establishment
	DialTimeout time.Duration

	// ReadTimeout bounds socket reads
	ReadTimeout time.Duration

	// WriteTimeout bounds socket writes
	WriteTimeout time.Duration

	// PoolSize is the maximum number of pooled connections
	PoolSize int

	// PoolTimeout bounds waiting for a pooled connection
	PoolTimeout time.Duration
}

// ModelConfig holds model artifact configuration
type ModelConfig struct {
	// ArtifactsDir is the directory holding the exported model parameters
	ArtifactsDir string
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// APIKey is the static key expected in the X-API-Key header
	APIKey string

	// JWTSecret signs and verifies bearer tokens
	JWTSecret string

	// TokenExpiry is the lifetime of issued tokens
	TokenExpiry time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "redis"),
			Redis: RedisConfig{
				URL:          getEnvOrDefault("REDIS_URL", "redis://localhost:6379"),
				DialTimeout:  getEnvAsDurationOrDefault("REDIS_DIAL_TIMEOUT", 10*time.Second),
				ReadTimeout:  getEnvAsDurationOrDefault("REDIS_READ_TIMEOUT", 10*time.Second),
				WriteTimeout: getEnvAsDurationOrDefault("REDIS_WRITE_TIMEOUT", 10*time.Second),
				PoolSize:     getEnvAsIntOrDefault("REDIS_POOL_SIZE", 50),
				PoolTimeout:  getEnvAsDurationOrDefault("REDIS_POOL_TIMEOUT", 10*time.Second),
			},
			PredictTTL: getEnvAsDurationOrDefault("CACHE_PREDICT_TTL", 5*time.Minute),
			BatchTTL:   getEnvAsDurationOrDefault("CACHE_BATCH_TTL", 5*time.Minute),
		},
		Model: ModelConfig{
			ArtifactsDir: getEnvOrDefault("MODEL_ARTIFACTS_DIR", "models"),
		},
		Auth: AuthConfig{
			APIKey:      getEnvOrDefault("API_KEY", "demo_key"),
			JWTSecret:   getEnvOrDefault("JWT_SECRET_KEY", "secret"),
			TokenExpiry: getEnvAsDurationOrDefault("TOKEN_EXPIRY", 30*time.Minute),
		},
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a duration
// (accepting either Go duration syntax or plain seconds) or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request per second")
	}

	switch c.Cache.Type {
	case "redis", "memory", "none":
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'none'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.URL == "" {
		return errors.New("redis URL cannot be empty when using redis cache")
	}

	if c.Cache.PredictTTL <= 0 || c.Cache.BatchTTL <= 0 {
		return errors.New("cache TTLs must be positive")
	}

	if c.Model.ArtifactsDir == "" {
		return errors.New("model artifacts directory cannot be empty")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT secret cannot be empty")
	}

	return nil
}
