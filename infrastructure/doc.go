// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/redis: Redis-backed cache store with pipelined multi-key operations
// - cache/memory: In-process cache store built on go-cache
// - cache/noop: Disabled cache store that always misses
// - logger/logrus: Structured logger implementation built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Fail-soft: Backend trouble degrades to cache misses, never to errors
//
// # Cache Implementations
//
// All three cache stores implement interfaces.CacheStore. The backend is
// picked once at startup from configuration:
//
//	store, err := redis.NewRedisStore(cfg.Cache.Redis, logger)
//
//	store := memory.NewMemoryStore(5 * time.Minute)
//
//	store := noop.NewNoopStore()
//
// The Redis store reconnects lazily. Construction succeeds even when the
// backend is unreachable, and every operation re-checks connectivity with
// at most one reconnect attempt before degrading to a miss.
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "request_id": "123",
//	    "path":       "/predict",
//	})
package infrastructure
