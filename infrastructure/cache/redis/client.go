// ABOUTME: Redis cache store implementation using go-redis client
// ABOUTME: Fail-soft contract with pipelined bulk operations and reconnect-on-failure

package redis

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"studentperf-api/core/domain"
	"studentperf-api/core/interfaces"
	"studentperf-api/pkg/config"
)

// scanBatchSize bounds how many keys a single SCAN iteration returns, so
// a bulk clear never blocks the store on large key spaces.
const scanBatchSize = 100

// RedisStore implements the CacheStore interface using Redis.
//
// Every public method is fail-soft: backend errors are logged and
// degrade to a miss or a failed write, never an error to the caller.
type RedisStore struct {
	mu     sync.Mutex
	client *redis.Client
	opts   *redis.Options
	logger interfaces.Logger
}

// NewRedisStore creates a new Redis cache store from a connection URL.
// The store is returned even when the backend is currently unreachable;
// each operation performs its own health check and reconnects lazily, so
// an outage at startup only costs cache hits, not availability.
func NewRedisStore(cfg config.RedisConfig, logger interfaces.Logger) (*RedisStore, error) {
	if cfg.URL == "" {
		return nil, errors.New("redis URL cannot be empty")
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	opts.PoolSize = cfg.PoolSize
	opts.PoolTimeout = cfg.PoolTimeout

	store := &RedisStore{
		client: redis.NewClient(opts),
		opts:   opts,
		logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := store.client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable at startup, continuing without cache hits", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.Info("redis connection established", map[string]interface{}{
			"addr": opts.Addr,
		})
	}

	return store, nil
}

// getClient returns the current client under the swap lock.
func (s *RedisStore) getClient() *redis.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// ensure verifies connectivity before an operation group. On a failed
// ping it rebuilds the client once and pings again; a second failure
// marks the whole operation group as failed.
func (s *RedisStore) ensure(ctx context.Context) bool {
	client := s.getClient()
	if err := client.Ping(ctx).Err(); err == nil {
		return true
	}

	s.logger.Warn("redis connection lost, attempting to reconnect", nil)

	s.mu.Lock()
	s.client.Close()
	s.client = redis.NewClient(s.opts)
	client = s.client
	s.mu.Unlock()

	if err := client.Ping(ctx).Err(); err != nil {
		s.logger.Warn("redis reconnect failed", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return true
}

// Get retrieves a value by key, treating every failure as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if !s.ensure(ctx) {
		return nil, false
	}

	value, err := s.getClient().Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("redis get failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	return value, true
}

// Set stores a value with a TTL, reporting success.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if !s.ensure(ctx) {
		return false
	}

	if err := s.getClient().Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Warn("redis set failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// GetMany retrieves multiple keys in one pipelined transaction. The
// result always has exactly len(keys) elements in key order.
func (s *RedisStore) GetMany(ctx context.Context, keys []string) [][]byte {
	results := make([][]byte, len(keys))
	if len(keys) == 0 {
		return results
	}
	if !s.ensure(ctx) {
		return results
	}

	cmds := make([]*redis.StringCmd, len(keys))
	_, err := s.getClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = pipe.Get(ctx, key)
		}
		return nil
	})
	if err != nil && err != redis.Nil {
		s.logger.Warn("redis pipelined get failed", map[string]interface{}{
			"keys":  len(keys),
			"error": err.Error(),
		})
		return results
	}

	for i, cmd := range cmds {
		value, err := cmd.Bytes()
		if err != nil {
			continue
		}
		results[i] = value
	}
	return results
}

// SetMany writes multiple entries in one pipelined transaction.
func (s *RedisStore) SetMany(ctx context.Context, entries map[string]interfaces.Entry) bool {
	if len(entries) == 0 {
		return true
	}
	if !s.ensure(ctx) {
		return false
	}

	_, err := s.getClient().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, entry := range entries {
			pipe.Set(ctx, key, entry.Value, entry.TTL)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("redis pipelined set failed", map[string]interface{}{
			"entries": len(entries),
			"error":   err.Error(),
		})
		return false
	}
	return true
}

// Clear removes entries matching a glob-style pattern using SCAN, so the
// store is never blocked by a full keyspace listing.
func (s *RedisStore) Clear(ctx context.Context, pattern string) int {
	if !s.ensure(ctx) {
		return 0
	}

	client := s.getClient()
	var cursor uint64
	deleted := 0

	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			s.logger.Warn("redis scan failed", map[string]interface{}{
				"pattern": pattern,
				"error":   err.Error(),
			})
			return deleted
		}

		if len(keys) > 0 {
			removed, err := client.Del(ctx, keys...).Result()
			if err != nil {
				s.logger.Warn("redis delete failed", map[string]interface{}{
					"pattern": pattern,
					"error":   err.Error(),
				})
				return deleted
			}
			deleted += int(removed)
		}

		cursor = next
		if cursor == 0 {
			return deleted
		}
	}
}

// Stats returns backend statistics derived from INFO.
func (s *RedisStore) Stats(ctx context.Context) domain.CacheStats {
	if !s.ensure(ctx) {
		return domain.CacheStats{
			Connected: false,
			Error:     "unable to connect to redis",
		}
	}

	info, err := s.getClient().Info(ctx).Result()
	if err != nil {
		s.logger.Warn("redis info failed", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.CacheStats{
			Connected: false,
			Error:     err.Error(),
		}
	}

	fields := parseInfo(info)
	hits := fields.int64Value("keyspace_hits")
	misses := fields.int64Value("keyspace_misses")

	return domain.CacheStats{
		Connected:              true,
		KeyspaceHits:           hits,
		KeyspaceMisses:         misses,
		UsedMemory:             fields.stringValue("used_memory_human"),
		UsedMemoryBytes:        fields.int64Value("used_memory"),
		TotalCommandsProcessed: fields.int64Value("total_commands_processed"),
		HitRate:                domain.HitRate(hits, misses),
	}
}

// Ping reports whether the backend is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.getClient().Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.getClient().Close()
}

// infoFields holds the parsed key/value pairs of an INFO response.
type infoFields map[string]string

// parseInfo splits the INFO response into its key:value lines, skipping
// section headers and blank lines.
func parseInfo(info string) infoFields {
	fields := make(infoFields)
	for _, line := range strings.Split(info, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.IndexByte(line, ':'); idx > 0 {
			fields[line[:idx]] = line[idx+1:]
		}
	}
	return fields
}

func (f infoFields) stringValue(key string) string {
	return f[key]
}

func (f infoFields) int64Value(key string) int64 {
	value, err := strconv.ParseInt(f[key], 10, 64)
	if err != nil {
		return 0
	}
	return value
}
