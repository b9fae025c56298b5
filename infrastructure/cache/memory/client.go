// ABOUTME: In-memory cache store implementation using go-cache with TTL support
// ABOUTME: Used for development and tests; satisfies the same fail-soft contract as Redis

package memory

import (
	"context"
	"fmt"
	"path"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"studentperf-api/core/domain"
	"studentperf-api/core/interfaces"
)

// cleanupInterval controls how often expired entries are purged.
const cleanupInterval = time.Minute

// MemoryStore implements the CacheStore interface with an in-process map.
type MemoryStore struct {
	cache    *gocache.Cache
	hits     atomic.Int64
	misses   atomic.Int64
	commands atomic.Int64
}

// NewMemoryStore creates a new in-memory cache store
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
	s.commands.Add(1)

	value, ok := s.cache.Get(key)
	if !ok {
		s.misses.Add(1)
		return nil, false
	}

	payload, ok := value.([]byte)
	if !ok {
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	result := make([]byte, len(payload))
	copy(result, payload)
	return result, true
}

// Set stores a value in the cache with the given TTL
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	s.commands.Add(1)

	stored := make([]byte, len(value))
	copy(stored, value)
	s.cache.Set(key, stored, ttl)
	return true
}

// GetMany retrieves multiple keys; the result always has exactly
// len(keys) elements in key order.
func (s *MemoryStore) GetMany(ctx context.Context, keys []string) [][]byte {
	results := make([][]byte, len(keys))
	for i, key := range keys {
		if value, ok := s.Get(ctx, key); ok {
			results[i] = value
		}
	}
	return results
}

// SetMany stores multiple entries
func (s *MemoryStore) SetMany(ctx context.Context, entries map[string]interfaces.Entry) bool {
	for key, entry := range entries {
		s.Set(ctx, key, entry.Value, entry.TTL)
	}
	return true
}

// Clear removes entries matching a glob-style pattern
func (s *MemoryStore) Clear(ctx context.Context, pattern string) int {
	s.commands.Add(1)

	deleted := 0
	for key := range s.cache.Items() {
		if matched, err := path.Match(pattern, key); err == nil && matched {
			s.cache.Delete(key)
			deleted++
		}
	}
	return deleted
}

// Stats returns in-process cache statistics
func (s *MemoryStore) Stats(ctx context.Context) domain.CacheStats {
	hits := s.hits.Load()
	misses := s.misses.Load()

	return domain.CacheStats{
		Connected:              true,
		KeyspaceHits:           hits,
		KeyspaceMisses:         misses,
		UsedMemory:             fmt.Sprintf("%d items", s.cache.ItemCount()),
		TotalCommandsProcessed: s.commands.Load(),
		HitRate:                domain.HitRate(hits, misses),
	}
}

// Ping always succeeds for the in-process store
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close flushes the store
func (s *MemoryStore) Close() error {
	s.cache.Flush()
	return nil
}
