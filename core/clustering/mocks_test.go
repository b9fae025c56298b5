package clustering

import (
	"context"
	"sync"
	"time"

	"studentperf-api/core/domain"
	"studentperf-api/core/interfaces"
)

// mapCache is an in-memory CacheStore backed by a plain map.
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return true
}

func (m *mapCache) GetMany(ctx context.Context, keys []string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	results := make([][]byte, len(keys))
	for i, key := range keys {
		results[i] = m.entries[key]
	}
	return results
}

func (m *mapCache) SetMany(ctx context.Context, entries map[string]interfaces.Entry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, entry := range entries {
		m.entries[key] = entry.Value
	}
	return true
}

func (m *mapCache) Clear(ctx context.Context, pattern string) int { return 0 }

func (m *mapCache) Stats(ctx context.Context) domain.CacheStats {
	return domain.CacheStats{Connected: true}
}

func (m *mapCache) Ping(ctx context.Context) error { return nil }

func (m *mapCache) Close() error { return nil }

// downCache simulates a completely unreachable backend.
type downCache struct{}

func (d *downCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (d *downCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	return false
}

func (d *downCache) GetMany(ctx context.Context, keys []string) [][]byte {
	return make([][]byte, len(keys))
}

func (d *downCache) SetMany(ctx context.Context, entries map[string]interfaces.Entry) bool {
	return false
}

func (d *downCache) Clear(ctx context.Context, pattern string) int { return 0 }

func (d *downCache) Stats(ctx context.Context) domain.CacheStats {
	return domain.CacheStats{Connected: false}
}

func (d *downCache) Ping(ctx context.Context) error { return context.DeadlineExceeded }

func (d *downCache) Close() error { return nil }

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
