package batch

import (
	"context"
	"sync"
	"time"

	"studentperf-api/core/domain"
	"studentperf-api/core/interfaces"
)

// mockCache is a mock implementation of the CacheStore interface
type mockCache struct {
	getFunc     func(ctx context.Context, key string) ([]byte, bool)
	setFunc     func(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	getManyFunc func(ctx context.Context, keys []string) [][]byte
	setManyFunc func(ctx context.Context, entries map[string]interfaces.Entry) bool
	clearFunc   func(ctx context.Context, pattern string) int
	statsFunc   func(ctx context.Context) domain.CacheStats
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, false
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return true
}

func (m *mockCache) GetMany(ctx context.Context, keys []string) [][]byte {
	if m.getManyFunc != nil {
		return m.getManyFunc(ctx, keys)
	}
	return make([][]byte, len(keys))
}

func (m *mockCache) SetMany(ctx context.Context, entries map[string]interfaces.Entry) bool {
	if m.setManyFunc != nil {
		return m.setManyFunc(ctx, entries)
	}
	return true
}

func (m *mockCache) Clear(ctx context.Context, pattern string) int {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, pattern)
	}
	return 0
}

func (m *mockCache) Stats(ctx context.Context) domain.CacheStats {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return domain.CacheStats{}
}

func (m *mockCache) Ping(ctx context.Context) error { return nil }

func (m *mockCache) Close() error { return nil }

// mapCache is an in-memory CacheStore backed by a plain map, used to
// exercise hit/miss partitioning and write-back behavior.
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

func (m *mapCache) Clear(ctx context.Context, pattern string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := len(m.entries)
	m.entries = make(map[string][]byte)
	return count
}

func (m *mapCache) Stats(ctx context.Context) domain.CacheStats {
	return domain.CacheStats{Connected: true}
}

func (m *mapCache) Ping(ctx context.Context) error { return nil }

func (m *mapCache) Close() error { return nil }

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
