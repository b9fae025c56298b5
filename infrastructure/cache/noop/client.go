// ABOUTME: No-op cache store used when caching is disabled
// ABOUTME: Every lookup is a miss and every write is dropped; selected once at startup

package noop

import (
	"context"
	"errors"
	"time"

	"studentperf-api/core/domain"
	"studentperf-api/core/interfaces"
)

// NoopStore implements the CacheStore interface with caching disabled.
// Callers observe the same behavior as a permanently unreachable backend,
// without any connection attempts.
type NoopStore struct{}

// NewNoopStore creates a new disabled cache store
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (NoopStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	return false
}

func (NoopStore) GetMany(ctx context.Context, keys []string) [][]byte {
	return make([][]byte, len(keys))
}

func (NoopStore) SetMany(ctx context.Context, entries map[string]interfaces.Entry) bool {
	return false
}

func (NoopStore) Clear(ctx context.Context, pattern string) int { return 0 }

func (NoopStore) Stats(ctx context.Context) domain.CacheStats {
	return domain.CacheStats{
		Connected: false,
		Error:     "caching disabled",
	}
}

func (NoopStore) Ping(ctx context.Context) error { return errors.New("caching disabled") }

func (NoopStore) Close() error { return nil }
