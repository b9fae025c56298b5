// ABOUTME: CacheStore interface defines the fail-soft cache contract used by the services
// ABOUTME: Implementations can be Redis, in-memory, or a no-op store selected at startup

package interfaces

import (
	"context"
	"time"

	"studentperf-api/core/domain"
)

// Entry is a value to be written together with its expiration.
type Entry struct {
	Value []byte
	TTL   time.Duration
}

// CacheStore defines the cache operations used by the prediction services.
//
// Every method is fail-soft: connectivity problems, timeouts and corrupt
// payloads degrade to "absent" or "false" and are logged inside the
// implementation. Callers never need their own error handling around
// cache calls - caching is an optimization, not a correctness dependency.
type CacheStore interface {
	// Get retrieves a value by key. The second return is false on a miss,
	// on any backend error, or when the stored payload cannot be read.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with the given TTL. Returns false if the write
	// did not happen; the caller loses future cache benefit, nothing else.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool

	// GetMany retrieves multiple keys in a single pipelined round trip.
	// The result always has exactly len(keys) elements in key order; a nil
	// element is a miss. On total backend failure every element is nil.
	GetMany(ctx context.Context, keys []string) [][]byte

	// SetMany writes multiple entries in a single pipelined round trip.
	SetMany(ctx context.Context, entries map[string]Entry) bool

	// Clear removes entries matching a glob-style pattern using an
	// incremental scan, and returns how many entries were removed.
	Clear(ctx context.Context, pattern string) int

	// Stats returns backend statistics including the derived hit rate.
	Stats(ctx context.Context) domain.CacheStats

	// Ping reports whether the backend is currently reachable.
	Ping(ctx context.Context) error

	// Close releases the backend connections.
	Close() error
}
