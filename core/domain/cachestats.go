// ABOUTME: Cache statistics type and hit-rate derivation
// ABOUTME: Shared by all CacheStore implementations and the admin endpoints

package domain

import "math"

// CacheStats describes the state of a cache backend.
type CacheStats struct {
	Connected              bool    `json:"connected"`
	KeyspaceHits           int64   `json:"keyspace_hits"`
	KeyspaceMisses         int64   `json:"keyspace_misses"`
	UsedMemory             string  `json:"used_memory"`
	UsedMemoryBytes        int64   `json:"used_memory_bytes"`
	TotalCommandsProcessed int64   `json:"total_commands_processed"`
	HitRate                float64 `json:"hit_rate"`
	Error                  string  `json:"error,omitempty"`
}

// HitRate calculates the cache hit rate as a percentage rounded to two
// decimals. Returns 0 when no lookups have been recorded.
func HitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0.0
	}
	rate := float64(hits) / float64(total) * 100
	return math.Round(rate*100) / 100
}
