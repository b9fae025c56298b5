// ABOUTME: Deterministic cache-key derivation from student feature records
// ABOUTME: Canonical sorted-field serialization hashed to a compact namespaced key

package cachekey

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"studentperf-api/core/domain"
)

// Namespace prefixes keep the scoring and clustering models in disjoint
// key spaces. The two models consume the same feature shape, so without a
// prefix an identical record would collide across model types.
const (
	PrefixPredict = "predict"
	PrefixCluster = "cluster"
)

// keyHashLen is the hex prefix length kept from the digest. 16 hex chars
// (64 bits) is plenty against collisions over numeric feature ranges
// while keeping keys compact for a memory-constrained Redis deployment.
const keyHashLen = 16

// Derive maps a feature record to a stable cache key.
//
// The record is serialized to canonical JSON with field names in sorted
// order, hashed, and truncated. The function is pure: no I/O, no salt,
// same input yields the same key across process restarts. Records with
// identical field values always derive identical keys regardless of how
// the caller assembled them.
func Derive(prefix string, features domain.StudentFeatures) string {
	// encoding/json marshals map keys in sorted order, which gives the
	// canonical field ordering for free.
	canonical, _ := json.Marshal(map[string]interface{}{
		"comprehension":   features.Comprehension,
		"attention":       features.Attention,
		"focus":           features.Focus,
		"retention":       features.Retention,
		"engagement_time": features.EngagementTime,
	})

	digest := md5.Sum(canonical)
	return prefix + ":" + hex.EncodeToString(digest[:])[:keyHashLen]
}
