// ABOUTME: Generic batch orchestration shared by the score and cluster services
// ABOUTME: Partitions records into cache hits and misses, infers misses, restores order

package batch

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"studentperf-api/core/cachekey"
	"studentperf-api/core/domain"
	coreerrors "studentperf-api/core/errors"
	"studentperf-api/core/interfaces"
)

// Processing limits. MaxBatchSize bounds per-request cost; SubBatchSize
// bounds the size of a single pipelined round trip against the backend.
const (
	MaxBatchSize = 100
	SubBatchSize = 25
)

// Config parameterizes a batch run for one model type.
type Config struct {
	// KeyPrefix namespaces this model's cache keys.
	KeyPrefix string

	// TTL applied to write-backs for newly inferred results.
	TTL time.Duration
}

// InferFunc produces one result per record, in submission order.
// An error fails the whole batch; there is no per-item recovery.
type InferFunc[R any] func(ctx context.Context, records []domain.StudentFeatures) ([]R, error)

// Run executes the batch algorithm over records:
// validate size, split into sub-batches, bulk-lookup each sub-batch,
// infer the misses in one vectorized call, write new results back
// (fire-and-forget), then merge and restore the caller's input order.
//
// The cache is purely an optimization here. With the backend completely
// unavailable every record flows through infer and the output is still
// correct, with zero reported hits.
func Run[R any](ctx context.Context, deps interfaces.Dependencies, cfg Config, records []domain.StudentFeatures, infer InferFunc[R]) (*domain.BatchOutcome[R], error) {
	if len(records) == 0 {
		return nil, &coreerrors.ValidationError{Field: "students", Message: "at least one student required"}
	}
	if len(records) > MaxBatchSize {
		return nil, &coreerrors.ValidationError{Field: "students", Message: "batch size exceeds maximum of 100"}
	}

	start := time.Now()
	results := make([]domain.BatchItem[R], 0, len(records))
	cacheHits := 0

	for subStart := 0; subStart < len(records); subStart += SubBatchSize {
		subEnd := subStart + SubBatchSize
		if subEnd > len(records) {
			subEnd = len(records)
		}
		sub := records[subStart:subEnd]

		keys := make([]string, len(sub))
		for i, record := range sub {
			keys[i] = cachekey.Derive(cfg.KeyPrefix, record)
		}

		cached := deps.Cache.GetMany(ctx, keys)

		var uncached []domain.StudentFeatures
		var uncachedIndices []int
		for i, payload := range cached {
			index := subStart + i

			if payload != nil {
				var result R
				if err := json.Unmarshal(payload, &result); err == nil {
					results = append(results, domain.BatchItem[R]{
						StudentIndex: index,
						Result:       result,
						Cached:       true,
					})
					cacheHits++
					continue
				}
				// Corrupt payload is a miss, nothing more.
				deps.Logger.Warn("discarding unreadable cache payload", map[string]interface{}{
					"key": keys[i],
				})
			}

			uncached = append(uncached, sub[i])
			uncachedIndices = append(uncachedIndices, index)
		}

		if len(uncached) == 0 {
			continue
		}

		inferred, err := infer(ctx, uncached)
		if err != nil {
			return nil, err
		}
		if len(inferred) != len(uncached) {
			return nil, &coreerrors.InferenceError{
				Model:   cfg.KeyPrefix,
				Message: "result count does not match submitted record count",
			}
		}

		writeBack := make(map[string]interfaces.Entry, len(inferred))
		for i, result := range inferred {
			results = append(results, domain.BatchItem[R]{
				StudentIndex: uncachedIndices[i],
				Result:       result,
				Cached:       false,
			})

			if payload, err := json.Marshal(result); err == nil {
				writeBack[cachekey.Derive(cfg.KeyPrefix, uncached[i])] = interfaces.Entry{
					Value: payload,
					TTL:   cfg.TTL,
				}
			}
		}

		// Fire-and-forget: a failed write-back only forfeits future hits.
		if !deps.Cache.SetMany(ctx, writeBack) {
			deps.Logger.Warn("batch cache write-back failed", map[string]interface{}{
				"entries": len(writeBack),
			})
		}
	}

	// Hits and misses are discovered in separate passes, so restore the
	// caller's input ordering before returning.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StudentIndex < results[j].StudentIndex
	})

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	return &domain.BatchOutcome[R]{
		Predictions:      results,
		TotalProcessed:   len(records),
		CacheHits:        cacheHits,
		ProcessingTimeMS: math.Round(elapsed*100) / 100,
	}, nil
}
