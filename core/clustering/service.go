// ABOUTME: Persona clustering service combining cache lookups with KMeans inference
// ABOUTME: Maps cluster labels through the closed persona enumeration

package clustering

import (
	"context"
	"encoding/json"
	"time"

	"studentperf-api/core/batch"
	"studentperf-api/core/cachekey"
	"studentperf-api/core/domain"
	"studentperf-api/core/interfaces"
	"studentperf-api/core/model"
)

// Service handles student persona assignment
type Service struct {
	deps      interfaces.Dependencies
	scaler    *model.Scaler
	kmeans    *model.KMeans
	singleTTL time.Duration
	batchTTL  time.Duration
}

// NewService creates a new clustering service
func NewService(deps interfaces.Dependencies, artifacts *model.Artifacts, singleTTL, batchTTL time.Duration) *Service {
	return &Service{
		deps:      deps,
		scaler:    artifacts.Scaler,
		kmeans:    artifacts.KMeans,
		singleTTL: singleTTL,
		batchTTL:  batchTTL,
	}
}

// AssignPersona assigns one student to a persona. The second return
// reports whether the result came from the cache.
func (s *Service) AssignPersona(ctx context.Context, features domain.StudentFeatures) (domain.ClusterResult, bool, error) {
	key := cachekey.Derive(cachekey.PrefixCluster, features)

	if payload, ok := s.deps.Cache.Get(ctx, key); ok {
		var result domain.ClusterResult
		if err := json.Unmarshal(payload, &result); err == nil {
			return result, true, nil
		}
		s.deps.Logger.Warn("discarding unreadable cache payload", map[string]interface{}{
			"key": key,
		})
	}

	results, err := s.infer(ctx, []domain.StudentFeatures{features})
	if err != nil {
		return domain.ClusterResult{}, false, err
	}
	result := results[0]

	if payload, err := json.Marshal(result); err == nil {
		s.deps.Cache.Set(ctx, key, payload, s.singleTTL)
	}

	return result, false, nil
}

// AssignPersonaBatch assigns personas for up to 100 students, serving
// repeated inputs from the cache and restoring input order in the output.
func (s *Service) AssignPersonaBatch(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ClusterResult], error) {
	cfg := batch.Config{
		KeyPrefix: cachekey.PrefixCluster,
		TTL:       s.batchTTL,
	}
	return batch.Run(ctx, s.deps, cfg, records, s.infer)
}

// infer runs the clustering model over records in one vectorized pass.
func (s *Service) infer(ctx context.Context, records []domain.StudentFeatures) ([]domain.ClusterResult, error) {
	vectors := make([][]float64, len(records))
	for i, record := range records {
		vectors[i] = record.Vector()
	}

	scaled, err := s.scaler.TransformMany(vectors)
	if err != nil {
		return nil, err
	}

	labels, err := s.kmeans.PredictMany(scaled)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ClusterResult, len(labels))
	for i, label := range labels {
		results[i] = domain.ClusterResult{
			ClusterLabel: label,
			PersonaName:  domain.PersonaFor(label),
			Confidence:   domain.DefaultConfidence,
		}
	}
	return results, nil
}
