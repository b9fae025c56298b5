// ABOUTME: Score prediction service combining cache lookups with regression inference
// ABOUTME: Provides business logic for single and batch scoring independent of HTTP layer

package prediction

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

// Service handles assignment-score prediction
type Service struct {
	deps      interfaces.Dependencies
	scaler    *model.Scaler
	regressor *model.Regressor
	singleTTL time.Duration
	batchTTL  time.Duration
}

// NewService creates a new score prediction service
func NewService(deps interfaces.Dependencies, artifacts *model.Artifacts, singleTTL, batchTTL time.Duration) *Service {
	return &Service{
		deps:      deps,
		scaler:    artifacts.Scaler,
		regressor: artifacts.Regressor,
		singleTTL: singleTTL,
		batchTTL:  batchTTL,
	}
}

// PredictScore predicts the assignment score for one student. The second
// return reports whether the result came from the cache.
func (s *Service) PredictScore(ctx context.Context, features domain.StudentFeatures) (domain.ScoreResult, bool, error) {
	key := cachekey.Derive(cachekey.PrefixPredict, features)

	if payload, ok := s.deps.Cache.Get(ctx, key); ok {
		var result domain.ScoreResult
		if err := json.Unmarshal(payload, &result); err == nil {
			return result, true, nil
		}
		s.deps.Logger.Warn("discarding unreadable cache payload", map[string]interface{}{
			"key": key,
		})
	}

	results, err := s.infer(ctx, []domain.StudentFeatures{features})
	if err != nil {
		return domain.ScoreResult{}, false, err
	}
	result := results[0]

	if payload, err := json.Marshal(result); err == nil {
		s.deps.Cache.Set(ctx, key, payload, s.singleTTL)
	}

	return result, false, nil
}

// PredictScoreBatch predicts scores for up to 100 students, serving
// repeated inputs from the cache and restoring input order in the output.
func (s *Service) PredictScoreBatch(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ScoreResult], error) {
	cfg := batch.Config{
		KeyPrefix: cachekey.PrefixPredict,
		TTL:       s.batchTTL,
	}
	return batch.Run(ctx, s.deps, cfg, records, s.infer)
}

// infer runs the regression model over records in one vectorized pass.
func (s *Service) infer(ctx context.Context, records []domain.StudentFeatures) ([]domain.ScoreResult, error) {
	vectors := make([][]float64, len(records))
	for i, record := range records {
		vectors[i] = record.Vector()
	}

	scaled, err := s.scaler.TransformMany(vectors)
	if err != nil {
		return nil, err
	}

	scores, err := s.regressor.PredictMany(scaled)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ScoreResult, len(scores))
	for i, score := range scores {
		results[i] = domain.ScoreResult{PredictedScore: score}
	}
	return results, nil
}
