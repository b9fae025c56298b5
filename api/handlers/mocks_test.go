// ABOUTME: Shared mock services and cache store for handler tests
// ABOUTME: Mocks use function fields so each test overrides only what it needs

package handlers

import (
	"context"
	"time"

	"studentperf-api/core/domain"
	"studentperf-api/core/interfaces"
)

// mockScoreService is a mock implementation of the score prediction service
type mockScoreService struct {
	predictScoreFunc      func(ctx context.Context, features domain.StudentFeatures) (domain.ScoreResult, bool, error)
	predictScoreBatchFunc func(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ScoreResult], error)
}

func (m *mockScoreService) PredictScore(ctx context.Context, features domain.StudentFeatures) (domain.ScoreResult, bool, error) {
	if m.predictScoreFunc != nil {
		return m.predictScoreFunc(ctx, features)
	}
	return domain.ScoreResult{}, false, nil
}

func (m *mockScoreService) PredictScoreBatch(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ScoreResult], error) {
	if m.predictScoreBatchFunc != nil {
		return m.predictScoreBatchFunc(ctx, records)
	}
	return &domain.BatchOutcome[domain.ScoreResult]{}, nil
}

// mockClusterService is a mock implementation of the clustering service
type mockClusterService struct {
	assignPersonaFunc      func(ctx context.Context, features domain.StudentFeatures) (domain.ClusterResult, bool, error)
	assignPersonaBatchFunc func(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ClusterResult], error)
}

func (m *mockClusterService) AssignPersona(ctx context.Context, features domain.StudentFeatures) (domain.ClusterResult, bool, error) {
	if m.assignPersonaFunc != nil {
		return m.assignPersonaFunc(ctx, features)
	}
	return domain.ClusterResult{}, false, nil
}

func (m *mockClusterService) AssignPersonaBatch(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ClusterResult], error) {
	if m.assignPersonaBatchFunc != nil {
		return m.assignPersonaBatchFunc(ctx, records)
	}
	return &domain.BatchOutcome[domain.ClusterResult]{}, nil
}

// mockCacheStore is a mock implementation of the cache store
type mockCacheStore struct {
	clearFunc func(ctx context.Context, pattern string) int
	statsFunc func(ctx context.Context) domain.CacheStats
	pingFunc  func(ctx context.Context) error
}

func (m *mockCacheStore) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

func (m *mockCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	return false
}

func (m *mockCacheStore) GetMany(ctx context.Context, keys []string) [][]byte {
	return make([][]byte, len(keys))
}

func (m *mockCacheStore) SetMany(ctx context.Context, entries map[string]interfaces.Entry) bool {
	return false
}

func (m *mockCacheStore) Clear(ctx context.Context, pattern string) int {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, pattern)
	}
	return 0
}

func (m *mockCacheStore) Stats(ctx context.Context) domain.CacheStats {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return domain.CacheStats{}
}

func (m *mockCacheStore) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func (m *mockCacheStore) Close() error {
	return nil
}

// sampleStudent returns a valid request body for a single student
func sampleStudent() map[string]interface{} {
	return map[string]interface{}{
		"comprehension":   72.5,
		"attention":       64.0,
		"focus":           58.0,
		"retention":       81.0,
		"engagement_time": 140,
	}
}
