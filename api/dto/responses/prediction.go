// ABOUTME: Response DTOs for prediction, clustering, auth and admin endpoints
// ABOUTME: Wire shapes match the external interface contract of the API

package responses

import "studentperf-api/core/domain"

// ScorePredictionResponse is the single score prediction result
type ScorePredictionResponse struct {
	PredictedScore float64 `json:"predicted_score" doc:"Predicted assignment score"`
	Cached         bool    `json:"cached" doc:"Whether the result came from the cache"`
}

// ClusterPredictionResponse is the single persona assignment result
type ClusterPredictionResponse struct {
	ClusterLabel int    `json:"cluster_label" doc:"Assigned cluster label"`
	PersonaName  string `json:"persona_name" doc:"Human-readable persona"`
	Confidence   string `json:"confidence" doc:"Qualitative confidence marker"`
	Cached       bool   `json:"cached" doc:"Whether the result came from the cache"`
}

// ScoreBatchPrediction is one entry of a batch scoring result
type ScoreBatchPrediction struct {
	StudentIndex   int     `json:"student_index" doc:"Position in the submitted batch"`
	PredictedScore float64 `json:"predicted_score"`
	Cached         bool    `json:"cached"`
}

// BatchScorePredictionResponse is the full batch scoring result
type BatchScorePredictionResponse struct {
	Predictions      []ScoreBatchPrediction `json:"predictions"`
	TotalProcessed   int                    `json:"total_processed"`
	CacheHits        int                    `json:"cache_hits"`
	ProcessingTimeMS float64                `json:"processing_time_ms"`
}

// ClusterBatchPrediction is one entry of a batch clustering result
type ClusterBatchPrediction struct {
	StudentIndex int    `json:"student_index" doc:"Position in the submitted batch"`
	ClusterLabel int    `json:"cluster_label"`
	PersonaName  string `json:"persona_name"`
	Confidence   string `json:"confidence"`
	Cached       bool   `json:"cached"`
}

// BatchClusterPredictionResponse is the full batch clustering result
type BatchClusterPredictionResponse struct {
	Predictions       []ClusterBatchPrediction `json:"predictions"`
	TotalProcessed    int                      `json:"total_processed"`
	CacheHits         int                      `json:"cache_hits"`
	ProcessingTimeMS  float64                  `json:"processing_time_ms"`
	AvailablePersonas []string                 `json:"available_personas"`
}

// PersonasResponse lists the closed persona enumeration
type PersonasResponse struct {
	Personas       []string       `json:"personas"`
	ClusterMapping map[int]string `json:"cluster_mapping"`
	TotalClusters  int            `json:"total_clusters"`
}

// CacheStatsResponse reports cache backend statistics
type CacheStatsResponse struct {
	domain.CacheStats
}

// ClearCacheResponse reports the outcome of an administrative bulk clear
type ClearCacheResponse struct {
	Message string `json:"message"`
	Pattern string `json:"pattern"`
	Cleared int    `json:"cleared"`
}

// LoginResponse carries an issued bearer token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
	Cache       string `json:"cache"`
}
