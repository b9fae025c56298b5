// ABOUTME: Result types for score prediction and persona clustering
// ABOUTME: Includes batch result containers with per-item cache flags and aggregates

package domain

// ScoreResult is the output of the assignment-score regression model.
type ScoreResult struct {
	PredictedScore float64 `json:"predicted_score"`
}

// ClusterResult is the output of the persona clustering model.
type ClusterResult struct {
	ClusterLabel int    `json:"cluster_label"`
	PersonaName  string `json:"persona_name"`
	Confidence   string `json:"confidence"`
}

// BatchItem pairs a result with the input position it belongs to.
// StudentIndex always refers to the caller's original input ordering.
type BatchItem[R any] struct {
	StudentIndex int  `json:"student_index"`
	Result       R    `json:"result"`
	Cached       bool `json:"cached"`
}

// BatchOutcome is the fully merged, order-restored result of a batch call.
type BatchOutcome[R any] struct {
	Predictions      []BatchItem[R] `json:"predictions"`
	TotalProcessed   int            `json:"total_processed"`
	CacheHits        int            `json:"cache_hits"`
	ProcessingTimeMS float64        `json:"processing_time_ms"`
}
