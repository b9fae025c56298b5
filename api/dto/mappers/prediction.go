// ABOUTME: Mappers converting domain batch outcomes to response DTOs
// ABOUTME: Keeps wire-shape assembly out of the handlers

package mappers

import (
	"studentperf-api/api/dto/responses"
	"studentperf-api/core/domain"
)

// ToBatchScoreResponse converts a scoring batch outcome to its wire shape
func ToBatchScoreResponse(outcome *domain.BatchOutcome[domain.ScoreResult]) responses.BatchScorePredictionResponse {
	predictions := make([]responses.ScoreBatchPrediction, len(outcome.Predictions))
	for i, item := range outcome.Predictions {
		predictions[i] = responses.ScoreBatchPrediction{
			StudentIndex:   item.StudentIndex,
			PredictedScore: item.Result.PredictedScore,
			Cached:         item.Cached,
		}
	}

	return responses.BatchScorePredictionResponse{
		Predictions:      predictions,
		TotalProcessed:   outcome.TotalProcessed,
		CacheHits:        outcome.CacheHits,
		ProcessingTimeMS: outcome.ProcessingTimeMS,
	}
}

// ToBatchClusterResponse converts a clustering batch outcome to its wire shape
func ToBatchClusterResponse(outcome *domain.BatchOutcome[domain.ClusterResult]) responses.BatchClusterPredictionResponse {
	predictions := make([]responses.ClusterBatchPrediction, len(outcome.Predictions))
	for i, item := range outcome.Predictions {
		predictions[i] = responses.ClusterBatchPrediction{
			StudentIndex: item.StudentIndex,
			ClusterLabel: item.Result.ClusterLabel,
			PersonaName:  item.Result.PersonaName,
			Confidence:   item.Result.Confidence,
			Cached:       item.Cached,
		}
	}

	return responses.BatchClusterPredictionResponse{
		Predictions:       predictions,
		TotalProcessed:    outcome.TotalProcessed,
		CacheHits:         outcome.CacheHits,
		ProcessingTimeMS:  outcome.ProcessingTimeMS,
		AvailablePersonas: domain.Personas(),
	}
}
