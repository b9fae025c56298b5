// ABOUTME: Score prediction handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for single and batch assignment-score prediction

package handlers

import (
	"context"
	"net/http"

	"studentperf-api/api/dto/mappers"
	"studentperf-api/api/dto/requests"
	"studentperf-api/api/dto/responses"
	"studentperf-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// ScoreService interface defines the methods needed from the prediction service
type ScoreService interface {
	PredictScore(ctx context.Context, features domain.StudentFeatures) (domain.ScoreResult, bool, error)
	PredictScoreBatch(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ScoreResult], error)
}

// PredictHandler handles score prediction HTTP requests
type PredictHandler struct {
	scoreService ScoreService
}

// NewPredictHandler creates a new score prediction handler
func NewPredictHandler(scoreService ScoreService) *PredictHandler {
	return &PredictHandler{scoreService: scoreService}
}

// RegisterRoutes registers all prediction routes
func (h *PredictHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "predictScore",
		Method:      http.MethodPost,
		Path:        "/predict",
		Summary:     "Predict one student's assignment score",
		Tags:        []string{"Score Prediction"},
	}, h.Predict)

	huma.Register(api, huma.Operation{
		OperationID: "predictScoreBatch",
		Method:      http.MethodPost,
		Path:        "/predict/batch",
		Summary:     "Predict assignment scores for a batch of students",
		Tags:        []string{"Score Prediction"},
	}, h.PredictBatch)
}

// PredictInput defines the input for the Predict operation
type PredictInput struct {
	Body requests.StudentFeaturesRequest
}

// PredictOutput defines the output for the Predict operation
type PredictOutput struct {
	Body responses.ScorePredictionResponse
}

// Predict handles the POST /predict endpoint
func (h *PredictHandler) Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error) {
	result, cached, err := h.scoreService.PredictScore(ctx, input.Body.ToDomain())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PredictOutput{
		Body: responses.ScorePredictionResponse{
			PredictedScore: result.PredictedScore,
			Cached:         cached,
		},
	}, nil
}

// PredictBatchInput defines the input for the PredictBatch operation
type PredictBatchInput struct {
	Body requests.BatchStudentsRequest
}

// PredictBatchOutput defines the output for the PredictBatch operation
type PredictBatchOutput struct {
	Body responses.BatchScorePredictionResponse
}

// PredictBatch handles the POST /predict/batch endpoint
func (h *PredictHandler) PredictBatch(ctx context.Context, input *PredictBatchInput) (*PredictBatchOutput, error) {
	outcome, err := h.scoreService.PredictScoreBatch(ctx, input.Body.ToDomain())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PredictBatchOutput{Body: mappers.ToBatchScoreResponse(outcome)}, nil
}
