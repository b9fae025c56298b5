// ABOUTME: Persona clustering handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for persona assignment and the persona enumeration

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

// ClusterService interface defines the methods needed from the clustering service
type ClusterService interface {
	AssignPersona(ctx context.Context, features domain.StudentFeatures) (domain.ClusterResult, bool, error)
	AssignPersonaBatch(ctx context.Context, records []domain.StudentFeatures) (*domain.BatchOutcome[domain.ClusterResult], error)
}

// ClusterHandler handles persona clustering HTTP requests
type ClusterHandler struct {
	clusterService ClusterService
}

// NewClusterHandler creates a new clustering handler
func NewClusterHandler(clusterService ClusterService) *ClusterHandler {
	return &ClusterHandler{clusterService: clusterService}
}

// RegisterRoutes registers all clustering routes
func (h *ClusterHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "assignPersona",
		Method:      http.MethodPost,
		Path:        "/cluster",
		Summary:     "Assign one student to a learning persona",
		Tags:        []string{"Student Clustering"},
	}, h.Cluster)

	huma.Register(api, huma.Operation{
		OperationID: "assignPersonaBatch",
		Method:      http.MethodPost,
		Path:        "/cluster/batch",
		Summary:     "Assign personas for a batch of students",
		Tags:        []string{"Student Clustering"},
	}, h.ClusterBatch)

	huma.Register(api, huma.Operation{
		OperationID: "listPersonas",
		Method:      http.MethodGet,
		Path:        "/personas",
		Summary:     "List the available student personas",
		Tags:        []string{"Student Clustering"},
	}, h.Personas)
}

// ClusterInput defines the input for the Cluster operation
type ClusterInput struct {
	Body requests.StudentFeaturesRequest
}

// ClusterOutput defines the output for the Cluster operation
type ClusterOutput struct {
	Body responses.ClusterPredictionResponse
}

// Cluster handles the POST /cluster endpoint
func (h *ClusterHandler) Cluster(ctx context.Context, input *ClusterInput) (*ClusterOutput, error) {
	result, cached, err := h.clusterService.AssignPersona(ctx, input.Body.ToDomain())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ClusterOutput{
		Body: responses.ClusterPredictionResponse{
			ClusterLabel: result.ClusterLabel,
			PersonaName:  result.PersonaName,
			Confidence:   result.Confidence,
			Cached:       cached,
		},
	}, nil
}

// ClusterBatchInput defines the input for the ClusterBatch operation
type ClusterBatchInput struct {
	Body requests.BatchStudentsRequest
}

// ClusterBatchOutput defines the output for the ClusterBatch operation
type ClusterBatchOutput struct {
	Body responses.BatchClusterPredictionResponse
}

// ClusterBatch handles the POST /cluster/batch endpoint
func (h *ClusterHandler) ClusterBatch(ctx context.Context, input *ClusterBatchInput) (*ClusterBatchOutput, error) {
	outcome, err := h.clusterService.AssignPersonaBatch(ctx, input.Body.ToDomain())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ClusterBatchOutput{Body: mappers.ToBatchClusterResponse(outcome)}, nil
}

// PersonasOutput defines the output for the Personas operation
type PersonasOutput struct {
	Body responses.PersonasResponse
}

// Personas handles the GET /personas endpoint
func (h *ClusterHandler) Personas(ctx context.Context, _ *struct{}) (*PersonasOutput, error) {
	mapping := domain.PersonaMapping()

	return &PersonasOutput{
		Body: responses.PersonasResponse{
			Personas:       domain.Personas(),
			ClusterMapping: mapping,
			TotalClusters:  len(mapping),
		},
	}, nil
}
