// ABOUTME: Health check handler for liveness probes
// ABOUTME: Reports service status and current cache connectivity

package handlers

import (
	"context"
	"net/http"

	"studentperf-api/api/dto/responses"
	"studentperf-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	cache       interfaces.CacheStore
	environment string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cache interfaces.CacheStore, environment string) *HealthHandler {
	return &HealthHandler{cache: cache, environment: environment}
}

// RegisterRoutes registers the health check route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health check",
		Tags:        []string{"Health"},
	}, h.Check)
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body responses.HealthResponse
}

// Check handles the GET /health endpoint. Cache trouble is reported
// but never fails the probe since the service works without caching.
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	cacheStatus := "connected"
	if h.cache == nil {
		cacheStatus = "disabled"
	} else if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "disconnected"
	}

	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:      "healthy",
			Service:     "studentperf-api",
			Environment: h.environment,
			Cache:       cacheStatus,
		},
	}, nil
}
