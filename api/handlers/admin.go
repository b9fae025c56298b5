// ABOUTME: Administrative handlers for cache statistics and bulk clear
// ABOUTME: Consumes the CacheStore directly; protected by token-only auth

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"studentperf-api/api/dto/responses"
	"studentperf-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// AdminHandler handles cache administration HTTP requests
type AdminHandler struct {
	cache interfaces.CacheStore
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(cache interfaces.CacheStore) *AdminHandler {
	return &AdminHandler{cache: cache}
}

// RegisterRoutes registers all admin routes
func (h *AdminHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "cacheStats",
		Method:      http.MethodGet,
		Path:        "/admin/cache/stats",
		Summary:     "Get cache performance statistics",
		Tags:        []string{"Admin"},
	}, h.CacheStats)

	huma.Register(api, huma.Operation{
		OperationID: "cacheClear",
		Method:      http.MethodDelete,
		Path:        "/admin/cache/clear",
		Summary:     "Clear cache entries matching a pattern",
		Description: "Removes matching entries with an incremental scan. Use with caution in production.",
		Tags:        []string{"Admin"},
	}, h.CacheClear)
}

// CacheStatsOutput defines the output for the CacheStats operation
type CacheStatsOutput struct {
	Body responses.CacheStatsResponse
}

// CacheStats handles the GET /admin/cache/stats endpoint
func (h *AdminHandler) CacheStats(ctx context.Context, _ *struct{}) (*CacheStatsOutput, error) {
	return &CacheStatsOutput{
		Body: responses.CacheStatsResponse{CacheStats: h.cache.Stats(ctx)},
	}, nil
}

// CacheClearInput defines the input for the CacheClear operation
type CacheClearInput struct {
	Pattern string `query:"pattern" default:"*" doc:"Glob-style key pattern"`
}

// CacheClearOutput defines the output for the CacheClear operation
type CacheClearOutput struct {
	Body responses.ClearCacheResponse
}

// CacheClear handles the DELETE /admin/cache/clear endpoint
func (h *AdminHandler) CacheClear(ctx context.Context, input *CacheClearInput) (*CacheClearOutput, error) {
	pattern := input.Pattern
	if pattern == "" {
		pattern = "*"
	}

	cleared := h.cache.Clear(ctx, pattern)

	return &CacheClearOutput{
		Body: responses.ClearCacheResponse{
			Message: fmt.Sprintf("Cleared %d cache entries", cleared),
			Pattern: pattern,
			Cleared: cleared,
		},
	}, nil
}
