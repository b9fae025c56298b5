// ABOUTME: Authentication handler issuing bearer tokens
// ABOUTME: Exchanges the service API key for a short-lived JWT

package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"

	"studentperf-api/api/dto/requests"
	"studentperf-api/api/dto/responses"
	"studentperf-api/pkg/auth"

	"github.com/danielgtaylor/huma/v2"
)

// AuthHandler handles token issuance
type AuthHandler struct {
	apiKey string
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(apiKey string, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{apiKey: apiKey, tokens: tokens}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Exchange the API key for a bearer token",
		Tags:        []string{"Auth"},
	}, h.Login)
}

// LoginInput defines the input for the Login operation
type LoginInput struct {
	Body requests.LoginRequest
}

// LoginOutput defines the output for the Login operation
type LoginOutput struct {
	Body responses.LoginResponse
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if subtle.ConstantTimeCompare([]byte(input.Body.APIKey), []byte(h.apiKey)) != 1 {
		return nil, huma.Error401Unauthorized("invalid API key")
	}

	token, err := h.tokens.CreateToken(input.Body.Username)
	if err != nil {
		return nil, huma.Error500InternalServerError("token issuance failed", err)
	}

	return &LoginOutput{
		Body: responses.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
		},
	}, nil
}
