// ABOUTME: Authentication middleware for API endpoints
// ABOUTME: Accepts the service API key or a bearer token, admin routes require a token

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"studentperf-api/core/interfaces"
	"studentperf-api/pkg/auth"
)

// publicPrefixes are served without credentials
var publicPrefixes = []string{
	"/health",
	"/metrics",
	"/auth/login",
	"/docs",
	"/openapi",
	"/schemas",
}

// AuthMiddleware verifies request credentials. Requests may present
// either the service API key or a bearer token issued by login.
// Admin routes accept tokens only.
type AuthMiddleware struct {
	apiKey string
	tokens *auth.TokenManager
	logger interfaces.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(apiKey string, tokens *auth.TokenManager, logger interfaces.Logger) *AuthMiddleware {
	return &AuthMiddleware{apiKey: apiKey, tokens: tokens, logger: logger}
}

// Handler wraps next with credential checks
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		adminOnly := strings.HasPrefix(r.URL.Path, "/admin/")

		if subject, ok := m.bearerSubject(r); ok {
			m.logger.Debug("Request authenticated with token", map[string]interface{}{
				"subject": subject,
				"path":    r.URL.Path,
			})
			next.ServeHTTP(w, r)
			return
		}

		if !adminOnly && m.apiKeyMatches(r) {
			next.ServeHTTP(w, r)
			return
		}

		m.logger.Warn("Request rejected, missing or invalid credentials", map[string]interface{}{
			"path":      r.URL.Path,
			"remote_ip": extractIP(r),
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized","message":"Valid credentials are required."}`))
	})
}

// bearerSubject validates an Authorization bearer token and returns its subject
func (m *AuthMiddleware) bearerSubject(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	subject, err := m.tokens.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return "", false
	}

	return subject, true
}

// apiKeyMatches checks the X-API-Key header against the configured key
func (m *AuthMiddleware) apiKeyMatches(r *http.Request) bool {
	key := r.Header.Get("X-API-Key")
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) == 1
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") || strings.HasPrefix(path, prefix+".") {
			return true
		}
	}
	return false
}
