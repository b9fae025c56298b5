// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides fail-soft caching functionality
	Cache CacheStore

	// Logger provides structured logging
	Logger Logger
}
