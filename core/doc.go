// Package core contains the business logic for the Student Performance API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (StudentFeatures, personas, batch outcomes)
// - model: Fitted model parameters (scaler, regression, kmeans) and loading
// - cachekey: Deterministic cache key derivation from feature records
// - batch: Cache-aware batch orchestration shared by both services
// - prediction: Assignment score prediction service
// - clustering: Learning persona assignment service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Caching is an optimization, never a correctness dependency
//
// # Usage Example
//
//	import (
//	    "studentperf-api/core/interfaces"
//	    "studentperf-api/core/model"
//	    "studentperf-api/core/prediction"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.CacheStore
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Load fitted parameters and create the service
//	artifacts, err := model.LoadArtifacts("artifacts")
//	svc := prediction.NewService(deps, artifacts, 5*time.Minute, 5*time.Minute)
//
//	// Predict
//	result, cached, err := svc.PredictScore(ctx, features)
package core
