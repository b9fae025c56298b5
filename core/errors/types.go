// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a caller input error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// InferenceError represents a failure inside the model inference step.
// Inference failures are hard errors for the whole request; there is no
// partial-batch recovery.
type InferenceError struct {
	Model   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *InferenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("inference error in %s model: %s: %v", e.Model, e.Message, e.Err)
	}
	return fmt.Sprintf("inference error in %s model: %s", e.Model, e.Message)
}

// Unwrap returns the wrapped error
func (e *InferenceError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInference checks if an error is an InferenceError
func IsInference(err error) bool {
	var inferenceErr *InferenceError
	return errors.As(err, &inferenceErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
