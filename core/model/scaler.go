// ABOUTME: Standard scaler applying the transform fitted at training time
// ABOUTME: Enforces the fixed feature-column order; width mismatch is a caller error

package model

import (
	"fmt"

	"studentperf-api/core/domain"
	coreerrors "studentperf-api/core/errors"
)

// Scaler holds the fitted standardization parameters. Both models were
// trained on scaled features, so every prediction must go through the
// same transform with the same column order.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Validate checks that the scaler matches the feature contract.
func (s *Scaler) Validate() error {
	want := len(domain.FeatureColumns)
	if len(s.Mean) != want || len(s.Scale) != want {
		return fmt.Errorf("scaler shape mismatch: mean=%d scale=%d, want %d", len(s.Mean), len(s.Scale), want)
	}
	for i, v := range s.Scale {
		if v == 0 {
			return fmt.Errorf("scaler has zero scale for feature %s", domain.FeatureColumns[i])
		}
	}
	return nil
}

// Transform standardizes one feature vector.
func (s *Scaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.Mean) {
		return nil, &coreerrors.InferenceError{
			Model:   "scaler",
			Message: fmt.Sprintf("feature vector width %d, want %d", len(vector), len(s.Mean)),
		}
	}

	scaled := make([]float64, len(vector))
	for i, v := range vector {
		scaled[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return scaled, nil
}

// TransformMany standardizes a batch of feature vectors.
func (s *Scaler) TransformMany(vectors [][]float64) ([][]float64, error) {
	scaled := make([][]float64, len(vectors))
	for i, vector := range vectors {
		row, err := s.Transform(vector)
		if err != nil {
			return nil, err
		}
		scaled[i] = row
	}
	return scaled, nil
}
