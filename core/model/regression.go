// ABOUTME: Linear regression model for assignment-score prediction
// ABOUTME: Consumes scaled feature vectors; coefficients are fitted offline

package model

import (
	"fmt"
	"math"

	coreerrors "studentperf-api/core/errors"
)

// Regressor is a fitted linear model: score = intercept + sum(w_i * x_i)
// over scaled features.
type Regressor struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Validate checks the model against the expected feature width.
func (r *Regressor) Validate(featureCount int) error {
	if len(r.Coefficients) != featureCount {
		return fmt.Errorf("regression coefficient count %d, want %d", len(r.Coefficients), featureCount)
	}
	return nil
}

// PredictOne computes the score for a single scaled feature vector.
func (r *Regressor) PredictOne(scaled []float64) (float64, error) {
	if len(scaled) != len(r.Coefficients) {
		return 0, &coreerrors.InferenceError{
			Model:   "regression",
			Message: fmt.Sprintf("feature vector width %d, want %d", len(scaled), len(r.Coefficients)),
		}
	}

	score := r.Intercept
	for i, w := range r.Coefficients {
		score += w * scaled[i]
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, &coreerrors.InferenceError{Model: "regression", Message: "non-finite prediction"}
	}
	return score, nil
}

// PredictMany computes scores for a batch of scaled feature vectors,
// returning one score per vector in submission order.
func (r *Regressor) PredictMany(scaled [][]float64) ([]float64, error) {
	scores := make([]float64, len(scaled))
	for i, vector := range scaled {
		score, err := r.PredictOne(vector)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}
