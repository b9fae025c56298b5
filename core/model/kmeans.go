// ABOUTME: KMeans cluster assignment by nearest centroid
// ABOUTME: Centroids are fitted offline; assignment uses squared Euclidean distance

package model

import (
	"fmt"

	coreerrors "studentperf-api/core/errors"
)

// KMeans holds the fitted cluster centroids in scaled feature space.
type KMeans struct {
	Centroids [][]float64 `json:"centroids"`
}

// Validate checks the centroids against the expected feature width.
func (k *KMeans) Validate(featureCount int) error {
	if len(k.Centroids) == 0 {
		return fmt.Errorf("kmeans model has no centroids")
	}
	for i, centroid := range k.Centroids {
		if len(centroid) != featureCount {
			return fmt.Errorf("kmeans centroid %d has width %d, want %d", i, len(centroid), featureCount)
		}
	}
	return nil
}

// PredictOne assigns a scaled feature vector to its nearest centroid and
// returns the cluster label.
func (k *KMeans) PredictOne(scaled []float64) (int, error) {
	if len(k.Centroids) == 0 {
		return 0, &coreerrors.InferenceError{Model: "clustering", Message: "model has no centroids"}
	}
	if len(scaled) != len(k.Centroids[0]) {
		return 0, &coreerrors.InferenceError{
			Model:   "clustering",
			Message: fmt.Sprintf("feature vector width %d, want %d", len(scaled), len(k.Centroids[0])),
		}
	}

	best := 0
	bestDist := k.squaredDistance(scaled, k.Centroids[0])
	for i := 1; i < len(k.Centroids); i++ {
		if d := k.squaredDistance(scaled, k.Centroids[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, nil
}

// PredictMany assigns a batch of scaled feature vectors, returning one
// label per vector in submission order.
func (k *KMeans) PredictMany(scaled [][]float64) ([]int, error) {
	labels := make([]int, len(scaled))
	for i, vector := range scaled {
		label, err := k.PredictOne(vector)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}

func (k *KMeans) squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
