package model

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	coreerrors "studentperf-api/core/errors"
)

func testScaler() *Scaler {
	return &Scaler{
		Mean:  []float64{50, 50, 50, 50, 150},
		Scale: []float64{10, 10, 10, 10, 50},
	}
}

func TestScaler_Transform(t *testing.T) {
	scaler := testScaler()

	scaled, err := scaler.Transform([]float64{60, 40, 50, 70, 200})

	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	want := []float64{1, -1, 0, 2, 1}
	for i := range want {
		if scaled[i] != want[i] {
			t.Errorf("scaled[%d] = %v, want %v", i, scaled[i], want[i])
		}
	}
}

func TestScaler_Transform_WidthMismatch(t *testing.T) {
	scaler := testScaler()

	_, err := scaler.Transform([]float64{1, 2, 3})

	if err == nil {
		t.Fatal("Transform should reject a short vector")
	}
	if !coreerrors.IsInference(err) {
		t.Errorf("expected InferenceError, got %T", err)
	}
}

func TestScaler_Validate_ZeroScale(t *testing.T) {
	scaler := &Scaler{
		Mean:  []float64{0, 0, 0, 0, 0},
		Scale: []float64{1, 1, 0, 1, 1},
	}

	if scaler.Validate() == nil {
		t.Error("Validate should reject a zero scale")
	}
}

func TestRegressor_PredictOne(t *testing.T) {
	regressor := &Regressor{
		Intercept:    10,
		Coefficients: []float64{1, 2, 3, 4, 5},
	}

	score, err := regressor.PredictOne([]float64{1, 1, 1, 1, 1})

	if err != nil {
		t.Fatalf("PredictOne returned error: %v", err)
	}
	if score != 25 {
		t.Errorf("PredictOne = %v, want 25", score)
	}
}

func TestRegressor_PredictMany_PreservesOrder(t *testing.T) {
	regressor := &Regressor{
		Intercept:    0,
		Coefficients: []float64{1, 0, 0, 0, 0},
	}

	scores, err := regressor.PredictMany([][]float64{
		{3, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{2, 0, 0, 0, 0},
	})

	if err != nil {
		t.Fatalf("PredictMany returned error: %v", err)
	}
	want := []float64{3, 1, 2}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i], want[i])
		}
	}
}

func TestRegressor_PredictOne_NonFinite(t *testing.T) {
	regressor := &Regressor{
		Intercept:    0,
		Coefficients: []float64{math.Inf(1), 0, 0, 0, 0},
	}

	_, err := regressor.PredictOne([]float64{1, 0, 0, 0, 0})

	if !coreerrors.IsInference(err) {
		t.Errorf("expected InferenceError for non-finite score, got %v", err)
	}
}

func TestKMeans_PredictOne_NearestCentroid(t *testing.T) {
	kmeans := &KMeans{
		Centroids: [][]float64{
			{0, 0, 0, 0, 0},
			{10, 10, 10, 10, 10},
			{-10, -10, -10, -10, -10},
		},
	}

	tests := []struct {
		name   string
		vector []float64
		want   int
	}{
		{"near origin", []float64{1, 0, 1, 0, 0}, 0},
		{"near positive centroid", []float64{9, 11, 10, 10, 9}, 1},
		{"near negative centroid", []float64{-8, -9, -10, -11, -10}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := kmeans.PredictOne(tt.vector)
			if err != nil {
				t.Fatalf("PredictOne returned error: %v", err)
			}
			if label != tt.want {
				t.Errorf("PredictOne = %d, want %d", label, tt.want)
			}
		})
	}
}

func TestKMeans_PredictOne_WidthMismatch(t *testing.T) {
	kmeans := &KMeans{Centroids: [][]float64{{0, 0, 0, 0, 0}}}

	_, err := kmeans.PredictOne([]float64{1, 2})

	if !coreerrors.IsInference(err) {
		t.Errorf("expected InferenceError, got %v", err)
	}
}

func writeArtifact(t *testing.T, dir, name string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func writeValidArtifacts(t *testing.T, dir string) {
	t.Helper()
	writeArtifact(t, dir, scalerFile, testScaler())
	writeArtifact(t, dir, regressionFile, &Regressor{
		Intercept:    50,
		Coefficients: []float64{5, 4, 3, 2, 1},
	})
	writeArtifact(t, dir, kmeansFile, &KMeans{
		Centroids: [][]float64{
			{0, 0, 0, 0, 0},
			{1, 1, 1, 1, 1},
			{-1, -1, -1, -1, -1},
			{2, 2, 2, 2, 2},
		},
	})
}

func TestLoadArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeValidArtifacts(t, dir)

	artifacts, err := LoadArtifacts(dir)

	if err != nil {
		t.Fatalf("LoadArtifacts returned error: %v", err)
	}
	if artifacts.Scaler == nil || artifacts.Regressor == nil || artifacts.KMeans == nil {
		t.Error("LoadArtifacts returned incomplete artifact set")
	}
	if len(artifacts.KMeans.Centroids) != 4 {
		t.Errorf("loaded %d centroids, want 4", len(artifacts.KMeans.Centroids))
	}
}

func TestLoadArtifacts_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, scalerFile, testScaler())
	// regression and kmeans artifacts deliberately absent

	if _, err := LoadArtifacts(dir); err == nil {
		t.Error("LoadArtifacts should fail when artifacts are missing")
	}
}

func TestLoadArtifacts_BadShape(t *testing.T) {
	dir := t.TempDir()
	writeValidArtifacts(t, dir)
	writeArtifact(t, dir, regressionFile, &Regressor{
		Intercept:    1,
		Coefficients: []float64{1, 2},
	})

	if _, err := LoadArtifacts(dir); err == nil {
		t.Error("LoadArtifacts should reject a coefficient width mismatch")
	}
}
