// ABOUTME: Loading of fitted model artifacts exported by the training pipeline
// ABOUTME: Artifacts are JSON parameter files; missing or invalid files fail startup

package model

import (
	"encoding/json"
	"os"
	"path/filepath"

	"studentperf-api/core/domain"
	coreerrors "studentperf-api/core/errors"
)

// Artifact file names as written by the training export step.
const (
	scalerFile     = "scaler.json"
	regressionFile = "regression.json"
	kmeansFile     = "kmeans.json"
)

// Artifacts bundles the fitted parameters the services need at runtime.
type Artifacts struct {
	Scaler    *Scaler
	Regressor *Regressor
	KMeans    *KMeans
}

// LoadArtifacts reads and validates all model artifacts from dir.
// Any missing or malformed artifact is a hard error; the process should
// not serve predictions with a partial model set.
func LoadArtifacts(dir string) (*Artifacts, error) {
	var scaler Scaler
	if err := loadJSON(filepath.Join(dir, scalerFile), &scaler); err != nil {
		return nil, coreerrors.WrapError(err, "loading scaler artifact")
	}
	if err := scaler.Validate(); err != nil {
		return nil, coreerrors.WrapError(err, "validating scaler artifact")
	}

	var regressor Regressor
	if err := loadJSON(filepath.Join(dir, regressionFile), &regressor); err != nil {
		return nil, coreerrors.WrapError(err, "loading regression artifact")
	}
	if err := regressor.Validate(len(domain.FeatureColumns)); err != nil {
		return nil, coreerrors.WrapError(err, "validating regression artifact")
	}

	var kmeans KMeans
	if err := loadJSON(filepath.Join(dir, kmeansFile), &kmeans); err != nil {
		return nil, coreerrors.WrapError(err, "loading kmeans artifact")
	}
	if err := kmeans.Validate(len(domain.FeatureColumns)); err != nil {
		return nil, coreerrors.WrapError(err, "validating kmeans artifact")
	}

	return &Artifacts{
		Scaler:    &scaler,
		Regressor: &regressor,
		KMeans:    &kmeans,
	}, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
