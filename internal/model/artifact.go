// Package model loads the trained gradient-boosting artifact and adapts it
// to the Scorer port. The artifact is loaded once at startup and treated as
// read-only for the process lifetime.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitryikh/leaves"

	"art-valuation-service/internal/domain"
)

const (
	featureInfoFile = "feature_info.json"
	ensembleFile    = "model.txt"
)

// featureInfo mirrors the schema file written at training time.
type featureInfo struct {
	ModelType           string                    `json:"model_type"`
	FeatureNames        []string                  `json:"feature_names"`
	CategoricalFeatures []string                  `json:"categorical_features"`
	CategoryCodes       map[string]map[string]int `json:"category_codes"`
	Metrics             domain.ModelMetrics       `json:"metrics"`
}

// Artifact is the loaded model plus its declared feature schema.
type Artifact struct {
	info     featureInfo
	schema   *domain.Schema
	ensemble *leaves.Ensemble
}

// Load reads the feature schema and the LightGBM dump from dir.
func Load(dir string) (*Artifact, error) {
	raw, err := os.ReadFile(filepath.Join(dir, featureInfoFile))
	if err != nil {
		return nil, fmt.Errorf("read feature info: %w", err)
	}

	var info featureInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parse feature info: %w", err)
	}
	if len(info.FeatureNames) == 0 {
		return nil, fmt.Errorf("feature info declares no features")
	}

	ensemble, err := leaves.LGEnsembleFromFile(filepath.Join(dir, ensembleFile), true)
	if err != nil {
		return nil, fmt.Errorf("load model ensemble: %w", err)
	}
	if ensemble.NFeatures() != len(info.FeatureNames) {
		return nil, fmt.Errorf("schema mismatch: model expects %d features, schema declares %d",
			ensemble.NFeatures(), len(info.FeatureNames))
	}

	return &Artifact{
		info:     info,
		schema:   domain.NewSchema(info.FeatureNames, info.CategoricalFeatures),
		ensemble: ensemble,
	}, nil
}

// Schema returns the feature layout the model was trained on.
func (a *Artifact) Schema() *domain.Schema {
	return a.schema
}

// Info returns the artifact's read-only metadata.
func (a *Artifact) Info() domain.ModelInfo {
	return domain.ModelInfo{
		ModelType:           a.info.ModelType,
		FeaturesCount:       len(a.info.FeatureNames),
		FeatureNames:        a.info.FeatureNames,
		CategoricalFeatures: a.info.CategoricalFeatures,
		Metrics:             a.info.Metrics,
	}
}

// Score runs the ensemble on a schema-aligned vector and returns the raw
// log-space prediction.
func (a *Artifact) Score(v *domain.FeatureVector) (float64, error) {
	fvals, err := a.encode(v)
	if err != nil {
		return 0, err
	}
	return a.ensemble.PredictSingle(fvals, 0), nil
}

// encode maps the mixed-type vector onto the numeric layout the ensemble
// consumes. Categorical slots go through the category-code tables learned at
// training time; values unseen at training time encode as -1.
func (a *Artifact) encode(v *domain.FeatureVector) ([]float64, error) {
	if v.Len() != len(a.info.FeatureNames) {
		return nil, fmt.Errorf("schema mismatch: vector has %d slots, model expects %d",
			v.Len(), len(a.info.FeatureNames))
	}

	fvals := make([]float64, v.Len())
	for i, name := range a.info.FeatureNames {
		if a.schema.Categorical[name] {
			text, _ := v.Values[i].(string)
			code, ok := a.info.CategoryCodes[name][text]
			if !ok {
				code = -1
			}
			fvals[i] = float64(code)
			continue
		}
		num, ok := v.Values[i].(float64)
		if !ok {
			return nil, fmt.Errorf("feature %q: expected numeric slot, got %T", name, v.Values[i])
		}
		fvals[i] = num
	}
	return fvals, nil
}
