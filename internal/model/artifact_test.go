package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"art-valuation-service/internal/domain"
)

func testArtifact() *Artifact {
	info := featureInfo{
		ModelType:           "LightGBM_57_Features",
		FeatureNames:        []string{"ARTIST", "width", "size_category"},
		CategoricalFeatures: []string{"ARTIST", "size_category"},
		CategoryCodes: map[string]map[string]int{
			"ARTIST":        {"pablo picasso": 0, "andy warhol": 1},
			"size_category": {"tiny": 0, "small": 1, "medium": 2, "large": 3},
		},
	}
	return &Artifact{
		info:   info,
		schema: domain.NewSchema(info.FeatureNames, info.CategoricalFeatures),
	}
}

func TestEncode_CategoryCodes(t *testing.T) {
	a := testArtifact()
	vec := domain.NewFeatureVector(a.Schema(), map[string]any{
		"ARTIST":        "andy warhol",
		"width":         50.0,
		"size_category": "medium",
	})

	fvals, err := a.encode(vec)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 50, 2}, fvals)
}

func TestEncode_UnseenCategory(t *testing.T) {
	a := testArtifact()
	vec := domain.NewFeatureVector(a.Schema(), map[string]any{
		"ARTIST":        "jane doe",
		"width":         10.0,
		"size_category": "medium",
	})

	fvals, err := a.encode(vec)
	assert.NoError(t, err)
	assert.Equal(t, -1.0, fvals[0])
}

func TestEncode_MissingSlotsUseProjectionDefaults(t *testing.T) {
	a := testArtifact()
	vec := domain.NewFeatureVector(a.Schema(), map[string]any{})

	fvals, err := a.encode(vec)
	assert.NoError(t, err)
	// "unknown" is not in any code table, numerics default to zero.
	assert.Equal(t, []float64{-1, 0, -1}, fvals)
}

func TestEncode_SchemaMismatch(t *testing.T) {
	a := testArtifact()
	other := domain.NewSchema([]string{"width"}, nil)
	vec := domain.NewFeatureVector(other, map[string]any{"width": 5.0})

	_, err := a.encode(vec)
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	a := testArtifact()
	info := a.Info()

	assert.Equal(t, "LightGBM_57_Features", info.ModelType)
	assert.Equal(t, 3, info.FeaturesCount)
	assert.Equal(t, []string{"ARTIST", "size_category"}, info.CategoricalFeatures)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoad_BadFeatureInfo(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, featureInfoFile), []byte("{not json"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_EmptySchema(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, featureInfoFile), []byte(`{"feature_names": []}`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
