package usecase

import (
	"context"
	"fmt"
	"math"

	"art-valuation-service/internal/domain"
	"art-valuation-service/internal/feature"
	"art-valuation-service/internal/pricing"
	"art-valuation-service/internal/vision"
)

// qualityColorfulness / qualityEntropy are the thresholds separating "Good"
// from "Fair" image quality.
const (
	qualityColorfulness = 10.0
	qualityEntropy      = 2.0
)

// Predictor orchestrates feature construction, the opaque model call and the
// price rescaling step. It is constructed once at startup; a nil scorer means
// the model artifact was not loaded and prediction is unavailable.
type Predictor struct {
	store        domain.ReferenceStore
	scorer       domain.Scorer
	schema       *domain.Schema
	info         domain.ModelInfo
	builder      *feature.Builder
	rescaler     *pricing.Rescaler
	imageSupport bool
}

func NewPredictor(store domain.ReferenceStore, scorer domain.Scorer, schema *domain.Schema, info domain.ModelInfo, imageSupport bool) *Predictor {
	p := &Predictor{
		store:        store,
		scorer:       scorer,
		schema:       schema,
		info:         info,
		rescaler:     pricing.NewRescaler(),
		imageSupport: imageSupport,
	}
	if schema != nil {
		p.builder = feature.NewBuilder(store, schema)
	}
	return p
}

// Ready reports whether a model is loaded and predictions can be served.
func (p *Predictor) Ready() bool {
	return p.scorer != nil && p.builder != nil
}

// Health reports service readiness.
func (p *Predictor) Health() domain.HealthStatus {
	count := 0
	if p.schema != nil {
		count = len(p.schema.FeatureNames)
	}
	return domain.HealthStatus{
		ModelLoaded:     p.Ready(),
		FeaturesCount:   count,
		ImageProcessing: p.imageSupport,
	}
}

// ModelInfo returns the loaded artifact metadata.
func (p *Predictor) ModelInfo() (domain.ModelInfo, error) {
	if !p.Ready() {
		return domain.ModelInfo{}, domain.ErrModelNotLoaded
	}
	return p.info, nil
}

// Predict builds the feature vector, scores it once against the model, and
// rescales the raw output with a fresh artist lookup.
func (p *Predictor) Predict(ctx context.Context, attrs domain.ArtworkAttributes) (*domain.PredictionResult, error) {
	if attrs.Expert == "" {
		attrs.Expert = "Unknown"
	}
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	if !p.Ready() {
		return nil, domain.ErrModelNotLoaded
	}

	vec, err := p.builder.Build(ctx, attrs, nil)
	if err != nil {
		return nil, err
	}

	rawLogPrice, err := p.scorer.Score(vec)
	if err != nil {
		return nil, fmt.Errorf("score feature vector: %w", err)
	}

	artist, err := p.store.GetArtist(ctx, attrs.Artist)
	if err != nil {
		return nil, fmt.Errorf("artist lookup: %w", err)
	}

	price, err := p.rescaler.Rescale(rawLogPrice, artist)
	if err != nil {
		return nil, err
	}

	return &domain.PredictionResult{
		PredictedPrice:   round(price, 2),
		LogPrice:         round(rawLogPrice, 4),
		Confidence:       pricing.ConfidenceFor(artist.Frequency),
		ArtistPopularity: pricing.PopularityFor(artist.Frequency),
		ImageQuality:     predictImageQuality(attrs),
		FeaturesUsed:     len(p.schema.FeatureNames),
		ModelType:        p.info.ModelType,
	}, nil
}

// AnalyzeImage computes the two visual descriptors for an uploaded image.
func (p *Predictor) AnalyzeImage(ctx context.Context, data []byte) (*domain.ImageAnalysis, error) {
	if !p.imageSupport {
		return nil, domain.ErrImageSupportDisabled
	}

	img, err := vision.Decode(data)
	if err != nil {
		return nil, err
	}

	colorfulness := vision.Colorfulness(img)
	entropy := vision.SpectralEntropy(img)

	return &domain.ImageAnalysis{
		Colorfulness: round(colorfulness, 4),
		SVDEntropy:   round(entropy, 4),
		ImageQuality: gradeImage(colorfulness, entropy),
	}, nil
}

// predictImageQuality labels the prediction's image signal. The predict path
// never extracts images itself; it only grades caller-supplied scores.
func predictImageQuality(attrs domain.ArtworkAttributes) string {
	if attrs.ColorfulnessScore == nil && attrs.SVDEntropy == nil {
		return "Not provided"
	}
	var colorfulness, entropy float64
	if attrs.ColorfulnessScore != nil {
		colorfulness = *attrs.ColorfulnessScore
	}
	if attrs.SVDEntropy != nil {
		entropy = *attrs.SVDEntropy
	}
	return gradeImage(colorfulness, entropy)
}

func gradeImage(colorfulness, entropy float64) string {
	if colorfulness > qualityColorfulness && entropy > qualityEntropy {
		return "Good"
	}
	return "Fair"
}

func round(x float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(x*factor) / factor
}
