package domain

// Confidence is the caller-facing label describing how much historical data
// backs a prediction.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Popularity describes how well represented the artist is in the reference
// data.
type Popularity string

const (
	PopularityVeryPopular Popularity = "VERY_POPULAR"
	PopularityPopular     Popularity = "POPULAR"
	PopularityKnown       Popularity = "KNOWN"
	PopularityUnknown     Popularity = "UNKNOWN"
)

// PredictionResult is the immutable outcome of one predict call.
type PredictionResult struct {
	PredictedPrice   float64    `json:"predicted_price"`
	LogPrice         float64    `json:"log_price"`
	Confidence       Confidence `json:"confidence"`
	ArtistPopularity Popularity `json:"artist_popularity"`
	ImageQuality     string     `json:"image_quality"`
	FeaturesUsed     int        `json:"features_used"`
	ModelType        string     `json:"model_type"`
}

// ImageAnalysis is the outcome of a standalone image analysis.
type ImageAnalysis struct {
	Colorfulness float64 `json:"colorfulness_score"`
	SVDEntropy   float64 `json:"svd_entropy"`
	ImageQuality string  `json:"image_quality"`
}

// HealthStatus reports service readiness.
type HealthStatus struct {
	ModelLoaded     bool `json:"model_loaded"`
	FeaturesCount   int  `json:"features_count"`
	ImageProcessing bool `json:"image_processing_available"`
}

// ModelMetrics are the accuracy figures reported at training time.
type ModelMetrics struct {
	R2Score          float64 `json:"r2_score"`
	MAE              float64 `json:"mae"`
	RMSE             float64 `json:"rmse"`
	AccuracyWithin20 float64 `json:"accuracy_within_20_percent"`
}

// ModelInfo is the read-only metadata of the loaded model artifact.
type ModelInfo struct {
	ModelType           string       `json:"model_type"`
	FeaturesCount       int          `json:"features_count"`
	FeatureNames        []string     `json:"feature_names"`
	CategoricalFeatures []string     `json:"categorical_features"`
	Metrics             ModelMetrics `json:"performance"`
}
