package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "art valuation service is running",
		"version": Version,
	})
}

func (h *Handler) Health(c *gin.Context) {
	status := h.predictor.Health()
	c.JSON(http.StatusOK, gin.H{
		"status":                     "healthy",
		"model_loaded":               status.ModelLoaded,
		"features_count":             status.FeaturesCount,
		"image_processing_available": status.ImageProcessing,
	})
}

func (h *Handler) ModelInfo(c *gin.Context) {
	info, err := h.predictor.ModelInfo()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	// Only a preview of the schema goes over the wire.
	names := info.FeatureNames
	if len(names) > 10 {
		names = names[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"model_type":           info.ModelType,
		"version":              Version,
		"features_count":       info.FeaturesCount,
		"categorical_features": info.CategoricalFeatures,
		"feature_names":        names,
		"performance":          info.Metrics,
		"training_info": gin.H{
			"algorithm":                     "LightGBM",
			"ensemble_method":               "Gradient Boosting",
			"categorical_features_handling": "Automatic",
			"missing_values_handling":       "Automatic",
		},
	})
}
