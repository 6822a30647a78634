package handler

import (
	"github.com/gin-gonic/gin"

	"art-valuation-service/internal/domain"
	"art-valuation-service/internal/usecase"
)

// Version is reported by the root and model-info endpoints.
const Version = "1.0.0"

type Handler struct {
	predictor *usecase.Predictor
	store     domain.ReferenceStore
}

func New(predictor *usecase.Predictor, store domain.ReferenceStore) *Handler {
	return &Handler{predictor: predictor, store: store}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/model/info", h.ModelInfo)

	r.POST("/predict", h.Predict)
	r.POST("/analyze-image", h.AnalyzeImage)

	// Administrative writes to the reference store.
	r.PUT("/reference/artists", h.UpsertArtist)
	r.PUT("/reference/technique-artists", h.UpsertTechniqueArtist)
}
