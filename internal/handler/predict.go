package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"art-valuation-service/internal/domain"
)

func (h *Handler) Predict(c *gin.Context) {
	var attrs domain.ArtworkAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), attrs)
	if err != nil {
		log.WithError(err).WithField("artist", attrs.Artist).Error("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image file could not be read"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image file could not be read"})
		return
	}

	analysis, err := h.predictor.AnalyzeImage(c.Request.Context(), data)
	if err != nil {
		log.WithError(err).WithField("filename", file.Filename).Error("image analysis failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
