package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"art-valuation-service/internal/domain"
)

type upsertArtistRequest struct {
	Name        string  `json:"name" binding:"required"`
	Frequency   int     `json:"frequency" binding:"gte=0"`
	MedianPrice float64 `json:"median_price" binding:"gte=0"`
	PriceStd    float64 `json:"price_std" binding:"gte=0"`
}

type upsertTechniqueArtistRequest struct {
	Technique   string  `json:"technique" binding:"required"`
	Artist      string  `json:"artist" binding:"required"`
	MedianPrice float64 `json:"median_price" binding:"gte=0"`
	SampleCount int     `json:"sample_count" binding:"gte=0"`
}

func (h *Handler) UpsertArtist(c *gin.Context) {
	var req upsertArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	record := domain.ArtistRecord{
		Name:        req.Name,
		Frequency:   req.Frequency,
		MedianPrice: req.MedianPrice,
		PriceStd:    req.PriceStd,
	}
	if err := h.store.UpsertArtist(c.Request.Context(), record); err != nil {
		log.WithError(err).WithField("artist", req.Name).Error("upsert artist failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) UpsertTechniqueArtist(c *gin.Context) {
	var req upsertTechniqueArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	record := domain.TechniqueArtistRecord{
		Technique:   req.Technique,
		Artist:      req.Artist,
		MedianPrice: req.MedianPrice,
		SampleCount: req.SampleCount,
	}
	if err := h.store.UpsertTechniqueArtist(c.Request.Context(), record); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"technique": req.Technique,
			"artist":    req.Artist,
		}).Error("upsert technique-artist failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
