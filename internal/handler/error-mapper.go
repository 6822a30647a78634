package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"art-valuation-service/internal/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAttributes),
		errors.Is(err, domain.ErrUnreadableImage):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrModelNotLoaded),
		errors.Is(err, domain.ErrImageSupportDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
