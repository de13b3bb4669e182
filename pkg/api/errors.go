package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholarai/gapfinder/pkg/services"
)

// mapServiceError writes the HTTP response for a service-layer error.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}

	switch {
	case errors.Is(err, services.ErrAnalysisNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrAnalysisNotFound.Error()})
	case errors.Is(err, services.ErrGapNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrGapNotFound.Error()})
	case errors.Is(err, services.ErrNotRetryable):
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrNotRetryable.Error()})
	default:
		// Unexpected error
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
