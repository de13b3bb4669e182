package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// statsHandler handles GET /api/v1/stats.
func (s *Server) statsHandler(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = n
	}

	stats, err := s.analyses.Stats(c.Request.Context(), days)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
