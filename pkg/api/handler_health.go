package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholarai/gapfinder/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"

	checkStatusUp            = "up"
	checkStatusDown          = "down"
	checkStatusNotConnected  = "not_connected"
	checkStatusConfigured    = "configured"
	checkStatusNotConfigured = "not_configured"
)

// healthHandler handles GET /health (root and under /api/v1).
// Returns a minimal, safe response suitable for unauthenticated access.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  healthStatusHealthy,
		"service": version.AppName,
		"version": version.GitCommit,
	})
}

// detailedHealthHandler handles GET /api/v1/health/detailed. Each
// dependency is checked individually; only a store failure marks the
// service unhealthy because every other dependency degrades per-request.
func (s *Server) detailedHealthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := s.db.Health(reqCtx); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: checkStatusDown, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: checkStatusUp, Message: "Database connection successful"}
	}

	if s.grobid == nil {
		checks["grobid"] = HealthCheck{Status: checkStatusDown, Message: "GROBID client not initialized", URL: s.cfg.GrobidURL}
	} else if err := s.grobid.Probe(reqCtx); err != nil {
		checks["grobid"] = HealthCheck{Status: checkStatusDown, Message: err.Error(), URL: s.cfg.GrobidURL}
	} else {
		checks["grobid"] = HealthCheck{Status: checkStatusUp, Message: "GROBID service is responsive", URL: s.cfg.GrobidURL}
	}

	if s.bus != nil && s.bus.Connected() {
		checks["rabbitmq"] = HealthCheck{Status: checkStatusUp, Message: "Message bus is connected"}
	} else {
		checks["rabbitmq"] = HealthCheck{Status: checkStatusNotConnected, Message: "Message bus not connected"}
	}

	if s.cfg.GeminiAPIKey != "" {
		checks["gemini"] = HealthCheck{Status: checkStatusConfigured, Message: "Gemini API key is configured", Model: s.cfg.GeminiModel}
	} else {
		checks["gemini"] = HealthCheck{Status: checkStatusNotConfigured, Message: "Gemini API key is not configured"}
	}

	c.JSON(http.StatusOK, &DetailedHealthResponse{
		Status:    status,
		Service:   version.AppName,
		Version:   version.GitCommit,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}

// readyHandler handles GET /api/v1/ready, the orchestration readiness
// probe. Ready means the store answers.
func (s *Server) readyHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := s.db.Health(reqCtx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "timestamp": time.Now().UTC()})
}

// liveHandler handles GET /api/v1/live.
func (s *Server) liveHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive", "timestamp": time.Now().UTC()})
}
