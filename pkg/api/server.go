// Package api exposes the read-side HTTP surface: health probes, analysis
// listings, gap detail and service statistics. All analysis work flows in
// through the bus; the only mutation here is the retry reset.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scholarai/gapfinder/pkg/config"
	"github.com/scholarai/gapfinder/pkg/database"
	"github.com/scholarai/gapfinder/pkg/services"
)

// BusHealth reports whether the consumer holds a live broker connection.
type BusHealth interface {
	Connected() bool
}

// Prober checks reachability of an external dependency (GROBID here).
type Prober interface {
	Probe(ctx context.Context) error
}

// Server serves the HTTP API.
type Server struct {
	cfg      *config.Settings
	db       *database.Client
	analyses *services.AnalysisService
	bus      BusHealth
	grobid   Prober

	httpServer *http.Server
}

// NewServer creates a new API server. bus and grobid may be nil; the
// detailed health check then reports them as unavailable.
func NewServer(cfg *config.Settings, db *database.Client, analyses *services.AnalysisService, bus BusHealth, grobid Prober) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		analyses: analyses,
		bus:      bus,
		grobid:   grobid,
	}
}

// Routes builds the gin engine with all endpoints mounted.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	// Root-level health for convenience; same payload as /api/v1/health.
	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)
		v1.GET("/health/detailed", s.detailedHealthHandler)
		v1.GET("/ready", s.readyHandler)
		v1.GET("/live", s.liveHandler)

		v1.GET("/gap-analyses", s.listAnalysesHandler)
		v1.GET("/gap-analyses/:id", s.getAnalysisHandler)
		v1.POST("/gap-analyses/:id/retry", s.retryAnalysisHandler)
		v1.GET("/gaps/:id", s.getGapHandler)
		v1.GET("/stats", s.statsHandler)
	}

	return router
}

// Start serves HTTP on addr, blocking until Shutdown or failure.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
