package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/pkg/config"
	"github.com/scholarai/gapfinder/pkg/services"
	testdb "github.com/scholarai/gapfinder/test/database"
)

type stubBus struct{ connected bool }

func (s *stubBus) Connected() bool { return s.connected }

type stubProber struct{ err error }

func (s *stubProber) Probe(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	router, _, _ := newTestServer(t)

	// The basic health check is mounted at the root and under the API prefix.
	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := doRequest(router, http.MethodGet, path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "gapfinder", body["service"])
		assert.NotEmpty(t, body["version"])
	}
}

func TestDetailedHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)
	analyses := services.NewAnalysisService(client.Client)

	t.Run("all dependencies up", func(t *testing.T) {
		cfg := &config.Settings{GrobidURL: "http://grobid:8070", GeminiAPIKey: "key", GeminiModel: "gemini-2.5-flash"}
		server := NewServer(cfg, client, analyses, &stubBus{connected: true}, &stubProber{})

		rec := doRequest(server.Routes(), http.MethodGet, "/api/v1/health/detailed")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DetailedHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "gapfinder", resp.Service)
		assert.Equal(t, "up", resp.Checks["database"].Status)
		assert.Equal(t, "up", resp.Checks["grobid"].Status)
		assert.Equal(t, "http://grobid:8070", resp.Checks["grobid"].URL)
		assert.Equal(t, "up", resp.Checks["rabbitmq"].Status)
		assert.Equal(t, "configured", resp.Checks["gemini"].Status)
		assert.Equal(t, "gemini-2.5-flash", resp.Checks["gemini"].Model)
	})

	t.Run("degraded dependencies do not flip the overall status", func(t *testing.T) {
		cfg := &config.Settings{GrobidURL: "http://grobid:8070"}
		server := NewServer(cfg, client, analyses, &stubBus{}, &stubProber{err: errors.New("connection refused")})

		rec := doRequest(server.Routes(), http.MethodGet, "/api/v1/health/detailed")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DetailedHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "down", resp.Checks["grobid"].Status)
		assert.Contains(t, resp.Checks["grobid"].Message, "connection refused")
		assert.Equal(t, "not_connected", resp.Checks["rabbitmq"].Status)
		assert.Equal(t, "not_configured", resp.Checks["gemini"].Status)
	})

	t.Run("tolerates missing bus and prober", func(t *testing.T) {
		server := NewServer(&config.Settings{}, client, analyses, nil, nil)

		rec := doRequest(server.Routes(), http.MethodGet, "/api/v1/health/detailed")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DetailedHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "down", resp.Checks["grobid"].Status)
		assert.Equal(t, "not_connected", resp.Checks["rabbitmq"].Status)
	})
}

func TestReadyAndLiveHandlers(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/ready")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)

	rec = doRequest(router, http.MethodGet, "/api/v1/live")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"alive"`)
}
