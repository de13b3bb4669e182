package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/pkg/config"
	"github.com/scholarai/gapfinder/pkg/database"
	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/services"
	testdb "github.com/scholarai/gapfinder/test/database"
)

func newTestServer(t *testing.T) (*gin.Engine, *database.Client, *services.AnalysisService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)
	analyses := services.NewAnalysisService(client.Client)
	server := NewServer(&config.Settings{}, client, analyses, nil, nil)
	return server.Routes(), client, analyses
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func seedAnalysis(t *testing.T, client *ent.Client, status gapanalysis.Status, createdAt time.Time) *ent.GapAnalysis {
	t.Helper()
	analysis, err := client.GapAnalysis.Create().
		SetPaperID(uuid.New()).
		SetPaperExtractionID(uuid.New()).
		SetCorrelationID(uuid.New().String()).
		SetRequestID(uuid.New().String()).
		SetStatus(status).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return analysis
}

func TestListAnalysesHandler(t *testing.T) {
	router, client, _ := newTestServer(t)
	now := time.Now()

	oldest := seedAnalysis(t, client.Client, gapanalysis.StatusCOMPLETED, now.Add(-2*time.Hour))
	middle := seedAnalysis(t, client.Client, gapanalysis.StatusFAILED, now.Add(-time.Hour))
	newest := seedAnalysis(t, client.Client, gapanalysis.StatusCOMPLETED, now)

	t.Run("pages newest first", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gap-analyses?limit=2")
		require.Equal(t, http.StatusOK, rec.Code)

		var list AnalysisList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, 2, list.Limit)
		assert.Equal(t, 0, list.Offset)
		require.Len(t, list.Analyses, 2)
		assert.Equal(t, newest.ID.String(), list.Analyses[0].ID)
		assert.Equal(t, middle.ID.String(), list.Analyses[1].ID)

		rec = doRequest(router, http.MethodGet, "/api/v1/gap-analyses?limit=2&offset=2")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list.Analyses, 1)
		assert.Equal(t, oldest.ID.String(), list.Analyses[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gap-analyses?status=FAILED")
		require.Equal(t, http.StatusOK, rec.Code)

		var list AnalysisList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Equal(t, 1, list.Total)
		require.Len(t, list.Analyses, 1)
		assert.Equal(t, middle.ID.String(), list.Analyses[0].ID)
		assert.Equal(t, "FAILED", list.Analyses[0].Status)
	})

	t.Run("rejects bad query parameters", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
		}{
			{"zero limit", "limit=0"},
			{"limit above cap", "limit=101"},
			{"non-numeric limit", "limit=abc"},
			{"negative offset", "offset=-1"},
			{"unknown status", "status=bogus"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doRequest(router, http.MethodGet, "/api/v1/gap-analyses?"+tt.query)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func TestListAnalysesHandler_Empty(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/gap-analyses")
	require.Equal(t, http.StatusOK, rec.Code)

	var list AnalysisList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
	assert.Equal(t, 10, list.Limit)
	assert.Empty(t, list.Analyses)
	// Clients iterate the array; it must not be null.
	assert.Contains(t, rec.Body.String(), `"analyses":[]`)
}

func TestGetAnalysisHandler(t *testing.T) {
	router, _, analyses := newTestServer(t)
	ctx := context.Background()

	req := models.GapAnalysisRequest{
		PaperID:           uuid.New().String(),
		PaperExtractionID: uuid.New().String(),
		CorrelationID:     uuid.New().String(),
		RequestID:         uuid.New().String(),
	}
	analysis, err := analyses.UpsertAnalysis(ctx, req)
	require.NoError(t, err)

	confidence := 0.85
	records := []services.GapRecord{
		{
			Detail: models.GapDetail{
				GapID:            analysis.ID.String() + "-0-" + uuid.New().String(),
				Name:             "Sparse reward transfer",
				Category:         "empirical",
				ValidationStatus: "VALID",
				ConfidenceScore:  confidence,
			},
			Validation: models.ValidationResult{IsValid: true, Confidence: confidence},
		},
		{
			Detail: models.GapDetail{
				GapID:            analysis.ID.String() + "-1-" + uuid.New().String(),
				Name:             "Curriculum ablation coverage",
				Category:         "methodological",
				ValidationStatus: "VALID",
				ConfidenceScore:  0.7,
			},
			Validation: models.ValidationResult{IsValid: true, Confidence: 0.7},
		},
	}
	require.NoError(t, analyses.CreateGaps(ctx, analysis.ID, records))
	counts := services.AnalysisCounts{Total: 3, Valid: 2, Invalid: 1}
	require.NoError(t, analyses.Finalize(ctx, analysis.ID, counts, gapanalysis.StatusCOMPLETED, ""))

	t.Run("returns the analysis with gaps in emission order", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gap-analyses/"+analysis.ID.String())
		require.Equal(t, http.StatusOK, rec.Code)

		var detail AnalysisDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.Equal(t, analysis.ID.String(), detail.ID)
		assert.Equal(t, req.PaperID, detail.PaperID)
		assert.Equal(t, "COMPLETED", detail.Status)
		assert.Equal(t, 3, detail.TotalGaps)
		assert.Equal(t, 2, detail.ValidGaps)
		assert.NotNil(t, detail.CompletedAt)

		require.Len(t, detail.Gaps, 2)
		assert.Equal(t, "Sparse reward transfer", detail.Gaps[0].Name)
		assert.Equal(t, "empirical", detail.Gaps[0].Category)
		assert.Equal(t, "VALID", detail.Gaps[0].ValidationStatus)
		require.NotNil(t, detail.Gaps[0].Confidence)
		assert.InDelta(t, confidence, *detail.Gaps[0].Confidence, 0.0001)
		assert.Equal(t, "Curriculum ablation coverage", detail.Gaps[1].Name)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gap-analyses/"+uuid.New().String())
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "gap analysis not found")
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gap-analyses/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid analysis id")
	})
}

func TestRetryAnalysisHandler(t *testing.T) {
	router, client, analyses := newTestServer(t)
	ctx := context.Background()

	t.Run("resets a failed analysis to PENDING", func(t *testing.T) {
		failed := seedAnalysis(t, client.Client, gapanalysis.StatusFAILED, time.Now())

		rec := doRequest(router, http.MethodPost, "/api/v1/gap-analyses/"+failed.ID.String()+"/retry")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RetryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Gap analysis queued for retry", resp.Message)
		assert.Equal(t, failed.ID.String(), resp.AnalysisID)

		reloaded, err := analyses.Get(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, gapanalysis.StatusPENDING, reloaded.Status)
		assert.Nil(t, reloaded.ErrorMessage)
		assert.Nil(t, reloaded.StartedAt)
		assert.Nil(t, reloaded.CompletedAt)
	})

	t.Run("rejects analyses that are not FAILED", func(t *testing.T) {
		completed := seedAnalysis(t, client.Client, gapanalysis.StatusCOMPLETED, time.Now())

		rec := doRequest(router, http.MethodPost, "/api/v1/gap-analyses/"+completed.ID.String()+"/retry")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "only failed analyses can be retried")
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/api/v1/gap-analyses/"+uuid.New().String()+"/retry")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/api/v1/gap-analyses/nope/retry")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
