package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/pkg/services"
)

func TestStatsHandler(t *testing.T) {
	router, client, _ := newTestServer(t)
	ctx := context.Background()

	seedCompleted := func(total, valid int) {
		_, err := client.Client.GapAnalysis.Create().
			SetPaperID(uuid.New()).
			SetPaperExtractionID(uuid.New()).
			SetCorrelationID(uuid.New().String()).
			SetRequestID(uuid.New().String()).
			SetStatus(gapanalysis.StatusCOMPLETED).
			SetTotalGapsIdentified(total).
			SetValidGapsCount(valid).
			Save(ctx)
		require.NoError(t, err)
	}
	seedCompleted(5, 3)
	seedCompleted(3, 2)

	_, err := client.Client.GapAnalysis.Create().
		SetPaperID(uuid.New()).
		SetPaperExtractionID(uuid.New()).
		SetCorrelationID(uuid.New().String()).
		SetRequestID(uuid.New().String()).
		SetStatus(gapanalysis.StatusFAILED).
		Save(ctx)
	require.NoError(t, err)

	t.Run("aggregates activity", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/stats")
		require.Equal(t, http.StatusOK, rec.Code)

		var stats services.AnalysisStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 3, stats.TotalAnalyses)
		assert.Equal(t, 3, stats.RecentAnalyses)
		assert.Equal(t, 7, stats.PeriodDays)
		assert.Equal(t, 2, stats.StatusBreakdown[string(gapanalysis.StatusCOMPLETED)])
		assert.Equal(t, 1, stats.StatusBreakdown[string(gapanalysis.StatusFAILED)])
		assert.Equal(t, 8, stats.TotalGapsFound)
		assert.Equal(t, 5, stats.TotalValidGaps)
		assert.InDelta(t, 4.0, stats.AvgGapsPerAnalysis, 0.0001)
	})

	t.Run("rejects non-integer days", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/stats?days=soon")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-positive days fall back to the default window", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/stats?days=-3")
		require.Equal(t, http.StatusOK, rec.Code)

		var stats services.AnalysisStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 7, stats.PeriodDays)
	})
}
