package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/pkg/services"
)

// listAnalysesHandler handles GET /api/v1/gap-analyses.
func (s *Server) listAnalysesHandler(c *gin.Context) {
	filters := services.AnalysisFilters{Limit: 10}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be zero or greater"})
			return
		}
		filters.Offset = n
	}
	if v := c.Query("status"); v != "" {
		if err := gapanalysis.StatusValidator(gapanalysis.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}

	analyses, total, err := s.analyses.List(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	summaries := make([]AnalysisSummary, 0, len(analyses))
	for _, analysis := range analyses {
		summaries = append(summaries, analysisSummary(analysis))
	}

	c.JSON(http.StatusOK, AnalysisList{
		Total:    total,
		Limit:    filters.Limit,
		Offset:   filters.Offset,
		Analyses: summaries,
	})
}

// getAnalysisHandler handles GET /api/v1/gap-analyses/:id.
func (s *Server) getAnalysisHandler(c *gin.Context) {
	analysisID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis id"})
		return
	}

	analysis, err := s.analyses.Get(c.Request.Context(), analysisID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	detail := AnalysisDetail{
		AnalysisSummary: analysisSummary(analysis),
		Gaps:            make([]GapSummary, 0, len(analysis.Edges.Gaps)),
	}
	for _, gap := range analysis.Edges.Gaps {
		detail.Gaps = append(detail.Gaps, GapSummary{
			ID:               gap.ID.String(),
			Name:             gap.Name,
			Category:         gap.Category,
			ValidationStatus: string(gap.ValidationStatus),
			Confidence:       gap.ValidationConfidence,
		})
	}

	c.JSON(http.StatusOK, detail)
}

// retryAnalysisHandler handles POST /api/v1/gap-analyses/:id/retry. It
// only resets a FAILED analysis back to PENDING; re-publishing the bus
// request is the orchestrator's responsibility.
func (s *Server) retryAnalysisHandler(c *gin.Context) {
	analysisID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis id"})
		return
	}

	if err := s.analyses.ResetForRetry(c.Request.Context(), analysisID); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, RetryResponse{
		Message:    "Gap analysis queued for retry",
		AnalysisID: analysisID.String(),
	})
}

func analysisSummary(analysis *ent.GapAnalysis) AnalysisSummary {
	return AnalysisSummary{
		ID:          analysis.ID.String(),
		PaperID:     analysis.PaperID.String(),
		Status:      string(analysis.Status),
		TotalGaps:   analysis.TotalGapsIdentified,
		ValidGaps:   analysis.ValidGapsCount,
		CreatedAt:   analysis.CreatedAt,
		CompletedAt: analysis.CompletedAt,
	}
}
