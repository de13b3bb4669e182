package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/pkg/models"
)

// getGapHandler handles GET /api/v1/gaps/:id.
func (s *Server) getGapHandler(c *gin.Context) {
	gapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gap id"})
		return
	}

	gap, err := s.analyses.GetGap(c.Request.Context(), gapID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gapResponse(gap))
}

func gapResponse(gap *ent.ResearchGap) GapResponse {
	topics := make([]models.ResearchTopic, 0, len(gap.Edges.Topics))
	for _, topic := range gap.Edges.Topics {
		topics = append(topics, models.ResearchTopic{
			Title:                  topic.Title,
			Description:            topic.Description,
			ResearchQuestions:      topic.ResearchQuestions,
			MethodologySuggestions: strVal(topic.MethodologySuggestions),
			ExpectedOutcomes:       strVal(topic.ExpectedOutcomes),
			RelevanceScore:         topic.RelevanceScore,
		})
	}

	papers := make([]ValidationPaper, 0, len(gap.Edges.ValidationPapers))
	for _, paper := range gap.Edges.ValidationPapers {
		papers = append(papers, ValidationPaper{
			Title:            paper.Title,
			DOI:              paper.Doi,
			URL:              paper.URL,
			PublicationDate:  paper.PublicationDate,
			ExtractionStatus: paper.ExtractionStatus,
			SupportsGap:      paper.SupportsGap,
			ConflictsWithGap: paper.ConflictsWithGap,
		})
	}

	return GapResponse{
		ID:                        gap.ID.String(),
		GapID:                     gap.GapID,
		Name:                      gap.Name,
		Description:               gap.Description,
		Category:                  gap.Category,
		ValidationStatus:          string(gap.ValidationStatus),
		Confidence:                gap.ValidationConfidence,
		PotentialImpact:           gap.PotentialImpact,
		ResearchHints:             gap.ResearchHints,
		ImplementationSuggestions: gap.ImplementationSuggestions,
		RisksAndChallenges:        gap.RisksAndChallenges,
		RequiredResources:         gap.RequiredResources,
		EstimatedDifficulty:       gap.EstimatedDifficulty,
		EstimatedTimeline:         gap.EstimatedTimeline,
		EvidenceAnchors:           gap.EvidenceAnchors,
		SuggestedTopics:           topics,
		PapersAnalyzed:            gap.PapersAnalyzedCount,
		ValidationPapers:          papers,
		CreatedAt:                 gap.CreatedAt,
		ValidatedAt:               gap.ValidatedAt,
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
