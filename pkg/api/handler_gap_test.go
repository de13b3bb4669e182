package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/services"
)

func TestGetGapHandler(t *testing.T) {
	router, client, analyses := newTestServer(t)
	ctx := context.Background()

	analysis, err := analyses.UpsertAnalysis(ctx, models.GapAnalysisRequest{
		PaperID:           uuid.New().String(),
		PaperExtractionID: uuid.New().String(),
		CorrelationID:     uuid.New().String(),
		RequestID:         uuid.New().String(),
	})
	require.NoError(t, err)

	gapID := analysis.ID.String() + "-0-" + uuid.New().String()
	pubDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []services.GapRecord{{
		Detail: models.GapDetail{
			GapID:                     gapID,
			Name:                      "Offline-to-online transfer",
			Description:               "No study bridges offline pretraining with online finetuning under shaped rewards.",
			Category:                  "empirical",
			ValidationStatus:          "VALID",
			ConfidenceScore:           0.9,
			PotentialImpact:           "Could unify two training regimes",
			ResearchHints:             "Start from conservative value estimation",
			ImplementationSuggestions: "Reuse existing offline RL baselines",
			RisksAndChallenges:        "Distribution shift between phases",
			RequiredResources:         "One GPU cluster",
			EstimatedDifficulty:       "medium",
			EstimatedTimeline:         "6-12 months",
			EvidenceAnchors: []map[string]string{
				{"section": "Related Work", "quote": "remains unexplored"},
			},
			SuggestedTopics: []models.ResearchTopic{{
				Title:                  "Shaped-reward finetuning benchmark",
				Description:            "A benchmark suite for transfer under shaping",
				ResearchQuestions:      []string{"Does shaping transfer across regimes?"},
				MethodologySuggestions: "Ablate shaping terms",
				ExpectedOutcomes:       "A public leaderboard",
				RelevanceScore:         0.8,
			}},
		},
		SearchQuery:      "offline online transfer shaped rewards",
		PapersAnalyzed:   2,
		InitialReasoning: "The paper only trains online",
		InitialEvidence:  "Section 5 limitations",
		Validation:       models.ValidationResult{IsValid: true, Confidence: 0.9, Reasoning: "No prior art found"},
		Papers: []services.ValidationPaperRecord{{
			Title:            "Paper With PDF",
			DOI:              "10.1/abc",
			URL:              "https://arxiv.org/abs/2406.00001",
			PublicationDate:  &pubDate,
			ExtractionStatus: "success",
			SupportsGap:      true,
		}},
	}}
	require.NoError(t, analyses.CreateGaps(ctx, analysis.ID, records))

	row, err := client.Client.ResearchGap.Query().Only(ctx)
	require.NoError(t, err)

	t.Run("returns the full gap detail", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gaps/"+row.ID.String())
		require.Equal(t, http.StatusOK, rec.Code)

		var gap GapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gap))
		assert.Equal(t, row.ID.String(), gap.ID)
		assert.Equal(t, gapID, gap.GapID)
		assert.Equal(t, "Offline-to-online transfer", gap.Name)
		assert.Equal(t, "empirical", gap.Category)
		assert.Equal(t, "VALID", gap.ValidationStatus)
		require.NotNil(t, gap.Confidence)
		assert.InDelta(t, 0.9, *gap.Confidence, 0.0001)

		require.NotNil(t, gap.PotentialImpact)
		assert.Equal(t, "Could unify two training regimes", *gap.PotentialImpact)
		require.NotNil(t, gap.EstimatedDifficulty)
		assert.Equal(t, "medium", *gap.EstimatedDifficulty)

		require.Len(t, gap.EvidenceAnchors, 1)
		assert.Equal(t, "Related Work", gap.EvidenceAnchors[0]["section"])

		require.Len(t, gap.SuggestedTopics, 1)
		topic := gap.SuggestedTopics[0]
		assert.Equal(t, "Shaped-reward finetuning benchmark", topic.Title)
		assert.Equal(t, []string{"Does shaping transfer across regimes?"}, topic.ResearchQuestions)
		assert.Equal(t, "Ablate shaping terms", topic.MethodologySuggestions)
		assert.InDelta(t, 0.8, topic.RelevanceScore, 0.0001)

		assert.Equal(t, 2, gap.PapersAnalyzed)
		require.Len(t, gap.ValidationPapers, 1)
		paper := gap.ValidationPapers[0]
		assert.Equal(t, "Paper With PDF", paper.Title)
		require.NotNil(t, paper.DOI)
		assert.Equal(t, "10.1/abc", *paper.DOI)
		require.NotNil(t, paper.ExtractionStatus)
		assert.Equal(t, "success", *paper.ExtractionStatus)
		assert.True(t, paper.SupportsGap)
		assert.False(t, paper.ConflictsWithGap)
		require.NotNil(t, paper.PublicationDate)
		assert.True(t, paper.PublicationDate.Equal(pubDate))

		assert.NotNil(t, gap.ValidatedAt)
		assert.False(t, gap.CreatedAt.IsZero())
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gaps/"+uuid.New().String())
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "research gap not found")
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rec := doRequest(router, http.MethodGet, "/api/v1/gaps/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid gap id")
	})
}
