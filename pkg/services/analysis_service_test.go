package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/researchgap"
	"github.com/scholarai/gapfinder/pkg/models"
	testdb "github.com/scholarai/gapfinder/test/database"
)

func newAnalysisRequest() models.GapAnalysisRequest {
	return models.GapAnalysisRequest{
		PaperID:           uuid.New().String(),
		PaperExtractionID: uuid.New().String(),
		CorrelationID:     uuid.New().String(),
		RequestID:         uuid.New().String(),
	}
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

func TestAnalysisService_UpsertAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	t.Run("creates a new analysis in PROCESSING", func(t *testing.T) {
		req := newAnalysisRequest()
		req.Config = map[string]any{"maxGaps": float64(5)}

		analysis, err := service.UpsertAnalysis(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.PaperID, analysis.PaperID.String())
		assert.Equal(t, req.PaperExtractionID, analysis.PaperExtractionID.String())
		assert.Equal(t, req.CorrelationID, analysis.CorrelationID)
		assert.Equal(t, req.RequestID, analysis.RequestID)
		assert.Equal(t, gapanalysis.StatusPROCESSING, analysis.Status)
		assert.NotNil(t, analysis.StartedAt)
		assert.Nil(t, analysis.CompletedAt)
		assert.Nil(t, analysis.ErrorMessage)
		assert.Equal(t, float64(5), analysis.Config["maxGaps"])
		assert.Equal(t, 0, analysis.TotalGapsIdentified)
	})

	t.Run("same correlation id lands on the same row", func(t *testing.T) {
		req := newAnalysisRequest()

		first, err := service.UpsertAnalysis(ctx, req)
		require.NoError(t, err)
		require.NoError(t, service.CreateGaps(ctx, first.ID, []GapRecord{
			{Detail: models.GapDetail{GapID: uuid.New().String(), Name: "stale", ConfidenceScore: 0.9}},
		}))
		require.NoError(t, service.Finalize(ctx, first.ID, AnalysisCounts{}, gapanalysis.StatusFAILED, "model timeout"))

		redelivery := req
		redelivery.RequestID = uuid.New().String()
		second, err := service.UpsertAnalysis(ctx, redelivery)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, redelivery.RequestID, second.RequestID)
		assert.Equal(t, gapanalysis.StatusPROCESSING, second.Status)
		assert.Nil(t, second.ErrorMessage)
		assert.NotNil(t, second.StartedAt)

		total, err := client.GapAnalysis.Query().
			Where(gapanalysis.CorrelationIDEQ(req.CorrelationID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		staleGaps, err := client.ResearchGap.Query().
			Where(researchgap.GapAnalysisIDEQ(first.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, staleGaps, "gaps from the previous run should be cleared")
	})

	t.Run("validates request fields", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*models.GapAnalysisRequest)
			wantErr string
		}{
			{
				name:    "missing correlationId",
				mutate:  func(r *models.GapAnalysisRequest) { r.CorrelationID = "" },
				wantErr: "correlationId",
			},
			{
				name:    "missing requestId",
				mutate:  func(r *models.GapAnalysisRequest) { r.RequestID = "" },
				wantErr: "requestId",
			},
			{
				name:    "malformed paperId",
				mutate:  func(r *models.GapAnalysisRequest) { r.PaperID = "not-a-uuid" },
				wantErr: "paperId",
			},
			{
				name:    "malformed paperExtractionId",
				mutate:  func(r *models.GapAnalysisRequest) { r.PaperExtractionID = "definitely-not" },
				wantErr: "paperExtractionId",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := newAnalysisRequest()
				tt.mutate(&req)
				_, err := service.UpsertAnalysis(ctx, req)
				require.Error(t, err)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestAnalysisService_GetByCorrelation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	req := newAnalysisRequest()
	created, err := service.UpsertAnalysis(ctx, req)
	require.NoError(t, err)

	found, err := service.GetByCorrelation(ctx, req.CorrelationID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = service.GetByCorrelation(ctx, "no-such-correlation")
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestAnalysisService_Finalize(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	t.Run("records completion counters", func(t *testing.T) {
		analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
		require.NoError(t, err)

		counts := AnalysisCounts{Total: 5, Valid: 3, Invalid: 2, Modified: 1}
		require.NoError(t, service.Finalize(ctx, analysis.ID, counts, gapanalysis.StatusCOMPLETED, ""))

		reloaded, err := client.GapAnalysis.Get(ctx, analysis.ID)
		require.NoError(t, err)
		assert.Equal(t, gapanalysis.StatusCOMPLETED, reloaded.Status)
		assert.Equal(t, 5, reloaded.TotalGapsIdentified)
		assert.Equal(t, 3, reloaded.ValidGapsCount)
		assert.Equal(t, 2, reloaded.InvalidGapsCount)
		assert.Equal(t, 1, reloaded.ModifiedGapsCount)
		assert.NotNil(t, reloaded.CompletedAt)
		assert.Nil(t, reloaded.ErrorMessage)
	})

	t.Run("records the error message on failure", func(t *testing.T) {
		analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
		require.NoError(t, err)

		require.NoError(t, service.Finalize(ctx, analysis.ID, AnalysisCounts{}, gapanalysis.StatusFAILED, "Paper not found"))

		reloaded, err := client.GapAnalysis.Get(ctx, analysis.ID)
		require.NoError(t, err)
		assert.Equal(t, gapanalysis.StatusFAILED, reloaded.Status)
		require.NotNil(t, reloaded.ErrorMessage)
		assert.Equal(t, "Paper not found", *reloaded.ErrorMessage)
		assert.NotNil(t, reloaded.CompletedAt)
	})

	t.Run("unknown analysis", func(t *testing.T) {
		err := service.Finalize(ctx, uuid.New(), AnalysisCounts{}, gapanalysis.StatusCOMPLETED, "")
		assert.ErrorIs(t, err, ErrAnalysisNotFound)
	})
}

func TestAnalysisService_ResetForRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	t.Run("returns a failed analysis to PENDING", func(t *testing.T) {
		analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
		require.NoError(t, err)
		require.NoError(t, service.Finalize(ctx, analysis.ID, AnalysisCounts{}, gapanalysis.StatusFAILED, "boom"))

		require.NoError(t, service.ResetForRetry(ctx, analysis.ID))

		reloaded, err := client.GapAnalysis.Get(ctx, analysis.ID)
		require.NoError(t, err)
		assert.Equal(t, gapanalysis.StatusPENDING, reloaded.Status)
		assert.Nil(t, reloaded.ErrorMessage)
		assert.Nil(t, reloaded.StartedAt)
		assert.Nil(t, reloaded.CompletedAt)
	})

	t.Run("rejects analyses that are not FAILED", func(t *testing.T) {
		analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
		require.NoError(t, err)

		err = service.ResetForRetry(ctx, analysis.ID)
		assert.ErrorIs(t, err, ErrNotRetryable)
	})

	t.Run("unknown analysis", func(t *testing.T) {
		err := service.ResetForRetry(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrAnalysisNotFound)
	})
}

func TestAnalysisService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		seedAnalysis(t, client.Client, gapanalysis.StatusCOMPLETED, base.Add(time.Duration(i)*time.Minute))
	}
	newestFailed := seedAnalysis(t, client.Client, gapanalysis.StatusFAILED, base.Add(10*time.Minute))
	seedAnalysis(t, client.Client, gapanalysis.StatusFAILED, base.Add(5*time.Minute))

	t.Run("pages newest first", func(t *testing.T) {
		analyses, total, err := service.List(ctx, AnalysisFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, analyses, 2)
		assert.Equal(t, newestFailed.ID, analyses[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		analyses, total, err := service.List(ctx, AnalysisFilters{Status: "COMPLETED", Limit: 50})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, analyses, 3)
	})

	t.Run("applies offset", func(t *testing.T) {
		firstPage, _, err := service.List(ctx, AnalysisFilters{Limit: 2})
		require.NoError(t, err)
		secondPage, _, err := service.List(ctx, AnalysisFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, secondPage, 2)
		assert.NotEqual(t, firstPage[0].ID, secondPage[0].ID)
		assert.NotEqual(t, firstPage[1].ID, secondPage[1].ID)
	})

	t.Run("clamps paging bounds", func(t *testing.T) {
		analyses, total, err := service.List(ctx, AnalysisFilters{Limit: 1000, Offset: -3})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, analyses, 5)

		defaulted, _, err := service.List(ctx, AnalysisFilters{})
		require.NoError(t, err)
		assert.Len(t, defaulted, 5)
	})
}

func TestAnalysisService_CreateGaps(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	t.Run("persists gaps with topics and validation papers", func(t *testing.T) {
		analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
		require.NoError(t, err)

		published := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		records := []GapRecord{
			{
				Detail: models.GapDetail{
					GapID:                     analysis.ID.String() + "-0-" + uuid.New().String(),
					Name:                      "Reward shaping under sparse feedback",
					Description:               "No systematic study of shaping schedules.",
					Category:                  "methodological",
					ConfidenceScore:           0.85,
					PotentialImpact:           "Better sample efficiency.",
					ResearchHints:             "Start from potential-based shaping.",
					ImplementationSuggestions: "Benchmark on sparse-reward suites.",
					RisksAndChallenges:        "Shaping bias.",
					RequiredResources:         "GPU cluster.",
					EstimatedDifficulty:       "medium",
					EstimatedTimeline:         "6-12 months",
					EvidenceAnchors: []map[string]string{
						{"section": "Discussion", "quote": "left to future work"},
					},
					SuggestedTopics: []models.ResearchTopic{
						{
							Title:                  "Schedule ablations",
							Description:            "Compare annealing schedules.",
							ResearchQuestions:      []string{"Which schedule converges fastest?"},
							MethodologySuggestions: "Grid search over decay rates.",
							ExpectedOutcomes:       "A recommended default schedule.",
							RelevanceScore:         0.9,
						},
					},
				},
				SearchQuery:      "reward shaping sparse feedback",
				PapersAnalyzed:   3,
				InitialReasoning: "Authors defer schedule design.",
				InitialEvidence:  "Section 5 names it future work.",
				Validation: models.ValidationResult{
					IsValid:    true,
					Confidence: 0.85,
					Reasoning:  "No related paper covers schedules.",
					SupportingPapers: []map[string]string{
						{"title": "Shaping Survey", "relevance": "background"},
					},
				},
				Papers: []ValidationPaperRecord{
					{
						Title:            "Shaping Survey",
						DOI:              "10.1000/shaping",
						URL:              "https://example.org/shaping",
						PublicationDate:  &published,
						ExtractionStatus: "success",
						SupportsGap:      true,
					},
					{
						Title:            "Sparse Rewards in Practice",
						ExtractionStatus: "metadata_only",
					},
				},
			},
			{
				Detail: models.GapDetail{
					GapID:           analysis.ID.String() + "-1-" + uuid.New().String(),
					Name:            "Cross-domain transfer of shaped policies",
					Description:     "Transfer behavior is unreported.",
					ConfidenceScore: 0.5,
				},
				PapersAnalyzed: 0,
				Validation: models.ValidationResult{
					IsValid:    true,
					Confidence: 0.5,
					Reasoning:  "No related papers found",
				},
			},
		}

		require.NoError(t, service.CreateGaps(ctx, analysis.ID, records))

		gaps, err := client.ResearchGap.Query().
			Where(researchgap.GapAnalysisIDEQ(analysis.ID)).
			Order(ent.Asc(researchgap.FieldOrderIndex)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, gaps, 2)

		first := gaps[0]
		assert.Equal(t, 0, first.OrderIndex)
		assert.Equal(t, "Reward shaping under sparse feedback", first.Name)
		assert.Equal(t, researchgap.ValidationStatusVALID, first.ValidationStatus)
		require.NotNil(t, first.ValidationConfidence)
		assert.InDelta(t, 0.85, *first.ValidationConfidence, 0.001)
		assert.Equal(t, "methodological", first.Category)
		require.NotNil(t, first.ValidationQuery)
		assert.Equal(t, "reward shaping sparse feedback", *first.ValidationQuery)
		require.NotNil(t, first.InitialReasoning)
		assert.Equal(t, "Authors defer schedule design.", *first.InitialReasoning)
		require.NotNil(t, first.ValidationReasoning)
		assert.Equal(t, "No related paper covers schedules.", *first.ValidationReasoning)
		assert.Equal(t, 3, first.PapersAnalyzedCount)
		assert.NotNil(t, first.ValidatedAt)
		require.Len(t, first.EvidenceAnchors, 1)
		assert.Equal(t, "Discussion", first.EvidenceAnchors[0]["section"])
		require.Len(t, first.SupportingPapers, 1)
		assert.Empty(t, first.ConflictingPapers)
		require.Len(t, first.SuggestedTopics, 1)
		assert.Equal(t, "Schedule ablations", first.SuggestedTopics[0]["title"])
		require.NotNil(t, first.EstimatedDifficulty)
		assert.Equal(t, "medium", *first.EstimatedDifficulty)

		second := gaps[1]
		assert.Equal(t, 1, second.OrderIndex)
		assert.Empty(t, second.Category)
		assert.Nil(t, second.ValidationQuery)
		assert.Empty(t, second.SuggestedTopics)

		topics, err := client.GapTopic.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, first.ID, topics[0].ResearchGapID)
		assert.Equal(t, "Schedule ablations", topics[0].Title)
		assert.Equal(t, []string{"Which schedule converges fastest?"}, topics[0].ResearchQuestions)
		assert.InDelta(t, 0.9, topics[0].RelevanceScore, 0.001)
		require.NotNil(t, topics[0].MethodologySuggestions)
		assert.Equal(t, "Grid search over decay rates.", *topics[0].MethodologySuggestions)

		papers, err := client.GapValidationPaper.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, papers, 2)
		byTitle := map[string]*ent.GapValidationPaper{}
		for _, p := range papers {
			byTitle[p.Title] = p
		}
		survey := byTitle["Shaping Survey"]
		require.NotNil(t, survey)
		assert.Equal(t, first.ID, survey.ResearchGapID)
		require.NotNil(t, survey.Doi)
		assert.Equal(t, "10.1000/shaping", *survey.Doi)
		require.NotNil(t, survey.URL)
		assert.Equal(t, "https://example.org/shaping", *survey.URL)
		require.NotNil(t, survey.PublicationDate)
		assert.True(t, survey.SupportsGap)
		assert.False(t, survey.ConflictsWithGap)
		metadataOnly := byTitle["Sparse Rewards in Practice"]
		require.NotNil(t, metadataOnly)
		assert.Nil(t, metadataOnly.Doi)
		require.NotNil(t, metadataOnly.ExtractionStatus)
		assert.Equal(t, "metadata_only", *metadataOnly.ExtractionStatus)
	})

	t.Run("empty set is a no-op", func(t *testing.T) {
		analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
		require.NoError(t, err)
		require.NoError(t, service.CreateGaps(ctx, analysis.ID, nil))

		n, err := client.ResearchGap.Query().
			Where(researchgap.GapAnalysisIDEQ(analysis.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("rolls back the whole set on conflict", func(t *testing.T) {
		analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
		require.NoError(t, err)

		duplicateID := analysis.ID.String() + "-0-" + uuid.New().String()
		records := []GapRecord{
			{Detail: models.GapDetail{GapID: duplicateID, Name: "first", ConfidenceScore: 0.8}},
			{Detail: models.GapDetail{GapID: duplicateID, Name: "second", ConfidenceScore: 0.8}},
		}

		err = service.CreateGaps(ctx, analysis.ID, records)
		require.Error(t, err)

		n, err := client.ResearchGap.Query().
			Where(researchgap.GapAnalysisIDEQ(analysis.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestAnalysisService_GetWithGaps(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
	require.NoError(t, err)

	records := []GapRecord{
		{Detail: models.GapDetail{GapID: analysis.ID.String() + "-0-" + uuid.New().String(), Name: "alpha", ConfidenceScore: 0.9}},
		{Detail: models.GapDetail{GapID: analysis.ID.String() + "-1-" + uuid.New().String(), Name: "beta", ConfidenceScore: 0.7}},
	}
	require.NoError(t, service.CreateGaps(ctx, analysis.ID, records))

	t.Run("returns gaps in emission order", func(t *testing.T) {
		got, err := service.Get(ctx, analysis.ID)
		require.NoError(t, err)
		require.Len(t, got.Edges.Gaps, 2)
		assert.Equal(t, "alpha", got.Edges.Gaps[0].Name)
		assert.Equal(t, "beta", got.Edges.Gaps[1].Name)
	})

	t.Run("unknown analysis", func(t *testing.T) {
		_, err := service.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrAnalysisNotFound)
	})
}

func TestAnalysisService_GetGap(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAnalysisService(client.Client)
	ctx := context.Background()

	analysis, err := service.UpsertAnalysis(ctx, newAnalysisRequest())
	require.NoError(t, err)

	records := []GapRecord{
		{
			Detail: models.GapDetail{
				GapID:           analysis.ID.String() + "-0-" + uuid.New().String(),
				Name:            "alpha",
				ConfidenceScore: 0.9,
				SuggestedTopics: []models.ResearchTopic{
					{Title: "topic-1", Description: "d", RelevanceScore: 0.8},
				},
			},
			Papers: []ValidationPaperRecord{{Title: "related", SupportsGap: true}},
		},
	}
	require.NoError(t, service.CreateGaps(ctx, analysis.ID, records))

	stored, err := client.ResearchGap.Query().
		Where(researchgap.GapAnalysisIDEQ(analysis.ID)).
		Only(ctx)
	require.NoError(t, err)

	t.Run("loads topics and validation papers", func(t *testing.T) {
		gap, err := service.GetGap(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, "alpha", gap.Name)
		require.Len(t, gap.Edges.Topics, 1)
		assert.Equal(t, "topic-1", gap.Edges.Topics[0].Title)
		require.Len(t, gap.Edges.ValidationPapers, 1)
		assert.Equal(t, "related", gap.Edges.ValidationPapers[0].Title)
	})

	t.Run("unknown gap", func(t *testing.T) {
		_, err := service.GetGap(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrGapNotFound)
	})
}

func TestAnalysisService_Stats(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewAnalysisService(client.Client)

		stats, err := service.Stats(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 7, stats.PeriodDays)
		assert.Equal(t, 0, stats.TotalAnalyses)
		assert.Equal(t, 0, stats.RecentAnalyses)
		assert.Equal(t, 0, stats.StatusBreakdown["COMPLETED"])
		assert.Equal(t, 0, stats.TotalGapsFound)
		assert.Zero(t, stats.AvgGapsPerAnalysis)
	})

	t.Run("aggregates completed analyses", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewAnalysisService(client.Client)
		ctx := context.Background()

		now := time.Now()
		a1 := seedAnalysis(t, client.Client, gapanalysis.StatusCOMPLETED, now.Add(-time.Hour))
		require.NoError(t, client.GapAnalysis.UpdateOneID(a1.ID).
			SetTotalGapsIdentified(5).SetValidGapsCount(3).Exec(ctx))
		a2 := seedAnalysis(t, client.Client, gapanalysis.StatusCOMPLETED, now.AddDate(0, 0, -10))
		require.NoError(t, client.GapAnalysis.UpdateOneID(a2.ID).
			SetTotalGapsIdentified(3).SetValidGapsCount(2).Exec(ctx))
		seedAnalysis(t, client.Client, gapanalysis.StatusFAILED, now.Add(-2*time.Hour))
		seedAnalysis(t, client.Client, gapanalysis.StatusPENDING, now.Add(-time.Minute))

		stats, err := service.Stats(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalAnalyses)
		assert.Equal(t, 3, stats.RecentAnalyses)
		assert.Equal(t, 7, stats.PeriodDays)
		assert.Equal(t, 2, stats.StatusBreakdown["COMPLETED"])
		assert.Equal(t, 1, stats.StatusBreakdown["FAILED"])
		assert.Equal(t, 1, stats.StatusBreakdown["PENDING"])
		assert.Equal(t, 0, stats.StatusBreakdown["PROCESSING"])
		assert.Equal(t, 8, stats.TotalGapsFound)
		assert.Equal(t, 5, stats.TotalValidGaps)
		assert.InDelta(t, 4.0, stats.AvgGapsPerAnalysis, 0.001)
	})
}
