package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/researchgap"
	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/services"
	testdb "github.com/scholarai/gapfinder/test/database"
)

type fakeLLM struct {
	initialGaps []models.InitialGap
	initialErr  error
	validate    func(gap models.InitialGap) models.ValidationResult
	expand      func(gap models.InitialGap, validation models.ValidationResult) map[string]any

	validatedGaps []string
	expandedWith  []models.ValidationResult
}

func (f *fakeLLM) GenerateInitialGaps(_ context.Context, _ models.PaperData, _ models.ExtractedPaperContent) ([]models.InitialGap, error) {
	return f.initialGaps, f.initialErr
}

func (f *fakeLLM) GenerateSearchQuery(_ context.Context, gap models.InitialGap) string {
	return "query for " + gap.Name
}

func (f *fakeLLM) ValidateGap(_ context.Context, gap models.InitialGap, _ []models.ExtractedContent) models.ValidationResult {
	f.validatedGaps = append(f.validatedGaps, gap.Name)
	if f.validate != nil {
		return f.validate(gap)
	}
	return models.ValidationResult{IsValid: true, Confidence: 0.9, Reasoning: "still open"}
}

func (f *fakeLLM) ExpandGapDetails(_ context.Context, gap models.InitialGap, validation models.ValidationResult) map[string]any {
	f.expandedWith = append(f.expandedWith, validation)
	if f.expand != nil {
		return f.expand(gap, validation)
	}
	return map[string]any{
		"potential_impact":           "impact of " + gap.Name,
		"research_hints":             "hints",
		"implementation_suggestions": "suggestions",
		"risks_and_challenges":       "risks",
		"required_resources":         "a lab",
		"estimated_difficulty":       "medium",
		"estimated_timeline":         "6-12 months",
		"evidence_anchors": []any{
			map[string]any{"section": "Discussion", "quote": "future work"},
		},
		"suggested_topics": []any{
			map[string]any{
				"title":              "topic for " + gap.Name,
				"description":        "a direction",
				"research_questions": []any{"how?"},
				"relevance_score":    0.7,
			},
		},
	}
}

type fakeSearch struct {
	results []models.PaperSearchResult
	queries []string
}

func (f *fakeSearch) SearchPapers(_ context.Context, query string, _ int) []models.PaperSearchResult {
	f.queries = append(f.queries, query)
	return f.results
}

type fakeExtractor struct{ calls int }

func (f *fakeExtractor) ExtractBatch(_ context.Context, papers []models.PaperSearchResult) []models.ExtractedContent {
	f.calls++
	contents := make([]models.ExtractedContent, len(papers))
	for i, paper := range papers {
		contents[i] = models.ExtractedContent{
			Title:             paper.Title,
			ExtractionSuccess: paper.PDFURL != "",
		}
	}
	return contents
}

type harness struct {
	client    *ent.Client
	analyses  *services.AnalysisService
	llm       *fakeLLM
	search    *fakeSearch
	extractor *fakeExtractor
	pipeline  *Pipeline
}

func newHarness(t *testing.T) *harness {
	client := testdb.NewTestClient(t)
	analyses := services.NewAnalysisService(client.Client)
	papers := services.NewPaperService(client.Client)
	h := &harness{
		client:    client.Client,
		analyses:  analyses,
		llm:       &fakeLLM{},
		search:    &fakeSearch{},
		extractor: &fakeExtractor{},
	}
	h.pipeline = New(analyses, papers, h.llm, h.search, h.extractor, 5)
	return h
}

// seedPaper inserts a paper row and returns a request pointing at it.
func (h *harness) seedPaper(t *testing.T) models.GapAnalysisRequest {
	t.Helper()
	paper, err := h.client.Paper.Create().
		SetTitle("Reward Shaping Revisited").
		SetAbstractText("We revisit shaping.").
		Save(context.Background())
	require.NoError(t, err)
	return models.GapAnalysisRequest{
		PaperID:           paper.ID.String(),
		PaperExtractionID: uuid.New().String(),
		CorrelationID:     uuid.New().String(),
		RequestID:         uuid.New().String(),
	}
}

func initialGaps(names ...string) []models.InitialGap {
	gaps := make([]models.InitialGap, 0, len(names))
	for _, name := range names {
		gaps = append(gaps, models.InitialGap{
			Name:        name,
			Description: "description of " + name,
			Category:    "methodological",
			Reasoning:   "reasoning for " + name,
			Evidence:    "evidence for " + name,
		})
	}
	return gaps
}

func TestPipeline_HappyPath(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)

	h.llm.initialGaps = initialGaps("alpha", "beta", "gamma")
	h.llm.validate = func(models.InitialGap) models.ValidationResult {
		return models.ValidationResult{
			IsValid:          true,
			Confidence:       0.9,
			Reasoning:        "still open",
			SupportingPapers: []map[string]string{{"title": "Paper With PDF"}},
		}
	}
	h.search.results = []models.PaperSearchResult{
		{
			Title:           "Paper With PDF",
			DOI:             "10.1000/pdf",
			URL:             "https://arxiv.org/abs/1234.5678",
			PDFURL:          "https://arxiv.org/pdf/1234.5678",
			PublicationDate: "2024-06-01",
		},
		{Title: "Metadata Only Paper"},
	}

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, resp.Status)
	assert.Equal(t, req.RequestID, resp.RequestID)
	assert.Equal(t, req.CorrelationID, resp.CorrelationID)
	assert.Equal(t, "Successfully identified 3 valid research gaps", resp.Message)
	assert.Equal(t, 3, resp.TotalGaps)
	assert.Equal(t, 3, resp.ValidGaps)
	assert.NotNil(t, resp.CompletedAt)
	analysisID, err := uuid.Parse(resp.GapAnalysisID)
	require.NoError(t, err)

	require.Len(t, resp.Gaps, 3)
	for i, name := range []string{"alpha", "beta", "gamma"} {
		gap := resp.Gaps[i]
		assert.Equal(t, name, gap.Name)
		assert.True(t, strings.HasPrefix(gap.GapID, fmt.Sprintf("%s-%d-", resp.GapAnalysisID, i)), "gap id %q", gap.GapID)
		assert.Equal(t, "VALID", gap.ValidationStatus)
		assert.InDelta(t, 0.9, gap.ConfidenceScore, 0.001)
		assert.Equal(t, "impact of "+name, gap.PotentialImpact)
		assert.Equal(t, "medium", gap.EstimatedDifficulty)
		require.Len(t, gap.EvidenceAnchors, 1)
		assert.Equal(t, "Discussion", gap.EvidenceAnchors[0]["section"])
		require.Len(t, gap.SuggestedTopics, 1)
		assert.Equal(t, "topic for "+name, gap.SuggestedTopics[0].Title)
		assert.Equal(t, 0, gap.SupportingPapersCount)
	}

	// The real validation verdict feeds expansion.
	require.Len(t, h.llm.expandedWith, 3)
	assert.InDelta(t, 0.9, h.llm.expandedWith[0].Confidence, 0.001)
	assert.Equal(t, 3, h.extractor.calls)
	assert.Equal(t, []string{"query for alpha", "query for beta", "query for gamma"}, h.search.queries)

	rows, err := h.client.ResearchGap.Query().
		Where(researchgap.GapAnalysisIDEQ(analysisID)).
		Order(ent.Asc(researchgap.FieldOrderIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, name := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, name, rows[i].Name)
		assert.Equal(t, i, rows[i].OrderIndex)
		assert.Equal(t, researchgap.ValidationStatusVALID, rows[i].ValidationStatus)
		require.NotNil(t, rows[i].ValidationQuery)
		assert.Equal(t, "query for "+name, *rows[i].ValidationQuery)
		assert.Equal(t, 2, rows[i].PapersAnalyzedCount)
		require.NotNil(t, rows[i].InitialReasoning)
		assert.Equal(t, "reasoning for "+name, *rows[i].InitialReasoning)
	}

	consulted, err := h.client.GapValidationPaper.Query().
		Where(gapvalidationpaper.ResearchGapIDEQ(rows[0].ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, consulted, 2)
	byTitle := map[string]*ent.GapValidationPaper{}
	for _, p := range consulted {
		byTitle[p.Title] = p
	}
	withPDF := byTitle["Paper With PDF"]
	require.NotNil(t, withPDF)
	require.NotNil(t, withPDF.ExtractionStatus)
	assert.Equal(t, "success", *withPDF.ExtractionStatus)
	assert.True(t, withPDF.SupportsGap)
	require.NotNil(t, withPDF.PublicationDate)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), withPDF.PublicationDate.UTC())
	metadataOnly := byTitle["Metadata Only Paper"]
	require.NotNil(t, metadataOnly)
	require.NotNil(t, metadataOnly.ExtractionStatus)
	assert.Equal(t, "metadata_only", *metadataOnly.ExtractionStatus)
	assert.False(t, metadataOnly.SupportsGap)

	topics, err := h.client.GapTopic.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, topics)

	row, err := h.client.GapAnalysis.Get(ctx, analysisID)
	require.NoError(t, err)
	assert.Equal(t, gapanalysis.StatusCOMPLETED, row.Status)
	assert.Equal(t, 3, row.TotalGapsIdentified)
	assert.Equal(t, 3, row.ValidGapsCount)
	assert.Equal(t, 0, row.InvalidGapsCount)
	assert.NotNil(t, row.CompletedAt)
	assert.Nil(t, row.ErrorMessage)
}

func TestPipeline_IdempotentRedelivery(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)
	h.llm.initialGaps = initialGaps("alpha", "beta")

	first := h.pipeline.Analyze(ctx, req)
	second := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, first.Status)
	require.Equal(t, models.StatusCompleted, second.Status)
	assert.Equal(t, first.GapAnalysisID, second.GapAnalysisID)
	assert.Equal(t, first.TotalGaps, second.TotalGaps)
	assert.Equal(t, first.ValidGaps, second.ValidGaps)

	analyses, err := h.client.GapAnalysis.Query().
		Where(gapanalysis.CorrelationIDEQ(req.CorrelationID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, analyses, "redelivery must not fork a second analysis")

	gaps, err := h.client.ResearchGap.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, gaps, "redelivery must replace the stored gaps, not append")
}

func TestPipeline_NoGaps(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, resp.Status)
	assert.Equal(t, "Analysis completed - no research gaps identified", resp.Message)
	assert.Equal(t, 0, resp.TotalGaps)
	assert.Equal(t, 0, resp.ValidGaps)
	require.NotNil(t, resp.Gaps)
	assert.Empty(t, resp.Gaps)
	assert.NotEmpty(t, resp.GapAnalysisID)
	assert.Nil(t, resp.CompletedAt)

	row, err := h.analyses.GetByCorrelation(ctx, req.CorrelationID)
	require.NoError(t, err)
	assert.Equal(t, gapanalysis.StatusCOMPLETED, row.Status)
	assert.Equal(t, 0, row.TotalGapsIdentified)
	assert.NotNil(t, row.CompletedAt)
}

func TestPipeline_PaperNotFound(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := models.GapAnalysisRequest{
		PaperID:           uuid.New().String(),
		PaperExtractionID: uuid.New().String(),
		CorrelationID:     uuid.New().String(),
		RequestID:         uuid.New().String(),
	}

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusFailed, resp.Status)
	assert.Equal(t, "Analysis failed: Paper not found", resp.Message)
	assert.Equal(t, "Paper not found", resp.Error)
	assert.Empty(t, resp.GapAnalysisID)
	assert.Nil(t, resp.CompletedAt)
	require.NotNil(t, resp.Gaps)
	assert.Empty(t, resp.Gaps)

	row, err := h.analyses.GetByCorrelation(ctx, req.CorrelationID)
	require.NoError(t, err, "the analysis row must exist even when the paper does not")
	assert.Equal(t, gapanalysis.StatusFAILED, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "Paper not found", *row.ErrorMessage)
	assert.NotNil(t, row.CompletedAt)
}

func TestPipeline_RejectedRequest(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)
	req.CorrelationID = ""

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusFailed, resp.Status)
	assert.Contains(t, resp.Error, "correlationId")

	total, err := h.client.GapAnalysis.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestPipeline_DegradedExpansion(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)

	h.llm.initialGaps = initialGaps("alpha")
	h.llm.expand = func(models.InitialGap, models.ValidationResult) map[string]any {
		return map[string]any{
			"potential_impact":           "Unable to generate impact analysis due to rate limiting",
			"research_hints":             "Unable to generate hints due to rate limiting",
			"implementation_suggestions": "Unable to generate suggestions due to rate limiting",
			"risks_and_challenges":       "Unable to identify risks due to rate limiting",
			"required_resources":         "Unable to identify resources due to rate limiting",
			"estimated_difficulty":       "unknown",
			"estimated_timeline":         "unknown",
			"suggested_topics":           []any{},
		}
	}

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, resp.Status)
	assert.Equal(t, 1, resp.ValidGaps)
	require.Len(t, resp.Gaps, 1)
	gap := resp.Gaps[0]
	assert.Equal(t, "Unable to generate impact analysis due to rate limiting", gap.PotentialImpact)
	assert.Equal(t, "unknown", gap.EstimatedDifficulty)
	require.NotNil(t, gap.SuggestedTopics)
	assert.Empty(t, gap.SuggestedTopics)
	require.NotNil(t, gap.EvidenceAnchors)
	assert.Empty(t, gap.EvidenceAnchors)
}

func TestPipeline_PartialFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)

	h.llm.initialGaps = initialGaps("alpha", "beta", "gamma")
	h.llm.validate = func(gap models.InitialGap) models.ValidationResult {
		if gap.Name == "beta" {
			panic("validation stage blew up")
		}
		return models.ValidationResult{IsValid: true, Confidence: 0.9, Reasoning: "still open"}
	}
	h.search.results = []models.PaperSearchResult{{Title: "Related", PDFURL: "https://arxiv.org/pdf/1"}}

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, resp.Status)
	assert.Equal(t, 3, resp.TotalGaps)
	assert.Equal(t, 2, resp.ValidGaps)
	require.Len(t, resp.Gaps, 2)
	assert.Equal(t, "alpha", resp.Gaps[0].Name)
	assert.Equal(t, "gamma", resp.Gaps[1].Name)

	analysisID := uuid.MustParse(resp.GapAnalysisID)
	rows, err := h.client.ResearchGap.Query().
		Where(researchgap.GapAnalysisIDEQ(analysisID)).
		Order(ent.Asc(researchgap.FieldOrderIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].OrderIndex)
	assert.Equal(t, 1, rows[1].OrderIndex)

	row, err := h.client.GapAnalysis.Get(ctx, analysisID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.InvalidGapsCount)
}

func TestPipeline_NoRelatedPapers(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)
	h.llm.initialGaps = initialGaps("alpha")

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, resp.Status)
	require.Len(t, resp.Gaps, 1)
	assert.InDelta(t, 0.5, resp.Gaps[0].ConfidenceScore, 0.001)

	// With nothing to compare against, neither extraction nor model
	// validation runs.
	assert.Equal(t, 0, h.extractor.calls)
	assert.Empty(t, h.llm.validatedGaps)
	require.Len(t, h.llm.expandedWith, 1)
	assert.Equal(t, "No related papers found", h.llm.expandedWith[0].Reasoning)

	analysisID := uuid.MustParse(resp.GapAnalysisID)
	stored, err := h.client.ResearchGap.Query().
		Where(researchgap.GapAnalysisIDEQ(analysisID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored.ValidationReasoning)
	assert.Equal(t, "No related papers found", *stored.ValidationReasoning)
	assert.Equal(t, 0, stored.PapersAnalyzedCount)
	require.NotNil(t, stored.ValidationConfidence)
	assert.InDelta(t, 0.5, *stored.ValidationConfidence, 0.001)
}

func TestPipeline_InvalidGapDropped(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)

	h.llm.initialGaps = initialGaps("alpha", "beta")
	h.llm.validate = func(gap models.InitialGap) models.ValidationResult {
		if gap.Name == "beta" {
			return models.ValidationResult{IsValid: false, Confidence: 0.9, Reasoning: "already solved"}
		}
		return models.ValidationResult{IsValid: true, Confidence: 0.9, Reasoning: "still open"}
	}
	h.search.results = []models.PaperSearchResult{{Title: "Related", PDFURL: "https://arxiv.org/pdf/1"}}

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, resp.Status)
	assert.Equal(t, 2, resp.TotalGaps)
	assert.Equal(t, 1, resp.ValidGaps)
	require.Len(t, resp.Gaps, 1)
	assert.Equal(t, "alpha", resp.Gaps[0].Name)

	analysisID := uuid.MustParse(resp.GapAnalysisID)
	names, err := h.client.ResearchGap.Query().
		Where(researchgap.GapAnalysisIDEQ(analysisID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "alpha", names[0].Name)
}

func TestPipeline_ZeroConfidenceDefaults(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.seedPaper(t)

	h.llm.initialGaps = initialGaps("alpha")
	h.llm.validate = func(models.InitialGap) models.ValidationResult {
		return models.ValidationResult{IsValid: true, Confidence: 0, Reasoning: "confidence missing"}
	}
	h.search.results = []models.PaperSearchResult{{Title: "Related", PDFURL: "https://arxiv.org/pdf/1"}}

	resp := h.pipeline.Analyze(ctx, req)

	require.Equal(t, models.StatusCompleted, resp.Status)
	require.Len(t, resp.Gaps, 1)
	assert.InDelta(t, 0.8, resp.Gaps[0].ConfidenceScore, 0.001)
}
