// Package pipeline runs the gap analysis for one bus request: candidate
// gaps from the model, literature search and extraction per gap,
// validation, enrichment and persistence. It owns the response contract;
// every request yields exactly one well-formed response.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/pkg/llm"
	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/services"
)

// LLM is the model surface the pipeline drives.
type LLM interface {
	GenerateInitialGaps(ctx context.Context, paper models.PaperData, content models.ExtractedPaperContent) ([]models.InitialGap, error)
	GenerateSearchQuery(ctx context.Context, gap models.InitialGap) string
	ValidateGap(ctx context.Context, gap models.InitialGap, papers []models.ExtractedContent) models.ValidationResult
	ExpandGapDetails(ctx context.Context, gap models.InitialGap, validation models.ValidationResult) map[string]any
}

// Searcher finds related literature for a gap.
type Searcher interface {
	SearchPapers(ctx context.Context, query string, maxResults int) []models.PaperSearchResult
}

// Extractor pulls structured text from related papers.
type Extractor interface {
	ExtractBatch(ctx context.Context, papers []models.PaperSearchResult) []models.ExtractedContent
}

// Pipeline orchestrates one analysis end to end.
type Pipeline struct {
	analyses         *services.AnalysisService
	papers           *services.PaperService
	model            LLM
	search           Searcher
	extractor        Extractor
	validationPapers int
	logger           *slog.Logger
}

// New creates a Pipeline. validationPapers bounds the literature fetched
// per gap; zero or negative falls back to 5.
func New(analyses *services.AnalysisService, papers *services.PaperService, model LLM, search Searcher, extractor Extractor, validationPapers int) *Pipeline {
	if validationPapers <= 0 {
		validationPapers = 5
	}
	return &Pipeline{
		analyses:         analyses,
		papers:           papers,
		model:            model,
		search:           search,
		extractor:        extractor,
		validationPapers: validationPapers,
		logger:           slog.Default().With("component", "pipeline"),
	}
}

// Analyze runs the full pipeline for one request. It never returns an
// error: anything that stops the analysis is reported through a FAILED
// response, with the row marked FAILED when one exists.
func (p *Pipeline) Analyze(ctx context.Context, req models.GapAnalysisRequest) *models.GapAnalysisResponse {
	log := p.logger.With("correlation_id", req.CorrelationID, "paper_id", req.PaperID)
	log.Info("starting gap analysis", "request_id", req.RequestID)

	// 1. Register the analysis. The correlation id upsert makes
	//    redelivery land on the existing row instead of forking a second
	//    analysis.
	analysis, err := p.analyses.UpsertAnalysis(ctx, req)
	if err != nil {
		log.Error("failed to register analysis", "error", err)
		return p.failureResponse(req, nil, err, log)
	}

	response, err := p.run(ctx, req, analysis, log)
	if err != nil {
		log.Error("gap analysis failed", "analysis_id", analysis.ID, "error", err)
		return p.failureResponse(req, analysis, err, log)
	}
	return response
}

func (p *Pipeline) run(ctx context.Context, req models.GapAnalysisRequest, analysis *ent.GapAnalysis, log *slog.Logger) (*models.GapAnalysisResponse, error) {
	// 2. Load the paper and whatever full text extraction produced.
	paper, content, err := p.papers.LoadPaper(ctx, analysis.PaperID, analysis.PaperExtractionID)
	if err != nil {
		return nil, err
	}
	log.Info("loaded paper", "title", paper.Title, "sections", len(content.Sections))

	// 3. First model pass: candidate gaps. An empty list is a clean
	//    zero-gap completion, not a failure.
	initialGaps, err := p.model.GenerateInitialGaps(ctx, *paper, *content)
	if err != nil {
		return nil, err
	}
	if len(initialGaps) == 0 {
		if err := p.analyses.Finalize(ctx, analysis.ID, services.AnalysisCounts{}, gapanalysis.StatusCOMPLETED, ""); err != nil {
			return nil, err
		}
		log.Info("no research gaps identified")
		return &models.GapAnalysisResponse{
			RequestID:     req.RequestID,
			CorrelationID: req.CorrelationID,
			Status:        models.StatusCompleted,
			Message:       "Analysis completed - no research gaps identified",
			GapAnalysisID: analysis.ID.String(),
			Gaps:          []models.GapDetail{},
		}, nil
	}
	log.Info("generated initial gaps", "count", len(initialGaps))

	// 4. Process gaps one at a time. Sequential on purpose: the model
	//    quota is the bottleneck and a single gap in flight keeps the
	//    rate limiter honest. One bad gap never takes the analysis down.
	records := make([]services.GapRecord, 0, len(initialGaps))
	for i, gap := range initialGaps {
		record, ok := p.processGap(ctx, analysis.ID, i, gap, log)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	// 5. Persist the accepted gaps and write the terminal counters.
	if err := p.analyses.CreateGaps(ctx, analysis.ID, records); err != nil {
		return nil, err
	}
	counts := services.AnalysisCounts{
		Total:   len(initialGaps),
		Valid:   len(records),
		Invalid: len(initialGaps) - len(records),
	}
	if err := p.analyses.Finalize(ctx, analysis.ID, counts, gapanalysis.StatusCOMPLETED, ""); err != nil {
		return nil, err
	}

	// 6. Echo the finalized row back to the orchestrator.
	finalized, err := p.analyses.GetByCorrelation(ctx, req.CorrelationID)
	if err != nil {
		return nil, err
	}
	gaps := make([]models.GapDetail, 0, len(records))
	for _, rec := range records {
		gaps = append(gaps, rec.Detail)
	}
	log.Info("gap analysis complete", "total", counts.Total, "valid", counts.Valid)
	return &models.GapAnalysisResponse{
		RequestID:     req.RequestID,
		CorrelationID: req.CorrelationID,
		Status:        models.StatusCompleted,
		Message:       fmt.Sprintf("Successfully identified %d valid research gaps", finalized.ValidGapsCount),
		GapAnalysisID: finalized.ID.String(),
		TotalGaps:     finalized.TotalGapsIdentified,
		ValidGaps:     finalized.ValidGapsCount,
		Gaps:          gaps,
		CompletedAt:   finalized.CompletedAt,
	}, nil
}

// processGap validates and enriches one candidate. ok=false drops the
// gap: the literature closed it, or processing blew up and the panic was
// contained here so the remaining gaps still run.
func (p *Pipeline) processGap(ctx context.Context, analysisID uuid.UUID, index int, gap models.InitialGap, log *slog.Logger) (record services.GapRecord, ok bool) {
	log = log.With("gap", gap.Name, "index", index)
	defer func() {
		if r := recover(); r != nil {
			log.Error("gap processing panicked, dropping gap", "panic", r)
			record, ok = services.GapRecord{}, false
		}
	}()

	// 4a. Literature search.
	query := p.model.GenerateSearchQuery(ctx, gap)
	papers := p.search.SearchPapers(ctx, query, p.validationPapers)

	// 4b. Judge the gap against the papers' text. With nothing to
	//     compare against the gap stands at half confidence.
	var extracted []models.ExtractedContent
	var validation models.ValidationResult
	if len(papers) == 0 {
		log.Info("no related papers found, assuming gap is valid")
		validation = models.ValidationResult{
			IsValid:    true,
			Confidence: 0.5,
			Reasoning:  "No related papers found",
		}
	} else {
		extracted = p.extractor.ExtractBatch(ctx, papers)
		validation = p.model.ValidateGap(ctx, gap, extracted)
	}
	if !validation.IsValid {
		log.Info("gap closed by related literature",
			"confidence", validation.Confidence, "reasoning", validation.Reasoning)
		return services.GapRecord{}, false
	}

	// 4c. Enrich the surviving gap. Expansion degrades to placeholders
	//     rather than failing, so the gap ships either way.
	details := p.model.ExpandGapDetails(ctx, gap, validation)

	return services.GapRecord{
		Detail:           buildDetail(analysisID, index, gap, validation, details),
		SearchQuery:      query,
		PapersAnalyzed:   len(papers),
		InitialReasoning: gap.Reasoning,
		InitialEvidence:  gap.Evidence,
		Validation:       validation,
		Papers:           paperRecords(papers, extracted, validation),
	}, true
}

// failureResponse marks the analysis FAILED (when a row exists) and
// builds the FAILED response. The row update runs on a fresh context:
// the request context may already be dead, and a terminal write should
// survive that.
func (p *Pipeline) failureResponse(req models.GapAnalysisRequest, analysis *ent.GapAnalysis, cause error, log *slog.Logger) *models.GapAnalysisResponse {
	if analysis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := p.analyses.Finalize(ctx, analysis.ID, services.AnalysisCounts{}, gapanalysis.StatusFAILED, cause.Error()); err != nil {
			log.Error("failed to mark analysis as failed", "error", err)
		}
	}
	return &models.GapAnalysisResponse{
		RequestID:     req.RequestID,
		CorrelationID: req.CorrelationID,
		Status:        models.StatusFailed,
		Message:       fmt.Sprintf("Analysis failed: %s", cause.Error()),
		Gaps:          []models.GapDetail{},
		Error:         cause.Error(),
	}
}

// buildDetail assembles the published gap from the expansion block. A
// zero validation confidence (absent in the model output) is reported
// as the 0.8 default.
func buildDetail(analysisID uuid.UUID, index int, gap models.InitialGap, validation models.ValidationResult, details map[string]any) models.GapDetail {
	confidence := validation.Confidence
	if confidence == 0 {
		confidence = 0.8
	}
	topics := llm.NormalizeTopics(details["suggested_topics"])
	if topics == nil {
		topics = []models.ResearchTopic{}
	}
	return models.GapDetail{
		GapID:            fmt.Sprintf("%s-%d-%s", analysisID, index, uuid.New()),
		Name:             gap.Name,
		Description:      gap.Description,
		Category:         gap.Category,
		ValidationStatus: "VALID",
		ConfidenceScore:  confidence,

		PotentialImpact:           detailString(details, "potential_impact"),
		ResearchHints:             detailString(details, "research_hints"),
		ImplementationSuggestions: detailString(details, "implementation_suggestions"),
		RisksAndChallenges:        detailString(details, "risks_and_challenges"),
		RequiredResources:         detailString(details, "required_resources"),
		EstimatedDifficulty:       detailString(details, "estimated_difficulty"),
		EstimatedTimeline:         detailString(details, "estimated_timeline"),

		EvidenceAnchors:        evidenceAnchors(details["evidence_anchors"]),
		SupportingPapersCount:  0,
		ConflictingPapersCount: 0,
		SuggestedTopics:        topics,
	}
}

func detailString(details map[string]any, key string) string {
	s, _ := details[key].(string)
	return s
}

// evidenceAnchors coerces the loosely-typed anchor list from the
// expansion block, keeping only string-valued fields.
func evidenceAnchors(v any) []map[string]string {
	entries, ok := v.([]any)
	if !ok {
		return []map[string]string{}
	}
	anchors := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		anchor := make(map[string]string, len(fields))
		for key, val := range fields {
			if s, ok := val.(string); ok {
				anchor[key] = s
			}
		}
		if len(anchor) > 0 {
			anchors = append(anchors, anchor)
		}
	}
	return anchors
}

// paperRecords builds the durable record of the literature consulted for
// one gap. Extraction status mirrors how the batch treated the paper;
// support and conflict flags come from the validation verdict, matched
// by title.
func paperRecords(papers []models.PaperSearchResult, extracted []models.ExtractedContent, validation models.ValidationResult) []services.ValidationPaperRecord {
	records := make([]services.ValidationPaperRecord, 0, len(papers))
	for i, paper := range papers {
		record := services.ValidationPaperRecord{
			Title:            paper.Title,
			DOI:              paper.DOI,
			URL:              paper.URL,
			PublicationDate:  publicationDate(paper.PublicationDate),
			ExtractionStatus: extractionStatus(paper, extracted, i),
			SupportsGap:      titleListed(validation.SupportingPapers, paper.Title),
			ConflictsWithGap: titleListed(validation.ConflictingPapers, paper.Title),
		}
		records = append(records, record)
	}
	return records
}

func extractionStatus(paper models.PaperSearchResult, extracted []models.ExtractedContent, i int) string {
	if paper.PDFURL == "" {
		return "metadata_only"
	}
	if i < len(extracted) && extracted[i].ExtractionSuccess {
		return "success"
	}
	return "failed"
}

func titleListed(entries []map[string]string, title string) bool {
	for _, entry := range entries {
		if strings.EqualFold(entry["title"], title) {
			return true
		}
	}
	return false
}

// publicationDate parses the YYYY-MM-DD date the search client emits.
func publicationDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
