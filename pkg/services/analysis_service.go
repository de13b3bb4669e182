package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/researchgap"
	"github.com/scholarai/gapfinder/pkg/models"
)

// AnalysisService manages gap analysis records and their gaps
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// AnalysisCounts carries the terminal counters written at finalization.
type AnalysisCounts struct {
	Total    int
	Valid    int
	Invalid  int
	Modified int
}

// UpsertAnalysis is the idempotency gate: one row per correlation id.
// Re-delivery of the same message lands on the existing row, resetting it
// to PROCESSING with a fresh started_at and a cleared error message. Gaps
// from a previous run are dropped so the stored gaps always mirror the
// latest published response.
func (s *AnalysisService) UpsertAnalysis(ctx context.Context, req models.GapAnalysisRequest) (*ent.GapAnalysis, error) {
	if req.CorrelationID == "" {
		return nil, NewValidationError("correlationId", "required")
	}
	if req.RequestID == "" {
		return nil, NewValidationError("requestId", "required")
	}
	paperID, err := uuid.Parse(req.PaperID)
	if err != nil {
		return nil, NewValidationError("paperId", "must be a valid UUID")
	}
	extractionID, err := uuid.Parse(req.PaperExtractionID)
	if err != nil {
		return nil, NewValidationError("paperExtractionId", "must be a valid UUID")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	id, err := tx.GapAnalysis.Create().
		SetPaperID(paperID).
		SetPaperExtractionID(extractionID).
		SetCorrelationID(req.CorrelationID).
		SetRequestID(req.RequestID).
		SetStatus(gapanalysis.StatusPROCESSING).
		SetStartedAt(now).
		SetConfig(req.Config).
		OnConflictColumns(gapanalysis.FieldCorrelationID).
		Update(func(u *ent.GapAnalysisUpsert) {
			u.SetPaperID(paperID)
			u.SetPaperExtractionID(extractionID)
			u.SetRequestID(req.RequestID)
			u.SetStatus(gapanalysis.StatusPROCESSING)
			u.SetStartedAt(now)
			u.ClearErrorMessage()
			u.SetConfig(req.Config)
		}).
		ID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert analysis: %w", err)
	}

	if _, err := tx.ResearchGap.Delete().
		Where(researchgap.GapAnalysisIDEQ(id)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear stale gaps: %w", err)
	}

	analysis, err := tx.GapAnalysis.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upserted analysis: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit upsert: %w", err)
	}
	return analysis, nil
}

// Finalize writes the terminal state of an analysis in one statement.
// The error message is recorded only for failures.
func (s *AnalysisService) Finalize(ctx context.Context, analysisID uuid.UUID, counts AnalysisCounts, status gapanalysis.Status, errorMessage string) error {
	update := s.client.GapAnalysis.UpdateOneID(analysisID).
		SetStatus(status).
		SetTotalGapsIdentified(counts.Total).
		SetValidGapsCount(counts.Valid).
		SetInvalidGapsCount(counts.Invalid).
		SetModifiedGapsCount(counts.Modified).
		SetCompletedAt(time.Now())
	if status == gapanalysis.StatusFAILED {
		update.SetErrorMessage(errorMessage)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrAnalysisNotFound
		}
		return fmt.Errorf("failed to finalize analysis: %w", err)
	}
	return nil
}

// ResetForRetry returns a FAILED analysis to PENDING, clearing its error
// and timestamps. It does not re-enqueue anything; publishing a fresh
// request is the orchestrator's job.
func (s *AnalysisService) ResetForRetry(ctx context.Context, analysisID uuid.UUID) error {
	n, err := s.client.GapAnalysis.Update().
		Where(
			gapanalysis.IDEQ(analysisID),
			gapanalysis.StatusEQ(gapanalysis.StatusFAILED),
		).
		SetStatus(gapanalysis.StatusPENDING).
		ClearErrorMessage().
		ClearStartedAt().
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset analysis: %w", err)
	}
	if n == 0 {
		exists, err := s.client.GapAnalysis.Query().
			Where(gapanalysis.IDEQ(analysisID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check analysis: %w", err)
		}
		if !exists {
			return ErrAnalysisNotFound
		}
		return ErrNotRetryable
	}
	return nil
}

// AnalysisFilters narrow and page the analysis listing.
type AnalysisFilters struct {
	Status string
	Limit  int
	Offset int
}

// List returns a page of analyses (newest first) and the total count
// matching the filter.
func (s *AnalysisService) List(ctx context.Context, filters AnalysisFilters) ([]*ent.GapAnalysis, int, error) {
	query := s.client.GapAnalysis.Query()
	if filters.Status != "" {
		query = query.Where(gapanalysis.StatusEQ(gapanalysis.Status(filters.Status)))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	analyses, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(gapanalysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, total, nil
}

// Get returns one analysis with its gaps in emission order.
func (s *AnalysisService) Get(ctx context.Context, analysisID uuid.UUID) (*ent.GapAnalysis, error) {
	analysis, err := s.client.GapAnalysis.Query().
		Where(gapanalysis.IDEQ(analysisID)).
		WithGaps(func(q *ent.ResearchGapQuery) {
			q.Order(ent.Asc(researchgap.FieldOrderIndex))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

// GetByCorrelation returns the analysis registered under a correlation id.
func (s *AnalysisService) GetByCorrelation(ctx context.Context, correlationID string) (*ent.GapAnalysis, error) {
	analysis, err := s.client.GapAnalysis.Query().
		Where(gapanalysis.CorrelationIDEQ(correlationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis by correlation id: %w", err)
	}
	return analysis, nil
}

// GetGap returns one research gap with its topics and validation papers.
func (s *AnalysisService) GetGap(ctx context.Context, gapID uuid.UUID) (*ent.ResearchGap, error) {
	gap, err := s.client.ResearchGap.Query().
		Where(researchgap.IDEQ(gapID)).
		WithTopics().
		WithValidationPapers().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrGapNotFound
		}
		return nil, fmt.Errorf("failed to get gap: %w", err)
	}
	return gap, nil
}

// AnalysisStats summarizes processing activity for the stats endpoint.
type AnalysisStats struct {
	TotalAnalyses      int            `json:"total_analyses"`
	RecentAnalyses     int            `json:"recent_analyses"`
	PeriodDays         int            `json:"period_days"`
	StatusBreakdown    map[string]int `json:"status_breakdown"`
	TotalGapsFound     int            `json:"total_gaps_found"`
	TotalValidGaps     int            `json:"total_valid_gaps"`
	AvgGapsPerAnalysis float64        `json:"avg_gaps_per_analysis"`
}

// Stats computes overall counts, a status breakdown, and gap totals over
// completed analyses within the trailing window.
func (s *AnalysisService) Stats(ctx context.Context, days int) (*AnalysisStats, error) {
	if days <= 0 {
		days = 7
	}

	stats := &AnalysisStats{
		PeriodDays:      days,
		StatusBreakdown: make(map[string]int),
	}

	total, err := s.client.GapAnalysis.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}
	stats.TotalAnalyses = total

	since := time.Now().AddDate(0, 0, -days)
	recent, err := s.client.GapAnalysis.Query().
		Where(gapanalysis.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent analyses: %w", err)
	}
	stats.RecentAnalyses = recent

	for _, status := range []gapanalysis.Status{
		gapanalysis.StatusPENDING,
		gapanalysis.StatusPROCESSING,
		gapanalysis.StatusCOMPLETED,
		gapanalysis.StatusFAILED,
	} {
		n, err := s.client.GapAnalysis.Query().
			Where(gapanalysis.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s analyses: %w", status, err)
		}
		stats.StatusBreakdown[string(status)] = n
	}

	// SUM over zero rows is NULL, so only aggregate when completed
	// analyses exist.
	completed := stats.StatusBreakdown[string(gapanalysis.StatusCOMPLETED)]
	if completed > 0 {
		gapsFound, err := s.client.GapAnalysis.Query().
			Where(gapanalysis.StatusEQ(gapanalysis.StatusCOMPLETED)).
			Aggregate(ent.Sum(gapanalysis.FieldTotalGapsIdentified)).
			Int(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to sum identified gaps: %w", err)
		}
		validGaps, err := s.client.GapAnalysis.Query().
			Where(gapanalysis.StatusEQ(gapanalysis.StatusCOMPLETED)).
			Aggregate(ent.Sum(gapanalysis.FieldValidGapsCount)).
			Int(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to sum valid gaps: %w", err)
		}
		stats.TotalGapsFound = gapsFound
		stats.TotalValidGaps = validGaps
		stats.AvgGapsPerAnalysis = float64(gapsFound) / float64(completed)
	}

	return stats, nil
}

// GapRecord bundles everything persisted for one accepted gap.
type GapRecord struct {
	Detail           models.GapDetail
	SearchQuery      string
	PapersAnalyzed   int
	InitialReasoning string
	InitialEvidence  string
	Validation       models.ValidationResult
	Papers           []ValidationPaperRecord
}

// ValidationPaperRecord is one related paper consulted while validating
// a gap.
type ValidationPaperRecord struct {
	Title            string
	DOI              string
	URL              string
	PublicationDate  *time.Time
	ExtractionStatus string
	SupportsGap      bool
	ConflictsWithGap bool
}

// CreateGaps persists the accepted gaps of an analysis, each with its
// suggested topics and the papers consulted during validation, in
// emission order. The whole set is written in one transaction.
func (s *AnalysisService) CreateGaps(ctx context.Context, analysisID uuid.UUID, records []GapRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for i, rec := range records {
		detail := rec.Detail

		create := tx.ResearchGap.Create().
			SetGapAnalysisID(analysisID).
			SetGapID(detail.GapID).
			SetOrderIndex(i).
			SetName(detail.Name).
			SetDescription(detail.Description).
			SetValidationStatus(researchgap.ValidationStatusVALID).
			SetValidationConfidence(detail.ConfidenceScore).
			SetPapersAnalyzedCount(rec.PapersAnalyzed).
			SetValidatedAt(now)
		if detail.Category != "" {
			create.SetCategory(detail.Category)
		}
		if rec.SearchQuery != "" {
			create.SetValidationQuery(rec.SearchQuery)
		}
		if rec.InitialReasoning != "" {
			create.SetInitialReasoning(rec.InitialReasoning)
		}
		if rec.InitialEvidence != "" {
			create.SetInitialEvidence(rec.InitialEvidence)
		}
		if rec.Validation.Reasoning != "" {
			create.SetValidationReasoning(rec.Validation.Reasoning)
		}
		if detail.PotentialImpact != "" {
			create.SetPotentialImpact(detail.PotentialImpact)
		}
		if detail.ResearchHints != "" {
			create.SetResearchHints(detail.ResearchHints)
		}
		if detail.ImplementationSuggestions != "" {
			create.SetImplementationSuggestions(detail.ImplementationSuggestions)
		}
		if detail.RisksAndChallenges != "" {
			create.SetRisksAndChallenges(detail.RisksAndChallenges)
		}
		if detail.RequiredResources != "" {
			create.SetRequiredResources(detail.RequiredResources)
		}
		if detail.EstimatedDifficulty != "" {
			create.SetEstimatedDifficulty(detail.EstimatedDifficulty)
		}
		if detail.EstimatedTimeline != "" {
			create.SetEstimatedTimeline(detail.EstimatedTimeline)
		}
		if len(detail.EvidenceAnchors) > 0 {
			create.SetEvidenceAnchors(detail.EvidenceAnchors)
		}
		if len(rec.Validation.SupportingPapers) > 0 {
			create.SetSupportingPapers(rec.Validation.SupportingPapers)
		}
		if len(rec.Validation.ConflictingPapers) > 0 {
			create.SetConflictingPapers(rec.Validation.ConflictingPapers)
		}
		if len(detail.SuggestedTopics) > 0 {
			maps, err := topicMaps(detail.SuggestedTopics)
			if err != nil {
				return fmt.Errorf("failed to encode suggested topics: %w", err)
			}
			create.SetSuggestedTopics(maps)
		}

		gap, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create gap %q: %w", detail.Name, err)
		}

		for _, topic := range detail.SuggestedTopics {
			topicCreate := tx.GapTopic.Create().
				SetResearchGapID(gap.ID).
				SetTitle(topic.Title).
				SetDescription(topic.Description).
				SetResearchQuestions(topic.ResearchQuestions).
				SetRelevanceScore(topic.RelevanceScore)
			if topic.MethodologySuggestions != "" {
				topicCreate.SetMethodologySuggestions(topic.MethodologySuggestions)
			}
			if topic.ExpectedOutcomes != "" {
				topicCreate.SetExpectedOutcomes(topic.ExpectedOutcomes)
			}
			if err := topicCreate.Exec(ctx); err != nil {
				return fmt.Errorf("failed to create topic for gap %q: %w", detail.Name, err)
			}
		}

		for _, paper := range rec.Papers {
			paperCreate := tx.GapValidationPaper.Create().
				SetResearchGapID(gap.ID).
				SetTitle(paper.Title).
				SetSupportsGap(paper.SupportsGap).
				SetConflictsWithGap(paper.ConflictsWithGap)
			if paper.DOI != "" {
				paperCreate.SetDoi(paper.DOI)
			}
			if paper.URL != "" {
				paperCreate.SetURL(paper.URL)
			}
			if paper.PublicationDate != nil {
				paperCreate.SetPublicationDate(*paper.PublicationDate)
			}
			if paper.ExtractionStatus != "" {
				paperCreate.SetExtractionStatus(paper.ExtractionStatus)
			}
			if err := paperCreate.Exec(ctx); err != nil {
				return fmt.Errorf("failed to record validation paper for gap %q: %w", detail.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit gaps: %w", err)
	}
	return nil
}

// topicMaps converts topics into the JSON shape stored on the gap row.
func topicMaps(topics []models.ResearchTopic) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(topics)
	if err != nil {
		return nil, err
	}
	var maps []map[string]interface{}
	if err := json.Unmarshal(raw, &maps); err != nil {
		return nil, err
	}
	return maps, nil
}
