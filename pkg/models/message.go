// Package models defines the wire-level messages exchanged over the bus
// and the intermediate structures passed between pipeline stages.
package models

import "time"

// Response statuses reported back to the orchestrator.
const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// GapAnalysisRequest is the inbound bus message asking for a paper's
// research gaps to be analyzed.
type GapAnalysisRequest struct {
	PaperID           string         `json:"paperId"`
	PaperExtractionID string         `json:"paperExtractionId"`
	CorrelationID     string         `json:"correlationId"`
	RequestID         string         `json:"requestId"`
	Config            map[string]any `json:"config,omitempty"`
}

// GapAnalysisResponse is the outbound bus message. Exactly one response
// is published per delivery, COMPLETED or FAILED.
type GapAnalysisResponse struct {
	RequestID     string      `json:"requestId"`
	CorrelationID string      `json:"correlationId"`
	Status        string      `json:"status"`
	Message       string      `json:"message"`
	GapAnalysisID string      `json:"gapAnalysisId,omitempty"`
	TotalGaps     int         `json:"totalGaps"`
	ValidGaps     int         `json:"validGaps"`
	Gaps          []GapDetail `json:"gaps"`
	Error         string      `json:"error,omitempty"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty"`
}

// GapDetail is a validated, enriched research gap as published to the
// orchestrator and persisted to the store.
type GapDetail struct {
	GapID            string  `json:"gapId"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	ValidationStatus string  `json:"validationStatus"`
	ConfidenceScore  float64 `json:"confidenceScore"`

	// Enrichment produced by gap expansion.
	PotentialImpact           string `json:"potentialImpact,omitempty"`
	ResearchHints             string `json:"researchHints,omitempty"`
	ImplementationSuggestions string `json:"implementationSuggestions,omitempty"`
	RisksAndChallenges        string `json:"risksAndChallenges,omitempty"`
	RequiredResources         string `json:"requiredResources,omitempty"`
	EstimatedDifficulty       string `json:"estimatedDifficulty,omitempty"`
	EstimatedTimeline         string `json:"estimatedTimeline,omitempty"`

	EvidenceAnchors        []map[string]string `json:"evidenceAnchors"`
	SupportingPapersCount  int                 `json:"supportingPapersCount"`
	ConflictingPapersCount int                 `json:"conflictingPapersCount"`

	SuggestedTopics []ResearchTopic `json:"suggestedTopics"`
}

// ResearchTopic is a follow-up research direction suggested for a gap.
// Topic fields travel in snake_case, matching the expansion output.
type ResearchTopic struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	ResearchQuestions      []string `json:"research_questions"`
	MethodologySuggestions string   `json:"methodology_suggestions,omitempty"`
	ExpectedOutcomes       string   `json:"expected_outcomes,omitempty"`
	RelevanceScore         float64  `json:"relevance_score"`
}
