package api

import (
	"time"

	"github.com/scholarai/gapfinder/pkg/models"
)

// AnalysisList is returned by GET /api/v1/gap-analyses.
type AnalysisList struct {
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	Analyses []AnalysisSummary `json:"analyses"`
}

// AnalysisSummary is one row of the analysis listing.
type AnalysisSummary struct {
	ID          string     `json:"id"`
	PaperID     string     `json:"paper_id"`
	Status      string     `json:"status"`
	TotalGaps   int        `json:"total_gaps"`
	ValidGaps   int        `json:"valid_gaps"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// AnalysisDetail is returned by GET /api/v1/gap-analyses/:id.
type AnalysisDetail struct {
	AnalysisSummary
	Gaps []GapSummary `json:"gaps"`
}

// GapSummary is the abbreviated per-gap row inside an analysis detail.
type GapSummary struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	ValidationStatus string   `json:"validation_status"`
	Confidence       *float64 `json:"confidence"`
}

// GapResponse is the full gap detail returned by GET /api/v1/gaps/:id.
type GapResponse struct {
	ID                        string                 `json:"id"`
	GapID                     string                 `json:"gap_id"`
	Name                      string                 `json:"name"`
	Description               string                 `json:"description"`
	Category                  string                 `json:"category"`
	ValidationStatus          string                 `json:"validation_status"`
	Confidence                *float64               `json:"confidence"`
	PotentialImpact           *string                `json:"potential_impact"`
	ResearchHints             *string                `json:"research_hints"`
	ImplementationSuggestions *string                `json:"implementation_suggestions"`
	RisksAndChallenges        *string                `json:"risks_and_challenges"`
	RequiredResources         *string                `json:"required_resources"`
	EstimatedDifficulty       *string                `json:"estimated_difficulty"`
	EstimatedTimeline         *string                `json:"estimated_timeline"`
	EvidenceAnchors           []map[string]string    `json:"evidence_anchors"`
	SuggestedTopics           []models.ResearchTopic `json:"suggested_topics"`
	PapersAnalyzed            int                    `json:"papers_analyzed"`
	ValidationPapers          []ValidationPaper      `json:"validation_papers"`
	CreatedAt                 time.Time              `json:"created_at"`
	ValidatedAt               *time.Time             `json:"validated_at"`
}

// ValidationPaper is one related paper consulted while validating a gap.
type ValidationPaper struct {
	Title            string     `json:"title"`
	DOI              *string    `json:"doi"`
	URL              *string    `json:"url"`
	PublicationDate  *time.Time `json:"publication_date"`
	ExtractionStatus *string    `json:"extraction_status"`
	SupportsGap      bool       `json:"supports_gap"`
	ConflictsWithGap bool       `json:"conflicts_with_gap"`
}

// RetryResponse is returned by POST /api/v1/gap-analyses/:id/retry.
type RetryResponse struct {
	Message    string `json:"message"`
	AnalysisID string `json:"analysis_id"`
}

// HealthCheck is one dependency's verdict in the detailed health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
	Model   string `json:"model,omitempty"`
}

// DetailedHealthResponse is returned by GET /api/v1/health/detailed.
type DetailedHealthResponse struct {
	Status    string                 `json:"status"`
	Service   string                 `json:"service"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}
