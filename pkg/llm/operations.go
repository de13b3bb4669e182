package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/resilience"
)

// Retry tuning for the four operations. Validation and expansion wait a
// flat two seconds between attempts; a rate-limited exhaustion parks
// for a full minute so the next gap starts against a rested quota.
const (
	maxAttempts   = 3
	retryDelay    = 2 * time.Second
	rateLimitWait = time.Minute
)

// GenerateInitialGaps asks the model for 3-7 candidate research gaps in
// the paper. It is the only breaker-gated operation: with the breaker
// open it returns no gaps immediately, which the pipeline treats as a
// clean zero-gap completion. Exhausted retries likewise yield an empty
// slice rather than an error; only context cancellation is returned.
func (c *Client) GenerateInitialGaps(ctx context.Context, paper models.PaperData, content models.ExtractedPaperContent) ([]models.InitialGap, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.Warn("circuit breaker is open, skipping gap generation")
		return nil, nil
	}

	prompt := initialGapsPrompt(buildPaperContext(paper, content))
	backoff := resilience.ExponentialBackoff(time.Second, maxBackoff)
	rateLimitedBackoff := resilience.ExponentialBackoff(30*time.Second, maxBackoff)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		gaps, err := c.tryGenerateGaps(ctx, prompt)
		if err == nil {
			c.breaker.RecordSuccess()
			c.logger.Info("generated initial gaps", "count", len(gaps))
			return gaps, nil
		}

		c.breaker.RecordFailure()
		c.logger.Error("generating initial gaps failed",
			"attempt", attempt+1, "error", err)

		if attempt == maxAttempts-1 {
			break
		}
		schedule := backoff
		if isRateLimited(err) {
			c.logger.Warn("rate limit hit during gap generation", "error", err)
			schedule = rateLimitedBackoff
		}
		if err := c.sleep(ctx, schedule(attempt)); err != nil {
			return nil, err
		}
	}
	return []models.InitialGap{}, nil
}

func (c *Client) tryGenerateGaps(ctx context.Context, prompt string) ([]models.InitialGap, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var gaps []models.InitialGap
	if err := parseJSON(text, &gaps); err != nil {
		return nil, fmt.Errorf("parse gaps response: %w", err)
	}
	for _, gap := range gaps {
		if gap.Name == "" {
			return nil, errors.New("gap entry missing name")
		}
	}
	return gaps, nil
}

// GenerateSearchQuery asks the model for a 2-4 word academic search
// query matching the gap. It never fails: on any error the query is
// derived from the gap's own name and category.
func (c *Client) GenerateSearchQuery(ctx context.Context, gap models.InitialGap) string {
	query, err := c.tryGenerateQuery(ctx, gap)
	if err != nil {
		c.logger.Error("search query generation failed, using fallback",
			"gap", gap.Name, "error", err)
		return fallbackQuery(gap)
	}
	c.logger.Info("generated search query", "gap", gap.Name, "query", query)
	return query
}

func (c *Client) tryGenerateQuery(ctx context.Context, gap models.InitialGap) (string, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return "", err
	}
	text, err := c.generate(ctx, searchQueryPrompt(gap))
	if err != nil {
		return "", err
	}
	query := strings.Trim(strings.TrimSpace(text), `"`)
	if query == "" {
		return "", errors.New("model returned an empty query")
	}
	return query, nil
}

// fallbackQuery is the first four words of the lowercased gap name and
// category.
func fallbackQuery(gap models.InitialGap) string {
	words := strings.Fields(strings.ToLower(gap.Name + " " + gap.Category))
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}

// ValidateGap asks the model whether the gap survives comparison with
// the related papers. Errors never invalidate: once retries are
// exhausted the gap is assumed valid at low confidence.
func (c *Client) ValidateGap(ctx context.Context, gap models.InitialGap, papers []models.ExtractedContent) models.ValidationResult {
	prompt := validateGapPrompt(gap, buildValidationContext(papers))

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := c.tryValidateGap(ctx, prompt)
		if err == nil {
			c.logger.Info("validated gap",
				"gap", gap.Name, "is_valid", result.IsValid, "confidence", result.Confidence)
			return result
		}
		lastErr = err
		c.logger.Warn("gap validation attempt failed",
			"gap", gap.Name, "attempt", attempt+1, "error", err)
		if attempt < maxAttempts-1 {
			if err := c.sleep(ctx, retryDelay); err != nil {
				break
			}
		}
	}

	if isRateLimited(lastErr) {
		c.logger.Warn("rate limit hit during gap validation", "gap", gap.Name, "error", lastErr)
		_ = c.sleep(ctx, rateLimitWait)
		return models.ValidationResult{
			IsValid:    true,
			Confidence: 0.3,
			Reasoning:  "Rate limited - assuming valid with low confidence",
		}
	}
	c.logger.Error("gap validation failed", "gap", gap.Name, "error", lastErr)
	return models.ValidationResult{
		IsValid:    true,
		Confidence: 0.3,
		Reasoning:  "Could not validate due to error",
	}
}

func (c *Client) tryValidateGap(ctx context.Context, prompt string) (models.ValidationResult, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return models.ValidationResult{}, err
	}
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return models.ValidationResult{}, err
	}
	return decodeValidation(text)
}

// decodeValidation parses the model's judgment, requiring the core
// fields so a truncated or empty object is retried instead of being
// mistaken for an invalidation.
func decodeValidation(text string) (models.ValidationResult, error) {
	var raw struct {
		IsValid                *bool               `json:"is_valid"`
		Confidence             *float64            `json:"confidence"`
		Reasoning              *string             `json:"reasoning"`
		ShouldModify           *bool               `json:"should_modify"`
		ModificationSuggestion string              `json:"modification_suggestion"`
		SupportingPapers       []map[string]string `json:"supporting_papers"`
		ConflictingPapers      []map[string]string `json:"conflicting_papers"`
	}
	if err := parseJSON(text, &raw); err != nil {
		return models.ValidationResult{}, fmt.Errorf("parse validation response: %w", err)
	}
	if raw.IsValid == nil || raw.Confidence == nil || raw.Reasoning == nil || raw.ShouldModify == nil {
		return models.ValidationResult{}, errors.New("validation response missing required fields")
	}
	return models.ValidationResult{
		IsValid:                *raw.IsValid,
		Confidence:             *raw.Confidence,
		Reasoning:              *raw.Reasoning,
		ShouldModify:           *raw.ShouldModify,
		ModificationSuggestion: raw.ModificationSuggestion,
		SupportingPapers:       raw.SupportingPapers,
		ConflictingPapers:      raw.ConflictingPapers,
	}, nil
}

// ExpandGapDetails asks the model for the enrichment block of a
// validated gap. On exhausted retries it returns the degraded block:
// placeholder strings, unknown difficulty and timeline, no topics. The
// gap still ships either way.
func (c *Client) ExpandGapDetails(ctx context.Context, gap models.InitialGap, validation models.ValidationResult) map[string]any {
	prompt := expandGapPrompt(gap, validation)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		details, err := c.tryExpandGap(ctx, prompt)
		if err == nil {
			topics, _ := details["suggested_topics"].([]any)
			c.logger.Info("expanded gap details", "gap", gap.Name, "topics", len(topics))
			return details
		}
		lastErr = err
		c.logger.Warn("gap expansion attempt failed",
			"gap", gap.Name, "attempt", attempt+1, "error", err)
		if attempt < maxAttempts-1 {
			if err := c.sleep(ctx, retryDelay); err != nil {
				break
			}
		}
	}

	if isRateLimited(lastErr) {
		c.logger.Warn("rate limit hit during gap expansion", "gap", gap.Name, "error", lastErr)
		_ = c.sleep(ctx, rateLimitWait)
	} else {
		c.logger.Error("gap expansion failed", "gap", gap.Name, "error", lastErr)
	}
	return degradedDetails()
}

func (c *Client) tryExpandGap(ctx context.Context, prompt string) (map[string]any, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var details map[string]any
	if err := parseJSON(text, &details); err != nil {
		return nil, fmt.Errorf("parse expansion response: %w", err)
	}
	return details, nil
}

// degradedDetails is the enrichment block used when expansion cannot be
// produced.
func degradedDetails() map[string]any {
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
