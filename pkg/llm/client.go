// Package llm implements the text-generation client used for gap
// identification, validation and enrichment. It speaks the Gemini
// generateContent REST protocol and guards every call with a shared
// rate limiter and circuit breaker.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scholarai/gapfinder/pkg/resilience"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Breaker and limiter tuning. The limiter is deliberately conservative:
// free-tier quotas are per-minute and shared across all four operations.
const (
	breakerThreshold = 3
	breakerCooldown  = 300 * time.Second
	rateWindow       = time.Minute
	maxBackoff       = 60 * time.Second
)

// Config carries the settings needed to reach the generation API.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the public endpoint, primarily for tests.
	BaseURL string
	// RateLimit is the allowed requests per minute.
	RateLimit int
}

// Client calls the text-generation API. All operations serialize
// through one rate limiter; gap generation is additionally gated by a
// circuit breaker so a dead upstream degrades to "no gaps" instead of
// hammering the endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	limiter    *resilience.RateLimiter
	breaker    *resilience.CircuitBreaker
	logger     *slog.Logger

	// sleep pauses between retry attempts; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a generation client from config.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = 2
	}
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		limiter:    resilience.NewRateLimiter(rateLimit, rateWindow),
		breaker:    resilience.NewCircuitBreaker(breakerThreshold, breakerCooldown),
		logger:     slog.Default().With("component", "llm"),
		sleep:      resilience.Sleep,
	}
}

// APIError is a non-2xx reply from the generation endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generation API returned HTTP %d: %s", e.StatusCode, e.Body)
}

type generateRequest struct {
	Contents []promptContent `json:"contents"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type promptPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generation API returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// isRateLimited reports whether err looks like a quota or rate-limit
// rejection from the generation API.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted")
}

// Probe checks that the generation endpoint is reachable. Auth errors
// count as reachable: they prove the service answered.
func (c *Client) Probe(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/v1beta/models?key=%s", c.baseURL, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("generation API unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusUnauthorized, http.StatusForbidden:
		return nil
	default:
		return fmt.Errorf("generation API probe returned HTTP %d", resp.StatusCode)
	}
}
