// Package search finds academic papers related to a research gap. The
// backend is the arXiv query API; sparse queries degrade to shorter
// ones, near-identical titles collapse to the first hit, and every
// failure mode is absorbed into an empty result list.
package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/resilience"
)

const defaultBaseURL = "https://export.arxiv.org/api/query"

// arXiv asks automated clients to stay under a handful of requests per
// minute; the limiter enforces that across degradation retries too.
const (
	rateLimit      = 5
	rateWindow     = time.Minute
	maxAttempts    = 3
	retryDelay     = time.Second
	dedupThreshold = 0.8
)

// Config carries the settings for the search client.
type Config struct {
	// BaseURL overrides the public endpoint, primarily for tests.
	BaseURL string
	Timeout time.Duration
}

// Client queries the academic search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *resilience.RateLimiter
	retrier    *resilience.Retrier
	logger     *slog.Logger
}

// NewClient creates a search client from config.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limiter:    resilience.NewRateLimiter(rateLimit, rateWindow),
		retrier:    resilience.NewRetrier(maxAttempts, resilience.ConstantBackoff(retryDelay)),
		logger:     slog.Default().With("component", "search"),
	}
}

// SearchPapers finds up to maxResults papers matching query. A query
// that yields nothing degrades: first to its first two words, then to
// the first word alone. Aggregated hits are deduplicated by title
// similarity before the cap is applied. Failures never surface; the
// worst case is an empty list.
func (c *Client) SearchPapers(ctx context.Context, query string, maxResults int) []models.PaperSearchResult {
	c.logger.Info("searching papers", "query", query, "max_results", maxResults)

	results := c.searchArxiv(ctx, query, maxResults)

	if len(results) == 0 {
		words := strings.Fields(query)
		if len(words) > 2 {
			degraded := strings.Join(words[:2], " ")
			c.logger.Info("no results, degrading query", "query", degraded)
			results = append(results, c.searchArxiv(ctx, degraded, maxResults)...)
		}
		if len(results) == 0 && len(words) > 1 {
			c.logger.Info("no results, degrading to single word", "query", words[0])
			results = append(results, c.searchArxiv(ctx, words[0], maxResults)...)
		}
	}

	unique := dedupeByTitle(results)
	c.logger.Info("search finished",
		"query", query, "hits", len(results), "unique", len(unique))
	if len(unique) > maxResults {
		unique = unique[:maxResults]
	}
	return unique
}

// searchArxiv runs one query with retries, absorbing exhaustion into an
// empty result.
func (c *Client) searchArxiv(ctx context.Context, query string, limit int) []models.PaperSearchResult {
	var results []models.PaperSearchResult
	err := c.retrier.Do(ctx, func(ctx context.Context) error {
		if err := c.limiter.Acquire(ctx); err != nil {
			return err
		}
		found, err := c.queryOnce(ctx, query, limit)
		if err != nil {
			return err
		}
		results = found
		return nil
	})
	if err != nil {
		c.logger.Error("search failed", "query", query, "error", err)
		return nil
	}
	return results
}

func (c *Client) queryOnce(ctx context.Context, query string, limit int) ([]models.PaperSearchResult, error) {
	params := url.Values{}
	params.Set("search_query", "all:"+strings.ToLower(strings.TrimSpace(query)))
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(limit))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return parseFeed(body)
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Links     []atomLink   `xml:"link"`
	Authors   []atomAuthor `xml:"author"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

// parseFeed converts an Atom feed into search results. The entry's PDF
// link, when present, fills both the landing URL and the PDF URL; the
// publication date keeps only the date part of the timestamp.
func parseFeed(body []byte) ([]models.PaperSearchResult, error) {
	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	results := make([]models.PaperSearchResult, 0, len(feed.Entries))
	for i, entry := range feed.Entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = fmt.Sprintf("Paper %d", i+1)
		}
		result := models.PaperSearchResult{
			Title:    title,
			Abstract: strings.TrimSpace(entry.Summary),
			Venue:    "arXiv",
		}
		if len(entry.Published) >= 10 {
			result.PublicationDate = entry.Published[:10]
		}
		for _, link := range entry.Links {
			if link.Type == "application/pdf" {
				result.URL = link.Href
				result.PDFURL = link.Href
				break
			}
		}
		for _, author := range entry.Authors {
			if name := strings.TrimSpace(author.Name); name != "" {
				result.Authors = append(result.Authors, name)
			}
		}
		results = append(results, result)
	}
	return results, nil
}
