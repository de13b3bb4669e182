// Package extraction turns the PDFs of related papers into structured
// text through a GROBID service. Downloads fall back through friendlier
// request shapes and repository-specific mirrors; extractor calls are
// retried on 503 and transport errors and bounded by a semaphore so the
// PDF service is never overwhelmed.
package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/resilience"
)

const (
	maxAttempts   = 3
	maxConcurrent = 2
	batchSize     = 3
	batchPause    = 3 * time.Second

	// Anything under a kilobyte is an error page, not a paper.
	minPDFBytes = 1000
)

// Config carries the settings for the extraction client.
type Config struct {
	GrobidURL string
	Timeout   time.Duration
}

// Client talks to the GROBID service.
type Client struct {
	httpClient *http.Client
	grobidURL  string
	sem        *semaphore.Weighted
	logger     *slog.Logger

	// sleep pauses between retries and batches; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates an extraction client from config.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		grobidURL:  strings.TrimRight(cfg.GrobidURL, "/"),
		sem:        semaphore.NewWeighted(maxConcurrent),
		logger:     slog.Default().With("component", "extraction"),
		sleep:      resilience.Sleep,
	}
}

// ExtractFromURL downloads the PDF and runs it through the extractor.
// It never returns an error: every failure comes back as an
// ExtractedContent with ExtractionSuccess false and the reason in Error.
func (c *Client) ExtractFromURL(ctx context.Context, pdfURL string) models.ExtractedContent {
	pdf := c.downloadPDF(ctx, pdfURL)
	if len(pdf) == 0 {
		return failedExtraction("Failed to download PDF")
	}
	return c.ExtractFromBytes(ctx, pdf)
}

// ExtractFromBytes runs raw PDF bytes through the extractor, holding a
// semaphore slot for the duration of the call.
func (c *Client) ExtractFromBytes(ctx context.Context, pdf []byte) models.ExtractedContent {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return failedExtraction(err.Error())
	}
	defer c.sem.Release(1)
	return c.extractWithRetry(ctx, pdf)
}

func (c *Client) extractWithRetry(ctx context.Context, pdf []byte) models.ExtractedContent {
	if len(pdf) < minPDFBytes {
		c.logger.Warn("PDF too small, skipping extraction", "bytes", len(pdf))
		return failedExtraction(fmt.Sprintf(
			"PDF too small (%d bytes) - likely invalid or error page", len(pdf)))
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		status, body, err := c.processDocument(ctx, pdf)
		if err == nil {
			switch status {
			case http.StatusOK:
				return parseTEI(body)
			case http.StatusInternalServerError:
				return failedExtraction("GROBID internal server error - PDF may be corrupted or invalid")
			case http.StatusServiceUnavailable:
				c.logger.Warn("extractor unavailable (503)", "attempt", attempt+1)
			default:
				return failedExtraction(fmt.Sprintf("GROBID error: %d", status))
			}
		} else {
			c.logger.Error("extractor call failed", "attempt", attempt+1, "error", err)
		}

		if attempt == maxAttempts-1 {
			break
		}
		wait := transportBackoff(attempt)
		if err == nil {
			wait = unavailableBackoff(attempt)
		}
		if c.sleep(ctx, wait) != nil {
			break
		}
	}
	return failedExtraction("GROBID extraction failed after all retry attempts")
}

// unavailableBackoff is the 503 schedule: 5s, 10s, 20s per attempt.
func unavailableBackoff(attempt int) time.Duration {
	return time.Duration(5<<uint(attempt)) * time.Second
}

// transportBackoff covers connection-level failures: 2s, 4s.
func transportBackoff(attempt int) time.Duration {
	return time.Duration(2<<uint(attempt)) * time.Second
}

// processDocument posts the PDF to processFulltextDocument and returns
// the status code with the raw response body.
func (c *Client) processDocument(ctx context.Context, pdf []byte) (int, []byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="input"; filename="document.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return 0, nil, fmt.Errorf("create form part: %w", err)
	}
	if _, err := part.Write(pdf); err != nil {
		return 0, nil, fmt.Errorf("write form part: %w", err)
	}
	fields := [][2]string{
		{"consolidateHeader", "1"},
		{"consolidateCitations", "0"},
		{"includeRawCitations", "0"},
		{"includeRawAffiliations", "0"},
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return 0, nil, fmt.Errorf("write form field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return 0, nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.grobidURL+"/api/processFulltextDocument", &buf)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("call extractor: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// Probe checks the extractor's liveness endpoint.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.grobidURL+"/api/isalive", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("extractor unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("extractor probe returned HTTP %d", resp.StatusCode)
	}
	return nil
}

func failedExtraction(reason string) models.ExtractedContent {
	return models.ExtractedContent{Error: reason}
}
