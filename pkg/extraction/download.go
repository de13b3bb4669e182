package extraction

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// Some hosts refuse requests from unknown clients; a browser user agent
// gets past most of them.
const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var (
	arxivIDRe = regexp.MustCompile(`arxiv\.org/abs/(\d+\.\d+)`)
	pmcIDRe   = regexp.MustCompile(`pmc/articles/(PMC\d+)`)
)

// downloadPDF fetches the PDF through a chain of fallbacks: a plain
// GET, a retry with a browser user agent, then repository-specific
// alternate URLs derived from the original. Returns nil when every
// strategy fails.
func (c *Client) downloadPDF(ctx context.Context, pdfURL string) []byte {
	if pdf := c.tryDownload(ctx, pdfURL, ""); pdf != nil {
		return pdf
	}
	if pdf := c.tryDownload(ctx, pdfURL, browserUA); pdf != nil {
		return pdf
	}
	for _, alt := range alternativeURLs(pdfURL) {
		c.logger.Info("trying alternative URL", "url", alt)
		body, status, err := c.get(ctx, alt, "")
		if err == nil && status == http.StatusOK {
			c.logger.Info("downloaded from alternative URL", "url", alt, "bytes", len(body))
			return body
		}
	}
	c.logger.Warn("all download attempts failed", "url", pdfURL)
	return nil
}

// tryDownload performs one GET and keeps the body only when it is big
// enough to plausibly be a PDF.
func (c *Client) tryDownload(ctx context.Context, pdfURL, userAgent string) []byte {
	body, status, err := c.get(ctx, pdfURL, userAgent)
	if err != nil {
		c.logger.Warn("download attempt failed", "url", pdfURL, "error", err)
		return nil
	}
	if status != http.StatusOK {
		c.logger.Warn("download attempt rejected", "url", pdfURL, "status", status)
		return nil
	}
	if len(body) < minPDFBytes {
		c.logger.Warn("downloaded file too small",
			"url", pdfURL, "bytes", len(body))
		return nil
	}
	c.logger.Info("PDF downloaded", "url", pdfURL, "bytes", len(body))
	return body
}

func (c *Client) get(ctx context.Context, rawURL, userAgent string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// alternativeURLs derives known PDF mirror locations from a landing
// page URL: arXiv abstract pages map to the pdf and e-print endpoints,
// PubMed Central articles to the NCBI pdf path and the Europe PMC
// renderer.
func alternativeURLs(rawURL string) []string {
	if m := arxivIDRe.FindStringSubmatch(rawURL); m != nil {
		return []string{
			"https://arxiv.org/pdf/" + m[1] + ".pdf",
			"https://arxiv.org/e-print/" + m[1],
		}
	}
	if strings.Contains(rawURL, "ncbi.nlm.nih.gov") {
		if m := pmcIDRe.FindStringSubmatch(rawURL); m != nil {
			return []string{
				"https://www.ncbi.nlm.nih.gov/pmc/articles/" + m[1] + "/pdf/",
				"https://europepmc.org/articles/" + m[1] + "?pdf=render",
			}
		}
	}
	return nil
}
