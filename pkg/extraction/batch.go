package extraction

import (
	"context"
	"sync"

	"github.com/scholarai/gapfinder/pkg/models"
)

// ExtractBatch pulls structured text for every search hit, preserving
// input order. Papers are processed in batches of three with a pause
// between batches; within a batch extractions run concurrently, bounded
// by the client semaphore. A paper without a PDF URL succeeds with
// metadata only.
func (c *Client) ExtractBatch(ctx context.Context, papers []models.PaperSearchResult) []models.ExtractedContent {
	c.logger.Info("starting batch extraction", "papers", len(papers))
	contents := make([]models.ExtractedContent, len(papers))
	successes := 0

	for start := 0; start < len(papers); start += batchSize {
		end := min(start+batchSize, len(papers))
		c.logger.Info("processing batch", "from", start+1, "to", end)

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			paper := papers[i]
			if paper.PDFURL == "" {
				c.logger.Info("no PDF available, using metadata only", "title", paper.Title)
				contents[i] = metadataContent(paper)
				continue
			}
			wg.Add(1)
			go func(i int, pdfURL string) {
				defer wg.Done()
				contents[i] = c.ExtractFromURL(ctx, pdfURL)
			}(i, paper.PDFURL)
		}
		wg.Wait()

		for i := start; i < end; i++ {
			if contents[i].ExtractionSuccess {
				successes++
			} else {
				c.logger.Warn("extraction failed",
					"title", papers[i].Title, "error", contents[i].Error)
			}
		}

		if end < len(papers) {
			if c.sleep(ctx, batchPause) != nil {
				break
			}
		}
	}

	c.logger.Info("batch extraction completed",
		"successful", successes, "papers", len(papers))
	return contents
}

// metadataContent builds a successful extraction from search metadata
// alone, the abstract standing in as the only section.
func metadataContent(paper models.PaperSearchResult) models.ExtractedContent {
	content := models.ExtractedContent{
		Title:             paper.Title,
		Abstract:          paper.Abstract,
		ExtractionSuccess: true,
	}
	if paper.Abstract != "" {
		content.Sections = []models.ContentSection{{Title: "Abstract", Content: paper.Abstract}}
	}
	return content
}
