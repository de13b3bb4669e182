package llm

import (
	"fmt"
	"strings"

	"github.com/scholarai/gapfinder/pkg/models"
)

// Context size caps. The generation API accepts large inputs, but
// prompts are bounded so one pathological paper cannot blow the quota.
const (
	maxContextSections   = 10
	maxSectionParagraphs = 3
	maxSectionChars      = 1000
	maxCaptions          = 5
	maxValidationPapers  = 10
	maxFieldChars        = 500
)

// buildPaperContext renders the analyzed paper into the bounded text
// block fed to initial gap generation.
func buildPaperContext(paper models.PaperData, content models.ExtractedPaperContent) string {
	parts := []string{
		"Title: " + orNA(paper.Title),
		"Abstract: " + orNA(paper.AbstractText),
	}

	if len(content.Sections) > 0 {
		parts = append(parts, "\nKEY SECTIONS:")
		for _, section := range limit(content.Sections, maxContextSections) {
			if section.Title == "" {
				continue
			}
			parts = append(parts, "\n"+section.Title+":")
			if len(section.Paragraphs) > 0 {
				text := strings.Join(limit(section.Paragraphs, maxSectionParagraphs), " ")
				parts = append(parts, truncate(text, maxSectionChars))
			}
		}
	}

	if content.Conclusion != "" {
		parts = append(parts, "\nCONCLUSION:\n"+truncate(content.Conclusion, maxSectionChars))
	}

	if len(content.FigureCaptions) > 0 {
		parts = append(parts, "\nFIGURE CAPTIONS:")
		for _, caption := range limit(content.FigureCaptions, maxCaptions) {
			if caption != "" {
				parts = append(parts, "- "+caption)
			}
		}
	}
	if len(content.TableCaptions) > 0 {
		parts = append(parts, "\nTABLE CAPTIONS:")
		for _, caption := range limit(content.TableCaptions, maxCaptions) {
			if caption != "" {
				parts = append(parts, "- "+caption)
			}
		}
	}

	return strings.Join(parts, "\n")
}

// buildValidationContext renders related papers into the comparison
// block fed to gap validation, each field capped.
func buildValidationContext(papers []models.ExtractedContent) string {
	var parts []string
	for i, paper := range limit(papers, maxValidationPapers) {
		parts = append(parts, fmt.Sprintf("\nPAPER %d:", i+1))
		parts = append(parts, "Title: "+paper.Title)
		if paper.Abstract != "" {
			parts = append(parts, "Abstract: "+truncate(paper.Abstract, maxFieldChars))
		}
		if paper.Methods != "" {
			parts = append(parts, "Methods: "+truncate(paper.Methods, maxFieldChars))
		}
		if paper.Results != "" {
			parts = append(parts, "Results: "+truncate(paper.Results, maxFieldChars))
		}
		if paper.Conclusion != "" {
			parts = append(parts, "Conclusion: "+truncate(paper.Conclusion, maxFieldChars))
		}
	}
	return strings.Join(parts, "\n")
}

func limit[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
