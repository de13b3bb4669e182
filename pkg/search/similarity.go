package search

import (
	"strings"
	"unicode"

	"github.com/scholarai/gapfinder/pkg/models"
)

// dedupeByTitle suppresses results whose title is near-identical to an
// earlier one; the first-seen result wins.
func dedupeByTitle(results []models.PaperSearchResult) []models.PaperSearchResult {
	unique := make([]models.PaperSearchResult, 0, len(results))
	for _, result := range results {
		duplicate := false
		for _, kept := range unique {
			if titleSimilarity(result.Title, kept.Title) > dedupThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, result)
		}
	}
	return unique
}

// titleSimilarity is the Jaccard similarity of the two titles'
// lowercased token sets. Tokens are trimmed of surrounding punctuation
// so a trailing period or comma does not defeat duplicate detection.
func titleSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(s)) {
		token = strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token != "" {
			set[token] = struct{}{}
		}
	}
	return set
}
