package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedRe = regexp.MustCompile("(?is)```(?:json)?\\s*\\n?(.*?)\\n?```")
	// openFencedRe also matches a fence the model never closed.
	openFencedRe = regexp.MustCompile("(?is)```(?:json)?\\s*\\n?(.*?)(?:\\n?```|$)")
)

// parseJSON unmarshals a model reply into v, tolerating the ways models
// decorate their output: markdown code fences, surrounding prose, and
// unterminated fences. Candidate substrings are tried most specific
// first; the first one that decodes wins.
func parseJSON(raw string, v any) error {
	for _, candidate := range jsonCandidates(raw) {
		if !json.Valid([]byte(candidate)) {
			continue
		}
		if json.Unmarshal([]byte(candidate), v) == nil {
			return nil
		}
	}
	return fmt.Errorf("no parseable JSON in response: %.100q", raw)
}

// jsonCandidates lists the substrings of raw worth attempting to decode.
func jsonCandidates(raw string) []string {
	candidates := []string{raw}

	if m := fencedRe.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	} else if m := openFencedRe.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}

	if span := largestSpan(raw, '{', '}'); span != "" {
		candidates = append(candidates, span)
	}
	if span := largestSpan(raw, '[', ']'); span != "" {
		candidates = append(candidates, span)
	}
	return candidates
}

// largestSpan returns the longest balanced substring delimited by the
// opener and closer bytes, or "" when none exists.
func largestSpan(s string, opener, closer byte) string {
	var best string
	for start := 0; start < len(s); start++ {
		if s[start] != opener {
			continue
		}
		depth := 0
		for end := start; end < len(s); end++ {
			switch s[end] {
			case opener:
				depth++
			case closer:
				depth--
			}
			if depth == 0 {
				if span := s[start : end+1]; len(span) > len(best) {
					best = span
				}
				break
			}
		}
	}
	return best
}
