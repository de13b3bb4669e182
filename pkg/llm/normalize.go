package llm

import (
	"strings"

	"github.com/scholarai/gapfinder/pkg/models"
)

// NormalizeTopics converts the loosely-typed suggested_topics entries
// of an expansion response into ResearchTopic values. Model output
// drifts between shapes: methodology suggestions and expected outcomes
// arrive as either a string or a list, research questions as either a
// list or a single question. Entries that are not objects are dropped.
func NormalizeTopics(raw any) []models.ResearchTopic {
	entries, ok := raw.([]any)
	if !ok {
		return nil
	}
	topics := make([]models.ResearchTopic, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		topics = append(topics, models.ResearchTopic{
			Title:                  stringValue(fields["title"]),
			Description:            stringValue(fields["description"]),
			ResearchQuestions:      stringList(fields["research_questions"]),
			MethodologySuggestions: joinedString(fields["methodology_suggestions"]),
			ExpectedOutcomes:       joinedString(fields["expected_outcomes"]),
			RelevanceScore:         floatValue(fields["relevance_score"]),
		})
	}
	return topics
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// joinedString renders a field that may be a string or a list of
// strings as one string, list items joined with "; ".
func joinedString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

// stringList renders a field that may be a list or a scalar as a list:
// a scalar becomes a singleton, an empty value an empty list.
func stringList(v any) []string {
	switch val := v.(type) {
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	default:
		return []string{}
	}
}

func floatValue(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	default:
		return 0
	}
}
