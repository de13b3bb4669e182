package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/pkg/models"
)

func TestNormalizeTopics(t *testing.T) {
	t.Run("normalizes well formed topics", func(t *testing.T) {
		raw := []any{
			map[string]any{
				"title":                   "Curriculum Design",
				"description":             "Order tasks by difficulty.",
				"research_questions":      []any{"q1", "q2"},
				"methodology_suggestions": []any{"simulation", "user study"},
				"expected_outcomes":       "better sample efficiency",
				"relevance_score":         0.7,
			},
		}

		topics := NormalizeTopics(raw)
		require.Len(t, topics, 1)
		assert.Equal(t, models.ResearchTopic{
			Title:                  "Curriculum Design",
			Description:            "Order tasks by difficulty.",
			ResearchQuestions:      []string{"q1", "q2"},
			MethodologySuggestions: "simulation; user study",
			ExpectedOutcomes:       "better sample efficiency",
			RelevanceScore:         0.7,
		}, topics[0])
	})

	t.Run("scalar research question becomes a singleton", func(t *testing.T) {
		raw := []any{map[string]any{"title": "T", "research_questions": "why?"}}
		topics := NormalizeTopics(raw)
		require.Len(t, topics, 1)
		assert.Equal(t, []string{"why?"}, topics[0].ResearchQuestions)
	})

	t.Run("missing fields default to empty", func(t *testing.T) {
		topics := NormalizeTopics([]any{map[string]any{"title": "T"}})
		require.Len(t, topics, 1)
		assert.Empty(t, topics[0].Description)
		assert.NotNil(t, topics[0].ResearchQuestions)
		assert.Empty(t, topics[0].ResearchQuestions)
		assert.Zero(t, topics[0].RelevanceScore)
	})

	t.Run("drops entries that are not objects", func(t *testing.T) {
		raw := []any{"junk", 42, map[string]any{"title": "Kept"}}
		topics := NormalizeTopics(raw)
		require.Len(t, topics, 1)
		assert.Equal(t, "Kept", topics[0].Title)
	})

	t.Run("non list input yields nothing", func(t *testing.T) {
		assert.Nil(t, NormalizeTopics("not a list"))
		assert.Nil(t, NormalizeTopics(nil))
	})

	t.Run("integer relevance score", func(t *testing.T) {
		topics := NormalizeTopics([]any{map[string]any{"relevance_score": 1}})
		require.Len(t, topics, 1)
		assert.Equal(t, 1.0, topics[0].RelevanceScore)
	})
}
