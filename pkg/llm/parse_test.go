package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	type gap struct {
		Name string `json:"name"`
	}

	t.Run("raw object", func(t *testing.T) {
		var got gap
		require.NoError(t, parseJSON(`{"name": "a"}`, &got))
		assert.Equal(t, "a", got.Name)
	})

	t.Run("raw array", func(t *testing.T) {
		var got []gap
		require.NoError(t, parseJSON(`[{"name": "a"}, {"name": "b"}]`, &got))
		assert.Len(t, got, 2)
	})

	t.Run("fenced with language tag", func(t *testing.T) {
		raw := "Here are the gaps:\n```json\n[{\"name\": \"a\"}]\n```\nLet me know if you need more."
		var got []gap
		require.NoError(t, parseJSON(raw, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].Name)
	})

	t.Run("fenced without language tag", func(t *testing.T) {
		raw := "```\n{\"name\": \"a\"}\n```"
		var got gap
		require.NoError(t, parseJSON(raw, &got))
		assert.Equal(t, "a", got.Name)
	})

	t.Run("unterminated fence", func(t *testing.T) {
		raw := "```json\n{\"name\": \"a\"}"
		var got gap
		require.NoError(t, parseJSON(raw, &got))
		assert.Equal(t, "a", got.Name)
	})

	t.Run("object buried in prose", func(t *testing.T) {
		raw := `The result is {"name": "a"} as requested.`
		var got gap
		require.NoError(t, parseJSON(raw, &got))
		assert.Equal(t, "a", got.Name)
	})

	t.Run("array buried in prose", func(t *testing.T) {
		raw := "I found these: [1, 2, 3] in total."
		var got []int
		require.NoError(t, parseJSON(raw, &got))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("nested object span", func(t *testing.T) {
		raw := `prefix {"outer": {"inner": 1}} suffix`
		var got map[string]any
		require.NoError(t, parseJSON(raw, &got))
		assert.Contains(t, got, "outer")
	})

	t.Run("quoted braces survive via the raw candidate", func(t *testing.T) {
		var got map[string]string
		require.NoError(t, parseJSON(`{"a": "}"}`, &got))
		assert.Equal(t, "}", got["a"])
	})

	t.Run("no JSON at all", func(t *testing.T) {
		var got gap
		err := parseJSON("I could not produce any output.", &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no parseable JSON")
	})

	t.Run("malformed JSON only", func(t *testing.T) {
		var got gap
		assert.Error(t, parseJSON(`{"name": }`, &got))
	})
}

func TestLargestSpan(t *testing.T) {
	t.Run("picks the longest balanced span", func(t *testing.T) {
		got := largestSpan(`{"a": 1} and {"bb": {"cc": 2}}`, '{', '}')
		assert.Equal(t, `{"bb": {"cc": 2}}`, got)
	})

	t.Run("ignores unbalanced opener", func(t *testing.T) {
		assert.Equal(t, "", largestSpan(`{"a": 1`, '{', '}'))
	})

	t.Run("arrays", func(t *testing.T) {
		got := largestSpan("[1,[2,3]] tail [4]", '[', ']')
		assert.Equal(t, "[1,[2,3]]", got)
	})

	t.Run("no span", func(t *testing.T) {
		assert.Equal(t, "", largestSpan("plain text", '{', '}'))
	})
}
