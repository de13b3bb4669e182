package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholarai/gapfinder/pkg/models"
)

func TestBuildPaperContext(t *testing.T) {
	t.Run("renders the full paper", func(t *testing.T) {
		paper := models.PaperData{Title: "Quantum Routing", AbstractText: "We study routing."}
		content := models.ExtractedPaperContent{
			Sections: []models.PaperSection{
				{Title: "Methods", Paragraphs: []string{"p1", "p2", "p3", "p4"}},
				{Title: "Results", Paragraphs: []string{"r1"}},
			},
			Conclusion:     "Routing works.",
			FigureCaptions: []string{"Topology diagram", "Latency histogram"},
			TableCaptions:  []string{"Benchmark results"},
		}

		out := buildPaperContext(paper, content)
		assert.Contains(t, out, "Title: Quantum Routing")
		assert.Contains(t, out, "Abstract: We study routing.")
		assert.Contains(t, out, "KEY SECTIONS:")
		assert.Contains(t, out, "Methods:\np1 p2 p3")
		assert.NotContains(t, out, "p4")
		assert.Contains(t, out, "CONCLUSION:\nRouting works.")
		assert.Contains(t, out, "- Topology diagram")
		assert.Contains(t, out, "- Benchmark results")
	})

	t.Run("missing title and abstract become N/A", func(t *testing.T) {
		out := buildPaperContext(models.PaperData{}, models.ExtractedPaperContent{})
		assert.Equal(t, "Title: N/A\nAbstract: N/A", out)
	})

	t.Run("caps the number of sections", func(t *testing.T) {
		var sections []models.PaperSection
		for i := 1; i <= 12; i++ {
			sections = append(sections, models.PaperSection{
				Title:      fmt.Sprintf("Section %02d", i),
				Paragraphs: []string{"text"},
			})
		}
		out := buildPaperContext(models.PaperData{}, models.ExtractedPaperContent{Sections: sections})
		assert.Contains(t, out, "Section 10:")
		assert.NotContains(t, out, "Section 11:")
	})

	t.Run("caps section text length", func(t *testing.T) {
		content := models.ExtractedPaperContent{
			Sections: []models.PaperSection{
				{Title: "Methods", Paragraphs: []string{strings.Repeat("x", 1500)}},
			},
		}
		out := buildPaperContext(models.PaperData{}, content)
		assert.Contains(t, out, strings.Repeat("x", 1000))
		assert.NotContains(t, out, strings.Repeat("x", 1001))
	})

	t.Run("skips untitled sections", func(t *testing.T) {
		content := models.ExtractedPaperContent{
			Sections: []models.PaperSection{{Paragraphs: []string{"orphan text"}}},
		}
		out := buildPaperContext(models.PaperData{}, content)
		assert.NotContains(t, out, "orphan text")
	})

	t.Run("caps captions", func(t *testing.T) {
		content := models.ExtractedPaperContent{
			FigureCaptions: []string{"Fig A", "Fig B", "Fig C", "Fig D", "Fig E", "Fig F"},
		}
		out := buildPaperContext(models.PaperData{}, content)
		assert.Contains(t, out, "- Fig E")
		assert.NotContains(t, out, "Fig F")
	})
}

func TestBuildValidationContext(t *testing.T) {
	t.Run("renders numbered papers with capped fields", func(t *testing.T) {
		papers := []models.ExtractedContent{
			{
				Title:      "Reward Shaping Revisited",
				Abstract:   strings.Repeat("a", 600),
				Methods:    "ablations",
				Results:    "improved returns",
				Conclusion: "shaping helps",
			},
			{Title: "Sparse Signals"},
		}

		out := buildValidationContext(papers)
		assert.Contains(t, out, "PAPER 1:")
		assert.Contains(t, out, "PAPER 2:")
		assert.Contains(t, out, "Title: Sparse Signals")
		assert.Contains(t, out, "Abstract: "+strings.Repeat("a", 500))
		assert.NotContains(t, out, strings.Repeat("a", 501))
		assert.Equal(t, 1, strings.Count(out, "Methods:"))
	})

	t.Run("caps the number of papers", func(t *testing.T) {
		papers := make([]models.ExtractedContent, 12)
		for i := range papers {
			papers[i] = models.ExtractedContent{Title: fmt.Sprintf("Paper %02d", i+1)}
		}
		out := buildValidationContext(papers)
		assert.Contains(t, out, "PAPER 10:")
		assert.NotContains(t, out, "PAPER 11:")
	})

	t.Run("no papers renders nothing", func(t *testing.T) {
		assert.Equal(t, "", buildValidationContext(nil))
	})
}
