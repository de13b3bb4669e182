package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/ent"
	testdb "github.com/scholarai/gapfinder/test/database"
)

func TestPaperService_LoadPaper(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPaperService(client.Client)
	ctx := context.Background()

	seedSection := func(t *testing.T, extractionID uuid.UUID, title string, orderIndex int, paragraphs ...string) *ent.ExtractedSection {
		t.Helper()
		sec, err := client.ExtractedSection.Create().
			SetPaperExtractionID(extractionID).
			SetTitle(title).
			SetOrderIndex(orderIndex).
			Save(ctx)
		require.NoError(t, err)
		for i, text := range paragraphs {
			_, err := client.ExtractedParagraph.Create().
				SetSectionID(sec.ID).
				SetText(text).
				SetOrderIndex(i).
				Save(ctx)
			require.NoError(t, err)
		}
		return sec
	}

	t.Run("unknown paper", func(t *testing.T) {
		_, _, err := service.LoadPaper(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrPaperNotFound)
	})

	t.Run("missing extraction falls back to metadata only", func(t *testing.T) {
		paper, err := client.Paper.Create().
			SetTitle("Sparse Rewards Revisited").
			SetAbstractText("We revisit sparse rewards.").
			SetDoi("10.1000/sparse").
			Save(ctx)
		require.NoError(t, err)

		data, content, err := service.LoadPaper(ctx, paper.ID, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, paper.ID.String(), data.ID)
		assert.Equal(t, "Sparse Rewards Revisited", data.Title)
		assert.Equal(t, "We revisit sparse rewards.", data.AbstractText)
		assert.Equal(t, "10.1000/sparse", data.DOI)
		require.NotNil(t, content)
		assert.Empty(t, content.Sections)
		assert.Empty(t, content.Conclusion)
		assert.Empty(t, content.FigureCaptions)
		assert.Empty(t, content.TableCaptions)
	})

	t.Run("nil metadata columns become empty strings", func(t *testing.T) {
		paper, err := client.Paper.Create().
			SetTitle("Untitled Preprint").
			Save(ctx)
		require.NoError(t, err)

		data, _, err := service.LoadPaper(ctx, paper.ID, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, data.AbstractText)
		assert.Empty(t, data.DOI)
	})

	t.Run("assembles sections in stored order", func(t *testing.T) {
		paper, err := client.Paper.Create().
			SetTitle("Curriculum Learning at Scale").
			Save(ctx)
		require.NoError(t, err)
		extraction, err := client.PaperExtraction.Create().
			SetPaperID(paper.ID).
			Save(ctx)
		require.NoError(t, err)

		// Inserted out of order; order_index decides.
		seedSection(t, extraction.ID, "Conclusion and Future Work", 2, "Curricula help.", "Transfer remains open.")
		seedSection(t, extraction.ID, "Introduction", 0, "Training is hard.")
		methods := seedSection(t, extraction.ID, "Methods", 1)
		// Out-of-order paragraphs with a blank one in the middle.
		for _, p := range []struct {
			text  string
			index int
		}{
			{"Second step.", 1},
			{"", 2},
			{"First step.", 0},
		} {
			_, err := client.ExtractedParagraph.Create().
				SetSectionID(methods.ID).
				SetText(p.text).
				SetOrderIndex(p.index).
				Save(ctx)
			require.NoError(t, err)
		}

		_, err = client.ExtractedFigure.Create().
			SetPaperExtractionID(extraction.ID).
			SetCaption("Figure 1: Loss curves.").
			SetOrderIndex(0).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.ExtractedFigure.Create().
			SetPaperExtractionID(extraction.ID).
			SetOrderIndex(1).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.ExtractedTable.Create().
			SetPaperExtractionID(extraction.ID).
			SetCaption("Table 1: Benchmark results.").
			SetOrderIndex(0).
			Save(ctx)
		require.NoError(t, err)

		data, content, err := service.LoadPaper(ctx, paper.ID, extraction.ID)
		require.NoError(t, err)
		assert.Equal(t, "Curriculum Learning at Scale", data.Title)

		require.Len(t, content.Sections, 3)
		assert.Equal(t, "Introduction", content.Sections[0].Title)
		assert.Equal(t, []string{"Training is hard."}, content.Sections[0].Paragraphs)
		assert.Equal(t, "Methods", content.Sections[1].Title)
		assert.Equal(t, []string{"First step.", "Second step."}, content.Sections[1].Paragraphs)
		assert.Equal(t, "Conclusion and Future Work", content.Sections[2].Title)

		assert.Equal(t, "Curricula help. Transfer remains open.", content.Conclusion)
		assert.Equal(t, []string{"Figure 1: Loss curves."}, content.FigureCaptions)
		assert.Equal(t, []string{"Table 1: Benchmark results."}, content.TableCaptions)
	})

	t.Run("extraction without sections", func(t *testing.T) {
		paper, err := client.Paper.Create().
			SetTitle("Bare Extraction").
			Save(ctx)
		require.NoError(t, err)
		extraction, err := client.PaperExtraction.Create().
			SetPaperID(paper.ID).
			Save(ctx)
		require.NoError(t, err)

		_, content, err := service.LoadPaper(ctx, paper.ID, extraction.ID)
		require.NoError(t, err)
		assert.Empty(t, content.Sections)
		assert.Empty(t, content.Conclusion)
	})
}
