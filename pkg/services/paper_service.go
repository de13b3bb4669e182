package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/scholarai/gapfinder/ent"
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/paper"
	"github.com/scholarai/gapfinder/ent/paperextraction"
	"github.com/scholarai/gapfinder/pkg/models"
)

// PaperService reads the paper and extraction tables owned by the
// ingestion services.
type PaperService struct {
	client *ent.Client
}

// NewPaperService creates a new PaperService
func NewPaperService(client *ent.Client) *PaperService {
	return &PaperService{client: client}
}

// LoadPaper fetches the paper metadata and its extracted full text.
// A missing paper is an error; a missing extraction is not — analysis
// then proceeds on title and abstract alone.
func (s *PaperService) LoadPaper(ctx context.Context, paperID, extractionID uuid.UUID) (*models.PaperData, *models.ExtractedPaperContent, error) {
	row, err := s.client.Paper.Query().
		Where(paper.IDEQ(paperID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrPaperNotFound
		}
		return nil, nil, fmt.Errorf("failed to load paper: %w", err)
	}

	data := &models.PaperData{
		ID:           row.ID.String(),
		Title:        row.Title,
		AbstractText: fromPtr(row.AbstractText),
		DOI:          fromPtr(row.Doi),
	}

	exists, err := s.client.PaperExtraction.Query().
		Where(paperextraction.IDEQ(extractionID)).
		Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check extraction: %w", err)
	}
	if !exists {
		return data, &models.ExtractedPaperContent{}, nil
	}

	content := &models.ExtractedPaperContent{}

	sections, err := s.client.ExtractedSection.Query().
		Where(extractedsection.PaperExtractionIDEQ(extractionID)).
		Order(ent.Asc(extractedsection.FieldOrderIndex)).
		WithParagraphs(func(q *ent.ExtractedParagraphQuery) {
			q.Order(ent.Asc(extractedparagraph.FieldOrderIndex))
		}).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load sections: %w", err)
	}
	for _, sec := range sections {
		texts := make([]string, 0, len(sec.Edges.Paragraphs))
		for _, p := range sec.Edges.Paragraphs {
			if p.Text != "" {
				texts = append(texts, p.Text)
			}
		}
		title := fromPtr(sec.Title)
		content.Sections = append(content.Sections, models.PaperSection{
			Title:      title,
			Paragraphs: texts,
		})
		if strings.Contains(strings.ToLower(title), "conclusion") {
			content.Conclusion = strings.Join(texts, " ")
		}
	}

	figures, err := s.client.ExtractedFigure.Query().
		Where(extractedfigure.PaperExtractionIDEQ(extractionID)).
		Order(ent.Asc(extractedfigure.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load figures: %w", err)
	}
	for _, fig := range figures {
		if caption := fromPtr(fig.Caption); caption != "" {
			content.FigureCaptions = append(content.FigureCaptions, caption)
		}
	}

	tables, err := s.client.ExtractedTable.Query().
		Where(extractedtable.PaperExtractionIDEQ(extractionID)).
		Order(ent.Asc(extractedtable.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tables: %w", err)
	}
	for _, tbl := range tables {
		if caption := fromPtr(tbl.Caption); caption != "" {
			content.TableCaptions = append(content.TableCaptions, caption)
		}
	}

	return data, content, nil
}

func fromPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
