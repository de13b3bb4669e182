package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PaperExtraction holds the schema definition for the PaperExtraction
// entity. Owned by the extraction service; read-only here.
type PaperExtraction struct {
	ent.Schema
}

// Fields of the PaperExtraction.
func (PaperExtraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("paper_id", uuid.UUID{}),
		field.String("extraction_id").
			Optional().
			Nillable(),
		field.Text("title").
			Optional().
			Nillable(),
		field.Text("abstract_text").
			Optional().
			Nillable(),
		field.String("language").
			Optional().
			Nillable(),
		field.Int("page_count").
			Optional().
			Nillable(),
		field.Float("extraction_coverage").
			Optional().
			Nillable(),
	}
}

// Edges of the PaperExtraction.
func (PaperExtraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sections", ExtractedSection.Type),
		edge.To("figures", ExtractedFigure.Type),
		edge.To("tables", ExtractedTable.Type),
	}
}
