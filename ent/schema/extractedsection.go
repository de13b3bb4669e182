package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ExtractedSection holds the schema definition for the ExtractedSection
// entity. Owned by the extraction service; read-only here.
type ExtractedSection struct {
	ent.Schema
}

// Fields of the ExtractedSection.
func (ExtractedSection) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("paper_extraction_id", uuid.UUID{}).
			Immutable(),
		field.Text("title").
			Optional().
			Nillable(),
		field.String("section_type").
			Optional().
			Nillable(),
		field.Int("level").
			Optional().
			Nillable(),
		field.Int("order_index").
			Default(0),
	}
}

// Edges of the ExtractedSection.
func (ExtractedSection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction", PaperExtraction.Type).
			Ref("sections").
			Field("paper_extraction_id").
			Unique().
			Required().
			Immutable(),
		edge.To("paragraphs", ExtractedParagraph.Type),
	}
}

// Indexes of the ExtractedSection.
func (ExtractedSection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("paper_extraction_id", "order_index"),
	}
}
