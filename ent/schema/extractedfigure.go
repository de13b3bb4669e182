package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ExtractedFigure holds the schema definition for the ExtractedFigure
// entity. Owned by the extraction service; read-only here.
type ExtractedFigure struct {
	ent.Schema
}

// Fields of the ExtractedFigure.
func (ExtractedFigure) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("paper_extraction_id", uuid.UUID{}).
			Immutable(),
		field.String("label").
			Optional().
			Nillable(),
		field.Text("caption").
			Optional().
			Nillable(),
		field.Int("page").
			Optional().
			Nillable(),
		field.Int("order_index").
			Default(0),
	}
}

// Edges of the ExtractedFigure.
func (ExtractedFigure) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction", PaperExtraction.Type).
			Ref("figures").
			Field("paper_extraction_id").
			Unique().
			Required().
			Immutable(),
	}
}
