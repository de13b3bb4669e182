package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ExtractedParagraph holds the schema definition for the ExtractedParagraph
// entity. Owned by the extraction service; read-only here.
type ExtractedParagraph struct {
	ent.Schema
}

// Fields of the ExtractedParagraph.
func (ExtractedParagraph) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("section_id", uuid.UUID{}).
			Immutable(),
		field.Text("text"),
		field.Int("page").
			Optional().
			Nillable(),
		field.Int("order_index").
			Default(0),
	}
}

// Edges of the ExtractedParagraph.
func (ExtractedParagraph) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("section", ExtractedSection.Type).
			Ref("paragraphs").
			Field("section_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExtractedParagraph.
func (ExtractedParagraph) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section_id", "order_index"),
	}
}
