package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ExtractedTable holds the schema definition for the ExtractedTable entity.
// Owned by the extraction service; read-only here.
type ExtractedTable struct {
	ent.Schema
}

// Fields of the ExtractedTable.
func (ExtractedTable) Fields() []ent.Field {
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

// Edges of the ExtractedTable.
func (ExtractedTable) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction", PaperExtraction.Type).
			Ref("tables").
			Field("paper_extraction_id").
			Unique().
			Required().
			Immutable(),
	}
}
