package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GapValidationPaper holds the schema definition for the GapValidationPaper
// entity. A related paper consulted while validating one gap.
type GapValidationPaper struct {
	ent.Schema
}

// Fields of the GapValidationPaper.
func (GapValidationPaper) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("research_gap_id", uuid.UUID{}).
			Immutable(),
		field.Text("title"),
		field.String("doi").
			Optional().
			Nillable(),
		field.Text("url").
			Optional().
			Nillable(),
		field.Time("publication_date").
			Optional().
			Nillable(),
		field.String("extraction_status").
			Optional().
			Nillable().
			Comment("success, failed or metadata_only"),
		field.Text("extracted_text").
			Optional().
			Nillable(),
		field.Text("extraction_error").
			Optional().
			Nillable(),
		field.Float("relevance_score").
			Optional().
			Nillable(),
		field.Bool("supports_gap").
			Default(false),
		field.Bool("conflicts_with_gap").
			Default(false),
		field.Text("key_findings").
			Optional().
			Nillable(),
	}
}

// Edges of the GapValidationPaper.
func (GapValidationPaper) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("gap", ResearchGap.Type).
			Ref("validation_papers").
			Field("research_gap_id").
			Unique().
			Required().
			Immutable(),
	}
}
