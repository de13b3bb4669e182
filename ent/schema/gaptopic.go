package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GapTopic holds the schema definition for the GapTopic entity.
// A suggested research topic derived from a validated gap.
type GapTopic struct {
	ent.Schema
}

// Fields of the GapTopic.
func (GapTopic) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("research_gap_id", uuid.UUID{}).
			Immutable(),
		field.Text("title"),
		field.Text("description").
			Optional(),
		field.JSON("research_questions", []string{}).
			Optional(),
		field.Text("methodology_suggestions").
			Optional().
			Nillable(),
		field.Text("expected_outcomes").
			Optional().
			Nillable(),
		field.Float("relevance_score").
			Default(0),
	}
}

// Edges of the GapTopic.
func (GapTopic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("gap", ResearchGap.Type).
			Ref("topics").
			Field("research_gap_id").
			Unique().
			Required().
			Immutable(),
	}
}
