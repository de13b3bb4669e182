package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ResearchGap holds the schema definition for the ResearchGap entity.
// A single identified gap belonging to one analysis.
type ResearchGap struct {
	ent.Schema
}

// Fields of the ResearchGap.
func (ResearchGap) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("gap_analysis_id", uuid.UUID{}).
			Immutable(),
		field.String("gap_id").
			Unique().
			NotEmpty().
			Comment("Synthesized as {analysis_id}-{index}-{uuid}"),
		field.Int("order_index").
			Default(0).
			Comment("Position in the order the model emitted the gaps"),

		// Classification
		field.Text("name"),
		field.Text("description").
			Optional(),
		field.String("category").
			Optional().
			Comment("theoretical, methodological, empirical, application or interdisciplinary"),

		// Validation
		field.Enum("validation_status").
			Values("INITIAL", "VALIDATING", "VALID", "INVALID", "MODIFIED").
			Default("INITIAL"),
		field.Float("validation_confidence").
			Optional().
			Nillable(),
		field.Text("initial_reasoning").
			Optional().
			Nillable(),
		field.Text("initial_evidence").
			Optional().
			Nillable(),
		field.Text("validation_query").
			Optional().
			Nillable().
			Comment("Search query used to find related literature"),
		field.Int("papers_analyzed_count").
			Default(0),
		field.Text("validation_reasoning").
			Optional().
			Nillable(),
		field.JSON("modification_history", []map[string]interface{}{}).
			Optional(),

		// Enrichment (populated on validation success)
		field.Text("potential_impact").
			Optional().
			Nillable(),
		field.Text("research_hints").
			Optional().
			Nillable(),
		field.Text("implementation_suggestions").
			Optional().
			Nillable(),
		field.Text("risks_and_challenges").
			Optional().
			Nillable(),
		field.Text("required_resources").
			Optional().
			Nillable(),
		field.String("estimated_difficulty").
			Optional().
			Nillable().
			Comment("low, medium, high or unknown"),
		field.String("estimated_timeline").
			Optional().
			Nillable(),
		field.JSON("evidence_anchors", []map[string]string{}).
			Optional(),
		field.JSON("supporting_papers", []map[string]string{}).
			Optional(),
		field.JSON("conflicting_papers", []map[string]string{}).
			Optional(),
		field.JSON("suggested_topics", []map[string]interface{}{}).
			Optional().
			Comment("Denormalized copy of the topics as published in the response"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("validated_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ResearchGap.
func (ResearchGap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analysis", GapAnalysis.Type).
			Ref("gaps").
			Field("gap_analysis_id").
			Unique().
			Required().
			Immutable(),
		edge.To("topics", GapTopic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("validation_papers", GapValidationPaper.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchGap.
func (ResearchGap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("validation_status"),

		// Gaps are always read back in emission order
		index.Fields("gap_analysis_id", "order_index"),
	}
}
