package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GapAnalysis holds the schema definition for the GapAnalysis entity.
// One row per analysis request; correlation_id is the idempotency key.
type GapAnalysis struct {
	ent.Schema
}

// Fields of the GapAnalysis.
func (GapAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("paper_id", uuid.UUID{}).
			Comment("Reference to the externally owned papers table"),
		field.UUID("paper_extraction_id", uuid.UUID{}).
			Comment("Reference to the externally owned paper_extractions table"),
		field.String("correlation_id").
			Unique().
			NotEmpty().
			Comment("Externally supplied idempotency key; sole unique constraint besides the PK"),
		field.String("request_id").
			NotEmpty(),
		field.Enum("status").
			Values("PENDING", "PROCESSING", "COMPLETED", "FAILED").
			Default("PENDING"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the worker picked the request up"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Set only when status is FAILED"),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Opaque passthrough from the request"),

		// Counters written at finalization
		field.Int("total_gaps_identified").
			Default(0),
		field.Int("valid_gaps_count").
			Default(0),
		field.Int("invalid_gaps_count").
			Default(0),
		field.Int("modified_gaps_count").
			Default(0),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the GapAnalysis.
func (GapAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("gaps", ResearchGap.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the GapAnalysis.
func (GapAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("paper_id"),

		// Listing and stats queries filter by status and sort by recency
		index.Fields("status", "created_at"),
	}
}

// Annotations for the GapAnalysis.
func (GapAnalysis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "gap_analyses"},
	}
}
