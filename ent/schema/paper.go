package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Paper holds the schema definition for the Paper entity.
//
// The papers table is owned by the ingestion service; this worker only
// reads it. The schema lists the subset of columns the pipeline consumes
// and the migrations here never touch the table.
type Paper struct {
	ent.Schema
}

// Fields of the Paper.
func (Paper) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("correlation_id").
			Optional(),
		field.Text("title"),
		field.Text("abstract_text").
			Optional().
			Nillable(),
		field.Time("publication_date").
			Optional().
			Nillable(),
		field.String("doi").
			Optional().
			Nillable(),
		field.String("source").
			Optional().
			Nillable(),
		field.Text("pdf_content_url").
			Optional().
			Nillable(),
		field.Text("pdf_url").
			Optional().
			Nillable(),
		field.Bool("is_open_access").
			Default(false),
	}
}
