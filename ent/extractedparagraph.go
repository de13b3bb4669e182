// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
)

// ExtractedParagraph is the model entity for the ExtractedParagraph schema.
type ExtractedParagraph struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID uuid.UUID `json:"section_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Page holds the value of the "page" field.
	Page *int `json:"page,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex int `json:"order_index,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedParagraphQuery when eager-loading is set.
	Edges        ExtractedParagraphEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedParagraphEdges holds the relations/edges for other nodes in the graph.
type ExtractedParagraphEdges struct {
	// Section holds the value of the section edge.
	Section *ExtractedSection `json:"section,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SectionOrErr returns the Section value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedParagraphEdges) SectionOrErr() (*ExtractedSection, error) {
	if e.Section != nil {
		return e.Section, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractedsection.Label}
	}
	return nil, &NotLoadedError{edge: "section"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedParagraph) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedparagraph.FieldPage, extractedparagraph.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case extractedparagraph.FieldText:
			values[i] = new(sql.NullString)
		case extractedparagraph.FieldID, extractedparagraph.FieldSectionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedParagraph fields.
func (_m *ExtractedParagraph) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedparagraph.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedparagraph.FieldSectionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value != nil {
				_m.SectionID = *value
			}
		case extractedparagraph.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case extractedparagraph.FieldPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page", values[i])
			} else if value.Valid {
				_m.Page = new(int)
				*_m.Page = int(value.Int64)
			}
		case extractedparagraph.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedParagraph.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedParagraph) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySection queries the "section" edge of the ExtractedParagraph entity.
func (_m *ExtractedParagraph) QuerySection() *ExtractedSectionQuery {
	return NewExtractedParagraphClient(_m.config).QuerySection(_m)
}

// Update returns a builder for updating this ExtractedParagraph.
// Note that you need to call ExtractedParagraph.Unwrap() before calling this method if this ExtractedParagraph
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedParagraph) Update() *ExtractedParagraphUpdateOne {
	return NewExtractedParagraphClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedParagraph entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedParagraph) Unwrap() *ExtractedParagraph {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedParagraph is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedParagraph) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedParagraph(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("section_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionID))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	if v := _m.Page; v != nil {
		builder.WriteString("page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedParagraphs is a parsable slice of ExtractedParagraph.
type ExtractedParagraphs []*ExtractedParagraph
