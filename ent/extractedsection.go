// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/paperextraction"
)

// ExtractedSection is the model entity for the ExtractedSection schema.
type ExtractedSection struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PaperExtractionID holds the value of the "paper_extraction_id" field.
	PaperExtractionID uuid.UUID `json:"paper_extraction_id,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// SectionType holds the value of the "section_type" field.
	SectionType *string `json:"section_type,omitempty"`
	// Level holds the value of the "level" field.
	Level *int `json:"level,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex int `json:"order_index,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedSectionQuery when eager-loading is set.
	Edges        ExtractedSectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedSectionEdges holds the relations/edges for other nodes in the graph.
type ExtractedSectionEdges struct {
	// Extraction holds the value of the extraction edge.
	Extraction *PaperExtraction `json:"extraction,omitempty"`
	// Paragraphs holds the value of the paragraphs edge.
	Paragraphs []*ExtractedParagraph `json:"paragraphs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedSectionEdges) ExtractionOrErr() (*PaperExtraction, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: paperextraction.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// ParagraphsOrErr returns the Paragraphs value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractedSectionEdges) ParagraphsOrErr() ([]*ExtractedParagraph, error) {
	if e.loadedTypes[1] {
		return e.Paragraphs, nil
	}
	return nil, &NotLoadedError{edge: "paragraphs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedSection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedsection.FieldLevel, extractedsection.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case extractedsection.FieldTitle, extractedsection.FieldSectionType:
			values[i] = new(sql.NullString)
		case extractedsection.FieldID, extractedsection.FieldPaperExtractionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedSection fields.
func (_m *ExtractedSection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedsection.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedsection.FieldPaperExtractionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field paper_extraction_id", values[i])
			} else if value != nil {
				_m.PaperExtractionID = *value
			}
		case extractedsection.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case extractedsection.FieldSectionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_type", values[i])
			} else if value.Valid {
				_m.SectionType = new(string)
				*_m.SectionType = value.String
			}
		case extractedsection.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = new(int)
				*_m.Level = int(value.Int64)
			}
		case extractedsection.FieldOrderIndex:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedSection.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedSection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtraction queries the "extraction" edge of the ExtractedSection entity.
func (_m *ExtractedSection) QueryExtraction() *PaperExtractionQuery {
	return NewExtractedSectionClient(_m.config).QueryExtraction(_m)
}

// QueryParagraphs queries the "paragraphs" edge of the ExtractedSection entity.
func (_m *ExtractedSection) QueryParagraphs() *ExtractedParagraphQuery {
	return NewExtractedSectionClient(_m.config).QueryParagraphs(_m)
}

// Update returns a builder for updating this ExtractedSection.
// Note that you need to call ExtractedSection.Unwrap() before calling this method if this ExtractedSection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedSection) Update() *ExtractedSectionUpdateOne {
	return NewExtractedSectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedSection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedSection) Unwrap() *ExtractedSection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedSection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedSection) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedSection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("paper_extraction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaperExtractionID))
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SectionType; v != nil {
		builder.WriteString("section_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Level; v != nil {
		builder.WriteString("level=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedSections is a parsable slice of ExtractedSection.
type ExtractedSections []*ExtractedSection
