// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/paperextraction"
)

// PaperExtraction is the model entity for the PaperExtraction schema.
type PaperExtraction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PaperID holds the value of the "paper_id" field.
	PaperID uuid.UUID `json:"paper_id,omitempty"`
	// ExtractionID holds the value of the "extraction_id" field.
	ExtractionID *string `json:"extraction_id,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// AbstractText holds the value of the "abstract_text" field.
	AbstractText *string `json:"abstract_text,omitempty"`
	// Language holds the value of the "language" field.
	Language *string `json:"language,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount *int `json:"page_count,omitempty"`
	// ExtractionCoverage holds the value of the "extraction_coverage" field.
	ExtractionCoverage *float64 `json:"extraction_coverage,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaperExtractionQuery when eager-loading is set.
	Edges        PaperExtractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaperExtractionEdges holds the relations/edges for other nodes in the graph.
type PaperExtractionEdges struct {
	// Sections holds the value of the sections edge.
	Sections []*ExtractedSection `json:"sections,omitempty"`
	// Figures holds the value of the figures edge.
	Figures []*ExtractedFigure `json:"figures,omitempty"`
	// Tables holds the value of the tables edge.
	Tables []*ExtractedTable `json:"tables,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SectionsOrErr returns the Sections value or an error if the edge
// was not loaded in eager-loading.
func (e PaperExtractionEdges) SectionsOrErr() ([]*ExtractedSection, error) {
	if e.loadedTypes[0] {
		return e.Sections, nil
	}
	return nil, &NotLoadedError{edge: "sections"}
}

// FiguresOrErr returns the Figures value or an error if the edge
// was not loaded in eager-loading.
func (e PaperExtractionEdges) FiguresOrErr() ([]*ExtractedFigure, error) {
	if e.loadedTypes[1] {
		return e.Figures, nil
	}
	return nil, &NotLoadedError{edge: "figures"}
}

// TablesOrErr returns the Tables value or an error if the edge
// was not loaded in eager-loading.
func (e PaperExtractionEdges) TablesOrErr() ([]*ExtractedTable, error) {
	if e.loadedTypes[2] {
		return e.Tables, nil
	}
	return nil, &NotLoadedError{edge: "tables"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaperExtraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paperextraction.FieldExtractionCoverage:
			values[i] = new(sql.NullFloat64)
		case paperextraction.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case paperextraction.FieldExtractionID, paperextraction.FieldTitle, paperextraction.FieldAbstractText, paperextraction.FieldLanguage:
			values[i] = new(sql.NullString)
		case paperextraction.FieldID, paperextraction.FieldPaperID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaperExtraction fields.
func (_m *PaperExtraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paperextraction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paperextraction.FieldPaperID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field paper_id", values[i])
			} else if value != nil {
				_m.PaperID = *value
			}
		case paperextraction.FieldExtractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_id", values[i])
			} else if value.Valid {
				_m.ExtractionID = new(string)
				*_m.ExtractionID = value.String
			}
		case paperextraction.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case paperextraction.FieldAbstractText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field abstract_text", values[i])
			} else if value.Valid {
				_m.AbstractText = new(string)
				*_m.AbstractText = value.String
			}
		case paperextraction.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = new(string)
				*_m.Language = value.String
			}
		case paperextraction.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = new(int)
				*_m.PageCount = int(value.Int64)
			}
		case paperextraction.FieldExtractionCoverage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_coverage", values[i])
			} else if value.Valid {
				_m.ExtractionCoverage = new(float64)
				*_m.ExtractionCoverage = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaperExtraction.
// This includes values selected through modifiers, order, etc.
func (_m *PaperExtraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySections queries the "sections" edge of the PaperExtraction entity.
func (_m *PaperExtraction) QuerySections() *ExtractedSectionQuery {
	return NewPaperExtractionClient(_m.config).QuerySections(_m)
}

// QueryFigures queries the "figures" edge of the PaperExtraction entity.
func (_m *PaperExtraction) QueryFigures() *ExtractedFigureQuery {
	return NewPaperExtractionClient(_m.config).QueryFigures(_m)
}

// QueryTables queries the "tables" edge of the PaperExtraction entity.
func (_m *PaperExtraction) QueryTables() *ExtractedTableQuery {
	return NewPaperExtractionClient(_m.config).QueryTables(_m)
}

// Update returns a builder for updating this PaperExtraction.
// Note that you need to call PaperExtraction.Unwrap() before calling this method if this PaperExtraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaperExtraction) Update() *PaperExtractionUpdateOne {
	return NewPaperExtractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaperExtraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaperExtraction) Unwrap() *PaperExtraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaperExtraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaperExtraction) String() string {
	var builder strings.Builder
	builder.WriteString("PaperExtraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("paper_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaperID))
	builder.WriteString(", ")
	if v := _m.ExtractionID; v != nil {
		builder.WriteString("extraction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AbstractText; v != nil {
		builder.WriteString("abstract_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Language; v != nil {
		builder.WriteString("language=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PageCount; v != nil {
		builder.WriteString("page_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractionCoverage; v != nil {
		builder.WriteString("extraction_coverage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PaperExtractions is a parsable slice of PaperExtraction.
type PaperExtractions []*PaperExtraction
