// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// GapTopic is the model entity for the GapTopic schema.
type GapTopic struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ResearchGapID holds the value of the "research_gap_id" field.
	ResearchGapID uuid.UUID `json:"research_gap_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ResearchQuestions holds the value of the "research_questions" field.
	ResearchQuestions []string `json:"research_questions,omitempty"`
	// MethodologySuggestions holds the value of the "methodology_suggestions" field.
	MethodologySuggestions *string `json:"methodology_suggestions,omitempty"`
	// ExpectedOutcomes holds the value of the "expected_outcomes" field.
	ExpectedOutcomes *string `json:"expected_outcomes,omitempty"`
	// RelevanceScore holds the value of the "relevance_score" field.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GapTopicQuery when eager-loading is set.
	Edges        GapTopicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GapTopicEdges holds the relations/edges for other nodes in the graph.
type GapTopicEdges struct {
	// Gap holds the value of the gap edge.
	Gap *ResearchGap `json:"gap,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GapOrErr returns the Gap value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GapTopicEdges) GapOrErr() (*ResearchGap, error) {
	if e.Gap != nil {
		return e.Gap, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchgap.Label}
	}
	return nil, &NotLoadedError{edge: "gap"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GapTopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gaptopic.FieldResearchQuestions:
			values[i] = new([]byte)
		case gaptopic.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case gaptopic.FieldTitle, gaptopic.FieldDescription, gaptopic.FieldMethodologySuggestions, gaptopic.FieldExpectedOutcomes:
			values[i] = new(sql.NullString)
		case gaptopic.FieldID, gaptopic.FieldResearchGapID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GapTopic fields.
func (_m *GapTopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gaptopic.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gaptopic.FieldResearchGapID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field research_gap_id", values[i])
			} else if value != nil {
				_m.ResearchGapID = *value
			}
		case gaptopic.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case gaptopic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case gaptopic.FieldResearchQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field research_questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResearchQuestions); err != nil {
					return fmt.Errorf("unmarshal field research_questions: %w", err)
				}
			}
		case gaptopic.FieldMethodologySuggestions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field methodology_suggestions", values[i])
			} else if value.Valid {
				_m.MethodologySuggestions = new(string)
				*_m.MethodologySuggestions = value.String
			}
		case gaptopic.FieldExpectedOutcomes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_outcomes", values[i])
			} else if value.Valid {
				_m.ExpectedOutcomes = new(string)
				*_m.ExpectedOutcomes = value.String
			}
		case gaptopic.FieldRelevanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[i])
			} else if value.Valid {
				_m.RelevanceScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GapTopic.
// This includes values selected through modifiers, order, etc.
func (_m *GapTopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGap queries the "gap" edge of the GapTopic entity.
func (_m *GapTopic) QueryGap() *ResearchGapQuery {
	return NewGapTopicClient(_m.config).QueryGap(_m)
}

// Update returns a builder for updating this GapTopic.
// Note that you need to call GapTopic.Unwrap() before calling this method if this GapTopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GapTopic) Update() *GapTopicUpdateOne {
	return NewGapTopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GapTopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GapTopic) Unwrap() *GapTopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GapTopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GapTopic) String() string {
	var builder strings.Builder
	builder.WriteString("GapTopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("research_gap_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchGapID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("research_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchQuestions))
	builder.WriteString(", ")
	if v := _m.MethodologySuggestions; v != nil {
		builder.WriteString("methodology_suggestions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpectedOutcomes; v != nil {
		builder.WriteString("expected_outcomes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("relevance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelevanceScore))
	builder.WriteByte(')')
	return builder.String()
}

// GapTopics is a parsable slice of GapTopic.
type GapTopics []*GapTopic
