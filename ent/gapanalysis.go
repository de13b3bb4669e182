// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
)

// GapAnalysis is the model entity for the GapAnalysis schema.
type GapAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Reference to the externally owned papers table
	PaperID uuid.UUID `json:"paper_id,omitempty"`
	// Reference to the externally owned paper_extractions table
	PaperExtractionID uuid.UUID `json:"paper_extraction_id,omitempty"`
	// Externally supplied idempotency key; sole unique constraint besides the PK
	CorrelationID string `json:"correlation_id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID string `json:"request_id,omitempty"`
	// Status holds the value of the "status" field.
	Status gapanalysis.Status `json:"status,omitempty"`
	// When the worker picked the request up
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Set only when status is FAILED
	ErrorMessage *string `json:"error_message,omitempty"`
	// Opaque passthrough from the request
	Config map[string]interface{} `json:"config,omitempty"`
	// TotalGapsIdentified holds the value of the "total_gaps_identified" field.
	TotalGapsIdentified int `json:"total_gaps_identified,omitempty"`
	// ValidGapsCount holds the value of the "valid_gaps_count" field.
	ValidGapsCount int `json:"valid_gaps_count,omitempty"`
	// InvalidGapsCount holds the value of the "invalid_gaps_count" field.
	InvalidGapsCount int `json:"invalid_gaps_count,omitempty"`
	// ModifiedGapsCount holds the value of the "modified_gaps_count" field.
	ModifiedGapsCount int `json:"modified_gaps_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GapAnalysisQuery when eager-loading is set.
	Edges        GapAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GapAnalysisEdges holds the relations/edges for other nodes in the graph.
type GapAnalysisEdges struct {
	// Gaps holds the value of the gaps edge.
	Gaps []*ResearchGap `json:"gaps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GapsOrErr returns the Gaps value or an error if the edge
// was not loaded in eager-loading.
func (e GapAnalysisEdges) GapsOrErr() ([]*ResearchGap, error) {
	if e.loadedTypes[0] {
		return e.Gaps, nil
	}
	return nil, &NotLoadedError{edge: "gaps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GapAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gapanalysis.FieldConfig:
			values[i] = new([]byte)
		case gapanalysis.FieldTotalGapsIdentified, gapanalysis.FieldValidGapsCount, gapanalysis.FieldInvalidGapsCount, gapanalysis.FieldModifiedGapsCount:
			values[i] = new(sql.NullInt64)
		case gapanalysis.FieldCorrelationID, gapanalysis.FieldRequestID, gapanalysis.FieldStatus, gapanalysis.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case gapanalysis.FieldStartedAt, gapanalysis.FieldCompletedAt, gapanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case gapanalysis.FieldID, gapanalysis.FieldPaperID, gapanalysis.FieldPaperExtractionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GapAnalysis fields.
func (_m *GapAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gapanalysis.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gapanalysis.FieldPaperID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field paper_id", values[i])
			} else if value != nil {
				_m.PaperID = *value
			}
		case gapanalysis.FieldPaperExtractionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field paper_extraction_id", values[i])
			} else if value != nil {
				_m.PaperExtractionID = *value
			}
		case gapanalysis.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case gapanalysis.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.String
			}
		case gapanalysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = gapanalysis.Status(value.String)
			}
		case gapanalysis.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case gapanalysis.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case gapanalysis.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case gapanalysis.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case gapanalysis.FieldTotalGapsIdentified:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_gaps_identified", values[i])
			} else if value.Valid {
				_m.TotalGapsIdentified = int(value.Int64)
			}
		case gapanalysis.FieldValidGapsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field valid_gaps_count", values[i])
			} else if value.Valid {
				_m.ValidGapsCount = int(value.Int64)
			}
		case gapanalysis.FieldInvalidGapsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field invalid_gaps_count", values[i])
			} else if value.Valid {
				_m.InvalidGapsCount = int(value.Int64)
			}
		case gapanalysis.FieldModifiedGapsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field modified_gaps_count", values[i])
			} else if value.Valid {
				_m.ModifiedGapsCount = int(value.Int64)
			}
		case gapanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GapAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *GapAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGaps queries the "gaps" edge of the GapAnalysis entity.
func (_m *GapAnalysis) QueryGaps() *ResearchGapQuery {
	return NewGapAnalysisClient(_m.config).QueryGaps(_m)
}

// Update returns a builder for updating this GapAnalysis.
// Note that you need to call GapAnalysis.Unwrap() before calling this method if this GapAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GapAnalysis) Update() *GapAnalysisUpdateOne {
	return NewGapAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GapAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GapAnalysis) Unwrap() *GapAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GapAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GapAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("GapAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("paper_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaperID))
	builder.WriteString(", ")
	builder.WriteString("paper_extraction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaperExtractionID))
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(_m.RequestID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("total_gaps_identified=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalGapsIdentified))
	builder.WriteString(", ")
	builder.WriteString("valid_gaps_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidGapsCount))
	builder.WriteString(", ")
	builder.WriteString("invalid_gaps_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvalidGapsCount))
	builder.WriteString(", ")
	builder.WriteString("modified_gaps_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModifiedGapsCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GapAnalyses is a parsable slice of GapAnalysis.
type GapAnalyses []*GapAnalysis
