// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// GapValidationPaper is the model entity for the GapValidationPaper schema.
type GapValidationPaper struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ResearchGapID holds the value of the "research_gap_id" field.
	ResearchGapID uuid.UUID `json:"research_gap_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Doi holds the value of the "doi" field.
	Doi *string `json:"doi,omitempty"`
	// URL holds the value of the "url" field.
	URL *string `json:"url,omitempty"`
	// PublicationDate holds the value of the "publication_date" field.
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	// success, failed or metadata_only
	ExtractionStatus *string `json:"extraction_status,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// ExtractionError holds the value of the "extraction_error" field.
	ExtractionError *string `json:"extraction_error,omitempty"`
	// RelevanceScore holds the value of the "relevance_score" field.
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
	// SupportsGap holds the value of the "supports_gap" field.
	SupportsGap bool `json:"supports_gap,omitempty"`
	// ConflictsWithGap holds the value of the "conflicts_with_gap" field.
	ConflictsWithGap bool `json:"conflicts_with_gap,omitempty"`
	// KeyFindings holds the value of the "key_findings" field.
	KeyFindings *string `json:"key_findings,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GapValidationPaperQuery when eager-loading is set.
	Edges        GapValidationPaperEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GapValidationPaperEdges holds the relations/edges for other nodes in the graph.
type GapValidationPaperEdges struct {
	// Gap holds the value of the gap edge.
	Gap *ResearchGap `json:"gap,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GapOrErr returns the Gap value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GapValidationPaperEdges) GapOrErr() (*ResearchGap, error) {
	if e.Gap != nil {
		return e.Gap, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: researchgap.Label}
	}
	return nil, &NotLoadedError{edge: "gap"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GapValidationPaper) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gapvalidationpaper.FieldSupportsGap, gapvalidationpaper.FieldConflictsWithGap:
			values[i] = new(sql.NullBool)
		case gapvalidationpaper.FieldRelevanceScore:
			values[i] = new(sql.NullFloat64)
		case gapvalidationpaper.FieldTitle, gapvalidationpaper.FieldDoi, gapvalidationpaper.FieldURL, gapvalidationpaper.FieldExtractionStatus, gapvalidationpaper.FieldExtractedText, gapvalidationpaper.FieldExtractionError, gapvalidationpaper.FieldKeyFindings:
			values[i] = new(sql.NullString)
		case gapvalidationpaper.FieldPublicationDate:
			values[i] = new(sql.NullTime)
		case gapvalidationpaper.FieldID, gapvalidationpaper.FieldResearchGapID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GapValidationPaper fields.
func (_m *GapValidationPaper) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gapvalidationpaper.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gapvalidationpaper.FieldResearchGapID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field research_gap_id", values[i])
			} else if value != nil {
				_m.ResearchGapID = *value
			}
		case gapvalidationpaper.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case gapvalidationpaper.FieldDoi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doi", values[i])
			} else if value.Valid {
				_m.Doi = new(string)
				*_m.Doi = value.String
			}
		case gapvalidationpaper.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case gapvalidationpaper.FieldPublicationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field publication_date", values[i])
			} else if value.Valid {
				_m.PublicationDate = new(time.Time)
				*_m.PublicationDate = value.Time
			}
		case gapvalidationpaper.FieldExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_status", values[i])
			} else if value.Valid {
				_m.ExtractionStatus = new(string)
				*_m.ExtractionStatus = value.String
			}
		case gapvalidationpaper.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case gapvalidationpaper.FieldExtractionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_error", values[i])
			} else if value.Valid {
				_m.ExtractionError = new(string)
				*_m.ExtractionError = value.String
			}
		case gapvalidationpaper.FieldRelevanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field relevance_score", values[i])
			} else if value.Valid {
				_m.RelevanceScore = new(float64)
				*_m.RelevanceScore = value.Float64
			}
		case gapvalidationpaper.FieldSupportsGap:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field supports_gap", values[i])
			} else if value.Valid {
				_m.SupportsGap = value.Bool
			}
		case gapvalidationpaper.FieldConflictsWithGap:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field conflicts_with_gap", values[i])
			} else if value.Valid {
				_m.ConflictsWithGap = value.Bool
			}
		case gapvalidationpaper.FieldKeyFindings:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_findings", values[i])
			} else if value.Valid {
				_m.KeyFindings = new(string)
				*_m.KeyFindings = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GapValidationPaper.
// This includes values selected through modifiers, order, etc.
func (_m *GapValidationPaper) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGap queries the "gap" edge of the GapValidationPaper entity.
func (_m *GapValidationPaper) QueryGap() *ResearchGapQuery {
	return NewGapValidationPaperClient(_m.config).QueryGap(_m)
}

// Update returns a builder for updating this GapValidationPaper.
// Note that you need to call GapValidationPaper.Unwrap() before calling this method if this GapValidationPaper
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GapValidationPaper) Update() *GapValidationPaperUpdateOne {
	return NewGapValidationPaperClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GapValidationPaper entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GapValidationPaper) Unwrap() *GapValidationPaper {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GapValidationPaper is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GapValidationPaper) String() string {
	var builder strings.Builder
	builder.WriteString("GapValidationPaper(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("research_gap_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchGapID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Doi; v != nil {
		builder.WriteString("doi=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PublicationDate; v != nil {
		builder.WriteString("publication_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExtractionStatus; v != nil {
		builder.WriteString("extraction_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExtractionError; v != nil {
		builder.WriteString("extraction_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RelevanceScore; v != nil {
		builder.WriteString("relevance_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("supports_gap=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportsGap))
	builder.WriteString(", ")
	builder.WriteString("conflicts_with_gap=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictsWithGap))
	builder.WriteString(", ")
	if v := _m.KeyFindings; v != nil {
		builder.WriteString("key_findings=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// GapValidationPapers is a parsable slice of GapValidationPaper.
type GapValidationPapers []*GapValidationPaper
