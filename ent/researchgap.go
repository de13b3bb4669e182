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
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// ResearchGap is the model entity for the ResearchGap schema.
type ResearchGap struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// GapAnalysisID holds the value of the "gap_analysis_id" field.
	GapAnalysisID uuid.UUID `json:"gap_analysis_id,omitempty"`
	// Synthesized as {analysis_id}-{index}-{uuid}
	GapID string `json:"gap_id,omitempty"`
	// Position in the order the model emitted the gaps
	OrderIndex int `json:"order_index,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// theoretical, methodological, empirical, application or interdisciplinary
	Category string `json:"category,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus researchgap.ValidationStatus `json:"validation_status,omitempty"`
	// ValidationConfidence holds the value of the "validation_confidence" field.
	ValidationConfidence *float64 `json:"validation_confidence,omitempty"`
	// InitialReasoning holds the value of the "initial_reasoning" field.
	InitialReasoning *string `json:"initial_reasoning,omitempty"`
	// InitialEvidence holds the value of the "initial_evidence" field.
	InitialEvidence *string `json:"initial_evidence,omitempty"`
	// Search query used to find related literature
	ValidationQuery *string `json:"validation_query,omitempty"`
	// PapersAnalyzedCount holds the value of the "papers_analyzed_count" field.
	PapersAnalyzedCount int `json:"papers_analyzed_count,omitempty"`
	// ValidationReasoning holds the value of the "validation_reasoning" field.
	ValidationReasoning *string `json:"validation_reasoning,omitempty"`
	// ModificationHistory holds the value of the "modification_history" field.
	ModificationHistory []map[string]interface{} `json:"modification_history,omitempty"`
	// PotentialImpact holds the value of the "potential_impact" field.
	PotentialImpact *string `json:"potential_impact,omitempty"`
	// ResearchHints holds the value of the "research_hints" field.
	ResearchHints *string `json:"research_hints,omitempty"`
	// ImplementationSuggestions holds the value of the "implementation_suggestions" field.
	ImplementationSuggestions *string `json:"implementation_suggestions,omitempty"`
	// RisksAndChallenges holds the value of the "risks_and_challenges" field.
	RisksAndChallenges *string `json:"risks_and_challenges,omitempty"`
	// RequiredResources holds the value of the "required_resources" field.
	RequiredResources *string `json:"required_resources,omitempty"`
	// low, medium, high or unknown
	EstimatedDifficulty *string `json:"estimated_difficulty,omitempty"`
	// EstimatedTimeline holds the value of the "estimated_timeline" field.
	EstimatedTimeline *string `json:"estimated_timeline,omitempty"`
	// EvidenceAnchors holds the value of the "evidence_anchors" field.
	EvidenceAnchors []map[string]string `json:"evidence_anchors,omitempty"`
	// SupportingPapers holds the value of the "supporting_papers" field.
	SupportingPapers []map[string]string `json:"supporting_papers,omitempty"`
	// ConflictingPapers holds the value of the "conflicting_papers" field.
	ConflictingPapers []map[string]string `json:"conflicting_papers,omitempty"`
	// Denormalized copy of the topics as published in the response
	SuggestedTopics []map[string]interface{} `json:"suggested_topics,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchGapQuery when eager-loading is set.
	Edges        ResearchGapEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchGapEdges holds the relations/edges for other nodes in the graph.
type ResearchGapEdges struct {
	// Analysis holds the value of the analysis edge.
	Analysis *GapAnalysis `json:"analysis,omitempty"`
	// Topics holds the value of the topics edge.
	Topics []*GapTopic `json:"topics,omitempty"`
	// ValidationPapers holds the value of the validation_papers edge.
	ValidationPapers []*GapValidationPaper `json:"validation_papers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchGapEdges) AnalysisOrErr() (*GapAnalysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: gapanalysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// TopicsOrErr returns the Topics value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchGapEdges) TopicsOrErr() ([]*GapTopic, error) {
	if e.loadedTypes[1] {
		return e.Topics, nil
	}
	return nil, &NotLoadedError{edge: "topics"}
}

// ValidationPapersOrErr returns the ValidationPapers value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchGapEdges) ValidationPapersOrErr() ([]*GapValidationPaper, error) {
	if e.loadedTypes[2] {
		return e.ValidationPapers, nil
	}
	return nil, &NotLoadedError{edge: "validation_papers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchGap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchgap.FieldModificationHistory, researchgap.FieldEvidenceAnchors, researchgap.FieldSupportingPapers, researchgap.FieldConflictingPapers, researchgap.FieldSuggestedTopics:
			values[i] = new([]byte)
		case researchgap.FieldValidationConfidence:
			values[i] = new(sql.NullFloat64)
		case researchgap.FieldOrderIndex, researchgap.FieldPapersAnalyzedCount:
			values[i] = new(sql.NullInt64)
		case researchgap.FieldGapID, researchgap.FieldName, researchgap.FieldDescription, researchgap.FieldCategory, researchgap.FieldValidationStatus, researchgap.FieldInitialReasoning, researchgap.FieldInitialEvidence, researchgap.FieldValidationQuery, researchgap.FieldValidationReasoning, researchgap.FieldPotentialImpact, researchgap.FieldResearchHints, researchgap.FieldImplementationSuggestions, researchgap.FieldRisksAndChallenges, researchgap.FieldRequiredResources, researchgap.FieldEstimatedDifficulty, researchgap.FieldEstimatedTimeline:
			values[i] = new(sql.NullString)
		case researchgap.FieldCreatedAt, researchgap.FieldValidatedAt:
			values[i] = new(sql.NullTime)
		case researchgap.FieldID, researchgap.FieldGapAnalysisID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchGap fields.
func (_m *ResearchGap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchgap.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case researchgap.FieldGapAnalysisID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field gap_analysis_id", values[i])
			} else if value != nil {
				_m.GapAnalysisID = *value
			}
		case researchgap.FieldGapID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gap_id", values[i])
			} else if value.Valid {
				_m.GapID = value.String
			}
		case researchgap.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case researchgap.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case researchgap.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case researchgap.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case researchgap.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = researchgap.ValidationStatus(value.String)
			}
		case researchgap.FieldValidationConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field validation_confidence", values[i])
			} else if value.Valid {
				_m.ValidationConfidence = new(float64)
				*_m.ValidationConfidence = value.Float64
			}
		case researchgap.FieldInitialReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_reasoning", values[i])
			} else if value.Valid {
				_m.InitialReasoning = new(string)
				*_m.InitialReasoning = value.String
			}
		case researchgap.FieldInitialEvidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_evidence", values[i])
			} else if value.Valid {
				_m.InitialEvidence = new(string)
				*_m.InitialEvidence = value.String
			}
		case researchgap.FieldValidationQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_query", values[i])
			} else if value.Valid {
				_m.ValidationQuery = new(string)
				*_m.ValidationQuery = value.String
			}
		case researchgap.FieldPapersAnalyzedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field papers_analyzed_count", values[i])
			} else if value.Valid {
				_m.PapersAnalyzedCount = int(value.Int64)
			}
		case researchgap.FieldValidationReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_reasoning", values[i])
			} else if value.Valid {
				_m.ValidationReasoning = new(string)
				*_m.ValidationReasoning = value.String
			}
		case researchgap.FieldModificationHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modification_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModificationHistory); err != nil {
					return fmt.Errorf("unmarshal field modification_history: %w", err)
				}
			}
		case researchgap.FieldPotentialImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field potential_impact", values[i])
			} else if value.Valid {
				_m.PotentialImpact = new(string)
				*_m.PotentialImpact = value.String
			}
		case researchgap.FieldResearchHints:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field research_hints", values[i])
			} else if value.Valid {
				_m.ResearchHints = new(string)
				*_m.ResearchHints = value.String
			}
		case researchgap.FieldImplementationSuggestions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field implementation_suggestions", values[i])
			} else if value.Valid {
				_m.ImplementationSuggestions = new(string)
				*_m.ImplementationSuggestions = value.String
			}
		case researchgap.FieldRisksAndChallenges:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risks_and_challenges", values[i])
			} else if value.Valid {
				_m.RisksAndChallenges = new(string)
				*_m.RisksAndChallenges = value.String
			}
		case researchgap.FieldRequiredResources:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field required_resources", values[i])
			} else if value.Valid {
				_m.RequiredResources = new(string)
				*_m.RequiredResources = value.String
			}
		case researchgap.FieldEstimatedDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_difficulty", values[i])
			} else if value.Valid {
				_m.EstimatedDifficulty = new(string)
				*_m.EstimatedDifficulty = value.String
			}
		case researchgap.FieldEstimatedTimeline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_timeline", values[i])
			} else if value.Valid {
				_m.EstimatedTimeline = new(string)
				*_m.EstimatedTimeline = value.String
			}
		case researchgap.FieldEvidenceAnchors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_anchors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvidenceAnchors); err != nil {
					return fmt.Errorf("unmarshal field evidence_anchors: %w", err)
				}
			}
		case researchgap.FieldSupportingPapers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field supporting_papers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SupportingPapers); err != nil {
					return fmt.Errorf("unmarshal field supporting_papers: %w", err)
				}
			}
		case researchgap.FieldConflictingPapers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conflicting_papers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConflictingPapers); err != nil {
					return fmt.Errorf("unmarshal field conflicting_papers: %w", err)
				}
			}
		case researchgap.FieldSuggestedTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuggestedTopics); err != nil {
					return fmt.Errorf("unmarshal field suggested_topics: %w", err)
				}
			}
		case researchgap.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchgap.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchGap.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchGap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalysis queries the "analysis" edge of the ResearchGap entity.
func (_m *ResearchGap) QueryAnalysis() *GapAnalysisQuery {
	return NewResearchGapClient(_m.config).QueryAnalysis(_m)
}

// QueryTopics queries the "topics" edge of the ResearchGap entity.
func (_m *ResearchGap) QueryTopics() *GapTopicQuery {
	return NewResearchGapClient(_m.config).QueryTopics(_m)
}

// QueryValidationPapers queries the "validation_papers" edge of the ResearchGap entity.
func (_m *ResearchGap) QueryValidationPapers() *GapValidationPaperQuery {
	return NewResearchGapClient(_m.config).QueryValidationPapers(_m)
}

// Update returns a builder for updating this ResearchGap.
// Note that you need to call ResearchGap.Unwrap() before calling this method if this ResearchGap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchGap) Update() *ResearchGapUpdateOne {
	return NewResearchGapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchGap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchGap) Unwrap() *ResearchGap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchGap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchGap) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchGap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("gap_analysis_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapAnalysisID))
	builder.WriteString(", ")
	builder.WriteString("gap_id=")
	builder.WriteString(_m.GapID)
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationStatus))
	builder.WriteString(", ")
	if v := _m.ValidationConfidence; v != nil {
		builder.WriteString("validation_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.InitialReasoning; v != nil {
		builder.WriteString("initial_reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InitialEvidence; v != nil {
		builder.WriteString("initial_evidence=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidationQuery; v != nil {
		builder.WriteString("validation_query=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("papers_analyzed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PapersAnalyzedCount))
	builder.WriteString(", ")
	if v := _m.ValidationReasoning; v != nil {
		builder.WriteString("validation_reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("modification_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModificationHistory))
	builder.WriteString(", ")
	if v := _m.PotentialImpact; v != nil {
		builder.WriteString("potential_impact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResearchHints; v != nil {
		builder.WriteString("research_hints=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImplementationSuggestions; v != nil {
		builder.WriteString("implementation_suggestions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RisksAndChallenges; v != nil {
		builder.WriteString("risks_and_challenges=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RequiredResources; v != nil {
		builder.WriteString("required_resources=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EstimatedDifficulty; v != nil {
		builder.WriteString("estimated_difficulty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EstimatedTimeline; v != nil {
		builder.WriteString("estimated_timeline=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("evidence_anchors=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceAnchors))
	builder.WriteString(", ")
	builder.WriteString("supporting_papers=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportingPapers))
	builder.WriteString(", ")
	builder.WriteString("conflicting_papers=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConflictingPapers))
	builder.WriteString(", ")
	builder.WriteString("suggested_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuggestedTopics))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResearchGaps is a parsable slice of ResearchGap.
type ResearchGaps []*ResearchGap
