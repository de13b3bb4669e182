// Code generated by ent, DO NOT EDIT.

package researchgap

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the researchgap type in the database.
	Label = "research_gap"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGapAnalysisID holds the string denoting the gap_analysis_id field in the database.
	FieldGapAnalysisID = "gap_analysis_id"
	// FieldGapID holds the string denoting the gap_id field in the database.
	FieldGapID = "gap_id"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldValidationConfidence holds the string denoting the validation_confidence field in the database.
	FieldValidationConfidence = "validation_confidence"
	// FieldInitialReasoning holds the string denoting the initial_reasoning field in the database.
	FieldInitialReasoning = "initial_reasoning"
	// FieldInitialEvidence holds the string denoting the initial_evidence field in the database.
	FieldInitialEvidence = "initial_evidence"
	// FieldValidationQuery holds the string denoting the validation_query field in the database.
	FieldValidationQuery = "validation_query"
	// FieldPapersAnalyzedCount holds the string denoting the papers_analyzed_count field in the database.
	FieldPapersAnalyzedCount = "papers_analyzed_count"
	// FieldValidationReasoning holds the string denoting the validation_reasoning field in the database.
	FieldValidationReasoning = "validation_reasoning"
	// FieldModificationHistory holds the string denoting the modification_history field in the database.
	FieldModificationHistory = "modification_history"
	// FieldPotentialImpact holds the string denoting the potential_impact field in the database.
	FieldPotentialImpact = "potential_impact"
	// FieldResearchHints holds the string denoting the research_hints field in the database.
	FieldResearchHints = "research_hints"
	// FieldImplementationSuggestions holds the string denoting the implementation_suggestions field in the database.
	FieldImplementationSuggestions = "implementation_suggestions"
	// FieldRisksAndChallenges holds the string denoting the risks_and_challenges field in the database.
	FieldRisksAndChallenges = "risks_and_challenges"
	// FieldRequiredResources holds the string denoting the required_resources field in the database.
	FieldRequiredResources = "required_resources"
	// FieldEstimatedDifficulty holds the string denoting the estimated_difficulty field in the database.
	FieldEstimatedDifficulty = "estimated_difficulty"
	// FieldEstimatedTimeline holds the string denoting the estimated_timeline field in the database.
	FieldEstimatedTimeline = "estimated_timeline"
	// FieldEvidenceAnchors holds the string denoting the evidence_anchors field in the database.
	FieldEvidenceAnchors = "evidence_anchors"
	// FieldSupportingPapers holds the string denoting the supporting_papers field in the database.
	FieldSupportingPapers = "supporting_papers"
	// FieldConflictingPapers holds the string denoting the conflicting_papers field in the database.
	FieldConflictingPapers = "conflicting_papers"
	// FieldSuggestedTopics holds the string denoting the suggested_topics field in the database.
	FieldSuggestedTopics = "suggested_topics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldValidatedAt holds the string denoting the validated_at field in the database.
	FieldValidatedAt = "validated_at"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// EdgeTopics holds the string denoting the topics edge name in mutations.
	EdgeTopics = "topics"
	// EdgeValidationPapers holds the string denoting the validation_papers edge name in mutations.
	EdgeValidationPapers = "validation_papers"
	// Table holds the table name of the researchgap in the database.
	Table = "research_gaps"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "research_gaps"
	// AnalysisInverseTable is the table name for the GapAnalysis entity.
	// It exists in this package in order to avoid circular dependency with the "gapanalysis" package.
	AnalysisInverseTable = "gap_analyses"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "gap_analysis_id"
	// TopicsTable is the table that holds the topics relation/edge.
	TopicsTable = "gap_topics"
	// TopicsInverseTable is the table name for the GapTopic entity.
	// It exists in this package in order to avoid circular dependency with the "gaptopic" package.
	TopicsInverseTable = "gap_topics"
	// TopicsColumn is the table column denoting the topics relation/edge.
	TopicsColumn = "research_gap_id"
	// ValidationPapersTable is the table that holds the validation_papers relation/edge.
	ValidationPapersTable = "gap_validation_papers"
	// ValidationPapersInverseTable is the table name for the GapValidationPaper entity.
	// It exists in this package in order to avoid circular dependency with the "gapvalidationpaper" package.
	ValidationPapersInverseTable = "gap_validation_papers"
	// ValidationPapersColumn is the table column denoting the validation_papers relation/edge.
	ValidationPapersColumn = "research_gap_id"
)

// Columns holds all SQL columns for researchgap fields.
var Columns = []string{
	FieldID,
	FieldGapAnalysisID,
	FieldGapID,
	FieldOrderIndex,
	FieldName,
	FieldDescription,
	FieldCategory,
	FieldValidationStatus,
	FieldValidationConfidence,
	FieldInitialReasoning,
	FieldInitialEvidence,
	FieldValidationQuery,
	FieldPapersAnalyzedCount,
	FieldValidationReasoning,
	FieldModificationHistory,
	FieldPotentialImpact,
	FieldResearchHints,
	FieldImplementationSuggestions,
	FieldRisksAndChallenges,
	FieldRequiredResources,
	FieldEstimatedDifficulty,
	FieldEstimatedTimeline,
	FieldEvidenceAnchors,
	FieldSupportingPapers,
	FieldConflictingPapers,
	FieldSuggestedTopics,
	FieldCreatedAt,
	FieldValidatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GapIDValidator is a validator for the "gap_id" field. It is called by the builders before save.
	GapIDValidator func(string) error
	// DefaultOrderIndex holds the default value on creation for the "order_index" field.
	DefaultOrderIndex int
	// DefaultPapersAnalyzedCount holds the default value on creation for the "papers_analyzed_count" field.
	DefaultPapersAnalyzedCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ValidationStatus defines the type for the "validation_status" enum field.
type ValidationStatus string

// ValidationStatusINITIAL is the default value of the ValidationStatus enum.
const DefaultValidationStatus = ValidationStatusINITIAL

// ValidationStatus values.
const (
	ValidationStatusINITIAL    ValidationStatus = "INITIAL"
	ValidationStatusVALIDATING ValidationStatus = "VALIDATING"
	ValidationStatusVALID      ValidationStatus = "VALID"
	ValidationStatusINVALID    ValidationStatus = "INVALID"
	ValidationStatusMODIFIED   ValidationStatus = "MODIFIED"
)

func (vs ValidationStatus) String() string {
	return string(vs)
}

// ValidationStatusValidator is a validator for the "validation_status" field enum values. It is called by the builders before save.
func ValidationStatusValidator(vs ValidationStatus) error {
	switch vs {
	case ValidationStatusINITIAL, ValidationStatusVALIDATING, ValidationStatusVALID, ValidationStatusINVALID, ValidationStatusMODIFIED:
		return nil
	default:
		return fmt.Errorf("researchgap: invalid enum value for validation_status field: %q", vs)
	}
}

// OrderOption defines the ordering options for the ResearchGap queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGapAnalysisID orders the results by the gap_analysis_id field.
func ByGapAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapAnalysisID, opts...).ToFunc()
}

// ByGapID orders the results by the gap_id field.
func ByGapID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapID, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByValidationConfidence orders the results by the validation_confidence field.
func ByValidationConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationConfidence, opts...).ToFunc()
}

// ByInitialReasoning orders the results by the initial_reasoning field.
func ByInitialReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialReasoning, opts...).ToFunc()
}

// ByInitialEvidence orders the results by the initial_evidence field.
func ByInitialEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialEvidence, opts...).ToFunc()
}

// ByValidationQuery orders the results by the validation_query field.
func ByValidationQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationQuery, opts...).ToFunc()
}

// ByPapersAnalyzedCount orders the results by the papers_analyzed_count field.
func ByPapersAnalyzedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPapersAnalyzedCount, opts...).ToFunc()
}

// ByValidationReasoning orders the results by the validation_reasoning field.
func ByValidationReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationReasoning, opts...).ToFunc()
}

// ByPotentialImpact orders the results by the potential_impact field.
func ByPotentialImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPotentialImpact, opts...).ToFunc()
}

// ByResearchHints orders the results by the research_hints field.
func ByResearchHints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchHints, opts...).ToFunc()
}

// ByImplementationSuggestions orders the results by the implementation_suggestions field.
func ByImplementationSuggestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImplementationSuggestions, opts...).ToFunc()
}

// ByRisksAndChallenges orders the results by the risks_and_challenges field.
func ByRisksAndChallenges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRisksAndChallenges, opts...).ToFunc()
}

// ByRequiredResources orders the results by the required_resources field.
func ByRequiredResources(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredResources, opts...).ToFunc()
}

// ByEstimatedDifficulty orders the results by the estimated_difficulty field.
func ByEstimatedDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDifficulty, opts...).ToFunc()
}

// ByEstimatedTimeline orders the results by the estimated_timeline field.
func ByEstimatedTimeline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedTimeline, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByValidatedAt orders the results by the validated_at field.
func ByValidatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedAt, opts...).ToFunc()
}

// ByAnalysisField orders the results by analysis field.
func ByAnalysisField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisStep(), sql.OrderByField(field, opts...))
	}
}

// ByTopicsCount orders the results by topics count.
func ByTopicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTopicsStep(), opts...)
	}
}

// ByTopics orders the results by topics terms.
func ByTopics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTopicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByValidationPapersCount orders the results by validation_papers count.
func ByValidationPapersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValidationPapersStep(), opts...)
	}
}

// ByValidationPapers orders the results by validation_papers terms.
func ByValidationPapers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValidationPapersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
	)
}
func newTopicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TopicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TopicsTable, TopicsColumn),
	)
}
func newValidationPapersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValidationPapersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValidationPapersTable, ValidationPapersColumn),
	)
}
