// Code generated by ent, DO NOT EDIT.

package gapanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the gapanalysis type in the database.
	Label = "gap_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPaperID holds the string denoting the paper_id field in the database.
	FieldPaperID = "paper_id"
	// FieldPaperExtractionID holds the string denoting the paper_extraction_id field in the database.
	FieldPaperExtractionID = "paper_extraction_id"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldTotalGapsIdentified holds the string denoting the total_gaps_identified field in the database.
	FieldTotalGapsIdentified = "total_gaps_identified"
	// FieldValidGapsCount holds the string denoting the valid_gaps_count field in the database.
	FieldValidGapsCount = "valid_gaps_count"
	// FieldInvalidGapsCount holds the string denoting the invalid_gaps_count field in the database.
	FieldInvalidGapsCount = "invalid_gaps_count"
	// FieldModifiedGapsCount holds the string denoting the modified_gaps_count field in the database.
	FieldModifiedGapsCount = "modified_gaps_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeGaps holds the string denoting the gaps edge name in mutations.
	EdgeGaps = "gaps"
	// Table holds the table name of the gapanalysis in the database.
	Table = "gap_analyses"
	// GapsTable is the table that holds the gaps relation/edge.
	GapsTable = "research_gaps"
	// GapsInverseTable is the table name for the ResearchGap entity.
	// It exists in this package in order to avoid circular dependency with the "researchgap" package.
	GapsInverseTable = "research_gaps"
	// GapsColumn is the table column denoting the gaps relation/edge.
	GapsColumn = "gap_analysis_id"
)

// Columns holds all SQL columns for gapanalysis fields.
var Columns = []string{
	FieldID,
	FieldPaperID,
	FieldPaperExtractionID,
	FieldCorrelationID,
	FieldRequestID,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldConfig,
	FieldTotalGapsIdentified,
	FieldValidGapsCount,
	FieldInvalidGapsCount,
	FieldModifiedGapsCount,
	FieldCreatedAt,
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
	// CorrelationIDValidator is a validator for the "correlation_id" field. It is called by the builders before save.
	CorrelationIDValidator func(string) error
	// RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	RequestIDValidator func(string) error
	// DefaultTotalGapsIdentified holds the default value on creation for the "total_gaps_identified" field.
	DefaultTotalGapsIdentified int
	// DefaultValidGapsCount holds the default value on creation for the "valid_gaps_count" field.
	DefaultValidGapsCount int
	// DefaultInvalidGapsCount holds the default value on creation for the "invalid_gaps_count" field.
	DefaultInvalidGapsCount int
	// DefaultModifiedGapsCount holds the default value on creation for the "modified_gaps_count" field.
	DefaultModifiedGapsCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING    Status = "PENDING"
	StatusPROCESSING Status = "PROCESSING"
	StatusCOMPLETED  Status = "COMPLETED"
	StatusFAILED     Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusPROCESSING, StatusCOMPLETED, StatusFAILED:
		return nil
	default:
		return fmt.Errorf("gapanalysis: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the GapAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPaperID orders the results by the paper_id field.
func ByPaperID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaperID, opts...).ToFunc()
}

// ByPaperExtractionID orders the results by the paper_extraction_id field.
func ByPaperExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaperExtractionID, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTotalGapsIdentified orders the results by the total_gaps_identified field.
func ByTotalGapsIdentified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalGapsIdentified, opts...).ToFunc()
}

// ByValidGapsCount orders the results by the valid_gaps_count field.
func ByValidGapsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidGapsCount, opts...).ToFunc()
}

// ByInvalidGapsCount orders the results by the invalid_gaps_count field.
func ByInvalidGapsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvalidGapsCount, opts...).ToFunc()
}

// ByModifiedGapsCount orders the results by the modified_gaps_count field.
func ByModifiedGapsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModifiedGapsCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByGapsCount orders the results by gaps count.
func ByGapsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGapsStep(), opts...)
	}
}

// ByGaps orders the results by gaps terms.
func ByGaps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGapsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newGapsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GapsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GapsTable, GapsColumn),
	)
}
