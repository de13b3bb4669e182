// Code generated by ent, DO NOT EDIT.

package gaptopic

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the gaptopic type in the database.
	Label = "gap_topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResearchGapID holds the string denoting the research_gap_id field in the database.
	FieldResearchGapID = "research_gap_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldResearchQuestions holds the string denoting the research_questions field in the database.
	FieldResearchQuestions = "research_questions"
	// FieldMethodologySuggestions holds the string denoting the methodology_suggestions field in the database.
	FieldMethodologySuggestions = "methodology_suggestions"
	// FieldExpectedOutcomes holds the string denoting the expected_outcomes field in the database.
	FieldExpectedOutcomes = "expected_outcomes"
	// FieldRelevanceScore holds the string denoting the relevance_score field in the database.
	FieldRelevanceScore = "relevance_score"
	// EdgeGap holds the string denoting the gap edge name in mutations.
	EdgeGap = "gap"
	// Table holds the table name of the gaptopic in the database.
	Table = "gap_topics"
	// GapTable is the table that holds the gap relation/edge.
	GapTable = "gap_topics"
	// GapInverseTable is the table name for the ResearchGap entity.
	// It exists in this package in order to avoid circular dependency with the "researchgap" package.
	GapInverseTable = "research_gaps"
	// GapColumn is the table column denoting the gap relation/edge.
	GapColumn = "research_gap_id"
)

// Columns holds all SQL columns for gaptopic fields.
var Columns = []string{
	FieldID,
	FieldResearchGapID,
	FieldTitle,
	FieldDescription,
	FieldResearchQuestions,
	FieldMethodologySuggestions,
	FieldExpectedOutcomes,
	FieldRelevanceScore,
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
	// DefaultRelevanceScore holds the default value on creation for the "relevance_score" field.
	DefaultRelevanceScore float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GapTopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResearchGapID orders the results by the research_gap_id field.
func ByResearchGapID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchGapID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMethodologySuggestions orders the results by the methodology_suggestions field.
func ByMethodologySuggestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethodologySuggestions, opts...).ToFunc()
}

// ByExpectedOutcomes orders the results by the expected_outcomes field.
func ByExpectedOutcomes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedOutcomes, opts...).ToFunc()
}

// ByRelevanceScore orders the results by the relevance_score field.
func ByRelevanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceScore, opts...).ToFunc()
}

// ByGapField orders the results by gap field.
func ByGapField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGapStep(), sql.OrderByField(field, opts...))
	}
}
func newGapStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GapInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GapTable, GapColumn),
	)
}
