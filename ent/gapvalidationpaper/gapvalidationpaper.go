// Code generated by ent, DO NOT EDIT.

package gapvalidationpaper

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the gapvalidationpaper type in the database.
	Label = "gap_validation_paper"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResearchGapID holds the string denoting the research_gap_id field in the database.
	FieldResearchGapID = "research_gap_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDoi holds the string denoting the doi field in the database.
	FieldDoi = "doi"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldPublicationDate holds the string denoting the publication_date field in the database.
	FieldPublicationDate = "publication_date"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldExtractionError holds the string denoting the extraction_error field in the database.
	FieldExtractionError = "extraction_error"
	// FieldRelevanceScore holds the string denoting the relevance_score field in the database.
	FieldRelevanceScore = "relevance_score"
	// FieldSupportsGap holds the string denoting the supports_gap field in the database.
	FieldSupportsGap = "supports_gap"
	// FieldConflictsWithGap holds the string denoting the conflicts_with_gap field in the database.
	FieldConflictsWithGap = "conflicts_with_gap"
	// FieldKeyFindings holds the string denoting the key_findings field in the database.
	FieldKeyFindings = "key_findings"
	// EdgeGap holds the string denoting the gap edge name in mutations.
	EdgeGap = "gap"
	// Table holds the table name of the gapvalidationpaper in the database.
	Table = "gap_validation_papers"
	// GapTable is the table that holds the gap relation/edge.
	GapTable = "gap_validation_papers"
	// GapInverseTable is the table name for the ResearchGap entity.
	// It exists in this package in order to avoid circular dependency with the "researchgap" package.
	GapInverseTable = "research_gaps"
	// GapColumn is the table column denoting the gap relation/edge.
	GapColumn = "research_gap_id"
)

// Columns holds all SQL columns for gapvalidationpaper fields.
var Columns = []string{
	FieldID,
	FieldResearchGapID,
	FieldTitle,
	FieldDoi,
	FieldURL,
	FieldPublicationDate,
	FieldExtractionStatus,
	FieldExtractedText,
	FieldExtractionError,
	FieldRelevanceScore,
	FieldSupportsGap,
	FieldConflictsWithGap,
	FieldKeyFindings,
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
	// DefaultSupportsGap holds the default value on creation for the "supports_gap" field.
	DefaultSupportsGap bool
	// DefaultConflictsWithGap holds the default value on creation for the "conflicts_with_gap" field.
	DefaultConflictsWithGap bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GapValidationPaper queries.
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

// ByDoi orders the results by the doi field.
func ByDoi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoi, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByPublicationDate orders the results by the publication_date field.
func ByPublicationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicationDate, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByExtractionError orders the results by the extraction_error field.
func ByExtractionError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionError, opts...).ToFunc()
}

// ByRelevanceScore orders the results by the relevance_score field.
func ByRelevanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevanceScore, opts...).ToFunc()
}

// BySupportsGap orders the results by the supports_gap field.
func BySupportsGap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupportsGap, opts...).ToFunc()
}

// ByConflictsWithGap orders the results by the conflicts_with_gap field.
func ByConflictsWithGap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictsWithGap, opts...).ToFunc()
}

// ByKeyFindings orders the results by the key_findings field.
func ByKeyFindings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyFindings, opts...).ToFunc()
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
