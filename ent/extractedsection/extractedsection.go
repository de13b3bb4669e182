// Code generated by ent, DO NOT EDIT.

package extractedsection

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedsection type in the database.
	Label = "extracted_section"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPaperExtractionID holds the string denoting the paper_extraction_id field in the database.
	FieldPaperExtractionID = "paper_extraction_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSectionType holds the string denoting the section_type field in the database.
	FieldSectionType = "section_type"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// EdgeExtraction holds the string denoting the extraction edge name in mutations.
	EdgeExtraction = "extraction"
	// EdgeParagraphs holds the string denoting the paragraphs edge name in mutations.
	EdgeParagraphs = "paragraphs"
	// Table holds the table name of the extractedsection in the database.
	Table = "extracted_sections"
	// ExtractionTable is the table that holds the extraction relation/edge.
	ExtractionTable = "extracted_sections"
	// ExtractionInverseTable is the table name for the PaperExtraction entity.
	// It exists in this package in order to avoid circular dependency with the "paperextraction" package.
	ExtractionInverseTable = "paper_extractions"
	// ExtractionColumn is the table column denoting the extraction relation/edge.
	ExtractionColumn = "paper_extraction_id"
	// ParagraphsTable is the table that holds the paragraphs relation/edge.
	ParagraphsTable = "extracted_paragraphs"
	// ParagraphsInverseTable is the table name for the ExtractedParagraph entity.
	// It exists in this package in order to avoid circular dependency with the "extractedparagraph" package.
	ParagraphsInverseTable = "extracted_paragraphs"
	// ParagraphsColumn is the table column denoting the paragraphs relation/edge.
	ParagraphsColumn = "section_id"
)

// Columns holds all SQL columns for extractedsection fields.
var Columns = []string{
	FieldID,
	FieldPaperExtractionID,
	FieldTitle,
	FieldSectionType,
	FieldLevel,
	FieldOrderIndex,
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
	// DefaultOrderIndex holds the default value on creation for the "order_index" field.
	DefaultOrderIndex int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedSection queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPaperExtractionID orders the results by the paper_extraction_id field.
func ByPaperExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaperExtractionID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySectionType orders the results by the section_type field.
func BySectionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionType, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByExtractionField orders the results by extraction field.
func ByExtractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionStep(), sql.OrderByField(field, opts...))
	}
}

// ByParagraphsCount orders the results by paragraphs count.
func ByParagraphsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParagraphsStep(), opts...)
	}
}

// ByParagraphs orders the results by paragraphs terms.
func ByParagraphs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParagraphsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExtractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
	)
}
func newParagraphsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParagraphsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParagraphsTable, ParagraphsColumn),
	)
}
