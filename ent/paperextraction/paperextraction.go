// Code generated by ent, DO NOT EDIT.

package paperextraction

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paperextraction type in the database.
	Label = "paper_extraction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPaperID holds the string denoting the paper_id field in the database.
	FieldPaperID = "paper_id"
	// FieldExtractionID holds the string denoting the extraction_id field in the database.
	FieldExtractionID = "extraction_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAbstractText holds the string denoting the abstract_text field in the database.
	FieldAbstractText = "abstract_text"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldExtractionCoverage holds the string denoting the extraction_coverage field in the database.
	FieldExtractionCoverage = "extraction_coverage"
	// EdgeSections holds the string denoting the sections edge name in mutations.
	EdgeSections = "sections"
	// EdgeFigures holds the string denoting the figures edge name in mutations.
	EdgeFigures = "figures"
	// EdgeTables holds the string denoting the tables edge name in mutations.
	EdgeTables = "tables"
	// Table holds the table name of the paperextraction in the database.
	Table = "paper_extractions"
	// SectionsTable is the table that holds the sections relation/edge.
	SectionsTable = "extracted_sections"
	// SectionsInverseTable is the table name for the ExtractedSection entity.
	// It exists in this package in order to avoid circular dependency with the "extractedsection" package.
	SectionsInverseTable = "extracted_sections"
	// SectionsColumn is the table column denoting the sections relation/edge.
	SectionsColumn = "paper_extraction_id"
	// FiguresTable is the table that holds the figures relation/edge.
	FiguresTable = "extracted_figures"
	// FiguresInverseTable is the table name for the ExtractedFigure entity.
	// It exists in this package in order to avoid circular dependency with the "extractedfigure" package.
	FiguresInverseTable = "extracted_figures"
	// FiguresColumn is the table column denoting the figures relation/edge.
	FiguresColumn = "paper_extraction_id"
	// TablesTable is the table that holds the tables relation/edge.
	TablesTable = "extracted_tables"
	// TablesInverseTable is the table name for the ExtractedTable entity.
	// It exists in this package in order to avoid circular dependency with the "extractedtable" package.
	TablesInverseTable = "extracted_tables"
	// TablesColumn is the table column denoting the tables relation/edge.
	TablesColumn = "paper_extraction_id"
)

// Columns holds all SQL columns for paperextraction fields.
var Columns = []string{
	FieldID,
	FieldPaperID,
	FieldExtractionID,
	FieldTitle,
	FieldAbstractText,
	FieldLanguage,
	FieldPageCount,
	FieldExtractionCoverage,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PaperExtraction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPaperID orders the results by the paper_id field.
func ByPaperID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaperID, opts...).ToFunc()
}

// ByExtractionID orders the results by the extraction_id field.
func ByExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAbstractText orders the results by the abstract_text field.
func ByAbstractText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbstractText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByExtractionCoverage orders the results by the extraction_coverage field.
func ByExtractionCoverage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionCoverage, opts...).ToFunc()
}

// BySectionsCount orders the results by sections count.
func BySectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSectionsStep(), opts...)
	}
}

// BySections orders the results by sections terms.
func BySections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFiguresCount orders the results by figures count.
func ByFiguresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFiguresStep(), opts...)
	}
}

// ByFigures orders the results by figures terms.
func ByFigures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFiguresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTablesCount orders the results by tables count.
func ByTablesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTablesStep(), opts...)
	}
}

// ByTables orders the results by tables terms.
func ByTables(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTablesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SectionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SectionsTable, SectionsColumn),
	)
}
func newFiguresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FiguresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FiguresTable, FiguresColumn),
	)
}
func newTablesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TablesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
	)
}
