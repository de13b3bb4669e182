// Code generated by ent, DO NOT EDIT.

package extractedfigure

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedfigure type in the database.
	Label = "extracted_figure"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPaperExtractionID holds the string denoting the paper_extraction_id field in the database.
	FieldPaperExtractionID = "paper_extraction_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldCaption holds the string denoting the caption field in the database.
	FieldCaption = "caption"
	// FieldPage holds the string denoting the page field in the database.
	FieldPage = "page"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// EdgeExtraction holds the string denoting the extraction edge name in mutations.
	EdgeExtraction = "extraction"
	// Table holds the table name of the extractedfigure in the database.
	Table = "extracted_figures"
	// ExtractionTable is the table that holds the extraction relation/edge.
	ExtractionTable = "extracted_figures"
	// ExtractionInverseTable is the table name for the PaperExtraction entity.
	// It exists in this package in order to avoid circular dependency with the "paperextraction" package.
	ExtractionInverseTable = "paper_extractions"
	// ExtractionColumn is the table column denoting the extraction relation/edge.
	ExtractionColumn = "paper_extraction_id"
)

// Columns holds all SQL columns for extractedfigure fields.
var Columns = []string{
	FieldID,
	FieldPaperExtractionID,
	FieldLabel,
	FieldCaption,
	FieldPage,
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

// OrderOption defines the ordering options for the ExtractedFigure queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPaperExtractionID orders the results by the paper_extraction_id field.
func ByPaperExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaperExtractionID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByCaption orders the results by the caption field.
func ByCaption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaption, opts...).ToFunc()
}

// ByPage orders the results by the page field.
func ByPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPage, opts...).ToFunc()
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
func newExtractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
	)
}
