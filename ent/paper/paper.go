// Code generated by ent, DO NOT EDIT.

package paper

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paper type in the database.
	Label = "paper"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAbstractText holds the string denoting the abstract_text field in the database.
	FieldAbstractText = "abstract_text"
	// FieldPublicationDate holds the string denoting the publication_date field in the database.
	FieldPublicationDate = "publication_date"
	// FieldDoi holds the string denoting the doi field in the database.
	FieldDoi = "doi"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldPdfContentURL holds the string denoting the pdf_content_url field in the database.
	FieldPdfContentURL = "pdf_content_url"
	// FieldPdfURL holds the string denoting the pdf_url field in the database.
	FieldPdfURL = "pdf_url"
	// FieldIsOpenAccess holds the string denoting the is_open_access field in the database.
	FieldIsOpenAccess = "is_open_access"
	// Table holds the table name of the paper in the database.
	Table = "papers"
)

// Columns holds all SQL columns for paper fields.
var Columns = []string{
	FieldID,
	FieldCorrelationID,
	FieldTitle,
	FieldAbstractText,
	FieldPublicationDate,
	FieldDoi,
	FieldSource,
	FieldPdfContentURL,
	FieldPdfURL,
	FieldIsOpenAccess,
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
	// DefaultIsOpenAccess holds the default value on creation for the "is_open_access" field.
	DefaultIsOpenAccess bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Paper queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAbstractText orders the results by the abstract_text field.
func ByAbstractText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbstractText, opts...).ToFunc()
}

// ByPublicationDate orders the results by the publication_date field.
func ByPublicationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicationDate, opts...).ToFunc()
}

// ByDoi orders the results by the doi field.
func ByDoi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoi, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByPdfContentURL orders the results by the pdf_content_url field.
func ByPdfContentURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfContentURL, opts...).ToFunc()
}

// ByPdfURL orders the results by the pdf_url field.
func ByPdfURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfURL, opts...).ToFunc()
}

// ByIsOpenAccess orders the results by the is_open_access field.
func ByIsOpenAccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOpenAccess, opts...).ToFunc()
}
