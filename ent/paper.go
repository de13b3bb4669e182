// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/paper"
)

// Paper is the model entity for the Paper schema.
type Paper struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CorrelationID holds the value of the "correlation_id" field.
	CorrelationID string `json:"correlation_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// AbstractText holds the value of the "abstract_text" field.
	AbstractText *string `json:"abstract_text,omitempty"`
	// PublicationDate holds the value of the "publication_date" field.
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	// Doi holds the value of the "doi" field.
	Doi *string `json:"doi,omitempty"`
	// Source holds the value of the "source" field.
	Source *string `json:"source,omitempty"`
	// PdfContentURL holds the value of the "pdf_content_url" field.
	PdfContentURL *string `json:"pdf_content_url,omitempty"`
	// PdfURL holds the value of the "pdf_url" field.
	PdfURL *string `json:"pdf_url,omitempty"`
	// IsOpenAccess holds the value of the "is_open_access" field.
	IsOpenAccess bool `json:"is_open_access,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Paper) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paper.FieldIsOpenAccess:
			values[i] = new(sql.NullBool)
		case paper.FieldCorrelationID, paper.FieldTitle, paper.FieldAbstractText, paper.FieldDoi, paper.FieldSource, paper.FieldPdfContentURL, paper.FieldPdfURL:
			values[i] = new(sql.NullString)
		case paper.FieldPublicationDate:
			values[i] = new(sql.NullTime)
		case paper.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Paper fields.
func (_m *Paper) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paper.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paper.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case paper.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case paper.FieldAbstractText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field abstract_text", values[i])
			} else if value.Valid {
				_m.AbstractText = new(string)
				*_m.AbstractText = value.String
			}
		case paper.FieldPublicationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field publication_date", values[i])
			} else if value.Valid {
				_m.PublicationDate = new(time.Time)
				*_m.PublicationDate = value.Time
			}
		case paper.FieldDoi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doi", values[i])
			} else if value.Valid {
				_m.Doi = new(string)
				*_m.Doi = value.String
			}
		case paper.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = new(string)
				*_m.Source = value.String
			}
		case paper.FieldPdfContentURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_content_url", values[i])
			} else if value.Valid {
				_m.PdfContentURL = new(string)
				*_m.PdfContentURL = value.String
			}
		case paper.FieldPdfURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_url", values[i])
			} else if value.Valid {
				_m.PdfURL = new(string)
				*_m.PdfURL = value.String
			}
		case paper.FieldIsOpenAccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_open_access", values[i])
			} else if value.Valid {
				_m.IsOpenAccess = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Paper.
// This includes values selected through modifiers, order, etc.
func (_m *Paper) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Paper.
// Note that you need to call Paper.Unwrap() before calling this method if this Paper
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Paper) Update() *PaperUpdateOne {
	return NewPaperClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Paper entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Paper) Unwrap() *Paper {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Paper is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Paper) String() string {
	var builder strings.Builder
	builder.WriteString("Paper(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.AbstractText; v != nil {
		builder.WriteString("abstract_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PublicationDate; v != nil {
		builder.WriteString("publication_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Doi; v != nil {
		builder.WriteString("doi=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Source; v != nil {
		builder.WriteString("source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PdfContentURL; v != nil {
		builder.WriteString("pdf_content_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PdfURL; v != nil {
		builder.WriteString("pdf_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_open_access=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOpenAccess))
	builder.WriteByte(')')
	return builder.String()
}

// Papers is a parsable slice of Paper.
type Papers []*Paper
