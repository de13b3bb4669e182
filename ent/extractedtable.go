// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/paperextraction"
)

// ExtractedTable is the model entity for the ExtractedTable schema.
type ExtractedTable struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PaperExtractionID holds the value of the "paper_extraction_id" field.
	PaperExtractionID uuid.UUID `json:"paper_extraction_id,omitempty"`
	// Label holds the value of the "label" field.
	Label *string `json:"label,omitempty"`
	// Caption holds the value of the "caption" field.
	Caption *string `json:"caption,omitempty"`
	// Page holds the value of the "page" field.
	Page *int `json:"page,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex int `json:"order_index,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedTableQuery when eager-loading is set.
	Edges        ExtractedTableEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedTableEdges holds the relations/edges for other nodes in the graph.
type ExtractedTableEdges struct {
	// Extraction holds the value of the extraction edge.
	Extraction *PaperExtraction `json:"extraction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedTableEdges) ExtractionOrErr() (*PaperExtraction, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: paperextraction.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedTable) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedtable.FieldPage, extractedtable.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case extractedtable.FieldLabel, extractedtable.FieldCaption:
			values[i] = new(sql.NullString)
		case extractedtable.FieldID, extractedtable.FieldPaperExtractionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedTable fields.
func (_m *ExtractedTable) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedtable.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedtable.FieldPaperExtractionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field paper_extraction_id", values[i])
			} else if value != nil {
				_m.PaperExtractionID = *value
			}
		case extractedtable.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = new(string)
				*_m.Label = value.String
			}
		case extractedtable.FieldCaption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caption", values[i])
			} else if value.Valid {
				_m.Caption = new(string)
				*_m.Caption = value.String
			}
		case extractedtable.FieldPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page", values[i])
			} else if value.Valid {
				_m.Page = new(int)
				*_m.Page = int(value.Int64)
			}
		case extractedtable.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedTable.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedTable) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtraction queries the "extraction" edge of the ExtractedTable entity.
func (_m *ExtractedTable) QueryExtraction() *PaperExtractionQuery {
	return NewExtractedTableClient(_m.config).QueryExtraction(_m)
}

// Update returns a builder for updating this ExtractedTable.
// Note that you need to call ExtractedTable.Unwrap() before calling this method if this ExtractedTable
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedTable) Update() *ExtractedTableUpdateOne {
	return NewExtractedTableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedTable entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedTable) Unwrap() *ExtractedTable {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedTable is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedTable) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedTable(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("paper_extraction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaperExtractionID))
	builder.WriteString(", ")
	if v := _m.Label; v != nil {
		builder.WriteString("label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Caption; v != nil {
		builder.WriteString("caption=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Page; v != nil {
		builder.WriteString("page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedTables is a parsable slice of ExtractedTable.
type ExtractedTables []*ExtractedTable
