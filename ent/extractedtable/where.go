// Code generated by ent, DO NOT EDIT.

package extractedtable

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLTE(FieldID, id))
}

// PaperExtractionID applies equality check predicate on the "paper_extraction_id" field. It's identical to PaperExtractionIDEQ.
func PaperExtractionID(v uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldPaperExtractionID, v))
}

// Caption applies equality check predicate on the "caption" field. It's identical to CaptionEQ.
func Caption(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldCaption, v))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldPage, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldOrderIndex, v))
}

// PaperExtractionIDEQ applies the EQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDEQ(v uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDNEQ applies the NEQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDNEQ(v uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDIn applies the In predicate on the "paper_extraction_id" field.
func PaperExtractionIDIn(vs ...uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIn(FieldPaperExtractionID, vs...))
}

// PaperExtractionIDNotIn applies the NotIn predicate on the "paper_extraction_id" field.
func PaperExtractionIDNotIn(vs ...uuid.UUID) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotIn(FieldPaperExtractionID, vs...))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldContainsFold(FieldLabel, v))
}

// CaptionEQ applies the EQ predicate on the "caption" field.
func CaptionEQ(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldCaption, v))
}

// CaptionNEQ applies the NEQ predicate on the "caption" field.
func CaptionNEQ(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNEQ(FieldCaption, v))
}

// CaptionIn applies the In predicate on the "caption" field.
func CaptionIn(vs ...string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIn(FieldCaption, vs...))
}

// CaptionNotIn applies the NotIn predicate on the "caption" field.
func CaptionNotIn(vs ...string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotIn(FieldCaption, vs...))
}

// CaptionGT applies the GT predicate on the "caption" field.
func CaptionGT(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGT(FieldCaption, v))
}

// CaptionGTE applies the GTE predicate on the "caption" field.
func CaptionGTE(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGTE(FieldCaption, v))
}

// CaptionLT applies the LT predicate on the "caption" field.
func CaptionLT(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLT(FieldCaption, v))
}

// CaptionLTE applies the LTE predicate on the "caption" field.
func CaptionLTE(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLTE(FieldCaption, v))
}

// CaptionContains applies the Contains predicate on the "caption" field.
func CaptionContains(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldContains(FieldCaption, v))
}

// CaptionHasPrefix applies the HasPrefix predicate on the "caption" field.
func CaptionHasPrefix(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldHasPrefix(FieldCaption, v))
}

// CaptionHasSuffix applies the HasSuffix predicate on the "caption" field.
func CaptionHasSuffix(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldHasSuffix(FieldCaption, v))
}

// CaptionIsNil applies the IsNil predicate on the "caption" field.
func CaptionIsNil() predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIsNull(FieldCaption))
}

// CaptionNotNil applies the NotNil predicate on the "caption" field.
func CaptionNotNil() predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotNull(FieldCaption))
}

// CaptionEqualFold applies the EqualFold predicate on the "caption" field.
func CaptionEqualFold(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEqualFold(FieldCaption, v))
}

// CaptionContainsFold applies the ContainsFold predicate on the "caption" field.
func CaptionContainsFold(v string) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldContainsFold(FieldCaption, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLTE(FieldPage, v))
}

// PageIsNil applies the IsNil predicate on the "page" field.
func PageIsNil() predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIsNull(FieldPage))
}

// PageNotNil applies the NotNil predicate on the "page" field.
func PageNotNil() predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotNull(FieldPage))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.FieldLTE(FieldOrderIndex, v))
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.ExtractedTable {
	return predicate.ExtractedTable(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.PaperExtraction) predicate.ExtractedTable {
	return predicate.ExtractedTable(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedTable) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedTable) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedTable) predicate.ExtractedTable {
	return predicate.ExtractedTable(sql.NotPredicates(p))
}
