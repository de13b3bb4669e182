// Code generated by ent, DO NOT EDIT.

package extractedfigure

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLTE(FieldID, id))
}

// PaperExtractionID applies equality check predicate on the "paper_extraction_id" field. It's identical to PaperExtractionIDEQ.
func PaperExtractionID(v uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldPaperExtractionID, v))
}

// Caption applies equality check predicate on the "caption" field. It's identical to CaptionEQ.
func Caption(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldCaption, v))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldPage, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldOrderIndex, v))
}

// PaperExtractionIDEQ applies the EQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDEQ(v uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDNEQ applies the NEQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDNEQ(v uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDIn applies the In predicate on the "paper_extraction_id" field.
func PaperExtractionIDIn(vs ...uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIn(FieldPaperExtractionID, vs...))
}

// PaperExtractionIDNotIn applies the NotIn predicate on the "paper_extraction_id" field.
func PaperExtractionIDNotIn(vs ...uuid.UUID) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotIn(FieldPaperExtractionID, vs...))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldContainsFold(FieldLabel, v))
}

// CaptionEQ applies the EQ predicate on the "caption" field.
func CaptionEQ(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldCaption, v))
}

// CaptionNEQ applies the NEQ predicate on the "caption" field.
func CaptionNEQ(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNEQ(FieldCaption, v))
}

// CaptionIn applies the In predicate on the "caption" field.
func CaptionIn(vs ...string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIn(FieldCaption, vs...))
}

// CaptionNotIn applies the NotIn predicate on the "caption" field.
func CaptionNotIn(vs ...string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotIn(FieldCaption, vs...))
}

// CaptionGT applies the GT predicate on the "caption" field.
func CaptionGT(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGT(FieldCaption, v))
}

// CaptionGTE applies the GTE predicate on the "caption" field.
func CaptionGTE(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGTE(FieldCaption, v))
}

// CaptionLT applies the LT predicate on the "caption" field.
func CaptionLT(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLT(FieldCaption, v))
}

// CaptionLTE applies the LTE predicate on the "caption" field.
func CaptionLTE(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLTE(FieldCaption, v))
}

// CaptionContains applies the Contains predicate on the "caption" field.
func CaptionContains(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldContains(FieldCaption, v))
}

// CaptionHasPrefix applies the HasPrefix predicate on the "caption" field.
func CaptionHasPrefix(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldHasPrefix(FieldCaption, v))
}

// CaptionHasSuffix applies the HasSuffix predicate on the "caption" field.
func CaptionHasSuffix(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldHasSuffix(FieldCaption, v))
}

// CaptionIsNil applies the IsNil predicate on the "caption" field.
func CaptionIsNil() predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIsNull(FieldCaption))
}

// CaptionNotNil applies the NotNil predicate on the "caption" field.
func CaptionNotNil() predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotNull(FieldCaption))
}

// CaptionEqualFold applies the EqualFold predicate on the "caption" field.
func CaptionEqualFold(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEqualFold(FieldCaption, v))
}

// CaptionContainsFold applies the ContainsFold predicate on the "caption" field.
func CaptionContainsFold(v string) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldContainsFold(FieldCaption, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLTE(FieldPage, v))
}

// PageIsNil applies the IsNil predicate on the "page" field.
func PageIsNil() predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIsNull(FieldPage))
}

// PageNotNil applies the NotNil predicate on the "page" field.
func PageNotNil() predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotNull(FieldPage))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.FieldLTE(FieldOrderIndex, v))
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.ExtractedFigure {
	return predicate.ExtractedFigure(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.PaperExtraction) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedFigure) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedFigure) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedFigure) predicate.ExtractedFigure {
	return predicate.ExtractedFigure(sql.NotPredicates(p))
}
