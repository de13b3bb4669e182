// Code generated by ent, DO NOT EDIT.

package extractedparagraph

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLTE(FieldID, id))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldSectionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldText, v))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldPage, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldOrderIndex, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...uuid.UUID) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNotIn(FieldSectionID, vs...))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldContainsFold(FieldText, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLTE(FieldPage, v))
}

// PageIsNil applies the IsNil predicate on the "page" field.
func PageIsNil() predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldIsNull(FieldPage))
}

// PageNotNil applies the NotNil predicate on the "page" field.
func PageNotNil() predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNotNull(FieldPage))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.FieldLTE(FieldOrderIndex, v))
}

// HasSection applies the HasEdge predicate on the "section" edge.
func HasSection() predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SectionTable, SectionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSectionWith applies the HasEdge predicate on the "section" edge with a given conditions (other predicates).
func HasSectionWith(preds ...predicate.ExtractedSection) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(func(s *sql.Selector) {
		step := newSectionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedParagraph) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedParagraph) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedParagraph) predicate.ExtractedParagraph {
	return predicate.ExtractedParagraph(sql.NotPredicates(p))
}
