// Code generated by ent, DO NOT EDIT.

package extractedsection

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLTE(FieldID, id))
}

// PaperExtractionID applies equality check predicate on the "paper_extraction_id" field. It's identical to PaperExtractionIDEQ.
func PaperExtractionID(v uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldPaperExtractionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldTitle, v))
}

// SectionType applies equality check predicate on the "section_type" field. It's identical to SectionTypeEQ.
func SectionType(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldSectionType, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldLevel, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldOrderIndex, v))
}

// PaperExtractionIDEQ applies the EQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDEQ(v uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDNEQ applies the NEQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDNEQ(v uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDIn applies the In predicate on the "paper_extraction_id" field.
func PaperExtractionIDIn(vs ...uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIn(FieldPaperExtractionID, vs...))
}

// PaperExtractionIDNotIn applies the NotIn predicate on the "paper_extraction_id" field.
func PaperExtractionIDNotIn(vs ...uuid.UUID) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotIn(FieldPaperExtractionID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldContainsFold(FieldTitle, v))
}

// SectionTypeEQ applies the EQ predicate on the "section_type" field.
func SectionTypeEQ(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldSectionType, v))
}

// SectionTypeNEQ applies the NEQ predicate on the "section_type" field.
func SectionTypeNEQ(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNEQ(FieldSectionType, v))
}

// SectionTypeIn applies the In predicate on the "section_type" field.
func SectionTypeIn(vs ...string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIn(FieldSectionType, vs...))
}

// SectionTypeNotIn applies the NotIn predicate on the "section_type" field.
func SectionTypeNotIn(vs ...string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotIn(FieldSectionType, vs...))
}

// SectionTypeGT applies the GT predicate on the "section_type" field.
func SectionTypeGT(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGT(FieldSectionType, v))
}

// SectionTypeGTE applies the GTE predicate on the "section_type" field.
func SectionTypeGTE(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGTE(FieldSectionType, v))
}

// SectionTypeLT applies the LT predicate on the "section_type" field.
func SectionTypeLT(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLT(FieldSectionType, v))
}

// SectionTypeLTE applies the LTE predicate on the "section_type" field.
func SectionTypeLTE(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLTE(FieldSectionType, v))
}

// SectionTypeContains applies the Contains predicate on the "section_type" field.
func SectionTypeContains(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldContains(FieldSectionType, v))
}

// SectionTypeHasPrefix applies the HasPrefix predicate on the "section_type" field.
func SectionTypeHasPrefix(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldHasPrefix(FieldSectionType, v))
}

// SectionTypeHasSuffix applies the HasSuffix predicate on the "section_type" field.
func SectionTypeHasSuffix(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldHasSuffix(FieldSectionType, v))
}

// SectionTypeIsNil applies the IsNil predicate on the "section_type" field.
func SectionTypeIsNil() predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIsNull(FieldSectionType))
}

// SectionTypeNotNil applies the NotNil predicate on the "section_type" field.
func SectionTypeNotNil() predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotNull(FieldSectionType))
}

// SectionTypeEqualFold applies the EqualFold predicate on the "section_type" field.
func SectionTypeEqualFold(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEqualFold(FieldSectionType, v))
}

// SectionTypeContainsFold applies the ContainsFold predicate on the "section_type" field.
func SectionTypeContainsFold(v string) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldContainsFold(FieldSectionType, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLTE(FieldLevel, v))
}

// LevelIsNil applies the IsNil predicate on the "level" field.
func LevelIsNil() predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIsNull(FieldLevel))
}

// LevelNotNil applies the NotNil predicate on the "level" field.
func LevelNotNil() predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotNull(FieldLevel))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.FieldLTE(FieldOrderIndex, v))
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.ExtractedSection {
	return predicate.ExtractedSection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.PaperExtraction) predicate.ExtractedSection {
	return predicate.ExtractedSection(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParagraphs applies the HasEdge predicate on the "paragraphs" edge.
func HasParagraphs() predicate.ExtractedSection {
	return predicate.ExtractedSection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParagraphsTable, ParagraphsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParagraphsWith applies the HasEdge predicate on the "paragraphs" edge with a given conditions (other predicates).
func HasParagraphsWith(preds ...predicate.ExtractedParagraph) predicate.ExtractedSection {
	return predicate.ExtractedSection(func(s *sql.Selector) {
		step := newParagraphsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedSection) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedSection) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedSection) predicate.ExtractedSection {
	return predicate.ExtractedSection(sql.NotPredicates(p))
}
