// Code generated by ent, DO NOT EDIT.

package paperextraction

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldID, id))
}

// PaperID applies equality check predicate on the "paper_id" field. It's identical to PaperIDEQ.
func PaperID(v uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldPaperID, v))
}

// ExtractionID applies equality check predicate on the "extraction_id" field. It's identical to ExtractionIDEQ.
func ExtractionID(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldExtractionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldTitle, v))
}

// AbstractText applies equality check predicate on the "abstract_text" field. It's identical to AbstractTextEQ.
func AbstractText(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldAbstractText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldLanguage, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldPageCount, v))
}

// ExtractionCoverage applies equality check predicate on the "extraction_coverage" field. It's identical to ExtractionCoverageEQ.
func ExtractionCoverage(v float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldExtractionCoverage, v))
}

// PaperIDEQ applies the EQ predicate on the "paper_id" field.
func PaperIDEQ(v uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldPaperID, v))
}

// PaperIDNEQ applies the NEQ predicate on the "paper_id" field.
func PaperIDNEQ(v uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldPaperID, v))
}

// PaperIDIn applies the In predicate on the "paper_id" field.
func PaperIDIn(vs ...uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldPaperID, vs...))
}

// PaperIDNotIn applies the NotIn predicate on the "paper_id" field.
func PaperIDNotIn(vs ...uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldPaperID, vs...))
}

// PaperIDGT applies the GT predicate on the "paper_id" field.
func PaperIDGT(v uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldPaperID, v))
}

// PaperIDGTE applies the GTE predicate on the "paper_id" field.
func PaperIDGTE(v uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldPaperID, v))
}

// PaperIDLT applies the LT predicate on the "paper_id" field.
func PaperIDLT(v uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldPaperID, v))
}

// PaperIDLTE applies the LTE predicate on the "paper_id" field.
func PaperIDLTE(v uuid.UUID) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldPaperID, v))
}

// ExtractionIDEQ applies the EQ predicate on the "extraction_id" field.
func ExtractionIDEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldExtractionID, v))
}

// ExtractionIDNEQ applies the NEQ predicate on the "extraction_id" field.
func ExtractionIDNEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldExtractionID, v))
}

// ExtractionIDIn applies the In predicate on the "extraction_id" field.
func ExtractionIDIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldExtractionID, vs...))
}

// ExtractionIDNotIn applies the NotIn predicate on the "extraction_id" field.
func ExtractionIDNotIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldExtractionID, vs...))
}

// ExtractionIDGT applies the GT predicate on the "extraction_id" field.
func ExtractionIDGT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldExtractionID, v))
}

// ExtractionIDGTE applies the GTE predicate on the "extraction_id" field.
func ExtractionIDGTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldExtractionID, v))
}

// ExtractionIDLT applies the LT predicate on the "extraction_id" field.
func ExtractionIDLT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldExtractionID, v))
}

// ExtractionIDLTE applies the LTE predicate on the "extraction_id" field.
func ExtractionIDLTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldExtractionID, v))
}

// ExtractionIDContains applies the Contains predicate on the "extraction_id" field.
func ExtractionIDContains(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContains(FieldExtractionID, v))
}

// ExtractionIDHasPrefix applies the HasPrefix predicate on the "extraction_id" field.
func ExtractionIDHasPrefix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasPrefix(FieldExtractionID, v))
}

// ExtractionIDHasSuffix applies the HasSuffix predicate on the "extraction_id" field.
func ExtractionIDHasSuffix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasSuffix(FieldExtractionID, v))
}

// ExtractionIDIsNil applies the IsNil predicate on the "extraction_id" field.
func ExtractionIDIsNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIsNull(FieldExtractionID))
}

// ExtractionIDNotNil applies the NotNil predicate on the "extraction_id" field.
func ExtractionIDNotNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotNull(FieldExtractionID))
}

// ExtractionIDEqualFold applies the EqualFold predicate on the "extraction_id" field.
func ExtractionIDEqualFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEqualFold(FieldExtractionID, v))
}

// ExtractionIDContainsFold applies the ContainsFold predicate on the "extraction_id" field.
func ExtractionIDContainsFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContainsFold(FieldExtractionID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContainsFold(FieldTitle, v))
}

// AbstractTextEQ applies the EQ predicate on the "abstract_text" field.
func AbstractTextEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldAbstractText, v))
}

// AbstractTextNEQ applies the NEQ predicate on the "abstract_text" field.
func AbstractTextNEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldAbstractText, v))
}

// AbstractTextIn applies the In predicate on the "abstract_text" field.
func AbstractTextIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldAbstractText, vs...))
}

// AbstractTextNotIn applies the NotIn predicate on the "abstract_text" field.
func AbstractTextNotIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldAbstractText, vs...))
}

// AbstractTextGT applies the GT predicate on the "abstract_text" field.
func AbstractTextGT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldAbstractText, v))
}

// AbstractTextGTE applies the GTE predicate on the "abstract_text" field.
func AbstractTextGTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldAbstractText, v))
}

// AbstractTextLT applies the LT predicate on the "abstract_text" field.
func AbstractTextLT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldAbstractText, v))
}

// AbstractTextLTE applies the LTE predicate on the "abstract_text" field.
func AbstractTextLTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldAbstractText, v))
}

// AbstractTextContains applies the Contains predicate on the "abstract_text" field.
func AbstractTextContains(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContains(FieldAbstractText, v))
}

// AbstractTextHasPrefix applies the HasPrefix predicate on the "abstract_text" field.
func AbstractTextHasPrefix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasPrefix(FieldAbstractText, v))
}

// AbstractTextHasSuffix applies the HasSuffix predicate on the "abstract_text" field.
func AbstractTextHasSuffix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasSuffix(FieldAbstractText, v))
}

// AbstractTextIsNil applies the IsNil predicate on the "abstract_text" field.
func AbstractTextIsNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIsNull(FieldAbstractText))
}

// AbstractTextNotNil applies the NotNil predicate on the "abstract_text" field.
func AbstractTextNotNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotNull(FieldAbstractText))
}

// AbstractTextEqualFold applies the EqualFold predicate on the "abstract_text" field.
func AbstractTextEqualFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEqualFold(FieldAbstractText, v))
}

// AbstractTextContainsFold applies the ContainsFold predicate on the "abstract_text" field.
func AbstractTextContainsFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContainsFold(FieldAbstractText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldContainsFold(FieldLanguage, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldPageCount, v))
}

// PageCountIsNil applies the IsNil predicate on the "page_count" field.
func PageCountIsNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIsNull(FieldPageCount))
}

// PageCountNotNil applies the NotNil predicate on the "page_count" field.
func PageCountNotNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotNull(FieldPageCount))
}

// ExtractionCoverageEQ applies the EQ predicate on the "extraction_coverage" field.
func ExtractionCoverageEQ(v float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldEQ(FieldExtractionCoverage, v))
}

// ExtractionCoverageNEQ applies the NEQ predicate on the "extraction_coverage" field.
func ExtractionCoverageNEQ(v float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNEQ(FieldExtractionCoverage, v))
}

// ExtractionCoverageIn applies the In predicate on the "extraction_coverage" field.
func ExtractionCoverageIn(vs ...float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIn(FieldExtractionCoverage, vs...))
}

// ExtractionCoverageNotIn applies the NotIn predicate on the "extraction_coverage" field.
func ExtractionCoverageNotIn(vs ...float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotIn(FieldExtractionCoverage, vs...))
}

// ExtractionCoverageGT applies the GT predicate on the "extraction_coverage" field.
func ExtractionCoverageGT(v float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGT(FieldExtractionCoverage, v))
}

// ExtractionCoverageGTE applies the GTE predicate on the "extraction_coverage" field.
func ExtractionCoverageGTE(v float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldGTE(FieldExtractionCoverage, v))
}

// ExtractionCoverageLT applies the LT predicate on the "extraction_coverage" field.
func ExtractionCoverageLT(v float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLT(FieldExtractionCoverage, v))
}

// ExtractionCoverageLTE applies the LTE predicate on the "extraction_coverage" field.
func ExtractionCoverageLTE(v float64) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldLTE(FieldExtractionCoverage, v))
}

// ExtractionCoverageIsNil applies the IsNil predicate on the "extraction_coverage" field.
func ExtractionCoverageIsNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldIsNull(FieldExtractionCoverage))
}

// ExtractionCoverageNotNil applies the NotNil predicate on the "extraction_coverage" field.
func ExtractionCoverageNotNil() predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.FieldNotNull(FieldExtractionCoverage))
}

// HasSections applies the HasEdge predicate on the "sections" edge.
func HasSections() predicate.PaperExtraction {
	return predicate.PaperExtraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SectionsTable, SectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSectionsWith applies the HasEdge predicate on the "sections" edge with a given conditions (other predicates).
func HasSectionsWith(preds ...predicate.ExtractedSection) predicate.PaperExtraction {
	return predicate.PaperExtraction(func(s *sql.Selector) {
		step := newSectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFigures applies the HasEdge predicate on the "figures" edge.
func HasFigures() predicate.PaperExtraction {
	return predicate.PaperExtraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FiguresTable, FiguresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFiguresWith applies the HasEdge predicate on the "figures" edge with a given conditions (other predicates).
func HasFiguresWith(preds ...predicate.ExtractedFigure) predicate.PaperExtraction {
	return predicate.PaperExtraction(func(s *sql.Selector) {
		step := newFiguresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTables applies the HasEdge predicate on the "tables" edge.
func HasTables() predicate.PaperExtraction {
	return predicate.PaperExtraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTablesWith applies the HasEdge predicate on the "tables" edge with a given conditions (other predicates).
func HasTablesWith(preds ...predicate.ExtractedTable) predicate.PaperExtraction {
	return predicate.PaperExtraction(func(s *sql.Selector) {
		step := newTablesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaperExtraction) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaperExtraction) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaperExtraction) predicate.PaperExtraction {
	return predicate.PaperExtraction(sql.NotPredicates(p))
}
