// Code generated by ent, DO NOT EDIT.

package gapvalidationpaper

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldID, id))
}

// ResearchGapID applies equality check predicate on the "research_gap_id" field. It's identical to ResearchGapIDEQ.
func ResearchGapID(v uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldResearchGapID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldTitle, v))
}

// Doi applies equality check predicate on the "doi" field. It's identical to DoiEQ.
func Doi(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldDoi, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldURL, v))
}

// PublicationDate applies equality check predicate on the "publication_date" field. It's identical to PublicationDateEQ.
func PublicationDate(v time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldPublicationDate, v))
}

// ExtractionStatus applies equality check predicate on the "extraction_status" field. It's identical to ExtractionStatusEQ.
func ExtractionStatus(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractionError applies equality check predicate on the "extraction_error" field. It's identical to ExtractionErrorEQ.
func ExtractionError(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldExtractionError, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldRelevanceScore, v))
}

// SupportsGap applies equality check predicate on the "supports_gap" field. It's identical to SupportsGapEQ.
func SupportsGap(v bool) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldSupportsGap, v))
}

// ConflictsWithGap applies equality check predicate on the "conflicts_with_gap" field. It's identical to ConflictsWithGapEQ.
func ConflictsWithGap(v bool) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldConflictsWithGap, v))
}

// KeyFindings applies equality check predicate on the "key_findings" field. It's identical to KeyFindingsEQ.
func KeyFindings(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldKeyFindings, v))
}

// ResearchGapIDEQ applies the EQ predicate on the "research_gap_id" field.
func ResearchGapIDEQ(v uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldResearchGapID, v))
}

// ResearchGapIDNEQ applies the NEQ predicate on the "research_gap_id" field.
func ResearchGapIDNEQ(v uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldResearchGapID, v))
}

// ResearchGapIDIn applies the In predicate on the "research_gap_id" field.
func ResearchGapIDIn(vs ...uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldResearchGapID, vs...))
}

// ResearchGapIDNotIn applies the NotIn predicate on the "research_gap_id" field.
func ResearchGapIDNotIn(vs ...uuid.UUID) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldResearchGapID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContainsFold(FieldTitle, v))
}

// DoiEQ applies the EQ predicate on the "doi" field.
func DoiEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldDoi, v))
}

// DoiNEQ applies the NEQ predicate on the "doi" field.
func DoiNEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldDoi, v))
}

// DoiIn applies the In predicate on the "doi" field.
func DoiIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldDoi, vs...))
}

// DoiNotIn applies the NotIn predicate on the "doi" field.
func DoiNotIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldDoi, vs...))
}

// DoiGT applies the GT predicate on the "doi" field.
func DoiGT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldDoi, v))
}

// DoiGTE applies the GTE predicate on the "doi" field.
func DoiGTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldDoi, v))
}

// DoiLT applies the LT predicate on the "doi" field.
func DoiLT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldDoi, v))
}

// DoiLTE applies the LTE predicate on the "doi" field.
func DoiLTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldDoi, v))
}

// DoiContains applies the Contains predicate on the "doi" field.
func DoiContains(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContains(FieldDoi, v))
}

// DoiHasPrefix applies the HasPrefix predicate on the "doi" field.
func DoiHasPrefix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasPrefix(FieldDoi, v))
}

// DoiHasSuffix applies the HasSuffix predicate on the "doi" field.
func DoiHasSuffix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasSuffix(FieldDoi, v))
}

// DoiIsNil applies the IsNil predicate on the "doi" field.
func DoiIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldDoi))
}

// DoiNotNil applies the NotNil predicate on the "doi" field.
func DoiNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldDoi))
}

// DoiEqualFold applies the EqualFold predicate on the "doi" field.
func DoiEqualFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEqualFold(FieldDoi, v))
}

// DoiContainsFold applies the ContainsFold predicate on the "doi" field.
func DoiContainsFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContainsFold(FieldDoi, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContainsFold(FieldURL, v))
}

// PublicationDateEQ applies the EQ predicate on the "publication_date" field.
func PublicationDateEQ(v time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldPublicationDate, v))
}

// PublicationDateNEQ applies the NEQ predicate on the "publication_date" field.
func PublicationDateNEQ(v time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldPublicationDate, v))
}

// PublicationDateIn applies the In predicate on the "publication_date" field.
func PublicationDateIn(vs ...time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldPublicationDate, vs...))
}

// PublicationDateNotIn applies the NotIn predicate on the "publication_date" field.
func PublicationDateNotIn(vs ...time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldPublicationDate, vs...))
}

// PublicationDateGT applies the GT predicate on the "publication_date" field.
func PublicationDateGT(v time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldPublicationDate, v))
}

// PublicationDateGTE applies the GTE predicate on the "publication_date" field.
func PublicationDateGTE(v time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldPublicationDate, v))
}

// PublicationDateLT applies the LT predicate on the "publication_date" field.
func PublicationDateLT(v time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldPublicationDate, v))
}

// PublicationDateLTE applies the LTE predicate on the "publication_date" field.
func PublicationDateLTE(v time.Time) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldPublicationDate, v))
}

// PublicationDateIsNil applies the IsNil predicate on the "publication_date" field.
func PublicationDateIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldPublicationDate))
}

// PublicationDateNotNil applies the NotNil predicate on the "publication_date" field.
func PublicationDateNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldPublicationDate))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusGT applies the GT predicate on the "extraction_status" field.
func ExtractionStatusGT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldExtractionStatus, v))
}

// ExtractionStatusGTE applies the GTE predicate on the "extraction_status" field.
func ExtractionStatusGTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldExtractionStatus, v))
}

// ExtractionStatusLT applies the LT predicate on the "extraction_status" field.
func ExtractionStatusLT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldExtractionStatus, v))
}

// ExtractionStatusLTE applies the LTE predicate on the "extraction_status" field.
func ExtractionStatusLTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldExtractionStatus, v))
}

// ExtractionStatusContains applies the Contains predicate on the "extraction_status" field.
func ExtractionStatusContains(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContains(FieldExtractionStatus, v))
}

// ExtractionStatusHasPrefix applies the HasPrefix predicate on the "extraction_status" field.
func ExtractionStatusHasPrefix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasPrefix(FieldExtractionStatus, v))
}

// ExtractionStatusHasSuffix applies the HasSuffix predicate on the "extraction_status" field.
func ExtractionStatusHasSuffix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasSuffix(FieldExtractionStatus, v))
}

// ExtractionStatusIsNil applies the IsNil predicate on the "extraction_status" field.
func ExtractionStatusIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldExtractionStatus))
}

// ExtractionStatusNotNil applies the NotNil predicate on the "extraction_status" field.
func ExtractionStatusNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldExtractionStatus))
}

// ExtractionStatusEqualFold applies the EqualFold predicate on the "extraction_status" field.
func ExtractionStatusEqualFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEqualFold(FieldExtractionStatus, v))
}

// ExtractionStatusContainsFold applies the ContainsFold predicate on the "extraction_status" field.
func ExtractionStatusContainsFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContainsFold(FieldExtractionStatus, v))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextIsNil applies the IsNil predicate on the "extracted_text" field.
func ExtractedTextIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldExtractedText))
}

// ExtractedTextNotNil applies the NotNil predicate on the "extracted_text" field.
func ExtractedTextNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldExtractedText))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContainsFold(FieldExtractedText, v))
}

// ExtractionErrorEQ applies the EQ predicate on the "extraction_error" field.
func ExtractionErrorEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldExtractionError, v))
}

// ExtractionErrorNEQ applies the NEQ predicate on the "extraction_error" field.
func ExtractionErrorNEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldExtractionError, v))
}

// ExtractionErrorIn applies the In predicate on the "extraction_error" field.
func ExtractionErrorIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldExtractionError, vs...))
}

// ExtractionErrorNotIn applies the NotIn predicate on the "extraction_error" field.
func ExtractionErrorNotIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldExtractionError, vs...))
}

// ExtractionErrorGT applies the GT predicate on the "extraction_error" field.
func ExtractionErrorGT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldExtractionError, v))
}

// ExtractionErrorGTE applies the GTE predicate on the "extraction_error" field.
func ExtractionErrorGTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldExtractionError, v))
}

// ExtractionErrorLT applies the LT predicate on the "extraction_error" field.
func ExtractionErrorLT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldExtractionError, v))
}

// ExtractionErrorLTE applies the LTE predicate on the "extraction_error" field.
func ExtractionErrorLTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldExtractionError, v))
}

// ExtractionErrorContains applies the Contains predicate on the "extraction_error" field.
func ExtractionErrorContains(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContains(FieldExtractionError, v))
}

// ExtractionErrorHasPrefix applies the HasPrefix predicate on the "extraction_error" field.
func ExtractionErrorHasPrefix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasPrefix(FieldExtractionError, v))
}

// ExtractionErrorHasSuffix applies the HasSuffix predicate on the "extraction_error" field.
func ExtractionErrorHasSuffix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasSuffix(FieldExtractionError, v))
}

// ExtractionErrorIsNil applies the IsNil predicate on the "extraction_error" field.
func ExtractionErrorIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldExtractionError))
}

// ExtractionErrorNotNil applies the NotNil predicate on the "extraction_error" field.
func ExtractionErrorNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldExtractionError))
}

// ExtractionErrorEqualFold applies the EqualFold predicate on the "extraction_error" field.
func ExtractionErrorEqualFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEqualFold(FieldExtractionError, v))
}

// ExtractionErrorContainsFold applies the ContainsFold predicate on the "extraction_error" field.
func ExtractionErrorContainsFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContainsFold(FieldExtractionError, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldRelevanceScore, v))
}

// RelevanceScoreIsNil applies the IsNil predicate on the "relevance_score" field.
func RelevanceScoreIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldRelevanceScore))
}

// RelevanceScoreNotNil applies the NotNil predicate on the "relevance_score" field.
func RelevanceScoreNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldRelevanceScore))
}

// SupportsGapEQ applies the EQ predicate on the "supports_gap" field.
func SupportsGapEQ(v bool) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldSupportsGap, v))
}

// SupportsGapNEQ applies the NEQ predicate on the "supports_gap" field.
func SupportsGapNEQ(v bool) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldSupportsGap, v))
}

// ConflictsWithGapEQ applies the EQ predicate on the "conflicts_with_gap" field.
func ConflictsWithGapEQ(v bool) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldConflictsWithGap, v))
}

// ConflictsWithGapNEQ applies the NEQ predicate on the "conflicts_with_gap" field.
func ConflictsWithGapNEQ(v bool) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldConflictsWithGap, v))
}

// KeyFindingsEQ applies the EQ predicate on the "key_findings" field.
func KeyFindingsEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEQ(FieldKeyFindings, v))
}

// KeyFindingsNEQ applies the NEQ predicate on the "key_findings" field.
func KeyFindingsNEQ(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNEQ(FieldKeyFindings, v))
}

// KeyFindingsIn applies the In predicate on the "key_findings" field.
func KeyFindingsIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIn(FieldKeyFindings, vs...))
}

// KeyFindingsNotIn applies the NotIn predicate on the "key_findings" field.
func KeyFindingsNotIn(vs ...string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotIn(FieldKeyFindings, vs...))
}

// KeyFindingsGT applies the GT predicate on the "key_findings" field.
func KeyFindingsGT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGT(FieldKeyFindings, v))
}

// KeyFindingsGTE applies the GTE predicate on the "key_findings" field.
func KeyFindingsGTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldGTE(FieldKeyFindings, v))
}

// KeyFindingsLT applies the LT predicate on the "key_findings" field.
func KeyFindingsLT(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLT(FieldKeyFindings, v))
}

// KeyFindingsLTE applies the LTE predicate on the "key_findings" field.
func KeyFindingsLTE(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldLTE(FieldKeyFindings, v))
}

// KeyFindingsContains applies the Contains predicate on the "key_findings" field.
func KeyFindingsContains(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContains(FieldKeyFindings, v))
}

// KeyFindingsHasPrefix applies the HasPrefix predicate on the "key_findings" field.
func KeyFindingsHasPrefix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasPrefix(FieldKeyFindings, v))
}

// KeyFindingsHasSuffix applies the HasSuffix predicate on the "key_findings" field.
func KeyFindingsHasSuffix(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldHasSuffix(FieldKeyFindings, v))
}

// KeyFindingsIsNil applies the IsNil predicate on the "key_findings" field.
func KeyFindingsIsNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldIsNull(FieldKeyFindings))
}

// KeyFindingsNotNil applies the NotNil predicate on the "key_findings" field.
func KeyFindingsNotNil() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldNotNull(FieldKeyFindings))
}

// KeyFindingsEqualFold applies the EqualFold predicate on the "key_findings" field.
func KeyFindingsEqualFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldEqualFold(FieldKeyFindings, v))
}

// KeyFindingsContainsFold applies the ContainsFold predicate on the "key_findings" field.
func KeyFindingsContainsFold(v string) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.FieldContainsFold(FieldKeyFindings, v))
}

// HasGap applies the HasEdge predicate on the "gap" edge.
func HasGap() predicate.GapValidationPaper {
	return predicate.GapValidationPaper(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GapTable, GapColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGapWith applies the HasEdge predicate on the "gap" edge with a given conditions (other predicates).
func HasGapWith(preds ...predicate.ResearchGap) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(func(s *sql.Selector) {
		step := newGapStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GapValidationPaper) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GapValidationPaper) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GapValidationPaper) predicate.GapValidationPaper {
	return predicate.GapValidationPaper(sql.NotPredicates(p))
}
