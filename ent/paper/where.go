// Code generated by ent, DO NOT EDIT.

package paper

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldID, id))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldCorrelationID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTitle, v))
}

// AbstractText applies equality check predicate on the "abstract_text" field. It's identical to AbstractTextEQ.
func AbstractText(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldAbstractText, v))
}

// PublicationDate applies equality check predicate on the "publication_date" field. It's identical to PublicationDateEQ.
func PublicationDate(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldPublicationDate, v))
}

// Doi applies equality check predicate on the "doi" field. It's identical to DoiEQ.
func Doi(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldDoi, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldSource, v))
}

// PdfContentURL applies equality check predicate on the "pdf_content_url" field. It's identical to PdfContentURLEQ.
func PdfContentURL(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldPdfContentURL, v))
}

// PdfURL applies equality check predicate on the "pdf_url" field. It's identical to PdfURLEQ.
func PdfURL(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldPdfURL, v))
}

// IsOpenAccess applies equality check predicate on the "is_open_access" field. It's identical to IsOpenAccessEQ.
func IsOpenAccess(v bool) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldIsOpenAccess, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldCorrelationID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldTitle, v))
}

// AbstractTextEQ applies the EQ predicate on the "abstract_text" field.
func AbstractTextEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldAbstractText, v))
}

// AbstractTextNEQ applies the NEQ predicate on the "abstract_text" field.
func AbstractTextNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldAbstractText, v))
}

// AbstractTextIn applies the In predicate on the "abstract_text" field.
func AbstractTextIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldAbstractText, vs...))
}

// AbstractTextNotIn applies the NotIn predicate on the "abstract_text" field.
func AbstractTextNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldAbstractText, vs...))
}

// AbstractTextGT applies the GT predicate on the "abstract_text" field.
func AbstractTextGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldAbstractText, v))
}

// AbstractTextGTE applies the GTE predicate on the "abstract_text" field.
func AbstractTextGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldAbstractText, v))
}

// AbstractTextLT applies the LT predicate on the "abstract_text" field.
func AbstractTextLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldAbstractText, v))
}

// AbstractTextLTE applies the LTE predicate on the "abstract_text" field.
func AbstractTextLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldAbstractText, v))
}

// AbstractTextContains applies the Contains predicate on the "abstract_text" field.
func AbstractTextContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldAbstractText, v))
}

// AbstractTextHasPrefix applies the HasPrefix predicate on the "abstract_text" field.
func AbstractTextHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldAbstractText, v))
}

// AbstractTextHasSuffix applies the HasSuffix predicate on the "abstract_text" field.
func AbstractTextHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldAbstractText, v))
}

// AbstractTextIsNil applies the IsNil predicate on the "abstract_text" field.
func AbstractTextIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldAbstractText))
}

// AbstractTextNotNil applies the NotNil predicate on the "abstract_text" field.
func AbstractTextNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldAbstractText))
}

// AbstractTextEqualFold applies the EqualFold predicate on the "abstract_text" field.
func AbstractTextEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldAbstractText, v))
}

// AbstractTextContainsFold applies the ContainsFold predicate on the "abstract_text" field.
func AbstractTextContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldAbstractText, v))
}

// PublicationDateEQ applies the EQ predicate on the "publication_date" field.
func PublicationDateEQ(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldPublicationDate, v))
}

// PublicationDateNEQ applies the NEQ predicate on the "publication_date" field.
func PublicationDateNEQ(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldPublicationDate, v))
}

// PublicationDateIn applies the In predicate on the "publication_date" field.
func PublicationDateIn(vs ...time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldPublicationDate, vs...))
}

// PublicationDateNotIn applies the NotIn predicate on the "publication_date" field.
func PublicationDateNotIn(vs ...time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldPublicationDate, vs...))
}

// PublicationDateGT applies the GT predicate on the "publication_date" field.
func PublicationDateGT(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldPublicationDate, v))
}

// PublicationDateGTE applies the GTE predicate on the "publication_date" field.
func PublicationDateGTE(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldPublicationDate, v))
}

// PublicationDateLT applies the LT predicate on the "publication_date" field.
func PublicationDateLT(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldPublicationDate, v))
}

// PublicationDateLTE applies the LTE predicate on the "publication_date" field.
func PublicationDateLTE(v time.Time) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldPublicationDate, v))
}

// PublicationDateIsNil applies the IsNil predicate on the "publication_date" field.
func PublicationDateIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldPublicationDate))
}

// PublicationDateNotNil applies the NotNil predicate on the "publication_date" field.
func PublicationDateNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldPublicationDate))
}

// DoiEQ applies the EQ predicate on the "doi" field.
func DoiEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldDoi, v))
}

// DoiNEQ applies the NEQ predicate on the "doi" field.
func DoiNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldDoi, v))
}

// DoiIn applies the In predicate on the "doi" field.
func DoiIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldDoi, vs...))
}

// DoiNotIn applies the NotIn predicate on the "doi" field.
func DoiNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldDoi, vs...))
}

// DoiGT applies the GT predicate on the "doi" field.
func DoiGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldDoi, v))
}

// DoiGTE applies the GTE predicate on the "doi" field.
func DoiGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldDoi, v))
}

// DoiLT applies the LT predicate on the "doi" field.
func DoiLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldDoi, v))
}

// DoiLTE applies the LTE predicate on the "doi" field.
func DoiLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldDoi, v))
}

// DoiContains applies the Contains predicate on the "doi" field.
func DoiContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldDoi, v))
}

// DoiHasPrefix applies the HasPrefix predicate on the "doi" field.
func DoiHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldDoi, v))
}

// DoiHasSuffix applies the HasSuffix predicate on the "doi" field.
func DoiHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldDoi, v))
}

// DoiIsNil applies the IsNil predicate on the "doi" field.
func DoiIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldDoi))
}

// DoiNotNil applies the NotNil predicate on the "doi" field.
func DoiNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldDoi))
}

// DoiEqualFold applies the EqualFold predicate on the "doi" field.
func DoiEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldDoi, v))
}

// DoiContainsFold applies the ContainsFold predicate on the "doi" field.
func DoiContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldDoi, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldSource, v))
}

// PdfContentURLEQ applies the EQ predicate on the "pdf_content_url" field.
func PdfContentURLEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldPdfContentURL, v))
}

// PdfContentURLNEQ applies the NEQ predicate on the "pdf_content_url" field.
func PdfContentURLNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldPdfContentURL, v))
}

// PdfContentURLIn applies the In predicate on the "pdf_content_url" field.
func PdfContentURLIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldPdfContentURL, vs...))
}

// PdfContentURLNotIn applies the NotIn predicate on the "pdf_content_url" field.
func PdfContentURLNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldPdfContentURL, vs...))
}

// PdfContentURLGT applies the GT predicate on the "pdf_content_url" field.
func PdfContentURLGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldPdfContentURL, v))
}

// PdfContentURLGTE applies the GTE predicate on the "pdf_content_url" field.
func PdfContentURLGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldPdfContentURL, v))
}

// PdfContentURLLT applies the LT predicate on the "pdf_content_url" field.
func PdfContentURLLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldPdfContentURL, v))
}

// PdfContentURLLTE applies the LTE predicate on the "pdf_content_url" field.
func PdfContentURLLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldPdfContentURL, v))
}

// PdfContentURLContains applies the Contains predicate on the "pdf_content_url" field.
func PdfContentURLContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldPdfContentURL, v))
}

// PdfContentURLHasPrefix applies the HasPrefix predicate on the "pdf_content_url" field.
func PdfContentURLHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldPdfContentURL, v))
}

// PdfContentURLHasSuffix applies the HasSuffix predicate on the "pdf_content_url" field.
func PdfContentURLHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldPdfContentURL, v))
}

// PdfContentURLIsNil applies the IsNil predicate on the "pdf_content_url" field.
func PdfContentURLIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldPdfContentURL))
}

// PdfContentURLNotNil applies the NotNil predicate on the "pdf_content_url" field.
func PdfContentURLNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldPdfContentURL))
}

// PdfContentURLEqualFold applies the EqualFold predicate on the "pdf_content_url" field.
func PdfContentURLEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldPdfContentURL, v))
}

// PdfContentURLContainsFold applies the ContainsFold predicate on the "pdf_content_url" field.
func PdfContentURLContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldPdfContentURL, v))
}

// PdfURLEQ applies the EQ predicate on the "pdf_url" field.
func PdfURLEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldPdfURL, v))
}

// PdfURLNEQ applies the NEQ predicate on the "pdf_url" field.
func PdfURLNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldPdfURL, v))
}

// PdfURLIn applies the In predicate on the "pdf_url" field.
func PdfURLIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldPdfURL, vs...))
}

// PdfURLNotIn applies the NotIn predicate on the "pdf_url" field.
func PdfURLNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldPdfURL, vs...))
}

// PdfURLGT applies the GT predicate on the "pdf_url" field.
func PdfURLGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldPdfURL, v))
}

// PdfURLGTE applies the GTE predicate on the "pdf_url" field.
func PdfURLGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldPdfURL, v))
}

// PdfURLLT applies the LT predicate on the "pdf_url" field.
func PdfURLLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldPdfURL, v))
}

// PdfURLLTE applies the LTE predicate on the "pdf_url" field.
func PdfURLLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldPdfURL, v))
}

// PdfURLContains applies the Contains predicate on the "pdf_url" field.
func PdfURLContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldPdfURL, v))
}

// PdfURLHasPrefix applies the HasPrefix predicate on the "pdf_url" field.
func PdfURLHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldPdfURL, v))
}

// PdfURLHasSuffix applies the HasSuffix predicate on the "pdf_url" field.
func PdfURLHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldPdfURL, v))
}

// PdfURLIsNil applies the IsNil predicate on the "pdf_url" field.
func PdfURLIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldPdfURL))
}

// PdfURLNotNil applies the NotNil predicate on the "pdf_url" field.
func PdfURLNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldPdfURL))
}

// PdfURLEqualFold applies the EqualFold predicate on the "pdf_url" field.
func PdfURLEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldPdfURL, v))
}

// PdfURLContainsFold applies the ContainsFold predicate on the "pdf_url" field.
func PdfURLContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldPdfURL, v))
}

// IsOpenAccessEQ applies the EQ predicate on the "is_open_access" field.
func IsOpenAccessEQ(v bool) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldIsOpenAccess, v))
}

// IsOpenAccessNEQ applies the NEQ predicate on the "is_open_access" field.
func IsOpenAccessNEQ(v bool) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldIsOpenAccess, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.NotPredicates(p))
}
