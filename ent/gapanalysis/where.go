// Code generated by ent, DO NOT EDIT.

package gapanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldID, id))
}

// PaperID applies equality check predicate on the "paper_id" field. It's identical to PaperIDEQ.
func PaperID(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldPaperID, v))
}

// PaperExtractionID applies equality check predicate on the "paper_extraction_id" field. It's identical to PaperExtractionIDEQ.
func PaperExtractionID(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldPaperExtractionID, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldCorrelationID, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldRequestID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldErrorMessage, v))
}

// TotalGapsIdentified applies equality check predicate on the "total_gaps_identified" field. It's identical to TotalGapsIdentifiedEQ.
func TotalGapsIdentified(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldTotalGapsIdentified, v))
}

// ValidGapsCount applies equality check predicate on the "valid_gaps_count" field. It's identical to ValidGapsCountEQ.
func ValidGapsCount(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldValidGapsCount, v))
}

// InvalidGapsCount applies equality check predicate on the "invalid_gaps_count" field. It's identical to InvalidGapsCountEQ.
func InvalidGapsCount(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldInvalidGapsCount, v))
}

// ModifiedGapsCount applies equality check predicate on the "modified_gaps_count" field. It's identical to ModifiedGapsCountEQ.
func ModifiedGapsCount(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldModifiedGapsCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// PaperIDEQ applies the EQ predicate on the "paper_id" field.
func PaperIDEQ(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldPaperID, v))
}

// PaperIDNEQ applies the NEQ predicate on the "paper_id" field.
func PaperIDNEQ(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldPaperID, v))
}

// PaperIDIn applies the In predicate on the "paper_id" field.
func PaperIDIn(vs ...uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldPaperID, vs...))
}

// PaperIDNotIn applies the NotIn predicate on the "paper_id" field.
func PaperIDNotIn(vs ...uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldPaperID, vs...))
}

// PaperIDGT applies the GT predicate on the "paper_id" field.
func PaperIDGT(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldPaperID, v))
}

// PaperIDGTE applies the GTE predicate on the "paper_id" field.
func PaperIDGTE(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldPaperID, v))
}

// PaperIDLT applies the LT predicate on the "paper_id" field.
func PaperIDLT(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldPaperID, v))
}

// PaperIDLTE applies the LTE predicate on the "paper_id" field.
func PaperIDLTE(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldPaperID, v))
}

// PaperExtractionIDEQ applies the EQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDEQ(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDNEQ applies the NEQ predicate on the "paper_extraction_id" field.
func PaperExtractionIDNEQ(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldPaperExtractionID, v))
}

// PaperExtractionIDIn applies the In predicate on the "paper_extraction_id" field.
func PaperExtractionIDIn(vs ...uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldPaperExtractionID, vs...))
}

// PaperExtractionIDNotIn applies the NotIn predicate on the "paper_extraction_id" field.
func PaperExtractionIDNotIn(vs ...uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldPaperExtractionID, vs...))
}

// PaperExtractionIDGT applies the GT predicate on the "paper_extraction_id" field.
func PaperExtractionIDGT(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldPaperExtractionID, v))
}

// PaperExtractionIDGTE applies the GTE predicate on the "paper_extraction_id" field.
func PaperExtractionIDGTE(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldPaperExtractionID, v))
}

// PaperExtractionIDLT applies the LT predicate on the "paper_extraction_id" field.
func PaperExtractionIDLT(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldPaperExtractionID, v))
}

// PaperExtractionIDLTE applies the LTE predicate on the "paper_extraction_id" field.
func PaperExtractionIDLTE(v uuid.UUID) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldPaperExtractionID, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldContainsFold(FieldCorrelationID, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldContainsFold(FieldRequestID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotNull(FieldConfig))
}

// TotalGapsIdentifiedEQ applies the EQ predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldTotalGapsIdentified, v))
}

// TotalGapsIdentifiedNEQ applies the NEQ predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedNEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldTotalGapsIdentified, v))
}

// TotalGapsIdentifiedIn applies the In predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldTotalGapsIdentified, vs...))
}

// TotalGapsIdentifiedNotIn applies the NotIn predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedNotIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldTotalGapsIdentified, vs...))
}

// TotalGapsIdentifiedGT applies the GT predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedGT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldTotalGapsIdentified, v))
}

// TotalGapsIdentifiedGTE applies the GTE predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedGTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldTotalGapsIdentified, v))
}

// TotalGapsIdentifiedLT applies the LT predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedLT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldTotalGapsIdentified, v))
}

// TotalGapsIdentifiedLTE applies the LTE predicate on the "total_gaps_identified" field.
func TotalGapsIdentifiedLTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldTotalGapsIdentified, v))
}

// ValidGapsCountEQ applies the EQ predicate on the "valid_gaps_count" field.
func ValidGapsCountEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldValidGapsCount, v))
}

// ValidGapsCountNEQ applies the NEQ predicate on the "valid_gaps_count" field.
func ValidGapsCountNEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldValidGapsCount, v))
}

// ValidGapsCountIn applies the In predicate on the "valid_gaps_count" field.
func ValidGapsCountIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldValidGapsCount, vs...))
}

// ValidGapsCountNotIn applies the NotIn predicate on the "valid_gaps_count" field.
func ValidGapsCountNotIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldValidGapsCount, vs...))
}

// ValidGapsCountGT applies the GT predicate on the "valid_gaps_count" field.
func ValidGapsCountGT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldValidGapsCount, v))
}

// ValidGapsCountGTE applies the GTE predicate on the "valid_gaps_count" field.
func ValidGapsCountGTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldValidGapsCount, v))
}

// ValidGapsCountLT applies the LT predicate on the "valid_gaps_count" field.
func ValidGapsCountLT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldValidGapsCount, v))
}

// ValidGapsCountLTE applies the LTE predicate on the "valid_gaps_count" field.
func ValidGapsCountLTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldValidGapsCount, v))
}

// InvalidGapsCountEQ applies the EQ predicate on the "invalid_gaps_count" field.
func InvalidGapsCountEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldInvalidGapsCount, v))
}

// InvalidGapsCountNEQ applies the NEQ predicate on the "invalid_gaps_count" field.
func InvalidGapsCountNEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldInvalidGapsCount, v))
}

// InvalidGapsCountIn applies the In predicate on the "invalid_gaps_count" field.
func InvalidGapsCountIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldInvalidGapsCount, vs...))
}

// InvalidGapsCountNotIn applies the NotIn predicate on the "invalid_gaps_count" field.
func InvalidGapsCountNotIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldInvalidGapsCount, vs...))
}

// InvalidGapsCountGT applies the GT predicate on the "invalid_gaps_count" field.
func InvalidGapsCountGT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldInvalidGapsCount, v))
}

// InvalidGapsCountGTE applies the GTE predicate on the "invalid_gaps_count" field.
func InvalidGapsCountGTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldInvalidGapsCount, v))
}

// InvalidGapsCountLT applies the LT predicate on the "invalid_gaps_count" field.
func InvalidGapsCountLT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldInvalidGapsCount, v))
}

// InvalidGapsCountLTE applies the LTE predicate on the "invalid_gaps_count" field.
func InvalidGapsCountLTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldInvalidGapsCount, v))
}

// ModifiedGapsCountEQ applies the EQ predicate on the "modified_gaps_count" field.
func ModifiedGapsCountEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldModifiedGapsCount, v))
}

// ModifiedGapsCountNEQ applies the NEQ predicate on the "modified_gaps_count" field.
func ModifiedGapsCountNEQ(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldModifiedGapsCount, v))
}

// ModifiedGapsCountIn applies the In predicate on the "modified_gaps_count" field.
func ModifiedGapsCountIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldModifiedGapsCount, vs...))
}

// ModifiedGapsCountNotIn applies the NotIn predicate on the "modified_gaps_count" field.
func ModifiedGapsCountNotIn(vs ...int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldModifiedGapsCount, vs...))
}

// ModifiedGapsCountGT applies the GT predicate on the "modified_gaps_count" field.
func ModifiedGapsCountGT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldModifiedGapsCount, v))
}

// ModifiedGapsCountGTE applies the GTE predicate on the "modified_gaps_count" field.
func ModifiedGapsCountGTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldModifiedGapsCount, v))
}

// ModifiedGapsCountLT applies the LT predicate on the "modified_gaps_count" field.
func ModifiedGapsCountLT(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldModifiedGapsCount, v))
}

// ModifiedGapsCountLTE applies the LTE predicate on the "modified_gaps_count" field.
func ModifiedGapsCountLTE(v int) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldModifiedGapsCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasGaps applies the HasEdge predicate on the "gaps" edge.
func HasGaps() predicate.GapAnalysis {
	return predicate.GapAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GapsTable, GapsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGapsWith applies the HasEdge predicate on the "gaps" edge with a given conditions (other predicates).
func HasGapsWith(preds ...predicate.ResearchGap) predicate.GapAnalysis {
	return predicate.GapAnalysis(func(s *sql.Selector) {
		step := newGapsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GapAnalysis) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GapAnalysis) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GapAnalysis) predicate.GapAnalysis {
	return predicate.GapAnalysis(sql.NotPredicates(p))
}
