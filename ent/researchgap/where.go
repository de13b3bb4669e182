// Code generated by ent, DO NOT EDIT.

package researchgap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldID, id))
}

// GapAnalysisID applies equality check predicate on the "gap_analysis_id" field. It's identical to GapAnalysisIDEQ.
func GapAnalysisID(v uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldGapAnalysisID, v))
}

// GapID applies equality check predicate on the "gap_id" field. It's identical to GapIDEQ.
func GapID(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldGapID, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldOrderIndex, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldDescription, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldCategory, v))
}

// ValidationConfidence applies equality check predicate on the "validation_confidence" field. It's identical to ValidationConfidenceEQ.
func ValidationConfidence(v float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidationConfidence, v))
}

// InitialReasoning applies equality check predicate on the "initial_reasoning" field. It's identical to InitialReasoningEQ.
func InitialReasoning(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldInitialReasoning, v))
}

// InitialEvidence applies equality check predicate on the "initial_evidence" field. It's identical to InitialEvidenceEQ.
func InitialEvidence(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldInitialEvidence, v))
}

// ValidationQuery applies equality check predicate on the "validation_query" field. It's identical to ValidationQueryEQ.
func ValidationQuery(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidationQuery, v))
}

// PapersAnalyzedCount applies equality check predicate on the "papers_analyzed_count" field. It's identical to PapersAnalyzedCountEQ.
func PapersAnalyzedCount(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldPapersAnalyzedCount, v))
}

// ValidationReasoning applies equality check predicate on the "validation_reasoning" field. It's identical to ValidationReasoningEQ.
func ValidationReasoning(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidationReasoning, v))
}

// PotentialImpact applies equality check predicate on the "potential_impact" field. It's identical to PotentialImpactEQ.
func PotentialImpact(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldPotentialImpact, v))
}

// ResearchHints applies equality check predicate on the "research_hints" field. It's identical to ResearchHintsEQ.
func ResearchHints(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldResearchHints, v))
}

// ImplementationSuggestions applies equality check predicate on the "implementation_suggestions" field. It's identical to ImplementationSuggestionsEQ.
func ImplementationSuggestions(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldImplementationSuggestions, v))
}

// RisksAndChallenges applies equality check predicate on the "risks_and_challenges" field. It's identical to RisksAndChallengesEQ.
func RisksAndChallenges(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldRisksAndChallenges, v))
}

// RequiredResources applies equality check predicate on the "required_resources" field. It's identical to RequiredResourcesEQ.
func RequiredResources(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldRequiredResources, v))
}

// EstimatedDifficulty applies equality check predicate on the "estimated_difficulty" field. It's identical to EstimatedDifficultyEQ.
func EstimatedDifficulty(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldEstimatedDifficulty, v))
}

// EstimatedTimeline applies equality check predicate on the "estimated_timeline" field. It's identical to EstimatedTimelineEQ.
func EstimatedTimeline(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldEstimatedTimeline, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldCreatedAt, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidatedAt, v))
}

// GapAnalysisIDEQ applies the EQ predicate on the "gap_analysis_id" field.
func GapAnalysisIDEQ(v uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldGapAnalysisID, v))
}

// GapAnalysisIDNEQ applies the NEQ predicate on the "gap_analysis_id" field.
func GapAnalysisIDNEQ(v uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldGapAnalysisID, v))
}

// GapAnalysisIDIn applies the In predicate on the "gap_analysis_id" field.
func GapAnalysisIDIn(vs ...uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldGapAnalysisID, vs...))
}

// GapAnalysisIDNotIn applies the NotIn predicate on the "gap_analysis_id" field.
func GapAnalysisIDNotIn(vs ...uuid.UUID) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldGapAnalysisID, vs...))
}

// GapIDEQ applies the EQ predicate on the "gap_id" field.
func GapIDEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldGapID, v))
}

// GapIDNEQ applies the NEQ predicate on the "gap_id" field.
func GapIDNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldGapID, v))
}

// GapIDIn applies the In predicate on the "gap_id" field.
func GapIDIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldGapID, vs...))
}

// GapIDNotIn applies the NotIn predicate on the "gap_id" field.
func GapIDNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldGapID, vs...))
}

// GapIDGT applies the GT predicate on the "gap_id" field.
func GapIDGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldGapID, v))
}

// GapIDGTE applies the GTE predicate on the "gap_id" field.
func GapIDGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldGapID, v))
}

// GapIDLT applies the LT predicate on the "gap_id" field.
func GapIDLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldGapID, v))
}

// GapIDLTE applies the LTE predicate on the "gap_id" field.
func GapIDLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldGapID, v))
}

// GapIDContains applies the Contains predicate on the "gap_id" field.
func GapIDContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldGapID, v))
}

// GapIDHasPrefix applies the HasPrefix predicate on the "gap_id" field.
func GapIDHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldGapID, v))
}

// GapIDHasSuffix applies the HasSuffix predicate on the "gap_id" field.
func GapIDHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldGapID, v))
}

// GapIDEqualFold applies the EqualFold predicate on the "gap_id" field.
func GapIDEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldGapID, v))
}

// GapIDContainsFold applies the ContainsFold predicate on the "gap_id" field.
func GapIDContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldGapID, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldOrderIndex, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldCategory, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v ValidationStatus) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v ValidationStatus) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...ValidationStatus) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...ValidationStatus) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationConfidenceEQ applies the EQ predicate on the "validation_confidence" field.
func ValidationConfidenceEQ(v float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidationConfidence, v))
}

// ValidationConfidenceNEQ applies the NEQ predicate on the "validation_confidence" field.
func ValidationConfidenceNEQ(v float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldValidationConfidence, v))
}

// ValidationConfidenceIn applies the In predicate on the "validation_confidence" field.
func ValidationConfidenceIn(vs ...float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldValidationConfidence, vs...))
}

// ValidationConfidenceNotIn applies the NotIn predicate on the "validation_confidence" field.
func ValidationConfidenceNotIn(vs ...float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldValidationConfidence, vs...))
}

// ValidationConfidenceGT applies the GT predicate on the "validation_confidence" field.
func ValidationConfidenceGT(v float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldValidationConfidence, v))
}

// ValidationConfidenceGTE applies the GTE predicate on the "validation_confidence" field.
func ValidationConfidenceGTE(v float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldValidationConfidence, v))
}

// ValidationConfidenceLT applies the LT predicate on the "validation_confidence" field.
func ValidationConfidenceLT(v float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldValidationConfidence, v))
}

// ValidationConfidenceLTE applies the LTE predicate on the "validation_confidence" field.
func ValidationConfidenceLTE(v float64) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldValidationConfidence, v))
}

// ValidationConfidenceIsNil applies the IsNil predicate on the "validation_confidence" field.
func ValidationConfidenceIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldValidationConfidence))
}

// ValidationConfidenceNotNil applies the NotNil predicate on the "validation_confidence" field.
func ValidationConfidenceNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldValidationConfidence))
}

// InitialReasoningEQ applies the EQ predicate on the "initial_reasoning" field.
func InitialReasoningEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldInitialReasoning, v))
}

// InitialReasoningNEQ applies the NEQ predicate on the "initial_reasoning" field.
func InitialReasoningNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldInitialReasoning, v))
}

// InitialReasoningIn applies the In predicate on the "initial_reasoning" field.
func InitialReasoningIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldInitialReasoning, vs...))
}

// InitialReasoningNotIn applies the NotIn predicate on the "initial_reasoning" field.
func InitialReasoningNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldInitialReasoning, vs...))
}

// InitialReasoningGT applies the GT predicate on the "initial_reasoning" field.
func InitialReasoningGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldInitialReasoning, v))
}

// InitialReasoningGTE applies the GTE predicate on the "initial_reasoning" field.
func InitialReasoningGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldInitialReasoning, v))
}

// InitialReasoningLT applies the LT predicate on the "initial_reasoning" field.
func InitialReasoningLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldInitialReasoning, v))
}

// InitialReasoningLTE applies the LTE predicate on the "initial_reasoning" field.
func InitialReasoningLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldInitialReasoning, v))
}

// InitialReasoningContains applies the Contains predicate on the "initial_reasoning" field.
func InitialReasoningContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldInitialReasoning, v))
}

// InitialReasoningHasPrefix applies the HasPrefix predicate on the "initial_reasoning" field.
func InitialReasoningHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldInitialReasoning, v))
}

// InitialReasoningHasSuffix applies the HasSuffix predicate on the "initial_reasoning" field.
func InitialReasoningHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldInitialReasoning, v))
}

// InitialReasoningIsNil applies the IsNil predicate on the "initial_reasoning" field.
func InitialReasoningIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldInitialReasoning))
}

// InitialReasoningNotNil applies the NotNil predicate on the "initial_reasoning" field.
func InitialReasoningNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldInitialReasoning))
}

// InitialReasoningEqualFold applies the EqualFold predicate on the "initial_reasoning" field.
func InitialReasoningEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldInitialReasoning, v))
}

// InitialReasoningContainsFold applies the ContainsFold predicate on the "initial_reasoning" field.
func InitialReasoningContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldInitialReasoning, v))
}

// InitialEvidenceEQ applies the EQ predicate on the "initial_evidence" field.
func InitialEvidenceEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldInitialEvidence, v))
}

// InitialEvidenceNEQ applies the NEQ predicate on the "initial_evidence" field.
func InitialEvidenceNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldInitialEvidence, v))
}

// InitialEvidenceIn applies the In predicate on the "initial_evidence" field.
func InitialEvidenceIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldInitialEvidence, vs...))
}

// InitialEvidenceNotIn applies the NotIn predicate on the "initial_evidence" field.
func InitialEvidenceNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldInitialEvidence, vs...))
}

// InitialEvidenceGT applies the GT predicate on the "initial_evidence" field.
func InitialEvidenceGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldInitialEvidence, v))
}

// InitialEvidenceGTE applies the GTE predicate on the "initial_evidence" field.
func InitialEvidenceGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldInitialEvidence, v))
}

// InitialEvidenceLT applies the LT predicate on the "initial_evidence" field.
func InitialEvidenceLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldInitialEvidence, v))
}

// InitialEvidenceLTE applies the LTE predicate on the "initial_evidence" field.
func InitialEvidenceLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldInitialEvidence, v))
}

// InitialEvidenceContains applies the Contains predicate on the "initial_evidence" field.
func InitialEvidenceContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldInitialEvidence, v))
}

// InitialEvidenceHasPrefix applies the HasPrefix predicate on the "initial_evidence" field.
func InitialEvidenceHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldInitialEvidence, v))
}

// InitialEvidenceHasSuffix applies the HasSuffix predicate on the "initial_evidence" field.
func InitialEvidenceHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldInitialEvidence, v))
}

// InitialEvidenceIsNil applies the IsNil predicate on the "initial_evidence" field.
func InitialEvidenceIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldInitialEvidence))
}

// InitialEvidenceNotNil applies the NotNil predicate on the "initial_evidence" field.
func InitialEvidenceNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldInitialEvidence))
}

// InitialEvidenceEqualFold applies the EqualFold predicate on the "initial_evidence" field.
func InitialEvidenceEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldInitialEvidence, v))
}

// InitialEvidenceContainsFold applies the ContainsFold predicate on the "initial_evidence" field.
func InitialEvidenceContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldInitialEvidence, v))
}

// ValidationQueryEQ applies the EQ predicate on the "validation_query" field.
func ValidationQueryEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidationQuery, v))
}

// ValidationQueryNEQ applies the NEQ predicate on the "validation_query" field.
func ValidationQueryNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldValidationQuery, v))
}

// ValidationQueryIn applies the In predicate on the "validation_query" field.
func ValidationQueryIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldValidationQuery, vs...))
}

// ValidationQueryNotIn applies the NotIn predicate on the "validation_query" field.
func ValidationQueryNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldValidationQuery, vs...))
}

// ValidationQueryGT applies the GT predicate on the "validation_query" field.
func ValidationQueryGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldValidationQuery, v))
}

// ValidationQueryGTE applies the GTE predicate on the "validation_query" field.
func ValidationQueryGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldValidationQuery, v))
}

// ValidationQueryLT applies the LT predicate on the "validation_query" field.
func ValidationQueryLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldValidationQuery, v))
}

// ValidationQueryLTE applies the LTE predicate on the "validation_query" field.
func ValidationQueryLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldValidationQuery, v))
}

// ValidationQueryContains applies the Contains predicate on the "validation_query" field.
func ValidationQueryContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldValidationQuery, v))
}

// ValidationQueryHasPrefix applies the HasPrefix predicate on the "validation_query" field.
func ValidationQueryHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldValidationQuery, v))
}

// ValidationQueryHasSuffix applies the HasSuffix predicate on the "validation_query" field.
func ValidationQueryHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldValidationQuery, v))
}

// ValidationQueryIsNil applies the IsNil predicate on the "validation_query" field.
func ValidationQueryIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldValidationQuery))
}

// ValidationQueryNotNil applies the NotNil predicate on the "validation_query" field.
func ValidationQueryNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldValidationQuery))
}

// ValidationQueryEqualFold applies the EqualFold predicate on the "validation_query" field.
func ValidationQueryEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldValidationQuery, v))
}

// ValidationQueryContainsFold applies the ContainsFold predicate on the "validation_query" field.
func ValidationQueryContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldValidationQuery, v))
}

// PapersAnalyzedCountEQ applies the EQ predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountEQ(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldPapersAnalyzedCount, v))
}

// PapersAnalyzedCountNEQ applies the NEQ predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountNEQ(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldPapersAnalyzedCount, v))
}

// PapersAnalyzedCountIn applies the In predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountIn(vs ...int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldPapersAnalyzedCount, vs...))
}

// PapersAnalyzedCountNotIn applies the NotIn predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountNotIn(vs ...int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldPapersAnalyzedCount, vs...))
}

// PapersAnalyzedCountGT applies the GT predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountGT(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldPapersAnalyzedCount, v))
}

// PapersAnalyzedCountGTE applies the GTE predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountGTE(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldPapersAnalyzedCount, v))
}

// PapersAnalyzedCountLT applies the LT predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountLT(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldPapersAnalyzedCount, v))
}

// PapersAnalyzedCountLTE applies the LTE predicate on the "papers_analyzed_count" field.
func PapersAnalyzedCountLTE(v int) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldPapersAnalyzedCount, v))
}

// ValidationReasoningEQ applies the EQ predicate on the "validation_reasoning" field.
func ValidationReasoningEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidationReasoning, v))
}

// ValidationReasoningNEQ applies the NEQ predicate on the "validation_reasoning" field.
func ValidationReasoningNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldValidationReasoning, v))
}

// ValidationReasoningIn applies the In predicate on the "validation_reasoning" field.
func ValidationReasoningIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldValidationReasoning, vs...))
}

// ValidationReasoningNotIn applies the NotIn predicate on the "validation_reasoning" field.
func ValidationReasoningNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldValidationReasoning, vs...))
}

// ValidationReasoningGT applies the GT predicate on the "validation_reasoning" field.
func ValidationReasoningGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldValidationReasoning, v))
}

// ValidationReasoningGTE applies the GTE predicate on the "validation_reasoning" field.
func ValidationReasoningGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldValidationReasoning, v))
}

// ValidationReasoningLT applies the LT predicate on the "validation_reasoning" field.
func ValidationReasoningLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldValidationReasoning, v))
}

// ValidationReasoningLTE applies the LTE predicate on the "validation_reasoning" field.
func ValidationReasoningLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldValidationReasoning, v))
}

// ValidationReasoningContains applies the Contains predicate on the "validation_reasoning" field.
func ValidationReasoningContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldValidationReasoning, v))
}

// ValidationReasoningHasPrefix applies the HasPrefix predicate on the "validation_reasoning" field.
func ValidationReasoningHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldValidationReasoning, v))
}

// ValidationReasoningHasSuffix applies the HasSuffix predicate on the "validation_reasoning" field.
func ValidationReasoningHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldValidationReasoning, v))
}

// ValidationReasoningIsNil applies the IsNil predicate on the "validation_reasoning" field.
func ValidationReasoningIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldValidationReasoning))
}

// ValidationReasoningNotNil applies the NotNil predicate on the "validation_reasoning" field.
func ValidationReasoningNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldValidationReasoning))
}

// ValidationReasoningEqualFold applies the EqualFold predicate on the "validation_reasoning" field.
func ValidationReasoningEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldValidationReasoning, v))
}

// ValidationReasoningContainsFold applies the ContainsFold predicate on the "validation_reasoning" field.
func ValidationReasoningContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldValidationReasoning, v))
}

// ModificationHistoryIsNil applies the IsNil predicate on the "modification_history" field.
func ModificationHistoryIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldModificationHistory))
}

// ModificationHistoryNotNil applies the NotNil predicate on the "modification_history" field.
func ModificationHistoryNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldModificationHistory))
}

// PotentialImpactEQ applies the EQ predicate on the "potential_impact" field.
func PotentialImpactEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldPotentialImpact, v))
}

// PotentialImpactNEQ applies the NEQ predicate on the "potential_impact" field.
func PotentialImpactNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldPotentialImpact, v))
}

// PotentialImpactIn applies the In predicate on the "potential_impact" field.
func PotentialImpactIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldPotentialImpact, vs...))
}

// PotentialImpactNotIn applies the NotIn predicate on the "potential_impact" field.
func PotentialImpactNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldPotentialImpact, vs...))
}

// PotentialImpactGT applies the GT predicate on the "potential_impact" field.
func PotentialImpactGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldPotentialImpact, v))
}

// PotentialImpactGTE applies the GTE predicate on the "potential_impact" field.
func PotentialImpactGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldPotentialImpact, v))
}

// PotentialImpactLT applies the LT predicate on the "potential_impact" field.
func PotentialImpactLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldPotentialImpact, v))
}

// PotentialImpactLTE applies the LTE predicate on the "potential_impact" field.
func PotentialImpactLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldPotentialImpact, v))
}

// PotentialImpactContains applies the Contains predicate on the "potential_impact" field.
func PotentialImpactContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldPotentialImpact, v))
}

// PotentialImpactHasPrefix applies the HasPrefix predicate on the "potential_impact" field.
func PotentialImpactHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldPotentialImpact, v))
}

// PotentialImpactHasSuffix applies the HasSuffix predicate on the "potential_impact" field.
func PotentialImpactHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldPotentialImpact, v))
}

// PotentialImpactIsNil applies the IsNil predicate on the "potential_impact" field.
func PotentialImpactIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldPotentialImpact))
}

// PotentialImpactNotNil applies the NotNil predicate on the "potential_impact" field.
func PotentialImpactNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldPotentialImpact))
}

// PotentialImpactEqualFold applies the EqualFold predicate on the "potential_impact" field.
func PotentialImpactEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldPotentialImpact, v))
}

// PotentialImpactContainsFold applies the ContainsFold predicate on the "potential_impact" field.
func PotentialImpactContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldPotentialImpact, v))
}

// ResearchHintsEQ applies the EQ predicate on the "research_hints" field.
func ResearchHintsEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldResearchHints, v))
}

// ResearchHintsNEQ applies the NEQ predicate on the "research_hints" field.
func ResearchHintsNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldResearchHints, v))
}

// ResearchHintsIn applies the In predicate on the "research_hints" field.
func ResearchHintsIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldResearchHints, vs...))
}

// ResearchHintsNotIn applies the NotIn predicate on the "research_hints" field.
func ResearchHintsNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldResearchHints, vs...))
}

// ResearchHintsGT applies the GT predicate on the "research_hints" field.
func ResearchHintsGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldResearchHints, v))
}

// ResearchHintsGTE applies the GTE predicate on the "research_hints" field.
func ResearchHintsGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldResearchHints, v))
}

// ResearchHintsLT applies the LT predicate on the "research_hints" field.
func ResearchHintsLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldResearchHints, v))
}

// ResearchHintsLTE applies the LTE predicate on the "research_hints" field.
func ResearchHintsLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldResearchHints, v))
}

// ResearchHintsContains applies the Contains predicate on the "research_hints" field.
func ResearchHintsContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldResearchHints, v))
}

// ResearchHintsHasPrefix applies the HasPrefix predicate on the "research_hints" field.
func ResearchHintsHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldResearchHints, v))
}

// ResearchHintsHasSuffix applies the HasSuffix predicate on the "research_hints" field.
func ResearchHintsHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldResearchHints, v))
}

// ResearchHintsIsNil applies the IsNil predicate on the "research_hints" field.
func ResearchHintsIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldResearchHints))
}

// ResearchHintsNotNil applies the NotNil predicate on the "research_hints" field.
func ResearchHintsNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldResearchHints))
}

// ResearchHintsEqualFold applies the EqualFold predicate on the "research_hints" field.
func ResearchHintsEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldResearchHints, v))
}

// ResearchHintsContainsFold applies the ContainsFold predicate on the "research_hints" field.
func ResearchHintsContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldResearchHints, v))
}

// ImplementationSuggestionsEQ applies the EQ predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsNEQ applies the NEQ predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsIn applies the In predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldImplementationSuggestions, vs...))
}

// ImplementationSuggestionsNotIn applies the NotIn predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldImplementationSuggestions, vs...))
}

// ImplementationSuggestionsGT applies the GT predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsGTE applies the GTE predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsLT applies the LT predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsLTE applies the LTE predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsContains applies the Contains predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsHasPrefix applies the HasPrefix predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsHasSuffix applies the HasSuffix predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsIsNil applies the IsNil predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldImplementationSuggestions))
}

// ImplementationSuggestionsNotNil applies the NotNil predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldImplementationSuggestions))
}

// ImplementationSuggestionsEqualFold applies the EqualFold predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldImplementationSuggestions, v))
}

// ImplementationSuggestionsContainsFold applies the ContainsFold predicate on the "implementation_suggestions" field.
func ImplementationSuggestionsContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldImplementationSuggestions, v))
}

// RisksAndChallengesEQ applies the EQ predicate on the "risks_and_challenges" field.
func RisksAndChallengesEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldRisksAndChallenges, v))
}

// RisksAndChallengesNEQ applies the NEQ predicate on the "risks_and_challenges" field.
func RisksAndChallengesNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldRisksAndChallenges, v))
}

// RisksAndChallengesIn applies the In predicate on the "risks_and_challenges" field.
func RisksAndChallengesIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldRisksAndChallenges, vs...))
}

// RisksAndChallengesNotIn applies the NotIn predicate on the "risks_and_challenges" field.
func RisksAndChallengesNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldRisksAndChallenges, vs...))
}

// RisksAndChallengesGT applies the GT predicate on the "risks_and_challenges" field.
func RisksAndChallengesGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldRisksAndChallenges, v))
}

// RisksAndChallengesGTE applies the GTE predicate on the "risks_and_challenges" field.
func RisksAndChallengesGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldRisksAndChallenges, v))
}

// RisksAndChallengesLT applies the LT predicate on the "risks_and_challenges" field.
func RisksAndChallengesLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldRisksAndChallenges, v))
}

// RisksAndChallengesLTE applies the LTE predicate on the "risks_and_challenges" field.
func RisksAndChallengesLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldRisksAndChallenges, v))
}

// RisksAndChallengesContains applies the Contains predicate on the "risks_and_challenges" field.
func RisksAndChallengesContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldRisksAndChallenges, v))
}

// RisksAndChallengesHasPrefix applies the HasPrefix predicate on the "risks_and_challenges" field.
func RisksAndChallengesHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldRisksAndChallenges, v))
}

// RisksAndChallengesHasSuffix applies the HasSuffix predicate on the "risks_and_challenges" field.
func RisksAndChallengesHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldRisksAndChallenges, v))
}

// RisksAndChallengesIsNil applies the IsNil predicate on the "risks_and_challenges" field.
func RisksAndChallengesIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldRisksAndChallenges))
}

// RisksAndChallengesNotNil applies the NotNil predicate on the "risks_and_challenges" field.
func RisksAndChallengesNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldRisksAndChallenges))
}

// RisksAndChallengesEqualFold applies the EqualFold predicate on the "risks_and_challenges" field.
func RisksAndChallengesEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldRisksAndChallenges, v))
}

// RisksAndChallengesContainsFold applies the ContainsFold predicate on the "risks_and_challenges" field.
func RisksAndChallengesContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldRisksAndChallenges, v))
}

// RequiredResourcesEQ applies the EQ predicate on the "required_resources" field.
func RequiredResourcesEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldRequiredResources, v))
}

// RequiredResourcesNEQ applies the NEQ predicate on the "required_resources" field.
func RequiredResourcesNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldRequiredResources, v))
}

// RequiredResourcesIn applies the In predicate on the "required_resources" field.
func RequiredResourcesIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldRequiredResources, vs...))
}

// RequiredResourcesNotIn applies the NotIn predicate on the "required_resources" field.
func RequiredResourcesNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldRequiredResources, vs...))
}

// RequiredResourcesGT applies the GT predicate on the "required_resources" field.
func RequiredResourcesGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldRequiredResources, v))
}

// RequiredResourcesGTE applies the GTE predicate on the "required_resources" field.
func RequiredResourcesGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldRequiredResources, v))
}

// RequiredResourcesLT applies the LT predicate on the "required_resources" field.
func RequiredResourcesLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldRequiredResources, v))
}

// RequiredResourcesLTE applies the LTE predicate on the "required_resources" field.
func RequiredResourcesLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldRequiredResources, v))
}

// RequiredResourcesContains applies the Contains predicate on the "required_resources" field.
func RequiredResourcesContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldRequiredResources, v))
}

// RequiredResourcesHasPrefix applies the HasPrefix predicate on the "required_resources" field.
func RequiredResourcesHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldRequiredResources, v))
}

// RequiredResourcesHasSuffix applies the HasSuffix predicate on the "required_resources" field.
func RequiredResourcesHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldRequiredResources, v))
}

// RequiredResourcesIsNil applies the IsNil predicate on the "required_resources" field.
func RequiredResourcesIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldRequiredResources))
}

// RequiredResourcesNotNil applies the NotNil predicate on the "required_resources" field.
func RequiredResourcesNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldRequiredResources))
}

// RequiredResourcesEqualFold applies the EqualFold predicate on the "required_resources" field.
func RequiredResourcesEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldRequiredResources, v))
}

// RequiredResourcesContainsFold applies the ContainsFold predicate on the "required_resources" field.
func RequiredResourcesContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldRequiredResources, v))
}

// EstimatedDifficultyEQ applies the EQ predicate on the "estimated_difficulty" field.
func EstimatedDifficultyEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyNEQ applies the NEQ predicate on the "estimated_difficulty" field.
func EstimatedDifficultyNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyIn applies the In predicate on the "estimated_difficulty" field.
func EstimatedDifficultyIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldEstimatedDifficulty, vs...))
}

// EstimatedDifficultyNotIn applies the NotIn predicate on the "estimated_difficulty" field.
func EstimatedDifficultyNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldEstimatedDifficulty, vs...))
}

// EstimatedDifficultyGT applies the GT predicate on the "estimated_difficulty" field.
func EstimatedDifficultyGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyGTE applies the GTE predicate on the "estimated_difficulty" field.
func EstimatedDifficultyGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyLT applies the LT predicate on the "estimated_difficulty" field.
func EstimatedDifficultyLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyLTE applies the LTE predicate on the "estimated_difficulty" field.
func EstimatedDifficultyLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyContains applies the Contains predicate on the "estimated_difficulty" field.
func EstimatedDifficultyContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyHasPrefix applies the HasPrefix predicate on the "estimated_difficulty" field.
func EstimatedDifficultyHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyHasSuffix applies the HasSuffix predicate on the "estimated_difficulty" field.
func EstimatedDifficultyHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyIsNil applies the IsNil predicate on the "estimated_difficulty" field.
func EstimatedDifficultyIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldEstimatedDifficulty))
}

// EstimatedDifficultyNotNil applies the NotNil predicate on the "estimated_difficulty" field.
func EstimatedDifficultyNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldEstimatedDifficulty))
}

// EstimatedDifficultyEqualFold applies the EqualFold predicate on the "estimated_difficulty" field.
func EstimatedDifficultyEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldEstimatedDifficulty, v))
}

// EstimatedDifficultyContainsFold applies the ContainsFold predicate on the "estimated_difficulty" field.
func EstimatedDifficultyContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldEstimatedDifficulty, v))
}

// EstimatedTimelineEQ applies the EQ predicate on the "estimated_timeline" field.
func EstimatedTimelineEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldEstimatedTimeline, v))
}

// EstimatedTimelineNEQ applies the NEQ predicate on the "estimated_timeline" field.
func EstimatedTimelineNEQ(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldEstimatedTimeline, v))
}

// EstimatedTimelineIn applies the In predicate on the "estimated_timeline" field.
func EstimatedTimelineIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldEstimatedTimeline, vs...))
}

// EstimatedTimelineNotIn applies the NotIn predicate on the "estimated_timeline" field.
func EstimatedTimelineNotIn(vs ...string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldEstimatedTimeline, vs...))
}

// EstimatedTimelineGT applies the GT predicate on the "estimated_timeline" field.
func EstimatedTimelineGT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldEstimatedTimeline, v))
}

// EstimatedTimelineGTE applies the GTE predicate on the "estimated_timeline" field.
func EstimatedTimelineGTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldEstimatedTimeline, v))
}

// EstimatedTimelineLT applies the LT predicate on the "estimated_timeline" field.
func EstimatedTimelineLT(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldEstimatedTimeline, v))
}

// EstimatedTimelineLTE applies the LTE predicate on the "estimated_timeline" field.
func EstimatedTimelineLTE(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldEstimatedTimeline, v))
}

// EstimatedTimelineContains applies the Contains predicate on the "estimated_timeline" field.
func EstimatedTimelineContains(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContains(FieldEstimatedTimeline, v))
}

// EstimatedTimelineHasPrefix applies the HasPrefix predicate on the "estimated_timeline" field.
func EstimatedTimelineHasPrefix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasPrefix(FieldEstimatedTimeline, v))
}

// EstimatedTimelineHasSuffix applies the HasSuffix predicate on the "estimated_timeline" field.
func EstimatedTimelineHasSuffix(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldHasSuffix(FieldEstimatedTimeline, v))
}

// EstimatedTimelineIsNil applies the IsNil predicate on the "estimated_timeline" field.
func EstimatedTimelineIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldEstimatedTimeline))
}

// EstimatedTimelineNotNil applies the NotNil predicate on the "estimated_timeline" field.
func EstimatedTimelineNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldEstimatedTimeline))
}

// EstimatedTimelineEqualFold applies the EqualFold predicate on the "estimated_timeline" field.
func EstimatedTimelineEqualFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEqualFold(FieldEstimatedTimeline, v))
}

// EstimatedTimelineContainsFold applies the ContainsFold predicate on the "estimated_timeline" field.
func EstimatedTimelineContainsFold(v string) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldContainsFold(FieldEstimatedTimeline, v))
}

// EvidenceAnchorsIsNil applies the IsNil predicate on the "evidence_anchors" field.
func EvidenceAnchorsIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldEvidenceAnchors))
}

// EvidenceAnchorsNotNil applies the NotNil predicate on the "evidence_anchors" field.
func EvidenceAnchorsNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldEvidenceAnchors))
}

// SupportingPapersIsNil applies the IsNil predicate on the "supporting_papers" field.
func SupportingPapersIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldSupportingPapers))
}

// SupportingPapersNotNil applies the NotNil predicate on the "supporting_papers" field.
func SupportingPapersNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldSupportingPapers))
}

// ConflictingPapersIsNil applies the IsNil predicate on the "conflicting_papers" field.
func ConflictingPapersIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldConflictingPapers))
}

// ConflictingPapersNotNil applies the NotNil predicate on the "conflicting_papers" field.
func ConflictingPapersNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldConflictingPapers))
}

// SuggestedTopicsIsNil applies the IsNil predicate on the "suggested_topics" field.
func SuggestedTopicsIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldSuggestedTopics))
}

// SuggestedTopicsNotNil applies the NotNil predicate on the "suggested_topics" field.
func SuggestedTopicsNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldSuggestedTopics))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldCreatedAt, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.ResearchGap {
	return predicate.ResearchGap(sql.FieldNotNull(FieldValidatedAt))
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.ResearchGap {
	return predicate.ResearchGap(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.GapAnalysis) predicate.ResearchGap {
	return predicate.ResearchGap(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTopics applies the HasEdge predicate on the "topics" edge.
func HasTopics() predicate.ResearchGap {
	return predicate.ResearchGap(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TopicsTable, TopicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicsWith applies the HasEdge predicate on the "topics" edge with a given conditions (other predicates).
func HasTopicsWith(preds ...predicate.GapTopic) predicate.ResearchGap {
	return predicate.ResearchGap(func(s *sql.Selector) {
		step := newTopicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValidationPapers applies the HasEdge predicate on the "validation_papers" edge.
func HasValidationPapers() predicate.ResearchGap {
	return predicate.ResearchGap(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValidationPapersTable, ValidationPapersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValidationPapersWith applies the HasEdge predicate on the "validation_papers" edge with a given conditions (other predicates).
func HasValidationPapersWith(preds ...predicate.GapValidationPaper) predicate.ResearchGap {
	return predicate.ResearchGap(func(s *sql.Selector) {
		step := newValidationPapersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchGap) predicate.ResearchGap {
	return predicate.ResearchGap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchGap) predicate.ResearchGap {
	return predicate.ResearchGap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchGap) predicate.ResearchGap {
	return predicate.ResearchGap(sql.NotPredicates(p))
}
