// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/predicate"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// ResearchGapUpdate is the builder for updating ResearchGap entities.
type ResearchGapUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchGapMutation
}

// Where appends a list predicates to the ResearchGapUpdate builder.
func (_u *ResearchGapUpdate) Where(ps ...predicate.ResearchGap) *ResearchGapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGapID sets the "gap_id" field.
func (_u *ResearchGapUpdate) SetGapID(v string) *ResearchGapUpdate {
	_u.mutation.SetGapID(v)
	return _u
}

// SetNillableGapID sets the "gap_id" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableGapID(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetGapID(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ResearchGapUpdate) SetOrderIndex(v int) *ResearchGapUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableOrderIndex(v *int) *ResearchGapUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ResearchGapUpdate) AddOrderIndex(v int) *ResearchGapUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ResearchGapUpdate) SetName(v string) *ResearchGapUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableName(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ResearchGapUpdate) SetDescription(v string) *ResearchGapUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableDescription(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ResearchGapUpdate) ClearDescription() *ResearchGapUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ResearchGapUpdate) SetCategory(v string) *ResearchGapUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableCategory(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ResearchGapUpdate) ClearCategory() *ResearchGapUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ResearchGapUpdate) SetValidationStatus(v researchgap.ValidationStatus) *ResearchGapUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableValidationStatus(v *researchgap.ValidationStatus) *ResearchGapUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationConfidence sets the "validation_confidence" field.
func (_u *ResearchGapUpdate) SetValidationConfidence(v float64) *ResearchGapUpdate {
	_u.mutation.ResetValidationConfidence()
	_u.mutation.SetValidationConfidence(v)
	return _u
}

// SetNillableValidationConfidence sets the "validation_confidence" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableValidationConfidence(v *float64) *ResearchGapUpdate {
	if v != nil {
		_u.SetValidationConfidence(*v)
	}
	return _u
}

// AddValidationConfidence adds value to the "validation_confidence" field.
func (_u *ResearchGapUpdate) AddValidationConfidence(v float64) *ResearchGapUpdate {
	_u.mutation.AddValidationConfidence(v)
	return _u
}

// ClearValidationConfidence clears the value of the "validation_confidence" field.
func (_u *ResearchGapUpdate) ClearValidationConfidence() *ResearchGapUpdate {
	_u.mutation.ClearValidationConfidence()
	return _u
}

// SetInitialReasoning sets the "initial_reasoning" field.
func (_u *ResearchGapUpdate) SetInitialReasoning(v string) *ResearchGapUpdate {
	_u.mutation.SetInitialReasoning(v)
	return _u
}

// SetNillableInitialReasoning sets the "initial_reasoning" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableInitialReasoning(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetInitialReasoning(*v)
	}
	return _u
}

// ClearInitialReasoning clears the value of the "initial_reasoning" field.
func (_u *ResearchGapUpdate) ClearInitialReasoning() *ResearchGapUpdate {
	_u.mutation.ClearInitialReasoning()
	return _u
}

// SetInitialEvidence sets the "initial_evidence" field.
func (_u *ResearchGapUpdate) SetInitialEvidence(v string) *ResearchGapUpdate {
	_u.mutation.SetInitialEvidence(v)
	return _u
}

// SetNillableInitialEvidence sets the "initial_evidence" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableInitialEvidence(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetInitialEvidence(*v)
	}
	return _u
}

// ClearInitialEvidence clears the value of the "initial_evidence" field.
func (_u *ResearchGapUpdate) ClearInitialEvidence() *ResearchGapUpdate {
	_u.mutation.ClearInitialEvidence()
	return _u
}

// SetValidationQuery sets the "validation_query" field.
func (_u *ResearchGapUpdate) SetValidationQuery(v string) *ResearchGapUpdate {
	_u.mutation.SetValidationQuery(v)
	return _u
}

// SetNillableValidationQuery sets the "validation_query" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableValidationQuery(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetValidationQuery(*v)
	}
	return _u
}

// ClearValidationQuery clears the value of the "validation_query" field.
func (_u *ResearchGapUpdate) ClearValidationQuery() *ResearchGapUpdate {
	_u.mutation.ClearValidationQuery()
	return _u
}

// SetPapersAnalyzedCount sets the "papers_analyzed_count" field.
func (_u *ResearchGapUpdate) SetPapersAnalyzedCount(v int) *ResearchGapUpdate {
	_u.mutation.ResetPapersAnalyzedCount()
	_u.mutation.SetPapersAnalyzedCount(v)
	return _u
}

// SetNillablePapersAnalyzedCount sets the "papers_analyzed_count" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillablePapersAnalyzedCount(v *int) *ResearchGapUpdate {
	if v != nil {
		_u.SetPapersAnalyzedCount(*v)
	}
	return _u
}

// AddPapersAnalyzedCount adds value to the "papers_analyzed_count" field.
func (_u *ResearchGapUpdate) AddPapersAnalyzedCount(v int) *ResearchGapUpdate {
	_u.mutation.AddPapersAnalyzedCount(v)
	return _u
}

// SetValidationReasoning sets the "validation_reasoning" field.
func (_u *ResearchGapUpdate) SetValidationReasoning(v string) *ResearchGapUpdate {
	_u.mutation.SetValidationReasoning(v)
	return _u
}

// SetNillableValidationReasoning sets the "validation_reasoning" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableValidationReasoning(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetValidationReasoning(*v)
	}
	return _u
}

// ClearValidationReasoning clears the value of the "validation_reasoning" field.
func (_u *ResearchGapUpdate) ClearValidationReasoning() *ResearchGapUpdate {
	_u.mutation.ClearValidationReasoning()
	return _u
}

// SetModificationHistory sets the "modification_history" field.
func (_u *ResearchGapUpdate) SetModificationHistory(v []map[string]interface{}) *ResearchGapUpdate {
	_u.mutation.SetModificationHistory(v)
	return _u
}

// AppendModificationHistory appends value to the "modification_history" field.
func (_u *ResearchGapUpdate) AppendModificationHistory(v []map[string]interface{}) *ResearchGapUpdate {
	_u.mutation.AppendModificationHistory(v)
	return _u
}

// ClearModificationHistory clears the value of the "modification_history" field.
func (_u *ResearchGapUpdate) ClearModificationHistory() *ResearchGapUpdate {
	_u.mutation.ClearModificationHistory()
	return _u
}

// SetPotentialImpact sets the "potential_impact" field.
func (_u *ResearchGapUpdate) SetPotentialImpact(v string) *ResearchGapUpdate {
	_u.mutation.SetPotentialImpact(v)
	return _u
}

// SetNillablePotentialImpact sets the "potential_impact" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillablePotentialImpact(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetPotentialImpact(*v)
	}
	return _u
}

// ClearPotentialImpact clears the value of the "potential_impact" field.
func (_u *ResearchGapUpdate) ClearPotentialImpact() *ResearchGapUpdate {
	_u.mutation.ClearPotentialImpact()
	return _u
}

// SetResearchHints sets the "research_hints" field.
func (_u *ResearchGapUpdate) SetResearchHints(v string) *ResearchGapUpdate {
	_u.mutation.SetResearchHints(v)
	return _u
}

// SetNillableResearchHints sets the "research_hints" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableResearchHints(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetResearchHints(*v)
	}
	return _u
}

// ClearResearchHints clears the value of the "research_hints" field.
func (_u *ResearchGapUpdate) ClearResearchHints() *ResearchGapUpdate {
	_u.mutation.ClearResearchHints()
	return _u
}

// SetImplementationSuggestions sets the "implementation_suggestions" field.
func (_u *ResearchGapUpdate) SetImplementationSuggestions(v string) *ResearchGapUpdate {
	_u.mutation.SetImplementationSuggestions(v)
	return _u
}

// SetNillableImplementationSuggestions sets the "implementation_suggestions" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableImplementationSuggestions(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetImplementationSuggestions(*v)
	}
	return _u
}

// ClearImplementationSuggestions clears the value of the "implementation_suggestions" field.
func (_u *ResearchGapUpdate) ClearImplementationSuggestions() *ResearchGapUpdate {
	_u.mutation.ClearImplementationSuggestions()
	return _u
}

// SetRisksAndChallenges sets the "risks_and_challenges" field.
func (_u *ResearchGapUpdate) SetRisksAndChallenges(v string) *ResearchGapUpdate {
	_u.mutation.SetRisksAndChallenges(v)
	return _u
}

// SetNillableRisksAndChallenges sets the "risks_and_challenges" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableRisksAndChallenges(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetRisksAndChallenges(*v)
	}
	return _u
}

// ClearRisksAndChallenges clears the value of the "risks_and_challenges" field.
func (_u *ResearchGapUpdate) ClearRisksAndChallenges() *ResearchGapUpdate {
	_u.mutation.ClearRisksAndChallenges()
	return _u
}

// SetRequiredResources sets the "required_resources" field.
func (_u *ResearchGapUpdate) SetRequiredResources(v string) *ResearchGapUpdate {
	_u.mutation.SetRequiredResources(v)
	return _u
}

// SetNillableRequiredResources sets the "required_resources" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableRequiredResources(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetRequiredResources(*v)
	}
	return _u
}

// ClearRequiredResources clears the value of the "required_resources" field.
func (_u *ResearchGapUpdate) ClearRequiredResources() *ResearchGapUpdate {
	_u.mutation.ClearRequiredResources()
	return _u
}

// SetEstimatedDifficulty sets the "estimated_difficulty" field.
func (_u *ResearchGapUpdate) SetEstimatedDifficulty(v string) *ResearchGapUpdate {
	_u.mutation.SetEstimatedDifficulty(v)
	return _u
}

// SetNillableEstimatedDifficulty sets the "estimated_difficulty" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableEstimatedDifficulty(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetEstimatedDifficulty(*v)
	}
	return _u
}

// ClearEstimatedDifficulty clears the value of the "estimated_difficulty" field.
func (_u *ResearchGapUpdate) ClearEstimatedDifficulty() *ResearchGapUpdate {
	_u.mutation.ClearEstimatedDifficulty()
	return _u
}

// SetEstimatedTimeline sets the "estimated_timeline" field.
func (_u *ResearchGapUpdate) SetEstimatedTimeline(v string) *ResearchGapUpdate {
	_u.mutation.SetEstimatedTimeline(v)
	return _u
}

// SetNillableEstimatedTimeline sets the "estimated_timeline" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableEstimatedTimeline(v *string) *ResearchGapUpdate {
	if v != nil {
		_u.SetEstimatedTimeline(*v)
	}
	return _u
}

// ClearEstimatedTimeline clears the value of the "estimated_timeline" field.
func (_u *ResearchGapUpdate) ClearEstimatedTimeline() *ResearchGapUpdate {
	_u.mutation.ClearEstimatedTimeline()
	return _u
}

// SetEvidenceAnchors sets the "evidence_anchors" field.
func (_u *ResearchGapUpdate) SetEvidenceAnchors(v []map[string]string) *ResearchGapUpdate {
	_u.mutation.SetEvidenceAnchors(v)
	return _u
}

// AppendEvidenceAnchors appends value to the "evidence_anchors" field.
func (_u *ResearchGapUpdate) AppendEvidenceAnchors(v []map[string]string) *ResearchGapUpdate {
	_u.mutation.AppendEvidenceAnchors(v)
	return _u
}

// ClearEvidenceAnchors clears the value of the "evidence_anchors" field.
func (_u *ResearchGapUpdate) ClearEvidenceAnchors() *ResearchGapUpdate {
	_u.mutation.ClearEvidenceAnchors()
	return _u
}

// SetSupportingPapers sets the "supporting_papers" field.
func (_u *ResearchGapUpdate) SetSupportingPapers(v []map[string]string) *ResearchGapUpdate {
	_u.mutation.SetSupportingPapers(v)
	return _u
}

// AppendSupportingPapers appends value to the "supporting_papers" field.
func (_u *ResearchGapUpdate) AppendSupportingPapers(v []map[string]string) *ResearchGapUpdate {
	_u.mutation.AppendSupportingPapers(v)
	return _u
}

// ClearSupportingPapers clears the value of the "supporting_papers" field.
func (_u *ResearchGapUpdate) ClearSupportingPapers() *ResearchGapUpdate {
	_u.mutation.ClearSupportingPapers()
	return _u
}

// SetConflictingPapers sets the "conflicting_papers" field.
func (_u *ResearchGapUpdate) SetConflictingPapers(v []map[string]string) *ResearchGapUpdate {
	_u.mutation.SetConflictingPapers(v)
	return _u
}

// AppendConflictingPapers appends value to the "conflicting_papers" field.
func (_u *ResearchGapUpdate) AppendConflictingPapers(v []map[string]string) *ResearchGapUpdate {
	_u.mutation.AppendConflictingPapers(v)
	return _u
}

// ClearConflictingPapers clears the value of the "conflicting_papers" field.
func (_u *ResearchGapUpdate) ClearConflictingPapers() *ResearchGapUpdate {
	_u.mutation.ClearConflictingPapers()
	return _u
}

// SetSuggestedTopics sets the "suggested_topics" field.
func (_u *ResearchGapUpdate) SetSuggestedTopics(v []map[string]interface{}) *ResearchGapUpdate {
	_u.mutation.SetSuggestedTopics(v)
	return _u
}

// AppendSuggestedTopics appends value to the "suggested_topics" field.
func (_u *ResearchGapUpdate) AppendSuggestedTopics(v []map[string]interface{}) *ResearchGapUpdate {
	_u.mutation.AppendSuggestedTopics(v)
	return _u
}

// ClearSuggestedTopics clears the value of the "suggested_topics" field.
func (_u *ResearchGapUpdate) ClearSuggestedTopics() *ResearchGapUpdate {
	_u.mutation.ClearSuggestedTopics()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ResearchGapUpdate) SetValidatedAt(v time.Time) *ResearchGapUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ResearchGapUpdate) SetNillableValidatedAt(v *time.Time) *ResearchGapUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ResearchGapUpdate) ClearValidatedAt() *ResearchGapUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// AddTopicIDs adds the "topics" edge to the GapTopic entity by IDs.
func (_u *ResearchGapUpdate) AddTopicIDs(ids ...uuid.UUID) *ResearchGapUpdate {
	_u.mutation.AddTopicIDs(ids...)
	return _u
}

// AddTopics adds the "topics" edges to the GapTopic entity.
func (_u *ResearchGapUpdate) AddTopics(v ...*GapTopic) *ResearchGapUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicIDs(ids...)
}

// AddValidationPaperIDs adds the "validation_papers" edge to the GapValidationPaper entity by IDs.
func (_u *ResearchGapUpdate) AddValidationPaperIDs(ids ...uuid.UUID) *ResearchGapUpdate {
	_u.mutation.AddValidationPaperIDs(ids...)
	return _u
}

// AddValidationPapers adds the "validation_papers" edges to the GapValidationPaper entity.
func (_u *ResearchGapUpdate) AddValidationPapers(v ...*GapValidationPaper) *ResearchGapUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationPaperIDs(ids...)
}

// Mutation returns the ResearchGapMutation object of the builder.
func (_u *ResearchGapUpdate) Mutation() *ResearchGapMutation {
	return _u.mutation
}

// ClearTopics clears all "topics" edges to the GapTopic entity.
func (_u *ResearchGapUpdate) ClearTopics() *ResearchGapUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// RemoveTopicIDs removes the "topics" edge to GapTopic entities by IDs.
func (_u *ResearchGapUpdate) RemoveTopicIDs(ids ...uuid.UUID) *ResearchGapUpdate {
	_u.mutation.RemoveTopicIDs(ids...)
	return _u
}

// RemoveTopics removes "topics" edges to GapTopic entities.
func (_u *ResearchGapUpdate) RemoveTopics(v ...*GapTopic) *ResearchGapUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicIDs(ids...)
}

// ClearValidationPapers clears all "validation_papers" edges to the GapValidationPaper entity.
func (_u *ResearchGapUpdate) ClearValidationPapers() *ResearchGapUpdate {
	_u.mutation.ClearValidationPapers()
	return _u
}

// RemoveValidationPaperIDs removes the "validation_papers" edge to GapValidationPaper entities by IDs.
func (_u *ResearchGapUpdate) RemoveValidationPaperIDs(ids ...uuid.UUID) *ResearchGapUpdate {
	_u.mutation.RemoveValidationPaperIDs(ids...)
	return _u
}

// RemoveValidationPapers removes "validation_papers" edges to GapValidationPaper entities.
func (_u *ResearchGapUpdate) RemoveValidationPapers(v ...*GapValidationPaper) *ResearchGapUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationPaperIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchGapUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchGapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchGapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchGapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchGapUpdate) check() error {
	if v, ok := _u.mutation.GapID(); ok {
		if err := researchgap.GapIDValidator(v); err != nil {
			return &ValidationError{Name: "gap_id", err: fmt.Errorf(`ent: validator failed for field "ResearchGap.gap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := researchgap.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ResearchGap.validation_status": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchGap.analysis"`)
	}
	return nil
}

func (_u *ResearchGapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchgap.Table, researchgap.Columns, sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GapID(); ok {
		_spec.SetField(researchgap.FieldGapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(researchgap.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(researchgap.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(researchgap.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(researchgap.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(researchgap.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(researchgap.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(researchgap.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(researchgap.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationConfidence(); ok {
		_spec.SetField(researchgap.FieldValidationConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValidationConfidence(); ok {
		_spec.AddField(researchgap.FieldValidationConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ValidationConfidenceCleared() {
		_spec.ClearField(researchgap.FieldValidationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InitialReasoning(); ok {
		_spec.SetField(researchgap.FieldInitialReasoning, field.TypeString, value)
	}
	if _u.mutation.InitialReasoningCleared() {
		_spec.ClearField(researchgap.FieldInitialReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.InitialEvidence(); ok {
		_spec.SetField(researchgap.FieldInitialEvidence, field.TypeString, value)
	}
	if _u.mutation.InitialEvidenceCleared() {
		_spec.ClearField(researchgap.FieldInitialEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationQuery(); ok {
		_spec.SetField(researchgap.FieldValidationQuery, field.TypeString, value)
	}
	if _u.mutation.ValidationQueryCleared() {
		_spec.ClearField(researchgap.FieldValidationQuery, field.TypeString)
	}
	if value, ok := _u.mutation.PapersAnalyzedCount(); ok {
		_spec.SetField(researchgap.FieldPapersAnalyzedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPapersAnalyzedCount(); ok {
		_spec.AddField(researchgap.FieldPapersAnalyzedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationReasoning(); ok {
		_spec.SetField(researchgap.FieldValidationReasoning, field.TypeString, value)
	}
	if _u.mutation.ValidationReasoningCleared() {
		_spec.ClearField(researchgap.FieldValidationReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ModificationHistory(); ok {
		_spec.SetField(researchgap.FieldModificationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModificationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldModificationHistory, value)
		})
	}
	if _u.mutation.ModificationHistoryCleared() {
		_spec.ClearField(researchgap.FieldModificationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.PotentialImpact(); ok {
		_spec.SetField(researchgap.FieldPotentialImpact, field.TypeString, value)
	}
	if _u.mutation.PotentialImpactCleared() {
		_spec.ClearField(researchgap.FieldPotentialImpact, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchHints(); ok {
		_spec.SetField(researchgap.FieldResearchHints, field.TypeString, value)
	}
	if _u.mutation.ResearchHintsCleared() {
		_spec.ClearField(researchgap.FieldResearchHints, field.TypeString)
	}
	if value, ok := _u.mutation.ImplementationSuggestions(); ok {
		_spec.SetField(researchgap.FieldImplementationSuggestions, field.TypeString, value)
	}
	if _u.mutation.ImplementationSuggestionsCleared() {
		_spec.ClearField(researchgap.FieldImplementationSuggestions, field.TypeString)
	}
	if value, ok := _u.mutation.RisksAndChallenges(); ok {
		_spec.SetField(researchgap.FieldRisksAndChallenges, field.TypeString, value)
	}
	if _u.mutation.RisksAndChallengesCleared() {
		_spec.ClearField(researchgap.FieldRisksAndChallenges, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredResources(); ok {
		_spec.SetField(researchgap.FieldRequiredResources, field.TypeString, value)
	}
	if _u.mutation.RequiredResourcesCleared() {
		_spec.ClearField(researchgap.FieldRequiredResources, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedDifficulty(); ok {
		_spec.SetField(researchgap.FieldEstimatedDifficulty, field.TypeString, value)
	}
	if _u.mutation.EstimatedDifficultyCleared() {
		_spec.ClearField(researchgap.FieldEstimatedDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedTimeline(); ok {
		_spec.SetField(researchgap.FieldEstimatedTimeline, field.TypeString, value)
	}
	if _u.mutation.EstimatedTimelineCleared() {
		_spec.ClearField(researchgap.FieldEstimatedTimeline, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceAnchors(); ok {
		_spec.SetField(researchgap.FieldEvidenceAnchors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidenceAnchors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldEvidenceAnchors, value)
		})
	}
	if _u.mutation.EvidenceAnchorsCleared() {
		_spec.ClearField(researchgap.FieldEvidenceAnchors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupportingPapers(); ok {
		_spec.SetField(researchgap.FieldSupportingPapers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingPapers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldSupportingPapers, value)
		})
	}
	if _u.mutation.SupportingPapersCleared() {
		_spec.ClearField(researchgap.FieldSupportingPapers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictingPapers(); ok {
		_spec.SetField(researchgap.FieldConflictingPapers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflictingPapers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldConflictingPapers, value)
		})
	}
	if _u.mutation.ConflictingPapersCleared() {
		_spec.ClearField(researchgap.FieldConflictingPapers, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuggestedTopics(); ok {
		_spec.SetField(researchgap.FieldSuggestedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldSuggestedTopics, value)
		})
	}
	if _u.mutation.SuggestedTopicsCleared() {
		_spec.ClearField(researchgap.FieldSuggestedTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(researchgap.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(researchgap.FieldValidatedAt, field.TypeTime)
	}
	if _u.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.TopicsTable,
			Columns: []string{researchgap.TopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !_u.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.TopicsTable,
			Columns: []string{researchgap.TopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.TopicsTable,
			Columns: []string{researchgap.TopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationPapersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.ValidationPapersTable,
			Columns: []string{researchgap.ValidationPapersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationPapersIDs(); len(nodes) > 0 && !_u.mutation.ValidationPapersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.ValidationPapersTable,
			Columns: []string{researchgap.ValidationPapersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationPapersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.ValidationPapersTable,
			Columns: []string{researchgap.ValidationPapersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchgap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchGapUpdateOne is the builder for updating a single ResearchGap entity.
type ResearchGapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchGapMutation
}

// SetGapID sets the "gap_id" field.
func (_u *ResearchGapUpdateOne) SetGapID(v string) *ResearchGapUpdateOne {
	_u.mutation.SetGapID(v)
	return _u
}

// SetNillableGapID sets the "gap_id" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableGapID(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetGapID(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ResearchGapUpdateOne) SetOrderIndex(v int) *ResearchGapUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableOrderIndex(v *int) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ResearchGapUpdateOne) AddOrderIndex(v int) *ResearchGapUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ResearchGapUpdateOne) SetName(v string) *ResearchGapUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableName(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ResearchGapUpdateOne) SetDescription(v string) *ResearchGapUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableDescription(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ResearchGapUpdateOne) ClearDescription() *ResearchGapUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ResearchGapUpdateOne) SetCategory(v string) *ResearchGapUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableCategory(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ResearchGapUpdateOne) ClearCategory() *ResearchGapUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ResearchGapUpdateOne) SetValidationStatus(v researchgap.ValidationStatus) *ResearchGapUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableValidationStatus(v *researchgap.ValidationStatus) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationConfidence sets the "validation_confidence" field.
func (_u *ResearchGapUpdateOne) SetValidationConfidence(v float64) *ResearchGapUpdateOne {
	_u.mutation.ResetValidationConfidence()
	_u.mutation.SetValidationConfidence(v)
	return _u
}

// SetNillableValidationConfidence sets the "validation_confidence" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableValidationConfidence(v *float64) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetValidationConfidence(*v)
	}
	return _u
}

// AddValidationConfidence adds value to the "validation_confidence" field.
func (_u *ResearchGapUpdateOne) AddValidationConfidence(v float64) *ResearchGapUpdateOne {
	_u.mutation.AddValidationConfidence(v)
	return _u
}

// ClearValidationConfidence clears the value of the "validation_confidence" field.
func (_u *ResearchGapUpdateOne) ClearValidationConfidence() *ResearchGapUpdateOne {
	_u.mutation.ClearValidationConfidence()
	return _u
}

// SetInitialReasoning sets the "initial_reasoning" field.
func (_u *ResearchGapUpdateOne) SetInitialReasoning(v string) *ResearchGapUpdateOne {
	_u.mutation.SetInitialReasoning(v)
	return _u
}

// SetNillableInitialReasoning sets the "initial_reasoning" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableInitialReasoning(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetInitialReasoning(*v)
	}
	return _u
}

// ClearInitialReasoning clears the value of the "initial_reasoning" field.
func (_u *ResearchGapUpdateOne) ClearInitialReasoning() *ResearchGapUpdateOne {
	_u.mutation.ClearInitialReasoning()
	return _u
}

// SetInitialEvidence sets the "initial_evidence" field.
func (_u *ResearchGapUpdateOne) SetInitialEvidence(v string) *ResearchGapUpdateOne {
	_u.mutation.SetInitialEvidence(v)
	return _u
}

// SetNillableInitialEvidence sets the "initial_evidence" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableInitialEvidence(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetInitialEvidence(*v)
	}
	return _u
}

// ClearInitialEvidence clears the value of the "initial_evidence" field.
func (_u *ResearchGapUpdateOne) ClearInitialEvidence() *ResearchGapUpdateOne {
	_u.mutation.ClearInitialEvidence()
	return _u
}

// SetValidationQuery sets the "validation_query" field.
func (_u *ResearchGapUpdateOne) SetValidationQuery(v string) *ResearchGapUpdateOne {
	_u.mutation.SetValidationQuery(v)
	return _u
}

// SetNillableValidationQuery sets the "validation_query" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableValidationQuery(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetValidationQuery(*v)
	}
	return _u
}

// ClearValidationQuery clears the value of the "validation_query" field.
func (_u *ResearchGapUpdateOne) ClearValidationQuery() *ResearchGapUpdateOne {
	_u.mutation.ClearValidationQuery()
	return _u
}

// SetPapersAnalyzedCount sets the "papers_analyzed_count" field.
func (_u *ResearchGapUpdateOne) SetPapersAnalyzedCount(v int) *ResearchGapUpdateOne {
	_u.mutation.ResetPapersAnalyzedCount()
	_u.mutation.SetPapersAnalyzedCount(v)
	return _u
}

// SetNillablePapersAnalyzedCount sets the "papers_analyzed_count" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillablePapersAnalyzedCount(v *int) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetPapersAnalyzedCount(*v)
	}
	return _u
}

// AddPapersAnalyzedCount adds value to the "papers_analyzed_count" field.
func (_u *ResearchGapUpdateOne) AddPapersAnalyzedCount(v int) *ResearchGapUpdateOne {
	_u.mutation.AddPapersAnalyzedCount(v)
	return _u
}

// SetValidationReasoning sets the "validation_reasoning" field.
func (_u *ResearchGapUpdateOne) SetValidationReasoning(v string) *ResearchGapUpdateOne {
	_u.mutation.SetValidationReasoning(v)
	return _u
}

// SetNillableValidationReasoning sets the "validation_reasoning" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableValidationReasoning(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetValidationReasoning(*v)
	}
	return _u
}

// ClearValidationReasoning clears the value of the "validation_reasoning" field.
func (_u *ResearchGapUpdateOne) ClearValidationReasoning() *ResearchGapUpdateOne {
	_u.mutation.ClearValidationReasoning()
	return _u
}

// SetModificationHistory sets the "modification_history" field.
func (_u *ResearchGapUpdateOne) SetModificationHistory(v []map[string]interface{}) *ResearchGapUpdateOne {
	_u.mutation.SetModificationHistory(v)
	return _u
}

// AppendModificationHistory appends value to the "modification_history" field.
func (_u *ResearchGapUpdateOne) AppendModificationHistory(v []map[string]interface{}) *ResearchGapUpdateOne {
	_u.mutation.AppendModificationHistory(v)
	return _u
}

// ClearModificationHistory clears the value of the "modification_history" field.
func (_u *ResearchGapUpdateOne) ClearModificationHistory() *ResearchGapUpdateOne {
	_u.mutation.ClearModificationHistory()
	return _u
}

// SetPotentialImpact sets the "potential_impact" field.
func (_u *ResearchGapUpdateOne) SetPotentialImpact(v string) *ResearchGapUpdateOne {
	_u.mutation.SetPotentialImpact(v)
	return _u
}

// SetNillablePotentialImpact sets the "potential_impact" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillablePotentialImpact(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetPotentialImpact(*v)
	}
	return _u
}

// ClearPotentialImpact clears the value of the "potential_impact" field.
func (_u *ResearchGapUpdateOne) ClearPotentialImpact() *ResearchGapUpdateOne {
	_u.mutation.ClearPotentialImpact()
	return _u
}

// SetResearchHints sets the "research_hints" field.
func (_u *ResearchGapUpdateOne) SetResearchHints(v string) *ResearchGapUpdateOne {
	_u.mutation.SetResearchHints(v)
	return _u
}

// SetNillableResearchHints sets the "research_hints" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableResearchHints(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetResearchHints(*v)
	}
	return _u
}

// ClearResearchHints clears the value of the "research_hints" field.
func (_u *ResearchGapUpdateOne) ClearResearchHints() *ResearchGapUpdateOne {
	_u.mutation.ClearResearchHints()
	return _u
}

// SetImplementationSuggestions sets the "implementation_suggestions" field.
func (_u *ResearchGapUpdateOne) SetImplementationSuggestions(v string) *ResearchGapUpdateOne {
	_u.mutation.SetImplementationSuggestions(v)
	return _u
}

// SetNillableImplementationSuggestions sets the "implementation_suggestions" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableImplementationSuggestions(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetImplementationSuggestions(*v)
	}
	return _u
}

// ClearImplementationSuggestions clears the value of the "implementation_suggestions" field.
func (_u *ResearchGapUpdateOne) ClearImplementationSuggestions() *ResearchGapUpdateOne {
	_u.mutation.ClearImplementationSuggestions()
	return _u
}

// SetRisksAndChallenges sets the "risks_and_challenges" field.
func (_u *ResearchGapUpdateOne) SetRisksAndChallenges(v string) *ResearchGapUpdateOne {
	_u.mutation.SetRisksAndChallenges(v)
	return _u
}

// SetNillableRisksAndChallenges sets the "risks_and_challenges" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableRisksAndChallenges(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetRisksAndChallenges(*v)
	}
	return _u
}

// ClearRisksAndChallenges clears the value of the "risks_and_challenges" field.
func (_u *ResearchGapUpdateOne) ClearRisksAndChallenges() *ResearchGapUpdateOne {
	_u.mutation.ClearRisksAndChallenges()
	return _u
}

// SetRequiredResources sets the "required_resources" field.
func (_u *ResearchGapUpdateOne) SetRequiredResources(v string) *ResearchGapUpdateOne {
	_u.mutation.SetRequiredResources(v)
	return _u
}

// SetNillableRequiredResources sets the "required_resources" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableRequiredResources(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetRequiredResources(*v)
	}
	return _u
}

// ClearRequiredResources clears the value of the "required_resources" field.
func (_u *ResearchGapUpdateOne) ClearRequiredResources() *ResearchGapUpdateOne {
	_u.mutation.ClearRequiredResources()
	return _u
}

// SetEstimatedDifficulty sets the "estimated_difficulty" field.
func (_u *ResearchGapUpdateOne) SetEstimatedDifficulty(v string) *ResearchGapUpdateOne {
	_u.mutation.SetEstimatedDifficulty(v)
	return _u
}

// SetNillableEstimatedDifficulty sets the "estimated_difficulty" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableEstimatedDifficulty(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetEstimatedDifficulty(*v)
	}
	return _u
}

// ClearEstimatedDifficulty clears the value of the "estimated_difficulty" field.
func (_u *ResearchGapUpdateOne) ClearEstimatedDifficulty() *ResearchGapUpdateOne {
	_u.mutation.ClearEstimatedDifficulty()
	return _u
}

// SetEstimatedTimeline sets the "estimated_timeline" field.
func (_u *ResearchGapUpdateOne) SetEstimatedTimeline(v string) *ResearchGapUpdateOne {
	_u.mutation.SetEstimatedTimeline(v)
	return _u
}

// SetNillableEstimatedTimeline sets the "estimated_timeline" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableEstimatedTimeline(v *string) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetEstimatedTimeline(*v)
	}
	return _u
}

// ClearEstimatedTimeline clears the value of the "estimated_timeline" field.
func (_u *ResearchGapUpdateOne) ClearEstimatedTimeline() *ResearchGapUpdateOne {
	_u.mutation.ClearEstimatedTimeline()
	return _u
}

// SetEvidenceAnchors sets the "evidence_anchors" field.
func (_u *ResearchGapUpdateOne) SetEvidenceAnchors(v []map[string]string) *ResearchGapUpdateOne {
	_u.mutation.SetEvidenceAnchors(v)
	return _u
}

// AppendEvidenceAnchors appends value to the "evidence_anchors" field.
func (_u *ResearchGapUpdateOne) AppendEvidenceAnchors(v []map[string]string) *ResearchGapUpdateOne {
	_u.mutation.AppendEvidenceAnchors(v)
	return _u
}

// ClearEvidenceAnchors clears the value of the "evidence_anchors" field.
func (_u *ResearchGapUpdateOne) ClearEvidenceAnchors() *ResearchGapUpdateOne {
	_u.mutation.ClearEvidenceAnchors()
	return _u
}

// SetSupportingPapers sets the "supporting_papers" field.
func (_u *ResearchGapUpdateOne) SetSupportingPapers(v []map[string]string) *ResearchGapUpdateOne {
	_u.mutation.SetSupportingPapers(v)
	return _u
}

// AppendSupportingPapers appends value to the "supporting_papers" field.
func (_u *ResearchGapUpdateOne) AppendSupportingPapers(v []map[string]string) *ResearchGapUpdateOne {
	_u.mutation.AppendSupportingPapers(v)
	return _u
}

// ClearSupportingPapers clears the value of the "supporting_papers" field.
func (_u *ResearchGapUpdateOne) ClearSupportingPapers() *ResearchGapUpdateOne {
	_u.mutation.ClearSupportingPapers()
	return _u
}

// SetConflictingPapers sets the "conflicting_papers" field.
func (_u *ResearchGapUpdateOne) SetConflictingPapers(v []map[string]string) *ResearchGapUpdateOne {
	_u.mutation.SetConflictingPapers(v)
	return _u
}

// AppendConflictingPapers appends value to the "conflicting_papers" field.
func (_u *ResearchGapUpdateOne) AppendConflictingPapers(v []map[string]string) *ResearchGapUpdateOne {
	_u.mutation.AppendConflictingPapers(v)
	return _u
}

// ClearConflictingPapers clears the value of the "conflicting_papers" field.
func (_u *ResearchGapUpdateOne) ClearConflictingPapers() *ResearchGapUpdateOne {
	_u.mutation.ClearConflictingPapers()
	return _u
}

// SetSuggestedTopics sets the "suggested_topics" field.
func (_u *ResearchGapUpdateOne) SetSuggestedTopics(v []map[string]interface{}) *ResearchGapUpdateOne {
	_u.mutation.SetSuggestedTopics(v)
	return _u
}

// AppendSuggestedTopics appends value to the "suggested_topics" field.
func (_u *ResearchGapUpdateOne) AppendSuggestedTopics(v []map[string]interface{}) *ResearchGapUpdateOne {
	_u.mutation.AppendSuggestedTopics(v)
	return _u
}

// ClearSuggestedTopics clears the value of the "suggested_topics" field.
func (_u *ResearchGapUpdateOne) ClearSuggestedTopics() *ResearchGapUpdateOne {
	_u.mutation.ClearSuggestedTopics()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ResearchGapUpdateOne) SetValidatedAt(v time.Time) *ResearchGapUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ResearchGapUpdateOne) SetNillableValidatedAt(v *time.Time) *ResearchGapUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ResearchGapUpdateOne) ClearValidatedAt() *ResearchGapUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// AddTopicIDs adds the "topics" edge to the GapTopic entity by IDs.
func (_u *ResearchGapUpdateOne) AddTopicIDs(ids ...uuid.UUID) *ResearchGapUpdateOne {
	_u.mutation.AddTopicIDs(ids...)
	return _u
}

// AddTopics adds the "topics" edges to the GapTopic entity.
func (_u *ResearchGapUpdateOne) AddTopics(v ...*GapTopic) *ResearchGapUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicIDs(ids...)
}

// AddValidationPaperIDs adds the "validation_papers" edge to the GapValidationPaper entity by IDs.
func (_u *ResearchGapUpdateOne) AddValidationPaperIDs(ids ...uuid.UUID) *ResearchGapUpdateOne {
	_u.mutation.AddValidationPaperIDs(ids...)
	return _u
}

// AddValidationPapers adds the "validation_papers" edges to the GapValidationPaper entity.
func (_u *ResearchGapUpdateOne) AddValidationPapers(v ...*GapValidationPaper) *ResearchGapUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationPaperIDs(ids...)
}

// Mutation returns the ResearchGapMutation object of the builder.
func (_u *ResearchGapUpdateOne) Mutation() *ResearchGapMutation {
	return _u.mutation
}

// ClearTopics clears all "topics" edges to the GapTopic entity.
func (_u *ResearchGapUpdateOne) ClearTopics() *ResearchGapUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// RemoveTopicIDs removes the "topics" edge to GapTopic entities by IDs.
func (_u *ResearchGapUpdateOne) RemoveTopicIDs(ids ...uuid.UUID) *ResearchGapUpdateOne {
	_u.mutation.RemoveTopicIDs(ids...)
	return _u
}

// RemoveTopics removes "topics" edges to GapTopic entities.
func (_u *ResearchGapUpdateOne) RemoveTopics(v ...*GapTopic) *ResearchGapUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicIDs(ids...)
}

// ClearValidationPapers clears all "validation_papers" edges to the GapValidationPaper entity.
func (_u *ResearchGapUpdateOne) ClearValidationPapers() *ResearchGapUpdateOne {
	_u.mutation.ClearValidationPapers()
	return _u
}

// RemoveValidationPaperIDs removes the "validation_papers" edge to GapValidationPaper entities by IDs.
func (_u *ResearchGapUpdateOne) RemoveValidationPaperIDs(ids ...uuid.UUID) *ResearchGapUpdateOne {
	_u.mutation.RemoveValidationPaperIDs(ids...)
	return _u
}

// RemoveValidationPapers removes "validation_papers" edges to GapValidationPaper entities.
func (_u *ResearchGapUpdateOne) RemoveValidationPapers(v ...*GapValidationPaper) *ResearchGapUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationPaperIDs(ids...)
}

// Where appends a list predicates to the ResearchGapUpdate builder.
func (_u *ResearchGapUpdateOne) Where(ps ...predicate.ResearchGap) *ResearchGapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchGapUpdateOne) Select(field string, fields ...string) *ResearchGapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchGap entity.
func (_u *ResearchGapUpdateOne) Save(ctx context.Context) (*ResearchGap, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchGapUpdateOne) SaveX(ctx context.Context) *ResearchGap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchGapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchGapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchGapUpdateOne) check() error {
	if v, ok := _u.mutation.GapID(); ok {
		if err := researchgap.GapIDValidator(v); err != nil {
			return &ValidationError{Name: "gap_id", err: fmt.Errorf(`ent: validator failed for field "ResearchGap.gap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := researchgap.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ResearchGap.validation_status": %w`, err)}
		}
	}
	if _u.mutation.AnalysisCleared() && len(_u.mutation.AnalysisIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchGap.analysis"`)
	}
	return nil
}

func (_u *ResearchGapUpdateOne) sqlSave(ctx context.Context) (_node *ResearchGap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchgap.Table, researchgap.Columns, sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchGap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchgap.FieldID)
		for _, f := range fields {
			if !researchgap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchgap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GapID(); ok {
		_spec.SetField(researchgap.FieldGapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(researchgap.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(researchgap.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(researchgap.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(researchgap.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(researchgap.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(researchgap.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(researchgap.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(researchgap.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationConfidence(); ok {
		_spec.SetField(researchgap.FieldValidationConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValidationConfidence(); ok {
		_spec.AddField(researchgap.FieldValidationConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ValidationConfidenceCleared() {
		_spec.ClearField(researchgap.FieldValidationConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InitialReasoning(); ok {
		_spec.SetField(researchgap.FieldInitialReasoning, field.TypeString, value)
	}
	if _u.mutation.InitialReasoningCleared() {
		_spec.ClearField(researchgap.FieldInitialReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.InitialEvidence(); ok {
		_spec.SetField(researchgap.FieldInitialEvidence, field.TypeString, value)
	}
	if _u.mutation.InitialEvidenceCleared() {
		_spec.ClearField(researchgap.FieldInitialEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationQuery(); ok {
		_spec.SetField(researchgap.FieldValidationQuery, field.TypeString, value)
	}
	if _u.mutation.ValidationQueryCleared() {
		_spec.ClearField(researchgap.FieldValidationQuery, field.TypeString)
	}
	if value, ok := _u.mutation.PapersAnalyzedCount(); ok {
		_spec.SetField(researchgap.FieldPapersAnalyzedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPapersAnalyzedCount(); ok {
		_spec.AddField(researchgap.FieldPapersAnalyzedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationReasoning(); ok {
		_spec.SetField(researchgap.FieldValidationReasoning, field.TypeString, value)
	}
	if _u.mutation.ValidationReasoningCleared() {
		_spec.ClearField(researchgap.FieldValidationReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ModificationHistory(); ok {
		_spec.SetField(researchgap.FieldModificationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModificationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldModificationHistory, value)
		})
	}
	if _u.mutation.ModificationHistoryCleared() {
		_spec.ClearField(researchgap.FieldModificationHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.PotentialImpact(); ok {
		_spec.SetField(researchgap.FieldPotentialImpact, field.TypeString, value)
	}
	if _u.mutation.PotentialImpactCleared() {
		_spec.ClearField(researchgap.FieldPotentialImpact, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchHints(); ok {
		_spec.SetField(researchgap.FieldResearchHints, field.TypeString, value)
	}
	if _u.mutation.ResearchHintsCleared() {
		_spec.ClearField(researchgap.FieldResearchHints, field.TypeString)
	}
	if value, ok := _u.mutation.ImplementationSuggestions(); ok {
		_spec.SetField(researchgap.FieldImplementationSuggestions, field.TypeString, value)
	}
	if _u.mutation.ImplementationSuggestionsCleared() {
		_spec.ClearField(researchgap.FieldImplementationSuggestions, field.TypeString)
	}
	if value, ok := _u.mutation.RisksAndChallenges(); ok {
		_spec.SetField(researchgap.FieldRisksAndChallenges, field.TypeString, value)
	}
	if _u.mutation.RisksAndChallengesCleared() {
		_spec.ClearField(researchgap.FieldRisksAndChallenges, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredResources(); ok {
		_spec.SetField(researchgap.FieldRequiredResources, field.TypeString, value)
	}
	if _u.mutation.RequiredResourcesCleared() {
		_spec.ClearField(researchgap.FieldRequiredResources, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedDifficulty(); ok {
		_spec.SetField(researchgap.FieldEstimatedDifficulty, field.TypeString, value)
	}
	if _u.mutation.EstimatedDifficultyCleared() {
		_spec.ClearField(researchgap.FieldEstimatedDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedTimeline(); ok {
		_spec.SetField(researchgap.FieldEstimatedTimeline, field.TypeString, value)
	}
	if _u.mutation.EstimatedTimelineCleared() {
		_spec.ClearField(researchgap.FieldEstimatedTimeline, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceAnchors(); ok {
		_spec.SetField(researchgap.FieldEvidenceAnchors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidenceAnchors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldEvidenceAnchors, value)
		})
	}
	if _u.mutation.EvidenceAnchorsCleared() {
		_spec.ClearField(researchgap.FieldEvidenceAnchors, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupportingPapers(); ok {
		_spec.SetField(researchgap.FieldSupportingPapers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingPapers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldSupportingPapers, value)
		})
	}
	if _u.mutation.SupportingPapersCleared() {
		_spec.ClearField(researchgap.FieldSupportingPapers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConflictingPapers(); ok {
		_spec.SetField(researchgap.FieldConflictingPapers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflictingPapers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldConflictingPapers, value)
		})
	}
	if _u.mutation.ConflictingPapersCleared() {
		_spec.ClearField(researchgap.FieldConflictingPapers, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuggestedTopics(); ok {
		_spec.SetField(researchgap.FieldSuggestedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, researchgap.FieldSuggestedTopics, value)
		})
	}
	if _u.mutation.SuggestedTopicsCleared() {
		_spec.ClearField(researchgap.FieldSuggestedTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(researchgap.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(researchgap.FieldValidatedAt, field.TypeTime)
	}
	if _u.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.TopicsTable,
			Columns: []string{researchgap.TopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicsIDs(); len(nodes) > 0 && !_u.mutation.TopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.TopicsTable,
			Columns: []string{researchgap.TopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.TopicsTable,
			Columns: []string{researchgap.TopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ValidationPapersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.ValidationPapersTable,
			Columns: []string{researchgap.ValidationPapersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationPapersIDs(); len(nodes) > 0 && !_u.mutation.ValidationPapersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.ValidationPapersTable,
			Columns: []string{researchgap.ValidationPapersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationPapersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchgap.ValidationPapersTable,
			Columns: []string{researchgap.ValidationPapersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchGap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchgap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
