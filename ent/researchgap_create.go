// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// ResearchGapCreate is the builder for creating a ResearchGap entity.
type ResearchGapCreate struct {
	config
	mutation *ResearchGapMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetGapAnalysisID sets the "gap_analysis_id" field.
func (_c *ResearchGapCreate) SetGapAnalysisID(v uuid.UUID) *ResearchGapCreate {
	_c.mutation.SetGapAnalysisID(v)
	return _c
}

// SetGapID sets the "gap_id" field.
func (_c *ResearchGapCreate) SetGapID(v string) *ResearchGapCreate {
	_c.mutation.SetGapID(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ResearchGapCreate) SetOrderIndex(v int) *ResearchGapCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableOrderIndex(v *int) *ResearchGapCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ResearchGapCreate) SetName(v string) *ResearchGapCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ResearchGapCreate) SetDescription(v string) *ResearchGapCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableDescription(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ResearchGapCreate) SetCategory(v string) *ResearchGapCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableCategory(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *ResearchGapCreate) SetValidationStatus(v researchgap.ValidationStatus) *ResearchGapCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableValidationStatus(v *researchgap.ValidationStatus) *ResearchGapCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetValidationConfidence sets the "validation_confidence" field.
func (_c *ResearchGapCreate) SetValidationConfidence(v float64) *ResearchGapCreate {
	_c.mutation.SetValidationConfidence(v)
	return _c
}

// SetNillableValidationConfidence sets the "validation_confidence" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableValidationConfidence(v *float64) *ResearchGapCreate {
	if v != nil {
		_c.SetValidationConfidence(*v)
	}
	return _c
}

// SetInitialReasoning sets the "initial_reasoning" field.
func (_c *ResearchGapCreate) SetInitialReasoning(v string) *ResearchGapCreate {
	_c.mutation.SetInitialReasoning(v)
	return _c
}

// SetNillableInitialReasoning sets the "initial_reasoning" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableInitialReasoning(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetInitialReasoning(*v)
	}
	return _c
}

// SetInitialEvidence sets the "initial_evidence" field.
func (_c *ResearchGapCreate) SetInitialEvidence(v string) *ResearchGapCreate {
	_c.mutation.SetInitialEvidence(v)
	return _c
}

// SetNillableInitialEvidence sets the "initial_evidence" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableInitialEvidence(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetInitialEvidence(*v)
	}
	return _c
}

// SetValidationQuery sets the "validation_query" field.
func (_c *ResearchGapCreate) SetValidationQuery(v string) *ResearchGapCreate {
	_c.mutation.SetValidationQuery(v)
	return _c
}

// SetNillableValidationQuery sets the "validation_query" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableValidationQuery(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetValidationQuery(*v)
	}
	return _c
}

// SetPapersAnalyzedCount sets the "papers_analyzed_count" field.
func (_c *ResearchGapCreate) SetPapersAnalyzedCount(v int) *ResearchGapCreate {
	_c.mutation.SetPapersAnalyzedCount(v)
	return _c
}

// SetNillablePapersAnalyzedCount sets the "papers_analyzed_count" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillablePapersAnalyzedCount(v *int) *ResearchGapCreate {
	if v != nil {
		_c.SetPapersAnalyzedCount(*v)
	}
	return _c
}

// SetValidationReasoning sets the "validation_reasoning" field.
func (_c *ResearchGapCreate) SetValidationReasoning(v string) *ResearchGapCreate {
	_c.mutation.SetValidationReasoning(v)
	return _c
}

// SetNillableValidationReasoning sets the "validation_reasoning" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableValidationReasoning(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetValidationReasoning(*v)
	}
	return _c
}

// SetModificationHistory sets the "modification_history" field.
func (_c *ResearchGapCreate) SetModificationHistory(v []map[string]interface{}) *ResearchGapCreate {
	_c.mutation.SetModificationHistory(v)
	return _c
}

// SetPotentialImpact sets the "potential_impact" field.
func (_c *ResearchGapCreate) SetPotentialImpact(v string) *ResearchGapCreate {
	_c.mutation.SetPotentialImpact(v)
	return _c
}

// SetNillablePotentialImpact sets the "potential_impact" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillablePotentialImpact(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetPotentialImpact(*v)
	}
	return _c
}

// SetResearchHints sets the "research_hints" field.
func (_c *ResearchGapCreate) SetResearchHints(v string) *ResearchGapCreate {
	_c.mutation.SetResearchHints(v)
	return _c
}

// SetNillableResearchHints sets the "research_hints" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableResearchHints(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetResearchHints(*v)
	}
	return _c
}

// SetImplementationSuggestions sets the "implementation_suggestions" field.
func (_c *ResearchGapCreate) SetImplementationSuggestions(v string) *ResearchGapCreate {
	_c.mutation.SetImplementationSuggestions(v)
	return _c
}

// SetNillableImplementationSuggestions sets the "implementation_suggestions" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableImplementationSuggestions(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetImplementationSuggestions(*v)
	}
	return _c
}

// SetRisksAndChallenges sets the "risks_and_challenges" field.
func (_c *ResearchGapCreate) SetRisksAndChallenges(v string) *ResearchGapCreate {
	_c.mutation.SetRisksAndChallenges(v)
	return _c
}

// SetNillableRisksAndChallenges sets the "risks_and_challenges" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableRisksAndChallenges(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetRisksAndChallenges(*v)
	}
	return _c
}

// SetRequiredResources sets the "required_resources" field.
func (_c *ResearchGapCreate) SetRequiredResources(v string) *ResearchGapCreate {
	_c.mutation.SetRequiredResources(v)
	return _c
}

// SetNillableRequiredResources sets the "required_resources" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableRequiredResources(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetRequiredResources(*v)
	}
	return _c
}

// SetEstimatedDifficulty sets the "estimated_difficulty" field.
func (_c *ResearchGapCreate) SetEstimatedDifficulty(v string) *ResearchGapCreate {
	_c.mutation.SetEstimatedDifficulty(v)
	return _c
}

// SetNillableEstimatedDifficulty sets the "estimated_difficulty" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableEstimatedDifficulty(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetEstimatedDifficulty(*v)
	}
	return _c
}

// SetEstimatedTimeline sets the "estimated_timeline" field.
func (_c *ResearchGapCreate) SetEstimatedTimeline(v string) *ResearchGapCreate {
	_c.mutation.SetEstimatedTimeline(v)
	return _c
}

// SetNillableEstimatedTimeline sets the "estimated_timeline" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableEstimatedTimeline(v *string) *ResearchGapCreate {
	if v != nil {
		_c.SetEstimatedTimeline(*v)
	}
	return _c
}

// SetEvidenceAnchors sets the "evidence_anchors" field.
func (_c *ResearchGapCreate) SetEvidenceAnchors(v []map[string]string) *ResearchGapCreate {
	_c.mutation.SetEvidenceAnchors(v)
	return _c
}

// SetSupportingPapers sets the "supporting_papers" field.
func (_c *ResearchGapCreate) SetSupportingPapers(v []map[string]string) *ResearchGapCreate {
	_c.mutation.SetSupportingPapers(v)
	return _c
}

// SetConflictingPapers sets the "conflicting_papers" field.
func (_c *ResearchGapCreate) SetConflictingPapers(v []map[string]string) *ResearchGapCreate {
	_c.mutation.SetConflictingPapers(v)
	return _c
}

// SetSuggestedTopics sets the "suggested_topics" field.
func (_c *ResearchGapCreate) SetSuggestedTopics(v []map[string]interface{}) *ResearchGapCreate {
	_c.mutation.SetSuggestedTopics(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchGapCreate) SetCreatedAt(v time.Time) *ResearchGapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableCreatedAt(v *time.Time) *ResearchGapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *ResearchGapCreate) SetValidatedAt(v time.Time) *ResearchGapCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableValidatedAt(v *time.Time) *ResearchGapCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchGapCreate) SetID(v uuid.UUID) *ResearchGapCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ResearchGapCreate) SetNillableID(v *uuid.UUID) *ResearchGapCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAnalysisID sets the "analysis" edge to the GapAnalysis entity by ID.
func (_c *ResearchGapCreate) SetAnalysisID(id uuid.UUID) *ResearchGapCreate {
	_c.mutation.SetAnalysisID(id)
	return _c
}

// SetAnalysis sets the "analysis" edge to the GapAnalysis entity.
func (_c *ResearchGapCreate) SetAnalysis(v *GapAnalysis) *ResearchGapCreate {
	return _c.SetAnalysisID(v.ID)
}

// AddTopicIDs adds the "topics" edge to the GapTopic entity by IDs.
func (_c *ResearchGapCreate) AddTopicIDs(ids ...uuid.UUID) *ResearchGapCreate {
	_c.mutation.AddTopicIDs(ids...)
	return _c
}

// AddTopics adds the "topics" edges to the GapTopic entity.
func (_c *ResearchGapCreate) AddTopics(v ...*GapTopic) *ResearchGapCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTopicIDs(ids...)
}

// AddValidationPaperIDs adds the "validation_papers" edge to the GapValidationPaper entity by IDs.
func (_c *ResearchGapCreate) AddValidationPaperIDs(ids ...uuid.UUID) *ResearchGapCreate {
	_c.mutation.AddValidationPaperIDs(ids...)
	return _c
}

// AddValidationPapers adds the "validation_papers" edges to the GapValidationPaper entity.
func (_c *ResearchGapCreate) AddValidationPapers(v ...*GapValidationPaper) *ResearchGapCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValidationPaperIDs(ids...)
}

// Mutation returns the ResearchGapMutation object of the builder.
func (_c *ResearchGapCreate) Mutation() *ResearchGapMutation {
	return _c.mutation
}

// Save creates the ResearchGap in the database.
func (_c *ResearchGapCreate) Save(ctx context.Context) (*ResearchGap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchGapCreate) SaveX(ctx context.Context) *ResearchGap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchGapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchGapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchGapCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := researchgap.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := researchgap.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.PapersAnalyzedCount(); !ok {
		v := researchgap.DefaultPapersAnalyzedCount
		_c.mutation.SetPapersAnalyzedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchgap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := researchgap.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchGapCreate) check() error {
	if _, ok := _c.mutation.GapAnalysisID(); !ok {
		return &ValidationError{Name: "gap_analysis_id", err: errors.New(`ent: missing required field "ResearchGap.gap_analysis_id"`)}
	}
	if _, ok := _c.mutation.GapID(); !ok {
		return &ValidationError{Name: "gap_id", err: errors.New(`ent: missing required field "ResearchGap.gap_id"`)}
	}
	if v, ok := _c.mutation.GapID(); ok {
		if err := researchgap.GapIDValidator(v); err != nil {
			return &ValidationError{Name: "gap_id", err: fmt.Errorf(`ent: validator failed for field "ResearchGap.gap_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ResearchGap.order_index"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ResearchGap.name"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "ResearchGap.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := researchgap.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ResearchGap.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PapersAnalyzedCount(); !ok {
		return &ValidationError{Name: "papers_analyzed_count", err: errors.New(`ent: missing required field "ResearchGap.papers_analyzed_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchGap.created_at"`)}
	}
	if len(_c.mutation.AnalysisIDs()) == 0 {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required edge "ResearchGap.analysis"`)}
	}
	return nil
}

func (_c *ResearchGapCreate) sqlSave(ctx context.Context) (*ResearchGap, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchGapCreate) createSpec() (*ResearchGap, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchGap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchgap.Table, sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GapID(); ok {
		_spec.SetField(researchgap.FieldGapID, field.TypeString, value)
		_node.GapID = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(researchgap.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(researchgap.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(researchgap.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(researchgap.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(researchgap.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.ValidationConfidence(); ok {
		_spec.SetField(researchgap.FieldValidationConfidence, field.TypeFloat64, value)
		_node.ValidationConfidence = &value
	}
	if value, ok := _c.mutation.InitialReasoning(); ok {
		_spec.SetField(researchgap.FieldInitialReasoning, field.TypeString, value)
		_node.InitialReasoning = &value
	}
	if value, ok := _c.mutation.InitialEvidence(); ok {
		_spec.SetField(researchgap.FieldInitialEvidence, field.TypeString, value)
		_node.InitialEvidence = &value
	}
	if value, ok := _c.mutation.ValidationQuery(); ok {
		_spec.SetField(researchgap.FieldValidationQuery, field.TypeString, value)
		_node.ValidationQuery = &value
	}
	if value, ok := _c.mutation.PapersAnalyzedCount(); ok {
		_spec.SetField(researchgap.FieldPapersAnalyzedCount, field.TypeInt, value)
		_node.PapersAnalyzedCount = value
	}
	if value, ok := _c.mutation.ValidationReasoning(); ok {
		_spec.SetField(researchgap.FieldValidationReasoning, field.TypeString, value)
		_node.ValidationReasoning = &value
	}
	if value, ok := _c.mutation.ModificationHistory(); ok {
		_spec.SetField(researchgap.FieldModificationHistory, field.TypeJSON, value)
		_node.ModificationHistory = value
	}
	if value, ok := _c.mutation.PotentialImpact(); ok {
		_spec.SetField(researchgap.FieldPotentialImpact, field.TypeString, value)
		_node.PotentialImpact = &value
	}
	if value, ok := _c.mutation.ResearchHints(); ok {
		_spec.SetField(researchgap.FieldResearchHints, field.TypeString, value)
		_node.ResearchHints = &value
	}
	if value, ok := _c.mutation.ImplementationSuggestions(); ok {
		_spec.SetField(researchgap.FieldImplementationSuggestions, field.TypeString, value)
		_node.ImplementationSuggestions = &value
	}
	if value, ok := _c.mutation.RisksAndChallenges(); ok {
		_spec.SetField(researchgap.FieldRisksAndChallenges, field.TypeString, value)
		_node.RisksAndChallenges = &value
	}
	if value, ok := _c.mutation.RequiredResources(); ok {
		_spec.SetField(researchgap.FieldRequiredResources, field.TypeString, value)
		_node.RequiredResources = &value
	}
	if value, ok := _c.mutation.EstimatedDifficulty(); ok {
		_spec.SetField(researchgap.FieldEstimatedDifficulty, field.TypeString, value)
		_node.EstimatedDifficulty = &value
	}
	if value, ok := _c.mutation.EstimatedTimeline(); ok {
		_spec.SetField(researchgap.FieldEstimatedTimeline, field.TypeString, value)
		_node.EstimatedTimeline = &value
	}
	if value, ok := _c.mutation.EvidenceAnchors(); ok {
		_spec.SetField(researchgap.FieldEvidenceAnchors, field.TypeJSON, value)
		_node.EvidenceAnchors = value
	}
	if value, ok := _c.mutation.SupportingPapers(); ok {
		_spec.SetField(researchgap.FieldSupportingPapers, field.TypeJSON, value)
		_node.SupportingPapers = value
	}
	if value, ok := _c.mutation.ConflictingPapers(); ok {
		_spec.SetField(researchgap.FieldConflictingPapers, field.TypeJSON, value)
		_node.ConflictingPapers = value
	}
	if value, ok := _c.mutation.SuggestedTopics(); ok {
		_spec.SetField(researchgap.FieldSuggestedTopics, field.TypeJSON, value)
		_node.SuggestedTopics = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchgap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(researchgap.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchgap.AnalysisTable,
			Columns: []string{researchgap.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gapanalysis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GapAnalysisID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValidationPapersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResearchGap.Create().
//		SetGapAnalysisID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchGapUpsert) {
//			SetGapAnalysisID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchGapCreate) OnConflict(opts ...sql.ConflictOption) *ResearchGapUpsertOne {
	_c.conflict = opts
	return &ResearchGapUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchGap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchGapCreate) OnConflictColumns(columns ...string) *ResearchGapUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchGapUpsertOne{
		create: _c,
	}
}

type (
	// ResearchGapUpsertOne is the builder for "upsert"-ing
	//  one ResearchGap node.
	ResearchGapUpsertOne struct {
		create *ResearchGapCreate
	}

	// ResearchGapUpsert is the "OnConflict" setter.
	ResearchGapUpsert struct {
		*sql.UpdateSet
	}
)

// SetGapID sets the "gap_id" field.
func (u *ResearchGapUpsert) SetGapID(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldGapID, v)
	return u
}

// UpdateGapID sets the "gap_id" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateGapID() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldGapID)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *ResearchGapUpsert) SetOrderIndex(v int) *ResearchGapUpsert {
	u.Set(researchgap.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateOrderIndex() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ResearchGapUpsert) AddOrderIndex(v int) *ResearchGapUpsert {
	u.Add(researchgap.FieldOrderIndex, v)
	return u
}

// SetName sets the "name" field.
func (u *ResearchGapUpsert) SetName(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateName() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ResearchGapUpsert) SetDescription(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateDescription() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ResearchGapUpsert) ClearDescription() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldDescription)
	return u
}

// SetCategory sets the "category" field.
func (u *ResearchGapUpsert) SetCategory(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateCategory() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *ResearchGapUpsert) ClearCategory() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldCategory)
	return u
}

// SetValidationStatus sets the "validation_status" field.
func (u *ResearchGapUpsert) SetValidationStatus(v researchgap.ValidationStatus) *ResearchGapUpsert {
	u.Set(researchgap.FieldValidationStatus, v)
	return u
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateValidationStatus() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldValidationStatus)
	return u
}

// SetValidationConfidence sets the "validation_confidence" field.
func (u *ResearchGapUpsert) SetValidationConfidence(v float64) *ResearchGapUpsert {
	u.Set(researchgap.FieldValidationConfidence, v)
	return u
}

// UpdateValidationConfidence sets the "validation_confidence" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateValidationConfidence() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldValidationConfidence)
	return u
}

// AddValidationConfidence adds v to the "validation_confidence" field.
func (u *ResearchGapUpsert) AddValidationConfidence(v float64) *ResearchGapUpsert {
	u.Add(researchgap.FieldValidationConfidence, v)
	return u
}

// ClearValidationConfidence clears the value of the "validation_confidence" field.
func (u *ResearchGapUpsert) ClearValidationConfidence() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldValidationConfidence)
	return u
}

// SetInitialReasoning sets the "initial_reasoning" field.
func (u *ResearchGapUpsert) SetInitialReasoning(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldInitialReasoning, v)
	return u
}

// UpdateInitialReasoning sets the "initial_reasoning" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateInitialReasoning() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldInitialReasoning)
	return u
}

// ClearInitialReasoning clears the value of the "initial_reasoning" field.
func (u *ResearchGapUpsert) ClearInitialReasoning() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldInitialReasoning)
	return u
}

// SetInitialEvidence sets the "initial_evidence" field.
func (u *ResearchGapUpsert) SetInitialEvidence(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldInitialEvidence, v)
	return u
}

// UpdateInitialEvidence sets the "initial_evidence" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateInitialEvidence() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldInitialEvidence)
	return u
}

// ClearInitialEvidence clears the value of the "initial_evidence" field.
func (u *ResearchGapUpsert) ClearInitialEvidence() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldInitialEvidence)
	return u
}

// SetValidationQuery sets the "validation_query" field.
func (u *ResearchGapUpsert) SetValidationQuery(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldValidationQuery, v)
	return u
}

// UpdateValidationQuery sets the "validation_query" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateValidationQuery() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldValidationQuery)
	return u
}

// ClearValidationQuery clears the value of the "validation_query" field.
func (u *ResearchGapUpsert) ClearValidationQuery() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldValidationQuery)
	return u
}

// SetPapersAnalyzedCount sets the "papers_analyzed_count" field.
func (u *ResearchGapUpsert) SetPapersAnalyzedCount(v int) *ResearchGapUpsert {
	u.Set(researchgap.FieldPapersAnalyzedCount, v)
	return u
}

// UpdatePapersAnalyzedCount sets the "papers_analyzed_count" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdatePapersAnalyzedCount() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldPapersAnalyzedCount)
	return u
}

// AddPapersAnalyzedCount adds v to the "papers_analyzed_count" field.
func (u *ResearchGapUpsert) AddPapersAnalyzedCount(v int) *ResearchGapUpsert {
	u.Add(researchgap.FieldPapersAnalyzedCount, v)
	return u
}

// SetValidationReasoning sets the "validation_reasoning" field.
func (u *ResearchGapUpsert) SetValidationReasoning(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldValidationReasoning, v)
	return u
}

// UpdateValidationReasoning sets the "validation_reasoning" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateValidationReasoning() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldValidationReasoning)
	return u
}

// ClearValidationReasoning clears the value of the "validation_reasoning" field.
func (u *ResearchGapUpsert) ClearValidationReasoning() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldValidationReasoning)
	return u
}

// SetModificationHistory sets the "modification_history" field.
func (u *ResearchGapUpsert) SetModificationHistory(v []map[string]interface{}) *ResearchGapUpsert {
	u.Set(researchgap.FieldModificationHistory, v)
	return u
}

// UpdateModificationHistory sets the "modification_history" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateModificationHistory() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldModificationHistory)
	return u
}

// ClearModificationHistory clears the value of the "modification_history" field.
func (u *ResearchGapUpsert) ClearModificationHistory() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldModificationHistory)
	return u
}

// SetPotentialImpact sets the "potential_impact" field.
func (u *ResearchGapUpsert) SetPotentialImpact(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldPotentialImpact, v)
	return u
}

// UpdatePotentialImpact sets the "potential_impact" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdatePotentialImpact() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldPotentialImpact)
	return u
}

// ClearPotentialImpact clears the value of the "potential_impact" field.
func (u *ResearchGapUpsert) ClearPotentialImpact() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldPotentialImpact)
	return u
}

// SetResearchHints sets the "research_hints" field.
func (u *ResearchGapUpsert) SetResearchHints(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldResearchHints, v)
	return u
}

// UpdateResearchHints sets the "research_hints" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateResearchHints() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldResearchHints)
	return u
}

// ClearResearchHints clears the value of the "research_hints" field.
func (u *ResearchGapUpsert) ClearResearchHints() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldResearchHints)
	return u
}

// SetImplementationSuggestions sets the "implementation_suggestions" field.
func (u *ResearchGapUpsert) SetImplementationSuggestions(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldImplementationSuggestions, v)
	return u
}

// UpdateImplementationSuggestions sets the "implementation_suggestions" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateImplementationSuggestions() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldImplementationSuggestions)
	return u
}

// ClearImplementationSuggestions clears the value of the "implementation_suggestions" field.
func (u *ResearchGapUpsert) ClearImplementationSuggestions() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldImplementationSuggestions)
	return u
}

// SetRisksAndChallenges sets the "risks_and_challenges" field.
func (u *ResearchGapUpsert) SetRisksAndChallenges(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldRisksAndChallenges, v)
	return u
}

// UpdateRisksAndChallenges sets the "risks_and_challenges" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateRisksAndChallenges() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldRisksAndChallenges)
	return u
}

// ClearRisksAndChallenges clears the value of the "risks_and_challenges" field.
func (u *ResearchGapUpsert) ClearRisksAndChallenges() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldRisksAndChallenges)
	return u
}

// SetRequiredResources sets the "required_resources" field.
func (u *ResearchGapUpsert) SetRequiredResources(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldRequiredResources, v)
	return u
}

// UpdateRequiredResources sets the "required_resources" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateRequiredResources() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldRequiredResources)
	return u
}

// ClearRequiredResources clears the value of the "required_resources" field.
func (u *ResearchGapUpsert) ClearRequiredResources() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldRequiredResources)
	return u
}

// SetEstimatedDifficulty sets the "estimated_difficulty" field.
func (u *ResearchGapUpsert) SetEstimatedDifficulty(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldEstimatedDifficulty, v)
	return u
}

// UpdateEstimatedDifficulty sets the "estimated_difficulty" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateEstimatedDifficulty() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldEstimatedDifficulty)
	return u
}

// ClearEstimatedDifficulty clears the value of the "estimated_difficulty" field.
func (u *ResearchGapUpsert) ClearEstimatedDifficulty() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldEstimatedDifficulty)
	return u
}

// SetEstimatedTimeline sets the "estimated_timeline" field.
func (u *ResearchGapUpsert) SetEstimatedTimeline(v string) *ResearchGapUpsert {
	u.Set(researchgap.FieldEstimatedTimeline, v)
	return u
}

// UpdateEstimatedTimeline sets the "estimated_timeline" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateEstimatedTimeline() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldEstimatedTimeline)
	return u
}

// ClearEstimatedTimeline clears the value of the "estimated_timeline" field.
func (u *ResearchGapUpsert) ClearEstimatedTimeline() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldEstimatedTimeline)
	return u
}

// SetEvidenceAnchors sets the "evidence_anchors" field.
func (u *ResearchGapUpsert) SetEvidenceAnchors(v []map[string]string) *ResearchGapUpsert {
	u.Set(researchgap.FieldEvidenceAnchors, v)
	return u
}

// UpdateEvidenceAnchors sets the "evidence_anchors" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateEvidenceAnchors() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldEvidenceAnchors)
	return u
}

// ClearEvidenceAnchors clears the value of the "evidence_anchors" field.
func (u *ResearchGapUpsert) ClearEvidenceAnchors() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldEvidenceAnchors)
	return u
}

// SetSupportingPapers sets the "supporting_papers" field.
func (u *ResearchGapUpsert) SetSupportingPapers(v []map[string]string) *ResearchGapUpsert {
	u.Set(researchgap.FieldSupportingPapers, v)
	return u
}

// UpdateSupportingPapers sets the "supporting_papers" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateSupportingPapers() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldSupportingPapers)
	return u
}

// ClearSupportingPapers clears the value of the "supporting_papers" field.
func (u *ResearchGapUpsert) ClearSupportingPapers() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldSupportingPapers)
	return u
}

// SetConflictingPapers sets the "conflicting_papers" field.
func (u *ResearchGapUpsert) SetConflictingPapers(v []map[string]string) *ResearchGapUpsert {
	u.Set(researchgap.FieldConflictingPapers, v)
	return u
}

// UpdateConflictingPapers sets the "conflicting_papers" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateConflictingPapers() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldConflictingPapers)
	return u
}

// ClearConflictingPapers clears the value of the "conflicting_papers" field.
func (u *ResearchGapUpsert) ClearConflictingPapers() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldConflictingPapers)
	return u
}

// SetSuggestedTopics sets the "suggested_topics" field.
func (u *ResearchGapUpsert) SetSuggestedTopics(v []map[string]interface{}) *ResearchGapUpsert {
	u.Set(researchgap.FieldSuggestedTopics, v)
	return u
}

// UpdateSuggestedTopics sets the "suggested_topics" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateSuggestedTopics() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldSuggestedTopics)
	return u
}

// ClearSuggestedTopics clears the value of the "suggested_topics" field.
func (u *ResearchGapUpsert) ClearSuggestedTopics() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldSuggestedTopics)
	return u
}

// SetValidatedAt sets the "validated_at" field.
func (u *ResearchGapUpsert) SetValidatedAt(v time.Time) *ResearchGapUpsert {
	u.Set(researchgap.FieldValidatedAt, v)
	return u
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *ResearchGapUpsert) UpdateValidatedAt() *ResearchGapUpsert {
	u.SetExcluded(researchgap.FieldValidatedAt)
	return u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *ResearchGapUpsert) ClearValidatedAt() *ResearchGapUpsert {
	u.SetNull(researchgap.FieldValidatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ResearchGap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchgap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchGapUpsertOne) UpdateNewValues() *ResearchGapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(researchgap.FieldID)
		}
		if _, exists := u.create.mutation.GapAnalysisID(); exists {
			s.SetIgnore(researchgap.FieldGapAnalysisID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(researchgap.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchGap.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResearchGapUpsertOne) Ignore() *ResearchGapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchGapUpsertOne) DoNothing() *ResearchGapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchGapCreate.OnConflict
// documentation for more info.
func (u *ResearchGapUpsertOne) Update(set func(*ResearchGapUpsert)) *ResearchGapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchGapUpsert{UpdateSet: update})
	}))
	return u
}

// SetGapID sets the "gap_id" field.
func (u *ResearchGapUpsertOne) SetGapID(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetGapID(v)
	})
}

// UpdateGapID sets the "gap_id" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateGapID() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateGapID()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ResearchGapUpsertOne) SetOrderIndex(v int) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ResearchGapUpsertOne) AddOrderIndex(v int) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateOrderIndex() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetName sets the "name" field.
func (u *ResearchGapUpsertOne) SetName(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateName() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ResearchGapUpsertOne) SetDescription(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateDescription() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ResearchGapUpsertOne) ClearDescription() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearDescription()
	})
}

// SetCategory sets the "category" field.
func (u *ResearchGapUpsertOne) SetCategory(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateCategory() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *ResearchGapUpsertOne) ClearCategory() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearCategory()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *ResearchGapUpsertOne) SetValidationStatus(v researchgap.ValidationStatus) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateValidationStatus() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetValidationConfidence sets the "validation_confidence" field.
func (u *ResearchGapUpsertOne) SetValidationConfidence(v float64) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationConfidence(v)
	})
}

// AddValidationConfidence adds v to the "validation_confidence" field.
func (u *ResearchGapUpsertOne) AddValidationConfidence(v float64) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.AddValidationConfidence(v)
	})
}

// UpdateValidationConfidence sets the "validation_confidence" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateValidationConfidence() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationConfidence()
	})
}

// ClearValidationConfidence clears the value of the "validation_confidence" field.
func (u *ResearchGapUpsertOne) ClearValidationConfidence() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidationConfidence()
	})
}

// SetInitialReasoning sets the "initial_reasoning" field.
func (u *ResearchGapUpsertOne) SetInitialReasoning(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetInitialReasoning(v)
	})
}

// UpdateInitialReasoning sets the "initial_reasoning" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateInitialReasoning() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateInitialReasoning()
	})
}

// ClearInitialReasoning clears the value of the "initial_reasoning" field.
func (u *ResearchGapUpsertOne) ClearInitialReasoning() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearInitialReasoning()
	})
}

// SetInitialEvidence sets the "initial_evidence" field.
func (u *ResearchGapUpsertOne) SetInitialEvidence(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetInitialEvidence(v)
	})
}

// UpdateInitialEvidence sets the "initial_evidence" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateInitialEvidence() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateInitialEvidence()
	})
}

// ClearInitialEvidence clears the value of the "initial_evidence" field.
func (u *ResearchGapUpsertOne) ClearInitialEvidence() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearInitialEvidence()
	})
}

// SetValidationQuery sets the "validation_query" field.
func (u *ResearchGapUpsertOne) SetValidationQuery(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationQuery(v)
	})
}

// UpdateValidationQuery sets the "validation_query" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateValidationQuery() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationQuery()
	})
}

// ClearValidationQuery clears the value of the "validation_query" field.
func (u *ResearchGapUpsertOne) ClearValidationQuery() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidationQuery()
	})
}

// SetPapersAnalyzedCount sets the "papers_analyzed_count" field.
func (u *ResearchGapUpsertOne) SetPapersAnalyzedCount(v int) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetPapersAnalyzedCount(v)
	})
}

// AddPapersAnalyzedCount adds v to the "papers_analyzed_count" field.
func (u *ResearchGapUpsertOne) AddPapersAnalyzedCount(v int) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.AddPapersAnalyzedCount(v)
	})
}

// UpdatePapersAnalyzedCount sets the "papers_analyzed_count" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdatePapersAnalyzedCount() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdatePapersAnalyzedCount()
	})
}

// SetValidationReasoning sets the "validation_reasoning" field.
func (u *ResearchGapUpsertOne) SetValidationReasoning(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationReasoning(v)
	})
}

// UpdateValidationReasoning sets the "validation_reasoning" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateValidationReasoning() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationReasoning()
	})
}

// ClearValidationReasoning clears the value of the "validation_reasoning" field.
func (u *ResearchGapUpsertOne) ClearValidationReasoning() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidationReasoning()
	})
}

// SetModificationHistory sets the "modification_history" field.
func (u *ResearchGapUpsertOne) SetModificationHistory(v []map[string]interface{}) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetModificationHistory(v)
	})
}

// UpdateModificationHistory sets the "modification_history" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateModificationHistory() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateModificationHistory()
	})
}

// ClearModificationHistory clears the value of the "modification_history" field.
func (u *ResearchGapUpsertOne) ClearModificationHistory() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearModificationHistory()
	})
}

// SetPotentialImpact sets the "potential_impact" field.
func (u *ResearchGapUpsertOne) SetPotentialImpact(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetPotentialImpact(v)
	})
}

// UpdatePotentialImpact sets the "potential_impact" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdatePotentialImpact() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdatePotentialImpact()
	})
}

// ClearPotentialImpact clears the value of the "potential_impact" field.
func (u *ResearchGapUpsertOne) ClearPotentialImpact() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearPotentialImpact()
	})
}

// SetResearchHints sets the "research_hints" field.
func (u *ResearchGapUpsertOne) SetResearchHints(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetResearchHints(v)
	})
}

// UpdateResearchHints sets the "research_hints" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateResearchHints() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateResearchHints()
	})
}

// ClearResearchHints clears the value of the "research_hints" field.
func (u *ResearchGapUpsertOne) ClearResearchHints() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearResearchHints()
	})
}

// SetImplementationSuggestions sets the "implementation_suggestions" field.
func (u *ResearchGapUpsertOne) SetImplementationSuggestions(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetImplementationSuggestions(v)
	})
}

// UpdateImplementationSuggestions sets the "implementation_suggestions" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateImplementationSuggestions() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateImplementationSuggestions()
	})
}

// ClearImplementationSuggestions clears the value of the "implementation_suggestions" field.
func (u *ResearchGapUpsertOne) ClearImplementationSuggestions() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearImplementationSuggestions()
	})
}

// SetRisksAndChallenges sets the "risks_and_challenges" field.
func (u *ResearchGapUpsertOne) SetRisksAndChallenges(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetRisksAndChallenges(v)
	})
}

// UpdateRisksAndChallenges sets the "risks_and_challenges" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateRisksAndChallenges() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateRisksAndChallenges()
	})
}

// ClearRisksAndChallenges clears the value of the "risks_and_challenges" field.
func (u *ResearchGapUpsertOne) ClearRisksAndChallenges() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearRisksAndChallenges()
	})
}

// SetRequiredResources sets the "required_resources" field.
func (u *ResearchGapUpsertOne) SetRequiredResources(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetRequiredResources(v)
	})
}

// UpdateRequiredResources sets the "required_resources" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateRequiredResources() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateRequiredResources()
	})
}

// ClearRequiredResources clears the value of the "required_resources" field.
func (u *ResearchGapUpsertOne) ClearRequiredResources() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearRequiredResources()
	})
}

// SetEstimatedDifficulty sets the "estimated_difficulty" field.
func (u *ResearchGapUpsertOne) SetEstimatedDifficulty(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetEstimatedDifficulty(v)
	})
}

// UpdateEstimatedDifficulty sets the "estimated_difficulty" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateEstimatedDifficulty() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateEstimatedDifficulty()
	})
}

// ClearEstimatedDifficulty clears the value of the "estimated_difficulty" field.
func (u *ResearchGapUpsertOne) ClearEstimatedDifficulty() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearEstimatedDifficulty()
	})
}

// SetEstimatedTimeline sets the "estimated_timeline" field.
func (u *ResearchGapUpsertOne) SetEstimatedTimeline(v string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetEstimatedTimeline(v)
	})
}

// UpdateEstimatedTimeline sets the "estimated_timeline" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateEstimatedTimeline() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateEstimatedTimeline()
	})
}

// ClearEstimatedTimeline clears the value of the "estimated_timeline" field.
func (u *ResearchGapUpsertOne) ClearEstimatedTimeline() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearEstimatedTimeline()
	})
}

// SetEvidenceAnchors sets the "evidence_anchors" field.
func (u *ResearchGapUpsertOne) SetEvidenceAnchors(v []map[string]string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetEvidenceAnchors(v)
	})
}

// UpdateEvidenceAnchors sets the "evidence_anchors" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateEvidenceAnchors() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateEvidenceAnchors()
	})
}

// ClearEvidenceAnchors clears the value of the "evidence_anchors" field.
func (u *ResearchGapUpsertOne) ClearEvidenceAnchors() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearEvidenceAnchors()
	})
}

// SetSupportingPapers sets the "supporting_papers" field.
func (u *ResearchGapUpsertOne) SetSupportingPapers(v []map[string]string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetSupportingPapers(v)
	})
}

// UpdateSupportingPapers sets the "supporting_papers" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateSupportingPapers() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateSupportingPapers()
	})
}

// ClearSupportingPapers clears the value of the "supporting_papers" field.
func (u *ResearchGapUpsertOne) ClearSupportingPapers() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearSupportingPapers()
	})
}

// SetConflictingPapers sets the "conflicting_papers" field.
func (u *ResearchGapUpsertOne) SetConflictingPapers(v []map[string]string) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetConflictingPapers(v)
	})
}

// UpdateConflictingPapers sets the "conflicting_papers" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateConflictingPapers() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateConflictingPapers()
	})
}

// ClearConflictingPapers clears the value of the "conflicting_papers" field.
func (u *ResearchGapUpsertOne) ClearConflictingPapers() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearConflictingPapers()
	})
}

// SetSuggestedTopics sets the "suggested_topics" field.
func (u *ResearchGapUpsertOne) SetSuggestedTopics(v []map[string]interface{}) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetSuggestedTopics(v)
	})
}

// UpdateSuggestedTopics sets the "suggested_topics" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateSuggestedTopics() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateSuggestedTopics()
	})
}

// ClearSuggestedTopics clears the value of the "suggested_topics" field.
func (u *ResearchGapUpsertOne) ClearSuggestedTopics() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearSuggestedTopics()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *ResearchGapUpsertOne) SetValidatedAt(v time.Time) *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *ResearchGapUpsertOne) UpdateValidatedAt() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *ResearchGapUpsertOne) ClearValidatedAt() *ResearchGapUpsertOne {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidatedAt()
	})
}

// Exec executes the query.
func (u *ResearchGapUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchGapCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchGapUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResearchGapUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResearchGapUpsertOne.ID is not supported by MySQL driver. Use ResearchGapUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResearchGapUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResearchGapCreateBulk is the builder for creating many ResearchGap entities in bulk.
type ResearchGapCreateBulk struct {
	config
	err      error
	builders []*ResearchGapCreate
	conflict []sql.ConflictOption
}

// Save creates the ResearchGap entities in the database.
func (_c *ResearchGapCreateBulk) Save(ctx context.Context) ([]*ResearchGap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchGap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchGapMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResearchGapCreateBulk) SaveX(ctx context.Context) []*ResearchGap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchGapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchGapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResearchGap.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchGapUpsert) {
//			SetGapAnalysisID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchGapCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResearchGapUpsertBulk {
	_c.conflict = opts
	return &ResearchGapUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchGap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchGapCreateBulk) OnConflictColumns(columns ...string) *ResearchGapUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchGapUpsertBulk{
		create: _c,
	}
}

// ResearchGapUpsertBulk is the builder for "upsert"-ing
// a bulk of ResearchGap nodes.
type ResearchGapUpsertBulk struct {
	create *ResearchGapCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResearchGap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchgap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchGapUpsertBulk) UpdateNewValues() *ResearchGapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(researchgap.FieldID)
			}
			if _, exists := b.mutation.GapAnalysisID(); exists {
				s.SetIgnore(researchgap.FieldGapAnalysisID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(researchgap.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchGap.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResearchGapUpsertBulk) Ignore() *ResearchGapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchGapUpsertBulk) DoNothing() *ResearchGapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchGapCreateBulk.OnConflict
// documentation for more info.
func (u *ResearchGapUpsertBulk) Update(set func(*ResearchGapUpsert)) *ResearchGapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchGapUpsert{UpdateSet: update})
	}))
	return u
}

// SetGapID sets the "gap_id" field.
func (u *ResearchGapUpsertBulk) SetGapID(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetGapID(v)
	})
}

// UpdateGapID sets the "gap_id" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateGapID() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateGapID()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ResearchGapUpsertBulk) SetOrderIndex(v int) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ResearchGapUpsertBulk) AddOrderIndex(v int) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateOrderIndex() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetName sets the "name" field.
func (u *ResearchGapUpsertBulk) SetName(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateName() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ResearchGapUpsertBulk) SetDescription(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateDescription() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ResearchGapUpsertBulk) ClearDescription() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearDescription()
	})
}

// SetCategory sets the "category" field.
func (u *ResearchGapUpsertBulk) SetCategory(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateCategory() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *ResearchGapUpsertBulk) ClearCategory() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearCategory()
	})
}

// SetValidationStatus sets the "validation_status" field.
func (u *ResearchGapUpsertBulk) SetValidationStatus(v researchgap.ValidationStatus) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationStatus(v)
	})
}

// UpdateValidationStatus sets the "validation_status" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateValidationStatus() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationStatus()
	})
}

// SetValidationConfidence sets the "validation_confidence" field.
func (u *ResearchGapUpsertBulk) SetValidationConfidence(v float64) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationConfidence(v)
	})
}

// AddValidationConfidence adds v to the "validation_confidence" field.
func (u *ResearchGapUpsertBulk) AddValidationConfidence(v float64) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.AddValidationConfidence(v)
	})
}

// UpdateValidationConfidence sets the "validation_confidence" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateValidationConfidence() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationConfidence()
	})
}

// ClearValidationConfidence clears the value of the "validation_confidence" field.
func (u *ResearchGapUpsertBulk) ClearValidationConfidence() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidationConfidence()
	})
}

// SetInitialReasoning sets the "initial_reasoning" field.
func (u *ResearchGapUpsertBulk) SetInitialReasoning(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetInitialReasoning(v)
	})
}

// UpdateInitialReasoning sets the "initial_reasoning" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateInitialReasoning() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateInitialReasoning()
	})
}

// ClearInitialReasoning clears the value of the "initial_reasoning" field.
func (u *ResearchGapUpsertBulk) ClearInitialReasoning() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearInitialReasoning()
	})
}

// SetInitialEvidence sets the "initial_evidence" field.
func (u *ResearchGapUpsertBulk) SetInitialEvidence(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetInitialEvidence(v)
	})
}

// UpdateInitialEvidence sets the "initial_evidence" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateInitialEvidence() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateInitialEvidence()
	})
}

// ClearInitialEvidence clears the value of the "initial_evidence" field.
func (u *ResearchGapUpsertBulk) ClearInitialEvidence() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearInitialEvidence()
	})
}

// SetValidationQuery sets the "validation_query" field.
func (u *ResearchGapUpsertBulk) SetValidationQuery(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationQuery(v)
	})
}

// UpdateValidationQuery sets the "validation_query" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateValidationQuery() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationQuery()
	})
}

// ClearValidationQuery clears the value of the "validation_query" field.
func (u *ResearchGapUpsertBulk) ClearValidationQuery() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidationQuery()
	})
}

// SetPapersAnalyzedCount sets the "papers_analyzed_count" field.
func (u *ResearchGapUpsertBulk) SetPapersAnalyzedCount(v int) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetPapersAnalyzedCount(v)
	})
}

// AddPapersAnalyzedCount adds v to the "papers_analyzed_count" field.
func (u *ResearchGapUpsertBulk) AddPapersAnalyzedCount(v int) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.AddPapersAnalyzedCount(v)
	})
}

// UpdatePapersAnalyzedCount sets the "papers_analyzed_count" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdatePapersAnalyzedCount() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdatePapersAnalyzedCount()
	})
}

// SetValidationReasoning sets the "validation_reasoning" field.
func (u *ResearchGapUpsertBulk) SetValidationReasoning(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidationReasoning(v)
	})
}

// UpdateValidationReasoning sets the "validation_reasoning" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateValidationReasoning() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidationReasoning()
	})
}

// ClearValidationReasoning clears the value of the "validation_reasoning" field.
func (u *ResearchGapUpsertBulk) ClearValidationReasoning() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidationReasoning()
	})
}

// SetModificationHistory sets the "modification_history" field.
func (u *ResearchGapUpsertBulk) SetModificationHistory(v []map[string]interface{}) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetModificationHistory(v)
	})
}

// UpdateModificationHistory sets the "modification_history" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateModificationHistory() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateModificationHistory()
	})
}

// ClearModificationHistory clears the value of the "modification_history" field.
func (u *ResearchGapUpsertBulk) ClearModificationHistory() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearModificationHistory()
	})
}

// SetPotentialImpact sets the "potential_impact" field.
func (u *ResearchGapUpsertBulk) SetPotentialImpact(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetPotentialImpact(v)
	})
}

// UpdatePotentialImpact sets the "potential_impact" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdatePotentialImpact() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdatePotentialImpact()
	})
}

// ClearPotentialImpact clears the value of the "potential_impact" field.
func (u *ResearchGapUpsertBulk) ClearPotentialImpact() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearPotentialImpact()
	})
}

// SetResearchHints sets the "research_hints" field.
func (u *ResearchGapUpsertBulk) SetResearchHints(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetResearchHints(v)
	})
}

// UpdateResearchHints sets the "research_hints" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateResearchHints() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateResearchHints()
	})
}

// ClearResearchHints clears the value of the "research_hints" field.
func (u *ResearchGapUpsertBulk) ClearResearchHints() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearResearchHints()
	})
}

// SetImplementationSuggestions sets the "implementation_suggestions" field.
func (u *ResearchGapUpsertBulk) SetImplementationSuggestions(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetImplementationSuggestions(v)
	})
}

// UpdateImplementationSuggestions sets the "implementation_suggestions" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateImplementationSuggestions() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateImplementationSuggestions()
	})
}

// ClearImplementationSuggestions clears the value of the "implementation_suggestions" field.
func (u *ResearchGapUpsertBulk) ClearImplementationSuggestions() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearImplementationSuggestions()
	})
}

// SetRisksAndChallenges sets the "risks_and_challenges" field.
func (u *ResearchGapUpsertBulk) SetRisksAndChallenges(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetRisksAndChallenges(v)
	})
}

// UpdateRisksAndChallenges sets the "risks_and_challenges" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateRisksAndChallenges() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateRisksAndChallenges()
	})
}

// ClearRisksAndChallenges clears the value of the "risks_and_challenges" field.
func (u *ResearchGapUpsertBulk) ClearRisksAndChallenges() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearRisksAndChallenges()
	})
}

// SetRequiredResources sets the "required_resources" field.
func (u *ResearchGapUpsertBulk) SetRequiredResources(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetRequiredResources(v)
	})
}

// UpdateRequiredResources sets the "required_resources" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateRequiredResources() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateRequiredResources()
	})
}

// ClearRequiredResources clears the value of the "required_resources" field.
func (u *ResearchGapUpsertBulk) ClearRequiredResources() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearRequiredResources()
	})
}

// SetEstimatedDifficulty sets the "estimated_difficulty" field.
func (u *ResearchGapUpsertBulk) SetEstimatedDifficulty(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetEstimatedDifficulty(v)
	})
}

// UpdateEstimatedDifficulty sets the "estimated_difficulty" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateEstimatedDifficulty() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateEstimatedDifficulty()
	})
}

// ClearEstimatedDifficulty clears the value of the "estimated_difficulty" field.
func (u *ResearchGapUpsertBulk) ClearEstimatedDifficulty() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearEstimatedDifficulty()
	})
}

// SetEstimatedTimeline sets the "estimated_timeline" field.
func (u *ResearchGapUpsertBulk) SetEstimatedTimeline(v string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetEstimatedTimeline(v)
	})
}

// UpdateEstimatedTimeline sets the "estimated_timeline" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateEstimatedTimeline() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateEstimatedTimeline()
	})
}

// ClearEstimatedTimeline clears the value of the "estimated_timeline" field.
func (u *ResearchGapUpsertBulk) ClearEstimatedTimeline() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearEstimatedTimeline()
	})
}

// SetEvidenceAnchors sets the "evidence_anchors" field.
func (u *ResearchGapUpsertBulk) SetEvidenceAnchors(v []map[string]string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetEvidenceAnchors(v)
	})
}

// UpdateEvidenceAnchors sets the "evidence_anchors" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateEvidenceAnchors() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateEvidenceAnchors()
	})
}

// ClearEvidenceAnchors clears the value of the "evidence_anchors" field.
func (u *ResearchGapUpsertBulk) ClearEvidenceAnchors() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearEvidenceAnchors()
	})
}

// SetSupportingPapers sets the "supporting_papers" field.
func (u *ResearchGapUpsertBulk) SetSupportingPapers(v []map[string]string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetSupportingPapers(v)
	})
}

// UpdateSupportingPapers sets the "supporting_papers" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateSupportingPapers() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateSupportingPapers()
	})
}

// ClearSupportingPapers clears the value of the "supporting_papers" field.
func (u *ResearchGapUpsertBulk) ClearSupportingPapers() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearSupportingPapers()
	})
}

// SetConflictingPapers sets the "conflicting_papers" field.
func (u *ResearchGapUpsertBulk) SetConflictingPapers(v []map[string]string) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetConflictingPapers(v)
	})
}

// UpdateConflictingPapers sets the "conflicting_papers" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateConflictingPapers() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateConflictingPapers()
	})
}

// ClearConflictingPapers clears the value of the "conflicting_papers" field.
func (u *ResearchGapUpsertBulk) ClearConflictingPapers() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearConflictingPapers()
	})
}

// SetSuggestedTopics sets the "suggested_topics" field.
func (u *ResearchGapUpsertBulk) SetSuggestedTopics(v []map[string]interface{}) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetSuggestedTopics(v)
	})
}

// UpdateSuggestedTopics sets the "suggested_topics" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateSuggestedTopics() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateSuggestedTopics()
	})
}

// ClearSuggestedTopics clears the value of the "suggested_topics" field.
func (u *ResearchGapUpsertBulk) ClearSuggestedTopics() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearSuggestedTopics()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *ResearchGapUpsertBulk) SetValidatedAt(v time.Time) *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *ResearchGapUpsertBulk) UpdateValidatedAt() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *ResearchGapUpsertBulk) ClearValidatedAt() *ResearchGapUpsertBulk {
	return u.Update(func(s *ResearchGapUpsert) {
		s.ClearValidatedAt()
	})
}

// Exec executes the query.
func (u *ResearchGapUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResearchGapCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchGapCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchGapUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
