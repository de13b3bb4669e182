// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/predicate"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// GapAnalysisUpdate is the builder for updating GapAnalysis entities.
type GapAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *GapAnalysisMutation
}

// Where appends a list predicates to the GapAnalysisUpdate builder.
func (_u *GapAnalysisUpdate) Where(ps ...predicate.GapAnalysis) *GapAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPaperID sets the "paper_id" field.
func (_u *GapAnalysisUpdate) SetPaperID(v uuid.UUID) *GapAnalysisUpdate {
	_u.mutation.SetPaperID(v)
	return _u
}

// SetNillablePaperID sets the "paper_id" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillablePaperID(v *uuid.UUID) *GapAnalysisUpdate {
	if v != nil {
		_u.SetPaperID(*v)
	}
	return _u
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (_u *GapAnalysisUpdate) SetPaperExtractionID(v uuid.UUID) *GapAnalysisUpdate {
	_u.mutation.SetPaperExtractionID(v)
	return _u
}

// SetNillablePaperExtractionID sets the "paper_extraction_id" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillablePaperExtractionID(v *uuid.UUID) *GapAnalysisUpdate {
	if v != nil {
		_u.SetPaperExtractionID(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *GapAnalysisUpdate) SetCorrelationID(v string) *GapAnalysisUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableCorrelationID(v *string) *GapAnalysisUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *GapAnalysisUpdate) SetRequestID(v string) *GapAnalysisUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableRequestID(v *string) *GapAnalysisUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GapAnalysisUpdate) SetStatus(v gapanalysis.Status) *GapAnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableStatus(v *gapanalysis.Status) *GapAnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GapAnalysisUpdate) SetStartedAt(v time.Time) *GapAnalysisUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableStartedAt(v *time.Time) *GapAnalysisUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GapAnalysisUpdate) ClearStartedAt() *GapAnalysisUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GapAnalysisUpdate) SetCompletedAt(v time.Time) *GapAnalysisUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableCompletedAt(v *time.Time) *GapAnalysisUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GapAnalysisUpdate) ClearCompletedAt() *GapAnalysisUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GapAnalysisUpdate) SetErrorMessage(v string) *GapAnalysisUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableErrorMessage(v *string) *GapAnalysisUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GapAnalysisUpdate) ClearErrorMessage() *GapAnalysisUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfig sets the "config" field.
func (_u *GapAnalysisUpdate) SetConfig(v map[string]interface{}) *GapAnalysisUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *GapAnalysisUpdate) ClearConfig() *GapAnalysisUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetTotalGapsIdentified sets the "total_gaps_identified" field.
func (_u *GapAnalysisUpdate) SetTotalGapsIdentified(v int) *GapAnalysisUpdate {
	_u.mutation.ResetTotalGapsIdentified()
	_u.mutation.SetTotalGapsIdentified(v)
	return _u
}

// SetNillableTotalGapsIdentified sets the "total_gaps_identified" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableTotalGapsIdentified(v *int) *GapAnalysisUpdate {
	if v != nil {
		_u.SetTotalGapsIdentified(*v)
	}
	return _u
}

// AddTotalGapsIdentified adds value to the "total_gaps_identified" field.
func (_u *GapAnalysisUpdate) AddTotalGapsIdentified(v int) *GapAnalysisUpdate {
	_u.mutation.AddTotalGapsIdentified(v)
	return _u
}

// SetValidGapsCount sets the "valid_gaps_count" field.
func (_u *GapAnalysisUpdate) SetValidGapsCount(v int) *GapAnalysisUpdate {
	_u.mutation.ResetValidGapsCount()
	_u.mutation.SetValidGapsCount(v)
	return _u
}

// SetNillableValidGapsCount sets the "valid_gaps_count" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableValidGapsCount(v *int) *GapAnalysisUpdate {
	if v != nil {
		_u.SetValidGapsCount(*v)
	}
	return _u
}

// AddValidGapsCount adds value to the "valid_gaps_count" field.
func (_u *GapAnalysisUpdate) AddValidGapsCount(v int) *GapAnalysisUpdate {
	_u.mutation.AddValidGapsCount(v)
	return _u
}

// SetInvalidGapsCount sets the "invalid_gaps_count" field.
func (_u *GapAnalysisUpdate) SetInvalidGapsCount(v int) *GapAnalysisUpdate {
	_u.mutation.ResetInvalidGapsCount()
	_u.mutation.SetInvalidGapsCount(v)
	return _u
}

// SetNillableInvalidGapsCount sets the "invalid_gaps_count" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableInvalidGapsCount(v *int) *GapAnalysisUpdate {
	if v != nil {
		_u.SetInvalidGapsCount(*v)
	}
	return _u
}

// AddInvalidGapsCount adds value to the "invalid_gaps_count" field.
func (_u *GapAnalysisUpdate) AddInvalidGapsCount(v int) *GapAnalysisUpdate {
	_u.mutation.AddInvalidGapsCount(v)
	return _u
}

// SetModifiedGapsCount sets the "modified_gaps_count" field.
func (_u *GapAnalysisUpdate) SetModifiedGapsCount(v int) *GapAnalysisUpdate {
	_u.mutation.ResetModifiedGapsCount()
	_u.mutation.SetModifiedGapsCount(v)
	return _u
}

// SetNillableModifiedGapsCount sets the "modified_gaps_count" field if the given value is not nil.
func (_u *GapAnalysisUpdate) SetNillableModifiedGapsCount(v *int) *GapAnalysisUpdate {
	if v != nil {
		_u.SetModifiedGapsCount(*v)
	}
	return _u
}

// AddModifiedGapsCount adds value to the "modified_gaps_count" field.
func (_u *GapAnalysisUpdate) AddModifiedGapsCount(v int) *GapAnalysisUpdate {
	_u.mutation.AddModifiedGapsCount(v)
	return _u
}

// AddGapIDs adds the "gaps" edge to the ResearchGap entity by IDs.
func (_u *GapAnalysisUpdate) AddGapIDs(ids ...uuid.UUID) *GapAnalysisUpdate {
	_u.mutation.AddGapIDs(ids...)
	return _u
}

// AddGaps adds the "gaps" edges to the ResearchGap entity.
func (_u *GapAnalysisUpdate) AddGaps(v ...*ResearchGap) *GapAnalysisUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGapIDs(ids...)
}

// Mutation returns the GapAnalysisMutation object of the builder.
func (_u *GapAnalysisUpdate) Mutation() *GapAnalysisMutation {
	return _u.mutation
}

// ClearGaps clears all "gaps" edges to the ResearchGap entity.
func (_u *GapAnalysisUpdate) ClearGaps() *GapAnalysisUpdate {
	_u.mutation.ClearGaps()
	return _u
}

// RemoveGapIDs removes the "gaps" edge to ResearchGap entities by IDs.
func (_u *GapAnalysisUpdate) RemoveGapIDs(ids ...uuid.UUID) *GapAnalysisUpdate {
	_u.mutation.RemoveGapIDs(ids...)
	return _u
}

// RemoveGaps removes "gaps" edges to ResearchGap entities.
func (_u *GapAnalysisUpdate) RemoveGaps(v ...*ResearchGap) *GapAnalysisUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGapIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GapAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GapAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapAnalysisUpdate) check() error {
	if v, ok := _u.mutation.CorrelationID(); ok {
		if err := gapanalysis.CorrelationIDValidator(v); err != nil {
			return &ValidationError{Name: "correlation_id", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.correlation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestID(); ok {
		if err := gapanalysis.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gapanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GapAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gapanalysis.Table, gapanalysis.Columns, sqlgraph.NewFieldSpec(gapanalysis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PaperID(); ok {
		_spec.SetField(gapanalysis.FieldPaperID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PaperExtractionID(); ok {
		_spec.SetField(gapanalysis.FieldPaperExtractionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(gapanalysis.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(gapanalysis.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gapanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(gapanalysis.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(gapanalysis.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(gapanalysis.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(gapanalysis.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(gapanalysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(gapanalysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(gapanalysis.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(gapanalysis.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalGapsIdentified(); ok {
		_spec.SetField(gapanalysis.FieldTotalGapsIdentified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalGapsIdentified(); ok {
		_spec.AddField(gapanalysis.FieldTotalGapsIdentified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldValidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidGapsCount(); ok {
		_spec.AddField(gapanalysis.FieldValidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvalidGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldInvalidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvalidGapsCount(); ok {
		_spec.AddField(gapanalysis.FieldInvalidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModifiedGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldModifiedGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModifiedGapsCount(); ok {
		_spec.AddField(gapanalysis.FieldModifiedGapsCount, field.TypeInt, value)
	}
	if _u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gapanalysis.GapsTable,
			Columns: []string{gapanalysis.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGapsIDs(); len(nodes) > 0 && !_u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gapanalysis.GapsTable,
			Columns: []string{gapanalysis.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GapsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gapanalysis.GapsTable,
			Columns: []string{gapanalysis.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GapAnalysisUpdateOne is the builder for updating a single GapAnalysis entity.
type GapAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GapAnalysisMutation
}

// SetPaperID sets the "paper_id" field.
func (_u *GapAnalysisUpdateOne) SetPaperID(v uuid.UUID) *GapAnalysisUpdateOne {
	_u.mutation.SetPaperID(v)
	return _u
}

// SetNillablePaperID sets the "paper_id" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillablePaperID(v *uuid.UUID) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetPaperID(*v)
	}
	return _u
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (_u *GapAnalysisUpdateOne) SetPaperExtractionID(v uuid.UUID) *GapAnalysisUpdateOne {
	_u.mutation.SetPaperExtractionID(v)
	return _u
}

// SetNillablePaperExtractionID sets the "paper_extraction_id" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillablePaperExtractionID(v *uuid.UUID) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetPaperExtractionID(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *GapAnalysisUpdateOne) SetCorrelationID(v string) *GapAnalysisUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableCorrelationID(v *string) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *GapAnalysisUpdateOne) SetRequestID(v string) *GapAnalysisUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableRequestID(v *string) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GapAnalysisUpdateOne) SetStatus(v gapanalysis.Status) *GapAnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableStatus(v *gapanalysis.Status) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *GapAnalysisUpdateOne) SetStartedAt(v time.Time) *GapAnalysisUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableStartedAt(v *time.Time) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *GapAnalysisUpdateOne) ClearStartedAt() *GapAnalysisUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GapAnalysisUpdateOne) SetCompletedAt(v time.Time) *GapAnalysisUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableCompletedAt(v *time.Time) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GapAnalysisUpdateOne) ClearCompletedAt() *GapAnalysisUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GapAnalysisUpdateOne) SetErrorMessage(v string) *GapAnalysisUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableErrorMessage(v *string) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GapAnalysisUpdateOne) ClearErrorMessage() *GapAnalysisUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfig sets the "config" field.
func (_u *GapAnalysisUpdateOne) SetConfig(v map[string]interface{}) *GapAnalysisUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *GapAnalysisUpdateOne) ClearConfig() *GapAnalysisUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetTotalGapsIdentified sets the "total_gaps_identified" field.
func (_u *GapAnalysisUpdateOne) SetTotalGapsIdentified(v int) *GapAnalysisUpdateOne {
	_u.mutation.ResetTotalGapsIdentified()
	_u.mutation.SetTotalGapsIdentified(v)
	return _u
}

// SetNillableTotalGapsIdentified sets the "total_gaps_identified" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableTotalGapsIdentified(v *int) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetTotalGapsIdentified(*v)
	}
	return _u
}

// AddTotalGapsIdentified adds value to the "total_gaps_identified" field.
func (_u *GapAnalysisUpdateOne) AddTotalGapsIdentified(v int) *GapAnalysisUpdateOne {
	_u.mutation.AddTotalGapsIdentified(v)
	return _u
}

// SetValidGapsCount sets the "valid_gaps_count" field.
func (_u *GapAnalysisUpdateOne) SetValidGapsCount(v int) *GapAnalysisUpdateOne {
	_u.mutation.ResetValidGapsCount()
	_u.mutation.SetValidGapsCount(v)
	return _u
}

// SetNillableValidGapsCount sets the "valid_gaps_count" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableValidGapsCount(v *int) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetValidGapsCount(*v)
	}
	return _u
}

// AddValidGapsCount adds value to the "valid_gaps_count" field.
func (_u *GapAnalysisUpdateOne) AddValidGapsCount(v int) *GapAnalysisUpdateOne {
	_u.mutation.AddValidGapsCount(v)
	return _u
}

// SetInvalidGapsCount sets the "invalid_gaps_count" field.
func (_u *GapAnalysisUpdateOne) SetInvalidGapsCount(v int) *GapAnalysisUpdateOne {
	_u.mutation.ResetInvalidGapsCount()
	_u.mutation.SetInvalidGapsCount(v)
	return _u
}

// SetNillableInvalidGapsCount sets the "invalid_gaps_count" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableInvalidGapsCount(v *int) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetInvalidGapsCount(*v)
	}
	return _u
}

// AddInvalidGapsCount adds value to the "invalid_gaps_count" field.
func (_u *GapAnalysisUpdateOne) AddInvalidGapsCount(v int) *GapAnalysisUpdateOne {
	_u.mutation.AddInvalidGapsCount(v)
	return _u
}

// SetModifiedGapsCount sets the "modified_gaps_count" field.
func (_u *GapAnalysisUpdateOne) SetModifiedGapsCount(v int) *GapAnalysisUpdateOne {
	_u.mutation.ResetModifiedGapsCount()
	_u.mutation.SetModifiedGapsCount(v)
	return _u
}

// SetNillableModifiedGapsCount sets the "modified_gaps_count" field if the given value is not nil.
func (_u *GapAnalysisUpdateOne) SetNillableModifiedGapsCount(v *int) *GapAnalysisUpdateOne {
	if v != nil {
		_u.SetModifiedGapsCount(*v)
	}
	return _u
}

// AddModifiedGapsCount adds value to the "modified_gaps_count" field.
func (_u *GapAnalysisUpdateOne) AddModifiedGapsCount(v int) *GapAnalysisUpdateOne {
	_u.mutation.AddModifiedGapsCount(v)
	return _u
}

// AddGapIDs adds the "gaps" edge to the ResearchGap entity by IDs.
func (_u *GapAnalysisUpdateOne) AddGapIDs(ids ...uuid.UUID) *GapAnalysisUpdateOne {
	_u.mutation.AddGapIDs(ids...)
	return _u
}

// AddGaps adds the "gaps" edges to the ResearchGap entity.
func (_u *GapAnalysisUpdateOne) AddGaps(v ...*ResearchGap) *GapAnalysisUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGapIDs(ids...)
}

// Mutation returns the GapAnalysisMutation object of the builder.
func (_u *GapAnalysisUpdateOne) Mutation() *GapAnalysisMutation {
	return _u.mutation
}

// ClearGaps clears all "gaps" edges to the ResearchGap entity.
func (_u *GapAnalysisUpdateOne) ClearGaps() *GapAnalysisUpdateOne {
	_u.mutation.ClearGaps()
	return _u
}

// RemoveGapIDs removes the "gaps" edge to ResearchGap entities by IDs.
func (_u *GapAnalysisUpdateOne) RemoveGapIDs(ids ...uuid.UUID) *GapAnalysisUpdateOne {
	_u.mutation.RemoveGapIDs(ids...)
	return _u
}

// RemoveGaps removes "gaps" edges to ResearchGap entities.
func (_u *GapAnalysisUpdateOne) RemoveGaps(v ...*ResearchGap) *GapAnalysisUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGapIDs(ids...)
}

// Where appends a list predicates to the GapAnalysisUpdate builder.
func (_u *GapAnalysisUpdateOne) Where(ps ...predicate.GapAnalysis) *GapAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GapAnalysisUpdateOne) Select(field string, fields ...string) *GapAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GapAnalysis entity.
func (_u *GapAnalysisUpdateOne) Save(ctx context.Context) (*GapAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapAnalysisUpdateOne) SaveX(ctx context.Context) *GapAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GapAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.CorrelationID(); ok {
		if err := gapanalysis.CorrelationIDValidator(v); err != nil {
			return &ValidationError{Name: "correlation_id", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.correlation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequestID(); ok {
		if err := gapanalysis.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gapanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GapAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *GapAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gapanalysis.Table, gapanalysis.Columns, sqlgraph.NewFieldSpec(gapanalysis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GapAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gapanalysis.FieldID)
		for _, f := range fields {
			if !gapanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gapanalysis.FieldID {
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
	if value, ok := _u.mutation.PaperID(); ok {
		_spec.SetField(gapanalysis.FieldPaperID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PaperExtractionID(); ok {
		_spec.SetField(gapanalysis.FieldPaperExtractionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(gapanalysis.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(gapanalysis.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gapanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(gapanalysis.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(gapanalysis.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(gapanalysis.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(gapanalysis.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(gapanalysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(gapanalysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(gapanalysis.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(gapanalysis.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalGapsIdentified(); ok {
		_spec.SetField(gapanalysis.FieldTotalGapsIdentified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalGapsIdentified(); ok {
		_spec.AddField(gapanalysis.FieldTotalGapsIdentified, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldValidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidGapsCount(); ok {
		_spec.AddField(gapanalysis.FieldValidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvalidGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldInvalidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvalidGapsCount(); ok {
		_spec.AddField(gapanalysis.FieldInvalidGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModifiedGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldModifiedGapsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModifiedGapsCount(); ok {
		_spec.AddField(gapanalysis.FieldModifiedGapsCount, field.TypeInt, value)
	}
	if _u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gapanalysis.GapsTable,
			Columns: []string{gapanalysis.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGapsIDs(); len(nodes) > 0 && !_u.mutation.GapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gapanalysis.GapsTable,
			Columns: []string{gapanalysis.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GapsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gapanalysis.GapsTable,
			Columns: []string{gapanalysis.GapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GapAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
