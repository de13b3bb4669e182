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
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// GapAnalysisCreate is the builder for creating a GapAnalysis entity.
type GapAnalysisCreate struct {
	config
	mutation *GapAnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaperID sets the "paper_id" field.
func (_c *GapAnalysisCreate) SetPaperID(v uuid.UUID) *GapAnalysisCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (_c *GapAnalysisCreate) SetPaperExtractionID(v uuid.UUID) *GapAnalysisCreate {
	_c.mutation.SetPaperExtractionID(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *GapAnalysisCreate) SetCorrelationID(v string) *GapAnalysisCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *GapAnalysisCreate) SetRequestID(v string) *GapAnalysisCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GapAnalysisCreate) SetStatus(v gapanalysis.Status) *GapAnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableStatus(v *gapanalysis.Status) *GapAnalysisCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GapAnalysisCreate) SetStartedAt(v time.Time) *GapAnalysisCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableStartedAt(v *time.Time) *GapAnalysisCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GapAnalysisCreate) SetCompletedAt(v time.Time) *GapAnalysisCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableCompletedAt(v *time.Time) *GapAnalysisCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GapAnalysisCreate) SetErrorMessage(v string) *GapAnalysisCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableErrorMessage(v *string) *GapAnalysisCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *GapAnalysisCreate) SetConfig(v map[string]interface{}) *GapAnalysisCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetTotalGapsIdentified sets the "total_gaps_identified" field.
func (_c *GapAnalysisCreate) SetTotalGapsIdentified(v int) *GapAnalysisCreate {
	_c.mutation.SetTotalGapsIdentified(v)
	return _c
}

// SetNillableTotalGapsIdentified sets the "total_gaps_identified" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableTotalGapsIdentified(v *int) *GapAnalysisCreate {
	if v != nil {
		_c.SetTotalGapsIdentified(*v)
	}
	return _c
}

// SetValidGapsCount sets the "valid_gaps_count" field.
func (_c *GapAnalysisCreate) SetValidGapsCount(v int) *GapAnalysisCreate {
	_c.mutation.SetValidGapsCount(v)
	return _c
}

// SetNillableValidGapsCount sets the "valid_gaps_count" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableValidGapsCount(v *int) *GapAnalysisCreate {
	if v != nil {
		_c.SetValidGapsCount(*v)
	}
	return _c
}

// SetInvalidGapsCount sets the "invalid_gaps_count" field.
func (_c *GapAnalysisCreate) SetInvalidGapsCount(v int) *GapAnalysisCreate {
	_c.mutation.SetInvalidGapsCount(v)
	return _c
}

// SetNillableInvalidGapsCount sets the "invalid_gaps_count" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableInvalidGapsCount(v *int) *GapAnalysisCreate {
	if v != nil {
		_c.SetInvalidGapsCount(*v)
	}
	return _c
}

// SetModifiedGapsCount sets the "modified_gaps_count" field.
func (_c *GapAnalysisCreate) SetModifiedGapsCount(v int) *GapAnalysisCreate {
	_c.mutation.SetModifiedGapsCount(v)
	return _c
}

// SetNillableModifiedGapsCount sets the "modified_gaps_count" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableModifiedGapsCount(v *int) *GapAnalysisCreate {
	if v != nil {
		_c.SetModifiedGapsCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GapAnalysisCreate) SetCreatedAt(v time.Time) *GapAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableCreatedAt(v *time.Time) *GapAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GapAnalysisCreate) SetID(v uuid.UUID) *GapAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GapAnalysisCreate) SetNillableID(v *uuid.UUID) *GapAnalysisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddGapIDs adds the "gaps" edge to the ResearchGap entity by IDs.
func (_c *GapAnalysisCreate) AddGapIDs(ids ...uuid.UUID) *GapAnalysisCreate {
	_c.mutation.AddGapIDs(ids...)
	return _c
}

// AddGaps adds the "gaps" edges to the ResearchGap entity.
func (_c *GapAnalysisCreate) AddGaps(v ...*ResearchGap) *GapAnalysisCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGapIDs(ids...)
}

// Mutation returns the GapAnalysisMutation object of the builder.
func (_c *GapAnalysisCreate) Mutation() *GapAnalysisMutation {
	return _c.mutation
}

// Save creates the GapAnalysis in the database.
func (_c *GapAnalysisCreate) Save(ctx context.Context) (*GapAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GapAnalysisCreate) SaveX(ctx context.Context) *GapAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GapAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := gapanalysis.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalGapsIdentified(); !ok {
		v := gapanalysis.DefaultTotalGapsIdentified
		_c.mutation.SetTotalGapsIdentified(v)
	}
	if _, ok := _c.mutation.ValidGapsCount(); !ok {
		v := gapanalysis.DefaultValidGapsCount
		_c.mutation.SetValidGapsCount(v)
	}
	if _, ok := _c.mutation.InvalidGapsCount(); !ok {
		v := gapanalysis.DefaultInvalidGapsCount
		_c.mutation.SetInvalidGapsCount(v)
	}
	if _, ok := _c.mutation.ModifiedGapsCount(); !ok {
		v := gapanalysis.DefaultModifiedGapsCount
		_c.mutation.SetModifiedGapsCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gapanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gapanalysis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GapAnalysisCreate) check() error {
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "GapAnalysis.paper_id"`)}
	}
	if _, ok := _c.mutation.PaperExtractionID(); !ok {
		return &ValidationError{Name: "paper_extraction_id", err: errors.New(`ent: missing required field "GapAnalysis.paper_extraction_id"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "GapAnalysis.correlation_id"`)}
	}
	if v, ok := _c.mutation.CorrelationID(); ok {
		if err := gapanalysis.CorrelationIDValidator(v); err != nil {
			return &ValidationError{Name: "correlation_id", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.correlation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "GapAnalysis.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := gapanalysis.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GapAnalysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := gapanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GapAnalysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalGapsIdentified(); !ok {
		return &ValidationError{Name: "total_gaps_identified", err: errors.New(`ent: missing required field "GapAnalysis.total_gaps_identified"`)}
	}
	if _, ok := _c.mutation.ValidGapsCount(); !ok {
		return &ValidationError{Name: "valid_gaps_count", err: errors.New(`ent: missing required field "GapAnalysis.valid_gaps_count"`)}
	}
	if _, ok := _c.mutation.InvalidGapsCount(); !ok {
		return &ValidationError{Name: "invalid_gaps_count", err: errors.New(`ent: missing required field "GapAnalysis.invalid_gaps_count"`)}
	}
	if _, ok := _c.mutation.ModifiedGapsCount(); !ok {
		return &ValidationError{Name: "modified_gaps_count", err: errors.New(`ent: missing required field "GapAnalysis.modified_gaps_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GapAnalysis.created_at"`)}
	}
	return nil
}

func (_c *GapAnalysisCreate) sqlSave(ctx context.Context) (*GapAnalysis, error) {
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

func (_c *GapAnalysisCreate) createSpec() (*GapAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &GapAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gapanalysis.Table, sqlgraph.NewFieldSpec(gapanalysis.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PaperID(); ok {
		_spec.SetField(gapanalysis.FieldPaperID, field.TypeUUID, value)
		_node.PaperID = value
	}
	if value, ok := _c.mutation.PaperExtractionID(); ok {
		_spec.SetField(gapanalysis.FieldPaperExtractionID, field.TypeUUID, value)
		_node.PaperExtractionID = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(gapanalysis.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(gapanalysis.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(gapanalysis.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(gapanalysis.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(gapanalysis.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(gapanalysis.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(gapanalysis.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.TotalGapsIdentified(); ok {
		_spec.SetField(gapanalysis.FieldTotalGapsIdentified, field.TypeInt, value)
		_node.TotalGapsIdentified = value
	}
	if value, ok := _c.mutation.ValidGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldValidGapsCount, field.TypeInt, value)
		_node.ValidGapsCount = value
	}
	if value, ok := _c.mutation.InvalidGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldInvalidGapsCount, field.TypeInt, value)
		_node.InvalidGapsCount = value
	}
	if value, ok := _c.mutation.ModifiedGapsCount(); ok {
		_spec.SetField(gapanalysis.FieldModifiedGapsCount, field.TypeInt, value)
		_node.ModifiedGapsCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gapanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.GapsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GapAnalysis.Create().
//		SetPaperID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GapAnalysisUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *GapAnalysisCreate) OnConflict(opts ...sql.ConflictOption) *GapAnalysisUpsertOne {
	_c.conflict = opts
	return &GapAnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GapAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GapAnalysisCreate) OnConflictColumns(columns ...string) *GapAnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GapAnalysisUpsertOne{
		create: _c,
	}
}

type (
	// GapAnalysisUpsertOne is the builder for "upsert"-ing
	//  one GapAnalysis node.
	GapAnalysisUpsertOne struct {
		create *GapAnalysisCreate
	}

	// GapAnalysisUpsert is the "OnConflict" setter.
	GapAnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetPaperID sets the "paper_id" field.
func (u *GapAnalysisUpsert) SetPaperID(v uuid.UUID) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldPaperID, v)
	return u
}

// UpdatePaperID sets the "paper_id" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdatePaperID() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldPaperID)
	return u
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (u *GapAnalysisUpsert) SetPaperExtractionID(v uuid.UUID) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldPaperExtractionID, v)
	return u
}

// UpdatePaperExtractionID sets the "paper_extraction_id" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdatePaperExtractionID() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldPaperExtractionID)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *GapAnalysisUpsert) SetCorrelationID(v string) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateCorrelationID() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldCorrelationID)
	return u
}

// SetRequestID sets the "request_id" field.
func (u *GapAnalysisUpsert) SetRequestID(v string) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldRequestID, v)
	return u
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateRequestID() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldRequestID)
	return u
}

// SetStatus sets the "status" field.
func (u *GapAnalysisUpsert) SetStatus(v gapanalysis.Status) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateStatus() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *GapAnalysisUpsert) SetStartedAt(v time.Time) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateStartedAt() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GapAnalysisUpsert) ClearStartedAt() *GapAnalysisUpsert {
	u.SetNull(gapanalysis.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *GapAnalysisUpsert) SetCompletedAt(v time.Time) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateCompletedAt() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GapAnalysisUpsert) ClearCompletedAt() *GapAnalysisUpsert {
	u.SetNull(gapanalysis.FieldCompletedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *GapAnalysisUpsert) SetErrorMessage(v string) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateErrorMessage() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GapAnalysisUpsert) ClearErrorMessage() *GapAnalysisUpsert {
	u.SetNull(gapanalysis.FieldErrorMessage)
	return u
}

// SetConfig sets the "config" field.
func (u *GapAnalysisUpsert) SetConfig(v map[string]interface{}) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateConfig() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *GapAnalysisUpsert) ClearConfig() *GapAnalysisUpsert {
	u.SetNull(gapanalysis.FieldConfig)
	return u
}

// SetTotalGapsIdentified sets the "total_gaps_identified" field.
func (u *GapAnalysisUpsert) SetTotalGapsIdentified(v int) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldTotalGapsIdentified, v)
	return u
}

// UpdateTotalGapsIdentified sets the "total_gaps_identified" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateTotalGapsIdentified() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldTotalGapsIdentified)
	return u
}

// AddTotalGapsIdentified adds v to the "total_gaps_identified" field.
func (u *GapAnalysisUpsert) AddTotalGapsIdentified(v int) *GapAnalysisUpsert {
	u.Add(gapanalysis.FieldTotalGapsIdentified, v)
	return u
}

// SetValidGapsCount sets the "valid_gaps_count" field.
func (u *GapAnalysisUpsert) SetValidGapsCount(v int) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldValidGapsCount, v)
	return u
}

// UpdateValidGapsCount sets the "valid_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateValidGapsCount() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldValidGapsCount)
	return u
}

// AddValidGapsCount adds v to the "valid_gaps_count" field.
func (u *GapAnalysisUpsert) AddValidGapsCount(v int) *GapAnalysisUpsert {
	u.Add(gapanalysis.FieldValidGapsCount, v)
	return u
}

// SetInvalidGapsCount sets the "invalid_gaps_count" field.
func (u *GapAnalysisUpsert) SetInvalidGapsCount(v int) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldInvalidGapsCount, v)
	return u
}

// UpdateInvalidGapsCount sets the "invalid_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateInvalidGapsCount() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldInvalidGapsCount)
	return u
}

// AddInvalidGapsCount adds v to the "invalid_gaps_count" field.
func (u *GapAnalysisUpsert) AddInvalidGapsCount(v int) *GapAnalysisUpsert {
	u.Add(gapanalysis.FieldInvalidGapsCount, v)
	return u
}

// SetModifiedGapsCount sets the "modified_gaps_count" field.
func (u *GapAnalysisUpsert) SetModifiedGapsCount(v int) *GapAnalysisUpsert {
	u.Set(gapanalysis.FieldModifiedGapsCount, v)
	return u
}

// UpdateModifiedGapsCount sets the "modified_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsert) UpdateModifiedGapsCount() *GapAnalysisUpsert {
	u.SetExcluded(gapanalysis.FieldModifiedGapsCount)
	return u
}

// AddModifiedGapsCount adds v to the "modified_gaps_count" field.
func (u *GapAnalysisUpsert) AddModifiedGapsCount(v int) *GapAnalysisUpsert {
	u.Add(gapanalysis.FieldModifiedGapsCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GapAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gapanalysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GapAnalysisUpsertOne) UpdateNewValues() *GapAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gapanalysis.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(gapanalysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GapAnalysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GapAnalysisUpsertOne) Ignore() *GapAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GapAnalysisUpsertOne) DoNothing() *GapAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GapAnalysisCreate.OnConflict
// documentation for more info.
func (u *GapAnalysisUpsertOne) Update(set func(*GapAnalysisUpsert)) *GapAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GapAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetPaperID sets the "paper_id" field.
func (u *GapAnalysisUpsertOne) SetPaperID(v uuid.UUID) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetPaperID(v)
	})
}

// UpdatePaperID sets the "paper_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdatePaperID() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdatePaperID()
	})
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (u *GapAnalysisUpsertOne) SetPaperExtractionID(v uuid.UUID) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetPaperExtractionID(v)
	})
}

// UpdatePaperExtractionID sets the "paper_extraction_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdatePaperExtractionID() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdatePaperExtractionID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *GapAnalysisUpsertOne) SetCorrelationID(v string) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateCorrelationID() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetRequestID sets the "request_id" field.
func (u *GapAnalysisUpsertOne) SetRequestID(v string) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateRequestID() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateRequestID()
	})
}

// SetStatus sets the "status" field.
func (u *GapAnalysisUpsertOne) SetStatus(v gapanalysis.Status) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateStatus() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GapAnalysisUpsertOne) SetStartedAt(v time.Time) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateStartedAt() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GapAnalysisUpsertOne) ClearStartedAt() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *GapAnalysisUpsertOne) SetCompletedAt(v time.Time) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateCompletedAt() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GapAnalysisUpsertOne) ClearCompletedAt() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GapAnalysisUpsertOne) SetErrorMessage(v string) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateErrorMessage() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GapAnalysisUpsertOne) ClearErrorMessage() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearErrorMessage()
	})
}

// SetConfig sets the "config" field.
func (u *GapAnalysisUpsertOne) SetConfig(v map[string]interface{}) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateConfig() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *GapAnalysisUpsertOne) ClearConfig() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearConfig()
	})
}

// SetTotalGapsIdentified sets the "total_gaps_identified" field.
func (u *GapAnalysisUpsertOne) SetTotalGapsIdentified(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetTotalGapsIdentified(v)
	})
}

// AddTotalGapsIdentified adds v to the "total_gaps_identified" field.
func (u *GapAnalysisUpsertOne) AddTotalGapsIdentified(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddTotalGapsIdentified(v)
	})
}

// UpdateTotalGapsIdentified sets the "total_gaps_identified" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateTotalGapsIdentified() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateTotalGapsIdentified()
	})
}

// SetValidGapsCount sets the "valid_gaps_count" field.
func (u *GapAnalysisUpsertOne) SetValidGapsCount(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetValidGapsCount(v)
	})
}

// AddValidGapsCount adds v to the "valid_gaps_count" field.
func (u *GapAnalysisUpsertOne) AddValidGapsCount(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddValidGapsCount(v)
	})
}

// UpdateValidGapsCount sets the "valid_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateValidGapsCount() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateValidGapsCount()
	})
}

// SetInvalidGapsCount sets the "invalid_gaps_count" field.
func (u *GapAnalysisUpsertOne) SetInvalidGapsCount(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetInvalidGapsCount(v)
	})
}

// AddInvalidGapsCount adds v to the "invalid_gaps_count" field.
func (u *GapAnalysisUpsertOne) AddInvalidGapsCount(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddInvalidGapsCount(v)
	})
}

// UpdateInvalidGapsCount sets the "invalid_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateInvalidGapsCount() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateInvalidGapsCount()
	})
}

// SetModifiedGapsCount sets the "modified_gaps_count" field.
func (u *GapAnalysisUpsertOne) SetModifiedGapsCount(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetModifiedGapsCount(v)
	})
}

// AddModifiedGapsCount adds v to the "modified_gaps_count" field.
func (u *GapAnalysisUpsertOne) AddModifiedGapsCount(v int) *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddModifiedGapsCount(v)
	})
}

// UpdateModifiedGapsCount sets the "modified_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsertOne) UpdateModifiedGapsCount() *GapAnalysisUpsertOne {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateModifiedGapsCount()
	})
}

// Exec executes the query.
func (u *GapAnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GapAnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GapAnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GapAnalysisUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GapAnalysisUpsertOne.ID is not supported by MySQL driver. Use GapAnalysisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GapAnalysisUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GapAnalysisCreateBulk is the builder for creating many GapAnalysis entities in bulk.
type GapAnalysisCreateBulk struct {
	config
	err      error
	builders []*GapAnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the GapAnalysis entities in the database.
func (_c *GapAnalysisCreateBulk) Save(ctx context.Context) ([]*GapAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GapAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GapAnalysisMutation)
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
func (_c *GapAnalysisCreateBulk) SaveX(ctx context.Context) []*GapAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GapAnalysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GapAnalysisUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *GapAnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *GapAnalysisUpsertBulk {
	_c.conflict = opts
	return &GapAnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GapAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GapAnalysisCreateBulk) OnConflictColumns(columns ...string) *GapAnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GapAnalysisUpsertBulk{
		create: _c,
	}
}

// GapAnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of GapAnalysis nodes.
type GapAnalysisUpsertBulk struct {
	create *GapAnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GapAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gapanalysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GapAnalysisUpsertBulk) UpdateNewValues() *GapAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gapanalysis.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(gapanalysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GapAnalysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GapAnalysisUpsertBulk) Ignore() *GapAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GapAnalysisUpsertBulk) DoNothing() *GapAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GapAnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *GapAnalysisUpsertBulk) Update(set func(*GapAnalysisUpsert)) *GapAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GapAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetPaperID sets the "paper_id" field.
func (u *GapAnalysisUpsertBulk) SetPaperID(v uuid.UUID) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetPaperID(v)
	})
}

// UpdatePaperID sets the "paper_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdatePaperID() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdatePaperID()
	})
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (u *GapAnalysisUpsertBulk) SetPaperExtractionID(v uuid.UUID) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetPaperExtractionID(v)
	})
}

// UpdatePaperExtractionID sets the "paper_extraction_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdatePaperExtractionID() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdatePaperExtractionID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *GapAnalysisUpsertBulk) SetCorrelationID(v string) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateCorrelationID() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetRequestID sets the "request_id" field.
func (u *GapAnalysisUpsertBulk) SetRequestID(v string) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateRequestID() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateRequestID()
	})
}

// SetStatus sets the "status" field.
func (u *GapAnalysisUpsertBulk) SetStatus(v gapanalysis.Status) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateStatus() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *GapAnalysisUpsertBulk) SetStartedAt(v time.Time) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateStartedAt() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *GapAnalysisUpsertBulk) ClearStartedAt() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *GapAnalysisUpsertBulk) SetCompletedAt(v time.Time) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateCompletedAt() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *GapAnalysisUpsertBulk) ClearCompletedAt() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *GapAnalysisUpsertBulk) SetErrorMessage(v string) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateErrorMessage() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *GapAnalysisUpsertBulk) ClearErrorMessage() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearErrorMessage()
	})
}

// SetConfig sets the "config" field.
func (u *GapAnalysisUpsertBulk) SetConfig(v map[string]interface{}) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateConfig() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *GapAnalysisUpsertBulk) ClearConfig() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.ClearConfig()
	})
}

// SetTotalGapsIdentified sets the "total_gaps_identified" field.
func (u *GapAnalysisUpsertBulk) SetTotalGapsIdentified(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetTotalGapsIdentified(v)
	})
}

// AddTotalGapsIdentified adds v to the "total_gaps_identified" field.
func (u *GapAnalysisUpsertBulk) AddTotalGapsIdentified(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddTotalGapsIdentified(v)
	})
}

// UpdateTotalGapsIdentified sets the "total_gaps_identified" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateTotalGapsIdentified() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateTotalGapsIdentified()
	})
}

// SetValidGapsCount sets the "valid_gaps_count" field.
func (u *GapAnalysisUpsertBulk) SetValidGapsCount(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetValidGapsCount(v)
	})
}

// AddValidGapsCount adds v to the "valid_gaps_count" field.
func (u *GapAnalysisUpsertBulk) AddValidGapsCount(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddValidGapsCount(v)
	})
}

// UpdateValidGapsCount sets the "valid_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateValidGapsCount() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateValidGapsCount()
	})
}

// SetInvalidGapsCount sets the "invalid_gaps_count" field.
func (u *GapAnalysisUpsertBulk) SetInvalidGapsCount(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetInvalidGapsCount(v)
	})
}

// AddInvalidGapsCount adds v to the "invalid_gaps_count" field.
func (u *GapAnalysisUpsertBulk) AddInvalidGapsCount(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddInvalidGapsCount(v)
	})
}

// UpdateInvalidGapsCount sets the "invalid_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateInvalidGapsCount() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateInvalidGapsCount()
	})
}

// SetModifiedGapsCount sets the "modified_gaps_count" field.
func (u *GapAnalysisUpsertBulk) SetModifiedGapsCount(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.SetModifiedGapsCount(v)
	})
}

// AddModifiedGapsCount adds v to the "modified_gaps_count" field.
func (u *GapAnalysisUpsertBulk) AddModifiedGapsCount(v int) *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.AddModifiedGapsCount(v)
	})
}

// UpdateModifiedGapsCount sets the "modified_gaps_count" field to the value that was provided on create.
func (u *GapAnalysisUpsertBulk) UpdateModifiedGapsCount() *GapAnalysisUpsertBulk {
	return u.Update(func(s *GapAnalysisUpsert) {
		s.UpdateModifiedGapsCount()
	})
}

// Exec executes the query.
func (u *GapAnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GapAnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GapAnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GapAnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
