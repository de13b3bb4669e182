// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// GapTopicUpdate is the builder for updating GapTopic entities.
type GapTopicUpdate struct {
	config
	hooks    []Hook
	mutation *GapTopicMutation
}

// Where appends a list predicates to the GapTopicUpdate builder.
func (_u *GapTopicUpdate) Where(ps ...predicate.GapTopic) *GapTopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *GapTopicUpdate) SetTitle(v string) *GapTopicUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GapTopicUpdate) SetNillableTitle(v *string) *GapTopicUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *GapTopicUpdate) SetDescription(v string) *GapTopicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GapTopicUpdate) SetNillableDescription(v *string) *GapTopicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GapTopicUpdate) ClearDescription() *GapTopicUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetResearchQuestions sets the "research_questions" field.
func (_u *GapTopicUpdate) SetResearchQuestions(v []string) *GapTopicUpdate {
	_u.mutation.SetResearchQuestions(v)
	return _u
}

// AppendResearchQuestions appends value to the "research_questions" field.
func (_u *GapTopicUpdate) AppendResearchQuestions(v []string) *GapTopicUpdate {
	_u.mutation.AppendResearchQuestions(v)
	return _u
}

// ClearResearchQuestions clears the value of the "research_questions" field.
func (_u *GapTopicUpdate) ClearResearchQuestions() *GapTopicUpdate {
	_u.mutation.ClearResearchQuestions()
	return _u
}

// SetMethodologySuggestions sets the "methodology_suggestions" field.
func (_u *GapTopicUpdate) SetMethodologySuggestions(v string) *GapTopicUpdate {
	_u.mutation.SetMethodologySuggestions(v)
	return _u
}

// SetNillableMethodologySuggestions sets the "methodology_suggestions" field if the given value is not nil.
func (_u *GapTopicUpdate) SetNillableMethodologySuggestions(v *string) *GapTopicUpdate {
	if v != nil {
		_u.SetMethodologySuggestions(*v)
	}
	return _u
}

// ClearMethodologySuggestions clears the value of the "methodology_suggestions" field.
func (_u *GapTopicUpdate) ClearMethodologySuggestions() *GapTopicUpdate {
	_u.mutation.ClearMethodologySuggestions()
	return _u
}

// SetExpectedOutcomes sets the "expected_outcomes" field.
func (_u *GapTopicUpdate) SetExpectedOutcomes(v string) *GapTopicUpdate {
	_u.mutation.SetExpectedOutcomes(v)
	return _u
}

// SetNillableExpectedOutcomes sets the "expected_outcomes" field if the given value is not nil.
func (_u *GapTopicUpdate) SetNillableExpectedOutcomes(v *string) *GapTopicUpdate {
	if v != nil {
		_u.SetExpectedOutcomes(*v)
	}
	return _u
}

// ClearExpectedOutcomes clears the value of the "expected_outcomes" field.
func (_u *GapTopicUpdate) ClearExpectedOutcomes() *GapTopicUpdate {
	_u.mutation.ClearExpectedOutcomes()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *GapTopicUpdate) SetRelevanceScore(v float64) *GapTopicUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *GapTopicUpdate) SetNillableRelevanceScore(v *float64) *GapTopicUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *GapTopicUpdate) AddRelevanceScore(v float64) *GapTopicUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// Mutation returns the GapTopicMutation object of the builder.
func (_u *GapTopicUpdate) Mutation() *GapTopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GapTopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapTopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GapTopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapTopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapTopicUpdate) check() error {
	if _u.mutation.GapCleared() && len(_u.mutation.GapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GapTopic.gap"`)
	}
	return nil
}

func (_u *GapTopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gaptopic.Table, gaptopic.Columns, sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gaptopic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(gaptopic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(gaptopic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchQuestions(); ok {
		_spec.SetField(gaptopic.FieldResearchQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResearchQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaptopic.FieldResearchQuestions, value)
		})
	}
	if _u.mutation.ResearchQuestionsCleared() {
		_spec.ClearField(gaptopic.FieldResearchQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.MethodologySuggestions(); ok {
		_spec.SetField(gaptopic.FieldMethodologySuggestions, field.TypeString, value)
	}
	if _u.mutation.MethodologySuggestionsCleared() {
		_spec.ClearField(gaptopic.FieldMethodologySuggestions, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedOutcomes(); ok {
		_spec.SetField(gaptopic.FieldExpectedOutcomes, field.TypeString, value)
	}
	if _u.mutation.ExpectedOutcomesCleared() {
		_spec.ClearField(gaptopic.FieldExpectedOutcomes, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(gaptopic.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(gaptopic.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gaptopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GapTopicUpdateOne is the builder for updating a single GapTopic entity.
type GapTopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GapTopicMutation
}

// SetTitle sets the "title" field.
func (_u *GapTopicUpdateOne) SetTitle(v string) *GapTopicUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GapTopicUpdateOne) SetNillableTitle(v *string) *GapTopicUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *GapTopicUpdateOne) SetDescription(v string) *GapTopicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GapTopicUpdateOne) SetNillableDescription(v *string) *GapTopicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GapTopicUpdateOne) ClearDescription() *GapTopicUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetResearchQuestions sets the "research_questions" field.
func (_u *GapTopicUpdateOne) SetResearchQuestions(v []string) *GapTopicUpdateOne {
	_u.mutation.SetResearchQuestions(v)
	return _u
}

// AppendResearchQuestions appends value to the "research_questions" field.
func (_u *GapTopicUpdateOne) AppendResearchQuestions(v []string) *GapTopicUpdateOne {
	_u.mutation.AppendResearchQuestions(v)
	return _u
}

// ClearResearchQuestions clears the value of the "research_questions" field.
func (_u *GapTopicUpdateOne) ClearResearchQuestions() *GapTopicUpdateOne {
	_u.mutation.ClearResearchQuestions()
	return _u
}

// SetMethodologySuggestions sets the "methodology_suggestions" field.
func (_u *GapTopicUpdateOne) SetMethodologySuggestions(v string) *GapTopicUpdateOne {
	_u.mutation.SetMethodologySuggestions(v)
	return _u
}

// SetNillableMethodologySuggestions sets the "methodology_suggestions" field if the given value is not nil.
func (_u *GapTopicUpdateOne) SetNillableMethodologySuggestions(v *string) *GapTopicUpdateOne {
	if v != nil {
		_u.SetMethodologySuggestions(*v)
	}
	return _u
}

// ClearMethodologySuggestions clears the value of the "methodology_suggestions" field.
func (_u *GapTopicUpdateOne) ClearMethodologySuggestions() *GapTopicUpdateOne {
	_u.mutation.ClearMethodologySuggestions()
	return _u
}

// SetExpectedOutcomes sets the "expected_outcomes" field.
func (_u *GapTopicUpdateOne) SetExpectedOutcomes(v string) *GapTopicUpdateOne {
	_u.mutation.SetExpectedOutcomes(v)
	return _u
}

// SetNillableExpectedOutcomes sets the "expected_outcomes" field if the given value is not nil.
func (_u *GapTopicUpdateOne) SetNillableExpectedOutcomes(v *string) *GapTopicUpdateOne {
	if v != nil {
		_u.SetExpectedOutcomes(*v)
	}
	return _u
}

// ClearExpectedOutcomes clears the value of the "expected_outcomes" field.
func (_u *GapTopicUpdateOne) ClearExpectedOutcomes() *GapTopicUpdateOne {
	_u.mutation.ClearExpectedOutcomes()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *GapTopicUpdateOne) SetRelevanceScore(v float64) *GapTopicUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *GapTopicUpdateOne) SetNillableRelevanceScore(v *float64) *GapTopicUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *GapTopicUpdateOne) AddRelevanceScore(v float64) *GapTopicUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// Mutation returns the GapTopicMutation object of the builder.
func (_u *GapTopicUpdateOne) Mutation() *GapTopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the GapTopicUpdate builder.
func (_u *GapTopicUpdateOne) Where(ps ...predicate.GapTopic) *GapTopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GapTopicUpdateOne) Select(field string, fields ...string) *GapTopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GapTopic entity.
func (_u *GapTopicUpdateOne) Save(ctx context.Context) (*GapTopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapTopicUpdateOne) SaveX(ctx context.Context) *GapTopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GapTopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapTopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapTopicUpdateOne) check() error {
	if _u.mutation.GapCleared() && len(_u.mutation.GapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GapTopic.gap"`)
	}
	return nil
}

func (_u *GapTopicUpdateOne) sqlSave(ctx context.Context) (_node *GapTopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gaptopic.Table, gaptopic.Columns, sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GapTopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gaptopic.FieldID)
		for _, f := range fields {
			if !gaptopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gaptopic.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gaptopic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(gaptopic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(gaptopic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchQuestions(); ok {
		_spec.SetField(gaptopic.FieldResearchQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResearchQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gaptopic.FieldResearchQuestions, value)
		})
	}
	if _u.mutation.ResearchQuestionsCleared() {
		_spec.ClearField(gaptopic.FieldResearchQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.MethodologySuggestions(); ok {
		_spec.SetField(gaptopic.FieldMethodologySuggestions, field.TypeString, value)
	}
	if _u.mutation.MethodologySuggestionsCleared() {
		_spec.ClearField(gaptopic.FieldMethodologySuggestions, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedOutcomes(); ok {
		_spec.SetField(gaptopic.FieldExpectedOutcomes, field.TypeString, value)
	}
	if _u.mutation.ExpectedOutcomesCleared() {
		_spec.ClearField(gaptopic.FieldExpectedOutcomes, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(gaptopic.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(gaptopic.FieldRelevanceScore, field.TypeFloat64, value)
	}
	_node = &GapTopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gaptopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
