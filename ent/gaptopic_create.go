// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// GapTopicCreate is the builder for creating a GapTopic entity.
type GapTopicCreate struct {
	config
	mutation *GapTopicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetResearchGapID sets the "research_gap_id" field.
func (_c *GapTopicCreate) SetResearchGapID(v uuid.UUID) *GapTopicCreate {
	_c.mutation.SetResearchGapID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *GapTopicCreate) SetTitle(v string) *GapTopicCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *GapTopicCreate) SetDescription(v string) *GapTopicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *GapTopicCreate) SetNillableDescription(v *string) *GapTopicCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetResearchQuestions sets the "research_questions" field.
func (_c *GapTopicCreate) SetResearchQuestions(v []string) *GapTopicCreate {
	_c.mutation.SetResearchQuestions(v)
	return _c
}

// SetMethodologySuggestions sets the "methodology_suggestions" field.
func (_c *GapTopicCreate) SetMethodologySuggestions(v string) *GapTopicCreate {
	_c.mutation.SetMethodologySuggestions(v)
	return _c
}

// SetNillableMethodologySuggestions sets the "methodology_suggestions" field if the given value is not nil.
func (_c *GapTopicCreate) SetNillableMethodologySuggestions(v *string) *GapTopicCreate {
	if v != nil {
		_c.SetMethodologySuggestions(*v)
	}
	return _c
}

// SetExpectedOutcomes sets the "expected_outcomes" field.
func (_c *GapTopicCreate) SetExpectedOutcomes(v string) *GapTopicCreate {
	_c.mutation.SetExpectedOutcomes(v)
	return _c
}

// SetNillableExpectedOutcomes sets the "expected_outcomes" field if the given value is not nil.
func (_c *GapTopicCreate) SetNillableExpectedOutcomes(v *string) *GapTopicCreate {
	if v != nil {
		_c.SetExpectedOutcomes(*v)
	}
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *GapTopicCreate) SetRelevanceScore(v float64) *GapTopicCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_c *GapTopicCreate) SetNillableRelevanceScore(v *float64) *GapTopicCreate {
	if v != nil {
		_c.SetRelevanceScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GapTopicCreate) SetID(v uuid.UUID) *GapTopicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GapTopicCreate) SetNillableID(v *uuid.UUID) *GapTopicCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetGapID sets the "gap" edge to the ResearchGap entity by ID.
func (_c *GapTopicCreate) SetGapID(id uuid.UUID) *GapTopicCreate {
	_c.mutation.SetGapID(id)
	return _c
}

// SetGap sets the "gap" edge to the ResearchGap entity.
func (_c *GapTopicCreate) SetGap(v *ResearchGap) *GapTopicCreate {
	return _c.SetGapID(v.ID)
}

// Mutation returns the GapTopicMutation object of the builder.
func (_c *GapTopicCreate) Mutation() *GapTopicMutation {
	return _c.mutation
}

// Save creates the GapTopic in the database.
func (_c *GapTopicCreate) Save(ctx context.Context) (*GapTopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GapTopicCreate) SaveX(ctx context.Context) *GapTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapTopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapTopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GapTopicCreate) defaults() {
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		v := gaptopic.DefaultRelevanceScore
		_c.mutation.SetRelevanceScore(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gaptopic.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GapTopicCreate) check() error {
	if _, ok := _c.mutation.ResearchGapID(); !ok {
		return &ValidationError{Name: "research_gap_id", err: errors.New(`ent: missing required field "GapTopic.research_gap_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "GapTopic.title"`)}
	}
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		return &ValidationError{Name: "relevance_score", err: errors.New(`ent: missing required field "GapTopic.relevance_score"`)}
	}
	if len(_c.mutation.GapIDs()) == 0 {
		return &ValidationError{Name: "gap", err: errors.New(`ent: missing required edge "GapTopic.gap"`)}
	}
	return nil
}

func (_c *GapTopicCreate) sqlSave(ctx context.Context) (*GapTopic, error) {
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

func (_c *GapTopicCreate) createSpec() (*GapTopic, *sqlgraph.CreateSpec) {
	var (
		_node = &GapTopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gaptopic.Table, sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(gaptopic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(gaptopic.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ResearchQuestions(); ok {
		_spec.SetField(gaptopic.FieldResearchQuestions, field.TypeJSON, value)
		_node.ResearchQuestions = value
	}
	if value, ok := _c.mutation.MethodologySuggestions(); ok {
		_spec.SetField(gaptopic.FieldMethodologySuggestions, field.TypeString, value)
		_node.MethodologySuggestions = &value
	}
	if value, ok := _c.mutation.ExpectedOutcomes(); ok {
		_spec.SetField(gaptopic.FieldExpectedOutcomes, field.TypeString, value)
		_node.ExpectedOutcomes = &value
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(gaptopic.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = value
	}
	if nodes := _c.mutation.GapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gaptopic.GapTable,
			Columns: []string{gaptopic.GapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResearchGapID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GapTopic.Create().
//		SetResearchGapID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GapTopicUpsert) {
//			SetResearchGapID(v+v).
//		}).
//		Exec(ctx)
func (_c *GapTopicCreate) OnConflict(opts ...sql.ConflictOption) *GapTopicUpsertOne {
	_c.conflict = opts
	return &GapTopicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GapTopic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GapTopicCreate) OnConflictColumns(columns ...string) *GapTopicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GapTopicUpsertOne{
		create: _c,
	}
}

type (
	// GapTopicUpsertOne is the builder for "upsert"-ing
	//  one GapTopic node.
	GapTopicUpsertOne struct {
		create *GapTopicCreate
	}

	// GapTopicUpsert is the "OnConflict" setter.
	GapTopicUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *GapTopicUpsert) SetTitle(v string) *GapTopicUpsert {
	u.Set(gaptopic.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GapTopicUpsert) UpdateTitle() *GapTopicUpsert {
	u.SetExcluded(gaptopic.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *GapTopicUpsert) SetDescription(v string) *GapTopicUpsert {
	u.Set(gaptopic.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GapTopicUpsert) UpdateDescription() *GapTopicUpsert {
	u.SetExcluded(gaptopic.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *GapTopicUpsert) ClearDescription() *GapTopicUpsert {
	u.SetNull(gaptopic.FieldDescription)
	return u
}

// SetResearchQuestions sets the "research_questions" field.
func (u *GapTopicUpsert) SetResearchQuestions(v []string) *GapTopicUpsert {
	u.Set(gaptopic.FieldResearchQuestions, v)
	return u
}

// UpdateResearchQuestions sets the "research_questions" field to the value that was provided on create.
func (u *GapTopicUpsert) UpdateResearchQuestions() *GapTopicUpsert {
	u.SetExcluded(gaptopic.FieldResearchQuestions)
	return u
}

// ClearResearchQuestions clears the value of the "research_questions" field.
func (u *GapTopicUpsert) ClearResearchQuestions() *GapTopicUpsert {
	u.SetNull(gaptopic.FieldResearchQuestions)
	return u
}

// SetMethodologySuggestions sets the "methodology_suggestions" field.
func (u *GapTopicUpsert) SetMethodologySuggestions(v string) *GapTopicUpsert {
	u.Set(gaptopic.FieldMethodologySuggestions, v)
	return u
}

// UpdateMethodologySuggestions sets the "methodology_suggestions" field to the value that was provided on create.
func (u *GapTopicUpsert) UpdateMethodologySuggestions() *GapTopicUpsert {
	u.SetExcluded(gaptopic.FieldMethodologySuggestions)
	return u
}

// ClearMethodologySuggestions clears the value of the "methodology_suggestions" field.
func (u *GapTopicUpsert) ClearMethodologySuggestions() *GapTopicUpsert {
	u.SetNull(gaptopic.FieldMethodologySuggestions)
	return u
}

// SetExpectedOutcomes sets the "expected_outcomes" field.
func (u *GapTopicUpsert) SetExpectedOutcomes(v string) *GapTopicUpsert {
	u.Set(gaptopic.FieldExpectedOutcomes, v)
	return u
}

// UpdateExpectedOutcomes sets the "expected_outcomes" field to the value that was provided on create.
func (u *GapTopicUpsert) UpdateExpectedOutcomes() *GapTopicUpsert {
	u.SetExcluded(gaptopic.FieldExpectedOutcomes)
	return u
}

// ClearExpectedOutcomes clears the value of the "expected_outcomes" field.
func (u *GapTopicUpsert) ClearExpectedOutcomes() *GapTopicUpsert {
	u.SetNull(gaptopic.FieldExpectedOutcomes)
	return u
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *GapTopicUpsert) SetRelevanceScore(v float64) *GapTopicUpsert {
	u.Set(gaptopic.FieldRelevanceScore, v)
	return u
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *GapTopicUpsert) UpdateRelevanceScore() *GapTopicUpsert {
	u.SetExcluded(gaptopic.FieldRelevanceScore)
	return u
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *GapTopicUpsert) AddRelevanceScore(v float64) *GapTopicUpsert {
	u.Add(gaptopic.FieldRelevanceScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GapTopic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gaptopic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GapTopicUpsertOne) UpdateNewValues() *GapTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gaptopic.FieldID)
		}
		if _, exists := u.create.mutation.ResearchGapID(); exists {
			s.SetIgnore(gaptopic.FieldResearchGapID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GapTopic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GapTopicUpsertOne) Ignore() *GapTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GapTopicUpsertOne) DoNothing() *GapTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GapTopicCreate.OnConflict
// documentation for more info.
func (u *GapTopicUpsertOne) Update(set func(*GapTopicUpsert)) *GapTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GapTopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *GapTopicUpsertOne) SetTitle(v string) *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GapTopicUpsertOne) UpdateTitle() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *GapTopicUpsertOne) SetDescription(v string) *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GapTopicUpsertOne) UpdateDescription() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *GapTopicUpsertOne) ClearDescription() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearDescription()
	})
}

// SetResearchQuestions sets the "research_questions" field.
func (u *GapTopicUpsertOne) SetResearchQuestions(v []string) *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetResearchQuestions(v)
	})
}

// UpdateResearchQuestions sets the "research_questions" field to the value that was provided on create.
func (u *GapTopicUpsertOne) UpdateResearchQuestions() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateResearchQuestions()
	})
}

// ClearResearchQuestions clears the value of the "research_questions" field.
func (u *GapTopicUpsertOne) ClearResearchQuestions() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearResearchQuestions()
	})
}

// SetMethodologySuggestions sets the "methodology_suggestions" field.
func (u *GapTopicUpsertOne) SetMethodologySuggestions(v string) *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetMethodologySuggestions(v)
	})
}

// UpdateMethodologySuggestions sets the "methodology_suggestions" field to the value that was provided on create.
func (u *GapTopicUpsertOne) UpdateMethodologySuggestions() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateMethodologySuggestions()
	})
}

// ClearMethodologySuggestions clears the value of the "methodology_suggestions" field.
func (u *GapTopicUpsertOne) ClearMethodologySuggestions() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearMethodologySuggestions()
	})
}

// SetExpectedOutcomes sets the "expected_outcomes" field.
func (u *GapTopicUpsertOne) SetExpectedOutcomes(v string) *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetExpectedOutcomes(v)
	})
}

// UpdateExpectedOutcomes sets the "expected_outcomes" field to the value that was provided on create.
func (u *GapTopicUpsertOne) UpdateExpectedOutcomes() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateExpectedOutcomes()
	})
}

// ClearExpectedOutcomes clears the value of the "expected_outcomes" field.
func (u *GapTopicUpsertOne) ClearExpectedOutcomes() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearExpectedOutcomes()
	})
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *GapTopicUpsertOne) SetRelevanceScore(v float64) *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetRelevanceScore(v)
	})
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *GapTopicUpsertOne) AddRelevanceScore(v float64) *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.AddRelevanceScore(v)
	})
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *GapTopicUpsertOne) UpdateRelevanceScore() *GapTopicUpsertOne {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateRelevanceScore()
	})
}

// Exec executes the query.
func (u *GapTopicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GapTopicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GapTopicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GapTopicUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GapTopicUpsertOne.ID is not supported by MySQL driver. Use GapTopicUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GapTopicUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GapTopicCreateBulk is the builder for creating many GapTopic entities in bulk.
type GapTopicCreateBulk struct {
	config
	err      error
	builders []*GapTopicCreate
	conflict []sql.ConflictOption
}

// Save creates the GapTopic entities in the database.
func (_c *GapTopicCreateBulk) Save(ctx context.Context) ([]*GapTopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GapTopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GapTopicMutation)
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
func (_c *GapTopicCreateBulk) SaveX(ctx context.Context) []*GapTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapTopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapTopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GapTopic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GapTopicUpsert) {
//			SetResearchGapID(v+v).
//		}).
//		Exec(ctx)
func (_c *GapTopicCreateBulk) OnConflict(opts ...sql.ConflictOption) *GapTopicUpsertBulk {
	_c.conflict = opts
	return &GapTopicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GapTopic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GapTopicCreateBulk) OnConflictColumns(columns ...string) *GapTopicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GapTopicUpsertBulk{
		create: _c,
	}
}

// GapTopicUpsertBulk is the builder for "upsert"-ing
// a bulk of GapTopic nodes.
type GapTopicUpsertBulk struct {
	create *GapTopicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GapTopic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gaptopic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GapTopicUpsertBulk) UpdateNewValues() *GapTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gaptopic.FieldID)
			}
			if _, exists := b.mutation.ResearchGapID(); exists {
				s.SetIgnore(gaptopic.FieldResearchGapID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GapTopic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GapTopicUpsertBulk) Ignore() *GapTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GapTopicUpsertBulk) DoNothing() *GapTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GapTopicCreateBulk.OnConflict
// documentation for more info.
func (u *GapTopicUpsertBulk) Update(set func(*GapTopicUpsert)) *GapTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GapTopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *GapTopicUpsertBulk) SetTitle(v string) *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GapTopicUpsertBulk) UpdateTitle() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *GapTopicUpsertBulk) SetDescription(v string) *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *GapTopicUpsertBulk) UpdateDescription() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *GapTopicUpsertBulk) ClearDescription() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearDescription()
	})
}

// SetResearchQuestions sets the "research_questions" field.
func (u *GapTopicUpsertBulk) SetResearchQuestions(v []string) *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetResearchQuestions(v)
	})
}

// UpdateResearchQuestions sets the "research_questions" field to the value that was provided on create.
func (u *GapTopicUpsertBulk) UpdateResearchQuestions() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateResearchQuestions()
	})
}

// ClearResearchQuestions clears the value of the "research_questions" field.
func (u *GapTopicUpsertBulk) ClearResearchQuestions() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearResearchQuestions()
	})
}

// SetMethodologySuggestions sets the "methodology_suggestions" field.
func (u *GapTopicUpsertBulk) SetMethodologySuggestions(v string) *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetMethodologySuggestions(v)
	})
}

// UpdateMethodologySuggestions sets the "methodology_suggestions" field to the value that was provided on create.
func (u *GapTopicUpsertBulk) UpdateMethodologySuggestions() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateMethodologySuggestions()
	})
}

// ClearMethodologySuggestions clears the value of the "methodology_suggestions" field.
func (u *GapTopicUpsertBulk) ClearMethodologySuggestions() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearMethodologySuggestions()
	})
}

// SetExpectedOutcomes sets the "expected_outcomes" field.
func (u *GapTopicUpsertBulk) SetExpectedOutcomes(v string) *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetExpectedOutcomes(v)
	})
}

// UpdateExpectedOutcomes sets the "expected_outcomes" field to the value that was provided on create.
func (u *GapTopicUpsertBulk) UpdateExpectedOutcomes() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateExpectedOutcomes()
	})
}

// ClearExpectedOutcomes clears the value of the "expected_outcomes" field.
func (u *GapTopicUpsertBulk) ClearExpectedOutcomes() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.ClearExpectedOutcomes()
	})
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *GapTopicUpsertBulk) SetRelevanceScore(v float64) *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.SetRelevanceScore(v)
	})
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *GapTopicUpsertBulk) AddRelevanceScore(v float64) *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.AddRelevanceScore(v)
	})
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *GapTopicUpsertBulk) UpdateRelevanceScore() *GapTopicUpsertBulk {
	return u.Update(func(s *GapTopicUpsert) {
		s.UpdateRelevanceScore()
	})
}

// Exec executes the query.
func (u *GapTopicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GapTopicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GapTopicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GapTopicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
