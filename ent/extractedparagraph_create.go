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
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
)

// ExtractedParagraphCreate is the builder for creating a ExtractedParagraph entity.
type ExtractedParagraphCreate struct {
	config
	mutation *ExtractedParagraphMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSectionID sets the "section_id" field.
func (_c *ExtractedParagraphCreate) SetSectionID(v uuid.UUID) *ExtractedParagraphCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ExtractedParagraphCreate) SetText(v string) *ExtractedParagraphCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetPage sets the "page" field.
func (_c *ExtractedParagraphCreate) SetPage(v int) *ExtractedParagraphCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_c *ExtractedParagraphCreate) SetNillablePage(v *int) *ExtractedParagraphCreate {
	if v != nil {
		_c.SetPage(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ExtractedParagraphCreate) SetOrderIndex(v int) *ExtractedParagraphCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ExtractedParagraphCreate) SetNillableOrderIndex(v *int) *ExtractedParagraphCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedParagraphCreate) SetID(v uuid.UUID) *ExtractedParagraphCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedParagraphCreate) SetNillableID(v *uuid.UUID) *ExtractedParagraphCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSection sets the "section" edge to the ExtractedSection entity.
func (_c *ExtractedParagraphCreate) SetSection(v *ExtractedSection) *ExtractedParagraphCreate {
	return _c.SetSectionID(v.ID)
}

// Mutation returns the ExtractedParagraphMutation object of the builder.
func (_c *ExtractedParagraphCreate) Mutation() *ExtractedParagraphMutation {
	return _c.mutation
}

// Save creates the ExtractedParagraph in the database.
func (_c *ExtractedParagraphCreate) Save(ctx context.Context) (*ExtractedParagraph, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedParagraphCreate) SaveX(ctx context.Context) *ExtractedParagraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedParagraphCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedParagraphCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedParagraphCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := extractedparagraph.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedparagraph.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedParagraphCreate) check() error {
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "ExtractedParagraph.section_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ExtractedParagraph.text"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ExtractedParagraph.order_index"`)}
	}
	if len(_c.mutation.SectionIDs()) == 0 {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required edge "ExtractedParagraph.section"`)}
	}
	return nil
}

func (_c *ExtractedParagraphCreate) sqlSave(ctx context.Context) (*ExtractedParagraph, error) {
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

func (_c *ExtractedParagraphCreate) createSpec() (*ExtractedParagraph, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedParagraph{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedparagraph.Table, sqlgraph.NewFieldSpec(extractedparagraph.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(extractedparagraph.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(extractedparagraph.FieldPage, field.TypeInt, value)
		_node.Page = &value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(extractedparagraph.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if nodes := _c.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedparagraph.SectionTable,
			Columns: []string{extractedparagraph.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedsection.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SectionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedParagraph.Create().
//		SetSectionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedParagraphUpsert) {
//			SetSectionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedParagraphCreate) OnConflict(opts ...sql.ConflictOption) *ExtractedParagraphUpsertOne {
	_c.conflict = opts
	return &ExtractedParagraphUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedParagraph.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedParagraphCreate) OnConflictColumns(columns ...string) *ExtractedParagraphUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedParagraphUpsertOne{
		create: _c,
	}
}

type (
	// ExtractedParagraphUpsertOne is the builder for "upsert"-ing
	//  one ExtractedParagraph node.
	ExtractedParagraphUpsertOne struct {
		create *ExtractedParagraphCreate
	}

	// ExtractedParagraphUpsert is the "OnConflict" setter.
	ExtractedParagraphUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *ExtractedParagraphUpsert) SetText(v string) *ExtractedParagraphUpsert {
	u.Set(extractedparagraph.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ExtractedParagraphUpsert) UpdateText() *ExtractedParagraphUpsert {
	u.SetExcluded(extractedparagraph.FieldText)
	return u
}

// SetPage sets the "page" field.
func (u *ExtractedParagraphUpsert) SetPage(v int) *ExtractedParagraphUpsert {
	u.Set(extractedparagraph.FieldPage, v)
	return u
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedParagraphUpsert) UpdatePage() *ExtractedParagraphUpsert {
	u.SetExcluded(extractedparagraph.FieldPage)
	return u
}

// AddPage adds v to the "page" field.
func (u *ExtractedParagraphUpsert) AddPage(v int) *ExtractedParagraphUpsert {
	u.Add(extractedparagraph.FieldPage, v)
	return u
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedParagraphUpsert) ClearPage() *ExtractedParagraphUpsert {
	u.SetNull(extractedparagraph.FieldPage)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedParagraphUpsert) SetOrderIndex(v int) *ExtractedParagraphUpsert {
	u.Set(extractedparagraph.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedParagraphUpsert) UpdateOrderIndex() *ExtractedParagraphUpsert {
	u.SetExcluded(extractedparagraph.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedParagraphUpsert) AddOrderIndex(v int) *ExtractedParagraphUpsert {
	u.Add(extractedparagraph.FieldOrderIndex, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractedParagraph.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedparagraph.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedParagraphUpsertOne) UpdateNewValues() *ExtractedParagraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractedparagraph.FieldID)
		}
		if _, exists := u.create.mutation.SectionID(); exists {
			s.SetIgnore(extractedparagraph.FieldSectionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedParagraph.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractedParagraphUpsertOne) Ignore() *ExtractedParagraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedParagraphUpsertOne) DoNothing() *ExtractedParagraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedParagraphCreate.OnConflict
// documentation for more info.
func (u *ExtractedParagraphUpsertOne) Update(set func(*ExtractedParagraphUpsert)) *ExtractedParagraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedParagraphUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *ExtractedParagraphUpsertOne) SetText(v string) *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ExtractedParagraphUpsertOne) UpdateText() *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.UpdateText()
	})
}

// SetPage sets the "page" field.
func (u *ExtractedParagraphUpsertOne) SetPage(v int) *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.SetPage(v)
	})
}

// AddPage adds v to the "page" field.
func (u *ExtractedParagraphUpsertOne) AddPage(v int) *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.AddPage(v)
	})
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedParagraphUpsertOne) UpdatePage() *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.UpdatePage()
	})
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedParagraphUpsertOne) ClearPage() *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.ClearPage()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedParagraphUpsertOne) SetOrderIndex(v int) *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedParagraphUpsertOne) AddOrderIndex(v int) *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedParagraphUpsertOne) UpdateOrderIndex() *ExtractedParagraphUpsertOne {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedParagraphUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedParagraphCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedParagraphUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractedParagraphUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractedParagraphUpsertOne.ID is not supported by MySQL driver. Use ExtractedParagraphUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractedParagraphUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractedParagraphCreateBulk is the builder for creating many ExtractedParagraph entities in bulk.
type ExtractedParagraphCreateBulk struct {
	config
	err      error
	builders []*ExtractedParagraphCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractedParagraph entities in the database.
func (_c *ExtractedParagraphCreateBulk) Save(ctx context.Context) ([]*ExtractedParagraph, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedParagraph, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedParagraphMutation)
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
func (_c *ExtractedParagraphCreateBulk) SaveX(ctx context.Context) []*ExtractedParagraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedParagraphCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedParagraphCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedParagraph.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedParagraphUpsert) {
//			SetSectionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedParagraphCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractedParagraphUpsertBulk {
	_c.conflict = opts
	return &ExtractedParagraphUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedParagraph.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedParagraphCreateBulk) OnConflictColumns(columns ...string) *ExtractedParagraphUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedParagraphUpsertBulk{
		create: _c,
	}
}

// ExtractedParagraphUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractedParagraph nodes.
type ExtractedParagraphUpsertBulk struct {
	create *ExtractedParagraphCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractedParagraph.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedparagraph.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedParagraphUpsertBulk) UpdateNewValues() *ExtractedParagraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractedparagraph.FieldID)
			}
			if _, exists := b.mutation.SectionID(); exists {
				s.SetIgnore(extractedparagraph.FieldSectionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedParagraph.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractedParagraphUpsertBulk) Ignore() *ExtractedParagraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedParagraphUpsertBulk) DoNothing() *ExtractedParagraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedParagraphCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractedParagraphUpsertBulk) Update(set func(*ExtractedParagraphUpsert)) *ExtractedParagraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedParagraphUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *ExtractedParagraphUpsertBulk) SetText(v string) *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ExtractedParagraphUpsertBulk) UpdateText() *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.UpdateText()
	})
}

// SetPage sets the "page" field.
func (u *ExtractedParagraphUpsertBulk) SetPage(v int) *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.SetPage(v)
	})
}

// AddPage adds v to the "page" field.
func (u *ExtractedParagraphUpsertBulk) AddPage(v int) *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.AddPage(v)
	})
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedParagraphUpsertBulk) UpdatePage() *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.UpdatePage()
	})
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedParagraphUpsertBulk) ClearPage() *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.ClearPage()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedParagraphUpsertBulk) SetOrderIndex(v int) *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedParagraphUpsertBulk) AddOrderIndex(v int) *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedParagraphUpsertBulk) UpdateOrderIndex() *ExtractedParagraphUpsertBulk {
	return u.Update(func(s *ExtractedParagraphUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedParagraphUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractedParagraphCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedParagraphCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedParagraphUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
