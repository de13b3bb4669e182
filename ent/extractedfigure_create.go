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
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/paperextraction"
)

// ExtractedFigureCreate is the builder for creating a ExtractedFigure entity.
type ExtractedFigureCreate struct {
	config
	mutation *ExtractedFigureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (_c *ExtractedFigureCreate) SetPaperExtractionID(v uuid.UUID) *ExtractedFigureCreate {
	_c.mutation.SetPaperExtractionID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ExtractedFigureCreate) SetLabel(v string) *ExtractedFigureCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *ExtractedFigureCreate) SetNillableLabel(v *string) *ExtractedFigureCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetCaption sets the "caption" field.
func (_c *ExtractedFigureCreate) SetCaption(v string) *ExtractedFigureCreate {
	_c.mutation.SetCaption(v)
	return _c
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_c *ExtractedFigureCreate) SetNillableCaption(v *string) *ExtractedFigureCreate {
	if v != nil {
		_c.SetCaption(*v)
	}
	return _c
}

// SetPage sets the "page" field.
func (_c *ExtractedFigureCreate) SetPage(v int) *ExtractedFigureCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_c *ExtractedFigureCreate) SetNillablePage(v *int) *ExtractedFigureCreate {
	if v != nil {
		_c.SetPage(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ExtractedFigureCreate) SetOrderIndex(v int) *ExtractedFigureCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ExtractedFigureCreate) SetNillableOrderIndex(v *int) *ExtractedFigureCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedFigureCreate) SetID(v uuid.UUID) *ExtractedFigureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedFigureCreate) SetNillableID(v *uuid.UUID) *ExtractedFigureCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtractionID sets the "extraction" edge to the PaperExtraction entity by ID.
func (_c *ExtractedFigureCreate) SetExtractionID(id uuid.UUID) *ExtractedFigureCreate {
	_c.mutation.SetExtractionID(id)
	return _c
}

// SetExtraction sets the "extraction" edge to the PaperExtraction entity.
func (_c *ExtractedFigureCreate) SetExtraction(v *PaperExtraction) *ExtractedFigureCreate {
	return _c.SetExtractionID(v.ID)
}

// Mutation returns the ExtractedFigureMutation object of the builder.
func (_c *ExtractedFigureCreate) Mutation() *ExtractedFigureMutation {
	return _c.mutation
}

// Save creates the ExtractedFigure in the database.
func (_c *ExtractedFigureCreate) Save(ctx context.Context) (*ExtractedFigure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedFigureCreate) SaveX(ctx context.Context) *ExtractedFigure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFigureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFigureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedFigureCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := extractedfigure.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedfigure.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedFigureCreate) check() error {
	if _, ok := _c.mutation.PaperExtractionID(); !ok {
		return &ValidationError{Name: "paper_extraction_id", err: errors.New(`ent: missing required field "ExtractedFigure.paper_extraction_id"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ExtractedFigure.order_index"`)}
	}
	if len(_c.mutation.ExtractionIDs()) == 0 {
		return &ValidationError{Name: "extraction", err: errors.New(`ent: missing required edge "ExtractedFigure.extraction"`)}
	}
	return nil
}

func (_c *ExtractedFigureCreate) sqlSave(ctx context.Context) (*ExtractedFigure, error) {
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

func (_c *ExtractedFigureCreate) createSpec() (*ExtractedFigure, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedFigure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedfigure.Table, sqlgraph.NewFieldSpec(extractedfigure.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(extractedfigure.FieldLabel, field.TypeString, value)
		_node.Label = &value
	}
	if value, ok := _c.mutation.Caption(); ok {
		_spec.SetField(extractedfigure.FieldCaption, field.TypeString, value)
		_node.Caption = &value
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(extractedfigure.FieldPage, field.TypeInt, value)
		_node.Page = &value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(extractedfigure.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfigure.ExtractionTable,
			Columns: []string{extractedfigure.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperextraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PaperExtractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedFigure.Create().
//		SetPaperExtractionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedFigureUpsert) {
//			SetPaperExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedFigureCreate) OnConflict(opts ...sql.ConflictOption) *ExtractedFigureUpsertOne {
	_c.conflict = opts
	return &ExtractedFigureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedFigure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedFigureCreate) OnConflictColumns(columns ...string) *ExtractedFigureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedFigureUpsertOne{
		create: _c,
	}
}

type (
	// ExtractedFigureUpsertOne is the builder for "upsert"-ing
	//  one ExtractedFigure node.
	ExtractedFigureUpsertOne struct {
		create *ExtractedFigureCreate
	}

	// ExtractedFigureUpsert is the "OnConflict" setter.
	ExtractedFigureUpsert struct {
		*sql.UpdateSet
	}
)

// SetLabel sets the "label" field.
func (u *ExtractedFigureUpsert) SetLabel(v string) *ExtractedFigureUpsert {
	u.Set(extractedfigure.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *ExtractedFigureUpsert) UpdateLabel() *ExtractedFigureUpsert {
	u.SetExcluded(extractedfigure.FieldLabel)
	return u
}

// ClearLabel clears the value of the "label" field.
func (u *ExtractedFigureUpsert) ClearLabel() *ExtractedFigureUpsert {
	u.SetNull(extractedfigure.FieldLabel)
	return u
}

// SetCaption sets the "caption" field.
func (u *ExtractedFigureUpsert) SetCaption(v string) *ExtractedFigureUpsert {
	u.Set(extractedfigure.FieldCaption, v)
	return u
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *ExtractedFigureUpsert) UpdateCaption() *ExtractedFigureUpsert {
	u.SetExcluded(extractedfigure.FieldCaption)
	return u
}

// ClearCaption clears the value of the "caption" field.
func (u *ExtractedFigureUpsert) ClearCaption() *ExtractedFigureUpsert {
	u.SetNull(extractedfigure.FieldCaption)
	return u
}

// SetPage sets the "page" field.
func (u *ExtractedFigureUpsert) SetPage(v int) *ExtractedFigureUpsert {
	u.Set(extractedfigure.FieldPage, v)
	return u
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedFigureUpsert) UpdatePage() *ExtractedFigureUpsert {
	u.SetExcluded(extractedfigure.FieldPage)
	return u
}

// AddPage adds v to the "page" field.
func (u *ExtractedFigureUpsert) AddPage(v int) *ExtractedFigureUpsert {
	u.Add(extractedfigure.FieldPage, v)
	return u
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedFigureUpsert) ClearPage() *ExtractedFigureUpsert {
	u.SetNull(extractedfigure.FieldPage)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedFigureUpsert) SetOrderIndex(v int) *ExtractedFigureUpsert {
	u.Set(extractedfigure.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedFigureUpsert) UpdateOrderIndex() *ExtractedFigureUpsert {
	u.SetExcluded(extractedfigure.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedFigureUpsert) AddOrderIndex(v int) *ExtractedFigureUpsert {
	u.Add(extractedfigure.FieldOrderIndex, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractedFigure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedfigure.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedFigureUpsertOne) UpdateNewValues() *ExtractedFigureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractedfigure.FieldID)
		}
		if _, exists := u.create.mutation.PaperExtractionID(); exists {
			s.SetIgnore(extractedfigure.FieldPaperExtractionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedFigure.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractedFigureUpsertOne) Ignore() *ExtractedFigureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedFigureUpsertOne) DoNothing() *ExtractedFigureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedFigureCreate.OnConflict
// documentation for more info.
func (u *ExtractedFigureUpsertOne) Update(set func(*ExtractedFigureUpsert)) *ExtractedFigureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedFigureUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *ExtractedFigureUpsertOne) SetLabel(v string) *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *ExtractedFigureUpsertOne) UpdateLabel() *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *ExtractedFigureUpsertOne) ClearLabel() *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.ClearLabel()
	})
}

// SetCaption sets the "caption" field.
func (u *ExtractedFigureUpsertOne) SetCaption(v string) *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *ExtractedFigureUpsertOne) UpdateCaption() *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *ExtractedFigureUpsertOne) ClearCaption() *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.ClearCaption()
	})
}

// SetPage sets the "page" field.
func (u *ExtractedFigureUpsertOne) SetPage(v int) *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetPage(v)
	})
}

// AddPage adds v to the "page" field.
func (u *ExtractedFigureUpsertOne) AddPage(v int) *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.AddPage(v)
	})
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedFigureUpsertOne) UpdatePage() *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdatePage()
	})
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedFigureUpsertOne) ClearPage() *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.ClearPage()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedFigureUpsertOne) SetOrderIndex(v int) *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedFigureUpsertOne) AddOrderIndex(v int) *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedFigureUpsertOne) UpdateOrderIndex() *ExtractedFigureUpsertOne {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedFigureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedFigureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedFigureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractedFigureUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractedFigureUpsertOne.ID is not supported by MySQL driver. Use ExtractedFigureUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractedFigureUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractedFigureCreateBulk is the builder for creating many ExtractedFigure entities in bulk.
type ExtractedFigureCreateBulk struct {
	config
	err      error
	builders []*ExtractedFigureCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractedFigure entities in the database.
func (_c *ExtractedFigureCreateBulk) Save(ctx context.Context) ([]*ExtractedFigure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedFigure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedFigureMutation)
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
func (_c *ExtractedFigureCreateBulk) SaveX(ctx context.Context) []*ExtractedFigure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFigureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFigureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedFigure.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedFigureUpsert) {
//			SetPaperExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedFigureCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractedFigureUpsertBulk {
	_c.conflict = opts
	return &ExtractedFigureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedFigure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedFigureCreateBulk) OnConflictColumns(columns ...string) *ExtractedFigureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedFigureUpsertBulk{
		create: _c,
	}
}

// ExtractedFigureUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractedFigure nodes.
type ExtractedFigureUpsertBulk struct {
	create *ExtractedFigureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractedFigure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedfigure.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedFigureUpsertBulk) UpdateNewValues() *ExtractedFigureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractedfigure.FieldID)
			}
			if _, exists := b.mutation.PaperExtractionID(); exists {
				s.SetIgnore(extractedfigure.FieldPaperExtractionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedFigure.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractedFigureUpsertBulk) Ignore() *ExtractedFigureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedFigureUpsertBulk) DoNothing() *ExtractedFigureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedFigureCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractedFigureUpsertBulk) Update(set func(*ExtractedFigureUpsert)) *ExtractedFigureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedFigureUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *ExtractedFigureUpsertBulk) SetLabel(v string) *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *ExtractedFigureUpsertBulk) UpdateLabel() *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *ExtractedFigureUpsertBulk) ClearLabel() *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.ClearLabel()
	})
}

// SetCaption sets the "caption" field.
func (u *ExtractedFigureUpsertBulk) SetCaption(v string) *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *ExtractedFigureUpsertBulk) UpdateCaption() *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *ExtractedFigureUpsertBulk) ClearCaption() *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.ClearCaption()
	})
}

// SetPage sets the "page" field.
func (u *ExtractedFigureUpsertBulk) SetPage(v int) *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetPage(v)
	})
}

// AddPage adds v to the "page" field.
func (u *ExtractedFigureUpsertBulk) AddPage(v int) *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.AddPage(v)
	})
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedFigureUpsertBulk) UpdatePage() *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdatePage()
	})
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedFigureUpsertBulk) ClearPage() *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.ClearPage()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedFigureUpsertBulk) SetOrderIndex(v int) *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedFigureUpsertBulk) AddOrderIndex(v int) *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedFigureUpsertBulk) UpdateOrderIndex() *ExtractedFigureUpsertBulk {
	return u.Update(func(s *ExtractedFigureUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedFigureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractedFigureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedFigureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedFigureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
