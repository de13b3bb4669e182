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
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/paperextraction"
)

// ExtractedTableCreate is the builder for creating a ExtractedTable entity.
type ExtractedTableCreate struct {
	config
	mutation *ExtractedTableMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (_c *ExtractedTableCreate) SetPaperExtractionID(v uuid.UUID) *ExtractedTableCreate {
	_c.mutation.SetPaperExtractionID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ExtractedTableCreate) SetLabel(v string) *ExtractedTableCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *ExtractedTableCreate) SetNillableLabel(v *string) *ExtractedTableCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetCaption sets the "caption" field.
func (_c *ExtractedTableCreate) SetCaption(v string) *ExtractedTableCreate {
	_c.mutation.SetCaption(v)
	return _c
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_c *ExtractedTableCreate) SetNillableCaption(v *string) *ExtractedTableCreate {
	if v != nil {
		_c.SetCaption(*v)
	}
	return _c
}

// SetPage sets the "page" field.
func (_c *ExtractedTableCreate) SetPage(v int) *ExtractedTableCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_c *ExtractedTableCreate) SetNillablePage(v *int) *ExtractedTableCreate {
	if v != nil {
		_c.SetPage(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ExtractedTableCreate) SetOrderIndex(v int) *ExtractedTableCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ExtractedTableCreate) SetNillableOrderIndex(v *int) *ExtractedTableCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedTableCreate) SetID(v uuid.UUID) *ExtractedTableCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedTableCreate) SetNillableID(v *uuid.UUID) *ExtractedTableCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtractionID sets the "extraction" edge to the PaperExtraction entity by ID.
func (_c *ExtractedTableCreate) SetExtractionID(id uuid.UUID) *ExtractedTableCreate {
	_c.mutation.SetExtractionID(id)
	return _c
}

// SetExtraction sets the "extraction" edge to the PaperExtraction entity.
func (_c *ExtractedTableCreate) SetExtraction(v *PaperExtraction) *ExtractedTableCreate {
	return _c.SetExtractionID(v.ID)
}

// Mutation returns the ExtractedTableMutation object of the builder.
func (_c *ExtractedTableCreate) Mutation() *ExtractedTableMutation {
	return _c.mutation
}

// Save creates the ExtractedTable in the database.
func (_c *ExtractedTableCreate) Save(ctx context.Context) (*ExtractedTable, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedTableCreate) SaveX(ctx context.Context) *ExtractedTable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedTableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedTableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedTableCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := extractedtable.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedtable.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedTableCreate) check() error {
	if _, ok := _c.mutation.PaperExtractionID(); !ok {
		return &ValidationError{Name: "paper_extraction_id", err: errors.New(`ent: missing required field "ExtractedTable.paper_extraction_id"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ExtractedTable.order_index"`)}
	}
	if len(_c.mutation.ExtractionIDs()) == 0 {
		return &ValidationError{Name: "extraction", err: errors.New(`ent: missing required edge "ExtractedTable.extraction"`)}
	}
	return nil
}

func (_c *ExtractedTableCreate) sqlSave(ctx context.Context) (*ExtractedTable, error) {
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

func (_c *ExtractedTableCreate) createSpec() (*ExtractedTable, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedTable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedtable.Table, sqlgraph.NewFieldSpec(extractedtable.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(extractedtable.FieldLabel, field.TypeString, value)
		_node.Label = &value
	}
	if value, ok := _c.mutation.Caption(); ok {
		_spec.SetField(extractedtable.FieldCaption, field.TypeString, value)
		_node.Caption = &value
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(extractedtable.FieldPage, field.TypeInt, value)
		_node.Page = &value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(extractedtable.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedtable.ExtractionTable,
			Columns: []string{extractedtable.ExtractionColumn},
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
//	client.ExtractedTable.Create().
//		SetPaperExtractionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedTableUpsert) {
//			SetPaperExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedTableCreate) OnConflict(opts ...sql.ConflictOption) *ExtractedTableUpsertOne {
	_c.conflict = opts
	return &ExtractedTableUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedTable.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedTableCreate) OnConflictColumns(columns ...string) *ExtractedTableUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedTableUpsertOne{
		create: _c,
	}
}

type (
	// ExtractedTableUpsertOne is the builder for "upsert"-ing
	//  one ExtractedTable node.
	ExtractedTableUpsertOne struct {
		create *ExtractedTableCreate
	}

	// ExtractedTableUpsert is the "OnConflict" setter.
	ExtractedTableUpsert struct {
		*sql.UpdateSet
	}
)

// SetLabel sets the "label" field.
func (u *ExtractedTableUpsert) SetLabel(v string) *ExtractedTableUpsert {
	u.Set(extractedtable.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *ExtractedTableUpsert) UpdateLabel() *ExtractedTableUpsert {
	u.SetExcluded(extractedtable.FieldLabel)
	return u
}

// ClearLabel clears the value of the "label" field.
func (u *ExtractedTableUpsert) ClearLabel() *ExtractedTableUpsert {
	u.SetNull(extractedtable.FieldLabel)
	return u
}

// SetCaption sets the "caption" field.
func (u *ExtractedTableUpsert) SetCaption(v string) *ExtractedTableUpsert {
	u.Set(extractedtable.FieldCaption, v)
	return u
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *ExtractedTableUpsert) UpdateCaption() *ExtractedTableUpsert {
	u.SetExcluded(extractedtable.FieldCaption)
	return u
}

// ClearCaption clears the value of the "caption" field.
func (u *ExtractedTableUpsert) ClearCaption() *ExtractedTableUpsert {
	u.SetNull(extractedtable.FieldCaption)
	return u
}

// SetPage sets the "page" field.
func (u *ExtractedTableUpsert) SetPage(v int) *ExtractedTableUpsert {
	u.Set(extractedtable.FieldPage, v)
	return u
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedTableUpsert) UpdatePage() *ExtractedTableUpsert {
	u.SetExcluded(extractedtable.FieldPage)
	return u
}

// AddPage adds v to the "page" field.
func (u *ExtractedTableUpsert) AddPage(v int) *ExtractedTableUpsert {
	u.Add(extractedtable.FieldPage, v)
	return u
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedTableUpsert) ClearPage() *ExtractedTableUpsert {
	u.SetNull(extractedtable.FieldPage)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedTableUpsert) SetOrderIndex(v int) *ExtractedTableUpsert {
	u.Set(extractedtable.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedTableUpsert) UpdateOrderIndex() *ExtractedTableUpsert {
	u.SetExcluded(extractedtable.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedTableUpsert) AddOrderIndex(v int) *ExtractedTableUpsert {
	u.Add(extractedtable.FieldOrderIndex, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractedTable.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedtable.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedTableUpsertOne) UpdateNewValues() *ExtractedTableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractedtable.FieldID)
		}
		if _, exists := u.create.mutation.PaperExtractionID(); exists {
			s.SetIgnore(extractedtable.FieldPaperExtractionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedTable.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractedTableUpsertOne) Ignore() *ExtractedTableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedTableUpsertOne) DoNothing() *ExtractedTableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedTableCreate.OnConflict
// documentation for more info.
func (u *ExtractedTableUpsertOne) Update(set func(*ExtractedTableUpsert)) *ExtractedTableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedTableUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *ExtractedTableUpsertOne) SetLabel(v string) *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *ExtractedTableUpsertOne) UpdateLabel() *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *ExtractedTableUpsertOne) ClearLabel() *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.ClearLabel()
	})
}

// SetCaption sets the "caption" field.
func (u *ExtractedTableUpsertOne) SetCaption(v string) *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *ExtractedTableUpsertOne) UpdateCaption() *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *ExtractedTableUpsertOne) ClearCaption() *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.ClearCaption()
	})
}

// SetPage sets the "page" field.
func (u *ExtractedTableUpsertOne) SetPage(v int) *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetPage(v)
	})
}

// AddPage adds v to the "page" field.
func (u *ExtractedTableUpsertOne) AddPage(v int) *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.AddPage(v)
	})
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedTableUpsertOne) UpdatePage() *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdatePage()
	})
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedTableUpsertOne) ClearPage() *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.ClearPage()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedTableUpsertOne) SetOrderIndex(v int) *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedTableUpsertOne) AddOrderIndex(v int) *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedTableUpsertOne) UpdateOrderIndex() *ExtractedTableUpsertOne {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedTableUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedTableCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedTableUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractedTableUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractedTableUpsertOne.ID is not supported by MySQL driver. Use ExtractedTableUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractedTableUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractedTableCreateBulk is the builder for creating many ExtractedTable entities in bulk.
type ExtractedTableCreateBulk struct {
	config
	err      error
	builders []*ExtractedTableCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractedTable entities in the database.
func (_c *ExtractedTableCreateBulk) Save(ctx context.Context) ([]*ExtractedTable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedTable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedTableMutation)
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
func (_c *ExtractedTableCreateBulk) SaveX(ctx context.Context) []*ExtractedTable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedTableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedTableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedTable.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedTableUpsert) {
//			SetPaperExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedTableCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractedTableUpsertBulk {
	_c.conflict = opts
	return &ExtractedTableUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedTable.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedTableCreateBulk) OnConflictColumns(columns ...string) *ExtractedTableUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedTableUpsertBulk{
		create: _c,
	}
}

// ExtractedTableUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractedTable nodes.
type ExtractedTableUpsertBulk struct {
	create *ExtractedTableCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractedTable.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedtable.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedTableUpsertBulk) UpdateNewValues() *ExtractedTableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractedtable.FieldID)
			}
			if _, exists := b.mutation.PaperExtractionID(); exists {
				s.SetIgnore(extractedtable.FieldPaperExtractionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedTable.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractedTableUpsertBulk) Ignore() *ExtractedTableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedTableUpsertBulk) DoNothing() *ExtractedTableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedTableCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractedTableUpsertBulk) Update(set func(*ExtractedTableUpsert)) *ExtractedTableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedTableUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *ExtractedTableUpsertBulk) SetLabel(v string) *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *ExtractedTableUpsertBulk) UpdateLabel() *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdateLabel()
	})
}

// ClearLabel clears the value of the "label" field.
func (u *ExtractedTableUpsertBulk) ClearLabel() *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.ClearLabel()
	})
}

// SetCaption sets the "caption" field.
func (u *ExtractedTableUpsertBulk) SetCaption(v string) *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *ExtractedTableUpsertBulk) UpdateCaption() *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *ExtractedTableUpsertBulk) ClearCaption() *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.ClearCaption()
	})
}

// SetPage sets the "page" field.
func (u *ExtractedTableUpsertBulk) SetPage(v int) *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetPage(v)
	})
}

// AddPage adds v to the "page" field.
func (u *ExtractedTableUpsertBulk) AddPage(v int) *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.AddPage(v)
	})
}

// UpdatePage sets the "page" field to the value that was provided on create.
func (u *ExtractedTableUpsertBulk) UpdatePage() *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdatePage()
	})
}

// ClearPage clears the value of the "page" field.
func (u *ExtractedTableUpsertBulk) ClearPage() *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.ClearPage()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedTableUpsertBulk) SetOrderIndex(v int) *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedTableUpsertBulk) AddOrderIndex(v int) *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedTableUpsertBulk) UpdateOrderIndex() *ExtractedTableUpsertBulk {
	return u.Update(func(s *ExtractedTableUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedTableUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractedTableCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedTableCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedTableUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
