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
	"github.com/scholarai/gapfinder/ent/paperextraction"
)

// ExtractedSectionCreate is the builder for creating a ExtractedSection entity.
type ExtractedSectionCreate struct {
	config
	mutation *ExtractedSectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (_c *ExtractedSectionCreate) SetPaperExtractionID(v uuid.UUID) *ExtractedSectionCreate {
	_c.mutation.SetPaperExtractionID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ExtractedSectionCreate) SetTitle(v string) *ExtractedSectionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ExtractedSectionCreate) SetNillableTitle(v *string) *ExtractedSectionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSectionType sets the "section_type" field.
func (_c *ExtractedSectionCreate) SetSectionType(v string) *ExtractedSectionCreate {
	_c.mutation.SetSectionType(v)
	return _c
}

// SetNillableSectionType sets the "section_type" field if the given value is not nil.
func (_c *ExtractedSectionCreate) SetNillableSectionType(v *string) *ExtractedSectionCreate {
	if v != nil {
		_c.SetSectionType(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ExtractedSectionCreate) SetLevel(v int) *ExtractedSectionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ExtractedSectionCreate) SetNillableLevel(v *int) *ExtractedSectionCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ExtractedSectionCreate) SetOrderIndex(v int) *ExtractedSectionCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ExtractedSectionCreate) SetNillableOrderIndex(v *int) *ExtractedSectionCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedSectionCreate) SetID(v uuid.UUID) *ExtractedSectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedSectionCreate) SetNillableID(v *uuid.UUID) *ExtractedSectionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtractionID sets the "extraction" edge to the PaperExtraction entity by ID.
func (_c *ExtractedSectionCreate) SetExtractionID(id uuid.UUID) *ExtractedSectionCreate {
	_c.mutation.SetExtractionID(id)
	return _c
}

// SetExtraction sets the "extraction" edge to the PaperExtraction entity.
func (_c *ExtractedSectionCreate) SetExtraction(v *PaperExtraction) *ExtractedSectionCreate {
	return _c.SetExtractionID(v.ID)
}

// AddParagraphIDs adds the "paragraphs" edge to the ExtractedParagraph entity by IDs.
func (_c *ExtractedSectionCreate) AddParagraphIDs(ids ...uuid.UUID) *ExtractedSectionCreate {
	_c.mutation.AddParagraphIDs(ids...)
	return _c
}

// AddParagraphs adds the "paragraphs" edges to the ExtractedParagraph entity.
func (_c *ExtractedSectionCreate) AddParagraphs(v ...*ExtractedParagraph) *ExtractedSectionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParagraphIDs(ids...)
}

// Mutation returns the ExtractedSectionMutation object of the builder.
func (_c *ExtractedSectionCreate) Mutation() *ExtractedSectionMutation {
	return _c.mutation
}

// Save creates the ExtractedSection in the database.
func (_c *ExtractedSectionCreate) Save(ctx context.Context) (*ExtractedSection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedSectionCreate) SaveX(ctx context.Context) *ExtractedSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedSectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedSectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedSectionCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := extractedsection.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedsection.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedSectionCreate) check() error {
	if _, ok := _c.mutation.PaperExtractionID(); !ok {
		return &ValidationError{Name: "paper_extraction_id", err: errors.New(`ent: missing required field "ExtractedSection.paper_extraction_id"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ExtractedSection.order_index"`)}
	}
	if len(_c.mutation.ExtractionIDs()) == 0 {
		return &ValidationError{Name: "extraction", err: errors.New(`ent: missing required edge "ExtractedSection.extraction"`)}
	}
	return nil
}

func (_c *ExtractedSectionCreate) sqlSave(ctx context.Context) (*ExtractedSection, error) {
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

func (_c *ExtractedSectionCreate) createSpec() (*ExtractedSection, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedSection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedsection.Table, sqlgraph.NewFieldSpec(extractedsection.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(extractedsection.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.SectionType(); ok {
		_spec.SetField(extractedsection.FieldSectionType, field.TypeString, value)
		_node.SectionType = &value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(extractedsection.FieldLevel, field.TypeInt, value)
		_node.Level = &value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(extractedsection.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedsection.ExtractionTable,
			Columns: []string{extractedsection.ExtractionColumn},
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
	if nodes := _c.mutation.ParagraphsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractedsection.ParagraphsTable,
			Columns: []string{extractedsection.ParagraphsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedparagraph.FieldID, field.TypeUUID),
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
//	client.ExtractedSection.Create().
//		SetPaperExtractionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedSectionUpsert) {
//			SetPaperExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedSectionCreate) OnConflict(opts ...sql.ConflictOption) *ExtractedSectionUpsertOne {
	_c.conflict = opts
	return &ExtractedSectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedSectionCreate) OnConflictColumns(columns ...string) *ExtractedSectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedSectionUpsertOne{
		create: _c,
	}
}

type (
	// ExtractedSectionUpsertOne is the builder for "upsert"-ing
	//  one ExtractedSection node.
	ExtractedSectionUpsertOne struct {
		create *ExtractedSectionCreate
	}

	// ExtractedSectionUpsert is the "OnConflict" setter.
	ExtractedSectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ExtractedSectionUpsert) SetTitle(v string) *ExtractedSectionUpsert {
	u.Set(extractedsection.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExtractedSectionUpsert) UpdateTitle() *ExtractedSectionUpsert {
	u.SetExcluded(extractedsection.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *ExtractedSectionUpsert) ClearTitle() *ExtractedSectionUpsert {
	u.SetNull(extractedsection.FieldTitle)
	return u
}

// SetSectionType sets the "section_type" field.
func (u *ExtractedSectionUpsert) SetSectionType(v string) *ExtractedSectionUpsert {
	u.Set(extractedsection.FieldSectionType, v)
	return u
}

// UpdateSectionType sets the "section_type" field to the value that was provided on create.
func (u *ExtractedSectionUpsert) UpdateSectionType() *ExtractedSectionUpsert {
	u.SetExcluded(extractedsection.FieldSectionType)
	return u
}

// ClearSectionType clears the value of the "section_type" field.
func (u *ExtractedSectionUpsert) ClearSectionType() *ExtractedSectionUpsert {
	u.SetNull(extractedsection.FieldSectionType)
	return u
}

// SetLevel sets the "level" field.
func (u *ExtractedSectionUpsert) SetLevel(v int) *ExtractedSectionUpsert {
	u.Set(extractedsection.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *ExtractedSectionUpsert) UpdateLevel() *ExtractedSectionUpsert {
	u.SetExcluded(extractedsection.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *ExtractedSectionUpsert) AddLevel(v int) *ExtractedSectionUpsert {
	u.Add(extractedsection.FieldLevel, v)
	return u
}

// ClearLevel clears the value of the "level" field.
func (u *ExtractedSectionUpsert) ClearLevel() *ExtractedSectionUpsert {
	u.SetNull(extractedsection.FieldLevel)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedSectionUpsert) SetOrderIndex(v int) *ExtractedSectionUpsert {
	u.Set(extractedsection.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedSectionUpsert) UpdateOrderIndex() *ExtractedSectionUpsert {
	u.SetExcluded(extractedsection.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedSectionUpsert) AddOrderIndex(v int) *ExtractedSectionUpsert {
	u.Add(extractedsection.FieldOrderIndex, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractedSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedSectionUpsertOne) UpdateNewValues() *ExtractedSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractedsection.FieldID)
		}
		if _, exists := u.create.mutation.PaperExtractionID(); exists {
			s.SetIgnore(extractedsection.FieldPaperExtractionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedSection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractedSectionUpsertOne) Ignore() *ExtractedSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedSectionUpsertOne) DoNothing() *ExtractedSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedSectionCreate.OnConflict
// documentation for more info.
func (u *ExtractedSectionUpsertOne) Update(set func(*ExtractedSectionUpsert)) *ExtractedSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ExtractedSectionUpsertOne) SetTitle(v string) *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExtractedSectionUpsertOne) UpdateTitle() *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ExtractedSectionUpsertOne) ClearTitle() *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.ClearTitle()
	})
}

// SetSectionType sets the "section_type" field.
func (u *ExtractedSectionUpsertOne) SetSectionType(v string) *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetSectionType(v)
	})
}

// UpdateSectionType sets the "section_type" field to the value that was provided on create.
func (u *ExtractedSectionUpsertOne) UpdateSectionType() *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateSectionType()
	})
}

// ClearSectionType clears the value of the "section_type" field.
func (u *ExtractedSectionUpsertOne) ClearSectionType() *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.ClearSectionType()
	})
}

// SetLevel sets the "level" field.
func (u *ExtractedSectionUpsertOne) SetLevel(v int) *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *ExtractedSectionUpsertOne) AddLevel(v int) *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *ExtractedSectionUpsertOne) UpdateLevel() *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateLevel()
	})
}

// ClearLevel clears the value of the "level" field.
func (u *ExtractedSectionUpsertOne) ClearLevel() *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.ClearLevel()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedSectionUpsertOne) SetOrderIndex(v int) *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedSectionUpsertOne) AddOrderIndex(v int) *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedSectionUpsertOne) UpdateOrderIndex() *ExtractedSectionUpsertOne {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedSectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedSectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedSectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractedSectionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractedSectionUpsertOne.ID is not supported by MySQL driver. Use ExtractedSectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractedSectionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractedSectionCreateBulk is the builder for creating many ExtractedSection entities in bulk.
type ExtractedSectionCreateBulk struct {
	config
	err      error
	builders []*ExtractedSectionCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractedSection entities in the database.
func (_c *ExtractedSectionCreateBulk) Save(ctx context.Context) ([]*ExtractedSection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedSection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedSectionMutation)
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
func (_c *ExtractedSectionCreateBulk) SaveX(ctx context.Context) []*ExtractedSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedSectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedSectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedSection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedSectionUpsert) {
//			SetPaperExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedSectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractedSectionUpsertBulk {
	_c.conflict = opts
	return &ExtractedSectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedSectionCreateBulk) OnConflictColumns(columns ...string) *ExtractedSectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedSectionUpsertBulk{
		create: _c,
	}
}

// ExtractedSectionUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractedSection nodes.
type ExtractedSectionUpsertBulk struct {
	create *ExtractedSectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractedSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractedsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractedSectionUpsertBulk) UpdateNewValues() *ExtractedSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractedsection.FieldID)
			}
			if _, exists := b.mutation.PaperExtractionID(); exists {
				s.SetIgnore(extractedsection.FieldPaperExtractionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedSection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractedSectionUpsertBulk) Ignore() *ExtractedSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedSectionUpsertBulk) DoNothing() *ExtractedSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedSectionCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractedSectionUpsertBulk) Update(set func(*ExtractedSectionUpsert)) *ExtractedSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ExtractedSectionUpsertBulk) SetTitle(v string) *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExtractedSectionUpsertBulk) UpdateTitle() *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ExtractedSectionUpsertBulk) ClearTitle() *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.ClearTitle()
	})
}

// SetSectionType sets the "section_type" field.
func (u *ExtractedSectionUpsertBulk) SetSectionType(v string) *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetSectionType(v)
	})
}

// UpdateSectionType sets the "section_type" field to the value that was provided on create.
func (u *ExtractedSectionUpsertBulk) UpdateSectionType() *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateSectionType()
	})
}

// ClearSectionType clears the value of the "section_type" field.
func (u *ExtractedSectionUpsertBulk) ClearSectionType() *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.ClearSectionType()
	})
}

// SetLevel sets the "level" field.
func (u *ExtractedSectionUpsertBulk) SetLevel(v int) *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *ExtractedSectionUpsertBulk) AddLevel(v int) *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *ExtractedSectionUpsertBulk) UpdateLevel() *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateLevel()
	})
}

// ClearLevel clears the value of the "level" field.
func (u *ExtractedSectionUpsertBulk) ClearLevel() *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.ClearLevel()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *ExtractedSectionUpsertBulk) SetOrderIndex(v int) *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *ExtractedSectionUpsertBulk) AddOrderIndex(v int) *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *ExtractedSectionUpsertBulk) UpdateOrderIndex() *ExtractedSectionUpsertBulk {
	return u.Update(func(s *ExtractedSectionUpsert) {
		s.UpdateOrderIndex()
	})
}

// Exec executes the query.
func (u *ExtractedSectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractedSectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedSectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedSectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
