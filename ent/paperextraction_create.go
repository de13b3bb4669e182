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
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/paperextraction"
)

// PaperExtractionCreate is the builder for creating a PaperExtraction entity.
type PaperExtractionCreate struct {
	config
	mutation *PaperExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPaperID sets the "paper_id" field.
func (_c *PaperExtractionCreate) SetPaperID(v uuid.UUID) *PaperExtractionCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetExtractionID sets the "extraction_id" field.
func (_c *PaperExtractionCreate) SetExtractionID(v string) *PaperExtractionCreate {
	_c.mutation.SetExtractionID(v)
	return _c
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_c *PaperExtractionCreate) SetNillableExtractionID(v *string) *PaperExtractionCreate {
	if v != nil {
		_c.SetExtractionID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PaperExtractionCreate) SetTitle(v string) *PaperExtractionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *PaperExtractionCreate) SetNillableTitle(v *string) *PaperExtractionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetAbstractText sets the "abstract_text" field.
func (_c *PaperExtractionCreate) SetAbstractText(v string) *PaperExtractionCreate {
	_c.mutation.SetAbstractText(v)
	return _c
}

// SetNillableAbstractText sets the "abstract_text" field if the given value is not nil.
func (_c *PaperExtractionCreate) SetNillableAbstractText(v *string) *PaperExtractionCreate {
	if v != nil {
		_c.SetAbstractText(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *PaperExtractionCreate) SetLanguage(v string) *PaperExtractionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *PaperExtractionCreate) SetNillableLanguage(v *string) *PaperExtractionCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *PaperExtractionCreate) SetPageCount(v int) *PaperExtractionCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *PaperExtractionCreate) SetNillablePageCount(v *int) *PaperExtractionCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetExtractionCoverage sets the "extraction_coverage" field.
func (_c *PaperExtractionCreate) SetExtractionCoverage(v float64) *PaperExtractionCreate {
	_c.mutation.SetExtractionCoverage(v)
	return _c
}

// SetNillableExtractionCoverage sets the "extraction_coverage" field if the given value is not nil.
func (_c *PaperExtractionCreate) SetNillableExtractionCoverage(v *float64) *PaperExtractionCreate {
	if v != nil {
		_c.SetExtractionCoverage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaperExtractionCreate) SetID(v uuid.UUID) *PaperExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaperExtractionCreate) SetNillableID(v *uuid.UUID) *PaperExtractionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSectionIDs adds the "sections" edge to the ExtractedSection entity by IDs.
func (_c *PaperExtractionCreate) AddSectionIDs(ids ...uuid.UUID) *PaperExtractionCreate {
	_c.mutation.AddSectionIDs(ids...)
	return _c
}

// AddSections adds the "sections" edges to the ExtractedSection entity.
func (_c *PaperExtractionCreate) AddSections(v ...*ExtractedSection) *PaperExtractionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSectionIDs(ids...)
}

// AddFigureIDs adds the "figures" edge to the ExtractedFigure entity by IDs.
func (_c *PaperExtractionCreate) AddFigureIDs(ids ...uuid.UUID) *PaperExtractionCreate {
	_c.mutation.AddFigureIDs(ids...)
	return _c
}

// AddFigures adds the "figures" edges to the ExtractedFigure entity.
func (_c *PaperExtractionCreate) AddFigures(v ...*ExtractedFigure) *PaperExtractionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFigureIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the ExtractedTable entity by IDs.
func (_c *PaperExtractionCreate) AddTableIDs(ids ...uuid.UUID) *PaperExtractionCreate {
	_c.mutation.AddTableIDs(ids...)
	return _c
}

// AddTables adds the "tables" edges to the ExtractedTable entity.
func (_c *PaperExtractionCreate) AddTables(v ...*ExtractedTable) *PaperExtractionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTableIDs(ids...)
}

// Mutation returns the PaperExtractionMutation object of the builder.
func (_c *PaperExtractionCreate) Mutation() *PaperExtractionMutation {
	return _c.mutation
}

// Save creates the PaperExtraction in the database.
func (_c *PaperExtractionCreate) Save(ctx context.Context) (*PaperExtraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperExtractionCreate) SaveX(ctx context.Context) *PaperExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaperExtractionCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := paperextraction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperExtractionCreate) check() error {
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "PaperExtraction.paper_id"`)}
	}
	return nil
}

func (_c *PaperExtractionCreate) sqlSave(ctx context.Context) (*PaperExtraction, error) {
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

func (_c *PaperExtractionCreate) createSpec() (*PaperExtraction, *sqlgraph.CreateSpec) {
	var (
		_node = &PaperExtraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paperextraction.Table, sqlgraph.NewFieldSpec(paperextraction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PaperID(); ok {
		_spec.SetField(paperextraction.FieldPaperID, field.TypeUUID, value)
		_node.PaperID = value
	}
	if value, ok := _c.mutation.ExtractionID(); ok {
		_spec.SetField(paperextraction.FieldExtractionID, field.TypeString, value)
		_node.ExtractionID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(paperextraction.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.AbstractText(); ok {
		_spec.SetField(paperextraction.FieldAbstractText, field.TypeString, value)
		_node.AbstractText = &value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(paperextraction.FieldLanguage, field.TypeString, value)
		_node.Language = &value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(paperextraction.FieldPageCount, field.TypeInt, value)
		_node.PageCount = &value
	}
	if value, ok := _c.mutation.ExtractionCoverage(); ok {
		_spec.SetField(paperextraction.FieldExtractionCoverage, field.TypeFloat64, value)
		_node.ExtractionCoverage = &value
	}
	if nodes := _c.mutation.SectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paperextraction.SectionsTable,
			Columns: []string{paperextraction.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedsection.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FiguresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paperextraction.FiguresTable,
			Columns: []string{paperextraction.FiguresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfigure.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TablesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paperextraction.TablesTable,
			Columns: []string{paperextraction.TablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedtable.FieldID, field.TypeUUID),
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
//	client.PaperExtraction.Create().
//		SetPaperID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperExtractionUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperExtractionCreate) OnConflict(opts ...sql.ConflictOption) *PaperExtractionUpsertOne {
	_c.conflict = opts
	return &PaperExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaperExtraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperExtractionCreate) OnConflictColumns(columns ...string) *PaperExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperExtractionUpsertOne{
		create: _c,
	}
}

type (
	// PaperExtractionUpsertOne is the builder for "upsert"-ing
	//  one PaperExtraction node.
	PaperExtractionUpsertOne struct {
		create *PaperExtractionCreate
	}

	// PaperExtractionUpsert is the "OnConflict" setter.
	PaperExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetPaperID sets the "paper_id" field.
func (u *PaperExtractionUpsert) SetPaperID(v uuid.UUID) *PaperExtractionUpsert {
	u.Set(paperextraction.FieldPaperID, v)
	return u
}

// UpdatePaperID sets the "paper_id" field to the value that was provided on create.
func (u *PaperExtractionUpsert) UpdatePaperID() *PaperExtractionUpsert {
	u.SetExcluded(paperextraction.FieldPaperID)
	return u
}

// SetExtractionID sets the "extraction_id" field.
func (u *PaperExtractionUpsert) SetExtractionID(v string) *PaperExtractionUpsert {
	u.Set(paperextraction.FieldExtractionID, v)
	return u
}

// UpdateExtractionID sets the "extraction_id" field to the value that was provided on create.
func (u *PaperExtractionUpsert) UpdateExtractionID() *PaperExtractionUpsert {
	u.SetExcluded(paperextraction.FieldExtractionID)
	return u
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (u *PaperExtractionUpsert) ClearExtractionID() *PaperExtractionUpsert {
	u.SetNull(paperextraction.FieldExtractionID)
	return u
}

// SetTitle sets the "title" field.
func (u *PaperExtractionUpsert) SetTitle(v string) *PaperExtractionUpsert {
	u.Set(paperextraction.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperExtractionUpsert) UpdateTitle() *PaperExtractionUpsert {
	u.SetExcluded(paperextraction.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *PaperExtractionUpsert) ClearTitle() *PaperExtractionUpsert {
	u.SetNull(paperextraction.FieldTitle)
	return u
}

// SetAbstractText sets the "abstract_text" field.
func (u *PaperExtractionUpsert) SetAbstractText(v string) *PaperExtractionUpsert {
	u.Set(paperextraction.FieldAbstractText, v)
	return u
}

// UpdateAbstractText sets the "abstract_text" field to the value that was provided on create.
func (u *PaperExtractionUpsert) UpdateAbstractText() *PaperExtractionUpsert {
	u.SetExcluded(paperextraction.FieldAbstractText)
	return u
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (u *PaperExtractionUpsert) ClearAbstractText() *PaperExtractionUpsert {
	u.SetNull(paperextraction.FieldAbstractText)
	return u
}

// SetLanguage sets the "language" field.
func (u *PaperExtractionUpsert) SetLanguage(v string) *PaperExtractionUpsert {
	u.Set(paperextraction.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *PaperExtractionUpsert) UpdateLanguage() *PaperExtractionUpsert {
	u.SetExcluded(paperextraction.FieldLanguage)
	return u
}

// ClearLanguage clears the value of the "language" field.
func (u *PaperExtractionUpsert) ClearLanguage() *PaperExtractionUpsert {
	u.SetNull(paperextraction.FieldLanguage)
	return u
}

// SetPageCount sets the "page_count" field.
func (u *PaperExtractionUpsert) SetPageCount(v int) *PaperExtractionUpsert {
	u.Set(paperextraction.FieldPageCount, v)
	return u
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *PaperExtractionUpsert) UpdatePageCount() *PaperExtractionUpsert {
	u.SetExcluded(paperextraction.FieldPageCount)
	return u
}

// AddPageCount adds v to the "page_count" field.
func (u *PaperExtractionUpsert) AddPageCount(v int) *PaperExtractionUpsert {
	u.Add(paperextraction.FieldPageCount, v)
	return u
}

// ClearPageCount clears the value of the "page_count" field.
func (u *PaperExtractionUpsert) ClearPageCount() *PaperExtractionUpsert {
	u.SetNull(paperextraction.FieldPageCount)
	return u
}

// SetExtractionCoverage sets the "extraction_coverage" field.
func (u *PaperExtractionUpsert) SetExtractionCoverage(v float64) *PaperExtractionUpsert {
	u.Set(paperextraction.FieldExtractionCoverage, v)
	return u
}

// UpdateExtractionCoverage sets the "extraction_coverage" field to the value that was provided on create.
func (u *PaperExtractionUpsert) UpdateExtractionCoverage() *PaperExtractionUpsert {
	u.SetExcluded(paperextraction.FieldExtractionCoverage)
	return u
}

// AddExtractionCoverage adds v to the "extraction_coverage" field.
func (u *PaperExtractionUpsert) AddExtractionCoverage(v float64) *PaperExtractionUpsert {
	u.Add(paperextraction.FieldExtractionCoverage, v)
	return u
}

// ClearExtractionCoverage clears the value of the "extraction_coverage" field.
func (u *PaperExtractionUpsert) ClearExtractionCoverage() *PaperExtractionUpsert {
	u.SetNull(paperextraction.FieldExtractionCoverage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaperExtraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paperextraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperExtractionUpsertOne) UpdateNewValues() *PaperExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paperextraction.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaperExtraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaperExtractionUpsertOne) Ignore() *PaperExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperExtractionUpsertOne) DoNothing() *PaperExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperExtractionCreate.OnConflict
// documentation for more info.
func (u *PaperExtractionUpsertOne) Update(set func(*PaperExtractionUpsert)) *PaperExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPaperID sets the "paper_id" field.
func (u *PaperExtractionUpsertOne) SetPaperID(v uuid.UUID) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetPaperID(v)
	})
}

// UpdatePaperID sets the "paper_id" field to the value that was provided on create.
func (u *PaperExtractionUpsertOne) UpdatePaperID() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdatePaperID()
	})
}

// SetExtractionID sets the "extraction_id" field.
func (u *PaperExtractionUpsertOne) SetExtractionID(v string) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetExtractionID(v)
	})
}

// UpdateExtractionID sets the "extraction_id" field to the value that was provided on create.
func (u *PaperExtractionUpsertOne) UpdateExtractionID() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateExtractionID()
	})
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (u *PaperExtractionUpsertOne) ClearExtractionID() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearExtractionID()
	})
}

// SetTitle sets the "title" field.
func (u *PaperExtractionUpsertOne) SetTitle(v string) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperExtractionUpsertOne) UpdateTitle() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *PaperExtractionUpsertOne) ClearTitle() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearTitle()
	})
}

// SetAbstractText sets the "abstract_text" field.
func (u *PaperExtractionUpsertOne) SetAbstractText(v string) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetAbstractText(v)
	})
}

// UpdateAbstractText sets the "abstract_text" field to the value that was provided on create.
func (u *PaperExtractionUpsertOne) UpdateAbstractText() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateAbstractText()
	})
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (u *PaperExtractionUpsertOne) ClearAbstractText() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearAbstractText()
	})
}

// SetLanguage sets the "language" field.
func (u *PaperExtractionUpsertOne) SetLanguage(v string) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *PaperExtractionUpsertOne) UpdateLanguage() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateLanguage()
	})
}

// ClearLanguage clears the value of the "language" field.
func (u *PaperExtractionUpsertOne) ClearLanguage() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearLanguage()
	})
}

// SetPageCount sets the "page_count" field.
func (u *PaperExtractionUpsertOne) SetPageCount(v int) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *PaperExtractionUpsertOne) AddPageCount(v int) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *PaperExtractionUpsertOne) UpdatePageCount() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdatePageCount()
	})
}

// ClearPageCount clears the value of the "page_count" field.
func (u *PaperExtractionUpsertOne) ClearPageCount() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearPageCount()
	})
}

// SetExtractionCoverage sets the "extraction_coverage" field.
func (u *PaperExtractionUpsertOne) SetExtractionCoverage(v float64) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetExtractionCoverage(v)
	})
}

// AddExtractionCoverage adds v to the "extraction_coverage" field.
func (u *PaperExtractionUpsertOne) AddExtractionCoverage(v float64) *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.AddExtractionCoverage(v)
	})
}

// UpdateExtractionCoverage sets the "extraction_coverage" field to the value that was provided on create.
func (u *PaperExtractionUpsertOne) UpdateExtractionCoverage() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateExtractionCoverage()
	})
}

// ClearExtractionCoverage clears the value of the "extraction_coverage" field.
func (u *PaperExtractionUpsertOne) ClearExtractionCoverage() *PaperExtractionUpsertOne {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearExtractionCoverage()
	})
}

// Exec executes the query.
func (u *PaperExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaperExtractionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaperExtractionUpsertOne.ID is not supported by MySQL driver. Use PaperExtractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaperExtractionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaperExtractionCreateBulk is the builder for creating many PaperExtraction entities in bulk.
type PaperExtractionCreateBulk struct {
	config
	err      error
	builders []*PaperExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the PaperExtraction entities in the database.
func (_c *PaperExtractionCreateBulk) Save(ctx context.Context) ([]*PaperExtraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaperExtraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperExtractionMutation)
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
func (_c *PaperExtractionCreateBulk) SaveX(ctx context.Context) []*PaperExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaperExtraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperExtractionUpsert) {
//			SetPaperID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaperExtractionUpsertBulk {
	_c.conflict = opts
	return &PaperExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaperExtraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperExtractionCreateBulk) OnConflictColumns(columns ...string) *PaperExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperExtractionUpsertBulk{
		create: _c,
	}
}

// PaperExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of PaperExtraction nodes.
type PaperExtractionUpsertBulk struct {
	create *PaperExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaperExtraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paperextraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperExtractionUpsertBulk) UpdateNewValues() *PaperExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paperextraction.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaperExtraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaperExtractionUpsertBulk) Ignore() *PaperExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperExtractionUpsertBulk) DoNothing() *PaperExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *PaperExtractionUpsertBulk) Update(set func(*PaperExtractionUpsert)) *PaperExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPaperID sets the "paper_id" field.
func (u *PaperExtractionUpsertBulk) SetPaperID(v uuid.UUID) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetPaperID(v)
	})
}

// UpdatePaperID sets the "paper_id" field to the value that was provided on create.
func (u *PaperExtractionUpsertBulk) UpdatePaperID() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdatePaperID()
	})
}

// SetExtractionID sets the "extraction_id" field.
func (u *PaperExtractionUpsertBulk) SetExtractionID(v string) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetExtractionID(v)
	})
}

// UpdateExtractionID sets the "extraction_id" field to the value that was provided on create.
func (u *PaperExtractionUpsertBulk) UpdateExtractionID() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateExtractionID()
	})
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (u *PaperExtractionUpsertBulk) ClearExtractionID() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearExtractionID()
	})
}

// SetTitle sets the "title" field.
func (u *PaperExtractionUpsertBulk) SetTitle(v string) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperExtractionUpsertBulk) UpdateTitle() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *PaperExtractionUpsertBulk) ClearTitle() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearTitle()
	})
}

// SetAbstractText sets the "abstract_text" field.
func (u *PaperExtractionUpsertBulk) SetAbstractText(v string) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetAbstractText(v)
	})
}

// UpdateAbstractText sets the "abstract_text" field to the value that was provided on create.
func (u *PaperExtractionUpsertBulk) UpdateAbstractText() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateAbstractText()
	})
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (u *PaperExtractionUpsertBulk) ClearAbstractText() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearAbstractText()
	})
}

// SetLanguage sets the "language" field.
func (u *PaperExtractionUpsertBulk) SetLanguage(v string) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *PaperExtractionUpsertBulk) UpdateLanguage() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateLanguage()
	})
}

// ClearLanguage clears the value of the "language" field.
func (u *PaperExtractionUpsertBulk) ClearLanguage() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearLanguage()
	})
}

// SetPageCount sets the "page_count" field.
func (u *PaperExtractionUpsertBulk) SetPageCount(v int) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *PaperExtractionUpsertBulk) AddPageCount(v int) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *PaperExtractionUpsertBulk) UpdatePageCount() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdatePageCount()
	})
}

// ClearPageCount clears the value of the "page_count" field.
func (u *PaperExtractionUpsertBulk) ClearPageCount() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearPageCount()
	})
}

// SetExtractionCoverage sets the "extraction_coverage" field.
func (u *PaperExtractionUpsertBulk) SetExtractionCoverage(v float64) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.SetExtractionCoverage(v)
	})
}

// AddExtractionCoverage adds v to the "extraction_coverage" field.
func (u *PaperExtractionUpsertBulk) AddExtractionCoverage(v float64) *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.AddExtractionCoverage(v)
	})
}

// UpdateExtractionCoverage sets the "extraction_coverage" field to the value that was provided on create.
func (u *PaperExtractionUpsertBulk) UpdateExtractionCoverage() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.UpdateExtractionCoverage()
	})
}

// ClearExtractionCoverage clears the value of the "extraction_coverage" field.
func (u *PaperExtractionUpsertBulk) ClearExtractionCoverage() *PaperExtractionUpsertBulk {
	return u.Update(func(s *PaperExtractionUpsert) {
		s.ClearExtractionCoverage()
	})
}

// Exec executes the query.
func (u *PaperExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaperExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
