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
	"github.com/scholarai/gapfinder/ent/paper"
)

// PaperCreate is the builder for creating a Paper entity.
type PaperCreate struct {
	config
	mutation *PaperMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *PaperCreate) SetCorrelationID(v string) *PaperCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *PaperCreate) SetNillableCorrelationID(v *string) *PaperCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PaperCreate) SetTitle(v string) *PaperCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAbstractText sets the "abstract_text" field.
func (_c *PaperCreate) SetAbstractText(v string) *PaperCreate {
	_c.mutation.SetAbstractText(v)
	return _c
}

// SetNillableAbstractText sets the "abstract_text" field if the given value is not nil.
func (_c *PaperCreate) SetNillableAbstractText(v *string) *PaperCreate {
	if v != nil {
		_c.SetAbstractText(*v)
	}
	return _c
}

// SetPublicationDate sets the "publication_date" field.
func (_c *PaperCreate) SetPublicationDate(v time.Time) *PaperCreate {
	_c.mutation.SetPublicationDate(v)
	return _c
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_c *PaperCreate) SetNillablePublicationDate(v *time.Time) *PaperCreate {
	if v != nil {
		_c.SetPublicationDate(*v)
	}
	return _c
}

// SetDoi sets the "doi" field.
func (_c *PaperCreate) SetDoi(v string) *PaperCreate {
	_c.mutation.SetDoi(v)
	return _c
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_c *PaperCreate) SetNillableDoi(v *string) *PaperCreate {
	if v != nil {
		_c.SetDoi(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *PaperCreate) SetSource(v string) *PaperCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *PaperCreate) SetNillableSource(v *string) *PaperCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetPdfContentURL sets the "pdf_content_url" field.
func (_c *PaperCreate) SetPdfContentURL(v string) *PaperCreate {
	_c.mutation.SetPdfContentURL(v)
	return _c
}

// SetNillablePdfContentURL sets the "pdf_content_url" field if the given value is not nil.
func (_c *PaperCreate) SetNillablePdfContentURL(v *string) *PaperCreate {
	if v != nil {
		_c.SetPdfContentURL(*v)
	}
	return _c
}

// SetPdfURL sets the "pdf_url" field.
func (_c *PaperCreate) SetPdfURL(v string) *PaperCreate {
	_c.mutation.SetPdfURL(v)
	return _c
}

// SetNillablePdfURL sets the "pdf_url" field if the given value is not nil.
func (_c *PaperCreate) SetNillablePdfURL(v *string) *PaperCreate {
	if v != nil {
		_c.SetPdfURL(*v)
	}
	return _c
}

// SetIsOpenAccess sets the "is_open_access" field.
func (_c *PaperCreate) SetIsOpenAccess(v bool) *PaperCreate {
	_c.mutation.SetIsOpenAccess(v)
	return _c
}

// SetNillableIsOpenAccess sets the "is_open_access" field if the given value is not nil.
func (_c *PaperCreate) SetNillableIsOpenAccess(v *bool) *PaperCreate {
	if v != nil {
		_c.SetIsOpenAccess(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaperCreate) SetID(v uuid.UUID) *PaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaperCreate) SetNillableID(v *uuid.UUID) *PaperCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PaperMutation object of the builder.
func (_c *PaperCreate) Mutation() *PaperMutation {
	return _c.mutation
}

// Save creates the Paper in the database.
func (_c *PaperCreate) Save(ctx context.Context) (*Paper, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperCreate) SaveX(ctx context.Context) *Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaperCreate) defaults() {
	if _, ok := _c.mutation.IsOpenAccess(); !ok {
		v := paper.DefaultIsOpenAccess
		_c.mutation.SetIsOpenAccess(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paper.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Paper.title"`)}
	}
	if _, ok := _c.mutation.IsOpenAccess(); !ok {
		return &ValidationError{Name: "is_open_access", err: errors.New(`ent: missing required field "Paper.is_open_access"`)}
	}
	return nil
}

func (_c *PaperCreate) sqlSave(ctx context.Context) (*Paper, error) {
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

func (_c *PaperCreate) createSpec() (*Paper, *sqlgraph.CreateSpec) {
	var (
		_node = &Paper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paper.Table, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(paper.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.AbstractText(); ok {
		_spec.SetField(paper.FieldAbstractText, field.TypeString, value)
		_node.AbstractText = &value
	}
	if value, ok := _c.mutation.PublicationDate(); ok {
		_spec.SetField(paper.FieldPublicationDate, field.TypeTime, value)
		_node.PublicationDate = &value
	}
	if value, ok := _c.mutation.Doi(); ok {
		_spec.SetField(paper.FieldDoi, field.TypeString, value)
		_node.Doi = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(paper.FieldSource, field.TypeString, value)
		_node.Source = &value
	}
	if value, ok := _c.mutation.PdfContentURL(); ok {
		_spec.SetField(paper.FieldPdfContentURL, field.TypeString, value)
		_node.PdfContentURL = &value
	}
	if value, ok := _c.mutation.PdfURL(); ok {
		_spec.SetField(paper.FieldPdfURL, field.TypeString, value)
		_node.PdfURL = &value
	}
	if value, ok := _c.mutation.IsOpenAccess(); ok {
		_spec.SetField(paper.FieldIsOpenAccess, field.TypeBool, value)
		_node.IsOpenAccess = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Paper.Create().
//		SetCorrelationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperUpsert) {
//			SetCorrelationID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperCreate) OnConflict(opts ...sql.ConflictOption) *PaperUpsertOne {
	_c.conflict = opts
	return &PaperUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperCreate) OnConflictColumns(columns ...string) *PaperUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperUpsertOne{
		create: _c,
	}
}

type (
	// PaperUpsertOne is the builder for "upsert"-ing
	//  one Paper node.
	PaperUpsertOne struct {
		create *PaperCreate
	}

	// PaperUpsert is the "OnConflict" setter.
	PaperUpsert struct {
		*sql.UpdateSet
	}
)

// SetCorrelationID sets the "correlation_id" field.
func (u *PaperUpsert) SetCorrelationID(v string) *PaperUpsert {
	u.Set(paper.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *PaperUpsert) UpdateCorrelationID() *PaperUpsert {
	u.SetExcluded(paper.FieldCorrelationID)
	return u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *PaperUpsert) ClearCorrelationID() *PaperUpsert {
	u.SetNull(paper.FieldCorrelationID)
	return u
}

// SetTitle sets the "title" field.
func (u *PaperUpsert) SetTitle(v string) *PaperUpsert {
	u.Set(paper.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperUpsert) UpdateTitle() *PaperUpsert {
	u.SetExcluded(paper.FieldTitle)
	return u
}

// SetAbstractText sets the "abstract_text" field.
func (u *PaperUpsert) SetAbstractText(v string) *PaperUpsert {
	u.Set(paper.FieldAbstractText, v)
	return u
}

// UpdateAbstractText sets the "abstract_text" field to the value that was provided on create.
func (u *PaperUpsert) UpdateAbstractText() *PaperUpsert {
	u.SetExcluded(paper.FieldAbstractText)
	return u
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (u *PaperUpsert) ClearAbstractText() *PaperUpsert {
	u.SetNull(paper.FieldAbstractText)
	return u
}

// SetPublicationDate sets the "publication_date" field.
func (u *PaperUpsert) SetPublicationDate(v time.Time) *PaperUpsert {
	u.Set(paper.FieldPublicationDate, v)
	return u
}

// UpdatePublicationDate sets the "publication_date" field to the value that was provided on create.
func (u *PaperUpsert) UpdatePublicationDate() *PaperUpsert {
	u.SetExcluded(paper.FieldPublicationDate)
	return u
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (u *PaperUpsert) ClearPublicationDate() *PaperUpsert {
	u.SetNull(paper.FieldPublicationDate)
	return u
}

// SetDoi sets the "doi" field.
func (u *PaperUpsert) SetDoi(v string) *PaperUpsert {
	u.Set(paper.FieldDoi, v)
	return u
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *PaperUpsert) UpdateDoi() *PaperUpsert {
	u.SetExcluded(paper.FieldDoi)
	return u
}

// ClearDoi clears the value of the "doi" field.
func (u *PaperUpsert) ClearDoi() *PaperUpsert {
	u.SetNull(paper.FieldDoi)
	return u
}

// SetSource sets the "source" field.
func (u *PaperUpsert) SetSource(v string) *PaperUpsert {
	u.Set(paper.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *PaperUpsert) UpdateSource() *PaperUpsert {
	u.SetExcluded(paper.FieldSource)
	return u
}

// ClearSource clears the value of the "source" field.
func (u *PaperUpsert) ClearSource() *PaperUpsert {
	u.SetNull(paper.FieldSource)
	return u
}

// SetPdfContentURL sets the "pdf_content_url" field.
func (u *PaperUpsert) SetPdfContentURL(v string) *PaperUpsert {
	u.Set(paper.FieldPdfContentURL, v)
	return u
}

// UpdatePdfContentURL sets the "pdf_content_url" field to the value that was provided on create.
func (u *PaperUpsert) UpdatePdfContentURL() *PaperUpsert {
	u.SetExcluded(paper.FieldPdfContentURL)
	return u
}

// ClearPdfContentURL clears the value of the "pdf_content_url" field.
func (u *PaperUpsert) ClearPdfContentURL() *PaperUpsert {
	u.SetNull(paper.FieldPdfContentURL)
	return u
}

// SetPdfURL sets the "pdf_url" field.
func (u *PaperUpsert) SetPdfURL(v string) *PaperUpsert {
	u.Set(paper.FieldPdfURL, v)
	return u
}

// UpdatePdfURL sets the "pdf_url" field to the value that was provided on create.
func (u *PaperUpsert) UpdatePdfURL() *PaperUpsert {
	u.SetExcluded(paper.FieldPdfURL)
	return u
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (u *PaperUpsert) ClearPdfURL() *PaperUpsert {
	u.SetNull(paper.FieldPdfURL)
	return u
}

// SetIsOpenAccess sets the "is_open_access" field.
func (u *PaperUpsert) SetIsOpenAccess(v bool) *PaperUpsert {
	u.Set(paper.FieldIsOpenAccess, v)
	return u
}

// UpdateIsOpenAccess sets the "is_open_access" field to the value that was provided on create.
func (u *PaperUpsert) UpdateIsOpenAccess() *PaperUpsert {
	u.SetExcluded(paper.FieldIsOpenAccess)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperUpsertOne) UpdateNewValues() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paper.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaperUpsertOne) Ignore() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperUpsertOne) DoNothing() *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperCreate.OnConflict
// documentation for more info.
func (u *PaperUpsertOne) Update(set func(*PaperUpsert)) *PaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *PaperUpsertOne) SetCorrelationID(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateCorrelationID() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *PaperUpsertOne) ClearCorrelationID() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearCorrelationID()
	})
}

// SetTitle sets the "title" field.
func (u *PaperUpsertOne) SetTitle(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateTitle() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateTitle()
	})
}

// SetAbstractText sets the "abstract_text" field.
func (u *PaperUpsertOne) SetAbstractText(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetAbstractText(v)
	})
}

// UpdateAbstractText sets the "abstract_text" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateAbstractText() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateAbstractText()
	})
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (u *PaperUpsertOne) ClearAbstractText() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearAbstractText()
	})
}

// SetPublicationDate sets the "publication_date" field.
func (u *PaperUpsertOne) SetPublicationDate(v time.Time) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetPublicationDate(v)
	})
}

// UpdatePublicationDate sets the "publication_date" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdatePublicationDate() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdatePublicationDate()
	})
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (u *PaperUpsertOne) ClearPublicationDate() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearPublicationDate()
	})
}

// SetDoi sets the "doi" field.
func (u *PaperUpsertOne) SetDoi(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetDoi(v)
	})
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateDoi() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateDoi()
	})
}

// ClearDoi clears the value of the "doi" field.
func (u *PaperUpsertOne) ClearDoi() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearDoi()
	})
}

// SetSource sets the "source" field.
func (u *PaperUpsertOne) SetSource(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateSource() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *PaperUpsertOne) ClearSource() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearSource()
	})
}

// SetPdfContentURL sets the "pdf_content_url" field.
func (u *PaperUpsertOne) SetPdfContentURL(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetPdfContentURL(v)
	})
}

// UpdatePdfContentURL sets the "pdf_content_url" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdatePdfContentURL() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdatePdfContentURL()
	})
}

// ClearPdfContentURL clears the value of the "pdf_content_url" field.
func (u *PaperUpsertOne) ClearPdfContentURL() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearPdfContentURL()
	})
}

// SetPdfURL sets the "pdf_url" field.
func (u *PaperUpsertOne) SetPdfURL(v string) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetPdfURL(v)
	})
}

// UpdatePdfURL sets the "pdf_url" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdatePdfURL() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdatePdfURL()
	})
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (u *PaperUpsertOne) ClearPdfURL() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.ClearPdfURL()
	})
}

// SetIsOpenAccess sets the "is_open_access" field.
func (u *PaperUpsertOne) SetIsOpenAccess(v bool) *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.SetIsOpenAccess(v)
	})
}

// UpdateIsOpenAccess sets the "is_open_access" field to the value that was provided on create.
func (u *PaperUpsertOne) UpdateIsOpenAccess() *PaperUpsertOne {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateIsOpenAccess()
	})
}

// Exec executes the query.
func (u *PaperUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaperUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaperUpsertOne.ID is not supported by MySQL driver. Use PaperUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaperUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaperCreateBulk is the builder for creating many Paper entities in bulk.
type PaperCreateBulk struct {
	config
	err      error
	builders []*PaperCreate
	conflict []sql.ConflictOption
}

// Save creates the Paper entities in the database.
func (_c *PaperCreateBulk) Save(ctx context.Context) ([]*Paper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperMutation)
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
func (_c *PaperCreateBulk) SaveX(ctx context.Context) []*Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Paper.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaperUpsert) {
//			SetCorrelationID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaperCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaperUpsertBulk {
	_c.conflict = opts
	return &PaperUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaperCreateBulk) OnConflictColumns(columns ...string) *PaperUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaperUpsertBulk{
		create: _c,
	}
}

// PaperUpsertBulk is the builder for "upsert"-ing
// a bulk of Paper nodes.
type PaperUpsertBulk struct {
	create *PaperCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaperUpsertBulk) UpdateNewValues() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paper.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Paper.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaperUpsertBulk) Ignore() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaperUpsertBulk) DoNothing() *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaperCreateBulk.OnConflict
// documentation for more info.
func (u *PaperUpsertBulk) Update(set func(*PaperUpsert)) *PaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *PaperUpsertBulk) SetCorrelationID(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateCorrelationID() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *PaperUpsertBulk) ClearCorrelationID() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearCorrelationID()
	})
}

// SetTitle sets the "title" field.
func (u *PaperUpsertBulk) SetTitle(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateTitle() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateTitle()
	})
}

// SetAbstractText sets the "abstract_text" field.
func (u *PaperUpsertBulk) SetAbstractText(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetAbstractText(v)
	})
}

// UpdateAbstractText sets the "abstract_text" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateAbstractText() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateAbstractText()
	})
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (u *PaperUpsertBulk) ClearAbstractText() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearAbstractText()
	})
}

// SetPublicationDate sets the "publication_date" field.
func (u *PaperUpsertBulk) SetPublicationDate(v time.Time) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetPublicationDate(v)
	})
}

// UpdatePublicationDate sets the "publication_date" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdatePublicationDate() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdatePublicationDate()
	})
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (u *PaperUpsertBulk) ClearPublicationDate() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearPublicationDate()
	})
}

// SetDoi sets the "doi" field.
func (u *PaperUpsertBulk) SetDoi(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetDoi(v)
	})
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateDoi() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateDoi()
	})
}

// ClearDoi clears the value of the "doi" field.
func (u *PaperUpsertBulk) ClearDoi() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearDoi()
	})
}

// SetSource sets the "source" field.
func (u *PaperUpsertBulk) SetSource(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateSource() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *PaperUpsertBulk) ClearSource() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearSource()
	})
}

// SetPdfContentURL sets the "pdf_content_url" field.
func (u *PaperUpsertBulk) SetPdfContentURL(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetPdfContentURL(v)
	})
}

// UpdatePdfContentURL sets the "pdf_content_url" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdatePdfContentURL() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdatePdfContentURL()
	})
}

// ClearPdfContentURL clears the value of the "pdf_content_url" field.
func (u *PaperUpsertBulk) ClearPdfContentURL() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearPdfContentURL()
	})
}

// SetPdfURL sets the "pdf_url" field.
func (u *PaperUpsertBulk) SetPdfURL(v string) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetPdfURL(v)
	})
}

// UpdatePdfURL sets the "pdf_url" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdatePdfURL() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdatePdfURL()
	})
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (u *PaperUpsertBulk) ClearPdfURL() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.ClearPdfURL()
	})
}

// SetIsOpenAccess sets the "is_open_access" field.
func (u *PaperUpsertBulk) SetIsOpenAccess(v bool) *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.SetIsOpenAccess(v)
	})
}

// UpdateIsOpenAccess sets the "is_open_access" field to the value that was provided on create.
func (u *PaperUpsertBulk) UpdateIsOpenAccess() *PaperUpsertBulk {
	return u.Update(func(s *PaperUpsert) {
		s.UpdateIsOpenAccess()
	})
}

// Exec executes the query.
func (u *PaperUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaperCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaperCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaperUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
