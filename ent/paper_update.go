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
	"github.com/scholarai/gapfinder/ent/paper"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// PaperUpdate is the builder for updating Paper entities.
type PaperUpdate struct {
	config
	hooks    []Hook
	mutation *PaperMutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdate) Where(ps ...predicate.Paper) *PaperUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *PaperUpdate) SetCorrelationID(v string) *PaperUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableCorrelationID(v *string) *PaperUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *PaperUpdate) ClearCorrelationID() *PaperUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperUpdate) SetTitle(v string) *PaperUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableTitle(v *string) *PaperUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAbstractText sets the "abstract_text" field.
func (_u *PaperUpdate) SetAbstractText(v string) *PaperUpdate {
	_u.mutation.SetAbstractText(v)
	return _u
}

// SetNillableAbstractText sets the "abstract_text" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableAbstractText(v *string) *PaperUpdate {
	if v != nil {
		_u.SetAbstractText(*v)
	}
	return _u
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (_u *PaperUpdate) ClearAbstractText() *PaperUpdate {
	_u.mutation.ClearAbstractText()
	return _u
}

// SetPublicationDate sets the "publication_date" field.
func (_u *PaperUpdate) SetPublicationDate(v time.Time) *PaperUpdate {
	_u.mutation.SetPublicationDate(v)
	return _u
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_u *PaperUpdate) SetNillablePublicationDate(v *time.Time) *PaperUpdate {
	if v != nil {
		_u.SetPublicationDate(*v)
	}
	return _u
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (_u *PaperUpdate) ClearPublicationDate() *PaperUpdate {
	_u.mutation.ClearPublicationDate()
	return _u
}

// SetDoi sets the "doi" field.
func (_u *PaperUpdate) SetDoi(v string) *PaperUpdate {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableDoi(v *string) *PaperUpdate {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *PaperUpdate) ClearDoi() *PaperUpdate {
	_u.mutation.ClearDoi()
	return _u
}

// SetSource sets the "source" field.
func (_u *PaperUpdate) SetSource(v string) *PaperUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableSource(v *string) *PaperUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *PaperUpdate) ClearSource() *PaperUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetPdfContentURL sets the "pdf_content_url" field.
func (_u *PaperUpdate) SetPdfContentURL(v string) *PaperUpdate {
	_u.mutation.SetPdfContentURL(v)
	return _u
}

// SetNillablePdfContentURL sets the "pdf_content_url" field if the given value is not nil.
func (_u *PaperUpdate) SetNillablePdfContentURL(v *string) *PaperUpdate {
	if v != nil {
		_u.SetPdfContentURL(*v)
	}
	return _u
}

// ClearPdfContentURL clears the value of the "pdf_content_url" field.
func (_u *PaperUpdate) ClearPdfContentURL() *PaperUpdate {
	_u.mutation.ClearPdfContentURL()
	return _u
}

// SetPdfURL sets the "pdf_url" field.
func (_u *PaperUpdate) SetPdfURL(v string) *PaperUpdate {
	_u.mutation.SetPdfURL(v)
	return _u
}

// SetNillablePdfURL sets the "pdf_url" field if the given value is not nil.
func (_u *PaperUpdate) SetNillablePdfURL(v *string) *PaperUpdate {
	if v != nil {
		_u.SetPdfURL(*v)
	}
	return _u
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (_u *PaperUpdate) ClearPdfURL() *PaperUpdate {
	_u.mutation.ClearPdfURL()
	return _u
}

// SetIsOpenAccess sets the "is_open_access" field.
func (_u *PaperUpdate) SetIsOpenAccess(v bool) *PaperUpdate {
	_u.mutation.SetIsOpenAccess(v)
	return _u
}

// SetNillableIsOpenAccess sets the "is_open_access" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableIsOpenAccess(v *bool) *PaperUpdate {
	if v != nil {
		_u.SetIsOpenAccess(*v)
	}
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdate) Mutation() *PaperMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaperUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaperUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PaperUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(paper.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(paper.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AbstractText(); ok {
		_spec.SetField(paper.FieldAbstractText, field.TypeString, value)
	}
	if _u.mutation.AbstractTextCleared() {
		_spec.ClearField(paper.FieldAbstractText, field.TypeString)
	}
	if value, ok := _u.mutation.PublicationDate(); ok {
		_spec.SetField(paper.FieldPublicationDate, field.TypeTime, value)
	}
	if _u.mutation.PublicationDateCleared() {
		_spec.ClearField(paper.FieldPublicationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(paper.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(paper.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(paper.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(paper.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.PdfContentURL(); ok {
		_spec.SetField(paper.FieldPdfContentURL, field.TypeString, value)
	}
	if _u.mutation.PdfContentURLCleared() {
		_spec.ClearField(paper.FieldPdfContentURL, field.TypeString)
	}
	if value, ok := _u.mutation.PdfURL(); ok {
		_spec.SetField(paper.FieldPdfURL, field.TypeString, value)
	}
	if _u.mutation.PdfURLCleared() {
		_spec.ClearField(paper.FieldPdfURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsOpenAccess(); ok {
		_spec.SetField(paper.FieldIsOpenAccess, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaperUpdateOne is the builder for updating a single Paper entity.
type PaperUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaperMutation
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *PaperUpdateOne) SetCorrelationID(v string) *PaperUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableCorrelationID(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *PaperUpdateOne) ClearCorrelationID() *PaperUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperUpdateOne) SetTitle(v string) *PaperUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableTitle(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAbstractText sets the "abstract_text" field.
func (_u *PaperUpdateOne) SetAbstractText(v string) *PaperUpdateOne {
	_u.mutation.SetAbstractText(v)
	return _u
}

// SetNillableAbstractText sets the "abstract_text" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableAbstractText(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetAbstractText(*v)
	}
	return _u
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (_u *PaperUpdateOne) ClearAbstractText() *PaperUpdateOne {
	_u.mutation.ClearAbstractText()
	return _u
}

// SetPublicationDate sets the "publication_date" field.
func (_u *PaperUpdateOne) SetPublicationDate(v time.Time) *PaperUpdateOne {
	_u.mutation.SetPublicationDate(v)
	return _u
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillablePublicationDate(v *time.Time) *PaperUpdateOne {
	if v != nil {
		_u.SetPublicationDate(*v)
	}
	return _u
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (_u *PaperUpdateOne) ClearPublicationDate() *PaperUpdateOne {
	_u.mutation.ClearPublicationDate()
	return _u
}

// SetDoi sets the "doi" field.
func (_u *PaperUpdateOne) SetDoi(v string) *PaperUpdateOne {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableDoi(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *PaperUpdateOne) ClearDoi() *PaperUpdateOne {
	_u.mutation.ClearDoi()
	return _u
}

// SetSource sets the "source" field.
func (_u *PaperUpdateOne) SetSource(v string) *PaperUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableSource(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *PaperUpdateOne) ClearSource() *PaperUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetPdfContentURL sets the "pdf_content_url" field.
func (_u *PaperUpdateOne) SetPdfContentURL(v string) *PaperUpdateOne {
	_u.mutation.SetPdfContentURL(v)
	return _u
}

// SetNillablePdfContentURL sets the "pdf_content_url" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillablePdfContentURL(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetPdfContentURL(*v)
	}
	return _u
}

// ClearPdfContentURL clears the value of the "pdf_content_url" field.
func (_u *PaperUpdateOne) ClearPdfContentURL() *PaperUpdateOne {
	_u.mutation.ClearPdfContentURL()
	return _u
}

// SetPdfURL sets the "pdf_url" field.
func (_u *PaperUpdateOne) SetPdfURL(v string) *PaperUpdateOne {
	_u.mutation.SetPdfURL(v)
	return _u
}

// SetNillablePdfURL sets the "pdf_url" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillablePdfURL(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetPdfURL(*v)
	}
	return _u
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (_u *PaperUpdateOne) ClearPdfURL() *PaperUpdateOne {
	_u.mutation.ClearPdfURL()
	return _u
}

// SetIsOpenAccess sets the "is_open_access" field.
func (_u *PaperUpdateOne) SetIsOpenAccess(v bool) *PaperUpdateOne {
	_u.mutation.SetIsOpenAccess(v)
	return _u
}

// SetNillableIsOpenAccess sets the "is_open_access" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableIsOpenAccess(v *bool) *PaperUpdateOne {
	if v != nil {
		_u.SetIsOpenAccess(*v)
	}
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdateOne) Mutation() *PaperMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdateOne) Where(ps ...predicate.Paper) *PaperUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaperUpdateOne) Select(field string, fields ...string) *PaperUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paper entity.
func (_u *PaperUpdateOne) Save(ctx context.Context) (*Paper, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdateOne) SaveX(ctx context.Context) *Paper {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaperUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PaperUpdateOne) sqlSave(ctx context.Context) (_node *Paper, err error) {
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Paper.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paper.FieldID)
		for _, f := range fields {
			if !paper.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paper.FieldID {
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
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(paper.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(paper.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AbstractText(); ok {
		_spec.SetField(paper.FieldAbstractText, field.TypeString, value)
	}
	if _u.mutation.AbstractTextCleared() {
		_spec.ClearField(paper.FieldAbstractText, field.TypeString)
	}
	if value, ok := _u.mutation.PublicationDate(); ok {
		_spec.SetField(paper.FieldPublicationDate, field.TypeTime, value)
	}
	if _u.mutation.PublicationDateCleared() {
		_spec.ClearField(paper.FieldPublicationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(paper.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(paper.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(paper.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(paper.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.PdfContentURL(); ok {
		_spec.SetField(paper.FieldPdfContentURL, field.TypeString, value)
	}
	if _u.mutation.PdfContentURLCleared() {
		_spec.ClearField(paper.FieldPdfContentURL, field.TypeString)
	}
	if value, ok := _u.mutation.PdfURL(); ok {
		_spec.SetField(paper.FieldPdfURL, field.TypeString, value)
	}
	if _u.mutation.PdfURLCleared() {
		_spec.ClearField(paper.FieldPdfURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsOpenAccess(); ok {
		_spec.SetField(paper.FieldIsOpenAccess, field.TypeBool, value)
	}
	_node = &Paper{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
