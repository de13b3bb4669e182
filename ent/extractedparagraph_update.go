// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedParagraphUpdate is the builder for updating ExtractedParagraph entities.
type ExtractedParagraphUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedParagraphMutation
}

// Where appends a list predicates to the ExtractedParagraphUpdate builder.
func (_u *ExtractedParagraphUpdate) Where(ps ...predicate.ExtractedParagraph) *ExtractedParagraphUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *ExtractedParagraphUpdate) SetText(v string) *ExtractedParagraphUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ExtractedParagraphUpdate) SetNillableText(v *string) *ExtractedParagraphUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedParagraphUpdate) SetPage(v int) *ExtractedParagraphUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedParagraphUpdate) SetNillablePage(v *int) *ExtractedParagraphUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedParagraphUpdate) AddPage(v int) *ExtractedParagraphUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *ExtractedParagraphUpdate) ClearPage() *ExtractedParagraphUpdate {
	_u.mutation.ClearPage()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedParagraphUpdate) SetOrderIndex(v int) *ExtractedParagraphUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedParagraphUpdate) SetNillableOrderIndex(v *int) *ExtractedParagraphUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedParagraphUpdate) AddOrderIndex(v int) *ExtractedParagraphUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExtractedParagraphMutation object of the builder.
func (_u *ExtractedParagraphUpdate) Mutation() *ExtractedParagraphMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedParagraphUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedParagraphUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedParagraphUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedParagraphUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedParagraphUpdate) check() error {
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedParagraph.section"`)
	}
	return nil
}

func (_u *ExtractedParagraphUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedparagraph.Table, extractedparagraph.Columns, sqlgraph.NewFieldSpec(extractedparagraph.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(extractedparagraph.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extractedparagraph.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extractedparagraph.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(extractedparagraph.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedparagraph.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedparagraph.FieldOrderIndex, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedparagraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedParagraphUpdateOne is the builder for updating a single ExtractedParagraph entity.
type ExtractedParagraphUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedParagraphMutation
}

// SetText sets the "text" field.
func (_u *ExtractedParagraphUpdateOne) SetText(v string) *ExtractedParagraphUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ExtractedParagraphUpdateOne) SetNillableText(v *string) *ExtractedParagraphUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedParagraphUpdateOne) SetPage(v int) *ExtractedParagraphUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedParagraphUpdateOne) SetNillablePage(v *int) *ExtractedParagraphUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedParagraphUpdateOne) AddPage(v int) *ExtractedParagraphUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *ExtractedParagraphUpdateOne) ClearPage() *ExtractedParagraphUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedParagraphUpdateOne) SetOrderIndex(v int) *ExtractedParagraphUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedParagraphUpdateOne) SetNillableOrderIndex(v *int) *ExtractedParagraphUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedParagraphUpdateOne) AddOrderIndex(v int) *ExtractedParagraphUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExtractedParagraphMutation object of the builder.
func (_u *ExtractedParagraphUpdateOne) Mutation() *ExtractedParagraphMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedParagraphUpdate builder.
func (_u *ExtractedParagraphUpdateOne) Where(ps ...predicate.ExtractedParagraph) *ExtractedParagraphUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedParagraphUpdateOne) Select(field string, fields ...string) *ExtractedParagraphUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedParagraph entity.
func (_u *ExtractedParagraphUpdateOne) Save(ctx context.Context) (*ExtractedParagraph, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedParagraphUpdateOne) SaveX(ctx context.Context) *ExtractedParagraph {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedParagraphUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedParagraphUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedParagraphUpdateOne) check() error {
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedParagraph.section"`)
	}
	return nil
}

func (_u *ExtractedParagraphUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedParagraph, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedparagraph.Table, extractedparagraph.Columns, sqlgraph.NewFieldSpec(extractedparagraph.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedParagraph.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedparagraph.FieldID)
		for _, f := range fields {
			if !extractedparagraph.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedparagraph.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(extractedparagraph.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extractedparagraph.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extractedparagraph.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(extractedparagraph.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedparagraph.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedparagraph.FieldOrderIndex, field.TypeInt, value)
	}
	_node = &ExtractedParagraph{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedparagraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
