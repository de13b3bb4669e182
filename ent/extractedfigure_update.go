// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedFigureUpdate is the builder for updating ExtractedFigure entities.
type ExtractedFigureUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedFigureMutation
}

// Where appends a list predicates to the ExtractedFigureUpdate builder.
func (_u *ExtractedFigureUpdate) Where(ps ...predicate.ExtractedFigure) *ExtractedFigureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *ExtractedFigureUpdate) SetLabel(v string) *ExtractedFigureUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ExtractedFigureUpdate) SetNillableLabel(v *string) *ExtractedFigureUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ExtractedFigureUpdate) ClearLabel() *ExtractedFigureUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *ExtractedFigureUpdate) SetCaption(v string) *ExtractedFigureUpdate {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *ExtractedFigureUpdate) SetNillableCaption(v *string) *ExtractedFigureUpdate {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *ExtractedFigureUpdate) ClearCaption() *ExtractedFigureUpdate {
	_u.mutation.ClearCaption()
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedFigureUpdate) SetPage(v int) *ExtractedFigureUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedFigureUpdate) SetNillablePage(v *int) *ExtractedFigureUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedFigureUpdate) AddPage(v int) *ExtractedFigureUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *ExtractedFigureUpdate) ClearPage() *ExtractedFigureUpdate {
	_u.mutation.ClearPage()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedFigureUpdate) SetOrderIndex(v int) *ExtractedFigureUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedFigureUpdate) SetNillableOrderIndex(v *int) *ExtractedFigureUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedFigureUpdate) AddOrderIndex(v int) *ExtractedFigureUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExtractedFigureMutation object of the builder.
func (_u *ExtractedFigureUpdate) Mutation() *ExtractedFigureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedFigureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFigureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedFigureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFigureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFigureUpdate) check() error {
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedFigure.extraction"`)
	}
	return nil
}

func (_u *ExtractedFigureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfigure.Table, extractedfigure.Columns, sqlgraph.NewFieldSpec(extractedfigure.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(extractedfigure.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(extractedfigure.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(extractedfigure.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(extractedfigure.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extractedfigure.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extractedfigure.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(extractedfigure.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedfigure.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedfigure.FieldOrderIndex, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfigure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedFigureUpdateOne is the builder for updating a single ExtractedFigure entity.
type ExtractedFigureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedFigureMutation
}

// SetLabel sets the "label" field.
func (_u *ExtractedFigureUpdateOne) SetLabel(v string) *ExtractedFigureUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ExtractedFigureUpdateOne) SetNillableLabel(v *string) *ExtractedFigureUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ExtractedFigureUpdateOne) ClearLabel() *ExtractedFigureUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *ExtractedFigureUpdateOne) SetCaption(v string) *ExtractedFigureUpdateOne {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *ExtractedFigureUpdateOne) SetNillableCaption(v *string) *ExtractedFigureUpdateOne {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *ExtractedFigureUpdateOne) ClearCaption() *ExtractedFigureUpdateOne {
	_u.mutation.ClearCaption()
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedFigureUpdateOne) SetPage(v int) *ExtractedFigureUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedFigureUpdateOne) SetNillablePage(v *int) *ExtractedFigureUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedFigureUpdateOne) AddPage(v int) *ExtractedFigureUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *ExtractedFigureUpdateOne) ClearPage() *ExtractedFigureUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedFigureUpdateOne) SetOrderIndex(v int) *ExtractedFigureUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedFigureUpdateOne) SetNillableOrderIndex(v *int) *ExtractedFigureUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedFigureUpdateOne) AddOrderIndex(v int) *ExtractedFigureUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExtractedFigureMutation object of the builder.
func (_u *ExtractedFigureUpdateOne) Mutation() *ExtractedFigureMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedFigureUpdate builder.
func (_u *ExtractedFigureUpdateOne) Where(ps ...predicate.ExtractedFigure) *ExtractedFigureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedFigureUpdateOne) Select(field string, fields ...string) *ExtractedFigureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedFigure entity.
func (_u *ExtractedFigureUpdateOne) Save(ctx context.Context) (*ExtractedFigure, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFigureUpdateOne) SaveX(ctx context.Context) *ExtractedFigure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedFigureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFigureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFigureUpdateOne) check() error {
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedFigure.extraction"`)
	}
	return nil
}

func (_u *ExtractedFigureUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedFigure, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfigure.Table, extractedfigure.Columns, sqlgraph.NewFieldSpec(extractedfigure.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedFigure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedfigure.FieldID)
		for _, f := range fields {
			if !extractedfigure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedfigure.FieldID {
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
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(extractedfigure.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(extractedfigure.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(extractedfigure.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(extractedfigure.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extractedfigure.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extractedfigure.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(extractedfigure.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedfigure.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedfigure.FieldOrderIndex, field.TypeInt, value)
	}
	_node = &ExtractedFigure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfigure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
