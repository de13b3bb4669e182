// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedTableUpdate is the builder for updating ExtractedTable entities.
type ExtractedTableUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedTableMutation
}

// Where appends a list predicates to the ExtractedTableUpdate builder.
func (_u *ExtractedTableUpdate) Where(ps ...predicate.ExtractedTable) *ExtractedTableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *ExtractedTableUpdate) SetLabel(v string) *ExtractedTableUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ExtractedTableUpdate) SetNillableLabel(v *string) *ExtractedTableUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ExtractedTableUpdate) ClearLabel() *ExtractedTableUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *ExtractedTableUpdate) SetCaption(v string) *ExtractedTableUpdate {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *ExtractedTableUpdate) SetNillableCaption(v *string) *ExtractedTableUpdate {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *ExtractedTableUpdate) ClearCaption() *ExtractedTableUpdate {
	_u.mutation.ClearCaption()
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedTableUpdate) SetPage(v int) *ExtractedTableUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedTableUpdate) SetNillablePage(v *int) *ExtractedTableUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedTableUpdate) AddPage(v int) *ExtractedTableUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *ExtractedTableUpdate) ClearPage() *ExtractedTableUpdate {
	_u.mutation.ClearPage()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedTableUpdate) SetOrderIndex(v int) *ExtractedTableUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedTableUpdate) SetNillableOrderIndex(v *int) *ExtractedTableUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedTableUpdate) AddOrderIndex(v int) *ExtractedTableUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExtractedTableMutation object of the builder.
func (_u *ExtractedTableUpdate) Mutation() *ExtractedTableMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedTableUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedTableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedTableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedTableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedTableUpdate) check() error {
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedTable.extraction"`)
	}
	return nil
}

func (_u *ExtractedTableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedtable.Table, extractedtable.Columns, sqlgraph.NewFieldSpec(extractedtable.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(extractedtable.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(extractedtable.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(extractedtable.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(extractedtable.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extractedtable.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extractedtable.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(extractedtable.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedtable.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedtable.FieldOrderIndex, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedtable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedTableUpdateOne is the builder for updating a single ExtractedTable entity.
type ExtractedTableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedTableMutation
}

// SetLabel sets the "label" field.
func (_u *ExtractedTableUpdateOne) SetLabel(v string) *ExtractedTableUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ExtractedTableUpdateOne) SetNillableLabel(v *string) *ExtractedTableUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *ExtractedTableUpdateOne) ClearLabel() *ExtractedTableUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *ExtractedTableUpdateOne) SetCaption(v string) *ExtractedTableUpdateOne {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *ExtractedTableUpdateOne) SetNillableCaption(v *string) *ExtractedTableUpdateOne {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *ExtractedTableUpdateOne) ClearCaption() *ExtractedTableUpdateOne {
	_u.mutation.ClearCaption()
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedTableUpdateOne) SetPage(v int) *ExtractedTableUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedTableUpdateOne) SetNillablePage(v *int) *ExtractedTableUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedTableUpdateOne) AddPage(v int) *ExtractedTableUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *ExtractedTableUpdateOne) ClearPage() *ExtractedTableUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedTableUpdateOne) SetOrderIndex(v int) *ExtractedTableUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedTableUpdateOne) SetNillableOrderIndex(v *int) *ExtractedTableUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedTableUpdateOne) AddOrderIndex(v int) *ExtractedTableUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// Mutation returns the ExtractedTableMutation object of the builder.
func (_u *ExtractedTableUpdateOne) Mutation() *ExtractedTableMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedTableUpdate builder.
func (_u *ExtractedTableUpdateOne) Where(ps ...predicate.ExtractedTable) *ExtractedTableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedTableUpdateOne) Select(field string, fields ...string) *ExtractedTableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedTable entity.
func (_u *ExtractedTableUpdateOne) Save(ctx context.Context) (*ExtractedTable, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedTableUpdateOne) SaveX(ctx context.Context) *ExtractedTable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedTableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedTableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedTableUpdateOne) check() error {
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedTable.extraction"`)
	}
	return nil
}

func (_u *ExtractedTableUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedTable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedtable.Table, extractedtable.Columns, sqlgraph.NewFieldSpec(extractedtable.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedTable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedtable.FieldID)
		for _, f := range fields {
			if !extractedtable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedtable.FieldID {
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
		_spec.SetField(extractedtable.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(extractedtable.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(extractedtable.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(extractedtable.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extractedtable.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extractedtable.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(extractedtable.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedtable.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedtable.FieldOrderIndex, field.TypeInt, value)
	}
	_node = &ExtractedTable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedtable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
