// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedSectionUpdate is the builder for updating ExtractedSection entities.
type ExtractedSectionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedSectionMutation
}

// Where appends a list predicates to the ExtractedSectionUpdate builder.
func (_u *ExtractedSectionUpdate) Where(ps ...predicate.ExtractedSection) *ExtractedSectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExtractedSectionUpdate) SetTitle(v string) *ExtractedSectionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExtractedSectionUpdate) SetNillableTitle(v *string) *ExtractedSectionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExtractedSectionUpdate) ClearTitle() *ExtractedSectionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSectionType sets the "section_type" field.
func (_u *ExtractedSectionUpdate) SetSectionType(v string) *ExtractedSectionUpdate {
	_u.mutation.SetSectionType(v)
	return _u
}

// SetNillableSectionType sets the "section_type" field if the given value is not nil.
func (_u *ExtractedSectionUpdate) SetNillableSectionType(v *string) *ExtractedSectionUpdate {
	if v != nil {
		_u.SetSectionType(*v)
	}
	return _u
}

// ClearSectionType clears the value of the "section_type" field.
func (_u *ExtractedSectionUpdate) ClearSectionType() *ExtractedSectionUpdate {
	_u.mutation.ClearSectionType()
	return _u
}

// SetLevel sets the "level" field.
func (_u *ExtractedSectionUpdate) SetLevel(v int) *ExtractedSectionUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ExtractedSectionUpdate) SetNillableLevel(v *int) *ExtractedSectionUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ExtractedSectionUpdate) AddLevel(v int) *ExtractedSectionUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *ExtractedSectionUpdate) ClearLevel() *ExtractedSectionUpdate {
	_u.mutation.ClearLevel()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedSectionUpdate) SetOrderIndex(v int) *ExtractedSectionUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedSectionUpdate) SetNillableOrderIndex(v *int) *ExtractedSectionUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedSectionUpdate) AddOrderIndex(v int) *ExtractedSectionUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// AddParagraphIDs adds the "paragraphs" edge to the ExtractedParagraph entity by IDs.
func (_u *ExtractedSectionUpdate) AddParagraphIDs(ids ...uuid.UUID) *ExtractedSectionUpdate {
	_u.mutation.AddParagraphIDs(ids...)
	return _u
}

// AddParagraphs adds the "paragraphs" edges to the ExtractedParagraph entity.
func (_u *ExtractedSectionUpdate) AddParagraphs(v ...*ExtractedParagraph) *ExtractedSectionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParagraphIDs(ids...)
}

// Mutation returns the ExtractedSectionMutation object of the builder.
func (_u *ExtractedSectionUpdate) Mutation() *ExtractedSectionMutation {
	return _u.mutation
}

// ClearParagraphs clears all "paragraphs" edges to the ExtractedParagraph entity.
func (_u *ExtractedSectionUpdate) ClearParagraphs() *ExtractedSectionUpdate {
	_u.mutation.ClearParagraphs()
	return _u
}

// RemoveParagraphIDs removes the "paragraphs" edge to ExtractedParagraph entities by IDs.
func (_u *ExtractedSectionUpdate) RemoveParagraphIDs(ids ...uuid.UUID) *ExtractedSectionUpdate {
	_u.mutation.RemoveParagraphIDs(ids...)
	return _u
}

// RemoveParagraphs removes "paragraphs" edges to ExtractedParagraph entities.
func (_u *ExtractedSectionUpdate) RemoveParagraphs(v ...*ExtractedParagraph) *ExtractedSectionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParagraphIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedSectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedSectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedSectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedSectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedSectionUpdate) check() error {
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedSection.extraction"`)
	}
	return nil
}

func (_u *ExtractedSectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedsection.Table, extractedsection.Columns, sqlgraph.NewFieldSpec(extractedsection.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(extractedsection.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(extractedsection.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SectionType(); ok {
		_spec.SetField(extractedsection.FieldSectionType, field.TypeString, value)
	}
	if _u.mutation.SectionTypeCleared() {
		_spec.ClearField(extractedsection.FieldSectionType, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(extractedsection.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(extractedsection.FieldLevel, field.TypeInt, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(extractedsection.FieldLevel, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedsection.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedsection.FieldOrderIndex, field.TypeInt, value)
	}
	if _u.mutation.ParagraphsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParagraphsIDs(); len(nodes) > 0 && !_u.mutation.ParagraphsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParagraphsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedSectionUpdateOne is the builder for updating a single ExtractedSection entity.
type ExtractedSectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedSectionMutation
}

// SetTitle sets the "title" field.
func (_u *ExtractedSectionUpdateOne) SetTitle(v string) *ExtractedSectionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExtractedSectionUpdateOne) SetNillableTitle(v *string) *ExtractedSectionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExtractedSectionUpdateOne) ClearTitle() *ExtractedSectionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSectionType sets the "section_type" field.
func (_u *ExtractedSectionUpdateOne) SetSectionType(v string) *ExtractedSectionUpdateOne {
	_u.mutation.SetSectionType(v)
	return _u
}

// SetNillableSectionType sets the "section_type" field if the given value is not nil.
func (_u *ExtractedSectionUpdateOne) SetNillableSectionType(v *string) *ExtractedSectionUpdateOne {
	if v != nil {
		_u.SetSectionType(*v)
	}
	return _u
}

// ClearSectionType clears the value of the "section_type" field.
func (_u *ExtractedSectionUpdateOne) ClearSectionType() *ExtractedSectionUpdateOne {
	_u.mutation.ClearSectionType()
	return _u
}

// SetLevel sets the "level" field.
func (_u *ExtractedSectionUpdateOne) SetLevel(v int) *ExtractedSectionUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ExtractedSectionUpdateOne) SetNillableLevel(v *int) *ExtractedSectionUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ExtractedSectionUpdateOne) AddLevel(v int) *ExtractedSectionUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *ExtractedSectionUpdateOne) ClearLevel() *ExtractedSectionUpdateOne {
	_u.mutation.ClearLevel()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExtractedSectionUpdateOne) SetOrderIndex(v int) *ExtractedSectionUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExtractedSectionUpdateOne) SetNillableOrderIndex(v *int) *ExtractedSectionUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExtractedSectionUpdateOne) AddOrderIndex(v int) *ExtractedSectionUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// AddParagraphIDs adds the "paragraphs" edge to the ExtractedParagraph entity by IDs.
func (_u *ExtractedSectionUpdateOne) AddParagraphIDs(ids ...uuid.UUID) *ExtractedSectionUpdateOne {
	_u.mutation.AddParagraphIDs(ids...)
	return _u
}

// AddParagraphs adds the "paragraphs" edges to the ExtractedParagraph entity.
func (_u *ExtractedSectionUpdateOne) AddParagraphs(v ...*ExtractedParagraph) *ExtractedSectionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParagraphIDs(ids...)
}

// Mutation returns the ExtractedSectionMutation object of the builder.
func (_u *ExtractedSectionUpdateOne) Mutation() *ExtractedSectionMutation {
	return _u.mutation
}

// ClearParagraphs clears all "paragraphs" edges to the ExtractedParagraph entity.
func (_u *ExtractedSectionUpdateOne) ClearParagraphs() *ExtractedSectionUpdateOne {
	_u.mutation.ClearParagraphs()
	return _u
}

// RemoveParagraphIDs removes the "paragraphs" edge to ExtractedParagraph entities by IDs.
func (_u *ExtractedSectionUpdateOne) RemoveParagraphIDs(ids ...uuid.UUID) *ExtractedSectionUpdateOne {
	_u.mutation.RemoveParagraphIDs(ids...)
	return _u
}

// RemoveParagraphs removes "paragraphs" edges to ExtractedParagraph entities.
func (_u *ExtractedSectionUpdateOne) RemoveParagraphs(v ...*ExtractedParagraph) *ExtractedSectionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParagraphIDs(ids...)
}

// Where appends a list predicates to the ExtractedSectionUpdate builder.
func (_u *ExtractedSectionUpdateOne) Where(ps ...predicate.ExtractedSection) *ExtractedSectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedSectionUpdateOne) Select(field string, fields ...string) *ExtractedSectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedSection entity.
func (_u *ExtractedSectionUpdateOne) Save(ctx context.Context) (*ExtractedSection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedSectionUpdateOne) SaveX(ctx context.Context) *ExtractedSection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedSectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedSectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedSectionUpdateOne) check() error {
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedSection.extraction"`)
	}
	return nil
}

func (_u *ExtractedSectionUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedSection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedsection.Table, extractedsection.Columns, sqlgraph.NewFieldSpec(extractedsection.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedSection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedsection.FieldID)
		for _, f := range fields {
			if !extractedsection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedsection.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(extractedsection.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(extractedsection.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SectionType(); ok {
		_spec.SetField(extractedsection.FieldSectionType, field.TypeString, value)
	}
	if _u.mutation.SectionTypeCleared() {
		_spec.ClearField(extractedsection.FieldSectionType, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(extractedsection.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(extractedsection.FieldLevel, field.TypeInt, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(extractedsection.FieldLevel, field.TypeInt)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(extractedsection.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(extractedsection.FieldOrderIndex, field.TypeInt, value)
	}
	if _u.mutation.ParagraphsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParagraphsIDs(); len(nodes) > 0 && !_u.mutation.ParagraphsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParagraphsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedSection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
