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
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/paperextraction"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// PaperExtractionUpdate is the builder for updating PaperExtraction entities.
type PaperExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *PaperExtractionMutation
}

// Where appends a list predicates to the PaperExtractionUpdate builder.
func (_u *PaperExtractionUpdate) Where(ps ...predicate.PaperExtraction) *PaperExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPaperID sets the "paper_id" field.
func (_u *PaperExtractionUpdate) SetPaperID(v uuid.UUID) *PaperExtractionUpdate {
	_u.mutation.SetPaperID(v)
	return _u
}

// SetNillablePaperID sets the "paper_id" field if the given value is not nil.
func (_u *PaperExtractionUpdate) SetNillablePaperID(v *uuid.UUID) *PaperExtractionUpdate {
	if v != nil {
		_u.SetPaperID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *PaperExtractionUpdate) SetExtractionID(v string) *PaperExtractionUpdate {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *PaperExtractionUpdate) SetNillableExtractionID(v *string) *PaperExtractionUpdate {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (_u *PaperExtractionUpdate) ClearExtractionID() *PaperExtractionUpdate {
	_u.mutation.ClearExtractionID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperExtractionUpdate) SetTitle(v string) *PaperExtractionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperExtractionUpdate) SetNillableTitle(v *string) *PaperExtractionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *PaperExtractionUpdate) ClearTitle() *PaperExtractionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetAbstractText sets the "abstract_text" field.
func (_u *PaperExtractionUpdate) SetAbstractText(v string) *PaperExtractionUpdate {
	_u.mutation.SetAbstractText(v)
	return _u
}

// SetNillableAbstractText sets the "abstract_text" field if the given value is not nil.
func (_u *PaperExtractionUpdate) SetNillableAbstractText(v *string) *PaperExtractionUpdate {
	if v != nil {
		_u.SetAbstractText(*v)
	}
	return _u
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (_u *PaperExtractionUpdate) ClearAbstractText() *PaperExtractionUpdate {
	_u.mutation.ClearAbstractText()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PaperExtractionUpdate) SetLanguage(v string) *PaperExtractionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PaperExtractionUpdate) SetNillableLanguage(v *string) *PaperExtractionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *PaperExtractionUpdate) ClearLanguage() *PaperExtractionUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *PaperExtractionUpdate) SetPageCount(v int) *PaperExtractionUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *PaperExtractionUpdate) SetNillablePageCount(v *int) *PaperExtractionUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *PaperExtractionUpdate) AddPageCount(v int) *PaperExtractionUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *PaperExtractionUpdate) ClearPageCount() *PaperExtractionUpdate {
	_u.mutation.ClearPageCount()
	return _u
}

// SetExtractionCoverage sets the "extraction_coverage" field.
func (_u *PaperExtractionUpdate) SetExtractionCoverage(v float64) *PaperExtractionUpdate {
	_u.mutation.ResetExtractionCoverage()
	_u.mutation.SetExtractionCoverage(v)
	return _u
}

// SetNillableExtractionCoverage sets the "extraction_coverage" field if the given value is not nil.
func (_u *PaperExtractionUpdate) SetNillableExtractionCoverage(v *float64) *PaperExtractionUpdate {
	if v != nil {
		_u.SetExtractionCoverage(*v)
	}
	return _u
}

// AddExtractionCoverage adds value to the "extraction_coverage" field.
func (_u *PaperExtractionUpdate) AddExtractionCoverage(v float64) *PaperExtractionUpdate {
	_u.mutation.AddExtractionCoverage(v)
	return _u
}

// ClearExtractionCoverage clears the value of the "extraction_coverage" field.
func (_u *PaperExtractionUpdate) ClearExtractionCoverage() *PaperExtractionUpdate {
	_u.mutation.ClearExtractionCoverage()
	return _u
}

// AddSectionIDs adds the "sections" edge to the ExtractedSection entity by IDs.
func (_u *PaperExtractionUpdate) AddSectionIDs(ids ...uuid.UUID) *PaperExtractionUpdate {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the ExtractedSection entity.
func (_u *PaperExtractionUpdate) AddSections(v ...*ExtractedSection) *PaperExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddFigureIDs adds the "figures" edge to the ExtractedFigure entity by IDs.
func (_u *PaperExtractionUpdate) AddFigureIDs(ids ...uuid.UUID) *PaperExtractionUpdate {
	_u.mutation.AddFigureIDs(ids...)
	return _u
}

// AddFigures adds the "figures" edges to the ExtractedFigure entity.
func (_u *PaperExtractionUpdate) AddFigures(v ...*ExtractedFigure) *PaperExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFigureIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the ExtractedTable entity by IDs.
func (_u *PaperExtractionUpdate) AddTableIDs(ids ...uuid.UUID) *PaperExtractionUpdate {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the ExtractedTable entity.
func (_u *PaperExtractionUpdate) AddTables(v ...*ExtractedTable) *PaperExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// Mutation returns the PaperExtractionMutation object of the builder.
func (_u *PaperExtractionUpdate) Mutation() *PaperExtractionMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the ExtractedSection entity.
func (_u *PaperExtractionUpdate) ClearSections() *PaperExtractionUpdate {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to ExtractedSection entities by IDs.
func (_u *PaperExtractionUpdate) RemoveSectionIDs(ids ...uuid.UUID) *PaperExtractionUpdate {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to ExtractedSection entities.
func (_u *PaperExtractionUpdate) RemoveSections(v ...*ExtractedSection) *PaperExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearFigures clears all "figures" edges to the ExtractedFigure entity.
func (_u *PaperExtractionUpdate) ClearFigures() *PaperExtractionUpdate {
	_u.mutation.ClearFigures()
	return _u
}

// RemoveFigureIDs removes the "figures" edge to ExtractedFigure entities by IDs.
func (_u *PaperExtractionUpdate) RemoveFigureIDs(ids ...uuid.UUID) *PaperExtractionUpdate {
	_u.mutation.RemoveFigureIDs(ids...)
	return _u
}

// RemoveFigures removes "figures" edges to ExtractedFigure entities.
func (_u *PaperExtractionUpdate) RemoveFigures(v ...*ExtractedFigure) *PaperExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFigureIDs(ids...)
}

// ClearTables clears all "tables" edges to the ExtractedTable entity.
func (_u *PaperExtractionUpdate) ClearTables() *PaperExtractionUpdate {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to ExtractedTable entities by IDs.
func (_u *PaperExtractionUpdate) RemoveTableIDs(ids ...uuid.UUID) *PaperExtractionUpdate {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to ExtractedTable entities.
func (_u *PaperExtractionUpdate) RemoveTables(v ...*ExtractedTable) *PaperExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaperExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaperExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PaperExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(paperextraction.Table, paperextraction.Columns, sqlgraph.NewFieldSpec(paperextraction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PaperID(); ok {
		_spec.SetField(paperextraction.FieldPaperID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExtractionID(); ok {
		_spec.SetField(paperextraction.FieldExtractionID, field.TypeString, value)
	}
	if _u.mutation.ExtractionIDCleared() {
		_spec.ClearField(paperextraction.FieldExtractionID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paperextraction.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(paperextraction.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AbstractText(); ok {
		_spec.SetField(paperextraction.FieldAbstractText, field.TypeString, value)
	}
	if _u.mutation.AbstractTextCleared() {
		_spec.ClearField(paperextraction.FieldAbstractText, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(paperextraction.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(paperextraction.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(paperextraction.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(paperextraction.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(paperextraction.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractionCoverage(); ok {
		_spec.SetField(paperextraction.FieldExtractionCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractionCoverage(); ok {
		_spec.AddField(paperextraction.FieldExtractionCoverage, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractionCoverageCleared() {
		_spec.ClearField(paperextraction.FieldExtractionCoverage, field.TypeFloat64)
	}
	if _u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FiguresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFiguresIDs(); len(nodes) > 0 && !_u.mutation.FiguresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FiguresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paperextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaperExtractionUpdateOne is the builder for updating a single PaperExtraction entity.
type PaperExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaperExtractionMutation
}

// SetPaperID sets the "paper_id" field.
func (_u *PaperExtractionUpdateOne) SetPaperID(v uuid.UUID) *PaperExtractionUpdateOne {
	_u.mutation.SetPaperID(v)
	return _u
}

// SetNillablePaperID sets the "paper_id" field if the given value is not nil.
func (_u *PaperExtractionUpdateOne) SetNillablePaperID(v *uuid.UUID) *PaperExtractionUpdateOne {
	if v != nil {
		_u.SetPaperID(*v)
	}
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *PaperExtractionUpdateOne) SetExtractionID(v string) *PaperExtractionUpdateOne {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *PaperExtractionUpdateOne) SetNillableExtractionID(v *string) *PaperExtractionUpdateOne {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (_u *PaperExtractionUpdateOne) ClearExtractionID() *PaperExtractionUpdateOne {
	_u.mutation.ClearExtractionID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperExtractionUpdateOne) SetTitle(v string) *PaperExtractionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperExtractionUpdateOne) SetNillableTitle(v *string) *PaperExtractionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *PaperExtractionUpdateOne) ClearTitle() *PaperExtractionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetAbstractText sets the "abstract_text" field.
func (_u *PaperExtractionUpdateOne) SetAbstractText(v string) *PaperExtractionUpdateOne {
	_u.mutation.SetAbstractText(v)
	return _u
}

// SetNillableAbstractText sets the "abstract_text" field if the given value is not nil.
func (_u *PaperExtractionUpdateOne) SetNillableAbstractText(v *string) *PaperExtractionUpdateOne {
	if v != nil {
		_u.SetAbstractText(*v)
	}
	return _u
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (_u *PaperExtractionUpdateOne) ClearAbstractText() *PaperExtractionUpdateOne {
	_u.mutation.ClearAbstractText()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PaperExtractionUpdateOne) SetLanguage(v string) *PaperExtractionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PaperExtractionUpdateOne) SetNillableLanguage(v *string) *PaperExtractionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *PaperExtractionUpdateOne) ClearLanguage() *PaperExtractionUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *PaperExtractionUpdateOne) SetPageCount(v int) *PaperExtractionUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *PaperExtractionUpdateOne) SetNillablePageCount(v *int) *PaperExtractionUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *PaperExtractionUpdateOne) AddPageCount(v int) *PaperExtractionUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *PaperExtractionUpdateOne) ClearPageCount() *PaperExtractionUpdateOne {
	_u.mutation.ClearPageCount()
	return _u
}

// SetExtractionCoverage sets the "extraction_coverage" field.
func (_u *PaperExtractionUpdateOne) SetExtractionCoverage(v float64) *PaperExtractionUpdateOne {
	_u.mutation.ResetExtractionCoverage()
	_u.mutation.SetExtractionCoverage(v)
	return _u
}

// SetNillableExtractionCoverage sets the "extraction_coverage" field if the given value is not nil.
func (_u *PaperExtractionUpdateOne) SetNillableExtractionCoverage(v *float64) *PaperExtractionUpdateOne {
	if v != nil {
		_u.SetExtractionCoverage(*v)
	}
	return _u
}

// AddExtractionCoverage adds value to the "extraction_coverage" field.
func (_u *PaperExtractionUpdateOne) AddExtractionCoverage(v float64) *PaperExtractionUpdateOne {
	_u.mutation.AddExtractionCoverage(v)
	return _u
}

// ClearExtractionCoverage clears the value of the "extraction_coverage" field.
func (_u *PaperExtractionUpdateOne) ClearExtractionCoverage() *PaperExtractionUpdateOne {
	_u.mutation.ClearExtractionCoverage()
	return _u
}

// AddSectionIDs adds the "sections" edge to the ExtractedSection entity by IDs.
func (_u *PaperExtractionUpdateOne) AddSectionIDs(ids ...uuid.UUID) *PaperExtractionUpdateOne {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the ExtractedSection entity.
func (_u *PaperExtractionUpdateOne) AddSections(v ...*ExtractedSection) *PaperExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddFigureIDs adds the "figures" edge to the ExtractedFigure entity by IDs.
func (_u *PaperExtractionUpdateOne) AddFigureIDs(ids ...uuid.UUID) *PaperExtractionUpdateOne {
	_u.mutation.AddFigureIDs(ids...)
	return _u
}

// AddFigures adds the "figures" edges to the ExtractedFigure entity.
func (_u *PaperExtractionUpdateOne) AddFigures(v ...*ExtractedFigure) *PaperExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFigureIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the ExtractedTable entity by IDs.
func (_u *PaperExtractionUpdateOne) AddTableIDs(ids ...uuid.UUID) *PaperExtractionUpdateOne {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the ExtractedTable entity.
func (_u *PaperExtractionUpdateOne) AddTables(v ...*ExtractedTable) *PaperExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// Mutation returns the PaperExtractionMutation object of the builder.
func (_u *PaperExtractionUpdateOne) Mutation() *PaperExtractionMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the ExtractedSection entity.
func (_u *PaperExtractionUpdateOne) ClearSections() *PaperExtractionUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to ExtractedSection entities by IDs.
func (_u *PaperExtractionUpdateOne) RemoveSectionIDs(ids ...uuid.UUID) *PaperExtractionUpdateOne {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to ExtractedSection entities.
func (_u *PaperExtractionUpdateOne) RemoveSections(v ...*ExtractedSection) *PaperExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearFigures clears all "figures" edges to the ExtractedFigure entity.
func (_u *PaperExtractionUpdateOne) ClearFigures() *PaperExtractionUpdateOne {
	_u.mutation.ClearFigures()
	return _u
}

// RemoveFigureIDs removes the "figures" edge to ExtractedFigure entities by IDs.
func (_u *PaperExtractionUpdateOne) RemoveFigureIDs(ids ...uuid.UUID) *PaperExtractionUpdateOne {
	_u.mutation.RemoveFigureIDs(ids...)
	return _u
}

// RemoveFigures removes "figures" edges to ExtractedFigure entities.
func (_u *PaperExtractionUpdateOne) RemoveFigures(v ...*ExtractedFigure) *PaperExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFigureIDs(ids...)
}

// ClearTables clears all "tables" edges to the ExtractedTable entity.
func (_u *PaperExtractionUpdateOne) ClearTables() *PaperExtractionUpdateOne {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to ExtractedTable entities by IDs.
func (_u *PaperExtractionUpdateOne) RemoveTableIDs(ids ...uuid.UUID) *PaperExtractionUpdateOne {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to ExtractedTable entities.
func (_u *PaperExtractionUpdateOne) RemoveTables(v ...*ExtractedTable) *PaperExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// Where appends a list predicates to the PaperExtractionUpdate builder.
func (_u *PaperExtractionUpdateOne) Where(ps ...predicate.PaperExtraction) *PaperExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaperExtractionUpdateOne) Select(field string, fields ...string) *PaperExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaperExtraction entity.
func (_u *PaperExtractionUpdateOne) Save(ctx context.Context) (*PaperExtraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperExtractionUpdateOne) SaveX(ctx context.Context) *PaperExtraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaperExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PaperExtractionUpdateOne) sqlSave(ctx context.Context) (_node *PaperExtraction, err error) {
	_spec := sqlgraph.NewUpdateSpec(paperextraction.Table, paperextraction.Columns, sqlgraph.NewFieldSpec(paperextraction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaperExtraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paperextraction.FieldID)
		for _, f := range fields {
			if !paperextraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paperextraction.FieldID {
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
	if value, ok := _u.mutation.PaperID(); ok {
		_spec.SetField(paperextraction.FieldPaperID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExtractionID(); ok {
		_spec.SetField(paperextraction.FieldExtractionID, field.TypeString, value)
	}
	if _u.mutation.ExtractionIDCleared() {
		_spec.ClearField(paperextraction.FieldExtractionID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paperextraction.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(paperextraction.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AbstractText(); ok {
		_spec.SetField(paperextraction.FieldAbstractText, field.TypeString, value)
	}
	if _u.mutation.AbstractTextCleared() {
		_spec.ClearField(paperextraction.FieldAbstractText, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(paperextraction.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(paperextraction.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(paperextraction.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(paperextraction.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(paperextraction.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractionCoverage(); ok {
		_spec.SetField(paperextraction.FieldExtractionCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractionCoverage(); ok {
		_spec.AddField(paperextraction.FieldExtractionCoverage, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractionCoverageCleared() {
		_spec.ClearField(paperextraction.FieldExtractionCoverage, field.TypeFloat64)
	}
	if _u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FiguresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFiguresIDs(); len(nodes) > 0 && !_u.mutation.FiguresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FiguresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PaperExtraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paperextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
