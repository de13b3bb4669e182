// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedFigureDelete is the builder for deleting a ExtractedFigure entity.
type ExtractedFigureDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedFigureMutation
}

// Where appends a list predicates to the ExtractedFigureDelete builder.
func (_d *ExtractedFigureDelete) Where(ps ...predicate.ExtractedFigure) *ExtractedFigureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedFigureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedFigureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedFigureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedfigure.Table, sqlgraph.NewFieldSpec(extractedfigure.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractedFigureDeleteOne is the builder for deleting a single ExtractedFigure entity.
type ExtractedFigureDeleteOne struct {
	_d *ExtractedFigureDelete
}

// Where appends a list predicates to the ExtractedFigureDelete builder.
func (_d *ExtractedFigureDeleteOne) Where(ps ...predicate.ExtractedFigure) *ExtractedFigureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedFigureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedfigure.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedFigureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
