// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// GapValidationPaperDelete is the builder for deleting a GapValidationPaper entity.
type GapValidationPaperDelete struct {
	config
	hooks    []Hook
	mutation *GapValidationPaperMutation
}

// Where appends a list predicates to the GapValidationPaperDelete builder.
func (_d *GapValidationPaperDelete) Where(ps ...predicate.GapValidationPaper) *GapValidationPaperDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GapValidationPaperDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GapValidationPaperDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GapValidationPaperDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gapvalidationpaper.Table, sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID))
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

// GapValidationPaperDeleteOne is the builder for deleting a single GapValidationPaper entity.
type GapValidationPaperDeleteOne struct {
	_d *GapValidationPaperDelete
}

// Where appends a list predicates to the GapValidationPaperDelete builder.
func (_d *GapValidationPaperDeleteOne) Where(ps ...predicate.GapValidationPaper) *GapValidationPaperDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GapValidationPaperDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gapvalidationpaper.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GapValidationPaperDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
