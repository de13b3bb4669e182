// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedParagraphDelete is the builder for deleting a ExtractedParagraph entity.
type ExtractedParagraphDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedParagraphMutation
}

// Where appends a list predicates to the ExtractedParagraphDelete builder.
func (_d *ExtractedParagraphDelete) Where(ps ...predicate.ExtractedParagraph) *ExtractedParagraphDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedParagraphDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedParagraphDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedParagraphDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedparagraph.Table, sqlgraph.NewFieldSpec(extractedparagraph.FieldID, field.TypeUUID))
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

// ExtractedParagraphDeleteOne is the builder for deleting a single ExtractedParagraph entity.
type ExtractedParagraphDeleteOne struct {
	_d *ExtractedParagraphDelete
}

// Where appends a list predicates to the ExtractedParagraphDelete builder.
func (_d *ExtractedParagraphDeleteOne) Where(ps ...predicate.ExtractedParagraph) *ExtractedParagraphDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedParagraphDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedparagraph.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedParagraphDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
