// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
)

// LineageEdgeDelete is the builder for deleting a LineageEdge entity.
type LineageEdgeDelete struct {
	config
	hooks    []Hook
	mutation *LineageEdgeMutation
}

// Where appends a list predicates to the LineageEdgeDelete builder.
func (led *LineageEdgeDelete) Where(ps ...predicate.LineageEdge) *LineageEdgeDelete {
	led.mutation.Where(ps...)
	return led
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (led *LineageEdgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, led.sqlExec, led.mutation, led.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (led *LineageEdgeDelete) ExecX(ctx context.Context) int {
	n, err := led.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (led *LineageEdgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lineageedge.Table, sqlgraph.NewFieldSpec(lineageedge.FieldID, field.TypeUint))
	if ps := led.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, led.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	led.mutation.done = true
	return affected, err
}

// LineageEdgeDeleteOne is the builder for deleting a single LineageEdge entity.
type LineageEdgeDeleteOne struct {
	led *LineageEdgeDelete
}

// Where appends a list predicates to the LineageEdgeDelete builder.
func (ledo *LineageEdgeDeleteOne) Where(ps ...predicate.LineageEdge) *LineageEdgeDeleteOne {
	ledo.led.mutation.Where(ps...)
	return ledo
}

// Exec executes the deletion query.
func (ledo *LineageEdgeDeleteOne) Exec(ctx context.Context) error {
	n, err := ledo.led.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lineageedge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ledo *LineageEdgeDeleteOne) ExecX(ctx context.Context) {
	if err := ledo.Exec(ctx); err != nil {
		panic(err)
	}
}
