// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
)

// ContentBlobDelete is the builder for deleting a ContentBlob entity.
type ContentBlobDelete struct {
	config
	hooks    []Hook
	mutation *ContentBlobMutation
}

// Where appends a list predicates to the ContentBlobDelete builder.
func (cbd *ContentBlobDelete) Where(ps ...predicate.ContentBlob) *ContentBlobDelete {
	cbd.mutation.Where(ps...)
	return cbd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cbd *ContentBlobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cbd.sqlExec, cbd.mutation, cbd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cbd *ContentBlobDelete) ExecX(ctx context.Context) int {
	n, err := cbd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cbd *ContentBlobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contentblob.Table, sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUint))
	if ps := cbd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cbd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cbd.mutation.done = true
	return affected, err
}

// ContentBlobDeleteOne is the builder for deleting a single ContentBlob entity.
type ContentBlobDeleteOne struct {
	cbd *ContentBlobDelete
}

// Where appends a list predicates to the ContentBlobDelete builder.
func (cbdo *ContentBlobDeleteOne) Where(ps ...predicate.ContentBlob) *ContentBlobDeleteOne {
	cbdo.cbd.mutation.Where(ps...)
	return cbdo
}

// Exec executes the deletion query.
func (cbdo *ContentBlobDeleteOne) Exec(ctx context.Context) error {
	n, err := cbdo.cbd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contentblob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cbdo *ContentBlobDeleteOne) ExecX(ctx context.Context) {
	if err := cbdo.Exec(ctx); err != nil {
		panic(err)
	}
}
