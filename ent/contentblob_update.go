// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
)

// ContentBlobUpdate is the builder for updating ContentBlob entities.
type ContentBlobUpdate struct {
	config
	hooks    []Hook
	mutation *ContentBlobMutation
}

// Where appends a list predicates to the ContentBlobUpdate builder.
func (cbu *ContentBlobUpdate) Where(ps ...predicate.ContentBlob) *ContentBlobUpdate {
	cbu.mutation.Where(ps...)
	return cbu
}

// SetSize sets the "size" field.
func (cbu *ContentBlobUpdate) SetSize(i int64) *ContentBlobUpdate {
	cbu.mutation.ResetSize()
	cbu.mutation.SetSize(i)
	return cbu
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (cbu *ContentBlobUpdate) SetNillableSize(i *int64) *ContentBlobUpdate {
	if i != nil {
		cbu.SetSize(*i)
	}
	return cbu
}

// AddSize adds i to the "size" field.
func (cbu *ContentBlobUpdate) AddSize(i int64) *ContentBlobUpdate {
	cbu.mutation.AddSize(i)
	return cbu
}

// SetMimeType sets the "mime_type" field.
func (cbu *ContentBlobUpdate) SetMimeType(s string) *ContentBlobUpdate {
	cbu.mutation.SetMimeType(s)
	return cbu
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (cbu *ContentBlobUpdate) SetNillableMimeType(s *string) *ContentBlobUpdate {
	if s != nil {
		cbu.SetMimeType(*s)
	}
	return cbu
}

// ClearMimeType clears the value of the "mime_type" field.
func (cbu *ContentBlobUpdate) ClearMimeType() *ContentBlobUpdate {
	cbu.mutation.ClearMimeType()
	return cbu
}

// Mutation returns the ContentBlobMutation object of the builder.
func (cbu *ContentBlobUpdate) Mutation() *ContentBlobMutation {
	return cbu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cbu *ContentBlobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cbu.sqlSave, cbu.mutation, cbu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cbu *ContentBlobUpdate) SaveX(ctx context.Context) int {
	affected, err := cbu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cbu *ContentBlobUpdate) Exec(ctx context.Context) error {
	_, err := cbu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbu *ContentBlobUpdate) ExecX(ctx context.Context) {
	if err := cbu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cbu *ContentBlobUpdate) check() error {
	if v, ok := cbu.mutation.MimeType(); ok {
		if err := contentblob.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ContentBlob.mime_type": %w`, err)}
		}
	}
	return nil
}

func (cbu *ContentBlobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cbu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentblob.Table, contentblob.Columns, sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUint))
	if ps := cbu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cbu.mutation.Size(); ok {
		_spec.SetField(contentblob.FieldSize, field.TypeInt64, value)
	}
	if value, ok := cbu.mutation.AddedSize(); ok {
		_spec.AddField(contentblob.FieldSize, field.TypeInt64, value)
	}
	if value, ok := cbu.mutation.MimeType(); ok {
		_spec.SetField(contentblob.FieldMimeType, field.TypeString, value)
	}
	if cbu.mutation.MimeTypeCleared() {
		_spec.ClearField(contentblob.FieldMimeType, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cbu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentblob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cbu.mutation.done = true
	return n, nil
}

// ContentBlobUpdateOne is the builder for updating a single ContentBlob entity.
type ContentBlobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentBlobMutation
}

// SetSize sets the "size" field.
func (cbuo *ContentBlobUpdateOne) SetSize(i int64) *ContentBlobUpdateOne {
	cbuo.mutation.ResetSize()
	cbuo.mutation.SetSize(i)
	return cbuo
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (cbuo *ContentBlobUpdateOne) SetNillableSize(i *int64) *ContentBlobUpdateOne {
	if i != nil {
		cbuo.SetSize(*i)
	}
	return cbuo
}

// AddSize adds i to the "size" field.
func (cbuo *ContentBlobUpdateOne) AddSize(i int64) *ContentBlobUpdateOne {
	cbuo.mutation.AddSize(i)
	return cbuo
}

// SetMimeType sets the "mime_type" field.
func (cbuo *ContentBlobUpdateOne) SetMimeType(s string) *ContentBlobUpdateOne {
	cbuo.mutation.SetMimeType(s)
	return cbuo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (cbuo *ContentBlobUpdateOne) SetNillableMimeType(s *string) *ContentBlobUpdateOne {
	if s != nil {
		cbuo.SetMimeType(*s)
	}
	return cbuo
}

// ClearMimeType clears the value of the "mime_type" field.
func (cbuo *ContentBlobUpdateOne) ClearMimeType() *ContentBlobUpdateOne {
	cbuo.mutation.ClearMimeType()
	return cbuo
}

// Mutation returns the ContentBlobMutation object of the builder.
func (cbuo *ContentBlobUpdateOne) Mutation() *ContentBlobMutation {
	return cbuo.mutation
}

// Where appends a list predicates to the ContentBlobUpdate builder.
func (cbuo *ContentBlobUpdateOne) Where(ps ...predicate.ContentBlob) *ContentBlobUpdateOne {
	cbuo.mutation.Where(ps...)
	return cbuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cbuo *ContentBlobUpdateOne) Select(field string, fields ...string) *ContentBlobUpdateOne {
	cbuo.fields = append([]string{field}, fields...)
	return cbuo
}

// Save executes the query and returns the updated ContentBlob entity.
func (cbuo *ContentBlobUpdateOne) Save(ctx context.Context) (*ContentBlob, error) {
	return withHooks(ctx, cbuo.sqlSave, cbuo.mutation, cbuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cbuo *ContentBlobUpdateOne) SaveX(ctx context.Context) *ContentBlob {
	node, err := cbuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cbuo *ContentBlobUpdateOne) Exec(ctx context.Context) error {
	_, err := cbuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbuo *ContentBlobUpdateOne) ExecX(ctx context.Context) {
	if err := cbuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cbuo *ContentBlobUpdateOne) check() error {
	if v, ok := cbuo.mutation.MimeType(); ok {
		if err := contentblob.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ContentBlob.mime_type": %w`, err)}
		}
	}
	return nil
}

func (cbuo *ContentBlobUpdateOne) sqlSave(ctx context.Context) (_node *ContentBlob, err error) {
	if err := cbuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentblob.Table, contentblob.Columns, sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUint))
	id, ok := cbuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentBlob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cbuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentblob.FieldID)
		for _, f := range fields {
			if !contentblob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentblob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cbuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cbuo.mutation.Size(); ok {
		_spec.SetField(contentblob.FieldSize, field.TypeInt64, value)
	}
	if value, ok := cbuo.mutation.AddedSize(); ok {
		_spec.AddField(contentblob.FieldSize, field.TypeInt64, value)
	}
	if value, ok := cbuo.mutation.MimeType(); ok {
		_spec.SetField(contentblob.FieldMimeType, field.TypeString, value)
	}
	if cbuo.mutation.MimeTypeCleared() {
		_spec.ClearField(contentblob.FieldMimeType, field.TypeString)
	}
	_node = &ContentBlob{config: cbuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cbuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentblob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cbuo.mutation.done = true
	return _node, nil
}
