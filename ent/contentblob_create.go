// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
)

// ContentBlobCreate is the builder for creating a ContentBlob entity.
type ContentBlobCreate struct {
	config
	mutation *ContentBlobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (cbc *ContentBlobCreate) SetCreatedAt(t time.Time) *ContentBlobCreate {
	cbc.mutation.SetCreatedAt(t)
	return cbc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cbc *ContentBlobCreate) SetNillableCreatedAt(t *time.Time) *ContentBlobCreate {
	if t != nil {
		cbc.SetCreatedAt(*t)
	}
	return cbc
}

// SetContentHash sets the "content_hash" field.
func (cbc *ContentBlobCreate) SetContentHash(s string) *ContentBlobCreate {
	cbc.mutation.SetContentHash(s)
	return cbc
}

// SetSize sets the "size" field.
func (cbc *ContentBlobCreate) SetSize(i int64) *ContentBlobCreate {
	cbc.mutation.SetSize(i)
	return cbc
}

// SetMimeType sets the "mime_type" field.
func (cbc *ContentBlobCreate) SetMimeType(s string) *ContentBlobCreate {
	cbc.mutation.SetMimeType(s)
	return cbc
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (cbc *ContentBlobCreate) SetNillableMimeType(s *string) *ContentBlobCreate {
	if s != nil {
		cbc.SetMimeType(*s)
	}
	return cbc
}

// SetID sets the "id" field.
func (cbc *ContentBlobCreate) SetID(u uint) *ContentBlobCreate {
	cbc.mutation.SetID(u)
	return cbc
}

// Mutation returns the ContentBlobMutation object of the builder.
func (cbc *ContentBlobCreate) Mutation() *ContentBlobMutation {
	return cbc.mutation
}

// Save creates the ContentBlob in the database.
func (cbc *ContentBlobCreate) Save(ctx context.Context) (*ContentBlob, error) {
	cbc.defaults()
	return withHooks(ctx, cbc.sqlSave, cbc.mutation, cbc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cbc *ContentBlobCreate) SaveX(ctx context.Context) *ContentBlob {
	v, err := cbc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cbc *ContentBlobCreate) Exec(ctx context.Context) error {
	_, err := cbc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbc *ContentBlobCreate) ExecX(ctx context.Context) {
	if err := cbc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cbc *ContentBlobCreate) defaults() {
	if _, ok := cbc.mutation.CreatedAt(); !ok {
		v := contentblob.DefaultCreatedAt()
		cbc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cbc *ContentBlobCreate) check() error {
	if _, ok := cbc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentBlob.created_at"`)}
	}
	if _, ok := cbc.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "ContentBlob.content_hash"`)}
	}
	if v, ok := cbc.mutation.ContentHash(); ok {
		if err := contentblob.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "ContentBlob.content_hash": %w`, err)}
		}
	}
	if _, ok := cbc.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "ContentBlob.size"`)}
	}
	if v, ok := cbc.mutation.MimeType(); ok {
		if err := contentblob.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ContentBlob.mime_type": %w`, err)}
		}
	}
	return nil
}

func (cbc *ContentBlobCreate) sqlSave(ctx context.Context) (*ContentBlob, error) {
	if err := cbc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cbc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cbc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	cbc.mutation.id = &_node.ID
	cbc.mutation.done = true
	return _node, nil
}

func (cbc *ContentBlobCreate) createSpec() (*ContentBlob, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentBlob{config: cbc.config}
		_spec = sqlgraph.NewCreateSpec(contentblob.Table, sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUint))
	)
	_spec.OnConflict = cbc.conflict
	if id, ok := cbc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cbc.mutation.CreatedAt(); ok {
		_spec.SetField(contentblob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cbc.mutation.ContentHash(); ok {
		_spec.SetField(contentblob.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := cbc.mutation.Size(); ok {
		_spec.SetField(contentblob.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := cbc.mutation.MimeType(); ok {
		_spec.SetField(contentblob.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentBlob.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentBlobUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (cbc *ContentBlobCreate) OnConflict(opts ...sql.ConflictOption) *ContentBlobUpsertOne {
	cbc.conflict = opts
	return &ContentBlobUpsertOne{
		create: cbc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentBlob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cbc *ContentBlobCreate) OnConflictColumns(columns ...string) *ContentBlobUpsertOne {
	cbc.conflict = append(cbc.conflict, sql.ConflictColumns(columns...))
	return &ContentBlobUpsertOne{
		create: cbc,
	}
}

type (
	// ContentBlobUpsertOne is the builder for "upsert"-ing
	//  one ContentBlob node.
	ContentBlobUpsertOne struct {
		create *ContentBlobCreate
	}

	// ContentBlobUpsert is the "OnConflict" setter.
	ContentBlobUpsert struct {
		*sql.UpdateSet
	}
)

// SetSize sets the "size" field.
func (u *ContentBlobUpsert) SetSize(v int64) *ContentBlobUpsert {
	u.Set(contentblob.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ContentBlobUpsert) UpdateSize() *ContentBlobUpsert {
	u.SetExcluded(contentblob.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *ContentBlobUpsert) AddSize(v int64) *ContentBlobUpsert {
	u.Add(contentblob.FieldSize, v)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *ContentBlobUpsert) SetMimeType(v string) *ContentBlobUpsert {
	u.Set(contentblob.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *ContentBlobUpsert) UpdateMimeType() *ContentBlobUpsert {
	u.SetExcluded(contentblob.FieldMimeType)
	return u
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *ContentBlobUpsert) ClearMimeType() *ContentBlobUpsert {
	u.SetNull(contentblob.FieldMimeType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ContentBlob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contentblob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentBlobUpsertOne) UpdateNewValues() *ContentBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contentblob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(contentblob.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ContentHash(); exists {
			s.SetIgnore(contentblob.FieldContentHash)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentBlob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContentBlobUpsertOne) Ignore() *ContentBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentBlobUpsertOne) DoNothing() *ContentBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentBlobCreate.OnConflict
// documentation for more info.
func (u *ContentBlobUpsertOne) Update(set func(*ContentBlobUpsert)) *ContentBlobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentBlobUpsert{UpdateSet: update})
	}))
	return u
}

// SetSize sets the "size" field.
func (u *ContentBlobUpsertOne) SetSize(v int64) *ContentBlobUpsertOne {
	return u.Update(func(s *ContentBlobUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *ContentBlobUpsertOne) AddSize(v int64) *ContentBlobUpsertOne {
	return u.Update(func(s *ContentBlobUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ContentBlobUpsertOne) UpdateSize() *ContentBlobUpsertOne {
	return u.Update(func(s *ContentBlobUpsert) {
		s.UpdateSize()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *ContentBlobUpsertOne) SetMimeType(v string) *ContentBlobUpsertOne {
	return u.Update(func(s *ContentBlobUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *ContentBlobUpsertOne) UpdateMimeType() *ContentBlobUpsertOne {
	return u.Update(func(s *ContentBlobUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *ContentBlobUpsertOne) ClearMimeType() *ContentBlobUpsertOne {
	return u.Update(func(s *ContentBlobUpsert) {
		s.ClearMimeType()
	})
}

// Exec executes the query.
func (u *ContentBlobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentBlobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentBlobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContentBlobUpsertOne) ID(ctx context.Context) (id uint, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContentBlobUpsertOne) IDX(ctx context.Context) uint {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContentBlobCreateBulk is the builder for creating many ContentBlob entities in bulk.
type ContentBlobCreateBulk struct {
	config
	err      error
	builders []*ContentBlobCreate
	conflict []sql.ConflictOption
}

// Save creates the ContentBlob entities in the database.
func (cbcb *ContentBlobCreateBulk) Save(ctx context.Context) ([]*ContentBlob, error) {
	if cbcb.err != nil {
		return nil, cbcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cbcb.builders))
	nodes := make([]*ContentBlob, len(cbcb.builders))
	mutators := make([]Mutator, len(cbcb.builders))
	for i := range cbcb.builders {
		func(i int, root context.Context) {
			builder := cbcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentBlobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, cbcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cbcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cbcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, cbcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cbcb *ContentBlobCreateBulk) SaveX(ctx context.Context) []*ContentBlob {
	v, err := cbcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cbcb *ContentBlobCreateBulk) Exec(ctx context.Context) error {
	_, err := cbcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbcb *ContentBlobCreateBulk) ExecX(ctx context.Context) {
	if err := cbcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContentBlob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContentBlobUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (cbcb *ContentBlobCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContentBlobUpsertBulk {
	cbcb.conflict = opts
	return &ContentBlobUpsertBulk{
		create: cbcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContentBlob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cbcb *ContentBlobCreateBulk) OnConflictColumns(columns ...string) *ContentBlobUpsertBulk {
	cbcb.conflict = append(cbcb.conflict, sql.ConflictColumns(columns...))
	return &ContentBlobUpsertBulk{
		create: cbcb,
	}
}

// ContentBlobUpsertBulk is the builder for "upsert"-ing
// a bulk of ContentBlob nodes.
type ContentBlobUpsertBulk struct {
	create *ContentBlobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContentBlob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contentblob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContentBlobUpsertBulk) UpdateNewValues() *ContentBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contentblob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(contentblob.FieldCreatedAt)
			}
			if _, exists := b.mutation.ContentHash(); exists {
				s.SetIgnore(contentblob.FieldContentHash)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContentBlob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContentBlobUpsertBulk) Ignore() *ContentBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContentBlobUpsertBulk) DoNothing() *ContentBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContentBlobCreateBulk.OnConflict
// documentation for more info.
func (u *ContentBlobUpsertBulk) Update(set func(*ContentBlobUpsert)) *ContentBlobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContentBlobUpsert{UpdateSet: update})
	}))
	return u
}

// SetSize sets the "size" field.
func (u *ContentBlobUpsertBulk) SetSize(v int64) *ContentBlobUpsertBulk {
	return u.Update(func(s *ContentBlobUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *ContentBlobUpsertBulk) AddSize(v int64) *ContentBlobUpsertBulk {
	return u.Update(func(s *ContentBlobUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ContentBlobUpsertBulk) UpdateSize() *ContentBlobUpsertBulk {
	return u.Update(func(s *ContentBlobUpsert) {
		s.UpdateSize()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *ContentBlobUpsertBulk) SetMimeType(v string) *ContentBlobUpsertBulk {
	return u.Update(func(s *ContentBlobUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *ContentBlobUpsertBulk) UpdateMimeType() *ContentBlobUpsertBulk {
	return u.Update(func(s *ContentBlobUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *ContentBlobUpsertBulk) ClearMimeType() *ContentBlobUpsertBulk {
	return u.Update(func(s *ContentBlobUpsert) {
		s.ClearMimeType()
	})
}

// Exec executes the query.
func (u *ContentBlobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContentBlobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContentBlobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContentBlobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
