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
	"github.com/anzhiyu-c/mediaflow/ent/asset"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// GenerationCreate is the builder for creating a Generation entity.
type GenerationCreate struct {
	config
	mutation *GenerationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (gc *GenerationCreate) SetCreatedAt(t time.Time) *GenerationCreate {
	gc.mutation.SetCreatedAt(t)
	return gc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (gc *GenerationCreate) SetNillableCreatedAt(t *time.Time) *GenerationCreate {
	if t != nil {
		gc.SetCreatedAt(*t)
	}
	return gc
}

// SetOwnerID sets the "owner_id" field.
func (gc *GenerationCreate) SetOwnerID(u uint) *GenerationCreate {
	gc.mutation.SetOwnerID(u)
	return gc
}

// SetOperationType sets the "operation_type" field.
func (gc *GenerationCreate) SetOperationType(s string) *GenerationCreate {
	gc.mutation.SetOperationType(s)
	return gc
}

// SetCanonicalParams sets the "canonical_params" field.
func (gc *GenerationCreate) SetCanonicalParams(mm model.JSONMap) *GenerationCreate {
	gc.mutation.SetCanonicalParams(mm)
	return gc
}

// SetInputs sets the "inputs" field.
func (gc *GenerationCreate) SetInputs(s []string) *GenerationCreate {
	gc.mutation.SetInputs(s)
	return gc
}

// SetReproHash sets the "repro_hash" field.
func (gc *GenerationCreate) SetReproHash(s string) *GenerationCreate {
	gc.mutation.SetReproHash(s)
	return gc
}

// SetID sets the "id" field.
func (gc *GenerationCreate) SetID(u uint) *GenerationCreate {
	gc.mutation.SetID(u)
	return gc
}

// AddAssetIDs adds the "assets" edge to the Asset entity by IDs.
func (gc *GenerationCreate) AddAssetIDs(ids ...uint) *GenerationCreate {
	gc.mutation.AddAssetIDs(ids...)
	return gc
}

// AddAssets adds the "assets" edges to the Asset entity.
func (gc *GenerationCreate) AddAssets(a ...*Asset) *GenerationCreate {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return gc.AddAssetIDs(ids...)
}

// Mutation returns the GenerationMutation object of the builder.
func (gc *GenerationCreate) Mutation() *GenerationMutation {
	return gc.mutation
}

// Save creates the Generation in the database.
func (gc *GenerationCreate) Save(ctx context.Context) (*Generation, error) {
	gc.defaults()
	return withHooks(ctx, gc.sqlSave, gc.mutation, gc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (gc *GenerationCreate) SaveX(ctx context.Context) *Generation {
	v, err := gc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gc *GenerationCreate) Exec(ctx context.Context) error {
	_, err := gc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gc *GenerationCreate) ExecX(ctx context.Context) {
	if err := gc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gc *GenerationCreate) defaults() {
	if _, ok := gc.mutation.CreatedAt(); !ok {
		v := generation.DefaultCreatedAt()
		gc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gc *GenerationCreate) check() error {
	if _, ok := gc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Generation.created_at"`)}
	}
	if _, ok := gc.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Generation.owner_id"`)}
	}
	if _, ok := gc.mutation.OperationType(); !ok {
		return &ValidationError{Name: "operation_type", err: errors.New(`ent: missing required field "Generation.operation_type"`)}
	}
	if v, ok := gc.mutation.OperationType(); ok {
		if err := generation.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "Generation.operation_type": %w`, err)}
		}
	}
	if _, ok := gc.mutation.ReproHash(); !ok {
		return &ValidationError{Name: "repro_hash", err: errors.New(`ent: missing required field "Generation.repro_hash"`)}
	}
	if v, ok := gc.mutation.ReproHash(); ok {
		if err := generation.ReproHashValidator(v); err != nil {
			return &ValidationError{Name: "repro_hash", err: fmt.Errorf(`ent: validator failed for field "Generation.repro_hash": %w`, err)}
		}
	}
	return nil
}

func (gc *GenerationCreate) sqlSave(ctx context.Context) (*Generation, error) {
	if err := gc.check(); err != nil {
		return nil, err
	}
	_node, _spec := gc.createSpec()
	if err := sqlgraph.CreateNode(ctx, gc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	gc.mutation.id = &_node.ID
	gc.mutation.done = true
	return _node, nil
}

func (gc *GenerationCreate) createSpec() (*Generation, *sqlgraph.CreateSpec) {
	var (
		_node = &Generation{config: gc.config}
		_spec = sqlgraph.NewCreateSpec(generation.Table, sqlgraph.NewFieldSpec(generation.FieldID, field.TypeUint))
	)
	_spec.OnConflict = gc.conflict
	if id, ok := gc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := gc.mutation.CreatedAt(); ok {
		_spec.SetField(generation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := gc.mutation.OwnerID(); ok {
		_spec.SetField(generation.FieldOwnerID, field.TypeUint, value)
		_node.OwnerID = value
	}
	if value, ok := gc.mutation.OperationType(); ok {
		_spec.SetField(generation.FieldOperationType, field.TypeString, value)
		_node.OperationType = value
	}
	if value, ok := gc.mutation.CanonicalParams(); ok {
		_spec.SetField(generation.FieldCanonicalParams, field.TypeOther, value)
		_node.CanonicalParams = value
	}
	if value, ok := gc.mutation.Inputs(); ok {
		_spec.SetField(generation.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := gc.mutation.ReproHash(); ok {
		_spec.SetField(generation.FieldReproHash, field.TypeString, value)
		_node.ReproHash = value
	}
	if nodes := gc.mutation.AssetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   generation.AssetsTable,
			Columns: []string{generation.AssetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(asset.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Generation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (gc *GenerationCreate) OnConflict(opts ...sql.ConflictOption) *GenerationUpsertOne {
	gc.conflict = opts
	return &GenerationUpsertOne{
		create: gc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Generation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (gc *GenerationCreate) OnConflictColumns(columns ...string) *GenerationUpsertOne {
	gc.conflict = append(gc.conflict, sql.ConflictColumns(columns...))
	return &GenerationUpsertOne{
		create: gc,
	}
}

type (
	// GenerationUpsertOne is the builder for "upsert"-ing
	//  one Generation node.
	GenerationUpsertOne struct {
		create *GenerationCreate
	}

	// GenerationUpsert is the "OnConflict" setter.
	GenerationUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerID sets the "owner_id" field.
func (u *GenerationUpsert) SetOwnerID(v uint) *GenerationUpsert {
	u.Set(generation.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *GenerationUpsert) UpdateOwnerID() *GenerationUpsert {
	u.SetExcluded(generation.FieldOwnerID)
	return u
}

// AddOwnerID adds v to the "owner_id" field.
func (u *GenerationUpsert) AddOwnerID(v uint) *GenerationUpsert {
	u.Add(generation.FieldOwnerID, v)
	return u
}

// SetOperationType sets the "operation_type" field.
func (u *GenerationUpsert) SetOperationType(v string) *GenerationUpsert {
	u.Set(generation.FieldOperationType, v)
	return u
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *GenerationUpsert) UpdateOperationType() *GenerationUpsert {
	u.SetExcluded(generation.FieldOperationType)
	return u
}

// SetCanonicalParams sets the "canonical_params" field.
func (u *GenerationUpsert) SetCanonicalParams(v model.JSONMap) *GenerationUpsert {
	u.Set(generation.FieldCanonicalParams, v)
	return u
}

// UpdateCanonicalParams sets the "canonical_params" field to the value that was provided on create.
func (u *GenerationUpsert) UpdateCanonicalParams() *GenerationUpsert {
	u.SetExcluded(generation.FieldCanonicalParams)
	return u
}

// ClearCanonicalParams clears the value of the "canonical_params" field.
func (u *GenerationUpsert) ClearCanonicalParams() *GenerationUpsert {
	u.SetNull(generation.FieldCanonicalParams)
	return u
}

// SetInputs sets the "inputs" field.
func (u *GenerationUpsert) SetInputs(v []string) *GenerationUpsert {
	u.Set(generation.FieldInputs, v)
	return u
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *GenerationUpsert) UpdateInputs() *GenerationUpsert {
	u.SetExcluded(generation.FieldInputs)
	return u
}

// ClearInputs clears the value of the "inputs" field.
func (u *GenerationUpsert) ClearInputs() *GenerationUpsert {
	u.SetNull(generation.FieldInputs)
	return u
}

// SetReproHash sets the "repro_hash" field.
func (u *GenerationUpsert) SetReproHash(v string) *GenerationUpsert {
	u.Set(generation.FieldReproHash, v)
	return u
}

// UpdateReproHash sets the "repro_hash" field to the value that was provided on create.
func (u *GenerationUpsert) UpdateReproHash() *GenerationUpsert {
	u.SetExcluded(generation.FieldReproHash)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Generation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GenerationUpsertOne) UpdateNewValues() *GenerationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(generation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(generation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Generation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GenerationUpsertOne) Ignore() *GenerationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationUpsertOne) DoNothing() *GenerationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationCreate.OnConflict
// documentation for more info.
func (u *GenerationUpsertOne) Update(set func(*GenerationUpsert)) *GenerationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *GenerationUpsertOne) SetOwnerID(v uint) *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.SetOwnerID(v)
	})
}

// AddOwnerID adds v to the "owner_id" field.
func (u *GenerationUpsertOne) AddOwnerID(v uint) *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.AddOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *GenerationUpsertOne) UpdateOwnerID() *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateOwnerID()
	})
}

// SetOperationType sets the "operation_type" field.
func (u *GenerationUpsertOne) SetOperationType(v string) *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.SetOperationType(v)
	})
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *GenerationUpsertOne) UpdateOperationType() *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateOperationType()
	})
}

// SetCanonicalParams sets the "canonical_params" field.
func (u *GenerationUpsertOne) SetCanonicalParams(v model.JSONMap) *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.SetCanonicalParams(v)
	})
}

// UpdateCanonicalParams sets the "canonical_params" field to the value that was provided on create.
func (u *GenerationUpsertOne) UpdateCanonicalParams() *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateCanonicalParams()
	})
}

// ClearCanonicalParams clears the value of the "canonical_params" field.
func (u *GenerationUpsertOne) ClearCanonicalParams() *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.ClearCanonicalParams()
	})
}

// SetInputs sets the "inputs" field.
func (u *GenerationUpsertOne) SetInputs(v []string) *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *GenerationUpsertOne) UpdateInputs() *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateInputs()
	})
}

// ClearInputs clears the value of the "inputs" field.
func (u *GenerationUpsertOne) ClearInputs() *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.ClearInputs()
	})
}

// SetReproHash sets the "repro_hash" field.
func (u *GenerationUpsertOne) SetReproHash(v string) *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.SetReproHash(v)
	})
}

// UpdateReproHash sets the "repro_hash" field to the value that was provided on create.
func (u *GenerationUpsertOne) UpdateReproHash() *GenerationUpsertOne {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateReproHash()
	})
}

// Exec executes the query.
func (u *GenerationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GenerationUpsertOne) ID(ctx context.Context) (id uint, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GenerationUpsertOne) IDX(ctx context.Context) uint {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerationCreateBulk is the builder for creating many Generation entities in bulk.
type GenerationCreateBulk struct {
	config
	err      error
	builders []*GenerationCreate
	conflict []sql.ConflictOption
}

// Save creates the Generation entities in the database.
func (gcb *GenerationCreateBulk) Save(ctx context.Context) ([]*Generation, error) {
	if gcb.err != nil {
		return nil, gcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(gcb.builders))
	nodes := make([]*Generation, len(gcb.builders))
	mutators := make([]Mutator, len(gcb.builders))
	for i := range gcb.builders {
		func(i int, root context.Context) {
			builder := gcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationMutation)
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
					_, err = mutators[i+1].Mutate(root, gcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = gcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, gcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, gcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (gcb *GenerationCreateBulk) SaveX(ctx context.Context) []*Generation {
	v, err := gcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gcb *GenerationCreateBulk) Exec(ctx context.Context) error {
	_, err := gcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gcb *GenerationCreateBulk) ExecX(ctx context.Context) {
	if err := gcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Generation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GenerationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (gcb *GenerationCreateBulk) OnConflict(opts ...sql.ConflictOption) *GenerationUpsertBulk {
	gcb.conflict = opts
	return &GenerationUpsertBulk{
		create: gcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Generation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (gcb *GenerationCreateBulk) OnConflictColumns(columns ...string) *GenerationUpsertBulk {
	gcb.conflict = append(gcb.conflict, sql.ConflictColumns(columns...))
	return &GenerationUpsertBulk{
		create: gcb,
	}
}

// GenerationUpsertBulk is the builder for "upsert"-ing
// a bulk of Generation nodes.
type GenerationUpsertBulk struct {
	create *GenerationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Generation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(generation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GenerationUpsertBulk) UpdateNewValues() *GenerationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(generation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(generation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Generation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GenerationUpsertBulk) Ignore() *GenerationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GenerationUpsertBulk) DoNothing() *GenerationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GenerationCreateBulk.OnConflict
// documentation for more info.
func (u *GenerationUpsertBulk) Update(set func(*GenerationUpsert)) *GenerationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GenerationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *GenerationUpsertBulk) SetOwnerID(v uint) *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.SetOwnerID(v)
	})
}

// AddOwnerID adds v to the "owner_id" field.
func (u *GenerationUpsertBulk) AddOwnerID(v uint) *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.AddOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *GenerationUpsertBulk) UpdateOwnerID() *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateOwnerID()
	})
}

// SetOperationType sets the "operation_type" field.
func (u *GenerationUpsertBulk) SetOperationType(v string) *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.SetOperationType(v)
	})
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *GenerationUpsertBulk) UpdateOperationType() *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateOperationType()
	})
}

// SetCanonicalParams sets the "canonical_params" field.
func (u *GenerationUpsertBulk) SetCanonicalParams(v model.JSONMap) *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.SetCanonicalParams(v)
	})
}

// UpdateCanonicalParams sets the "canonical_params" field to the value that was provided on create.
func (u *GenerationUpsertBulk) UpdateCanonicalParams() *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateCanonicalParams()
	})
}

// ClearCanonicalParams clears the value of the "canonical_params" field.
func (u *GenerationUpsertBulk) ClearCanonicalParams() *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.ClearCanonicalParams()
	})
}

// SetInputs sets the "inputs" field.
func (u *GenerationUpsertBulk) SetInputs(v []string) *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *GenerationUpsertBulk) UpdateInputs() *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateInputs()
	})
}

// ClearInputs clears the value of the "inputs" field.
func (u *GenerationUpsertBulk) ClearInputs() *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.ClearInputs()
	})
}

// SetReproHash sets the "repro_hash" field.
func (u *GenerationUpsertBulk) SetReproHash(v string) *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.SetReproHash(v)
	})
}

// UpdateReproHash sets the "repro_hash" field to the value that was provided on create.
func (u *GenerationUpsertBulk) UpdateReproHash() *GenerationUpsertBulk {
	return u.Update(func(s *GenerationUpsert) {
		s.UpdateReproHash()
	})
}

// Exec executes the query.
func (u *GenerationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GenerationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GenerationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GenerationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
