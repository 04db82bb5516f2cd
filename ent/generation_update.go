// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/asset"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// GenerationUpdate is the builder for updating Generation entities.
type GenerationUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationMutation
}

// Where appends a list predicates to the GenerationUpdate builder.
func (gu *GenerationUpdate) Where(ps ...predicate.Generation) *GenerationUpdate {
	gu.mutation.Where(ps...)
	return gu
}

// SetOwnerID sets the "owner_id" field.
func (gu *GenerationUpdate) SetOwnerID(u uint) *GenerationUpdate {
	gu.mutation.ResetOwnerID()
	gu.mutation.SetOwnerID(u)
	return gu
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (gu *GenerationUpdate) SetNillableOwnerID(u *uint) *GenerationUpdate {
	if u != nil {
		gu.SetOwnerID(*u)
	}
	return gu
}

// AddOwnerID adds u to the "owner_id" field.
func (gu *GenerationUpdate) AddOwnerID(u int) *GenerationUpdate {
	gu.mutation.AddOwnerID(u)
	return gu
}

// SetOperationType sets the "operation_type" field.
func (gu *GenerationUpdate) SetOperationType(s string) *GenerationUpdate {
	gu.mutation.SetOperationType(s)
	return gu
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (gu *GenerationUpdate) SetNillableOperationType(s *string) *GenerationUpdate {
	if s != nil {
		gu.SetOperationType(*s)
	}
	return gu
}

// SetCanonicalParams sets the "canonical_params" field.
func (gu *GenerationUpdate) SetCanonicalParams(mm model.JSONMap) *GenerationUpdate {
	gu.mutation.SetCanonicalParams(mm)
	return gu
}

// ClearCanonicalParams clears the value of the "canonical_params" field.
func (gu *GenerationUpdate) ClearCanonicalParams() *GenerationUpdate {
	gu.mutation.ClearCanonicalParams()
	return gu
}

// SetInputs sets the "inputs" field.
func (gu *GenerationUpdate) SetInputs(s []string) *GenerationUpdate {
	gu.mutation.SetInputs(s)
	return gu
}

// AppendInputs appends s to the "inputs" field.
func (gu *GenerationUpdate) AppendInputs(s []string) *GenerationUpdate {
	gu.mutation.AppendInputs(s)
	return gu
}

// ClearInputs clears the value of the "inputs" field.
func (gu *GenerationUpdate) ClearInputs() *GenerationUpdate {
	gu.mutation.ClearInputs()
	return gu
}

// SetReproHash sets the "repro_hash" field.
func (gu *GenerationUpdate) SetReproHash(s string) *GenerationUpdate {
	gu.mutation.SetReproHash(s)
	return gu
}

// SetNillableReproHash sets the "repro_hash" field if the given value is not nil.
func (gu *GenerationUpdate) SetNillableReproHash(s *string) *GenerationUpdate {
	if s != nil {
		gu.SetReproHash(*s)
	}
	return gu
}

// AddAssetIDs adds the "assets" edge to the Asset entity by IDs.
func (gu *GenerationUpdate) AddAssetIDs(ids ...uint) *GenerationUpdate {
	gu.mutation.AddAssetIDs(ids...)
	return gu
}

// AddAssets adds the "assets" edges to the Asset entity.
func (gu *GenerationUpdate) AddAssets(a ...*Asset) *GenerationUpdate {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return gu.AddAssetIDs(ids...)
}

// Mutation returns the GenerationMutation object of the builder.
func (gu *GenerationUpdate) Mutation() *GenerationMutation {
	return gu.mutation
}

// ClearAssets clears all "assets" edges to the Asset entity.
func (gu *GenerationUpdate) ClearAssets() *GenerationUpdate {
	gu.mutation.ClearAssets()
	return gu
}

// RemoveAssetIDs removes the "assets" edge to Asset entities by IDs.
func (gu *GenerationUpdate) RemoveAssetIDs(ids ...uint) *GenerationUpdate {
	gu.mutation.RemoveAssetIDs(ids...)
	return gu
}

// RemoveAssets removes "assets" edges to Asset entities.
func (gu *GenerationUpdate) RemoveAssets(a ...*Asset) *GenerationUpdate {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return gu.RemoveAssetIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gu *GenerationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, gu.sqlSave, gu.mutation, gu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gu *GenerationUpdate) SaveX(ctx context.Context) int {
	affected, err := gu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gu *GenerationUpdate) Exec(ctx context.Context) error {
	_, err := gu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gu *GenerationUpdate) ExecX(ctx context.Context) {
	if err := gu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gu *GenerationUpdate) check() error {
	if v, ok := gu.mutation.OperationType(); ok {
		if err := generation.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "Generation.operation_type": %w`, err)}
		}
	}
	if v, ok := gu.mutation.ReproHash(); ok {
		if err := generation.ReproHashValidator(v); err != nil {
			return &ValidationError{Name: "repro_hash", err: fmt.Errorf(`ent: validator failed for field "Generation.repro_hash": %w`, err)}
		}
	}
	return nil
}

func (gu *GenerationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := gu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(generation.Table, generation.Columns, sqlgraph.NewFieldSpec(generation.FieldID, field.TypeUint))
	if ps := gu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gu.mutation.OwnerID(); ok {
		_spec.SetField(generation.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := gu.mutation.AddedOwnerID(); ok {
		_spec.AddField(generation.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := gu.mutation.OperationType(); ok {
		_spec.SetField(generation.FieldOperationType, field.TypeString, value)
	}
	if value, ok := gu.mutation.CanonicalParams(); ok {
		_spec.SetField(generation.FieldCanonicalParams, field.TypeOther, value)
	}
	if gu.mutation.CanonicalParamsCleared() {
		_spec.ClearField(generation.FieldCanonicalParams, field.TypeOther)
	}
	if value, ok := gu.mutation.Inputs(); ok {
		_spec.SetField(generation.FieldInputs, field.TypeJSON, value)
	}
	if value, ok := gu.mutation.AppendedInputs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generation.FieldInputs, value)
		})
	}
	if gu.mutation.InputsCleared() {
		_spec.ClearField(generation.FieldInputs, field.TypeJSON)
	}
	if value, ok := gu.mutation.ReproHash(); ok {
		_spec.SetField(generation.FieldReproHash, field.TypeString, value)
	}
	if gu.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := gu.mutation.RemovedAssetsIDs(); len(nodes) > 0 && !gu.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := gu.mutation.AssetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, gu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gu.mutation.done = true
	return n, nil
}

// GenerationUpdateOne is the builder for updating a single Generation entity.
type GenerationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationMutation
}

// SetOwnerID sets the "owner_id" field.
func (guo *GenerationUpdateOne) SetOwnerID(u uint) *GenerationUpdateOne {
	guo.mutation.ResetOwnerID()
	guo.mutation.SetOwnerID(u)
	return guo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (guo *GenerationUpdateOne) SetNillableOwnerID(u *uint) *GenerationUpdateOne {
	if u != nil {
		guo.SetOwnerID(*u)
	}
	return guo
}

// AddOwnerID adds u to the "owner_id" field.
func (guo *GenerationUpdateOne) AddOwnerID(u int) *GenerationUpdateOne {
	guo.mutation.AddOwnerID(u)
	return guo
}

// SetOperationType sets the "operation_type" field.
func (guo *GenerationUpdateOne) SetOperationType(s string) *GenerationUpdateOne {
	guo.mutation.SetOperationType(s)
	return guo
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (guo *GenerationUpdateOne) SetNillableOperationType(s *string) *GenerationUpdateOne {
	if s != nil {
		guo.SetOperationType(*s)
	}
	return guo
}

// SetCanonicalParams sets the "canonical_params" field.
func (guo *GenerationUpdateOne) SetCanonicalParams(mm model.JSONMap) *GenerationUpdateOne {
	guo.mutation.SetCanonicalParams(mm)
	return guo
}

// ClearCanonicalParams clears the value of the "canonical_params" field.
func (guo *GenerationUpdateOne) ClearCanonicalParams() *GenerationUpdateOne {
	guo.mutation.ClearCanonicalParams()
	return guo
}

// SetInputs sets the "inputs" field.
func (guo *GenerationUpdateOne) SetInputs(s []string) *GenerationUpdateOne {
	guo.mutation.SetInputs(s)
	return guo
}

// AppendInputs appends s to the "inputs" field.
func (guo *GenerationUpdateOne) AppendInputs(s []string) *GenerationUpdateOne {
	guo.mutation.AppendInputs(s)
	return guo
}

// ClearInputs clears the value of the "inputs" field.
func (guo *GenerationUpdateOne) ClearInputs() *GenerationUpdateOne {
	guo.mutation.ClearInputs()
	return guo
}

// SetReproHash sets the "repro_hash" field.
func (guo *GenerationUpdateOne) SetReproHash(s string) *GenerationUpdateOne {
	guo.mutation.SetReproHash(s)
	return guo
}

// SetNillableReproHash sets the "repro_hash" field if the given value is not nil.
func (guo *GenerationUpdateOne) SetNillableReproHash(s *string) *GenerationUpdateOne {
	if s != nil {
		guo.SetReproHash(*s)
	}
	return guo
}

// AddAssetIDs adds the "assets" edge to the Asset entity by IDs.
func (guo *GenerationUpdateOne) AddAssetIDs(ids ...uint) *GenerationUpdateOne {
	guo.mutation.AddAssetIDs(ids...)
	return guo
}

// AddAssets adds the "assets" edges to the Asset entity.
func (guo *GenerationUpdateOne) AddAssets(a ...*Asset) *GenerationUpdateOne {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return guo.AddAssetIDs(ids...)
}

// Mutation returns the GenerationMutation object of the builder.
func (guo *GenerationUpdateOne) Mutation() *GenerationMutation {
	return guo.mutation
}

// ClearAssets clears all "assets" edges to the Asset entity.
func (guo *GenerationUpdateOne) ClearAssets() *GenerationUpdateOne {
	guo.mutation.ClearAssets()
	return guo
}

// RemoveAssetIDs removes the "assets" edge to Asset entities by IDs.
func (guo *GenerationUpdateOne) RemoveAssetIDs(ids ...uint) *GenerationUpdateOne {
	guo.mutation.RemoveAssetIDs(ids...)
	return guo
}

// RemoveAssets removes "assets" edges to Asset entities.
func (guo *GenerationUpdateOne) RemoveAssets(a ...*Asset) *GenerationUpdateOne {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return guo.RemoveAssetIDs(ids...)
}

// Where appends a list predicates to the GenerationUpdate builder.
func (guo *GenerationUpdateOne) Where(ps ...predicate.Generation) *GenerationUpdateOne {
	guo.mutation.Where(ps...)
	return guo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (guo *GenerationUpdateOne) Select(field string, fields ...string) *GenerationUpdateOne {
	guo.fields = append([]string{field}, fields...)
	return guo
}

// Save executes the query and returns the updated Generation entity.
func (guo *GenerationUpdateOne) Save(ctx context.Context) (*Generation, error) {
	return withHooks(ctx, guo.sqlSave, guo.mutation, guo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (guo *GenerationUpdateOne) SaveX(ctx context.Context) *Generation {
	node, err := guo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (guo *GenerationUpdateOne) Exec(ctx context.Context) error {
	_, err := guo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (guo *GenerationUpdateOne) ExecX(ctx context.Context) {
	if err := guo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (guo *GenerationUpdateOne) check() error {
	if v, ok := guo.mutation.OperationType(); ok {
		if err := generation.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "Generation.operation_type": %w`, err)}
		}
	}
	if v, ok := guo.mutation.ReproHash(); ok {
		if err := generation.ReproHashValidator(v); err != nil {
			return &ValidationError{Name: "repro_hash", err: fmt.Errorf(`ent: validator failed for field "Generation.repro_hash": %w`, err)}
		}
	}
	return nil
}

func (guo *GenerationUpdateOne) sqlSave(ctx context.Context) (_node *Generation, err error) {
	if err := guo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generation.Table, generation.Columns, sqlgraph.NewFieldSpec(generation.FieldID, field.TypeUint))
	id, ok := guo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Generation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := guo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generation.FieldID)
		for _, f := range fields {
			if !generation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := guo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := guo.mutation.OwnerID(); ok {
		_spec.SetField(generation.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := guo.mutation.AddedOwnerID(); ok {
		_spec.AddField(generation.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := guo.mutation.OperationType(); ok {
		_spec.SetField(generation.FieldOperationType, field.TypeString, value)
	}
	if value, ok := guo.mutation.CanonicalParams(); ok {
		_spec.SetField(generation.FieldCanonicalParams, field.TypeOther, value)
	}
	if guo.mutation.CanonicalParamsCleared() {
		_spec.ClearField(generation.FieldCanonicalParams, field.TypeOther)
	}
	if value, ok := guo.mutation.Inputs(); ok {
		_spec.SetField(generation.FieldInputs, field.TypeJSON, value)
	}
	if value, ok := guo.mutation.AppendedInputs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, generation.FieldInputs, value)
		})
	}
	if guo.mutation.InputsCleared() {
		_spec.ClearField(generation.FieldInputs, field.TypeJSON)
	}
	if value, ok := guo.mutation.ReproHash(); ok {
		_spec.SetField(generation.FieldReproHash, field.TypeString, value)
	}
	if guo.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := guo.mutation.RemovedAssetsIDs(); len(nodes) > 0 && !guo.mutation.AssetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := guo.mutation.AssetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Generation{config: guo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, guo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	guo.mutation.done = true
	return _node, nil
}
