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
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
)

// LineageEdgeCreate is the builder for creating a LineageEdge entity.
type LineageEdgeCreate struct {
	config
	mutation *LineageEdgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (lec *LineageEdgeCreate) SetCreatedAt(t time.Time) *LineageEdgeCreate {
	lec.mutation.SetCreatedAt(t)
	return lec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableCreatedAt(t *time.Time) *LineageEdgeCreate {
	if t != nil {
		lec.SetCreatedAt(*t)
	}
	return lec
}

// SetChildID sets the "child_id" field.
func (lec *LineageEdgeCreate) SetChildID(u uint) *LineageEdgeCreate {
	lec.mutation.SetChildID(u)
	return lec
}

// SetParentID sets the "parent_id" field.
func (lec *LineageEdgeCreate) SetParentID(u uint) *LineageEdgeCreate {
	lec.mutation.SetParentID(u)
	return lec
}

// SetRelationType sets the "relation_type" field.
func (lec *LineageEdgeCreate) SetRelationType(s string) *LineageEdgeCreate {
	lec.mutation.SetRelationType(s)
	return lec
}

// SetOperationType sets the "operation_type" field.
func (lec *LineageEdgeCreate) SetOperationType(s string) *LineageEdgeCreate {
	lec.mutation.SetOperationType(s)
	return lec
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableOperationType(s *string) *LineageEdgeCreate {
	if s != nil {
		lec.SetOperationType(*s)
	}
	return lec
}

// SetSequenceOrder sets the "sequence_order" field.
func (lec *LineageEdgeCreate) SetSequenceOrder(i int) *LineageEdgeCreate {
	lec.mutation.SetSequenceOrder(i)
	return lec
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableSequenceOrder(i *int) *LineageEdgeCreate {
	if i != nil {
		lec.SetSequenceOrder(*i)
	}
	return lec
}

// SetParentTimeStart sets the "parent_time_start" field.
func (lec *LineageEdgeCreate) SetParentTimeStart(f float64) *LineageEdgeCreate {
	lec.mutation.SetParentTimeStart(f)
	return lec
}

// SetNillableParentTimeStart sets the "parent_time_start" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableParentTimeStart(f *float64) *LineageEdgeCreate {
	if f != nil {
		lec.SetParentTimeStart(*f)
	}
	return lec
}

// SetParentTimeEnd sets the "parent_time_end" field.
func (lec *LineageEdgeCreate) SetParentTimeEnd(f float64) *LineageEdgeCreate {
	lec.mutation.SetParentTimeEnd(f)
	return lec
}

// SetNillableParentTimeEnd sets the "parent_time_end" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableParentTimeEnd(f *float64) *LineageEdgeCreate {
	if f != nil {
		lec.SetParentTimeEnd(*f)
	}
	return lec
}

// SetParentFrame sets the "parent_frame" field.
func (lec *LineageEdgeCreate) SetParentFrame(i int64) *LineageEdgeCreate {
	lec.mutation.SetParentFrame(i)
	return lec
}

// SetNillableParentFrame sets the "parent_frame" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableParentFrame(i *int64) *LineageEdgeCreate {
	if i != nil {
		lec.SetParentFrame(*i)
	}
	return lec
}

// SetInfluenceType sets the "influence_type" field.
func (lec *LineageEdgeCreate) SetInfluenceType(s string) *LineageEdgeCreate {
	lec.mutation.SetInfluenceType(s)
	return lec
}

// SetNillableInfluenceType sets the "influence_type" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableInfluenceType(s *string) *LineageEdgeCreate {
	if s != nil {
		lec.SetInfluenceType(*s)
	}
	return lec
}

// SetInfluenceWeight sets the "influence_weight" field.
func (lec *LineageEdgeCreate) SetInfluenceWeight(f float64) *LineageEdgeCreate {
	lec.mutation.SetInfluenceWeight(f)
	return lec
}

// SetNillableInfluenceWeight sets the "influence_weight" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableInfluenceWeight(f *float64) *LineageEdgeCreate {
	if f != nil {
		lec.SetInfluenceWeight(*f)
	}
	return lec
}

// SetInfluenceRegion sets the "influence_region" field.
func (lec *LineageEdgeCreate) SetInfluenceRegion(s string) *LineageEdgeCreate {
	lec.mutation.SetInfluenceRegion(s)
	return lec
}

// SetNillableInfluenceRegion sets the "influence_region" field if the given value is not nil.
func (lec *LineageEdgeCreate) SetNillableInfluenceRegion(s *string) *LineageEdgeCreate {
	if s != nil {
		lec.SetInfluenceRegion(*s)
	}
	return lec
}

// SetID sets the "id" field.
func (lec *LineageEdgeCreate) SetID(u uint) *LineageEdgeCreate {
	lec.mutation.SetID(u)
	return lec
}

// Mutation returns the LineageEdgeMutation object of the builder.
func (lec *LineageEdgeCreate) Mutation() *LineageEdgeMutation {
	return lec.mutation
}

// Save creates the LineageEdge in the database.
func (lec *LineageEdgeCreate) Save(ctx context.Context) (*LineageEdge, error) {
	lec.defaults()
	return withHooks(ctx, lec.sqlSave, lec.mutation, lec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lec *LineageEdgeCreate) SaveX(ctx context.Context) *LineageEdge {
	v, err := lec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lec *LineageEdgeCreate) Exec(ctx context.Context) error {
	_, err := lec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lec *LineageEdgeCreate) ExecX(ctx context.Context) {
	if err := lec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lec *LineageEdgeCreate) defaults() {
	if _, ok := lec.mutation.CreatedAt(); !ok {
		v := lineageedge.DefaultCreatedAt()
		lec.mutation.SetCreatedAt(v)
	}
	if _, ok := lec.mutation.SequenceOrder(); !ok {
		v := lineageedge.DefaultSequenceOrder
		lec.mutation.SetSequenceOrder(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lec *LineageEdgeCreate) check() error {
	if _, ok := lec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LineageEdge.created_at"`)}
	}
	if _, ok := lec.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "LineageEdge.child_id"`)}
	}
	if _, ok := lec.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "LineageEdge.parent_id"`)}
	}
	if _, ok := lec.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "LineageEdge.relation_type"`)}
	}
	if v, ok := lec.mutation.RelationType(); ok {
		if err := lineageedge.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.relation_type": %w`, err)}
		}
	}
	if v, ok := lec.mutation.OperationType(); ok {
		if err := lineageedge.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.operation_type": %w`, err)}
		}
	}
	if _, ok := lec.mutation.SequenceOrder(); !ok {
		return &ValidationError{Name: "sequence_order", err: errors.New(`ent: missing required field "LineageEdge.sequence_order"`)}
	}
	if v, ok := lec.mutation.InfluenceType(); ok {
		if err := lineageedge.InfluenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "influence_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.influence_type": %w`, err)}
		}
	}
	if v, ok := lec.mutation.InfluenceRegion(); ok {
		if err := lineageedge.InfluenceRegionValidator(v); err != nil {
			return &ValidationError{Name: "influence_region", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.influence_region": %w`, err)}
		}
	}
	return nil
}

func (lec *LineageEdgeCreate) sqlSave(ctx context.Context) (*LineageEdge, error) {
	if err := lec.check(); err != nil {
		return nil, err
	}
	_node, _spec := lec.createSpec()
	if err := sqlgraph.CreateNode(ctx, lec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	lec.mutation.id = &_node.ID
	lec.mutation.done = true
	return _node, nil
}

func (lec *LineageEdgeCreate) createSpec() (*LineageEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &LineageEdge{config: lec.config}
		_spec = sqlgraph.NewCreateSpec(lineageedge.Table, sqlgraph.NewFieldSpec(lineageedge.FieldID, field.TypeUint))
	)
	_spec.OnConflict = lec.conflict
	if id, ok := lec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := lec.mutation.CreatedAt(); ok {
		_spec.SetField(lineageedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := lec.mutation.ChildID(); ok {
		_spec.SetField(lineageedge.FieldChildID, field.TypeUint, value)
		_node.ChildID = value
	}
	if value, ok := lec.mutation.ParentID(); ok {
		_spec.SetField(lineageedge.FieldParentID, field.TypeUint, value)
		_node.ParentID = value
	}
	if value, ok := lec.mutation.RelationType(); ok {
		_spec.SetField(lineageedge.FieldRelationType, field.TypeString, value)
		_node.RelationType = value
	}
	if value, ok := lec.mutation.OperationType(); ok {
		_spec.SetField(lineageedge.FieldOperationType, field.TypeString, value)
		_node.OperationType = value
	}
	if value, ok := lec.mutation.SequenceOrder(); ok {
		_spec.SetField(lineageedge.FieldSequenceOrder, field.TypeInt, value)
		_node.SequenceOrder = value
	}
	if value, ok := lec.mutation.ParentTimeStart(); ok {
		_spec.SetField(lineageedge.FieldParentTimeStart, field.TypeFloat64, value)
		_node.ParentTimeStart = &value
	}
	if value, ok := lec.mutation.ParentTimeEnd(); ok {
		_spec.SetField(lineageedge.FieldParentTimeEnd, field.TypeFloat64, value)
		_node.ParentTimeEnd = &value
	}
	if value, ok := lec.mutation.ParentFrame(); ok {
		_spec.SetField(lineageedge.FieldParentFrame, field.TypeInt64, value)
		_node.ParentFrame = &value
	}
	if value, ok := lec.mutation.InfluenceType(); ok {
		_spec.SetField(lineageedge.FieldInfluenceType, field.TypeString, value)
		_node.InfluenceType = value
	}
	if value, ok := lec.mutation.InfluenceWeight(); ok {
		_spec.SetField(lineageedge.FieldInfluenceWeight, field.TypeFloat64, value)
		_node.InfluenceWeight = &value
	}
	if value, ok := lec.mutation.InfluenceRegion(); ok {
		_spec.SetField(lineageedge.FieldInfluenceRegion, field.TypeString, value)
		_node.InfluenceRegion = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LineageEdge.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LineageEdgeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (lec *LineageEdgeCreate) OnConflict(opts ...sql.ConflictOption) *LineageEdgeUpsertOne {
	lec.conflict = opts
	return &LineageEdgeUpsertOne{
		create: lec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LineageEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lec *LineageEdgeCreate) OnConflictColumns(columns ...string) *LineageEdgeUpsertOne {
	lec.conflict = append(lec.conflict, sql.ConflictColumns(columns...))
	return &LineageEdgeUpsertOne{
		create: lec,
	}
}

type (
	// LineageEdgeUpsertOne is the builder for "upsert"-ing
	//  one LineageEdge node.
	LineageEdgeUpsertOne struct {
		create *LineageEdgeCreate
	}

	// LineageEdgeUpsert is the "OnConflict" setter.
	LineageEdgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetChildID sets the "child_id" field.
func (u *LineageEdgeUpsert) SetChildID(v uint) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldChildID, v)
	return u
}

// UpdateChildID sets the "child_id" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateChildID() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldChildID)
	return u
}

// AddChildID adds v to the "child_id" field.
func (u *LineageEdgeUpsert) AddChildID(v uint) *LineageEdgeUpsert {
	u.Add(lineageedge.FieldChildID, v)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *LineageEdgeUpsert) SetParentID(v uint) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateParentID() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldParentID)
	return u
}

// AddParentID adds v to the "parent_id" field.
func (u *LineageEdgeUpsert) AddParentID(v uint) *LineageEdgeUpsert {
	u.Add(lineageedge.FieldParentID, v)
	return u
}

// SetRelationType sets the "relation_type" field.
func (u *LineageEdgeUpsert) SetRelationType(v string) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldRelationType, v)
	return u
}

// UpdateRelationType sets the "relation_type" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateRelationType() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldRelationType)
	return u
}

// SetOperationType sets the "operation_type" field.
func (u *LineageEdgeUpsert) SetOperationType(v string) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldOperationType, v)
	return u
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateOperationType() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldOperationType)
	return u
}

// ClearOperationType clears the value of the "operation_type" field.
func (u *LineageEdgeUpsert) ClearOperationType() *LineageEdgeUpsert {
	u.SetNull(lineageedge.FieldOperationType)
	return u
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *LineageEdgeUpsert) SetSequenceOrder(v int) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldSequenceOrder, v)
	return u
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateSequenceOrder() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldSequenceOrder)
	return u
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *LineageEdgeUpsert) AddSequenceOrder(v int) *LineageEdgeUpsert {
	u.Add(lineageedge.FieldSequenceOrder, v)
	return u
}

// SetParentTimeStart sets the "parent_time_start" field.
func (u *LineageEdgeUpsert) SetParentTimeStart(v float64) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldParentTimeStart, v)
	return u
}

// UpdateParentTimeStart sets the "parent_time_start" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateParentTimeStart() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldParentTimeStart)
	return u
}

// AddParentTimeStart adds v to the "parent_time_start" field.
func (u *LineageEdgeUpsert) AddParentTimeStart(v float64) *LineageEdgeUpsert {
	u.Add(lineageedge.FieldParentTimeStart, v)
	return u
}

// ClearParentTimeStart clears the value of the "parent_time_start" field.
func (u *LineageEdgeUpsert) ClearParentTimeStart() *LineageEdgeUpsert {
	u.SetNull(lineageedge.FieldParentTimeStart)
	return u
}

// SetParentTimeEnd sets the "parent_time_end" field.
func (u *LineageEdgeUpsert) SetParentTimeEnd(v float64) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldParentTimeEnd, v)
	return u
}

// UpdateParentTimeEnd sets the "parent_time_end" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateParentTimeEnd() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldParentTimeEnd)
	return u
}

// AddParentTimeEnd adds v to the "parent_time_end" field.
func (u *LineageEdgeUpsert) AddParentTimeEnd(v float64) *LineageEdgeUpsert {
	u.Add(lineageedge.FieldParentTimeEnd, v)
	return u
}

// ClearParentTimeEnd clears the value of the "parent_time_end" field.
func (u *LineageEdgeUpsert) ClearParentTimeEnd() *LineageEdgeUpsert {
	u.SetNull(lineageedge.FieldParentTimeEnd)
	return u
}

// SetParentFrame sets the "parent_frame" field.
func (u *LineageEdgeUpsert) SetParentFrame(v int64) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldParentFrame, v)
	return u
}

// UpdateParentFrame sets the "parent_frame" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateParentFrame() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldParentFrame)
	return u
}

// AddParentFrame adds v to the "parent_frame" field.
func (u *LineageEdgeUpsert) AddParentFrame(v int64) *LineageEdgeUpsert {
	u.Add(lineageedge.FieldParentFrame, v)
	return u
}

// ClearParentFrame clears the value of the "parent_frame" field.
func (u *LineageEdgeUpsert) ClearParentFrame() *LineageEdgeUpsert {
	u.SetNull(lineageedge.FieldParentFrame)
	return u
}

// SetInfluenceType sets the "influence_type" field.
func (u *LineageEdgeUpsert) SetInfluenceType(v string) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldInfluenceType, v)
	return u
}

// UpdateInfluenceType sets the "influence_type" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateInfluenceType() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldInfluenceType)
	return u
}

// ClearInfluenceType clears the value of the "influence_type" field.
func (u *LineageEdgeUpsert) ClearInfluenceType() *LineageEdgeUpsert {
	u.SetNull(lineageedge.FieldInfluenceType)
	return u
}

// SetInfluenceWeight sets the "influence_weight" field.
func (u *LineageEdgeUpsert) SetInfluenceWeight(v float64) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldInfluenceWeight, v)
	return u
}

// UpdateInfluenceWeight sets the "influence_weight" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateInfluenceWeight() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldInfluenceWeight)
	return u
}

// AddInfluenceWeight adds v to the "influence_weight" field.
func (u *LineageEdgeUpsert) AddInfluenceWeight(v float64) *LineageEdgeUpsert {
	u.Add(lineageedge.FieldInfluenceWeight, v)
	return u
}

// ClearInfluenceWeight clears the value of the "influence_weight" field.
func (u *LineageEdgeUpsert) ClearInfluenceWeight() *LineageEdgeUpsert {
	u.SetNull(lineageedge.FieldInfluenceWeight)
	return u
}

// SetInfluenceRegion sets the "influence_region" field.
func (u *LineageEdgeUpsert) SetInfluenceRegion(v string) *LineageEdgeUpsert {
	u.Set(lineageedge.FieldInfluenceRegion, v)
	return u
}

// UpdateInfluenceRegion sets the "influence_region" field to the value that was provided on create.
func (u *LineageEdgeUpsert) UpdateInfluenceRegion() *LineageEdgeUpsert {
	u.SetExcluded(lineageedge.FieldInfluenceRegion)
	return u
}

// ClearInfluenceRegion clears the value of the "influence_region" field.
func (u *LineageEdgeUpsert) ClearInfluenceRegion() *LineageEdgeUpsert {
	u.SetNull(lineageedge.FieldInfluenceRegion)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LineageEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lineageedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LineageEdgeUpsertOne) UpdateNewValues() *LineageEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lineageedge.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lineageedge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LineageEdge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LineageEdgeUpsertOne) Ignore() *LineageEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LineageEdgeUpsertOne) DoNothing() *LineageEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LineageEdgeCreate.OnConflict
// documentation for more info.
func (u *LineageEdgeUpsertOne) Update(set func(*LineageEdgeUpsert)) *LineageEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LineageEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetChildID sets the "child_id" field.
func (u *LineageEdgeUpsertOne) SetChildID(v uint) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetChildID(v)
	})
}

// AddChildID adds v to the "child_id" field.
func (u *LineageEdgeUpsertOne) AddChildID(v uint) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddChildID(v)
	})
}

// UpdateChildID sets the "child_id" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateChildID() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateChildID()
	})
}

// SetParentID sets the "parent_id" field.
func (u *LineageEdgeUpsertOne) SetParentID(v uint) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentID(v)
	})
}

// AddParentID adds v to the "parent_id" field.
func (u *LineageEdgeUpsertOne) AddParentID(v uint) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateParentID() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentID()
	})
}

// SetRelationType sets the "relation_type" field.
func (u *LineageEdgeUpsertOne) SetRelationType(v string) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetRelationType(v)
	})
}

// UpdateRelationType sets the "relation_type" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateRelationType() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateRelationType()
	})
}

// SetOperationType sets the "operation_type" field.
func (u *LineageEdgeUpsertOne) SetOperationType(v string) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetOperationType(v)
	})
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateOperationType() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateOperationType()
	})
}

// ClearOperationType clears the value of the "operation_type" field.
func (u *LineageEdgeUpsertOne) ClearOperationType() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearOperationType()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *LineageEdgeUpsertOne) SetSequenceOrder(v int) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *LineageEdgeUpsertOne) AddSequenceOrder(v int) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateSequenceOrder() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateSequenceOrder()
	})
}

// SetParentTimeStart sets the "parent_time_start" field.
func (u *LineageEdgeUpsertOne) SetParentTimeStart(v float64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentTimeStart(v)
	})
}

// AddParentTimeStart adds v to the "parent_time_start" field.
func (u *LineageEdgeUpsertOne) AddParentTimeStart(v float64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentTimeStart(v)
	})
}

// UpdateParentTimeStart sets the "parent_time_start" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateParentTimeStart() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentTimeStart()
	})
}

// ClearParentTimeStart clears the value of the "parent_time_start" field.
func (u *LineageEdgeUpsertOne) ClearParentTimeStart() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearParentTimeStart()
	})
}

// SetParentTimeEnd sets the "parent_time_end" field.
func (u *LineageEdgeUpsertOne) SetParentTimeEnd(v float64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentTimeEnd(v)
	})
}

// AddParentTimeEnd adds v to the "parent_time_end" field.
func (u *LineageEdgeUpsertOne) AddParentTimeEnd(v float64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentTimeEnd(v)
	})
}

// UpdateParentTimeEnd sets the "parent_time_end" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateParentTimeEnd() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentTimeEnd()
	})
}

// ClearParentTimeEnd clears the value of the "parent_time_end" field.
func (u *LineageEdgeUpsertOne) ClearParentTimeEnd() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearParentTimeEnd()
	})
}

// SetParentFrame sets the "parent_frame" field.
func (u *LineageEdgeUpsertOne) SetParentFrame(v int64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentFrame(v)
	})
}

// AddParentFrame adds v to the "parent_frame" field.
func (u *LineageEdgeUpsertOne) AddParentFrame(v int64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentFrame(v)
	})
}

// UpdateParentFrame sets the "parent_frame" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateParentFrame() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentFrame()
	})
}

// ClearParentFrame clears the value of the "parent_frame" field.
func (u *LineageEdgeUpsertOne) ClearParentFrame() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearParentFrame()
	})
}

// SetInfluenceType sets the "influence_type" field.
func (u *LineageEdgeUpsertOne) SetInfluenceType(v string) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetInfluenceType(v)
	})
}

// UpdateInfluenceType sets the "influence_type" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateInfluenceType() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateInfluenceType()
	})
}

// ClearInfluenceType clears the value of the "influence_type" field.
func (u *LineageEdgeUpsertOne) ClearInfluenceType() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearInfluenceType()
	})
}

// SetInfluenceWeight sets the "influence_weight" field.
func (u *LineageEdgeUpsertOne) SetInfluenceWeight(v float64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetInfluenceWeight(v)
	})
}

// AddInfluenceWeight adds v to the "influence_weight" field.
func (u *LineageEdgeUpsertOne) AddInfluenceWeight(v float64) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddInfluenceWeight(v)
	})
}

// UpdateInfluenceWeight sets the "influence_weight" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateInfluenceWeight() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateInfluenceWeight()
	})
}

// ClearInfluenceWeight clears the value of the "influence_weight" field.
func (u *LineageEdgeUpsertOne) ClearInfluenceWeight() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearInfluenceWeight()
	})
}

// SetInfluenceRegion sets the "influence_region" field.
func (u *LineageEdgeUpsertOne) SetInfluenceRegion(v string) *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetInfluenceRegion(v)
	})
}

// UpdateInfluenceRegion sets the "influence_region" field to the value that was provided on create.
func (u *LineageEdgeUpsertOne) UpdateInfluenceRegion() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateInfluenceRegion()
	})
}

// ClearInfluenceRegion clears the value of the "influence_region" field.
func (u *LineageEdgeUpsertOne) ClearInfluenceRegion() *LineageEdgeUpsertOne {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearInfluenceRegion()
	})
}

// Exec executes the query.
func (u *LineageEdgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LineageEdgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LineageEdgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LineageEdgeUpsertOne) ID(ctx context.Context) (id uint, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LineageEdgeUpsertOne) IDX(ctx context.Context) uint {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LineageEdgeCreateBulk is the builder for creating many LineageEdge entities in bulk.
type LineageEdgeCreateBulk struct {
	config
	err      error
	builders []*LineageEdgeCreate
	conflict []sql.ConflictOption
}

// Save creates the LineageEdge entities in the database.
func (lecb *LineageEdgeCreateBulk) Save(ctx context.Context) ([]*LineageEdge, error) {
	if lecb.err != nil {
		return nil, lecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lecb.builders))
	nodes := make([]*LineageEdge, len(lecb.builders))
	mutators := make([]Mutator, len(lecb.builders))
	for i := range lecb.builders {
		func(i int, root context.Context) {
			builder := lecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LineageEdgeMutation)
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
					_, err = mutators[i+1].Mutate(root, lecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = lecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lecb *LineageEdgeCreateBulk) SaveX(ctx context.Context) []*LineageEdge {
	v, err := lecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lecb *LineageEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := lecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lecb *LineageEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := lecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LineageEdge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LineageEdgeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (lecb *LineageEdgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *LineageEdgeUpsertBulk {
	lecb.conflict = opts
	return &LineageEdgeUpsertBulk{
		create: lecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LineageEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lecb *LineageEdgeCreateBulk) OnConflictColumns(columns ...string) *LineageEdgeUpsertBulk {
	lecb.conflict = append(lecb.conflict, sql.ConflictColumns(columns...))
	return &LineageEdgeUpsertBulk{
		create: lecb,
	}
}

// LineageEdgeUpsertBulk is the builder for "upsert"-ing
// a bulk of LineageEdge nodes.
type LineageEdgeUpsertBulk struct {
	create *LineageEdgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LineageEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lineageedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LineageEdgeUpsertBulk) UpdateNewValues() *LineageEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lineageedge.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lineageedge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LineageEdge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LineageEdgeUpsertBulk) Ignore() *LineageEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LineageEdgeUpsertBulk) DoNothing() *LineageEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LineageEdgeCreateBulk.OnConflict
// documentation for more info.
func (u *LineageEdgeUpsertBulk) Update(set func(*LineageEdgeUpsert)) *LineageEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LineageEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetChildID sets the "child_id" field.
func (u *LineageEdgeUpsertBulk) SetChildID(v uint) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetChildID(v)
	})
}

// AddChildID adds v to the "child_id" field.
func (u *LineageEdgeUpsertBulk) AddChildID(v uint) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddChildID(v)
	})
}

// UpdateChildID sets the "child_id" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateChildID() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateChildID()
	})
}

// SetParentID sets the "parent_id" field.
func (u *LineageEdgeUpsertBulk) SetParentID(v uint) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentID(v)
	})
}

// AddParentID adds v to the "parent_id" field.
func (u *LineageEdgeUpsertBulk) AddParentID(v uint) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateParentID() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentID()
	})
}

// SetRelationType sets the "relation_type" field.
func (u *LineageEdgeUpsertBulk) SetRelationType(v string) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetRelationType(v)
	})
}

// UpdateRelationType sets the "relation_type" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateRelationType() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateRelationType()
	})
}

// SetOperationType sets the "operation_type" field.
func (u *LineageEdgeUpsertBulk) SetOperationType(v string) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetOperationType(v)
	})
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateOperationType() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateOperationType()
	})
}

// ClearOperationType clears the value of the "operation_type" field.
func (u *LineageEdgeUpsertBulk) ClearOperationType() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearOperationType()
	})
}

// SetSequenceOrder sets the "sequence_order" field.
func (u *LineageEdgeUpsertBulk) SetSequenceOrder(v int) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetSequenceOrder(v)
	})
}

// AddSequenceOrder adds v to the "sequence_order" field.
func (u *LineageEdgeUpsertBulk) AddSequenceOrder(v int) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddSequenceOrder(v)
	})
}

// UpdateSequenceOrder sets the "sequence_order" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateSequenceOrder() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateSequenceOrder()
	})
}

// SetParentTimeStart sets the "parent_time_start" field.
func (u *LineageEdgeUpsertBulk) SetParentTimeStart(v float64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentTimeStart(v)
	})
}

// AddParentTimeStart adds v to the "parent_time_start" field.
func (u *LineageEdgeUpsertBulk) AddParentTimeStart(v float64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentTimeStart(v)
	})
}

// UpdateParentTimeStart sets the "parent_time_start" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateParentTimeStart() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentTimeStart()
	})
}

// ClearParentTimeStart clears the value of the "parent_time_start" field.
func (u *LineageEdgeUpsertBulk) ClearParentTimeStart() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearParentTimeStart()
	})
}

// SetParentTimeEnd sets the "parent_time_end" field.
func (u *LineageEdgeUpsertBulk) SetParentTimeEnd(v float64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentTimeEnd(v)
	})
}

// AddParentTimeEnd adds v to the "parent_time_end" field.
func (u *LineageEdgeUpsertBulk) AddParentTimeEnd(v float64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentTimeEnd(v)
	})
}

// UpdateParentTimeEnd sets the "parent_time_end" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateParentTimeEnd() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentTimeEnd()
	})
}

// ClearParentTimeEnd clears the value of the "parent_time_end" field.
func (u *LineageEdgeUpsertBulk) ClearParentTimeEnd() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearParentTimeEnd()
	})
}

// SetParentFrame sets the "parent_frame" field.
func (u *LineageEdgeUpsertBulk) SetParentFrame(v int64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetParentFrame(v)
	})
}

// AddParentFrame adds v to the "parent_frame" field.
func (u *LineageEdgeUpsertBulk) AddParentFrame(v int64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddParentFrame(v)
	})
}

// UpdateParentFrame sets the "parent_frame" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateParentFrame() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateParentFrame()
	})
}

// ClearParentFrame clears the value of the "parent_frame" field.
func (u *LineageEdgeUpsertBulk) ClearParentFrame() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearParentFrame()
	})
}

// SetInfluenceType sets the "influence_type" field.
func (u *LineageEdgeUpsertBulk) SetInfluenceType(v string) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetInfluenceType(v)
	})
}

// UpdateInfluenceType sets the "influence_type" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateInfluenceType() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateInfluenceType()
	})
}

// ClearInfluenceType clears the value of the "influence_type" field.
func (u *LineageEdgeUpsertBulk) ClearInfluenceType() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearInfluenceType()
	})
}

// SetInfluenceWeight sets the "influence_weight" field.
func (u *LineageEdgeUpsertBulk) SetInfluenceWeight(v float64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetInfluenceWeight(v)
	})
}

// AddInfluenceWeight adds v to the "influence_weight" field.
func (u *LineageEdgeUpsertBulk) AddInfluenceWeight(v float64) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.AddInfluenceWeight(v)
	})
}

// UpdateInfluenceWeight sets the "influence_weight" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateInfluenceWeight() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateInfluenceWeight()
	})
}

// ClearInfluenceWeight clears the value of the "influence_weight" field.
func (u *LineageEdgeUpsertBulk) ClearInfluenceWeight() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearInfluenceWeight()
	})
}

// SetInfluenceRegion sets the "influence_region" field.
func (u *LineageEdgeUpsertBulk) SetInfluenceRegion(v string) *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.SetInfluenceRegion(v)
	})
}

// UpdateInfluenceRegion sets the "influence_region" field to the value that was provided on create.
func (u *LineageEdgeUpsertBulk) UpdateInfluenceRegion() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.UpdateInfluenceRegion()
	})
}

// ClearInfluenceRegion clears the value of the "influence_region" field.
func (u *LineageEdgeUpsertBulk) ClearInfluenceRegion() *LineageEdgeUpsertBulk {
	return u.Update(func(s *LineageEdgeUpsert) {
		s.ClearInfluenceRegion()
	})
}

// Exec executes the query.
func (u *LineageEdgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LineageEdgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LineageEdgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LineageEdgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
