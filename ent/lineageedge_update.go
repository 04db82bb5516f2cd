// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
)

// LineageEdgeUpdate is the builder for updating LineageEdge entities.
type LineageEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *LineageEdgeMutation
}

// Where appends a list predicates to the LineageEdgeUpdate builder.
func (leu *LineageEdgeUpdate) Where(ps ...predicate.LineageEdge) *LineageEdgeUpdate {
	leu.mutation.Where(ps...)
	return leu
}

// SetChildID sets the "child_id" field.
func (leu *LineageEdgeUpdate) SetChildID(u uint) *LineageEdgeUpdate {
	leu.mutation.ResetChildID()
	leu.mutation.SetChildID(u)
	return leu
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableChildID(u *uint) *LineageEdgeUpdate {
	if u != nil {
		leu.SetChildID(*u)
	}
	return leu
}

// AddChildID adds u to the "child_id" field.
func (leu *LineageEdgeUpdate) AddChildID(u int) *LineageEdgeUpdate {
	leu.mutation.AddChildID(u)
	return leu
}

// SetParentID sets the "parent_id" field.
func (leu *LineageEdgeUpdate) SetParentID(u uint) *LineageEdgeUpdate {
	leu.mutation.ResetParentID()
	leu.mutation.SetParentID(u)
	return leu
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableParentID(u *uint) *LineageEdgeUpdate {
	if u != nil {
		leu.SetParentID(*u)
	}
	return leu
}

// AddParentID adds u to the "parent_id" field.
func (leu *LineageEdgeUpdate) AddParentID(u int) *LineageEdgeUpdate {
	leu.mutation.AddParentID(u)
	return leu
}

// SetRelationType sets the "relation_type" field.
func (leu *LineageEdgeUpdate) SetRelationType(s string) *LineageEdgeUpdate {
	leu.mutation.SetRelationType(s)
	return leu
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableRelationType(s *string) *LineageEdgeUpdate {
	if s != nil {
		leu.SetRelationType(*s)
	}
	return leu
}

// SetOperationType sets the "operation_type" field.
func (leu *LineageEdgeUpdate) SetOperationType(s string) *LineageEdgeUpdate {
	leu.mutation.SetOperationType(s)
	return leu
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableOperationType(s *string) *LineageEdgeUpdate {
	if s != nil {
		leu.SetOperationType(*s)
	}
	return leu
}

// ClearOperationType clears the value of the "operation_type" field.
func (leu *LineageEdgeUpdate) ClearOperationType() *LineageEdgeUpdate {
	leu.mutation.ClearOperationType()
	return leu
}

// SetSequenceOrder sets the "sequence_order" field.
func (leu *LineageEdgeUpdate) SetSequenceOrder(i int) *LineageEdgeUpdate {
	leu.mutation.ResetSequenceOrder()
	leu.mutation.SetSequenceOrder(i)
	return leu
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableSequenceOrder(i *int) *LineageEdgeUpdate {
	if i != nil {
		leu.SetSequenceOrder(*i)
	}
	return leu
}

// AddSequenceOrder adds i to the "sequence_order" field.
func (leu *LineageEdgeUpdate) AddSequenceOrder(i int) *LineageEdgeUpdate {
	leu.mutation.AddSequenceOrder(i)
	return leu
}

// SetParentTimeStart sets the "parent_time_start" field.
func (leu *LineageEdgeUpdate) SetParentTimeStart(f float64) *LineageEdgeUpdate {
	leu.mutation.ResetParentTimeStart()
	leu.mutation.SetParentTimeStart(f)
	return leu
}

// SetNillableParentTimeStart sets the "parent_time_start" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableParentTimeStart(f *float64) *LineageEdgeUpdate {
	if f != nil {
		leu.SetParentTimeStart(*f)
	}
	return leu
}

// AddParentTimeStart adds f to the "parent_time_start" field.
func (leu *LineageEdgeUpdate) AddParentTimeStart(f float64) *LineageEdgeUpdate {
	leu.mutation.AddParentTimeStart(f)
	return leu
}

// ClearParentTimeStart clears the value of the "parent_time_start" field.
func (leu *LineageEdgeUpdate) ClearParentTimeStart() *LineageEdgeUpdate {
	leu.mutation.ClearParentTimeStart()
	return leu
}

// SetParentTimeEnd sets the "parent_time_end" field.
func (leu *LineageEdgeUpdate) SetParentTimeEnd(f float64) *LineageEdgeUpdate {
	leu.mutation.ResetParentTimeEnd()
	leu.mutation.SetParentTimeEnd(f)
	return leu
}

// SetNillableParentTimeEnd sets the "parent_time_end" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableParentTimeEnd(f *float64) *LineageEdgeUpdate {
	if f != nil {
		leu.SetParentTimeEnd(*f)
	}
	return leu
}

// AddParentTimeEnd adds f to the "parent_time_end" field.
func (leu *LineageEdgeUpdate) AddParentTimeEnd(f float64) *LineageEdgeUpdate {
	leu.mutation.AddParentTimeEnd(f)
	return leu
}

// ClearParentTimeEnd clears the value of the "parent_time_end" field.
func (leu *LineageEdgeUpdate) ClearParentTimeEnd() *LineageEdgeUpdate {
	leu.mutation.ClearParentTimeEnd()
	return leu
}

// SetParentFrame sets the "parent_frame" field.
func (leu *LineageEdgeUpdate) SetParentFrame(i int64) *LineageEdgeUpdate {
	leu.mutation.ResetParentFrame()
	leu.mutation.SetParentFrame(i)
	return leu
}

// SetNillableParentFrame sets the "parent_frame" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableParentFrame(i *int64) *LineageEdgeUpdate {
	if i != nil {
		leu.SetParentFrame(*i)
	}
	return leu
}

// AddParentFrame adds i to the "parent_frame" field.
func (leu *LineageEdgeUpdate) AddParentFrame(i int64) *LineageEdgeUpdate {
	leu.mutation.AddParentFrame(i)
	return leu
}

// ClearParentFrame clears the value of the "parent_frame" field.
func (leu *LineageEdgeUpdate) ClearParentFrame() *LineageEdgeUpdate {
	leu.mutation.ClearParentFrame()
	return leu
}

// SetInfluenceType sets the "influence_type" field.
func (leu *LineageEdgeUpdate) SetInfluenceType(s string) *LineageEdgeUpdate {
	leu.mutation.SetInfluenceType(s)
	return leu
}

// SetNillableInfluenceType sets the "influence_type" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableInfluenceType(s *string) *LineageEdgeUpdate {
	if s != nil {
		leu.SetInfluenceType(*s)
	}
	return leu
}

// ClearInfluenceType clears the value of the "influence_type" field.
func (leu *LineageEdgeUpdate) ClearInfluenceType() *LineageEdgeUpdate {
	leu.mutation.ClearInfluenceType()
	return leu
}

// SetInfluenceWeight sets the "influence_weight" field.
func (leu *LineageEdgeUpdate) SetInfluenceWeight(f float64) *LineageEdgeUpdate {
	leu.mutation.ResetInfluenceWeight()
	leu.mutation.SetInfluenceWeight(f)
	return leu
}

// SetNillableInfluenceWeight sets the "influence_weight" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableInfluenceWeight(f *float64) *LineageEdgeUpdate {
	if f != nil {
		leu.SetInfluenceWeight(*f)
	}
	return leu
}

// AddInfluenceWeight adds f to the "influence_weight" field.
func (leu *LineageEdgeUpdate) AddInfluenceWeight(f float64) *LineageEdgeUpdate {
	leu.mutation.AddInfluenceWeight(f)
	return leu
}

// ClearInfluenceWeight clears the value of the "influence_weight" field.
func (leu *LineageEdgeUpdate) ClearInfluenceWeight() *LineageEdgeUpdate {
	leu.mutation.ClearInfluenceWeight()
	return leu
}

// SetInfluenceRegion sets the "influence_region" field.
func (leu *LineageEdgeUpdate) SetInfluenceRegion(s string) *LineageEdgeUpdate {
	leu.mutation.SetInfluenceRegion(s)
	return leu
}

// SetNillableInfluenceRegion sets the "influence_region" field if the given value is not nil.
func (leu *LineageEdgeUpdate) SetNillableInfluenceRegion(s *string) *LineageEdgeUpdate {
	if s != nil {
		leu.SetInfluenceRegion(*s)
	}
	return leu
}

// ClearInfluenceRegion clears the value of the "influence_region" field.
func (leu *LineageEdgeUpdate) ClearInfluenceRegion() *LineageEdgeUpdate {
	leu.mutation.ClearInfluenceRegion()
	return leu
}

// Mutation returns the LineageEdgeMutation object of the builder.
func (leu *LineageEdgeUpdate) Mutation() *LineageEdgeMutation {
	return leu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (leu *LineageEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, leu.sqlSave, leu.mutation, leu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leu *LineageEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := leu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (leu *LineageEdgeUpdate) Exec(ctx context.Context) error {
	_, err := leu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leu *LineageEdgeUpdate) ExecX(ctx context.Context) {
	if err := leu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leu *LineageEdgeUpdate) check() error {
	if v, ok := leu.mutation.RelationType(); ok {
		if err := lineageedge.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.relation_type": %w`, err)}
		}
	}
	if v, ok := leu.mutation.OperationType(); ok {
		if err := lineageedge.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.operation_type": %w`, err)}
		}
	}
	if v, ok := leu.mutation.InfluenceType(); ok {
		if err := lineageedge.InfluenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "influence_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.influence_type": %w`, err)}
		}
	}
	if v, ok := leu.mutation.InfluenceRegion(); ok {
		if err := lineageedge.InfluenceRegionValidator(v); err != nil {
			return &ValidationError{Name: "influence_region", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.influence_region": %w`, err)}
		}
	}
	return nil
}

func (leu *LineageEdgeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := leu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineageedge.Table, lineageedge.Columns, sqlgraph.NewFieldSpec(lineageedge.FieldID, field.TypeUint))
	if ps := leu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leu.mutation.ChildID(); ok {
		_spec.SetField(lineageedge.FieldChildID, field.TypeUint, value)
	}
	if value, ok := leu.mutation.AddedChildID(); ok {
		_spec.AddField(lineageedge.FieldChildID, field.TypeUint, value)
	}
	if value, ok := leu.mutation.ParentID(); ok {
		_spec.SetField(lineageedge.FieldParentID, field.TypeUint, value)
	}
	if value, ok := leu.mutation.AddedParentID(); ok {
		_spec.AddField(lineageedge.FieldParentID, field.TypeUint, value)
	}
	if value, ok := leu.mutation.RelationType(); ok {
		_spec.SetField(lineageedge.FieldRelationType, field.TypeString, value)
	}
	if value, ok := leu.mutation.OperationType(); ok {
		_spec.SetField(lineageedge.FieldOperationType, field.TypeString, value)
	}
	if leu.mutation.OperationTypeCleared() {
		_spec.ClearField(lineageedge.FieldOperationType, field.TypeString)
	}
	if value, ok := leu.mutation.SequenceOrder(); ok {
		_spec.SetField(lineageedge.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(lineageedge.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := leu.mutation.ParentTimeStart(); ok {
		_spec.SetField(lineageedge.FieldParentTimeStart, field.TypeFloat64, value)
	}
	if value, ok := leu.mutation.AddedParentTimeStart(); ok {
		_spec.AddField(lineageedge.FieldParentTimeStart, field.TypeFloat64, value)
	}
	if leu.mutation.ParentTimeStartCleared() {
		_spec.ClearField(lineageedge.FieldParentTimeStart, field.TypeFloat64)
	}
	if value, ok := leu.mutation.ParentTimeEnd(); ok {
		_spec.SetField(lineageedge.FieldParentTimeEnd, field.TypeFloat64, value)
	}
	if value, ok := leu.mutation.AddedParentTimeEnd(); ok {
		_spec.AddField(lineageedge.FieldParentTimeEnd, field.TypeFloat64, value)
	}
	if leu.mutation.ParentTimeEndCleared() {
		_spec.ClearField(lineageedge.FieldParentTimeEnd, field.TypeFloat64)
	}
	if value, ok := leu.mutation.ParentFrame(); ok {
		_spec.SetField(lineageedge.FieldParentFrame, field.TypeInt64, value)
	}
	if value, ok := leu.mutation.AddedParentFrame(); ok {
		_spec.AddField(lineageedge.FieldParentFrame, field.TypeInt64, value)
	}
	if leu.mutation.ParentFrameCleared() {
		_spec.ClearField(lineageedge.FieldParentFrame, field.TypeInt64)
	}
	if value, ok := leu.mutation.InfluenceType(); ok {
		_spec.SetField(lineageedge.FieldInfluenceType, field.TypeString, value)
	}
	if leu.mutation.InfluenceTypeCleared() {
		_spec.ClearField(lineageedge.FieldInfluenceType, field.TypeString)
	}
	if value, ok := leu.mutation.InfluenceWeight(); ok {
		_spec.SetField(lineageedge.FieldInfluenceWeight, field.TypeFloat64, value)
	}
	if value, ok := leu.mutation.AddedInfluenceWeight(); ok {
		_spec.AddField(lineageedge.FieldInfluenceWeight, field.TypeFloat64, value)
	}
	if leu.mutation.InfluenceWeightCleared() {
		_spec.ClearField(lineageedge.FieldInfluenceWeight, field.TypeFloat64)
	}
	if value, ok := leu.mutation.InfluenceRegion(); ok {
		_spec.SetField(lineageedge.FieldInfluenceRegion, field.TypeString, value)
	}
	if leu.mutation.InfluenceRegionCleared() {
		_spec.ClearField(lineageedge.FieldInfluenceRegion, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, leu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineageedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	leu.mutation.done = true
	return n, nil
}

// LineageEdgeUpdateOne is the builder for updating a single LineageEdge entity.
type LineageEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LineageEdgeMutation
}

// SetChildID sets the "child_id" field.
func (leuo *LineageEdgeUpdateOne) SetChildID(u uint) *LineageEdgeUpdateOne {
	leuo.mutation.ResetChildID()
	leuo.mutation.SetChildID(u)
	return leuo
}

// SetNillableChildID sets the "child_id" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableChildID(u *uint) *LineageEdgeUpdateOne {
	if u != nil {
		leuo.SetChildID(*u)
	}
	return leuo
}

// AddChildID adds u to the "child_id" field.
func (leuo *LineageEdgeUpdateOne) AddChildID(u int) *LineageEdgeUpdateOne {
	leuo.mutation.AddChildID(u)
	return leuo
}

// SetParentID sets the "parent_id" field.
func (leuo *LineageEdgeUpdateOne) SetParentID(u uint) *LineageEdgeUpdateOne {
	leuo.mutation.ResetParentID()
	leuo.mutation.SetParentID(u)
	return leuo
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableParentID(u *uint) *LineageEdgeUpdateOne {
	if u != nil {
		leuo.SetParentID(*u)
	}
	return leuo
}

// AddParentID adds u to the "parent_id" field.
func (leuo *LineageEdgeUpdateOne) AddParentID(u int) *LineageEdgeUpdateOne {
	leuo.mutation.AddParentID(u)
	return leuo
}

// SetRelationType sets the "relation_type" field.
func (leuo *LineageEdgeUpdateOne) SetRelationType(s string) *LineageEdgeUpdateOne {
	leuo.mutation.SetRelationType(s)
	return leuo
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableRelationType(s *string) *LineageEdgeUpdateOne {
	if s != nil {
		leuo.SetRelationType(*s)
	}
	return leuo
}

// SetOperationType sets the "operation_type" field.
func (leuo *LineageEdgeUpdateOne) SetOperationType(s string) *LineageEdgeUpdateOne {
	leuo.mutation.SetOperationType(s)
	return leuo
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableOperationType(s *string) *LineageEdgeUpdateOne {
	if s != nil {
		leuo.SetOperationType(*s)
	}
	return leuo
}

// ClearOperationType clears the value of the "operation_type" field.
func (leuo *LineageEdgeUpdateOne) ClearOperationType() *LineageEdgeUpdateOne {
	leuo.mutation.ClearOperationType()
	return leuo
}

// SetSequenceOrder sets the "sequence_order" field.
func (leuo *LineageEdgeUpdateOne) SetSequenceOrder(i int) *LineageEdgeUpdateOne {
	leuo.mutation.ResetSequenceOrder()
	leuo.mutation.SetSequenceOrder(i)
	return leuo
}

// SetNillableSequenceOrder sets the "sequence_order" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableSequenceOrder(i *int) *LineageEdgeUpdateOne {
	if i != nil {
		leuo.SetSequenceOrder(*i)
	}
	return leuo
}

// AddSequenceOrder adds i to the "sequence_order" field.
func (leuo *LineageEdgeUpdateOne) AddSequenceOrder(i int) *LineageEdgeUpdateOne {
	leuo.mutation.AddSequenceOrder(i)
	return leuo
}

// SetParentTimeStart sets the "parent_time_start" field.
func (leuo *LineageEdgeUpdateOne) SetParentTimeStart(f float64) *LineageEdgeUpdateOne {
	leuo.mutation.ResetParentTimeStart()
	leuo.mutation.SetParentTimeStart(f)
	return leuo
}

// SetNillableParentTimeStart sets the "parent_time_start" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableParentTimeStart(f *float64) *LineageEdgeUpdateOne {
	if f != nil {
		leuo.SetParentTimeStart(*f)
	}
	return leuo
}

// AddParentTimeStart adds f to the "parent_time_start" field.
func (leuo *LineageEdgeUpdateOne) AddParentTimeStart(f float64) *LineageEdgeUpdateOne {
	leuo.mutation.AddParentTimeStart(f)
	return leuo
}

// ClearParentTimeStart clears the value of the "parent_time_start" field.
func (leuo *LineageEdgeUpdateOne) ClearParentTimeStart() *LineageEdgeUpdateOne {
	leuo.mutation.ClearParentTimeStart()
	return leuo
}

// SetParentTimeEnd sets the "parent_time_end" field.
func (leuo *LineageEdgeUpdateOne) SetParentTimeEnd(f float64) *LineageEdgeUpdateOne {
	leuo.mutation.ResetParentTimeEnd()
	leuo.mutation.SetParentTimeEnd(f)
	return leuo
}

// SetNillableParentTimeEnd sets the "parent_time_end" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableParentTimeEnd(f *float64) *LineageEdgeUpdateOne {
	if f != nil {
		leuo.SetParentTimeEnd(*f)
	}
	return leuo
}

// AddParentTimeEnd adds f to the "parent_time_end" field.
func (leuo *LineageEdgeUpdateOne) AddParentTimeEnd(f float64) *LineageEdgeUpdateOne {
	leuo.mutation.AddParentTimeEnd(f)
	return leuo
}

// ClearParentTimeEnd clears the value of the "parent_time_end" field.
func (leuo *LineageEdgeUpdateOne) ClearParentTimeEnd() *LineageEdgeUpdateOne {
	leuo.mutation.ClearParentTimeEnd()
	return leuo
}

// SetParentFrame sets the "parent_frame" field.
func (leuo *LineageEdgeUpdateOne) SetParentFrame(i int64) *LineageEdgeUpdateOne {
	leuo.mutation.ResetParentFrame()
	leuo.mutation.SetParentFrame(i)
	return leuo
}

// SetNillableParentFrame sets the "parent_frame" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableParentFrame(i *int64) *LineageEdgeUpdateOne {
	if i != nil {
		leuo.SetParentFrame(*i)
	}
	return leuo
}

// AddParentFrame adds i to the "parent_frame" field.
func (leuo *LineageEdgeUpdateOne) AddParentFrame(i int64) *LineageEdgeUpdateOne {
	leuo.mutation.AddParentFrame(i)
	return leuo
}

// ClearParentFrame clears the value of the "parent_frame" field.
func (leuo *LineageEdgeUpdateOne) ClearParentFrame() *LineageEdgeUpdateOne {
	leuo.mutation.ClearParentFrame()
	return leuo
}

// SetInfluenceType sets the "influence_type" field.
func (leuo *LineageEdgeUpdateOne) SetInfluenceType(s string) *LineageEdgeUpdateOne {
	leuo.mutation.SetInfluenceType(s)
	return leuo
}

// SetNillableInfluenceType sets the "influence_type" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableInfluenceType(s *string) *LineageEdgeUpdateOne {
	if s != nil {
		leuo.SetInfluenceType(*s)
	}
	return leuo
}

// ClearInfluenceType clears the value of the "influence_type" field.
func (leuo *LineageEdgeUpdateOne) ClearInfluenceType() *LineageEdgeUpdateOne {
	leuo.mutation.ClearInfluenceType()
	return leuo
}

// SetInfluenceWeight sets the "influence_weight" field.
func (leuo *LineageEdgeUpdateOne) SetInfluenceWeight(f float64) *LineageEdgeUpdateOne {
	leuo.mutation.ResetInfluenceWeight()
	leuo.mutation.SetInfluenceWeight(f)
	return leuo
}

// SetNillableInfluenceWeight sets the "influence_weight" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableInfluenceWeight(f *float64) *LineageEdgeUpdateOne {
	if f != nil {
		leuo.SetInfluenceWeight(*f)
	}
	return leuo
}

// AddInfluenceWeight adds f to the "influence_weight" field.
func (leuo *LineageEdgeUpdateOne) AddInfluenceWeight(f float64) *LineageEdgeUpdateOne {
	leuo.mutation.AddInfluenceWeight(f)
	return leuo
}

// ClearInfluenceWeight clears the value of the "influence_weight" field.
func (leuo *LineageEdgeUpdateOne) ClearInfluenceWeight() *LineageEdgeUpdateOne {
	leuo.mutation.ClearInfluenceWeight()
	return leuo
}

// SetInfluenceRegion sets the "influence_region" field.
func (leuo *LineageEdgeUpdateOne) SetInfluenceRegion(s string) *LineageEdgeUpdateOne {
	leuo.mutation.SetInfluenceRegion(s)
	return leuo
}

// SetNillableInfluenceRegion sets the "influence_region" field if the given value is not nil.
func (leuo *LineageEdgeUpdateOne) SetNillableInfluenceRegion(s *string) *LineageEdgeUpdateOne {
	if s != nil {
		leuo.SetInfluenceRegion(*s)
	}
	return leuo
}

// ClearInfluenceRegion clears the value of the "influence_region" field.
func (leuo *LineageEdgeUpdateOne) ClearInfluenceRegion() *LineageEdgeUpdateOne {
	leuo.mutation.ClearInfluenceRegion()
	return leuo
}

// Mutation returns the LineageEdgeMutation object of the builder.
func (leuo *LineageEdgeUpdateOne) Mutation() *LineageEdgeMutation {
	return leuo.mutation
}

// Where appends a list predicates to the LineageEdgeUpdate builder.
func (leuo *LineageEdgeUpdateOne) Where(ps ...predicate.LineageEdge) *LineageEdgeUpdateOne {
	leuo.mutation.Where(ps...)
	return leuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (leuo *LineageEdgeUpdateOne) Select(field string, fields ...string) *LineageEdgeUpdateOne {
	leuo.fields = append([]string{field}, fields...)
	return leuo
}

// Save executes the query and returns the updated LineageEdge entity.
func (leuo *LineageEdgeUpdateOne) Save(ctx context.Context) (*LineageEdge, error) {
	return withHooks(ctx, leuo.sqlSave, leuo.mutation, leuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leuo *LineageEdgeUpdateOne) SaveX(ctx context.Context) *LineageEdge {
	node, err := leuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (leuo *LineageEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := leuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leuo *LineageEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := leuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leuo *LineageEdgeUpdateOne) check() error {
	if v, ok := leuo.mutation.RelationType(); ok {
		if err := lineageedge.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.relation_type": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.OperationType(); ok {
		if err := lineageedge.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.operation_type": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.InfluenceType(); ok {
		if err := lineageedge.InfluenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "influence_type", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.influence_type": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.InfluenceRegion(); ok {
		if err := lineageedge.InfluenceRegionValidator(v); err != nil {
			return &ValidationError{Name: "influence_region", err: fmt.Errorf(`ent: validator failed for field "LineageEdge.influence_region": %w`, err)}
		}
	}
	return nil
}

func (leuo *LineageEdgeUpdateOne) sqlSave(ctx context.Context) (_node *LineageEdge, err error) {
	if err := leuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineageedge.Table, lineageedge.Columns, sqlgraph.NewFieldSpec(lineageedge.FieldID, field.TypeUint))
	id, ok := leuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LineageEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := leuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lineageedge.FieldID)
		for _, f := range fields {
			if !lineageedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lineageedge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := leuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leuo.mutation.ChildID(); ok {
		_spec.SetField(lineageedge.FieldChildID, field.TypeUint, value)
	}
	if value, ok := leuo.mutation.AddedChildID(); ok {
		_spec.AddField(lineageedge.FieldChildID, field.TypeUint, value)
	}
	if value, ok := leuo.mutation.ParentID(); ok {
		_spec.SetField(lineageedge.FieldParentID, field.TypeUint, value)
	}
	if value, ok := leuo.mutation.AddedParentID(); ok {
		_spec.AddField(lineageedge.FieldParentID, field.TypeUint, value)
	}
	if value, ok := leuo.mutation.RelationType(); ok {
		_spec.SetField(lineageedge.FieldRelationType, field.TypeString, value)
	}
	if value, ok := leuo.mutation.OperationType(); ok {
		_spec.SetField(lineageedge.FieldOperationType, field.TypeString, value)
	}
	if leuo.mutation.OperationTypeCleared() {
		_spec.ClearField(lineageedge.FieldOperationType, field.TypeString)
	}
	if value, ok := leuo.mutation.SequenceOrder(); ok {
		_spec.SetField(lineageedge.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedSequenceOrder(); ok {
		_spec.AddField(lineageedge.FieldSequenceOrder, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.ParentTimeStart(); ok {
		_spec.SetField(lineageedge.FieldParentTimeStart, field.TypeFloat64, value)
	}
	if value, ok := leuo.mutation.AddedParentTimeStart(); ok {
		_spec.AddField(lineageedge.FieldParentTimeStart, field.TypeFloat64, value)
	}
	if leuo.mutation.ParentTimeStartCleared() {
		_spec.ClearField(lineageedge.FieldParentTimeStart, field.TypeFloat64)
	}
	if value, ok := leuo.mutation.ParentTimeEnd(); ok {
		_spec.SetField(lineageedge.FieldParentTimeEnd, field.TypeFloat64, value)
	}
	if value, ok := leuo.mutation.AddedParentTimeEnd(); ok {
		_spec.AddField(lineageedge.FieldParentTimeEnd, field.TypeFloat64, value)
	}
	if leuo.mutation.ParentTimeEndCleared() {
		_spec.ClearField(lineageedge.FieldParentTimeEnd, field.TypeFloat64)
	}
	if value, ok := leuo.mutation.ParentFrame(); ok {
		_spec.SetField(lineageedge.FieldParentFrame, field.TypeInt64, value)
	}
	if value, ok := leuo.mutation.AddedParentFrame(); ok {
		_spec.AddField(lineageedge.FieldParentFrame, field.TypeInt64, value)
	}
	if leuo.mutation.ParentFrameCleared() {
		_spec.ClearField(lineageedge.FieldParentFrame, field.TypeInt64)
	}
	if value, ok := leuo.mutation.InfluenceType(); ok {
		_spec.SetField(lineageedge.FieldInfluenceType, field.TypeString, value)
	}
	if leuo.mutation.InfluenceTypeCleared() {
		_spec.ClearField(lineageedge.FieldInfluenceType, field.TypeString)
	}
	if value, ok := leuo.mutation.InfluenceWeight(); ok {
		_spec.SetField(lineageedge.FieldInfluenceWeight, field.TypeFloat64, value)
	}
	if value, ok := leuo.mutation.AddedInfluenceWeight(); ok {
		_spec.AddField(lineageedge.FieldInfluenceWeight, field.TypeFloat64, value)
	}
	if leuo.mutation.InfluenceWeightCleared() {
		_spec.ClearField(lineageedge.FieldInfluenceWeight, field.TypeFloat64)
	}
	if value, ok := leuo.mutation.InfluenceRegion(); ok {
		_spec.SetField(lineageedge.FieldInfluenceRegion, field.TypeString, value)
	}
	if leuo.mutation.InfluenceRegionCleared() {
		_spec.ClearField(lineageedge.FieldInfluenceRegion, field.TypeString)
	}
	_node = &LineageEdge{config: leuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, leuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineageedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	leuo.mutation.done = true
	return _node, nil
}
