// Code generated by ent, DO NOT EDIT.

package lineageedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// ChildID applies equality check predicate on the "child_id" field. It's identical to ChildIDEQ.
func ChildID(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldChildID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentID, v))
}

// RelationType applies equality check predicate on the "relation_type" field. It's identical to RelationTypeEQ.
func RelationType(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldRelationType, v))
}

// OperationType applies equality check predicate on the "operation_type" field. It's identical to OperationTypeEQ.
func OperationType(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldOperationType, v))
}

// SequenceOrder applies equality check predicate on the "sequence_order" field. It's identical to SequenceOrderEQ.
func SequenceOrder(v int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldSequenceOrder, v))
}

// ParentTimeStart applies equality check predicate on the "parent_time_start" field. It's identical to ParentTimeStartEQ.
func ParentTimeStart(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentTimeStart, v))
}

// ParentTimeEnd applies equality check predicate on the "parent_time_end" field. It's identical to ParentTimeEndEQ.
func ParentTimeEnd(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentTimeEnd, v))
}

// ParentFrame applies equality check predicate on the "parent_frame" field. It's identical to ParentFrameEQ.
func ParentFrame(v int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentFrame, v))
}

// InfluenceType applies equality check predicate on the "influence_type" field. It's identical to InfluenceTypeEQ.
func InfluenceType(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldInfluenceType, v))
}

// InfluenceWeight applies equality check predicate on the "influence_weight" field. It's identical to InfluenceWeightEQ.
func InfluenceWeight(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldInfluenceWeight, v))
}

// InfluenceRegion applies equality check predicate on the "influence_region" field. It's identical to InfluenceRegionEQ.
func InfluenceRegion(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldInfluenceRegion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// ChildIDEQ applies the EQ predicate on the "child_id" field.
func ChildIDEQ(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldChildID, v))
}

// ChildIDNEQ applies the NEQ predicate on the "child_id" field.
func ChildIDNEQ(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldChildID, v))
}

// ChildIDIn applies the In predicate on the "child_id" field.
func ChildIDIn(vs ...uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldChildID, vs...))
}

// ChildIDNotIn applies the NotIn predicate on the "child_id" field.
func ChildIDNotIn(vs ...uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldChildID, vs...))
}

// ChildIDGT applies the GT predicate on the "child_id" field.
func ChildIDGT(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldChildID, v))
}

// ChildIDGTE applies the GTE predicate on the "child_id" field.
func ChildIDGTE(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldChildID, v))
}

// ChildIDLT applies the LT predicate on the "child_id" field.
func ChildIDLT(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldChildID, v))
}

// ChildIDLTE applies the LTE predicate on the "child_id" field.
func ChildIDLTE(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldChildID, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v uint) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldParentID, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldRelationType, vs...))
}

// RelationTypeGT applies the GT predicate on the "relation_type" field.
func RelationTypeGT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldRelationType, v))
}

// RelationTypeGTE applies the GTE predicate on the "relation_type" field.
func RelationTypeGTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldRelationType, v))
}

// RelationTypeLT applies the LT predicate on the "relation_type" field.
func RelationTypeLT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldRelationType, v))
}

// RelationTypeLTE applies the LTE predicate on the "relation_type" field.
func RelationTypeLTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldRelationType, v))
}

// RelationTypeContains applies the Contains predicate on the "relation_type" field.
func RelationTypeContains(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContains(FieldRelationType, v))
}

// RelationTypeHasPrefix applies the HasPrefix predicate on the "relation_type" field.
func RelationTypeHasPrefix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasPrefix(FieldRelationType, v))
}

// RelationTypeHasSuffix applies the HasSuffix predicate on the "relation_type" field.
func RelationTypeHasSuffix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasSuffix(FieldRelationType, v))
}

// RelationTypeEqualFold applies the EqualFold predicate on the "relation_type" field.
func RelationTypeEqualFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEqualFold(FieldRelationType, v))
}

// RelationTypeContainsFold applies the ContainsFold predicate on the "relation_type" field.
func RelationTypeContainsFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContainsFold(FieldRelationType, v))
}

// OperationTypeEQ applies the EQ predicate on the "operation_type" field.
func OperationTypeEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldOperationType, v))
}

// OperationTypeNEQ applies the NEQ predicate on the "operation_type" field.
func OperationTypeNEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldOperationType, v))
}

// OperationTypeIn applies the In predicate on the "operation_type" field.
func OperationTypeIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldOperationType, vs...))
}

// OperationTypeNotIn applies the NotIn predicate on the "operation_type" field.
func OperationTypeNotIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldOperationType, vs...))
}

// OperationTypeGT applies the GT predicate on the "operation_type" field.
func OperationTypeGT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldOperationType, v))
}

// OperationTypeGTE applies the GTE predicate on the "operation_type" field.
func OperationTypeGTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldOperationType, v))
}

// OperationTypeLT applies the LT predicate on the "operation_type" field.
func OperationTypeLT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldOperationType, v))
}

// OperationTypeLTE applies the LTE predicate on the "operation_type" field.
func OperationTypeLTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldOperationType, v))
}

// OperationTypeContains applies the Contains predicate on the "operation_type" field.
func OperationTypeContains(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContains(FieldOperationType, v))
}

// OperationTypeHasPrefix applies the HasPrefix predicate on the "operation_type" field.
func OperationTypeHasPrefix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasPrefix(FieldOperationType, v))
}

// OperationTypeHasSuffix applies the HasSuffix predicate on the "operation_type" field.
func OperationTypeHasSuffix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasSuffix(FieldOperationType, v))
}

// OperationTypeIsNil applies the IsNil predicate on the "operation_type" field.
func OperationTypeIsNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIsNull(FieldOperationType))
}

// OperationTypeNotNil applies the NotNil predicate on the "operation_type" field.
func OperationTypeNotNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotNull(FieldOperationType))
}

// OperationTypeEqualFold applies the EqualFold predicate on the "operation_type" field.
func OperationTypeEqualFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEqualFold(FieldOperationType, v))
}

// OperationTypeContainsFold applies the ContainsFold predicate on the "operation_type" field.
func OperationTypeContainsFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContainsFold(FieldOperationType, v))
}

// SequenceOrderEQ applies the EQ predicate on the "sequence_order" field.
func SequenceOrderEQ(v int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldSequenceOrder, v))
}

// SequenceOrderNEQ applies the NEQ predicate on the "sequence_order" field.
func SequenceOrderNEQ(v int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldSequenceOrder, v))
}

// SequenceOrderIn applies the In predicate on the "sequence_order" field.
func SequenceOrderIn(vs ...int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldSequenceOrder, vs...))
}

// SequenceOrderNotIn applies the NotIn predicate on the "sequence_order" field.
func SequenceOrderNotIn(vs ...int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldSequenceOrder, vs...))
}

// SequenceOrderGT applies the GT predicate on the "sequence_order" field.
func SequenceOrderGT(v int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldSequenceOrder, v))
}

// SequenceOrderGTE applies the GTE predicate on the "sequence_order" field.
func SequenceOrderGTE(v int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldSequenceOrder, v))
}

// SequenceOrderLT applies the LT predicate on the "sequence_order" field.
func SequenceOrderLT(v int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldSequenceOrder, v))
}

// SequenceOrderLTE applies the LTE predicate on the "sequence_order" field.
func SequenceOrderLTE(v int) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldSequenceOrder, v))
}

// ParentTimeStartEQ applies the EQ predicate on the "parent_time_start" field.
func ParentTimeStartEQ(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentTimeStart, v))
}

// ParentTimeStartNEQ applies the NEQ predicate on the "parent_time_start" field.
func ParentTimeStartNEQ(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldParentTimeStart, v))
}

// ParentTimeStartIn applies the In predicate on the "parent_time_start" field.
func ParentTimeStartIn(vs ...float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldParentTimeStart, vs...))
}

// ParentTimeStartNotIn applies the NotIn predicate on the "parent_time_start" field.
func ParentTimeStartNotIn(vs ...float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldParentTimeStart, vs...))
}

// ParentTimeStartGT applies the GT predicate on the "parent_time_start" field.
func ParentTimeStartGT(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldParentTimeStart, v))
}

// ParentTimeStartGTE applies the GTE predicate on the "parent_time_start" field.
func ParentTimeStartGTE(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldParentTimeStart, v))
}

// ParentTimeStartLT applies the LT predicate on the "parent_time_start" field.
func ParentTimeStartLT(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldParentTimeStart, v))
}

// ParentTimeStartLTE applies the LTE predicate on the "parent_time_start" field.
func ParentTimeStartLTE(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldParentTimeStart, v))
}

// ParentTimeStartIsNil applies the IsNil predicate on the "parent_time_start" field.
func ParentTimeStartIsNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIsNull(FieldParentTimeStart))
}

// ParentTimeStartNotNil applies the NotNil predicate on the "parent_time_start" field.
func ParentTimeStartNotNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotNull(FieldParentTimeStart))
}

// ParentTimeEndEQ applies the EQ predicate on the "parent_time_end" field.
func ParentTimeEndEQ(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentTimeEnd, v))
}

// ParentTimeEndNEQ applies the NEQ predicate on the "parent_time_end" field.
func ParentTimeEndNEQ(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldParentTimeEnd, v))
}

// ParentTimeEndIn applies the In predicate on the "parent_time_end" field.
func ParentTimeEndIn(vs ...float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldParentTimeEnd, vs...))
}

// ParentTimeEndNotIn applies the NotIn predicate on the "parent_time_end" field.
func ParentTimeEndNotIn(vs ...float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldParentTimeEnd, vs...))
}

// ParentTimeEndGT applies the GT predicate on the "parent_time_end" field.
func ParentTimeEndGT(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldParentTimeEnd, v))
}

// ParentTimeEndGTE applies the GTE predicate on the "parent_time_end" field.
func ParentTimeEndGTE(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldParentTimeEnd, v))
}

// ParentTimeEndLT applies the LT predicate on the "parent_time_end" field.
func ParentTimeEndLT(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldParentTimeEnd, v))
}

// ParentTimeEndLTE applies the LTE predicate on the "parent_time_end" field.
func ParentTimeEndLTE(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldParentTimeEnd, v))
}

// ParentTimeEndIsNil applies the IsNil predicate on the "parent_time_end" field.
func ParentTimeEndIsNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIsNull(FieldParentTimeEnd))
}

// ParentTimeEndNotNil applies the NotNil predicate on the "parent_time_end" field.
func ParentTimeEndNotNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotNull(FieldParentTimeEnd))
}

// ParentFrameEQ applies the EQ predicate on the "parent_frame" field.
func ParentFrameEQ(v int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldParentFrame, v))
}

// ParentFrameNEQ applies the NEQ predicate on the "parent_frame" field.
func ParentFrameNEQ(v int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldParentFrame, v))
}

// ParentFrameIn applies the In predicate on the "parent_frame" field.
func ParentFrameIn(vs ...int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldParentFrame, vs...))
}

// ParentFrameNotIn applies the NotIn predicate on the "parent_frame" field.
func ParentFrameNotIn(vs ...int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldParentFrame, vs...))
}

// ParentFrameGT applies the GT predicate on the "parent_frame" field.
func ParentFrameGT(v int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldParentFrame, v))
}

// ParentFrameGTE applies the GTE predicate on the "parent_frame" field.
func ParentFrameGTE(v int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldParentFrame, v))
}

// ParentFrameLT applies the LT predicate on the "parent_frame" field.
func ParentFrameLT(v int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldParentFrame, v))
}

// ParentFrameLTE applies the LTE predicate on the "parent_frame" field.
func ParentFrameLTE(v int64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldParentFrame, v))
}

// ParentFrameIsNil applies the IsNil predicate on the "parent_frame" field.
func ParentFrameIsNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIsNull(FieldParentFrame))
}

// ParentFrameNotNil applies the NotNil predicate on the "parent_frame" field.
func ParentFrameNotNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotNull(FieldParentFrame))
}

// InfluenceTypeEQ applies the EQ predicate on the "influence_type" field.
func InfluenceTypeEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldInfluenceType, v))
}

// InfluenceTypeNEQ applies the NEQ predicate on the "influence_type" field.
func InfluenceTypeNEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldInfluenceType, v))
}

// InfluenceTypeIn applies the In predicate on the "influence_type" field.
func InfluenceTypeIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldInfluenceType, vs...))
}

// InfluenceTypeNotIn applies the NotIn predicate on the "influence_type" field.
func InfluenceTypeNotIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldInfluenceType, vs...))
}

// InfluenceTypeGT applies the GT predicate on the "influence_type" field.
func InfluenceTypeGT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldInfluenceType, v))
}

// InfluenceTypeGTE applies the GTE predicate on the "influence_type" field.
func InfluenceTypeGTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldInfluenceType, v))
}

// InfluenceTypeLT applies the LT predicate on the "influence_type" field.
func InfluenceTypeLT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldInfluenceType, v))
}

// InfluenceTypeLTE applies the LTE predicate on the "influence_type" field.
func InfluenceTypeLTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldInfluenceType, v))
}

// InfluenceTypeContains applies the Contains predicate on the "influence_type" field.
func InfluenceTypeContains(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContains(FieldInfluenceType, v))
}

// InfluenceTypeHasPrefix applies the HasPrefix predicate on the "influence_type" field.
func InfluenceTypeHasPrefix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasPrefix(FieldInfluenceType, v))
}

// InfluenceTypeHasSuffix applies the HasSuffix predicate on the "influence_type" field.
func InfluenceTypeHasSuffix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasSuffix(FieldInfluenceType, v))
}

// InfluenceTypeIsNil applies the IsNil predicate on the "influence_type" field.
func InfluenceTypeIsNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIsNull(FieldInfluenceType))
}

// InfluenceTypeNotNil applies the NotNil predicate on the "influence_type" field.
func InfluenceTypeNotNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotNull(FieldInfluenceType))
}

// InfluenceTypeEqualFold applies the EqualFold predicate on the "influence_type" field.
func InfluenceTypeEqualFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEqualFold(FieldInfluenceType, v))
}

// InfluenceTypeContainsFold applies the ContainsFold predicate on the "influence_type" field.
func InfluenceTypeContainsFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContainsFold(FieldInfluenceType, v))
}

// InfluenceWeightEQ applies the EQ predicate on the "influence_weight" field.
func InfluenceWeightEQ(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldInfluenceWeight, v))
}

// InfluenceWeightNEQ applies the NEQ predicate on the "influence_weight" field.
func InfluenceWeightNEQ(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldInfluenceWeight, v))
}

// InfluenceWeightIn applies the In predicate on the "influence_weight" field.
func InfluenceWeightIn(vs ...float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldInfluenceWeight, vs...))
}

// InfluenceWeightNotIn applies the NotIn predicate on the "influence_weight" field.
func InfluenceWeightNotIn(vs ...float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldInfluenceWeight, vs...))
}

// InfluenceWeightGT applies the GT predicate on the "influence_weight" field.
func InfluenceWeightGT(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldInfluenceWeight, v))
}

// InfluenceWeightGTE applies the GTE predicate on the "influence_weight" field.
func InfluenceWeightGTE(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldInfluenceWeight, v))
}

// InfluenceWeightLT applies the LT predicate on the "influence_weight" field.
func InfluenceWeightLT(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldInfluenceWeight, v))
}

// InfluenceWeightLTE applies the LTE predicate on the "influence_weight" field.
func InfluenceWeightLTE(v float64) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldInfluenceWeight, v))
}

// InfluenceWeightIsNil applies the IsNil predicate on the "influence_weight" field.
func InfluenceWeightIsNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIsNull(FieldInfluenceWeight))
}

// InfluenceWeightNotNil applies the NotNil predicate on the "influence_weight" field.
func InfluenceWeightNotNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotNull(FieldInfluenceWeight))
}

// InfluenceRegionEQ applies the EQ predicate on the "influence_region" field.
func InfluenceRegionEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEQ(FieldInfluenceRegion, v))
}

// InfluenceRegionNEQ applies the NEQ predicate on the "influence_region" field.
func InfluenceRegionNEQ(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNEQ(FieldInfluenceRegion, v))
}

// InfluenceRegionIn applies the In predicate on the "influence_region" field.
func InfluenceRegionIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIn(FieldInfluenceRegion, vs...))
}

// InfluenceRegionNotIn applies the NotIn predicate on the "influence_region" field.
func InfluenceRegionNotIn(vs ...string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotIn(FieldInfluenceRegion, vs...))
}

// InfluenceRegionGT applies the GT predicate on the "influence_region" field.
func InfluenceRegionGT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGT(FieldInfluenceRegion, v))
}

// InfluenceRegionGTE applies the GTE predicate on the "influence_region" field.
func InfluenceRegionGTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldGTE(FieldInfluenceRegion, v))
}

// InfluenceRegionLT applies the LT predicate on the "influence_region" field.
func InfluenceRegionLT(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLT(FieldInfluenceRegion, v))
}

// InfluenceRegionLTE applies the LTE predicate on the "influence_region" field.
func InfluenceRegionLTE(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldLTE(FieldInfluenceRegion, v))
}

// InfluenceRegionContains applies the Contains predicate on the "influence_region" field.
func InfluenceRegionContains(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContains(FieldInfluenceRegion, v))
}

// InfluenceRegionHasPrefix applies the HasPrefix predicate on the "influence_region" field.
func InfluenceRegionHasPrefix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasPrefix(FieldInfluenceRegion, v))
}

// InfluenceRegionHasSuffix applies the HasSuffix predicate on the "influence_region" field.
func InfluenceRegionHasSuffix(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldHasSuffix(FieldInfluenceRegion, v))
}

// InfluenceRegionIsNil applies the IsNil predicate on the "influence_region" field.
func InfluenceRegionIsNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldIsNull(FieldInfluenceRegion))
}

// InfluenceRegionNotNil applies the NotNil predicate on the "influence_region" field.
func InfluenceRegionNotNil() predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldNotNull(FieldInfluenceRegion))
}

// InfluenceRegionEqualFold applies the EqualFold predicate on the "influence_region" field.
func InfluenceRegionEqualFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldEqualFold(FieldInfluenceRegion, v))
}

// InfluenceRegionContainsFold applies the ContainsFold predicate on the "influence_region" field.
func InfluenceRegionContainsFold(v string) predicate.LineageEdge {
	return predicate.LineageEdge(sql.FieldContainsFold(FieldInfluenceRegion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LineageEdge) predicate.LineageEdge {
	return predicate.LineageEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LineageEdge) predicate.LineageEdge {
	return predicate.LineageEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LineageEdge) predicate.LineageEdge {
	return predicate.LineageEdge(sql.NotPredicates(p))
}
