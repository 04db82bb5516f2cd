// Code generated by ent, DO NOT EDIT.

package lineageedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lineageedge type in the database.
	Label = "lineage_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldChildID holds the string denoting the child_id field in the database.
	FieldChildID = "child_id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldOperationType holds the string denoting the operation_type field in the database.
	FieldOperationType = "operation_type"
	// FieldSequenceOrder holds the string denoting the sequence_order field in the database.
	FieldSequenceOrder = "sequence_order"
	// FieldParentTimeStart holds the string denoting the parent_time_start field in the database.
	FieldParentTimeStart = "parent_time_start"
	// FieldParentTimeEnd holds the string denoting the parent_time_end field in the database.
	FieldParentTimeEnd = "parent_time_end"
	// FieldParentFrame holds the string denoting the parent_frame field in the database.
	FieldParentFrame = "parent_frame"
	// FieldInfluenceType holds the string denoting the influence_type field in the database.
	FieldInfluenceType = "influence_type"
	// FieldInfluenceWeight holds the string denoting the influence_weight field in the database.
	FieldInfluenceWeight = "influence_weight"
	// FieldInfluenceRegion holds the string denoting the influence_region field in the database.
	FieldInfluenceRegion = "influence_region"
	// Table holds the table name of the lineageedge in the database.
	Table = "lineage_edges"
)

// Columns holds all SQL columns for lineageedge fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldChildID,
	FieldParentID,
	FieldRelationType,
	FieldOperationType,
	FieldSequenceOrder,
	FieldParentTimeStart,
	FieldParentTimeEnd,
	FieldParentFrame,
	FieldInfluenceType,
	FieldInfluenceWeight,
	FieldInfluenceRegion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// RelationTypeValidator is a validator for the "relation_type" field. It is called by the builders before save.
	RelationTypeValidator func(string) error
	// OperationTypeValidator is a validator for the "operation_type" field. It is called by the builders before save.
	OperationTypeValidator func(string) error
	// DefaultSequenceOrder holds the default value on creation for the "sequence_order" field.
	DefaultSequenceOrder int
	// InfluenceTypeValidator is a validator for the "influence_type" field. It is called by the builders before save.
	InfluenceTypeValidator func(string) error
	// InfluenceRegionValidator is a validator for the "influence_region" field. It is called by the builders before save.
	InfluenceRegionValidator func(string) error
)

// OrderOption defines the ordering options for the LineageEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByChildID orders the results by the child_id field.
func ByChildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// ByOperationType orders the results by the operation_type field.
func ByOperationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationType, opts...).ToFunc()
}

// BySequenceOrder orders the results by the sequence_order field.
func BySequenceOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceOrder, opts...).ToFunc()
}

// ByParentTimeStart orders the results by the parent_time_start field.
func ByParentTimeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTimeStart, opts...).ToFunc()
}

// ByParentTimeEnd orders the results by the parent_time_end field.
func ByParentTimeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTimeEnd, opts...).ToFunc()
}

// ByParentFrame orders the results by the parent_frame field.
func ByParentFrame(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentFrame, opts...).ToFunc()
}

// ByInfluenceType orders the results by the influence_type field.
func ByInfluenceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfluenceType, opts...).ToFunc()
}

// ByInfluenceWeight orders the results by the influence_weight field.
func ByInfluenceWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfluenceWeight, opts...).ToFunc()
}

// ByInfluenceRegion orders the results by the influence_region field.
func ByInfluenceRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfluenceRegion, opts...).ToFunc()
}
