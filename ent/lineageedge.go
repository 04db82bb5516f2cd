// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
)

// 血缘边表，记录资产之间的派生关系
type LineageEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 派生出的子资产ID
	ChildID uint `json:"child_id,omitempty"`
	// 作为输入的父资产ID
	ParentID uint `json:"parent_id,omitempty"`
	// 关系类型 (source_image、transition_input 等)
	RelationType string `json:"relation_type,omitempty"`
	// 产生该派生的操作类型
	OperationType string `json:"operation_type,omitempty"`
	// 同一关系下父资产的序号
	SequenceOrder int `json:"sequence_order,omitempty"`
	// 父资产中被使用片段的起始时间 (秒)
	ParentTimeStart *float64 `json:"parent_time_start,omitempty"`
	// 父资产中被使用片段的结束时间 (秒)
	ParentTimeEnd *float64 `json:"parent_time_end,omitempty"`
	// 父资产中被使用的帧号
	ParentFrame *int64 `json:"parent_frame,omitempty"`
	// 父资产对结果的影响方式
	InfluenceType string `json:"influence_type,omitempty"`
	// 影响权重
	InfluenceWeight *float64 `json:"influence_weight,omitempty"`
	// 影响的画面区域
	InfluenceRegion string `json:"influence_region,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LineageEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lineageedge.FieldParentTimeStart, lineageedge.FieldParentTimeEnd, lineageedge.FieldInfluenceWeight:
			values[i] = new(sql.NullFloat64)
		case lineageedge.FieldID, lineageedge.FieldChildID, lineageedge.FieldParentID, lineageedge.FieldSequenceOrder, lineageedge.FieldParentFrame:
			values[i] = new(sql.NullInt64)
		case lineageedge.FieldRelationType, lineageedge.FieldOperationType, lineageedge.FieldInfluenceType, lineageedge.FieldInfluenceRegion:
			values[i] = new(sql.NullString)
		case lineageedge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LineageEdge fields.
func (le *LineageEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lineageedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			le.ID = uint(value.Int64)
		case lineageedge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				le.CreatedAt = value.Time
			}
		case lineageedge.FieldChildID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				le.ChildID = uint(value.Int64)
			}
		case lineageedge.FieldParentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				le.ParentID = uint(value.Int64)
			}
		case lineageedge.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				le.RelationType = value.String
			}
		case lineageedge.FieldOperationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_type", values[i])
			} else if value.Valid {
				le.OperationType = value.String
			}
		case lineageedge.FieldSequenceOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_order", values[i])
			} else if value.Valid {
				le.SequenceOrder = int(value.Int64)
			}
		case lineageedge.FieldParentTimeStart:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_time_start", values[i])
			} else if value.Valid {
				le.ParentTimeStart = new(float64)
				*le.ParentTimeStart = value.Float64
			}
		case lineageedge.FieldParentTimeEnd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_time_end", values[i])
			} else if value.Valid {
				le.ParentTimeEnd = new(float64)
				*le.ParentTimeEnd = value.Float64
			}
		case lineageedge.FieldParentFrame:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_frame", values[i])
			} else if value.Valid {
				le.ParentFrame = new(int64)
				*le.ParentFrame = value.Int64
			}
		case lineageedge.FieldInfluenceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field influence_type", values[i])
			} else if value.Valid {
				le.InfluenceType = value.String
			}
		case lineageedge.FieldInfluenceWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field influence_weight", values[i])
			} else if value.Valid {
				le.InfluenceWeight = new(float64)
				*le.InfluenceWeight = value.Float64
			}
		case lineageedge.FieldInfluenceRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field influence_region", values[i])
			} else if value.Valid {
				le.InfluenceRegion = value.String
			}
		default:
			le.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LineageEdge.
// This includes values selected through modifiers, order, etc.
func (le *LineageEdge) Value(name string) (ent.Value, error) {
	return le.selectValues.Get(name)
}

// Update returns a builder for updating this LineageEdge.
// Note that you need to call LineageEdge.Unwrap() before calling this method if this LineageEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (le *LineageEdge) Update() *LineageEdgeUpdateOne {
	return NewLineageEdgeClient(le.config).UpdateOne(le)
}

// Unwrap unwraps the LineageEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (le *LineageEdge) Unwrap() *LineageEdge {
	_tx, ok := le.config.driver.(*txDriver)
	if !ok {
		panic("ent: LineageEdge is not a transactional entity")
	}
	le.config.driver = _tx.drv
	return le
}

// String implements the fmt.Stringer.
func (le *LineageEdge) String() string {
	var builder strings.Builder
	builder.WriteString("LineageEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", le.ID))
	builder.WriteString("created_at=")
	builder.WriteString(le.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(fmt.Sprintf("%v", le.ChildID))
	builder.WriteString(", ")
	builder.WriteString("parent_id=")
	builder.WriteString(fmt.Sprintf("%v", le.ParentID))
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(le.RelationType)
	builder.WriteString(", ")
	builder.WriteString("operation_type=")
	builder.WriteString(le.OperationType)
	builder.WriteString(", ")
	builder.WriteString("sequence_order=")
	builder.WriteString(fmt.Sprintf("%v", le.SequenceOrder))
	builder.WriteString(", ")
	if v := le.ParentTimeStart; v != nil {
		builder.WriteString("parent_time_start=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := le.ParentTimeEnd; v != nil {
		builder.WriteString("parent_time_end=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := le.ParentFrame; v != nil {
		builder.WriteString("parent_frame=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("influence_type=")
	builder.WriteString(le.InfluenceType)
	builder.WriteString(", ")
	if v := le.InfluenceWeight; v != nil {
		builder.WriteString("influence_weight=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("influence_region=")
	builder.WriteString(le.InfluenceRegion)
	builder.WriteByte(')')
	return builder.String()
}

// LineageEdges is a parsable slice of LineageEdge.
type LineageEdges []*LineageEdge
