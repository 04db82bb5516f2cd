package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LineageEdge holds the schema definition for the LineageEdge entity.
type LineageEdge struct {
	ent.Schema
}

// Annotations of the LineageEdge.
func (LineageEdge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("血缘边表，记录资产之间的派生关系"),
	}
}

// Fields of the LineageEdge.
func (LineageEdge) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Uint("child_id").
			Comment("派生出的子资产ID"),
		field.Uint("parent_id").
			Comment("作为输入的父资产ID"),
		field.String("relation_type").
			MaxLen(50).
			Comment("关系类型 (source_image、transition_input 等)"),
		field.String("operation_type").
			MaxLen(50).
			Optional().
			Comment("产生该派生的操作类型"),
		field.Int("sequence_order").
			Default(0).
			Comment("同一关系下父资产的序号"),
		field.Float("parent_time_start").
			Optional().
			Nillable().
			Comment("父资产中被使用片段的起始时间 (秒)"),
		field.Float("parent_time_end").
			Optional().
			Nillable().
			Comment("父资产中被使用片段的结束时间 (秒)"),
		field.Int64("parent_frame").
			Optional().
			Nillable().
			Comment("父资产中被使用的帧号"),
		field.String("influence_type").
			MaxLen(50).
			Optional().
			Comment("父资产对结果的影响方式"),
		field.Float("influence_weight").
			Optional().
			Nillable().
			Comment("影响权重"),
		field.String("influence_region").
			MaxLen(255).
			Optional().
			Comment("影响的画面区域"),
	}
}

// Edges of the LineageEdge.
func (LineageEdge) Edges() []ent.Edge {
	return nil
}

// Indexes of the LineageEdge.
func (LineageEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id", "parent_id", "relation_type", "sequence_order").
			Unique(),
		index.Fields("parent_id"),
	}
}
