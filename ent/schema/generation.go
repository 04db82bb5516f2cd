package schema

import (
	"time"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Generation holds the schema definition for the Generation entity.
type Generation struct {
	ent.Schema
}

// Annotations of the Generation.
func (Generation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("生成记录表，记录一次生成操作的规范化参数"),
	}
}

// Fields of the Generation.
func (Generation) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Uint("owner_id").
			Comment("发起生成的用户ID"),
		field.String("operation_type").
			MaxLen(50).
			Comment("生成操作类型"),
		field.Other("canonical_params", model.JSONMap{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
				dialect.SQLite:   "text",
			}).
			Optional().
			Comment("规范化后的生成参数"),
		field.JSON("inputs", []string{}).
			Optional().
			Comment("输入资产的内容哈希列表"),
		field.String("repro_hash").
			MaxLen(64).
			Comment("参数与输入的可复现哈希"),
	}
}

// Edges of the Generation.
func (Generation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assets", Asset.Type),
	}
}

// Indexes of the Generation.
func (Generation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "repro_hash"),
	}
}
