package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Metadata holds the schema definition for the Metadata entity.
type Metadata struct {
	ent.Schema
}

// Annotations of the Metadata.
func (Metadata) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("资产元数据表"),
	}
}

// Fields of the Metadata.
func (Metadata) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("name").
			MaxLen(255).
			NotEmpty(),
		field.Text("value").
			Optional(),
		field.Uint("asset_id"),
	}
}

// Edges of the Metadata.
func (Metadata) Edges() []ent.Edge {
	return []ent.Edge{
		// 一条元数据属于一个资产
		edge.From("asset", Asset.Type).
			Ref("metadata").
			Unique().
			Required().
			Field("asset_id"),
	}
}

// Indexes of the Metadata.
func (Metadata) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("asset_id", "name").
			Unique(),
	}
}
