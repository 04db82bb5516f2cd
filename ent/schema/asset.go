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

// Asset holds the schema definition for the Asset entity.
type Asset struct {
	ent.Schema
}

// Annotations of the Asset.
func (Asset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("媒体资产表，记录逻辑资产及其摄取进度"),
	}
}

// Fields of the Asset.
func (Asset) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Uint("owner_id").
			Comment("资产归属的用户ID"),
		field.String("media_kind").
			MaxLen(20).
			Comment("媒体类型 (image、video、audio、3d)"),
		field.String("provider_id").
			MaxLen(100).
			Optional().
			Nillable().
			Comment("生成该资产的提供方标识"),
		field.String("provider_asset_id").
			MaxLen(255).
			Optional().
			Nillable().
			Comment("提供方侧的资产标识"),
		field.String("content_hash").
			MaxLen(64).
			Optional().
			Nillable().
			Comment("文件内容的 SHA-256 十六进制哈希"),
		field.Uint64("perceptual_hash").
			Optional().
			Nillable().
			Comment("图像感知哈希 (aHash)"),
		field.Int("perceptual_hash_version").
			Default(0).
			Comment("感知哈希算法版本，不同版本之间不做比较"),
		field.Text("source_url").
			Optional().
			Nillable().
			Comment("资产的原始远端地址"),
		field.Text("storage_key").
			Optional().
			Nillable().
			Comment("原始文件在内容寻址存储中的键"),
		field.Text("thumbnail_key").
			Optional().
			Nillable().
			Comment("缩略图存储键"),
		field.Text("preview_key").
			Optional().
			Nillable().
			Comment("预览图存储键"),
		field.Text("local_path").
			Optional().
			Nillable().
			Comment("摄取过程中的本地暂存路径"),
		field.Int64("size").
			Default(0).
			Comment("文件大小 (字节)"),
		field.String("mime_type").
			MaxLen(100).
			Optional().
			Nillable().
			Comment("文件的MIME类型"),
		field.Other("provider_map", model.StringMap{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
				dialect.SQLite:   "text",
			}).
			Optional().
			Comment("跨提供方标识映射 (providerID -> providerAssetID)"),
		field.Uint("generation_id").
			Optional().
			Nillable().
			Comment("关联的生成记录ID"),
		field.String("ingest_status").
			MaxLen(20).
			Default("pending").
			Comment("摄取状态 (pending、processing、completed、failed)"),
		field.Time("downloaded_at").
			Optional().
			Nillable().
			Comment("原始文件落库完成时间"),
		field.Time("metadata_extracted_at").
			Optional().
			Nillable().
			Comment("元数据提取完成时间"),
		field.Time("thumbnail_generated_at").
			Optional().
			Nillable().
			Comment("缩略图生成完成时间"),
		field.Time("preview_generated_at").
			Optional().
			Nillable().
			Comment("预览图生成完成时间"),
		field.String("last_error").
			MaxLen(500).
			Optional().
			Comment("最近一次摄取失败的原因 (已截断)"),
	}
}

// Edges of the Asset.
func (Asset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("metadata", Metadata.Type),
		edge.From("generation", Generation.Type).
			Ref("assets").
			Unique().
			Field("generation_id"),
	}
}

// Indexes of the Asset.
func (Asset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "provider_id", "provider_asset_id").
			Unique(),
		index.Fields("owner_id", "content_hash").
			Unique(),
		index.Fields("ingest_status", "created_at"),
	}
}
