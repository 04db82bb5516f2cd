package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ContentBlob holds the schema definition for the ContentBlob entity.
type ContentBlob struct {
	ent.Schema
}

// Annotations of the ContentBlob.
func (ContentBlob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("内容块表，按内容哈希全局去重"),
	}
}

// Fields of the ContentBlob.
func (ContentBlob) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("content_hash").
			MaxLen(64).
			Unique().
			NotEmpty().
			Immutable().
			Comment("文件内容的 SHA-256 十六进制哈希"),
		field.Int64("size").
			Comment("文件大小 (字节)"),
		field.String("mime_type").
			MaxLen(100).
			Optional().
			Comment("文件的MIME类型"),
	}
}

// Edges of the ContentBlob.
func (ContentBlob) Edges() []ent.Edge {
	return nil
}
