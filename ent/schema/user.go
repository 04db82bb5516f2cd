package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表，资产归属的最小身份信息"),
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("username").
			MaxLen(100).
			Unique().
			NotEmpty(),
		field.String("email").
			MaxLen(255).
			Optional(),
		field.String("external_id").
			MaxLen(255).
			Optional().
			Comment("外部身份系统的主体标识"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Int("status").
			Default(1).
			Comment("用户状态 (1:正常 2:未激活 3:封禁)"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return nil
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_id"),
	}
}
