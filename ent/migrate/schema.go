// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssetsColumns holds the columns for the "assets" table.
	AssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeUint, Comment: "资产归属的用户ID"},
		{Name: "media_kind", Type: field.TypeString, Size: 20, Comment: "媒体类型 (image、video、audio、3d)"},
		{Name: "provider_id", Type: field.TypeString, Nullable: true, Size: 100, Comment: "生成该资产的提供方标识"},
		{Name: "provider_asset_id", Type: field.TypeString, Nullable: true, Size: 255, Comment: "提供方侧的资产标识"},
		{Name: "content_hash", Type: field.TypeString, Nullable: true, Size: 64, Comment: "文件内容的 SHA-256 十六进制哈希"},
		{Name: "perceptual_hash", Type: field.TypeUint64, Nullable: true, Comment: "图像感知哈希 (aHash)"},
		{Name: "perceptual_hash_version", Type: field.TypeInt, Comment: "感知哈希算法版本，不同版本之间不做比较", Default: 0},
		{Name: "source_url", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "资产的原始远端地址"},
		{Name: "storage_key", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "原始文件在内容寻址存储中的键"},
		{Name: "thumbnail_key", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "缩略图存储键"},
		{Name: "preview_key", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "预览图存储键"},
		{Name: "local_path", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "摄取过程中的本地暂存路径"},
		{Name: "size", Type: field.TypeInt64, Comment: "文件大小 (字节)", Default: 0},
		{Name: "mime_type", Type: field.TypeString, Nullable: true, Size: 100, Comment: "文件的MIME类型"},
		{Name: "provider_map", Type: field.TypeOther, Nullable: true, Comment: "跨提供方标识映射 (providerID -> providerAssetID)", SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb", "sqlite3": "text"}},
		{Name: "ingest_status", Type: field.TypeString, Size: 20, Comment: "摄取状态 (pending、processing、completed、failed)", Default: "pending"},
		{Name: "downloaded_at", Type: field.TypeTime, Nullable: true, Comment: "原始文件落库完成时间"},
		{Name: "metadata_extracted_at", Type: field.TypeTime, Nullable: true, Comment: "元数据提取完成时间"},
		{Name: "thumbnail_generated_at", Type: field.TypeTime, Nullable: true, Comment: "缩略图生成完成时间"},
		{Name: "preview_generated_at", Type: field.TypeTime, Nullable: true, Comment: "预览图生成完成时间"},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 500, Comment: "最近一次摄取失败的原因 (已截断)"},
		{Name: "generation_id", Type: field.TypeUint, Nullable: true, Comment: "关联的生成记录ID"},
	}
	// AssetsTable holds the schema information for the "assets" table.
	AssetsTable = &schema.Table{
		Name:       "assets",
		Comment:    "媒体资产表，记录逻辑资产及其摄取进度",
		Columns:    AssetsColumns,
		PrimaryKey: []*schema.Column{AssetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assets_generations_assets",
				Columns:    []*schema.Column{AssetsColumns[24]},
				RefColumns: []*schema.Column{GenerationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "asset_owner_id_provider_id_provider_asset_id",
				Unique:  true,
				Columns: []*schema.Column{AssetsColumns[3], AssetsColumns[5], AssetsColumns[6]},
			},
			{
				Name:    "asset_owner_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{AssetsColumns[3], AssetsColumns[7]},
			},
			{
				Name:    "asset_ingest_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssetsColumns[18], AssetsColumns[1]},
			},
		},
	}
	// ContentBlobsColumns holds the columns for the "content_blobs" table.
	ContentBlobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "content_hash", Type: field.TypeString, Unique: true, Size: 64, Comment: "文件内容的 SHA-256 十六进制哈希"},
		{Name: "size", Type: field.TypeInt64, Comment: "文件大小 (字节)"},
		{Name: "mime_type", Type: field.TypeString, Nullable: true, Size: 100, Comment: "文件的MIME类型"},
	}
	// ContentBlobsTable holds the schema information for the "content_blobs" table.
	ContentBlobsTable = &schema.Table{
		Name:       "content_blobs",
		Comment:    "内容块表，按内容哈希全局去重",
		Columns:    ContentBlobsColumns,
		PrimaryKey: []*schema.Column{ContentBlobsColumns[0]},
	}
	// GenerationsColumns holds the columns for the "generations" table.
	GenerationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeUint, Comment: "发起生成的用户ID"},
		{Name: "operation_type", Type: field.TypeString, Size: 50, Comment: "生成操作类型"},
		{Name: "canonical_params", Type: field.TypeOther, Nullable: true, Comment: "规范化后的生成参数", SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb", "sqlite3": "text"}},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true, Comment: "输入资产的内容哈希列表"},
		{Name: "repro_hash", Type: field.TypeString, Size: 64, Comment: "参数与输入的可复现哈希"},
	}
	// GenerationsTable holds the schema information for the "generations" table.
	GenerationsTable = &schema.Table{
		Name:       "generations",
		Comment:    "生成记录表，记录一次生成操作的规范化参数",
		Columns:    GenerationsColumns,
		PrimaryKey: []*schema.Column{GenerationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generation_owner_id_repro_hash",
				Unique:  false,
				Columns: []*schema.Column{GenerationsColumns[2], GenerationsColumns[6]},
			},
		},
	}
	// LineageEdgesColumns holds the columns for the "lineage_edges" table.
	LineageEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "child_id", Type: field.TypeUint, Comment: "派生出的子资产ID"},
		{Name: "parent_id", Type: field.TypeUint, Comment: "作为输入的父资产ID"},
		{Name: "relation_type", Type: field.TypeString, Size: 50, Comment: "关系类型 (source_image、transition_input 等)"},
		{Name: "operation_type", Type: field.TypeString, Nullable: true, Size: 50, Comment: "产生该派生的操作类型"},
		{Name: "sequence_order", Type: field.TypeInt, Comment: "同一关系下父资产的序号", Default: 0},
		{Name: "parent_time_start", Type: field.TypeFloat64, Nullable: true, Comment: "父资产中被使用片段的起始时间 (秒)"},
		{Name: "parent_time_end", Type: field.TypeFloat64, Nullable: true, Comment: "父资产中被使用片段的结束时间 (秒)"},
		{Name: "parent_frame", Type: field.TypeInt64, Nullable: true, Comment: "父资产中被使用的帧号"},
		{Name: "influence_type", Type: field.TypeString, Nullable: true, Size: 50, Comment: "父资产对结果的影响方式"},
		{Name: "influence_weight", Type: field.TypeFloat64, Nullable: true, Comment: "影响权重"},
		{Name: "influence_region", Type: field.TypeString, Nullable: true, Size: 255, Comment: "影响的画面区域"},
	}
	// LineageEdgesTable holds the schema information for the "lineage_edges" table.
	LineageEdgesTable = &schema.Table{
		Name:       "lineage_edges",
		Comment:    "血缘边表，记录资产之间的派生关系",
		Columns:    LineageEdgesColumns,
		PrimaryKey: []*schema.Column{LineageEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lineageedge_child_id_parent_id_relation_type_sequence_order",
				Unique:  true,
				Columns: []*schema.Column{LineageEdgesColumns[2], LineageEdgesColumns[3], LineageEdgesColumns[4], LineageEdgesColumns[6]},
			},
			{
				Name:    "lineageedge_parent_id",
				Unique:  false,
				Columns: []*schema.Column{LineageEdgesColumns[3]},
			},
		},
	}
	// MetadataColumns holds the columns for the "metadata" table.
	MetadataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "asset_id", Type: field.TypeUint},
	}
	// MetadataTable holds the schema information for the "metadata" table.
	MetadataTable = &schema.Table{
		Name:       "metadata",
		Comment:    "资产元数据表",
		Columns:    MetadataColumns,
		PrimaryKey: []*schema.Column{MetadataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "metadata_assets_metadata",
				Columns:    []*schema.Column{MetadataColumns[5]},
				RefColumns: []*schema.Column{AssetsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "metadata_asset_id_name",
				Unique:  true,
				Columns: []*schema.Column{MetadataColumns[5], MetadataColumns[3]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "config_key", Type: field.TypeString, Unique: true, Size: 100, Comment: "配置键"},
		{Name: "value", Type: field.TypeString, Size: 2147483647, Comment: "配置值"},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 255, Comment: "配置注释"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Comment:    "系统设置表",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "external_id", Type: field.TypeString, Nullable: true, Size: 255, Comment: "外部身份系统的主体标识"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeInt, Comment: "用户状态 (1:正常 2:未激活 3:封禁)", Default: 1},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表，资产归属的最小身份信息",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_external_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssetsTable,
		ContentBlobsTable,
		GenerationsTable,
		LineageEdgesTable,
		MetadataTable,
		SettingsTable,
		UsersTable,
	}
)

func init() {
	AssetsTable.ForeignKeys[0].RefTable = GenerationsTable
	MetadataTable.ForeignKeys[0].RefTable = AssetsTable
}
