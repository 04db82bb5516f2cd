// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediaflow/ent/asset"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// 媒体资产表，记录逻辑资产及其摄取进度
type Asset struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 资产归属的用户ID
	OwnerID uint `json:"owner_id,omitempty"`
	// 媒体类型 (image、video、audio、3d)
	MediaKind string `json:"media_kind,omitempty"`
	// 生成该资产的提供方标识
	ProviderID *string `json:"provider_id,omitempty"`
	// 提供方侧的资产标识
	ProviderAssetID *string `json:"provider_asset_id,omitempty"`
	// 文件内容的 SHA-256 十六进制哈希
	ContentHash *string `json:"content_hash,omitempty"`
	// 图像感知哈希 (aHash)
	PerceptualHash *uint64 `json:"perceptual_hash,omitempty"`
	// 感知哈希算法版本，不同版本之间不做比较
	PerceptualHashVersion int `json:"perceptual_hash_version,omitempty"`
	// 资产的原始远端地址
	SourceURL *string `json:"source_url,omitempty"`
	// 原始文件在内容寻址存储中的键
	StorageKey *string `json:"storage_key,omitempty"`
	// 缩略图存储键
	ThumbnailKey *string `json:"thumbnail_key,omitempty"`
	// 预览图存储键
	PreviewKey *string `json:"preview_key,omitempty"`
	// 摄取过程中的本地暂存路径
	LocalPath *string `json:"local_path,omitempty"`
	// 文件大小 (字节)
	Size int64 `json:"size,omitempty"`
	// 文件的MIME类型
	MimeType *string `json:"mime_type,omitempty"`
	// 跨提供方标识映射 (providerID -> providerAssetID)
	ProviderMap model.StringMap `json:"provider_map,omitempty"`
	// 关联的生成记录ID
	GenerationID *uint `json:"generation_id,omitempty"`
	// 摄取状态 (pending、processing、completed、failed)
	IngestStatus string `json:"ingest_status,omitempty"`
	// 原始文件落库完成时间
	DownloadedAt *time.Time `json:"downloaded_at,omitempty"`
	// 元数据提取完成时间
	MetadataExtractedAt *time.Time `json:"metadata_extracted_at,omitempty"`
	// 缩略图生成完成时间
	ThumbnailGeneratedAt *time.Time `json:"thumbnail_generated_at,omitempty"`
	// 预览图生成完成时间
	PreviewGeneratedAt *time.Time `json:"preview_generated_at,omitempty"`
	// 最近一次摄取失败的原因 (已截断)
	LastError string `json:"last_error,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssetQuery when eager-loading is set.
	Edges        AssetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssetEdges holds the relations/edges for other nodes in the graph.
type AssetEdges struct {
	// Metadata holds the value of the metadata edge.
	Metadata []*Metadata `json:"metadata,omitempty"`
	// Generation holds the value of the generation edge.
	Generation *Generation `json:"generation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MetadataOrErr returns the Metadata value or an error if the edge
// was not loaded in eager-loading.
func (e AssetEdges) MetadataOrErr() ([]*Metadata, error) {
	if e.loadedTypes[0] {
		return e.Metadata, nil
	}
	return nil, &NotLoadedError{edge: "metadata"}
}

// GenerationOrErr returns the Generation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssetEdges) GenerationOrErr() (*Generation, error) {
	if e.Generation != nil {
		return e.Generation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: generation.Label}
	}
	return nil, &NotLoadedError{edge: "generation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Asset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case asset.FieldProviderMap:
			values[i] = new(model.StringMap)
		case asset.FieldID, asset.FieldOwnerID, asset.FieldPerceptualHash, asset.FieldPerceptualHashVersion, asset.FieldSize, asset.FieldGenerationID:
			values[i] = new(sql.NullInt64)
		case asset.FieldMediaKind, asset.FieldProviderID, asset.FieldProviderAssetID, asset.FieldContentHash, asset.FieldSourceURL, asset.FieldStorageKey, asset.FieldThumbnailKey, asset.FieldPreviewKey, asset.FieldLocalPath, asset.FieldMimeType, asset.FieldIngestStatus, asset.FieldLastError:
			values[i] = new(sql.NullString)
		case asset.FieldCreatedAt, asset.FieldUpdatedAt, asset.FieldDownloadedAt, asset.FieldMetadataExtractedAt, asset.FieldThumbnailGeneratedAt, asset.FieldPreviewGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Asset fields.
func (a *Asset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case asset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			a.ID = uint(value.Int64)
		case asset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case asset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		case asset.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				a.OwnerID = uint(value.Int64)
			}
		case asset.FieldMediaKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_kind", values[i])
			} else if value.Valid {
				a.MediaKind = value.String
			}
		case asset.FieldProviderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value.Valid {
				a.ProviderID = new(string)
				*a.ProviderID = value.String
			}
		case asset.FieldProviderAssetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_asset_id", values[i])
			} else if value.Valid {
				a.ProviderAssetID = new(string)
				*a.ProviderAssetID = value.String
			}
		case asset.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				a.ContentHash = new(string)
				*a.ContentHash = value.String
			}
		case asset.FieldPerceptualHash:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field perceptual_hash", values[i])
			} else if value.Valid {
				a.PerceptualHash = new(uint64)
				*a.PerceptualHash = uint64(value.Int64)
			}
		case asset.FieldPerceptualHashVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field perceptual_hash_version", values[i])
			} else if value.Valid {
				a.PerceptualHashVersion = int(value.Int64)
			}
		case asset.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				a.SourceURL = new(string)
				*a.SourceURL = value.String
			}
		case asset.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				a.StorageKey = new(string)
				*a.StorageKey = value.String
			}
		case asset.FieldThumbnailKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_key", values[i])
			} else if value.Valid {
				a.ThumbnailKey = new(string)
				*a.ThumbnailKey = value.String
			}
		case asset.FieldPreviewKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview_key", values[i])
			} else if value.Valid {
				a.PreviewKey = new(string)
				*a.PreviewKey = value.String
			}
		case asset.FieldLocalPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field local_path", values[i])
			} else if value.Valid {
				a.LocalPath = new(string)
				*a.LocalPath = value.String
			}
		case asset.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				a.Size = value.Int64
			}
		case asset.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				a.MimeType = new(string)
				*a.MimeType = value.String
			}
		case asset.FieldProviderMap:
			if value, ok := values[i].(*model.StringMap); !ok {
				return fmt.Errorf("unexpected type %T for field provider_map", values[i])
			} else if value != nil {
				a.ProviderMap = *value
			}
		case asset.FieldGenerationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_id", values[i])
			} else if value.Valid {
				a.GenerationID = new(uint)
				*a.GenerationID = uint(value.Int64)
			}
		case asset.FieldIngestStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ingest_status", values[i])
			} else if value.Valid {
				a.IngestStatus = value.String
			}
		case asset.FieldDownloadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field downloaded_at", values[i])
			} else if value.Valid {
				a.DownloadedAt = new(time.Time)
				*a.DownloadedAt = value.Time
			}
		case asset.FieldMetadataExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field metadata_extracted_at", values[i])
			} else if value.Valid {
				a.MetadataExtractedAt = new(time.Time)
				*a.MetadataExtractedAt = value.Time
			}
		case asset.FieldThumbnailGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_generated_at", values[i])
			} else if value.Valid {
				a.ThumbnailGeneratedAt = new(time.Time)
				*a.ThumbnailGeneratedAt = value.Time
			}
		case asset.FieldPreviewGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field preview_generated_at", values[i])
			} else if value.Valid {
				a.PreviewGeneratedAt = new(time.Time)
				*a.PreviewGeneratedAt = value.Time
			}
		case asset.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				a.LastError = value.String
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Asset.
// This includes values selected through modifiers, order, etc.
func (a *Asset) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QueryMetadata queries the "metadata" edge of the Asset entity.
func (a *Asset) QueryMetadata() *MetadataQuery {
	return NewAssetClient(a.config).QueryMetadata(a)
}

// QueryGeneration queries the "generation" edge of the Asset entity.
func (a *Asset) QueryGeneration() *GenerationQuery {
	return NewAssetClient(a.config).QueryGeneration(a)
}

// Update returns a builder for updating this Asset.
// Note that you need to call Asset.Unwrap() before calling this method if this Asset
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Asset) Update() *AssetUpdateOne {
	return NewAssetClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Asset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Asset) Unwrap() *Asset {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Asset is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Asset) String() string {
	var builder strings.Builder
	builder.WriteString("Asset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", a.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("media_kind=")
	builder.WriteString(a.MediaKind)
	builder.WriteString(", ")
	if v := a.ProviderID; v != nil {
		builder.WriteString("provider_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.ProviderAssetID; v != nil {
		builder.WriteString("provider_asset_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.ContentHash; v != nil {
		builder.WriteString("content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.PerceptualHash; v != nil {
		builder.WriteString("perceptual_hash=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("perceptual_hash_version=")
	builder.WriteString(fmt.Sprintf("%v", a.PerceptualHashVersion))
	builder.WriteString(", ")
	if v := a.SourceURL; v != nil {
		builder.WriteString("source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.StorageKey; v != nil {
		builder.WriteString("storage_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.ThumbnailKey; v != nil {
		builder.WriteString("thumbnail_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.PreviewKey; v != nil {
		builder.WriteString("preview_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.LocalPath; v != nil {
		builder.WriteString("local_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", a.Size))
	builder.WriteString(", ")
	if v := a.MimeType; v != nil {
		builder.WriteString("mime_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("provider_map=")
	builder.WriteString(fmt.Sprintf("%v", a.ProviderMap))
	builder.WriteString(", ")
	if v := a.GenerationID; v != nil {
		builder.WriteString("generation_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("ingest_status=")
	builder.WriteString(a.IngestStatus)
	builder.WriteString(", ")
	if v := a.DownloadedAt; v != nil {
		builder.WriteString("downloaded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := a.MetadataExtractedAt; v != nil {
		builder.WriteString("metadata_extracted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := a.ThumbnailGeneratedAt; v != nil {
		builder.WriteString("thumbnail_generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := a.PreviewGeneratedAt; v != nil {
		builder.WriteString("preview_generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(a.LastError)
	builder.WriteByte(')')
	return builder.String()
}

// Assets is a parsable slice of Asset.
type Assets []*Asset
