/*
 * @Description: 资产（一份逻辑媒体内容）的核心领域模型。
 * @Author: 安知鱼
 * @Date: 2025-08-02 11:20:41
 * @LastEditTime: 2026-01-08 15:33:20
 * @LastEditors: 安知鱼
 */
package model

import (
	"database/sql"
	"time"

	"github.com/anzhiyu-c/mediaflow/internal/pkg/types"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
)

// Asset 是一份媒体内容在业务逻辑中的概念，独立于其持久化实现。
// 同一份字节内容无论经由直接上传、远端同步还是内嵌提取到达，
// 都应收敛到同一条 Asset 记录上。
type Asset struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	OwnerID   uint
	MediaKind constant.MediaKind

	// --- 身份信号 ---

	// ProviderID 与 ProviderAssetID 记录资产的"原始"提供商身份，
	// (owner, provider, provider_asset_id) 三元组在两者均存在时唯一。
	ProviderID      sql.NullString
	ProviderAssetID sql.NullString

	// ContentHash 是内容字节的 SHA-256 十六进制串，(owner, hash) 唯一。
	// 一经写入，除非显式记录冲突日志，否则不得被不同的哈希覆盖。
	ContentHash sql.NullString

	// PerceptualHash 是图片的 64 位感知指纹；PerceptualHashVersion
	// 标记计算时所用的算法版本，版本不一致的指纹不参与比较。
	PerceptualHash        types.NullUint64
	PerceptualHashVersion int

	SourceURL sql.NullString

	// --- 存储 ---

	StorageKey   sql.NullString // 内容寻址键，形如 u/{owner}/content/{hash[:2]}/{hash}{ext}
	ThumbnailKey sql.NullString
	PreviewKey   sql.NullString
	LocalPath    sql.NullString // 本地缓存路径，可能已失效，使用前需检查
	Size         int64
	MimeType     sql.NullString

	// ProviderMap 记录同一内容被推送到过的每个远端系统
	// (provider id → provider 原生 id)，区别于原始身份。
	ProviderMap StringMap

	// GenerationID 关联产生此资产的生成记录（若有）。
	GenerationID types.NullUint64

	// --- 管道状态 ---

	IngestStatus constant.IngestStatus

	// 每个阶段的完成时间戳是彼此独立的标记，而非一个原子的"完成"位，
	// 重试时只需补做缺失的步骤。
	DownloadedAt        sql.NullTime
	MetadataExtractedAt sql.NullTime
	ThumbnailGeneratedAt sql.NullTime
	PreviewGeneratedAt  sql.NullTime

	LastError sql.NullString
}

// IsImage 判断资产是否为图片。
func (a *Asset) IsImage() bool {
	return a.MediaKind == constant.MediaKindImage
}

// Ext 根据 MIME 类型推断存储键使用的扩展名。
func (a *Asset) Ext() string {
	if !a.MimeType.Valid {
		return ""
	}
	switch a.MimeType.String {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "video/quicktime":
		return ".mov"
	case "audio/mpeg":
		return ".mp3"
	case "audio/flac":
		return ".flac"
	default:
		return ""
	}
}

// MergeNonDestructive 将传入信号合并到当前记录上，只填充当前为空的字段，
// 绝不覆盖已有值。返回值表示是否有任何字段被实际修改。
// 跨提供商身份与内容哈希的冲突处理由调用方（去重解析器）负责记录日志。
func (a *Asset) MergeNonDestructive(in *Asset) bool {
	changed := false
	if !a.ContentHash.Valid && in.ContentHash.Valid {
		a.ContentHash = in.ContentHash
		changed = true
	}
	if !a.PerceptualHash.Valid && in.PerceptualHash.Valid {
		a.PerceptualHash = in.PerceptualHash
		a.PerceptualHashVersion = in.PerceptualHashVersion
		changed = true
	}
	if !a.SourceURL.Valid && in.SourceURL.Valid {
		a.SourceURL = in.SourceURL
		changed = true
	}
	if !a.LocalPath.Valid && in.LocalPath.Valid {
		a.LocalPath = in.LocalPath
		changed = true
	}
	if !a.MimeType.Valid && in.MimeType.Valid {
		a.MimeType = in.MimeType
		changed = true
	}
	if a.Size == 0 && in.Size > 0 {
		a.Size = in.Size
		changed = true
	}
	if !a.ProviderID.Valid && in.ProviderID.Valid {
		a.ProviderID = in.ProviderID
		a.ProviderAssetID = in.ProviderAssetID
		changed = true
	}
	if !a.GenerationID.Valid && in.GenerationID.Valid {
		a.GenerationID = in.GenerationID
		changed = true
	}
	return changed
}

// AssetCreatedEvent 是 asset:created 事件的负载，
// 以尽力而为的方式通知摄取触发方，不与记录创建共事务。
type AssetCreatedEvent struct {
	AssetID    uint
	OwnerID    uint
	MediaKind  constant.MediaKind
	ProviderID string
	Source     string // upload / sync / extraction
}
