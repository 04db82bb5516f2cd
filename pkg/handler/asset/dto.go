/*
 * @Description: 资产API的出参结构与模型映射。
 * @Author: 安知鱼
 * @Date: 2025-08-07 09:21:36
 * @LastEditTime: 2025-08-07 09:21:36
 * @LastEditors: 安知鱼
 */
package asset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"
)

// AssetDTO 是资产在API层的表示，数据库自增ID不对外暴露。
type AssetDTO struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	MediaKind string    `json:"media_kind"`

	ProviderID      string            `json:"provider_id,omitempty"`
	ProviderAssetID string            `json:"provider_asset_id,omitempty"`
	ContentHash     string            `json:"content_hash,omitempty"`
	PerceptualHash  string            `json:"perceptual_hash,omitempty"`
	SourceURL       string            `json:"source_url,omitempty"`
	ProviderMap     map[string]string `json:"provider_map,omitempty"`

	StorageKey   string `json:"storage_key,omitempty"`
	ThumbnailKey string `json:"thumbnail_key,omitempty"`
	PreviewKey   string `json:"preview_key,omitempty"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type,omitempty"`

	IngestStatus string `json:"ingest_status"`
	LastError    string `json:"last_error,omitempty"`

	DownloadedAt        *time.Time `json:"downloaded_at,omitempty"`
	MetadataExtractedAt *time.Time `json:"metadata_extracted_at,omitempty"`
	ThumbnailGeneratedAt *time.Time `json:"thumbnail_generated_at,omitempty"`
	PreviewGeneratedAt  *time.Time `json:"preview_generated_at,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

// UploadResultDTO 是上传接口的返回，Reused 标记内容命中复用。
type UploadResultDTO struct {
	Asset  *AssetDTO `json:"asset"`
	Reused bool      `json:"reused"`
	Note   string    `json:"note,omitempty"`
}

// StageResultDTO 是摄取管道单个阶段的执行结果。
type StageResultDTO struct {
	Stage   string `json:"stage"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

// toAssetDTO 把领域模型转换为API出参。转换失败的公共ID以数据库ID兜底，
// 只可能发生在编码器未初始化的测试场景。
func toAssetDTO(a *model.Asset) *AssetDTO {
	publicID, err := idgen.GeneratePublicID(a.ID, idgen.EntityTypeAsset)
	if err != nil {
		publicID = strconv.FormatUint(uint64(a.ID), 10)
	}

	dto := &AssetDTO{
		ID:           publicID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		MediaKind:    string(a.MediaKind),
		ProviderMap:  a.ProviderMap,
		Size:         a.Size,
		IngestStatus: string(a.IngestStatus),
	}
	if a.ProviderID.Valid {
		dto.ProviderID = a.ProviderID.String
	}
	if a.ProviderAssetID.Valid {
		dto.ProviderAssetID = a.ProviderAssetID.String
	}
	if a.ContentHash.Valid {
		dto.ContentHash = a.ContentHash.String
	}
	if a.PerceptualHash.Valid {
		dto.PerceptualHash = fmt.Sprintf("%016x", a.PerceptualHash.Uint64)
	}
	if a.SourceURL.Valid {
		dto.SourceURL = a.SourceURL.String
	}
	if a.StorageKey.Valid {
		dto.StorageKey = a.StorageKey.String
	}
	if a.ThumbnailKey.Valid {
		dto.ThumbnailKey = a.ThumbnailKey.String
	}
	if a.PreviewKey.Valid {
		dto.PreviewKey = a.PreviewKey.String
	}
	if a.MimeType.Valid {
		dto.MimeType = a.MimeType.String
	}
	if a.LastError.Valid {
		dto.LastError = a.LastError.String
	}
	if a.DownloadedAt.Valid {
		t := a.DownloadedAt.Time
		dto.DownloadedAt = &t
	}
	if a.MetadataExtractedAt.Valid {
		t := a.MetadataExtractedAt.Time
		dto.MetadataExtractedAt = &t
	}
	if a.ThumbnailGeneratedAt.Valid {
		t := a.ThumbnailGeneratedAt.Time
		dto.ThumbnailGeneratedAt = &t
	}
	if a.PreviewGeneratedAt.Valid {
		t := a.PreviewGeneratedAt.Time
		dto.PreviewGeneratedAt = &t
	}
	return dto
}

// toStageResultDTOs 转换管道执行结果。
func toStageResultDTOs(outcome *ingest.Outcome) []StageResultDTO {
	dtos := make([]StageResultDTO, 0, len(outcome.Results))
	for _, r := range outcome.Results {
		dto := StageResultDTO{
			Stage:   r.Stage,
			Outcome: string(r.Outcome),
			Reason:  r.Reason,
		}
		if r.Err != nil {
			dto.Error = r.Err.Error()
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
