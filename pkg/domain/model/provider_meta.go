/*
 * @Description: 提供商元数据的类型化建模。已知形状显式声明，未知键保留在 Extra 中。
 * @Author: 安知鱼
 * @Date: 2025-08-02 11:45:10
 * @LastEditTime: 2026-01-15 10:08:27
 * @LastEditors: 安知鱼
 */
package model

import (
	"encoding/json"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
)

// ProviderMetadata 是提供商侧动态元数据的带标签联合：
// 消费方对已知字段做模式匹配，未识别的键完整保留在 Extra 中，
// 保证向前兼容而不丢失信息。
type ProviderMetadata struct {
	// 已知的图片生成字段
	Image *ImageGenerationMeta `json:"image,omitempty"`
	// 已知的视频生成字段
	Video *VideoGenerationMeta `json:"video,omitempty"`
	// 未识别的原始键值，原样保留
	Extra JSONMap `json:"extra,omitempty"`
}

// ImageGenerationMeta 是图片类生成记录的已知字段。
type ImageGenerationMeta struct {
	Prompt   string `json:"prompt,omitempty"`
	Model    string `json:"model,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// VideoGenerationMeta 是视频类生成记录的已知字段。
type VideoGenerationMeta struct {
	Prompt    string  `json:"prompt,omitempty"`
	Model     string  `json:"model,omitempty"`
	Duration  float64 `json:"duration,omitempty"`
	FrameRate float64 `json:"frame_rate,omitempty"`
}

// ParseProviderMetadata 从原始 JSON 解析提供商元数据。
// 已知键填入类型化字段，其余全部落入 Extra。
func ParseProviderMetadata(raw []byte) (*ProviderMetadata, error) {
	if len(raw) == 0 {
		return &ProviderMetadata{}, nil
	}
	var all JSONMap
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	meta := &ProviderMetadata{Extra: JSONMap{}}
	for k, v := range all {
		switch k {
		case "image":
			if b, err := json.Marshal(v); err == nil {
				var im ImageGenerationMeta
				if json.Unmarshal(b, &im) == nil {
					meta.Image = &im
					continue
				}
			}
			meta.Extra[k] = v
		case "video":
			if b, err := json.Marshal(v); err == nil {
				var vm VideoGenerationMeta
				if json.Unmarshal(b, &vm) == nil {
					meta.Video = &vm
					continue
				}
			}
			meta.Extra[k] = v
		default:
			meta.Extra[k] = v
		}
	}
	return meta, nil
}

// EmbeddedAssetRef 描述提供商记录中内嵌的一个子资产引用，
// 由 ProviderExtractor 能力接口产出。
type EmbeddedAssetRef struct {
	MediaKind    constant.MediaKind
	RemoteURL    string
	CandidateIDs []string // 主 id 加上可从 URL/负载中恢复出的 UUID 候选
	RelationType RelationType
	Meta         *ProviderMetadata
}
